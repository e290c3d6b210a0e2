package service

import (
	"path/filepath"
	"strings"
	"unicode"

	"github.com/bohnfeli/clicky/internal/models"
	"github.com/bohnfeli/clicky/internal/storage"
)

// BoardService manages the board file for one base directory.
// Every mutation elsewhere goes through Load and Save on this type.
type BoardService struct {
	repo     storage.Repository
	basePath string
}

// NewBoardService creates a board service rooted at the given directory
func NewBoardService(basePath string) *BoardService {
	return &BoardService{
		repo:     storage.NewJSONRepository(),
		basePath: basePath,
	}
}

// BoardPath returns the location of the board file
func (s *BoardService) BoardPath() string {
	return storage.BoardPath(s.basePath)
}

// Exists reports whether a board has been initialized in the base directory
func (s *BoardService) Exists() bool {
	return s.repo.Exists(s.BoardPath())
}

// Initialize creates a new board with the default columns.
// The name defaults to the base directory name when empty.
func (s *BoardService) Initialize(name string) (*models.Board, error) {
	if s.Exists() {
		return nil, storage.ErrBoardExists
	}

	if name == "" {
		abs, err := filepath.Abs(s.basePath)
		if err == nil {
			name = filepath.Base(abs)
		}
		if name == "" || name == "." || name == string(filepath.Separator) {
			name = "board"
		}
	}

	board := models.NewBoard(SanitizeID(name), name)
	if err := s.repo.Save(board, s.BoardPath()); err != nil {
		return nil, err
	}

	return board, nil
}

// Load reads the current board from disk
func (s *BoardService) Load() (*models.Board, error) {
	return s.repo.Load(s.BoardPath())
}

// Save writes the board to disk
func (s *BoardService) Save(board *models.Board) error {
	return s.repo.Save(board, s.BoardPath())
}

// SanitizeID turns a board name into a valid board ID: lowercase,
// spaces and underscores become hyphens, everything else non-alphanumeric
// is dropped.
func SanitizeID(name string) string {
	var id []rune
	for _, r := range strings.ToLower(name) {
		switch {
		case r == ' ' || r == '_' || r == '-':
			id = append(id, '-')
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			id = append(id, r)
		}
	}
	return string(id)
}
