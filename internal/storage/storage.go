package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bohnfeli/clicky/internal/models"
)

const (
	// ClickyDir is the directory holding board data
	ClickyDir = ".clicky"

	// BoardFile is the board data file name
	BoardFile = "board.json"
)

// Storage errors
var (
	// ErrBoardNotFound is returned when no board file exists
	ErrBoardNotFound = errors.New("no board found")

	// ErrBoardExists is returned when initializing over an existing board
	ErrBoardExists = errors.New("board already initialized")

	// ErrCorruptBoard is returned when the board file cannot be decoded
	ErrCorruptBoard = errors.New("board file is corrupt")
)

// Repository persists boards. The JSON file implementation is the only one
// in use; the interface keeps the services testable against other stores.
type Repository interface {
	Load(path string) (*models.Board, error)
	Save(board *models.Board, path string) error
	Exists(path string) bool
	Delete(path string) error
}

// JSONRepository stores each board as a pretty-printed JSON file
type JSONRepository struct{}

// NewJSONRepository creates a new JSON board repository
func NewJSONRepository() *JSONRepository {
	return &JSONRepository{}
}

// Load reads and decodes a board file
func (r *JSONRepository) Load(path string) (*models.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w at %s", ErrBoardNotFound, path)
		}
		return nil, err
	}

	var board models.Board
	if err := json.Unmarshal(data, &board); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptBoard, err)
	}

	// A board without columns cannot hold cards; refuse to proceed with it.
	if len(board.Columns) == 0 {
		return nil, fmt.Errorf("%w: board has no columns", ErrCorruptBoard)
	}

	return &board, nil
}

// Save encodes and writes a board file, creating the directory if needed
func (r *JSONRepository) Save(board *models.Board, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(board, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Exists reports whether a board file is present at the given path
func (r *JSONRepository) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Delete removes a board file
func (r *JSONRepository) Delete(path string) error {
	if !r.Exists(path) {
		return fmt.Errorf("%w at %s", ErrBoardNotFound, path)
	}
	return os.Remove(path)
}

// BoardPath returns the board file location for a base directory:
// <base>/.clicky/board.json
func BoardPath(basePath string) string {
	return filepath.Join(basePath, ClickyDir, BoardFile)
}

// FindBoardRoot searches for the directory holding a board, starting at
// startPath and traversing up the directory tree. Returns false if none
// is found.
func FindBoardRoot(startPath string) (string, bool) {
	dir := startPath
	for {
		if _, err := os.Stat(BoardPath(dir)); err == nil {
			return dir, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
