package service

import (
	"github.com/bohnfeli/clicky/internal/models"
)

// CardService orchestrates board engine operations against the stored board.
//
// Every mutation is load, engine operation, save: write-through with no
// batching. When the engine rejects an operation nothing is persisted, so
// the file always reflects the last consistent board.
type CardService struct {
	boards *BoardService
}

// NewCardService creates a card service rooted at the given directory
func NewCardService(basePath string) *CardService {
	return &CardService{boards: NewBoardService(basePath)}
}

// Boards exposes the underlying board service
func (s *CardService) Boards() *BoardService {
	return s.boards
}

// Create adds a new card and persists the board
func (s *CardService) Create(title, description, assignee, columnID string) (*models.Card, error) {
	board, err := s.boards.Load()
	if err != nil {
		return nil, err
	}

	card, err := board.CreateCard(title, description, assignee, columnID)
	if err != nil {
		return nil, err
	}

	if err := s.boards.Save(board); err != nil {
		return nil, err
	}
	return card, nil
}

// Move reassigns a card to a different column and persists the board
func (s *CardService) Move(cardID, columnID string) (*models.Card, error) {
	board, err := s.boards.Load()
	if err != nil {
		return nil, err
	}

	card, err := board.MoveCard(cardID, columnID)
	if err != nil {
		return nil, err
	}

	if err := s.boards.Save(board); err != nil {
		return nil, err
	}
	return card, nil
}

// Update applies a partial update to a card and persists the board
func (s *CardService) Update(cardID string, update models.CardUpdate) (*models.Card, error) {
	board, err := s.boards.Load()
	if err != nil {
		return nil, err
	}

	card, err := board.UpdateCard(cardID, update)
	if err != nil {
		return nil, err
	}

	if err := s.boards.Save(board); err != nil {
		return nil, err
	}
	return card, nil
}

// Delete removes a card and persists the board
func (s *CardService) Delete(cardID string) error {
	board, err := s.boards.Load()
	if err != nil {
		return err
	}

	if err := board.DeleteCard(cardID); err != nil {
		return err
	}

	return s.boards.Save(board)
}

// Get returns a single card by ID
func (s *CardService) Get(cardID string) (*models.Card, error) {
	board, err := s.boards.Load()
	if err != nil {
		return nil, err
	}
	return board.FindCard(cardID)
}

// List returns a read-only view of the board's cards, grouped by column
// order. Both filters are equality matches; empty means no filter.
func (s *CardService) List(columnFilter, assigneeFilter string) ([]*models.Card, error) {
	board, err := s.boards.Load()
	if err != nil {
		return nil, err
	}

	var cards []*models.Card
	for _, column := range board.Columns {
		if columnFilter != "" && column.ID != columnFilter {
			continue
		}
		for _, card := range board.CardsInColumn(column.ID) {
			if assigneeFilter != "" && card.Assignee != assigneeFilter {
				continue
			}
			cards = append(cards, card)
		}
	}
	return cards, nil
}
