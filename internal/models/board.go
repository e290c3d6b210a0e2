package models

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Board is the top-level container for a project's workflow.
// It owns its columns and cards; a card belongs to exactly one column at all times.
type Board struct {
	ID             string    `json:"id"`               // Unique board identifier (usually the project name)
	Name           string    `json:"name"`             // Display name
	CardIDPrefix   string    `json:"card_id_prefix"`   // Prefix for card IDs (e.g., "PRJ" for PRJ-001)
	NextCardNumber int       `json:"next_card_number"` // Counter for generating the next card ID
	Columns        []Column  `json:"columns"`          // Columns in workflow order
	Cards          []*Card   `json:"cards"`            // All cards on the board
	CreatedAt      time.Time `json:"created_at"`       // Creation timestamp
	UpdatedAt      time.Time `json:"updated_at"`       // Last update timestamp
}

// CardUpdate describes a partial update to a card. Nil fields are left
// untouched; the clear flags reset the optional fields to empty.
type CardUpdate struct {
	Title            *string
	Description      *string
	Assignee         *string
	ClearDescription bool
	ClearAssignee    bool
}

// NewBoard creates a new board with the default workflow columns
func NewBoard(id, name string) *Board {
	now := time.Now().UTC()
	return &Board{
		ID:             id,
		Name:           name,
		CardIDPrefix:   GeneratePrefix(id),
		NextCardNumber: 1,
		Columns: []Column{
			NewColumn("todo", "To Do", 0),
			NewColumn("in_progress", "In Progress", 1),
			NewColumn("done", "Done", 2),
		},
		Cards:     []*Card{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// GeneratePrefix derives a card ID prefix from a board ID.
// Takes up to 3 alphabetic characters, uppercased.
func GeneratePrefix(boardID string) string {
	var prefix []rune
	for _, r := range boardID {
		if !unicode.IsLetter(r) {
			continue
		}
		prefix = append(prefix, unicode.ToUpper(r))
		if len(prefix) == 3 {
			break
		}
	}
	return string(prefix)
}

// generateCardID mints the next card ID and advances the counter.
// The counter never resets, even across deletions, so IDs are never reused.
func (b *Board) generateCardID() string {
	id := fmt.Sprintf("%s-%03d", b.CardIDPrefix, b.NextCardNumber)
	b.NextCardNumber++
	return id
}

// FindColumn returns the column with the given ID
func (b *Board) FindColumn(columnID string) (*Column, error) {
	for i := range b.Columns {
		if b.Columns[i].ID == columnID {
			return &b.Columns[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrColumnNotFound, columnID)
}

// FirstColumn returns the leftmost column, the default for new cards
func (b *Board) FirstColumn() *Column {
	first := &b.Columns[0]
	for i := range b.Columns {
		if b.Columns[i].Order < first.Order {
			first = &b.Columns[i]
		}
	}
	return first
}

// FindCard returns the card with the given ID
func (b *Board) FindCard(cardID string) (*Card, error) {
	for _, card := range b.Cards {
		if card.ID == cardID {
			return card, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrCardNotFound, cardID)
}

// CardsInColumn returns the cards in a column, in creation order
func (b *Board) CardsInColumn(columnID string) []*Card {
	var cards []*Card
	for _, card := range b.Cards {
		if card.ColumnID == columnID {
			cards = append(cards, card)
		}
	}
	return cards
}

// CreateCard adds a new card to the board and returns it.
//
// The title is trimmed and must be non-empty. An explicit column must exist;
// when none is given the card lands in the first column. The ID counter
// always advances, so a failed or deleted card never frees its number.
func (b *Board) CreateCard(title, description, assignee, columnID string) (*Card, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	if columnID == "" {
		columnID = b.FirstColumn().ID
	} else if _, err := b.FindColumn(columnID); err != nil {
		return nil, err
	}

	card := NewCard(b.generateCardID(), title, columnID)
	card.Description = description
	card.Assignee = assignee

	b.Cards = append(b.Cards, card)
	b.UpdatedAt = card.CreatedAt

	return card, nil
}

// MoveCard reassigns a card to a different column.
//
// Moving a card to the column it is already in is a no-op success:
// the card and its timestamps are left untouched.
func (b *Board) MoveCard(cardID, targetColumnID string) (*Card, error) {
	card, err := b.FindCard(cardID)
	if err != nil {
		return nil, err
	}
	if _, err := b.FindColumn(targetColumnID); err != nil {
		return nil, err
	}

	if card.ColumnID == targetColumnID {
		return card, nil
	}

	card.ColumnID = targetColumnID
	card.UpdatedAt = time.Now().UTC()
	b.UpdatedAt = card.UpdatedAt

	return card, nil
}

// UpdateCard applies a partial update to a card.
//
// Validation happens before anything is written, so a rejected update
// leaves the card exactly as it was.
func (b *Board) UpdateCard(cardID string, update CardUpdate) (*Card, error) {
	card, err := b.FindCard(cardID)
	if err != nil {
		return nil, err
	}

	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return nil, ErrEmptyTitle
	}

	if update.Title != nil {
		card.Title = strings.TrimSpace(*update.Title)
	}
	switch {
	case update.ClearDescription:
		card.Description = ""
	case update.Description != nil:
		card.Description = *update.Description
	}
	switch {
	case update.ClearAssignee:
		card.Assignee = ""
	case update.Assignee != nil:
		card.Assignee = *update.Assignee
	}

	card.UpdatedAt = time.Now().UTC()
	b.UpdatedAt = card.UpdatedAt

	return card, nil
}

// DeleteCard removes a card from the board.
// The freed ID is never reused; external references stay unambiguous.
func (b *Board) DeleteCard(cardID string) error {
	for i, card := range b.Cards {
		if card.ID == cardID {
			b.Cards = append(b.Cards[:i], b.Cards[i+1:]...)
			b.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrCardNotFound, cardID)
}
