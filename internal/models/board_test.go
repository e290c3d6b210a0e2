package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	board := NewBoard("myproject", "My Project")

	assert.Equal(t, "myproject", board.ID)
	assert.Equal(t, "My Project", board.Name)
	assert.Equal(t, "MYP", board.CardIDPrefix)
	assert.Equal(t, 1, board.NextCardNumber)
	require.Len(t, board.Columns, 3)
	assert.Equal(t, "todo", board.FirstColumn().ID)
	assert.Empty(t, board.Cards)
}

func TestGeneratePrefix(t *testing.T) {
	tests := []struct {
		boardID string
		want    string
	}{
		{"myproject", "MYP"},
		{"my-project", "MYP"},
		{"my_project_123", "MYP"},
		{"ab", "AB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GeneratePrefix(tt.boardID), "prefix for %q", tt.boardID)
	}
}

func TestCreateCard(t *testing.T) {
	board := NewBoard("test", "Test")

	card, err := board.CreateCard("Test Task", "Description", "Alice", "")
	require.NoError(t, err)

	assert.Equal(t, "TES-001", card.ID)
	assert.Equal(t, "Test Task", card.Title)
	assert.Equal(t, "Description", card.Description)
	assert.Equal(t, "Alice", card.Assignee)
	assert.Equal(t, "todo", card.ColumnID)
	assert.Equal(t, 2, board.NextCardNumber)

	found, err := board.FindCard(card.ID)
	require.NoError(t, err)
	assert.Equal(t, card, found)
}

func TestCreateCardInColumn(t *testing.T) {
	board := NewBoard("test", "Test")

	card, err := board.CreateCard("Task", "", "", "in_progress")
	require.NoError(t, err)
	assert.Equal(t, "in_progress", card.ColumnID)
}

func TestCreateCardEmptyTitle(t *testing.T) {
	board := NewBoard("test", "Test")

	_, err := board.CreateCard("   ", "", "", "")
	assert.True(t, errors.Is(err, ErrEmptyTitle))
	assert.Empty(t, board.Cards)
}

func TestCreateCardUnknownColumn(t *testing.T) {
	board := NewBoard("test", "Test")

	_, err := board.CreateCard("Task", "", "", "review")
	assert.True(t, errors.Is(err, ErrColumnNotFound))
	assert.Empty(t, board.Cards)
}

func TestCardIDsNeverReused(t *testing.T) {
	board := NewBoard("test", "Test")

	first, err := board.CreateCard("First", "", "", "")
	require.NoError(t, err)
	require.Equal(t, "TES-001", first.ID)

	// Deleting the highest-numbered card must not free its ID.
	require.NoError(t, board.DeleteCard(first.ID))

	second, err := board.CreateCard("Second", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "TES-002", second.ID)
}

func TestMoveCard(t *testing.T) {
	board := NewBoard("test", "Test")
	card, err := board.CreateCard("Task", "", "", "")
	require.NoError(t, err)

	moved, err := board.MoveCard(card.ID, "in_progress")
	require.NoError(t, err)
	assert.Equal(t, "in_progress", moved.ColumnID)

	assert.Empty(t, board.CardsInColumn("todo"))
	assert.Len(t, board.CardsInColumn("in_progress"), 1)
}

func TestMoveCardIdempotent(t *testing.T) {
	board := NewBoard("test", "Test")
	card, err := board.CreateCard("Task", "", "", "")
	require.NoError(t, err)
	before := card.UpdatedAt

	moved, err := board.MoveCard(card.ID, "todo")
	require.NoError(t, err)
	assert.Equal(t, "todo", moved.ColumnID)
	assert.Equal(t, before, moved.UpdatedAt, "no-op move must not touch the timestamp")
}

func TestMoveCardErrors(t *testing.T) {
	board := NewBoard("test", "Test")
	card, err := board.CreateCard("Task", "", "", "")
	require.NoError(t, err)

	_, err = board.MoveCard("TES-999", "done")
	assert.True(t, errors.Is(err, ErrCardNotFound))

	_, err = board.MoveCard(card.ID, "review")
	assert.True(t, errors.Is(err, ErrColumnNotFound))
	assert.Equal(t, "todo", card.ColumnID)
}

func TestUpdateCardPartial(t *testing.T) {
	board := NewBoard("test", "Test")
	card, err := board.CreateCard("Task", "Old description", "Alice", "")
	require.NoError(t, err)

	title := "Renamed"
	updated, err := board.UpdateCard(card.ID, CardUpdate{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "Old description", updated.Description)
	assert.Equal(t, "Alice", updated.Assignee)
}

func TestUpdateCardClearFields(t *testing.T) {
	board := NewBoard("test", "Test")
	card, err := board.CreateCard("Task", "Description", "Alice", "")
	require.NoError(t, err)

	updated, err := board.UpdateCard(card.ID, CardUpdate{ClearDescription: true, ClearAssignee: true})
	require.NoError(t, err)

	assert.Empty(t, updated.Description)
	assert.Empty(t, updated.Assignee)
	assert.Equal(t, "Task", updated.Title)
}

func TestUpdateCardEmptyTitleRejected(t *testing.T) {
	board := NewBoard("test", "Test")
	card, err := board.CreateCard("Task", "", "", "")
	require.NoError(t, err)

	empty := "  "
	desc := "should not stick"
	_, err = board.UpdateCard(card.ID, CardUpdate{Title: &empty, Description: &desc})
	assert.True(t, errors.Is(err, ErrEmptyTitle))

	// The rejected update must leave the card untouched.
	assert.Equal(t, "Task", card.Title)
	assert.Empty(t, card.Description)
}

func TestUpdateCardNotFound(t *testing.T) {
	board := NewBoard("test", "Test")

	title := "Anything"
	_, err := board.UpdateCard("TES-404", CardUpdate{Title: &title})
	assert.True(t, errors.Is(err, ErrCardNotFound))
}

func TestDeleteCard(t *testing.T) {
	board := NewBoard("test", "Test")
	card, err := board.CreateCard("Task", "", "", "")
	require.NoError(t, err)

	require.NoError(t, board.DeleteCard(card.ID))

	_, err = board.FindCard(card.ID)
	assert.True(t, errors.Is(err, ErrCardNotFound))
	assert.Empty(t, board.CardsInColumn("todo"))
}

func TestDeleteCardNotFound(t *testing.T) {
	board := NewBoard("test", "Test")
	_, err := board.CreateCard("Task", "", "", "")
	require.NoError(t, err)

	err = board.DeleteCard("TES-404")
	assert.True(t, errors.Is(err, ErrCardNotFound))
	assert.Len(t, board.Cards, 1, "failed delete must leave the board unchanged")
}

func TestCardsInColumnOrder(t *testing.T) {
	board := NewBoard("test", "Test")
	for _, title := range []string{"one", "two", "three"} {
		_, err := board.CreateCard(title, "", "", "")
		require.NoError(t, err)
	}

	cards := board.CardsInColumn("todo")
	require.Len(t, cards, 3)
	assert.Equal(t, "one", cards[0].Title)
	assert.Equal(t, "two", cards[1].Title)
	assert.Equal(t, "three", cards[2].Title)
}
