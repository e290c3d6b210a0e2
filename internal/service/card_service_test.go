package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bohnfeli/clicky/internal/models"
	"github.com/bohnfeli/clicky/internal/storage"
)

func newTestService(t *testing.T) *CardService {
	t.Helper()
	svc := NewCardService(t.TempDir())
	_, err := svc.Boards().Initialize("Test Project")
	require.NoError(t, err)
	return svc
}

func TestInitialize(t *testing.T) {
	boards := NewBoardService(t.TempDir())

	board, err := boards.Initialize("My Project")
	require.NoError(t, err)
	assert.Equal(t, "my-project", board.ID)
	assert.Equal(t, "My Project", board.Name)
	assert.Equal(t, "MYP", board.CardIDPrefix)
	assert.True(t, boards.Exists())

	_, err = boards.Initialize("Again")
	assert.True(t, errors.Is(err, storage.ErrBoardExists))
}

func TestSanitizeID(t *testing.T) {
	assert.Equal(t, "my-project", SanitizeID("My Project"))
	assert.Equal(t, "my-project", SanitizeID("my_project"))
	assert.Equal(t, "pr-oj3ct", SanitizeID("Pr oj3ct!"))
}

func TestCreatePersists(t *testing.T) {
	svc := newTestService(t)

	card, err := svc.Create("Implement feature", "", "Alice", "")
	require.NoError(t, err)
	assert.Equal(t, "TES-001", card.ID)
	assert.Equal(t, "todo", card.ColumnID)

	// A fresh load must see the card: mutations are written through.
	found, err := svc.Get(card.ID)
	require.NoError(t, err)
	assert.Equal(t, "Implement feature", found.Title)
	assert.Equal(t, "Alice", found.Assignee)
}

func TestFailedMutationIsNotPersisted(t *testing.T) {
	svc := newTestService(t)

	card, err := svc.Create("Task", "", "", "")
	require.NoError(t, err)

	empty := ""
	_, err = svc.Update(card.ID, models.CardUpdate{Title: &empty})
	assert.True(t, errors.Is(err, models.ErrEmptyTitle))

	// The stored card keeps its old title.
	found, err := svc.Get(card.ID)
	require.NoError(t, err)
	assert.Equal(t, "Task", found.Title)
}

func TestDeleteNotFoundLeavesBoardUnchanged(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create("Task", "", "", "")
	require.NoError(t, err)

	err = svc.Delete("TES-404")
	assert.True(t, errors.Is(err, models.ErrCardNotFound))

	cards, err := svc.List("", "")
	require.NoError(t, err)
	assert.Len(t, cards, 1)
}

func TestCardLifecycleScenario(t *testing.T) {
	svc := newTestService(t)

	card, err := svc.Create("Implement feature", "", "", "todo")
	require.NoError(t, err)
	assert.Equal(t, "TES-001", card.ID)

	_, err = svc.Move(card.ID, "in_progress")
	require.NoError(t, err)

	shown, err := svc.Get(card.ID)
	require.NoError(t, err)
	assert.Equal(t, "in_progress", shown.ColumnID)

	_, err = svc.Move(card.ID, "done")
	require.NoError(t, err)

	todo, err := svc.List("todo", "")
	require.NoError(t, err)
	assert.Empty(t, todo)

	inProgress, err := svc.List("in_progress", "")
	require.NoError(t, err)
	assert.Empty(t, inProgress)

	done, err := svc.List("done", "")
	require.NoError(t, err)
	assert.Len(t, done, 1)
}

func TestListFilters(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create("One", "", "alice", "todo")
	require.NoError(t, err)
	_, err = svc.Create("Two", "", "bob", "done")
	require.NoError(t, err)
	_, err = svc.Create("Three", "", "alice", "done")
	require.NoError(t, err)

	all, err := svc.List("", "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Grouped by column order: todo before done.
	assert.Equal(t, "One", all[0].Title)

	alice, err := svc.List("", "alice")
	require.NoError(t, err)
	assert.Len(t, alice, 2)

	doneAlice, err := svc.List("done", "alice")
	require.NoError(t, err)
	require.Len(t, doneAlice, 1)
	assert.Equal(t, "Three", doneAlice[0].Title)
}

func TestOperationsWithoutBoard(t *testing.T) {
	svc := NewCardService(t.TempDir())

	_, err := svc.Create("Task", "", "", "")
	assert.True(t, errors.Is(err, storage.ErrBoardNotFound))

	_, err = svc.List("", "")
	assert.True(t, errors.Is(err, storage.ErrBoardNotFound))
}
