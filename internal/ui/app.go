package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bohnfeli/clicky/internal/config"
	"github.com/bohnfeli/clicky/internal/models"
	"github.com/bohnfeli/clicky/internal/service"
	"github.com/bohnfeli/clicky/internal/ui/components"
)

// Model is the interactive session over one board.
//
// Every keystroke is handled to completion inside Update, including the
// card service call and its write-through persistence, before control
// returns to the renderer. There is no background activity.
type Model struct {
	state sessionState

	cards *service.CardService
	cfg   *config.Config
	board *models.Board

	// Board state: selected column and card within it
	selectedColumn int
	selectedCard   int // -1 means no card selected

	// CardDetail state
	detailCardID string

	// Card form state
	form         components.CardForm
	formMode     formMode
	formColumnID string       // target column for a new card
	formCardID   string       // card being edited
	formReturn   sessionState // where cancelling goes

	// MoveCard state
	moveCardID string
	moveTarget int

	// ConfirmDelete state
	confirm confirmDelete

	showHelp  bool
	notice    string
	noticeErr bool

	width  int
	height int
}

// NewModel loads the board and builds the initial session state.
// A missing or unreadable board file is a fatal startup error.
func NewModel(basePath string, cfg *config.Config) (Model, error) {
	cards := service.NewCardService(basePath)
	board, err := cards.Boards().Load()
	if err != nil {
		return Model{}, err
	}

	return Model{
		state:        stateBoard,
		cards:        cards,
		cfg:          cfg,
		board:        board,
		selectedCard: -1,
	}, nil
}

// Run starts the interactive session for the board in basePath
func Run(basePath string, cfg *config.Config) error {
	model, err := NewModel(basePath, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles one input event, dispatching on the current state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.ForceQuit) {
			return m, tea.Quit
		}

		// '?' would be typed into a focused field, so the overlay
		// toggle skips the form state.
		if m.state != stateCardForm && key.Matches(msg, keys.Help) {
			m.showHelp = !m.showHelp
			return m, nil
		}
		if m.showHelp {
			// The overlay swallows input; the state below it stays put.
			if key.Matches(msg, keys.Back) {
				m.showHelp = false
			}
			return m, nil
		}

		switch m.state {
		case stateBoard:
			return m.updateBoard(msg)
		case stateCardDetail:
			return m.updateCardDetail(msg)
		case stateCardForm:
			return m.updateForm(msg)
		case stateMoveCard:
			return m.updateMoveCard(msg)
		case stateConfirmDelete:
			return m.updateConfirmDelete(msg)
		}
	}

	return m, nil
}

// columnCards returns the cards of the selected column, in order
func (m *Model) columnCards() []*models.Card {
	if m.board == nil || m.selectedColumn >= len(m.board.Columns) {
		return nil
	}
	return m.board.CardsInColumn(m.board.Columns[m.selectedColumn].ID)
}

// selectedCardRef returns the selected card, or nil when none is selected
func (m *Model) selectedCardRef() *models.Card {
	cards := m.columnCards()
	if m.selectedCard < 0 || m.selectedCard >= len(cards) {
		return nil
	}
	return cards[m.selectedCard]
}

// reload re-reads the board and clamps the selection to what still exists.
// Deleting the last card of a column resets the selection to "none".
func (m *Model) reload() {
	board, err := m.cards.Boards().Load()
	if err != nil {
		m.setNotice(err.Error(), true)
		return
	}
	m.board = board
	if m.selectedColumn >= len(board.Columns) {
		m.selectedColumn = len(board.Columns) - 1
	}
	if n := len(m.columnCards()); m.selectedCard >= n {
		m.selectedCard = -1
	}
}

func (m *Model) setNotice(text string, isErr bool) {
	m.notice = text
	m.noticeErr = isErr
}

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Left):
		if m.selectedColumn > 0 {
			m.selectedColumn--
			m.selectedCard = -1
		}

	case key.Matches(msg, keys.Right):
		if m.selectedColumn < len(m.board.Columns)-1 {
			m.selectedColumn++
			m.selectedCard = -1
		}

	case key.Matches(msg, keys.Up):
		cards := m.columnCards()
		switch {
		case m.selectedCard > 0:
			m.selectedCard--
		case m.selectedCard == -1 && len(cards) > 0:
			m.selectedCard = len(cards) - 1
		}

	case key.Matches(msg, keys.Down):
		cards := m.columnCards()
		switch {
		case m.selectedCard == -1 && len(cards) > 0:
			m.selectedCard = 0
		case m.selectedCard >= 0 && m.selectedCard < len(cards)-1:
			m.selectedCard++
		}

	case key.Matches(msg, keys.Select):
		if card := m.selectedCardRef(); card != nil {
			m.detailCardID = card.ID
			m.state = stateCardDetail
			m.setNotice("", false)
		}

	case key.Matches(msg, keys.Create):
		return m.openCreateForm(), nil

	case key.Matches(msg, keys.Delete):
		if card := m.selectedCardRef(); card != nil {
			m.confirm = confirmDelete{cardID: card.ID, returnTo: stateBoard}
			m.state = stateConfirmDelete
		}

	case key.Matches(msg, keys.Back):
		m.selectedCard = -1
	}

	return m, nil
}

func (m Model) updateCardDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Edit):
		if card, err := m.board.FindCard(m.detailCardID); err == nil {
			return m.openEditForm(card), nil
		}

	case key.Matches(msg, keys.Move):
		if _, err := m.board.FindCard(m.detailCardID); err == nil {
			m.moveCardID = m.detailCardID
			m.moveTarget = m.selectedColumn
			m.state = stateMoveCard
		}

	case key.Matches(msg, keys.Delete):
		m.confirm = confirmDelete{cardID: m.detailCardID, returnTo: stateCardDetail}
		m.state = stateConfirmDelete

	case key.Matches(msg, keys.Back), key.Matches(msg, keys.Quit):
		m.state = stateBoard
	}

	return m, nil
}

func (m Model) openCreateForm() Model {
	m.form = components.NewCardForm()
	if m.cfg != nil && m.cfg.DefaultAssignee != "" {
		m.form.SetValues("", "", m.cfg.DefaultAssignee)
	}
	m.formMode = formCreate
	m.formColumnID = m.board.Columns[m.selectedColumn].ID
	m.formCardID = ""
	m.formReturn = stateBoard
	m.state = stateCardForm
	m.setNotice("", false)
	return m
}

func (m Model) openEditForm(card *models.Card) Model {
	m.form = components.NewCardForm()
	m.form.SetValues(card.Title, card.Description, card.Assignee)
	m.formMode = formEdit
	m.formCardID = card.ID
	m.formReturn = stateCardDetail
	m.state = stateCardForm
	m.setNotice("", false)
	return m
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		// Discard the draft unconditionally.
		m.form = components.NewCardForm()
		m.state = m.formReturn
		return m, nil

	case key.Matches(msg, keys.NextField):
		m.form.Advance()
		return m, nil

	case msg.Type == tea.KeyEnter:
		if m.form.Advance() {
			return m, nil
		}
		// Enter on the final field submits instead of wrapping.
		return m.submitForm()
	}

	cmd := m.form.Update(msg)
	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	var (
		card *models.Card
		err  error
	)

	switch m.formMode {
	case formCreate:
		card, err = m.cards.Create(m.form.Title(), m.form.Description(), m.form.Assignee(), m.formColumnID)
	case formEdit:
		title := m.form.Title()
		update := models.CardUpdate{Title: &title}
		if description := m.form.Description(); description == "" {
			update.ClearDescription = true
		} else {
			update.Description = &description
		}
		if assignee := m.form.Assignee(); assignee == "" {
			update.ClearAssignee = true
		} else {
			update.Assignee = &assignee
		}
		card, err = m.cards.Update(m.formCardID, update)
	}

	switch {
	case err == nil:

	case errors.Is(err, models.ErrEmptyTitle):
		// Keep the draft so the other fields don't have to be retyped.
		m.form.Err = "Title is required"
		m.form.Focus(components.FieldTitle)
		return m, nil

	case errors.Is(err, models.ErrCardNotFound), errors.Is(err, models.ErrColumnNotFound):
		// The board changed underneath the session; back to browsing.
		m.form = components.NewCardForm()
		m.state = stateBoard
		m.setNotice(err.Error(), false)
		m.reload()
		return m, nil

	default:
		m.form = components.NewCardForm()
		m.state = stateBoard
		m.setNotice(err.Error(), true)
		return m, nil
	}

	m.form = components.NewCardForm()
	m.state = stateBoard
	if m.formMode == formCreate {
		m.setNotice(fmt.Sprintf("Created %s", card.ID), false)
	} else {
		m.setNotice(fmt.Sprintf("Updated %s", card.ID), false)
	}
	m.reload()
	return m, nil
}

func (m Model) updateMoveCard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Left):
		if m.moveTarget > 0 {
			m.moveTarget--
		}

	case key.Matches(msg, keys.Right):
		if m.moveTarget < len(m.board.Columns)-1 {
			m.moveTarget++
		}

	case key.Matches(msg, keys.Select):
		target := m.board.Columns[m.moveTarget]
		_, err := m.cards.Move(m.moveCardID, target.ID)
		m.state = stateBoard
		switch {
		case err == nil:
			m.setNotice(fmt.Sprintf("Moved %s to %s", m.moveCardID, target.Name), false)
		case errors.Is(err, models.ErrCardNotFound), errors.Is(err, models.ErrColumnNotFound):
			m.setNotice(err.Error(), false)
		default:
			m.setNotice(err.Error(), true)
		}
		m.reload()

	case key.Matches(msg, keys.Back):
		m.state = stateCardDetail
	}

	return m, nil
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Confirm):
		err := m.cards.Delete(m.confirm.cardID)
		m.state = stateBoard
		m.selectedCard = -1
		switch {
		case err == nil:
			m.setNotice(fmt.Sprintf("Deleted %s", m.confirm.cardID), false)
		case errors.Is(err, models.ErrCardNotFound):
			// The card vanished underneath the session; already satisfied.
			m.setNotice(fmt.Sprintf("%s was already gone", m.confirm.cardID), false)
		default:
			m.setNotice(err.Error(), true)
		}
		m.reload()

	case key.Matches(msg, keys.Deny), key.Matches(msg, keys.Back):
		m.state = m.confirm.returnTo
	}

	return m, nil
}
