package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bohnfeli/clicky/internal/util"
)

// View renders the session. It reads the model and never mutates it.
func (m Model) View() string {
	if m.board == nil {
		return "Loading board..."
	}

	var body string
	switch {
	case m.showHelp:
		body = m.helpView()
	case m.state == stateCardDetail:
		body = m.cardDetailView()
	case m.state == stateCardForm:
		body = m.formView()
	case m.state == stateMoveCard:
		body = m.moveCardView()
	case m.state == stateConfirmDelete:
		body = m.confirmDeleteView()
	default:
		body = m.boardView()
	}

	titleBar := titleBarStyle.Render(fmt.Sprintf("clicky: %s", m.board.Name))

	status := ""
	if m.notice != "" {
		if m.noticeErr {
			status = noticeErrStyle.Render(m.notice)
		} else {
			status = noticeStyle.Render(m.notice)
		}
	}

	footer := footerStyle.Render(m.footerHints())

	return lipgloss.JoinVertical(lipgloss.Left, titleBar, body, status, footer)
}

// columnWidth spreads the columns across the terminal width
func (m Model) columnWidth() int {
	if m.width == 0 || len(m.board.Columns) == 0 {
		return 26
	}
	w := m.width/len(m.board.Columns) - 4
	if w < 12 {
		w = 12
	}
	return w
}

func (m Model) boardView() string {
	width := m.columnWidth()

	rendered := make([]string, 0, len(m.board.Columns))
	for i, column := range m.board.Columns {
		cards := m.board.CardsInColumn(column.ID)

		var b strings.Builder
		b.WriteString(columnHeaderStyle.Render(fmt.Sprintf("%s (%d)", column.Name, len(cards))))
		b.WriteString("\n")

		if len(cards) == 0 {
			b.WriteString(emptyColumnStyle.Render("no cards"))
		}

		for j, card := range cards {
			line := util.Truncate(fmt.Sprintf("%s %s", card.ID, card.Title), width)
			if i == m.selectedColumn && j == m.selectedCard {
				b.WriteString(selectedCardStyle.Render("> " + line))
			} else {
				b.WriteString(cardLineStyle.Render("  " + line))
			}
			if j < len(cards)-1 {
				b.WriteString("\n")
			}
		}

		style := columnStyle
		if i == m.selectedColumn {
			style = selectedColumnStyle
		}
		rendered = append(rendered, style.Width(width).Render(b.String()))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) cardDetailView() string {
	card, err := m.board.FindCard(m.detailCardID)
	if err != nil {
		return dialogStyle.Render("Card no longer exists.")
	}

	columnName := card.ColumnID
	if column, err := m.board.FindColumn(card.ColumnID); err == nil {
		columnName = column.Name
	}

	var b strings.Builder
	b.WriteString(fieldNameStyle.Render(card.ID))
	b.WriteString("\n\n")
	b.WriteString(fieldNameStyle.Render("Title:       "))
	b.WriteString(card.Title)
	b.WriteString("\n")
	if card.Description != "" {
		b.WriteString(fieldNameStyle.Render("Description: "))
		b.WriteString(card.Description)
		b.WriteString("\n")
	}
	b.WriteString(fieldNameStyle.Render("Column:      "))
	b.WriteString(fmt.Sprintf("%s (%s)", columnName, card.ColumnID))
	b.WriteString("\n")
	if card.Assignee != "" {
		b.WriteString(fieldNameStyle.Render("Assignee:    "))
		b.WriteString(card.Assignee)
		b.WriteString("\n")
	}
	b.WriteString(fieldNameStyle.Render("Created:     "))
	b.WriteString(util.FormatTime(card.CreatedAt))
	b.WriteString("\n")
	b.WriteString(fieldNameStyle.Render("Updated:     "))
	b.WriteString(util.FormatTime(card.UpdatedAt))

	return dialogStyle.Render(b.String())
}

func (m Model) formView() string {
	header := "New Card"
	if m.formMode == formEdit {
		header = fmt.Sprintf("Edit %s", m.formCardID)
	} else if column, err := m.board.FindColumn(m.formColumnID); err == nil {
		header = fmt.Sprintf("New Card in %s", column.Name)
	}

	return dialogStyle.Render(fieldNameStyle.Render(header) + "\n\n" + m.form.View())
}

func (m Model) moveCardView() string {
	target := m.board.Columns[m.moveTarget]

	var b strings.Builder
	b.WriteString(fieldNameStyle.Render(fmt.Sprintf("Move %s", m.moveCardID)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Target column: < %s >", target.Name))

	return dialogStyle.Render(b.String())
}

func (m Model) confirmDeleteView() string {
	var b strings.Builder
	b.WriteString(fieldNameStyle.Render(fmt.Sprintf("Delete %s?", m.confirm.cardID)))
	b.WriteString("\n\n")
	b.WriteString("This cannot be undone. Press y to delete, n to cancel.")

	return dialogStyle.Render(b.String())
}

func (m Model) helpView() string {
	bindings := [][]string{
		{"Board", ""},
		{keys.Left.Help().Key, keys.Left.Help().Desc},
		{keys.Right.Help().Key, keys.Right.Help().Desc},
		{keys.Up.Help().Key, keys.Up.Help().Desc},
		{keys.Down.Help().Key, keys.Down.Help().Desc},
		{keys.Select.Help().Key, keys.Select.Help().Desc},
		{keys.Create.Help().Key, keys.Create.Help().Desc},
		{keys.Delete.Help().Key, keys.Delete.Help().Desc},
		{"", ""},
		{"Card detail", ""},
		{keys.Edit.Help().Key, keys.Edit.Help().Desc},
		{keys.Move.Help().Key, keys.Move.Help().Desc},
		{keys.Back.Help().Key, keys.Back.Help().Desc},
		{"", ""},
		{"Global", ""},
		{keys.Help.Help().Key, keys.Help.Help().Desc},
		{keys.Quit.Help().Key, keys.Quit.Help().Desc},
	}

	var b strings.Builder
	b.WriteString(fieldNameStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, row := range bindings {
		b.WriteString("\n")
		if row[1] == "" {
			b.WriteString(columnHeaderStyle.Render(row[0]))
		} else {
			b.WriteString(fmt.Sprintf("  %-8s %s", row[0], row[1]))
		}
	}

	return helpOverlayStyle.Render(b.String())
}

func (m Model) footerHints() string {
	if m.showHelp {
		return "esc/? close help"
	}

	switch m.state {
	case stateCardDetail:
		return "e edit | m move | d delete | esc back | ? help"
	case stateCardForm:
		return "tab/enter next field | enter on assignee saves | esc cancel"
	case stateMoveCard:
		return "h/l choose column | enter move | esc cancel"
	case stateConfirmDelete:
		return "y confirm | n cancel"
	default:
		return "h/l columns | j/k cards | enter details | c create | d delete | ? help | q quit"
	}
}
