package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FormField identifies one of the card form's fields, in focus order
type FormField int

const (
	FieldTitle FormField = iota
	FieldDescription
	FieldAssignee
)

const fieldCount = 3

var fieldLabels = [fieldCount]string{"Title", "Description", "Assignee"}

var (
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	blurredLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))

	formErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))
)

// CardForm is the transient draft edited while creating or updating a card.
// It is distinct from any card until submission; cancelling discards it.
type CardForm struct {
	// Err is the inline validation message, empty when the draft is fine
	Err string

	inputs  [fieldCount]textinput.Model
	focused FormField
}

// NewCardForm creates a cleared draft with focus on the title field
func NewCardForm() CardForm {
	title := textinput.New()
	title.Placeholder = "What needs doing?"
	title.CharLimit = 200
	title.Focus()

	description := textinput.New()
	description.Placeholder = "Optional details"
	description.CharLimit = 500

	assignee := textinput.New()
	assignee.Placeholder = "Optional assignee"
	assignee.CharLimit = 100

	return CardForm{
		inputs: [fieldCount]textinput.Model{title, description, assignee},
	}
}

// SetValues pre-fills the draft, used when editing an existing card
func (f *CardForm) SetValues(title, description, assignee string) {
	f.inputs[FieldTitle].SetValue(title)
	f.inputs[FieldDescription].SetValue(description)
	f.inputs[FieldAssignee].SetValue(assignee)
	f.inputs[FieldTitle].CursorEnd()
}

// Focused returns the field currently receiving input
func (f *CardForm) Focused() FormField {
	return f.focused
}

// Focus moves input focus to the given field
func (f *CardForm) Focus(field FormField) {
	f.focused = field
	for i := range f.inputs {
		if FormField(i) == field {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

// Advance moves focus to the next field in the fixed order
// Title, Description, Assignee. It reports false when focus is already on
// the final field: there is no wrapping, that keypress means submission.
func (f *CardForm) Advance() bool {
	if f.focused == FieldAssignee {
		return false
	}
	f.Focus(f.focused + 1)
	return true
}

// Title returns the drafted title, trimmed
func (f *CardForm) Title() string {
	return strings.TrimSpace(f.inputs[FieldTitle].Value())
}

// Description returns the drafted description, trimmed
func (f *CardForm) Description() string {
	return strings.TrimSpace(f.inputs[FieldDescription].Value())
}

// Assignee returns the drafted assignee, trimmed
func (f *CardForm) Assignee() string {
	return strings.TrimSpace(f.inputs[FieldAssignee].Value())
}

// Update feeds a message to the focused field's input. Any printable key
// mutates the field directly: edit mode is implicit.
func (f *CardForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)
	return cmd
}

// View renders the labeled fields with the inline error, if any
func (f CardForm) View() string {
	var b strings.Builder

	for i := range f.inputs {
		label := fieldLabels[i]
		if FormField(i) == f.focused {
			b.WriteString(labelStyle.Render(label))
		} else {
			b.WriteString(blurredLabelStyle.Render(label))
		}
		b.WriteString("\n")
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n\n")
	}

	if f.Err != "" {
		b.WriteString(formErrorStyle.Render(f.Err))
		b.WriteString("\n")
	}

	return b.String()
}
