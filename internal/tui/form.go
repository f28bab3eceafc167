package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formField is a labelled text input.
type formField struct {
	label string
	input textinput.Model
}

func newFormField(label, placeholder string, charLimit int) formField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = charLimit
	in.Width = 44
	return formField{label: label, input: in}
}

func newPasswordField(label string) formField {
	f := newFormField(label, "password", 256)
	f.input.EchoMode = textinput.EchoPassword
	f.input.EchoCharacter = '*'
	return f
}

// form keeps focus over a list of fields.
type form struct {
	fields []formField
	focus  int
}

func newForm(fields ...formField) form {
	f := form{fields: fields}
	f.fields[0].input.Focus()
	return f
}

func (f *form) value(i int) string {
	return f.fields[i].input.Value()
}

func (f *form) focusNext() {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + 1) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

func (f *form) focusPrev() {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus - 1 + len(f.fields)) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

func (f *form) labelWidth() int {
	w := 0
	for _, field := range f.fields {
		if len(field.label) > w {
			w = len(field.label)
		}
	}
	return w
}
