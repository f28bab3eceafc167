package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/fractal-cipher/internal/app"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// decode form field indexes
const (
	decodeImage = iota
	decodePassword
)

// DecodeModel is the "reveal a message" page.
type DecodeModel struct {
	ctx   context.Context
	codec Codec

	form    form
	spinner spinner.Model

	cancel  context.CancelFunc
	working bool
	errMsg  string
}

func NewDecodeModel(ctx context.Context, codec Codec) *DecodeModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &DecodeModel{
		ctx:   ctx,
		codec: codec,
		form: newForm(
			newFormField("Image file", "fractal_cipher.png", 512),
			newPasswordField("Password"),
		),
		spinner: s,
	}
}

func (m *DecodeModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *DecodeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case decodeDoneMsg:
		m.finish()
		if msg.err != nil {
			m.errMsg = userMessage(msg.err)
			return m, nil
		}
		m.form.fields[decodePassword].input.SetValue("")
		return m, func() tea.Msg {
			return NavigateTo{Page: pageResult, Payload: showDecodedMsg{response: msg.response, path: msg.path}}
		}
	case spinner.TickMsg:
		if !m.working {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if m.working {
			if key.Matches(msg, keys.esc) {
				m.cancel()
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.esc):
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.tab):
			m.form.focusNext()
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.form.focusPrev()
			return m, nil
		case key.Matches(msg, keys.enter):
			path := strings.TrimSpace(m.form.value(decodeImage))
			password := strings.TrimSpace(m.form.value(decodePassword))
			if path == "" {
				m.errMsg = app.MsgNoImage
				return m, nil
			}
			if password == "" {
				m.errMsg = app.MsgNoPassword
				return m, nil
			}
			m.errMsg = ""
			return m, m.start(path, password)
		}
	}

	return m, m.form.update(msg)
}

func (m *DecodeModel) View() string {
	var b strings.Builder
	width := m.form.labelWidth()

	for i, field := range m.form.fields {
		value := "[" + field.input.View() + "]"
		if i == m.form.focus {
			value = "> " + value
		} else {
			value = "  " + value
		}
		renderField(&b, field.label, width, value)
	}

	b.WriteString("\n")
	if m.working {
		b.WriteString(m.spinner.View())
		b.WriteString(" Deriving key and extracting...\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	hotKeys := "esc: back │ tab: next field │ enter: decode"
	if m.working {
		hotKeys = "esc: cancel"
	}
	return renderPage("REVEAL A MESSAGE", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *DecodeModel) start(path, password string) tea.Cmd {
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel
	m.working = true

	codec := m.codec
	run := func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return decodeDoneMsg{err: fmt.Errorf("%w: %w", errImageFile, err)}
		}
		resp, err := codec.Decode(ctx, data, password)
		if err != nil {
			return decodeDoneMsg{err: err}
		}
		if ctx.Err() != nil {
			return decodeDoneMsg{err: errors.Join(errCancelled, ctx.Err())}
		}
		return decodeDoneMsg{response: resp, path: path}
	}

	return tea.Batch(m.spinner.Tick, run)
}

func (m *DecodeModel) finish() {
	if m.cancel != nil {
		m.cancel()
	}
	m.cancel = nil
	m.working = false
}
