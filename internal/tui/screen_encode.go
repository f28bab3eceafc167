// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/MKhiriev/fractal-cipher/internal/app"
	"github.com/MKhiriev/fractal-cipher/internal/imageio"
	"github.com/MKhiriev/fractal-cipher/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultOutputPath = models.DefaultFileName + ".png"

// encode form field indexes
const (
	encodeText = iota
	encodePassword
	encodeSeed
	encodeWidth
	encodeHeight
	encodeOutput
)

// EncodeModel is the "hide a message" page. Submitting runs the codec in a
// cancellable command while a spinner is shown; esc cancels a running
// encode and leaves the page otherwise.
type EncodeModel struct {
	ctx   context.Context
	codec Codec

	form    form
	spinner spinner.Model

	cancel  context.CancelFunc
	working bool
	errMsg  string
}

func NewEncodeModel(ctx context.Context, codec Codec) *EncodeModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	output := newFormField("Save to", defaultOutputPath, 512)
	output.input.SetValue(defaultOutputPath)

	return &EncodeModel{
		ctx:   ctx,
		codec: codec,
		form: newForm(
			newFormField("Message", "secret text", 0),
			newPasswordField("Password"),
			newFormField("Seed phrase", "FractalBloom", 128),
			newFormField("Width", "512", 5),
			newFormField("Height", "512", 5),
			output,
		),
		spinner: s,
	}
}

func (m *EncodeModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *EncodeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case encodeDoneMsg:
		m.finish()
		if msg.err != nil {
			m.errMsg = userMessage(msg.err)
			return m, nil
		}
		m.form.fields[encodeText].input.SetValue("")
		m.form.fields[encodePassword].input.SetValue("")
		return m, func() tea.Msg {
			return NavigateTo{Page: pageResult, Payload: showEncodedMsg{artifact: msg.artifact, path: msg.path}}
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
			req, path, err := m.request()
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.errMsg = ""
			return m, m.start(req, path)
		}
	}

	return m, m.form.update(msg)
}

func (m *EncodeModel) View() string {
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
		b.WriteString(" Deriving key and embedding...\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	hotKeys := "esc: back │ tab: next field │ enter: encode"
	if m.working {
		hotKeys = "esc: cancel"
	}
	return renderPage("HIDE A MESSAGE", strings.TrimRight(b.String(), "\n"), hotKeys)
}

// request validates the form. Empty width or height keep the codec
// defaults.
func (m *EncodeModel) request() (models.EncodeRequest, string, error) {
	req := models.EncodeRequest{
		Text:       strings.TrimSpace(m.form.value(encodeText)),
		Password:   strings.TrimSpace(m.form.value(encodePassword)),
		SeedPhrase: strings.TrimSpace(m.form.value(encodeSeed)),
	}
	if req.Text == "" {
		return req, "", errors.New(app.MsgNoText)
	}
	if req.Password == "" {
		return req, "", errors.New(app.MsgNoPassword)
	}

	var err error
	if req.Width, err = parseSide(m.form.value(encodeWidth)); err != nil {
		return req, "", err
	}
	if req.Height, err = parseSide(m.form.value(encodeHeight)); err != nil {
		return req, "", err
	}

	path := strings.TrimSpace(m.form.value(encodeOutput))
	if path == "" {
		path = defaultOutputPath
	}
	req.Format = imageio.FormatFromPath(path)

	return req, path, nil
}

func parseSide(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, errors.New(app.MsgImageSize)
	}
	return n, nil
}

func (m *EncodeModel) start(req models.EncodeRequest, path string) tea.Cmd {
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel
	m.working = true

	codec := m.codec
	run := func() tea.Msg {
		artifact, data, err := codec.Encode(ctx, req)
		if err != nil {
			return encodeDoneMsg{err: err}
		}
		if ctx.Err() != nil {
			return encodeDoneMsg{err: ctx.Err()}
		}
		if err = os.WriteFile(path, data, 0o644); err != nil {
			return encodeDoneMsg{err: fmt.Errorf("%w: %w", errImageFile, err)}
		}
		return encodeDoneMsg{artifact: artifact, path: path}
	}

	return tea.Batch(m.spinner.Tick, run)
}

func (m *EncodeModel) finish() {
	if m.cancel != nil {
		m.cancel()
	}
	m.cancel = nil
	m.working = false
}
