package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/fractal-cipher/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ResultModel shows the metadata panel after an encode or the recovered
// text after a decode. Decoded text can be copied to the clipboard.
type ResultModel struct {
	encoded *showEncodedMsg
	decoded *showDecodedMsg

	status string
}

func NewResultModel() *ResultModel {
	return &ResultModel{}
}

func (m *ResultModel) Init() tea.Cmd {
	return nil
}

func (m *ResultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case showEncodedMsg:
		m.encoded, m.decoded, m.status = &msg, nil, ""
		return m, nil
	case showDecodedMsg:
		m.encoded, m.decoded, m.status = nil, &msg, ""
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.status = errorStyle.Render("Copy failed: " + msg.err.Error())
		} else {
			m.status = successStyle.Render("Copied to clipboard.")
		}
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc), key.Matches(msg, keys.enter):
			m.status = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.copy):
			if m.decoded != nil {
				return m, cmdCopyToClipboard(m.decoded.response.Text)
			}
		}
	}
	return m, nil
}

func (m *ResultModel) View() string {
	switch {
	case m.encoded != nil:
		return renderPage("ENCODED", m.withStatus(renderArtifactPanel(m.encoded.artifact, m.encoded.path)), "enter/esc: menu")
	case m.decoded != nil:
		return renderPage("DECODED", m.withStatus(renderDecodedPanel(m.decoded.response, m.decoded.path)), "c: copy text │ enter/esc: menu")
	}
	return renderPage("RESULT", "", "esc: menu")
}

func (m *ResultModel) withStatus(body string) string {
	if m.status == "" {
		return body
	}
	return body + "\n\n" + m.status
}

func renderArtifactPanel(a models.Artifact, path string) string {
	var b strings.Builder
	const width = 10

	renderField(&b, "Status", width, successStyle.Render(a.Status))
	renderField(&b, "Length", width, strconv.Itoa(a.Length)+" chars")
	renderField(&b, "Seed", width, fmt.Sprintf("%.6f", a.Seed))
	renderField(&b, "Encryption", width, a.Encryption)
	renderField(&b, "Size", width, fmt.Sprintf("%d×%d %s", a.Width, a.Height, strings.ToUpper(string(a.Format))))
	renderField(&b, "Encoded", width, a.EncodedAt.Local().Format(time.DateTime))
	if path != "" {
		renderField(&b, "Saved to", width, path)
	}
	if a.ID != "" {
		renderField(&b, "ID", width, a.ID)
	}

	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func renderDecodedPanel(resp models.DecodeResponse, path string) string {
	var b strings.Builder
	const width = 6

	renderField(&b, "Status", width, successStyle.Render(resp.Status))
	renderField(&b, "Length", width, strconv.Itoa(resp.Length)+" chars")
	renderField(&b, "Image", width, path)

	return panelStyle.Render(strings.TrimRight(b.String(), "\n")) + "\n\n" + resp.Text
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
