package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/fractal-cipher/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const historyRows = 15

// HistoryModel lists recently encoded artifacts. It reloads every time the
// page is opened.
type HistoryModel struct {
	ctx   context.Context
	codec Codec

	spinner spinner.Model
	loading bool
	items   []models.Artifact
	idx     int
	errMsg  string
}

func NewHistoryModel(ctx context.Context, codec Codec) *HistoryModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &HistoryModel{ctx: ctx, codec: codec, spinner: s}
}

func (m *HistoryModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = userMessage(msg.err)
			return m, nil
		}
		m.items = msg.items
		if m.idx >= len(m.items) {
			m.idx = 0
		}
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.reload):
			return m, m.Init()
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.items)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.enter):
			if len(m.items) > 0 {
				item := m.items[m.idx]
				return m, func() tea.Msg {
					return NavigateTo{Page: pageResult, Payload: showEncodedMsg{artifact: item}}
				}
			}
		}
	}
	return m, nil
}

func (m *HistoryModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " Loading...")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	case len(m.items) == 0:
		b.WriteString("Nothing encoded yet.")
	default:
		b.WriteString(fmt.Sprintf("  %-19s │ %-9s │ %-6s │ %s\n", "Encoded", "Size", "Chars", "Encryption"))
		b.WriteString("  " + strings.Repeat("─", 19) + "─┼─" + strings.Repeat("─", 9) + "─┼─" + strings.Repeat("─", 6) + "─┼─" + strings.Repeat("─", 14) + "\n")
		for i, a := range m.items {
			if i >= historyRows {
				break
			}
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %-19s │ %-9s │ %-6d │ %s\n",
				cursor,
				a.EncodedAt.Local().Format(time.DateTime),
				fmt.Sprintf("%dx%d", a.Width, a.Height),
				a.Length,
				fitText(a.Encryption, 30),
			))
		}
	}

	return renderPage("RECENT IMAGES", strings.TrimRight(b.String(), "\n"), "enter: details │ r: reload │ esc: back")
}

func (m *HistoryModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	codec := m.codec
	return func() tea.Msg {
		items, err := codec.History(ctx)
		return historyLoadedMsg{items: items, err: err}
	}
}
