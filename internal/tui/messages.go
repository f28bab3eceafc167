package tui

import (
	"github.com/MKhiriev/fractal-cipher/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to
// the new page as a message right after its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

type quitMsg struct{}

// encodeDoneMsg reports the end of an encode started by the encode page.
type encodeDoneMsg struct {
	artifact models.Artifact
	path     string
	err      error
}

// decodeDoneMsg reports the end of a decode started by the decode page.
type decodeDoneMsg struct {
	response models.DecodeResponse
	path     string
	err      error
}

// showEncodedMsg and showDecodedMsg fill the result page.
type showEncodedMsg struct {
	artifact models.Artifact
	path     string
}

type showDecodedMsg struct {
	response models.DecodeResponse
	path     string
}

type historyLoadedMsg struct {
	items []models.Artifact
	err   error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
