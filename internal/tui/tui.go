package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/fractal-cipher/internal/logger"
	"github.com/MKhiriev/fractal-cipher/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

// page names used with NavigateTo
const (
	pageMenu    = "menu"
	pageEncode  = "encode"
	pageDecode  = "decode"
	pageResult  = "result"
	pageHistory = "history"
)

type TUI struct {
	codec     Codec
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(codec Codec, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{codec: codec, buildInfo: buildInfo, logger: logger}
}

// Run shows the terminal UI until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(t.pages(ctx), pageMenu, t.buildInfo)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Info().Msg("user quit")
	}
	return nil
}

func (t *TUI) pages(ctx context.Context) map[string]tea.Model {
	return map[string]tea.Model{
		pageMenu:    NewMenuModel(t.codec.Mode()),
		pageEncode:  NewEncodeModel(ctx, t.codec),
		pageDecode:  NewDecodeModel(ctx, t.codec),
		pageResult:  NewResultModel(),
		pageHistory: NewHistoryModel(ctx, t.codec),
	}
}
