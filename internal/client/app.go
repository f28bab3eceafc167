package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/fractal-cipher/internal/adapter"
	"github.com/MKhiriev/fractal-cipher/internal/config"
	"github.com/MKhiriev/fractal-cipher/internal/crypto"
	"github.com/MKhiriev/fractal-cipher/internal/logger"
	"github.com/MKhiriev/fractal-cipher/internal/render"
	"github.com/MKhiriev/fractal-cipher/internal/service"
	"github.com/MKhiriev/fractal-cipher/internal/tui"
	"github.com/MKhiriev/fractal-cipher/models"
)

const infoCheckTimeout = 5 * time.Second

// App is the terminal client: a codec backend with the TUI on top.
type App struct {
	tui    *tui.TUI
	remote *remoteCodec
	logger *logger.Logger
}

// NewApp builds the client for cfg. Without an adapter address the codec
// runs in-process with cfg.App settings.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	app := &App{logger: logger}

	var codec tui.Codec
	if cfg.Remote() {
		serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App.HashKey, logger)
		if err != nil {
			return nil, fmt.Errorf("error creating server adapter: %w", err)
		}
		app.remote = newRemoteCodec(serverAdapter, cfg.Adapter.HTTPAddress, logger)
		codec = app.remote
	} else {
		composer, err := newLocalComposer(cfg.App, logger)
		if err != nil {
			return nil, err
		}
		codec = newLocalCodec(composer)
	}

	app.tui = tui.New(codec, buildInfo, logger)
	return app, nil
}

func newLocalComposer(cfg config.App, logger *logger.Logger) (service.Composer, error) {
	policy, err := crypto.NewPolicy(cfg.CipherPolicy, cfg.KDF, cfg.KDFIterations)
	if err != nil {
		return nil, fmt.Errorf("error creating cipher policy: %w", err)
	}

	stego := service.NewStegoService(policy, logger)
	renderer := render.NewJuliaRenderer(cfg.RenderWorkers)
	return service.NewComposer(stego, renderer, cfg, logger), nil
}

// Run shows the TUI until the user quits or the process gets SIGINT or
// SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.remote != nil {
		a.checkServer(ctx)
	}

	if err := a.tui.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("error running tui: %w", err)
	}
	return nil
}

// checkServer asks the server how it encodes so the menu can show it. An
// unreachable server is not fatal: every operation reports it again.
func (a *App) checkServer(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, infoCheckTimeout)
	defer cancel()

	info, err := a.remote.adapter.Info(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("server info request failed")
		return
	}
	a.remote.encryption = info.Encryption
	a.logger.Info().
		Str("server_version", info.Version).
		Str("encryption", info.Encryption).
		Msg("connected to server")
}
