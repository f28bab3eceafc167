package service

import (
	"fmt"

	"github.com/MKhiriev/fractal-cipher/internal/config"
	"github.com/MKhiriev/fractal-cipher/internal/crypto"
	"github.com/MKhiriev/fractal-cipher/internal/logger"
	"github.com/MKhiriev/fractal-cipher/internal/render"
	"github.com/MKhiriev/fractal-cipher/internal/store"
)

type Services struct {
	StegoService    StegoService
	ArtifactService ArtifactService
	AppInfoService  AppInfoService
}

// NewServices builds the cipher policy from cfg.App and wires every service
// on top of storages.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	policy, err := crypto.NewPolicy(cfg.App.CipherPolicy, cfg.App.KDF, cfg.App.KDFIterations)
	if err != nil {
		return nil, fmt.Errorf("error building cipher policy: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, policy, logger)
	if err != nil {
		return nil, err
	}

	stego := NewStegoService(policy, logger)
	renderer := render.NewJuliaRenderer(cfg.App.RenderWorkers)

	return &Services{
		StegoService:    stego,
		ArtifactService: NewArtifactService(stego, renderer, storages, cfg.App, logger),
		AppInfoService:  appInfo,
	}, nil
}
