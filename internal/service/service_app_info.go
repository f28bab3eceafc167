package service

import (
	"context"

	"github.com/MKhiriev/fractal-cipher/internal/config"
	"github.com/MKhiriev/fractal-cipher/internal/crypto"
	"github.com/MKhiriev/fractal-cipher/internal/logger"
	"github.com/MKhiriev/fractal-cipher/models"
)

type appInfoService struct {
	info models.ServerInfo

	logger *logger.Logger
}

// NewAppInfoService fixes the server description at startup; nothing it
// reports changes while the process runs.
func NewAppInfoService(cfg config.App, policy crypto.CipherPolicy, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		info: models.ServerInfo{
			Version:       cfg.Version,
			Encryption:    policy.Label(),
			Authenticated: policy.Authenticated(),
			DefaultWidth:  cfg.DefaultWidth,
			DefaultHeight: cfg.DefaultHeight,
			MaxSide:       MaxCarrierSide,
		},
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.info.Version
}

func (s *appInfoService) GetServerInfo(ctx context.Context) models.ServerInfo {
	return s.info
}
