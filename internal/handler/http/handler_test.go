package http

import (
	"testing"
	"time"

	"github.com/MKhiriev/fractal-cipher/internal/config"
	"github.com/MKhiriev/fractal-cipher/internal/logger"
	"github.com/MKhiriev/fractal-cipher/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestNewHandler(t *testing.T) {
	services := &service.Services{AppInfoService: &fakeAppInfoSvc{}}

	t.Run("without hash key", func(t *testing.T) {
		cfg := config.StructuredConfig{Server: config.Server{MaxUploadBytes: 1024, RequestTimeout: time.Second}}

		h := NewHandler(services, cfg, logger.Nop())

		assert.Nil(t, h.hasher)
		assert.Equal(t, int64(1024), h.maxUploadBytes)
		assert.Equal(t, time.Second, h.requestTimeout)
		assert.NotNil(t, h.Init())
	})

	t.Run("with hash key", func(t *testing.T) {
		cfg := config.StructuredConfig{App: config.App{HashKey: "k"}}

		h := NewHandler(services, cfg, logger.Nop())

		assert.NotNil(t, h.hasher)
	})
}
