package handler

import (
	"testing"

	"github.com/MKhiriev/fractal-cipher/internal/config"
	"github.com/MKhiriev/fractal-cipher/internal/logger"
	"github.com/MKhiriev/fractal-cipher/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers(t *testing.T) {
	services := &service.Services{}

	t.Run("http address set", func(t *testing.T) {
		cfg := config.StructuredConfig{Server: config.Server{HTTPAddress: "localhost:0"}}

		handlers, err := NewHandlers(services, cfg, logger.Nop())

		require.NoError(t, err)
		assert.NotNil(t, handlers.HTTP)
	})

	t.Run("no address", func(t *testing.T) {
		handlers, err := NewHandlers(services, config.StructuredConfig{}, logger.Nop())

		assert.ErrorIs(t, err, errNoHandlersAreCreated)
		assert.Nil(t, handlers)
	})
}
