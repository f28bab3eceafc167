package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*StructuredConfig) {}},
		{
			name:   "argon2id ignores iterations",
			mutate: func(cfg *StructuredConfig) { cfg.App.KDF = "argon2id"; cfg.App.KDFIterations = 0 },
		},
		{
			name:    "unknown policy",
			mutate:  func(cfg *StructuredConfig) { cfg.App.CipherPolicy = "des" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unknown kdf",
			mutate:  func(cfg *StructuredConfig) { cfg.App.KDF = "md5" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "too few pbkdf2 iterations",
			mutate:  func(cfg *StructuredConfig) { cfg.App.KDFIterations = 99_999 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "zero carrier size",
			mutate:  func(cfg *StructuredConfig) { cfg.App.DefaultWidth = 0 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "mysql" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "empty dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing upload limit",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.MaxUploadBytes = 0 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name: "retention without interval",
			mutate: func(cfg *StructuredConfig) {
				cfg.Workers.RetentionMaxAge = time.Hour
				cfg.Workers.RetentionInterval = 0
			},
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfigFrom(t *testing.T) {
	cfg := defaults()
	cfg.Adapter.HTTPAddress = "localhost:8080"

	clientCfg, err := clientConfigFrom(cfg)
	require.NoError(t, err)
	assert.True(t, clientCfg.Remote())
	assert.Equal(t, cfg.App, clientCfg.App)

	cfg.Adapter.RequestTimeout = 0
	_, err = clientConfigFrom(cfg)
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)

	cfg.Adapter = Adapter{}
	clientCfg, err = clientConfigFrom(cfg)
	require.NoError(t, err)
	assert.False(t, clientCfg.Remote())
}
