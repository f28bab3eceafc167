package config

import "time"

// Built-in defaults applied before any other source.
const (
	DefaultVersion           = "0.1.0"
	DefaultCipherPolicy      = "aead"
	DefaultKDF               = "pbkdf2"
	DefaultKDFIterations     = 100_000
	DefaultCarrierWidth      = 512
	DefaultCarrierHeight     = 512
	DefaultSeedPhrase        = "FractalBloom"
	DefaultHTTPAddress       = "localhost:8080"
	DefaultRequestTimeout    = 30 * time.Second
	DefaultMaxUploadBytes    = 32 << 20
	DefaultDBDriver          = "sqlite3"
	DefaultDBDSN             = "data/artifacts.db"
	DefaultArtifactDir       = "data/artifacts"
	DefaultRetentionInterval = time.Hour
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:           DefaultVersion,
			CipherPolicy:      DefaultCipherPolicy,
			KDF:               DefaultKDF,
			KDFIterations:     DefaultKDFIterations,
			DefaultWidth:      DefaultCarrierWidth,
			DefaultHeight:     DefaultCarrierHeight,
			DefaultSeedPhrase: DefaultSeedPhrase,
		},
		Storage: Storage{
			DB:    DB{Driver: DefaultDBDriver, DSN: DefaultDBDSN},
			Files: Files{ArtifactDir: DefaultArtifactDir},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			MaxUploadBytes: DefaultMaxUploadBytes,
		},
		Adapter: Adapter{
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			RetentionInterval: DefaultRetentionInterval,
		},
	}
}
