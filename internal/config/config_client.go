package config

import (
	"fmt"
)

// ClientConfig is the top-level terminal client configuration assembled
// from [StructuredConfig].
type ClientConfig struct {
	// App contains the codec settings the client encodes and decodes with
	// in local mode.
	App App
	// Adapter contains the remote server address and timeout.
	Adapter Adapter
}

// Remote reports whether the client should talk to a server instead of
// running the codec in-process.
func (c *ClientConfig) Remote() bool {
	return c.Adapter.HTTPAddress != ""
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return clientConfigFrom(cfg)
}

func clientConfigFrom(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App:     cfg.App,
		Adapter: cfg.Adapter,
	}

	return clientCfg, clientCfg.validate()
}
