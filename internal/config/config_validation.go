// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
)

var (
	cipherPolicies = []string{"aead", "xor"}
	kdfs           = []string{"pbkdf2", "argon2id"}
	dbDrivers      = []string{"sqlite3", "pgx"}
)

const minPBKDF2Iterations = 100_000

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.App.validate(); err != nil {
		return err
	}

	if !slices.Contains(dbDrivers, cfg.Storage.DB.Driver) {
		return fmt.Errorf("%w: unknown db driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}
	if cfg.Storage.DB.DSN == "" || cfg.Storage.Files.ArtifactDir == "" {
		return fmt.Errorf("%w: dsn and artifact dir are required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("%w: address, request timeout and upload limit are required", ErrInvalidServerConfigs)
	}

	if cfg.Workers.RetentionMaxAge < 0 || (cfg.Workers.RetentionMaxAge > 0 && cfg.Workers.RetentionInterval <= 0) {
		return fmt.Errorf("%w: retention needs a positive interval", ErrInvalidWorkerConfigs)
	}

	return nil
}

func (a App) validate() error {
	if !slices.Contains(cipherPolicies, a.CipherPolicy) {
		return fmt.Errorf("%w: unknown cipher policy %q", ErrInvalidAppConfigs, a.CipherPolicy)
	}
	if !slices.Contains(kdfs, a.KDF) {
		return fmt.Errorf("%w: unknown kdf %q", ErrInvalidAppConfigs, a.KDF)
	}
	if a.KDF == "pbkdf2" && a.KDFIterations < minPBKDF2Iterations {
		return fmt.Errorf("%w: kdf iterations %d below %d", ErrInvalidAppConfigs, a.KDFIterations, minPBKDF2Iterations)
	}
	if a.DefaultWidth <= 0 || a.DefaultHeight <= 0 {
		return fmt.Errorf("%w: default carrier size %dx%d", ErrInvalidAppConfigs, a.DefaultWidth, a.DefaultHeight)
	}
	if a.RenderWorkers < 0 {
		return fmt.Errorf("%w: negative render workers", ErrInvalidAppConfigs)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := cfg.App.validate(); err != nil {
		return err
	}

	if cfg.Adapter.HTTPAddress != "" && cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
