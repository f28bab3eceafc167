// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is what cmd/client runs: [App] in either local or remote mode.
type Client interface {
	// Run blocks until the user quits.
	Run() error
}

var _ Client = (*App)(nil)
