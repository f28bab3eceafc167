// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client application runtime.
//
// It picks a codec backend from the configuration (in-process when no
// server address is set, the HTTP API otherwise) and runs the terminal UI
// on top of it.
package client
