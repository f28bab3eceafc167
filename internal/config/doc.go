// Package config loads the server and client configuration.
//
// Values come from four layers, later non-zero fields winning:
//  0. Built-in defaults (512×512 carriers, aead with PBKDF2, seed phrase
//     "FractalBloom", SQLite metadata store)
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// [GetStructuredConfig] serves the server and [GetClientConfig] the
// terminal client. The client runs the codec in-process unless an adapter
// address is configured.
package config
