// Package config provides configuration loading, merging, and validation
// facilities for the vault.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Command-line flags
//  2. Environment variables (prefixed with GOPASS_)
//  3. JSON or YAML config file
//  4. Built-in defaults
//
// The main entry point is [GetConfig].
package config
