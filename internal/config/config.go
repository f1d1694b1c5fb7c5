// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Defaults applied before any other source.
const (
	DefaultBaseURL        = "https://api.todoist.com/sync/v9"
	DefaultRequestTimeout = 15 * time.Second
)

// DefaultResourceTypes asks the Sync API for every resource type.
var DefaultResourceTypes = []string{"all"}

// StructuredConfig is the top-level configuration container for the
// go-task-sync application. It aggregates all sub-configurations and is
// populated by merging defaults, an optional config file, environment
// variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Todoist holds the remote API settings.
	Todoist Todoist `envPrefix:"TODOIST_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// Debug forces the debug log level when Log.Level is not set.
	// Env: DEBUG
	Debug bool `env:"DEBUG"`

	// ConfigFilePath is the optional path to a JSON, YAML or TOML
	// configuration file. The format is chosen by file extension.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// Todoist holds the settings of the Todoist Sync API client.
type Todoist struct {
	// APIToken is the personal API token sent as a bearer token.
	// Must be kept confidential.
	// Env: TODOIST_API_TOKEN
	APIToken string `env:"API_TOKEN"`

	// BaseURL is the Sync API root, e.g. "https://api.todoist.com/sync/v9".
	// Env: TODOIST_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single sync round-trip (e.g. "15s").
	// Env: TODOIST_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ResourceTypes lists the resource types requested on every sync,
	// comma separated in the environment (e.g. "projects,items").
	// Env: TODOIST_RESOURCE_TYPES
	ResourceTypes []string `env:"RESOURCE_TYPES"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn"...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File, when set, receives a rotated copy of every log entry.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads and merges the application configuration from
// all available sources in the following priority order (later sources win
// for non-zero fields):
//  1. Built-in defaults
//  2. Config file (path resolved from sources 3 and 4)
//  3. Environment variables, including a .env file in the working directory
//  4. Command-line flags (flags may be nil)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags(flags).
		withFile().
		build()
}
