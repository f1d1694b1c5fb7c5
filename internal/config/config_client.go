package config

import (
	"fmt"
	"slices"
	"time"
)

// ClientTodoist holds the settings used by the Todoist sync client.
type ClientTodoist struct {
	// APIToken is the bearer token sent with every request.
	APIToken string
	// BaseURL is the Sync API root.
	BaseURL string
	// RequestTimeout is the timeout of a single sync round-trip.
	RequestTimeout time.Duration
	// ResourceTypes lists the resource types requested on every sync.
	ResourceTypes []string
}

// ClientLog holds the resolved logging settings.
type ClientLog struct {
	// Level is the effective log level name.
	Level string
	// File is the optional rotating log file.
	File string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Todoist contains the remote API settings.
	Todoist ClientTodoist
	// Log contains logging settings.
	Log ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig(flags *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	level := cfg.Log.Level
	if level == "" && cfg.Debug {
		level = "debug"
	}

	return &ClientConfig{
		Todoist: ClientTodoist{
			APIToken:       cfg.Todoist.APIToken,
			BaseURL:        cfg.Todoist.BaseURL,
			RequestTimeout: cfg.Todoist.RequestTimeout,
			ResourceTypes:  slices.Clone(cfg.Todoist.ResourceTypes),
		},
		Log: ClientLog{
			Level: level,
			File:  cfg.Log.File,
		},
	}
}
