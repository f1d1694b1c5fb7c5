package config

import (
	"github.com/spf13/pflag"
)

// BindFlags registers the configuration flags on fs and returns the config
// they populate once fs is parsed. Unset flags stay zero so they never
// override other sources.
//
// Flags:
//
//	-c, --config      config file path (JSON, YAML or TOML)
//	    --token       Todoist API token
//	    --base-url    Sync API root URL
//	    --timeout     request timeout (e.g. "15s", "1m")
//	    --resources   resource types to sync (comma separated)
//	    --log-level   log level (debug, info, warn, error)
//	    --log-file    rotating log file path
//	    --debug       shorthand for --log-level=debug
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVarP(&cfg.ConfigFilePath, "config", "c", "", "Config file path (JSON, YAML or TOML)")
	fs.StringVar(&cfg.Todoist.APIToken, "token", "", "Todoist API token")
	fs.StringVar(&cfg.Todoist.BaseURL, "base-url", "", "Todoist Sync API root URL")
	fs.DurationVar(&cfg.Todoist.RequestTimeout, "timeout", 0, "Request timeout (e.g. 15s, 1m)")
	fs.StringSliceVar(&cfg.Todoist.ResourceTypes, "resources", nil, "Resource types to sync (e.g. projects,items)")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.Log.File, "log-file", "", "Rotating log file path")
	fs.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging")

	return cfg
}
