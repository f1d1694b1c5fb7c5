package config

import "errors"

// Errors returned while loading and validating configuration.
var (
	// ErrMissingAPIToken indicates that no Todoist API token was provided by
	// any source.
	ErrMissingAPIToken = errors.New("todoist api token is not set")
	// ErrInvalidTodoistConfigs indicates invalid Todoist client settings
	// (for example, an empty base URL or a non-positive request timeout).
	ErrInvalidTodoistConfigs = errors.New("invalid todoist configuration")
	// ErrUnsupportedConfigFormat indicates a config file whose extension is
	// not .json, .yaml, .yml or .toml.
	ErrUnsupportedConfigFormat = errors.New("unsupported config file format")
)
