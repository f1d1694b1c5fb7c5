package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape of the configuration. The same struct is
// decoded from JSON, YAML and TOML.
type fileConfig struct {
	Todoist struct {
		APIToken       string   `json:"api_token" yaml:"api_token" toml:"api_token"`
		BaseURL        string   `json:"base_url" yaml:"base_url" toml:"base_url"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout" toml:"request_timeout"`
		ResourceTypes  []string `json:"resource_types" yaml:"resource_types" toml:"resource_types"`
	} `json:"todoist" yaml:"todoist" toml:"todoist"`

	Log struct {
		Level string `json:"level" yaml:"level" toml:"level"`
		File  string `json:"file" yaml:"file" toml:"file"`
	} `json:"log" yaml:"log" toml:"log"`

	Debug bool `json:"debug" yaml:"debug" toml:"debug"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &fileCfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fileCfg)
	case ".toml":
		err = toml.Unmarshal(data, &fileCfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	return &StructuredConfig{
		Todoist: Todoist{
			APIToken:       fileCfg.Todoist.APIToken,
			BaseURL:        fileCfg.Todoist.BaseURL,
			RequestTimeout: time.Duration(fileCfg.Todoist.RequestTimeout),
			ResourceTypes:  fileCfg.Todoist.ResourceTypes,
		},
		Log: Log{
			Level: fileCfg.Log.Level,
			File:  fileCfg.Log.File,
		},
		Debug: fileCfg.Debug,
	}, nil
}

// Duration is a time.Duration that decodes from strings like "1h" or "30s"
// in every supported file format. JSON numbers are taken as nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

// UnmarshalText is used by the YAML and TOML decoders.
func (d *Duration) UnmarshalText(text []byte) error {
	tmp, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
