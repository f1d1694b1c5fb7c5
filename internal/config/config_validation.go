// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the merged [StructuredConfig] is internally
// consistent. Requirements that only the client runtime has (such as the API
// token) are checked by [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.Todoist.RequestTimeout < 0 {
		return ErrInvalidTodoistConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Todoist.APIToken) == "" {
		return ErrMissingAPIToken
	}

	if strings.TrimSpace(cfg.Todoist.BaseURL) == "" || cfg.Todoist.RequestTimeout <= 0 {
		return ErrInvalidTodoistConfigs
	}

	return nil
}
