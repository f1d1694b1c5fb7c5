// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"github.com/MKhiriev/go-task-sync/internal/adapter"
	"github.com/MKhiriev/go-task-sync/internal/config"
	"github.com/MKhiriev/go-task-sync/internal/logger"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command given on the process command line and
	// blocks until it finishes.
	Run() error
}

// SyncClientFactory creates the sync client once configuration is known.
// [adapter.NewTodoistSyncClient] is the production factory.
type SyncClientFactory func(cfg config.ClientTodoist, log *logger.Logger) (adapter.SyncClient, error)
