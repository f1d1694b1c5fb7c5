// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer that talks to the remote task
// manager.
//
// The primary abstraction is [SyncClient], which hides how a full or
// incremental synchronisation is performed. The package ships an HTTP
// implementation for the Todoist Sync API ([NewTodoistSyncClient]).
//
// HTTP status codes are mapped to the sentinel errors in errors.go by
// mapHTTPError so that callers can use [errors.Is] without knowing the
// transport (e.g. [ErrUnauthorized] for 401, [ErrTooManyRequests] for 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-task-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/sync_client_mock.go -package=mock

// SyncClient performs synchronisation against the remote task manager.
type SyncClient interface {
	// Sync fetches the current state from the server and returns it as a
	// [models.Response]. The first call, and the first call after
	// ResetState, performs a full sync; later calls may be incremental.
	Sync(ctx context.Context) (models.Response, error)

	// ResetState discards the sync cursor kept by the client so that the
	// next Sync is a full one.
	ResetState(ctx context.Context) error
}
