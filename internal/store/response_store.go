// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the in-memory snapshot of the last synchronisation and
// the lookup operations over it.
package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-task-sync/internal/adapter"
	"github.com/MKhiriev/go-task-sync/internal/logger"
	"github.com/MKhiriev/go-task-sync/internal/query"
	"github.com/MKhiriev/go-task-sync/models"
)

// ResponseStore keeps the response of the last successful sync and answers
// queries against it. The snapshot is replaced wholesale on every sync and
// never merged.
//
// Each method is safe to call from several goroutines, but a Sync running
// between two fetches changes what the second fetch sees. Callers that need a
// consistent view across calls must serialise access themselves.
type ResponseStore struct {
	client adapter.SyncClient

	mu       sync.RWMutex
	response models.Response
	synced   bool

	logger *logger.Logger
}

// NewResponseStore creates an empty store backed by client. Nothing is
// fetched until Sync is called.
func NewResponseStore(client adapter.SyncClient, log *logger.Logger) *ResponseStore {
	return &ResponseStore{
		client:   client,
		response: models.Response{},
		logger:   log.Component("store"),
	}
}

// Sync performs a synchronisation through the client and replaces the cached
// response with its result. Client errors are returned unchanged and leave
// the previous snapshot in place.
func (s *ResponseStore) Sync(ctx context.Context) error {
	log := s.loggerFor(ctx)

	response, err := s.client.Sync(ctx)
	if err != nil {
		log.Error().Err(err).Msg("sync failed")
		return err
	}
	if response == nil {
		response = models.Response{}
	}

	s.mu.Lock()
	s.response = response
	s.synced = true
	s.mu.Unlock()

	log.Debug().Strs("elements", response.Keys()).Msg("snapshot replaced")
	return nil
}

// Clear asks the client to drop its sync state so that the next Sync is a
// full one. The cached snapshot is kept: fetches keep answering from it until
// the next successful Sync.
func (s *ResponseStore) Clear(ctx context.Context) error {
	if err := s.client.ResetState(ctx); err != nil {
		s.loggerFor(ctx).Error().Err(err).Msg("reset sync state failed")
		return err
	}

	return nil
}

// Keys returns the sorted element-type names of the cached response. It is
// empty before the first sync.
func (s *ResponseStore) Keys() []string {
	return s.snapshot().Keys()
}

// Snapshot returns the cached response. The returned value is shared with the
// store and must be treated as read-only.
func (s *ResponseStore) Snapshot() models.Response {
	return s.snapshot()
}

// Synced reports whether at least one Sync has succeeded.
func (s *ResponseStore) Synced() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.synced
}

// Fetch returns the records of element that satisfy the options, in their
// original order, or the projected field values when [query.Field] is given.
//
//	store.Fetch("items", query.Where("project_id", 10))
//	store.Fetch("items", query.Field("content"), query.Where("project_id", 10, 20))
//
// Returns [ErrKeyNotFound] if element is not cached and [ErrFieldNotFound]
// if a matching record lacks the projected field.
func (s *ResponseStore) Fetch(element string, opts ...query.Option) ([]any, error) {
	return query.Select(s.snapshot(), query.New(element, opts...))
}

// FetchIndex runs Fetch and returns the match at index. ok is false when the
// result has no such position, including when nothing matched. A negative
// index counts from the end. Errors are those of Fetch.
func (s *ResponseStore) FetchIndex(element string, index int, opts ...query.Option) (value any, ok bool, err error) {
	found, err := s.Fetch(element, opts...)
	if err != nil {
		return nil, false, err
	}

	value, ok = query.At(found, index)
	return value, ok, nil
}

// FetchFirst is FetchIndex with index 0.
func (s *ResponseStore) FetchFirst(element string, opts ...query.Option) (value any, ok bool, err error) {
	return s.FetchIndex(element, 0, opts...)
}

// loggerFor prefers the logger carried by ctx, which holds the fields of
// the running command.
func (s *ResponseStore) loggerFor(ctx context.Context) *logger.Logger {
	if l := logger.FromContextOr(ctx, nil); l != nil {
		return l.Component("store")
	}
	return s.logger
}

func (s *ResponseStore) snapshot() models.Response {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.response
}
