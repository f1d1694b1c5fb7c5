// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/go-task-sync/internal/adapter"
	"github.com/MKhiriev/go-task-sync/internal/logger"
	"github.com/MKhiriev/go-task-sync/internal/mock"
	"github.com/MKhiriev/go-task-sync/internal/query"
	"github.com/MKhiriev/go-task-sync/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func scenarioResponse() models.Response {
	return models.Response{
		"items": {
			{"id": 1, "project_id": 10, "content": "a"},
			{"id": 2, "project_id": 20, "content": "b"},
		},
		"projects": {
			{"id": 10, "name": "Inbox"},
			{"id": 20, "name": "Work"},
		},
	}
}

// newSyncedStore returns a store that has completed one sync of resp.
func newSyncedStore(t *testing.T, resp models.Response) (*ResponseStore, *mock.MockSyncClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mock.NewMockSyncClient(ctrl)
	s := NewResponseStore(client, logger.Nop())

	client.EXPECT().Sync(gomock.Any()).Return(resp, nil)
	require.NoError(t, s.Sync(context.Background()))

	return s, client
}

// ── Sync / Keys ──────────────────────────────────────────────────────────────

// TestKeys_BeforeSync verifies an unsynchronised store has no keys.
func TestKeys_BeforeSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := NewResponseStore(mock.NewMockSyncClient(ctrl), logger.Nop())

	keys := s.Keys()
	assert.NotNil(t, keys)
	assert.Empty(t, keys)
	assert.False(t, s.Synced())
}

func TestKeys_AfterSyncAreSorted(t *testing.T) {
	s, _ := newSyncedStore(t, scenarioResponse())

	assert.Equal(t, []string{"items", "projects"}, s.Keys())
	assert.True(t, s.Synced())
}

// TestSync_ReplacesWholesale verifies that element types missing from the
// second response disappear instead of being merged.
func TestSync_ReplacesWholesale(t *testing.T) {
	s, client := newSyncedStore(t, scenarioResponse())

	client.EXPECT().Sync(gomock.Any()).Return(models.Response{
		"labels": {{"id": 1, "name": "urgent"}},
	}, nil)
	require.NoError(t, s.Sync(context.Background()))

	assert.Equal(t, []string{"labels"}, s.Keys())
	_, err := s.Fetch("items")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

// TestSync_ErrorIsReturnedUnchanged verifies the client error is neither
// wrapped nor reclassified and the previous snapshot survives.
func TestSync_ErrorIsReturnedUnchanged(t *testing.T) {
	s, client := newSyncedStore(t, scenarioResponse())

	client.EXPECT().Sync(gomock.Any()).Return(nil, adapter.ErrUnauthorized)
	err := s.Sync(context.Background())

	assert.Same(t, adapter.ErrUnauthorized, err)
	assert.Equal(t, []string{"items", "projects"}, s.Keys())
}

func TestSync_NilResponseBecomesEmpty(t *testing.T) {
	s, _ := newSyncedStore(t, nil)

	assert.Empty(t, s.Keys())
	assert.NotNil(t, s.Snapshot())
	assert.True(t, s.Synced())
}

// ── Clear ────────────────────────────────────────────────────────────────────

// TestClear_KeepsSnapshot verifies Clear resets the client state but leaves
// the cached response queryable until the next sync.
func TestClear_KeepsSnapshot(t *testing.T) {
	s, client := newSyncedStore(t, scenarioResponse())

	client.EXPECT().ResetState(gomock.Any()).Return(nil)
	require.NoError(t, s.Clear(context.Background()))

	got, err := s.Fetch("items")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestClear_ErrorIsReturnedUnchanged(t *testing.T) {
	s, client := newSyncedStore(t, scenarioResponse())

	client.EXPECT().ResetState(gomock.Any()).Return(assert.AnError)
	assert.Same(t, assert.AnError, s.Clear(context.Background()))
}

// TestClear_ThenSync verifies the call order a caller uses to force a full
// resync.
func TestClear_ThenSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockSyncClient(ctrl)
	s := NewResponseStore(client, logger.Nop())
	ctx := context.Background()

	gomock.InOrder(
		client.EXPECT().ResetState(ctx).Return(nil),
		client.EXPECT().Sync(ctx).Return(scenarioResponse(), nil),
	)

	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Sync(ctx))
	assert.Equal(t, []string{"items", "projects"}, s.Keys())
}

// ── Fetch ────────────────────────────────────────────────────────────────────

func TestFetch_NoFiltersReturnsEverything(t *testing.T) {
	resp := scenarioResponse()
	s, _ := newSyncedStore(t, resp)

	got, err := s.Fetch("items")
	require.NoError(t, err)

	want := []any{resp["items"][0], resp["items"][1]}
	assert.Equal(t, want, got)
}

func TestFetch_Scenario(t *testing.T) {
	s, _ := newSyncedStore(t, scenarioResponse())

	got, err := s.Fetch("items", query.Where("project_id", 10))
	require.NoError(t, err)
	assert.Equal(t, []any{models.Record{"id": 1, "project_id": 10, "content": "a"}}, got)

	got, err = s.Fetch("items", query.Field("content"), query.Where("project_id", 10, 20))
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, got)
}

func TestFetch_EmptyFiltersMatchEverything(t *testing.T) {
	s, _ := newSyncedStore(t, scenarioResponse())

	got, err := s.Fetch("projects", query.WithFilters(models.Filters{}))
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestFetch_MatchAny(t *testing.T) {
	s, _ := newSyncedStore(t, scenarioResponse())

	got, err := s.Fetch("items",
		query.Field("id"),
		query.WithFilters(models.Filters{"project_id": 20, "content": "a"}),
		query.MatchAny(),
	)
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2}, got)
}

func TestFetch_KeyNotFound(t *testing.T) {
	s, _ := newSyncedStore(t, scenarioResponse())

	_, err := s.Fetch("notes")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestFetch_BeforeSyncIsKeyNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := NewResponseStore(mock.NewMockSyncClient(ctrl), logger.Nop())

	_, err := s.Fetch("items")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestFetch_FieldNotFound(t *testing.T) {
	s, _ := newSyncedStore(t, scenarioResponse())

	_, err := s.Fetch("items", query.Field("due"))
	assert.ErrorIs(t, err, ErrFieldNotFound)
}

// ── FetchIndex / FetchFirst ─────────────────────────────────────────────────

func TestFetchIndex(t *testing.T) {
	s, _ := newSyncedStore(t, scenarioResponse())

	got, ok, err := s.FetchIndex("items", 1, query.Field("content"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "b", got)
}

// TestFetchIndex_OutOfRangeIsAbsent verifies that an index beyond the
// filtered result is reported as absent, not as an error.
func TestFetchIndex_OutOfRangeIsAbsent(t *testing.T) {
	s, _ := newSyncedStore(t, scenarioResponse())

	got, ok, err := s.FetchIndex("items", 5)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestFetchIndex_PropagatesErrors(t *testing.T) {
	s, _ := newSyncedStore(t, scenarioResponse())

	_, ok, err := s.FetchIndex("items", 0, query.Field("due"))
	assert.ErrorIs(t, err, ErrFieldNotFound)
	assert.False(t, ok)
}

func TestFetchFirst_Scenario(t *testing.T) {
	s, _ := newSyncedStore(t, scenarioResponse())

	got, ok, err := s.FetchFirst("items", query.Where("project_id", 99))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)

	got, ok, err = s.FetchFirst("projects", query.Field("name"), query.Where("id", 20))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Work", got)
}

// TestFetchFirst_EqualsFetchIndexZero checks FetchFirst against FetchIndex
// with index 0 for a range of queries.
func TestFetchFirst_EqualsFetchIndexZero(t *testing.T) {
	s, _ := newSyncedStore(t, scenarioResponse())

	cases := []struct {
		element string
		opts    []query.Option
	}{
		{element: "items"},
		{element: "items", opts: []query.Option{query.Field("content")}},
		{element: "items", opts: []query.Option{query.Where("project_id", 20)}},
		{element: "items", opts: []query.Option{query.Where("project_id", 99)}},
		{element: "projects", opts: []query.Option{query.Field("name"), query.Where("id", 10, 20), query.MatchAny()}},
		{element: "missing"},
		{element: "items", opts: []query.Option{query.Field("missing")}},
	}

	for _, c := range cases {
		first, firstOK, firstErr := s.FetchFirst(c.element, c.opts...)
		at, atOK, atErr := s.FetchIndex(c.element, 0, c.opts...)

		assert.Equal(t, at, first)
		assert.Equal(t, atOK, firstOK)
		assert.Equal(t, atErr, firstErr)
	}
}

// TestSync_LogsThroughContextLogger verifies that a logger attached to the
// context is preferred over the store's own logger.
func TestSync_LogsThroughContextLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockSyncClient(ctrl)
	s := NewResponseStore(client, logger.Nop())

	var buf bytes.Buffer
	ctxLogger := &logger.Logger{Logger: zerolog.New(&buf).Level(zerolog.DebugLevel)}
	ctx := ctxLogger.Field("command", "keys").WithContext(context.Background())

	client.EXPECT().Sync(ctx).Return(scenarioResponse(), nil)
	require.NoError(t, s.Sync(ctx))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "snapshot replaced", entry["message"])
	assert.Equal(t, "keys", entry["command"])
	assert.Equal(t, "store", entry["component"])
}
