package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/MKhiriev/go-task-sync/internal/adapter"
	"github.com/MKhiriev/go-task-sync/internal/logger"
	"github.com/MKhiriev/go-task-sync/internal/mock"
	"github.com/MKhiriev/go-task-sync/internal/store"
	"github.com/MKhiriev/go-task-sync/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// helpers
// ─────────────────────────────────────────────

func sampleResponse() models.Response {
	return models.Response{
		"projects": {
			{"id": "p2", "name": "Work"},
			{"id": "p1", "name": "Inbox"},
			{"id": "p3", "name": "Homework"},
			{"id": "p4"},
		},
		"items": {
			{"id": "i1", "project_id": "p1", "content": "Buy milk"},
			{"id": "i2", "project_id": "p2", "content": "Write report"},
			{"id": "i3", "project_id": "p1", "content": "Call MOM"},
			{"id": "i4", "project_id": "p1", "content": 42},
		},
	}
}

func newTestService(t *testing.T) (TaskService, *mock.MockSyncClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mock.NewMockSyncClient(ctrl)
	responses := store.NewResponseStore(client, logger.Nop())

	return NewTaskService(responses, logger.Nop()), client
}

func newSyncedService(t *testing.T, resp models.Response) TaskService {
	t.Helper()
	svc, client := newTestService(t)

	gomock.InOrder(
		client.EXPECT().ResetState(gomock.Any()).Return(nil),
		client.EXPECT().Sync(gomock.Any()).Return(resp, nil),
	)
	require.NoError(t, svc.Sync(context.Background()))

	return svc
}

// ─────────────────────────────────────────────
// Sync
// ─────────────────────────────────────────────

func TestSync_ResetsStateBeforeSync(t *testing.T) {
	svc := newSyncedService(t, sampleResponse())

	assert.Equal(t, []string{"items", "projects"}, svc.Keys())
}

func TestSync_ResetError_SkipsSync(t *testing.T) {
	svc, client := newTestService(t)

	client.EXPECT().ResetState(gomock.Any()).Return(assert.AnError)

	err := svc.Sync(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, svc.Keys())
}

func TestSync_ClientError_ReturnedAndIndexUntouched(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	gomock.InOrder(
		client.EXPECT().ResetState(ctx).Return(nil),
		client.EXPECT().Sync(ctx).Return(sampleResponse(), nil),
		client.EXPECT().ResetState(ctx).Return(nil),
		client.EXPECT().Sync(ctx).Return(nil, adapter.ErrUnauthorized),
	)

	require.NoError(t, svc.Sync(ctx))
	err := svc.Sync(ctx)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)

	id, ok := svc.FindProjectID("Inbox")
	assert.True(t, ok)
	assert.Equal(t, "p1", id)
}

// ─────────────────────────────────────────────
// FindProjectID / FindProjects
// ─────────────────────────────────────────────

func TestFindProjectID(t *testing.T) {
	svc := newSyncedService(t, sampleResponse())

	tests := []struct {
		name   string
		input  string
		wantID any
		wantOK bool
	}{
		{name: "exact", input: "Work", wantID: "p2", wantOK: true},
		{name: "case matters", input: "work", wantOK: false},
		{name: "partial is not enough", input: "Wor", wantOK: false},
		{name: "unknown", input: "Garden", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := svc.FindProjectID(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestFindProjectID_DuplicateNames_FirstWins(t *testing.T) {
	svc := newSyncedService(t, models.Response{
		"projects": {
			{"id": 1, "name": "Same"},
			{"id": 2, "name": "Same"},
		},
	})

	id, ok := svc.FindProjectID("Same")
	require.True(t, ok)
	assert.Equal(t, 1, id)
}

func TestFindProjects_CaseInsensitiveSorted(t *testing.T) {
	svc := newSyncedService(t, sampleResponse())

	got := svc.FindProjects("WORK")

	assert.Equal(t, []models.Project{
		{ID: "p3", Name: "Homework"},
		{ID: "p2", Name: "Work"},
	}, got)
}

func TestFindProjects_EmptyPartial_ReturnsAllNamed(t *testing.T) {
	svc := newSyncedService(t, sampleResponse())

	got := svc.FindProjects("")

	require.Len(t, got, 3)
	assert.Equal(t, "Homework", got[0].Name)
	assert.Equal(t, "Inbox", got[1].Name)
	assert.Equal(t, "Work", got[2].Name)
}

func TestFindProjects_NoProjects(t *testing.T) {
	svc := newSyncedService(t, models.Response{"items": {}})

	got := svc.FindProjects("x")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// ─────────────────────────────────────────────
// FindProjectItems / FindItemsByContent
// ─────────────────────────────────────────────

func TestFindProjectItems(t *testing.T) {
	svc := newSyncedService(t, sampleResponse())

	got, err := svc.FindProjectItems("Inbox")
	require.NoError(t, err)

	ids := make([]any, 0, len(got))
	for _, r := range got {
		ids = append(ids, r["id"])
	}
	assert.Equal(t, []any{"i1", "i3", "i4"}, ids)
}

func TestFindProjectItems_UnknownProject_Empty(t *testing.T) {
	svc := newSyncedService(t, sampleResponse())

	got, err := svc.FindProjectItems("Garden")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFindProjectItems_NoItemsElement(t *testing.T) {
	svc := newSyncedService(t, models.Response{
		"projects": {{"id": 1, "name": "Inbox"}},
	})

	_, err := svc.FindProjectItems("Inbox")
	assert.ErrorIs(t, err, store.ErrKeyNotFound)
}

func TestFindProjectItems_BeforeSync(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.FindProjectItems("Inbox")
	assert.ErrorIs(t, err, ErrNotSynced)
}

func TestFindItemsByContent(t *testing.T) {
	svc := newSyncedService(t, sampleResponse())

	got, err := svc.FindItemsByContent("Inbox", "mom")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "i3", got[0]["id"])
}

func TestFindItemsByContent_OtherProjectIgnored(t *testing.T) {
	svc := newSyncedService(t, sampleResponse())

	got, err := svc.FindItemsByContent("Inbox", "report")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindItemsByContent_NonStringContentSkipped(t *testing.T) {
	svc := newSyncedService(t, sampleResponse())

	got, err := svc.FindItemsByContent("Inbox", "")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	responses := store.NewResponseStore(mock.NewMockSyncClient(ctrl), logger.Nop())

	svcs := NewServices(responses, logger.Nop())

	require.NotNil(t, svcs)
	var _ TaskService = svcs.TaskService
}

// ─────────────────────────────────────────────
// SearchProjectItems
// ─────────────────────────────────────────────

func TestSearchProjectItems_ProjectsContent(t *testing.T) {
	svc := newSyncedService(t, sampleResponse())

	got, err := svc.SearchProjectItems("Inbox", "[*].content")
	require.NoError(t, err)

	assert.Equal(t, []any{"Buy milk", "Call MOM", float64(42)}, got)
}

func TestSearchProjectItems_EmptyExpression_ReturnsItems(t *testing.T) {
	svc := newSyncedService(t, sampleResponse())

	got, err := svc.SearchProjectItems("Work", "")
	require.NoError(t, err)

	assert.Equal(t, []any{
		map[string]any{"id": "i2", "project_id": "p2", "content": "Write report"},
	}, got)
}

func TestSearchProjectItems_UnknownProject_Empty(t *testing.T) {
	svc := newSyncedService(t, sampleResponse())

	got, err := svc.SearchProjectItems("Garden", "[*].content")
	require.NoError(t, err)
	assert.Equal(t, []any{}, got)
}

func TestSearchProjectItems_InvalidExpression(t *testing.T) {
	svc := newSyncedService(t, sampleResponse())

	_, err := svc.SearchProjectItems("Garden", "[*.content")
	assert.ErrorIs(t, err, ErrInvalidExpression)
}

func TestSync_LogsThroughContextLogger(t *testing.T) {
	svc, client := newTestService(t)

	var buf bytes.Buffer
	ctxLogger := &logger.Logger{Logger: zerolog.New(&buf).Level(zerolog.InfoLevel)}
	ctx := ctxLogger.Field("command", "projects").WithContext(context.Background())

	gomock.InOrder(
		client.EXPECT().ResetState(ctx).Return(nil),
		client.EXPECT().Sync(ctx).Return(sampleResponse(), nil),
	)
	require.NoError(t, svc.Sync(ctx))

	assert.Contains(t, buf.String(), `"component":"task_service"`)
	assert.Contains(t, buf.String(), `"command":"projects"`)
	assert.Contains(t, buf.String(), "project index rebuilt")
}
