// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/MKhiriev/go-task-sync/internal/logger"
	"github.com/MKhiriev/go-task-sync/internal/query"
	"github.com/MKhiriev/go-task-sync/internal/store"
	"github.com/MKhiriev/go-task-sync/models"
	"golang.org/x/text/cases"
)

type taskService struct {
	responses *store.ResponseStore

	mu       sync.RWMutex
	projects []models.Project
	ids      map[string]any
	synced   bool

	logger *logger.Logger
}

// NewTaskService creates a TaskService over responses. The project index is
// empty until the first Sync.
func NewTaskService(responses *store.ResponseStore, logger *logger.Logger) TaskService {
	return &taskService{
		responses: responses,
		ids:       map[string]any{},
		logger:    logger.Component("task_service"),
	}
}

// Sync always asks for a full sync: the store replaces its snapshot with
// whatever the client returns, so a partial response would hide the
// elements it does not mention.
func (s *taskService) Sync(ctx context.Context) error {
	if err := s.responses.Clear(ctx); err != nil {
		return err
	}
	if err := s.responses.Sync(ctx); err != nil {
		return err
	}

	projects, ids := buildProjectIndex(s.responses.Snapshot())

	s.mu.Lock()
	s.projects = projects
	s.ids = ids
	s.synced = true
	s.mu.Unlock()

	log := s.logger
	if l := logger.FromContextOr(ctx, nil); l != nil {
		log = l.Component("task_service")
	}
	log.Info().Int("projects", len(projects)).Msg("project index rebuilt")
	return nil
}

func (s *taskService) Keys() []string {
	return s.responses.Keys()
}

func (s *taskService) FindProjectID(name string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.ids[name]
	return id, ok
}

func (s *taskService) FindProjects(partial string) []models.Project {
	fold := cases.Fold()
	needle := fold.String(partial)

	s.mu.RLock()
	defer s.mu.RUnlock()

	found := make([]models.Project, 0)
	for _, p := range s.projects {
		if strings.Contains(fold.String(p.Name), needle) {
			found = append(found, p)
		}
	}

	return found
}

func (s *taskService) FindProjectItems(projectName string) ([]models.Record, error) {
	if err := s.checkSynced(); err != nil {
		return nil, err
	}

	id, ok := s.FindProjectID(projectName)
	if !ok {
		s.logger.Debug().Str("project", projectName).Msg("unknown project")
		return []models.Record{}, nil
	}

	found, err := s.responses.Fetch(models.ElementItems, query.Where("project_id", id))
	if err != nil {
		return nil, fmt.Errorf("fetch items of project %q: %w", projectName, err)
	}

	return toRecords(found)
}

func (s *taskService) SearchProjectItems(projectName, expression string) (any, error) {
	if _, err := CompileExpression(expression); err != nil {
		return nil, err
	}

	items, err := s.FindProjectItems(projectName)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []any{}, nil
	}

	return SearchRecords(items, expression)
}

func (s *taskService) FindItemsByContent(projectName, partialContent string) ([]models.Record, error) {
	items, err := s.FindProjectItems(projectName)
	if err != nil {
		return nil, err
	}

	fold := cases.Fold()
	needle := fold.String(partialContent)

	found := make([]models.Record, 0, len(items))
	for _, item := range items {
		content, ok := item["content"].(string)
		if !ok {
			continue
		}
		if strings.Contains(fold.String(content), needle) {
			found = append(found, item)
		}
	}

	return found, nil
}

func (s *taskService) checkSynced() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.synced {
		return ErrNotSynced
	}
	return nil
}

// buildProjectIndex reads name and id of every project record. Records
// without a string name are skipped; for duplicate names the first project
// wins.
func buildProjectIndex(resp models.Response) ([]models.Project, map[string]any) {
	records, _ := resp.Elements(models.ElementProjects)

	projects := make([]models.Project, 0, len(records))
	ids := make(map[string]any, len(records))
	for _, r := range records {
		name, ok := r["name"].(string)
		if !ok {
			continue
		}
		id, ok := r.Get("id")
		if !ok {
			continue
		}

		projects = append(projects, models.Project{ID: id, Name: name})
		if _, dup := ids[name]; !dup {
			ids[name] = id
		}
	}

	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].Name < projects[j].Name
	})

	return projects, ids
}

func toRecords(values []any) ([]models.Record, error) {
	records := make([]models.Record, 0, len(values))
	for _, v := range values {
		r, ok := v.(models.Record)
		if !ok {
			return nil, fmt.Errorf("%w: %T", ErrUnexpectedItemType, v)
		}
		records = append(records, r)
	}

	return records, nil
}
