// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-task-sync/models"
)

// TaskService answers project and task questions from the last full sync.
type TaskService interface {
	// Sync discards the client sync state, performs a full sync and rebuilds
	// the project index.
	Sync(ctx context.Context) error

	// Keys returns the element types of the last sync in ascending order.
	Keys() []string

	// FindProjectID returns the ID of the project named exactly name.
	FindProjectID(name string) (id any, ok bool)

	// FindProjects returns the projects whose name contains partial,
	// ignoring case, sorted by name.
	FindProjects(partial string) []models.Project

	// FindProjectItems returns the items of the project named exactly
	// projectName. An unknown project yields an empty result.
	FindProjectItems(projectName string) ([]models.Record, error)

	// SearchProjectItems applies a JMESPath suffix (e.g. "[*].content") to
	// the items of the project named exactly projectName. An unknown
	// project yields an empty list; a malformed expression yields
	// ErrInvalidExpression.
	SearchProjectItems(projectName, expression string) (any, error)

	// FindItemsByContent narrows FindProjectItems to items whose content
	// contains partialContent, ignoring case.
	FindItemsByContent(projectName, partialContent string) ([]models.Record, error)
}
