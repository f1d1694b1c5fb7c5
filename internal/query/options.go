// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

import "github.com/MKhiriev/go-task-sync/models"

// Query describes one lookup over a sync response.
type Query struct {
	// Element is the element type to search, e.g. "projects" or "items".
	Element string
	// ReturnField, when non-empty, replaces every match by the value of
	// this field.
	ReturnField string
	// Filters restricts the records that match. Empty means no filtering.
	Filters models.Filters
	// Match combines the per-field tests. Defaults to models.MatchAll.
	Match models.MatchMode
}

// Option configures a [Query].
type Option func(*Query)

// New builds a Query for element with the given options applied in order.
func New(element string, opts ...Option) Query {
	q := Query{Element: element}
	for _, opt := range opts {
		opt(&q)
	}

	return q
}

// Field projects every match onto the named field.
func Field(name string) Option {
	return func(q *Query) {
		q.ReturnField = name
	}
}

// Where adds a filter on field. One value means equality, several values mean
// "one of". Calling Where twice for the same field keeps the last call.
func Where(field string, values ...any) Option {
	return func(q *Query) {
		if q.Filters == nil {
			q.Filters = make(models.Filters)
		}
		if len(values) == 1 {
			q.Filters[field] = values[0]
			return
		}
		q.Filters[field] = values
	}
}

// WithFilters merges filters into the query. Existing fields are overwritten.
func WithFilters(filters models.Filters) Option {
	return func(q *Query) {
		if len(filters) == 0 {
			return
		}
		if q.Filters == nil {
			q.Filters = make(models.Filters, len(filters))
		}
		for field, value := range filters {
			q.Filters[field] = value
		}
	}
}

// MatchAny makes a record match when at least one filter holds.
func MatchAny() Option {
	return func(q *Query) {
		q.Match = models.MatchAny
	}
}

// MatchAll makes a record match only when every filter holds.
func MatchAll() Option {
	return func(q *Query) {
		q.Match = models.MatchAll
	}
}
