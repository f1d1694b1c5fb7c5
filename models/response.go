// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "sort"

// Well-known element types returned by the Todoist sync endpoint.
const (
	ElementProjects = "projects"
	ElementItems    = "items"
)

// Record is a single element of a sync response (a project, an item, a
// label...). Records are schemaless: values are whatever the JSON decoder
// produced (string, float64, bool, nil, []any, map[string]any).
type Record map[string]any

// Get returns the value stored under field and whether the field is present.
// A present field may still hold a nil value.
func (r Record) Get(field string) (any, bool) {
	v, ok := r[field]
	return v, ok
}

// Response is the result of one synchronisation: element-type name mapped to
// the ordered records of that type.
type Response map[string][]Record

// Keys returns the element-type names of the response in ascending order.
// The result is never nil.
func (r Response) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Elements returns the records bound to name and whether name is present.
func (r Response) Elements(name string) ([]Record, bool) {
	records, ok := r[name]
	return records, ok
}
