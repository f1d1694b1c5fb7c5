// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Filters maps a record field to the value (or slice of values) that field
// must hold. A scalar is treated as a one-element slice.
//
//	Filters{"project_id": 10}             // project_id == 10
//	Filters{"project_id": []int{10, 20}}  // project_id is 10 or 20
type Filters map[string]any

// MatchMode combines the per-field filter tests into a single verdict.
type MatchMode int

const (
	// MatchAll requires every filter to hold. It is the zero value.
	MatchAll MatchMode = iota
	// MatchAny requires at least one filter to hold.
	MatchAny
)

// String implements fmt.Stringer.
func (m MatchMode) String() string {
	switch m {
	case MatchAll:
		return "all"
	case MatchAny:
		return "any"
	default:
		return "unknown"
	}
}
