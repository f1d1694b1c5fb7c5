// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package query implements the filter/projection engine that runs over an
// in-memory sync response.
//
// A [Query] names an element type, an optional field to project out of each
// matching record, a set of [models.Filters] and a [models.MatchMode]. [Select]
// runs the query in a single pass and preserves record order; [At] narrows
// the result to one element and reports absence instead of failing when the
// index is out of range.
//
// The package is pure: it never mutates the response or its records.
package query
