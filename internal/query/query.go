// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package query

import (
	"fmt"

	"github.com/MKhiriev/go-task-sync/models"
)

// Select runs q over resp and returns the matches in their original order.
// Each match is the whole [models.Record], or the value of q.ReturnField when
// one is set. The result is empty, never nil, when nothing matches.
//
// A record that lacks a filtered field never matches that filter: under
// [models.MatchAll] it is excluded, under [models.MatchAny] another filter
// must hold.
//
// Errors:
//   - [ErrKeyNotFound] if resp has no q.Element;
//   - [ErrFieldNotFound] if any matching record lacks q.ReturnField. The
//     projection is all-or-nothing: no partial result is returned.
func Select(resp models.Response, q Query) ([]any, error) {
	records, ok := resp.Elements(q.Element)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, q.Element)
	}

	conds := normalize(q.Filters)
	found := make([]any, 0, len(records))
	for i, record := range records {
		if !matches(record, conds, q.Match) {
			continue
		}
		if q.ReturnField == "" {
			found = append(found, record)
			continue
		}

		value, ok := record.Get(q.ReturnField)
		if !ok {
			return nil, fmt.Errorf("%w: %q in %s[%d]", ErrFieldNotFound, q.ReturnField, q.Element, i)
		}
		found = append(found, value)
	}

	return found, nil
}

// At returns results[index] and true, or nil and false when the index falls
// outside results. A negative index counts from the end (-1 is the last
// element).
func At(results []any, index int) (any, bool) {
	if index < 0 {
		index += len(results)
	}
	if index < 0 || index >= len(results) {
		return nil, false
	}

	return results[index], true
}
