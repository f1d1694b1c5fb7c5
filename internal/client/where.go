package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-task-sync/models"
)

var ErrInvalidWhere = errors.New("invalid where clause")

// parseWhere turns repeated "field=value[,value...]" clauses into filters.
// Clauses on the same field accumulate their values.
//
// A value that reads as a JSON number, bool or null matches both that typed
// value and its literal text, so project_id=2203306141 finds string and
// numeric ids alike. A JSON-quoted value ("10") matches only the string.
func parseWhere(clauses []string) (models.Filters, error) {
	values := make(map[string][]any, len(clauses))
	order := make([]string, 0, len(clauses))

	for _, clause := range clauses {
		field, raw, ok := strings.Cut(clause, "=")
		field = strings.TrimSpace(field)
		if !ok || field == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWhere, clause)
		}

		if _, seen := values[field]; !seen {
			order = append(order, field)
		}
		for _, v := range strings.Split(raw, ",") {
			values[field] = append(values[field], parseWhereValue(v)...)
		}
	}

	filters := make(models.Filters, len(order))
	for _, field := range order {
		vs := values[field]
		if len(vs) == 1 {
			filters[field] = vs[0]
			continue
		}
		filters[field] = vs
	}

	return filters, nil
}

func parseWhereValue(raw string) []any {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil || dec.More() {
		return []any{raw}
	}

	switch v.(type) {
	case string:
		return []any{v}
	case json.Number, bool, nil:
		return []any{v, strings.TrimSpace(raw)}
	default:
		// objects and arrays are matched as text
		return []any{raw}
	}
}
