package service

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-task-sync/models"
	"github.com/jmespath/go-jmespath"
)

// searchRoot is the name records are exposed under; expressions are
// appended to it, so "[*].content" is evaluated as "items[*].content".
const searchRoot = "items"

// CompileExpression parses a JMESPath suffix applied to a list of items,
// e.g. "[*].content", "[?priority==`4`]" or "| length(@)".
func CompileExpression(expression string) (*jmespath.JMESPath, error) {
	compiled, err := jmespath.Compile(searchRoot + expression)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidExpression, expression, err)
	}

	return compiled, nil
}

// SearchRecords evaluates the JMESPath suffix expression over records. An
// empty expression returns the records unchanged (as generic JSON values).
func SearchRecords(records []models.Record, expression string) (any, error) {
	compiled, err := CompileExpression(expression)
	if err != nil {
		return nil, err
	}

	data, err := toSearchData(records)
	if err != nil {
		return nil, err
	}

	result, err := compiled.Search(map[string]any{searchRoot: data})
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidExpression, expression, err)
	}

	return result, nil
}

// toSearchData converts records to plain JSON values: the evaluator only
// understands map[string]any, []any, string, float64, bool and nil.
func toSearchData(records []models.Record) ([]any, error) {
	if len(records) == 0 {
		return []any{}, nil
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode records: %w", err)
	}

	data := make([]any, 0, len(records))
	if err = json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}

	return data, nil
}
