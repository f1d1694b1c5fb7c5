package query

import "errors"

var (
	// ErrKeyNotFound is returned when the requested element type is not
	// present in the response.
	ErrKeyNotFound = errors.New("element type not found")

	// ErrFieldNotFound is returned when the projected field is missing from a
	// record selected by the filters.
	ErrFieldNotFound = errors.New("field not found")
)
