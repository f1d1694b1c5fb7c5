package store

import "github.com/MKhiriev/go-task-sync/internal/query"

// Lookup errors returned by [ResponseStore] fetch methods. They are the
// query engine's sentinels, re-exported so callers can match them with
// [errors.Is] without importing the query package.
var (
	// ErrKeyNotFound is returned when the requested element type is not
	// part of the cached response.
	ErrKeyNotFound = query.ErrKeyNotFound

	// ErrFieldNotFound is returned when a record selected by the filters
	// lacks the requested return field.
	ErrFieldNotFound = query.ErrFieldNotFound
)
