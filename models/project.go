package models

// Project is the typed view of a "projects" record used by the project index.
// ID keeps whatever type the API returned (string ids in Sync v9, numbers in
// older API versions).
type Project struct {
	ID   any    `json:"id"`
	Name string `json:"name"`
}
