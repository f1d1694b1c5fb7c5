package utils

import (
	"github.com/go-resty/resty/v2"
)

// UserAgent is sent with every outbound request.
const UserAgent = "go-task-sync/1"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly, while
// fixing the defaults every outbound call of this application shares.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent HTTPClient that asks for JSON and
// identifies itself with [UserAgent].
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.
//	    SetBaseURL("https://api.todoist.com/sync/v9").
//	    R().
//	    Post("/sync")
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", UserAgent)

	return &HTTPClient{Client: client}
}
