package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-task-sync/internal/config"
	"github.com/MKhiriev/go-task-sync/internal/logger"
	"github.com/MKhiriev/go-task-sync/internal/utils"
	"github.com/MKhiriev/go-task-sync/models"
)

const (
	// fullSyncToken asks the server for every resource instead of a delta.
	fullSyncToken = "*"

	syncTokenKey = "sync_token"
	fullSyncKey  = "full_sync"
)

type todoistSyncClient struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	resourceTypes string

	mu        sync.Mutex
	syncToken string

	logger *logger.Logger
}

// NewTodoistSyncClient constructs an HTTP implementation of [SyncClient] for
// the Todoist Sync API. It normalises and validates cfg.BaseURL, configures
// the underlying HTTP client with the resolved base URL and request timeout,
// and encodes cfg.ResourceTypes once for every request.
//
// Returns [ErrEmptyToken] if cfg.APIToken is blank, or an error if
// cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewTodoistSyncClient(cfg config.ClientTodoist, log *logger.Logger) (SyncClient, error) {
	token := strings.TrimSpace(cfg.APIToken)
	if token == "" {
		return nil, ErrEmptyToken
	}

	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid todoist base url: %w", err)
	}

	resourceTypes := cfg.ResourceTypes
	if len(resourceTypes) == 0 {
		resourceTypes = []string{"all"}
	}
	encodedTypes, err := json.Marshal(resourceTypes)
	if err != nil {
		return nil, fmt.Errorf("encode resource types: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetAuthToken(token)

	return &todoistSyncClient{
		client:        client,
		ids:           utils.NewUUIDGenerator(),
		resourceTypes: string(encodedTypes),
		syncToken:     fullSyncToken,
		logger:        log.Component("todoist"),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Sync implements [SyncClient]. It POSTs the remembered sync token and the
// configured resource types to POST {base}/sync and decodes every
// array-of-objects field of the reply into an element type. The sync_token of
// the reply is remembered for the next call.
func (c *todoistSyncClient) Sync(ctx context.Context) (models.Response, error) {
	syncToken := c.currentSyncToken()
	requestID := c.ids.Generate()

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", requestID).
		SetFormData(map[string]string{
			"sync_token":     syncToken,
			"resource_types": c.resourceTypes,
		}).
		Post("/sync")
	if err != nil {
		return nil, fmt.Errorf("sync request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	response, meta, err := decodeSyncResponse(resp.Body())
	if err != nil {
		return nil, err
	}

	// A cursor that cannot be read must not be reused: fall back to a
	// full sync next time.
	nextToken := meta.syncToken
	if len(meta.invalid) > 0 {
		nextToken = fullSyncToken
		c.logger.Debug().
			Str("request_id", requestID).
			Errs("invalid_fields", meta.invalid).
			Msg("unreadable sync metadata, next sync will be full")
	}
	if nextToken != "" {
		c.mu.Lock()
		c.syncToken = nextToken
		c.mu.Unlock()
	}

	c.logger.Debug().
		Str("request_id", requestID).
		Bool("full_sync", meta.fullSync).
		Strs("elements", response.Keys()).
		Strs("skipped", meta.skipped).
		Msg("sync completed")

	return response, nil
}

// ResetState implements [SyncClient]. It forgets the sync token so that the
// next Sync requests a full resync. It never contacts the server.
func (c *todoistSyncClient) ResetState(_ context.Context) error {
	c.mu.Lock()
	c.syncToken = fullSyncToken
	c.mu.Unlock()

	c.logger.Debug().Msg("sync state reset")
	return nil
}

func (c *todoistSyncClient) currentSyncToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.syncToken
}

type syncMeta struct {
	syncToken string
	fullSync  bool
	skipped   []string
	// invalid holds decode errors of the scalar fields above.
	invalid []error
}

// decodeSyncResponse splits a Sync API reply into element types and the few
// scalar fields the client cares about. Numbers are kept as json.Number so
// that large ids survive decoding.
func decodeSyncResponse(body []byte) (models.Response, syncMeta, error) {
	var meta syncMeta

	var raw map[string]json.RawMessage
	if err := decodeJSON(body, &raw); err != nil {
		return nil, meta, fmt.Errorf("%w: %w", ErrUnexpectedPayload, err)
	}
	if raw == nil {
		return nil, meta, fmt.Errorf("%w: empty body", ErrUnexpectedPayload)
	}

	response := make(models.Response, len(raw))
	for key, value := range raw {
		switch key {
		case syncTokenKey:
			if err := json.Unmarshal(value, &meta.syncToken); err != nil {
				meta.invalid = append(meta.invalid, fmt.Errorf("%s: %w", syncTokenKey, err))
			}
			continue
		case fullSyncKey:
			if err := json.Unmarshal(value, &meta.fullSync); err != nil {
				meta.invalid = append(meta.invalid, fmt.Errorf("%s: %w", fullSyncKey, err))
			}
			continue
		}

		records, ok := decodeRecords(value)
		if !ok {
			meta.skipped = append(meta.skipped, key)
			continue
		}
		response[key] = records
	}

	return response, meta, nil
}

// decodeRecords returns the records of an array of JSON objects, or false if
// value is anything else.
func decodeRecords(value json.RawMessage) ([]models.Record, bool) {
	var items []any
	if err := decodeJSON(value, &items); err != nil || items == nil {
		return nil, false
	}

	records := make([]models.Record, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, false
		}
		records = append(records, models.Record(obj))
	}

	return records, true
}

func decodeJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}
