// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// go-task-sync command line.
//
// All Msg* constants are human-readable messages printed to the terminal when
// a command fails. Keeping them in one place keeps the wording consistent.
package app

const (
	// MsgMissingToken is printed when no API token was found in flags,
	// environment or config file.
	MsgMissingToken = "Todoist API token is not set (use --token or TODOIST_API_TOKEN)"

	// MsgInvalidConfig is printed when the merged configuration is unusable,
	// e.g. an empty base URL or a non-positive timeout.
	MsgInvalidConfig = "invalid configuration"

	// MsgUnsupportedConfigFormat is printed when --config points at a file
	// that is not JSON, YAML or TOML.
	MsgUnsupportedConfigFormat = "unsupported config file format"

	// MsgUnauthorized is printed when the API rejects the token.
	MsgUnauthorized = "the API token was rejected"

	// MsgForbidden is printed when the token lacks access to the resource.
	MsgForbidden = "access denied"

	// MsgBadRequest is printed when the API refuses the sync request,
	// typically because of unknown resource types.
	MsgBadRequest = "sync request was rejected, check the resource types"

	// MsgEndpointNotFound is printed when the base URL does not serve a
	// sync endpoint.
	MsgEndpointNotFound = "sync endpoint not found, check the base URL"

	// MsgTooManyRequests is printed when the API rate limit is hit.
	MsgTooManyRequests = "too many requests, try again later"

	// MsgServerUnavailable is printed on 5xx responses.
	MsgServerUnavailable = "Todoist is unavailable, try again later"

	// MsgUnexpectedPayload is printed when the sync response is not the
	// expected JSON object.
	MsgUnexpectedPayload = "unexpected response from the sync endpoint"

	// MsgElementNotFound is printed when the requested element type is not
	// part of the last sync.
	MsgElementNotFound = "element type not found, run `keys` to list them"

	// MsgFieldNotFound is printed when a matching record lacks the field
	// given with --field.
	MsgFieldNotFound = "field not found in a matching record"

	// MsgInvalidWhere is printed when a --where flag is malformed.
	MsgInvalidWhere = "invalid --where, expected field=value[,value...]"

	// MsgInvalidExpression is printed when --expr is not a valid JMESPath
	// expression.
	MsgInvalidExpression = "invalid --expr, expected a JMESPath expression such as '[*].content'"

	// MsgTimeout is printed when the sync did not complete in time.
	MsgTimeout = "request timed out"

	// MsgCancelled is printed when the command was interrupted.
	MsgCancelled = "cancelled"

	// MsgCopyFailed is printed when the result could not be copied to the
	// clipboard.
	MsgCopyFailed = "could not copy to clipboard"
)
