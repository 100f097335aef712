package client

import (
	"fmt"
	"strings"
)

// GraphQLError is a single error object from a GraphQL response.
type GraphQLError struct {
	Message    string         `json:"message"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// ErrorKind classifies an API failure.
type ErrorKind string

const (
	// Authentication failed (invalid or expired token).
	KindAuthentication ErrorKind = "authentication"
	// Insufficient permissions.
	KindForbidden ErrorKind = "forbidden"
	// The request was rate limited.
	KindRateLimited ErrorKind = "rate_limited"
	// Non-2xx HTTP response not covered by a more specific kind.
	KindHTTP ErrorKind = "http"
	// The response carried GraphQL-level errors.
	KindGraphQL ErrorKind = "graphql"
	// The requested data path was not found in the response.
	KindMissingData ErrorKind = "missing_data"
	// No usable token could be resolved.
	KindAuthConfig ErrorKind = "auth_config"
	// Transport-level failure.
	KindNetwork ErrorKind = "network"
)

// Error is any failure surfaced by the client.
type Error struct {
	Kind       ErrorKind
	Message    string
	Status     int            // for KindHTTP
	RetryAfter *float64       // for KindRateLimited, seconds
	Errors     []GraphQLError // for KindGraphQL
	QueryName  string         // for KindGraphQL, when extractable
	Err        error          // for KindNetwork
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindAuthentication:
		return "Authentication error: " + e.Message
	case KindForbidden:
		return "Forbidden: " + e.Message
	case KindRateLimited:
		return "Rate limited: " + e.Message
	case KindHTTP:
		return fmt.Sprintf("HTTP error %d: %s", e.Status, e.Message)
	case KindGraphQL:
		msgs := make([]string, 0, len(e.Errors))
		for _, ge := range e.Errors {
			parts := []string{ge.Message}
			if len(ge.Path) > 0 {
				segs := make([]string, 0, len(ge.Path))
				for _, p := range ge.Path {
					segs = append(segs, fmt.Sprint(p))
				}
				parts = append(parts, "at "+strings.Join(segs, "."))
			}
			msgs = append(msgs, strings.Join(parts, " "))
		}
		if e.QueryName != "" {
			return fmt.Sprintf("GraphQL errors in %s: %s", e.QueryName, strings.Join(msgs, "; "))
		}
		return "GraphQL errors: " + strings.Join(msgs, "; ")
	case KindMissingData:
		return "Missing data at path: " + e.Message
	case KindAuthConfig:
		return "Auth configuration error: " + e.Message
	case KindNetwork:
		return fmt.Sprintf("Network error: %v", e.Err)
	default:
		return e.Message
	}
}

func (e *Error) Unwrap() error { return e.Err }
