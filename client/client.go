// Package client is the runtime Linear GraphQL client. It executes
// queries and mutations over HTTP, maps API failures onto a typed error
// taxonomy, and builds typed queries from a projection's own selection
// text — the struct shape is the request payload.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/lineark/lineark-go/fields"
	"github.com/lineark/lineark-go/pagination"
)

// DefaultEndpoint is Linear's public GraphQL endpoint.
const DefaultEndpoint = "https://api.linear.app/graphql"

const userAgent = "lineark-go/0.1"

// Client talks to one GraphQL endpoint with one token. Safe for
// concurrent use.
type Client struct {
	http     *http.Client
	endpoint string
	token    string
	tracer   trace.Tracer
}

type Option func(*Client)

// WithToken sets an explicit API token, bypassing env/file resolution.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithEndpoint overrides the API endpoint (mock servers, proxies).
func WithEndpoint(endpoint string) Option {
	return func(c *Client) { c.endpoint = endpoint }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New builds a client. Without WithToken the token is resolved from the
// LINEAR_API_TOKEN environment variable, then from ~/.linear_api_token.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		http:     http.DefaultClient,
		endpoint: DefaultEndpoint,
		tracer:   otel.Tracer("lineark-go/client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.token == "" {
		token, err := resolveToken()
		if err != nil {
			return nil, err
		}
		c.token = token
	}
	if c.token == "" {
		return nil, &Error{Kind: KindAuthConfig, Message: "token cannot be empty"}
	}
	return c, nil
}

type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type response struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []GraphQLError             `json:"errors"`
}

// Execute runs a GraphQL document and extracts the value at dataPath from
// the response data.
func (c *Client) Execute(ctx context.Context, query string, variables map[string]any, dataPath string) (json.RawMessage, error) {
	ctx, span := c.tracer.Start(ctx, "graphql.request", trace.WithAttributes(
		attribute.String("graphql.data_path", dataPath),
	))
	defer span.End()

	raw, err := c.do(ctx, query, variables, dataPath)
	if err != nil {
		span.RecordError(err)
	}
	return raw, err
}

func (c *Client) do(ctx context.Context, query string, variables map[string]any, dataPath string) (json.RawMessage, error) {
	if variables == nil {
		variables = map[string]any{}
	}
	body, err := json.Marshal(request{Query: query, Variables: variables})
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Err: err}
	}
	req.Header.Set("Authorization", c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var gr response
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return nil, &Error{Kind: KindNetwork, Err: err}
	}

	if len(gr.Errors) > 0 {
		first := strings.ToLower(gr.Errors[0].Message)
		if strings.Contains(first, "authentication") || strings.Contains(first, "unauthorized") {
			return nil, &Error{Kind: KindAuthentication, Message: gr.Errors[0].Message}
		}
		return nil, &Error{Kind: KindGraphQL, Errors: gr.Errors, QueryName: queryName(query)}
	}

	if gr.Data == nil {
		return nil, &Error{Kind: KindMissingData, Message: "no data in response"}
	}
	value, ok := gr.Data[dataPath]
	if !ok || string(value) == "null" {
		return nil, &Error{Kind: KindMissingData, Message: fmt.Sprintf("no %q in response data", dataPath)}
	}
	return value, nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	text, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	msg := strings.TrimSpace(string(text))

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return &Error{Kind: KindAuthentication, Message: msg}
	case http.StatusForbidden:
		return &Error{Kind: KindForbidden, Message: msg}
	case http.StatusTooManyRequests:
		e := &Error{Kind: KindRateLimited, Message: msg}
		if v, err := strconv.ParseFloat(resp.Header.Get("Retry-After"), 64); err == nil {
			e.RetryAfter = &v
		}
		return e
	default:
		return &Error{Kind: KindHTTP, Status: resp.StatusCode, Message: msg}
	}
}

// queryName extracts the operation name from a document for diagnostics:
// "query Viewer($a: Int) { ... }" yields "Viewer".
func queryName(query string) string {
	rest, ok := strings.CutPrefix(query, "query ")
	if !ok {
		rest, ok = strings.CutPrefix(query, "mutation ")
	}
	if !ok {
		return ""
	}
	if i := strings.IndexAny(rest, "( {"); i > 0 {
		return rest[:i]
	}
	return ""
}

// Query fetches a root field into the projection type T, deriving the
// selection from T's shape:
//
//	me, err := client.Query[MyViewer](ctx, c, "viewer")
//
// sends `query { viewer { <MyViewer's selection> } }`.
func Query[T any](ctx context.Context, c *Client, field string) (*T, error) {
	sel := fields.Selection[T]()
	query := fmt.Sprintf("query { %s { %s } }", field, sel)
	raw, err := c.Execute(ctx, query, nil, field)
	if err != nil {
		return nil, err
	}
	return decode[T](raw, field)
}

// QueryConnection fetches a connection-shaped root field, selecting T's
// shape for the nodes and the standard page info.
func QueryConnection[T any](ctx context.Context, c *Client, field string) (*pagination.Connection[T], error) {
	sel := fields.Selection[T]()
	query := fmt.Sprintf("query { %s { nodes { %s } pageInfo { hasNextPage endCursor } } }", field, sel)
	raw, err := c.Execute(ctx, query, nil, field)
	if err != nil {
		return nil, err
	}
	return decode[pagination.Connection[T]](raw, field)
}

// ExecuteMutation runs a mutation whose payload is shaped
// { success: Boolean, <entityField>: {...} }: it checks the success flag
// and extracts the entity.
func (c *Client) ExecuteMutation(ctx context.Context, query string, variables map[string]any, dataPath, entityField string) (json.RawMessage, error) {
	raw, err := c.Execute(ctx, query, variables, dataPath)
	if err != nil {
		return nil, err
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, &Error{Kind: KindMissingData, Message: fmt.Sprintf("failed to decode %q payload: %v", dataPath, err)}
	}
	var success bool
	if err := json.Unmarshal(payload["success"], &success); err != nil || !success {
		return nil, &Error{Kind: KindGraphQL, Errors: []GraphQLError{{
			Message: fmt.Sprintf("mutation %q did not report success", dataPath),
		}}}
	}
	entity, ok := payload[entityField]
	if !ok {
		return nil, &Error{Kind: KindMissingData, Message: fmt.Sprintf("no %q field in %q payload", entityField, dataPath)}
	}
	return entity, nil
}

func decode[T any](raw json.RawMessage, path string) (*T, error) {
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &Error{Kind: KindMissingData, Message: fmt.Sprintf("failed to decode %q: %v", path, err)}
	}
	return &out, nil
}
