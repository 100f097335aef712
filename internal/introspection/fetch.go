package introspection

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	json "github.com/goccy/go-json"
)

// FetchError reports a failed schema capture: a transport failure, a
// non-2xx response, a malformed JSON body, or a response without the
// expected __schema key.
type FetchError struct {
	Status int // HTTP status, 0 when the failure happened before a response
	Msg    string
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("schema fetch: HTTP %d: %s", e.Status, e.Msg)
	}
	if e.Err != nil {
		return fmt.Sprintf("schema fetch: %s: %v", e.Msg, e.Err)
	}
	return "schema fetch: " + e.Msg
}

func (e *FetchError) Unwrap() error { return e.Err }

type envelope struct {
	Data struct {
		Schema *Document `json:"__schema"`
	} `json:"data"`
}

// Fetch posts the introspection query to endpoint and decodes the result.
// One synchronous round trip, no retry; every failure mode is surfaced as
// a *FetchError.
func Fetch(ctx context.Context, httpClient *http.Client, endpoint, token string) (*Document, error) {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	body, err := json.Marshal(map[string]string{"query": Query})
	if err != nil {
		return nil, &FetchError{Msg: "encode request", Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &FetchError{Msg: "build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Msg: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &FetchError{Status: resp.StatusCode, Msg: string(bytes.TrimSpace(text))}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &FetchError{Msg: "decode response", Err: err}
	}
	if env.Data.Schema == nil {
		return nil, &FetchError{Msg: "no __schema in response"}
	}
	return env.Data.Schema, nil
}
