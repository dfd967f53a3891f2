package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/baalimago/cab/internal/format"
	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/google/uuid"
)

// DefaultTimeout bounds a backend call when no timeout is configured.
const DefaultTimeout = 12 * time.Second

// callOptions parameterize a single transport call. The zero value means
// default timeout and no extra headers.
type callOptions struct {
	timeout time.Duration
	header  http.Header
}

// StatusError is returned for any non-2xx response. The response body is
// decoded and kept here even though no operation currently reads it, so
// that server-provided error detail isn't lost to future callers.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Status     string
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%v %v: unexpected status: %v", e.Method, e.Path, e.Status)
}

// Payload is the normalized body of a backend response: decoded JSON when
// the backend declared JSON, plain text otherwise. Exactly one arm is set.
type Payload struct {
	json json.RawMessage
	text string
}

func (p Payload) IsJSON() bool { return p.json != nil }

func (p Payload) JSON() json.RawMessage { return p.json }

func (p Payload) Text() string { return p.text }

// String returns the JSON document or the plain text, whichever arm is set.
func (p Payload) String() string {
	if p.IsJSON() {
		return string(p.json)
	}
	return p.text
}

// newCallContext composes the per-call deadline with the caller's context:
// whichever fires first cancels the request. The returned cancel must run
// on every exit path to release the timer. An already-cancelled parent
// yields an immediately-cancelled call context.
func newCallContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

func (c *Client) get(ctx context.Context, path string, opts callOptions) (Payload, error) {
	return c.do(ctx, http.MethodGet, path, nil, opts)
}

func (c *Client) post(ctx context.Context, path string, body any, opts callOptions) (Payload, error) {
	if body == nil {
		body = map[string]any{}
	}
	return c.do(ctx, http.MethodPost, path, body, opts)
}

func (c *Client) do(ctx context.Context, method, path string, body any, opts callOptions) (Payload, error) {
	timeout := opts.timeout
	if timeout <= 0 {
		c.mu.RLock()
		timeout = c.timeout
		c.mu.RUnlock()
	}
	ctx, cancel := newCallContext(ctx, timeout)
	defer cancel()

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return Payload{}, fmt.Errorf("failed to encode JSON: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL()+path, reqBody)
	if err != nil {
		return Payload{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	// Caller headers override the defaults
	for key, values := range opts.header {
		req.Header.Del(key)
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	if misc.Truthy(os.Getenv("DEBUG")) {
		ancli.PrintOK(fmt.Sprintf("bridge: %v %v\n", method, req.URL))
	}
	res, err := c.client.Do(req)
	if err != nil {
		return Payload{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer res.Body.Close()
	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return Payload{}, fmt.Errorf("failed to read response body: %w", err)
	}
	// Decode before the status check so malformed bodies surface as
	// decode failures even on error statuses
	payload, err := decodeBody(res.Header.Get("Content-Type"), raw)
	if err != nil {
		return Payload{}, err
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return Payload{}, &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Body:       raw,
		}
	}
	return payload, nil
}

// decodeBody negotiates the response format on the declared content type:
// JSON decodes as JSON, HTML is reduced to its visible text, anything
// else passes through as plain text.
func decodeBody(contentType string, raw []byte) (Payload, error) {
	switch {
	case strings.Contains(contentType, "application/json"):
		var probe any
		if err := json.Unmarshal(raw, &probe); err != nil {
			return Payload{}, fmt.Errorf("failed to decode JSON body: %w", err)
		}
		return Payload{json: json.RawMessage(raw)}, nil
	case strings.Contains(contentType, "text/html"):
		return Payload{text: format.HTMLText(string(raw), contentType)}, nil
	default:
		return Payload{text: string(raw)}, nil
	}
}

// decodeInto unmarshals a JSON payload into the given target.
func decodeInto(payload Payload, target any) error {
	if !payload.IsJSON() {
		return fmt.Errorf("expected JSON response, got: %q", payload.Text())
	}
	if err := json.Unmarshal(payload.JSON(), target); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}

// decodeList unmarshals a JSON array payload. A 2xx body is a successful
// fetch even when its shape is wrong, so a valid-JSON document that isn't
// the expected array decodes to an empty list rather than an error, and
// the formatters render the fixed empty-state text for it.
func decodeList[T any](payload Payload) ([]T, error) {
	if !payload.IsJSON() {
		return nil, fmt.Errorf("expected JSON response, got: %q", payload.Text())
	}
	var items []T
	if err := json.Unmarshal(payload.JSON(), &items); err != nil {
		return nil, nil
	}
	return items, nil
}
