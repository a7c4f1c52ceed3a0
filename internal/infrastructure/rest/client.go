// Package rest implements the resource clients for the committee backend:
// thin request builders that attach the bearer token, call an endpoint and
// unwrap the {message, data, error, status} envelope.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/comite-ambiental/consola-admin/internal/core/domain"
	"github.com/comite-ambiental/consola-admin/internal/core/ports"
)

const defaultTimeout = 15 * time.Second

// Client is the shared HTTP layer under every resource client. It reads the
// token store on each request; session lifecycle stays with SessionService.
type Client struct {
	base   string
	http   *http.Client
	tokens ports.TokenStore
	logger zerolog.Logger
}

// New creates a Client for the backend at base (e.g. "http://localhost:8080").
func New(base string, timeout time.Duration, tokens ports.TokenStore, logger zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		base:   strings.TrimRight(base, "/"),
		http:   &http.Client{Timeout: timeout},
		tokens: tokens,
		logger: logger,
	}
}

// payload is the decoded reply of one call: the data segment when the
// backend wrapped it in an envelope, the raw body otherwise, and a
// synthesized acknowledgment for empty 2xx bodies.
type payload struct {
	status  int
	message string
	data    json.RawMessage
}

// do executes one backend call. Error taxonomy:
//   - transport failure → *domain.ConnectionError
//   - non-2xx reply     → *domain.RequestError (401/403 flagged AuthFailure)
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (*payload, error) {
	endpoint := c.base + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	// Some list endpoints are reachable unauthenticated; whether that is
	// allowed is the backend's policy, so the header is simply omitted when
	// no token is stored.
	if token, ok := c.tokens.Read(); ok {
		req.Header.Set("Authorization", "Bearer "+strings.TrimSpace(token))
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, &domain.ConnectionError{URL: endpoint, Err: err}
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &domain.ConnectionError{URL: endpoint, Err: err}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		c.logger.Debug().Int("status", res.StatusCode).Str("path", path).Msg("backend rejected request")
		return nil, &domain.RequestError{StatusCode: res.StatusCode, Body: string(raw)}
	}

	return c.decodePayload(res.StatusCode, raw), nil
}

// decodePayload accepts the three reply shapes the backend has produced over
// time: the {message, data, error, status} envelope, a bare JSON value, and
// an entirely empty body (some delete/status endpoints), for which a success
// acknowledgment is synthesized rather than parsed.
func (c *Client) decodePayload(status int, raw []byte) *payload {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return &payload{status: status, message: "operación realizada correctamente"}
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err == nil && env.wrapped() {
		return &payload{status: status, message: env.Message, data: env.Data}
	}
	return &payload{status: status, data: trimmed}
}

// decodeList unmarshals a collection payload. An unrecognised shape degrades
// to an empty collection with a warning instead of failing the screen.
func decodeList[T any](c *Client, p *payload, v *[]T) {
	if len(p.data) == 0 || bytes.Equal(bytes.TrimSpace(p.data), []byte("null")) {
		*v = []T{}
		return
	}
	if err := json.Unmarshal(p.data, v); err != nil {
		c.logger.Warn().Err(err).Msg("unexpected collection payload, treating as empty")
		*v = []T{}
	}
}

// decodeOne unmarshals a single-record payload.
func decodeOne[T any](p *payload, v *T) error {
	if len(p.data) == 0 {
		return fmt.Errorf("backend returned no record")
	}
	return json.Unmarshal(p.data, v)
}

func (p *payload) result() *ports.MutationResult {
	return &ports.MutationResult{Status: p.status, Message: p.message}
}
