// Package source performs bounded reads against the upstream CMS, trail
// catalog and expedition listing services.
// Every failure leaves this package as a *domain.FetchError; nothing panics and
// no raw transport error escapes. There are no retries at this layer.
package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/trilhabr/home-aggregator/internal/domain"
)

// maxBodyBytes caps how much of an upstream response is read.
const maxBodyBytes = 4 << 20

// Client issues GET requests against a single upstream base URL.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

// NewClient constructs a Client. A nil httpClient uses a fresh http.Client;
// timeouts are applied per call, not on the http.Client.
func NewClient(baseURL string, httpClient *http.Client, log *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		log:     log,
	}
}

// Fetch performs one GET against ep bounded by timeout and returns the raw
// JSON inside the envelope field. A missing or null envelope field is an
// empty successful result and yields a nil payload.
func (c *Client) Fetch(ctx context.Context, ep Endpoint, timeout time.Duration) (json.RawMessage, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	u := c.baseURL + ep.Path
	if len(ep.Query) > 0 {
		u += "?" + ep.Query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &domain.FetchError{Source: ep.Name, Kind: domain.Unreachable, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &domain.FetchError{Source: ep.Name, Kind: classify(ctx, err), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, &domain.FetchError{Source: ep.Name, Kind: domain.BadStatus, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &domain.FetchError{Source: ep.Name, Kind: classify(ctx, err), Err: err}
	}

	return unwrapEnvelope(ep, body)
}

// unwrapEnvelope validates the body and extracts the envelope field.
func unwrapEnvelope(ep Endpoint, body []byte) (json.RawMessage, error) {
	malformed := func(msg string) error {
		return &domain.FetchError{Source: ep.Name, Kind: domain.MalformedPayload, Err: errors.New(msg)}
	}

	if !gjson.ValidBytes(body) {
		return nil, malformed("body is not valid JSON")
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, malformed("body is not a JSON object")
	}

	field := root.Get(ep.Envelope)
	if !field.Exists() || field.Type == gjson.Null {
		return nil, nil
	}

	switch ep.Shape {
	case ShapeObject:
		if !field.IsObject() {
			return nil, malformed(fmt.Sprintf("%q is not an object", ep.Envelope))
		}
	case ShapeList:
		if !field.IsArray() {
			return nil, malformed(fmt.Sprintf("%q is not an array", ep.Envelope))
		}
	}
	return json.RawMessage(field.Raw), nil
}

// classify maps a transport error onto Timeout or Unreachable.
func classify(ctx context.Context, err error) domain.FetchErrorKind {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return domain.Timeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return domain.Timeout
	}
	return domain.Unreachable
}
