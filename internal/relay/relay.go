package relay

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/CodeWithNeha/Data-Pusher/internal/domain"
	"github.com/CodeWithNeha/Data-Pusher/internal/observability"
)

// Outcome classifies a single relay attempt.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
	// OutcomeSkipped marks destinations whose configured method is neither
	// GET nor POST. They are never called and never produce an error.
	OutcomeSkipped Outcome = "skipped"
)

// Result records what happened to one destination during a fan-out. Relay
// failures stay inside the dispatch report; they are never returned to the
// caller of a dispatch.
type Result struct {
	DestinationID uint
	URL           string
	Method        string
	Outcome       Outcome
	StatusCode    int
	Err           error
}

// Client relays one payload to one destination.
type Client interface {
	Relay(ctx context.Context, destination domain.Destination, data map[string]any) Result
}

// HTTPClient relays payloads over HTTP with a bounded per-call timeout.
type HTTPClient struct {
	client *http.Client
	logger *slog.Logger
}

func NewHTTPClient(timeout time.Duration, logger *slog.Logger) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

func (c *HTTPClient) Relay(ctx context.Context, destination domain.Destination, data map[string]any) Result {
	method := strings.ToLower(destination.HTTPMethod)
	result := Result{DestinationID: destination.ID, URL: destination.URL, Method: method}

	ctx, span := observability.StartSpan(ctx, "relay",
		trace.WithAttributes(
			attribute.Int64("destination.id", int64(destination.ID)),
			attribute.String("destination.method", method),
		),
	)
	defer span.End()

	var req *http.Request
	var err error
	switch method {
	case "get":
		req, err = c.buildGetRequest(ctx, destination, data)
	case "post":
		req, err = c.buildPostRequest(ctx, destination, data)
	default:
		c.logger.Warn("skipping destination with unsupported http method",
			"destination_id", destination.ID, "http_method", destination.HTTPMethod)
		observability.RecordRelayAttempt(ctx, method, string(OutcomeSkipped))
		result.Outcome = OutcomeSkipped
		return result
	}
	if err != nil {
		observability.RecordRelayAttempt(ctx, method, string(OutcomeFailure))
		result.Outcome = OutcomeFailure
		result.Err = err
		return result
	}

	resp, err := c.client.Do(req)
	if err != nil {
		observability.RecordRelayAttempt(ctx, method, string(OutcomeFailure))
		result.Outcome = OutcomeFailure
		result.Err = err
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		observability.RecordRelayAttempt(ctx, method, string(OutcomeFailure))
		result.Outcome = OutcomeFailure
		return result
	}
	observability.RecordRelayAttempt(ctx, method, string(OutcomeSuccess))
	result.Outcome = OutcomeSuccess
	return result
}

// buildGetRequest encodes the payload as query parameters merged into any
// parameters already present on the destination URL.
func (c *HTTPClient) buildGetRequest(ctx context.Context, destination domain.Destination, data map[string]any) (*http.Request, error) {
	target, err := url.Parse(destination.URL)
	if err != nil {
		return nil, err
	}
	query := target.Query()
	for key, value := range data {
		query.Set(key, stringifyValue(value))
	}
	target.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return nil, err
	}
	applyHeaders(req, destination.Headers)
	return req, nil
}

// buildPostRequest encodes the payload as a form body. Destination headers
// are applied last so a configured Content-Type wins over the default.
func (c *HTTPClient) buildPostRequest(ctx context.Context, destination domain.Destination, data map[string]any) (*http.Request, error) {
	form := url.Values{}
	for key, value := range data {
		form.Set(key, stringifyValue(value))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, destination.URL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	applyHeaders(req, destination.Headers)
	return req, nil
}

func applyHeaders(req *http.Request, headers map[string]string) {
	for name, value := range headers {
		req.Header.Set(name, value)
	}
}

// stringifyValue flattens arbitrary JSON values into the string form used
// for query and form encoding. Composites collapse to compact JSON.
func stringifyValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(raw)
	}
}
