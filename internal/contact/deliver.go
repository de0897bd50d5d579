package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// FailureMessage is the single user-facing message for any delivery
// failure. Technical detail goes to the log, never to the user.
const FailureMessage = "Failed to send message. Please try again later."

// DefaultEndpointPath is the submission function path expected by hosted
// deployments.
const DefaultEndpointPath = "/.netlify/functions/submit"

// maxResponseBytes caps how much of the endpoint response is read when
// checking that the body parses as JSON.
const maxResponseBytes = 1 << 20

// ErrDeliveryFailed marks a submission that did not reach the endpoint
// or was rejected by it. Network errors, non-2xx statuses, and
// unparseable bodies all collapse into this one recoverable failure.
var ErrDeliveryFailed = errors.New("contact submission delivery failed")

// Deliverer sends a validated submission to the submission endpoint.
type Deliverer interface {
	Deliver(ctx context.Context, form FormData) error
}

// Client posts submissions as JSON to an HTTP endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *log.Logger
	tracer     trace.Tracer
}

// NewClient builds a delivery client for the given endpoint URL. A nil
// httpClient falls back to a client with a conservative overall timeout;
// a nil logger falls back to the default logger.
func NewClient(endpoint string, httpClient *http.Client, logger *log.Logger) (*Client, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, errors.New("submission endpoint is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
		logger:     logger,
		tracer:     otel.Tracer("contactsite/contact"),
	}, nil
}

// submissionPayload is the wire body for the submission endpoint.
type submissionPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Deliver posts the form as JSON. Success requires a 2xx status and a
// JSON-parseable body; body contents are not otherwise inspected. Every
// other outcome is reported as ErrDeliveryFailed.
func (c *Client) Deliver(ctx context.Context, form FormData) error {
	if c == nil {
		return errors.New("delivery client is nil")
	}
	ctx, span := c.tracer.Start(ctx, "contact.deliver",
		trace.WithAttributes(attribute.String("contact.endpoint", c.endpoint)),
	)
	defer span.End()

	body, err := json.Marshal(submissionPayload{
		Name:    form.Name,
		Email:   form.Email,
		Message: form.Message,
	})
	if err != nil {
		return c.fail(span, fmt.Errorf("encode submission: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return c.fail(span, fmt.Errorf("build submission request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.fail(span, fmt.Errorf("post submission: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.fail(span, fmt.Errorf("submission endpoint returned status %d", resp.StatusCode))
	}

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return c.fail(span, fmt.Errorf("read submission response: %w", err))
	}
	if !json.Valid(respBody) {
		return c.fail(span, errors.New("submission response body is not valid JSON"))
	}

	span.SetStatus(codes.Ok, "")
	return nil
}

// fail logs the technical cause and returns the uniform delivery error.
func (c *Client) fail(span trace.Span, cause error) error {
	c.logger.Printf("contact delivery failed: %v", cause)
	span.RecordError(cause)
	span.SetStatus(codes.Error, cause.Error())
	return ErrDeliveryFailed
}
