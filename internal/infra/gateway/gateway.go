// Package gateway is the single outbound HTTP path to the FreshDeal backend.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"freshdeal/config"
	domainerrors "freshdeal/internal/domain/errors"
	"freshdeal/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/tidwall/gjson"
	"go.uber.org/fx"
)

const (
	defaultTimeout          = 10 * time.Second
	responseBodyReadLimit   = 4 << 20
	unknownOperation        = "unknown"
	headerAuthorization     = "Authorization"
	headerContentType       = "Content-Type"
	contentTypeJSON         = "application/json"
	authorizationTypeBearer = "Bearer "
)

// Request describes one backend call.
type Request struct {
	Operation string // stable name for logs and metrics, defaults to the last path segment
	Method    string
	Path      string
	Query     url.Values
	Body      any            // JSON encoded when set
	Form      *MultipartForm // takes precedence over Body
	Token     string         // sent as a bearer credential when set
	Header    http.Header
}

func (r Request) operation() string {
	if r.Operation != "" {
		return r.Operation
	}
	trimmed := strings.Trim(r.Path, "/")
	if trimmed == "" {
		return unknownOperation
	}

	return trimmed[strings.LastIndex(trimmed, "/")+1:]
}

// Params defines the dependencies of the gateway client.
type Params struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	Registerer prometheus.Registerer `optional:"true"`
}

// Client performs backend calls and normalizes their failures.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
	metrics    *Metrics
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithMetrics records request metrics on m.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// New builds the client from configuration.
func New(params Params) *Client {
	timeout := defaultTimeout
	if params.Config.API.Timeout > 0 {
		timeout = params.Config.API.Timeout
	}

	return NewClient(params.Config.API.BaseURL, params.Logger,
		WithHTTPClient(&http.Client{Timeout: timeout}),
		WithMetrics(NewMetrics(params.Registerer)),
	)
}

// NewClient builds a client for baseURL.
func NewClient(baseURL string, logger *slog.Logger, opts ...Option) *Client {
	client := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		logger:     logger,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	if client.logger == nil {
		client.logger = slog.Default()
	}

	return client
}

// Do performs req and decodes a 2xx JSON response into out when out is non-nil.
// Non-2xx responses return ErrServerRejection carrying the server message;
// transport failures return a NetworkFailure error.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	operation := req.operation()
	logger := c.logger.With(
		slog.String("operation", operation),
		slog.String("method", req.Method),
		slog.String("path", req.Path),
	)

	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		c.metrics.observe(operation, outcomeInvalid, 0)
		logger.Error("Request could not be built", slog.Any("error", err))

		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	logger.Debug("Request dispatched")
	start := time.Now()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.metrics.observe(operation, outcomeNetwork, time.Since(start))
		logger.Warn("Request failed", slog.Any("error", err))

		return networkError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, responseBodyReadLimit))
	if err != nil {
		c.metrics.observe(operation, outcomeNetwork, time.Since(start))
		logger.Warn("Response could not be read", slog.Int("status", resp.StatusCode), slog.Any("error", err))

		return networkError(err)
	}

	elapsed := time.Since(start)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.metrics.observe(operation, outcomeRejected, elapsed)
		rejection := rejectionError(resp.StatusCode, data)
		logger.Warn("Request rejected",
			slog.Int("status", resp.StatusCode),
			slog.Duration("latency", elapsed),
			slog.String("message", rejection.Message()),
		)

		return rejection
	}

	if out != nil && len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			c.metrics.observe(operation, outcomeRejected, elapsed)
			logger.Warn("Response could not be decoded", slog.Int("status", resp.StatusCode), slog.Any("error", err))

			return domainerrors.ErrServerRejection.WithHTTPCode(resp.StatusCode).WithDetails("decode response: " + err.Error())
		}
	}

	c.metrics.observe(operation, outcomeSuccess, elapsed)
	logger.Info("Request succeeded", slog.Int("status", resp.StatusCode), slog.Duration("latency", elapsed))

	return nil
}

func (c *Client) newRequest(ctx context.Context, req Request) (*http.Request, error) {
	endpoint := c.baseURL + "/" + strings.TrimLeft(req.Path, "/")
	if len(req.Query) > 0 {
		endpoint += "?" + req.Query.Encode()
	}

	var (
		body        io.Reader
		contentType string
	)
	switch {
	case req.Form != nil:
		buf, formType, err := req.Form.encode()
		if err != nil {
			return nil, err
		}
		body, contentType = buf, formType
	case req.Body != nil:
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, errors.Wrap(err, "marshal request body")
		}
		body, contentType = bytes.NewReader(payload), contentTypeJSON
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, endpoint, body)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}

	for key, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}
	httpReq.Header.Set("Accept", contentTypeJSON)
	if contentType != "" {
		httpReq.Header.Set(headerContentType, contentType)
	}
	if token := strings.TrimSpace(req.Token); token != "" {
		httpReq.Header.Set(headerAuthorization, authorizationTypeBearer+token)
	}

	return httpReq, nil
}

func networkError(err error) error {
	if errors.IsTimeout(err) {
		return domainerrors.ErrRequestTimeout.WithDetails(err.Error())
	}

	return domainerrors.ErrNetworkFailure.WithDetails(err.Error())
}

// rejectionError extracts the server message from {"message": "..."} bodies.
func rejectionError(status int, body []byte) *domainerrors.BaseError {
	rejection := domainerrors.ErrServerRejection.WithHTTPCode(status)
	if !gjson.ValidBytes(body) {
		return rejection
	}

	message := gjson.GetBytes(body, "message")
	if !message.Exists() || message.Type != gjson.String {
		message = gjson.GetBytes(body, "error")
	}
	if message.Type == gjson.String {
		return rejection.WithMessage(strings.TrimSpace(message.String()))
	}

	return rejection
}
