package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/azacreation/adminsdk/pkg/errors"
	"github.com/azacreation/adminsdk/pkg/logging"
)

// Client performs one HTTP request against a marketplace API host and
// normalizes its outcome. It applies no retries: a failed request is
// reported once, to its caller, who decides what the user sees.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	defaultHeaders map[string]string
	logger         *logging.Logger
	limiter        *rate.Limiter
}

// ClientConfig holds HTTP client configuration. Headers is where the
// tunnel-bypass header is injected; the client itself knows nothing
// about any specific gateway.
type ClientConfig struct {
	BaseURL           string            `json:"base_url"`
	Timeout           time.Duration     `json:"timeout"`
	Headers           map[string]string `json:"headers"`
	Logger            *logging.Logger   `json:"-"`
	RequestsPerSecond float64           `json:"requests_per_second"`
}

// DefaultClientConfig returns default HTTP client configuration
func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		Timeout: 30 * time.Second,
		Headers: make(map[string]string),
		Logger:  logging.GetDefault(),
	}
}

// NewClient creates a new marketplace API client
func NewClient(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultClientConfig()
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.Logger == nil {
		config.Logger = logging.GetDefault()
	}

	defaultHeaders := map[string]string{
		"Accept":     "application/json",
		"User-Agent": "adminsdk/1.0",
	}
	for key, value := range config.Headers {
		defaultHeaders[key] = value
	}

	client := &Client{
		httpClient:     &http.Client{Timeout: config.Timeout},
		baseURL:        strings.TrimSuffix(config.BaseURL, "/"),
		defaultHeaders: defaultHeaders,
		logger:         config.Logger,
	}

	if config.RequestsPerSecond > 0 {
		client.limiter = rate.NewLimiter(rate.Limit(config.RequestsPerSecond), 1)
	}

	return client
}

// SetHeader sets a default header for all requests
func (c *Client) SetHeader(key, value string) {
	c.defaultHeaders[key] = value
}

// BaseURL returns the host this client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request represents one HTTP request. Body and Multipart are
// mutually exclusive: Body is serialized as JSON, Multipart is sent
// as multipart/form-data with the boundary set by the encoder.
type Request struct {
	Method    string
	Path      string
	Body      interface{}
	Multipart *Multipart
	Query     map[string]string
	Headers   map[string]string
}

// Response represents a decoded-enough HTTP response: status, headers
// and the raw body. Envelope unwrapping happens in Decode.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Do executes the request. Failure taxonomy:
//   - the request never completes -> transport error, no status
//   - non-2xx status -> transport error carrying the status code
//   - 2xx -> returned as-is; envelope-level failures surface in Decode
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeTransport, "Request cancelled while rate limited")
		}
	}

	if logging.GetRequestIDFromContext(ctx) == "" {
		ctx = logging.WithRequestID(ctx, uuid.New().String())
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		values := url.Values{}
		for key, value := range req.Query {
			values.Set(key, value)
		}
		fullURL += "?" + values.Encode()
	}

	startTime := time.Now()
	c.logger.WithFields(map[string]interface{}{
		"method": method,
		"url":    fullURL,
	}).Debug(ctx, "Starting HTTP request")

	var bodyReader io.Reader
	contentType := ""
	switch {
	case req.Multipart != nil:
		encoded, formContentType, err := req.Multipart.Encode()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInternal, "Failed to encode multipart form")
		}
		bodyReader = bytes.NewReader(encoded)
		contentType = formContentType
	case req.Body != nil:
		bodyBytes, err := json.Marshal(req.Body)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeValidation, "Failed to marshal request body")
		}
		bodyReader = bytes.NewReader(bodyBytes)
		contentType = "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "Failed to create HTTP request")
	}

	for key, value := range c.defaultHeaders {
		httpReq.Header.Set(key, value)
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.WithFields(map[string]interface{}{
			"method":      method,
			"url":         fullURL,
			"duration_ms": float64(time.Since(startTime).Nanoseconds()) / 1e6,
		}).Error(ctx, "HTTP request execution failed", err)
		return nil, errors.Wrap(err, errors.ErrCodeTransport, "HTTP request execution failed")
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeTransport, "Failed to read response body")
	}

	response := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	c.logger.WithFields(map[string]interface{}{
		"method":      method,
		"url":         fullURL,
		"status_code": httpResp.StatusCode,
		"duration_ms": float64(time.Since(startTime).Nanoseconds()) / 1e6,
	}).Debug(ctx, "HTTP request completed")

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return response, errors.Transport(httpResp.StatusCode,
			"HTTP request failed with status "+httpResp.Status)
	}

	return response, nil
}

// Get performs a GET request
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path})
}

// GetWithQuery performs a GET request with query parameters
func (c *Client) GetWithQuery(ctx context.Context, path string, query map[string]string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with a JSON body
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request with a JSON body
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete performs a DELETE request
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}
