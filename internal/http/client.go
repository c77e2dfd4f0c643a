// Package http is the HTTP transport used by the resource clients.
//
// Client performs exactly one logical request per call and returns the
// full response body for every status code; turning non-2xx statuses into
// errors is left to the caller. Retries are delegated to go-retryablehttp
// and are disabled unless WithRetryConfig enables them.
package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/nysertxs/conekta-go/internal/auth"
	"github.com/nysertxs/conekta-go/internal/constants"
	"github.com/nysertxs/conekta-go/pkg/conekta"
)

// Client is a conekta.Transport backed by go-retryablehttp.
type Client struct {
	baseURL      string
	keys         auth.KeyProvider
	httpClient   *retryablehttp.Client
	logger       conekta.Logger
	debug        bool
	userAgent    string
	apiVersion   string
	locale       string
	retryMax     int
	interceptors *conekta.InterceptorChain
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output and retry messages.
func WithLogger(logger conekta.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug logs every request and response through the logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithAPIVersion selects the API version requested in the Accept header.
func WithAPIVersion(version string) Option {
	return func(c *Client) {
		if version != "" {
			c.apiVersion = version
		}
	}
}

// WithLocale sets the Accept-Language header.
func WithLocale(locale string) Option {
	return func(c *Client) {
		if locale != "" {
			c.locale = locale
		}
	}
}

// WithRetryConfig enables retries of connection errors, 429 and 5xx
// responses. retryMax is the number of retries after the first attempt.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retryMax = retryMax
		c.httpClient.RetryMax = retryMax

		if waitMin > 0 {
			c.httpClient.RetryWaitMin = waitMin
		}

		if waitMax > 0 {
			c.httpClient.RetryWaitMax = waitMax
		}
	}
}

// WithTimeout bounds each HTTP attempt.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.HTTPClient.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient.HTTPClient = httpClient
		}
	}
}

// WithInterceptors runs chain around every round trip.
func WithInterceptors(chain *conekta.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a transport for the API at baseURL. A nil keys sends
// requests without credentials.
func NewClient(baseURL string, keys auth.KeyProvider, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.Logger = nil
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		keys:       keys,
		httpClient: retryClient,
		userAgent:  constants.DefaultUserAgent,
		apiVersion: conekta.DefaultAPIVersion,
		locale:     conekta.DefaultLocale,
	}

	for _, opt := range opts {
		opt(client)
	}

	retryClient.CheckRetry = client.checkRetry

	if client.debug && client.logger != nil {
		retryClient.Logger = &leveledLogger{logger: client.logger}
	}

	return client
}

func (c *Client) checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if c.retryMax <= 0 {
		return false, nil
	}

	return retryablehttp.DefaultRetryPolicy(ctx, resp, err) //nolint:wrapcheck
}

// Do performs req. Every HTTP status yields a Response; only requests that
// produced no response fail, with a *conekta.TransportError.
func (c *Client) Do(ctx context.Context, req *conekta.Request) (*conekta.Response, error) {
	if c.interceptors != nil {
		err := c.interceptors.ExecuteRequestInterceptors(ctx, req)
		if err != nil {
			return nil, &conekta.TransportError{Method: req.Method, Path: req.Path, Err: err}
		}
	}

	resp, err := c.roundTrip(ctx, req)

	if c.interceptors != nil {
		interceptErr := c.interceptors.ExecuteResponseInterceptors(ctx, req, resp, err)
		if interceptErr != nil && err == nil {
			return nil, &conekta.TransportError{Method: req.Method, Path: req.Path, Err: interceptErr}
		}
	}

	return resp, err
}

func (c *Client) roundTrip(ctx context.Context, req *conekta.Request) (*conekta.Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, &conekta.TransportError{Method: req.Method, Path: req.Path, Err: fmt.Errorf("creating request: %w", err)}
	}

	httpReq.Header.Set(constants.HeaderAccept, constants.AcceptVersion(c.apiVersion))
	httpReq.Header.Set(constants.HeaderAcceptLanguage, c.locale)
	httpReq.Header.Set(constants.HeaderUserAgent, c.userAgent)

	if req.Body != nil {
		httpReq.Header.Set(constants.HeaderContentType, constants.MediaTypeJSON)
	}

	if c.keys != nil {
		key, err := c.keys.GetKey(ctx)
		if err != nil {
			return nil, &conekta.TransportError{Method: req.Method, Path: req.Path, Err: fmt.Errorf("getting private key: %w", err)}
		}

		httpReq.Header.Set(constants.HeaderAuthorization, auth.BasicAuthorization(key))
	}

	for key, values := range req.Headers {
		httpReq.Header.Del(key)

		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &conekta.TransportError{Method: req.Method, Path: req.Path, Err: err}
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &conekta.TransportError{Method: req.Method, Path: req.Path, Err: fmt.Errorf("reading response body: %w", err)}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status":   httpResp.StatusCode,
			"duration": time.Since(start).String(),
			"bytes":    len(respBody),
		})
	}

	return &conekta.Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       respBody,
	}, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*conekta.Response, error) {
	return c.Do(ctx, &conekta.Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with body encoded as JSON.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*conekta.Response, error) {
	return c.send(ctx, http.MethodPost, path, body)
}

// Put performs a PUT request with body encoded as JSON.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*conekta.Response, error) {
	return c.send(ctx, http.MethodPut, path, body)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*conekta.Response, error) {
	return c.Do(ctx, &conekta.Request{Method: http.MethodDelete, Path: path})
}

func (c *Client) send(ctx context.Context, method, path string, body interface{}) (*conekta.Response, error) {
	req := &conekta.Request{Method: method, Path: path}

	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		req.Body = encoded
	}

	return c.Do(ctx, req)
}

// retryablehttp logs this before every attempt; roundTrip already logs
// the request.
const attemptMessage = "performing request"

// leveledLogger bridges retryablehttp's logger to conekta.Logger.
type leveledLogger struct {
	logger conekta.Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, fields(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, fields(keysAndValues))
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	if msg == attemptMessage {
		return
	}

	l.logger.Debug(msg, fields(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, fields(keysAndValues))
}

func fields(keysAndValues []interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprint(keysAndValues[i])
		}

		out[key] = keysAndValues[i+1]
	}

	return out
}
