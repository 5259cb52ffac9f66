// Package http implements the transport used by the Eventline client: URI
// construction, authentication headers, certificate pinning, timing and the
// classification of every outcome into an eventline.TransportError.
package http

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/exograd/eventline-go/internal/auth"
	"github.com/exograd/eventline-go/internal/constants"
	"github.com/exograd/eventline-go/pkg/eventline"
)

// Request describes one API call.
//
// Path is appended verbatim to the base path of the endpoint and must already
// be escaped. Query is only used by list calls to carry cursor parameters.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response is the outcome of a call that reached the server.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Document   eventline.Document
	Elapsed    time.Duration
}

// Client performs authenticated HTTPS calls against one endpoint. It is safe
// for concurrent use; the pooled transport is the only shared state.
type Client struct {
	baseURI      string
	tokenManager auth.TokenManager
	projectID    string
	userAgent    string
	timeout      time.Duration
	pins         *PinSet
	rootCAs      *x509.CertPool
	logger       eventline.Logger
	debug        bool
	httpClient   *retryablehttp.Client
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger receiving one line per call.
func WithLogger(logger eventline.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithDebug enables logging of outgoing requests.
func WithDebug(debug bool) Option {
	return func(c *Client) { c.debug = debug }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) { c.userAgent = userAgent }
}

// WithTimeout sets the wall-clock budget of a whole call.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.timeout = timeout }
}

// WithProjectID scopes calls to a project.
func WithProjectID(projectID string) Option {
	return func(c *Client) { c.projectID = projectID }
}

// WithPinSet restricts accepted server keys to pins.
func WithPinSet(pins *PinSet) Option {
	return func(c *Client) { c.pins = pins }
}

// WithRootCAs replaces the system certificate pool.
func WithRootCAs(pool *x509.CertPool) Option {
	return func(c *Client) { c.rootCAs = pool }
}

// NewClient creates a client for endpoint, which must be an https URL. The
// token manager may be nil, in which case no Authorization header is sent.
func NewClient(endpoint string, tokenManager auth.TokenManager, opts ...Option) (*Client, error) {
	baseURI, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURI:      baseURI,
		tokenManager: tokenManager,
		userAgent:    constants.DefaultUserAgent,
		timeout:      eventline.DefaultTimeout,
		logger:       nopLogger{},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if c.logger == nil {
		c.logger = nopLogger{}
	}

	c.httpClient = c.newHTTPClient()

	return c, nil
}

func parseEndpoint(endpoint string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", &eventline.ConfigurationError{Field: "endpoint", Err: err}
	}

	if u.Scheme != "https" {
		return "", &eventline.ConfigurationError{
			Field:  "endpoint",
			Reason: fmt.Sprintf("unsupported scheme %q", u.Scheme),
			Err:    eventline.ErrHTTPSRequired,
		}
	}

	if u.Host == "" {
		return "", &eventline.ConfigurationError{Field: "endpoint", Err: eventline.ErrNoHostInEndpoint}
	}

	return u.Scheme + "://" + u.Host + strings.TrimSuffix(u.EscapedPath(), "/"), nil
}

func (c *Client) newHTTPClient() *retryablehttp.Client {
	transport := cleanhttp.DefaultPooledTransport()
	transport.TLSHandshakeTimeout = constants.TLSHandshakeTimeout
	transport.IdleConnTimeout = constants.IdleConnTimeout
	transport.MaxIdleConns = constants.MaxIdleConns
	transport.MaxIdleConnsPerHost = constants.MaxIdleConnsPerHost
	transport.TLSClientConfig = &tls.Config{
		MinVersion:       tls.VersionTLS12,
		RootCAs:          c.rootCAs,
		VerifyConnection: c.pins.VerifyConnection,
	}

	client := retryablehttp.NewClient()
	client.HTTPClient = &http.Client{
		Transport: transport,
		Timeout:   c.timeout,
	}
	client.RetryMax = 0
	client.CheckRetry = neverRetry
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	client.Logger = nil

	if c.debug {
		client.Logger = &leveledLogger{logger: c.logger}
		client.RequestLogHook = c.logRequest
	}

	return client
}

func (c *Client) logRequest(_ retryablehttp.Logger, req *http.Request, _ int) {
	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method":  req.Method,
		"url":     req.URL.String(),
		"project": req.Header.Get(constants.HeaderProjectID),
	})
}

// neverRetry leaves every retry decision to the caller.
func neverRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	return false, nil
}

// BaseURI returns the endpoint with its trailing slash removed.
func (c *Client) BaseURI() string {
	return c.baseURI
}

// BuildURI returns the full URI of path.
func (c *Client) BuildURI(path string, query url.Values) string {
	uri := c.baseURI + path
	if len(query) > 0 {
		uri += "?" + query.Encode()
	}

	return uri
}

// CloseIdleConnections closes pooled connections which are not in use.
func (c *Client) CloseIdleConnections() {
	c.httpClient.HTTPClient.CloseIdleConnections()
}

// Send performs method on path and returns the decoded response document,
// which is nil for empty bodies.
func (c *Client) Send(ctx context.Context, method, path string, body interface{}) (eventline.Document, error) {
	resp, err := c.Do(ctx, &Request{Method: method, Path: path, Body: body})
	if err != nil {
		return nil, err
	}

	return resp.Document, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// Do performs req once. The returned response is non-nil whenever the server
// answered, including for API errors. Requests which cannot be built, e.g.
// because the body cannot be encoded or the token manager fails, yield a
// ConfigurationError without any network activity.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	uri := c.BuildURI(req.Path, req.Query)

	httpReq, err := c.newRequest(ctx, req, uri)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, c.fail(req, uri, start, &eventline.TransportError{Kind: eventline.KindNetworkFailure, Err: err})
	}

	defer func() { _ = httpResp.Body.Close() }()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, c.fail(req, uri, start, &eventline.TransportError{
			Kind:       eventline.KindNetworkFailure,
			StatusCode: httpResp.StatusCode,
			Err:        fmt.Errorf("reading response body: %w", err),
		})
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       data,
		Elapsed:    time.Since(start),
	}

	c.logger.Info("HTTP Response", map[string]interface{}{
		"method":  req.Method,
		"path":    req.Path,
		"status":  resp.StatusCode,
		"elapsed": FormatElapsed(resp.Elapsed),
	})

	contentType := httpResp.Header.Get(constants.HeaderContentType)

	if !isSuccess(resp.StatusCode) {
		code, message, ok := decodeErrorBody(contentType, data)
		if !ok {
			code, message = "", reasonPhrase(httpResp)
		}

		return resp, &eventline.TransportError{
			Kind:       eventline.KindAPIError,
			Method:     req.Method,
			URI:        uri,
			StatusCode: resp.StatusCode,
			Code:       code,
			Message:    message,
		}
	}

	doc, err := DecodeResponse(contentType, data)
	if err != nil {
		return resp, &eventline.TransportError{
			Kind:       eventline.KindMalformedResponse,
			Method:     req.Method,
			URI:        uri,
			StatusCode: resp.StatusCode,
			Err:        err,
		}
	}

	resp.Document = doc

	return resp, nil
}

func (c *Client) newRequest(ctx context.Context, req *Request, uri string) (*retryablehttp.Request, error) {
	var rawBody interface{}

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, &eventline.ConfigurationError{Field: "request body", Err: err}
		}

		rawBody = data
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, uri, rawBody)
	if err != nil {
		return nil, &eventline.ConfigurationError{Field: "request", Err: err}
	}

	httpReq.Header.Set(constants.HeaderAccept, constants.MediaTypeJSON)
	httpReq.Header.Set(constants.HeaderUserAgent, c.userAgent)

	if rawBody != nil {
		httpReq.Header.Set(constants.HeaderContentType, constants.MediaTypeJSON)
	}

	if c.tokenManager != nil {
		token, err := c.tokenManager.GetToken(ctx)
		if err != nil {
			return nil, &eventline.ConfigurationError{Field: "api key", Err: err}
		}

		httpReq.Header.Set(constants.HeaderAuthorization, "Bearer "+token)
	}

	if c.projectID != "" {
		httpReq.Header.Set(constants.HeaderProjectID, c.projectID)
	}

	for name, value := range req.Headers {
		httpReq.Header.Set(name, value)
	}

	return httpReq, nil
}

func (c *Client) fail(req *Request, uri string, start time.Time, err *eventline.TransportError) error {
	err.Method = req.Method
	err.URI = uri

	c.logger.Error("HTTP Request Failed", map[string]interface{}{
		"method":  req.Method,
		"path":    req.Path,
		"elapsed": FormatElapsed(time.Since(start)),
		"error":   err.Err.Error(),
	})

	return err
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// reasonPhrase extracts the reason phrase of the status line, e.g. "Not
// Found" from "404 Not Found".
func reasonPhrase(resp *http.Response) string {
	phrase := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if phrase == "" {
		phrase = http.StatusText(resp.StatusCode)
	}

	return phrase
}
