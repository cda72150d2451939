package namabar

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v3"
	"github.com/pkg/errors"

	"github.com/namabar/namabar-go/internal/httputil"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.namabar.krd"

// defaultTimeout applies when no HTTP client is configured.
const defaultTimeout = 30 * time.Second

// ErrMissingAPIKey is returned by NewClient when the configuration has no API key.
var ErrMissingAPIKey = errors.New("namabar: API key is required")

// errServerStatus marks a 5xx response as retryable.
var errServerStatus = errors.New("namabar: server error")

// Doer executes HTTP requests. *http.Client implements it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Logger receives one debug entry per request. parser.Logger implements it.
type Logger interface {
	Debug(msg string, attrs ...any)
}

// Client calls the Namabar API. It is safe for concurrent use.
type Client struct {
	baseURL    string
	serviceID  string
	headers    http.Header
	httpClient Doer
	logger     Logger
	maxRetries uint64
	newBackOff func() backoff.BackOff
}

// ClientOption configures a Client.
type ClientOption func(*Client) error

// NewClient creates a client from cfg. It fails with ErrMissingAPIKey when
// cfg.APIKey is empty.
func NewClient(cfg Config, opts ...ClientOption) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	c := &Client{
		baseURL:    DefaultBaseURL,
		serviceID:  cfg.ServiceID,
		httpClient: &http.Client{Timeout: defaultTimeout},
		headers: http.Header{
			"Content-Type": []string{httputil.JSONMediaType},
			"Accept":       []string{httputil.JSONMediaType},
			"X-Api-Key":    []string{apiKey},
			"User-Agent":   []string{UserAgent()},
		},
		newBackOff: defaultBackOff,
	}
	if cfg.BaseURL != "" {
		if err := WithBaseURL(cfg.BaseURL)(c); err != nil {
			return nil, err
		}
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// WithBaseURL sets the API root, e.g. a staging host.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) error {
		u, err := url.Parse(baseURL)
		if err != nil {
			return errors.Wrap(err, "namabar: invalid base URL")
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return errors.Errorf("namabar: base URL %q must use http or https", baseURL)
		}
		c.baseURL = strings.TrimRight(baseURL, "/")
		return nil
	}
}

// WithHTTPClient sets the client used to send requests.
func WithHTTPClient(doer Doer) ClientOption {
	return func(c *Client) error {
		if doer == nil {
			return errors.New("namabar: HTTP client cannot be nil")
		}
		c.httpClient = doer
		return nil
	}
}

// WithHeader adds a header sent with every request. It replaces a default
// header of the same name.
func WithHeader(name, value string) ClientOption {
	return func(c *Client) error {
		if name == "" {
			return errors.New("namabar: header name cannot be empty")
		}
		c.headers.Set(name, value)
		return nil
	}
}

// WithUserAgent replaces the default User-Agent.
func WithUserAgent(ua string) ClientOption {
	return WithHeader("User-Agent", ua)
}

// WithLogger sets a logger for per-request debug output.
func WithLogger(logger Logger) ClientOption {
	return func(c *Client) error {
		c.logger = logger
		return nil
	}
}

// WithRetry retries idempotent requests (GET, HEAD, OPTIONS, PUT, DELETE) up
// to maxRetries times with exponential backoff when sending fails or the
// server answers 5xx. POST and PATCH are never retried.
func WithRetry(maxRetries uint64) ClientOption {
	return func(c *Client) error {
		c.maxRetries = maxRetries
		return nil
	}
}

func defaultBackOff() backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 200 * time.Millisecond
	exp.MaxInterval = 5 * time.Second
	exp.MaxElapsedTime = 30 * time.Second
	return exp
}

// ServiceID returns the service ID from the client's Config.
func (c *Client) ServiceID() string {
	return c.serviceID
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// DefaultHeaders returns a copy of the headers sent with every request.
func (c *Client) DefaultHeaders() http.Header {
	return c.headers.Clone()
}

// Do sends a request to path (relative to the base URL). A non-nil body is
// encoded as JSON. Any HTTP status is returned as a Response; the error is
// non-nil only when the request could not be completed.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any) (*Response, error) {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return nil, errors.Wrap(err, "namabar: encoding request body")
		}
	}
	return c.send(ctx, strings.ToUpper(method), path, query, nil, nil, payload)
}

// do sends a request built by a generated endpoint method.
func (c *Client) do(ctx context.Context, r *request) (*Response, error) {
	var payload []byte
	if len(r.body) > 0 {
		var err error
		if payload, err = json.Marshal(r.body); err != nil {
			return nil, errors.Wrapf(err, "namabar: encoding %s %s body", r.method, r.path)
		}
	}
	return c.send(ctx, r.method, r.path, r.query, r.header, r.cookies, payload)
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, header http.Header, cookies []*http.Cookie, payload []byte) (*Response, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	attempt := func() (*Response, error) {
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, target, body)
		if err != nil {
			return nil, backoff.Permanent(errors.Wrap(err, "namabar: building request"))
		}
		req.Header = c.DefaultHeaders()
		for name, values := range header {
			req.Header[name] = values
		}
		for _, cookie := range cookies {
			req.AddCookie(cookie)
		}

		start := time.Now()
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, errors.Wrapf(err, "namabar: %s %s", method, path)
		}
		defer func() {
			_ = resp.Body.Close()
		}()
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, errors.Wrapf(err, "namabar: reading %s %s response", method, path)
		}
		if c.logger != nil {
			c.logger.Debug("namabar request",
				"method", method,
				"path", path,
				"status", resp.StatusCode,
				"duration", time.Since(start).String(),
			)
		}
		return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: data}, nil
	}

	if c.maxRetries == 0 || !httputil.IsIdempotent(method) {
		resp, err := attempt()
		return resp, unwrapPermanent(err)
	}

	var last *Response
	operation := func() error {
		resp, err := attempt()
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}
		last = resp
		if resp.StatusCode >= http.StatusInternalServerError {
			return errServerStatus
		}
		return nil
	}
	notify := func(err error, wait time.Duration) {
		if c.logger != nil {
			c.logger.Debug("namabar retry", "method", method, "path", path, "error", err.Error(), "wait", wait.String())
		}
	}
	bo := backoff.WithContext(backoff.WithMaxRetries(c.newBackOff(), c.maxRetries), ctx)
	err := backoff.RetryNotify(operation, bo, notify)
	switch {
	case err == nil:
		return last, nil
	case errors.Is(err, errServerStatus) && last != nil:
		return last, nil
	default:
		return nil, unwrapPermanent(err)
	}
}

func unwrapPermanent(err error) error {
	var perm *backoff.PermanentError
	if errors.As(err, &perm) {
		return perm.Err
	}
	return err
}
