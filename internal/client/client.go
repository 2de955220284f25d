package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/AlexZinkM/pagekit/internal/common"
	"github.com/AlexZinkM/pagekit/internal/model"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const (
	acceptJSON  = "application/json, text/javascript, */*; q=0.01"
	formType    = "application/x-www-form-urlencoded; charset=UTF-8"
	requestedBy = "XMLHttpRequest"
)

// Client issues JSON API calls and normalizes every outcome into one Result
type Client struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// WithLogger sets the logger used for request tracing and dropped outcomes
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a new API client. Relative request paths are resolved
// against baseURL; an empty baseURL leaves them untouched.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do performs the call synchronously
func (c *Client) Do(method, path string, data any) Result {
	target, err := c.resolve(path)
	if err != nil {
		c.logger.Warn("invalid request url", zap.String("url", path), zap.Error(err))
		return Result{Err: model.NetworkError(0)}
	}

	values, err := EncodeParams(data)
	if err != nil {
		c.logger.Warn("invalid request data", zap.String("url", target.String()), zap.Error(err))
		return Result{Err: model.NetworkError(0)}
	}

	req, err := newRequest(method, target, values)
	if err != nil {
		c.logger.Warn("failed to build request", zap.String("method", method), zap.String("url", target.String()), zap.Error(err))
		return Result{Err: model.NetworkError(0)}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Debug("request failed", zap.String("method", req.Method), zap.String("url", target.String()), zap.Error(err))
		return Result{Err: model.NetworkError(0)}
	}
	defer resp.Body.Close()

	result := readResult(resp)
	c.logger.Debug("api call",
		zap.String("method", req.Method),
		zap.String("url", target.String()),
		zap.Int("status", resp.StatusCode),
		zap.Bool("ok", result.OK()),
	)
	return result
}

// Go performs the call in the background. The returned channel yields
// exactly one Result and is then closed.
func (c *Client) Go(method, path string, data any) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		ch <- c.Do(method, path, data)
	}()
	return ch
}

// Request performs the call in the background and hands the outcome to cb.
// A nil cb drops the outcome; dropped errors are logged.
func (c *Client) Request(method, path string, data any, cb Callback) {
	go func() {
		result := c.Do(method, path, data)
		if cb == nil {
			c.dropped(method, path, result)
			return
		}
		result.Deliver(cb)
	}()
}

// Get issues a GET request; nil data is the same as an empty mapping
func (c *Client) Get(path string, data any, cb Callback) {
	c.Request(http.MethodGet, path, data, cb)
}

// Post issues a POST request; nil data is the same as an empty mapping
func (c *Client) Post(path string, data any, cb Callback) {
	c.Request(http.MethodPost, path, data, cb)
}

// GetResult issues a GET request and returns its future
func (c *Client) GetResult(path string, data any) <-chan Result {
	return c.Go(http.MethodGet, path, data)
}

// PostResult issues a POST request and returns its future
func (c *Client) PostResult(path string, data any) <-chan Result {
	return c.Go(http.MethodPost, path, data)
}

func (c *Client) dropped(method, path string, result Result) {
	if result.Err != nil {
		c.logger.Warn("unhandled api error",
			zap.String("method", method),
			zap.String("url", path),
			zap.String("error", result.Err.Code),
			zap.String("message", result.Err.Message),
		)
		return
	}
	c.logger.Debug("api result dropped", zap.String("method", method), zap.String("url", path))
}

func (c *Client) resolve(path string) (*url.URL, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse url: %w", err)
	}
	if c.baseURL == "" || ref.IsAbs() {
		return ref, nil
	}
	base, err := url.Parse(c.baseURL + "/")
	if err != nil {
		return nil, fmt.Errorf("failed to parse base url: %w", err)
	}
	return base.ResolveReference(ref), nil
}

func newRequest(method string, target *url.URL, values url.Values) (*http.Request, error) {
	method = strings.ToUpper(method)
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	u := *target
	if method == http.MethodGet || method == http.MethodHead {
		// Data goes to the query string, after any query already present
		if encoded := values.Encode(); encoded != "" {
			if u.RawQuery != "" {
				u.RawQuery += "&" + encoded
			} else {
				u.RawQuery = encoded
			}
		}
	} else {
		body = strings.NewReader(values.Encode())
	}

	req, err := http.NewRequest(method, u.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", acceptJSON)
	req.Header.Set("X-Requested-With", requestedBy)
	if body != nil {
		req.Header.Set("Content-Type", formType)
	}
	return req, nil
}

func readResult(resp *http.Response) Result {
	status := resp.StatusCode
	success := status >= 200 && status < 300 || status == http.StatusNotModified
	if !success {
		_, _ = io.Copy(io.Discard, resp.Body)
		return Result{Err: model.NetworkError(status), Status: status}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{Err: model.NetworkError(status), Status: status}
	}

	// No content is a success without a body
	if status == http.StatusNoContent || status == http.StatusNotModified ||
		(resp.Request != nil && resp.Request.Method == http.MethodHead) {
		return Result{Status: status}
	}

	if len(bytes.TrimSpace(raw)) == 0 || !gjson.ValidBytes(raw) {
		return Result{Err: model.NetworkError(status), Status: status}
	}

	if field, ok := common.BodyError(raw); ok {
		return Result{Err: appError(raw, field, status), Status: status}
	}
	return Result{Body: json.RawMessage(raw), Status: status}
}

// appError keeps the body unchanged and lifts the well-known fields
func appError(raw []byte, field gjson.Result, status int) *model.APIError {
	doc := gjson.ParseBytes(raw)
	return &model.APIError{
		Code:    field.String(),
		Data:    doc.Get("data").String(),
		Message: doc.Get(common.FieldMessage).String(),
		Raw:     json.RawMessage(raw),
		Status:  status,
	}
}
