package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/codevoice/internal/catalog"
)

const (
	endpointRoot     = "/"
	endpointProblems = "/problems"
	endpointExecute  = "/execute"
	endpointAskAI    = "/ask-ai"

	// errorBodyLimit caps how much of a non-2xx body is kept in ErrStatus.
	errorBodyLimit = 512
)

// RequestInfo describes one completed HTTP exchange with the backend.
type RequestInfo struct {
	RequestID  string
	Method     string
	Endpoint   string
	StatusCode int // 0 when no response was received
	Latency    time.Duration
	Err        error
}

// Observer is notified after every backend request. Observers may be
// called from several goroutines at once.
type Observer func(RequestInfo)

// Client talks to the backend over HTTP.
type Client struct {
	baseURL   string
	client    *http.Client
	userAgent string
	observers []Observer
}

var _ Backend = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithTimeout bounds each request. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.client
		hc.Timeout = d
		c.client = &hc
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithObserver registers a request observer.
func WithObserver(o Observer) Option {
	return func(c *Client) { c.observers = append(c.observers, o) }
}

// NewClient creates a Client for the backend rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		client:    &http.Client{},
		userAgent: "codevoice",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) ListProblems(ctx context.Context) ([]catalog.Problem, error) {
	body, _, err := c.do(ctx, http.MethodGet, endpointProblems, nil)
	if err != nil {
		return nil, err
	}

	if err := validateProblems(body); err != nil {
		return nil, &ErrInvalidResponse{Endpoint: endpointProblems, Err: err}
	}

	var problems []catalog.Problem
	if err := json.Unmarshal(body, &problems); err != nil {
		return nil, &ErrInvalidResponse{Endpoint: endpointProblems, Err: err}
	}
	if problems == nil {
		problems = []catalog.Problem{}
	}
	return problems, nil
}

func (c *Client) Execute(ctx context.Context, req ExecuteRequest) (*ExecuteResponse, error) {
	body, _, err := c.do(ctx, http.MethodPost, endpointExecute, req)
	if err != nil {
		return nil, err
	}

	var resp ExecuteResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &ErrInvalidResponse{Endpoint: endpointExecute, Err: err}
	}
	return &resp, nil
}

func (c *Client) AskAI(ctx context.Context, req HintRequest) (*Audio, error) {
	body, header, err := c.do(ctx, http.MethodPost, endpointAskAI, req)
	if err != nil {
		return nil, err
	}

	contentType := header.Get("Content-Type")
	if !isAudioType(contentType) {
		return nil, &ErrInvalidResponse{
			Endpoint: endpointAskAI,
			Err:      fmt.Errorf("unexpected content type %q", contentType),
		}
	}
	if len(body) == 0 {
		return nil, &ErrInvalidResponse{Endpoint: endpointAskAI, Err: errors.New("empty audio payload")}
	}
	return &Audio{Data: body, ContentType: contentType}, nil
}

func (c *Client) Greeting(ctx context.Context) (*Greeting, error) {
	body, _, err := c.do(ctx, http.MethodGet, endpointRoot, nil)
	if err != nil {
		return nil, err
	}

	var g Greeting
	if err := json.Unmarshal(body, &g); err != nil {
		return nil, &ErrInvalidResponse{Endpoint: endpointRoot, Err: err}
	}
	return &g, nil
}

// isAudioType accepts audio/* and the generic binary type some servers
// send for streamed files. A missing header is accepted too.
func isAudioType(contentType string) bool {
	if contentType == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return strings.HasPrefix(mediaType, "audio/") || mediaType == "application/octet-stream"
}

// do performs one request and returns the body of a 2xx response.
func (c *Client) do(ctx context.Context, method, endpoint string, payload any) ([]byte, http.Header, error) {
	info := RequestInfo{
		RequestID: uuid.New().String(),
		Method:    method,
		Endpoint:  endpoint,
	}
	start := time.Now()
	defer func() {
		info.Latency = time.Since(start)
		for _, o := range c.observers {
			o(info)
		}
	}()

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			info.Err = fmt.Errorf("encode request: %w", err)
			return nil, nil, info.Err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		info.Err = fmt.Errorf("build request: %w", err)
		return nil, nil, info.Err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", info.RequestID)

	resp, err := c.client.Do(req)
	if err != nil {
		info.Err = &ErrUnavailable{Endpoint: endpoint, Err: err}
		return nil, nil, info.Err
	}
	defer func() { _ = resp.Body.Close() }()
	info.StatusCode = resp.StatusCode

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		info.Err = &ErrStatus{Endpoint: endpoint, StatusCode: resp.StatusCode, Body: string(excerpt)}
		return nil, nil, info.Err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		info.Err = &ErrUnavailable{Endpoint: endpoint, Err: fmt.Errorf("read body: %w", err)}
		return nil, nil, info.Err
	}
	return body, resp.Header, nil
}
