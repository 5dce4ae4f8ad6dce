package prodcal

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "production-calendar-go"
)

// Response is the raw outcome of a GET call
type Response struct {
	StatusCode int
	Reason     string
	Body       []byte
}

// Transport performs GET requests. Timeouts, retries and rate limiting belong
// to the implementation.
type Transport interface {
	Get(ctx context.Context, url string) (*Response, error)
}

// TransportFunc adapts a function to Transport
type TransportFunc func(ctx context.Context, url string) (*Response, error)

// Get calls f
func (f TransportFunc) Get(ctx context.Context, url string) (*Response, error) {
	return f(ctx, url)
}

// HTTPTransport is the default Transport on top of net/http
type HTTPTransport struct {
	httpClient *http.Client
	headers    http.Header
}

// NewHTTPTransport creates an HTTPTransport with the given timeout (10s when zero)
func NewHTTPTransport(timeout time.Duration) *HTTPTransport {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return NewHTTPTransportWithClient(&http.Client{Timeout: timeout})
}

// NewHTTPTransportWithClient wraps a caller-configured http.Client
func NewHTTPTransportWithClient(client *http.Client) *HTTPTransport {
	headers := make(http.Header)
	headers.Set("Accept", "application/json")
	headers.Set("User-Agent", defaultUserAgent)

	return &HTTPTransport{
		httpClient: client,
		headers:    headers,
	}
}

// WithHeader returns a copy of the transport sending an extra header
func (t *HTTPTransport) WithHeader(key, value string) *HTTPTransport {
	headers := t.headers.Clone()
	headers.Set(key, value)
	return &HTTPTransport{httpClient: t.httpClient, headers: headers}
}

// Get performs the request and reads the whole body
func (t *HTTPTransport) Get(ctx context.Context, url string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for key, values := range t.headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Reason:     reason(resp),
		Body:       body,
	}, nil
}

// reason strips the numeric prefix from resp.Status ("404 Not Found" -> "Not Found")
func reason(resp *http.Response) string {
	r := strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode))
	r = strings.TrimSpace(r)
	if r == "" {
		r = http.StatusText(resp.StatusCode)
	}
	return r
}
