// Package prodcal is a client for the production-calendar.ru API: working days,
// holidays and period statistics per country and region.
package prodcal

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Client holds the token, default country and transport. It is immutable after
// NewClient and safe for concurrent use.
type Client struct {
	token     string
	country   string
	baseURL   string
	transport Transport
	logger    *zap.Logger

	countrySet bool
}

// Option configures a Client
type Option func(*Client)

// WithCountry sets the default country code for new queries
func WithCountry(code string) Option {
	return func(c *Client) {
		c.country = strings.TrimSpace(code)
		c.countrySet = true
	}
}

// WithTransport replaces the default HTTP transport
func WithTransport(t Transport) Option {
	return func(c *Client) { c.transport = t }
}

// WithBaseURL overrides the API root. A missing trailing slash is added.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" && !strings.HasSuffix(base, "/") {
			base += "/"
		}
		c.baseURL = base
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a new Client. The token is required.
func NewClient(token string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(token) == "" {
		return nil, newError(KindConfiguration, "new client", "token is required")
	}

	c := &Client{
		token:   token,
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.countrySet && c.country == "" {
		return nil, newError(KindConfiguration, "new client", "country is blank")
	}
	if c.baseURL == "" {
		return nil, newError(KindConfiguration, "new client", "base URL is empty")
	}
	if c.transport == nil {
		c.transport = NewHTTPTransport(0)
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}

	return c, nil
}

// Country returns the default country code
func (c *Client) Country() string {
	return c.country
}

// Period starts a get-period query
func (c *Client) Period() PeriodQuery {
	return PeriodQuery{client: c, country: c.country}
}

// WorkWeek starts a get-work-week query
func (c *Client) WorkWeek() WorkWeekQuery {
	return WorkWeekQuery{client: c, country: c.country, weekType: FiveDayWeek}
}

// url builds the request URL for an operation
func (c *Client) url(operation, country, specifier string, params []Param) string {
	return BuildURL(c.baseURL, operation, c.token, country, specifier, params)
}

// fetch performs one GET and returns a non-empty body of a 2xx response
func (c *Client) fetch(ctx context.Context, op, url string) ([]byte, error) {
	c.logger.Debug("Fetching calendar data",
		zap.String("op", op),
		zap.String("url", c.redact(url)))

	resp, err := c.transport.Get(ctx, url)
	if err != nil {
		return nil, wrapError(err, KindTransport, op, "request failed")
	}
	if resp == nil {
		return nil, newError(KindTransport, op, "transport returned no response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("API returned non-success status",
			zap.String("op", op),
			zap.Int("status", resp.StatusCode),
			zap.String("reason", resp.Reason))
		return nil, &Error{
			kind:   KindTransport,
			op:     op,
			msg:    strings.TrimSpace(fmt.Sprintf("API returned status %d %s", resp.StatusCode, resp.Reason)),
			status: resp.StatusCode,
		}
	}

	if len(strings.TrimSpace(string(resp.Body))) == 0 {
		return nil, newError(KindProtocol, op, "empty response body")
	}

	return resp.Body, nil
}

// redact hides the token in logged URLs
func (c *Client) redact(url string) string {
	return strings.Replace(url, "/"+c.token+"/", "/***/", 1)
}
