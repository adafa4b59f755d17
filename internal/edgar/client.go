/*
Package edgar retrieves the SEC EDGAR daily filing index, filters it against
a ticker watchlist and form set, and extracts Item sections from 8-K bodies.
*/
package edgar

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultArchivesBaseURL   = "https://www.sec.gov/Archives"
	defaultCompanyTickersURL = "https://www.sec.gov/files/company_tickers.json"
	requestTimeout           = 30 * time.Second

	// DefaultLookbackDays bounds how many calendar days the resolver steps
	// back when the requested date has no published index.
	DefaultLookbackDays = 7

	// DefaultSnippetLength bounds extracted item snippets.
	DefaultSnippetLength = 300
)

// DefaultForms is the form filter applied when the caller supplies none.
var DefaultForms = []string{"8-K", "8-K/A", "DEF 14A", "DEFA14A"}

// Client talks to EDGAR. All outbound requests carry the identifying
// User-Agent the SEC access policy requires and pass through a shared rate
// limiter so consecutive requests are spaced.
type Client struct {
	httpClient   *http.Client
	userAgent    string
	limiter      *rate.Limiter
	archivesBase string
	tickersURL   string
	snippetLen   int
}

// Option customizes a Client.
type Option func(*Client)

// NewClient creates an EDGAR client. userAgent must identify the operator
// per SEC guidelines (e.g. "secscan (you@example.com)").
func NewClient(userAgent string, opts ...Option) *Client {
	c := &Client{
		httpClient:   &http.Client{Timeout: requestTimeout},
		userAgent:    userAgent,
		limiter:      rate.NewLimiter(rate.Limit(10), 10),
		archivesBase: defaultArchivesBaseURL,
		tickersURL:   defaultCompanyTickersURL,
		snippetLen:   DefaultSnippetLength,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRateLimit overrides the default request spacing (10 req/s, the SEC
// published fair-access ceiling).
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithSnippetLength overrides the extracted snippet bound.
func WithSnippetLength(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.snippetLen = n
		}
	}
}

// WithArchivesBaseURL points the client at a different Archives root.
func WithArchivesBaseURL(base string) Option {
	return func(c *Client) {
		c.archivesBase = base
	}
}

// WithCompanyTickersURL points the client at a different ticker mapping resource.
func WithCompanyTickersURL(url string) Option {
	return func(c *Client) {
		c.tickersURL = url
	}
}

// errNotFound signals a 403/404 from EDGAR: the resource does not exist (or
// is masked), as opposed to a transport failure.
var errNotFound = errors.New("resource not available")

func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL %s: %w", url, err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return resp, nil
	case resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusNotFound:
		resp.Body.Close()
		return nil, fmt.Errorf("%s: %w", url, errNotFound)
	default:
		resp.Body.Close()
		return nil, fmt.Errorf("received non-OK status code %d from %s", resp.StatusCode, url)
	}
}

// fileContents fetches a document body as text. A missing document is not an
// error: it yields empty content, which downstream treats as an empty
// extraction.
func (c *Client) fileContents(ctx context.Context, url string) (string, error) {
	resp, err := c.get(ctx, url)
	if err != nil {
		if errors.Is(err, errNotFound) {
			return "", nil
		}
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body from %s: %w", url, err)
	}
	return string(body), nil
}
