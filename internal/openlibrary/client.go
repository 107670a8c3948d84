package openlibrary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public search endpoint.
const DefaultBaseURL = "https://openlibrary.org"

// resultLimit bounds every search to one page of results.
const resultLimit = 24

// searchFields is the field-selection list attached to every request so
// the API returns only what the UI renders.
const searchFields = "key,title,author_name,first_publish_year,publisher,subject,cover_i,isbn,language,number_of_pages_median,cover_edition_key,edition_key"

// Client issues search requests against the Open Library API.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint (used by tests).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// NewClient creates a search client. Requests are paced to stay polite
// toward the public API: one per second steady state with a small burst.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(1), 3),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search runs one query in the given mode and returns the usable records.
//
// The trimmed query must be non-empty, otherwise ErrEmptyQuery is returned
// and no request is made. Records with a missing or placeholder title are
// dropped before returning. Cancelling ctx aborts the request; the error
// then satisfies errors.Is(err, context.Canceled).
func (c *Client) Search(ctx context.Context, query string, mode Mode) ([]Book, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL(query, mode), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "BookVault/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, &NetworkError{Offline: isOffline(err), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{Status: resp.StatusCode, StatusText: http.StatusText(resp.StatusCode)}
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return filterUsable(body.Docs), nil
}

// searchURL builds the endpoint for a mode. The mode selects which query
// parameter carries the search text; limit and fields are always attached.
func (c *Client) searchURL(query string, mode Mode) string {
	params := url.Values{}
	switch mode {
	case ModeAuthor:
		params.Set("author", query)
	case ModeSubject:
		params.Set("subject", query)
	case ModeISBN:
		params.Set("isbn", query)
	default:
		params.Set("title", query)
	}
	params.Set("limit", fmt.Sprintf("%d", resultLimit))
	params.Set("fields", searchFields)
	return c.baseURL + "/search.json?" + params.Encode()
}

// filterUsable drops records that cannot be displayed: empty or
// placeholder "Unknown" titles.
func filterUsable(docs []Book) []Book {
	books := make([]Book, 0, len(docs))
	for _, doc := range docs {
		if doc.Title == "" || doc.Title == "Unknown" {
			continue
		}
		books = append(books, doc)
	}
	return books
}
