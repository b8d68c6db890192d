package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/placeholder/pkg/domain"
)

// DefaultBaseURL is the public JSONPlaceholder API.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

// DefaultTimeout bounds a single request when no client is injected.
const DefaultTimeout = 30 * time.Second

// maxBodySize caps how much of a response is read (collections are small).
const maxBodySize = 8 << 20

// StatusError is returned for non-2xx responses.
type StatusError struct {
	URL    string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.Status)
}

// Source implements ports.DataSource over a JSONPlaceholder-compatible REST API.
type Source struct {
	baseURL *url.URL
	client  *http.Client
	logger  *slog.Logger
	timeout time.Duration
}

// Option configures the Source.
type Option func(*Source)

// WithHTTPClient injects a custom client (e.g. httptest's).
func WithHTTPClient(c *http.Client) Option {
	return func(s *Source) {
		s.client = c
	}
}

// WithTimeout sets the request timeout of the default client. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(s *Source) {
		s.timeout = d
	}
}

// WithLogger sets a structured logger for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Source) {
		s.logger = logger
	}
}

// New creates a Source rooted at baseURL.
func New(baseURL string, opts ...Option) (*Source, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", baseURL)
	}

	s := &Source{
		baseURL: u,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.client == nil {
		s.client = &http.Client{Timeout: s.timeout}
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s, nil
}

// URL resolves the endpoint for a collection.
// Comments scoped to a post use the nested route (/posts/{id}/comments).
func (s *Source) URL(kind domain.ResourceKind, filter domain.Filter) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("%w: %s", domain.ErrUnknownResource, kind)
	}

	u := *s.baseURL
	q := url.Values{}

	switch {
	case kind == domain.ResourceComments && filter.PostID != 0:
		u.Path += "/posts/" + strconv.Itoa(filter.PostID) + "/comments"
	default:
		u.Path += "/" + string(kind)
		if filter.PostID != 0 {
			q.Set("postId", strconv.Itoa(filter.PostID))
		}
	}
	if filter.UserID != 0 {
		q.Set("userId", strconv.Itoa(filter.UserID))
	}

	u.RawQuery = q.Encode()
	return u.String(), nil
}

// FetchCollection performs a GET and decodes a JSON array of objects.
func (s *Source) FetchCollection(ctx context.Context, kind domain.ResourceKind, filter domain.Filter) ([]domain.Record, error) {
	endpoint, err := s.URL(kind, filter)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	s.logger.Debug("http fetch", "url", endpoint, "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		return nil, &StatusError{URL: endpoint, Status: resp.StatusCode}
	}

	var records []domain.Record
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", endpoint, err)
	}
	if records == nil {
		records = []domain.Record{}
	}
	return records, nil
}
