package crawler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPClient is satisfied by *http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusError is returned for any non-2xx response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.StatusCode)
}

type Fetcher struct {
	Client    HTTPClient
	UserAgent string
	Timeout   time.Duration
}

func NewFetcher(client HTTPClient, userAgent string, timeout time.Duration) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}
	return &Fetcher{Client: client, UserAgent: userAgent, Timeout: timeout}
}

// Fetch performs a single GET and returns the body as text. There are no retries.
func (f *Fetcher) Fetch(ctx context.Context, targetURL string) (string, error) {
	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request for %s: %w", targetURL, err)
	}
	req.Header.Set("User-Agent", f.UserAgent)

	resp, err := f.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("GET %s: %w", targetURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{URL: targetURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body of %s: %w", targetURL, err)
	}
	return string(body), nil
}
