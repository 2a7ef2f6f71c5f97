// Package source fetches roster text and turns it into parsed records.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// ErrEmptySource is reported when a fetch succeeds but yields no data rows.
var ErrEmptySource = errors.New("roster source has no data rows")

// maxBody caps how much roster text is read from a remote source.
const maxBody = 4 << 20

// Source returns raw roster text.
type Source interface {
	Fetch(ctx context.Context) (string, error)
	String() string
}

// HTTPSource fetches a published CSV over HTTP.
type HTTPSource struct {
	URL        string
	httpClient *http.Client
	userAgent  string
}

// NewHTTP creates an HTTP source with the given request timeout.
func NewHTTP(url string, timeout time.Duration, userAgent string) *HTTPSource {
	return &HTTPSource{
		URL: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

func (s *HTTPSource) String() string { return s.URL }

// Fetch makes a GET request and returns the body. Any status other than 200
// is an error.
func (s *HTTPSource) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("roster source error: status=%d, body=%s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}
	return string(body), nil
}

// FileSource reads roster text from a local file.
type FileSource struct {
	Path string
}

func (s FileSource) String() string { return s.Path }

func (s FileSource) Fetch(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("reading roster file: %w", err)
	}
	return string(b), nil
}

// StaticSource serves fixed text. It backs tests and the offline demo roster.
type StaticSource struct {
	Name string
	Text string
}

func (s StaticSource) String() string { return s.Name }

func (s StaticSource) Fetch(ctx context.Context) (string, error) {
	return s.Text, ctx.Err()
}
