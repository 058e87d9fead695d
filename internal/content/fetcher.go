package content

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// DefaultPath is the static resource path the site has always served the
// document from.
const DefaultPath = "/static/data.json"

// Fetcher retrieves the raw content document.
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// HTTPFetcher GETs the document from a URL.
type HTTPFetcher struct {
	URL    string
	Client *http.Client
}

func (f *HTTPFetcher) Fetch(ctx context.Context) ([]byte, error) {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %v: %w", f.URL, err, ErrTransport)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %v: %w", f.URL, err, ErrTransport)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s: status %d: %w", f.URL, resp.StatusCode, ErrTransport)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading body from %s: %v: %w", f.URL, err, ErrTransport)
	}
	return body, nil
}

// FileFetcher reads the document from the local filesystem.
type FileFetcher struct {
	Path string
}

func (f *FileFetcher) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %v: %w", f.Path, err, ErrTransport)
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %v: %w", f.Path, err, ErrTransport)
	}
	return data, nil
}

// NewFetcher picks an HTTPFetcher for http(s) sources and a FileFetcher for
// everything else.
func NewFetcher(source string, client *http.Client) Fetcher {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return &HTTPFetcher{URL: source, Client: client}
	}
	return &FileFetcher{Path: source}
}
