// Package runner talks to the external code execution service and provides
// the local step echo.
package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/masterclass/internal/logging"
)

// Fixed texts shown to the user.
const (
	RunningText  = "Running..."
	NoOutputText = "No output returned."
	ErrorText    = "Error running Java code. Check server logs for details."
)

// maxLoggedBody caps how much of an unexpected response body is logged.
const maxLoggedBody = 2048

// Display receives the text to show in the output area.
type Display interface {
	Show(text string)
}

// DisplayFunc adapts a function to Display.
type DisplayFunc func(text string)

func (f DisplayFunc) Show(text string) { f(text) }

// Discard is a Display that shows nothing.
var Discard Display = DisplayFunc(func(string) {})

var (
	errStatus  = errors.New("unexpected status")
	errNotJSON = errors.New("response is not valid JSON")
)

type runRequest struct {
	Code string `json:"code"`
}

type runResponse struct {
	Output json.RawMessage `json:"output"`
}

// Client sends source code to the execution service.
type Client struct {
	url     string
	http    *http.Client
	timeout time.Duration
	logger  *logging.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

// WithTimeout bounds each request. Zero means no timeout. It applies to the
// HTTP client whichever option order is used.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.timeout = d }
}

// WithLogger sets the client's logger.
func WithLogger(l *logging.Logger) ClientOption {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a Client for the service at url.
func NewClient(url string, opts ...ClientOption) *Client {
	c := &Client{url: url, http: &http.Client{}, logger: logging.Nop()}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.http
		hc.Timeout = c.timeout
		c.http = &hc
	}
	return c
}

// Run shows RunningText, submits source and shows the result: the returned
// output, NoOutputText for a response without output, or ErrorText for any
// failure. Failure detail goes to the log only. The shown text is returned.
func (c *Client) Run(ctx context.Context, source string, out Display) string {
	out.Show(RunningText)

	runID := uuid.NewString()
	text := NoOutputText
	output, err := c.execute(ctx, runID, source)
	switch {
	case err != nil:
		c.logger.Error("code run failed", "run_id", runID, "url", c.url, "error", err)
		text = ErrorText
	case output != "":
		text = output
	}

	out.Show(text)
	return text
}

func (c *Client) execute(ctx context.Context, runID, source string) (string, error) {
	payload, err := json.Marshal(runRequest{Code: source})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", runID)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("POST %s: %w", c.url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w %d: %s", errStatus, resp.StatusCode, truncate(body))
	}

	var result runResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("%w: %v: %s", errNotJSON, err, truncate(body))
	}
	return outputText(result.Output), nil
}

// outputText renders the output field as display text. Strings are shown as
// is and other non-empty values as their JSON literal. null, false, 0, "" and
// empty arrays or objects count as no output.
func outputText(raw json.RawMessage) string {
	var v interface{}
	if len(raw) == 0 || json.Unmarshal(raw, &v) != nil {
		return ""
	}
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if !val {
			return ""
		}
	case float64:
		if val == 0 {
			return ""
		}
	case []interface{}:
		if len(val) == 0 {
			return ""
		}
	case map[string]interface{}:
		if len(val) == 0 {
			return ""
		}
	}
	return string(bytes.TrimSpace(raw))
}

func truncate(body []byte) string {
	if len(body) > maxLoggedBody {
		return string(body[:maxLoggedBody]) + "..."
	}
	return string(body)
}
