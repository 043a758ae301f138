// Package client talks to the services around the device library: the host
// VM bridge and the user kit API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"device_library/internal/logger"
)

const maxBodyBytes = 4 << 20

// Options configure a JSON client.
type Options struct {
	BaseURL string
	Timeout time.Duration
	Retries int           // extra attempts after the first
	Backoff time.Duration // multiplied by the attempt number
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Method string
	URL    string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status code: %d, response: %s", e.Method, e.URL, e.Code, e.Body)
}

func (e *StatusError) retryable() bool {
	return e.Code >= http.StatusInternalServerError
}

// jsonClient is the JSON-over-HTTP core shared by the concrete clients.
type jsonClient struct {
	http    *http.Client
	baseURL string
	retries int
	backoff time.Duration
	log     *logger.Logger
}

func newJSONClient(opts Options, log *logger.Logger) (*jsonClient, error) {
	base, err := normalizeBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}
	return &jsonClient{
		http:    &http.Client{Timeout: timeout},
		baseURL: base,
		retries: max(opts.Retries, 0),
		backoff: opts.Backoff,
		log:     log,
	}, nil
}

// normalizeBaseURL adds a missing scheme and strips trailing slashes.
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid base URL %q", raw)
	}
	return strings.TrimRight(u.String(), "/"), nil
}

// do sends in (if non-nil) as JSON and decodes the response into out (if
// non-nil). Transport errors and 5xx responses are retried.
func (c *jsonClient) do(ctx context.Context, method, path string, in, out any) error {
	var body []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = b
	}

	target := c.baseURL + path
	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			c.log.Debugw("retrying request", "method", method, "url", target, "attempt", attempt, "error", lastErr)
			if err := sleepCtx(ctx, time.Duration(attempt)*c.backoff); err != nil {
				return err
			}
		}

		lastErr = c.once(ctx, method, target, body, out)
		if lastErr == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		var se *StatusError
		if errors.As(lastErr, &se) && !se.retryable() {
			return lastErr
		}
	}
	return lastErr
}

func (c *jsonClient) once(ctx context.Context, method, target string, body []byte, out any) error {
	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, rdr)
	if err != nil {
		return fmt.Errorf("create http request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, target, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Method: method, URL: target, Code: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
