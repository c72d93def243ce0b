package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"strconv"
	"time"
)

// maxDocumentBytes caps how much guideline text a single fetch will accept.
const maxDocumentBytes = 4 << 20

// Client fetches guideline text over HTTP with retry/backoff on
// transient failures.
type Client struct {
	httpClient       *http.Client
	retryMaxAttempts int
	retryBaseDelay   time.Duration
	retryMaxDelay    time.Duration
}

// NewClient allows customizing HTTP timeout and retry/backoff behavior.
// retryMax of 1 disables retries entirely.
func NewClient(httpTimeout time.Duration, retryMax int, baseDelay, maxDelay time.Duration) *Client {
	if httpTimeout <= 0 {
		httpTimeout = 30 * time.Second
	}
	if retryMax <= 0 {
		retryMax = 3
	}
	if baseDelay <= 0 {
		baseDelay = 500 * time.Millisecond
	}
	if maxDelay <= 0 {
		maxDelay = 4 * time.Second
	}
	return &Client{
		httpClient:       &http.Client{Timeout: httpTimeout},
		retryMaxAttempts: retryMax,
		retryBaseDelay:   baseDelay,
		retryMaxDelay:    maxDelay,
	}
}

// Get downloads the document at url and returns its raw text.
// The body is treated as opaque; no structure is interpreted.
func (c *Client) Get(ctx context.Context, url string) (string, error) {
	maxAttempts := c.retryMaxAttempts
	backoff := c.retryBaseDelay

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return "", fmt.Errorf("build request: %w", err)
		}
		httpReq.Header.Set("Accept", "text/markdown, text/plain, */*")

		resp, err := c.httpClient.Do(httpReq)
		if err != nil {
			if isRetryableNetErr(err) && attempt < maxAttempts {
				lastErr = &UnreachableError{URL: url, Err: err}
				time.Sleep(backoff)
				backoff *= 2
				continue
			}
			return "", &UnreachableError{URL: url, Err: err}
		}
		text, retryable, err := readResponse(resp, url)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if !retryable || attempt >= maxAttempts {
			break
		}
		// Respect Retry-After if the server sent one, otherwise
		// exponential backoff with jitter and a cap.
		sleep := withJitter(backoff)
		if secs := retryAfterSeconds(resp); secs > 0 {
			sleep = time.Duration(secs) * time.Second
		}
		if c.retryMaxDelay > 0 && sleep > c.retryMaxDelay {
			sleep = c.retryMaxDelay
		}
		time.Sleep(sleep)
		backoff *= 2
	}
	return "", lastErr
}

func readResponse(resp *http.Response, url string) (text string, retryable bool, err error) {
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		fErr := &FetchError{URL: url, StatusCode: resp.StatusCode, Body: string(body)}
		retryable = resp.StatusCode == http.StatusTooManyRequests ||
			(resp.StatusCode >= 500 && resp.StatusCode <= 599)
		return "", retryable, fErr
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return "", true, fmt.Errorf("read body: %w", err)
	}
	return string(b), false, nil
}

func isRetryableNetErr(err error) bool {
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return true
	}
	if errors.Is(err, io.EOF) {
		return true
	}
	return false
}

// retryAfterSeconds interprets a Retry-After header as seconds or HTTP date.
// Returns 0 if absent or unparseable.
func retryAfterSeconds(resp *http.Response) int {
	v := resp.Header.Get("Retry-After")
	if v == "" {
		return 0
	}
	if s, err := strconv.Atoi(v); err == nil {
		return s
	}
	if t, err := http.ParseTime(v); err == nil {
		d := time.Until(t)
		if d < 0 {
			return 0
		}
		return int(d.Seconds())
	}
	return 0
}

// withJitter returns a backoff duration with +/- 20% jitter applied.
func withJitter(d time.Duration) time.Duration {
	if d <= 0 {
		return 500 * time.Millisecond
	}
	f := 0.8 + rand.Float64()*0.4
	out := time.Duration(float64(d) * f)
	if out <= 0 {
		return d
	}
	return out
}
