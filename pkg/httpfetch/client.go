// Package httpfetch performs the one outbound GET of the fetcher.
package httpfetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tgberrios/DataSync/pkg/retry"
)

// ErrTransport marks network, status and body-read failures.
var ErrTransport = errors.New("transport error")

// Config holds the client configuration.
type Config struct {
	URL         string
	Timeout     time.Duration
	MaxAttempts int
}

// Client fetches the remote users collection.
type Client struct {
	http      *http.Client
	url       string
	retryOpts retry.Options
}

// New creates a Client. The timeout is mandatory here: the process must
// never hang indefinitely on a stalled endpoint.
func New(cfg Config) *Client {
	opts := retry.DefaultOptions()
	if cfg.MaxAttempts > 0 {
		opts.MaxAttempts = cfg.MaxAttempts
	}
	// Only transport failures are worth another attempt
	opts.Classifier = func(err error) bool {
		return errors.Is(err, ErrTransport)
	}

	return &Client{
		http:      &http.Client{Timeout: cfg.Timeout},
		url:       cfg.URL,
		retryOpts: opts,
	}
}

// Get issues the GET and returns the raw response body.
func (c *Client) Get(ctx context.Context) ([]byte, error) {
	var body []byte

	err := retry.Do(ctx, func() error {
		var err error
		body, err = c.get(ctx)
		return err
	}, c.retryOpts)

	if err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) get(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrTransport, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrTransport, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrTransport, err)
	}

	return body, nil
}
