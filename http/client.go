package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/fwojciec/bw"
)

// Client sends requests to the backend API. The base URL is read from the
// configuration on every request so a changed setting applies immediately.
type Client struct {
	config bw.ConfigService
	opts   *options
}

// NewClient creates a Client using config for the API base URL.
func NewClient(config bw.ConfigService, opts ...Option) *Client {
	return &Client{
		config: config,
		opts:   newOptions(opts),
	}
}

// endpoint returns the absolute URL of path under the configured base.
func (c *Client) endpoint(ctx context.Context, path string, query url.Values) (string, error) {
	base, err := c.config.APIBaseURL(ctx)
	if err != nil {
		return "", err
	}
	if base == "" {
		base = bw.DefaultAPIBaseURL
	}
	u := strings.TrimRight(base, "/") + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u, nil
}

// do sends a request with an optional JSON body and decodes a JSON response
// into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, target string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return bw.Errorf(bw.EINVALID, "encode request: %v", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return bw.Errorf(bw.EINVALID, "build request: %v", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.opts.limiter != nil {
		if err := c.opts.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	resp, err := c.opts.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp.StatusCode, target)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return bw.Errorf(bw.EINTERNAL, "decode response from %s: %v", target, err)
	}
	return nil
}
