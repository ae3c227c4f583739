// Copyright (c) 2025, OpenArc Project.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package webservice

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/openarc/telemetry/pkg/defaults"
	"github.com/openarc/telemetry/pkg/errors"
)

const userAgent = "ArcTelemetry/1.0"

// Credential headers expected by the telemetry service.
const (
	headerUsername = "x-username"
	headerToken    = "x-token"
)

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client, primarily for tests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRateLimit overrides the submission rate limit.
func WithRateLimit(limit rate.Limit, burst int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(limit, burst)
	}
}

// Client performs requests against the telemetry/verification service. It
// is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a client with the shared transport timeouts and the
// default submission rate limit.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   defaults.HTTPConnectTimeout,
					KeepAlive: defaults.HTTPKeepAlive,
				}).DialContext,
				TLSHandshakeTimeout:   defaults.HTTPTLSHandshakeTimeout,
				ResponseHeaderTimeout: defaults.HTTPResponseHeaderTimeout,
				IdleConnTimeout:       defaults.HTTPIdleConnTimeout,
			},
		},
		limiter: rate.NewLimiter(defaults.SubmitRatePerSecond, defaults.SubmitRateBurst),
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit posts a serialized session payload to the endpoint using the
// given credentials. The configuration layer validates credentials before
// the backend is constructed; Submit does not re-check them.
func (c *Client) Submit(ctx context.Context, endpoint, username, token string, payload []byte) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return errors.Wrap(errors.ErrCodeTimeout, "rate limiter wait aborted", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to build submit request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setAuth(req, username, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WrapWithContext(errors.ErrCodeUnavailable,
			"failed to reach telemetry service", err,
			map[string]any{"endpoint": endpoint})
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return errors.New(errors.ErrCodeUnauthorized, "telemetry service rejected credentials")
	default:
		return errors.New(errors.ErrCodeInvalidResponse,
			fmt.Sprintf("telemetry service returned status %d", resp.StatusCode))
	}
}

// Verify checks credentials against the verification endpoint. A definite
// rejection is (false, nil); transport and protocol failures also verify
// false but carry the cause for logging.
func (c *Client) Verify(ctx context.Context, endpoint, username, token string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeInternal, "failed to build verify request", err)
	}
	c.setAuth(req, username, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, errors.WrapWithContext(errors.ErrCodeUnavailable,
			"failed to reach verification service", err,
			map[string]any{"endpoint": endpoint})
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return true, nil
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return false, nil
	default:
		return false, errors.New(errors.ErrCodeInvalidResponse,
			fmt.Sprintf("verification service returned status %d", resp.StatusCode))
	}
}

func (c *Client) setAuth(req *http.Request, username, token string) {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set(headerUsername, username)
	req.Header.Set(headerToken, token)
}
