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
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	arcerrors "github.com/openarc/telemetry/pkg/errors"
)

func TestSubmitStatuses(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		expectedCode arcerrors.ErrorCode
	}{
		{name: "ok", status: http.StatusOK},
		{name: "no content", status: http.StatusNoContent},
		{name: "unauthorized", status: http.StatusUnauthorized, expectedCode: arcerrors.ErrCodeUnauthorized},
		{name: "server error", status: http.StatusInternalServerError, expectedCode: arcerrors.ErrCodeInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			err := NewClient().Submit(context.Background(), srv.URL, "u", "t", []byte(`{}`))
			if tt.expectedCode == "" {
				assert.NoError(t, err)
				return
			}

			var structured *arcerrors.StructuredError
			require.True(t, errors.As(err, &structured))
			assert.Equal(t, tt.expectedCode, structured.Code)
		})
	}
}

func TestSubmitUnreachable(t *testing.T) {
	err := NewClient().Submit(context.Background(), "http://127.0.0.1:1/submit", "u", "t", nil)

	var structured *arcerrors.StructuredError
	require.True(t, errors.As(err, &structured))
	assert.Equal(t, arcerrors.ErrCodeUnavailable, structured.Code)
}

func TestVerifyStatuses(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		expected    bool
		expectError bool
	}{
		{name: "accepted", status: http.StatusOK, expected: true},
		{name: "rejected is a clean false", status: http.StatusUnauthorized, expected: false},
		{name: "forbidden is a clean false", status: http.StatusForbidden, expected: false},
		{name: "server error is false with cause", status: http.StatusBadGateway, expected: false, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "u", r.Header.Get("x-username"))
				assert.Equal(t, "t", r.Header.Get("x-token"))
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			ok, err := NewClient().Verify(context.Background(), srv.URL, "u", "t")
			assert.Equal(t, tt.expected, ok)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSubmitRespectsContextDuringRateLimit(t *testing.T) {
	// Drain the burst allowance, then expect the rate limiter to abort on a
	// canceled context instead of blocking.
	c := NewClient(WithRateLimit(0.001, 1))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	require.NoError(t, c.Submit(context.Background(), srv.URL, "u", "t", nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := c.Submit(ctx, srv.URL, "u", "t", nil)

	var structured *arcerrors.StructuredError
	require.True(t, errors.As(err, &structured))
	assert.Equal(t, arcerrors.ErrCodeTimeout, structured.Code)
}
