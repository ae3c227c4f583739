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
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func awaitBool(t *testing.T, ch <-chan bool) bool {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(5 * time.Second):
		t.Fatal("verification did not resolve")
		return false
	}
}

func TestVerifyLoginWithoutCapability(t *testing.T) {
	var callbacks atomic.Int32

	// No endpoint configured: no network, callback exactly once, result false.
	result := VerifyLogin(NewClient(), "", "alice", "s3cret", func() {
		callbacks.Add(1)
	})

	assert.False(t, awaitBool(t, result))
	assert.Equal(t, int32(1), callbacks.Load())
}

func TestVerifyLoginNilClient(t *testing.T) {
	var callbacks atomic.Int32

	result := VerifyLogin(nil, "https://verify.example.com", "alice", "s3cret", func() {
		callbacks.Add(1)
	})

	assert.False(t, awaitBool(t, result))
	assert.Equal(t, int32(1), callbacks.Load())
}

func TestVerifyLoginSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "alice", r.Header.Get("x-username"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	var callbacks atomic.Int32
	result := VerifyLogin(NewClient(), srv.URL, "alice", "s3cret", func() {
		callbacks.Add(1)
	})

	assert.True(t, awaitBool(t, result))
	assert.Equal(t, int32(1), callbacks.Load())
}

func TestVerifyLoginRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	result := VerifyLogin(NewClient(), srv.URL, "alice", "wrong", nil)
	assert.False(t, awaitBool(t, result))
}

func TestVerifyLoginUnreachableResolvesFalse(t *testing.T) {
	var callbacks atomic.Int32

	result := VerifyLogin(NewClient(), "http://127.0.0.1:1/verify", "alice", "s3cret", func() {
		callbacks.Add(1)
	})

	assert.False(t, awaitBool(t, result))
	assert.Equal(t, int32(1), callbacks.Load())
}

func TestVerifyLoginCallbackFiresBeforeResolution(t *testing.T) {
	fired := make(chan struct{})

	result := VerifyLogin(nil, "", "alice", "s3cret", func() {
		close(fired)
	})

	<-result
	select {
	case <-fired:
	default:
		t.Fatal("callback must fire before the result resolves")
	}
}
