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

package defaults

import "time"

// Web service operation timeouts.
const (
	// SubmitTimeout is the total timeout for one session submission,
	// including connection setup and response.
	SubmitTimeout = 30 * time.Second

	// VerifyTimeout is the total timeout for a login verification round
	// trip. Verification runs in the background but must not hold its
	// goroutine forever.
	VerifyTimeout = 15 * time.Second
)

// HTTP client timeouts for outbound requests.
const (
	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second
)

// Outbound rate limits. A session submits once per lifetime; the limiter
// only matters for hosts embedding many short sessions.
const (
	// SubmitRatePerSecond is the sustained submission rate.
	SubmitRatePerSecond = 1

	// SubmitRateBurst is the submission burst allowance.
	SubmitRateBurst = 5
)
