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
	"log/slog"

	"github.com/openarc/telemetry/pkg/defaults"
)

// VerifyLogin checks the given credentials against the verification
// endpoint on a background goroutine. The returned channel resolves to
// exactly one boolean; the callback, if non-nil, is invoked exactly once
// from the background goroutine at the point of completion, success or
// failure alike.
//
// With an empty endpoint or a nil client there is no remote-verification
// capability: the callback still fires and the result resolves to false
// without any network activity. There is no cancellation and no retry; the
// client's own timeout bounds the attempt.
func VerifyLogin(client *Client, endpoint, username, token string, callback func()) <-chan bool {
	result := make(chan bool, 1)

	go func() {
		verified := false
		defer func() {
			if callback != nil {
				callback()
			}
			result <- verified
		}()

		if client == nil || endpoint == "" {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), defaults.VerifyTimeout)
		defer cancel()

		ok, err := client.Verify(ctx, endpoint, username, token)
		if err != nil {
			slog.Error("login verification failed", "endpoint", endpoint, "error", err)
			verificationsTotal.WithLabelValues("error").Inc()
			return
		}
		verified = ok
		if ok {
			verificationsTotal.WithLabelValues("verified").Inc()
		} else {
			verificationsTotal.WithLabelValues("rejected").Inc()
		}
	}()

	return result
}
