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
	"encoding/json"
	"log/slog"
	"time"

	"github.com/openarc/telemetry/pkg/defaults"
	"github.com/openarc/telemetry/pkg/telemetry"
)

// PayloadBackend accumulates visited fields into a JSON-shaped payload:
// an object keyed by category, each holding field name to value. Within a
// category a repeated field name overwrites the earlier value, so the
// submitted payload carries the last record for each name while the
// collection itself keeps every record. Complete is a no-op; it exists so
// the CLI can render a payload locally without any network capability.
type PayloadBackend struct {
	payload map[string]map[string]any
}

// NewPayloadBackend creates an empty payload builder.
func NewPayloadBackend() *PayloadBackend {
	return &PayloadBackend{
		payload: make(map[string]map[string]any),
	}
}

func (b *PayloadBackend) add(f telemetry.Field) {
	section := string(f.Type())
	if b.payload[section] == nil {
		b.payload[section] = make(map[string]any)
	}
	b.payload[section][f.Name()] = f.Value()
}

func (b *PayloadBackend) VisitBool(f telemetry.Field)   { b.add(f) }
func (b *PayloadBackend) VisitInt(f telemetry.Field)    { b.add(f) }
func (b *PayloadBackend) VisitFloat(f telemetry.Field)  { b.add(f) }
func (b *PayloadBackend) VisitString(f telemetry.Field) { b.add(f) }
func (b *PayloadBackend) VisitSlice(f telemetry.Field)  { b.add(f) }

// Complete is a no-op for the local payload builder.
func (b *PayloadBackend) Complete() {}

// Payload returns the accumulated payload grouped by category.
func (b *PayloadBackend) Payload() map[string]map[string]any {
	return b.payload
}

// JSONBackend is the remote-submitting backend variant: it builds the same
// payload as PayloadBackend and posts it to the telemetry service when the
// session completes. Construction requires endpoint and credentials, both
// validated beforehand by the configuration layer.
type JSONBackend struct {
	PayloadBackend

	client   *Client
	endpoint string
	username string
	token    string
}

// NewJSONBackend creates a submitting backend bound to the given endpoint
// and credentials.
func NewJSONBackend(client *Client, endpoint, username, token string) *JSONBackend {
	return &JSONBackend{
		PayloadBackend: *NewPayloadBackend(),
		client:         client,
		endpoint:       endpoint,
		username:       username,
		token:          token,
	}
}

// Complete serializes the accumulated payload and submits it. Failures are
// logged and counted, never returned: telemetry must not be able to break
// session teardown.
func (b *JSONBackend) Complete() {
	start := time.Now()

	body, err := json.Marshal(b.payload)
	if err != nil {
		slog.Error("failed to serialize telemetry payload", "error", err)
		submissionsTotal.WithLabelValues("error").Inc()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaults.SubmitTimeout)
	defer cancel()

	if err := b.client.Submit(ctx, b.endpoint, b.username, b.token, body); err != nil {
		slog.Error("failed to submit telemetry session",
			"endpoint", b.endpoint, "error", err)
		submissionsTotal.WithLabelValues("error").Inc()
		return
	}

	submissionsTotal.WithLabelValues("success").Inc()
	submissionDuration.Observe(time.Since(start).Seconds())
	slog.Debug("telemetry session submitted",
		"endpoint", b.endpoint, "bytes", len(body))
}
