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

// Package webservice is the remote boundary of the telemetry subsystem:
// the JSON-submitting backend, the HTTP client it shares with login
// verification, and the Prometheus metrics describing both.
//
// The backend groups visited fields into a JSON object keyed by category
// and field name, then submits it once on Complete. Submission failures are
// logged and counted but never propagate; nothing in this package may
// surface an error into session teardown.
//
// Login verification is the one asynchronous operation in the subsystem:
// VerifyLogin runs on its own goroutine, resolves a single boolean, and
// invokes its completion callback exactly once from that goroutine.
package webservice
