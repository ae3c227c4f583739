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

// Package session ties the telemetry subsystem together: one Session spans
// one bounded instrumentation lifetime, from construction to Close.
//
// Construction selects the backend from configuration, reads or creates
// the anonymous installation identifier, and records the environment facts
// gathered beforehand into the field collection. Close stamps the shutdown
// time, flushes the collection through the backend, and finalizes it. A
// session is single-use: no state is retained after Close and a second
// Close is a no-op.
//
// Nothing in construction or teardown can fail upward. Every external
// query that goes wrong degrades to a logged message and a skipped or
// zero-valued field; telemetry must never crash or block the application
// it instruments.
package session
