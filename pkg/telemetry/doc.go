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

// Package telemetry defines the core diagnostic data model: typed Fields,
// the insertion-ordered FieldCollection that accumulates them over one
// session, and the Backend contract that consumes them.
//
// A Field is one named diagnostic fact with a category describing its origin
// (session lifecycle, application build, user system, user configuration).
// Fields are immutable once created. The collection is append-only: adding a
// field with an existing name produces a second independent record rather
// than replacing the first; any dedup policy belongs to the backend.
//
// Backends are selected once, at session construction, and receive every
// field in insertion order via Visit. The package ships the discard variant;
// the remote-submitting variant lives in pkg/webservice.
package telemetry
