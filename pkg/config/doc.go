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

// Package config holds the runtime settings the telemetry subsystem
// consumes: the telemetry opt-in, service endpoints and credentials, and
// the user-facing emulation knobs reported as UserConfig fields.
//
// Settings resolve in three layers: built-in defaults, an optional YAML
// file, then ARCTEL_* environment variables. The resolved value is consumed
// read-only; nothing in this module writes configuration back.
package config
