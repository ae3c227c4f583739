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

// Package idstore manages the durable anonymous installation identifier.
//
// The identifier is a 64-bit value persisted as exactly 8 raw bytes in a
// single file (telemetry_id) under the user configuration directory, in
// native byte order with no header or encoding. It is created lazily on
// first read and survives process restarts; only explicit regeneration
// replaces it.
//
// Every failure mode degrades to a logged message and a zero identifier.
// The store assumes single-process access; concurrent processes racing to
// create the file are not coordinated here.
package idstore
