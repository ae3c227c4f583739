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

package telemetry

// Backend consumes visited fields and finalizes a session. Implementations
// receive one call per field, in insertion order, on the visit method
// matching the field's kind, followed by exactly one Complete call when the
// owning session ends. A backend is owned by a single session and is not
// safe for concurrent use.
type Backend interface {
	VisitBool(f Field)
	VisitInt(f Field)
	VisitFloat(f Field)
	VisitString(f Field)
	VisitSlice(f Field)

	// Complete finalizes the session. For submitting backends this is the
	// point of transmission; it must not propagate transmission failures.
	Complete()
}

// DiscardBackend drops every field and does nothing on Complete. It is the
// variant selected when telemetry is disabled.
type DiscardBackend struct{}

// NewDiscardBackend creates a backend with no observable side effects.
func NewDiscardBackend() *DiscardBackend {
	return &DiscardBackend{}
}

func (*DiscardBackend) VisitBool(Field)   {}
func (*DiscardBackend) VisitInt(Field)    {}
func (*DiscardBackend) VisitFloat(Field)  {}
func (*DiscardBackend) VisitString(Field) {}
func (*DiscardBackend) VisitSlice(Field)  {}
func (*DiscardBackend) Complete()         {}
