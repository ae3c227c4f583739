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

package session

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/openarc/telemetry/pkg/config"
	"github.com/openarc/telemetry/pkg/idstore"
	"github.com/openarc/telemetry/pkg/telemetry"
	"github.com/openarc/telemetry/pkg/webservice"
)

// State tracks the session lifecycle. Transitions only move forward:
// Constructing, Active, Finalizing, Closed.
type State int

const (
	StateConstructing State = iota
	StateActive
	StateFinalizing
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConstructing:
		return "constructing"
	case StateActive:
		return "active"
	case StateFinalizing:
		return "finalizing"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Option configures session construction.
type Option func(*Session)

// WithBackend overrides backend selection. Used by tests and by the CLI's
// local payload preview.
func WithBackend(b telemetry.Backend) Option {
	return func(s *Session) {
		s.backend = b
	}
}

// WithIDStore overrides the identifier store.
func WithIDStore(store *idstore.Store) Option {
	return func(s *Session) {
		s.store = store
	}
}

// WithClient overrides the web service client used by the submitting
// backend.
func WithClient(c *webservice.Client) Option {
	return func(s *Session) {
		s.client = c
	}
}

// Session is one bounded instrumentation lifetime. It exclusively owns its
// field collection and backend and is not safe for concurrent use.
type Session struct {
	state      State
	collection *telemetry.FieldCollection
	backend    telemetry.Backend
	store      *idstore.Store
	client     *webservice.Client
}

// New constructs a session from configuration and pre-gathered environment
// sources. It selects the backend variant, reads or creates the anonymous
// identifier, and records the construction-time facts. New never fails;
// every degraded source yields a logged message and a skipped or
// zero-valued field.
func New(settings *config.Settings, src Sources, opts ...Option) *Session {
	s := &Session{
		state:      StateConstructing,
		collection: telemetry.NewFieldCollection(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.store == nil {
		s.store = idstore.New(settings.ConfigDir)
	}
	if s.backend == nil {
		s.backend = selectBackend(settings, s.client)
	}

	// One-time top-level information.
	s.collection.Add(telemetry.FieldTypeNone, "TelemetryId", s.store.GetID())

	// One-time session start information.
	s.collection.Add(telemetry.FieldTypeSession, "Init_Time", time.Now().UnixMilli())
	if src.HasProgramName {
		s.collection.Add(telemetry.FieldTypeSession, "ProgramName", src.ProgramName)
	}

	// Application build information.
	s.collection.Add(telemetry.FieldTypeApp, "Git_IsDirty", src.Build.Dirty())
	s.collection.Add(telemetry.FieldTypeApp, "Git_Branch", src.Build.Branch)
	s.collection.Add(telemetry.FieldTypeApp, "Git_Revision", src.Build.Revision)
	s.collection.Add(telemetry.FieldTypeApp, "BuildDate", src.Build.Date)
	s.collection.Add(telemetry.FieldTypeApp, "BuildName", src.Build.Name)

	// User system information.
	s.collection.Add(telemetry.FieldTypeUserSystem, "CPU_Model", src.CPU.Model)
	s.collection.Add(telemetry.FieldTypeUserSystem, "CPU_BrandString", src.CPU.Brand)
	s.collection.Add(telemetry.FieldTypeUserSystem, "CPU_Vendor", string(src.CPU.Vendor))
	for _, ext := range src.CPU.Extensions {
		s.collection.Add(telemetry.FieldTypeUserSystem,
			"CPU_Extension_x64_"+ext.Name, ext.Supported)
	}
	s.collection.Add(telemetry.FieldTypeUserSystem, "OsPlatform", src.OSPlatform)

	// User configuration information.
	s.collection.Add(telemetry.FieldTypeUserConfig, "Core_CpuCore", settings.CPUCore)
	s.collection.Add(telemetry.FieldTypeUserConfig, "Renderer_ResolutionFactor", settings.ResolutionFactor)
	s.collection.Add(telemetry.FieldTypeUserConfig, "Renderer_ToggleFramelimit", settings.ToggleFramelimit)

	s.state = StateActive
	return s
}

// selectBackend picks the backend variant once, from configuration. With
// telemetry disabled, or credentials the configuration layer failed to
// supply, sessions discard their fields.
func selectBackend(settings *config.Settings, client *webservice.Client) telemetry.Backend {
	if !settings.EnableTelemetry {
		return telemetry.NewDiscardBackend()
	}
	if !settings.HasCredentials() {
		slog.Warn("telemetry enabled but endpoint or credentials missing, discarding session")
		return telemetry.NewDiscardBackend()
	}
	if client == nil {
		client = webservice.NewClient()
	}
	return webservice.NewJSONBackend(client,
		settings.TelemetryEndpoint, settings.Username, settings.Token)
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Fields returns the recorded fields in insertion order. Callers must not
// mutate the returned slice.
func (s *Session) Fields() []telemetry.Field {
	return s.collection.Fields()
}

// AddField records an additional diagnostic fact. Fields can only be added
// while the session is active; anything else is logged and dropped.
func (s *Session) AddField(ft telemetry.FieldType, name string, value any) {
	if s.state != StateActive {
		slog.Warn("field dropped, session not active",
			"name", name, "state", s.state.String())
		return
	}
	s.collection.Add(ft, name, value)
}

// Close finalizes the session: it stamps the shutdown time, flushes the
// collection through the backend, and completes it. Close never fails and
// is a no-op after the first call; the session holds no state afterwards.
func (s *Session) Close() {
	if s.state != StateActive {
		return
	}

	s.state = StateFinalizing
	s.collection.Add(telemetry.FieldTypeSession, "Shutdown_Time", time.Now().UnixMilli())

	s.collection.Visit(s.backend)
	s.backend.Complete()
	s.backend = nil
	s.state = StateClosed
}
