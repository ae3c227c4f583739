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
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/openarc/telemetry/pkg/buildinfo"
	"github.com/openarc/telemetry/pkg/hostinfo"
)

// AppLoader is the application-metadata collaborator: it is queried once
// at session construction for a human-readable program name.
type AppLoader interface {
	Title() (string, error)
}

// Sources carries the environment facts a session records at construction.
// It is a plain value so tests can construct synthetic environments.
type Sources struct {
	// Build is the binary's build identity.
	Build buildinfo.Info

	// CPU describes the host processor.
	CPU hostinfo.CPUCaps

	// OSPlatform is the coarse platform label.
	OSPlatform string

	// ProgramName is the loader-reported title; valid only when
	// HasProgramName is true. A failed loader query leaves it unset and is
	// not an error.
	ProgramName    string
	HasProgramName bool
}

// CollectSources gathers the environment facts in parallel. Loader may be
// nil when no application is loaded. Source queries cannot fail the
// collection; a loader failure is logged at debug and the program name is
// simply omitted.
func CollectSources(ctx context.Context, loader AppLoader) Sources {
	var src Sources

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		src.Build = buildinfo.Current()
		return nil
	})

	g.Go(func() error {
		src.CPU = hostinfo.DetectCPU()
		src.OSPlatform = hostinfo.OSPlatform()
		return nil
	})

	g.Go(func() error {
		if loader == nil {
			return nil
		}
		title, err := loader.Title()
		if err != nil {
			slog.Debug("program name unavailable", "error", err)
			return nil
		}
		src.ProgramName = title
		src.HasProgramName = true
		return nil
	})

	// Goroutines write disjoint fields; Wait orders them before the return.
	_ = g.Wait()
	return src
}
