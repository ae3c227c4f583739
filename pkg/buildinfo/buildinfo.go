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

// Package buildinfo carries the build identity of the running binary.
// The package-level variables are overridden at build time with ldflags;
// consumers receive them as a read-only Info value injected at session
// construction rather than reaching for the globals.
package buildinfo

import "strings"

var (
	// overridden during build with ldflags
	branch    = "unknown"
	revision  = "unknown"
	buildDate = "unknown"
	buildName = "dev"
	scmDesc   = "unknown"
)

// Info is a read-only snapshot of the binary's build identity.
type Info struct {
	// Branch is the source-control branch the binary was built from.
	Branch string
	// Revision is the source-control revision hash.
	Revision string
	// Date is the build timestamp.
	Date string
	// Name is the human-readable build name.
	Name string
	// SCMDesc is the source-control description string; it contains
	// "dirty" when the working tree had local modifications.
	SCMDesc string
}

// Current returns the build identity of this binary.
func Current() Info {
	return Info{
		Branch:   branch,
		Revision: revision,
		Date:     buildDate,
		Name:     buildName,
		SCMDesc:  scmDesc,
	}
}

// Dirty reports whether the binary was built from a modified working tree.
func (i Info) Dirty() bool {
	return strings.Contains(i.SCMDesc, "dirty")
}
