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

package buildinfo

import "testing"

func TestDirty(t *testing.T) {
	tests := []struct {
		name     string
		desc     string
		expected bool
	}{
		{
			name:     "clean tree",
			desc:     "v1.2.0-14-gabc1234",
			expected: false,
		},
		{
			name:     "dirty tree",
			desc:     "v1.2.0-14-gabc1234-dirty",
			expected: true,
		},
		{
			name:     "empty description",
			desc:     "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := Info{SCMDesc: tt.desc}
			if info.Dirty() != tt.expected {
				t.Errorf("Dirty() for %q: expected %v", tt.desc, tt.expected)
			}
		})
	}
}

func TestCurrentDefaults(t *testing.T) {
	info := Current()
	if info.Branch == "" || info.Revision == "" || info.Date == "" || info.Name == "" {
		t.Error("build identity fields must never be empty, even without ldflags")
	}
}
