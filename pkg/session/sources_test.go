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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubLoader struct {
	title string
	err   error
}

func (l *stubLoader) Title() (string, error) {
	return l.title, l.err
}

func TestCollectSourcesWithLoader(t *testing.T) {
	src := CollectSources(context.Background(), &stubLoader{title: "demo"})

	assert.True(t, src.HasProgramName)
	assert.Equal(t, "demo", src.ProgramName)
	assert.NotEmpty(t, src.OSPlatform)
	assert.NotEmpty(t, src.Build.Name)
	assert.NotEmpty(t, src.CPU.Extensions)
}

func TestCollectSourcesLoaderFailureIsSilent(t *testing.T) {
	src := CollectSources(context.Background(), &stubLoader{err: errors.New("no app loaded")})

	assert.False(t, src.HasProgramName)
	assert.Empty(t, src.ProgramName)
}

func TestCollectSourcesNilLoader(t *testing.T) {
	src := CollectSources(context.Background(), nil)

	assert.False(t, src.HasProgramName)
	assert.NotEmpty(t, src.OSPlatform)
}
