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

package serializer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func samplePayload() map[string]map[string]any {
	return map[string]map[string]any{
		"Session": {
			"Init_Time":   int64(1000),
			"ProgramName": "demo",
		},
		"UserSystem": {
			"CPU_Vendor": "Intel",
		},
	}
}

func TestFormatIsUnknown(t *testing.T) {
	tests := []struct {
		format   Format
		expected bool
	}{
		{FormatJSON, false},
		{FormatYAML, false},
		{FormatTable, false},
		{Format("xml"), true},
		{Format(""), true},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.IsUnknown())
		})
	}
}

func TestSerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)

	require.NoError(t, w.Serialize(samplePayload()))

	var decoded map[string]map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "demo", decoded["Session"]["ProgramName"])
	assert.Equal(t, "Intel", decoded["UserSystem"]["CPU_Vendor"])
}

func TestSerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)

	require.NoError(t, w.Serialize(samplePayload()))

	var decoded map[string]map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "demo", decoded["Session"]["ProgramName"])
}

func TestSerializeTable(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	require.NoError(t, w.Serialize(samplePayload()))

	out := buf.String()
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "Session.ProgramName")
	assert.Contains(t, out, "demo")
	assert.Contains(t, out, "UserSystem.CPU_Vendor")
}

func TestSerializeTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	require.NoError(t, w.Serialize(map[string]any{}))
	assert.Equal(t, "<empty>", strings.TrimSpace(buf.String()))
}

func TestSerializeUnknownFormatFails(t *testing.T) {
	w := NewWriter(Format("xml"), &bytes.Buffer{})
	assert.Error(t, w.Serialize(samplePayload()))
}
