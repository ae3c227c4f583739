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

// Package serializer renders telemetry payloads for local inspection.
//
// The package supports three output formats:
//   - JSON: machine-readable structured data with indentation
//   - YAML: human-readable configuration format
//   - Table: flattened Category.Field rows for quick scanning
//
// Usage:
//
//	writer := serializer.NewStdoutWriter(serializer.FormatJSON)
//	if err := writer.Serialize(payload); err != nil {
//		slog.Error("failed to render payload", "error", err)
//	}
//
// The serializer is a preview surface only; remote submission bypasses it
// and goes through pkg/webservice.
package serializer
