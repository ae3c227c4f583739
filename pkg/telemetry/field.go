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

import "fmt"

// FieldType categorizes a field by its origin and lifetime.
type FieldType string

const (
	// FieldTypeNone marks cross-session identifiers (e.g. the anonymous
	// installation ID).
	FieldTypeNone FieldType = "None"
	// FieldTypeSession marks per-session lifecycle facts.
	FieldTypeSession FieldType = "Session"
	// FieldTypeApp marks facts about the application build.
	FieldTypeApp FieldType = "App"
	// FieldTypeUserSystem marks facts about the user's hardware and OS.
	FieldTypeUserSystem FieldType = "UserSystem"
	// FieldTypeUserConfig marks facts about the user's configuration.
	FieldTypeUserConfig FieldType = "UserConfig"
)

// Kind identifies the value kind carried by a Field. Backends implement one
// visit method per kind.
type Kind int

const (
	// KindBool is a boolean value.
	KindBool Kind = iota
	// KindInt is a signed 64-bit integer value.
	KindInt
	// KindFloat is a 64-bit floating point value.
	KindFloat
	// KindString is a string value.
	KindString
	// KindSlice is an ordered sequence of primitive values.
	KindSlice
)

// Field is one named, typed diagnostic fact. Category and name are fixed at
// creation; the zero Field is a boolean false field with an empty name.
type Field struct {
	fieldType FieldType
	name      string
	kind      Kind

	b   bool
	i   int64
	f   float64
	s   string
	seq []any
}

// NewField creates a Field of the given category and name. The value may be
// any boolean, signed or unsigned integer, float, string, or a slice of
// those; integers narrower than 64 bits widen, float32 widens to float64.
// Anything else is recorded as its string rendering so that adding a field
// can never fail.
func NewField(ft FieldType, name string, value any) Field {
	f := Field{fieldType: ft, name: name}

	switch v := value.(type) {
	case bool:
		f.kind, f.b = KindBool, v
	case int:
		f.kind, f.i = KindInt, int64(v)
	case int8:
		f.kind, f.i = KindInt, int64(v)
	case int16:
		f.kind, f.i = KindInt, int64(v)
	case int32:
		f.kind, f.i = KindInt, int64(v)
	case int64:
		f.kind, f.i = KindInt, v
	case uint:
		f.kind, f.i = KindInt, int64(v)
	case uint8:
		f.kind, f.i = KindInt, int64(v)
	case uint16:
		f.kind, f.i = KindInt, int64(v)
	case uint32:
		f.kind, f.i = KindInt, int64(v)
	case uint64:
		f.kind, f.i = KindInt, int64(v)
	case float32:
		f.kind, f.f = KindFloat, float64(v)
	case float64:
		f.kind, f.f = KindFloat, v
	case string:
		f.kind, f.s = KindString, v
	case []any:
		f.kind, f.seq = KindSlice, v
	case []bool:
		f.kind, f.seq = KindSlice, toAnySlice(v)
	case []int:
		f.kind, f.seq = KindSlice, toAnySlice(v)
	case []int64:
		f.kind, f.seq = KindSlice, toAnySlice(v)
	case []float64:
		f.kind, f.seq = KindSlice, toAnySlice(v)
	case []string:
		f.kind, f.seq = KindSlice, toAnySlice(v)
	default:
		f.kind, f.s = KindString, fmt.Sprintf("%v", value)
	}

	return f
}

func toAnySlice[T any](in []T) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}

// Type returns the field's category.
func (f Field) Type() FieldType { return f.fieldType }

// Name returns the field's name.
func (f Field) Name() string { return f.name }

// Kind returns the kind of value the field carries.
func (f Field) Kind() Kind { return f.kind }

// Bool returns the boolean value; false if the field is not KindBool.
func (f Field) Bool() bool { return f.b }

// Int returns the integer value; zero if the field is not KindInt.
func (f Field) Int() int64 { return f.i }

// Float returns the float value; zero if the field is not KindFloat.
func (f Field) Float() float64 { return f.f }

// String returns the string value; empty if the field is not KindString.
func (f Field) String() string { return f.s }

// Slice returns the sequence value; nil if the field is not KindSlice.
// Callers must not mutate the returned slice.
func (f Field) Slice() []any { return f.seq }

// Value returns the field's value regardless of kind, for serialization.
func (f Field) Value() any {
	switch f.kind {
	case KindBool:
		return f.b
	case KindInt:
		return f.i
	case KindFloat:
		return f.f
	case KindSlice:
		return f.seq
	default:
		return f.s
	}
}
