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

// FieldCollection is an insertion-ordered, append-only sequence of Fields.
// It is owned by exactly one session for its lifetime and is not safe for
// concurrent use.
type FieldCollection struct {
	fields []Field
}

// NewFieldCollection creates an empty collection.
func NewFieldCollection() *FieldCollection {
	return &FieldCollection{}
}

// Add appends a field built from the given category, name, and value. It
// never fails; a repeated name produces an additional independent record.
func (c *FieldCollection) Add(ft FieldType, name string, value any) {
	c.fields = append(c.fields, NewField(ft, name, value))
}

// AddField appends an already-constructed field.
func (c *FieldCollection) AddField(f Field) {
	c.fields = append(c.fields, f)
}

// Len returns the number of fields recorded so far.
func (c *FieldCollection) Len() int {
	return len(c.fields)
}

// Fields returns the recorded fields in insertion order. Callers must not
// mutate the returned slice.
func (c *FieldCollection) Fields() []Field {
	return c.fields
}

// Visit delivers every field, in insertion order, to the backend method
// matching the field's kind. The traversal is read-only; the collection is
// unchanged afterwards and Visit may be called more than once.
func (c *FieldCollection) Visit(b Backend) {
	for _, f := range c.fields {
		switch f.Kind() {
		case KindBool:
			b.VisitBool(f)
		case KindInt:
			b.VisitInt(f)
		case KindFloat:
			b.VisitFloat(f)
		case KindString:
			b.VisitString(f)
		case KindSlice:
			b.VisitSlice(f)
		}
	}
}
