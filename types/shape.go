// Copyright 2025 Edgewire, Inc.
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

package types

// ShapeField is the metadata for one object field.
type ShapeField struct {
	Name         string
	Implicit     bool
	Link         bool
	LinkProperty bool
}

// ObjectShape is the immutable field metadata shared by every Object value
// produced from one codec. Sharing makes structural equality an identity
// check in the common case.
type ObjectShape struct {
	fields []ShapeField
}

func NewObjectShape(fields []ShapeField) *ObjectShape {
	owned := make([]ShapeField, len(fields))
	copy(owned, fields)
	return &ObjectShape{fields: owned}
}

func (s *ObjectShape) Len() int {
	return len(s.fields)
}

func (s *ObjectShape) Field(i int) ShapeField {
	return s.fields[i]
}

// FieldIndex returns the position of the named field, or -1.
func (s *ObjectShape) FieldIndex(name string) int {
	for i, f := range s.fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

// Equal is identity or element-wise field equality.
func (s *ObjectShape) Equal(o *ObjectShape) bool {
	if s == o {
		return true
	}
	if s == nil || o == nil || len(s.fields) != len(o.fields) {
		return false
	}
	for i := range s.fields {
		if s.fields[i] != o.fields[i] {
			return false
		}
	}
	return true
}

// NamedTupleShape is the immutable element-name metadata shared by every
// NamedTuple value produced from one codec.
type NamedTupleShape struct {
	names []string
}

func NewNamedTupleShape(names []string) *NamedTupleShape {
	owned := make([]string, len(names))
	copy(owned, names)
	return &NamedTupleShape{names: owned}
}

func (s *NamedTupleShape) Len() int {
	return len(s.names)
}

func (s *NamedTupleShape) Name(i int) string {
	return s.names[i]
}

func (s *NamedTupleShape) Equal(o *NamedTupleShape) bool {
	if s == o {
		return true
	}
	if s == nil || o == nil || len(s.names) != len(o.names) {
		return false
	}
	for i := range s.names {
		if s.names[i] != o.names[i] {
			return false
		}
	}
	return true
}
