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

// Package descriptor models the server-supplied type descriptor table. The
// table arrives pre-parsed from the connection layer; descriptors reference
// each other exclusively by position into the same table.
package descriptor

import (
	"fmt"

	"github.com/google/uuid"
)

// TypePos is an index into a descriptor table.
type TypePos uint16

// Descriptor is one node of the type descriptor table.
type Descriptor interface {
	// describe names the node for mismatch diagnostics.
	describe() string
}

// BaseScalar describes a primitive type identified by a fixed 128-bit id.
type BaseScalar struct {
	ID uuid.UUID
}

// Scalar is an alias that defers to a base type elsewhere in the table.
type Scalar struct {
	ID          uuid.UUID
	BaseTypePos TypePos
}

// Set describes a set of elements of one type.
type Set struct {
	ID      uuid.UUID
	TypePos TypePos
}

// Array describes a single-dimension array of elements of one type.
type Array struct {
	ID      uuid.UUID
	TypePos TypePos
}

// ObjectShape describes an object's fields.
type ObjectShape struct {
	ID       uuid.UUID
	Elements []ShapeElement
}

// ShapeElement is one field of an object shape.
type ShapeElement struct {
	Name         string
	TypePos      TypePos
	Implicit     bool
	Link         bool
	LinkProperty bool
}

// Tuple describes an unnamed tuple.
type Tuple struct {
	ID           uuid.UUID
	ElementTypes []TypePos
}

// NamedTuple describes a tuple with named elements, all always present.
type NamedTuple struct {
	ID       uuid.UUID
	Elements []TupleElement
}

// TupleElement is one named element of a named tuple.
type TupleElement struct {
	Name    string
	TypePos TypePos
}

// Enumeration describes an enum with a fixed member set.
type Enumeration struct {
	ID      uuid.UUID
	Members []string
}

// TypeAnnotation carries out-of-band type metadata. Annotations are stripped
// from the table before codec building and never participate in codecs.
type TypeAnnotation struct {
	ID         uuid.UUID
	Annotation string
}

func (d *BaseScalar) describe() string     { return fmt.Sprintf("base scalar %s", d.ID) }
func (d *Scalar) describe() string         { return fmt.Sprintf("scalar %s", d.ID) }
func (d *Set) describe() string            { return "set" }
func (d *Array) describe() string          { return "array" }
func (d *ObjectShape) describe() string    { return "object shape" }
func (d *Tuple) describe() string          { return "tuple" }
func (d *NamedTuple) describe() string     { return "named tuple" }
func (d *Enumeration) describe() string    { return "enum" }
func (d *TypeAnnotation) describe() string { return "type annotation" }

// Describe names a descriptor for diagnostics.
func Describe(d Descriptor) string {
	return d.describe()
}
