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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKinds(t *testing.T) {
	cases := []struct {
		v    Value
		kind Kind
		name string
	}{
		{Nothing{}, NothingKind, "nothing"},
		{Str("x"), StrKind, "string"},
		{Int64(1), Int64Kind, "int64"},
		{Bool(true), BoolKind, "bool"},
		{LocalDate{}, LocalDateKind, "cal::local_date"},
		{Set{}, SetKind, "set"},
		{Tuple{}, TupleKind, "tuple"},
		{Object{}, ObjectKind, "object"},
		{Enum("red"), EnumKind, "enum"},
	}
	for _, c := range cases {
		assert.Equal(t, c.kind, c.v.Kind())
		assert.Equal(t, c.name, c.v.Kind().String())
	}
	assert.Equal(t, "unknown", Kind(200).String())
}

func TestEmptyTuple(t *testing.T) {
	v := EmptyTuple()
	assert.Equal(t, TupleKind, v.Kind())
	assert.Empty(t, v.(Tuple))
}

func TestObjectShapeEqual(t *testing.T) {
	fields := []ShapeField{{Name: "id", Implicit: true}, {Name: "name"}}
	a := NewObjectShape(fields)
	b := NewObjectShape(fields)
	c := NewObjectShape(fields[:1])

	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))

	assert.Equal(t, 1, a.FieldIndex("name"))
	assert.Equal(t, -1, a.FieldIndex("missing"))
}

func TestNamedTupleShapeEqual(t *testing.T) {
	a := NewNamedTupleShape([]string{"x", "y"})
	b := NewNamedTupleShape([]string{"x", "y"})
	c := NewNamedTupleShape([]string{"x", "z"})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Equal(t, "y", a.Name(1))
	assert.Equal(t, 2, a.Len())
}
