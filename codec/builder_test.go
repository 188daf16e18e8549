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

package codec

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgewire/edgewire/descriptor"
	"github.com/edgewire/edgewire/types"
	"github.com/edgewire/edgewire/wire"
)

func pos(p descriptor.TypePos) *descriptor.TypePos {
	return &p
}

func mustBuild(t *testing.T, cat *descriptor.Catalog, root descriptor.TypePos) Codec {
	t.Helper()
	c, err := BuildCodec(pos(root), cat)
	require.NoError(t, err)
	return c
}

// roundTrip encodes v, decodes the bytes back and requires equality.
func roundTrip(t *testing.T, c Codec, v types.Value) {
	t.Helper()
	w := wire.NewWriter()
	require.NoError(t, c.Encode(w, v))
	got, err := c.Decode(w.Data())
	require.NoError(t, err)
	require.Equal(t, v, got)
}

func TestBuildNilRoot(t *testing.T) {
	cat := descriptor.NewCatalog(nil)
	c, err := BuildCodec(nil, cat)
	require.NoError(t, err)

	v, err := c.Decode(nil)
	require.NoError(t, err)
	assert.Equal(t, types.Nothing{}, v)

	w := wire.NewWriter()
	require.NoError(t, c.Encode(w, types.Nothing{}))
	assert.Empty(t, w.Data())
	assert.Error(t, c.Encode(w, types.Int64(1)))
}

func TestBuildErrors(t *testing.T) {
	t.Run("position out of bounds", func(t *testing.T) {
		cat := descriptor.NewCatalog(nil)
		_, err := BuildCodec(pos(0), cat)
		var perr *InvalidPositionError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, descriptor.TypePos(0), perr.Pos)
	})

	t.Run("undefined base scalar", func(t *testing.T) {
		id := uuid.MustParse("12345678-0000-0000-0000-000000000000")
		cat := descriptor.NewCatalog([]descriptor.Descriptor{
			&descriptor.BaseScalar{ID: id},
		})
		_, err := BuildCodec(pos(0), cat)
		var serr *UndefinedBaseScalarError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, id, serr.ID)
	})

	t.Run("type annotation", func(t *testing.T) {
		cat := descriptor.NewCatalog([]descriptor.Descriptor{
			&descriptor.TypeAnnotation{Annotation: "deprecated"},
		})
		_, err := BuildCodec(pos(0), cat)
		assert.ErrorIs(t, err, ErrUnexpectedAnnotation)
	})

	t.Run("cyclic table", func(t *testing.T) {
		cat := descriptor.NewCatalog([]descriptor.Descriptor{
			&descriptor.Array{TypePos: 1},
			&descriptor.Array{TypePos: 0},
		})
		_, err := BuildCodec(pos(0), cat)
		var cerr *CyclicDescriptorError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, descriptor.TypePos(0), cerr.Pos)
	})
}

func TestScalarAlias(t *testing.T) {
	cat := descriptor.NewCatalog([]descriptor.Descriptor{
		&descriptor.BaseScalar{ID: descriptor.TypeInt64},
		&descriptor.Scalar{BaseTypePos: 0},
		&descriptor.Scalar{BaseTypePos: 1},
	})
	// Aliases are transparent on the wire, any chain depth.
	c := mustBuild(t, cat, 2)
	roundTrip(t, c, types.Int64(-7))

	w := wire.NewWriter()
	assert.Error(t, c.Encode(w, types.Str("seven")))
}

func TestArrayCodec(t *testing.T) {
	cat := descriptor.NewCatalog([]descriptor.Descriptor{
		&descriptor.BaseScalar{ID: descriptor.TypeStr},
		&descriptor.Array{TypePos: 0},
	})
	c := mustBuild(t, cat, 1)

	roundTrip(t, c, types.Array{types.Str("a"), types.Str(""), types.Str("ccc")})
	roundTrip(t, c, types.Array{})

	t.Run("empty is the fixed header", func(t *testing.T) {
		w := wire.NewWriter()
		require.NoError(t, c.Encode(w, types.Array{}))
		assert.Equal(t, make([]byte, 12), w.Data())
	})
}

func TestSetCodec(t *testing.T) {
	cat := descriptor.NewCatalog([]descriptor.Descriptor{
		&descriptor.BaseScalar{ID: descriptor.TypeInt32},
		&descriptor.Set{TypePos: 0},
	})
	c := mustBuild(t, cat, 1)
	roundTrip(t, c, types.Set{types.Int32(1), types.Int32(2)})
	roundTrip(t, c, types.Set{})

	w := wire.NewWriter()
	assert.Error(t, c.Encode(w, types.Array{types.Int32(1)}))
}

func TestTupleCodec(t *testing.T) {
	cat := descriptor.NewCatalog([]descriptor.Descriptor{
		&descriptor.BaseScalar{ID: descriptor.TypeInt64},
		&descriptor.BaseScalar{ID: descriptor.TypeStr},
		&descriptor.Tuple{ElementTypes: []descriptor.TypePos{0, 1}},
	})

	out := mustBuild(t, cat, 2)
	roundTrip(t, out, types.Tuple{types.Int64(1), types.Str("x")})

	in, err := BuildInputCodec(pos(2), cat)
	require.NoError(t, err)
	roundTrip(t, in, types.Tuple{types.Int64(1), types.Str("x")})

	t.Run("framing differs by the reserved field", func(t *testing.T) {
		v := types.Tuple{types.Int64(1), types.Str("x")}
		wOut, wIn := wire.NewWriter(), wire.NewWriter()
		require.NoError(t, out.Encode(wOut, v))
		require.NoError(t, in.Encode(wIn, v))
		assert.Equal(t, len(wIn.Data())+4*len(v), len(wOut.Data()))
	})

	t.Run("arity mismatch", func(t *testing.T) {
		w := wire.NewWriter()
		err := out.Encode(w, types.Tuple{types.Int64(1)})
		assert.ErrorIs(t, err, ErrTupleShapeMismatch)
	})

	t.Run("null element rejected", func(t *testing.T) {
		w := wire.NewWriter()
		enc := w.BeginTuple()
		require.NoError(t, enc.Element(func(w *wire.Writer) error {
			w.WriteInt64(1)
			return nil
		}))
		enc.Null()
		require.NoError(t, enc.Finish())

		_, err := out.Decode(w.Data())
		assert.ErrorIs(t, err, wire.ErrMissingRequiredElement)
	})
}

func TestNamedTupleCodec(t *testing.T) {
	cat := descriptor.NewCatalog([]descriptor.Descriptor{
		&descriptor.BaseScalar{ID: descriptor.TypeInt64},
		&descriptor.BaseScalar{ID: descriptor.TypeBool},
		&descriptor.NamedTuple{Elements: []descriptor.TupleElement{
			{Name: "id", TypePos: 0},
			{Name: "active", TypePos: 1},
		}},
	})
	c := mustBuild(t, cat, 2)

	w := wire.NewWriter()
	shape := types.NewNamedTupleShape([]string{"id", "active"})
	v := types.NamedTuple{Shape: shape, Fields: []types.Value{types.Int64(3), types.Bool(true)}}
	require.NoError(t, c.Encode(w, v))

	got, err := c.Decode(w.Data())
	require.NoError(t, err)
	nt, ok := got.(types.NamedTuple)
	require.True(t, ok)
	assert.True(t, nt.Shape.Equal(shape))
	assert.Equal(t, v.Fields, nt.Fields)

	t.Run("shape mismatch", func(t *testing.T) {
		other := types.NamedTuple{
			Shape:  types.NewNamedTupleShape([]string{"id", "enabled"}),
			Fields: []types.Value{types.Int64(3), types.Bool(true)},
		}
		err := c.Encode(wire.NewWriter(), other)
		assert.ErrorIs(t, err, ErrTupleShapeMismatch)
	})
}

func TestObjectCodec(t *testing.T) {
	cat := descriptor.NewCatalog([]descriptor.Descriptor{
		&descriptor.BaseScalar{ID: descriptor.TypeUUID},
		&descriptor.BaseScalar{ID: descriptor.TypeStr},
		&descriptor.ObjectShape{Elements: []descriptor.ShapeElement{
			{Name: "id", TypePos: 0, Implicit: true},
			{Name: "name", TypePos: 1},
		}},
	})
	c := mustBuild(t, cat, 2)

	id := types.UUID{15: 0x2a}
	w := wire.NewWriter()
	enc := w.BeginTuple()
	require.NoError(t, enc.Element(func(w *wire.Writer) error {
		EncodeUUID(w, [16]byte(id))
		return nil
	}))
	enc.Null()
	require.NoError(t, enc.Finish())

	got, err := c.Decode(w.Data())
	require.NoError(t, err)
	o, ok := got.(types.Object)
	require.True(t, ok)
	require.Len(t, o.Fields, 2)
	assert.Equal(t, id, o.Fields[0])
	// A null element decodes as an unset slot, not an explicit value.
	assert.Nil(t, o.Fields[1])
	assert.Equal(t, "id", o.Shape.Field(0).Name)
	assert.True(t, o.Shape.Field(0).Implicit)
	assert.Equal(t, 1, o.Shape.FieldIndex("name"))

	t.Run("unset slot survives re-encoding", func(t *testing.T) {
		w2 := wire.NewWriter()
		require.NoError(t, c.Encode(w2, o))
		assert.Equal(t, w.Data(), w2.Data())
	})

	t.Run("foreign shape rejected", func(t *testing.T) {
		foreign := types.Object{
			Shape:  types.NewObjectShape([]types.ShapeField{{Name: "other"}}),
			Fields: []types.Value{types.Str("x")},
		}
		err := c.Encode(wire.NewWriter(), foreign)
		assert.ErrorIs(t, err, ErrObjectShapeMismatch)
	})
}

func TestEnumCodec(t *testing.T) {
	cat := descriptor.NewCatalog([]descriptor.Descriptor{
		&descriptor.Enumeration{Members: []string{"red", "green", "blue"}},
	})
	c := mustBuild(t, cat, 0)

	roundTrip(t, c, types.Enum("green"))

	_, err := c.Decode([]byte("magenta"))
	assert.ErrorIs(t, err, ErrUnknownEnumMember)

	err = c.Encode(wire.NewWriter(), types.Enum("magenta"))
	assert.ErrorIs(t, err, ErrUnknownEnumMember)
}

func TestSharedSubtreeBuildsOnce(t *testing.T) {
	// Both tuple slots reference position 0; the memo must hand back the
	// same codec instance rather than rebuild it.
	cat := descriptor.NewCatalog([]descriptor.Descriptor{
		&descriptor.Array{TypePos: 1},
		&descriptor.BaseScalar{ID: descriptor.TypeInt64},
		&descriptor.Tuple{ElementTypes: []descriptor.TypePos{0, 0}},
	})
	c := mustBuild(t, cat, 2)

	tc, ok := c.(*tupleCodec)
	require.True(t, ok)
	require.Len(t, tc.elements, 2)
	assert.Same(t, tc.elements[0], tc.elements[1])
}

func TestNestedCompositeRoundTrip(t *testing.T) {
	cat := descriptor.NewCatalog([]descriptor.Descriptor{
		&descriptor.BaseScalar{ID: descriptor.TypeInt64},
		&descriptor.Array{TypePos: 0},
		&descriptor.BaseScalar{ID: descriptor.TypeStr},
		&descriptor.Tuple{ElementTypes: []descriptor.TypePos{1, 2}},
		&descriptor.Set{TypePos: 3},
	})
	c := mustBuild(t, cat, 4)

	v := types.Set{
		types.Tuple{types.Array{types.Int64(1), types.Int64(2)}, types.Str("a")},
		types.Tuple{types.Array{}, types.Str("")},
	}
	roundTrip(t, c, v)
}

func TestScalarCodecLookup(t *testing.T) {
	c, err := ScalarCodec(descriptor.TypeBool)
	require.NoError(t, err)
	v, err := c.Decode([]byte{1})
	require.NoError(t, err)
	assert.Equal(t, types.Bool(true), v)

	_, err = ScalarCodec(uuid.Nil)
	var serr *UndefinedBaseScalarError
	assert.ErrorAs(t, err, &serr)
}
