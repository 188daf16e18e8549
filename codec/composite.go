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
	"github.com/edgewire/edgewire/types"
	"github.com/edgewire/edgewire/wire"
)

// nothingCodec is the singleton codec for an absent root descriptor.
type nothingCodec struct{}

func (nothingCodec) Decode(data []byte) (types.Value, error) {
	return types.Nothing{}, nil
}

func (nothingCodec) Encode(w *wire.Writer, v types.Value) error {
	if _, ok := v.(types.Nothing); !ok {
		return invalidValue("nothing", v)
	}
	return nil
}

// scalarWrapper represents a scalar alias. It is transparent on the wire.
type scalarWrapper struct {
	inner Codec
}

func (c *scalarWrapper) Decode(data []byte) (types.Value, error) {
	return c.inner.Decode(data)
}

func (c *scalarWrapper) Encode(w *wire.Writer, v types.Value) error {
	return c.inner.Encode(w, v)
}

type setCodec struct {
	element Codec
}

func (c *setCodec) Decode(data []byte) (types.Value, error) {
	items, err := decodeArrayLike(data, c.element)
	return types.Set(items), err
}

func (c *setCodec) Encode(w *wire.Writer, v types.Value) error {
	items, ok := v.(types.Set)
	if !ok {
		return invalidValue("set", v)
	}
	return encodeArrayLike(w, c.element, items)
}

type arrayCodec struct {
	element Codec
}

func (c *arrayCodec) Decode(data []byte) (types.Value, error) {
	items, err := decodeArrayLike(data, c.element)
	return types.Array(items), err
}

func (c *arrayCodec) Encode(w *wire.Writer, v types.Value) error {
	items, ok := v.(types.Array)
	if !ok {
		return invalidValue("array", v)
	}
	return encodeArrayLike(w, c.element, items)
}

func decodeArrayLike(data []byte, element Codec) ([]types.Value, error) {
	ar, err := wire.NewArrayReader(data)
	if err != nil {
		return nil, err
	}
	items := make([]types.Value, 0, ar.Count())
	for i := 0; i < ar.Count(); i++ {
		span, err := ar.Next()
		if err != nil {
			return nil, err
		}
		item, err := element.Decode(span)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func encodeArrayLike(w *wire.Writer, element Codec, items []types.Value) error {
	enc := w.BeginArray()
	for _, item := range items {
		item := item
		err := enc.Element(func(w *wire.Writer) error {
			return element.Encode(w, item)
		})
		if err != nil {
			return err
		}
	}
	return enc.Finish()
}

type tupleCodec struct {
	elements []Codec
}

func (c *tupleCodec) Decode(data []byte) (types.Value, error) {
	tr, err := wire.NewTupleReader(data, len(c.elements))
	if err != nil {
		return nil, err
	}
	items, err := decodeTupleElements(tr, c.elements)
	return types.Tuple(items), err
}

func (c *tupleCodec) Encode(w *wire.Writer, v types.Value) error {
	items, ok := v.(types.Tuple)
	if !ok {
		return invalidValue("tuple", v)
	}
	if len(items) != len(c.elements) {
		return ErrTupleShapeMismatch
	}
	return encodeTupleElements(w.BeginTuple(), c.elements, items)
}

type inputTupleCodec struct {
	elements []Codec
}

func (c *inputTupleCodec) Decode(data []byte) (types.Value, error) {
	tr, err := wire.NewInputTupleReader(data, len(c.elements))
	if err != nil {
		return nil, err
	}
	items, err := decodeTupleElements(tr, c.elements)
	return types.Tuple(items), err
}

func (c *inputTupleCodec) Encode(w *wire.Writer, v types.Value) error {
	items, ok := v.(types.Tuple)
	if !ok {
		return invalidValue("tuple", v)
	}
	if len(items) != len(c.elements) {
		return ErrTupleShapeMismatch
	}
	return encodeTupleElements(w.BeginInputTuple(), c.elements, items)
}

type namedTupleCodec struct {
	shape  *types.NamedTupleShape
	fields []Codec
}

func (c *namedTupleCodec) Decode(data []byte) (types.Value, error) {
	tr, err := wire.NewTupleReader(data, len(c.fields))
	if err != nil {
		return nil, err
	}
	fields, err := decodeTupleElements(tr, c.fields)
	if err != nil {
		return nil, err
	}
	return types.NamedTuple{Shape: c.shape, Fields: fields}, nil
}

func (c *namedTupleCodec) Encode(w *wire.Writer, v types.Value) error {
	nt, ok := v.(types.NamedTuple)
	if !ok {
		return invalidValue("named tuple", v)
	}
	if !nt.Shape.Equal(c.shape) || len(nt.Fields) != len(c.fields) {
		return ErrTupleShapeMismatch
	}
	return encodeTupleElements(w.BeginTuple(), c.fields, nt.Fields)
}

type inputNamedTupleCodec struct {
	shape  *types.NamedTupleShape
	fields []Codec
}

func (c *inputNamedTupleCodec) Decode(data []byte) (types.Value, error) {
	tr, err := wire.NewInputTupleReader(data, len(c.fields))
	if err != nil {
		return nil, err
	}
	fields, err := decodeTupleElements(tr, c.fields)
	if err != nil {
		return nil, err
	}
	return types.NamedTuple{Shape: c.shape, Fields: fields}, nil
}

func (c *inputNamedTupleCodec) Encode(w *wire.Writer, v types.Value) error {
	nt, ok := v.(types.NamedTuple)
	if !ok {
		return invalidValue("named tuple", v)
	}
	if !nt.Shape.Equal(c.shape) || len(nt.Fields) != len(c.fields) {
		return ErrTupleShapeMismatch
	}
	return encodeTupleElements(w.BeginInputTuple(), c.fields, nt.Fields)
}

// decodeTupleElements reads one element per codec; tuples carry no nulls.
func decodeTupleElements(tr *wire.TupleReader, codecs []Codec) ([]types.Value, error) {
	items := make([]types.Value, 0, len(codecs))
	for _, c := range codecs {
		span, present, err := tr.Next()
		if err != nil {
			return nil, err
		}
		if !present {
			return nil, wire.ErrMissingRequiredElement
		}
		item, err := c.Decode(span)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func encodeTupleElements(enc *wire.TupleEncoder, codecs []Codec, items []types.Value) error {
	for i, c := range codecs {
		c, item := c, items[i]
		err := enc.Element(func(w *wire.Writer) error {
			return c.Encode(w, item)
		})
		if err != nil {
			return err
		}
	}
	return enc.Finish()
}

type objectCodec struct {
	shape  *types.ObjectShape
	fields []Codec
}

func (c *objectCodec) Decode(data []byte) (types.Value, error) {
	tr, err := wire.NewTupleReader(data, len(c.fields))
	if err != nil {
		return nil, err
	}
	fields := make([]types.Value, 0, len(c.fields))
	for _, fc := range c.fields {
		span, present, err := tr.Next()
		if err != nil {
			return nil, err
		}
		if !present {
			// Unset field, kept distinct from an explicit value.
			fields = append(fields, nil)
			continue
		}
		field, err := fc.Decode(span)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return types.Object{Shape: c.shape, Fields: fields}, nil
}

func (c *objectCodec) Encode(w *wire.Writer, v types.Value) error {
	o, ok := v.(types.Object)
	if !ok {
		return invalidValue("object", v)
	}
	if !o.Shape.Equal(c.shape) || len(o.Fields) != len(c.fields) {
		return ErrObjectShapeMismatch
	}
	enc := w.BeginTuple()
	for i, fc := range c.fields {
		if o.Fields[i] == nil {
			enc.Null()
			continue
		}
		fc, field := fc, o.Fields[i]
		err := enc.Element(func(w *wire.Writer) error {
			return fc.Encode(w, field)
		})
		if err != nil {
			return err
		}
	}
	return enc.Finish()
}

type enumCodec struct {
	members map[string]string
}

func newEnumCodec(members []string) *enumCodec {
	interned := make(map[string]string, len(members))
	for _, m := range members {
		interned[m] = m
	}
	return &enumCodec{members: interned}
}

func (c *enumCodec) Decode(data []byte) (types.Value, error) {
	s, err := DecodeStr(data)
	if err != nil {
		return nil, err
	}
	member, ok := c.members[s]
	if !ok {
		return nil, ErrUnknownEnumMember
	}
	// The interned copy is returned so equal values share storage.
	return types.Enum(member), nil
}

func (c *enumCodec) Encode(w *wire.Writer, v types.Value) error {
	e, ok := v.(types.Enum)
	if !ok {
		return invalidValue("enum", v)
	}
	if _, ok := c.members[string(e)]; !ok {
		return ErrUnknownEnumMember
	}
	EncodeStr(w, string(e))
	return nil
}
