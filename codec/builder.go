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
	"github.com/pkg/errors"

	"github.com/edgewire/edgewire/descriptor"
	"github.com/edgewire/edgewire/types"
)

// BuildCodec compiles the descriptor at root into a codec tree using output
// framing. A nil root yields the Nothing codec.
func BuildCodec(root *descriptor.TypePos, cat *descriptor.Catalog) (Codec, error) {
	return build(root, cat, Output)
}

// BuildInputCodec is the input-framing variant, used for query arguments.
func BuildInputCodec(root *descriptor.TypePos, cat *descriptor.Catalog) (Codec, error) {
	return build(root, cat, Input)
}

func build(root *descriptor.TypePos, cat *descriptor.Catalog, mode Mode) (Codec, error) {
	if root == nil {
		return nothingCodec{}, nil
	}
	b := &builder{
		mode:     mode,
		cat:      cat,
		built:    make(map[descriptor.TypePos]Codec),
		building: make(map[descriptor.TypePos]struct{}),
	}
	return b.build(*root)
}

// builder performs the recursive descent over the catalog. Finished codecs
// are memoized per position so shared sub-descriptors build once; positions
// still being built are tracked to reject cyclic tables.
type builder struct {
	mode     Mode
	cat      *descriptor.Catalog
	built    map[descriptor.TypePos]Codec
	building map[descriptor.TypePos]struct{}
}

func (b *builder) build(pos descriptor.TypePos) (Codec, error) {
	if c, ok := b.built[pos]; ok {
		return c, nil
	}
	if _, ok := b.building[pos]; ok {
		return nil, &CyclicDescriptorError{Pos: pos}
	}
	b.building[pos] = struct{}{}
	defer delete(b.building, pos)

	d, err := b.cat.Get(pos)
	if err != nil {
		return nil, &InvalidPositionError{Pos: pos}
	}

	c, err := b.buildDescriptor(d)
	if err != nil {
		return nil, err
	}
	b.built[pos] = c
	return c, nil
}

func (b *builder) buildDescriptor(d descriptor.Descriptor) (Codec, error) {
	switch d := d.(type) {
	case *descriptor.BaseScalar:
		return ScalarCodec(d.ID)

	case *descriptor.Scalar:
		inner, err := b.build(d.BaseTypePos)
		if err != nil {
			return nil, err
		}
		return &scalarWrapper{inner: inner}, nil

	case *descriptor.Set:
		element, err := b.build(d.TypePos)
		if err != nil {
			return nil, err
		}
		return &setCodec{element: element}, nil

	case *descriptor.Array:
		element, err := b.build(d.TypePos)
		if err != nil {
			return nil, err
		}
		return &arrayCodec{element: element}, nil

	case *descriptor.ObjectShape:
		return b.buildObject(d)

	case *descriptor.Tuple:
		elements, err := b.buildAll(d.ElementTypes)
		if err != nil {
			return nil, err
		}
		if b.mode == Input {
			return &inputTupleCodec{elements: elements}, nil
		}
		return &tupleCodec{elements: elements}, nil

	case *descriptor.NamedTuple:
		return b.buildNamedTuple(d)

	case *descriptor.Enumeration:
		return newEnumCodec(d.Members), nil

	case *descriptor.TypeAnnotation:
		return nil, ErrUnexpectedAnnotation

	default:
		return nil, errors.Errorf("unhandled descriptor %s", descriptor.Describe(d))
	}
}

func (b *builder) buildAll(positions []descriptor.TypePos) ([]Codec, error) {
	codecs := make([]Codec, 0, len(positions))
	for _, pos := range positions {
		c, err := b.build(pos)
		if err != nil {
			return nil, err
		}
		codecs = append(codecs, c)
	}
	return codecs, nil
}

func (b *builder) buildObject(d *descriptor.ObjectShape) (Codec, error) {
	fields := make([]types.ShapeField, 0, len(d.Elements))
	codecs := make([]Codec, 0, len(d.Elements))
	for _, e := range d.Elements {
		c, err := b.build(e.TypePos)
		if err != nil {
			return nil, err
		}
		codecs = append(codecs, c)
		fields = append(fields, types.ShapeField{
			Name:         e.Name,
			Implicit:     e.Implicit,
			Link:         e.Link,
			LinkProperty: e.LinkProperty,
		})
	}
	return &objectCodec{shape: types.NewObjectShape(fields), fields: codecs}, nil
}

func (b *builder) buildNamedTuple(d *descriptor.NamedTuple) (Codec, error) {
	names := make([]string, 0, len(d.Elements))
	codecs := make([]Codec, 0, len(d.Elements))
	for _, e := range d.Elements {
		c, err := b.build(e.TypePos)
		if err != nil {
			return nil, err
		}
		codecs = append(codecs, c)
		names = append(names, e.Name)
	}
	shape := types.NewNamedTupleShape(names)
	if b.mode == Input {
		return &inputNamedTupleCodec{shape: shape, fields: codecs}, nil
	}
	return &namedTupleCodec{shape: shape, fields: codecs}, nil
}
