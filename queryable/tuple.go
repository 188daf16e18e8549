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

package queryable

import (
	"github.com/pkg/errors"

	"github.com/edgewire/edgewire/descriptor"
	"github.com/edgewire/edgewire/wire"
)

const maxTupleArity = 12

var errTupleArity = errors.Errorf("tuple arity must be between 1 and %d", maxTupleArity)

// DecodeTuple decodes an output-framed tuple into out, one element per
// Queryable in declared order. A null element is accepted only by an out
// that implements SetMissing (see Optional).
func DecodeTuple(data []byte, out ...Queryable) error {
	if len(out) < 1 || len(out) > maxTupleArity {
		return errTupleArity
	}
	tr, err := wire.NewTupleReader(data, len(out))
	if err != nil {
		return err
	}
	for _, q := range out {
		span, present, err := tr.Next()
		if err != nil {
			return err
		}
		if !present {
			if opt, ok := q.(missingSetter); ok {
				opt.SetMissing()
				continue
			}
			return wire.ErrMissingRequiredElement
		}
		if err := q.DecodeBinary(span); err != nil {
			return err
		}
	}
	return nil
}

// CheckTupleDescriptor verifies that the descriptor at pos is a tuple of
// exactly len(out) elements and recursively checks each element position
// against the corresponding static type, in declared order.
func CheckTupleDescriptor(cat *descriptor.Catalog, pos descriptor.TypePos, out ...Queryable) error {
	if len(out) < 1 || len(out) > maxTupleArity {
		return errTupleArity
	}
	d, err := cat.Get(pos)
	if err != nil {
		return err
	}
	t, ok := d.(*descriptor.Tuple)
	if !ok {
		return descriptor.WrongType(d, "tuple")
	}
	if len(t.ElementTypes) != len(out) {
		return &descriptor.FieldNumberError{
			Expected:   len(out),
			Unexpected: len(t.ElementTypes),
		}
	}
	for i, q := range out {
		if err := q.CheckDescriptor(cat, t.ElementTypes[i]); err != nil {
			return err
		}
	}
	return nil
}
