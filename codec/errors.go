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
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/edgewire/edgewire/descriptor"
	"github.com/edgewire/edgewire/types"
)

// Construction errors.

// InvalidPositionError reports a descriptor reference outside the catalog.
type InvalidPositionError struct {
	Pos descriptor.TypePos
}

func (e *InvalidPositionError) Error() string {
	return fmt.Sprintf("no descriptor at position %d", e.Pos)
}

// UndefinedBaseScalarError reports a base scalar id with no known codec.
type UndefinedBaseScalarError struct {
	ID uuid.UUID
}

func (e *UndefinedBaseScalarError) Error() string {
	return fmt.Sprintf("undefined base scalar %s", e.ID)
}

// CyclicDescriptorError reports a descriptor that transitively references
// itself. The table is required to be acyclic.
type CyclicDescriptorError struct {
	Pos descriptor.TypePos
}

func (e *CyclicDescriptorError) Error() string {
	return fmt.Sprintf("cyclic descriptor reference at position %d", e.Pos)
}

// ErrUnexpectedAnnotation reports a type annotation reached during codec
// building. Annotations must be stripped from the table by the caller.
var ErrUnexpectedAnnotation = errors.New("type annotation reached during codec building")

// Encode errors.

var (
	ErrObjectShapeMismatch = errors.New("object shape does not match codec")
	ErrTupleShapeMismatch  = errors.New("tuple shape does not match codec")
	ErrUnknownEnumMember   = errors.New("enum value is not in declared members")
)

// InvalidValueError reports an encode of a value whose kind does not match
// the codec.
type InvalidValueError struct {
	Codec string
	Value types.Value
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %s for %s codec", e.Value.Kind(), e.Codec)
}

func invalidValue(codec string, v types.Value) error {
	return &InvalidValueError{Codec: codec, Value: v}
}
