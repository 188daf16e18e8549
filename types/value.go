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

// Package types holds the dynamic, type-erased runtime representation of
// decoded values and the shared shape metadata for objects and named
// tuples.
package types

import "github.com/edgewire/edgewire/model"

// Value is the tagged union over every decodable variant. Concrete types
// are small named wrappers; dispatch is a type switch on the concrete type
// or on Kind.
type Value interface {
	Kind() Kind
}

type (
	// Nothing is the value of an absent result (no root descriptor).
	Nothing struct{}

	UUID    model.UUID
	Str     string
	Bytes   []byte
	Int16   int16
	Int32   int32
	Int64   int64
	Float32 float32
	Float64 float64
	BigInt  model.BigInt
	Decimal model.Decimal
	Bool    bool

	Datetime      model.Datetime
	LocalDatetime model.LocalDatetime
	LocalDate     model.LocalDate
	LocalTime     model.LocalTime
	Duration      model.Duration

	JSON model.JSON

	Set   []Value
	Array []Value
	Tuple []Value

	// Enum is a member of a declared enumeration. Decoded values are
	// interned against the codec's member set.
	Enum string
)

// Object is a decoded object: a shared shape handle plus one slot per
// shape field. A nil slot denotes an unset field, which is distinct from
// an explicit Nothing value.
type Object struct {
	Shape  *ObjectShape
	Fields []Value
}

// NamedTuple is a decoded named tuple. All fields are always present.
type NamedTuple struct {
	Shape  *NamedTupleShape
	Fields []Value
}

func (Nothing) Kind() Kind       { return NothingKind }
func (UUID) Kind() Kind          { return UUIDKind }
func (Str) Kind() Kind           { return StrKind }
func (Bytes) Kind() Kind         { return BytesKind }
func (Int16) Kind() Kind         { return Int16Kind }
func (Int32) Kind() Kind         { return Int32Kind }
func (Int64) Kind() Kind         { return Int64Kind }
func (Float32) Kind() Kind       { return Float32Kind }
func (Float64) Kind() Kind       { return Float64Kind }
func (BigInt) Kind() Kind        { return BigIntKind }
func (Decimal) Kind() Kind       { return DecimalKind }
func (Bool) Kind() Kind          { return BoolKind }
func (Datetime) Kind() Kind      { return DatetimeKind }
func (LocalDatetime) Kind() Kind { return LocalDatetimeKind }
func (LocalDate) Kind() Kind     { return LocalDateKind }
func (LocalTime) Kind() Kind     { return LocalTimeKind }
func (Duration) Kind() Kind      { return DurationKind }
func (JSON) Kind() Kind          { return JSONKind }
func (Set) Kind() Kind           { return SetKind }
func (Array) Kind() Kind         { return ArrayKind }
func (Tuple) Kind() Kind         { return TupleKind }
func (Object) Kind() Kind        { return ObjectKind }
func (NamedTuple) Kind() Kind    { return NamedTupleKind }
func (Enum) Kind() Kind          { return EnumKind }

// EmptyTuple returns the zero-arity tuple value.
func EmptyTuple() Value {
	return Tuple{}
}
