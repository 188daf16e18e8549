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

// Kind identifies which variant of the Value union a value is.
type Kind uint8

const (
	NothingKind Kind = iota
	UUIDKind
	StrKind
	BytesKind
	Int16Kind
	Int32Kind
	Int64Kind
	Float32Kind
	Float64Kind
	BigIntKind
	DecimalKind
	BoolKind
	DatetimeKind
	LocalDatetimeKind
	LocalDateKind
	LocalTimeKind
	DurationKind
	JSONKind
	SetKind
	ObjectKind
	TupleKind
	NamedTupleKind
	ArrayKind
	EnumKind
)

var kindNames = map[Kind]string{
	NothingKind:       "nothing",
	UUIDKind:          "uuid",
	StrKind:           "string",
	BytesKind:         "bytes",
	Int16Kind:         "int16",
	Int32Kind:         "int32",
	Int64Kind:         "int64",
	Float32Kind:       "float32",
	Float64Kind:       "float64",
	BigIntKind:        "bigint",
	DecimalKind:       "decimal",
	BoolKind:          "bool",
	DatetimeKind:      "datetime",
	LocalDatetimeKind: "cal::local_datetime",
	LocalDateKind:     "cal::local_date",
	LocalTimeKind:     "cal::local_time",
	DurationKind:      "duration",
	JSONKind:          "json",
	SetKind:           "set",
	ObjectKind:        "object",
	TupleKind:         "tuple",
	NamedTupleKind:    "named_tuple",
	ArrayKind:         "array",
	EnumKind:          "enum",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}
