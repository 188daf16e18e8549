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
	"github.com/edgewire/edgewire/codec"
	"github.com/edgewire/edgewire/descriptor"
	"github.com/edgewire/edgewire/model"
)

// Named wrappers over the scalar types so each can carry the Queryable
// methods. Each checks its fixed type id through any scalar alias chain
// before bytes are trusted.

type (
	Bool    bool
	Int16   int16
	Int32   int32
	Int64   int64
	Float32 float32
	Float64 float64
	Str     string
	Bytes   []byte

	UUID          model.UUID
	JSON          model.JSON
	Duration      model.Duration
	Datetime      model.Datetime
	LocalDatetime model.LocalDatetime
	LocalDate     model.LocalDate
	LocalTime     model.LocalTime
	Decimal       model.Decimal
	BigInt        model.BigInt
)

func (v *Bool) DecodeBinary(data []byte) error {
	b, err := codec.DecodeBool(data)
	*v = Bool(b)
	return err
}

func (v *Bool) CheckDescriptor(cat *descriptor.Catalog, pos descriptor.TypePos) error {
	return cat.CheckScalar(pos, descriptor.TypeBool, "bool")
}

func (v *Int16) DecodeBinary(data []byte) error {
	n, err := codec.DecodeInt16(data)
	*v = Int16(n)
	return err
}

func (v *Int16) CheckDescriptor(cat *descriptor.Catalog, pos descriptor.TypePos) error {
	return cat.CheckScalar(pos, descriptor.TypeInt16, "int16")
}

func (v *Int32) DecodeBinary(data []byte) error {
	n, err := codec.DecodeInt32(data)
	*v = Int32(n)
	return err
}

func (v *Int32) CheckDescriptor(cat *descriptor.Catalog, pos descriptor.TypePos) error {
	return cat.CheckScalar(pos, descriptor.TypeInt32, "int32")
}

func (v *Int64) DecodeBinary(data []byte) error {
	n, err := codec.DecodeInt64(data)
	*v = Int64(n)
	return err
}

func (v *Int64) CheckDescriptor(cat *descriptor.Catalog, pos descriptor.TypePos) error {
	return cat.CheckScalar(pos, descriptor.TypeInt64, "int64")
}

func (v *Float32) DecodeBinary(data []byte) error {
	f, err := codec.DecodeFloat32(data)
	*v = Float32(f)
	return err
}

func (v *Float32) CheckDescriptor(cat *descriptor.Catalog, pos descriptor.TypePos) error {
	return cat.CheckScalar(pos, descriptor.TypeFloat32, "float32")
}

func (v *Float64) DecodeBinary(data []byte) error {
	f, err := codec.DecodeFloat64(data)
	*v = Float64(f)
	return err
}

func (v *Float64) CheckDescriptor(cat *descriptor.Catalog, pos descriptor.TypePos) error {
	return cat.CheckScalar(pos, descriptor.TypeFloat64, "float64")
}

func (v *Str) DecodeBinary(data []byte) error {
	s, err := codec.DecodeStr(data)
	*v = Str(s)
	return err
}

func (v *Str) CheckDescriptor(cat *descriptor.Catalog, pos descriptor.TypePos) error {
	return cat.CheckScalar(pos, descriptor.TypeStr, "str")
}

func (v *Bytes) DecodeBinary(data []byte) error {
	span, err := codec.DecodeBytes(data)
	if err != nil {
		return err
	}
	*v = make(Bytes, len(span))
	copy(*v, span)
	return nil
}

func (v *Bytes) CheckDescriptor(cat *descriptor.Catalog, pos descriptor.TypePos) error {
	return cat.CheckScalar(pos, descriptor.TypeBytes, "bytes")
}

func (v *UUID) DecodeBinary(data []byte) error {
	u, err := codec.DecodeUUID(data)
	*v = UUID(u)
	return err
}

func (v *UUID) CheckDescriptor(cat *descriptor.Catalog, pos descriptor.TypePos) error {
	return cat.CheckScalar(pos, descriptor.TypeUUID, "uuid")
}

func (v *JSON) DecodeBinary(data []byte) error {
	j, err := codec.DecodeJSON(data)
	*v = JSON(j)
	return err
}

func (v *JSON) CheckDescriptor(cat *descriptor.Catalog, pos descriptor.TypePos) error {
	return cat.CheckScalar(pos, descriptor.TypeJSON, "json")
}

func (v *Duration) DecodeBinary(data []byte) error {
	d, err := codec.DecodeDuration(data)
	*v = Duration(d)
	return err
}

func (v *Duration) CheckDescriptor(cat *descriptor.Catalog, pos descriptor.TypePos) error {
	return cat.CheckScalar(pos, descriptor.TypeDuration, "duration")
}

func (v *Datetime) DecodeBinary(data []byte) error {
	d, err := codec.DecodeDatetime(data)
	*v = Datetime(d)
	return err
}

func (v *Datetime) CheckDescriptor(cat *descriptor.Catalog, pos descriptor.TypePos) error {
	return cat.CheckScalar(pos, descriptor.TypeDatetime, "datetime")
}

func (v *LocalDatetime) DecodeBinary(data []byte) error {
	d, err := codec.DecodeLocalDatetime(data)
	*v = LocalDatetime(d)
	return err
}

func (v *LocalDatetime) CheckDescriptor(cat *descriptor.Catalog, pos descriptor.TypePos) error {
	return cat.CheckScalar(pos, descriptor.TypeLocalDatetime, "cal::local_datetime")
}

func (v *LocalDate) DecodeBinary(data []byte) error {
	d, err := codec.DecodeLocalDate(data)
	*v = LocalDate(d)
	return err
}

func (v *LocalDate) CheckDescriptor(cat *descriptor.Catalog, pos descriptor.TypePos) error {
	return cat.CheckScalar(pos, descriptor.TypeLocalDate, "cal::local_date")
}

func (v *LocalTime) DecodeBinary(data []byte) error {
	t, err := codec.DecodeLocalTime(data)
	*v = LocalTime(t)
	return err
}

func (v *LocalTime) CheckDescriptor(cat *descriptor.Catalog, pos descriptor.TypePos) error {
	return cat.CheckScalar(pos, descriptor.TypeLocalTime, "cal::local_time")
}

func (v *Decimal) DecodeBinary(data []byte) error {
	d, err := codec.DecodeDecimal(data)
	*v = Decimal(d)
	return err
}

func (v *Decimal) CheckDescriptor(cat *descriptor.Catalog, pos descriptor.TypePos) error {
	return cat.CheckScalar(pos, descriptor.TypeDecimal, "decimal")
}

func (v *BigInt) DecodeBinary(data []byte) error {
	b, err := codec.DecodeBigInt(data)
	*v = BigInt(b)
	return err
}

func (v *BigInt) CheckDescriptor(cat *descriptor.Catalog, pos descriptor.TypePos) error {
	return cat.CheckScalar(pos, descriptor.TypeBigInt, "bigint")
}
