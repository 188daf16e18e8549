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
	"github.com/google/uuid"

	"github.com/edgewire/edgewire/descriptor"
	"github.com/edgewire/edgewire/model"
	"github.com/edgewire/edgewire/types"
	"github.com/edgewire/edgewire/wire"
)

// Scalar codec leaves. Each wraps one layout pair from scalars.go and is a
// stateless singleton shared by every codec tree that references its id.

type boolCodec struct{}

func (boolCodec) Decode(data []byte) (types.Value, error) {
	v, err := DecodeBool(data)
	return types.Bool(v), err
}

func (boolCodec) Encode(w *wire.Writer, v types.Value) error {
	b, ok := v.(types.Bool)
	if !ok {
		return invalidValue("bool", v)
	}
	EncodeBool(w, bool(b))
	return nil
}

type int16Codec struct{}

func (int16Codec) Decode(data []byte) (types.Value, error) {
	v, err := DecodeInt16(data)
	return types.Int16(v), err
}

func (int16Codec) Encode(w *wire.Writer, v types.Value) error {
	n, ok := v.(types.Int16)
	if !ok {
		return invalidValue("int16", v)
	}
	EncodeInt16(w, int16(n))
	return nil
}

type int32Codec struct{}

func (int32Codec) Decode(data []byte) (types.Value, error) {
	v, err := DecodeInt32(data)
	return types.Int32(v), err
}

func (int32Codec) Encode(w *wire.Writer, v types.Value) error {
	n, ok := v.(types.Int32)
	if !ok {
		return invalidValue("int32", v)
	}
	EncodeInt32(w, int32(n))
	return nil
}

type int64Codec struct{}

func (int64Codec) Decode(data []byte) (types.Value, error) {
	v, err := DecodeInt64(data)
	return types.Int64(v), err
}

func (int64Codec) Encode(w *wire.Writer, v types.Value) error {
	n, ok := v.(types.Int64)
	if !ok {
		return invalidValue("int64", v)
	}
	EncodeInt64(w, int64(n))
	return nil
}

type float32Codec struct{}

func (float32Codec) Decode(data []byte) (types.Value, error) {
	v, err := DecodeFloat32(data)
	return types.Float32(v), err
}

func (float32Codec) Encode(w *wire.Writer, v types.Value) error {
	f, ok := v.(types.Float32)
	if !ok {
		return invalidValue("float32", v)
	}
	EncodeFloat32(w, float32(f))
	return nil
}

type float64Codec struct{}

func (float64Codec) Decode(data []byte) (types.Value, error) {
	v, err := DecodeFloat64(data)
	return types.Float64(v), err
}

func (float64Codec) Encode(w *wire.Writer, v types.Value) error {
	f, ok := v.(types.Float64)
	if !ok {
		return invalidValue("float64", v)
	}
	EncodeFloat64(w, float64(f))
	return nil
}

type uuidCodec struct{}

func (uuidCodec) Decode(data []byte) (types.Value, error) {
	v, err := DecodeUUID(data)
	return types.UUID(v), err
}

func (uuidCodec) Encode(w *wire.Writer, v types.Value) error {
	u, ok := v.(types.UUID)
	if !ok {
		return invalidValue("uuid", v)
	}
	EncodeUUID(w, model.UUID(u))
	return nil
}

type strCodec struct{}

func (strCodec) Decode(data []byte) (types.Value, error) {
	v, err := DecodeStr(data)
	return types.Str(v), err
}

func (strCodec) Encode(w *wire.Writer, v types.Value) error {
	s, ok := v.(types.Str)
	if !ok {
		return invalidValue("str", v)
	}
	EncodeStr(w, string(s))
	return nil
}

type bytesCodec struct{}

func (bytesCodec) Decode(data []byte) (types.Value, error) {
	span, err := DecodeBytes(data)
	if err != nil {
		return nil, err
	}
	owned := make(types.Bytes, len(span))
	copy(owned, span)
	return owned, nil
}

func (bytesCodec) Encode(w *wire.Writer, v types.Value) error {
	b, ok := v.(types.Bytes)
	if !ok {
		return invalidValue("bytes", v)
	}
	EncodeBytes(w, b)
	return nil
}

type jsonCodec struct{}

func (jsonCodec) Decode(data []byte) (types.Value, error) {
	v, err := DecodeJSON(data)
	return types.JSON(v), err
}

func (jsonCodec) Encode(w *wire.Writer, v types.Value) error {
	j, ok := v.(types.JSON)
	if !ok {
		return invalidValue("json", v)
	}
	EncodeJSON(w, model.JSON(j))
	return nil
}

type durationCodec struct{}

func (durationCodec) Decode(data []byte) (types.Value, error) {
	v, err := DecodeDuration(data)
	return types.Duration(v), err
}

func (durationCodec) Encode(w *wire.Writer, v types.Value) error {
	d, ok := v.(types.Duration)
	if !ok {
		return invalidValue("duration", v)
	}
	EncodeDuration(w, model.Duration(d))
	return nil
}

type datetimeCodec struct{}

func (datetimeCodec) Decode(data []byte) (types.Value, error) {
	v, err := DecodeDatetime(data)
	return types.Datetime(v), err
}

func (datetimeCodec) Encode(w *wire.Writer, v types.Value) error {
	d, ok := v.(types.Datetime)
	if !ok {
		return invalidValue("datetime", v)
	}
	EncodeDatetime(w, model.Datetime(d))
	return nil
}

type localDatetimeCodec struct{}

func (localDatetimeCodec) Decode(data []byte) (types.Value, error) {
	v, err := DecodeLocalDatetime(data)
	return types.LocalDatetime(v), err
}

func (localDatetimeCodec) Encode(w *wire.Writer, v types.Value) error {
	d, ok := v.(types.LocalDatetime)
	if !ok {
		return invalidValue("cal::local_datetime", v)
	}
	EncodeLocalDatetime(w, model.LocalDatetime(d))
	return nil
}

type localDateCodec struct{}

func (localDateCodec) Decode(data []byte) (types.Value, error) {
	v, err := DecodeLocalDate(data)
	return types.LocalDate(v), err
}

func (localDateCodec) Encode(w *wire.Writer, v types.Value) error {
	d, ok := v.(types.LocalDate)
	if !ok {
		return invalidValue("cal::local_date", v)
	}
	EncodeLocalDate(w, model.LocalDate(d))
	return nil
}

type localTimeCodec struct{}

func (localTimeCodec) Decode(data []byte) (types.Value, error) {
	v, err := DecodeLocalTime(data)
	return types.LocalTime(v), err
}

func (localTimeCodec) Encode(w *wire.Writer, v types.Value) error {
	t, ok := v.(types.LocalTime)
	if !ok {
		return invalidValue("cal::local_time", v)
	}
	EncodeLocalTime(w, model.LocalTime(t))
	return nil
}

type decimalCodec struct{}

func (decimalCodec) Decode(data []byte) (types.Value, error) {
	v, err := DecodeDecimal(data)
	return types.Decimal(v), err
}

func (decimalCodec) Encode(w *wire.Writer, v types.Value) error {
	d, ok := v.(types.Decimal)
	if !ok {
		return invalidValue("decimal", v)
	}
	return EncodeDecimal(w, model.Decimal(d))
}

type bigIntCodec struct{}

func (bigIntCodec) Decode(data []byte) (types.Value, error) {
	v, err := DecodeBigInt(data)
	return types.BigInt(v), err
}

func (bigIntCodec) Encode(w *wire.Writer, v types.Value) error {
	b, ok := v.(types.BigInt)
	if !ok {
		return invalidValue("bigint", v)
	}
	return EncodeBigInt(w, model.BigInt(b))
}

var scalarCodecs = map[uuid.UUID]Codec{
	descriptor.TypeUUID:          uuidCodec{},
	descriptor.TypeStr:           strCodec{},
	descriptor.TypeBytes:         bytesCodec{},
	descriptor.TypeInt16:         int16Codec{},
	descriptor.TypeInt32:         int32Codec{},
	descriptor.TypeInt64:         int64Codec{},
	descriptor.TypeFloat32:       float32Codec{},
	descriptor.TypeFloat64:       float64Codec{},
	descriptor.TypeDecimal:       decimalCodec{},
	descriptor.TypeBool:          boolCodec{},
	descriptor.TypeDatetime:      datetimeCodec{},
	descriptor.TypeLocalDatetime: localDatetimeCodec{},
	descriptor.TypeLocalDate:     localDateCodec{},
	descriptor.TypeLocalTime:     localTimeCodec{},
	descriptor.TypeDuration:      durationCodec{},
	descriptor.TypeJSON:          jsonCodec{},
	descriptor.TypeBigInt:        bigIntCodec{},
}

// ScalarCodec returns the codec for a base scalar type id.
func ScalarCodec(id uuid.UUID) (Codec, error) {
	c, ok := scalarCodecs[id]
	if !ok {
		return nil, &UndefinedBaseScalarError{ID: id}
	}
	return c, nil
}
