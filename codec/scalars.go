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
	"math"
	"unicode/utf8"

	"github.com/edgewire/edgewire/model"
	"github.com/edgewire/edgewire/wire"
)

// Bit-exact layouts for every base scalar. The dynamic scalar codecs and
// the static queryable path both funnel through these functions.

// exactSize classifies a span that is not exactly n bytes.
func exactSize(data []byte, n int) error {
	if len(data) < n {
		return wire.ErrUnderflow
	}
	if len(data) > n {
		return wire.ErrExtraData
	}
	return nil
}

func DecodeBool(data []byte) (bool, error) {
	if err := exactSize(data, 1); err != nil {
		return false, err
	}
	switch data[0] {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, wire.ErrInvalidBool
	}
}

func EncodeBool(w *wire.Writer, v bool) {
	if v {
		w.WriteUint8(1)
	} else {
		w.WriteUint8(0)
	}
}

func DecodeInt16(data []byte) (int16, error) {
	if err := exactSize(data, 2); err != nil {
		return 0, err
	}
	return wire.NewReader(data).ReadInt16()
}

func EncodeInt16(w *wire.Writer, v int16) {
	w.WriteInt16(v)
}

func DecodeInt32(data []byte) (int32, error) {
	if err := exactSize(data, 4); err != nil {
		return 0, err
	}
	return wire.NewReader(data).ReadInt32()
}

func EncodeInt32(w *wire.Writer, v int32) {
	w.WriteInt32(v)
}

func DecodeInt64(data []byte) (int64, error) {
	if err := exactSize(data, 8); err != nil {
		return 0, err
	}
	return wire.NewReader(data).ReadInt64()
}

func EncodeInt64(w *wire.Writer, v int64) {
	w.WriteInt64(v)
}

func DecodeFloat32(data []byte) (float32, error) {
	bits, err := DecodeInt32(data)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(bits)), nil
}

func EncodeFloat32(w *wire.Writer, v float32) {
	w.WriteUint32(math.Float32bits(v))
}

func DecodeFloat64(data []byte) (float64, error) {
	bits, err := DecodeInt64(data)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(uint64(bits)), nil
}

func EncodeFloat64(w *wire.Writer, v float64) {
	w.WriteUint64(math.Float64bits(v))
}

func DecodeUUID(data []byte) (model.UUID, error) {
	var u model.UUID
	if err := exactSize(data, 16); err != nil {
		return u, err
	}
	copy(u[:], data)
	return u, nil
}

func EncodeUUID(w *wire.Writer, v model.UUID) {
	w.WriteBytes(v[:])
}

func DecodeStr(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", wire.ErrInvalidUTF8
	}
	return string(data), nil
}

func EncodeStr(w *wire.Writer, v string) {
	w.WriteString(v)
}

// DecodeBytes returns the raw span. It aliases the input; callers that
// retain the result must copy.
func DecodeBytes(data []byte) ([]byte, error) {
	return data, nil
}

func EncodeBytes(w *wire.Writer, v []byte) {
	w.WriteBytes(v)
}

func DecodeJSON(data []byte) (model.JSON, error) {
	if len(data) < 1 {
		return "", wire.ErrUnderflow
	}
	if data[0] != 1 {
		return "", wire.ErrInvalidJSONFormat
	}
	s, err := DecodeStr(data[1:])
	if err != nil {
		return "", err
	}
	return model.NewJSONUnchecked(s), nil
}

func EncodeJSON(w *wire.Writer, v model.JSON) {
	w.WriteUint8(1)
	w.WriteString(string(v))
}

func DecodeDuration(data []byte) (model.Duration, error) {
	if err := exactSize(data, 16); err != nil {
		return model.Duration{}, err
	}
	r := wire.NewReader(data)
	micros, _ := r.ReadInt64()
	days, _ := r.ReadUint32()
	months, _ := r.ReadUint32()
	if days != 0 || months != 0 {
		return model.Duration{}, wire.ErrNonZeroReservedBytes
	}
	return model.DurationFromMicros(micros), nil
}

func EncodeDuration(w *wire.Writer, v model.Duration) {
	w.WriteInt64(v.Micros())
	w.WriteUint32(0) // days
	w.WriteUint32(0) // months
}

func DecodeDatetime(data []byte) (model.Datetime, error) {
	micros, err := DecodeInt64(data)
	if err != nil {
		return model.Datetime{}, err
	}
	return model.DatetimeFromMicros(micros), nil
}

func EncodeDatetime(w *wire.Writer, v model.Datetime) {
	w.WriteInt64(v.Micros())
}

func DecodeLocalDatetime(data []byte) (model.LocalDatetime, error) {
	micros, err := DecodeInt64(data)
	if err != nil {
		return model.LocalDatetime{}, err
	}
	return model.LocalDatetimeFromMicros(micros), nil
}

func EncodeLocalDatetime(w *wire.Writer, v model.LocalDatetime) {
	w.WriteInt64(v.Micros())
}

func DecodeLocalDate(data []byte) (model.LocalDate, error) {
	days, err := DecodeInt32(data)
	if err != nil {
		return model.LocalDate{}, err
	}
	return model.LocalDateFromDays(days), nil
}

func EncodeLocalDate(w *wire.Writer, v model.LocalDate) {
	w.WriteInt32(v.Days())
}

func DecodeLocalTime(data []byte) (model.LocalTime, error) {
	micros, err := DecodeInt64(data)
	if err != nil {
		return model.LocalTime{}, err
	}
	lt, err := model.LocalTimeFromMicros(micros)
	if err != nil {
		return model.LocalTime{}, wire.ErrInvalidDate
	}
	return lt, nil
}

func EncodeLocalTime(w *wire.Writer, v model.LocalTime) {
	w.WriteInt64(v.Micros())
}

// numericHeader reads the shared digit-count/weight/sign/scale prefix of
// decimal and bigint.
func numericHeader(r *wire.Reader) (ndigits int, weight int16, negative bool, scale uint16, err error) {
	if r.Remaining() < 8 {
		return 0, 0, false, 0, wire.ErrUnderflow
	}
	n, _ := r.ReadUint16()
	weight, _ = r.ReadInt16()
	sign, _ := r.ReadUint16()
	scale, _ = r.ReadUint16()
	switch sign {
	case 0x0000:
		negative = false
	case 0x4000:
		negative = true
	default:
		return 0, 0, false, 0, wire.ErrBadSign
	}
	return int(n), weight, negative, scale, nil
}

func readDigits(r *wire.Reader, ndigits int) ([]uint16, error) {
	if r.Remaining() < 2*ndigits {
		return nil, wire.ErrUnderflow
	}
	if r.Remaining() > 2*ndigits {
		return nil, wire.ErrExtraData
	}
	if ndigits == 0 {
		return nil, nil
	}
	digits := make([]uint16, ndigits)
	for i := range digits {
		digits[i], _ = r.ReadUint16()
	}
	return digits, nil
}

func DecodeDecimal(data []byte) (model.Decimal, error) {
	r := wire.NewReader(data)
	ndigits, weight, negative, scale, err := numericHeader(r)
	if err != nil {
		return model.Decimal{}, err
	}
	digits, err := readDigits(r, ndigits)
	if err != nil {
		return model.Decimal{}, err
	}
	return model.Decimal{Negative: negative, Weight: weight, Scale: scale, Digits: digits}, nil
}

func EncodeDecimal(w *wire.Writer, v model.Decimal) error {
	if len(v.Digits) > math.MaxUint16 {
		return wire.ErrTooManyElements
	}
	w.WriteUint16(uint16(len(v.Digits)))
	w.WriteInt16(v.Weight)
	if v.Negative {
		w.WriteUint16(0x4000)
	} else {
		w.WriteUint16(0x0000)
	}
	w.WriteUint16(v.Scale)
	for _, d := range v.Digits {
		w.WriteUint16(d)
	}
	return nil
}

func DecodeBigInt(data []byte) (model.BigInt, error) {
	r := wire.NewReader(data)
	ndigits, weight, negative, scale, err := numericHeader(r)
	if err != nil {
		return model.BigInt{}, err
	}
	if scale != 0 {
		return model.BigInt{}, wire.ErrNonZeroReservedBytes
	}
	digits, err := readDigits(r, ndigits)
	if err != nil {
		return model.BigInt{}, err
	}
	return model.BigInt{Negative: negative, Weight: weight, Digits: digits}, nil
}

func EncodeBigInt(w *wire.Writer, v model.BigInt) error {
	if len(v.Digits) > math.MaxUint16 {
		return wire.ErrTooManyElements
	}
	w.WriteUint16(uint16(len(v.Digits)))
	w.WriteInt16(v.Weight)
	if v.Negative {
		w.WriteUint16(0x4000)
	} else {
		w.WriteUint16(0x0000)
	}
	w.WriteUint16(0) // scale, reserved for bigint
	for _, d := range v.Digits {
		w.WriteUint16(d)
	}
	return nil
}
