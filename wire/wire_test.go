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

package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteUint8(0xab)
	w.WriteUint16(0x0102)
	w.WriteUint32(0x03040506)
	w.WriteUint64(0x0708090a0b0c0d0e)
	w.WriteInt32(-2)
	w.WriteString("hello")

	r := NewReader(w.Data())

	u8, err := r.ReadUint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0xab), u8)

	u16, err := r.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0102), u16)

	u32, err := r.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x03040506), u32)

	u64, err := r.ReadUint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0708090a0b0c0d0e), u64)

	i32, err := r.ReadInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(-2), i32)

	rest := r.Rest()
	assert.Equal(t, "hello", string(rest))
	assert.Equal(t, 0, r.Remaining())
}

func TestWriterGrowth(t *testing.T) {
	// Push well past the initial buffer to exercise ensureCapacity.
	w := NewWriter()
	for i := 0; i < 1000; i++ {
		w.WriteUint64(uint64(i))
	}
	require.Equal(t, 8000, w.Len())

	r := NewReader(w.Data())
	for i := 0; i < 1000; i++ {
		v, err := r.ReadUint64()
		require.NoError(t, err)
		require.Equal(t, uint64(i), v)
	}
}

func TestWriterPatch(t *testing.T) {
	w := NewWriter()
	w.WriteUint32(0)
	w.WriteUint32(7)
	w.PatchUint32(0, 42)

	r := NewReader(w.Data())
	v, err := r.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(42), v)
}

func TestReaderUnderflow(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02})
	_, err := r.ReadUint32()
	assert.ErrorIs(t, err, ErrUnderflow)

	_, err = NewReader(nil).ReadUint8()
	assert.ErrorIs(t, err, ErrUnderflow)

	_, err = NewReader([]byte{1, 2, 3}).ReadBytes(4)
	assert.ErrorIs(t, err, ErrUnderflow)
}

func TestTupleOutputFraming(t *testing.T) {
	w := NewWriter()
	enc := w.BeginTuple()
	require.NoError(t, enc.Element(func(w *Writer) error {
		w.WriteString("hi")
		return nil
	}))
	enc.Null()
	require.NoError(t, enc.Element(func(w *Writer) error {
		w.WriteInt64(9)
		return nil
	}))
	require.NoError(t, enc.Finish())

	// count + (reserved + length + payload) per element, -1 for the null.
	expected := []byte{
		0, 0, 0, 3,
		0, 0, 0, 0, 0, 0, 0, 2, 'h', 'i',
		0, 0, 0, 0, 0xff, 0xff, 0xff, 0xff,
		0, 0, 0, 0, 0, 0, 0, 8, 0, 0, 0, 0, 0, 0, 0, 9,
	}
	require.Equal(t, expected, w.Data())

	tr, err := NewTupleReader(w.Data(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, tr.Count())

	span, present, err := tr.Next()
	require.NoError(t, err)
	assert.True(t, present)
	assert.Equal(t, "hi", string(span))

	span, present, err = tr.Next()
	require.NoError(t, err)
	assert.False(t, present)
	assert.Nil(t, span)

	span, present, err = tr.Next()
	require.NoError(t, err)
	assert.True(t, present)
	assert.Len(t, span, 8)

	_, _, err = tr.Next()
	assert.ErrorIs(t, err, ErrUnderflow)
}

func TestTupleInputFraming(t *testing.T) {
	w := NewWriter()
	enc := w.BeginInputTuple()
	require.NoError(t, enc.Element(func(w *Writer) error {
		w.WriteString("hi")
		return nil
	}))
	require.NoError(t, enc.Finish())

	// No reserved field before the length prefix.
	expected := []byte{
		0, 0, 0, 1,
		0, 0, 0, 2, 'h', 'i',
	}
	require.Equal(t, expected, w.Data())

	tr, err := NewInputTupleReader(w.Data(), 1)
	require.NoError(t, err)
	span, present, err := tr.Next()
	require.NoError(t, err)
	assert.True(t, present)
	assert.Equal(t, "hi", string(span))
}

func TestTupleCountMismatch(t *testing.T) {
	w := NewWriter()
	enc := w.BeginTuple()
	require.NoError(t, enc.Element(func(w *Writer) error {
		w.WriteInt32(1)
		return nil
	}))
	require.NoError(t, enc.Finish())

	_, err := NewTupleReader(w.Data(), 2)
	assert.ErrorIs(t, err, ErrElementCountMismatch)
}

func TestTupleBadNullSentinel(t *testing.T) {
	w := NewWriter()
	w.WriteUint32(1)  // count
	w.WriteUint32(0)  // reserved
	w.WriteInt32(-17) // only -1 is a valid null

	tr, err := NewTupleReader(w.Data(), 1)
	require.NoError(t, err)
	_, _, err = tr.Next()
	assert.ErrorIs(t, err, ErrUnderflow)
}

func TestArrayEmpty(t *testing.T) {
	w := NewWriter()
	enc := w.BeginArray()
	require.NoError(t, enc.Finish())

	// An empty container is exactly the 12-byte all-zero header.
	require.Equal(t, make([]byte, 12), w.Data())

	ar, err := NewArrayReader(w.Data())
	require.NoError(t, err)
	assert.Equal(t, 0, ar.Count())
	_, err = ar.Next()
	assert.ErrorIs(t, err, ErrUnderflow)
}

func TestArrayFraming(t *testing.T) {
	w := NewWriter()
	enc := w.BeginArray()
	for _, v := range []int32{10, 20, 30} {
		v := v
		require.NoError(t, enc.Element(func(w *Writer) error {
			w.WriteInt32(v)
			return nil
		}))
	}
	require.NoError(t, enc.Finish())

	expected := []byte{
		0, 0, 0, 1, // ndims
		0, 0, 0, 0, // reserved0
		0, 0, 0, 0, // reserved1
		0, 0, 0, 3, // upper
		0, 0, 0, 1, // lower
		0, 0, 0, 4, 0, 0, 0, 10,
		0, 0, 0, 4, 0, 0, 0, 20,
		0, 0, 0, 4, 0, 0, 0, 30,
	}
	require.Equal(t, expected, w.Data())

	ar, err := NewArrayReader(w.Data())
	require.NoError(t, err)
	require.Equal(t, 3, ar.Count())
	for _, want := range []int32{10, 20, 30} {
		span, err := ar.Next()
		require.NoError(t, err)
		got, err := NewReader(span).ReadInt32()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestArrayRejectsMultipleDimensions(t *testing.T) {
	w := NewWriter()
	w.WriteUint32(2) // ndims
	w.WriteUint32(0)
	w.WriteUint32(0)

	_, err := NewArrayReader(w.Data())
	assert.ErrorIs(t, err, ErrInvalidArrayShape)
}

func TestArrayRejectsNegativeCount(t *testing.T) {
	w := NewWriter()
	w.WriteUint32(1) // ndims
	w.WriteUint32(0)
	w.WriteUint32(0)
	w.WriteInt32(0) // upper
	w.WriteInt32(2) // lower, giving count -1

	_, err := NewArrayReader(w.Data())
	assert.ErrorIs(t, err, ErrInvalidArrayShape)
}
