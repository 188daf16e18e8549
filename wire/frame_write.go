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

import "math"

// TupleEncoder writes a tuple-like container. The element count is written
// as a zero placeholder up front and patched when Finish is called, so
// encoding stays single-pass.
type TupleEncoder struct {
	w        *Writer
	pos      int
	count    uint32
	reserved bool
}

// BeginTuple starts a tuple-like container in output framing.
func (w *Writer) BeginTuple() *TupleEncoder {
	t := &TupleEncoder{w: w, pos: w.Len(), reserved: true}
	w.WriteUint32(0) // count, patched in Finish
	return t
}

// BeginInputTuple starts a tuple-like container in input framing.
func (w *Writer) BeginInputTuple() *TupleEncoder {
	t := &TupleEncoder{w: w, pos: w.Len()}
	w.WriteUint32(0) // count, patched in Finish
	return t
}

// Element writes one element, framing whatever f produces with the
// element's length prefix.
func (t *TupleEncoder) Element(f func(*Writer) error) error {
	t.count++
	if t.reserved {
		t.w.WriteUint32(0)
	}
	return writeFramed(t.w, f)
}

// Null writes the null sentinel in place of an element. Only output framing
// carries nulls.
func (t *TupleEncoder) Null() {
	t.count++
	if t.reserved {
		t.w.WriteUint32(0)
	}
	t.w.WriteInt32(-1)
}

func (t *TupleEncoder) Finish() error {
	if t.count > math.MaxInt32 {
		return ErrTooManyElements
	}
	t.w.PatchUint32(t.pos, t.count)
	return nil
}

// ArrayEncoder writes an array-like container. Nothing is emitted until the
// first element arrives; an empty container finishes as the fixed 12-byte
// all-zero header, a non-empty one as the 20-byte header with the upper
// bound patched in at Finish.
type ArrayEncoder struct {
	w     *Writer
	pos   int
	count int
}

func (w *Writer) BeginArray() *ArrayEncoder {
	return &ArrayEncoder{w: w, pos: w.Len()}
}

func (a *ArrayEncoder) Element(f func(*Writer) error) error {
	if a.count == 0 {
		a.w.WriteUint32(1) // ndims
		a.w.WriteUint32(0) // reserved0
		a.w.WriteUint32(0) // reserved1
		a.w.WriteUint32(0) // upper, patched in Finish
		a.w.WriteUint32(1) // lower
	}
	a.count++
	return writeFramed(a.w, f)
}

func (a *ArrayEncoder) Finish() error {
	if a.count == 0 {
		a.w.WriteUint32(0) // ndims
		a.w.WriteUint32(0) // reserved0
		a.w.WriteUint32(0) // reserved1
		return nil
	}
	if a.count > math.MaxInt32 {
		return ErrArrayTooLong
	}
	a.w.PatchUint32(a.pos+12, uint32(a.count))
	return nil
}

// writeFramed writes a zero length placeholder, lets f append the payload,
// then patches the true payload length over the placeholder.
func writeFramed(w *Writer, f func(*Writer) error) error {
	pos := w.Len()
	w.WriteUint32(0) // length, patched below
	if err := f(w); err != nil {
		return err
	}
	length := w.Len() - pos - 4
	if length > math.MaxInt32 {
		return ErrElementTooLong
	}
	w.PatchUint32(pos, uint32(length))
	return nil
}
