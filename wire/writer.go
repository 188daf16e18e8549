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

import "encoding/binary"

const initialBufferSize = 256

// Writer is a growable, position-addressable output buffer. Container
// encoders write zero placeholders for counts and lengths, keep appending
// nested data, then patch the placeholder bytes in place once the true
// value is known. A Writer is owned by one in-flight encode call.
type Writer struct {
	buf    []byte
	offset int
}

func NewWriter() *Writer {
	return &Writer{buf: make([]byte, initialBufferSize)}
}

// Data returns the bytes written so far. The slice aliases the writer's
// buffer and is invalidated by further writes.
func (w *Writer) Data() []byte {
	return w.buf[:w.offset]
}

func (w *Writer) Len() int {
	return w.offset
}

func (w *Writer) Reset() {
	w.offset = 0
}

func (w *Writer) ensureCapacity(n int) {
	length := len(w.buf)
	if w.offset+n <= length {
		return
	}
	if length == 0 {
		length = initialBufferSize
	}
	for w.offset+n > length {
		length *= 2
	}
	old := w.buf
	w.buf = make([]byte, length)
	copy(w.buf, old)
}

func (w *Writer) WriteUint8(v uint8) {
	w.ensureCapacity(1)
	w.buf[w.offset] = v
	w.offset++
}

func (w *Writer) WriteUint16(v uint16) {
	w.ensureCapacity(2)
	binary.BigEndian.PutUint16(w.buf[w.offset:], v)
	w.offset += 2
}

func (w *Writer) WriteInt16(v int16) {
	w.WriteUint16(uint16(v))
}

func (w *Writer) WriteUint32(v uint32) {
	w.ensureCapacity(4)
	binary.BigEndian.PutUint32(w.buf[w.offset:], v)
	w.offset += 4
}

func (w *Writer) WriteInt32(v int32) {
	w.WriteUint32(uint32(v))
}

func (w *Writer) WriteUint64(v uint64) {
	w.ensureCapacity(8)
	binary.BigEndian.PutUint64(w.buf[w.offset:], v)
	w.offset += 8
}

func (w *Writer) WriteInt64(v int64) {
	w.WriteUint64(uint64(v))
}

func (w *Writer) WriteBytes(b []byte) {
	w.ensureCapacity(len(b))
	copy(w.buf[w.offset:], b)
	w.offset += len(b)
}

func (w *Writer) WriteString(s string) {
	w.ensureCapacity(len(s))
	copy(w.buf[w.offset:], s)
	w.offset += len(s)
}

// PatchUint32 overwrites the four bytes at pos, which must already have been
// written. It never grows the buffer.
func (w *Writer) PatchUint32(pos int, v uint32) {
	binary.BigEndian.PutUint32(w.buf[pos:pos+4], v)
}
