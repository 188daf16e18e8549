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

import "github.com/pkg/errors"

// TupleReader iterates the tuple-like container convention: a 4-byte
// big-endian element count, then one length-prefixed span per element. In
// output framing each element carries a leading 4-byte reserved field before
// the length prefix; input framing omits it. A length of -1 is the null
// sentinel and carries no payload bytes.
//
// Elements are produced one at a time and cannot be revisited, but the
// container itself is finite with the count known up front.
type TupleReader struct {
	r        *Reader
	count    int
	read     int
	reserved bool
}

// NewTupleReader opens a tuple-like container in output framing and
// validates that it holds exactly expect elements.
func NewTupleReader(data []byte, expect int) (*TupleReader, error) {
	return newTupleReader(data, expect, true)
}

// NewInputTupleReader opens a tuple-like container in input framing.
func NewInputTupleReader(data []byte, expect int) (*TupleReader, error) {
	return newTupleReader(data, expect, false)
}

func newTupleReader(data []byte, expect int, reserved bool) (*TupleReader, error) {
	r := NewReader(data)
	count, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	if int(count) != expect {
		return nil, errors.Wrapf(ErrElementCountMismatch, "expected %d elements, got %d", expect, count)
	}
	return &TupleReader{r: r, count: int(count), reserved: reserved}, nil
}

func (t *TupleReader) Count() int {
	return t.count
}

// Next returns the next element's raw span. The second return is false when
// the element is the null sentinel; the span is nil in that case.
func (t *TupleReader) Next() ([]byte, bool, error) {
	if t.read >= t.count {
		return nil, false, ErrUnderflow
	}
	t.read++
	if t.reserved {
		if _, err := t.r.ReadUint32(); err != nil {
			return nil, false, err
		}
	}
	length, err := t.r.ReadInt32()
	if err != nil {
		return nil, false, err
	}
	if length < 0 {
		if length != -1 {
			return nil, false, ErrUnderflow
		}
		return nil, false, nil
	}
	span, err := t.r.ReadBytes(int(length))
	if err != nil {
		return nil, false, err
	}
	return span, true, nil
}

// ArrayReader iterates the array-like container convention used by arrays
// and sets: a dimensioned header followed by length-prefixed elements.
// Array elements are never null.
type ArrayReader struct {
	r     *Reader
	count int
	read  int
}

func NewArrayReader(data []byte) (*ArrayReader, error) {
	r := NewReader(data)
	ndims, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	if ndims != 0 && ndims != 1 {
		return nil, errors.Wrapf(ErrInvalidArrayShape, "%d dimensions", ndims)
	}
	// reserved0, reserved1
	if _, err := r.ReadUint32(); err != nil {
		return nil, err
	}
	if _, err := r.ReadUint32(); err != nil {
		return nil, err
	}
	if ndims == 0 {
		return &ArrayReader{r: r}, nil
	}
	upper, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	lower, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	count := int(upper) - int(lower) + 1
	if count < 0 {
		return nil, ErrInvalidArrayShape
	}
	return &ArrayReader{r: r, count: count}, nil
}

func (a *ArrayReader) Count() int {
	return a.count
}

// Next returns the next element's raw span.
func (a *ArrayReader) Next() ([]byte, error) {
	if a.read >= a.count {
		return nil, ErrUnderflow
	}
	a.read++
	length, err := a.r.ReadInt32()
	if err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, ErrUnderflow
	}
	return a.r.ReadBytes(int(length))
}
