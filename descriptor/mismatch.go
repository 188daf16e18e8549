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

package descriptor

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidDescriptor reports a descriptor reference that points outside
// the table.
var ErrInvalidDescriptor = errors.New("invalid type descriptor")

// WrongTypeError reports a live descriptor of a different kind than the
// caller's static expectation.
type WrongTypeError struct {
	Unexpected string
	Expected   string
}

func (e *WrongTypeError) Error() string {
	return fmt.Sprintf("unexpected type %s, expected %s", e.Unexpected, e.Expected)
}

// WrongFieldError reports a field name that differs from the expected one.
type WrongFieldError struct {
	Unexpected string
	Expected   string
}

func (e *WrongFieldError) Error() string {
	return fmt.Sprintf("unexpected field %s, expected %s", e.Unexpected, e.Expected)
}

// FieldNumberError reports a field-count mismatch between the static shape
// and the live descriptor.
type FieldNumberError struct {
	Unexpected int
	Expected   int
}

func (e *FieldNumberError) Error() string {
	return fmt.Sprintf("expected %d fields, got %d", e.Expected, e.Unexpected)
}

// ExpectedError is a generic "expected X" mismatch.
type ExpectedError struct {
	Expected string
}

func (e *ExpectedError) Error() string {
	return fmt.Sprintf("expected %s", e.Expected)
}

// WrongType builds a WrongTypeError naming the live descriptor.
func WrongType(d Descriptor, expected string) error {
	return &WrongTypeError{Unexpected: Describe(d), Expected: expected}
}
