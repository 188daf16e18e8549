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

// Decode errors. Every malformed input classifies as exactly one of these;
// wrapping may add context but errors.Is against the sentinel always holds.
var (
	ErrUnderflow              = errors.New("value too short for its type")
	ErrExtraData              = errors.New("extra data after value")
	ErrInvalidUTF8            = errors.New("invalid utf-8 in string")
	ErrInvalidBool            = errors.New("invalid boolean byte")
	ErrInvalidJSONFormat      = errors.New("invalid json format tag")
	ErrNonZeroReservedBytes   = errors.New("non-zero reserved bytes")
	ErrBadSign                = errors.New("bad sign field")
	ErrInvalidDate            = errors.New("date or time value out of range")
	ErrMissingRequiredElement = errors.New("required element is missing")
	ErrInvalidArrayShape      = errors.New("invalid array shape")
	ErrElementCountMismatch   = errors.New("unexpected element count")
)

// Encode errors.
var (
	ErrElementTooLong  = errors.New("element length exceeds wire format limit")
	ErrArrayTooLong    = errors.New("array length exceeds wire format limit")
	ErrTooManyElements = errors.New("too many elements for wire format")
)
