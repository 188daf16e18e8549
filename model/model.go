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

// Package model holds the in-process representations of scalar wire types
// whose layout is richer than a Go builtin: the date/time family, the
// base-10000 digit-array numbers and validated JSON.
package model

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// UUID is the 128-bit scalar value type.
type UUID = uuid.UUID

// ErrOutOfRange reports a value that cannot be represented in the target
// domain, e.g. a time.Time outside the datetime range.
var ErrOutOfRange = errors.New("value out of range")
