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

import "github.com/google/uuid"

// Base scalar type ids, fixed by the server protocol. The ids occupy the
// range 0x100..0x110 of the 128-bit id space.
var (
	TypeUUID          = stdID(0x00)
	TypeStr           = stdID(0x01)
	TypeBytes         = stdID(0x02)
	TypeInt16         = stdID(0x03)
	TypeInt32         = stdID(0x04)
	TypeInt64         = stdID(0x05)
	TypeFloat32       = stdID(0x06)
	TypeFloat64       = stdID(0x07)
	TypeDecimal       = stdID(0x08)
	TypeBool          = stdID(0x09)
	TypeDatetime      = stdID(0x0a)
	TypeLocalDatetime = stdID(0x0b)
	TypeLocalDate     = stdID(0x0c)
	TypeLocalTime     = stdID(0x0d)
	TypeDuration      = stdID(0x0e)
	TypeJSON          = stdID(0x0f)
	TypeBigInt        = stdID(0x10)
)

func stdID(n byte) uuid.UUID {
	return uuid.UUID{14: 0x01, 15: n}
}
