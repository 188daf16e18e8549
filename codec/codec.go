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

// Package codec compiles descriptor-table entries into runtime codec trees
// and implements the wire encode/decode for every value variant. A built
// codec is immutable and safe for concurrent decode calls.
package codec

import (
	"github.com/edgewire/edgewire/types"
	"github.com/edgewire/edgewire/wire"
)

// Codec converts between the wire byte representation and Values for one
// specific type shape.
type Codec interface {
	// Decode interprets one value's byte span.
	Decode(data []byte) (types.Value, error)
	// Encode appends the value's wire representation to w.
	Encode(w *wire.Writer, v types.Value) error
}

// Mode selects the tuple framing direction. Output framing (server to
// client) carries a 4-byte reserved field per tuple element; input framing
// (client to server) omits it. The two conventions differ nowhere else.
type Mode uint8

const (
	Output Mode = iota + 1
	Input
)
