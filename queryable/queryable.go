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

// Package queryable is the statically-typed decode path. Callers that know
// the target type at compile time skip the dynamic Value union, but must
// first check the live descriptor against the type's expected shape; the
// check fails with a descriptive mismatch before any bytes are interpreted.
package queryable

import "github.com/edgewire/edgewire/descriptor"

// Queryable is the capability every statically decodable type provides.
type Queryable interface {
	// DecodeBinary interprets one value's byte span into the receiver.
	DecodeBinary(data []byte) error
	// CheckDescriptor verifies that the descriptor at pos matches the
	// receiver's layout.
	CheckDescriptor(cat *descriptor.Catalog, pos descriptor.TypePos) error
}

// missingSetter is implemented by Queryables that accept an absent (null)
// element, such as Optional.
type missingSetter interface {
	SetMissing()
}
