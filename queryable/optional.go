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

package queryable

import "github.com/edgewire/edgewire/descriptor"

// Optional wraps a Queryable type so a null tuple element decodes as
// absent instead of failing. PT is the pointer form of T carrying the
// Queryable methods, e.g. Optional[Str, *Str].
type Optional[T any, PT interface {
	*T
	Queryable
}] struct {
	val     T
	present bool
}

func (o *Optional[T, PT]) DecodeBinary(data []byte) error {
	o.present = true
	return PT(&o.val).DecodeBinary(data)
}

func (o *Optional[T, PT]) CheckDescriptor(cat *descriptor.Catalog, pos descriptor.TypePos) error {
	return PT(&o.val).CheckDescriptor(cat, pos)
}

// SetMissing marks the value absent. DecodeTuple calls this for null
// elements.
func (o *Optional[T, PT]) SetMissing() {
	var zero T
	o.val = zero
	o.present = false
}

// Get returns the value and whether it was present.
func (o *Optional[T, PT]) Get() (T, bool) {
	return o.val, o.present
}
