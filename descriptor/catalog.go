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

// Catalog is read-only indexed access into one result's descriptor table.
// All descriptor lookups route through Get so bounds checking happens in
// one place.
type Catalog struct {
	descriptors []Descriptor
}

func NewCatalog(descriptors []Descriptor) *Catalog {
	return &Catalog{descriptors: descriptors}
}

func (c *Catalog) Len() int {
	return len(c.descriptors)
}

// Get returns the descriptor at pos, or ErrInvalidDescriptor when pos is
// out of bounds.
func (c *Catalog) Get(pos TypePos) (Descriptor, error) {
	if int(pos) >= len(c.descriptors) {
		return nil, ErrInvalidDescriptor
	}
	return c.descriptors[pos], nil
}

// CheckScalar resolves pos through any chain of scalar aliases and verifies
// it bottoms out at the base scalar identified by id. Any other resolution
// is a type mismatch. name is the human-readable name of the expected type.
func (c *Catalog) CheckScalar(pos TypePos, id uuid.UUID, name string) error {
	// An alias chain longer than the table means the table is cyclic.
	for hops := 0; hops <= len(c.descriptors); hops++ {
		d, err := c.Get(pos)
		if err != nil {
			return err
		}
		switch d := d.(type) {
		case *Scalar:
			pos = d.BaseTypePos
			continue
		case *BaseScalar:
			if d.ID == id {
				return nil
			}
		}
		return WrongType(d, name)
	}
	return ErrInvalidDescriptor
}
