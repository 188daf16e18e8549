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

package model

import (
	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// JSON is a scalar holding a JSON document as text. The wire carries the
// text behind a one-byte format tag; the tag is handled by the codec layer.
type JSON string

// NewJSON validates that s is a well-formed JSON document.
func NewJSON(s string) (JSON, error) {
	if !json.Valid([]byte(s)) {
		return "", errors.New("malformed json document")
	}
	return JSON(s), nil
}

// NewJSONUnchecked wraps s without validating it. Decoded wire payloads use
// this; the server guarantees well-formedness.
func NewJSONUnchecked(s string) JSON {
	return JSON(s)
}

// MarshalJSON serializes v into a JSON scalar.
func MarshalJSON(v interface{}) (JSON, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return JSON(b), nil
}

// Unmarshal parses the document into v.
func (j JSON) Unmarshal(v interface{}) error {
	return json.Unmarshal([]byte(j), v)
}

func (j JSON) String() string {
	return string(j)
}
