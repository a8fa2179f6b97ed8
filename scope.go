// Copyright 2025-2026 Meshbuild, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gatewaycfg

import (
	"github.com/meshbuild/gatewaycfg/attribute"
)

// Scope is the rendering context a provisioning toolchain threads
// through Bind. Listener rendering itself never consults it, but the
// same scope is shared with other constructs in the surrounding system
// that do, so Bind accepts it to keep the contract uniform.
//
// The attached attributes are opaque to this library; see the attribute
// package for declaring and reading them.
type Scope struct {
	attrs attribute.Values
}

// NewScope returns a scope carrying the given attribute values.
func NewScope(values ...attribute.Value) *Scope {
	return &Scope{attrs: attribute.NewValues(values...)}
}

// Attributes returns the metadata attached to the scope.
func (s *Scope) Attributes() attribute.Values {
	return s.attrs
}
