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

package health

import "fmt"

// Protocol identifies the protocol spoken on a listener or used by a
// health check. The values match the strings the provisioning engine
// expects in rendered configuration.
type Protocol string

const (
	ProtocolHTTP  = Protocol("http")
	ProtocolHTTP2 = Protocol("http2")
	ProtocolGRPC  = Protocol("grpc")
	ProtocolTCP   = Protocol("tcp")
)

func (p Protocol) String() string {
	return string(p)
}

// ParseProtocol converts a protocol name, as it appears in declaration
// files, into a Protocol. It fails on names the engine does not know.
func ParseProtocol(name string) (Protocol, error) {
	switch Protocol(name) {
	case ProtocolHTTP, ProtocolHTTP2, ProtocolGRPC, ProtocolTCP:
		return Protocol(name), nil
	default:
		return "", fmt.Errorf("%w: unknown protocol %q", ErrInvalidConfiguration, name)
	}
}
