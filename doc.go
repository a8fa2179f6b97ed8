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

// Package gatewaycfg builds listener configuration for service-mesh
// virtual gateways. It translates high-level options, a protocol, a
// port, and an optional health-check declaration, into the nested
// records an infrastructure-provisioning template engine consumes.
//
// A listener is created with one of three constructors, each fixing the
// protocol spoken on it: [HTTPListener], [HTTP2Listener], or
// [GRPCListener]. The constructors accept options for the port (which
// defaults to 8080) and for a declared health check:
//
//	listener := gatewaycfg.HTTP2Listener(
//	    gatewaycfg.WithPort(443),
//	    gatewaycfg.WithHealthCheck(health.HealthCheck{
//	        HealthyThreshold: 3,
//	    }),
//	)
//	config, err := listener.Bind(nil)
//
// [GatewayListener.Bind] renders the listener into a [ListenerConfig]:
// a port mapping plus, when a health check was declared, the resolved
// policy with every unset field defaulted from the listener (see the
// health package). Bind is a pure transformation; it performs no I/O
// and may be called any number of times with identical results.
//
// Everything here is declarative. This library never opens a port or
// probes a backend; it only rejects configuration the engine would
// refuse, before the rendering stage ever sees it.
package gatewaycfg
