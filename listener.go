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
	"github.com/meshbuild/gatewaycfg/health"
)

// DefaultPort is the port a listener uses when none is given.
const DefaultPort = 8080

// ListenerOption is an option used to customize a gateway listener.
type ListenerOption interface {
	apply(*listenerOptions)
}

type listenerOptions struct {
	port        int
	healthCheck *health.HealthCheck
}

type listenerOptionFunc func(*listenerOptions)

func (f listenerOptionFunc) apply(opts *listenerOptions) {
	f(opts)
}

// WithPort sets the port the listener accepts connections on. If no
// WithPort option is provided, [DefaultPort] is used.
func WithPort(port int) ListenerOption {
	return listenerOptionFunc(func(opts *listenerOptions) {
		opts.port = port
	})
}

// WithHealthCheck declares a health check for the listener. Any field
// of the declaration left unset is defaulted from the listener itself
// when the listener is bound. Without this option, the rendered
// configuration carries no health check at all.
func WithHealthCheck(check health.HealthCheck) ListenerOption {
	return listenerOptionFunc(func(opts *listenerOptions) {
		opts.healthCheck = &check
	})
}

// GatewayListener is a declared combination of port and protocol on
// which a virtual gateway accepts connections. The protocol is fixed by
// the constructor that created the listener; values are immutable after
// construction.
type GatewayListener struct {
	protocol    health.Protocol
	port        int
	healthCheck *health.HealthCheck
}

// HTTPListener returns a listener for plain HTTP traffic.
func HTTPListener(opts ...ListenerOption) GatewayListener {
	return newListener(health.ProtocolHTTP, opts)
}

// HTTP2Listener returns a listener for HTTP/2 traffic. It is identical
// to [HTTPListener] in every respect other than the fixed protocol.
func HTTP2Listener(opts ...ListenerOption) GatewayListener {
	return newListener(health.ProtocolHTTP2, opts)
}

// GRPCListener returns a listener for gRPC traffic.
func GRPCListener(opts ...ListenerOption) GatewayListener {
	return newListener(health.ProtocolGRPC, opts)
}

func newListener(protocol health.Protocol, opts []ListenerOption) GatewayListener {
	options := listenerOptions{port: DefaultPort}
	for _, opt := range opts {
		opt.apply(&options)
	}
	return GatewayListener{
		protocol:    protocol,
		port:        options.port,
		healthCheck: options.healthCheck,
	}
}

// Protocol returns the protocol the listener was constructed with.
func (l GatewayListener) Protocol() health.Protocol {
	return l.protocol
}

// Port returns the port the listener accepts connections on.
func (l GatewayListener) Port() int {
	return l.port
}

// PortMapping pairs a listening port with the protocol spoken on it.
type PortMapping struct {
	Port     int             `json:"port" yaml:"port"`
	Protocol health.Protocol `json:"protocol" yaml:"protocol"`
}

// ListenerConfig is the rendered listener record, in exactly the shape
// the provisioning engine expects for a gateway listener. The health
// check is omitted entirely when none was declared.
type ListenerConfig struct {
	PortMapping PortMapping    `json:"portMapping" yaml:"portMapping"`
	HealthCheck *health.Policy `json:"healthCheck,omitempty" yaml:"healthCheck,omitempty"`
}

// Bind renders the listener into the configuration record the engine
// consumes. A declared health check is resolved against the listener's
// own protocol and port; see [health.Resolve] for the defaulting and
// the error conditions. Errors match [health.ErrInvalidConfiguration].
//
// Bind is pure and idempotent: it may be called any number of times,
// and repeated calls on the same listener yield structurally equal
// records. The scope is the rendering context of the surrounding
// toolchain; it is accepted to satisfy the contract shared with other
// bindable constructs and a nil scope is fine.
func (l GatewayListener) Bind(scope *Scope) (ListenerConfig, error) {
	_ = scope

	config := ListenerConfig{
		PortMapping: PortMapping{
			Port:     l.port,
			Protocol: l.protocol,
		},
	}
	if l.healthCheck != nil {
		policy, err := health.Resolve(*l.healthCheck, l.protocol, l.port)
		if err != nil {
			return ListenerConfig{}, err
		}
		config.HealthCheck = &policy
	}
	return config, nil
}
