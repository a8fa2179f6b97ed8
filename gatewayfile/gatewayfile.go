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

// Package gatewayfile reads virtual-gateway declaration files. A
// declaration file is a YAML document naming a gateway and the
// listeners it should carry:
//
//	gatewayName: edge
//	listeners:
//	  - protocol: http2
//	    port: 443
//	    healthCheck:
//	      healthyThreshold: 3
//	      interval: 10s
//	  - protocol: grpc
//
// Durations use Go duration strings ("5s", "1500ms"). Fields left out
// of a health check are defaulted from the listener when the gateway is
// rendered, exactly as if the listener had been built in code.
package gatewayfile

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/meshbuild/gatewaycfg"
	"github.com/meshbuild/gatewaycfg/health"
)

// Gateway is a parsed declaration file.
type Gateway struct {
	GatewayName string     `yaml:"gatewayName"`
	Listeners   []Listener `yaml:"listeners"`
}

// Listener declares a single gateway listener. Port falls back to
// [gatewaycfg.DefaultPort] when omitted.
type Listener struct {
	Protocol    string       `yaml:"protocol"`
	Port        int          `yaml:"port,omitempty"`
	HealthCheck *HealthCheck `yaml:"healthCheck,omitempty"`
}

// HealthCheck mirrors [health.HealthCheck] with file-friendly duration
// strings. Every field is optional.
type HealthCheck struct {
	Protocol           string `yaml:"protocol,omitempty"`
	Port               int    `yaml:"port,omitempty"`
	Path               string `yaml:"path,omitempty"`
	HealthyThreshold   int    `yaml:"healthyThreshold,omitempty"`
	UnhealthyThreshold int    `yaml:"unhealthyThreshold,omitempty"`
	Interval           string `yaml:"interval,omitempty"`
	Timeout            string `yaml:"timeout,omitempty"`
}

// Document is a rendered gateway: the engine-facing record holding the
// gateway name and every bound listener, ready to serialize.
type Document struct {
	GatewayName string                      `json:"gatewayName" yaml:"gatewayName"`
	Listeners   []gatewaycfg.ListenerConfig `json:"listeners" yaml:"listeners"`
}

// Load reads and parses a declaration file.
func Load(path string) (*Gateway, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading gateway file: %w", err)
	}
	gateway, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return gateway, nil
}

// Parse parses a declaration document.
func Parse(data []byte) (*Gateway, error) {
	var gateway Gateway
	if err := yaml.Unmarshal(data, &gateway); err != nil {
		return nil, fmt.Errorf("parsing gateway file: %w", err)
	}
	if gateway.GatewayName == "" {
		return nil, fmt.Errorf("%w: gatewayName is required", health.ErrInvalidConfiguration)
	}
	if len(gateway.Listeners) == 0 {
		return nil, fmt.Errorf("%w: at least one listener is required", health.ErrInvalidConfiguration)
	}
	return &gateway, nil
}

// Build constructs the declared listeners. Declarations are checked
// only as far as construction needs; everything else is validated when
// the listeners are bound.
func (g *Gateway) Build() ([]gatewaycfg.GatewayListener, error) {
	listeners := make([]gatewaycfg.GatewayListener, 0, len(g.Listeners))
	for i, decl := range g.Listeners {
		listener, err := decl.build()
		if err != nil {
			return nil, fmt.Errorf("listener %d: %w", i, err)
		}
		listeners = append(listeners, listener)
	}
	return listeners, nil
}

// Render builds and binds every declared listener, producing the
// document the provisioning engine consumes.
func (g *Gateway) Render(scope *gatewaycfg.Scope) (*Document, error) {
	listeners, err := g.Build()
	if err != nil {
		return nil, err
	}
	doc := &Document{
		GatewayName: g.GatewayName,
		Listeners:   make([]gatewaycfg.ListenerConfig, 0, len(listeners)),
	}
	for i, listener := range listeners {
		config, err := listener.Bind(scope)
		if err != nil {
			return nil, fmt.Errorf("listener %d: %w", i, err)
		}
		doc.Listeners = append(doc.Listeners, config)
	}
	return doc, nil
}

func (l Listener) build() (gatewaycfg.GatewayListener, error) {
	protocol, err := health.ParseProtocol(l.Protocol)
	if err != nil {
		return gatewaycfg.GatewayListener{}, err
	}

	var opts []gatewaycfg.ListenerOption
	if l.Port != 0 {
		opts = append(opts, gatewaycfg.WithPort(l.Port))
	}
	if l.HealthCheck != nil {
		check, err := l.HealthCheck.declaration()
		if err != nil {
			return gatewaycfg.GatewayListener{}, err
		}
		opts = append(opts, gatewaycfg.WithHealthCheck(check))
	}

	switch protocol {
	case health.ProtocolHTTP:
		return gatewaycfg.HTTPListener(opts...), nil
	case health.ProtocolHTTP2:
		return gatewaycfg.HTTP2Listener(opts...), nil
	case health.ProtocolGRPC:
		return gatewaycfg.GRPCListener(opts...), nil
	default:
		return gatewaycfg.GatewayListener{}, fmt.Errorf("%w: protocol %q is not valid for a gateway listener", health.ErrInvalidConfiguration, l.Protocol)
	}
}

func (hc HealthCheck) declaration() (health.HealthCheck, error) {
	check := health.HealthCheck{
		Port:               hc.Port,
		Path:               hc.Path,
		HealthyThreshold:   hc.HealthyThreshold,
		UnhealthyThreshold: hc.UnhealthyThreshold,
	}
	if hc.Protocol != "" {
		protocol, err := health.ParseProtocol(hc.Protocol)
		if err != nil {
			return health.HealthCheck{}, fmt.Errorf("health check: %w", err)
		}
		check.Protocol = protocol
	}
	var err error
	if check.Interval, err = parseDuration("interval", hc.Interval); err != nil {
		return health.HealthCheck{}, err
	}
	if check.Timeout, err = parseDuration("timeout", hc.Timeout); err != nil {
		return health.HealthCheck{}, err
	}
	return check, nil
}

func parseDuration(field, value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: health check %s %q is not a valid duration", health.ErrInvalidConfiguration, field, value)
	}
	return duration, nil
}
