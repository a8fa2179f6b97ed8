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

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/meshbuild/gatewaycfg/validate"
)

// ErrInvalidConfiguration is the error reported for any declaration the
// engine would reject: an unsupported protocol combination or a numeric
// value outside the engine's accepted bounds. Errors returned by this
// package match it with [errors.Is].
var ErrInvalidConfiguration = errors.New("invalid configuration")

const (
	defaultHealthyThreshold   = 2
	defaultUnhealthyThreshold = 2
	defaultInterval           = 5 * time.Second
	defaultTimeout            = 2 * time.Second

	// Root path used when an HTTP or HTTP/2 check declares no path.
	defaultPath = "/"
)

// HealthCheck declares health-check settings for a gateway listener.
// Every field is optional; a zero value means "unset" and is defaulted
// from the listener during [Resolve].
type HealthCheck struct {
	// Protocol used by the probe. Defaults to the listener's protocol.
	// TCP is not accepted for gateway listeners.
	Protocol Protocol
	// Port the probe connects to. Defaults to the listener's port.
	Port int
	// Path requested by HTTP and HTTP/2 probes. Defaults to "/" for
	// those protocols and must be left empty for gRPC.
	Path string
	// HealthyThreshold is the number of consecutive successful probes
	// required before a target is considered healthy. Defaults to 2.
	HealthyThreshold int
	// UnhealthyThreshold is the number of consecutive failed probes
	// required before a target is considered unhealthy. Defaults to 2.
	UnhealthyThreshold int
	// Interval is the time between probes. Defaults to 5 seconds.
	Interval time.Duration
	// Timeout is the time to wait for a probe response. Defaults to
	// 2 seconds.
	Timeout time.Duration
}

// Policy is a fully-populated health-check record in the shape the
// provisioning engine consumes. Durations are millisecond integers on
// the wire.
type Policy struct {
	Protocol           Protocol `json:"protocol" yaml:"protocol"`
	Port               int      `json:"port" yaml:"port"`
	Path               string   `json:"path,omitempty" yaml:"path,omitempty"`
	HealthyThreshold   int      `json:"healthyThreshold" yaml:"healthyThreshold"`
	UnhealthyThreshold int      `json:"unhealthyThreshold" yaml:"unhealthyThreshold"`
	IntervalMillis     int64    `json:"intervalMillis" yaml:"intervalMillis"`
	TimeoutMillis      int64    `json:"timeoutMillis" yaml:"timeoutMillis"`
}

// Resolve fills in every unset field of the given declaration from the
// listener it is attached to and returns the resulting policy. The
// listener's protocol and port supply the defaults for the check's own
// protocol and port.
//
// Resolve fails with an error matching [ErrInvalidConfiguration] if the
// declaration uses the TCP protocol, declares a path for a gRPC check,
// or carries a value outside the bounds the engine accepts.
func Resolve(check HealthCheck, listenerProtocol Protocol, listenerPort int) (Policy, error) {
	if check.Protocol == ProtocolTCP {
		return Policy{}, fmt.Errorf("%w: tcp health checks are not supported for gateway listeners", ErrInvalidConfiguration)
	}
	if check.Protocol == ProtocolGRPC && check.Path != "" {
		return Policy{}, fmt.Errorf("%w: health check path %q has no meaning for the grpc protocol", ErrInvalidConfiguration, check.Path)
	}

	effectiveProtocol := check.Protocol
	if effectiveProtocol == "" {
		effectiveProtocol = listenerProtocol
	}

	port := check.Port
	if port == 0 {
		port = listenerPort
	}

	path := check.Path
	if path == "" && (effectiveProtocol == ProtocolHTTP || effectiveProtocol == ProtocolHTTP2) {
		path = defaultPath
	}

	healthyThreshold := check.HealthyThreshold
	if healthyThreshold == 0 {
		healthyThreshold = defaultHealthyThreshold
	}
	unhealthyThreshold := check.UnhealthyThreshold
	if unhealthyThreshold == 0 {
		unhealthyThreshold = defaultUnhealthyThreshold
	}

	interval := check.Interval
	if interval == 0 {
		interval = defaultInterval
	}
	timeout := check.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	// The record's protocol field falls back from the declaration to the
	// listener on its own, separate from the path defaulting above. The
	// two must stay independent steps in case their rules ever diverge.
	protocol := check.Protocol
	if protocol == "" {
		protocol = listenerProtocol
	}

	policy := Policy{
		Protocol:           protocol,
		Port:               port,
		Path:               path,
		HealthyThreshold:   healthyThreshold,
		UnhealthyThreshold: unhealthyThreshold,
		IntervalMillis:     interval.Milliseconds(),
		TimeoutMillis:      timeout.Milliseconds(),
	}
	if err := checkBounds(policy); err != nil {
		return Policy{}, err
	}
	return policy, nil
}

// checkBounds hands the rendered policy to the bounds validator, which
// owns the ranges the engine accepts.
func checkBounds(policy Policy) error {
	doc, err := policyDocument(policy)
	if err != nil {
		return err
	}
	if err := validate.Policy(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	return nil
}

// policyDocument converts a policy into the JSON-compatible document
// form the validator operates on.
func policyDocument(policy Policy) (any, error) {
	data, err := json.Marshal(policy)
	if err != nil {
		return nil, fmt.Errorf("encoding health check policy: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding health check policy: %w", err)
	}
	return doc, nil
}
