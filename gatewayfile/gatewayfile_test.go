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

package gatewayfile_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshbuild/gatewaycfg"
	"github.com/meshbuild/gatewaycfg/gatewayfile"
	"github.com/meshbuild/gatewaycfg/health"
)

func TestLoadAndRender(t *testing.T) {
	t.Parallel()

	gateway, err := gatewayfile.Load(filepath.Join("testdata", "gateway.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "edge", gateway.GatewayName)
	require.Len(t, gateway.Listeners, 2)

	doc, err := gateway.Render(nil)
	require.NoError(t, err)
	assert.Equal(t, "edge", doc.GatewayName)
	require.Len(t, doc.Listeners, 2)

	http2 := doc.Listeners[0]
	assert.Equal(t, gatewaycfg.PortMapping{Port: 443, Protocol: health.ProtocolHTTP2}, http2.PortMapping)
	require.NotNil(t, http2.HealthCheck)
	assert.Equal(t, health.Policy{
		Protocol:           health.ProtocolHTTP2,
		Port:               443,
		Path:               "/",
		HealthyThreshold:   3,
		UnhealthyThreshold: 2,
		IntervalMillis:     10000,
		TimeoutMillis:      2000,
	}, *http2.HealthCheck)

	grpc := doc.Listeners[1]
	assert.Equal(t, gatewaycfg.PortMapping{Port: 8080, Protocol: health.ProtocolGRPC}, grpc.PortMapping)
	assert.Nil(t, grpc.HealthCheck)
}

func TestParseRequiresNameAndListeners(t *testing.T) {
	t.Parallel()

	_, err := gatewayfile.Parse([]byte("listeners:\n  - protocol: http\n"))
	require.ErrorIs(t, err, health.ErrInvalidConfiguration)
	assert.ErrorContains(t, err, "gatewayName")

	_, err = gatewayfile.Parse([]byte("gatewayName: edge\n"))
	require.ErrorIs(t, err, health.ErrInvalidConfiguration)
	assert.ErrorContains(t, err, "listener")
}

func TestBuildRejectsBadDeclarations(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		source  string
		wantMsg string
	}{
		{
			name: "unknown protocol",
			source: `gatewayName: edge
listeners:
  - protocol: quic
`,
			wantMsg: "unknown protocol",
		},
		{
			name: "tcp listener",
			source: `gatewayName: edge
listeners:
  - protocol: tcp
`,
			wantMsg: "not valid for a gateway listener",
		},
		{
			name: "bad duration",
			source: `gatewayName: edge
listeners:
  - protocol: http
    healthCheck:
      interval: often
`,
			wantMsg: "not a valid duration",
		},
		{
			name: "unknown health check protocol",
			source: `gatewayName: edge
listeners:
  - protocol: http
    healthCheck:
      protocol: quic
`,
			wantMsg: "unknown protocol",
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			gateway, err := gatewayfile.Parse([]byte(testCase.source))
			require.NoError(t, err)
			_, err = gateway.Build()
			require.ErrorIs(t, err, health.ErrInvalidConfiguration)
			assert.ErrorContains(t, err, testCase.wantMsg)
		})
	}
}

func TestRenderSurfacesResolutionErrors(t *testing.T) {
	t.Parallel()

	gateway, err := gatewayfile.Parse([]byte(`gatewayName: edge
listeners:
  - protocol: grpc
    healthCheck:
      protocol: tcp
`))
	require.NoError(t, err)
	_, err = gateway.Render(nil)
	require.ErrorIs(t, err, health.ErrInvalidConfiguration)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := gatewayfile.Load(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
}
