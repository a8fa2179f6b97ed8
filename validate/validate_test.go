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

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshbuild/gatewaycfg/validate"
)

func policyDoc(overrides map[string]any) map[string]any {
	doc := map[string]any{
		"protocol":           "http",
		"port":               float64(8080),
		"path":               "/",
		"healthyThreshold":   float64(2),
		"unhealthyThreshold": float64(2),
		"intervalMillis":     float64(5000),
		"timeoutMillis":      float64(2000),
	}
	for key, value := range overrides {
		doc[key] = value
	}
	return doc
}

func TestPolicyAccepted(t *testing.T) {
	t.Parallel()

	require.NoError(t, validate.Policy(policyDoc(nil)))

	// Boundary values on both ends.
	require.NoError(t, validate.Policy(policyDoc(map[string]any{
		"healthyThreshold":   float64(10),
		"unhealthyThreshold": float64(10),
		"intervalMillis":     float64(300000),
		"timeoutMillis":      float64(60000),
		"port":               float64(65535),
	})))
}

func TestPolicyBounds(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		overrides map[string]any
	}{
		{"healthy threshold below minimum", map[string]any{"healthyThreshold": float64(1)}},
		{"healthy threshold above maximum", map[string]any{"healthyThreshold": float64(11)}},
		{"unhealthy threshold below minimum", map[string]any{"unhealthyThreshold": float64(0)}},
		{"interval below minimum", map[string]any{"intervalMillis": float64(4999)}},
		{"interval above maximum", map[string]any{"intervalMillis": float64(300001)}},
		{"timeout below minimum", map[string]any{"timeoutMillis": float64(1999)}},
		{"port zero", map[string]any{"port": float64(0)}},
		{"path without leading slash", map[string]any{"path": "healthz"}},
		{"unknown protocol", map[string]any{"protocol": "quic"}},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			err := validate.Policy(policyDoc(testCase.overrides))
			require.Error(t, err)
			assert.ErrorContains(t, err, "out of bounds")
		})
	}
}

func TestPolicyTimeoutIntervalRelation(t *testing.T) {
	t.Parallel()

	// Both values individually in range, but the timeout must stay
	// strictly below the interval.
	err := validate.Policy(policyDoc(map[string]any{
		"intervalMillis": float64(5000),
		"timeoutMillis":  float64(5000),
	}))
	require.Error(t, err)
	assert.ErrorContains(t, err, "less than intervalMillis")

	require.NoError(t, validate.Policy(policyDoc(map[string]any{
		"intervalMillis": float64(5001),
		"timeoutMillis":  float64(5000),
	})))
}

func TestPolicyReportsEveryViolation(t *testing.T) {
	t.Parallel()

	err := validate.Policy(policyDoc(map[string]any{
		"healthyThreshold":   float64(1),
		"unhealthyThreshold": float64(11),
	}))
	require.Error(t, err)
	assert.ErrorContains(t, err, "healthyThreshold")
	assert.ErrorContains(t, err, "unhealthyThreshold")
}

func TestPolicyMissingFields(t *testing.T) {
	t.Parallel()

	require.Error(t, validate.Policy(map[string]any{"protocol": "http"}))
}
