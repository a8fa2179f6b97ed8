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

// Package validate owns the numeric bounds the provisioning engine
// accepts for health-check policies and checks resolved policy
// documents against them. The bounds live in an embedded JSON Schema so
// they can be shared with non-Go tooling verbatim.
package validate

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed policy.schema.json
var policySchema string

const schemaName = "policy.schema.json"

//nolint:gochecknoglobals
var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// Policy checks a resolved health-check policy document against the
// ranges the engine accepts. The document must be JSON-compatible
// (string keys, float64 numbers), as produced by encoding/json. All
// violations are reported in a single error.
//
// Beyond the per-field bounds in the schema, the engine requires the
// probe timeout to be strictly less than the probe interval; that
// relation is checked here as well.
func Policy(doc any) error {
	schema, err := compiledSchema()
	if err != nil {
		return err
	}

	var violations []string
	if err := schema.Validate(doc); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			violations = collectCauses(validationErr, violations)
		} else {
			violations = append(violations, err.Error())
		}
	}

	if msg, ok := timeoutExceedsInterval(doc); ok {
		violations = append(violations, msg)
	}

	if len(violations) > 0 {
		return fmt.Errorf("health check policy out of bounds: %s", strings.Join(violations, "; "))
	}
	return nil
}

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		schemaDoc, err := jsonschema.UnmarshalJSON(strings.NewReader(policySchema))
		if err != nil {
			compileErr = fmt.Errorf("parsing embedded schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaName, schemaDoc); err != nil {
			compileErr = fmt.Errorf("loading schema: %w", err)
			return
		}
		compiled, compileErr = compiler.Compile(schemaName)
	})
	return compiled, compileErr
}

// collectCauses flattens a validation error into its leaf causes so the
// report names each violated field rather than the document root.
func collectCauses(validationErr *jsonschema.ValidationError, violations []string) []string {
	if len(validationErr.Causes) == 0 {
		return append(violations, validationErr.Error())
	}
	for _, cause := range validationErr.Causes {
		violations = collectCauses(cause, violations)
	}
	return violations
}

func timeoutExceedsInterval(doc any) (string, bool) {
	fields, ok := doc.(map[string]any)
	if !ok {
		return "", false
	}
	interval, ok := fields["intervalMillis"].(float64)
	if !ok {
		return "", false
	}
	timeout, ok := fields["timeoutMillis"].(float64)
	if !ok {
		return "", false
	}
	if timeout >= interval {
		return fmt.Sprintf("timeoutMillis (%v) must be less than intervalMillis (%v)", timeout, interval), true
	}
	return "", false
}
