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

// Package health resolves declared health-check settings for virtual
// gateway listeners into the fully-populated policy records the
// provisioning engine consumes.
//
// A [HealthCheck] captures user intent: every field is optional, and any
// field left at its zero value is defaulted from the listener the check
// is attached to. [Resolve] applies those defaults, rejects combinations
// the engine does not accept, and delegates numeric bounds checking to
// the validate package before returning a [Policy].
//
// Note that a policy is declarative only. This package never probes
// anything; how and when the resolved policy is executed is entirely up
// to the engine that deploys it.
package health
