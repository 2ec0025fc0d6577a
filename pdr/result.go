// Copyright 2026 The PDR Authors
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

// Package pdr is the facade for this module: a single Verify entry point
// over the formula, oracle, vocab, cube, trace and engine packages, per
// spec.md §6.
package pdr

import (
	"github.com/go-pdr/pdr/cube"
	"github.com/go-pdr/pdr/engine"
	"github.com/go-pdr/pdr/formula"
)

// Verdict re-exports engine.Verdict so callers need not import the
// engine package directly.
type Verdict = engine.Verdict

const (
	Safe    = engine.Safe
	Unsafe  = engine.Unsafe
	Unknown = engine.Unknown
)

// Result is the outcome of a Verify call. Exactly one of Invariant and
// Counterexample is populated, depending on Verdict:
//
//   - Safe: Invariant is set, Counterexample is nil.
//   - Unsafe: Counterexample is set, Invariant is nil.
//   - Unknown: both are nil; see the accompanying error.
type Result struct {
	Verdict        Verdict
	Invariant      formula.Formula
	Counterexample cube.CounterExample
}
