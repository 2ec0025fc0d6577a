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

// Package oracle abstracts over a propositional decision procedure: the
// only capability the PDR engine needs from a backend is tautology
// checking with model extraction, plus syntactic substitution. Every
// solver-specific concern (CNF conversion, incremental assumptions, solver
// lifetime) is confined behind the Oracle interface so the engine package
// never depends on a particular SMT or SAT implementation.
package oracle

import (
	"context"
	"errors"

	"github.com/go-pdr/pdr/formula"
)

// Verdict is the result of a tautology check.
type Verdict int

const (
	// Valid means the formula holds under every assignment to its free
	// variables.
	Valid Verdict = iota
	// Falsifiable means some assignment falsifies the formula; a
	// witnessing Model accompanies the verdict.
	Falsifiable
)

func (v Verdict) String() string {
	switch v {
	case Valid:
		return "valid"
	case Falsifiable:
		return "falsifiable"
	default:
		return "unknown"
	}
}

// Model is a full assignment of Boolean values to a formula's free
// variables, witnessing that the formula it was extracted from is
// falsifiable (i.e. a model of its negation).
type Model map[formula.Var]bool

// ErrOracleFailure is the sentinel for the oracle-failure condition: the
// backend could not determine validity (timeout, incompleteness, or any
// other form of "unknown"). It is always wrapped with query-specific
// context by concrete Oracle implementations; callers should use
// errors.Is(err, ErrOracleFailure) rather than comparing errors directly.
var ErrOracleFailure = errors.New("oracle: backend returned neither valid nor a countermodel")

// Oracle is a propositional decision procedure with model extraction and
// syntactic substitution, the "Formula Oracle" of the core design.
type Oracle interface {
	// IsTautology checks whether f holds under every assignment to its
	// free variables. If not, the returned Model witnesses ¬f. IsTautology
	// returns an error wrapping ErrOracleFailure if the backend can
	// neither prove validity nor produce a countermodel (e.g. the
	// supplied ctx is cancelled, or a resource bound is exceeded).
	IsTautology(ctx context.Context, f formula.Formula) (Verdict, Model, error)

	// Substitute performs the same capture-free variable-for-variable
	// substitution as formula.Substitute. It exists on the interface (and
	// not just as the free function) so that a backend with its own
	// native term representation can supply an equivalent operation
	// without going through this package's Formula type.
	Substitute(f formula.Formula, pairs map[formula.Var]formula.Var) formula.Formula
}
