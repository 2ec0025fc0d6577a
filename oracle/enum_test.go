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

package oracle

import (
	"context"
	"errors"
	"testing"

	"github.com/go-pdr/pdr/formula"
)

func TestEnumOracleTautology(t *testing.T) {
	x := formula.NewVar("x")
	o := NewEnumOracle()

	verdict, model, err := o.IsTautology(context.Background(), formula.Or(x, formula.Not(x)))
	if err != nil {
		t.Fatalf("IsTautology: %v", err)
	}
	if verdict != Valid {
		t.Errorf("verdict = %v, want Valid; model = %v", verdict, model)
	}
	if model != nil {
		t.Errorf("expected no model for a valid formula, got %v", model)
	}
}

func TestEnumOracleFalsifiable(t *testing.T) {
	x, y := formula.NewVar("x"), formula.NewVar("y")
	o := NewEnumOracle()

	verdict, model, err := o.IsTautology(context.Background(), formula.Implies(x, y))
	if err != nil {
		t.Fatalf("IsTautology: %v", err)
	}
	if verdict != Falsifiable {
		t.Fatalf("verdict = %v, want Falsifiable", verdict)
	}
	env := formula.Env(model)
	if formula.Eval(formula.Implies(x, y), env) {
		t.Errorf("model %v does not falsify x => y", model)
	}
}

func TestEnumOracleContextCancellation(t *testing.T) {
	// Build a formula with enough free variables that cancellation is
	// observed before enumeration completes.
	vars := make([]formula.Formula, 20)
	for i := range vars {
		vars[i] = formula.NewVar(formula.Var(string(rune('a' + i))))
	}
	f := formula.And(vars...)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewEnumOracle().IsTautology(ctx, f)
	if err == nil {
		t.Fatalf("expected an error from a cancelled context")
	}
	if !errors.Is(err, ErrOracleFailure) {
		t.Errorf("err = %v, want wrapping ErrOracleFailure", err)
	}
}

func TestEnumOracleTooManyVars(t *testing.T) {
	vars := make([]formula.Formula, maxEnumVars+1)
	for i := range vars {
		vars[i] = formula.NewVar(formula.Var(string(rune('a' + i))))
	}
	f := formula.And(vars...)

	_, _, err := NewEnumOracle().IsTautology(context.Background(), f)
	if !errors.Is(err, ErrOracleFailure) {
		t.Errorf("err = %v, want wrapping ErrOracleFailure", err)
	}
}
