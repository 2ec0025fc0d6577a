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

package formula

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEvalConnectives(t *testing.T) {
	x, y := NewVar("x"), NewVar("y")
	tests := []struct {
		name string
		f    Formula
		env  Env
		want bool
	}{
		{"true", True(), Env{}, true},
		{"false", False(), Env{}, false},
		{"not", Not(x), Env{"x": false}, true},
		{"and-true", And(x, y), Env{"x": true, "y": true}, true},
		{"and-false", And(x, y), Env{"x": true, "y": false}, false},
		{"or", Or(x, y), Env{"x": false, "y": true}, true},
		{"xor-same", Xor(x, y), Env{"x": true, "y": true}, false},
		{"xor-diff", Xor(x, y), Env{"x": true, "y": false}, true},
		{"implies-vacuous", Implies(x, y), Env{"x": false, "y": false}, true},
		{"implies-violated", Implies(x, y), Env{"x": true, "y": false}, false},
		{"eq", Eq(x, y), Env{"x": true, "y": true}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Eval(tc.f, tc.env); got != tc.want {
				t.Errorf("Eval(%s, %v) = %v, want %v", tc.f, tc.env, got, tc.want)
			}
		})
	}
}

func TestAndOrIdentities(t *testing.T) {
	if !And().Equal(True()) {
		t.Errorf("And() should be True()")
	}
	if !Or().Equal(False()) {
		t.Errorf("Or() should be False()")
	}
}

func TestVars(t *testing.T) {
	x, y, z := NewVar("x"), NewVar("y"), NewVar("z")
	f := Implies(And(x, y), Or(z, Not(x)))
	got := f.Vars().Elements()
	sort.Strings(got)
	want := []string{"x", "y", "z"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Vars() mismatch (-want +got):\n%s", diff)
	}
}

func TestSubstituteRoundtrip(t *testing.T) {
	x, y := NewVar("x"), NewVar("y")
	f := Implies(And(x, y), Xor(x, Not(y)))
	toPrimed := map[Var]Var{"x": "x'", "y": "y'"}
	toUnprimed := map[Var]Var{"x'": "x", "y'": "y"}

	primed := Substitute(f, toPrimed)
	back := Substitute(primed, toUnprimed)

	if !back.Equal(f) {
		t.Errorf("Substitute roundtrip changed formula: got %s, want %s", back, f)
	}
}

func TestCubeClauseNegation(t *testing.T) {
	q := Cube{{V: "x", Neg: false}, {V: "y", Neg: true}}
	clause := q.NegateToClause()
	want := Clause{{V: "x", Neg: true}, {V: "y", Neg: false}}
	if !clause.Equal(want) {
		t.Errorf("NegateToClause() = %v, want %v", clause, want)
	}

	env := Env{"x": true, "y": false}
	if !Eval(q.Formula(), env) {
		t.Errorf("cube should be satisfied by the state it was built from")
	}
	if Eval(clause.Formula(), env) {
		t.Errorf("blocking clause should exclude the state it blocks")
	}
}
