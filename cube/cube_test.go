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

package cube

import (
	"testing"

	"github.com/go-pdr/pdr/formula"
	"github.com/go-pdr/pdr/oracle"
	"github.com/go-pdr/pdr/vocab"
)

func TestStateToCubeSkipsUnassigned(t *testing.T) {
	s := State{"x": true, "y": false}
	c := StateToCube(s)
	if len(c) != 2 {
		t.Fatalf("StateToCube(%v) = %v, want 2 literals", s, c)
	}
}

func TestStateToCubeGuarantee(t *testing.T) {
	// state_to_cube(state_from_model(M, X)) must be satisfied by M
	// restricted to X, per spec.md §4.2.
	m := oracle.Model{"x": true, "y": false, "z": true}
	vars := []formula.Var{"x", "y", "z"}

	s := StateFromModel(m, vars)
	q := StateToCube(s)

	env := formula.Env(m)
	if !formula.Eval(q.Formula(), env) {
		t.Errorf("cube %s not satisfied by model %v", q, m)
	}
}

func TestStateFromPrimedModelRelabels(t *testing.T) {
	v, err := vocab.New([]vocab.VarPair{{X: "x", XP: "x'"}, {X: "y", XP: "y'"}})
	if err != nil {
		t.Fatalf("vocab.New: %v", err)
	}
	m := oracle.Model{"x'": true, "y'": false}
	s := StateFromPrimedModel(m, v)
	want := State{"x": true, "y": false}
	if len(s) != len(want) || s["x"] != true || s["y"] != false {
		t.Errorf("StateFromPrimedModel = %v, want %v", s, want)
	}
}

func TestIsFull(t *testing.T) {
	vars := []formula.Var{"x", "y"}
	full := State{"x": true, "y": false}
	partial := State{"x": true}
	if !full.IsFull(vars) {
		t.Errorf("%v should be full over %v", full, vars)
	}
	if partial.IsFull(vars) {
		t.Errorf("%v should not be full over %v", partial, vars)
	}
}
