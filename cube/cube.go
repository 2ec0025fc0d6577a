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

// Package cube implements the conversions between partial variable
// assignments ("states") and their representative conjunctions ("cubes"),
// and between the unprimed and primed vocabularies, as defined in spec.md
// §4.2.
package cube

import (
	"sort"
	"strings"

	"github.com/go-pdr/pdr/formula"
	"github.com/go-pdr/pdr/oracle"
	"github.com/go-pdr/pdr/vocab"
)

// State is a mapping from a subset of the unprimed vocabulary to Boolean
// values. A State is "full" if IsFull reports true for the vocabulary it
// is checked against.
type State map[formula.Var]bool

// IsFull reports whether every variable in vocab is mapped by s.
func (s State) IsFull(vars []formula.Var) bool {
	for _, v := range vars {
		if _, ok := s[v]; !ok {
			return false
		}
	}
	return true
}

// String renders the state deterministically (sorted by variable name),
// for debugging and test failure messages.
func (s State) String() string {
	names := make([]string, 0, len(s))
	for v := range s {
		names = append(names, string(v))
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, n := range names {
		v := s[formula.Var(n)]
		parts[i] = n + "=" + boolStr(v)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func boolStr(b bool) string {
	if b {
		return "T"
	}
	return "F"
}

// CounterExample is a finite nonempty sequence of full states
// [s0, s1, ..., sk] witnessing a safety violation: Init(s0) holds, each
// consecutive pair satisfies T(si, si+1), and ¬Post(sk) holds.
type CounterExample []State

// StateToCube converts a state into the conjunction of literals that
// represents it, skipping any variable the state leaves unassigned.
func StateToCube(s State) formula.Cube {
	names := make([]string, 0, len(s))
	for v := range s {
		names = append(names, string(v))
	}
	sort.Strings(names)

	out := make(formula.Cube, 0, len(names))
	for _, n := range names {
		v := formula.Var(n)
		out = append(out, formula.Literal{V: v, Neg: !s[v]})
	}
	return out
}

// StateFromModel extracts a state over the unprimed vocabulary by reading
// every variable of vars directly out of the model. Variables the model
// does not assign are left out, so the state is full only when the model
// assigns every variable of vars.
func StateFromModel(m oracle.Model, vars []formula.Var) State {
	s := make(State, len(vars))
	for _, v := range vars {
		if val, ok := m[v]; ok {
			s[v] = val
		}
	}
	return s
}

// StateFromPrimedModel extracts a state over the unprimed vocabulary by
// reading every primed variable of v out of the model and relabeling the
// resulting keys back to their unprimed twins, so downstream formula
// construction stays in the current-state vocabulary. As with
// StateFromModel, variables the model does not assign are left out.
func StateFromPrimedModel(m oracle.Model, v vocab.Vocabulary) State {
	pairs := v.Pairs()
	s := make(State, len(pairs))
	for _, p := range pairs {
		if val, ok := m[p.XP]; ok {
			s[p.X] = val
		}
	}
	return s
}
