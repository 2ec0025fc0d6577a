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

import "strings"

// Literal is a variable or its negation.
type Literal struct {
	V   Var
	Neg bool
}

// Negate returns the complementary literal.
func (l Literal) Negate() Literal { return Literal{l.V, !l.Neg} }

// Formula renders the literal as a one-variable Formula.
func (l Literal) Formula() Formula {
	if l.Neg {
		return Not(NewVar(l.V))
	}
	return NewVar(l.V)
}

func (l Literal) String() string {
	if l.Neg {
		return "!" + string(l.V)
	}
	return string(l.V)
}

// Cube is a conjunction of literals: a (possibly partial) description of a
// single state. The empty Cube is the tautology true.
type Cube []Literal

// Formula renders the cube as the conjunction of its literals.
func (c Cube) Formula() Formula {
	xs := make([]Formula, len(c))
	for i, l := range c {
		xs[i] = l.Formula()
	}
	return And(xs...)
}

// NegateToClause returns the blocking clause ¬c, i.e. the disjunction of
// the negation of every literal in c.
func (c Cube) NegateToClause() Clause {
	out := make(Clause, len(c))
	for i, l := range c {
		out[i] = l.Negate()
	}
	return out
}

func (c Cube) String() string {
	parts := make([]string, len(c))
	for i, l := range c {
		parts[i] = l.String()
	}
	return "(" + strings.Join(parts, " & ") + ")"
}

// Clause is a disjunction of literals, used as a blocking constraint that
// excludes a region of the state space. The empty Clause is the
// contradiction false.
type Clause []Literal

// Formula renders the clause as the disjunction of its literals.
func (c Clause) Formula() Formula {
	xs := make([]Formula, len(c))
	for i, l := range c {
		xs[i] = l.Formula()
	}
	return Or(xs...)
}

func (c Clause) String() string {
	parts := make([]string, len(c))
	for i, l := range c {
		parts[i] = l.String()
	}
	return "(" + strings.Join(parts, " | ") + ")"
}

// Equal reports whether two clauses contain the same literals in the same
// order. Clauses are never deduplicated or reordered by this package, so
// structural equality is the right notion for trace bookkeeping.
func (c Clause) Equal(other Clause) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}
