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

// Package formula contains the propositional formula representation shared
// by every other package in this module: variables, the Boolean connectives,
// literal/cube/clause algebra, substitution and direct evaluation.
package formula

import (
	"fmt"
	"strings"

	"bitbucket.org/creachadair/stringset"
)

// Var is the name of a Boolean state variable. The core never interprets
// the string beyond equality and hashing; by convention an unprimed
// variable "x" and its next-state twin are distinct Vars related only
// through a Vocabulary (see package vocab).
type Var string

// Formula is a propositional formula over some set of Vars.
//
// Formula values are immutable; every constructor in this package returns
// a fresh value built from its arguments. Two Formulas are compared
// structurally via Equal, not by identity.
type Formula interface {
	// isFormula is a marker method that confines implementations to this
	// package.
	isFormula()

	// String returns a parenthesized infix rendering, used for debugging
	// and test failure messages only.
	String() string

	// Vars returns the set of variables that occur free in the formula.
	Vars() stringset.Set

	// Equal reports whether two formulas have identical structure.
	Equal(other Formula) bool
}

type constFormula struct{ value bool }

func (c constFormula) isFormula() {}
func (c constFormula) String() string {
	if c.value {
		return "true"
	}
	return "false"
}
func (c constFormula) Vars() stringset.Set { return stringset.New() }
func (c constFormula) Equal(other Formula) bool {
	o, ok := other.(constFormula)
	return ok && o.value == c.value
}

// True returns the tautological constant formula.
func True() Formula { return constFormula{true} }

// False returns the unsatisfiable constant formula.
func False() Formula { return constFormula{false} }

type varFormula struct{ v Var }

func (f varFormula) isFormula()      {}
func (f varFormula) String() string  { return string(f.v) }
func (f varFormula) Vars() stringset.Set {
	return stringset.New(string(f.v))
}
func (f varFormula) Equal(other Formula) bool {
	o, ok := other.(varFormula)
	return ok && o.v == f.v
}

// NewVar returns the formula consisting of a single variable reference.
func NewVar(v Var) Formula { return varFormula{v} }

type notFormula struct{ x Formula }

func (f notFormula) isFormula()          {}
func (f notFormula) String() string      { return fmt.Sprintf("!%s", f.x.String()) }
func (f notFormula) Vars() stringset.Set { return f.x.Vars() }
func (f notFormula) Equal(other Formula) bool {
	o, ok := other.(notFormula)
	return ok && o.x.Equal(f.x)
}

// Not returns the negation of x.
func Not(x Formula) Formula { return notFormula{x} }

type andFormula struct{ xs []Formula }

func (f andFormula) isFormula() {}
func (f andFormula) String() string {
	if len(f.xs) == 0 {
		return "true"
	}
	return join("&", f.xs)
}
func (f andFormula) Vars() stringset.Set { return varsOf(f.xs) }
func (f andFormula) Equal(other Formula) bool {
	o, ok := other.(andFormula)
	return ok && equalSlice(f.xs, o.xs)
}

// And returns the conjunction of xs. And() with no arguments is True.
func And(xs ...Formula) Formula {
	if len(xs) == 0 {
		return True()
	}
	if len(xs) == 1 {
		return xs[0]
	}
	return andFormula{append([]Formula(nil), xs...)}
}

type orFormula struct{ xs []Formula }

func (f orFormula) isFormula() {}
func (f orFormula) String() string {
	if len(f.xs) == 0 {
		return "false"
	}
	return join("|", f.xs)
}
func (f orFormula) Vars() stringset.Set { return varsOf(f.xs) }
func (f orFormula) Equal(other Formula) bool {
	o, ok := other.(orFormula)
	return ok && equalSlice(f.xs, o.xs)
}

// Or returns the disjunction of xs. Or() with no arguments is False.
func Or(xs ...Formula) Formula {
	if len(xs) == 0 {
		return False()
	}
	if len(xs) == 1 {
		return xs[0]
	}
	return orFormula{append([]Formula(nil), xs...)}
}

type xorFormula struct{ a, b Formula }

func (f xorFormula) isFormula() {}
func (f xorFormula) String() string {
	return fmt.Sprintf("(%s ^ %s)", f.a.String(), f.b.String())
}
func (f xorFormula) Vars() stringset.Set { return varsOf([]Formula{f.a, f.b}) }
func (f xorFormula) Equal(other Formula) bool {
	o, ok := other.(xorFormula)
	return ok && o.a.Equal(f.a) && o.b.Equal(f.b)
}

// Xor returns the exclusive-or of a and b.
func Xor(a, b Formula) Formula { return xorFormula{a, b} }

type impliesFormula struct{ a, b Formula }

func (f impliesFormula) isFormula() {}
func (f impliesFormula) String() string {
	return fmt.Sprintf("(%s => %s)", f.a.String(), f.b.String())
}
func (f impliesFormula) Vars() stringset.Set { return varsOf([]Formula{f.a, f.b}) }
func (f impliesFormula) Equal(other Formula) bool {
	o, ok := other.(impliesFormula)
	return ok && o.a.Equal(f.a) && o.b.Equal(f.b)
}

// Implies returns the material conditional a => b.
func Implies(a, b Formula) Formula { return impliesFormula{a, b} }

type eqFormula struct{ a, b Formula }

func (f eqFormula) isFormula() {}
func (f eqFormula) String() string {
	return fmt.Sprintf("(%s = %s)", f.a.String(), f.b.String())
}
func (f eqFormula) Vars() stringset.Set { return varsOf([]Formula{f.a, f.b}) }
func (f eqFormula) Equal(other Formula) bool {
	o, ok := other.(eqFormula)
	return ok && o.a.Equal(f.a) && o.b.Equal(f.b)
}

// Eq returns the Boolean equivalence a = b (true iff a and b agree).
func Eq(a, b Formula) Formula { return eqFormula{a, b} }

func varsOf(xs []Formula) stringset.Set {
	out := stringset.New()
	for _, x := range xs {
		out = out.Union(x.Vars())
	}
	return out
}

func equalSlice(a, b []Formula) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func join(op string, xs []Formula) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = x.String()
	}
	return "(" + strings.Join(parts, " "+op+" ") + ")"
}
