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

import "fmt"

// Env is a total assignment of Boolean values to some set of Vars, used to
// evaluate a Formula. Eval panics if f mentions a Var absent from env;
// callers are expected to build env from exactly f.Vars() (or a superset).
type Env map[Var]bool

// Eval evaluates f under env, recursively walking the formula structure.
// This is the direct, brute-force evaluator used by the reference
// enumeration oracle (package oracle); it has no dependency on any solver.
func Eval(f Formula, env Env) bool {
	switch x := f.(type) {
	case constFormula:
		return x.value
	case varFormula:
		v, ok := env[x.v]
		if !ok {
			panic(fmt.Sprintf("formula: Eval: variable %q has no assignment", x.v))
		}
		return v
	case notFormula:
		return !Eval(x.x, env)
	case andFormula:
		for _, c := range x.xs {
			if !Eval(c, env) {
				return false
			}
		}
		return true
	case orFormula:
		for _, c := range x.xs {
			if Eval(c, env) {
				return true
			}
		}
		return false
	case xorFormula:
		return Eval(x.a, env) != Eval(x.b, env)
	case impliesFormula:
		return !Eval(x.a, env) || Eval(x.b, env)
	case eqFormula:
		return Eval(x.a, env) == Eval(x.b, env)
	default:
		panic(fmt.Sprintf("formula: Eval: unknown formula type %T", f))
	}
}
