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
	"fmt"
	"sort"

	"github.com/go-pdr/pdr/formula"
)

// maxEnumVars bounds the number of free variables EnumOracle will
// enumerate over. Past this point exhaustive search is no longer a
// reasonable decision procedure; IsTautology reports oracle-failure
// instead of burning unbounded CPU, matching the resource policy in the
// core's concurrency and resource model (a backend may impose its own
// limits; the core must treat exceeding them as ErrOracleFailure, not
// crash or hang).
const maxEnumVars = 24

// EnumOracle is the reference Formula Oracle implementation: it decides
// tautology by brute-force enumeration of every assignment to a formula's
// free variables. It is a legitimate (if naive) propositional decision
// procedure, appropriate for the small variable counts the PDR core's
// target systems have, and requires no external solver process or native
// library.
type EnumOracle struct{}

// NewEnumOracle returns the reference oracle.
func NewEnumOracle() *EnumOracle { return &EnumOracle{} }

// IsTautology implements Oracle.
func (o *EnumOracle) IsTautology(ctx context.Context, f formula.Formula) (Verdict, Model, error) {
	vars := f.Vars().Elements()
	sort.Strings(vars)
	n := len(vars)
	if n > maxEnumVars {
		return 0, nil, fmt.Errorf("%w: formula has %d free variables, exceeds enumeration bound %d", ErrOracleFailure, n, maxEnumVars)
	}

	total := uint64(1) << uint(n)
	for assignment := uint64(0); assignment < total; assignment++ {
		if assignment%4096 == 0 {
			select {
			case <-ctx.Done():
				return 0, nil, fmt.Errorf("%w: %v", ErrOracleFailure, ctx.Err())
			default:
			}
		}
		env := make(formula.Env, n)
		for i, v := range vars {
			env[formula.Var(v)] = assignment&(1<<uint(i)) != 0
		}
		if !formula.Eval(f, env) {
			model := make(Model, n)
			for v, val := range env {
				model[v] = val
			}
			return Falsifiable, model, nil
		}
	}
	return Valid, nil, nil
}

// Substitute implements Oracle.
func (o *EnumOracle) Substitute(f formula.Formula, pairs map[formula.Var]formula.Var) formula.Formula {
	return formula.Substitute(f, pairs)
}
