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

// Package engine implements the two procedures the PDR driver alternates
// between: backward CTI refinement (BackProp, spec.md §4.4) and forward
// inductive push (ForwardProp, spec.md §4.5).
package engine

import (
	"context"
	"fmt"

	"github.com/go-pdr/pdr/cube"
	"github.com/go-pdr/pdr/formula"
	"github.com/go-pdr/pdr/oracle"
	"github.com/go-pdr/pdr/trace"
	"github.com/go-pdr/pdr/vocab"
)

// BackProp strengthens the trace prefix rs so that its last frame entails
// post, or produces a genuine counterexample trace. level distinguishes
// the outermost call (0) from recursive calls issued to discharge a
// stronger obligation one frame earlier.
//
// On SAFE, the returned trace replaces rs in the caller's bookkeeping. On
// UNSAFE, the returned counterexample is a sequence of full states
// [s0, s1, ..., sk] with Init(s0), T(si, si+1) for every consecutive
// pair, and the negation of the original top-level Post holding at sk.
func BackProp(ctx context.Context, rs trace.Trace, init, trans, post formula.Formula, level int, voc vocab.Vocabulary, o oracle.Oracle, lg Logger) (safe bool, newRs trace.Trace, ce cube.CounterExample, err error) {
	if err := ctx.Err(); err != nil {
		return false, nil, nil, fmt.Errorf("engine: back_prop: %w", err)
	}

	if len(rs) == 0 {
		lg.Debugf("back_prop[level=%d]: base case, querying Init & T => Post'", level)
		v, m, err := o.IsTautology(ctx, formula.Implies(formula.And(init, trans), voc.Prime(post)))
		if err != nil {
			return false, nil, nil, fmt.Errorf("engine: back_prop base case: %w", err)
		}
		if v == oracle.Valid {
			return true, trace.Trace{}, nil, nil
		}
		s0 := cube.StateFromModel(m, voc.Unprimed())
		s1 := cube.StateFromPrimedModel(m, voc)
		lg.Debugf("back_prop[level=%d]: base case falsifiable, counterexample %s -> %s", level, s0, s1)
		return false, nil, cube.CounterExample{s0, s1}, nil
	}

	n := len(rs) - 1
	rn := rs[n]
	prefix := rs[:n].Clone() // the original prefix: every recursive call below uses this, never a strengthened copy.
	accPrefix := prefix

	for {
		if err := ctx.Err(); err != nil {
			return false, nil, nil, fmt.Errorf("engine: back_prop level %d: %w", level, err)
		}

		var v oracle.Verdict
		var m oracle.Model
		var qerr error
		if level == 0 {
			v, m, qerr = o.IsTautology(ctx, formula.Implies(rn.Conj(), post))
		} else {
			v, m, qerr = o.IsTautology(ctx, formula.Implies(formula.And(rn.Conj(), trans), voc.Prime(post)))
		}
		if qerr != nil {
			return false, nil, nil, fmt.Errorf("engine: back_prop level %d: %w", level, qerr)
		}
		if v == oracle.Valid {
			strengthened := append(accPrefix.Clone(), rn)
			return true, strengthened, nil, nil
		}

		s := cube.StateFromModel(m, voc.Unprimed())
		q := cube.StateToCube(s)
		rn = rn.WithClause(q.NegateToClause())
		lg.Debugf("back_prop[level=%d]: blocking CTI %s in frame %d", level, s, n)

		childSafe, childRs, childCe, err := BackProp(ctx, prefix, init, trans, rn.Conj(), level+1, voc, o, lg)
		if err != nil {
			return false, nil, nil, err
		}
		if childSafe {
			accPrefix = childRs
			continue
		}

		if level > 0 {
			last := childCe[len(childCe)-1]
			predQuery := formula.Implies(formula.And(cube.StateToCube(last).Formula(), trans), voc.Prime(rn.Conj()))
			v, pm, perr := o.IsTautology(ctx, predQuery)
			if perr != nil {
				return false, nil, nil, fmt.Errorf("engine: back_prop level %d predecessor witness: %w", level, perr)
			}
			if v == oracle.Valid {
				panic("engine: back_prop invariant violation: predecessor witness query was valid, expected falsifiable")
			}
			next := cube.StateFromPrimedModel(pm, voc)
			childCe = append(childCe, next)
		}
		return false, nil, childCe, nil
	}
}
