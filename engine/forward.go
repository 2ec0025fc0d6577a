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

package engine

import (
	"context"
	"fmt"

	"github.com/go-pdr/pdr/formula"
	"github.com/go-pdr/pdr/oracle"
	"github.com/go-pdr/pdr/trace"
	"github.com/go-pdr/pdr/vocab"
)

// ForwardProp extends r0 into a trace of up to maxLen frames by repeatedly
// dropping, from the current frame, every clause that is not relatively
// inductive against itself, per spec.md §4.5. It stops early once a fixed
// point is reached: the current and freshly-inducted frame materialize to
// logically equivalent formulas.
func ForwardProp(ctx context.Context, r0 trace.Frame, maxLen int, trans formula.Formula, voc vocab.Vocabulary, o oracle.Oracle, lg Logger) (trace.Trace, error) {
	rs := trace.Trace{r0}
	r := r0
	for i := 0; i < maxLen-1; i++ {
		nr, err := induct(ctx, r, trans, voc, o)
		if err != nil {
			return nil, fmt.Errorf("engine: forward_prop step %d: %w", i, err)
		}
		rs = append(rs, nr)

		equiv, err := equivalent(ctx, r.Conj(), nr.Conj(), o)
		if err != nil {
			return nil, fmt.Errorf("engine: forward_prop step %d: %w", i, err)
		}
		if equiv {
			lg.Debugf("forward_prop: fixed point reached after %d step(s)", i+1)
			break
		}
		r = nr
	}
	return rs, nil
}

// induct computes { c in r : conj(r) & T => c' }, the subset of r's
// clauses that remain relatively inductive against the frame itself.
func induct(ctx context.Context, r trace.Frame, trans formula.Formula, voc vocab.Vocabulary, o oracle.Oracle) (trace.Frame, error) {
	kept := trace.NewFrame()
	antecedent := formula.And(r.Conj(), trans)
	for _, c := range r.Clauses() {
		if err := ctx.Err(); err != nil {
			return trace.Frame{}, err
		}
		v, _, err := o.IsTautology(ctx, formula.Implies(antecedent, voc.Prime(c.Formula())))
		if err != nil {
			return trace.Frame{}, err
		}
		if v == oracle.Valid {
			kept = kept.WithClause(c)
		}
	}
	return kept, nil
}

// equivalent reports whether a and b are logically equivalent, via a
// single two-way tautology query on their biconditional.
func equivalent(ctx context.Context, a, b formula.Formula, o oracle.Oracle) (bool, error) {
	v, _, err := o.IsTautology(ctx, formula.Eq(a, b))
	if err != nil {
		return false, err
	}
	return v == oracle.Valid, nil
}
