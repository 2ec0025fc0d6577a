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

package pdr

import (
	"context"
	"fmt"

	"github.com/go-pdr/pdr/cube"
	"github.com/go-pdr/pdr/engine"
	"github.com/go-pdr/pdr/formula"
	"github.com/go-pdr/pdr/oracle"
	"github.com/go-pdr/pdr/trace"
	"github.com/go-pdr/pdr/vocab"
)

// Vocabulary, VarPair and NewVocabulary re-export the vocab package's
// bijection type so most callers never need to import it directly.
type Vocabulary = vocab.Vocabulary

// VarPair relates one current-state variable to its next-state twin.
type VarPair = vocab.VarPair

// NewVocabulary validates varPairs and builds the Vocabulary they
// establish: non-empty, no variable paired with itself, no variable
// reused across pairs.
func NewVocabulary(varPairs []VarPair) (Vocabulary, error) {
	return vocab.New(varPairs)
}

// Verify decides whether every state reachable from Init via Trans
// satisfies Post, per spec.md §2, §4.6 and §6.
//
// Init and Post must mention only voc's unprimed variables; Trans may
// mention both the unprimed and primed vocabularies. Init gives the start
// states; every state reachable from them through Trans is checked
// against Post.
func Verify(ctx context.Context, voc Vocabulary, init, trans, post formula.Formula, opts ...Option) (Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Design note (spec.md §9, open question): the base case of BackProp
	// only tests Init & T => Post' and so never notices an initial state
	// that violates Post with zero steps taken. Check that directly here.
	v, m, err := o.oracle.IsTautology(ctx, formula.Implies(init, post))
	if err != nil {
		return Result{Verdict: Unknown}, fmt.Errorf("pdr: checking Init => Post: %w", err)
	}
	if v == oracle.Falsifiable {
		s0 := cube.StateFromModel(m, voc.Unprimed())
		// Variables mentioned by neither Init nor Post are absent from the
		// model; any value completes the state, so use false.
		for _, x := range voc.Unprimed() {
			if _, ok := s0[x]; !ok {
				s0[x] = false
			}
		}
		return Result{Verdict: Unsafe, Counterexample: cube.CounterExample{s0}}, nil
	}

	rs := trace.Trace{trace.NewFrame()}
	for iteration := 1; ; iteration++ {
		n := len(rs)
		o.logger.Infof("pdr: iteration %d, back_prop over %d frame(s)", iteration, n)

		safe, newRs, ce, err := engine.BackProp(ctx, rs, init, trans, post, 0, voc, o.oracle, o.logger)
		if err != nil {
			return Result{Verdict: Unknown}, fmt.Errorf("pdr: back_prop: %w", err)
		}
		if !safe {
			return Result{Verdict: Unsafe, Counterexample: ce}, nil
		}

		nextRs, err := engine.ForwardProp(ctx, newRs[0], n+1, trans, voc, o.oracle, o.logger)
		if err != nil {
			return Result{Verdict: Unknown}, fmt.Errorf("pdr: forward_prop: %w", err)
		}
		rs = nextRs

		if len(rs) >= 2 {
			last, prev := rs[len(rs)-1], rs[len(rs)-2]
			eq, _, err := o.oracle.IsTautology(ctx, formula.Eq(last.Conj(), prev.Conj()))
			if err != nil {
				return Result{Verdict: Unknown}, fmt.Errorf("pdr: checking fixed point: %w", err)
			}
			if eq == oracle.Valid {
				o.logger.Infof("pdr: fixed point reached after %d iteration(s)", iteration)
				return Result{Verdict: Safe, Invariant: last.Conj()}, nil
			}
		}

		if o.maxFrames > 0 && len(rs) > o.maxFrames {
			return Result{Verdict: Unknown}, ErrMaxFramesExceeded
		}
	}
}
