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

// Package trace implements the frame trace R0, R1, ..., Rn that the PDR
// driver maintains between iterations, as defined in spec.md §3 and §4.3.
package trace

import (
	"github.com/go-pdr/pdr/formula"
)

// Frame (also "trace element") is a finite collection of clauses over the
// unprimed vocabulary, interpreted conjunctively. Frame is an immutable
// value: WithClause returns a new Frame rather than mutating the
// receiver, so that a Frame shared by an outer caller is never changed
// out from under it — mirroring the original implementation's habit of
// rebuilding the clause list on every addition instead of mutating it in
// place.
type Frame struct {
	clauses []formula.Clause
}

// NewFrame returns the empty frame, i.e. the constant true.
func NewFrame() Frame { return Frame{} }

// Clauses returns a copy of the frame's clauses.
func (f Frame) Clauses() []formula.Clause {
	return append([]formula.Clause(nil), f.clauses...)
}

// Len returns the number of clauses in the frame.
func (f Frame) Len() int { return len(f.clauses) }

// WithClause returns a new Frame with c appended. Duplicates are not
// filtered out: soundness does not require it, and the original blocking
// procedure never checks for them either.
func (f Frame) WithClause(c formula.Clause) Frame {
	next := make([]formula.Clause, len(f.clauses)+1)
	copy(next, f.clauses)
	next[len(f.clauses)] = c
	return Frame{next}
}

// Conj materializes the frame as a single formula: the conjunction of its
// clauses, or true if the frame is empty.
func (f Frame) Conj() formula.Formula {
	if len(f.clauses) == 0 {
		return formula.True()
	}
	parts := make([]formula.Formula, len(f.clauses))
	for i, c := range f.clauses {
		parts[i] = c.Formula()
	}
	return formula.And(parts...)
}

// Trace is the ordered sequence of frames R0, R1, ..., Rn maintained by the
// PDR driver. Index 0 is R0.
type Trace []Frame

// Clone returns a shallow copy of the trace (the frames themselves are
// immutable, so copying the slice header suffices to protect the
// original from future appends).
func (t Trace) Clone() Trace {
	out := make(Trace, len(t))
	copy(out, t)
	return out
}

// Last returns the last frame of the trace. It panics if the trace is
// empty; every trace the driver builds always has at least one frame
// (R0), so an empty Trace reaching Last is a programmer error.
func (t Trace) Last() Frame { return t[len(t)-1] }
