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

// Package vocab establishes the unprimed/primed variable bijection that
// every other package in this module builds on: the current-state
// vocabulary X, its next-state twin X', and the priming/unpriming
// substitutions between them.
package vocab

import (
	"errors"
	"fmt"

	"bitbucket.org/creachadair/stringset"
	"go.uber.org/multierr"

	"github.com/go-pdr/pdr/formula"
)

// ErrEmptyVocabulary is returned by New when given no variable pairs.
var ErrEmptyVocabulary = errors.New("vocab: variable-pair list must be non-empty")

// ErrVocabularyViolation is returned by New (wrapped, possibly multiple
// times via multierr) for each pairing that violates the bijection: a
// variable paired with itself, or a variable reused across pairs.
var ErrVocabularyViolation = errors.New("vocab: invalid variable pairing")

// VarPair relates one current-state variable to its next-state twin.
type VarPair struct {
	X  formula.Var
	XP formula.Var
}

// Vocabulary is the ordered bijection between the unprimed vocabulary X and
// the primed vocabulary X', established once per verification run and
// shared read-only by every component that needs to move a formula between
// the two (see spec.md §3 and §6).
type Vocabulary struct {
	pairs      []VarPair
	unprimed   []formula.Var
	primed     []formula.Var
	toPrimed   map[formula.Var]formula.Var
	toUnprimed map[formula.Var]formula.Var
}

// New validates pairs and builds the Vocabulary they establish. Every
// violation found — not just the first — is accumulated via multierr so
// callers see the full picture of a malformed vocabulary in one error.
func New(pairs []VarPair) (Vocabulary, error) {
	if len(pairs) == 0 {
		return Vocabulary{}, ErrEmptyVocabulary
	}

	var errs error
	seen := stringset.New()
	toPrimed := make(map[formula.Var]formula.Var, len(pairs))
	toUnprimed := make(map[formula.Var]formula.Var, len(pairs))
	unprimed := make([]formula.Var, 0, len(pairs))
	primed := make([]formula.Var, 0, len(pairs))

	for _, p := range pairs {
		if p.X == p.XP {
			errs = multierr.Append(errs, fmt.Errorf("%w: variable %q paired with itself", ErrVocabularyViolation, p.X))
		}
		for _, v := range []formula.Var{p.X, p.XP} {
			if seen.Contains(string(v)) {
				errs = multierr.Append(errs, fmt.Errorf("%w: variable %q used more than once", ErrVocabularyViolation, v))
			}
			seen.Add(string(v))
		}
		toPrimed[p.X] = p.XP
		toUnprimed[p.XP] = p.X
		unprimed = append(unprimed, p.X)
		primed = append(primed, p.XP)
	}
	if errs != nil {
		return Vocabulary{}, errs
	}
	return Vocabulary{
		pairs:      append([]VarPair(nil), pairs...),
		unprimed:   unprimed,
		primed:     primed,
		toPrimed:   toPrimed,
		toUnprimed: toUnprimed,
	}, nil
}

// Pairs returns the (x, x') pairs this Vocabulary was built from.
func (v Vocabulary) Pairs() []VarPair {
	return append([]VarPair(nil), v.pairs...)
}

// Unprimed returns the current-state variables X, in pairing order.
func (v Vocabulary) Unprimed() []formula.Var {
	return append([]formula.Var(nil), v.unprimed...)
}

// Primed returns the next-state variables X', in pairing order.
func (v Vocabulary) Primed() []formula.Var {
	return append([]formula.Var(nil), v.primed...)
}

// Prime rewrites f, substituting every unprimed variable with its primed
// twin. f must mention only unprimed variables.
func (v Vocabulary) Prime(f formula.Formula) formula.Formula {
	return formula.Substitute(f, v.toPrimed)
}

// Unprime rewrites f, substituting every primed variable with its unprimed
// twin. f must mention only primed variables.
func (v Vocabulary) Unprime(f formula.Formula) formula.Formula {
	return formula.Substitute(f, v.toUnprimed)
}
