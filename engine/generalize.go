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
	"math/rand"

	"github.com/go-pdr/pdr/formula"
)

// Generalize drops literals from q one at a time, in random order, for as
// long as the shortened cube keeps satisfying tester. It is not part of
// the default BackProp path: a caller who wants smaller blocking clauses
// calls it itself on the cube it is about to negate into a clause, with a
// tester that re-checks whatever property made the original cube worth
// blocking (e.g. that it still falsifies the obligation that produced it).
//
// Shrinking is greedy and order-dependent: the first literal whose
// removal keeps tester satisfied is dropped, and the search continues
// from there, rather than searching for a minimal cube exhaustively.
func Generalize(q formula.Cube, tester func(formula.Cube) bool) formula.Cube {
	l := append(formula.Cube(nil), q...)
	order := rand.Perm(len(l))
	for _, i := range order {
		shortened := make(formula.Cube, 0, len(l)-1)
		shortened = append(shortened, l[:i]...)
		shortened = append(shortened, l[i+1:]...)
		if tester(shortened) {
			return Generalize(shortened, tester)
		}
	}
	return l
}
