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

package vocab

import (
	"errors"
	"testing"

	"github.com/go-pdr/pdr/formula"
)

func TestNewEmpty(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrEmptyVocabulary) {
		t.Errorf("New(nil) error = %v, want ErrEmptyVocabulary", err)
	}
}

func TestNewSelfPaired(t *testing.T) {
	_, err := New([]VarPair{{X: "x", XP: "x"}})
	if !errors.Is(err, ErrVocabularyViolation) {
		t.Errorf("New() error = %v, want ErrVocabularyViolation", err)
	}
}

func TestNewDuplicateVariable(t *testing.T) {
	_, err := New([]VarPair{{X: "x", XP: "x'"}, {X: "x", XP: "y'"}})
	if !errors.Is(err, ErrVocabularyViolation) {
		t.Errorf("New() error = %v, want ErrVocabularyViolation", err)
	}
}

func TestPrimeUnprimeRoundtrip(t *testing.T) {
	v, err := New([]VarPair{{X: "x", XP: "x'"}, {X: "y", XP: "y'"}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	f := formula.And(formula.NewVar("x"), formula.Not(formula.NewVar("y")))
	primed := v.Prime(f)
	want := formula.And(formula.NewVar("x'"), formula.Not(formula.NewVar("y'")))
	if !primed.Equal(want) {
		t.Errorf("Prime(f) = %s, want %s", primed, want)
	}
	if back := v.Unprime(primed); !back.Equal(f) {
		t.Errorf("Unprime(Prime(f)) = %s, want %s", back, f)
	}
}
