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
	"errors"

	"github.com/go-pdr/pdr/oracle"
	"github.com/go-pdr/pdr/vocab"
)

// ErrMaxFramesExceeded is returned by Verify when WithMaxFrames bounds the
// driver loop and that bound is reached before a fixed point or
// counterexample is found.
var ErrMaxFramesExceeded = errors.New("pdr: maximum frame count exceeded without reaching a fixed point")

// ErrEmptyVocabulary is vocab.ErrEmptyVocabulary, re-exported so callers
// constructing a Vocabulary through this package need not import vocab
// directly just to check the error.
var ErrEmptyVocabulary = vocab.ErrEmptyVocabulary

// ErrVocabularyViolation is vocab.ErrVocabularyViolation, re-exported for
// the same reason.
var ErrVocabularyViolation = vocab.ErrVocabularyViolation

// ErrOracleFailure is oracle.ErrOracleFailure, re-exported for the same
// reason: an Unknown verdict caused by an oracle failure comes with an
// error wrapping it. An Unknown verdict can also come with
// ErrMaxFramesExceeded or with a wrapped context error instead.
var ErrOracleFailure = oracle.ErrOracleFailure

