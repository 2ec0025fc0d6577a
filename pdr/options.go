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
	"github.com/go-pdr/pdr/engine"
	"github.com/go-pdr/pdr/oracle"
)

type options struct {
	oracle    oracle.Oracle
	logger    engine.Logger
	maxFrames int
}

func defaultOptions() options {
	return options{
		oracle:    oracle.NewEnumOracle(),
		logger:    engine.GlogLogger{},
		maxFrames: 0,
	}
}

// Option configures a Verify call.
type Option func(*options)

// WithOracle overrides the default Formula Oracle (an EnumOracle that
// decides tautology by brute-force enumeration). Supply a SAT/SMT-backed
// implementation for vocabularies too large to enumerate.
func WithOracle(o oracle.Oracle) Option {
	return func(o2 *options) { o2.oracle = o }
}

// WithLogger overrides the default logger (GlogLogger). Pass
// engine.NopLogger{} to silence diagnostic output entirely.
func WithLogger(lg engine.Logger) Option {
	return func(o *options) { o.logger = lg }
}

// WithMaxFrames bounds the number of outer driver iterations. If the
// trace has not reached a fixed point or a counterexample after
// maxFrames iterations, Verify returns ErrMaxFramesExceeded with an
// Unknown verdict. Zero (the default) means unbounded.
func WithMaxFrames(n int) Option {
	return func(o *options) { o.maxFrames = n }
}
