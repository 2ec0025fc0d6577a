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
	log "github.com/golang/glog"
)

// Logger is the diagnostic sink BackProp and ForwardProp write to. It
// mirrors the logging.debug/logging.info call sites of the PDR
// implementation this package is ported from: one Debugf per recursive
// step, one Infof per outer-loop-relevant event.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
}

// NopLogger discards everything written to it.
type NopLogger struct{}

// Debugf implements Logger.
func (NopLogger) Debugf(string, ...any) {}

// Infof implements Logger.
func (NopLogger) Infof(string, ...any) {}

// GlogLogger writes through github.com/golang/glog, the logging library
// this module's teacher codebase uses for its own interactive shell
// (interpreter/mg in the teacher repository). Debugf logs at verbosity
// level 1; Infof logs unconditionally at Info level.
type GlogLogger struct{}

// Debugf implements Logger.
func (GlogLogger) Debugf(format string, args ...any) {
	log.V(1).Infof(format, args...)
}

// Infof implements Logger.
func (GlogLogger) Infof(format string, args ...any) {
	log.Infof(format, args...)
}
