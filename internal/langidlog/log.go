// Copyright 2024 The langid Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package langidlog wraps a single process-wide zap.Logger, the same
// global-logger shape the host library uses for its own diagnostics.
package langidlog

import (
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

var current atomic.Pointer[zap.Logger]

func init() {
	current.Store(zap.NewNop())
}

// Init installs l as the package logger. Unlike the host library's
// equivalent, which panics if used before Init, langidlog defaults to a
// no-op logger: langid is an importable library, not a standalone
// service, and a caller that never wants logging shouldn't have to call
// Init just to avoid a panic.
func Init(l *zap.Logger) {
	current.Store(l)
}

// L returns the current process-wide logger.
func L() *zap.Logger {
	return current.Load()
}

// Sync flushes the current logger's buffered entries.
func Sync() error {
	return current.Load().Sync()
}
