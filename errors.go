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

package langid // import "github.com/go-langid/langid"

import "errors"

// Sentinel errors for the four kinds of failure this package can report.
// Use errors.Is to check for them; wrapped occurrences (via
// github.com/pkg/errors) still satisfy errors.Is.
var (
	// ErrInvalidInput is returned for malformed configuration: an empty or
	// single-language set passed where multi-language detection requires
	// at least two languages.
	ErrInvalidInput = errors.New("langid: invalid input")

	// ErrModelMissing is returned when a language's binary model file is
	// not present on the resource path.
	ErrModelMissing = errors.New("langid: model missing")

	// ErrModelCorrupt is returned when a binary model file fails to parse:
	// an overflowing size field, trailing bytes after the last map, or a
	// duplicate key inserted while building an encoded map.
	ErrModelCorrupt = errors.New("langid: model corrupt")

	// ErrConfigError is returned when a Builder option is out of range,
	// e.g. MinimumRelativeDistance outside [0, 1).
	ErrConfigError = errors.New("langid: invalid configuration")
)
