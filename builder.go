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

package langid

import "github.com/pkg/errors"

const defaultMinimumRelativeDistance = 0.0

// Builder configures and constructs a Detector, mirroring the
// options-struct-plus-fluent-setters shape the host library uses for
// its own index-build configuration, rather than a long constructor
// argument list.
type Builder struct {
	languages               LanguageSet
	minimumRelativeDistance float64
	preload                 bool
	lowAccuracy             bool
	executor                Executor
}

// NewBuilder starts a Builder restricted to the given languages. Passing
// no languages is a configuration error caught by Build, not silently
// treated as "all languages": an empty candidate set almost always means
// a caller forgot to list any, not that they want every model loaded.
func NewBuilder(languages ...Language) *Builder {
	return &Builder{
		languages:               NewLanguageSet(languages...),
		minimumRelativeDistance: defaultMinimumRelativeDistance,
	}
}

// NewBuilderFromAllLanguages starts a Builder with every known language
// as a candidate.
func NewBuilderFromAllLanguages() *Builder {
	return NewBuilder(AllLanguages()...)
}

// MinimumRelativeDistance sets the minimum gap between the best and
// second-best candidate's scores, as a fraction of the best score,
// required before Detect will commit to an answer instead of returning
// Unknown (spec.md §4.11 step 5). The zero value never refuses to
// answer on closeness alone.
func (b *Builder) MinimumRelativeDistance(d float64) *Builder {
	b.minimumRelativeDistance = d
	return b
}

// PreloadLanguageModels causes Build to load every candidate language's
// model immediately instead of lazily on first Detect call, trading
// Build latency for predictable per-call latency afterwards.
func (b *Builder) PreloadLanguageModels() *Builder {
	b.preload = true
	return b
}

// LowAccuracyMode caps scoring at trigrams, skipping quadrigram and
// fivegram back-off entirely. It trades some accuracy on longer,
// cleaner text for faster scoring, and is most useful when the
// candidate language set is large and latency matters more than
// squeezing out the last bit of precision.
func (b *Builder) LowAccuracyMode() *Builder {
	b.lowAccuracy = true
	return b
}

// WithExecutor overrides the Executor used to fan scoring work out
// across candidate languages. The default is a bounded concurrent
// executor sized to GOMAXPROCS.
func (b *Builder) WithExecutor(e Executor) *Builder {
	b.executor = e
	return b
}

// Build validates the configuration and constructs a Detector.
func (b *Builder) Build() (*Detector, error) {
	if b.languages.Len() < 2 {
		return nil, errors.Wrap(ErrInvalidInput, "multi-language detection requires at least two candidate languages")
	}
	if b.minimumRelativeDistance < 0 || b.minimumRelativeDistance >= 1 {
		return nil, errors.Wrap(ErrConfigError, "minimum relative distance must be in [0, 1)")
	}
	if b.executor == nil {
		b.executor = NewExecutor(0)
	}

	d := newDetector(b)

	if b.preload {
		for _, l := range b.languages.Slice() {
			if _, _, err := d.holderFor(l).Load(); err != nil {
				return nil, errors.Wrapf(err, "preload %s", l)
			}
		}
	}

	return d, nil
}
