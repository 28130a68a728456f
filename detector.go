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

import (
	"context"
	"sync"

	"github.com/go-langid/langid/internal/langidlog"
	"go.uber.org/zap"
)

// Detector identifies the natural language of short text samples by
// combining the rule-based script filter (spec.md §4.10) with n-gram
// frequency scoring over the candidate languages' models (spec.md
// §4.11). Construct one with a Builder; the zero value is not usable.
type Detector struct {
	languages               LanguageSet
	minimumRelativeDistance float64
	lowAccuracy             bool
	executor                Executor
	store                   *modelStore

	mu      sync.Mutex
	holders map[Language]*ModelHolder
}

func newDetector(b *Builder) *Detector {
	store := newModelStore()
	d := &Detector{
		languages:               b.languages,
		minimumRelativeDistance: b.minimumRelativeDistance,
		lowAccuracy:             b.lowAccuracy,
		executor:                b.executor,
		store:                   store,
		holders:                 make(map[Language]*ModelHolder),
	}
	for _, l := range b.languages.Slice() {
		d.holders[l] = NewModelHolder(l, store)
	}
	return d
}

func (d *Detector) holderFor(l Language) *ModelHolder {
	d.mu.Lock()
	defer d.mu.Unlock()
	h, ok := d.holders[l]
	if !ok {
		h = NewModelHolder(l, d.store)
		d.holders[l] = h
	}
	return h
}

// Detect returns the most likely language of text, or Unknown when no
// language can be determined confidently (spec.md §4.11 step 5, §4.10
// for the empty/no-letters case).
func (d *Detector) Detect(text string) (Language, error) {
	ranked, err := d.rankedScores(text)
	if err != nil {
		return Unknown, err
	}
	if len(ranked) == 0 {
		return Unknown, nil
	}
	if len(ranked) == 1 {
		return ranked[0].language, nil
	}
	if relativeDistance(ranked[0], ranked[1]) < d.minimumRelativeDistance {
		return Unknown, nil
	}
	return ranked[0].language, nil
}

// Confidences returns every candidate language's normalized confidence
// value, highest first, deterministically ordered on ties (spec.md §8
// testable properties).
func (d *Detector) Confidences(text string) ([]LanguageConfidence, error) {
	ranked, err := d.rankedScores(text)
	if err != nil {
		return nil, err
	}
	values := confidenceValues(ranked)
	out := make([]LanguageConfidence, 0, len(ranked))
	for _, s := range ranked {
		out = append(out, LanguageConfidence{Language: s.language, Confidence: values[s.language]})
	}
	return out, nil
}

// LanguageConfidence pairs a candidate language with its normalized
// confidence value in [0, 1].
type LanguageConfidence struct {
	Language   Language
	Confidence float64
}

func (d *Detector) rankedScores(text string) ([]languageScore, error) {
	cleaned := cleanUpInputText(text)
	if cleaned == "" {
		return nil, nil
	}

	words := splitIntoWords(cleaned)

	decided, isDecided, narrowed := ruleBasedFilter(words, d.languages)
	if isDecided {
		if decided == Unknown {
			return nil, nil
		}
		return []languageScore{{language: decided, score: 0}}, nil
	}

	textLen := len([]rune(cleaned))
	lengths := scoringLengths(textLen, d.lowAccuracy)
	if len(lengths) == 0 {
		return nil, nil
	}

	candidates := narrowed.Slice()

	scores := make([]languageScore, len(candidates))
	errs := make([]error, len(candidates))

	ctx := context.Background()
	err := d.executor.Run(ctx, len(candidates), func(_ context.Context, i int) error {
		lang := candidates[i]
		holder := d.holderFor(lang)
		uniBiTri, quadFive, err := holder.Load()
		if err != nil {
			errs[i] = err
			scores[i] = languageScore{language: lang, score: absentNgramLogProb}
			return nil
		}
		model := &languageModel{uniBiTri: uniBiTri, quadFive: quadFive}
		scores[i] = languageScore{language: lang, score: scoreLanguage(lang, model, words, lengths)}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for i, e := range errs {
		if e != nil {
			langidlog.L().Warn("language model unavailable, excluding candidate",
				zap.String("language", candidates[i].String()), zap.Error(e))
		}
	}

	return rankByConfidence(scores), nil
}

// UnloadModels releases every loaded language model's backing mmap. A
// Detector remains usable afterwards; the next Detect call reloads
// whatever models it needs (spec.md §8 resource model).
func (d *Detector) UnloadModels() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, h := range d.holders {
		h.Reset()
	}
}
