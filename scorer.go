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
	"math"
	"sort"
)

// logogramScoreBonus is applied once to a logogram language's total score
// (spec.md §4.11 step 3): Han/Hiragana/Katakana text carries less evidence
// per character than alphabetic text of the same n-gram order, so a
// language written in one of those scripts gets its score nudged up
// (scores are negative, so multiplying by a fraction below 1 is a bonus).
const logogramScoreBonus = 0.85

// absentNgramLogProb stands in for a candidate language whose model failed
// to load entirely (detector.go), or whose model recognizes none of the
// text's n-grams (scoreLanguage), ranking it below any candidate with
// evidence without a special case in the ranking comparator.
const absentNgramLogProb = -100.0

// longTextLength is the cleaned-text rune count at or above which scoring
// uses only trigrams rather than the full 1-5 sweep (spec.md §4.11 step 2):
// beyond this length trigram statistics alone are stable enough, and
// scoring every length on a long document is wasted work.
const longTextLength = 120

// languageModel is the pair of lookup facades a ModelHolder hands the
// scorer for one language (spec.md §4.11 step 2).
type languageModel struct {
	uniBiTri *UniBiTrigram
	quadFive *QuadriFivegram
}

func (m *languageModel) frequency(ng ngram) float64 {
	chars := ng.chars()
	n := len(chars)
	if n == 0 {
		return 0
	}
	if n <= 3 {
		return m.uniBiTri.frequency(chars)
	}
	return m.quadFive.frequency(chars)
}

// scoringLengths chooses which n-gram lengths to test against the model,
// per spec.md §4.11 step 2: long text or low-accuracy mode uses trigrams
// only, otherwise every length from 1 to 5 that the text is long enough to
// produce at least one window of.
func scoringLengths(textLen int, lowAccuracy bool) []int {
	if lowAccuracy || textLen >= longTextLength {
		if textLen < 3 {
			return nil
		}
		return []int{3}
	}
	lengths := make([]int, 0, 5)
	for l := 1; l <= 5; l++ {
		if textLen >= l {
			lengths = append(lengths, l)
		}
	}
	return lengths
}

// scoreLanguage sums the back-off log-probability of every distinct
// n-gram at each selected length (spec.md §4.11 step 3), normalizes by
// the count of the text's distinct unigrams the language's model
// actually recognizes (step 4), and applies the logogram bonus if the
// language is written in a logogram script. A language whose model
// recognizes none of the n-grams scores absentNgramLogProb.
func scoreLanguage(lang Language, model *languageModel, words []string, lengths []int) float64 {
	var sum float64
	found := false

	for _, l := range lengths {
		data := extractLowerOrderNgrams(words, l)
		for _, ng := range data.ngrams {
			p, ok := backOffFrequency(model, ng)
			if !ok {
				// Unseen n-grams contribute nothing, not a penalty
				// (spec.md §4.11 step 3).
				continue
			}
			sum += math.Log(p)
			found = true
		}
	}
	if !found {
		return absentNgramLogProb
	}

	if count := countRecognizedUnigrams(model, words); count > 0 {
		sum /= float64(count)
	}

	if languageSupportsLogograms(lang) {
		sum *= logogramScoreBonus
	}

	return sum
}

// countRecognizedUnigrams counts the text's distinct unigrams that have a
// nonzero frequency in model, the divisor for step 4's normalisation.
func countRecognizedUnigrams(model *languageModel, words []string) int {
	data := extractLowerOrderNgrams(words, 1)
	n := 0
	for _, ng := range data.ngrams {
		if model.frequency(ng) > 0 {
			n++
		}
	}
	return n
}

// languageSupportsLogograms reports whether lang is written in a script
// whose characters stand in for whole words (Han, Hiragana, Katakana).
func languageSupportsLogograms(lang Language) bool {
	for _, s := range lang.Scripts() {
		if s == ScriptHan || s == ScriptHiragana || s == ScriptKatakana {
			return true
		}
	}
	return false
}

// backOffFrequency walks an n-gram's back-off chain (spec.md §4.11 step
// 3), returning the first nonzero frequency found. ok is false if even
// the unigram is absent, signalling the caller to skip the n-gram
// entirely rather than penalize it.
func backOffFrequency(model *languageModel, ng ngram) (p float64, ok bool) {
	for cur := ng; !cur.isNone(); cur = cur.lowerOrder() {
		if f := model.frequency(cur); f > 0 {
			return f, true
		}
	}
	return 0, false
}

// languageScore pairs a language with its total log-probability, used to
// build the deterministic ranking in rankByConfidence.
type languageScore struct {
	language Language
	score    float64
}

// rankByConfidence orders scores best-first. Ties (equal score, which
// happens routinely when every candidate language lacks the same
// n-gram) are broken by ascending language ordinal, matching
// LanguageSet.Slice's iteration order, so ranking is reproducible across
// runs and across machines (spec.md §8).
func rankByConfidence(scores []languageScore) []languageScore {
	out := append([]languageScore(nil), scores...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].score != out[j].score {
			return out[i].score > out[j].score
		}
		return out[i].language < out[j].language
	})
	return out
}

// relativeDistance computes the gap between the best and second-best
// scores, normalized by the magnitude of the best score, used by
// Builder's MinimumRelativeDistance ambiguity threshold (spec.md §4.11
// step 5). Log-probabilities are negative, so the gap is divided by the
// best score's magnitude; two similarly-confident languages produce a
// small relativeDistance.
func relativeDistance(best, second languageScore) float64 {
	if best.score == 0 {
		return 0
	}
	return (best.score - second.score) / math.Abs(best.score)
}

// confidenceValues turns ranked log-probability scores into spec.md
// §4.11 step 5's confidence values: Confidence(L) = M / score(L), where M
// is the best (least negative) score. The top language's confidence is
// exactly 1.0; every other candidate's is at most 1.0, and below it unless
// its score ties M.
//
// A lone candidate (the rule-based filter already decided, or only one
// language was configured) is always fully confident regardless of its
// placeholder score. A zero best score makes the ratio undefined, so
// every candidate is reported as having no confidence rather than
// dividing by zero.
func confidenceValues(ranked []languageScore) map[Language]float64 {
	out := make(map[Language]float64, len(ranked))
	if len(ranked) == 0 {
		return out
	}
	if len(ranked) == 1 {
		out[ranked[0].language] = 1.0
		return out
	}

	best := ranked[0].score
	if best == 0 {
		for _, s := range ranked {
			out[s.language] = 0
		}
		return out
	}
	for _, s := range ranked {
		if s.score == 0 {
			out[s.language] = 0
			continue
		}
		out[s.language] = best / s.score
	}
	return out
}
