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

import "unicode"

// logogramWeight is the weight a logogram word contributes to a script's
// tally (spec.md §4.10 step 1): Han, Hiragana and Katakana characters are
// each their own "word" with no spaces to separate them, so counting them
// at full word weight would bias the tally towards logographic text
// whenever it is mixed with alphabetic text.
const logogramWeight = 0.7

// dominantScriptMargin is how close a runner-up script's tally must be to
// the top script's to also count as dominant (spec.md §4.10 step 1): a
// paragraph that mixes two scripts almost evenly should narrow candidates
// by both, not arbitrarily pick whichever script happened to edge ahead.
const dominantScriptMargin = 0.8

// unknownZeroThreshold is the share of per-word weight that must be
// credited to no language at all before that uncertainty is allowed to
// override an otherwise clear per-word vote (spec.md §4.10 step 5).
const unknownZeroThreshold = 0.4

// runnerUpMargin is how close the second-place language's per-word vote
// must be to the winner's before the decision backs off to UNKNOWN rather
// than commit to a close call (spec.md §4.10 step 5).
const runnerUpMargin = 0.8

// disambiguationWordThreshold is the fraction of a text's words that must
// carry a hint towards one candidate subset before the fixed
// disambiguation-character table (spec.md §4.10 step 6) is trusted to
// narrow the result.
const disambiguationWordThreshold = 0.5

// ruleBasedFilter applies the rule-based pre-filter described in
// spec.md §4.10: a per-word dominant-script tally, a unique-character vote
// taken one word at a time, and a last-resort disambiguation-table pass.
// It returns decided=true when the rules alone settle the answer (a
// single-script word, a clear per-word vote, or a disambiguation table hit
// that narrows to one language); otherwise it returns the narrowed
// candidate set for the statistical scorer to work from.
func ruleBasedFilter(words []string, candidates LanguageSet) (lang Language, decided bool, narrowed LanguageSet) {
	dominant, hasLetters := dominantScripts(words)
	if !hasLetters {
		// Unique characters that are not letters (Spanish '¿', '¡') can
		// still settle the answer through the disambiguation table.
		if hinted, ok := disambiguateByCharacterTable(words, candidates); ok && hinted.Len() == 1 {
			return hinted.Slice()[0], true, hinted
		}
		return Unknown, true, candidates
	}

	working := restrictToScripts(candidates, dominant)
	if working.IsEmpty() {
		working = candidates
	}

	scores, unknownCount, total := scoreWordsByUniqueCharacters(words, working)
	if vote, ok := decideWordVote(scores, unknownCount, total); ok {
		if vote != Unknown {
			return vote, true, NewLanguageSet(vote)
		}
		if hinted, ok := disambiguateByCharacterTable(words, working); ok {
			if hinted.Len() == 1 {
				return hinted.Slice()[0], true, hinted
			}
			return Unknown, false, hinted
		}
		return Unknown, true, working
	}

	// No per-word evidence either way: leave the decision to statistical
	// scoring over the script-narrowed candidates, after one more try at
	// the disambiguation table.
	if hinted, ok := disambiguateByCharacterTable(words, working); ok {
		if hinted.Len() == 1 {
			return hinted.Slice()[0], true, hinted
		}
		return Unknown, false, hinted
	}
	return Unknown, false, working
}

// dominantScripts tallies each word's script against logogramWeight (step
// 1): a word counts towards a script only if every letter in it belongs to
// that script; mixed-script words contribute nothing, since they give no
// clean signal either way. It returns the top script together with any
// other script within dominantScriptMargin of it, and false if the text
// has no recognized letters at all.
func dominantScripts(words []string) (map[Script]struct{}, bool) {
	weight := make(map[Script]float64)
	for _, w := range words {
		s, uniform, logogram := uniformScript(w)
		if !uniform {
			continue
		}
		wt := 1.0
		if logogram {
			wt = logogramWeight
		}
		weight[s] += wt
	}
	if len(weight) == 0 {
		return nil, false
	}

	top := 0.0
	for _, w := range weight {
		if w > top {
			top = w
		}
	}
	dominant := make(map[Script]struct{})
	for s, w := range weight {
		if w >= dominantScriptMargin*top {
			dominant[s] = struct{}{}
		}
	}
	return dominant, true
}

// uniformScript reports the single script every letter in w belongs to,
// and whether w is in fact uniform. A word containing no letters, letters
// from more than one script, or letters outside the closed script set is
// not uniform.
func uniformScript(w string) (s Script, uniform bool, logogram bool) {
	found := ScriptUnknown
	for _, r := range w {
		if !unicode.IsLetter(r) {
			continue
		}
		rs := scriptOf(r)
		if rs == ScriptUnknown {
			return ScriptUnknown, false, false
		}
		if found == ScriptUnknown {
			found = rs
		} else if found != rs {
			return ScriptUnknown, false, false
		}
	}
	if found == ScriptUnknown {
		return ScriptUnknown, false, false
	}
	return found, true, isLogogram([]rune(w)[0])
}

// restrictToScripts narrows candidates to those whose script set
// intersects any of dominant (step 2).
func restrictToScripts(candidates LanguageSet, dominant map[Script]struct{}) LanguageSet {
	var out LanguageSet
	for _, l := range candidates.Slice() {
		for _, s := range l.Scripts() {
			if _, ok := dominant[s]; ok {
				out = out.Add(l)
				break
			}
		}
	}
	return out
}

// exclusiveLanguageForScript reports the one language in langs that uses
// s, if langs contains exactly one such language.
func exclusiveLanguageForScript(langs LanguageSet, s Script) (Language, bool) {
	var only Language
	count := 0
	for _, l := range langs.Slice() {
		for _, ls := range l.Scripts() {
			if ls == s {
				only = l
				count++
				break
			}
		}
	}
	if count == 1 {
		return only, true
	}
	return Unknown, false
}

// scoreWordsByUniqueCharacters runs steps 3 and 4: for each word, every
// character either exclusively identifies one language already in working
// by its script (a script only one candidate uses, or Han/Hiragana/
// Katakana pointing at Chinese/Japanese) or is looked up in the
// disambiguation table. A word is credited to whichever language its
// characters pointed at most, with ties credited to no one (the UNKNOWN
// counter); a word with no signal at all is skipped entirely.
func scoreWordsByUniqueCharacters(words []string, working LanguageSet) (scores map[Language]float64, unknownCount, total float64) {
	scores = make(map[Language]float64)

	for _, w := range words {
		hits := make(map[Language]int)
		for _, r := range w {
			if !unicode.IsLetter(r) {
				continue
			}
			switch s := scriptOf(r); {
			case s == ScriptHan:
				if working.Contains(Chinese) {
					hits[Chinese]++
				}
			case s == ScriptHiragana || s == ScriptKatakana:
				if working.Contains(Japanese) {
					hits[Japanese]++
				}
			case s == ScriptLatin || s == ScriptCyrillic || s == ScriptDevanagari:
				if only, ok := exclusiveLanguageForScript(working, s); ok {
					hits[only]++
					continue
				}
				if set, ok := charToLanguages[r]; ok {
					for _, l := range set.Intersect(working).Slice() {
						hits[l]++
					}
				}
			default:
				if only, ok := exclusiveLanguageForScript(working, s); ok {
					hits[only]++
				}
			}
		}

		if len(hits) == 0 {
			continue
		}

		weight := 1.0
		if len([]rune(w)) == 1 && isLogogram([]rune(w)[0]) {
			weight = logogramWeight
		}
		total += weight

		best, bestCount, tied := Unknown, 0, false
		for l, c := range hits {
			switch {
			case c > bestCount:
				best, bestCount, tied = l, c, false
			case c == bestCount:
				tied = true
			}
		}
		if tied {
			unknownCount += weight
			continue
		}
		scores[best] += weight
	}

	return scores, unknownCount, total
}

// decideWordVote implements step 5's decision table. ok is false when
// there is no per-word evidence at all (total == 0), signalling the
// caller to fall through to statistical scoring rather than force an
// UNKNOWN verdict on text the rules simply had nothing to say about.
func decideWordVote(scores map[Language]float64, unknownCount, total float64) (Language, bool) {
	if total == 0 {
		return Unknown, false
	}
	if unknownCount < unknownZeroThreshold*total {
		unknownCount = 0
	}
	if unknownCount > 0 {
		return Unknown, true
	}

	ranked := make([]languageScore, 0, len(scores))
	for l, s := range scores {
		ranked = append(ranked, languageScore{language: l, score: s})
	}
	ranked = rankByConfidence(ranked)

	switch len(ranked) {
	case 0:
		return Unknown, true
	case 1:
		return ranked[0].language, true
	case 2:
		pair := NewLanguageSet(ranked[0].language, ranked[1].language)
		if pair.Contains(Chinese) && pair.Contains(Japanese) {
			return Japanese, true
		}
	}

	top, second := ranked[0], ranked[1]
	if second.score >= runnerUpMargin*top.score {
		return Unknown, true
	}
	return top.language, true
}
