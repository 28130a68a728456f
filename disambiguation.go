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

// charToLanguages maps a rune that is a unique character of exactly one
// or a small handful of languages (catalog's UniqueCharacters, spec.md
// §4.10) to the set of languages it can indicate. Built once at init
// time from the language catalogue rather than hand-maintained
// separately from it, so the two tables cannot drift apart.
var charToLanguages map[rune]LanguageSet

func init() {
	charToLanguages = make(map[rune]LanguageSet)
	for _, lang := range AllLanguages() {
		for _, r := range catalog[lang].unique {
			charToLanguages[r] = charToLanguages[r].Add(lang)
		}
	}
}

// disambiguateByCharacterTable implements spec.md §4.10 step 6's
// fallback: a word counts as "hinting" at a language subset if any of its
// characters appears in charToLanguages, regardless of how many times
// that character repeats within the word. A candidate subset only
// survives if it was hinted at by at least disambiguationWordThreshold of
// the text's words; this is deliberately a coarser, word-presence vote
// rather than step 3/4's per-character strict-max tiebreak, since by the
// time control reaches here that finer-grained vote has already failed to
// produce a decision.
func disambiguateByCharacterTable(words []string, working LanguageSet) (LanguageSet, bool) {
	if len(words) == 0 {
		return working, false
	}

	hintedWords := 0
	var hinted LanguageSet
	for _, w := range words {
		seen := make(map[Language]struct{})
		wordHinted := false
		for _, r := range w {
			set, ok := charToLanguages[r]
			if !ok {
				continue
			}
			for _, l := range set.Intersect(working).Slice() {
				if _, dup := seen[l]; dup {
					continue
				}
				seen[l] = struct{}{}
				hinted = hinted.Add(l)
				wordHinted = true
			}
		}
		if wordHinted {
			hintedWords++
		}
	}

	if hintedWords == 0 {
		return working, false
	}
	if float64(hintedWords) < disambiguationWordThreshold*float64(len(words)) {
		return working, false
	}

	narrowed := hinted.Intersect(working)
	if narrowed.IsEmpty() {
		return working, false
	}
	return narrowed, true
}
