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
	"testing"

	"github.com/stretchr/testify/assert"
)

// wordsOf is a test helper: clean and split text the same way Detect
// does, so rule-filter tests exercise it with the same input shape.
func wordsOf(text string) []string {
	return splitIntoWords(cleanUpInputText(text))
}

func TestRuleBasedFilterNoLettersIsUnknown(t *testing.T) {
	lang, decided, _ := ruleBasedFilter(wordsOf(""), AllLanguageSet())
	assert.True(t, decided)
	assert.Equal(t, Unknown, lang)
}

func TestRuleBasedFilterSingleAlphabetScriptIsDecisive(t *testing.T) {
	// Greek is the only catalogue language written in the Greek script.
	lang, decided, narrowed := ruleBasedFilter(wordsOf("ελληνικά"), AllLanguageSet())
	assert.True(t, decided)
	assert.Equal(t, Greek, lang)
	assert.True(t, narrowed.Contains(Greek))
	assert.Equal(t, 1, narrowed.Len())
}

func TestRuleBasedFilterHanWithoutKanaIsChinese(t *testing.T) {
	lang, decided, _ := ruleBasedFilter(wordsOf("上海大学是一个好大学"), NewLanguageSet(Chinese, Japanese))
	assert.True(t, decided)
	assert.Equal(t, Chinese, lang)
}

func TestRuleBasedFilterHanWithKanaIsJapanese(t *testing.T) {
	lang, decided, _ := ruleBasedFilter(wordsOf("これは日本語です"), NewLanguageSet(Chinese, Japanese))
	assert.True(t, decided)
	assert.Equal(t, Japanese, lang)
}

func TestRuleBasedFilterUniqueCharacterNarrowsToOneLanguage(t *testing.T) {
	lang, decided, _ := ruleBasedFilter(wordsOf("məhərrəm"), NewLanguageSet(Azerbaijani, English, German))
	assert.True(t, decided)
	assert.Equal(t, Azerbaijani, lang)
}

func TestRuleBasedFilterGermanEszettNarrowsToOneLanguage(t *testing.T) {
	lang, decided, _ := ruleBasedFilter(wordsOf("straße"), NewLanguageSet(German, English, French))
	assert.True(t, decided)
	assert.Equal(t, German, lang)
}

func TestRuleBasedFilterAmbiguousLatinTextIsNotDecided(t *testing.T) {
	_, decided, narrowed := ruleBasedFilter(wordsOf("cat dog run"), NewLanguageSet(English, German, French))
	assert.False(t, decided)
	assert.True(t, narrowed.Contains(English))
	assert.True(t, narrowed.Contains(German))
	assert.True(t, narrowed.Contains(French))
}

func TestRuleBasedFilterConflictingWordVotesFallBackToDisambiguationTable(t *testing.T) {
	// One word hints German ('ß'), the other Azerbaijani ('ə'): the
	// per-word vote splits exactly down the middle, so step 5 backs off
	// to UNKNOWN on the runner-up margin check, and step 6's table
	// narrows the candidates without fully deciding (each word passes
	// the 50%-of-words threshold, but the two hints never overlap).
	_, decided, narrowed := ruleBasedFilter(wordsOf("straße məhərrəm"), NewLanguageSet(German, Azerbaijani, English))
	assert.False(t, decided)
	assert.True(t, narrowed.Contains(German))
	assert.True(t, narrowed.Contains(Azerbaijani))
	assert.False(t, narrowed.Contains(English))
}

// catalogDuplicateUniqueCharacters lists characters that deliberately
// belong to more than one language's unique-character string (the table
// charToLanguages builds from catalog[lang].unique is many-to-many, not
// strictly one owner per character), so they cannot be swept for a single
// expected winner.
var catalogDuplicateUniqueCharacters = map[rune]struct{}{
	'ę': {}, 'Ę': {},
	'ẹ': {}, 'ọ': {},
}

// TestRuleBasedFilterSingleWordRuleCoversEveryUniqueCharacter sweeps
// spec.md §8 testable property 4: for every character in every catalogue
// language's unique-character string, a single word made up of just that
// character resolves, via the rule-based filter alone, to the owning
// language.
func TestRuleBasedFilterSingleWordRuleCoversEveryUniqueCharacter(t *testing.T) {
	for _, owner := range AllLanguages() {
		for _, r := range catalog[owner].unique {
			if _, dup := catalogDuplicateUniqueCharacters[r]; dup {
				continue
			}
			lang, decided, _ := ruleBasedFilter([]string{string(r)}, AllLanguageSet())
			assert.Truef(t, decided, "character %q (owner %s) did not decide", r, owner)
			assert.Equalf(t, owner, lang, "character %q", r)
		}
	}
}
