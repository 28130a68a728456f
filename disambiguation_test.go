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

func TestExclusiveLanguageForScriptFindsTheOnlyOwner(t *testing.T) {
	only, ok := exclusiveLanguageForScript(NewLanguageSet(Greek, English), ScriptGreek)
	assert.True(t, ok)
	assert.Equal(t, Greek, only)
}

func TestExclusiveLanguageForScriptFalseWhenShared(t *testing.T) {
	_, ok := exclusiveLanguageForScript(NewLanguageSet(German, English, French), ScriptLatin)
	assert.False(t, ok)
}

func TestDisambiguateByCharacterTableNarrows(t *testing.T) {
	candidates := NewLanguageSet(German, English, French)
	narrowed, ok := disambiguateByCharacterTable([]string{"straße"}, candidates)
	assert.True(t, ok)
	assert.Equal(t, NewLanguageSet(German).Slice(), narrowed.Slice())
}

func TestDisambiguateByCharacterTableNoHint(t *testing.T) {
	candidates := NewLanguageSet(English, French)
	narrowed, ok := disambiguateByCharacterTable([]string{"hello", "there"}, candidates)
	assert.False(t, ok)
	assert.Equal(t, candidates.Slice(), narrowed.Slice())
}

func TestDisambiguateByCharacterTableIgnoresHintOutsideCandidates(t *testing.T) {
	// ß is German-unique, but German is not a candidate here.
	candidates := NewLanguageSet(English, French)
	narrowed, ok := disambiguateByCharacterTable([]string{"straße"}, candidates)
	assert.False(t, ok)
	assert.Equal(t, candidates.Slice(), narrowed.Slice())
}

func TestDisambiguateByCharacterTableRequiresHalfTheWordsHinted(t *testing.T) {
	// Only one of four words carries a hint character: below the 50%
	// threshold, so the candidate set is left untouched.
	candidates := NewLanguageSet(German, English, French)
	words := []string{"we", "went", "to", "straße"}
	narrowed, ok := disambiguateByCharacterTable(words, candidates)
	assert.False(t, ok)
	assert.Equal(t, candidates.Slice(), narrowed.Slice())
}

func TestDisambiguateByCharacterTableNarrowsWhenEveryWordIsHinted(t *testing.T) {
	// Both words carry the German-only 'ß', so every word is hinted and
	// the 50% word threshold is met.
	candidates := NewLanguageSet(German, English)
	words := []string{"straße", "maß"}
	narrowed, ok := disambiguateByCharacterTable(words, candidates)
	assert.True(t, ok)
	assert.Equal(t, NewLanguageSet(German).Slice(), narrowed.Slice())
}
