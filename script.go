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
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Script identifies a Unicode script relevant to the rule-based filter.
// It is deliberately a small closed set rather than every script name
// unicode.Scripts knows about: the catalogue in language.go only ever
// references the scripts listed here.
type Script int

const (
	ScriptUnknown Script = iota
	ScriptLatin
	ScriptCyrillic
	ScriptArabic
	ScriptArmenian
	ScriptBengali
	ScriptDevanagari
	ScriptGeorgian
	ScriptGreek
	ScriptGujarati
	ScriptGurmukhi
	ScriptHan
	ScriptHangul
	ScriptHebrew
	ScriptHiragana
	ScriptKatakana
	ScriptTamil
	ScriptTelugu
	ScriptThai
)

var scriptNames = map[Script]string{
	ScriptLatin:      "Latin",
	ScriptCyrillic:   "Cyrillic",
	ScriptArabic:     "Arabic",
	ScriptArmenian:   "Armenian",
	ScriptBengali:    "Bengali",
	ScriptDevanagari: "Devanagari",
	ScriptGeorgian:   "Georgian",
	ScriptGreek:      "Greek",
	ScriptGujarati:   "Gujarati",
	ScriptGurmukhi:   "Gurmukhi",
	ScriptHan:        "Han",
	ScriptHangul:     "Hangul",
	ScriptHebrew:     "Hebrew",
	ScriptHiragana:   "Hiragana",
	ScriptKatakana:   "Katakana",
	ScriptTamil:      "Tamil",
	ScriptTelugu:     "Telugu",
	ScriptThai:       "Thai",
}

func (s Script) String() string {
	if n, ok := scriptNames[s]; ok {
		return n
	}
	return "Unknown"
}

// rangeTables resolves each Script to the stdlib unicode.RangeTable that
// backs membership tests, built once at init time.
var rangeTables map[Script]*unicode.RangeTable

// logogramTable is the union of the scripts that form one-character words
// (spec.md §4.9, §4.10): Han, Hiragana, Katakana. Built with
// golang.org/x/text/unicode/rangetable.Merge the way a combined range is
// built once instead of testing three tables on every rune.
var logogramTable *unicode.RangeTable

func init() {
	rangeTables = map[Script]*unicode.RangeTable{
		ScriptLatin:      unicode.Latin,
		ScriptCyrillic:   unicode.Cyrillic,
		ScriptArabic:     unicode.Arabic,
		ScriptArmenian:   unicode.Armenian,
		ScriptBengali:    unicode.Bengali,
		ScriptDevanagari: unicode.Devanagari,
		ScriptGeorgian:   unicode.Georgian,
		ScriptGreek:      unicode.Greek,
		ScriptGujarati:   unicode.Gujarati,
		ScriptGurmukhi:   unicode.Gurmukhi,
		ScriptHan:        unicode.Han,
		ScriptHangul:     unicode.Hangul,
		ScriptHebrew:     unicode.Hebrew,
		ScriptHiragana:   unicode.Hiragana,
		ScriptKatakana:   unicode.Katakana,
		ScriptTamil:      unicode.Tamil,
		ScriptTelugu:     unicode.Telugu,
		ScriptThai:       unicode.Thai,
	}

	logogramTable = rangetable.Merge(unicode.Han, unicode.Hiragana, unicode.Katakana)
}

// scriptOf returns the script of r, or ScriptUnknown if r does not belong
// to any script in the closed set above (e.g. digits, punctuation).
func scriptOf(r rune) Script {
	for _, s := range scriptOrder {
		if unicode.Is(rangeTables[s], r) {
			return s
		}
	}
	return ScriptUnknown
}

// scriptOrder fixes iteration order for scriptOf. The order only affects
// tie-breaking when a rune belongs to more than one table, which does not
// happen for the scripts tracked here.
var scriptOrder = []Script{
	ScriptLatin, ScriptCyrillic, ScriptArabic, ScriptArmenian, ScriptBengali,
	ScriptDevanagari, ScriptGeorgian, ScriptGreek, ScriptGujarati, ScriptGurmukhi,
	ScriptHan, ScriptHangul, ScriptHebrew, ScriptHiragana, ScriptKatakana,
	ScriptTamil, ScriptTelugu, ScriptThai,
}

// isLogogram reports whether r belongs to a script whose characters form
// one-character words on their own (Han, Hiragana, Katakana).
func isLogogram(r rune) bool {
	return unicode.Is(logogramTable, r)
}

// languagesForScript returns every language in langs whose script set
// intersects s.
func languagesForScript(langs []Language, s Script) []Language {
	var out []Language
	for _, l := range langs {
		for _, ls := range l.Scripts() {
			if ls == s {
				out = append(out, l)
				break
			}
		}
	}
	return out
}
