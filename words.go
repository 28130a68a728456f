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

import "strings"

// splitIntoWords splits already-cleaned text on spaces (spec.md §4.9),
// except that every logogram character (Han, Hiragana, Katakana) is
// treated as a one-character word of its own: those scripts have no
// word-separating spaces, so a space-only split would merge an entire
// logographic sentence into a single "word".
func splitIntoWords(text string) []string {
	var words []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}

	for _, r := range text {
		switch {
		case r == ' ':
			flush()
		case isLogogram(r):
			flush()
			words = append(words, string(r))
		default:
			cur.WriteRune(r)
		}
	}
	flush()

	return words
}
