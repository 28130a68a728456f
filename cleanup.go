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
	"strings"
	"unicode"
)

// cleanUpInputText prepares raw text for extraction and word splitting
// (spec.md §4.8): collapse runs of whitespace to a single space, trim
// the ends, lowercase, and drop characters that carry no language signal
// (digits and punctuation), so neither digits nor mixed case or stray
// punctuation perturb n-gram counts.
func cleanUpInputText(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lastWasSpace := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			if !lastWasSpace && b.Len() > 0 {
				b.WriteByte(' ')
				lastWasSpace = true
			}
		case unicode.IsDigit(r):
			// dropped entirely, not replaced with a space
		case isCleanupPunctuation(r):
			// dropped entirely, not replaced with a space
		default:
			b.WriteRune(unicode.ToLower(r))
			lastWasSpace = false
		}
	}

	return strings.TrimRight(b.String(), " ")
}

// isCleanupPunctuation reports whether r is punctuation or a symbol that
// should be stripped before n-gram extraction. Unicode's general
// punctuation and symbol categories cover this without an explicit
// table.
func isCleanupPunctuation(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
