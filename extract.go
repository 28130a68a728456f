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

// testDataModel is the deduplicated set of n-grams of one order extracted
// from the text under test (spec.md §4.6). Each distinct n-gram appears
// once for the whole text, regardless of how many times or in how many
// words it repeats.
type testDataModel struct {
	order  int
	ngrams []ngram
}

// extractLowerOrderNgrams slides a window of the given order across each
// word's runes, never crossing a word boundary, and deduplicates the
// result. order must be in [1,5]; words shorter than order contribute no
// n-grams of that order.
func extractLowerOrderNgrams(words []string, order int) testDataModel {
	seen := make(map[string]struct{})
	model := testDataModel{order: order}

	for _, w := range words {
		r := []rune(w)
		if len(r) < order {
			continue
		}
		for i := 0; i+order <= len(r); i++ {
			chars := r[i : i+order]
			key := string(chars)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			model.ngrams = append(model.ngrams, newNgramFromChars(append([]rune(nil), chars...)))
		}
	}

	return model
}
