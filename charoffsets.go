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

import "sort"

// charOffsets is the per-language mapping from characters used in that
// language's n-grams to small ascending integer offsets (spec.md §4.1).
// It is the basis for the narrow n-gram packings in ngram.go: encoding a
// character as its offset instead of its rune keeps keys inside u8/u16
// instead of forcing every map to u32 or wider.
//
// chars is sorted ascending by code point so offset() can binary search
// it; offsets is the parallel assignment, built in descending-frequency
// order at construction time but stored here in chars' sort order.
type charOffsets struct {
	chars   []rune
	offsets []uint16
}

// maxCharOffsetChars is the hard ceiling from spec.md §4.1: an offset
// table can address at most 65535 distinct characters, since offsets are
// stored as u16 and 0xFFFF is not a valid assigned offset once the
// "absent" convention below is accounted for.
const maxCharOffsetChars = 65535

// buildCharOffsets counts character occurrences across every key of every
// supplied frequency map, assigns ascending offsets in order of
// (count descending, code point ascending), and returns the resulting
// table sorted by code point for lookup.
func buildCharOffsets(ngramSources ...[]string) (charOffsets, error) {
	counts := make(map[rune]int)
	for _, src := range ngramSources {
		for _, ng := range src {
			for _, r := range ng {
				counts[r]++
			}
		}
	}

	type countedChar struct {
		r     rune
		count int
	}
	ordered := make([]countedChar, 0, len(counts))
	for r, c := range counts {
		ordered = append(ordered, countedChar{r, c})
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].count != ordered[j].count {
			return ordered[i].count > ordered[j].count
		}
		return ordered[i].r < ordered[j].r
	})

	if len(ordered) > maxCharOffsetChars {
		return charOffsets{}, ErrModelCorrupt
	}

	assigned := make(map[rune]uint16, len(ordered))
	for i, cc := range ordered {
		assigned[cc.r] = uint16(i)
	}

	chars := make([]rune, 0, len(assigned))
	for r := range assigned {
		chars = append(chars, r)
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })

	offsets := make([]uint16, len(chars))
	for i, r := range chars {
		offsets[i] = assigned[r]
	}

	return charOffsets{chars: chars, offsets: offsets}, nil
}

// offsetAbsent is returned by offset() for a character outside the table.
const offsetAbsent = -1

// offset returns the small integer offset assigned to c, or offsetAbsent
// if c never occurred in the n-grams this table was built from.
func (t *charOffsets) offset(c rune) int {
	n := len(t.chars)
	i := sort.Search(n, func(i int) bool { return t.chars[i] >= c })
	if i == n || t.chars[i] != c {
		return offsetAbsent
	}
	return int(t.offsets[i])
}

// size returns the number of characters in the table.
func (t *charOffsets) size() int { return len(t.chars) }
