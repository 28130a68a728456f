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

// trieU32Map is the three-layer trie encoding spec.md §4.3 describes for
// u32-keyed maps, grounded on the same two-level top/bottom split as the
// teacher's arrayNgramOffset (splitting a key into independently
// searchable halves) combined with the teacher's b-tree bucket-and-scan
// idea of indexing into a shared array rather than nesting real subtrees.
//
// A key is split into a first byte, a second byte, and a 16-bit
// remainder. The first-byte layer is small and kept exact (a real index
// per entry). The second-byte layer instead stores an *estimated*
// starting offset into a shared remainder array, as a signed delta from
// a formula, plus the bucket size — both packed into one u32 — which is
// cheaper than storing a full offset per second-layer entry.
type trieU32Map struct {
	firstBytes       []uint8
	firstGlobalIndex []int32 // exact start of this first byte's keys in remainders

	// seconds[i] and searchData[i] are parallel, sorted by second byte,
	// one entry per distinct second byte under firstBytes[i].
	seconds    [][]uint8
	searchData [][]uint32 // packed (18-bit signed offset delta, 14-bit size)

	remainders []uint16 // shared across the whole map, keys' sorted order

	indirect bool
	direct   []uint32
	indices  []uint16
	values   []uint32
}

func packSearchData(offsetDelta int32, size int) uint32 {
	off18 := uint32(offsetDelta) & 0x3FFFF
	sz14 := uint32(size) & 0x3FFF
	return (off18 << 14) | sz14
}

func unpackSearchData(packed uint32) (offsetDelta int32, size int) {
	size = int(packed & 0x3FFF)
	off18 := (packed >> 14) & 0x3FFFF
	if off18&0x20000 != 0 {
		offsetDelta = int32(off18 | 0xFFFC0000)
	} else {
		offsetDelta = int32(off18)
	}
	return offsetDelta, size
}

// buildTrieU32Map builds a trieU32Map from ascending, duplicate-free
// keys. freqs is parallel to keys.
func buildTrieU32Map(keys []uint32, freqs []uint32) (trieU32Map, error) {
	for i := 1; i < len(keys); i++ {
		if keys[i] == keys[i-1] {
			return trieU32Map{}, ErrModelCorrupt
		}
	}

	m := trieU32Map{remainders: make([]uint16, len(keys))}
	for i, k := range keys {
		m.remainders[i] = uint16(k)
	}

	// Group by first byte, preserving sorted order.
	type secondGroup struct {
		second uint8
		start  int
		size   int
	}
	var firstBytes []uint8
	var firstStart []int
	var perFirstSeconds [][]secondGroup

	i := 0
	for i < len(keys) {
		fb := uint8(keys[i] >> 24)
		start := i
		var groups []secondGroup
		for i < len(keys) && uint8(keys[i]>>24) == fb {
			sb := uint8(keys[i] >> 16)
			gstart := i
			for i < len(keys) && uint8(keys[i]>>24) == fb && uint8(keys[i]>>16) == sb {
				i++
			}
			groups = append(groups, secondGroup{second: sb, start: gstart, size: i - gstart})
		}
		firstBytes = append(firstBytes, fb)
		firstStart = append(firstStart, start)
		perFirstSeconds = append(perFirstSeconds, groups)
	}

	firstSize := len(firstBytes)
	avgPerFirst := 0.0
	if firstSize > 0 {
		avgPerFirst = float64(len(keys)) / float64(firstSize)
	}

	m.firstBytes = firstBytes
	m.firstGlobalIndex = make([]int32, firstSize)
	m.seconds = make([][]uint8, firstSize)
	m.searchData = make([][]uint32, firstSize)

	for fi := range firstBytes {
		m.firstGlobalIndex[fi] = int32(firstStart[fi])
		groups := perFirstSeconds[fi]
		secondSize := len(groups)
		seconds := make([]uint8, secondSize)
		searchData := make([]uint32, secondSize)
		for si, g := range groups {
			seconds[si] = g.second
			denom := math.Max(float64(firstSize), float64(secondSize))
			estimate := float64(m.firstGlobalIndex[fi]) + float64(si)*(avgPerFirst/denom) + float64(secondSize)/2
			delta := int32(g.start) - int32(math.Round(estimate))
			searchData[si] = packSearchData(delta, g.size)
		}
		m.seconds[fi] = seconds
		m.searchData[fi] = searchData
	}

	uniqueIndex := make(map[uint32]int)
	var unique []uint32
	for _, f := range freqs {
		if _, ok := uniqueIndex[f]; !ok {
			uniqueIndex[f] = len(unique)
			unique = append(unique, f)
		}
	}
	sort.Slice(unique, func(a, b int) bool { return unique[a] < unique[b] })
	for idx, v := range unique {
		uniqueIndex[v] = idx
	}

	costDirect := len(keys) * 4
	costIndirect := len(unique)*4 + len(keys)*2
	if len(unique) <= 65536 && costIndirect < costDirect {
		m.indirect = true
		m.values = unique
		m.indices = make([]uint16, len(freqs))
		for idx, f := range freqs {
			m.indices[idx] = uint16(uniqueIndex[f])
		}
	} else {
		m.direct = freqs
	}

	return m, nil
}

func (m *trieU32Map) get(key uint32) uint32 {
	if len(m.firstBytes) == 0 {
		return 0
	}
	fb := uint8(key >> 24)
	fi := sort.Search(len(m.firstBytes), func(i int) bool { return m.firstBytes[i] >= fb })
	if fi == len(m.firstBytes) || m.firstBytes[fi] != fb {
		return 0
	}

	seconds := m.seconds[fi]
	sb := uint8(key >> 16)
	si := sort.Search(len(seconds), func(i int) bool { return seconds[i] >= sb })
	if si == len(seconds) || seconds[si] != sb {
		return 0
	}

	firstSize := len(m.firstBytes)
	secondSize := len(seconds)
	avgPerFirst := float64(len(m.remainders)) / float64(firstSize)
	denom := math.Max(float64(firstSize), float64(secondSize))
	estimate := float64(m.firstGlobalIndex[fi]) + float64(si)*(avgPerFirst/denom) + float64(secondSize)/2

	delta, size := unpackSearchData(m.searchData[fi][si])
	start := int(math.Round(estimate)) + int(delta)
	if start < 0 || start+size > len(m.remainders) {
		return 0
	}

	rem := uint16(key)
	bucket := m.remainders[start : start+size]
	p := sort.Search(len(bucket), func(i int) bool { return bucket[i] >= rem })
	if p == len(bucket) || bucket[p] != rem {
		return 0
	}

	idx := start + p
	if m.indirect {
		return m.values[m.indices[idx]]
	}
	return m.direct[idx]
}

func (m *trieU32Map) sizeBytes() int {
	sz := len(m.firstBytes) + 4*len(m.firstGlobalIndex) + 2*len(m.remainders)
	for i := range m.seconds {
		sz += len(m.seconds[i]) + 4*len(m.searchData[i])
	}
	if m.indirect {
		sz += 2*len(m.indices) + 4*len(m.values)
	} else {
		sz += 4 * len(m.direct)
	}
	return sz
}
