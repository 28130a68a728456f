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

// UniBiTrigram is the frequency lookup facade for n-grams of length 1-3
// (spec.md §4.4). It owns its own charOffsets table, built from only the
// uni/bi/trigram populations, which is why a language's uni-bi-trigram
// and quadri-fivegram lookups each carry their own copy of an offsets
// table rather than sharing one (spec.md §3 Ownership note).
type UniBiTrigram struct {
	offsets charOffsets

	uni8  encodedMap[uint8]
	uni16 encodedMap[uint16]
	bi16  encodedMap[uint16]
	bi32  trieU32Map
	tri16 encodedMap[uint16]
	tri32 trieU32Map
	tri64 encodedMap[uint64]
}

// frequency returns the relative frequency of the n-gram chars (length
// 1-3), 0 if unseen or too long for this facade.
func (l *UniBiTrigram) frequency(chars []rune) float64 {
	if len(chars) == 0 || len(chars) > 3 {
		return 0
	}
	key, ok := encodeNgram(&l.offsets, chars)
	if !ok {
		return 0
	}
	switch len(chars) {
	case 1:
		if key.width == widthU8 {
			return decodeFrequency(l.uni8.get(key.u8))
		}
		return decodeFrequency(l.uni16.get(key.u16))
	case 2:
		if key.width == widthU16 {
			return decodeFrequency(l.bi16.get(key.u16))
		}
		return decodeFrequency(l.bi32.get(key.u32))
	case 3:
		switch key.width {
		case widthU16:
			return decodeFrequency(l.tri16.get(key.u16))
		case widthU32:
			return decodeFrequency(l.tri32.get(key.u32))
		default:
			return decodeFrequency(l.tri64.get(key.u64))
		}
	}
	return 0
}

func (l *UniBiTrigram) sizeBytes() int {
	return l.uni8.sizeBytes() + l.uni16.sizeBytes() + l.bi16.sizeBytes() +
		l.bi32.sizeBytes() + l.tri16.sizeBytes() + l.tri32.sizeBytes() + l.tri64.sizeBytes()
}

// QuadriFivegram is the frequency lookup facade for n-grams of length 4-5.
// ModelHolder.Load reads it from disk together with the language's
// UniBiTrigram, in the same call.
type QuadriFivegram struct {
	offsets charOffsets

	quad16 encodedMap[uint16]
	quad32 trieU32Map
	quad64 encodedMap[uint64]
	five32 trieU32Map
	five64 encodedMap[uint64]
	five5  fiveCharMap
}

func (l *QuadriFivegram) frequency(chars []rune) float64 {
	if len(chars) != 4 && len(chars) != 5 {
		return 0
	}
	key, ok := encodeNgram(&l.offsets, chars)
	if !ok {
		return 0
	}
	if len(chars) == 4 {
		switch key.width {
		case widthU16:
			return decodeFrequency(l.quad16.get(key.u16))
		case widthU32:
			return decodeFrequency(l.quad32.get(key.u32))
		default:
			return decodeFrequency(l.quad64.get(key.u64))
		}
	}
	switch key.width {
	case widthU32:
		return decodeFrequency(l.five32.get(key.u32))
	case widthU64:
		return decodeFrequency(l.five64.get(key.u64))
	default:
		return decodeFrequency(l.five5.get(key.s5))
	}
}

func (l *QuadriFivegram) sizeBytes() int {
	return l.quad16.sizeBytes() + l.quad32.sizeBytes() + l.quad64.sizeBytes() +
		l.five32.sizeBytes() + l.five64.sizeBytes() + l.five5.sizeBytes()
}

// ngramFrequencies is the build-time input shared by both facade
// builders below: a map from n-gram text to its encoded frequency,
// grouped by length before charOffsets and the per-width maps are built.
type ngramFrequencies map[string]uint32

func bucketByLength(freqs ngramFrequencies, lengths ...int) map[int]ngramFrequencies {
	out := make(map[int]ngramFrequencies, len(lengths))
	for _, l := range lengths {
		out[l] = make(ngramFrequencies)
	}
	for ng, f := range freqs {
		n := len([]rune(ng))
		if _, ok := out[n]; ok {
			out[n][ng] = f
		}
	}
	return out
}

// buildUniBiTrigram builds a UniBiTrigram lookup from raw n-gram text to
// encoded-frequency maps for lengths 1-3. Missing lengths (e.g. Chinese
// has no latin-style uni/bigrams in the shipped data, per spec.md §9a)
// simply produce empty maps, which frequency() treats as always-0
// without error.
func buildUniBiTrigram(freqs ngramFrequencies) (*UniBiTrigram, error) {
	byLen := bucketByLength(freqs, 1, 2, 3)

	var allKeys []string
	for _, m := range byLen {
		for k := range m {
			allKeys = append(allKeys, k)
		}
	}
	offsets, err := buildCharOffsets(allKeys)
	if err != nil {
		return nil, err
	}

	l := &UniBiTrigram{offsets: offsets}

	type bucket struct {
		u8s, u16s     []uint8
		u16vals       []uint32
		u16sForU16    []uint16
		u16for16vals  []uint32
		u32s          []uint32
		u32vals       []uint32
		u64s          []uint64
		u64vals       []uint32
	}
	_ = bucket{} // documents the shape; buckets are built inline below per length.

	encodeAndSplit := func(m ngramFrequencies) (u8k []uint8, u8v []uint32, u16k []uint16, u16v []uint32, u32k []uint32, u32v []uint32, u64k []uint64, u64v []uint32) {
		type pair struct {
			key  encodedKey
			freq uint32
		}
		var pairs []pair
		for ng, f := range m {
			chars := []rune(ng)
			key, ok := encodeNgram(&offsets, chars)
			if !ok {
				continue
			}
			pairs = append(pairs, pair{key, f})
		}
		for _, p := range pairs {
			switch p.key.width {
			case widthU8:
				u8k = append(u8k, p.key.u8)
				u8v = append(u8v, p.freq)
			case widthU16:
				u16k = append(u16k, p.key.u16)
				u16v = append(u16v, p.freq)
			case widthU32:
				u32k = append(u32k, p.key.u32)
				u32v = append(u32v, p.freq)
			case widthU64:
				u64k = append(u64k, p.key.u64)
				u64v = append(u64v, p.freq)
			}
		}
		sortParallelU8(u8k, u8v)
		sortParallelU16(u16k, u16v)
		sortParallelU32(u32k, u32v)
		sortParallelU64(u64k, u64v)
		return
	}

	u8k, u8v, u16k, u16v, _, _, _, _ := encodeAndSplit(byLen[1])
	if l.uni8, err = buildEncodedMap(u8k, u8v); err != nil {
		return nil, err
	}
	if l.uni16, err = buildEncodedMap(u16k, u16v); err != nil {
		return nil, err
	}

	_, _, b16k, b16v, b32k, b32v, _, _ := encodeAndSplit(byLen[2])
	if l.bi16, err = buildEncodedMap(b16k, b16v); err != nil {
		return nil, err
	}
	if l.bi32, err = buildTrieU32Map(b32k, b32v); err != nil {
		return nil, err
	}

	_, _, t16k, t16v, t32k, t32v, t64k, t64v := encodeAndSplit(byLen[3])
	if l.tri16, err = buildEncodedMap(t16k, t16v); err != nil {
		return nil, err
	}
	if l.tri32, err = buildTrieU32Map(t32k, t32v); err != nil {
		return nil, err
	}
	if l.tri64, err = buildEncodedMap(t64k, t64v); err != nil {
		return nil, err
	}

	return l, nil
}

// buildQuadriFivegram mirrors buildUniBiTrigram for lengths 4-5.
func buildQuadriFivegram(freqs ngramFrequencies) (*QuadriFivegram, error) {
	byLen := bucketByLength(freqs, 4, 5)

	var allKeys []string
	for _, m := range byLen {
		for k := range m {
			allKeys = append(allKeys, k)
		}
	}
	offsets, err := buildCharOffsets(allKeys)
	if err != nil {
		return nil, err
	}

	l := &QuadriFivegram{offsets: offsets}

	type fivePair struct {
		key  [5]rune
		freq uint32
	}

	// Quadrigrams: widths u16/u32/u64.
	var q16k []uint16
	var q16v []uint32
	var q32k []uint32
	var q32v []uint32
	var q64k []uint64
	var q64v []uint32
	for ng, f := range byLen[4] {
		chars := []rune(ng)
		key, ok := encodeNgram(&offsets, chars)
		if !ok {
			continue
		}
		switch key.width {
		case widthU16:
			q16k, q16v = append(q16k, key.u16), append(q16v, f)
		case widthU32:
			q32k, q32v = append(q32k, key.u32), append(q32v, f)
		case widthU64:
			q64k, q64v = append(q64k, key.u64), append(q64v, f)
		}
	}
	sortParallelU16(q16k, q16v)
	sortParallelU32(q32k, q32v)
	sortParallelU64(q64k, q64v)
	if l.quad16, err = buildEncodedMap(q16k, q16v); err != nil {
		return nil, err
	}
	if l.quad32, err = buildTrieU32Map(q32k, q32v); err != nil {
		return nil, err
	}
	if l.quad64, err = buildEncodedMap(q64k, q64v); err != nil {
		return nil, err
	}

	// Fivegrams: widths u32/u64/string5.
	var f32k []uint32
	var f32v []uint32
	var f64k []uint64
	var f64v []uint32
	var f5 []fivePair
	for ng, f := range byLen[5] {
		chars := []rune(ng)
		key, ok := encodeNgram(&offsets, chars)
		if !ok {
			continue
		}
		switch key.width {
		case widthU32:
			f32k, f32v = append(f32k, key.u32), append(f32v, f)
		case widthU64:
			f64k, f64v = append(f64k, key.u64), append(f64v, f)
		case widthString5:
			f5 = append(f5, fivePair{key.s5, f})
		}
	}
	sortParallelU32(f32k, f32v)
	sortParallelU64(f64k, f64v)
	sort.Slice(f5, func(i, j int) bool { return less5(f5[i].key, f5[j].key) })
	f5k := make([][5]rune, len(f5))
	f5v := make([]uint32, len(f5))
	for i, p := range f5 {
		f5k[i], f5v[i] = p.key, p.freq
	}

	if l.five32, err = buildTrieU32Map(f32k, f32v); err != nil {
		return nil, err
	}
	if l.five64, err = buildEncodedMap(f64k, f64v); err != nil {
		return nil, err
	}
	if l.five5, err = buildFiveCharMap(f5k, f5v); err != nil {
		return nil, err
	}

	return l, nil
}

func sortParallelU8(k []uint8, v []uint32) {
	sort.Sort(&parallelSort8{k, v})
}
func sortParallelU16(k []uint16, v []uint32) {
	sort.Sort(&parallelSort16{k, v})
}
func sortParallelU32(k []uint32, v []uint32) {
	sort.Sort(&parallelSort32{k, v})
}
func sortParallelU64(k []uint64, v []uint32) {
	sort.Sort(&parallelSort64{k, v})
}

type parallelSort8 struct {
	k []uint8
	v []uint32
}

func (p *parallelSort8) Len() int           { return len(p.k) }
func (p *parallelSort8) Less(i, j int) bool { return p.k[i] < p.k[j] }
func (p *parallelSort8) Swap(i, j int) {
	p.k[i], p.k[j] = p.k[j], p.k[i]
	p.v[i], p.v[j] = p.v[j], p.v[i]
}

type parallelSort16 struct {
	k []uint16
	v []uint32
}

func (p *parallelSort16) Len() int           { return len(p.k) }
func (p *parallelSort16) Less(i, j int) bool { return p.k[i] < p.k[j] }
func (p *parallelSort16) Swap(i, j int) {
	p.k[i], p.k[j] = p.k[j], p.k[i]
	p.v[i], p.v[j] = p.v[j], p.v[i]
}

type parallelSort32 struct {
	k []uint32
	v []uint32
}

func (p *parallelSort32) Len() int           { return len(p.k) }
func (p *parallelSort32) Less(i, j int) bool { return p.k[i] < p.k[j] }
func (p *parallelSort32) Swap(i, j int) {
	p.k[i], p.k[j] = p.k[j], p.k[i]
	p.v[i], p.v[j] = p.v[j], p.v[i]
}

type parallelSort64 struct {
	k []uint64
	v []uint32
}

func (p *parallelSort64) Len() int           { return len(p.k) }
func (p *parallelSort64) Less(i, j int) bool { return p.k[i] < p.k[j] }
func (p *parallelSort64) Swap(i, j int) {
	p.k[i], p.k[j] = p.k[j], p.k[i]
	p.v[i], p.v[j] = p.v[j], p.v[i]
}
