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

// keyWidth names which of the five key widths (spec.md §4.2, §4.4) an
// n-gram packed into for a given lookup.
type keyWidth int

const (
	widthU8 keyWidth = iota
	widthU16
	widthU32
	widthU64
	widthString5
)

// encodedKey is the tagged result of encoding one n-gram against a
// lookup's charOffsets table: exactly one of the value fields is
// meaningful, selected by width.
type encodedKey struct {
	width keyWidth
	u8    uint8
	u16   uint16
	u32   uint32
	u64   uint64
	s5    [5]rune
}

// encodeNgram picks the narrowest integer encoding that fits an n-gram's
// character offsets, following the table in spec.md §4.2. ok is false if
// any character of the n-gram has no entry in offsets, meaning the
// n-gram cannot occur in this model and its frequency is 0 without a
// lookup.
func encodeNgram(t *charOffsets, chars []rune) (encodedKey, bool) {
	n := len(chars)
	offs := make([]int, n)
	for i, c := range chars {
		o := t.offset(c)
		if o == offsetAbsent {
			return encodedKey{}, false
		}
		offs[i] = o
	}

	switch n {
	case 1:
		if offs[0] <= 255 {
			return encodedKey{width: widthU8, u8: uint8(offs[0])}, true
		}
		return encodedKey{width: widthU16, u16: uint16(chars[0])}, true

	case 2:
		if offs[0] <= 255 && offs[1] <= 255 {
			v := uint16(offs[0])<<8 | uint16(offs[1])
			return encodedKey{width: widthU16, u16: v}, true
		}
		v := uint32(uint16(chars[0]))<<16 | uint32(uint16(chars[1]))
		return encodedKey{width: widthU32, u32: v}, true

	case 3:
		if offs[0] < 64 && offs[1] < 32 && offs[2] < 32 {
			v := uint16(offs[0])<<10 | uint16(offs[1])<<5 | uint16(offs[2])
			return encodedKey{width: widthU16, u16: v}, true
		}
		if offs[0] < 2048 && offs[1] < 2048 && offs[2] < 1024 {
			v := uint32(offs[0])<<21 | uint32(offs[1])<<10 | uint32(offs[2])
			return encodedKey{width: widthU32, u32: v}, true
		}
		v := uint64(uint16(chars[0]))<<32 | uint64(uint16(chars[1]))<<16 | uint64(uint16(chars[2]))
		return encodedKey{width: widthU64, u64: v}, true

	case 4:
		if offs[0] < 16 && offs[1] < 16 && offs[2] < 16 && offs[3] < 16 {
			v := uint16(offs[0])<<12 | uint16(offs[1])<<8 | uint16(offs[2])<<4 | uint16(offs[3])
			return encodedKey{width: widthU16, u16: v}, true
		}
		if offs[0] <= 255 && offs[1] <= 255 && offs[2] <= 255 && offs[3] <= 255 {
			v := uint32(offs[0])<<24 | uint32(offs[1])<<16 | uint32(offs[2])<<8 | uint32(offs[3])
			return encodedKey{width: widthU32, u32: v}, true
		}
		v := uint64(uint16(chars[0]))<<48 | uint64(uint16(chars[1]))<<32 | uint64(uint16(chars[2]))<<16 | uint64(uint16(chars[3]))
		return encodedKey{width: widthU64, u64: v}, true

	case 5:
		if offs[0] < 128 && offs[1] < 128 && offs[2] < 64 && offs[3] < 64 && offs[4] < 64 {
			v := uint32(offs[0])<<25 | uint32(offs[1])<<18 | uint32(offs[2])<<12 | uint32(offs[3])<<6 | uint32(offs[4])
			return encodedKey{width: widthU32, u32: v}, true
		}
		if offs[0] < 8192 && offs[1] < 8192 && offs[2] < 8192 && offs[3] < 8192 && offs[4] < 4096 {
			v := uint64(offs[0])<<51 | uint64(offs[1])<<38 | uint64(offs[2])<<25 | uint64(offs[3])<<12 | uint64(offs[4])
			return encodedKey{width: widthU64, u64: v}, true
		}
		var s5 [5]rune
		copy(s5[:], chars)
		return encodedKey{width: widthString5, s5: s5}, true

	default:
		return encodedKey{}, false
	}
}
