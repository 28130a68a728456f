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
	"encoding/binary"

	"github.com/pkg/errors"
)

// Model file format (spec.md §4.5), big-endian throughout, grounded on
// the teacher's indexfile.go/read.go pairing: a small fixed header
// followed by flat arrays, read directly out of an mmap'd byte slice
// rather than through a buffered stream. Decoding copies every array out
// of that slice into the in-memory lookup.
const (
	modelMagicUniBiTri   = 0x4c554254 // "LUBT"
	modelMagicQuadriFive = 0x4c514656 // "LQFV"
	modelFormatVersion   = 1
)

// byteReader is a cursor over an mmap'd or in-memory byte slice. Every
// read advances the cursor and returns ErrModelCorrupt on short input,
// so a truncated or hand-edited model file fails fast instead of
// panicking on an out-of-range slice.
type byteReader struct {
	buf []byte
	off int
}

func (r *byteReader) u8() (uint8, error) {
	if r.off+1 > len(r.buf) {
		return 0, ErrModelCorrupt
	}
	v := r.buf[r.off]
	r.off++
	return v, nil
}

func (r *byteReader) u16() (uint16, error) {
	if r.off+2 > len(r.buf) {
		return 0, ErrModelCorrupt
	}
	v := binary.BigEndian.Uint16(r.buf[r.off:])
	r.off += 2
	return v, nil
}

func (r *byteReader) u32() (uint32, error) {
	if r.off+4 > len(r.buf) {
		return 0, ErrModelCorrupt
	}
	v := binary.BigEndian.Uint32(r.buf[r.off:])
	r.off += 4
	return v, nil
}

func (r *byteReader) u64() (uint64, error) {
	if r.off+8 > len(r.buf) {
		return 0, ErrModelCorrupt
	}
	v := binary.BigEndian.Uint64(r.buf[r.off:])
	r.off += 8
	return v, nil
}

func (r *byteReader) rune() (rune, error) {
	v, err := r.u32()
	return rune(v), err
}

type byteWriter struct {
	buf []byte
}

func (w *byteWriter) u8(v uint8)   { w.buf = append(w.buf, v) }
func (w *byteWriter) u16(v uint16) { w.buf = binary.BigEndian.AppendUint16(w.buf, v) }
func (w *byteWriter) u32(v uint32) { w.buf = binary.BigEndian.AppendUint32(w.buf, v) }
func (w *byteWriter) u64(v uint64) { w.buf = binary.BigEndian.AppendUint64(w.buf, v) }
func (w *byteWriter) rune(r rune)  { w.u32(uint32(r)) }

func writeCharOffsets(w *byteWriter, t *charOffsets) {
	w.u32(uint32(len(t.chars)))
	for i, c := range t.chars {
		w.rune(c)
		w.u16(t.offsets[i])
	}
}

func readCharOffsets(r *byteReader) (charOffsets, error) {
	n, err := r.u32()
	if err != nil {
		return charOffsets{}, err
	}
	t := charOffsets{chars: make([]rune, n), offsets: make([]uint16, n)}
	for i := range t.chars {
		c, err := r.rune()
		if err != nil {
			return charOffsets{}, err
		}
		o, err := r.u16()
		if err != nil {
			return charOffsets{}, err
		}
		t.chars[i], t.offsets[i] = c, o
	}
	return t, nil
}

func writeValueTable(w *byteWriter, indirect bool, direct []uint32, indices []uint16, values []uint32) {
	if indirect {
		w.u8(1)
		w.u32(uint32(len(values)))
		for _, v := range values {
			w.u32(v)
		}
		w.u32(uint32(len(indices)))
		for _, v := range indices {
			w.u16(v)
		}
		return
	}
	w.u8(0)
	w.u32(uint32(len(direct)))
	for _, v := range direct {
		w.u32(v)
	}
}

func readValueTable(r *byteReader) (indirect bool, direct []uint32, indices []uint16, values []uint32, err error) {
	tag, err := r.u8()
	if err != nil {
		return false, nil, nil, nil, err
	}
	if tag == 1 {
		n, err := r.u32()
		if err != nil {
			return false, nil, nil, nil, err
		}
		values = make([]uint32, n)
		for i := range values {
			if values[i], err = r.u32(); err != nil {
				return false, nil, nil, nil, err
			}
		}
		n, err = r.u32()
		if err != nil {
			return false, nil, nil, nil, err
		}
		indices = make([]uint16, n)
		for i := range indices {
			if indices[i], err = r.u16(); err != nil {
				return false, nil, nil, nil, err
			}
		}
		return true, nil, indices, values, nil
	}
	n, err := r.u32()
	if err != nil {
		return false, nil, nil, nil, err
	}
	direct = make([]uint32, n)
	for i := range direct {
		if direct[i], err = r.u32(); err != nil {
			return false, nil, nil, nil, err
		}
	}
	return false, direct, nil, nil, nil
}

func writeEncodedMapU8(w *byteWriter, m *encodedMap[uint8]) {
	w.u32(uint32(len(m.keys)))
	for _, k := range m.keys {
		w.u8(k)
	}
	writeValueTable(w, m.indirect, m.direct, m.indices, m.values)
}

func readEncodedMapU8(r *byteReader) (encodedMap[uint8], error) {
	n, err := r.u32()
	if err != nil {
		return encodedMap[uint8]{}, err
	}
	keys := make([]uint8, n)
	for i := range keys {
		if keys[i], err = r.u8(); err != nil {
			return encodedMap[uint8]{}, err
		}
	}
	indirect, direct, indices, values, err := readValueTable(r)
	if err != nil {
		return encodedMap[uint8]{}, err
	}
	return encodedMap[uint8]{keys: keys, indirect: indirect, direct: direct, indices: indices, values: values}, nil
}

func writeEncodedMapU16(w *byteWriter, m *encodedMap[uint16]) {
	w.u32(uint32(len(m.keys)))
	for _, k := range m.keys {
		w.u16(k)
	}
	writeValueTable(w, m.indirect, m.direct, m.indices, m.values)
}

func readEncodedMapU16(r *byteReader) (encodedMap[uint16], error) {
	n, err := r.u32()
	if err != nil {
		return encodedMap[uint16]{}, err
	}
	keys := make([]uint16, n)
	for i := range keys {
		if keys[i], err = r.u16(); err != nil {
			return encodedMap[uint16]{}, err
		}
	}
	indirect, direct, indices, values, err := readValueTable(r)
	if err != nil {
		return encodedMap[uint16]{}, err
	}
	return encodedMap[uint16]{keys: keys, indirect: indirect, direct: direct, indices: indices, values: values}, nil
}

func writeEncodedMapU64(w *byteWriter, m *encodedMap[uint64]) {
	w.u32(uint32(len(m.keys)))
	for _, k := range m.keys {
		w.u64(k)
	}
	writeValueTable(w, m.indirect, m.direct, m.indices, m.values)
}

func readEncodedMapU64(r *byteReader) (encodedMap[uint64], error) {
	n, err := r.u32()
	if err != nil {
		return encodedMap[uint64]{}, err
	}
	keys := make([]uint64, n)
	for i := range keys {
		if keys[i], err = r.u64(); err != nil {
			return encodedMap[uint64]{}, err
		}
	}
	indirect, direct, indices, values, err := readValueTable(r)
	if err != nil {
		return encodedMap[uint64]{}, err
	}
	return encodedMap[uint64]{keys: keys, indirect: indirect, direct: direct, indices: indices, values: values}, nil
}

func writeFiveCharMap(w *byteWriter, m *fiveCharMap) {
	w.u32(uint32(len(m.keys)))
	for _, k := range m.keys {
		for _, c := range k {
			w.rune(c)
		}
	}
	writeValueTable(w, m.indirect, m.direct, m.indices, m.values)
}

func readFiveCharMap(r *byteReader) (fiveCharMap, error) {
	n, err := r.u32()
	if err != nil {
		return fiveCharMap{}, err
	}
	keys := make([][5]rune, n)
	for i := range keys {
		for j := 0; j < 5; j++ {
			if keys[i][j], err = r.rune(); err != nil {
				return fiveCharMap{}, err
			}
		}
	}
	indirect, direct, indices, values, err := readValueTable(r)
	if err != nil {
		return fiveCharMap{}, err
	}
	return fiveCharMap{keys: keys, indirect: indirect, direct: direct, indices: indices, values: values}, nil
}

func writeTrieU32Map(w *byteWriter, m *trieU32Map) {
	w.u32(uint32(len(m.firstBytes)))
	for i, fb := range m.firstBytes {
		w.u8(fb)
		w.u32(uint32(m.firstGlobalIndex[i]))
		w.u32(uint32(len(m.seconds[i])))
		for j, sb := range m.seconds[i] {
			w.u8(sb)
			w.u32(m.searchData[i][j])
		}
	}
	w.u32(uint32(len(m.remainders)))
	for _, v := range m.remainders {
		w.u16(v)
	}
	writeValueTable(w, m.indirect, m.direct, m.indices, m.values)
}

func readTrieU32Map(r *byteReader) (trieU32Map, error) {
	var m trieU32Map
	n, err := r.u32()
	if err != nil {
		return m, err
	}
	m.firstBytes = make([]uint8, n)
	m.firstGlobalIndex = make([]int32, n)
	m.seconds = make([][]uint8, n)
	m.searchData = make([][]uint32, n)
	for i := range m.firstBytes {
		if m.firstBytes[i], err = r.u8(); err != nil {
			return trieU32Map{}, err
		}
		fgi, err := r.u32()
		if err != nil {
			return trieU32Map{}, err
		}
		m.firstGlobalIndex[i] = int32(fgi)
		sn, err := r.u32()
		if err != nil {
			return trieU32Map{}, err
		}
		m.seconds[i] = make([]uint8, sn)
		m.searchData[i] = make([]uint32, sn)
		for j := range m.seconds[i] {
			if m.seconds[i][j], err = r.u8(); err != nil {
				return trieU32Map{}, err
			}
			if m.searchData[i][j], err = r.u32(); err != nil {
				return trieU32Map{}, err
			}
		}
	}
	rn, err := r.u32()
	if err != nil {
		return trieU32Map{}, err
	}
	m.remainders = make([]uint16, rn)
	for i := range m.remainders {
		if m.remainders[i], err = r.u16(); err != nil {
			return trieU32Map{}, err
		}
	}
	m.indirect, m.direct, m.indices, m.values, err = readValueTable(r)
	if err != nil {
		return trieU32Map{}, err
	}
	return m, nil
}

// encodeUniBiTrigram serializes a UniBiTrigram lookup to the
// uni-bi-trigrams.bin format.
func encodeUniBiTrigram(l *UniBiTrigram) []byte {
	w := &byteWriter{}
	w.u32(modelMagicUniBiTri)
	w.u16(modelFormatVersion)
	writeCharOffsets(w, &l.offsets)
	writeEncodedMapU8(w, &l.uni8)
	writeEncodedMapU16(w, &l.uni16)
	writeEncodedMapU16(w, &l.bi16)
	writeTrieU32Map(w, &l.bi32)
	writeEncodedMapU16(w, &l.tri16)
	writeTrieU32Map(w, &l.tri32)
	writeEncodedMapU64(w, &l.tri64)
	return w.buf
}

// decodeUniBiTrigram parses the uni-bi-trigrams.bin format produced by
// encodeUniBiTrigram.
func decodeUniBiTrigram(buf []byte) (*UniBiTrigram, error) {
	r := &byteReader{buf: buf}
	magic, err := r.u32()
	if err != nil {
		return nil, err
	}
	if magic != modelMagicUniBiTri {
		return nil, errors.Wrap(ErrModelCorrupt, "unexpected uni-bi-trigram model magic")
	}
	if _, err := r.u16(); err != nil {
		return nil, err
	}

	l := &UniBiTrigram{}
	if l.offsets, err = readCharOffsets(r); err != nil {
		return nil, err
	}
	if l.uni8, err = readEncodedMapU8(r); err != nil {
		return nil, err
	}
	if l.uni16, err = readEncodedMapU16(r); err != nil {
		return nil, err
	}
	if l.bi16, err = readEncodedMapU16(r); err != nil {
		return nil, err
	}
	if l.bi32, err = readTrieU32Map(r); err != nil {
		return nil, err
	}
	if l.tri16, err = readEncodedMapU16(r); err != nil {
		return nil, err
	}
	if l.tri32, err = readTrieU32Map(r); err != nil {
		return nil, err
	}
	if l.tri64, err = readEncodedMapU64(r); err != nil {
		return nil, err
	}
	if r.off != len(r.buf) {
		return nil, errors.Wrap(ErrModelCorrupt, "trailing bytes after uni-bi-trigram maps")
	}
	return l, nil
}

// encodeQuadriFivegram serializes a QuadriFivegram lookup to the
// quadri-fivegrams.bin format.
func encodeQuadriFivegram(l *QuadriFivegram) []byte {
	w := &byteWriter{}
	w.u32(modelMagicQuadriFive)
	w.u16(modelFormatVersion)
	writeCharOffsets(w, &l.offsets)
	writeEncodedMapU16(w, &l.quad16)
	writeTrieU32Map(w, &l.quad32)
	writeEncodedMapU64(w, &l.quad64)
	writeTrieU32Map(w, &l.five32)
	writeEncodedMapU64(w, &l.five64)
	writeFiveCharMap(w, &l.five5)
	return w.buf
}

// decodeQuadriFivegram parses the quadri-fivegrams.bin format produced
// by encodeQuadriFivegram.
func decodeQuadriFivegram(buf []byte) (*QuadriFivegram, error) {
	r := &byteReader{buf: buf}
	magic, err := r.u32()
	if err != nil {
		return nil, err
	}
	if magic != modelMagicQuadriFive {
		return nil, errors.Wrap(ErrModelCorrupt, "unexpected quadri-fivegram model magic")
	}
	if _, err := r.u16(); err != nil {
		return nil, err
	}

	l := &QuadriFivegram{}
	if l.offsets, err = readCharOffsets(r); err != nil {
		return nil, err
	}
	if l.quad16, err = readEncodedMapU16(r); err != nil {
		return nil, err
	}
	if l.quad32, err = readTrieU32Map(r); err != nil {
		return nil, err
	}
	if l.quad64, err = readEncodedMapU64(r); err != nil {
		return nil, err
	}
	if l.five32, err = readTrieU32Map(r); err != nil {
		return nil, err
	}
	if l.five64, err = readEncodedMapU64(r); err != nil {
		return nil, err
	}
	if l.five5, err = readFiveCharMap(r); err != nil {
		return nil, err
	}
	if r.off != len(r.buf) {
		return nil, errors.Wrap(ErrModelCorrupt, "trailing bytes after quadri-fivegram maps")
	}
	return l, nil
}
