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
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackUnpackSearchDataRoundTrips(t *testing.T) {
	for _, tc := range []struct {
		delta int32
		size  int
	}{
		{0, 0}, {1, 1}, {-1, 1}, {131071, 100}, {-131072, 16383}, {-5, 0},
	} {
		packed := packSearchData(tc.delta, tc.size)
		gotDelta, gotSize := unpackSearchData(packed)
		assert.Equal(t, tc.delta, gotDelta, "delta for %+v", tc)
		assert.Equal(t, tc.size, gotSize, "size for %+v", tc)
	}
}

func TestBuildTrieU32MapRejectsDuplicateKeys(t *testing.T) {
	_, err := buildTrieU32Map([]uint32{1, 1}, []uint32{10, 20})
	assert.ErrorIs(t, err, ErrModelCorrupt)
}

func TestTrieU32MapGetRoundTrips(t *testing.T) {
	keys := []uint32{
		0x01020003, 0x01020005, 0x01030001, 0x02000000, 0x020000FF, 0xFF000000,
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	freqs := make([]uint32, len(keys))
	for i := range freqs {
		freqs[i] = uint32(100 + i)
	}

	m, err := buildTrieU32Map(keys, freqs)
	require.NoError(t, err)

	for i, k := range keys {
		assert.Equal(t, freqs[i], m.get(k), "key %#x", k)
	}
	assert.Equal(t, uint32(0), m.get(0x99999999))
}

func TestTrieU32MapGetOnLargerSyntheticSet(t *testing.T) {
	var keys []uint32
	for fb := 0; fb < 8; fb++ {
		for sb := 0; sb < 8; sb++ {
			for r := 0; r < 5; r++ {
				keys = append(keys, uint32(fb)<<24|uint32(sb)<<16|uint32(r*97))
			}
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	freqs := make([]uint32, len(keys))
	for i := range freqs {
		freqs[i] = uint32(i + 1)
	}

	m, err := buildTrieU32Map(keys, freqs)
	require.NoError(t, err)

	for i, k := range keys {
		assert.Equal(t, freqs[i], m.get(k))
	}
}
