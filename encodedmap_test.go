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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEncodedMapRejectsDuplicateKeys(t *testing.T) {
	_, err := buildEncodedMap([]uint16{1, 1, 2}, []uint32{10, 20, 30})
	assert.ErrorIs(t, err, ErrModelCorrupt)
}

func TestEncodedMapGetRoundTrips(t *testing.T) {
	keys := []uint16{1, 5, 9, 20}
	freqs := []uint32{100, 200, 100, 300}
	m, err := buildEncodedMap(keys, freqs)
	require.NoError(t, err)

	for i, k := range keys {
		assert.Equal(t, freqs[i], m.get(k))
	}
	assert.Equal(t, uint32(0), m.get(6))
}

func TestEncodedMapPrefersIndirectionWhenValuesRepeat(t *testing.T) {
	n := 1000
	keys := make([]uint16, n)
	freqs := make([]uint32, n)
	for i := 0; i < n; i++ {
		keys[i] = uint16(i)
		freqs[i] = 42 // every key shares one value
	}
	m, err := buildEncodedMap(keys, freqs)
	require.NoError(t, err)
	assert.True(t, m.indirect)
	assert.Len(t, m.values, 1)
}

func TestEncodedMapEmpty(t *testing.T) {
	m, err := buildEncodedMap[uint16](nil, nil)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), m.get(1))
}

func TestFiveCharMapGetRoundTrips(t *testing.T) {
	keys := [][5]rune{
		{'a', 'b', 'c', 'd', 'e'},
		{'a', 'b', 'c', 'd', 'f'},
		{'z', 'z', 'z', 'z', 'z'},
	}
	freqs := []uint32{1, 2, 3}
	m, err := buildFiveCharMap(keys, freqs)
	require.NoError(t, err)

	for i, k := range keys {
		assert.Equal(t, freqs[i], m.get(k))
	}
	assert.Equal(t, uint32(0), m.get([5]rune{'q', 'q', 'q', 'q', 'q'}))
}
