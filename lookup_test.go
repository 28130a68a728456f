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

func TestUniBiTrigramFrequencyRoundTrips(t *testing.T) {
	l, err := buildUniBiTrigram(ngramFrequencies{
		"a":   RelativeFrequency(1, 4),
		"ab":  RelativeFrequency(1, 3),
		"abc": RelativeFrequency(1, 2),
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.25, l.frequency([]rune("a")), 1e-6)
	assert.InDelta(t, 1.0/3, l.frequency([]rune("ab")), 1e-6)
	assert.InDelta(t, 0.5, l.frequency([]rune("abc")), 1e-6)
	assert.Equal(t, 0.0, l.frequency([]rune("xyz")))
}

func TestUniBiTrigramFrequencyIgnoresWrongLength(t *testing.T) {
	l, err := buildUniBiTrigram(ngramFrequencies{"a": RelativeFrequency(1, 2)})
	require.NoError(t, err)
	assert.Equal(t, 0.0, l.frequency([]rune("abcd")))
	assert.Equal(t, 0.0, l.frequency(nil))
}

func TestQuadriFivegramFrequencyRoundTrips(t *testing.T) {
	l, err := buildQuadriFivegram(ngramFrequencies{
		"abcd":  RelativeFrequency(1, 4),
		"abcde": RelativeFrequency(1, 5),
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.25, l.frequency([]rune("abcd")), 1e-6)
	assert.InDelta(t, 0.2, l.frequency([]rune("abcde")), 1e-6)
	assert.Equal(t, 0.0, l.frequency([]rune("zzzz")))
}

func TestBuildUniBiTrigramHandlesNilInput(t *testing.T) {
	l, err := buildUniBiTrigram(nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, l.frequency([]rune("a")))
}
