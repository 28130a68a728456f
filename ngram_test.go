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
)

func TestPrimitiveNgramRoundTrip(t *testing.T) {
	for _, s := range []string{"a", "ab", "abc"} {
		p := newPrimitiveNgram([]rune(s))
		assert.Equal(t, len(s), p.length())
		assert.Equal(t, s, p.String())
	}
}

func TestPrimitiveNgramLowerOrder(t *testing.T) {
	p := newPrimitiveNgram([]rune("abc"))
	lo := p.lowerOrder()
	assert.Equal(t, "ab", lo.String())
	lo = lo.lowerOrder()
	assert.Equal(t, "a", lo.String())
	lo = lo.lowerOrder()
	assert.Equal(t, primitiveNgramNone, lo)
}

func TestNgramBackOffTerminatesWithinFiveSteps(t *testing.T) {
	n := newNgramFromChars([]rune("hello"))
	steps := 0
	for cur := n; !cur.isNone(); cur = cur.lowerOrder() {
		steps++
		require := steps <= 5
		assert.True(t, require, "back-off exceeded 5 steps")
	}
	assert.Equal(t, 5, steps)
}

func TestNgramLowerOrderSwitchesRepresentationAtThree(t *testing.T) {
	n := newNgramFromChars([]rune("abcde"))
	assert.True(t, n.isObject)

	n = n.lowerOrder() // abcd
	assert.True(t, n.isObject)
	n = n.lowerOrder() // abc
	assert.False(t, n.isObject)
	assert.Equal(t, "abc", n.String())
}

func TestObjectNgramLowerOrder(t *testing.T) {
	o := objectNgram("abcde")
	assert.Equal(t, objectNgram("abcd"), o.lowerOrder())
}
