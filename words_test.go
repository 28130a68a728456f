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

func TestSplitIntoWordsOnSpaces(t *testing.T) {
	assert.Equal(t, []string{"hello", "world"}, splitIntoWords("hello world"))
}

func TestSplitIntoWordsTreatsEachLogogramAsItsOwnWord(t *testing.T) {
	got := splitIntoWords("上海大学")
	assert.Equal(t, []string{"上", "海", "大", "学"}, got)
}

func TestSplitIntoWordsMixedScript(t *testing.T) {
	got := splitIntoWords("hello 上海 world")
	assert.Equal(t, []string{"hello", "上", "海", "world"}, got)
}

func TestSplitIntoWordsEmpty(t *testing.T) {
	assert.Empty(t, splitIntoWords(""))
}
