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

func TestScriptOf(t *testing.T) {
	assert.Equal(t, ScriptLatin, scriptOf('a'))
	assert.Equal(t, ScriptCyrillic, scriptOf('я'))
	assert.Equal(t, ScriptHan, scriptOf('上'))
	assert.Equal(t, ScriptHiragana, scriptOf('あ'))
	assert.Equal(t, ScriptKatakana, scriptOf('ア'))
	assert.Equal(t, ScriptUnknown, scriptOf('5'))
	assert.Equal(t, ScriptUnknown, scriptOf('!'))
}

func TestIsLogogram(t *testing.T) {
	assert.True(t, isLogogram('上'))
	assert.True(t, isLogogram('あ'))
	assert.True(t, isLogogram('ア'))
	assert.False(t, isLogogram('a'))
	assert.False(t, isLogogram('가')) // Hangul is not a logogram script here
}

func TestLanguagesForScript(t *testing.T) {
	got := languagesForScript(AllLanguages(), ScriptGreek)
	assert.Equal(t, []Language{Greek}, got)
}
