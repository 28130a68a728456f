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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestModel(t *testing.T, uniBiTriFreqs map[string]uint32) *languageModel {
	t.Helper()
	uniBiTri, err := buildUniBiTrigram(ngramFrequencies(uniBiTriFreqs))
	require.NoError(t, err)
	quadFive, err := buildQuadriFivegram(ngramFrequencies(nil))
	require.NoError(t, err)
	return &languageModel{uniBiTri: uniBiTri, quadFive: quadFive}
}

func TestScoringLengthsUsesOnlyTrigramsForLongText(t *testing.T) {
	assert.Equal(t, []int{3}, scoringLengths(longTextLength, false))
	assert.Equal(t, []int{3}, scoringLengths(500, false))
}

func TestScoringLengthsUsesOnlyTrigramsInLowAccuracyMode(t *testing.T) {
	assert.Equal(t, []int{3}, scoringLengths(10, true))
}

func TestScoringLengthsLowAccuracyTooShortYieldsNothing(t *testing.T) {
	assert.Empty(t, scoringLengths(2, true))
}

func TestScoringLengthsShortTextUsesEveryApplicableLength(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, scoringLengths(3, false))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, scoringLengths(50, false))
}

func TestScoreLanguagePrefersLanguageThatExplainsTheText(t *testing.T) {
	german := buildTestModel(t, map[string]uint32{
		"a": RelativeFrequency(5, 10), "l": RelativeFrequency(3, 10), "t": RelativeFrequency(2, 10),
		"al": RelativeFrequency(4, 5), "lt": RelativeFrequency(3, 5),
		"alt": RelativeFrequency(9, 10),
	})
	other := buildTestModel(t, map[string]uint32{
		"x": RelativeFrequency(5, 10), "y": RelativeFrequency(3, 10), "z": RelativeFrequency(2, 10),
	})

	words := []string{"alt"}
	lengths := scoringLengths(3, false)
	germanScore := scoreLanguage(German, german, words, lengths)
	otherScore := scoreLanguage(German, other, words, lengths)

	assert.Greater(t, germanScore, otherScore)
}

func TestScoreLanguageSumsAcrossSelectedLengthsRatherThanAveraging(t *testing.T) {
	m := buildTestModel(t, map[string]uint32{
		"a": RelativeFrequency(1, 2),
		"b": RelativeFrequency(1, 2),
		"ab": RelativeFrequency(1, 2),
	})
	words := []string{"ab"}

	unigramOnly := scoreLanguage(German, m, words, []int{1})
	both := scoreLanguage(German, m, words, []int{1, 2})

	// Summing two negative log-probabilities across two lengths must be
	// more negative than summing across just one; a correct average would
	// instead land between the per-length scores.
	assert.Less(t, both, unigramOnly)
}

func TestScoreLanguageUnseenNgramsContributeNothing(t *testing.T) {
	m := buildTestModel(t, map[string]uint32{
		"a": RelativeFrequency(1, 2),
	})
	// "xy" shares no prefix with anything in the model, so its entire
	// back-off chain is absent: adding it must leave the score exactly
	// where it was, not apply a penalty for the miss.
	withoutXY := scoreLanguage(German, m, []string{"a"}, []int{1, 2})
	withXY := scoreLanguage(German, m, []string{"a", "xy"}, []int{1, 2})

	assert.Equal(t, withoutXY, withXY)
}

func TestScoreLanguageNormalizesByRecognizedUnigramCount(t *testing.T) {
	m := buildTestModel(t, map[string]uint32{
		"a": RelativeFrequency(1, 2),
		"b": RelativeFrequency(1, 4),
	})
	oneWord := scoreLanguage(German, m, []string{"a"}, []int{1})
	twoWords := scoreLanguage(German, m, []string{"a", "b"}, []int{1})

	assert.InDelta(t, math.Log(0.5), oneWord, 1e-9)
	assert.InDelta(t, (math.Log(0.5)+math.Log(0.25))/2, twoWords, 1e-9)
}

func TestScoreLanguageAppliesLogogramBonus(t *testing.T) {
	m := buildTestModel(t, map[string]uint32{
		"日": RelativeFrequency(1, 2),
	})
	score := scoreLanguage(Japanese, m, []string{"日"}, []int{1})
	assert.InDelta(t, math.Log(0.5)*logogramScoreBonus, score, 1e-9)
}

func TestBackOffFrequencyFallsThroughToLowerOrder(t *testing.T) {
	m := buildTestModel(t, map[string]uint32{
		"a": RelativeFrequency(1, 2),
		// no bigram "ab" in the model: scoring must back off to unigrams.
	})
	_, ok := backOffFrequency(m, newNgramFromChars([]rune("ab")))
	assert.True(t, ok)
}

func TestBackOffFrequencyFalseWhenEntireChainAbsent(t *testing.T) {
	m := buildTestModel(t, map[string]uint32{
		"x": RelativeFrequency(1, 2),
	})
	_, ok := backOffFrequency(m, newNgramFromChars([]rune("ab")))
	assert.False(t, ok)
}

func TestRankByConfidenceBreaksTiesByOrdinal(t *testing.T) {
	scores := []languageScore{
		{language: German, score: -1},
		{language: English, score: -1},
		{language: French, score: -2},
	}
	ranked := rankByConfidence(scores)
	require.Len(t, ranked, 3)
	assert.Equal(t, English, ranked[0].language) // English < German ordinally, same score
	assert.Equal(t, German, ranked[1].language)
	assert.Equal(t, French, ranked[2].language)
}

func TestConfidenceValuesIsARatioToTheBestScoreNotASoftmax(t *testing.T) {
	ranked := rankByConfidence([]languageScore{
		{language: English, score: -1},
		{language: German, score: -2},
		{language: French, score: -4},
	})
	values := confidenceValues(ranked)

	assert.Equal(t, 1.0, values[English])
	assert.InDelta(t, 0.5, values[German], 1e-9)
	assert.InDelta(t, 0.25, values[French], 1e-9)

	var sum float64
	for _, v := range values {
		sum += v
	}
	assert.NotEqual(t, 1.0, sum)
}

func TestConfidenceValuesSingleCandidateIsFullyConfident(t *testing.T) {
	values := confidenceValues([]languageScore{{language: German, score: -100}})
	assert.Equal(t, 1.0, values[German])
}

func TestConfidenceValuesZeroBestScoreReportsNoConfidence(t *testing.T) {
	values := confidenceValues([]languageScore{
		{language: German, score: 0},
		{language: English, score: 0},
	})
	assert.Equal(t, 0.0, values[German])
	assert.Equal(t, 0.0, values[English])
}

func TestRelativeDistanceZeroWhenIdentical(t *testing.T) {
	d := relativeDistance(languageScore{score: -5}, languageScore{score: -5})
	assert.Equal(t, 0.0, d)
}
