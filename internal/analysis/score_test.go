package analysis

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_EmptyTokens(t *testing.T) {
	result := Score(nil)

	assert.Equal(t, 0.0, result.Sentiment)
	assert.Equal(t, CategoryNeutral, result.Category)
	assert.Equal(t, 0.0, result.Confidence)
	assert.Equal(t, LevelMedium, result.ConfidenceLevel)
	assert.Equal(t, 0, result.WordCount)
	assert.Equal(t, 0, result.PositiveWords)
	assert.Equal(t, 0, result.NegativeWords)
}

func TestScore_OnlyStopWordsAndShortTokens(t *testing.T) {
	result := ScoreText("um uh so the a an it is")

	assert.Equal(t, 0, result.WordCount)
	assert.Equal(t, CategoryNeutral, result.Category)
	assert.Equal(t, LevelMedium, result.ConfidenceLevel)
}

func TestScore_RepeatedStrongPositive(t *testing.T) {
	result := ScoreText("excellent excellent excellent")

	assert.Equal(t, 3, result.PositiveWords)
	assert.Equal(t, 3, result.WordCount)
	// excellent weighs 3, so 9/3. No numeric clamping, only the category bucket.
	assert.Equal(t, 3.0, result.Sentiment)
	assert.Equal(t, CategoryPositive, result.Category)
}

func TestScore_NegativeCategory(t *testing.T) {
	result := ScoreText("terrible awful horrible")

	assert.Equal(t, 3, result.NegativeWords)
	assert.Equal(t, -3.0, result.Sentiment)
	assert.Equal(t, CategoryNegative, result.Category)
}

func TestScore_RoundingReportedAtTwoDecimals(t *testing.T) {
	// One weight-1 token among three: 1/3 = 0.333...; the category compares the
	// pre-rounding value (0.333 > 0.3) while the reported score is rounded.
	result := Score([]string{"good", "zzz", "zzz"})

	assert.Equal(t, 0.33, result.Sentiment)
	assert.Equal(t, CategoryPositive, result.Category)
}

func TestScore_ThresholdIsExclusive(t *testing.T) {
	// good (weight 1) among 5 tokens: 0.2, inside the neutral band.
	result := Score([]string{"good", "a1", "a2", "a3", "a4"})

	assert.Equal(t, 0.2, result.Sentiment)
	assert.Equal(t, CategoryNeutral, result.Category)
}

func TestScore_ConfidenceLevels(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		level  Level
	}{
		{name: "assertive words", tokens: []string{"definitely", "absolutely"}, level: LevelHigh},
		{name: "hedging words", tokens: []string{"unsure", "hesitant"}, level: LevelLow},
		{name: "diluted hedging", tokens: []string{"maybe", "z1", "z2", "z3"}, level: LevelMedium},
		{name: "no indicators", tokens: []string{"project", "database"}, level: LevelMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Score(tt.tokens)
			assert.Equal(t, tt.level, result.ConfidenceLevel)
		})
	}
}

func TestScore_MixedSentimentAndConfidence(t *testing.T) {
	result := ScoreText("definitely delivered excellent results despite difficult constraints")

	assert.Equal(t, 2, result.PositiveWords) // delivered, excellent
	assert.Equal(t, 1, result.NegativeWords) // difficult
	assert.Equal(t, 7, result.WordCount)
	// (1 + 3 - 1) / 7 = 0.4285... reported as 0.43
	assert.Equal(t, 0.43, result.Sentiment)
	assert.Equal(t, CategoryPositive, result.Category)
}

func TestScore_CountsAccentedWords(t *testing.T) {
	result := ScoreText("excellent résumé")

	assert.Equal(t, 2, result.WordCount)
	assert.Equal(t, 1, result.PositiveWords)
	assert.Equal(t, 1.5, result.Sentiment)
	assert.Equal(t, CategoryPositive, result.Category)
}

func TestScore_WordCountMatchesTokenize(t *testing.T) {
	inputs := []string{
		"",
		"um uh",
		"confident and capable engineers ship excellent software",
		"What, exactly; did you do?!",
		strings.Repeat("excellent ", 50),
	}

	for i, text := range inputs {
		t.Run(fmt.Sprintf("input_%d", i), func(t *testing.T) {
			tokens := Tokenize(text)
			result := ScoreText(text)
			assert.Equal(t, len(tokens), result.WordCount)
		})
	}
}

func TestScore_PureFunction(t *testing.T) {
	tokens := Tokenize("nervous but determined to deliver great results")
	first := Score(tokens)
	second := Score(tokens)
	assert.Equal(t, first, second)
}
