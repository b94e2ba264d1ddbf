package analysis

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFacialAnalyzer_FieldsWithinRanges(t *testing.T) {
	analyzer := NewFacialAnalyzer(rand.New(rand.NewSource(1)))

	for i := 0; i < 100; i++ {
		result := analyzer.Analyze(false)

		assert.Contains(t, expressions, result.Primary.Expression)
		assert.GreaterOrEqual(t, result.Primary.Confidence, 0.7)
		assert.LessOrEqual(t, result.Primary.Confidence, 0.95)

		assert.Contains(t, engagementLevels, result.EngagementLevel)
		assert.GreaterOrEqual(t, result.EngagementScore, 0.2)
		assert.LessOrEqual(t, result.EngagementScore, 0.9)

		assert.Contains(t, eyeContactPatterns, result.EyeContact)
		assert.GreaterOrEqual(t, result.EyeContactScore, 0.1)
		assert.LessOrEqual(t, result.EyeContactScore, 1.0)

		assert.GreaterOrEqual(t, result.Professionalism, 0.0)
		assert.LessOrEqual(t, result.Professionalism, 1.0)
		assert.Contains(t, []string{"excellent", "good", "needs_improvement"}, result.Rating)
	}
}

func TestFacialAnalyzer_SecondaryDiffersFromPrimary(t *testing.T) {
	analyzer := NewFacialAnalyzer(rand.New(rand.NewSource(42)))

	for i := 0; i < 100; i++ {
		result := analyzer.Analyze(false)
		for _, sec := range result.Secondary {
			assert.NotEqual(t, result.Primary.Expression, sec.Expression)
			assert.GreaterOrEqual(t, sec.Confidence, 0.3)
			assert.LessOrEqual(t, sec.Confidence, 0.6)
		}
	}
}

func TestFacialAnalyzer_MarksMockData(t *testing.T) {
	analyzer := NewFacialAnalyzer(rand.New(rand.NewSource(7)))

	result := analyzer.Analyze(true)
	assert.Equal(t, "mockup", result.AnalysisType)
	assert.True(t, result.ImageProcessed)

	result = analyzer.Analyze(false)
	assert.False(t, result.ImageProcessed)
}

func TestFacialAnalyzer_DeterministicPerSeed(t *testing.T) {
	first := NewFacialAnalyzer(rand.New(rand.NewSource(99))).Analyze(false)
	second := NewFacialAnalyzer(rand.New(rand.NewSource(99))).Analyze(false)
	assert.Equal(t, first, second)
}
