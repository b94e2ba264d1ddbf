package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFillers_CountsAndBreakdown(t *testing.T) {
	result := detectFillers("Um, you know, I was like, um, working on it")

	assert.Equal(t, 2, result.Breakdown["um"])
	assert.Equal(t, 1, result.Breakdown["you know"])
	assert.Equal(t, 1, result.Breakdown["like"])
	assert.Equal(t, 4, result.Total)
	assert.Equal(t, 3, result.UniqueFillers)
}

func TestDetectFillers_WordBoundaries(t *testing.T) {
	// "umbrella" must not match "um", "likely" must not match "like"
	result := detectFillers("the umbrella likely helps")
	assert.Zero(t, result.Breakdown["um"])
	assert.Zero(t, result.Breakdown["like"])
}

func TestDetectFillers_NoFillers(t *testing.T) {
	result := detectFillers("The candidate answered every question directly")
	assert.Equal(t, 0, result.Total)
	assert.Empty(t, result.Breakdown)
}

func TestAnalyzePauses(t *testing.T) {
	result := analyzePauses("First, I planned. Then, I built; finally I shipped.")

	assert.Equal(t, 2, result.Breakdown["commas"])
	assert.Equal(t, 2, result.Breakdown["periods"])
	assert.Equal(t, 1, result.Breakdown["semicolons"])
	assert.Equal(t, 5, result.TotalPauses)
	assert.Equal(t, 3, result.SentenceCount) // trailing split piece counts
}

func TestAnalyzePauses_EmptyText(t *testing.T) {
	result := analyzePauses("")
	assert.Equal(t, 0, result.TotalPauses)
	assert.Equal(t, 0.0, result.PausesPer100Words)
}

func TestAnalyzePace_WithDuration(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("word ", 100))

	result := analyzePace(text, 30)
	assert.Equal(t, 200.0, result.WordsPerMinute)
	assert.Equal(t, "normal", result.PaceCategory)
	assert.False(t, result.EstimatedDuration)

	result = analyzePace(text, 20)
	assert.Equal(t, 300.0, result.WordsPerMinute)
	assert.Equal(t, "fast", result.PaceCategory)

	result = analyzePace(text, 60)
	assert.Equal(t, 100.0, result.WordsPerMinute)
	assert.Equal(t, "slow", result.PaceCategory)
}

func TestAnalyzePace_EstimatedWhenNoDuration(t *testing.T) {
	result := analyzePace("a steady answer at an assumed pace", 0)
	assert.True(t, result.EstimatedDuration)
	assert.Equal(t, float64(averageSpeakingWPM), result.WordsPerMinute)
	assert.Equal(t, "normal", result.PaceCategory)
}

func TestAnalyzeConfidenceClarity_Levels(t *testing.T) {
	confidence, clarity := analyzeConfidenceClarity("definitely first then absolutely done")

	assert.Equal(t, 2, confidence.StrongIndicators)
	assert.Equal(t, 0, confidence.WeakIndicators)
	assert.Equal(t, LevelHigh, confidence.Level)

	assert.Equal(t, 2, clarity.StrongIndicators)
	assert.Equal(t, LevelHigh, clarity.Level)
}

func TestAnalyzeConfidenceClarity_Hedging(t *testing.T) {
	confidence, _ := analyzeConfidenceClarity("maybe perhaps probably")
	assert.Equal(t, 3, confidence.WeakIndicators)
	assert.Equal(t, LevelLow, confidence.Level)
}

func TestAnalyzeVoice_OverallQuality(t *testing.T) {
	// Clean, structured answer at a normal pace scores well.
	text := "First I profiled the service. Then I removed the bottleneck. Finally latency definitely dropped."
	result := AnalyzeVoice(text, 5)

	assert.Equal(t, "normal", result.Pace.PaceCategory)
	assert.Equal(t, 0, result.Fillers.Total)
	assert.Greater(t, result.Overall.Score, 0.6)
	assert.Contains(t, []string{"good", "excellent"}, result.Overall.Rating)
}

func TestAnalyzeVoice_FillerHeavyAnswerScoresWorse(t *testing.T) {
	clean := AnalyzeVoice("I led the migration and shipped it on time without issues at all", 5)
	fillers := AnalyzeVoice("um like um you know like um so like um well um like basically um", 5)

	assert.Less(t, fillers.Overall.Score, clean.Overall.Score)
	assert.Equal(t, "needs_improvement", fillers.Overall.Rating)
}

func TestAnalyzeVoice_EmptyText(t *testing.T) {
	result := AnalyzeVoice("", 0)
	assert.Equal(t, 0, result.Pace.WordCount)
	assert.Equal(t, 0, result.Fillers.Total)
}
