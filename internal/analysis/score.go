package analysis

import "math"

// Category classifies normalized sentiment.
type Category string

const (
	CategoryPositive Category = "positive"
	CategoryNeutral  Category = "neutral"
	CategoryNegative Category = "negative"
)

// Level classifies normalized confidence.
type Level string

const (
	LevelHigh   Level = "high"
	LevelMedium Level = "medium"
	LevelLow    Level = "low"
)

// Categorical thresholds compare the pre-rounding normalized scores.
const (
	sentimentThreshold  = 0.3
	confidenceThreshold = 0.3
)

// ScoreResult holds the lexical scores for one piece of text. Values are
// normalized by token count and rounded to two decimals; they are not clamped
// numerically, only bucketed by the categorical thresholds.
type ScoreResult struct {
	Sentiment       float64  `json:"sentiment"`
	Category        Category `json:"category"`
	PositiveWords   int      `json:"positive_words"`
	NegativeWords   int      `json:"negative_words"`
	Confidence      float64  `json:"confidence"`
	ConfidenceLevel Level    `json:"confidence_level"`
	WordCount       int      `json:"word_count"`
}

// Score computes sentiment and confidence scores over pre-tokenized input.
// It is total: an empty token slice yields a zero-valued neutral/medium result.
func Score(tokens []string) ScoreResult {
	var sentimentSum, confidenceSum int
	var positiveCount, negativeCount int

	for _, tok := range tokens {
		if w, ok := positiveWords[tok]; ok {
			sentimentSum += w
			positiveCount++
		}
		if w, ok := negativeWords[tok]; ok {
			sentimentSum += w
			negativeCount++
		}
		if w, ok := confidenceWords[tok]; ok {
			confidenceSum += w
		}
	}

	var sentiment, confidence float64
	if len(tokens) > 0 {
		sentiment = float64(sentimentSum) / float64(len(tokens))
		confidence = float64(confidenceSum) / float64(len(tokens))
	}

	category := CategoryNeutral
	switch {
	case sentiment > sentimentThreshold:
		category = CategoryPositive
	case sentiment < -sentimentThreshold:
		category = CategoryNegative
	}

	level := LevelMedium
	switch {
	case confidence > confidenceThreshold:
		level = LevelHigh
	case confidence < -confidenceThreshold:
		level = LevelLow
	}

	return ScoreResult{
		Sentiment:       round2(sentiment),
		Category:        category,
		PositiveWords:   positiveCount,
		NegativeWords:   negativeCount,
		Confidence:      round2(confidence),
		ConfidenceLevel: level,
		WordCount:       len(tokens),
	}
}

// ScoreText tokenizes and scores in one step.
func ScoreText(text string) ScoreResult {
	return Score(Tokenize(text))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
