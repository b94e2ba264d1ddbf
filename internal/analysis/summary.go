package analysis

// SentimentSummary aggregates the scores of a session.
type SentimentSummary struct {
	AverageSentiment  float64        `json:"average_sentiment"`
	AverageConfidence float64        `json:"average_confidence"`
	Trend             TrendDirection `json:"sentiment_trend"`
	TotalAnalyses     int            `json:"total_analyses"`
}

// SummarizeScores averages a sequence of score results and classifies the
// sentiment trend over the series. Returns a zero-valued stable summary for
// an empty input.
func SummarizeScores(results []ScoreResult) SentimentSummary {
	if len(results) == 0 {
		return SentimentSummary{Trend: TrendStable}
	}

	var sentimentSum, confidenceSum float64
	series := make([]float64, len(results))
	for i, r := range results {
		sentimentSum += r.Sentiment
		confidenceSum += r.Confidence
		series[i] = r.Sentiment
	}
	n := float64(len(results))

	return SentimentSummary{
		AverageSentiment:  round3(sentimentSum / n),
		AverageConfidence: round3(confidenceSum / n),
		Trend:             Trend(series),
		TotalAnalyses:     len(results),
	}
}

// VoiceSummary aggregates voice analyses of a session.
type VoiceSummary struct {
	AverageWPM          float64 `json:"average_wpm"`
	AverageFillerRate   float64 `json:"average_filler_rate"`
	AverageConfidence   float64 `json:"average_confidence_score"`
	AverageClarity      float64 `json:"average_clarity_score"`
	OverallVoiceQuality float64 `json:"overall_voice_quality"`
	TotalAnalyses       int     `json:"total_analyses"`
}

// SummarizeVoice averages a sequence of voice results. Filler rate is reported
// as a percentage of words spoken.
func SummarizeVoice(results []VoiceResult) VoiceSummary {
	if len(results) == 0 {
		return VoiceSummary{}
	}

	var wpm, fillerRate, confidence, clarity, overall float64
	for _, r := range results {
		wpm += r.Pace.WordsPerMinute
		if r.Pace.WordCount > 0 {
			fillerRate += float64(r.Fillers.Total) / float64(r.Pace.WordCount)
		}
		confidence += r.Confidence.Score
		clarity += r.Clarity.Score
		overall += r.Overall.Score
	}
	n := float64(len(results))

	return VoiceSummary{
		AverageWPM:          round1(wpm / n),
		AverageFillerRate:   round2(fillerRate / n * 100),
		AverageConfidence:   round3(confidence / n),
		AverageClarity:      round3(clarity / n),
		OverallVoiceQuality: round3(overall / n),
		TotalAnalyses:       len(results),
	}
}

// FacialSummary aggregates facial analyses of a session.
type FacialSummary struct {
	MostCommonExpression   string         `json:"most_common_expression"`
	ExpressionDistribution map[string]int `json:"expression_distribution"`
	AverageEngagement      float64        `json:"average_engagement"`
	AverageEyeContact      float64        `json:"average_eye_contact"`
	AverageProfessionalism float64        `json:"average_professionalism"`
	TotalAnalyses          int            `json:"total_analyses"`
}

// SummarizeFacial aggregates a sequence of facial results.
func SummarizeFacial(results []FacialResult) FacialSummary {
	if len(results) == 0 {
		return FacialSummary{ExpressionDistribution: map[string]int{}}
	}

	distribution := make(map[string]int)
	var engagement, eyeContact, professionalism float64
	for _, r := range results {
		distribution[r.Primary.Expression]++
		engagement += r.EngagementScore
		eyeContact += r.EyeContactScore
		professionalism += r.Professionalism
	}

	mostCommon := ""
	best := 0
	for expr, count := range distribution {
		if count > best || (count == best && (mostCommon == "" || expr < mostCommon)) {
			mostCommon = expr
			best = count
		}
	}

	n := float64(len(results))
	return FacialSummary{
		MostCommonExpression:   mostCommon,
		ExpressionDistribution: distribution,
		AverageEngagement:      round3(engagement / n),
		AverageEyeContact:      round3(eyeContact / n),
		AverageProfessionalism: round3(professionalism / n),
		TotalAnalyses:          len(results),
	}
}
