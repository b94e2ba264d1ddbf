package analysis

// TrendDirection classifies how a score series moves over time.
type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendDeclining TrendDirection = "declining"
	TrendStable    TrendDirection = "stable"
)

const trendThreshold = 0.2

// Trend compares the mean of the first half of the series against the mean of
// the second half. The first half holds floor(n/2) elements; when the length
// is odd the extra element belongs to the second half. Series shorter than
// two elements are always stable.
func Trend(series []float64) TrendDirection {
	if len(series) < 2 {
		return TrendStable
	}

	mid := len(series) / 2
	firstMean := mean(series[:mid])
	secondMean := mean(series[mid:])

	diff := secondMean - firstMean
	switch {
	case diff > trendThreshold:
		return TrendImproving
	case diff < -trendThreshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
