package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrend_Improving(t *testing.T) {
	// firstMean=0.1, secondMean=0.9, diff=0.8
	assert.Equal(t, TrendImproving, Trend([]float64{0.1, 0.1, 0.9, 0.9}))
}

func TestTrend_Declining(t *testing.T) {
	assert.Equal(t, TrendDeclining, Trend([]float64{0.9, 0.9, 0.1, 0.1}))
}

func TestTrend_ShortSeriesAlwaysStable(t *testing.T) {
	assert.Equal(t, TrendStable, Trend(nil))
	assert.Equal(t, TrendStable, Trend([]float64{}))
	assert.Equal(t, TrendStable, Trend([]float64{0.5}))
}

func TestTrend_OddLengthExtraElementInSecondHalf(t *testing.T) {
	// n=3: first half is [0.0], second half [0.5, 0.5]; diff=0.5
	assert.Equal(t, TrendImproving, Trend([]float64{0.0, 0.5, 0.5}))

	// Were the extra element in the first half, the means would both be 0.25
	// and the series stable; the split rule makes it declining instead.
	// first half [0.5], second half [0.25, 0.0]: diff = -0.375
	assert.Equal(t, TrendDeclining, Trend([]float64{0.5, 0.25, 0.0}))
}

func TestTrend_ThresholdIsExclusive(t *testing.T) {
	// diff exactly 0.2 stays stable
	assert.Equal(t, TrendStable, Trend([]float64{0.1, 0.3}))
	assert.Equal(t, TrendStable, Trend([]float64{0.3, 0.1}))

	assert.Equal(t, TrendImproving, Trend([]float64{0.1, 0.31}))
	assert.Equal(t, TrendDeclining, Trend([]float64{0.31, 0.1}))
}

func TestTrend_FlatSeries(t *testing.T) {
	assert.Equal(t, TrendStable, Trend([]float64{0.4, 0.4, 0.4, 0.4, 0.4}))
}
