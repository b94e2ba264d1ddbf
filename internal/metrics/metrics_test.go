package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestAnalysisRequestsTotal_Increments(t *testing.T) {
	before := testutil.ToFloat64(AnalysisRequestsTotal.WithLabelValues("sentiment", "success"))
	AnalysisRequestsTotal.WithLabelValues("sentiment", "success").Inc()
	after := testutil.ToFloat64(AnalysisRequestsTotal.WithLabelValues("sentiment", "success"))
	assert.Equal(t, before+1, after)
}

func TestLiveConnectionsCurrent_Gauge(t *testing.T) {
	LiveConnectionsCurrent.Set(0)
	LiveConnectionsCurrent.Inc()
	LiveConnectionsCurrent.Inc()
	LiveConnectionsCurrent.Dec()
	assert.Equal(t, float64(1), testutil.ToFloat64(LiveConnectionsCurrent))
}
