package telemetry

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecordConcat(t *testing.T) {
	joinedBefore := testutil.ToFloat64(MetricConcatTotal.WithLabelValues("ordered", OutcomeJoined))
	bytesBefore := testutil.ToFloat64(MetricConcatBytesTotal.WithLabelValues("ordered"))
	gapBefore := testutil.ToFloat64(MetricConcatTotal.WithLabelValues("ordered", "gap"))

	RecordConcat("ordered", OutcomeJoined, 7)
	RecordConcat("ordered", "gap", 0)

	require.Equal(t, joinedBefore+1, testutil.ToFloat64(MetricConcatTotal.WithLabelValues("ordered", OutcomeJoined)))
	require.Equal(t, bytesBefore+7, testutil.ToFloat64(MetricConcatBytesTotal.WithLabelValues("ordered")))
	require.Equal(t, gapBefore+1, testutil.ToFloat64(MetricConcatTotal.WithLabelValues("ordered", "gap")))
}

func TestCounterHandle_Cached(t *testing.T) {
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "handle_test_total"}, []string{"a", "b"})

	h1 := CounterHandle(vec, "x", "y")
	h2 := CounterHandle(vec, "x", "y")
	require.Same(t, h1, h2)

	h1.Inc()
	require.Equal(t, 1.0, testutil.ToFloat64(vec.WithLabelValues("x", "y")))

	ResetHandleCache()
	require.Equal(t, 1.0, testutil.ToFloat64(CounterHandle(vec, "x", "y")))
}

func TestWriteText(t *testing.T) {
	reg := prometheus.NewRegistry()
	mine := prometheus.NewCounter(prometheus.CounterOpts{Namespace: "adjcat", Name: "sample_total", Help: "sample"})
	other := prometheus.NewCounter(prometheus.CounterOpts{Namespace: "other", Name: "sample_total", Help: "sample"})
	reg.MustRegister(mine, other)
	mine.Add(3)

	var out strings.Builder
	require.NoError(t, WriteText(&out, reg))
	require.Contains(t, out.String(), "adjcat_sample_total 3")
	require.NotContains(t, out.String(), "other_sample_total")
}
