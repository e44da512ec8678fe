package batch

import (
	"github.com/erpc/adjcat/telemetry"
	"github.com/prometheus/client_golang/prometheus"
)

func telemetryCaseTotal(result string) prometheus.Counter {
	return telemetry.MetricCaseTotal.WithLabelValues(result)
}
