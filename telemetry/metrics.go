package telemetry

import (
	"io"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

const OutcomeJoined = "joined"

var (
	MetricConcatTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "adjcat",
		Name:      "concat_total",
		Help:      "Total number of concatenation attempts by mode and outcome (joined or the adjacency failure reason).",
	}, []string{"mode", "outcome"})

	MetricConcatBytesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "adjcat",
		Name:      "concat_joined_bytes_total",
		Help:      "Total number of bytes covered by successful concatenations.",
	}, []string{"mode"})

	MetricCaseTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "adjcat",
		Name:      "case_total",
		Help:      "Total number of evaluated batch cases by result.",
	}, []string{"result"})
)

// RecordConcat counts one concatenation attempt.
func RecordConcat(mode, outcome string, joinedBytes int) {
	CounterHandle(MetricConcatTotal, mode, outcome).Inc()
	if outcome == OutcomeJoined {
		CounterHandle(MetricConcatBytesTotal, mode).Add(float64(joinedBytes))
	}
}

// WriteText writes every adjcat_* family gathered from g in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	sort.Slice(families, func(i, j int) bool {
		return families[i].GetName() < families[j].GetName()
	})
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "adjcat_") {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
