package telemetry

import (
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Label-bound counter handles, cached to avoid a Vec map lookup per attempt.
// Keyed by the Vec pointer plus the joined label values.

type counterKey struct {
	vec *prometheus.CounterVec
	key string
}

var counterHandleCache sync.Map // map[counterKey]prometheus.Counter

func labelsKey(labels []string) string {
	// '\x1f' (unit separator) does not show up in label values.
	return strings.Join(labels, "\x1f")
}

// CounterHandle returns a cached child counter for the given labels.
func CounterHandle(cv *prometheus.CounterVec, labels ...string) prometheus.Counter {
	k := counterKey{vec: cv, key: labelsKey(labels)}
	if v, ok := counterHandleCache.Load(k); ok {
		return v.(prometheus.Counter)
	}
	c := cv.WithLabelValues(labels...)
	actual, _ := counterHandleCache.LoadOrStore(k, c)
	return actual.(prometheus.Counter)
}

// ResetHandleCache clears the handle cache. Call this after re-creating metric Vecs.
func ResetHandleCache() {
	counterHandleCache = sync.Map{}
}
