package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	validationStartedTotal   atomic.Uint64
	validationCompletedTotal atomic.Uint64
	validationDegradedTotal  atomic.Uint64
	validationInvalidTotal   atomic.Uint64

	validationDuration = newHistogram([]float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000})
)

// IncValidationStarted increments the started counter.
func IncValidationStarted() {
	validationStartedTotal.Add(1)
}

// IncValidationCompleted increments the completed counter.
func IncValidationCompleted() {
	validationCompletedTotal.Add(1)
}

// IncValidationDegraded counts runs where at least one pipeline stage failed
// and the result was built from the surviving stages.
func IncValidationDegraded() {
	validationDegradedTotal.Add(1)
}

// IncValidationInvalid counts runs whose result carried critical issues.
func IncValidationInvalid() {
	validationInvalidTotal.Add(1)
}

// ObserveValidationDurationMs records a full pipeline duration in milliseconds.
func ObserveValidationDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	validationDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "validation_started_total", "Total validations started", validationStartedTotal.Load())
	writeCounter(&buf, "validation_completed_total", "Total validations completed", validationCompletedTotal.Load())
	writeCounter(&buf, "validation_degraded_total", "Total validations completed with a failed stage", validationDegradedTotal.Load())
	writeCounter(&buf, "validation_invalid_total", "Total validations with critical issues", validationInvalidTotal.Load())
	writeHistogram(&buf, "validation_duration_ms", "Validation duration in milliseconds", validationDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
