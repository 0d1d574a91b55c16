package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	generationStartedTotal   atomic.Uint64
	generationCompletedTotal atomic.Uint64
	generationFailedTotal    atomic.Uint64
	uploadsTotal             atomic.Uint64

	generationDuration = newHistogram([]float64{500, 1000, 2500, 5000, 10000, 30000, 60000, 120000})

	failuresMu     sync.Mutex
	failuresByStep = map[string]uint64{}
)

// IncGenerationStarted increments the started counter.
func IncGenerationStarted() {
	generationStartedTotal.Add(1)
}

// IncGenerationCompleted increments the completed counter.
func IncGenerationCompleted() {
	generationCompletedTotal.Add(1)
}

// IncGenerationFailed counts a failed run and the pipeline step it failed at.
func IncGenerationFailed(step string) {
	generationFailedTotal.Add(1)
	if step == "" {
		step = "unknown"
	}
	failuresMu.Lock()
	failuresByStep[step]++
	failuresMu.Unlock()
}

// IncUploads counts manually uploaded mannequin assets.
func IncUploads() {
	uploadsTotal.Add(1)
}

// ObserveGenerationDurationMs records a pipeline duration in milliseconds.
func ObserveGenerationDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	generationDuration.Observe(value)
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
	writeCounter(&buf, "mannequin_generation_started_total", "Total mannequin generations started", generationStartedTotal.Load())
	writeCounter(&buf, "mannequin_generation_completed_total", "Total mannequin generations completed", generationCompletedTotal.Load())
	writeCounter(&buf, "mannequin_generation_failed_total", "Total mannequin generations failed", generationFailedTotal.Load())
	writeLabeledCounter(&buf, "mannequin_generation_failures_by_step_total", "Mannequin pipeline failures by step", "step", failureSnapshot())
	writeCounter(&buf, "mannequin_uploads_total", "Total mannequin assets uploaded manually", uploadsTotal.Load())
	writeHistogram(&buf, "mannequin_generation_duration_ms", "Mannequin generation duration in milliseconds", generationDuration.Snapshot())
	return buf.String()
}

func failureSnapshot() map[string]uint64 {
	failuresMu.Lock()
	defer failuresMu.Unlock()
	out := make(map[string]uint64, len(failuresByStep))
	for k, v := range failuresByStep {
		out[k] = v
	}
	return out
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

func writeLabeledCounter(buf *bytes.Buffer, name, help, label string, values map[string]uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(buf, "%s{%s=%q} %d\n", name, label, k, values[k])
	}
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

// SinceMillis returns the elapsed time since start in milliseconds.
func SinceMillis(start time.Time) float64 {
	return float64(time.Since(start)) / float64(time.Millisecond)
}
