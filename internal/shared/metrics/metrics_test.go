package metrics

import (
	"bytes"
	"strings"
	"testing"
)

func TestHistogramBucketCountsAreCumulative(t *testing.T) {
	h := newHistogram([]float64{10, 100})
	h.Observe(5)
	h.Observe(50)
	h.Observe(500)

	var buf bytes.Buffer
	writeHistogram(&buf, "test_duration_ms", "help", h.Snapshot())
	out := buf.String()

	for _, line := range []string{
		`test_duration_ms_bucket{le="10"} 1`,
		`test_duration_ms_bucket{le="100"} 2`,
		`test_duration_ms_bucket{le="+Inf"} 3`,
		`test_duration_ms_sum 555`,
		`test_duration_ms_count 3`,
	} {
		if !strings.Contains(out, line) {
			t.Fatalf("expected line %q in output:\n%s", line, out)
		}
	}
}

func TestHistogramBucketCountNeverExceedsTotal(t *testing.T) {
	h := newHistogram([]float64{1, 2, 3})
	for i := 0; i < 10; i++ {
		h.Observe(0.5)
	}

	snap := h.Snapshot()
	var cumulative uint64
	for _, c := range snap.counts {
		cumulative += c
	}
	if cumulative > snap.count {
		t.Fatalf("summed bucket counts %d exceed total %d", cumulative, snap.count)
	}
}

func TestRenderIncludesExtractionSeries(t *testing.T) {
	IncExtractionStarted()
	IncExtractionCompleted()
	IncExtractionFailed()
	ObserveExtractionDurationMs(120)

	out := Render()
	for _, name := range []string{
		"extraction_started_total",
		"extraction_completed_total",
		"extraction_failed_total",
		"extraction_duration_ms_bucket",
		"extraction_duration_ms_count",
	} {
		if !strings.Contains(out, name) {
			t.Fatalf("expected series %q in render output:\n%s", name, out)
		}
	}
}
