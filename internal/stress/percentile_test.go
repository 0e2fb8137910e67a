package stress

import (
	"math"
	"testing"
)

func TestPercentile_MaxScore(t *testing.T) {
	// The maximum of an N-row cohort ranks above the other N-1 rows.
	scores := []float64{0.1, 0.2, 0.3, 0.4}
	got := Percentile(0.4, scores, len(scores))
	if got != 75.0 {
		t.Errorf("Percentile = %v, want 75.0", got)
	}
}

func TestPercentile_MinScore(t *testing.T) {
	scores := []float64{0.1, 0.2, 0.3}
	if got := Percentile(0.1, scores, len(scores)); got != 0.0 {
		t.Errorf("Percentile = %v, want 0.0", got)
	}
}

func TestPercentile_EmptyCohort(t *testing.T) {
	if got := Percentile(0.5, nil, 0); got != 0 {
		t.Errorf("Percentile = %v, want 0", got)
	}
}

// Rows without a score stay in the denominator but never outrank the target.
func TestPercentile_UnscoredRowsDilute(t *testing.T) {
	scores := []float64{0.01, 0.02, 0.03}
	got := Percentile(0.03, scores, 4)
	if got != 50.0 {
		t.Errorf("Percentile = %v, want 50.0", got)
	}
}

func TestPercentile_RoundsToOneDecimal(t *testing.T) {
	scores := []float64{0.1, 0.2, 0.3}
	// 1/3 below → 33.333... → 33.3
	if got := Percentile(0.2, scores, 3); got != 33.3 {
		t.Errorf("Percentile = %v, want 33.3", got)
	}
}

func TestSummarize(t *testing.T) {
	scores := []float64{0.04, 0.01, 0.03, 0.02}
	summary, ok := Summarize("2025-03-01", scores)
	if !ok {
		t.Fatal("Summarize reported no data")
	}
	if summary.Count != 4 {
		t.Errorf("Count = %d, want 4", summary.Count)
	}
	if math.Abs(summary.Mean-0.025) > 1e-12 {
		t.Errorf("Mean = %v, want 0.025", summary.Mean)
	}
	if summary.P50 != 0.02 {
		t.Errorf("P50 = %v, want 0.02", summary.P50)
	}
	if summary.P98 != 0.04 {
		t.Errorf("P98 = %v, want 0.04", summary.P98)
	}
	if math.Abs(summary.StdDev-0.0129099) > 1e-6 {
		t.Errorf("StdDev = %v, want ~0.0129099", summary.StdDev)
	}
}

func TestSummarize_NoScores(t *testing.T) {
	if _, ok := Summarize("2025-03-01", nil); ok {
		t.Error("Summarize reported data for an empty cohort")
	}
}
