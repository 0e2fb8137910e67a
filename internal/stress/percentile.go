package stress

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Percentile ranks a score against a cohort of scores reported on the same
// date: the fraction of cohort rows with a strictly lower score, as a
// percentage rounded to one decimal. total is the full cohort size including
// rows without a score; those rows dilute the percentile but can never rank
// above the target, matching the source dataset's semantics.
func Percentile(target float64, scores []float64, total int) float64 {
	if total == 0 {
		return 0
	}
	sorted := make([]float64, len(scores))
	copy(sorted, scores)
	sort.Float64s(sorted)

	// SearchFloat64s gives the count of values strictly below target; an
	// interpolated quantile would miscount ties.
	below := sort.SearchFloat64s(sorted, target)
	return round1(float64(below) / float64(total) * 100)
}

// DateSummary describes the distribution of risk scores across all
// geographies reporting on one date.
type DateSummary struct {
	Date   string  `json:"date"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	P50    float64 `json:"p50"`
	P85    float64 `json:"p85"`
	P98    float64 `json:"p98"`
}

// Summarize computes cohort statistics over the scored rows of a date. It
// returns false when the cohort has no scored rows at all.
func Summarize(date string, scores []float64) (DateSummary, bool) {
	if len(scores) == 0 {
		return DateSummary{Date: date}, false
	}
	sorted := make([]float64, len(scores))
	copy(sorted, scores)
	sort.Float64s(sorted)

	summary := DateSummary{
		Date:  date,
		Count: len(sorted),
		Mean:  stat.Mean(sorted, nil),
		P50:   stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P85:   stat.Quantile(0.85, stat.Empirical, sorted, nil),
		P98:   stat.Quantile(0.98, stat.Empirical, sorted, nil),
	}
	if len(sorted) > 1 {
		summary.StdDev = stat.StdDev(sorted, nil)
	}
	return summary, true
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
