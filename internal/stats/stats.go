// Package stats computes review-page summaries over parsed result rows.
// Sentinel rows (no-image, out-of-bounds) are masked out before any
// computation, matching the review behavior of the desktop front end.
package stats

import (
	"math"
	"sort"

	"github.com/phastlab/pinpoint-mcp/internal/measure"
	"github.com/phastlab/pinpoint-mcp/internal/results"
)

// ColumnSummary holds the descriptive statistics for one measurement
// column. All moments use the sample (n-1) definitions; quartiles are
// linearly interpolated. When Count is 0 no other field is meaningful.
type ColumnSummary struct {
	Column         string  `json:"column"`
	Count          int     `json:"count"`
	Mean           float64 `json:"mean"`
	Median         float64 `json:"median"`
	Mode           float64 `json:"mode"`
	HasMode        bool    `json:"has_mode"`
	StdDev         float64 `json:"std_dev"`
	Variance       float64 `json:"variance"`
	Range          float64 `json:"range"`
	IQR            float64 `json:"iqr"`
	MaxDiffPercent float64 `json:"max_diff_percent"`
}

// Summarize computes a summary per measurement column (Radial, X-Axis,
// Y-Axis) over the measured rows.
func Summarize(rows []results.Row) []ColumnSummary {
	columns := []struct {
		name  string
		value func(results.Row) float64
	}{
		{"Radial", func(r results.Row) float64 { return r.Radial }},
		{"X-Axis", func(r results.Row) float64 { return r.XAxis }},
		{"Y-Axis", func(r results.Row) float64 { return r.YAxis }},
	}

	summaries := make([]ColumnSummary, 0, len(columns))
	for _, col := range columns {
		var values []float64
		for _, row := range rows {
			if row.Kind != measure.KindMeasured {
				continue
			}
			values = append(values, col.value(row))
		}
		summaries = append(summaries, summarizeColumn(col.name, values))
	}
	return summaries
}

func summarizeColumn(name string, values []float64) ColumnSummary {
	s := ColumnSummary{Column: name, Count: len(values)}
	if len(values) == 0 {
		return s
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range values {
		sum += v
	}
	s.Mean = sum / float64(len(values))
	s.Median = quantile(sorted, 0.5)
	s.Mode, s.HasMode = mode(sorted)
	s.Range = sorted[len(sorted)-1] - sorted[0]
	s.IQR = quantile(sorted, 0.75) - quantile(sorted, 0.25)

	if len(values) > 1 {
		var sq float64
		for _, v := range values {
			d := v - s.Mean
			sq += d * d
		}
		s.Variance = sq / float64(len(values)-1)
		s.StdDev = math.Sqrt(s.Variance)
	}

	var maxDiff float64
	for _, v := range values {
		if d := math.Abs(v - s.Mean); d > maxDiff {
			maxDiff = d
		}
	}
	if s.Mean != 0 {
		s.MaxDiffPercent = maxDiff / s.Mean * 100
	}
	return s
}

// quantile returns the q-th quantile of sorted values using linear
// interpolation between closest ranks.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// mode returns the smallest most-frequent value.
func mode(sorted []float64) (float64, bool) {
	if len(sorted) == 0 {
		return 0, false
	}
	best, bestCount := sorted[0], 1
	cur, curCount := sorted[0], 1
	for _, v := range sorted[1:] {
		if v == cur {
			curCount++
		} else {
			cur, curCount = v, 1
		}
		if curCount > bestCount {
			best, bestCount = cur, curCount
		}
	}
	return best, true
}

// Series is scatter-plot-ready data: one entry per measured row, in file
// order, with sentinel rows masked.
type Series struct {
	IDs    []string  `json:"ids"`
	Radial []float64 `json:"radial"`
	XAxis  []float64 `json:"x_axis"`
	YAxis  []float64 `json:"y_axis"`
}

// ScatterSeries extracts the plottable values from rows.
func ScatterSeries(rows []results.Row) *Series {
	s := &Series{}
	for _, row := range rows {
		if row.Kind != measure.KindMeasured {
			continue
		}
		s.IDs = append(s.IDs, row.ID)
		s.Radial = append(s.Radial, row.Radial)
		s.XAxis = append(s.XAxis, row.XAxis)
		s.YAxis = append(s.YAxis, row.YAxis)
	}
	return s
}
