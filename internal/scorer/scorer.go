// Package scorer converts verdict-annotated metrics into weighted points and
// assembles the scoring table shown in reports.
package scorer

import (
	"fmt"
	"math"

	"github.com/finwell/finhealth-cli/internal/model"
)

// scoringBase is the floor of the cubic decay curve: a metric at zero still
// earns base^3 of its weight rather than nothing.
const scoringBase = 0.1

// overPerformanceFactor is the credit for values above the benchmark
// maximum. Exceeding the range is usually fine but not ideal, so it earns
// slightly less than full marks.
const overPerformanceFactor = 0.85

// Score computes the points earned by a single metric against its weight.
//
// Full weight inside the benchmark range, a fixed fraction above it, and a
// cubic decay below it so that small shortfalls cost little and large ones
// cost a lot. Failed metrics and metrics without a benchmark earn nothing.
func Score(m *model.Metric) float64 {
	if m == nil || m.Failed || m.Benchmark == nil || m.Weight == 0 {
		return 0
	}

	val := m.Value
	lo, hi := m.Benchmark.Min, m.Benchmark.Max
	weight := float64(m.Weight)

	if val >= lo && val <= hi {
		return weight
	}
	if val >= hi {
		return overPerformanceFactor * weight
	}

	var ratio float64
	if val < lo {
		if lo == 0 {
			ratio = 0
		} else {
			ratio = val / lo
		}
	} else {
		ratio = hi / val
	}
	ratio = math.Max(0, math.Min(1, ratio))

	return weight * math.Pow(scoringBase+(1-scoringBase)*ratio, 3)
}

// Assign scores every assessable metric in place, rounding points to whole
// numbers.
func Assign(pfm *model.PersonalFinanceMetrics) {
	pfm.EachAssessed(func(m *model.Metric) {
		m.Score = math.Round(Score(m))
	})
}

// BuildTable assembles the per-metric scoring rows plus totals, in canonical
// metric order.
func BuildTable(pfm *model.PersonalFinanceMetrics) model.ScoringTable {
	var table model.ScoringTable
	pfm.EachAssessed(func(m *model.Metric) {
		row := model.ScoringRow{
			Metric:  m.DisplayName(),
			Weight:  m.Weight,
			Value:   fmt.Sprintf("%.2f", m.Value),
			Verdict: m.Verdict.Display(),
			Points:  m.Score,
		}
		if m.Failed {
			row.Value = "n/a"
		}
		if m.Benchmark != nil {
			row.Benchmark = m.Benchmark.String()
		}
		table.Rows = append(table.Rows, row)
		table.TotalWeight += m.Weight
		table.TotalPoints += m.Score
	})
	return table
}
