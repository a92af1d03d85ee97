// Package verdict maps a metric value onto a seven-band verdict relative to
// its benchmark range. Values inside the range are excellent; outside, two
// progressively relaxed ranges decide how far off the value sits.
package verdict

import (
	"github.com/finwell/finhealth-cli/internal/model"
)

// Config holds the relaxation multipliers applied to the benchmark bounds.
// Stage one widens the range slightly; values caught there are merely good
// or out of band. Stage two widens it further; values outside even that are
// extreme.
type Config struct {
	LowStage1  float64
	HighStage1 float64
	LowStage2  float64
	HighStage2 float64
}

// DefaultConfig returns the standard relaxation multipliers.
func DefaultConfig() Config {
	return Config{
		LowStage1:  0.85,
		HighStage1: 1.15,
		LowStage2:  0.75,
		HighStage2: 1.25,
	}
}

// Classify assigns a verdict to value against the benchmark.
//
// The bands are a strict cascade on half-open intervals: a value exactly on
// the lower bound is excellent, a value exactly on the upper bound has just
// left the ideal range and is good.
func Classify(cfg Config, value float64, benchmark model.Range) model.Verdict {
	lo, hi := benchmark.Min, benchmark.Max

	switch {
	case value < lo*cfg.LowStage2:
		return model.VerdictExtremelyLow
	case value < lo*cfg.LowStage1:
		return model.VerdictLow
	case value < lo:
		return model.VerdictGood
	case value < hi:
		return model.VerdictExcellent
	case value < hi*cfg.HighStage1:
		return model.VerdictGood
	case value < hi*cfg.HighStage2:
		return model.VerdictHigh
	default:
		return model.VerdictExtremelyHigh
	}
}

// Assign classifies every assessable metric in place. Failed metrics get the
// error verdict; metrics with no benchmark for the user's segment get the
// no-benchmark verdict.
func Assign(cfg Config, pfm *model.PersonalFinanceMetrics) {
	pfm.EachAssessed(func(m *model.Metric) {
		switch {
		case m.Failed:
			m.Verdict = model.VerdictError
		case m.Benchmark == nil:
			m.Verdict = model.VerdictNoBenchmark
		default:
			m.Verdict = Classify(cfg, m.Value, *m.Benchmark)
		}
	})
}
