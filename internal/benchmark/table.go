// Package benchmark resolves ideal value ranges for assessable metrics.
// Ranges are static configuration: some metrics carry a single flat range,
// others vary by city tier and income bracket.
package benchmark

import (
	"github.com/finwell/finhealth-cli/internal/model"
	"github.com/finwell/finhealth-cli/internal/segment"
)

// TieredRanges maps city tier -> income bracket -> ideal range.
type TieredRanges map[int]map[segment.Bracket]model.Range

// Entry is the benchmark definition for one metric: either Flat or Tiered
// is set, never both.
type Entry struct {
	Flat   *model.Range
	Tiered TieredRanges
}

// Table maps metric names to their benchmark entries. Tables are immutable
// after construction and safe for concurrent use.
type Table map[string]Entry

// Resolve returns the ideal range for a metric given the user's city tier
// and income bracket. The second return is false when the metric is unknown
// or the tier/bracket combination has no entry; that is a valid outcome
// consumed downstream as "no benchmark provided", never an error.
func (t Table) Resolve(metricName string, cityTier int, bracket segment.Bracket) (model.Range, bool) {
	entry, ok := t[metricName]
	if !ok {
		return model.Range{}, false
	}
	if entry.Flat != nil {
		return *entry.Flat, true
	}
	byBracket, ok := entry.Tiered[cityTier]
	if !ok {
		return model.Range{}, false
	}
	r, ok := byBracket[bracket]
	return r, ok
}

func flat(min, max float64) Entry {
	return Entry{Flat: &model.Range{Min: min, Max: max}}
}

// perBracket builds one tier's bracket map from seven ranges in IG1..IG7 order.
func perBracket(ranges ...model.Range) map[segment.Bracket]model.Range {
	out := make(map[segment.Bracket]model.Range, len(segment.Brackets))
	for i, b := range segment.Brackets {
		out[b] = ranges[i]
	}
	return out
}

func rng(min, max float64) model.Range { return model.Range{Min: min, Max: max} }

// Default is the built-in benchmark table. Savings, investment and expense
// ratios depend on how far income stretches in a given city; the remaining
// metrics use flat ranges.
var Default = Table{
	model.MetricSavingsIncome: {Tiered: TieredRanges{
		1: perBracket(
			rng(0.05, 0.15), rng(0.10, 0.20), rng(0.15, 0.25), rng(0.20, 0.30),
			rng(0.25, 0.35), rng(0.30, 0.40), rng(0.35, 0.50),
		),
		2: perBracket(
			rng(0.10, 0.20), rng(0.15, 0.25), rng(0.20, 0.30), rng(0.25, 0.35),
			rng(0.30, 0.40), rng(0.35, 0.45), rng(0.40, 0.55),
		),
		3: perBracket(
			rng(0.15, 0.25), rng(0.20, 0.30), rng(0.25, 0.35), rng(0.30, 0.40),
			rng(0.35, 0.45), rng(0.40, 0.50), rng(0.45, 0.60),
		),
	}},
	model.MetricInvestIncome: {Tiered: TieredRanges{
		1: perBracket(
			rng(0.05, 0.10), rng(0.08, 0.15), rng(0.12, 0.20), rng(0.15, 0.25),
			rng(0.20, 0.30), rng(0.25, 0.35), rng(0.30, 0.40),
		),
		2: perBracket(
			rng(0.06, 0.12), rng(0.10, 0.18), rng(0.14, 0.22), rng(0.18, 0.28),
			rng(0.22, 0.32), rng(0.27, 0.37), rng(0.32, 0.42),
		),
		3: perBracket(
			rng(0.08, 0.14), rng(0.12, 0.20), rng(0.16, 0.24), rng(0.20, 0.30),
			rng(0.25, 0.35), rng(0.30, 0.40), rng(0.35, 0.45),
		),
	}},
	model.MetricExpenseIncome: {Tiered: TieredRanges{
		1: perBracket(
			rng(0.60, 0.80), rng(0.55, 0.75), rng(0.50, 0.70), rng(0.45, 0.65),
			rng(0.40, 0.60), rng(0.35, 0.55), rng(0.30, 0.50),
		),
		2: perBracket(
			rng(0.55, 0.75), rng(0.50, 0.70), rng(0.45, 0.65), rng(0.40, 0.60),
			rng(0.35, 0.55), rng(0.30, 0.50), rng(0.25, 0.45),
		),
		3: perBracket(
			rng(0.50, 0.70), rng(0.45, 0.65), rng(0.40, 0.60), rng(0.35, 0.55),
			rng(0.30, 0.50), rng(0.25, 0.45), rng(0.20, 0.40),
		),
	}},

	model.MetricDebtIncome:     flat(0.00, 0.36),
	model.MetricEmergencyFund:  flat(3, 6),
	model.MetricLiquidity:      flat(3, 4),
	model.MetricAssetLiability: flat(1.5, 3.0),
	model.MetricHousingIncome:  flat(0.10, 0.30),
	model.MetricHealthCover:    flat(1.0, 2.0),
	model.MetricTermCover:      flat(1.0, 1.5),
	model.MetricNetWorth:       flat(0.9, 1.5),
	model.MetricRetirement:     flat(0.85, 1.2),
}
