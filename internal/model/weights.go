package model

import (
	"sort"
	"strings"

	"github.com/rotisserie/eris"
)

// defaultWeights is the fixed importance budget used when no caller-supplied
// (or LLM-generated) weight map is available. Sums to 100.
var defaultWeights = map[string]int{
	MetricSavingsIncome:  10,
	MetricInvestIncome:   8,
	MetricExpenseIncome:  10,
	MetricDebtIncome:     10,
	MetricEmergencyFund:  12,
	MetricLiquidity:      6,
	MetricAssetLiability: 6,
	MetricHousingIncome:  6,
	MetricHealthCover:    8,
	MetricTermCover:      8,
	MetricNetWorth:       6,
	MetricRetirement:     10,
}

// DefaultWeights returns a fresh copy of the default weight map.
func DefaultWeights() map[string]int {
	out := make(map[string]int, len(defaultWeights))
	for k, v := range defaultWeights {
		out[k] = v
	}
	return out
}

// CanonicalMetricName normalizes a human-written metric label
// ("Savings-Income Ratio") to its canonical identifier
// ("savings_income_ratio").
func CanonicalMetricName(label string) string {
	s := strings.ToLower(strings.TrimSpace(label))
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}

// NormalizeWeights scales a raw weight map to non-negative integers summing
// to exactly 100, distributing rounding remainders to the entries with the
// largest fractional parts. Keys are passed through unchanged.
func NormalizeWeights(raw map[string]float64) (map[string]int, error) {
	if len(raw) == 0 {
		return nil, eris.New("weights: empty weight map")
	}

	// Clip negatives before scaling.
	clipped := make(map[string]float64, len(raw))
	total := 0.0
	for k, v := range raw {
		if v < 0 {
			v = 0
		}
		clipped[k] = v
		total += v
	}
	if total == 0 {
		return nil, eris.New("weights: all weights are zero")
	}

	scaled := make(map[string]float64, len(clipped))
	floored := make(map[string]int, len(clipped))
	sum := 0
	for k, v := range clipped {
		scaled[k] = v / total * 100
		floored[k] = int(scaled[k])
		sum += floored[k]
	}

	// Hand out the shortfall, largest remainder first. Ties break on key so
	// the result is deterministic.
	type rem struct {
		key  string
		frac float64
	}
	rems := make([]rem, 0, len(scaled))
	for k := range scaled {
		rems = append(rems, rem{key: k, frac: scaled[k] - float64(floored[k])})
	}
	sort.Slice(rems, func(i, j int) bool {
		if rems[i].frac != rems[j].frac {
			return rems[i].frac > rems[j].frac
		}
		return rems[i].key < rems[j].key
	})

	shortfall := 100 - sum
	for i := 0; i < shortfall && i < len(rems); i++ {
		floored[rems[i].key]++
	}

	return floored, nil
}

// AssignWeights attaches weights to the assessed metrics in pfm. Keys may be
// canonical identifiers or human-written labels; unknown keys are ignored.
func AssignWeights(pfm *PersonalFinanceMetrics, weights map[string]int) {
	for label, w := range weights {
		if m := pfm.Metric(CanonicalMetricName(label)); m != nil {
			m.Weight = w
		}
	}
}
