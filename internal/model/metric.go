package model

import (
	"fmt"
	"strings"
)

// Verdict classifies how a metric's value compares to its benchmark.
type Verdict string

const (
	VerdictExtremelyLow  Verdict = "extremely_low"
	VerdictLow           Verdict = "low"
	VerdictGood          Verdict = "good"
	VerdictExcellent     Verdict = "excellent"
	VerdictHigh          Verdict = "high"
	VerdictExtremelyHigh Verdict = "extremely_high"

	// VerdictError flags a metric whose computation failed (e.g. a zero
	// denominator). The metric still appears in output, visibly flagged.
	VerdictError Verdict = "error_computing_metric"

	// VerdictNoBenchmark flags a metric with no benchmark defined for the
	// user's segment. Absence of a benchmark is a valid outcome, not an error.
	VerdictNoBenchmark Verdict = "no_benchmark_provided"
)

// Commendable reports whether the verdict earns a commendation.
func (v Verdict) Commendable() bool {
	return v == VerdictGood || v == VerdictExcellent
}

// NeedsImprovement reports whether the verdict calls for corrective action.
func (v Verdict) NeedsImprovement() bool {
	switch v {
	case VerdictExtremelyLow, VerdictLow, VerdictHigh, VerdictExtremelyHigh:
		return true
	}
	return false
}

// NeedsReview reports whether the verdict flags an unusually high value
// worth a closer look before recommending changes.
func (v Verdict) NeedsReview() bool {
	return v == VerdictHigh || v == VerdictExtremelyHigh
}

// Display returns the verdict in capitalised words, e.g. "Extremely High".
func (v Verdict) Display() string {
	return titleWords(string(v))
}

// Range is an ideal (min, max) benchmark band for a metric.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether val lies in [Min, Max].
func (r Range) Contains(val float64) bool {
	return val >= r.Min && val <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("%.2f - %.2f", r.Min, r.Max)
}

// Metric is one named financial ratio or adequacy figure together with its
// benchmark, verdict, weight and assigned score.
type Metric struct {
	Name      string  `json:"metric_name"`
	Value     float64 `json:"value"`
	Benchmark *Range  `json:"benchmark,omitempty"`
	Verdict   Verdict `json:"verdict,omitempty"`
	Weight    int     `json:"weight"`
	Score     float64 `json:"assigned_score"`

	// Failed marks a metric whose computation could not be carried out;
	// Cause holds the offending denominator. Value is meaningless when set.
	Failed bool   `json:"failed,omitempty"`
	Cause  string `json:"cause,omitempty"`
}

// DisplayName returns the metric name in capitalised words,
// e.g. "Savings Income Ratio".
func (m *Metric) DisplayName() string {
	return titleWords(m.Name)
}

// Canonical metric identifiers for the twelve assessable metrics.
const (
	MetricSavingsIncome  = "savings_income_ratio"
	MetricInvestIncome   = "investment_income_ratio"
	MetricExpenseIncome  = "expense_income_ratio"
	MetricDebtIncome     = "debt_income_ratio"
	MetricEmergencyFund  = "emergency_fund_ratio"
	MetricLiquidity      = "liquidity_ratio"
	MetricAssetLiability = "asset_liability_ratio"
	MetricHousingIncome  = "housing_income_ratio"
	MetricHealthCover    = "health_insurance_adequacy"
	MetricTermCover      = "term_insurance_adequacy"
	MetricNetWorth       = "net_worth_adequacy"
	MetricRetirement     = "retirement_adequacy"
)

// AssessedMetrics lists the assessable metric names in canonical order:
// the eight ratios followed by the four adequacies.
var AssessedMetrics = []string{
	MetricSavingsIncome,
	MetricInvestIncome,
	MetricExpenseIncome,
	MetricDebtIncome,
	MetricEmergencyFund,
	MetricLiquidity,
	MetricAssetLiability,
	MetricHousingIncome,
	MetricHealthCover,
	MetricTermCover,
	MetricNetWorth,
	MetricRetirement,
}

// IsAssessedMetric reports whether name is one of the assessable metrics.
func IsAssessedMetric(name string) bool {
	for _, n := range AssessedMetrics {
		if n == name {
			return true
		}
	}
	return false
}

// PersonalFinanceMetrics aggregates everything derived from one profile:
// un-assessed scalar totals plus the twelve assessable metrics.
// Created fresh per analysis; never mutated after the pipeline completes.
type PersonalFinanceMetrics struct {
	CityTier                int                `json:"city_tier"`
	TotalMonthlyIncome      float64            `json:"total_monthly_income"`
	TotalMonthlyExpense     float64            `json:"total_monthly_expense"`
	TotalMonthlyInvestments float64            `json:"total_monthly_investments"`
	TotalMonthlyEMI         float64            `json:"total_monthly_emi"`
	TotalAssets             float64            `json:"total_assets"`
	TotalLiabilities        float64            `json:"total_liabilities"`
	TargetRetirementCorpus  float64            `json:"target_retirement_corpus"`
	AssetClassDistribution  map[string]float64 `json:"asset_class_distribution,omitempty"`

	Assessed map[string]*Metric `json:"assessed"`
}

// Metric returns the assessed metric with the given canonical name, or nil.
func (p *PersonalFinanceMetrics) Metric(name string) *Metric {
	if p == nil || p.Assessed == nil {
		return nil
	}
	return p.Assessed[name]
}

// EachAssessed calls fn for every assessable metric in canonical order,
// skipping names with no computed entry.
func (p *PersonalFinanceMetrics) EachAssessed(fn func(m *Metric)) {
	for _, name := range AssessedMetrics {
		if m := p.Metric(name); m != nil {
			fn(m)
		}
	}
}

// titleWords converts a snake_case identifier to capitalised words.
func titleWords(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
