package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerdictBuckets(t *testing.T) {
	assert.True(t, VerdictExcellent.Commendable())
	assert.True(t, VerdictGood.Commendable())
	assert.False(t, VerdictLow.Commendable())

	assert.True(t, VerdictExtremelyLow.NeedsImprovement())
	assert.True(t, VerdictExtremelyHigh.NeedsImprovement())
	assert.False(t, VerdictGood.NeedsImprovement())
	assert.False(t, VerdictError.NeedsImprovement())

	assert.True(t, VerdictHigh.NeedsReview())
	assert.True(t, VerdictExtremelyHigh.NeedsReview())
	assert.False(t, VerdictLow.NeedsReview())
}

func TestVerdictDisplay(t *testing.T) {
	assert.Equal(t, "Extremely High", VerdictExtremelyHigh.Display())
	assert.Equal(t, "Good", VerdictGood.Display())
}

func TestRange(t *testing.T) {
	r := Range{Min: 0.2, Max: 0.4}
	assert.True(t, r.Contains(0.2))
	assert.True(t, r.Contains(0.4))
	assert.False(t, r.Contains(0.41))
	assert.Equal(t, "0.20 - 0.40", r.String())
}

func TestMetricDisplayName(t *testing.T) {
	m := &Metric{Name: MetricSavingsIncome}
	assert.Equal(t, "Savings Income Ratio", m.DisplayName())

	m = &Metric{Name: MetricHealthCover}
	assert.Equal(t, "Health Insurance Adequacy", m.DisplayName())
}

func TestIsAssessedMetric(t *testing.T) {
	assert.True(t, IsAssessedMetric(MetricRetirement))
	assert.False(t, IsAssessedMetric("crypto_exposure"))
}

func TestEachAssessedOrder(t *testing.T) {
	pfm := &PersonalFinanceMetrics{Assessed: map[string]*Metric{}}
	for _, name := range AssessedMetrics {
		pfm.Assessed[name] = &Metric{Name: name}
	}
	// Drop one entry; iteration must skip it without panicking.
	delete(pfm.Assessed, MetricLiquidity)

	var seen []string
	pfm.EachAssessed(func(m *Metric) { seen = append(seen, m.Name) })

	require.Len(t, seen, len(AssessedMetrics)-1)
	assert.Equal(t, MetricSavingsIncome, seen[0])
	assert.Equal(t, MetricRetirement, seen[len(seen)-1])
	assert.NotContains(t, seen, MetricLiquidity)
}

func TestMetricLookupNilSafe(t *testing.T) {
	var pfm *PersonalFinanceMetrics
	assert.Nil(t, pfm.Metric(MetricSavingsIncome))
}

func TestDebtFree(t *testing.T) {
	assert.True(t, LiabilityData{}.DebtFree())
	assert.False(t, LiabilityData{HomeLoanBalance: 100000}.DebtFree())
	assert.True(t, LiabilityData{HomeLoanEMI: 5000}.DebtFree()) // EMIs alone don't count
}

func TestFamilySize(t *testing.T) {
	assert.Equal(t, 1, PersonalData{}.FamilySize())
	assert.Equal(t, 4, PersonalData{Dependents: 3}.FamilySize())
}
