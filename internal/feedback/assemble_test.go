package feedback

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finwell/finhealth-cli/internal/model"
)

func seededAssembler() *Assembler {
	return NewAssembler(rand.New(rand.NewPCG(1, 2)))
}

func metricsWith(entries map[string]*model.Metric) *model.PersonalFinanceMetrics {
	return &model.PersonalFinanceMetrics{
		TotalMonthlyIncome:  100000,
		TotalMonthlyExpense: 55000,
		TotalMonthlyEMI:     5000,
		TotalAssets:         1500000,
		TotalLiabilities:    500000,
		Assessed:            entries,
	}
}

func assessed(name string, value float64, bench model.Range, v model.Verdict) *model.Metric {
	return &model.Metric{
		Name:      name,
		Value:     value,
		Benchmark: &model.Range{Min: bench.Min, Max: bench.Max},
		Verdict:   v,
	}
}

func TestAssembleMissingInputs(t *testing.T) {
	a := seededAssembler()

	_, err := a.Assemble(nil, &model.PersonalFinanceMetrics{})
	assert.ErrorIs(t, err, ErrMissingInputs)

	_, err = a.Assemble(&model.UserProfile{}, nil)
	assert.ErrorIs(t, err, ErrMissingInputs)
}

func TestAssembleBuckets(t *testing.T) {
	a := seededAssembler()
	profile := &model.UserProfile{
		Personal:  model.PersonalData{Age: 30},
		Liability: model.LiabilityData{HomeLoanBalance: 500000},
	}
	pfm := metricsWith(map[string]*model.Metric{
		model.MetricSavingsIncome: assessed(model.MetricSavingsIncome, 0.25, model.Range{Min: 0.20, Max: 0.30}, model.VerdictExcellent),
		model.MetricEmergencyFund: assessed(model.MetricEmergencyFund, 1.2, model.Range{Min: 3, Max: 6}, model.VerdictExtremelyLow),
		model.MetricLiquidity:     assessed(model.MetricLiquidity, 4.8, model.Range{Min: 3, Max: 4}, model.VerdictHigh),
	})

	out, err := a.Assemble(profile, pfm)
	require.NoError(t, err)

	require.Len(t, out.Commendable, 1)
	assert.Equal(t, model.MetricSavingsIncome, out.Commendable[0].MetricName)
	assert.Contains(t, out.Commendable[0].CurrentScenario, "25%")

	require.Len(t, out.ReviewAreas, 1)
	assert.Equal(t, model.MetricLiquidity, out.ReviewAreas[0].MetricName)
	assert.Contains(t, out.ReviewAreas[0].CurrentScenario, "4.8")

	require.Len(t, out.Improvements, 1)
	assert.Equal(t, model.MetricEmergencyFund, out.Improvements[0].MetricName)
	assert.Contains(t, out.Improvements[0].CurrentScenario, "1.2")
	assert.Contains(t, out.Improvements[0].Actionable, "₹")
}

func TestAssembleNoDuplicatesAcrossBuckets(t *testing.T) {
	a := seededAssembler()
	profile := &model.UserProfile{
		Personal:  model.PersonalData{Age: 50},
		Liability: model.LiabilityData{CarLoanBalance: 100000},
	}
	// Both metrics are high: liquidity has a review template, housing does
	// not and must fall through to improvements.
	pfm := metricsWith(map[string]*model.Metric{
		model.MetricLiquidity:     assessed(model.MetricLiquidity, 4.8, model.Range{Min: 3, Max: 4}, model.VerdictHigh),
		model.MetricHousingIncome: assessed(model.MetricHousingIncome, 0.42, model.Range{Min: 0.10, Max: 0.30}, model.VerdictExtremelyHigh),
	})

	out, err := a.Assemble(profile, pfm)
	require.NoError(t, err)

	seen := map[string]int{}
	for _, p := range out.ReviewAreas {
		seen[p.MetricName]++
	}
	for _, p := range out.Improvements {
		seen[p.MetricName]++
	}
	assert.Equal(t, map[string]int{
		model.MetricLiquidity:     1,
		model.MetricHousingIncome: 1,
	}, seen)
	require.Len(t, out.ReviewAreas, 1)
	assert.Equal(t, model.MetricLiquidity, out.ReviewAreas[0].MetricName)
	require.Len(t, out.Improvements, 1)
	assert.Equal(t, model.MetricHousingIncome, out.Improvements[0].MetricName)
}

func TestAssembleDebtFreeCommendation(t *testing.T) {
	a := seededAssembler()
	profile := &model.UserProfile{Personal: model.PersonalData{Age: 35}}
	pfm := metricsWith(map[string]*model.Metric{})

	out, err := a.Assemble(profile, pfm)
	require.NoError(t, err)

	require.Len(t, out.Commendable, 1)
	assert.Equal(t, DebtFreeMetricName, out.Commendable[0].MetricName)
	assert.Contains(t, out.Commendable[0].CurrentScenario, "debt-free")
}

func TestAssembleAgePriorityOrdering(t *testing.T) {
	a := seededAssembler()
	profile := &model.UserProfile{
		Personal:  model.PersonalData{Age: 50},
		Liability: model.LiabilityData{PersonalLoanBal: 50000},
	}
	// At age 50 the priority order is retirement, net worth,
	// asset-liability, liquidity.
	pfm := metricsWith(map[string]*model.Metric{
		model.MetricLiquidity:  assessed(model.MetricLiquidity, 3.5, model.Range{Min: 3, Max: 4}, model.VerdictExcellent),
		model.MetricRetirement: assessed(model.MetricRetirement, 1.0, model.Range{Min: 0.85, Max: 1.2}, model.VerdictExcellent),
		model.MetricNetWorth:   assessed(model.MetricNetWorth, 1.1, model.Range{Min: 0.9, Max: 1.5}, model.VerdictExcellent),
		model.MetricSavingsIncome: assessed(model.MetricSavingsIncome, 0.25,
			model.Range{Min: 0.20, Max: 0.30}, model.VerdictGood),
	})

	out, err := a.Assemble(profile, pfm)
	require.NoError(t, err)
	require.Len(t, out.Commendable, 4)

	var names []string
	for _, p := range out.Commendable {
		names = append(names, p.MetricName)
	}
	assert.Equal(t, []string{
		model.MetricRetirement,
		model.MetricNetWorth,
		model.MetricLiquidity,
		model.MetricSavingsIncome, // unlisted metrics sort last
	}, names)
}

func TestAssembleInsuranceValuesInRupees(t *testing.T) {
	a := seededAssembler()
	profile := &model.UserProfile{
		Personal:  model.PersonalData{Age: 35, Dependents: 1},
		Insurance: model.InsuranceData{MedicalCover: 300000},
		Liability: model.LiabilityData{CarLoanBalance: 1},
	}
	pfm := metricsWith(map[string]*model.Metric{
		model.MetricHealthCover: assessed(model.MetricHealthCover, 0.3, model.Range{Min: 1.0, Max: 2.0}, model.VerdictExtremelyLow),
	})

	out, err := a.Assemble(profile, pfm)
	require.NoError(t, err)
	require.Len(t, out.Improvements, 1)

	// The scenario shows the actual cover, not the 0.3 ratio.
	assert.Contains(t, out.Improvements[0].CurrentScenario, "₹3,00,000")
}

func TestHeaderPickerPools(t *testing.T) {
	picker := NewHeaderPicker(rand.New(rand.NewPCG(7, 7)))

	ratio := &model.Metric{Name: model.MetricSavingsIncome, Verdict: model.VerdictLow}
	for i := 0; i < 20; i++ {
		h := picker.Pick(ratio)
		assert.Contains(t, h, "Savings Income Ratio")
		lower := strings.ToLower(h)
		assert.True(t, strings.Contains(lower, "low") || strings.Contains(lower, "below"), h)
	}

	adequacy := &model.Metric{Name: model.MetricTermCover, Verdict: model.VerdictExtremelyHigh}
	for i := 0; i < 20; i++ {
		h := picker.Pick(adequacy)
		lower := strings.ToLower(h)
		assert.True(t, strings.Contains(lower, "inadequate") || strings.Contains(lower, "insufficient"), h)
	}
}

func TestRupeesIndianGrouping(t *testing.T) {
	assert.Equal(t, "₹1,00,000", Rupees(100000))
	assert.Equal(t, "₹12,34,56,789", Rupees(123456789))
	assert.Equal(t, "₹500", Rupees(500.4))
}
