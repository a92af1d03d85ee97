package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finwell/finhealth-cli/internal/model"
)

func metric(value float64, bench *model.Range, weight int) *model.Metric {
	return &model.Metric{
		Name:      model.MetricSavingsIncome,
		Value:     value,
		Benchmark: bench,
		Weight:    weight,
	}
}

func TestScoreWithinRange(t *testing.T) {
	bench := &model.Range{Min: 0.20, Max: 0.30}

	assert.Equal(t, 10.0, Score(metric(0.25, bench, 10)))
	assert.Equal(t, 10.0, Score(metric(0.20, bench, 10)))
	assert.Equal(t, 10.0, Score(metric(0.30, bench, 10)))
}

func TestScoreOverPerformance(t *testing.T) {
	bench := &model.Range{Min: 0.20, Max: 0.30}

	assert.InDelta(t, 8.5, Score(metric(0.35, bench, 10)), 1e-9)
	assert.InDelta(t, 8.5, Score(metric(5.0, bench, 10)), 1e-9)
}

func TestScoreCubicDecayBelowRange(t *testing.T) {
	bench := &model.Range{Min: 0.20, Max: 0.30}

	// Halfway to the floor: 10 * (0.1 + 0.9*0.5)^3.
	assert.InDelta(t, 10*0.55*0.55*0.55, Score(metric(0.10, bench, 10)), 1e-9)
	// At zero only the base survives.
	assert.InDelta(t, 10*0.001, Score(metric(0, bench, 10)), 1e-9)
	// Negative values clamp to the base as well.
	assert.InDelta(t, 10*0.001, Score(metric(-0.5, bench, 10)), 1e-9)
}

func TestScoreBounded(t *testing.T) {
	bench := &model.Range{Min: 0.20, Max: 0.30}

	for _, v := range []float64{-1, 0, 0.05, 0.19, 0.25, 0.31, 2, 100} {
		s := Score(metric(v, bench, 12))
		assert.GreaterOrEqual(t, s, 0.0, "value %v", v)
		assert.LessOrEqual(t, s, 12.0, "value %v", v)
	}
}

func TestScoreDegenerateInputs(t *testing.T) {
	bench := &model.Range{Min: 0.20, Max: 0.30}

	assert.Equal(t, 0.0, Score(nil))
	assert.Equal(t, 0.0, Score(metric(0.25, nil, 10)))
	assert.Equal(t, 0.0, Score(metric(0.25, bench, 0)))

	failed := metric(0.25, bench, 10)
	failed.Failed = true
	assert.Equal(t, 0.0, Score(failed))

	// Zero lower bound cannot produce a ratio; only the base remains.
	zeroLo := &model.Range{Min: 0, Max: 0.36}
	assert.InDelta(t, 10*0.001, Score(metric(-0.1, zeroLo, 10)), 1e-9)
}

func TestAssignRoundsToWholePoints(t *testing.T) {
	pfm := &model.PersonalFinanceMetrics{
		Assessed: map[string]*model.Metric{
			model.MetricSavingsIncome: {
				Name:      model.MetricSavingsIncome,
				Value:     0.35,
				Benchmark: &model.Range{Min: 0.20, Max: 0.30},
				Weight:    10,
			},
			model.MetricDebtIncome: {
				Name:   model.MetricDebtIncome,
				Failed: true,
				Weight: 10,
			},
		},
	}

	Assign(pfm)

	assert.Equal(t, 9.0, pfm.Metric(model.MetricSavingsIncome).Score)
	assert.Equal(t, 0.0, pfm.Metric(model.MetricDebtIncome).Score)
}

func TestBuildTable(t *testing.T) {
	pfm := &model.PersonalFinanceMetrics{
		Assessed: map[string]*model.Metric{
			model.MetricSavingsIncome: {
				Name:      model.MetricSavingsIncome,
				Value:     0.25,
				Benchmark: &model.Range{Min: 0.20, Max: 0.30},
				Verdict:   model.VerdictExcellent,
				Weight:    10,
				Score:     10,
			},
			model.MetricEmergencyFund: {
				Name:    model.MetricEmergencyFund,
				Failed:  true,
				Verdict: model.VerdictError,
				Weight:  12,
			},
		},
	}

	table := BuildTable(pfm)

	require.Len(t, table.Rows, 2)
	// Canonical order puts savings first.
	assert.Equal(t, "Savings Income Ratio", table.Rows[0].Metric)
	assert.Equal(t, "0.20 - 0.30", table.Rows[0].Benchmark)
	assert.Equal(t, "0.25", table.Rows[0].Value)
	assert.Equal(t, "Excellent", table.Rows[0].Verdict)
	assert.Equal(t, "n/a", table.Rows[1].Value)
	assert.Equal(t, "Error Computing Metric", table.Rows[1].Verdict)
	assert.Empty(t, table.Rows[1].Benchmark)
	assert.Equal(t, 22, table.TotalWeight)
	assert.Equal(t, 10.0, table.TotalPoints)
}
