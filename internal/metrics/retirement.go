package metrics

import (
	"fmt"
	"math"
)

// realReturnEpsilon is the threshold below which the post-retirement real
// rate of return is treated as zero and the annuity formula degenerates to
// a flat sum of monthly expenses.
const realReturnEpsilon = 1e-6

// targetRetirementCorpus projects the lump sum needed on the retirement date
// to fund monthly expenses until the configured life expectancy. Current
// monthly outflow is inflated to retirement, optionally reduced by the
// expense-reduction rate, and then priced as an annuity at the real rate of
// return earned on the corpus during retirement.
func (c *Calculator) targetRetirementCorpus(monthlyOutflow float64, age, retirementAge int) (float64, error) {
	if err := c.cfg.validate(); err != nil {
		return 0, err
	}
	if age <= 0 {
		return 0, &ProjectionError{Reason: fmt.Sprintf("age must be positive, got %d", age)}
	}
	if retirementAge <= age {
		return 0, &ProjectionError{Reason: fmt.Sprintf("retirement age %d must exceed current age %d", retirementAge, age)}
	}
	if retirementAge >= c.cfg.LifeExpectancy {
		return 0, &ProjectionError{Reason: fmt.Sprintf("retirement age %d must be below life expectancy %d", retirementAge, c.cfg.LifeExpectancy)}
	}

	yearsToRetirement := float64(retirementAge - age)
	yearsInRetirement := float64(c.cfg.LifeExpectancy - retirementAge)

	projectedMonthly := monthlyOutflow *
		math.Pow(1+c.cfg.AnnualInflationRate, yearsToRetirement) *
		(1 - c.cfg.ExpenseReductionRate/100)

	realReturn := (1+c.cfg.CorpusGrowthRate)/(1+c.cfg.AnnualInflationRate) - 1
	if math.Abs(realReturn) < realReturnEpsilon {
		return projectedMonthly * yearsInRetirement * 12, nil
	}

	monthlyReal := realReturn / 12
	months := yearsInRetirement * 12
	corpus := projectedMonthly * (1 - math.Pow(1+monthlyReal, -months)) / monthlyReal
	return corpus, nil
}

// projectedRetirementSavings grows the existing retirement holdings and the
// ongoing retirement SIP to the retirement date at the nominal growth rate,
// then applies the inflation adjustment over the accumulation horizon.
func (c *Calculator) projectedRetirementSavings(lumpsum, monthlySIP float64, age, retirementAge int) float64 {
	years := float64(retirementAge - age)
	if years <= 0 {
		return lumpsum
	}

	growth := c.cfg.CorpusGrowthRate
	future := lumpsum * math.Pow(1+growth, years)

	if monthlySIP > 0 {
		monthlyRate := growth / 12
		if math.Abs(monthlyRate) < realReturnEpsilon {
			future += monthlySIP * years * 12
		} else {
			future += monthlySIP * (1 + monthlyRate) *
				(math.Pow(1+monthlyRate, years*12) - 1) * 12 / growth
		}
	}

	return future * math.Pow(1+c.cfg.AnnualInflationRate, years)
}
