package metrics

import (
	"fmt"
	"math"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/finwell/finhealth-cli/internal/benchmark"
	"github.com/finwell/finhealth-cli/internal/model"
	"github.com/finwell/finhealth-cli/internal/segment"
)

// Config holds the projection and adequacy constants used while deriving
// metrics from a profile.
type Config struct {
	// AnnualInflationRate and CorpusGrowthRate drive the retirement
	// projection. Both are fractions, e.g. 0.05 for 5%.
	AnnualInflationRate float64
	CorpusGrowthRate    float64

	// LifeExpectancy bounds the retirement annuity horizon, in years.
	LifeExpectancy int

	// ExpenseReductionRate is the percentage drop in monthly outflow
	// expected after retirement, in [0, 50].
	ExpenseReductionRate float64

	// MedicalCoverFactor is the recommended medical cover per family
	// member, in INR. TermCoverFactor is the recommended term cover as a
	// multiple of annual income.
	MedicalCoverFactor float64
	TermCoverFactor    float64
}

// DefaultConfig returns the standard projection constants.
func DefaultConfig() Config {
	return Config{
		AnnualInflationRate:  0.05,
		CorpusGrowthRate:     0.08,
		LifeExpectancy:       75,
		ExpenseReductionRate: 0,
		MedicalCoverFactor:   500000,
		TermCoverFactor:      10,
	}
}

func (c Config) validate() error {
	if c.AnnualInflationRate < 0 || c.AnnualInflationRate >= 1 {
		return &ProjectionError{Reason: fmt.Sprintf("inflation rate %.4f outside [0, 1)", c.AnnualInflationRate)}
	}
	if c.CorpusGrowthRate < 0 || c.CorpusGrowthRate >= 1 {
		return &ProjectionError{Reason: fmt.Sprintf("growth rate %.4f outside [0, 1)", c.CorpusGrowthRate)}
	}
	if c.LifeExpectancy <= 0 {
		return &ProjectionError{Reason: fmt.Sprintf("life expectancy %d must be positive", c.LifeExpectancy)}
	}
	if c.ExpenseReductionRate < 0 || c.ExpenseReductionRate > 50 {
		return &ProjectionError{Reason: fmt.Sprintf("expense reduction rate %.2f outside [0, 50]", c.ExpenseReductionRate)}
	}
	return nil
}

// Calculator derives the full metric set for a profile. It carries no
// per-profile state; one Calculator may serve concurrent analyses.
type Calculator struct {
	cfg   Config
	table benchmark.Table
}

// NewCalculator returns a Calculator using the given constants and benchmark
// table. A nil table falls back to the built-in defaults.
func NewCalculator(cfg Config, table benchmark.Table) *Calculator {
	if table == nil {
		table = benchmark.Default
	}
	return &Calculator{cfg: cfg, table: table}
}

// Compute derives all aggregates and the twelve assessable metrics from the
// profile. Individual metrics whose arithmetic is undefined (a zero
// denominator) are flagged and carried along rather than aborting the run;
// only a missing profile or an invalid retirement projection is fatal.
func (c *Calculator) Compute(profile *model.UserProfile) (*model.PersonalFinanceMetrics, error) {
	if profile == nil {
		return nil, ErrMissingProfile
	}

	income := totalMonthlyIncome(profile.Income)
	expense := totalMonthlyExpense(profile.Expense)
	investments := totalMonthlyInvestments(profile.Asset)
	emi := totalMonthlyEMI(profile.Liability)
	assets := totalAssets(profile.Asset)
	liabilities := totalLiabilities(profile.Liability)

	corpus, err := c.targetRetirementCorpus(expense+emi,
		profile.Personal.Age, profile.Personal.ExpectedRetirementAge)
	if err != nil {
		return nil, eris.Wrap(err, "deriving target retirement corpus")
	}

	pfm := &model.PersonalFinanceMetrics{
		CityTier:                segment.ClassifyCityTier(profile.Personal.City),
		TotalMonthlyIncome:      round2(income),
		TotalMonthlyExpense:     round2(expense),
		TotalMonthlyInvestments: round2(investments),
		TotalMonthlyEMI:         round2(emi),
		TotalAssets:             round2(assets),
		TotalLiabilities:        round2(liabilities),
		TargetRetirementCorpus:  round2(corpus),
		AssetClassDistribution:  assetClassDistribution(profile.Asset, assets),
		Assessed:                make(map[string]*model.Metric, len(model.AssessedMetrics)),
	}

	bracket := segment.ClassifyIncomeBracket(income)

	for _, name := range model.AssessedMetrics {
		value, err := c.metricValue(name, profile, income, expense, emi, assets, liabilities, corpus)
		m := &model.Metric{Name: name}
		if err != nil {
			var ime *InvalidMetricError
			if !eris.As(err, &ime) {
				return nil, eris.Wrapf(err, "computing %s", name)
			}
			m.Failed = true
			m.Cause = ime.Cause
			zap.L().Warn("metric computation failed",
				zap.String("metric", name),
				zap.String("cause", ime.Cause))
		} else {
			m.Value = round2(value)
		}
		if rng, ok := c.table.Resolve(name, pfm.CityTier, bracket); ok {
			r := rng
			m.Benchmark = &r
		}
		pfm.Assessed[name] = m
	}

	return pfm, nil
}

func (c *Calculator) metricValue(name string, profile *model.UserProfile,
	income, expense, emi, assets, liabilities, corpus float64) (float64, error) {

	switch name {
	case model.MetricSavingsIncome:
		if income == 0 {
			return 0, invalidMetric(name, "total monthly income")
		}
		return (income - expense - emi) / income, nil

	case model.MetricInvestIncome:
		if income == 0 {
			return 0, invalidMetric(name, "total monthly income")
		}
		return totalMonthlyInvestments(profile.Asset) / income, nil

	case model.MetricExpenseIncome:
		if income == 0 {
			return 0, invalidMetric(name, "total monthly income")
		}
		return expense / income, nil

	case model.MetricDebtIncome:
		if income == 0 {
			return 0, invalidMetric(name, "total monthly income")
		}
		return emi / income, nil

	case model.MetricEmergencyFund:
		outflow := expense + emi
		if outflow == 0 {
			return 0, invalidMetric(name, "total monthly outflow")
		}
		return profile.Asset.EmergencyFund / outflow, nil

	case model.MetricLiquidity:
		outflow := expense + emi
		if outflow == 0 {
			return 0, invalidMetric(name, "total monthly outflow")
		}
		return (profile.Asset.SavingsBalance + profile.Asset.EmergencyFund) / outflow, nil

	case model.MetricAssetLiability:
		if liabilities == 0 {
			return 0, invalidMetric(name, "total liabilities")
		}
		return assets / liabilities, nil

	case model.MetricHousingIncome:
		if income == 0 {
			return 0, invalidMetric(name, "total monthly income")
		}
		return profile.Expense.Housing / income, nil

	case model.MetricHealthCover:
		recommended := float64(profile.Personal.FamilySize()) * c.cfg.MedicalCoverFactor
		if recommended == 0 {
			return 0, invalidMetric(name, "recommended medical cover")
		}
		return profile.Insurance.MedicalCover / recommended, nil

	case model.MetricTermCover:
		recommended := income * 12 * c.cfg.TermCoverFactor
		if recommended == 0 {
			return 0, invalidMetric(name, "recommended term cover")
		}
		return profile.Insurance.TermCover / recommended, nil

	case model.MetricNetWorth:
		expected := income * 12 * netWorthMultiplier(profile.Personal.Age)
		if expected == 0 {
			return 0, invalidMetric(name, "expected net worth")
		}
		return (assets - liabilities) / expected, nil

	case model.MetricRetirement:
		if corpus == 0 {
			return 0, invalidMetric(name, "target retirement corpus")
		}
		projected := c.projectedRetirementSavings(
			profile.Asset.RetirementInvestments,
			profile.Asset.RetirementSIP,
			profile.Personal.Age,
			profile.Personal.ExpectedRetirementAge)
		return projected / corpus, nil
	}

	return 0, eris.Errorf("unknown metric %q", name)
}

// netWorthMultiplier returns the expected net worth as a multiple of annual
// income for the given age band.
func netWorthMultiplier(age int) float64 {
	switch {
	case age < 30:
		return 1
	case age < 40:
		return 2
	case age < 50:
		return 4
	case age < 60:
		return 6
	default:
		return 8
	}
}

func totalMonthlyIncome(in model.IncomeData) float64 {
	return in.Salaried + in.Business + in.Freelance + in.Rental + in.Other
}

func totalMonthlyExpense(ex model.ExpenseData) float64 {
	return ex.Housing + ex.Utilities + ex.Groceries +
		ex.TermPremium + ex.MedicalPremium + ex.Discretionary
}

func totalMonthlyInvestments(a model.AssetData) float64 {
	return a.EquitySIP + a.DebtSIP + a.RetirementSIP
}

func totalMonthlyEMI(l model.LiabilityData) float64 {
	return l.CreditCardEMI + l.PersonalLoanEMI + l.CarLoanEMI +
		l.StudentLoanEMI + l.HomeLoanEMI
}

func totalAssets(a model.AssetData) float64 {
	return a.SavingsBalance + a.EmergencyFund + a.EquityInvestments +
		a.DebtInvestments + a.RetirementInvestments + a.RealEstateInvestments
}

func totalLiabilities(l model.LiabilityData) float64 {
	return l.CreditCardBalance + l.PersonalLoanBal + l.CarLoanBalance +
		l.StudentLoanBal + l.HomeLoanBalance
}

// assetClassDistribution returns per-class fractions of total assets, or nil
// when the user holds nothing.
func assetClassDistribution(a model.AssetData, total float64) map[string]float64 {
	if total == 0 {
		return nil
	}
	return map[string]float64{
		"savings":        round2(a.SavingsBalance / total),
		"emergency_fund": round2(a.EmergencyFund / total),
		"equity":         round2(a.EquityInvestments / total),
		"debt":           round2(a.DebtInvestments / total),
		"retirement":     round2(a.RetirementInvestments / total),
		"real_estate":    round2(a.RealEstateInvestments / total),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
