package feedback

import (
	"math"

	"github.com/finwell/finhealth-cli/internal/model"
)

// minGapThreshold is the floor on suggested amounts, avoiding noisy advice
// like "add ₹37".
const minGapThreshold = 1000

// gapBases carries the monetary aggregates gaps are scaled against.
type gapBases struct {
	Income             float64
	Outflow            float64 // expenses plus EMIs
	Corpus             float64
	Assets             float64
	Liabilities        float64
	MedicalCover       float64
	TermCover          float64
	FamilySize         int
	YearsToRetirement  int
	MedicalCoverFactor float64
	TermCoverFactor    float64
}

func basesFor(profile *model.UserProfile, pfm *model.PersonalFinanceMetrics, medicalFactor, termFactor float64) gapBases {
	return gapBases{
		Income:             pfm.TotalMonthlyIncome,
		Outflow:            pfm.TotalMonthlyExpense + pfm.TotalMonthlyEMI,
		Corpus:             pfm.TargetRetirementCorpus,
		Assets:             pfm.TotalAssets,
		Liabilities:        pfm.TotalLiabilities,
		MedicalCover:       profile.Insurance.MedicalCover,
		TermCover:          profile.Insurance.TermCover,
		FamilySize:         profile.Personal.FamilySize(),
		YearsToRetirement:  profile.Personal.YearsToRetirement(),
		MedicalCoverFactor: medicalFactor,
		TermCoverFactor:    termFactor,
	}
}

// computeGap estimates the absolute rupee amount needed to move the metric's
// value into its benchmark range. The smaller of the distances to either
// bound is used so advice targets the nearest edge of the range.
func computeGap(m *model.Metric, bases gapBases) float64 {
	lo, hi := m.Benchmark.Min, m.Benchmark.Max
	val := m.Value

	var toLow, toHigh float64

	switch m.Name {
	case model.MetricSavingsIncome, model.MetricInvestIncome,
		model.MetricExpenseIncome, model.MetricDebtIncome,
		model.MetricHousingIncome:
		toLow = math.Abs((lo - val) * bases.Income)
		toHigh = math.Abs((hi - val) * bases.Income)

	case model.MetricEmergencyFund, model.MetricLiquidity:
		toLow = math.Abs((lo - val) * bases.Outflow)
		toHigh = math.Abs((hi - val) * bases.Outflow)

	case model.MetricRetirement:
		// Express the corpus shortfall as a monthly SIP over the years left.
		monthsLeft := math.Max(1, 12*float64(bases.YearsToRetirement))
		toLow = math.Abs((lo-val)*bases.Corpus) / monthsLeft
		toHigh = math.Abs((hi-val)*bases.Corpus) / monthsLeft

	case model.MetricAssetLiability:
		// Invert the ratio: how much liability headroom the bounds imply.
		toLow = math.Abs(bases.Liabilities - bases.Assets/nonZero(lo))
		toHigh = math.Abs(bases.Liabilities - bases.Assets/nonZero(hi))

	case model.MetricHealthCover:
		recommended := float64(bases.FamilySize) * bases.MedicalCoverFactor
		toLow = math.Abs(bases.MedicalCover - lo*recommended)
		toHigh = math.Abs(bases.MedicalCover - hi*recommended)

	case model.MetricTermCover:
		recommended := bases.Income * 12 * bases.TermCoverFactor
		toLow = math.Abs(bases.TermCover - lo*recommended)
		toHigh = math.Abs(bases.TermCover - hi*recommended)

	default:
		return minGapThreshold
	}

	return math.Max(math.Min(toLow, toHigh), minGapThreshold)
}

func nonZero(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}
