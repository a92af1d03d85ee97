// Package feedback turns verdict-annotated metrics into the three report
// sections: commendations, review flags and improvement actions. Each metric
// lands in exactly one section per run.
package feedback

import (
	"math/rand/v2"
	"sort"

	"github.com/rotisserie/eris"

	"github.com/finwell/finhealth-cli/internal/model"
)

// ErrMissingInputs is returned when the assembler is called without a
// profile or derived metrics. Fatal.
var ErrMissingInputs = eris.New("feedback: user profile or derived metrics not provided")

// DebtFreeMetricName labels the synthetic commendation added when every
// outstanding loan balance is zero.
const DebtFreeMetricName = "debt_free"

// Assembler builds feedback sections from scored metrics. Safe for
// concurrent use; all per-run state lives on the stack.
type Assembler struct {
	headers *HeaderPicker

	// Cover factors mirror the calculator's adequacy recommendations and
	// are used to rescale insurance figures back into rupees for display.
	MedicalCoverFactor float64
	TermCoverFactor    float64
}

// NewAssembler returns an Assembler drawing headers from rng (nil for the
// shared generator) and using the standard cover factors.
func NewAssembler(rng *rand.Rand) *Assembler {
	return &Assembler{
		headers:            NewHeaderPicker(rng),
		MedicalCoverFactor: 500000,
		TermCoverFactor:    10,
	}
}

// Sections is the assembled feedback output.
type Sections struct {
	Commendable  []model.CommendablePoint
	ReviewAreas  []model.ReviewPoint
	Improvements []model.ImprovementPoint
}

// Assemble buckets every assessed metric by verdict, formats its feedback
// text and orders the sections by age-based priority. Review candidates are
// resolved before improvement candidates so a high metric appears in at most
// one of the two.
func (a *Assembler) Assemble(profile *model.UserProfile, pfm *model.PersonalFinanceMetrics) (*Sections, error) {
	if profile == nil || pfm == nil {
		return nil, ErrMissingInputs
	}

	var good, bad, review []string
	pfm.EachAssessed(func(m *model.Metric) {
		if m.Verdict.Commendable() {
			good = append(good, m.Name)
		}
		if m.Verdict.NeedsImprovement() {
			bad = append(bad, m.Name)
		}
		if m.Verdict.NeedsReview() {
			review = append(review, m.Name)
		}
	})

	bases := basesFor(profile, pfm, a.MedicalCoverFactor, a.TermCoverFactor)
	analysed := make(map[string]bool)
	out := &Sections{}

	for _, name := range good {
		if analysed[name] {
			continue
		}
		m := pfm.Metric(name)
		out.Commendable = append(out.Commendable, model.CommendablePoint{
			MetricName:      name,
			Header:          a.headers.Pick(m),
			CurrentScenario: a.commendText(m, bases),
		})
		analysed[name] = true
	}

	for _, name := range review {
		if analysed[name] {
			continue
		}
		m := pfm.Metric(name)
		text, ok := a.reviewText(m, bases)
		if !ok {
			// No review template for this metric; leave it for the
			// improvement pass.
			continue
		}
		out.ReviewAreas = append(out.ReviewAreas, model.ReviewPoint{
			MetricName:      name,
			Header:          a.headers.Pick(m),
			CurrentScenario: text,
		})
		analysed[name] = true
	}

	for _, name := range bad {
		if analysed[name] {
			continue
		}
		m := pfm.Metric(name)
		scenario, action := a.improvementText(m, bases)
		out.Improvements = append(out.Improvements, model.ImprovementPoint{
			MetricName:      name,
			Header:          a.headers.Pick(m),
			CurrentScenario: scenario,
			Actionable:      action,
		})
		analysed[name] = true
	}

	age := profile.Personal.Age
	sortCommendable(out.Commendable, age)
	sortReview(out.ReviewAreas, age)
	sortImprovements(out.Improvements, age)

	if profile.Liability.DebtFree() {
		out.Commendable = append(out.Commendable, model.CommendablePoint{
			MetricName:      DebtFreeMetricName,
			Header:          "Debt Free",
			CurrentScenario: debtFreeCommendation,
		})
	}

	return out, nil
}

func (a *Assembler) commendText(m *model.Metric, bases gapBases) string {
	byVerdict, ok := commendableTexts[m.Name]
	if !ok {
		return genericCommendation
	}
	text, ok := byVerdict[m.Verdict]
	if !ok {
		return genericCommendation
	}
	return render(text, a.vars(m, bases, 0))
}

func (a *Assembler) reviewText(m *model.Metric, bases gapBases) (string, bool) {
	byVerdict, ok := reviewTexts[m.Name]
	if !ok {
		return "", false
	}
	text, ok := byVerdict[m.Verdict]
	if !ok {
		return "", false
	}
	return render(text, a.vars(m, bases, 0)), true
}

func (a *Assembler) improvementText(m *model.Metric, bases gapBases) (scenario, action string) {
	gap := computeGap(m, bases)

	byVerdict, ok := improvementTexts[m.Name]
	if !ok {
		return genericScenario, render(genericAction, templateVars{Gap: Rupees(gap)})
	}
	text, ok := byVerdict[m.Verdict]
	if !ok {
		return genericScenario, render(genericAction, templateVars{Gap: Rupees(gap)})
	}

	v := a.vars(m, bases, gap)
	return render(text.Scenario, v), render(text.Action, v)
}

// vars assembles the display placeholders for a metric. Insurance adequacy
// figures are rescaled from ratios back into rupee cover amounts.
func (a *Assembler) vars(m *model.Metric, bases gapBases, gap float64) templateVars {
	v := templateVars{
		Value: formatValue(m, bases),
		Gap:   Rupees(gap),
	}
	if m.Benchmark != nil {
		v.Min = Times(m.Benchmark.Min)
		v.Max = Times(m.Benchmark.Max)
	}
	return v
}

func formatValue(m *model.Metric, bases gapBases) string {
	switch m.Name {
	case model.MetricSavingsIncome, model.MetricInvestIncome,
		model.MetricExpenseIncome, model.MetricDebtIncome,
		model.MetricHousingIncome, model.MetricRetirement:
		return Percent(m.Value)
	case model.MetricEmergencyFund, model.MetricLiquidity:
		return Months(m.Value)
	case model.MetricHealthCover:
		return Rupees(bases.MedicalCover)
	case model.MetricTermCover:
		return Rupees(bases.TermCover)
	default:
		return Times(m.Value)
	}
}

// agePriority returns the metric ordering most relevant to the user's life
// stage. Metrics absent from the list sort after all named ones, keeping
// their relative order.
func agePriority(age int) []string {
	switch {
	case age < 30:
		return []string{
			model.MetricEmergencyFund, model.MetricExpenseIncome,
			model.MetricSavingsIncome, model.MetricDebtIncome,
			model.MetricLiquidity, model.MetricInvestIncome,
		}
	case age < 45:
		return []string{
			model.MetricEmergencyFund, model.MetricHealthCover,
			model.MetricTermCover, model.MetricSavingsIncome,
			model.MetricRetirement,
		}
	case age < 60:
		return []string{
			model.MetricRetirement, model.MetricNetWorth,
			model.MetricAssetLiability, model.MetricLiquidity,
		}
	default:
		return []string{
			model.MetricLiquidity, model.MetricAssetLiability,
			model.MetricEmergencyFund,
		}
	}
}

func priorityRank(age int) func(name string) int {
	priority := agePriority(age)
	order := make(map[string]int, len(priority))
	for i, name := range priority {
		order[name] = i
	}
	return func(name string) int {
		if rank, ok := order[name]; ok {
			return rank
		}
		return len(order)
	}
}

func sortCommendable(points []model.CommendablePoint, age int) {
	rank := priorityRank(age)
	sort.SliceStable(points, func(i, j int) bool {
		return rank(points[i].MetricName) < rank(points[j].MetricName)
	})
}

func sortReview(points []model.ReviewPoint, age int) {
	rank := priorityRank(age)
	sort.SliceStable(points, func(i, j int) bool {
		return rank(points[i].MetricName) < rank(points[j].MetricName)
	})
}

func sortImprovements(points []model.ImprovementPoint, age int) {
	rank := priorityRank(age)
	sort.SliceStable(points, func(i, j int) bool {
		return rank(points[i].MetricName) < rank(points[j].MetricName)
	})
}
