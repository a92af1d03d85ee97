package analysis

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"

	"github.com/finwell/finhealth-cli/internal/model"
)

// defaultGlossary explains each assessable metric in plain language. Reports
// carry it so readers don't need to look up ratio definitions elsewhere.
var defaultGlossary = map[string]string{
	model.MetricSavingsIncome:  "Portion of monthly income left after expenses, investments and EMIs. Higher means more surplus to deploy.",
	model.MetricInvestIncome:   "Portion of monthly income routed into investments such as SIPs, equity and retirement contributions.",
	model.MetricExpenseIncome:  "Portion of monthly income consumed by living expenses. Lower leaves more room for saving and investing.",
	model.MetricDebtIncome:     "Portion of monthly income committed to loan EMIs. High values strain cash flow and borrowing capacity.",
	model.MetricEmergencyFund:  "Months of essential outflow (expenses plus EMIs) covered by the emergency fund.",
	model.MetricLiquidity:      "Months of essential outflow covered by all liquid holdings, including savings and emergency fund.",
	model.MetricAssetLiability: "Total assets divided by total liabilities. Above 1 means you own more than you owe.",
	model.MetricHousingIncome:  "Portion of monthly income spent on rent or home loan EMI.",
	model.MetricHealthCover:    "Health insurance cover relative to the recommended cover for your family size.",
	model.MetricTermCover:      "Term life cover relative to the recommended multiple of annual income.",
	model.MetricNetWorth:       "Net worth relative to the age-based target multiple of annual income.",
	model.MetricRetirement:     "Projected retirement savings relative to the corpus needed to sustain expenses through retirement.",
}

// DefaultGlossary returns a copy of the built-in metric glossary keyed by
// display name.
func DefaultGlossary() map[string]string {
	out := make(map[string]string, len(defaultGlossary))
	for name, def := range defaultGlossary {
		out[displayKey(name)] = def
	}
	return out
}

// LoadGlossary reads a glossary override from a JSON file mapping metric
// names (canonical or display form) to definitions. Entries merge over the
// built-in glossary.
func LoadGlossary(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "glossary: read %s", path)
	}

	var override map[string]string
	if err := json.Unmarshal(data, &override); err != nil {
		return nil, eris.Wrapf(err, "glossary: parse %s", path)
	}

	out := DefaultGlossary()
	for name, def := range override {
		out[displayKey(model.CanonicalMetricName(name))] = def
	}
	return out, nil
}

func displayKey(canonical string) string {
	m := model.Metric{Name: canonical}
	return m.DisplayName()
}
