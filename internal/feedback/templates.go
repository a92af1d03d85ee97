package feedback

import (
	"strings"
	"sync"
	"text/template"

	"github.com/finwell/finhealth-cli/internal/model"
)

// templateVars is the full set of placeholders a feedback sentence may use.
// Every field is pre-formatted for display; templates declare which they
// need via {{.Value}}, {{.Min}}, {{.Max}} and {{.Gap}}.
type templateVars struct {
	Value string
	Min   string
	Max   string
	Gap   string
}

type improvementText struct {
	Scenario string
	Action   string
}

// Commendation scenarios per metric and verdict.
var commendableTexts = map[string]map[model.Verdict]string{
	model.MetricSavingsIncome: {
		model.VerdictExcellent: "Saving {{.Value}} of income is a strong habit. Stay disciplined!",
		model.VerdictGood:      "Saving {{.Value}} of income is almost ideal. Keep going!",
	},
	model.MetricInvestIncome: {
		model.VerdictExcellent: "Investing {{.Value}} of income is excellent for long-term success.",
		model.VerdictGood:      "Investing {{.Value}} of income is close to optimal. A bit more consistency helps.",
	},
	model.MetricExpenseIncome: {
		model.VerdictExcellent: "Expenses are {{.Value}} of income, efficiently managed. Great job!",
		model.VerdictGood:      "Expenses are {{.Value}} of income, nearing ideal. Some tweaks can optimize it.",
	},
	model.MetricDebtIncome: {
		model.VerdictExcellent: "Debt takes up {{.Value}} of income, well within the safe zone.",
		model.VerdictGood:      "Debt is {{.Value}} of income, almost safe. Stay focused on reducing it.",
	},
	model.MetricEmergencyFund: {
		model.VerdictExcellent: "Your emergency fund covers {{.Value}} months of expenses. Great job maintaining strong financial safety!",
		model.VerdictGood:      "Your emergency fund covers {{.Value}} months, fairly close to the ideal range. Keep building for better protection.",
	},
	model.MetricLiquidity: {
		model.VerdictExcellent: "Liquid reserves cover {{.Value}} months. You're in a solid position, keep it up!",
		model.VerdictGood:      "Liquid reserves cover {{.Value}} months, nearing the ideal. A bit more will strengthen your buffer.",
	},
	model.MetricAssetLiability: {
		model.VerdictExcellent: "Assets are {{.Value}}x your liabilities. This shows strong financial health.",
		model.VerdictGood:      "Assets are {{.Value}}x liabilities, almost at a safe level. Keep improving your position.",
	},
	model.MetricHousingIncome: {
		model.VerdictExcellent: "You're spending {{.Value}} on housing, well within the healthy range.",
		model.VerdictGood:      "You're spending {{.Value}} on housing, fairly close to ideal. Stay on track!",
	},
	model.MetricHealthCover: {
		model.VerdictExcellent: "Health insurance cover is {{.Value}}. You're well protected.",
		model.VerdictGood:      "Health cover is {{.Value}}, almost adequate. A small top-up can help.",
	},
	model.MetricTermCover: {
		model.VerdictExcellent: "Term insurance is {{.Value}}. Your family is well secured.",
		model.VerdictGood:      "Term insurance is {{.Value}}, close to ideal. A bit more would enhance coverage.",
	},
	model.MetricNetWorth: {
		model.VerdictExcellent: "Your net worth matches age-based expectations. Keep compounding!",
		model.VerdictGood:      "Your net worth is nearly on track. You're progressing well, stay the course.",
	},
	model.MetricRetirement: {
		model.VerdictExcellent: "Retirement corpus at {{.Value}} of target. You're on track, great foresight!",
		model.VerdictGood:      "Retirement corpus at {{.Value}} of target, almost there. Stay consistent.",
	},
}

// Improvement scenarios and actions per metric and verdict.
var improvementTexts = map[string]map[model.Verdict]improvementText{
	model.MetricSavingsIncome: {
		model.VerdictExtremelyLow: {
			Scenario: "You're saving only {{.Value}} of income, far below a healthy rate.",
			Action:   "Trim spending or raise income to free up about {{.Gap}} a month for savings.",
		},
		model.VerdictLow: {
			Scenario: "Your savings rate of {{.Value}} falls short of the ideal range.",
			Action:   "Set aside roughly {{.Gap}} more each month to close the shortfall.",
		},
	},
	model.MetricInvestIncome: {
		model.VerdictExtremelyLow: {
			Scenario: "You're investing only {{.Value}} of income, leaving long-term growth on the table.",
			Action:   "Start SIPs worth about {{.Gap}} a month to build momentum.",
		},
		model.VerdictLow: {
			Scenario: "Investments at {{.Value}} of income are below the recommended range.",
			Action:   "Increase monthly investing by around {{.Gap}} to stay on track.",
		},
	},
	model.MetricExpenseIncome: {
		model.VerdictHigh: {
			Scenario: "Expenses consume {{.Value}} of your income, above the comfortable band.",
			Action:   "Identify cuts worth about {{.Gap}} a month to restore breathing room.",
		},
		model.VerdictExtremelyHigh: {
			Scenario: "At {{.Value}} of income, expenses leave little room for anything else.",
			Action:   "Restructure your budget to recover at least {{.Gap}} monthly.",
		},
		model.VerdictExtremelyLow: {
			Scenario: "Expenses at {{.Value}} of income are unusually low.",
			Action:   "Confirm essentials aren't being squeezed; quality of life matters too.",
		},
		model.VerdictLow: {
			Scenario: "Expenses at {{.Value}} of income are below typical levels.",
			Action:   "Check that low spending is a choice and not deferred essentials.",
		},
	},
	model.MetricDebtIncome: {
		model.VerdictHigh: {
			Scenario: "EMIs take up {{.Value}} of income, above the safe ceiling.",
			Action:   "Prepay or refinance to cut obligations by about {{.Gap}} a month.",
		},
		model.VerdictExtremelyHigh: {
			Scenario: "Debt servicing at {{.Value}} of income is a serious strain.",
			Action:   "Prioritise clearing high-interest loans to reduce EMIs by {{.Gap}} monthly.",
		},
	},
	model.MetricEmergencyFund: {
		model.VerdictExtremelyLow: {
			Scenario: "Your emergency fund covers only {{.Value}} months, which is dangerously low.",
			Action:   "Build at least {{.Gap}} to reach 6 months' worth of expenses.",
		},
		model.VerdictLow: {
			Scenario: "You have {{.Value}} months of emergency savings.",
			Action:   "Increase it by {{.Gap}} to hit the 6-month safety buffer.",
		},
		model.VerdictHigh: {
			Scenario: "Your emergency fund covers {{.Value}} months, more than required.",
			Action:   "Consider shifting {{.Gap}} to investments for better returns.",
		},
		model.VerdictExtremelyHigh: {
			Scenario: "You've overfunded your emergency reserves ({{.Value}} months).",
			Action:   "Move {{.Gap}} to long-term assets for growth.",
		},
	},
	model.MetricLiquidity: {
		model.VerdictExtremelyLow: {
			Scenario: "Liquid assets cover only {{.Value}} months of expenses.",
			Action:   "Boost this by at least {{.Gap}} to handle emergencies effectively.",
		},
		model.VerdictLow: {
			Scenario: "You have limited liquidity ({{.Value}} months).",
			Action:   "Add {{.Gap}} more to reach the ideal range.",
		},
		model.VerdictHigh: {
			Scenario: "Your liquidity ratio is higher than needed.",
			Action:   "Redirect {{.Gap}} to equity or debt investments to optimize returns.",
		},
		model.VerdictExtremelyHigh: {
			Scenario: "You're holding too much in low-return liquid assets.",
			Action:   "Shift {{.Gap}} to more productive investments.",
		},
	},
	model.MetricAssetLiability: {
		model.VerdictExtremelyLow: {
			Scenario: "Your liabilities greatly exceed your assets (ratio: {{.Value}}).",
			Action:   "Focus on clearing debts or building assets worth {{.Gap}}.",
		},
		model.VerdictLow: {
			Scenario: "Your asset-liability ratio is below safe levels.",
			Action:   "Increase net worth by {{.Gap}} through debt repayment or asset growth.",
		},
		model.VerdictHigh: {
			Scenario: "Your assets substantially exceed liabilities, which is great.",
			Action:   "Maintain or reallocate {{.Gap}} for goal-based planning.",
		},
		model.VerdictExtremelyHigh: {
			Scenario: "Your asset base is very strong.",
			Action:   "Consider putting {{.Gap}} to work through goal-aligned investments.",
		},
	},
	model.MetricHousingIncome: {
		model.VerdictExtremelyLow: {
			Scenario: "You're spending just {{.Value}} on housing.",
			Action:   "Ensure you're not compromising on safety or convenience.",
		},
		model.VerdictLow: {
			Scenario: "Housing expenses are modest at {{.Value}}.",
			Action:   "That's efficient; consider whether lifestyle upgrades worth {{.Gap}} are justified.",
		},
		model.VerdictHigh: {
			Scenario: "Housing takes up {{.Value}} of your income.",
			Action:   "Reduce rent or EMIs by {{.Gap}} if possible.",
		},
		model.VerdictExtremelyHigh: {
			Scenario: "At {{.Value}}, housing is consuming too much.",
			Action:   "Consider downsizing or refinancing to free up {{.Gap}} monthly.",
		},
	},
	model.MetricHealthCover: {
		model.VerdictExtremelyLow: {
			Scenario: "Your health cover of {{.Value}} is dangerously insufficient.",
			Action:   "Raise it by {{.Gap}} to protect against medical risks.",
		},
		model.VerdictLow: {
			Scenario: "You may be underinsured with only {{.Value}}.",
			Action:   "Increase coverage by {{.Gap}} to meet basic protection standards.",
		},
		model.VerdictHigh: {
			Scenario: "Your health insurance is slightly higher than typical needs.",
			Action:   "You may review it to optimize {{.Gap}} in premium savings.",
		},
		model.VerdictExtremelyHigh: {
			Scenario: "You're overinsured in health with {{.Value}}.",
			Action:   "Consider trimming {{.Gap}} in coverage to reduce costs.",
		},
	},
	model.MetricTermCover: {
		model.VerdictExtremelyLow: {
			Scenario: "You have zero or negligible term insurance ({{.Value}}).",
			Action:   "Secure your family by adding at least {{.Gap}} in coverage.",
		},
		model.VerdictLow: {
			Scenario: "Your term cover of {{.Value}} may fall short.",
			Action:   "Increase it by {{.Gap}} to align with the income-multiple rule.",
		},
		model.VerdictHigh: {
			Scenario: "You have slightly more term cover than required.",
			Action:   "Assess if {{.Gap}} can be optimized to reduce premiums.",
		},
		model.VerdictExtremelyHigh: {
			Scenario: "Term insurance of {{.Value}} may be excessive.",
			Action:   "Reduce {{.Gap}} to save on premiums.",
		},
	},
	model.MetricNetWorth: {
		model.VerdictExtremelyLow: {
			Scenario: "Your net worth is critically low for your age.",
			Action:   "Accelerate asset creation by at least {{.Gap}} annually.",
		},
		model.VerdictLow: {
			Scenario: "Your net worth is below expected benchmarks.",
			Action:   "Build additional assets worth {{.Gap}} to stay financially resilient.",
		},
		model.VerdictHigh: {
			Scenario: "Your net worth is higher than peers.",
			Action:   "Consider using {{.Gap}} to explore higher-return opportunities.",
		},
		model.VerdictExtremelyHigh: {
			Scenario: "You're well ahead in net worth growth.",
			Action:   "Use this advantage to reduce working years or build legacy plans with {{.Gap}}.",
		},
	},
	model.MetricRetirement: {
		model.VerdictExtremelyLow: {
			Scenario: "Your retirement savings are only {{.Value}} of the target.",
			Action:   "Begin investing at least {{.Gap}}/month to secure your future.",
		},
		model.VerdictLow: {
			Scenario: "You're behind on retirement readiness ({{.Value}}).",
			Action:   "Raise monthly contributions by {{.Gap}} to catch up.",
		},
		model.VerdictHigh: {
			Scenario: "You're ahead on retirement ({{.Value}}).",
			Action:   "Reassess goals; extra savings of {{.Gap}} can support early retirement or legacy planning.",
		},
		model.VerdictExtremelyHigh: {
			Scenario: "You've oversaved for retirement at {{.Value}}.",
			Action:   "You might ease contributions by {{.Gap}} and focus on current goals.",
		},
	},
}

// Review scenarios. Only the metrics listed here produce review points; a
// high verdict on any other metric falls through to an improvement point.
var reviewTexts = map[string]map[model.Verdict]string{
	model.MetricSavingsIncome: {
		model.VerdictHigh:          "Your savings-to-income ratio is {{.Value}}, which is above the typical range of [{{.Min}}, {{.Max}}]. Please review this to ensure the excess savings aren't impacting other financial needs.",
		model.VerdictExtremelyHigh: "Your savings-to-income ratio is a striking {{.Value}}, well beyond the expected range [{{.Min}}, {{.Max}}]. If this is unintentional, it may be holding you back from a better lifestyle.",
	},
	model.MetricInvestIncome: {
		model.VerdictHigh:          "Your investment-income ratio stands at {{.Value}}, which exceeds the normal range of [{{.Min}}, {{.Max}}]. It may be worth reviewing your portfolio allocation.",
		model.VerdictExtremelyHigh: "Your investment-income ratio is an unusually high {{.Value}}, far above the typical levels of [{{.Min}}, {{.Max}}]. Double-check if this aligns with your risk and liquidity goals.",
	},
	model.MetricEmergencyFund: {
		model.VerdictHigh:          "Your emergency-fund ratio is {{.Value}} months, above the suggested upper limit of {{.Max}} months. Verify if this level of reserves is purposeful.",
		model.VerdictExtremelyHigh: "Your emergency-fund ratio at {{.Value}} months far exceeds the [{{.Min}}, {{.Max}}] month guideline. High liquidity levels may be better off invested, unless otherwise intended.",
	},
	model.MetricLiquidity: {
		model.VerdictHigh:          "Your liquidity ratio is {{.Value}} months, which is above the typical band of [{{.Min}}, {{.Max}}] months. Please review to ensure you're not holding too much in cash.",
		model.VerdictExtremelyHigh: "Your liquidity ratio at {{.Value}} months is significantly beyond the general [{{.Min}}, {{.Max}}] month range. You may want to shift it if it's sitting idle.",
	},
	model.MetricAssetLiability: {
		model.VerdictHigh:          "Your asset-to-liability ratio is {{.Value}}, past the typical maximum of {{.Max}}, indicating a solid net-asset buffer. If you wish to amplify your portfolio's growth you could consider borrowing against your holdings, but review the associated risks first.",
		model.VerdictExtremelyHigh: "Your asset-to-liability ratio is exceptionally high at {{.Value}}, well above the expected maximum of {{.Max}}, reflecting a large pool of unleveraged assets. If you're comfortable with additional risk, you may leverage your position for higher returns; otherwise you're already in a very strong position.",
	},
	model.MetricHealthCover: {
		model.VerdictHigh:          "Your health-insurance adequacy score is {{.Value}}, above the expected range [{{.Min}}, {{.Max}}]. Please review to ensure you're not over-insured.",
		model.VerdictExtremelyHigh: "Your health-insurance adequacy of {{.Value}} is significantly above [{{.Min}}, {{.Max}}]. Verify this level of coverage is intentional.",
	},
	model.MetricTermCover: {
		model.VerdictHigh:          "Your term-insurance adequacy score is {{.Value}}, higher than the usual maximum of {{.Max}}. You may wish to review your policy limits.",
		model.VerdictExtremelyHigh: "Your term-insurance adequacy at {{.Value}} greatly exceeds {{.Max}}. Ensure this policy size is deliberate.",
	},
	model.MetricNetWorth: {
		model.VerdictHigh:          "Your net-worth adequacy ratio is {{.Value}}, above the normal band of [{{.Min}}, {{.Max}}]. You might want to confirm your asset valuations.",
		model.VerdictExtremelyHigh: "Your net-worth adequacy of {{.Value}} far exceeds [{{.Min}}, {{.Max}}]. Check for anomalies or intentional overvaluation.",
	},
	model.MetricRetirement: {
		model.VerdictHigh:          "Your retirement adequacy is {{.Value}}, above the typical target range of [{{.Min}}, {{.Max}}]. Impressive readiness, although ensure it's not at the expense of current lifestyle.",
		model.VerdictExtremelyHigh: "Your retirement adequacy of {{.Value}} is well beyond [{{.Min}}, {{.Max}}]. If you wish, pause retirement investments to fund your current ambitions.",
	},
}

const (
	genericCommendation = "Metric values are well within ideal ranges. Great work!"
	genericScenario     = "Metric value is far from ideal. Optimize for a healthier financial future."
	genericAction       = "Adjust by about {{.Gap}} to move toward the ideal range."

	debtFreeCommendation = "Great work being debt-free! This significantly strengthens your financial position."
)

// render executes a template string against vars. Templates are parsed on
// first use and cached.
func render(text string, v templateVars) string {
	tmpl, err := templateFor(text)
	if err != nil {
		return text
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, v); err != nil {
		return text
	}
	return b.String()
}

var templateCache sync.Map // string -> *template.Template

func templateFor(text string) (*template.Template, error) {
	if cached, ok := templateCache.Load(text); ok {
		return cached.(*template.Template), nil
	}
	tmpl, err := template.New("feedback").Parse(text)
	if err != nil {
		return nil, err
	}
	templateCache.Store(text, tmpl)
	return tmpl, nil
}
