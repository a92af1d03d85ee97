package render

import (
	"fmt"
	"strings"

	"github.com/finwell/finhealth-cli/internal/model"
)

// Markdown renders a report as a readable markdown document, in section
// order: review, commendable, review areas, improvements, scoring table,
// summary, glossary. Empty sections are skipped.
func Markdown(report *model.Report) string {
	var b strings.Builder

	b.WriteString("# Financial Health Report\n")

	if report.ProfileReview != "" {
		b.WriteString("\n## Profile Review\n\n")
		b.WriteString(report.ProfileReview)
		b.WriteString("\n")
	}

	if len(report.Commendable) > 0 {
		b.WriteString("\n## Commendable Areas\n")
		for _, p := range report.Commendable {
			fmt.Fprintf(&b, "\n### %s\n\n%s\n", p.Header, p.CurrentScenario)
		}
	}

	if len(report.ReviewAreas) > 0 {
		b.WriteString("\n## Areas to Review\n")
		for _, p := range report.ReviewAreas {
			fmt.Fprintf(&b, "\n### %s\n\n%s\n", p.Header, p.CurrentScenario)
		}
	}

	if len(report.Improvements) > 0 {
		b.WriteString("\n## Areas for Improvement\n")
		for _, p := range report.Improvements {
			fmt.Fprintf(&b, "\n### %s\n\n%s\n\n**Action:** %s\n", p.Header, p.CurrentScenario, p.Actionable)
		}
	}

	if len(report.ScoringTable.Rows) > 0 {
		b.WriteString("\n## Scoring\n\n")
		writeScoringTable(&b, report.ScoringTable)
	}

	if report.Summary != "" {
		b.WriteString("\n## Summary\n\n")
		b.WriteString(report.Summary)
		b.WriteString("\n")
	}

	if len(report.Glossary) > 0 {
		b.WriteString("\n## Glossary\n\n")
		for _, name := range model.AssessedMetrics {
			key := (&model.Metric{Name: name}).DisplayName()
			if def, ok := report.Glossary[key]; ok {
				fmt.Fprintf(&b, "- **%s**: %s\n", key, def)
			}
		}
	}

	return b.String()
}

func writeScoringTable(b *strings.Builder, table model.ScoringTable) {
	b.WriteString("| Metric | Weight | Benchmark | Value | Verdict | Points |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for _, row := range table.Rows {
		fmt.Fprintf(b, "| %s | %d | %s | %s | %s | %.0f |\n",
			row.Metric, row.Weight, row.Benchmark, row.Value, row.Verdict, row.Points)
	}
	fmt.Fprintf(b, "| **Total** | %d | | | | %.0f |\n", table.TotalWeight, table.TotalPoints)
}
