package analysis

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/finwell/finhealth-cli/internal/feedback"
	"github.com/finwell/finhealth-cli/internal/metrics"
	"github.com/finwell/finhealth-cli/internal/model"
	"github.com/finwell/finhealth-cli/internal/scorer"
	"github.com/finwell/finhealth-cli/internal/verdict"
)

// Engine runs the full analysis pipeline: metric derivation, weight
// assignment, verdicts, scoring and feedback assembly, with optional
// narrative sections from the Narrator.
type Engine struct {
	calc      *metrics.Calculator
	assembler *feedback.Assembler

	// VerdictConfig holds the tolerance multipliers for benchmark bands.
	VerdictConfig verdict.Config

	// Narrator provides LLM narration. Nil runs the deterministic pipeline
	// only; weights fall back to the defaults, the summary to the canned
	// text, and the profile review is omitted.
	Narrator *Narrator

	// Glossary is attached verbatim to every report when non-nil.
	Glossary map[string]string
}

// NewEngine builds an engine around a calculator and feedback assembler.
func NewEngine(calc *metrics.Calculator, assembler *feedback.Assembler) *Engine {
	return &Engine{
		calc:          calc,
		assembler:     assembler,
		VerdictConfig: verdict.DefaultConfig(),
	}
}

// Analyze derives metrics from the profile and assembles a complete report.
// Narrator failures degrade to deterministic output; only core computation
// or feedback assembly errors are returned.
func (e *Engine) Analyze(ctx context.Context, profile *model.UserProfile) (*model.Report, error) {
	pfm, err := e.calc.Compute(profile)
	if err != nil {
		return nil, eris.Wrap(err, "analysis: compute metrics")
	}

	model.AssignWeights(pfm, e.weights(ctx, profile))
	verdict.Assign(e.VerdictConfig, pfm)
	scorer.Assign(pfm)

	sections, err := e.assembler.Assemble(profile, pfm)
	if err != nil {
		return nil, eris.Wrap(err, "analysis: assemble feedback")
	}

	report := &model.Report{
		Commendable:  sections.Commendable,
		ReviewAreas:  sections.ReviewAreas,
		Improvements: sections.Improvements,
		ScoringTable: scorer.BuildTable(pfm),
		Glossary:     e.Glossary,
		Metrics:      pfm,
	}

	e.narrate(ctx, profile, pfm, report)
	return report, nil
}

// weights resolves the metric weight map, preferring LLM-personalized
// weights when a narrator is configured.
func (e *Engine) weights(ctx context.Context, profile *model.UserProfile) map[string]int {
	if e.Narrator == nil {
		return model.DefaultWeights()
	}
	weights, err := e.Narrator.GenerateWeights(ctx, profile)
	if err != nil {
		zap.L().Warn("weight generation failed, using defaults", zap.Error(err))
		return model.DefaultWeights()
	}
	return weights
}

// narrate fills the profile review and summary sections. The two calls run
// concurrently; either failing leaves its section at the fallback.
func (e *Engine) narrate(ctx context.Context, profile *model.UserProfile, pfm *model.PersonalFinanceMetrics, report *model.Report) {
	if e.Narrator == nil {
		report.Summary = summaryFallbackText
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		review, err := e.Narrator.ProfileReview(gctx, profile, pfm)
		if err != nil {
			zap.L().Warn("profile review failed", zap.Error(err))
			return nil
		}
		report.ProfileReview = review
		return nil
	})
	g.Go(func() error {
		summary, err := e.Narrator.Summary(gctx, profile, report)
		if err != nil {
			zap.L().Warn("summary generation failed, using fallback", zap.Error(err))
			report.Summary = summaryFallbackText
			return nil
		}
		report.Summary = summary
		return nil
	})
	_ = g.Wait()
}
