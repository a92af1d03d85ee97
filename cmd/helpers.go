package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"

	"github.com/finwell/finhealth-cli/internal/analysis"
	"github.com/finwell/finhealth-cli/internal/benchmark"
	"github.com/finwell/finhealth-cli/internal/feedback"
	"github.com/finwell/finhealth-cli/internal/metrics"
	"github.com/finwell/finhealth-cli/internal/model"
	"github.com/finwell/finhealth-cli/internal/render"
	"github.com/finwell/finhealth-cli/internal/resilience"
	"github.com/finwell/finhealth-cli/internal/store"
	"github.com/finwell/finhealth-cli/internal/verdict"
	"github.com/finwell/finhealth-cli/pkg/anthropic"
)

// initStore opens the configured run-history backend and migrates it.
func initStore(ctx context.Context) (store.Store, error) {
	return store.Open(ctx, cfg.Store)
}

// buildEngine assembles the analysis engine from config. With narrate set,
// an Anthropic-backed narrator supplies weights, the profile review and the
// summary; without it the engine runs the deterministic pipeline only.
func buildEngine(narrate bool) (*analysis.Engine, error) {
	table := benchmark.Default
	if cfg.Analysis.BenchmarkFile != "" {
		var err error
		table, err = benchmark.LoadFile(cfg.Analysis.BenchmarkFile)
		if err != nil {
			return nil, eris.Wrap(err, "load benchmark file")
		}
	}

	calc := metrics.NewCalculator(metrics.Config{
		AnnualInflationRate:  cfg.Analysis.InflationRate,
		CorpusGrowthRate:     cfg.Analysis.CorpusGrowthRate,
		LifeExpectancy:       cfg.Analysis.LifeExpectancy,
		ExpenseReductionRate: cfg.Analysis.ExpenseReductionRate,
		MedicalCoverFactor:   cfg.Analysis.MedicalCoverFactor,
		TermCoverFactor:      cfg.Analysis.TermCoverFactor,
	}, table)

	assembler := feedback.NewAssembler(nil)
	assembler.MedicalCoverFactor = cfg.Analysis.MedicalCoverFactor
	assembler.TermCoverFactor = cfg.Analysis.TermCoverFactor

	engine := analysis.NewEngine(calc, assembler)
	engine.VerdictConfig = verdict.Config{
		LowStage1:  cfg.Analysis.Relaxation.LowStage1,
		HighStage1: cfg.Analysis.Relaxation.HighStage1,
		LowStage2:  cfg.Analysis.Relaxation.LowStage2,
		HighStage2: cfg.Analysis.Relaxation.HighStage2,
	}

	glossary := analysis.DefaultGlossary()
	if cfg.Analysis.GlossaryFile != "" {
		var err error
		glossary, err = analysis.LoadGlossary(cfg.Analysis.GlossaryFile)
		if err != nil {
			return nil, eris.Wrap(err, "load glossary file")
		}
	}
	engine.Glossary = glossary

	if narrate {
		client := anthropic.NewRateLimitedClient(
			anthropic.NewClient(cfg.Anthropic.Key),
			cfg.Anthropic.RequestsPerMin,
		)
		engine.Narrator = analysis.NewNarrator(
			client,
			cfg.Anthropic.Model,
			int64(cfg.Anthropic.MaxTokens),
			cfg.Anthropic.Temperature,
		).WithRetry(resilience.FromRetryConfig(cfg.Anthropic.MaxRetries, 0, 0, 0, -1))
	}

	return engine, nil
}

// loadProfile reads a user profile from a JSON file.
func loadProfile(path string) (*model.UserProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "read profile %s", path)
	}
	var profile model.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, eris.Wrapf(err, "parse profile %s", path)
	}
	return &profile, nil
}

// emitReport writes the report to stdout or a file in the chosen format.
func emitReport(report *model.Report, format, output string) error {
	var data []byte
	switch format {
	case "markdown", "md":
		data = []byte(render.Markdown(report))
	case "", "json":
		var err error
		data, err = json.MarshalIndent(report, "", "  ")
		if err != nil {
			return eris.Wrap(err, "marshal report")
		}
		data = append(data, '\n')
	default:
		return eris.Errorf("unknown format %q (want json or markdown)", format)
	}

	if output == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return eris.Wrapf(os.WriteFile(output, data, 0o644), "write %s", output)
}
