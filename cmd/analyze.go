package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/finwell/finhealth-cli/internal/render"
)

var (
	analyzeProfile string
	analyzeFormat  string
	analyzeOutput  string
	analyzeXLSX    string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a full analysis with LLM narration",
	Long:  "Derives metrics, generates personalized weights, verdicts, scores and narrative sections, and records the run.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate("analyze"); err != nil {
			return err
		}

		profile, err := loadProfile(analyzeProfile)
		if err != nil {
			return err
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck

		engine, err := buildEngine(true)
		if err != nil {
			return err
		}

		run, err := st.CreateRun(ctx, *profile)
		if err != nil {
			return err
		}

		report, err := engine.Analyze(ctx, profile)
		if err != nil {
			if ferr := st.FailRun(ctx, run.ID, err.Error()); ferr != nil {
				zap.L().Warn("fail run failed", zap.Error(ferr))
			}
			return eris.Wrap(err, "analyze")
		}

		if err := st.CompleteRun(ctx, run.ID, report); err != nil {
			zap.L().Warn("complete run failed", zap.Error(err))
		}

		zap.L().Info("analysis complete",
			zap.String("run_id", run.ID),
			zap.Int("total_weight", report.ScoringTable.TotalWeight),
			zap.Float64("total_points", report.ScoringTable.TotalPoints),
		)

		if analyzeXLSX != "" {
			if err := render.WriteScoringXLSX(analyzeXLSX, report.ScoringTable); err != nil {
				return err
			}
		}

		return emitReport(report, analyzeFormat, analyzeOutput)
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeProfile, "profile", "", "path to profile JSON (required)")
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", "json", "output format (json, markdown)")
	analyzeCmd.Flags().StringVar(&analyzeOutput, "output", "", "write report to file instead of stdout")
	analyzeCmd.Flags().StringVar(&analyzeXLSX, "xlsx", "", "also export the scoring table to an XLSX file")
	_ = analyzeCmd.MarkFlagRequired("profile")
	rootCmd.AddCommand(analyzeCmd)
}
