package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/finwell/finhealth-cli/internal/render"
)

var (
	scoreProfile string
	scoreFormat  string
	scoreOutput  string
	scoreXLSX    string
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a profile offline",
	Long:  "Runs the deterministic pipeline only: metrics, default weights, verdicts, scores and feedback. No API key needed and nothing is persisted.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate("score"); err != nil {
			return err
		}

		profile, err := loadProfile(scoreProfile)
		if err != nil {
			return err
		}

		engine, err := buildEngine(false)
		if err != nil {
			return err
		}

		report, err := engine.Analyze(cmd.Context(), profile)
		if err != nil {
			return err
		}

		zap.L().Info("scoring complete",
			zap.Float64("total_points", report.ScoringTable.TotalPoints),
		)

		if scoreXLSX != "" {
			if err := render.WriteScoringXLSX(scoreXLSX, report.ScoringTable); err != nil {
				return err
			}
		}

		return emitReport(report, scoreFormat, scoreOutput)
	},
}

func init() {
	scoreCmd.Flags().StringVar(&scoreProfile, "profile", "", "path to profile JSON (required)")
	scoreCmd.Flags().StringVar(&scoreFormat, "format", "markdown", "output format (json, markdown)")
	scoreCmd.Flags().StringVar(&scoreOutput, "output", "", "write report to file instead of stdout")
	scoreCmd.Flags().StringVar(&scoreXLSX, "xlsx", "", "also export the scoring table to an XLSX file")
	_ = scoreCmd.MarkFlagRequired("profile")
	rootCmd.AddCommand(scoreCmd)
}
