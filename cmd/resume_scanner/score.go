package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scanner/internal/ingestion"
	"github.com/jonathan/resume-scanner/internal/observability"
	"github.com/jonathan/resume-scanner/internal/pipeline"
	"github.com/jonathan/resume-scanner/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a role and seniority level",
	Long:  "Extract a resume and run the scoring battery against the keyword taxonomy for the given role and level, optionally weighing a job description.",
	RunE:  runScore,
}

var (
	scoreFile    string
	scoreConfig  string
	scoreRole    string
	scoreLevel   string
	scoreMode    string
	scoreJob     string
	scoreJSON    bool
	scoreVerbose bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreFile, "file", "f", "", "Path to the resume file (required)")
	scoreCmd.Flags().StringVarP(&scoreConfig, "config", "c", "", "Path to a JSON config file")
	scoreCmd.Flags().StringVarP(&scoreRole, "role", "r", "", "Target role id, e.g. backend_engineer (required)")
	scoreCmd.Flags().StringVarP(&scoreLevel, "level", "l", "", "Seniority level: entry, mid, senior, lead, executive (required)")
	scoreCmd.Flags().StringVarP(&scoreMode, "mode", "m", string(types.ModeKeywordHeavy), "Scoring mode: keyword_heavy or quality_focused")
	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to a job description (.txt or .html)")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Print the report as JSON")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print the extracted record alongside the report")

	scoreCmd.MarkFlagRequired("file")
	scoreCmd.MarkFlagRequired("role")
	scoreCmd.MarkFlagRequired("level")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg, err := loadScannerConfig(scoreConfig)
	if err != nil {
		return err
	}

	format, err := detectFormat(scoreFile)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(scoreFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	jobText := ""
	if scoreJob != "" {
		jobText, err = ingestion.LoadJobDescription(scoreJob)
		if err != nil {
			return err
		}
	}

	scanner, err := buildScanner(cfg)
	if err != nil {
		return err
	}

	record, err := scanner.Process(cmd.Context(), pipeline.ProcessOptions{
		Data:     data,
		Format:   format,
		Filename: scoreFile,
	})
	if err != nil {
		return err
	}

	report, err := scanner.Score(cmd.Context(), record, types.ScoreRequest{
		Role:           scoreRole,
		Level:          types.SeniorityLevel(scoreLevel),
		Mode:           types.ScoringMode(scoreMode),
		JobDescription: jobText,
	})
	if err != nil {
		return err
	}

	if scoreJSON {
		encoded, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
		return nil
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	if scoreVerbose {
		printer.PrintResumeRecord(record)
		printer.PrintConfidence(scanner.Confidence(record))
	}
	printer.PrintScoreReport(report)

	return nil
}
