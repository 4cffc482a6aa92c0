package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scanner/internal/observability"
	"github.com/jonathan/resume-scanner/internal/pipeline"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Extract a structured record from a resume file",
	Long:  "Extract contact details, experience, education, skills, and certifications from a PDF or DOCX resume, and report the parse confidence.",
	RunE:  runParse,
}

var (
	parseFile    string
	parseConfig  string
	parseJSON    bool
	parseVerbose bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseFile, "file", "f", "", "Path to the resume file (required)")
	parseCmd.Flags().StringVarP(&parseConfig, "config", "c", "", "Path to a JSON config file")
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Print the record as JSON")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print detailed extraction output")

	parseCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadScannerConfig(parseConfig)
	if err != nil {
		return err
	}

	format, err := detectFormat(parseFile)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(parseFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	scanner, err := buildScanner(cfg)
	if err != nil {
		return err
	}

	record, err := scanner.Process(cmd.Context(), pipeline.ProcessOptions{
		Data:     data,
		Format:   format,
		Filename: parseFile,
	})
	if err != nil {
		return err
	}

	confidence := scanner.Confidence(record)

	if parseJSON {
		out := struct {
			Record     any `json:"record"`
			Confidence any `json:"confidence"`
		}{record, confidence}
		encoded, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode record: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
		return nil
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintResumeRecord(record)
	printer.PrintConfidence(confidence)

	if confidence.Score < cfg.ConfidenceThreshold {
		fmt.Fprintf(cmd.OutOrStdout(), "Warning: parse confidence %d is below the %d threshold; extraction may be incomplete.\n",
			confidence.Score, cfg.ConfidenceThreshold)
	}
	if parseVerbose {
		fmt.Fprintf(cmd.OutOrStdout(), "Strategy: %s, %d words, %d pages\n",
			record.Metadata.Strategy, record.Metadata.WordCount, record.Metadata.PageCount)
	}

	return nil
}
