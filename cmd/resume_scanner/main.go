// Package main provides the resume_scanner CLI: extraction of structured
// resume records from PDF/DOCX files and scoring against a role taxonomy.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_scanner",
	Short: "Resume extraction and scoring",
	Long:  "resume_scanner extracts a structured record from a PDF or DOCX resume and scores it against a role and seniority level using a keyword taxonomy.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
