package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-scanner/internal/taxonomy"
)

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "Inspect and validate the keyword taxonomy",
}

var taxonomyValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the reference data files against their schemas",
	RunE:  runTaxonomyValidate,
}

var taxonomyRolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List the roles the taxonomy covers",
	RunE:  runTaxonomyRoles,
}

var taxonomyConfig string

func init() {
	taxonomyCmd.PersistentFlags().StringVarP(&taxonomyConfig, "config", "c", "", "Path to a JSON config file")
	taxonomyCmd.AddCommand(taxonomyValidateCmd)
	taxonomyCmd.AddCommand(taxonomyRolesCmd)
	rootCmd.AddCommand(taxonomyCmd)
}

func runTaxonomyValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadScannerConfig(taxonomyConfig)
	if err != nil {
		return err
	}

	if _, err := taxonomy.LoadTaxonomy(cfg.TaxonomyPath, cfg.TaxonomySchemaPath); err != nil {
		return fmt.Errorf("taxonomy invalid: %w", err)
	}
	if _, err := taxonomy.LoadSynonyms(cfg.SynonymsPath, cfg.SynonymsSchemaPath); err != nil {
		return fmt.Errorf("synonyms invalid: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Reference data is valid.")
	return nil
}

func runTaxonomyRoles(cmd *cobra.Command, args []string) error {
	cfg, err := loadScannerConfig(taxonomyConfig)
	if err != nil {
		return err
	}

	tax, err := taxonomy.LoadTaxonomy(cfg.TaxonomyPath, cfg.TaxonomySchemaPath)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(tax.Roles(), "\n"))
	return nil
}
