package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/statblock-api/internal/fixtures"
)

var fixturesJSON bool

var fixturesCmd = &cobra.Command{
	Use:   "fixtures <suite.yaml>",
	Short: "Run a fixture suite against the parser",
	Long: `Parse every case of a fixture suite and diff the output against its expected
document. Exits non-zero when any case fails.`,
	Args: cobra.ExactArgs(1),
	RunE: runFixtures,
}

func init() {
	fixturesCmd.Flags().BoolVar(&fixturesJSON, "json", false, "Print the report as JSON")
}

func runFixtures(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	parser, err := newParser(cfg, logger)
	if err != nil {
		return err
	}

	suite, err := fixtures.LoadSuite(args[0])
	if err != nil {
		return err
	}
	runner, err := fixtures.NewRunner(&fixtures.Config{Parser: parser, Logger: logger})
	if err != nil {
		return err
	}

	report, err := runner.Run(cmd.Context(), suite)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if fixturesJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		for _, c := range report.Cases {
			fmt.Fprintf(out, "%-5s %s (%s, %d%%)\n", c.Status, c.Name, c.Format, c.Accuracy)
			if c.Error != "" {
				fmt.Fprintf(out, "      %s\n", c.Error)
			}
			for _, d := range c.Differences {
				fmt.Fprintf(out, "      %-7s %-16s %s expected=%s actual=%s\n", d.Severity, d.Issue, d.Path, d.Expected, d.Actual)
			}
		}
		fmt.Fprintf(out, "\n%s: %d passed, %d failed, %d errors\n", report.Name, report.Passed, report.Failed, report.Errors)
	}

	if !report.OK() {
		return fmt.Errorf("fixture suite %s failed", report.Name)
	}
	return nil
}
