package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/statblock-api/internal/export/foundry"
	"github.com/KirkDiggler/statblock-api/internal/orchestrators/statblock"
	"github.com/KirkDiggler/statblock-api/internal/report"
)

var (
	parseFormat string
	parseOut    string
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a stat block locally",
	Long: `Parse a stat block from a file (or stdin) without a server and print the
result as JSON, a Foundry actor, or an xlsx review workbook.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVar(&parseFormat, "format", statblock.FormatJSON, "Output format: json, foundry-v10, foundry-v12, xlsx")
	parseCmd.Flags().StringVarP(&parseOut, "out", "o", "", "Write to a file instead of stdout")
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	parser, err := newParser(cfg, logger)
	if err != nil {
		return err
	}

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	result, err := parser.Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse stat block: %w", err)
	}

	var buf bytes.Buffer
	switch parseFormat {
	case statblock.FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		err = enc.Encode(result)
	case statblock.FormatFoundryV10, statblock.FormatFoundryV12:
		var version foundry.Version
		version, err = foundry.ParseVersion(parseFormat[len("foundry-"):])
		if err == nil {
			var data []byte
			data, err = foundry.Marshal(result, version)
			buf.Write(data)
		}
	case statblock.FormatXLSX:
		if parseOut == "" {
			return fmt.Errorf("xlsx output needs --out")
		}
		err = report.Write(&buf, result)
	default:
		return fmt.Errorf("unknown format %q", parseFormat)
	}
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", parseFormat, err)
	}

	logger.Debug("stat block parsed", "name", result.Name, "accuracy", result.Accuracy, "warnings", len(result.Warnings))
	for _, w := range result.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s %s: %s\n", w.Kind, w.Field, w.Message)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s: %d%% of fields resolved\n", result.Name, result.Accuracy)

	return writeOutput(cmd.OutOrStdout(), parseOut, buf.Bytes())
}

func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
