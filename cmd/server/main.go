// Package main is the entry point for the statblock gRPC server and CLI
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/statblock-api/cmd/server/client"
	"github.com/KirkDiggler/statblock-api/internal/config"
	"github.com/KirkDiggler/statblock-api/internal/statblock"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "statblock",
	Short: "Stat block extraction server and tools",
	Long: `statblock parses pasted D&D 5e monster stat blocks into normalized records,
serves them over gRPC and exports them for virtual tabletops.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Optional .env file loaded before the environment")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(fixturesCmd)
	rootCmd.AddCommand(crosscheckCmd)
	rootCmd.AddCommand(client.ClientCmd)
}

// loadConfig reads the environment and builds the process logger
func loadConfig(w io.Writer) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, nil, err
	}

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(logger)
	return cfg, logger, nil
}

func newParser(cfg *config.Config, logger *slog.Logger) (*statblock.Parser, error) {
	pc := cfg.ParserConfig()
	pc.Logger = logger
	return statblock.NewParser(pc)
}

// readInput reads the named file, or stdin for "" and "-"
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), nil
}
