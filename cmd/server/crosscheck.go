package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/statblock-api/internal/clients/srd"
	"github.com/KirkDiggler/statblock-api/internal/orchestrators/statblock"
)

var monsterKey string

var crosscheckCmd = &cobra.Command{
	Use:   "crosscheck [file]",
	Short: "Compare a parsed stat block with the SRD monster of the same name",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCrosscheck,
}

func init() {
	crosscheckCmd.Flags().StringVar(&monsterKey, "monster", "", "SRD monster key (defaults to the parsed name)")
}

func runCrosscheck(cmd *cobra.Command, args []string) error {
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

	client, err := srd.New(&srd.Config{BaseURL: cfg.SRDBaseURL})
	if err != nil {
		return err
	}
	key := monsterKey
	if key == "" {
		key = result.Name
	}
	monster, err := client.GetMonster(cmd.Context(), key)
	if err != nil {
		return err
	}

	diffs, err := statblock.CompareMonster(monster, result)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s vs SRD %s\n", result.Name, monster.Key)
	if len(diffs) == 0 {
		fmt.Fprintln(out, "no differences")
		return nil
	}
	for _, d := range diffs {
		fmt.Fprintf(out, "  %-7s %-16s %s srd=%s parsed=%s\n", d.Severity, d.Issue, d.Path, d.Expected, d.Actual)
	}
	return nil
}
