package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"
)

var (
	crosscheckID      string
	crosscheckMonster string
)

var crosscheckCmd = &cobra.Command{
	Use:   "crosscheck",
	Short: "Compare a stored parse result with an SRD monster",
	RunE:  runCrosscheck,
}

func init() {
	crosscheckCmd.Flags().StringVar(&crosscheckID, "id", "", "Record ID (required)")
	crosscheckCmd.Flags().StringVar(&crosscheckMonster, "monster", "", "SRD monster key (defaults to the parsed name)")
	_ = crosscheckCmd.MarkFlagRequired("id") // nolint:errcheck // safe to ignore in init
}

func runCrosscheck(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	req, err := structpb.NewStruct(map[string]any{
		"id":          crosscheckID,
		"monster_key": crosscheckMonster,
	})
	if err != nil {
		return err
	}

	resp, err := client.CrossCheck(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to cross-check: %w", err)
	}

	return printMessage(cmd.OutOrStdout(), resp)
}
