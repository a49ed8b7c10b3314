package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

var recordID string

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Get a stored parse result by ID",
	RunE:  runGet,
}

func init() {
	getCmd.Flags().StringVar(&recordID, "id", "", "Record ID (required)")
	_ = getCmd.MarkFlagRequired("id") // nolint:errcheck // safe to ignore in init
}

func runGet(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := client.GetParseResult(ctx, wrapperspb.String(recordID))
	if err != nil {
		return fmt.Errorf("failed to get parse result: %w", err)
	}

	return printMessage(cmd.OutOrStdout(), resp)
}
