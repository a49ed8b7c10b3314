package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"
)

var (
	overrideID    string
	overrideField string
	overrideValue string
)

var overrideCmd = &cobra.Command{
	Use:   "override",
	Short: "Correct one field of a stored parse result",
	Long: `Replace the value of one ledger field. Derived values such as modifiers
and skill bonuses are left as they were.`,
	RunE: runOverride,
}

func init() {
	overrideCmd.Flags().StringVar(&overrideID, "id", "", "Record ID (required)")
	overrideCmd.Flags().StringVar(&overrideField, "field", "", "Field name, e.g. ac or hp (required)")
	overrideCmd.Flags().StringVar(&overrideValue, "value", "", "New value")
	_ = overrideCmd.MarkFlagRequired("id")    // nolint:errcheck // safe to ignore in init
	_ = overrideCmd.MarkFlagRequired("field") // nolint:errcheck // safe to ignore in init
}

func runOverride(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	req, err := structpb.NewStruct(map[string]any{
		"id":    overrideID,
		"field": overrideField,
		"value": overrideValue,
	})
	if err != nil {
		return err
	}

	resp, err := client.SetOverride(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to set override: %w", err)
	}

	entry := resp.GetFields()["entry"].GetStructValue().GetFields()
	fmt.Fprintf(cmd.OutOrStdout(), "%s = %q (%s)\n",
		entry["name"].GetStringValue(),
		entry["raw_value"].GetStringValue(),
		entry["method"].GetStringValue())
	return nil
}
