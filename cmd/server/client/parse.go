package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"
)

var source string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse and store a stat block",
	Long:  `Send a stat block from a file (or stdin) to the server and print the stored record.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVar(&source, "source", "", "Where the stat block came from, e.g. a book and page")
}

func runParse(cmd *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to read stat block: %w", err)
	}

	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	req, err := structpb.NewStruct(map[string]any{
		"text":   string(data),
		"source": source,
	})
	if err != nil {
		return err
	}

	resp, err := client.ParseStatBlock(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to parse stat block: %w", err)
	}

	record := resp.GetFields()["record"].GetStructValue().GetFields()
	result := record["result"].GetStructValue().GetFields()
	fmt.Fprintf(cmd.ErrOrStderr(), "Stored %s as %s (%.0f%% resolved)\n",
		result["name"].GetStringValue(),
		record["id"].GetStringValue(),
		result["accuracy"].GetNumberValue())

	return printMessage(cmd.OutOrStdout(), resp)
}
