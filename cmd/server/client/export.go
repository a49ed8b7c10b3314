package client

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/statblock-api/internal/handlers/statblock/v1alpha1"
)

var (
	exportID     string
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a stored parse result",
	Long:  `Export a stored parse result as json, foundry-v10, foundry-v12 or xlsx.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportID, "id", "", "Record ID (required)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Export format")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (defaults to the server's filename for xlsx)")
	_ = exportCmd.MarkFlagRequired("id") // nolint:errcheck // safe to ignore in init
}

func runExport(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	req, err := structpb.NewStruct(map[string]any{
		"id":     exportID,
		"format": exportFormat,
	})
	if err != nil {
		return err
	}

	resp, err := client.ExportRecord(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}

	fields := resp.GetFields()
	data := []byte(fields["data"].GetStringValue())
	if fields["encoding"].GetStringValue() == v1alpha1.EncodingBase64 {
		data, err = base64.StdEncoding.DecodeString(string(data))
		if err != nil {
			return fmt.Errorf("failed to decode export: %w", err)
		}
	}

	out := exportOut
	if out == "" && fields["encoding"].GetStringValue() == v1alpha1.EncodingBase64 {
		out = fields["filename"].GetStringValue()
	}
	if out == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s (%s)\n", out, fields["content_type"].GetStringValue())
	return nil
}
