package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rentledger-dev/rentledger/internal/codec"
	"github.com/rentledger-dev/rentledger/internal/journal"
)

func newExportCommand() *cobra.Command {
	var format string
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the journal as CSV or the full database as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			switch format {
			case "csv":
				if out == "" {
					out = journal.ExportFileName
				}
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating %s: %w", out, err)
				}
				defer f.Close()
				if err := journal.WriteCSV(f, e.store.Entries); err != nil {
					return err
				}
			case "json":
				if out == "" {
					out = codec.ExportFileName
				}
				data, err := codec.Export(e.store.State())
				if err != nil {
					return err
				}
				if err := os.WriteFile(out, data, 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", out, err)
				}
			default:
				return fmt.Errorf("unknown format %q (want csv or json)", format)
			}

			fmt.Printf("Exported %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "export format: csv or json")
	cmd.Flags().StringVar(&out, "out", "", "output file path")

	return cmd
}
