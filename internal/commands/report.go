package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rentledger-dev/rentledger/internal/finance"
	"github.com/rentledger-dev/rentledger/internal/state"
)

func newReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate printable HTML reports",
	}

	cmd.AddCommand(newPropertyReportCommand(), newPLReportCommand())

	return cmd
}

func newPropertyReportCommand() *cobra.Command {
	var propertyID string

	cmd := &cobra.Command{
		Use:   "property",
		Short: "Generate a single-period property report",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			p, ok := e.store.Find(propertyID)
			if !ok {
				return fmt.Errorf("no property with id %s", propertyID)
			}

			html, err := e.formatter().Property(p, time.Now().Format("01/02/2006"))
			if err != nil {
				return err
			}

			return writeReport(e, fmt.Sprintf("%s-report.html", slug(p.Name)), html)
		},
	}

	cmd.Flags().StringVar(&propertyID, "id", "", "property id (required)")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newPLReportCommand() *cobra.Command {
	var name, start, end string

	cmd := &cobra.Command{
		Use:   "pl",
		Short: "Generate a profit-and-loss report over a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			// Default to the property's full payment-date span.
			if start == "" || end == "" {
				first, last := state.DateRange(e.store.Properties, name)
				if first == "" {
					return fmt.Errorf("no properties named %q", name)
				}
				if start == "" {
					start = first
				}
				if end == "" {
					end = last
				}
			}

			pl := finance.ProfitAndLoss(e.store.Properties, name, start, end)
			html, err := e.formatter().ProfitAndLoss(pl, time.Now().Format("01/02/2006"))
			if err != nil {
				return err
			}

			return writeReport(e, fmt.Sprintf("%s-pl.html", slug(name)), html)
		},
	}

	cmd.Flags().StringVar(&name, "property", "", "property name (required)")
	cmd.Flags().StringVar(&start, "start", "", "range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "range end (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("property")

	return cmd
}

func writeReport(e *env, name, html string) error {
	dir := filepath.Join(e.dir, e.cfg.Reports.OutputDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating reports dir: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}

// slug turns a property name into a safe file name fragment.
func slug(name string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r == ' ', r == '-', r == '_':
			return '-'
		default:
			return -1
		}
	}, name)
	if mapped == "" {
		return "property"
	}
	return mapped
}
