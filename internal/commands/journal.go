package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rentledger-dev/rentledger/internal/accounts"
	"github.com/rentledger-dev/rentledger/internal/journal"
	"github.com/rentledger-dev/rentledger/internal/model"
)

func newJournalCommand() *cobra.Command {
	var all bool
	var check bool
	var classFilter string

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Show the derived journal entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			if check {
				errs := journal.Validate(e.store.Entries, accounts.Default())
				for _, v := range errs {
					fmt.Println(v.Error())
				}
				if len(errs) > 0 {
					return fmt.Errorf("journal has %d invariant violation(s)", len(errs))
				}
				fmt.Println("Journal is balanced.")
				return nil
			}

			entries := e.store.Entries
			if !all {
				entries = journal.ValidEntries(entries, e.store.Properties)
			}
			if classFilter != "" {
				var matched []model.JournalEntry
				for _, entry := range entries {
					if entry.Class == classFilter {
						matched = append(matched, entry)
					}
				}
				entries = matched
			}

			if len(entries) == 0 {
				fmt.Println("No journal entries.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "JOURNAL NO.\tDATE\tACCOUNT\tDESCRIPTION\tDEBIT\tCREDIT\tCLASS")
			for _, entry := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					journal.JournalNo(entry.Date), entry.Date, entry.Account,
					entry.Description, entry.Debit, entry.Credit, entry.Class)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include zero-amount and orphaned rows")
	cmd.Flags().BoolVar(&check, "check", false, "validate journal invariants instead of printing rows")
	cmd.Flags().StringVar(&classFilter, "class", "", "show only rows for this property name")

	return cmd
}
