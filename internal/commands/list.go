package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rentledger-dev/rentledger/internal/finance"
	"github.com/rentledger-dev/rentledger/internal/state"
)

func newListCommand() *cobra.Command {
	var sortBy string
	var descending bool
	var nameFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved properties with derived figures",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			properties := state.FilterByName(e.store.Properties, nameFilter)
			properties = state.SortProperties(properties, sortBy, descending)

			if len(properties) == 0 {
				fmt.Println("No saved properties.")
				return nil
			}

			f := e.formatter()
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tDATE\tRENT\tFEE %\tREVENUE\tPAYOUT")
			for _, p := range properties {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					p.ID, p.Name, p.PaymentDate,
					f.Amount(p.Rent),
					p.ManagementFeePercentage.String(),
					f.Amount(finance.TotalRevenue(p)),
					f.Amount(finance.OwnerPayout(p)))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&sortBy, "sort", state.SortByName, "sort field: name, rent, or date")
	cmd.Flags().BoolVar(&descending, "desc", false, "sort descending")
	cmd.Flags().StringVar(&nameFilter, "property", "", "show only properties with this name")

	return cmd
}

func newStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show collection-wide statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			s := finance.Portfolio(e.store.Properties)
			f := e.formatter()

			fmt.Printf("Properties:     %d\n", s.Properties)
			fmt.Printf("Total Rent:     %s\n", f.Amount(s.TotalRent))
			fmt.Printf("Total Expenses: %s\n", f.Amount(s.TotalExpenses))
			fmt.Printf("Net Income:     %s\n", f.Amount(s.NetIncome))
			return nil
		},
	}

	return cmd
}
