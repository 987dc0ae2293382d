package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rentledger-dev/rentledger/internal/coerce"
	"github.com/rentledger-dev/rentledger/internal/finance"
	"github.com/rentledger-dev/rentledger/internal/id"
	"github.com/rentledger-dev/rentledger/internal/model"
	"github.com/rentledger-dev/rentledger/internal/report"
)

// propertyFlags are the raw string inputs for a property record. Numeric
// fields stay strings until the coercion boundary in toProperty.
type propertyFlags struct {
	name          string
	rent          string
	convenience   string
	managementFee string
	date          string
	expenses      []string
}

func (f *propertyFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "property name")
	cmd.Flags().StringVar(&f.rent, "rent", "", "rent collected for the period")
	cmd.Flags().StringVar(&f.convenience, "convenience-fee", "", "convenience fee collected")
	cmd.Flags().StringVar(&f.managementFee, "management-fee", "", "management fee percentage (0-100)")
	cmd.Flags().StringVar(&f.date, "date", "", "payment date (YYYY-MM-DD)")
	cmd.Flags().StringArrayVar(&f.expenses, "expense", nil, "expense as amount:description (repeatable)")
}

// toProperty applies the coercion policy once and builds the typed record.
func (f *propertyFlags) toProperty(propertyID string) (model.Property, error) {
	p := model.Property{
		ID:                      propertyID,
		Name:                    f.name,
		Rent:                    coerce.OrZero(f.rent),
		ConvenienceFee:          coerce.OrZero(f.convenience),
		ManagementFeePercentage: coerce.OrZero(f.managementFee),
		PaymentDate:             f.date,
	}
	for _, raw := range f.expenses {
		amount, description, ok := strings.Cut(raw, ":")
		if !ok {
			return model.Property{}, fmt.Errorf("invalid --expense %q (want amount:description)", raw)
		}
		p.Expenses = append(p.Expenses, model.Expense{
			Amount:      coerce.OrZero(amount),
			Description: description,
		})
	}
	return p, nil
}

func newAddCommand() *cobra.Command {
	var flags propertyFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a property record for a payment period",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			if flags.date == "" {
				flags.date = time.Now().Format("2006-01-02")
			}

			p, err := flags.toProperty(id.New(time.Now()))
			if err != nil {
				return err
			}

			e.store.Save(p)
			if err := e.save(); err != nil {
				return err
			}
			e.audit("create", p, fmt.Sprintf("rent=%s", p.Rent.StringFixed(2)))

			fmt.Printf("Saved %s (id %s)\n", p.Name, p.ID)
			printFigures(e.formatter(), p)
			return nil
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newEditCommand() *cobra.Command {
	var flags propertyFlags
	var propertyID string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit an existing property record",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			existing, ok := e.store.Find(propertyID)
			if !ok {
				return fmt.Errorf("no property with id %s", propertyID)
			}

			// Only flags the user set override the stored record.
			p := existing
			if cmd.Flags().Changed("name") {
				p.Name = flags.name
			}
			if cmd.Flags().Changed("rent") {
				p.Rent = coerce.OrZero(flags.rent)
			}
			if cmd.Flags().Changed("convenience-fee") {
				p.ConvenienceFee = coerce.OrZero(flags.convenience)
			}
			if cmd.Flags().Changed("management-fee") {
				p.ManagementFeePercentage = coerce.OrZero(flags.managementFee)
			}
			if cmd.Flags().Changed("date") {
				p.PaymentDate = flags.date
			}
			if cmd.Flags().Changed("expense") {
				replacement := propertyFlags{expenses: flags.expenses}
				parsed, err := replacement.toProperty(p.ID)
				if err != nil {
					return err
				}
				p.Expenses = parsed.Expenses
			}

			e.store.Save(p)
			if err := e.save(); err != nil {
				return err
			}
			e.audit("edit", p, fmt.Sprintf("was %q", existing.Name))

			fmt.Printf("Updated %s (id %s)\n", p.Name, p.ID)
			printFigures(e.formatter(), p)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&propertyID, "id", "", "property id (required)")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a property and its journal rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}

			p, ok := e.store.Delete(args[0])
			if !ok {
				return fmt.Errorf("no property with id %s", args[0])
			}

			if err := e.save(); err != nil {
				return err
			}
			e.audit("delete", p, "")

			fmt.Printf("Deleted %s (id %s)\n", p.Name, p.ID)
			return nil
		},
	}

	return cmd
}

func printFigures(f *report.Formatter, p model.Property) {
	fmt.Printf("  Total Revenue:  %s\n", f.Amount(finance.TotalRevenue(p)))
	fmt.Printf("  Management Fee: %s\n", f.Amount(finance.ManagementFee(p)))
	fmt.Printf("  Total Expenses: %s\n", f.Amount(finance.TotalExpenses(p)))
	fmt.Printf("  Owner Payout:   %s\n", f.Amount(finance.OwnerPayout(p)))
}
