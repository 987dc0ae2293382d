package finance

import (
	"github.com/shopspring/decimal"

	"github.com/rentledger-dev/rentledger/internal/model"
)

// CategoryEntry is one dated amount inside an expense category.
type CategoryEntry struct {
	Date   string // ISO
	Amount decimal.Decimal
}

// Category rolls up all expenses sharing a description.
type Category struct {
	Total   decimal.Decimal
	Entries []CategoryEntry
}

// PL is a profit-and-loss statement for one property name over an inclusive
// date range, aggregated across every payment period that falls inside it.
type PL struct {
	PropertyName string
	StartDate    string // ISO
	EndDate      string // ISO
	Periods      int

	Rent           decimal.Decimal
	ConvenienceFee decimal.Decimal
	ManagementFee  decimal.Decimal
	Expenses       decimal.Decimal
	TotalRevenue   decimal.Decimal
	TotalExpenses  decimal.Decimal
	NetIncome      decimal.Decimal

	Categories    map[string]Category
	CategoryOrder []string // first-seen order
}

// ProfitAndLoss aggregates all records matching name whose payment date lies
// within [start, end]. ISO dates compare lexicographically, so the range
// check is a plain string comparison.
func ProfitAndLoss(properties []model.Property, name, start, end string) PL {
	pl := PL{
		PropertyName:   name,
		StartDate:      start,
		EndDate:        end,
		Rent:           decimal.Zero,
		ConvenienceFee: decimal.Zero,
		ManagementFee:  decimal.Zero,
		Expenses:       decimal.Zero,
		TotalRevenue:   decimal.Zero,
		TotalExpenses:  decimal.Zero,
		NetIncome:      decimal.Zero,
		Categories:     make(map[string]Category),
	}

	for _, p := range properties {
		if p.Name != name || p.PaymentDate < start || p.PaymentDate > end {
			continue
		}
		pl.Periods++
		pl.Rent = pl.Rent.Add(p.Rent)
		pl.ConvenienceFee = pl.ConvenienceFee.Add(p.ConvenienceFee)
		pl.ManagementFee = pl.ManagementFee.Add(ManagementFee(p))
		pl.Expenses = pl.Expenses.Add(p.ExpenseTotal())
		pl.TotalRevenue = pl.TotalRevenue.Add(TotalRevenue(p))
		pl.TotalExpenses = pl.TotalExpenses.Add(TotalExpenses(p))
		pl.NetIncome = pl.NetIncome.Add(OwnerPayout(p))

		for _, exp := range p.Expenses {
			if !exp.Amount.IsPositive() {
				continue
			}
			cat, ok := pl.Categories[exp.Description]
			if !ok {
				pl.CategoryOrder = append(pl.CategoryOrder, exp.Description)
			}
			cat.Total = cat.Total.Add(exp.Amount)
			cat.Entries = append(cat.Entries, CategoryEntry{Date: p.PaymentDate, Amount: exp.Amount})
			pl.Categories[exp.Description] = cat
		}
	}

	return pl
}
