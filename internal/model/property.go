// Package model holds the core domain records shared by every other package.
package model

import "github.com/shopspring/decimal"

// Property is one property record for a single payment period. IDs are
// strings; interactively created records use a millisecond timestamp and
// ledger imports synthesize composite ids.
type Property struct {
	ID                      string
	Name                    string
	Rent                    decimal.Decimal
	ConvenienceFee          decimal.Decimal
	ManagementFeePercentage decimal.Decimal
	PaymentDate             string // ISO "YYYY-MM-DD"
	Expenses                []Expense
}

// Expense is one additional cost attached to a property record.
type Expense struct {
	Amount      decimal.Decimal
	Description string
}

// ExpenseTotal sums all expense amounts. Imported records can carry negative
// amounts and those offset the total; only journal row generation filters
// them out.
func (p Property) ExpenseTotal() decimal.Decimal {
	total := decimal.Zero
	for _, e := range p.Expenses {
		total = total.Add(e.Amount)
	}
	return total
}
