package finance

import (
	"github.com/shopspring/decimal"

	"github.com/rentledger-dev/rentledger/internal/model"
)

// Stats aggregates headline figures across a property collection.
type Stats struct {
	Properties    int
	TotalRent     decimal.Decimal
	TotalExpenses decimal.Decimal
	NetIncome     decimal.Decimal
}

// Portfolio computes collection-wide statistics. Net income here is rent
// minus total expenses; convenience fees sit on both sides of TotalExpenses
// and so reduce the headline number, unlike per-property OwnerPayout.
func Portfolio(properties []model.Property) Stats {
	s := Stats{
		Properties:    len(properties),
		TotalRent:     decimal.Zero,
		TotalExpenses: decimal.Zero,
		NetIncome:     decimal.Zero,
	}
	for _, p := range properties {
		s.TotalRent = s.TotalRent.Add(p.Rent)
		s.TotalExpenses = s.TotalExpenses.Add(TotalExpenses(p))
	}
	s.NetIncome = s.TotalRent.Sub(s.TotalExpenses)
	return s
}
