// Package finance holds the pure derivation functions that turn a property
// record into the figures shown to the user and fed to journal expansion.
package finance

import (
	"github.com/shopspring/decimal"

	"github.com/rentledger-dev/rentledger/internal/model"
)

var hundred = decimal.NewFromInt(100)

// TotalRevenue is everything collected for the period: rent plus the
// tenant's convenience fee.
func TotalRevenue(p model.Property) decimal.Decimal {
	return p.Rent.Add(p.ConvenienceFee)
}

// ManagementFee is the percentage-of-rent fee retained by the manager.
func ManagementFee(p model.Property) decimal.Decimal {
	return p.Rent.Mul(p.ManagementFeePercentage).Div(hundred)
}

// TotalExpenses is the sum of itemized expenses, the management fee, and the
// convenience fee.
func TotalExpenses(p model.Property) decimal.Decimal {
	return p.ExpenseTotal().Add(ManagementFee(p)).Add(p.ConvenienceFee)
}

// OwnerPayout is the net amount due to the property owner. The convenience
// fee is collected in full and passed straight through, so it must cancel
// here term by term; keep the full expression so this derivation and the
// journal expansion stay numerically consistent by construction.
func OwnerPayout(p model.Property) decimal.Decimal {
	return p.Rent.
		Add(p.ConvenienceFee).
		Sub(ManagementFee(p)).
		Sub(p.ConvenienceFee).
		Sub(p.ExpenseTotal())
}
