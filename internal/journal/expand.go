// Package journal derives and maintains the double-entry journal. The
// journal is always a deterministic function of the property list: entries
// are regenerated by Expand whenever a property is created, edited, or
// reconstructed from an import, never hand-edited.
package journal

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rentledger-dev/rentledger/internal/accounts"
	"github.com/rentledger-dev/rentledger/internal/finance"
	"github.com/rentledger-dev/rentledger/internal/model"
)

// Expand derives the journal rows for one property: a fixed 9-entry skeleton
// plus a debit/credit pair per positive-amount expense, in input order. Every
// transaction group balances by construction, so summing debits minus
// credits over the result is always zero.
func Expand(p model.Property) []model.JournalEntry {
	date := model.FormatDate(p.PaymentDate)

	row := func(account, description string, debit, credit decimal.Decimal) model.JournalEntry {
		return model.JournalEntry{
			Date:        date,
			Account:     account,
			Description: description,
			Debit:       debit.StringFixed(2),
			Credit:      credit.StringFixed(2),
			Class:       p.Name,
		}
	}

	revenue := finance.TotalRevenue(p)
	mgmtFee := finance.ManagementFee(p)
	payout := finance.OwnerPayout(p)

	convDesc := fmt.Sprintf("Convenience Fee for %s", p.Name)
	mgmtDesc := fmt.Sprintf("Management Fee for %s", p.Name)
	payoutDesc := fmt.Sprintf("Owner Payout for %s", p.Name)

	entries := []model.JournalEntry{
		row(accounts.RentClearing, fmt.Sprintf("Total Collected for %s", p.Name), revenue, decimal.Zero),
		row(accounts.RentRevenue, fmt.Sprintf("Rent for %s", p.Name), decimal.Zero, p.Rent),
		row(accounts.ConvenienceFeeRevenue, convDesc, decimal.Zero, p.ConvenienceFee),
		row(accounts.PMIncomeConvFees, convDesc, decimal.Zero, p.ConvenienceFee),
		row(accounts.ConvenienceFeeExpense, convDesc, p.ConvenienceFee, decimal.Zero),
		row(accounts.ManagementFees, mgmtDesc, mgmtFee, decimal.Zero),
		row(accounts.PMIncomeMgmtFees, mgmtDesc, decimal.Zero, mgmtFee),
	}

	for _, exp := range p.Expenses {
		if !exp.Amount.IsPositive() {
			continue
		}
		desc := fmt.Sprintf("%s for %s", exp.Description, p.Name)
		entries = append(entries,
			row(accounts.RepairsMaintenance, desc, exp.Amount, decimal.Zero),
			row(accounts.RepairsPayable, desc, decimal.Zero, exp.Amount),
		)
	}

	entries = append(entries,
		row(accounts.OwnerPayout, payoutDesc, payout, decimal.Zero),
		row(accounts.OwnerCommissionsPayable, payoutDesc, decimal.Zero, payout),
	)

	return entries
}

// Rebuild regenerates the full journal from a property list.
func Rebuild(properties []model.Property) []model.JournalEntry {
	var entries []model.JournalEntry
	for _, p := range properties {
		entries = append(entries, Expand(p)...)
	}
	return entries
}
