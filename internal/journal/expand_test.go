package journal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentledger-dev/rentledger/internal/accounts"
	"github.com/rentledger-dev/rentledger/internal/coerce"
	"github.com/rentledger-dev/rentledger/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleProperty() model.Property {
	return model.Property{
		ID:                      "1",
		Name:                    "Sunset Villa",
		Rent:                    dec("1000"),
		ConvenienceFee:          dec("50"),
		ManagementFeePercentage: dec("10"),
		PaymentDate:             "2025-01-15",
		Expenses: []model.Expense{
			{Amount: dec("100"), Description: "Plumbing"},
		},
	}
}

func balance(t *testing.T, entries []model.JournalEntry) decimal.Decimal {
	t.Helper()
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(coerce.OrZero(e.Debit)).Sub(coerce.OrZero(e.Credit))
	}
	return total
}

func TestExpand_EntryCountAndOrder(t *testing.T) {
	entries := Expand(sampleProperty())
	require.Len(t, entries, 11, "9 base entries + 2 per positive expense")

	wantAccounts := []string{
		accounts.RentClearing,
		accounts.RentRevenue,
		accounts.ConvenienceFeeRevenue,
		accounts.PMIncomeConvFees,
		accounts.ConvenienceFeeExpense,
		accounts.ManagementFees,
		accounts.PMIncomeMgmtFees,
		accounts.RepairsMaintenance,
		accounts.RepairsPayable,
		accounts.OwnerPayout,
		accounts.OwnerCommissionsPayable,
	}
	for i, want := range wantAccounts {
		assert.Equal(t, want, entries[i].Account, "entry %d", i)
	}
}

func TestExpand_Amounts(t *testing.T) {
	entries := Expand(sampleProperty())

	assert.Equal(t, "1050.00", entries[0].Debit)
	assert.Equal(t, "Total Collected for Sunset Villa", entries[0].Description)
	assert.Equal(t, "1000.00", entries[1].Credit)
	assert.Equal(t, "50.00", entries[2].Credit)
	assert.Equal(t, "50.00", entries[4].Debit)
	assert.Equal(t, "100.00", entries[5].Debit)
	assert.Equal(t, "100.00", entries[7].Debit)
	assert.Equal(t, "Plumbing for Sunset Villa", entries[7].Description)
	assert.Equal(t, "800.00", entries[9].Debit)
	assert.Equal(t, "800.00", entries[10].Credit)
}

func TestExpand_Balances(t *testing.T) {
	assert.True(t, balance(t, Expand(sampleProperty())).IsZero())
}

func TestExpand_DateAndClass(t *testing.T) {
	entries := Expand(sampleProperty())
	for _, e := range entries {
		assert.Equal(t, "01/15/2025", e.Date)
		assert.Equal(t, "Sunset Villa", e.Class)
	}
}

func TestExpand_AllZeroProperty(t *testing.T) {
	entries := Expand(model.Property{Name: "Empty", PaymentDate: "2025-03-01"})
	require.Len(t, entries, 9)
	for _, e := range entries {
		assert.Equal(t, "0.00", e.Debit)
		assert.Equal(t, "0.00", e.Credit)
	}
	assert.True(t, balance(t, entries).IsZero())
}

func TestExpand_SkipsNonPositiveExpenses(t *testing.T) {
	p := sampleProperty()
	p.Expenses = append(p.Expenses,
		model.Expense{Amount: decimal.Zero, Description: "Pending"},
		model.Expense{Amount: dec("-5"), Description: "Credit memo"},
	)
	entries := Expand(p)
	require.Len(t, entries, 11)
	for _, e := range entries {
		assert.NotContains(t, e.Description, "Pending")
		assert.NotContains(t, e.Description, "Credit memo")
	}
}

func TestExpand_ExpenseOrderPreserved(t *testing.T) {
	p := sampleProperty()
	p.Expenses = []model.Expense{
		{Amount: dec("10"), Description: "First"},
		{Amount: dec("20"), Description: "Second"},
	}
	entries := Expand(p)
	require.Len(t, entries, 13)
	assert.Equal(t, "First for Sunset Villa", entries[7].Description)
	assert.Equal(t, "Second for Sunset Villa", entries[9].Description)
}

func TestExpand_NegativeExpenseMovesPayoutOnly(t *testing.T) {
	// A negative expense gets no row pair of its own, but it raises the owner
	// payout and the journal still balances.
	p := sampleProperty()
	p.Expenses = append(p.Expenses, model.Expense{Amount: dec("-50"), Description: "Vendor refund"})

	entries := Expand(p)
	require.Len(t, entries, 11)
	assert.Equal(t, "850.00", entries[9].Debit)
	assert.Equal(t, "850.00", entries[10].Credit)
	assert.True(t, balance(t, entries).IsZero())
}

func TestExpand_RoundedFeeStillBalances(t *testing.T) {
	p := sampleProperty()
	p.Rent = dec("999.99")
	p.ManagementFeePercentage = dec("10") // fee = 99.999, rounds to 100.00

	entries := Expand(p)
	assert.True(t, balance(t, entries).IsZero())
}

func TestRebuild(t *testing.T) {
	a := sampleProperty()
	b := sampleProperty()
	b.ID = "2"
	b.Name = "Oak House"
	b.Expenses = nil

	entries := Rebuild([]model.Property{a, b})
	require.Len(t, entries, 20)
	assert.True(t, balance(t, entries).IsZero())
}
