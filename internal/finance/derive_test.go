package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

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

func TestTotalRevenue(t *testing.T) {
	assert.True(t, TotalRevenue(sampleProperty()).Equal(dec("1050")))
}

func TestManagementFee(t *testing.T) {
	assert.True(t, ManagementFee(sampleProperty()).Equal(dec("100")))
}

func TestTotalExpenses(t *testing.T) {
	assert.True(t, TotalExpenses(sampleProperty()).Equal(dec("250")))
}

func TestOwnerPayout(t *testing.T) {
	assert.True(t, OwnerPayout(sampleProperty()).Equal(dec("800")))
}

func TestOwnerPayout_ConvenienceFeeCancels(t *testing.T) {
	// The convenience fee is collected and passed through; changing it must
	// not move the owner payout.
	p := sampleProperty()
	base := OwnerPayout(p)

	p.ConvenienceFee = dec("500")
	assert.True(t, OwnerPayout(p).Equal(base))

	p.ConvenienceFee = decimal.Zero
	assert.True(t, OwnerPayout(p).Equal(base))
}

func TestOwnerPayout_EqualsRentMinusFeeMinusExpenses(t *testing.T) {
	p := sampleProperty()
	expected := p.Rent.Sub(ManagementFee(p)).Sub(p.ExpenseTotal())
	assert.True(t, OwnerPayout(p).Equal(expected))
}

func TestTotalExpenses_Decomposition(t *testing.T) {
	p := sampleProperty()
	itemized := TotalExpenses(p).Sub(ManagementFee(p)).Sub(p.ConvenienceFee)
	assert.True(t, itemized.Equal(p.ExpenseTotal()))
}

func TestDerivations_NegativeExpense(t *testing.T) {
	// A negative expense (a credit on an imported record) offsets the expense
	// total and raises the payout accordingly.
	p := sampleProperty()
	p.Expenses = append(p.Expenses, model.Expense{Amount: dec("-50"), Description: "Vendor refund"})

	assert.True(t, TotalExpenses(p).Equal(dec("200")))
	assert.True(t, OwnerPayout(p).Equal(dec("850")))
}

func TestDerivations_AllZero(t *testing.T) {
	p := model.Property{Name: "Empty", PaymentDate: "2025-01-01"}
	assert.True(t, TotalRevenue(p).IsZero())
	assert.True(t, ManagementFee(p).IsZero())
	assert.True(t, TotalExpenses(p).IsZero())
	assert.True(t, OwnerPayout(p).IsZero())
}

func TestManagementFee_FractionalPercentage(t *testing.T) {
	p := sampleProperty()
	p.ManagementFeePercentage = dec("7.5")
	assert.True(t, ManagementFee(p).Equal(dec("75")))
}
