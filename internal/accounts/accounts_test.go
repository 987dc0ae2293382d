package accounts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rentledger-dev/rentledger/internal/model"
)

func TestChart_CoversExpansionVocabulary(t *testing.T) {
	svc := Default()
	for _, name := range []string{
		RentClearing, RentRevenue, ConvenienceFeeRevenue, PMIncomeConvFees,
		ConvenienceFeeExpense, ManagementFees, PMIncomeMgmtFees,
		RepairsMaintenance, RepairsPayable, OwnerPayout, OwnerCommissionsPayable,
	} {
		assert.True(t, svc.Exists(name), name)
	}
}

func TestService_Get(t *testing.T) {
	svc := Default()
	a, ok := svc.Get(RentRevenue)
	assert.True(t, ok)
	assert.Equal(t, model.AccountTypeRevenue, a.Type)

	_, ok = svc.Get("Slush Fund")
	assert.False(t, ok)
}

func TestService_ByType(t *testing.T) {
	liabilities := Default().ByType(model.AccountTypeLiability)
	assert.Len(t, liabilities, 2)
}

func TestChart_Size(t *testing.T) {
	assert.Len(t, Chart(), 11)
}
