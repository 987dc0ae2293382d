// Package accounts defines the fixed chart of accounts that journal
// expansion writes against.
package accounts

import "github.com/rentledger-dev/rentledger/internal/model"

// Account names used by journal expansion. The vocabulary is fixed; the
// ledger import parser reverse-maps a subset of these back onto property
// fields. "Repairs and Maintenanace" keeps its historical spelling because
// existing ledger files use it.
const (
	RentClearing            = "Rent Clearing Account"
	RentRevenue             = "Rent Revenue Received"
	ConvenienceFeeRevenue   = "Rent Revenue-Convenience Fee"
	PMIncomeConvFees        = "PM Income Conv Fees (Current)"
	ConvenienceFeeExpense   = "Convenience Fee Expense"
	ManagementFees          = "Property Management Fees"
	PMIncomeMgmtFees        = "PM Income Fees Reg Income (Current)"
	RepairsMaintenance      = "Repairs and Maintenanace"
	RepairsPayable          = "Repairs Payable"
	OwnerPayout             = "Property Owner Payout"
	OwnerCommissionsPayable = "Owner Commissions Payable"
)

// Chart returns the full chart of accounts.
func Chart() []model.Account {
	return []model.Account{
		{Name: RentClearing, Type: model.AccountTypeAsset, Description: "Holds collected funds until distribution"},
		{Name: RentRevenue, Type: model.AccountTypeRevenue, Description: "Rent collected for the period"},
		{Name: ConvenienceFeeRevenue, Type: model.AccountTypeRevenue, Description: "Tenant convenience fee collected"},
		{Name: PMIncomeConvFees, Type: model.AccountTypeRevenue, Description: "Manager income from convenience fees"},
		{Name: ConvenienceFeeExpense, Type: model.AccountTypeExpense, Description: "Convenience fee passed through"},
		{Name: ManagementFees, Type: model.AccountTypeExpense, Description: "Percentage-of-rent management fee"},
		{Name: PMIncomeMgmtFees, Type: model.AccountTypeRevenue, Description: "Manager income from management fees"},
		{Name: RepairsMaintenance, Type: model.AccountTypeExpense, Description: "Repairs and maintenance costs"},
		{Name: RepairsPayable, Type: model.AccountTypeLiability, Description: "Repairs owed to vendors"},
		{Name: OwnerPayout, Type: model.AccountTypeExpense, Description: "Net amount due to the owner"},
		{Name: OwnerCommissionsPayable, Type: model.AccountTypeLiability, Description: "Owner payout awaiting disbursement"},
	}
}

// Service provides in-memory lookup over the chart of accounts.
type Service struct {
	accounts []model.Account
	byName   map[string]model.Account
}

// NewService creates a Service from a slice of accounts.
func NewService(accounts []model.Account) *Service {
	byName := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		byName[a.Name] = a
	}
	return &Service{accounts: accounts, byName: byName}
}

// Default returns a Service over the full chart.
func Default() *Service {
	return NewService(Chart())
}

// All returns all accounts.
func (s *Service) All() []model.Account {
	return s.accounts
}

// Get returns an account by name.
func (s *Service) Get(name string) (model.Account, bool) {
	a, ok := s.byName[name]
	return a, ok
}

// Exists reports whether an account name is part of the chart.
func (s *Service) Exists(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// ByType returns all accounts of the given type.
func (s *Service) ByType(accountType model.AccountType) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.Type == accountType {
			result = append(result, a)
		}
	}
	return result
}
