package journal

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rentledger-dev/rentledger/internal/accounts"
	"github.com/rentledger-dev/rentledger/internal/coerce"
	"github.com/rentledger-dev/rentledger/internal/model"
)

// ValidationError describes a single invariant violation in a journal.
type ValidationError struct {
	Invariant   int
	Class       string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.Class, e.Description)
}

// Validate enforces the journal invariants over a set of entries:
//
//  1. each Class (property) balances: sum(debits) == sum(credits)
//  2. no row carries both a positive debit and a positive credit
//  3. every account name belongs to the chart of accounts
func Validate(entries []model.JournalEntry, chart *accounts.Service) []ValidationError {
	var errs []ValidationError

	debits := make(map[string]decimal.Decimal)
	credits := make(map[string]decimal.Decimal)
	var classOrder []string

	for i, e := range entries {
		debit := coerce.OrZero(e.Debit)
		credit := coerce.OrZero(e.Credit)

		if _, seen := debits[e.Class]; !seen {
			classOrder = append(classOrder, e.Class)
		}
		debits[e.Class] = debits[e.Class].Add(debit)
		credits[e.Class] = credits[e.Class].Add(credit)

		if debit.IsPositive() && credit.IsPositive() {
			errs = append(errs, ValidationError{
				Invariant:   2,
				Class:       e.Class,
				Description: fmt.Sprintf("row %d has both debit (%s) and credit (%s)", i+1, e.Debit, e.Credit),
			})
		}

		if !chart.Exists(e.Account) {
			errs = append(errs, ValidationError{
				Invariant:   3,
				Class:       e.Class,
				Description: fmt.Sprintf("row %d references unknown account %q", i+1, e.Account),
			})
		}
	}

	for _, class := range classOrder {
		if !debits[class].Equal(credits[class]) {
			errs = append(errs, ValidationError{
				Invariant:   1,
				Class:       class,
				Description: fmt.Sprintf("debits (%s) != credits (%s)", debits[class].StringFixed(2), credits[class].StringFixed(2)),
			})
		}
	}

	return errs
}
