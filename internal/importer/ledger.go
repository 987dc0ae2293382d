package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rentledger-dev/rentledger/internal/accounts"
	"github.com/rentledger-dev/rentledger/internal/coerce"
	"github.com/rentledger-dev/rentledger/internal/id"
	"github.com/rentledger-dev/rentledger/internal/model"
)

// LedgerParser imports a tab-delimited ledger file: one header row, one row
// per journal line. The imported entries replace the journal as-is, and the
// property list is reconstructed from them by Reconstruct.
type LedgerParser struct{}

var hundred = decimal.NewFromInt(100)

// Canonical column names and their accepted aliases, lowercased.
var ledgerColumns = map[string]string{
	"date":         "Date",
	"journal date": "Date",
	"account":      "Account",
	"description":  "Description",
	"debit":        "Debit",
	"debits":       "Debit",
	"credit":       "Credit",
	"credits":      "Credit",
	"class":        "Class",
}

// Format returns the parser name.
func (p *LedgerParser) Format() string { return "ledger" }

// Parse reads a tab-delimited ledger into journal entries plus the property
// records reverse-aggregated from them.
func (p *LedgerParser) Parse(r io.Reader) (*model.State, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}

	entries, err := parseLedger(string(data))
	if err != nil {
		return nil, err
	}

	return &model.State{
		Properties:     Reconstruct(entries),
		JournalEntries: entries,
	}, nil
}

func parseLedger(text string) ([]model.JournalEntry, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil, fmt.Errorf("ledger is empty")
	}

	// Map each column index to its canonical field.
	header := strings.Split(lines[0], "\t")
	fields := make([]string, len(header))
	seen := make(map[string]bool)
	for i, h := range header {
		canonical, ok := ledgerColumns[strings.ToLower(strings.TrimSpace(h))]
		if !ok {
			continue
		}
		fields[i] = canonical
		seen[canonical] = true
	}
	for _, required := range []string{"Date", "Account", "Description", "Debit", "Credit", "Class"} {
		if !seen[required] {
			return nil, fmt.Errorf("ledger header is missing a %s column", required)
		}
	}

	var entries []model.JournalEntry
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		values := strings.Split(line, "\t")

		var e model.JournalEntry
		for i, field := range fields {
			if i >= len(values) {
				break
			}
			v := strings.TrimSpace(values[i])
			switch field {
			case "Date":
				e.Date = v
			case "Account":
				e.Account = v
			case "Description":
				e.Description = v
			case "Debit":
				e.Debit = v
			case "Credit":
				e.Credit = v
			case "Class":
				e.Class = v
			}
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Reconstruct rebuilds property records from journal rows by reverse-mapping
// the known accounts, grouping rows by Class in first-seen order. Every row
// with a non-empty Class is processed; unrecognized accounts are ignored.
// Synthesized properties get a fresh composite ID and the row's date
// (normalized back to ISO) as their payment date.
func Reconstruct(entries []model.JournalEntry) []model.Property {
	byName := make(map[string]*model.Property)
	var order []string

	for _, e := range entries {
		if e.Class == "" {
			continue
		}

		p, ok := byName[e.Class]
		if !ok {
			date, _ := model.ParseLedgerDate(e.Date)
			p = &model.Property{
				ID:          id.NewComposite(),
				Name:        e.Class,
				PaymentDate: date,
			}
			byName[e.Class] = p
			order = append(order, e.Class)
		}

		switch e.Account {
		case accounts.RentRevenue:
			p.Rent = p.Rent.Add(coerce.OrZero(e.Credit))
		case accounts.ConvenienceFeeRevenue:
			p.ConvenienceFee = p.ConvenienceFee.Add(coerce.OrZero(e.Credit))
		case accounts.ManagementFees:
			// Only the first management-fee row sets the percentage, and only
			// once some rent has accumulated (zero rent would divide by zero).
			if p.ManagementFeePercentage.IsZero() && p.Rent.IsPositive() {
				p.ManagementFeePercentage = coerce.OrZero(e.Debit).Mul(hundred).Div(p.Rent)
			}
		case accounts.RepairsMaintenance:
			description, _, _ := strings.Cut(e.Description, " for ")
			p.Expenses = append(p.Expenses, model.Expense{
				Description: description,
				Amount:      coerce.OrZero(e.Debit),
			})
		}
	}

	properties := make([]model.Property, 0, len(order))
	for _, name := range order {
		properties = append(properties, *byName[name])
	}
	return properties
}
