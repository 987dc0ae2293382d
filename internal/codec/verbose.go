package codec

import (
	"encoding/json"
	"fmt"

	"github.com/rentledger-dev/rentledger/internal/journal"
	"github.com/rentledger-dev/rentledger/internal/model"
)

// ExportFileName is the conventional name of the verbose JSON export.
const ExportFileName = "property_management_database.json"

type verboseExpense struct {
	Description string      `json:"description"`
	Amount      looseNumber `json:"amount"`
}

type verboseProperty struct {
	ID                      looseID          `json:"id"`
	Name                    string           `json:"name"`
	PaymentDate             string           `json:"paymentDate"`
	Rent                    looseNumber      `json:"rent"`
	ConvenienceFee          looseNumber      `json:"convenienceFee"`
	ManagementFeePercentage looseNumber      `json:"managementFeePercentage"`
	Expenses                []verboseExpense `json:"expenses"`
}

type verboseState struct {
	Properties     []verboseProperty    `json:"properties"`
	JournalEntries []model.JournalEntry `json:"journalEntries"`
}

// Export serializes the full state as pretty-printed JSON with full field
// names, journal entries included.
func Export(state model.State) ([]byte, error) {
	vs := verboseState{
		Properties:     make([]verboseProperty, 0, len(state.Properties)),
		JournalEntries: state.JournalEntries,
	}
	if vs.JournalEntries == nil {
		vs.JournalEntries = []model.JournalEntry{}
	}
	for _, p := range state.Properties {
		vp := verboseProperty{
			ID:                      looseID(p.ID),
			Name:                    p.Name,
			PaymentDate:             p.PaymentDate,
			Rent:                    num(p.Rent),
			ConvenienceFee:          num(p.ConvenienceFee),
			ManagementFeePercentage: num(p.ManagementFeePercentage),
			Expenses:                []verboseExpense{},
		}
		for _, e := range p.Expenses {
			vp.Expenses = append(vp.Expenses, verboseExpense{Description: e.Description, Amount: num(e.Amount)})
		}
		vs.Properties = append(vs.Properties, vp)
	}

	data, err := json.MarshalIndent(vs, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding database: %w", err)
	}
	return data, nil
}

// Import parses a verbose JSON export. The properties array is required; a
// missing or malformed journalEntries array is not an error, the journal is
// regenerated from the properties instead.
func Import(data []byte) (*model.State, error) {
	var raw struct {
		Properties     json.RawMessage `json:"properties"`
		JournalEntries json.RawMessage `json:"journalEntries"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing database: %w", err)
	}
	if len(raw.Properties) == 0 || string(raw.Properties) == "null" {
		return nil, fmt.Errorf("invalid database format: missing properties array")
	}

	var vps []verboseProperty
	if err := json.Unmarshal(raw.Properties, &vps); err != nil {
		return nil, fmt.Errorf("invalid database format: properties is not an array: %w", err)
	}

	properties := make([]model.Property, 0, len(vps))
	for _, vp := range vps {
		p := model.Property{
			ID:                      string(vp.ID),
			Name:                    vp.Name,
			PaymentDate:             vp.PaymentDate,
			Rent:                    vp.Rent.Decimal,
			ConvenienceFee:          vp.ConvenienceFee.Decimal,
			ManagementFeePercentage: vp.ManagementFeePercentage.Decimal,
		}
		for _, e := range vp.Expenses {
			p.Expenses = append(p.Expenses, model.Expense{Amount: e.Amount.Decimal, Description: e.Description})
		}
		properties = append(properties, p)
	}

	var entries []model.JournalEntry
	if len(raw.JournalEntries) > 0 {
		if err := json.Unmarshal(raw.JournalEntries, &entries); err != nil {
			entries = nil
		}
	}
	if entries == nil {
		entries = journal.Rebuild(properties)
	}

	return &model.State{Properties: properties, JournalEntries: entries}, nil
}
