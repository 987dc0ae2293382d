package codec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentledger-dev/rentledger/internal/journal"
	"github.com/rentledger-dev/rentledger/internal/model"
)

func TestExportImportRoundTrip(t *testing.T) {
	p := sampleProperty()
	original := model.State{
		Properties:     []model.Property{p},
		JournalEntries: journal.Expand(p),
	}

	data, err := Export(original)
	require.NoError(t, err)

	state, err := Import(data)
	require.NoError(t, err)
	require.Len(t, state.Properties, 1)

	got := state.Properties[0]
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, p.Name, got.Name)
	assert.True(t, got.Rent.Equal(p.Rent))
	assert.True(t, got.ConvenienceFee.Equal(p.ConvenienceFee))
	assert.True(t, got.ManagementFeePercentage.Equal(p.ManagementFeePercentage))
	require.Len(t, got.Expenses, 1)
	assert.True(t, got.Expenses[0].Amount.Equal(dec("100")))

	assert.Equal(t, original.JournalEntries, state.JournalEntries, "stored entries are taken as-is")
}

func TestExport_PrettyPrintedWithFullNames(t *testing.T) {
	data, err := Export(model.State{Properties: []model.Property{sampleProperty()}})
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, "\n  \"properties\"")
	assert.Contains(t, s, `"managementFeePercentage": 10`)
	assert.Contains(t, s, `"paymentDate": "2025-01-15"`)
}

func TestExport_AmountsAreJSONNumbers(t *testing.T) {
	data, err := Export(model.State{Properties: []model.Property{sampleProperty()}})
	require.NoError(t, err)

	var raw struct {
		Properties []map[string]any `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw.Properties, 1)
	assert.IsType(t, float64(0), raw.Properties[0]["rent"])
}

func TestImport_MissingProperties(t *testing.T) {
	for _, data := range []string{`{}`, `{"properties":null}`, `{"journalEntries":[]}`} {
		_, err := Import([]byte(data))
		assert.Error(t, err, data)
	}
}

func TestImport_PropertiesNotArray(t *testing.T) {
	_, err := Import([]byte(`{"properties":"nope"}`))
	assert.Error(t, err)
}

func TestImport_MalformedJSON(t *testing.T) {
	_, err := Import([]byte(`{not json`))
	assert.Error(t, err)
}

func TestImport_RegeneratesMissingJournal(t *testing.T) {
	data := `{"properties":[{"id":"1","name":"Sunset Villa","paymentDate":"2025-01-15","rent":1000,"convenienceFee":50,"managementFeePercentage":10,"expenses":[{"description":"Plumbing","amount":100}]}]}`

	state, err := Import([]byte(data))
	require.NoError(t, err)
	assert.Len(t, state.JournalEntries, 11)
}

func TestImport_RegeneratesNonArrayJournal(t *testing.T) {
	data := `{"properties":[{"id":"1","name":"X","paymentDate":"2025-01-15","rent":100,"convenienceFee":0,"managementFeePercentage":0,"expenses":[]}],"journalEntries":"corrupt"}`

	state, err := Import([]byte(data))
	require.NoError(t, err)
	assert.Len(t, state.JournalEntries, 9)
}

func TestImport_KeepsEmptyJournalArray(t *testing.T) {
	data := `{"properties":[{"id":"1","name":"X","paymentDate":"2025-01-15","rent":100,"convenienceFee":0,"managementFeePercentage":0,"expenses":[]}],"journalEntries":[]}`

	state, err := Import([]byte(data))
	require.NoError(t, err)
	assert.Empty(t, state.JournalEntries, "a present-but-empty array is respected, not regenerated")
}

func TestImport_KeepsNegativeExpenses(t *testing.T) {
	data := `{"properties":[{"id":"1","name":"X","paymentDate":"2025-01-15","rent":1000,"convenienceFee":0,"managementFeePercentage":10,"expenses":[{"description":"Plumbing","amount":100},{"description":"Vendor refund","amount":-50}]}]}`

	state, err := Import([]byte(data))
	require.NoError(t, err)

	got := state.Properties[0]
	require.Len(t, got.Expenses, 2)
	assert.True(t, got.Expenses[1].Amount.Equal(dec("-50")), "negative amounts are kept, not dropped")
	assert.True(t, got.ExpenseTotal().Equal(dec("50")))
}

func TestExportImport_QuotedID(t *testing.T) {
	p := sampleProperty()
	p.ID = `odd "quoted\" id`

	data, err := Export(model.State{Properties: []model.Property{p}})
	require.NoError(t, err)
	assert.True(t, json.Valid(data))

	state, err := Import(data)
	require.NoError(t, err)
	assert.Equal(t, p.ID, state.Properties[0].ID)
}

func TestImport_CoercesSloppyNumbers(t *testing.T) {
	data := `{"properties":[{"id":7,"name":"X","paymentDate":"2025-01-15","rent":"1000","convenienceFee":"abc","managementFeePercentage":null,"expenses":[]}]}`

	state, err := Import([]byte(data))
	require.NoError(t, err)

	got := state.Properties[0]
	assert.Equal(t, "7", got.ID)
	assert.True(t, got.Rent.Equal(dec("1000")), "quoted numbers coerce")
	assert.True(t, got.ConvenienceFee.IsZero(), "garbage coerces to zero")
	assert.True(t, got.ManagementFeePercentage.IsZero(), "null coerces to zero")
}
