package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentledger-dev/rentledger/internal/model"
)

func TestJournalNo(t *testing.T) {
	assert.Equal(t, "20250115Rent", JournalNo("01/15/2025"))
	assert.Equal(t, "Rent", JournalNo("not-a-date"))
	assert.Equal(t, "Rent", JournalNo(""))
}

func TestValidEntries(t *testing.T) {
	p := sampleProperty()
	entries := Expand(p)
	entries = append(entries,
		model.JournalEntry{Date: "01/15/2025", Account: "X", Description: "Orphan row", Debit: "5.00", Credit: "0.00"},
		model.JournalEntry{Date: "", Account: "X", Description: "Rent for Sunset Villa", Debit: "5.00", Credit: "0.00"},
	)

	valid := ValidEntries(entries, []model.Property{p})
	require.Len(t, valid, 11)
	for _, e := range valid {
		assert.Contains(t, e.Description, "Sunset Villa")
	}
}

func TestValidEntries_DropsZeroRows(t *testing.T) {
	p := model.Property{Name: "Empty", PaymentDate: "2025-03-01"}
	valid := ValidEntries(Expand(p), []model.Property{p})
	assert.Empty(t, valid, "all-zero journal has no displayable rows")
}
