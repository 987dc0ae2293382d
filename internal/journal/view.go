package journal

import (
	"strings"

	"github.com/rentledger-dev/rentledger/internal/coerce"
	"github.com/rentledger-dev/rentledger/internal/model"
)

// JournalNo synthesizes the export journal number from an "MM/DD/YYYY" date:
// "20250115Rent". Unexpected dates collapse to the bare suffix.
func JournalNo(date string) string {
	parts := strings.Split(date, "/")
	if len(parts) != 3 {
		return "Rent"
	}
	return parts[2] + parts[0] + parts[1] + "Rent"
}

// ValidEntries filters the journal down to rows worth displaying: date,
// account, and description present, at least one positive side, and a
// description that mentions a property still in the collection.
func ValidEntries(entries []model.JournalEntry, properties []model.Property) []model.JournalEntry {
	var valid []model.JournalEntry
	for _, e := range entries {
		if e.Date == "" || e.Account == "" || e.Description == "" {
			continue
		}
		if !coerce.Positive(e.Debit) && !coerce.Positive(e.Credit) {
			continue
		}
		mentioned := false
		for _, p := range properties {
			if strings.Contains(e.Description, p.Name) {
				mentioned = true
				break
			}
		}
		if !mentioned {
			continue
		}
		valid = append(valid, e)
	}
	return valid
}
