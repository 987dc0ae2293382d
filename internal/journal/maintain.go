package journal

import (
	"strings"

	"github.com/rentledger-dev/rentledger/internal/model"
)

// PurgeClass removes all entries whose Class equals name. Used when a
// property is edited: rows generated under the old name are dropped before
// the re-expansion is appended.
func PurgeClass(entries []model.JournalEntry, name string) []model.JournalEntry {
	var kept []model.JournalEntry
	for _, e := range entries {
		if e.Class != name {
			kept = append(kept, e)
		}
	}
	return kept
}

// PurgeMentions removes all entries whose Description contains name. Used
// when a property is deleted.
func PurgeMentions(entries []model.JournalEntry, name string) []model.JournalEntry {
	var kept []model.JournalEntry
	for _, e := range entries {
		if !strings.Contains(e.Description, name) {
			kept = append(kept, e)
		}
	}
	return kept
}
