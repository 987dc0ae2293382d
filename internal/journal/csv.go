package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/rentledger-dev/rentledger/internal/coerce"
	"github.com/rentledger-dev/rentledger/internal/model"
)

// CSVHeader is the header row of the journal CSV export.
const CSVHeader = "Journal No.,Journal Date,Account,Description,Debits,Credits,Class"

// ExportFileName is the conventional name of the journal CSV export.
const ExportFileName = "property_management_journal_entry.csv"

// WriteCSV writes the journal CSV export. Rows where neither side is
// positive are excluded; the inactive side of each kept row is left blank.
func WriteCSV(w io.Writer, entries []model.JournalEntry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(CSVHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range entries {
		debit := coerce.Positive(e.Debit)
		credit := coerce.Positive(e.Credit)
		if !debit && !credit {
			continue
		}

		row := []string{JournalNo(e.Date), e.Date, e.Account, e.Description, "", "", e.Class}
		if debit {
			row[4] = e.Debit
		}
		if credit {
			row[5] = e.Credit
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
