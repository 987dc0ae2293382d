package model

import "time"

// JournalEntry is one line of the double-entry ledger. Debit and Credit are
// fixed 2-decimal strings ("0.00" for the inactive side) so the entry
// round-trips byte-for-byte through the export formats. Class carries the
// property name and acts as the ledger's cost-center dimension.
type JournalEntry struct {
	Date        string `json:"Date"` // "MM/DD/YYYY"
	Account     string `json:"Account"`
	Description string `json:"Description"`
	Debit       string `json:"Debit"`
	Credit      string `json:"Credit"`
	Class       string `json:"Class"`
}

// State is the whole in-memory application state: the property list and the
// journal derived from it.
type State struct {
	Properties     []Property
	JournalEntries []JournalEntry
}

const (
	isoDateFormat    = "2006-01-02"
	ledgerDateFormat = "01/02/2006"
)

// FormatDate converts an ISO "YYYY-MM-DD" date to the ledger's "MM/DD/YYYY"
// form. Unparsable input is passed through unchanged.
func FormatDate(iso string) string {
	t, err := time.Parse(isoDateFormat, iso)
	if err != nil {
		return iso
	}
	return t.Format(ledgerDateFormat)
}

// ParseLedgerDate converts a ledger "MM/DD/YYYY" date back to ISO form.
// Dates already in ISO form are passed through; anything else is returned
// as-is with ok=false.
func ParseLedgerDate(date string) (string, bool) {
	if t, err := time.Parse(ledgerDateFormat, date); err == nil {
		return t.Format(isoDateFormat), true
	}
	if _, err := time.Parse(isoDateFormat, date); err == nil {
		return date, true
	}
	return date, false
}
