// Package codec serializes application state in its two persistence forms:
// the compact single-letter-key encoding embedded in a URL fragment, and the
// verbose pretty-printed JSON used by export/import. The two deliberately
// diverge on journal handling: the compact form never stores entries (they
// are regenerated on decode), while the verbose form stores them and only
// regenerates when they are missing or malformed.
package codec

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rentledger-dev/rentledger/internal/coerce"
)

// looseNumber is a decimal that tolerates sloppy JSON: numbers, quoted
// numbers, null, or garbage all decode via the coercion policy (garbage
// becomes zero). It marshals as a bare JSON number.
type looseNumber struct {
	decimal.Decimal
}

func num(d decimal.Decimal) looseNumber {
	return looseNumber{d}
}

func (n looseNumber) MarshalJSON() ([]byte, error) {
	return []byte(n.Decimal.String()), nil
}

func (n *looseNumber) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		s = ""
	}
	n.Decimal = coerce.OrZero(s)
	return nil
}

// looseID is a property ID that accepts either a JSON string or the numeric
// timestamps written by older exports. It always marshals as a string.
type looseID string

func (id looseID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

func (id *looseID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// Legacy exports carry ids as bare numbers.
		s = string(data)
	}
	if s == "null" {
		s = ""
	}
	*id = looseID(s)
	return nil
}
