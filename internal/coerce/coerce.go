// Package coerce implements the numeric coercion policy applied at every
// ingestion boundary: loosely-typed input becomes a decimal amount, and
// anything unparsable silently becomes zero. Malformed input is therefore
// indistinguishable from a deliberate zero downstream.
package coerce

import (
	"strings"

	"github.com/shopspring/decimal"
)

// OrZero parses s as a decimal number. Empty, blank, or unparsable input
// yields zero; no error is ever raised.
func OrZero(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Positive reports whether s coerces to a value greater than zero.
func Positive(s string) bool {
	return OrZero(s).IsPositive()
}
