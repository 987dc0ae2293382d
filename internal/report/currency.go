// Package report renders printable documents and display strings from
// already-computed figures. Nothing here derives numbers; it formats what
// the finance and journal packages produce.
package report

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Formatter renders decimal amounts in a fixed currency.
type Formatter struct {
	code string
}

// NewFormatter creates a Formatter for an ISO 4217 currency code.
func NewFormatter(code string) *Formatter {
	if money.GetCurrency(code) == nil {
		code = money.USD
	}
	return &Formatter{code: code}
}

// Amount renders d with the currency's symbol and grouping, e.g. "$1,050.00".
func (f *Formatter) Amount(d decimal.Decimal) string {
	cents := d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	return money.New(cents, f.code).Display()
}
