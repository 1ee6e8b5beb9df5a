package model

import (
	"fmt"
	"strings"
)

// Currency holds information
// on a supported currency
type Currency struct {
	Code   string // ISO 4217 code of the currency
	Name   string // Name of the currency
	Symbol string // Symbol of the currency
}

// currencies is the closed set of supported currencies.
// Order here is the listing order exposed by All.
var currencies = []Currency{
	{Code: "USD", Name: "US Dollar", Symbol: "$"},
	{Code: "EUR", Name: "Euro", Symbol: "€"},
	{Code: "GBP", Name: "British Pound", Symbol: "£"},
	{Code: "JPY", Name: "Japanese Yen", Symbol: "¥"},
	{Code: "INR", Name: "Indian Rupee", Symbol: "₹"},
	{Code: "CAD", Name: "Canadian Dollar", Symbol: "C$"},
	{Code: "AUD", Name: "Australian Dollar", Symbol: "A$"},
	{Code: "CHF", Name: "Swiss Franc", Symbol: "Fr"},
	{Code: "CNY", Name: "Chinese Yuan", Symbol: "¥"},
	{Code: "SEK", Name: "Swedish Krona", Symbol: "kr"},
	{Code: "NOK", Name: "Norwegian Krone", Symbol: "kr"},
	{Code: "MXN", Name: "Mexican Peso", Symbol: "$"},
	{Code: "SGD", Name: "Singapore Dollar", Symbol: "S$"},
	{Code: "HKD", Name: "Hong Kong Dollar", Symbol: "HK$"},
	{Code: "NZD", Name: "New Zealand Dollar", Symbol: "NZ$"},
	{Code: "XOF", Name: "Francs CFA", Symbol: "CFA"},
}

var currencyIndex = func() map[string]Currency {
	idx := make(map[string]Currency, len(currencies))
	for _, c := range currencies {
		idx[c.Code] = c
	}
	return idx
}()

// FromCode resolves a currency by its code.
// Lookup is case-insensitive.
func FromCode(code string) (Currency, error) {
	c, ok := currencyIndex[strings.ToUpper(code)]
	if !ok {
		return Currency{}, fmt.Errorf("%w: %s", ErrUnsupportedCurrency, code)
	}
	return c, nil
}

// All returns every supported currency in listing order.
func All() []Currency {
	out := make([]Currency, len(currencies))
	copy(out, currencies)
	return out
}
