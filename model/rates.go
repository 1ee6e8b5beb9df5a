package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateSet holds all known exchange rates relative to
// one base currency at one point in time.
// Rates map quote currency codes to "quote per 1 base" values;
// the base currency itself has no entry.
type RateSet struct {
	Base      string                     // base currency code
	Rates     map[string]decimal.Decimal // quote code -> rate
	FetchedAt time.Time                  // when the rates were obtained
	Live      bool                       // fetched from a provider vs static fallback
}

// Valid reports whether the rate set carries usable data.
func (r RateSet) Valid() bool { return len(r.Rates) > 0 }

// ConversionResult is the immutable outcome of one conversion.
type ConversionResult struct {
	From            string          `json:"fromCurrency"`
	To              string          `json:"toCurrency"`
	Amount          decimal.Decimal `json:"amount"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	Rate            decimal.Decimal `json:"exchangeRate"`
	Timestamp       time.Time       `json:"timestamp"`
}
