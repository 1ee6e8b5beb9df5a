package service

import (
	"context"

	"github.com/cheikhn414/currency-converter/model"
	"github.com/shopspring/decimal"
)

// Exchange interface describes
// methods specs for obtaining exchange rates
type Exchange interface {
	// GetRates returns all known rates for the base currency,
	// degrading to static rates when no provider is reachable
	GetRates(ctx context.Context, base string) (model.RateSet, error)

	// GetRate returns the exchange rate
	// for the specified pair
	GetRate(ctx context.Context, from, to string) (decimal.Decimal, error)

	// ClearCache drops all cached rate sets
	ClearCache()
}

// Provider interface describes a single
// upstream rate provider endpoint
type Provider interface {
	// Name identifies the provider in logs and metrics
	Name() string

	// Fetch retrieves all rates relative to the base currency
	// with one outbound call, no retries
	Fetch(ctx context.Context, base string) (model.RateSet, error)
}
