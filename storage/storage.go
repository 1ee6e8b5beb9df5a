package storage

import "github.com/cheikhn414/currency-converter/model"

// Cache interface describes non-persistent cache
// storage for fetched rate sets, keyed by base currency
type Cache interface {
	// Get returns the rate set stored for the base currency
	// if one is present and still fresh
	Get(base string) (model.RateSet, bool)

	// Put replaces the entry for the base currency,
	// stamping the current time
	Put(base string, rates model.RateSet)

	// Clear drops all entries
	Clear()
}
