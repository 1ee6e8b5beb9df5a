package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAmount is returned for negative conversion amounts
	ErrInvalidAmount = errors.New("amount must not be negative")

	// ErrUnsupportedCurrency is returned for codes outside the supported set
	ErrUnsupportedCurrency = errors.New("unsupported currency")

	// ErrRateUnavailable is returned when the resolved rate set
	// has no entry for the requested quote currency
	ErrRateUnavailable = errors.New("exchange rate not available")
)

// ProviderError reports a failed call to a single rate provider.
// The orchestrator absorbs these by falling through to the next
// provider, so they rarely reach a caller directly.
type ProviderError struct {
	Provider   string // configured name of the provider
	StatusCode int    // HTTP status, 0 on transport failures
	Body       string // response body, when one was read
	Err        error  // underlying transport or decode error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("provider %s: status %d: %s", e.Provider, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
