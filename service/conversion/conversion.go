package conversion

import (
	"context"
	"fmt"
	"time"

	"github.com/cheikhn414/currency-converter/metrics"
	"github.com/cheikhn414/currency-converter/model"
	"github.com/cheikhn414/currency-converter/service"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// decimalPlaces is the scale of converted amounts.
const decimalPlaces = 4

// Converter validates conversion requests and applies
// rates resolved by the exchange service.
type Converter struct {
	rates   service.Exchange
	metrics *metrics.ExchangeMetrics
}

func New(rates service.Exchange, m *metrics.ExchangeMetrics) *Converter {
	return &Converter{rates: rates, metrics: m}
}

// Convert turns amount units of the from currency into the to
// currency, rounding half-up to four decimal places. Zero amounts
// are allowed, negative ones are not.
func (c *Converter) Convert(ctx context.Context, from, to string, amount decimal.Decimal) (model.ConversionResult, error) {
	if amount.IsNegative() {
		return model.ConversionResult{}, fmt.Errorf("%w: %s", model.ErrInvalidAmount, amount)
	}

	fromCur, err := model.FromCode(from)
	if err != nil {
		return model.ConversionResult{}, err
	}

	toCur, err := model.FromCode(to)
	if err != nil {
		return model.ConversionResult{}, err
	}

	rate, err := c.rates.GetRate(ctx, fromCur.Code, toCur.Code)
	if err != nil {
		return model.ConversionResult{}, err
	}

	converted := amount.Mul(rate).Round(decimalPlaces)

	c.metrics.Conversions.WithLabelValues(fromCur.Code, toCur.Code).Inc()
	log.Debug().
		Str("from", fromCur.Code).
		Str("to", toCur.Code).
		Stringer("amount", amount).
		Stringer("rate", rate).
		Stringer("converted", converted).
		Msg("converted amount")

	return model.ConversionResult{
		From:            fromCur.Code,
		To:              toCur.Code,
		Amount:          amount,
		ConvertedAmount: converted,
		Rate:            rate,
		Timestamp:       time.Now(),
	}, nil
}

// ClearCache resets the underlying rate cache.
func (c *Converter) ClearCache() { c.rates.ClearCache() }
