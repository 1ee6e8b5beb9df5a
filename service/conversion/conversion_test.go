package conversion

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/cheikhn414/currency-converter/metrics"
	"github.com/cheikhn414/currency-converter/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubExchange struct {
	rate    string
	err     error
	calls   int32
	cleared bool
}

func (s *stubExchange) GetRates(_ context.Context, base string) (model.RateSet, error) {
	return model.RateSet{Base: base}, nil
}

func (s *stubExchange) GetRate(_ context.Context, from, to string) (decimal.Decimal, error) {
	atomic.AddInt32(&s.calls, 1)

	if s.err != nil {
		return decimal.Decimal{}, s.err
	}
	return decimal.RequireFromString(s.rate), nil
}

func (s *stubExchange) ClearCache() { s.cleared = true }

func newConverter(rates *stubExchange) *Converter {
	return New(rates, metrics.New(prometheus.NewRegistry()))
}

func TestConvert(t *testing.T) {
	c := newConverter(&stubExchange{rate: "0.85"})

	result, err := c.Convert(context.Background(), "USD", "EUR", decimal.NewFromInt(100))
	require.NoError(t, err)

	assert.Equal(t, "USD", result.From)
	assert.Equal(t, "EUR", result.To)
	assert.True(t, result.Amount.Equal(decimal.NewFromInt(100)))
	assert.True(t, result.Rate.Equal(decimal.RequireFromString("0.85")))
	assert.True(t, result.ConvertedAmount.Equal(decimal.RequireFromString("85")))
	assert.False(t, result.Timestamp.IsZero())
}

func TestConvertNormalizesCodes(t *testing.T) {
	c := newConverter(&stubExchange{rate: "0.85"})

	result, err := c.Convert(context.Background(), "usd", "eur", decimal.NewFromInt(1))
	require.NoError(t, err)
	assert.Equal(t, "USD", result.From)
	assert.Equal(t, "EUR", result.To)
}

func TestConvertRounding(t *testing.T) {
	tests := []struct {
		amount string
		rate   string
		want   string
	}{
		{"100", "0.85", "85"},
		{"1", "0.333333", "0.3333"},
		{"0.5", "0.0001", "0.0001"}, // 0.00005 rounds half-up
		{"3", "0.11115", "0.3335"},  // 0.33345 rounds half-up at the 4th place
	}

	for _, tc := range tests {
		c := newConverter(&stubExchange{rate: tc.rate})

		result, err := c.Convert(context.Background(), "USD", "EUR", decimal.RequireFromString(tc.amount))
		require.NoError(t, err)
		assert.True(t, result.ConvertedAmount.Equal(decimal.RequireFromString(tc.want)),
			"amount %s rate %s: got %s, want %s", tc.amount, tc.rate, result.ConvertedAmount, tc.want)
	}
}

func TestConvertZeroAmount(t *testing.T) {
	c := newConverter(&stubExchange{rate: "0.85"})

	result, err := c.Convert(context.Background(), "USD", "EUR", decimal.Zero)
	require.NoError(t, err)
	assert.True(t, result.ConvertedAmount.IsZero())
}

func TestConvertNegativeAmount(t *testing.T) {
	rates := &stubExchange{rate: "0.85"}
	c := newConverter(rates)

	_, err := c.Convert(context.Background(), "USD", "EUR", decimal.NewFromInt(-1))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidAmount)
	assert.Equal(t, int32(0), atomic.LoadInt32(&rates.calls))
}

func TestConvertUnsupportedCurrency(t *testing.T) {
	rates := &stubExchange{rate: "0.85"}
	c := newConverter(rates)

	_, err := c.Convert(context.Background(), "XYZ", "USD", decimal.NewFromInt(10))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUnsupportedCurrency)

	_, err = c.Convert(context.Background(), "USD", "XYZ", decimal.NewFromInt(10))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUnsupportedCurrency)

	assert.Equal(t, int32(0), atomic.LoadInt32(&rates.calls))
}

func TestConvertRateUnavailable(t *testing.T) {
	c := newConverter(&stubExchange{err: model.ErrRateUnavailable})

	_, err := c.Convert(context.Background(), "GBP", "JPY", decimal.NewFromInt(10))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrRateUnavailable)
}

func TestClearCache(t *testing.T) {
	rates := &stubExchange{rate: "0.85"}
	c := newConverter(rates)

	c.ClearCache()
	assert.True(t, rates.cleared)
}
