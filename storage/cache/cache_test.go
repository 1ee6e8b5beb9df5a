package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/cheikhn414/currency-converter/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rateSet(base string) model.RateSet {
	return model.RateSet{
		Base:      base,
		Rates:     map[string]decimal.Decimal{"EUR": decimal.RequireFromString("0.85")},
		FetchedAt: time.Now(),
		Live:      true,
	}
}

func TestGetMissing(t *testing.T) {
	c := New(time.Minute)

	_, ok := c.Get("USD")
	assert.False(t, ok)
}

func TestPutGet(t *testing.T) {
	c := New(time.Minute)
	c.Put("USD", rateSet("USD"))

	got, ok := c.Get("USD")
	require.True(t, ok)
	assert.Equal(t, "USD", got.Base)
	assert.True(t, got.Live)
	assert.True(t, got.Rates["EUR"].Equal(decimal.RequireFromString("0.85")))
}

func TestGetCaseInsensitive(t *testing.T) {
	c := New(time.Minute)
	c.Put("usd", rateSet("USD"))

	_, ok := c.Get("USD")
	assert.True(t, ok)
	_, ok = c.Get("uSd")
	assert.True(t, ok)
}

func TestGetStale(t *testing.T) {
	c := New(30 * time.Minute)

	now := time.Now()
	c.now = func() time.Time { return now }
	c.Put("USD", rateSet("USD"))

	// exactly at the threshold is still fresh
	c.now = func() time.Time { return now.Add(30 * time.Minute) }
	_, ok := c.Get("USD")
	assert.True(t, ok)

	c.now = func() time.Time { return now.Add(30*time.Minute + time.Second) }
	_, ok = c.Get("USD")
	assert.False(t, ok)
}

func TestPutOverwrites(t *testing.T) {
	c := New(time.Minute)
	c.Put("USD", rateSet("USD"))

	updated := rateSet("USD")
	updated.Rates["EUR"] = decimal.RequireFromString("0.90")
	c.Put("USD", updated)

	got, ok := c.Get("USD")
	require.True(t, ok)
	assert.True(t, got.Rates["EUR"].Equal(decimal.RequireFromString("0.90")))
}

func TestClear(t *testing.T) {
	c := New(time.Minute)
	c.Put("USD", rateSet("USD"))
	c.Put("EUR", rateSet("EUR"))

	c.Clear()

	_, ok := c.Get("USD")
	assert.False(t, ok)
	_, ok = c.Get("EUR")
	assert.False(t, ok)
}

func TestConcurrentAccess(t *testing.T) {
	c := New(time.Minute)

	wg := sync.WaitGroup{}
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			base := fmt.Sprintf("B%02d", i%4)
			for j := 0; j < 100; j++ {
				c.Put(base, rateSet(base))
				c.Get(base)
			}
		}(i)
	}
	wg.Wait()
}
