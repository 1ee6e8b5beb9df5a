package rates

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cheikhn414/currency-converter/metrics"
	"github.com/cheikhn414/currency-converter/model"
	"github.com/cheikhn414/currency-converter/service"
	"github.com/cheikhn414/currency-converter/storage"
	"github.com/eapache/go-resiliency/retrier"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/semaphore"
)

const retryBackoff = 250 * time.Millisecond

// Service resolves exchange rates through an ordered chain:
// cache, then each configured provider in turn, then the static
// fallback table. Static results are never written to the cache,
// so the next request retries the live providers.
type Service struct {
	providers []service.Provider       // tried in order, first success wins
	cache     storage.Cache            // shared rate cache
	retry     *retrier.Retrier         // per-provider retry policy
	metrics   *metrics.ExchangeMetrics // service counters
}

// New constructs the orchestrator. retries is the number of extra
// attempts per provider beyond the first.
func New(cache storage.Cache, m *metrics.ExchangeMetrics, retries int, providers ...service.Provider) *Service {
	return &Service{
		providers: providers,
		cache:     cache,
		retry:     retrier.New(retrier.ConstantBackoff(retries, retryBackoff), nil),
		metrics:   m,
	}
}

// GetRates implements service.Exchange.
// It never fails for a recognized base currency: when every provider
// is unreachable it degrades to approximate static rates.
func (s *Service) GetRates(ctx context.Context, base string) (model.RateSet, error) {
	base = strings.ToUpper(base)

	if rs, ok := s.cache.Get(base); ok {
		s.metrics.CacheHits.Inc()
		log.Debug().Str("base", base).Msg("serving rates from cache")
		return rs, nil
	}
	s.metrics.CacheMisses.Inc()

	for _, p := range s.providers {
		var rs model.RateSet

		err := s.retry.RunCtx(ctx, func(ctx context.Context) error {
			var ferr error
			rs, ferr = p.Fetch(ctx, base)
			return ferr
		})
		if err != nil {
			s.metrics.ProviderRequests.WithLabelValues(p.Name(), "error").Inc()
			log.Warn().Err(err).Str("provider", p.Name()).Str("base", base).Msg("provider fetch failed")
			continue
		}

		s.metrics.ProviderRequests.WithLabelValues(p.Name(), "ok").Inc()
		s.cache.Put(base, rs)
		return rs, nil
	}

	s.metrics.StaticFallbacks.Inc()
	log.Warn().Str("base", base).Msg("all providers failed, using static rates")
	return staticRates(base), nil
}

// GetRate implements service.Exchange.
func (s *Service) GetRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)

	if from == to {
		return decimal.NewFromInt(1), nil
	}

	rs, err := s.GetRates(ctx, from)
	if err != nil {
		return decimal.Decimal{}, err
	}

	rate, ok := rs.Rates[to]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w for pair %s/%s", model.ErrRateUnavailable, from, to)
	}

	return rate, nil
}

// ClearCache implements service.Exchange.
func (s *Service) ClearCache() { s.cache.Clear() }

// Warm prefetches rates for the given base currencies with bounded
// concurrency. Intended for startup; failures only log, since each
// base degrades to static rates anyway.
func (s *Service) Warm(ctx context.Context, bases []string) {
	sem := semaphore.NewWeighted(4)
	wg := sync.WaitGroup{}

	for _, base := range bases {
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Error().Err(err).Msg("unable to acquire semaphore")
			break
		}

		wg.Add(1)
		go func(base string) {
			defer wg.Done()
			defer sem.Release(1)

			if _, err := s.GetRates(ctx, base); err != nil {
				log.Error().Err(err).Str("base", base).Msg("warm-up fetch failed")
			}
		}(base)
	}

	wg.Wait()
}
