package cache

import (
	"strings"
	"sync"
	"time"

	"github.com/cheikhn414/currency-converter/model"
	"github.com/rs/zerolog/log"
)

// DefaultTTL is how long a stored rate set stays servable.
const DefaultTTL = 30 * time.Minute

type entry struct {
	rates    model.RateSet // rate set as fetched
	storedAt time.Time     // when the entry was written
}

// MCache is an in-memory rate cache keyed by base currency.
// Entries older than the TTL are treated as absent, so callers
// re-fetch; stale data is never served.
type MCache struct {
	lock    sync.RWMutex     // rw lock guards entries
	ttl     time.Duration    // staleness threshold
	entries map[string]entry // base code -> cached rates
	now     func() time.Time // clock, replaceable in tests
}

func New(ttl time.Duration) *MCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MCache{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get implements storage.Cache.
func (m *MCache) Get(base string) (model.RateSet, bool) {
	base = strings.ToUpper(base)

	m.lock.RLock()
	defer m.lock.RUnlock()

	e, ok := m.entries[base]
	if !ok {
		return model.RateSet{}, false
	}

	if m.now().Sub(e.storedAt) > m.ttl {
		log.Debug().Str("base", base).Time("storedAt", e.storedAt).Msg("cache entry is stale")
		return model.RateSet{}, false
	}

	return e.rates, true
}

// Put implements storage.Cache.
func (m *MCache) Put(base string, rates model.RateSet) {
	base = strings.ToUpper(base)

	m.lock.Lock()
	m.entries[base] = entry{rates: rates, storedAt: m.now()}
	m.lock.Unlock()
}

// Clear implements storage.Cache.
func (m *MCache) Clear() {
	m.lock.Lock()
	m.entries = make(map[string]entry)
	m.lock.Unlock()

	log.Debug().Msg("rate cache cleared")
}
