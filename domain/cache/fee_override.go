package cache

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// feeOverrideTTL bounds how long a preview's fee choice stays pinned.
const feeOverrideTTL = 30 * time.Second

var (
	feeOverrideHitsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "swapquote_fee_override_hits_total",
			Help: "Total number of fee override cache hits",
		},
	)
	feeOverrideMissesCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "swapquote_fee_override_misses_total",
			Help: "Total number of fee override cache misses",
		},
	)
)

func init() {
	prometheus.MustRegister(feeOverrideHitsCounter)
	prometheus.MustRegister(feeOverrideMissesCounter)
}

// FeeOverride pins fee parameters chosen at quote-preview time so that a
// later spend-construction call within the same flow uses identical fees,
// even when the wallet's own fee estimator would choose differently.
//
// It wraps Cache with a fixed 30 second expiration and monotonically
// incrementing session ids. Expired entries are purged lazily on every
// write; there is no background timer.
type FeeOverride struct {
	cache *Cache

	mu     sync.Mutex
	nextID uint64
}

// NewFeeOverride creates a new fee override cache.
func NewFeeOverride() *FeeOverride {
	return NewFeeOverrideWithClock(time.Now)
}

// NewFeeOverrideWithClock creates a new fee override cache with a
// controllable clock.
func NewFeeOverrideWithClock(now func() time.Time) *FeeOverride {
	return &FeeOverride{
		cache: newWithClock(now),
	}
}

// CreateSession creates a new session with an empty fee map, returning a
// monotonically incrementing session id.
func (f *FeeOverride) CreateSession() string {
	f.mu.Lock()
	f.nextID++
	sessionID := strconv.FormatUint(f.nextID, 10)
	f.mu.Unlock()

	f.cache.Set(sessionID, map[string]string{}, feeOverrideTTL)

	return sessionID
}

// GetFees returns the pinned fee map for a session, or nil and false if the
// session does not exist or has expired.
func (f *FeeOverride) GetFees(sessionID string) (map[string]string, bool) {
	value, found := f.cache.Get(sessionID)
	if !found {
		feeOverrideMissesCounter.Inc()
		return nil, false
	}

	fees, ok := value.(map[string]string)
	if !ok {
		feeOverrideMissesCounter.Inc()
		return nil, false
	}

	feeOverrideHitsCounter.Inc()
	return fees, true
}

// SetFees purges all expired entries, then upserts the given session with a
// fresh expiration.
func (f *FeeOverride) SetFees(sessionID string, fees map[string]string) {
	f.cache.purgeExpired()
	f.cache.Set(sessionID, fees, feeOverrideTTL)
}
