package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wardenwallet/swapquote/domain/cache"
)

// fakeClock is a controllable clock for cache expiry tests.
type fakeClock struct {
	current time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.current
}

func (c *fakeClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func TestFeeOverride_SessionIDsAreMonotonic(t *testing.T) {
	f := cache.NewFeeOverride()

	first := f.CreateSession()
	second := f.CreateSession()

	require.Equal(t, "1", first)
	require.Equal(t, "2", second)
}

func TestFeeOverride_GetFees(t *testing.T) {
	defaultFees := map[string]string{"gasPrice": "21"}

	tests := []struct {
		name          string
		advanceBefore time.Duration
		expectedFound bool
	}{
		{
			name:          "fresh entry is returned",
			advanceBefore: 0,
			expectedFound: true,
		},
		{
			name:          "entry just inside the TTL is returned",
			advanceBefore: 29 * time.Second,
			expectedFound: true,
		},
		{
			name:          "entry older than 30 seconds is unreachable",
			advanceBefore: 31 * time.Second,
			expectedFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{current: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
			f := cache.NewFeeOverrideWithClock(clock.Now)

			sessionID := f.CreateSession()
			f.SetFees(sessionID, defaultFees)

			clock.Advance(tt.advanceBefore)

			fees, found := f.GetFees(sessionID)
			require.Equal(t, tt.expectedFound, found)
			if tt.expectedFound {
				require.Equal(t, defaultFees, fees)
			} else {
				require.Nil(t, fees)
			}
		})
	}
}

func TestFeeOverride_GetFees_UnknownSession(t *testing.T) {
	f := cache.NewFeeOverride()

	fees, found := f.GetFees("999")
	require.False(t, found)
	require.Nil(t, fees)
}

// SetFees must purge expired entries before writing so that abandoned
// preview flows do not accumulate.
func TestFeeOverride_SetFees_PurgesExpired(t *testing.T) {
	clock := &fakeClock{current: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	f := cache.NewFeeOverrideWithClock(clock.Now)

	stale := f.CreateSession()
	f.SetFees(stale, map[string]string{"gasPrice": "10"})

	clock.Advance(31 * time.Second)

	fresh := f.CreateSession()
	f.SetFees(fresh, map[string]string{"gasPrice": "12"})

	_, found := f.GetFees(stale)
	require.False(t, found)

	fees, found := f.GetFees(fresh)
	require.True(t, found)
	require.Equal(t, "12", fees["gasPrice"])
}

// A SetFees call refreshes the session timestamp, extending its reach.
func TestFeeOverride_SetFees_RefreshesTimestamp(t *testing.T) {
	clock := &fakeClock{current: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	f := cache.NewFeeOverrideWithClock(clock.Now)

	sessionID := f.CreateSession()
	f.SetFees(sessionID, map[string]string{"gasPrice": "10"})

	clock.Advance(20 * time.Second)
	f.SetFees(sessionID, map[string]string{"gasPrice": "10"})

	clock.Advance(20 * time.Second)

	_, found := f.GetFees(sessionID)
	require.True(t, found)
}
