package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wardenwallet/swapquote/quote/usecase"
)

func TestEnsureInFuture(t *testing.T) {
	margin := 30 * time.Second

	tests := []struct {
		name string
		// candidateOffset is relative to the time of the call.
		candidateOffset time.Duration
		expectClamped   bool
	}{
		{
			name:            "far future date is returned unchanged",
			candidateOffset: time.Hour,
			expectClamped:   false,
		},
		{
			name:            "date just beyond the margin is returned unchanged",
			candidateOffset: margin + 5*time.Second,
			expectClamped:   false,
		},
		{
			name:            "date inside the margin is clamped",
			candidateOffset: 10 * time.Second,
			expectClamped:   true,
		},
		{
			name:            "stale date far in the past is clamped",
			candidateOffset: -10000 * time.Second,
			expectClamped:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := time.Now()
			candidate := before.Add(tt.candidateOffset)

			result := usecase.EnsureInFuture(candidate, margin)

			// The result is never earlier than now + margin.
			require.False(t, result.Before(before.Add(margin)))

			if tt.expectClamped {
				require.WithinDuration(t, before.Add(margin), result, time.Second)
			} else {
				require.Equal(t, candidate, result)
			}
		})
	}
}

func TestEnsureInFuture_ZeroCandidate(t *testing.T) {
	result := usecase.EnsureInFuture(time.Time{}, 30*time.Second)
	require.True(t, result.IsZero())
}
