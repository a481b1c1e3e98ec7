package usecase

import "time"

// DefaultExpirationMargin guards against provider expirations that are
// already stale by the time the wallet processes the reply.
const DefaultExpirationMargin = 30 * time.Second

// EnsureInFuture returns candidate unchanged if it is later than
// now + margin, otherwise now + margin. A zero candidate is returned
// as-is so the caller can supply its own default.
func EnsureInFuture(candidate time.Time, margin time.Duration) time.Time {
	return ensureInFutureAt(candidate, margin, time.Now())
}

func ensureInFutureAt(candidate time.Time, margin time.Duration, now time.Time) time.Time {
	if candidate.IsZero() {
		return candidate
	}

	earliest := now.Add(margin)
	if candidate.After(earliest) {
		return candidate
	}
	return earliest
}
