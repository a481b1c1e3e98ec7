package usecase

import (
	"context"

	"github.com/wardenwallet/swapquote/domain"
)

// FetchWithFixedRateFallback tries the fixed-rate quote variant first and
// falls back to the float/estimate variant on failure. If both fail, the
// fixed variant's error is surfaced since it carries the actionable bound.
func FetchWithFixedRateFallback(ctx context.Context, fixed, float domain.QuoteFn, req domain.SwapRequest) (domain.SwapOrder, error) {
	order, fixedErr := fixed(ctx, req)
	if fixedErr == nil {
		return order, nil
	}

	order, floatErr := float(ctx, req)
	if floatErr == nil {
		return order, nil
	}

	return domain.SwapOrder{}, fixedErr
}
