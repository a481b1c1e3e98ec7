package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wardenwallet/swapquote/domain"
	"github.com/wardenwallet/swapquote/quote/usecase"
)

func TestFetchWithFixedRateFallback(t *testing.T) {
	fixedErr := domain.ProviderProtocolError{Provider: "thorchain", Endpoint: "/quote", Cause: "fixed variant rejected"}
	floatErr := domain.ProviderProtocolError{Provider: "thorchain", Endpoint: "/quote", Cause: "float variant rejected"}

	fixedOrder := domain.SwapOrder{MetadataNotes: "fixed"}
	floatOrder := domain.SwapOrder{MetadataNotes: "float"}

	succeed := func(order domain.SwapOrder) domain.QuoteFn {
		return func(ctx context.Context, req domain.SwapRequest) (domain.SwapOrder, error) {
			return order, nil
		}
	}
	fail := func(err error) domain.QuoteFn {
		return func(ctx context.Context, req domain.SwapRequest) (domain.SwapOrder, error) {
			return domain.SwapOrder{}, err
		}
	}

	tests := []struct {
		name          string
		fixed         domain.QuoteFn
		float         domain.QuoteFn
		expectedNotes string
		expectedErr   error
	}{
		{
			name:          "fixed variant wins when it succeeds",
			fixed:         succeed(fixedOrder),
			float:         fail(floatErr),
			expectedNotes: "fixed",
		},
		{
			name:          "float variant used when fixed fails",
			fixed:         fail(fixedErr),
			float:         succeed(floatOrder),
			expectedNotes: "float",
		},
		{
			name:        "first variant's error surfaces when both fail",
			fixed:       fail(fixedErr),
			float:       fail(floatErr),
			expectedErr: fixedErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := usecase.FetchWithFixedRateFallback(context.Background(), tt.fixed, tt.float, domain.SwapRequest{})

			if tt.expectedErr != nil {
				require.Equal(t, tt.expectedErr, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expectedNotes, order.MetadataNotes)
		})
	}
}
