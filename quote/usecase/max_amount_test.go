package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/osmosis-labs/osmosis/osmomath"
	"github.com/stretchr/testify/require"

	"github.com/wardenwallet/swapquote/domain"
	"github.com/wardenwallet/swapquote/domain/mocks"
	"github.com/wardenwallet/swapquote/quote/usecase"
)

const (
	defaultDepositAddress = "bc1qdepositaddress"
	defaultMemo           = "=:ETH.ETH:0xdest:0:wr:75"
)

func maxRequest() domain.SwapRequest {
	return domain.SwapRequest{
		FromCurrency: "BTC",
		ToCurrency:   "ETH",
		FromChain:    "bitcoin",
		ToChain:      "ethereum",
		QuoteFor:     domain.QuoteForMax,
		FromWalletID: "wallet-from",
		ToWalletID:   "wallet-to",
	}
}

// quoteFnReturning builds a quote callback that records the request it was
// given and returns a provisional order for the deposit target.
func quoteFnReturning(t *testing.T, prelim *domain.Transaction, seen *domain.SwapRequest) domain.QuoteFn {
	t.Helper()
	return func(ctx context.Context, req domain.SwapRequest) (domain.SwapOrder, error) {
		*seen = req
		return domain.SwapOrder{
			Request: req,
			SpendTarget: domain.SpendTarget{
				DestinationAddress: defaultDepositAddress,
				Memo:               defaultMemo,
				NativeAmount:       req.NativeAmount,
			},
			PreliminaryTransaction: prelim,
		}, nil
	}
}

func TestResolveMaxAmount_NonMaxPassthrough(t *testing.T) {
	req := maxRequest()
	req.QuoteFor = domain.QuoteForFrom
	req.NativeAmount = osmomath.NewInt(1000)

	// Mocks with no callbacks panic if touched; a non-max request must
	// cause no side effects.
	wallet := &mocks.WalletAdapterMock{}

	resolved, err := usecase.ResolveMaxAmount(context.Background(), req, wallet, nil)
	require.NoError(t, err)
	require.Equal(t, req, resolved)
}

func TestResolveMaxAmount_ResolvesToMaxSpendable(t *testing.T) {
	balance := osmomath.NewInt(50_000_000)
	maxSpendable := osmomath.NewInt(49_990_000)

	var provisionalReq domain.SwapRequest
	var maxSpendDescriptor domain.SpendDescriptor

	wallet := &mocks.WalletAdapterMock{
		GetBalanceFunc: func(currencyCode string) (osmomath.Int, error) {
			require.Equal(t, "BTC", currencyCode)
			return balance, nil
		},
		GetMaxSpendableFunc: func(ctx context.Context, spend domain.SpendDescriptor) (osmomath.Int, error) {
			maxSpendDescriptor = spend
			return maxSpendable, nil
		},
	}

	resolved, err := usecase.ResolveMaxAmount(context.Background(), maxRequest(), wallet, quoteFnReturning(t, nil, &provisionalReq))
	require.NoError(t, err)

	// The provisional quote ran for the full balance with quoteFor=from.
	require.Equal(t, domain.QuoteForFrom, provisionalReq.QuoteFor)
	require.Equal(t, balance.String(), provisionalReq.NativeAmount.String())

	// The explicit amount was dropped so the wallet computes headroom.
	require.Nil(t, maxSpendDescriptor.NativeAmount)
	require.Equal(t, defaultDepositAddress, maxSpendDescriptor.DestinationAddress)
	require.Equal(t, defaultMemo, maxSpendDescriptor.Memo)

	require.Equal(t, domain.QuoteForFrom, resolved.QuoteFor)
	require.Equal(t, maxSpendable.String(), resolved.NativeAmount.String())
	require.True(t, resolved.NativeAmount.LTE(maxSpendable))
}

func TestResolveMaxAmount_SubtractsSameAssetPreliminaryFee(t *testing.T) {
	maxSpendable := osmomath.NewInt(49_990_000)
	prelimFee := osmomath.NewInt(15_000)

	wallet := &mocks.WalletAdapterMock{
		GetBalanceFunc: func(currencyCode string) (osmomath.Int, error) {
			return osmomath.NewInt(50_000_000), nil
		},
		GetMaxSpendableFunc: func(ctx context.Context, spend domain.SpendDescriptor) (osmomath.Int, error) {
			return maxSpendable, nil
		},
	}

	tests := []struct {
		name     string
		prelim   *domain.Transaction
		expected osmomath.Int
	}{
		{
			name: "same-asset preliminary fee is subtracted",
			prelim: &domain.Transaction{
				CurrencyCode:    "BTC",
				NetworkFee:      prelimFee,
				FeeCurrencyCode: "BTC",
			},
			expected: maxSpendable.Sub(prelimFee),
		},
		{
			name: "different-asset preliminary fee is ignored",
			prelim: &domain.Transaction{
				CurrencyCode:    "USDC",
				NetworkFee:      prelimFee,
				FeeCurrencyCode: "ETH",
			},
			expected: maxSpendable,
		},
		{
			name: "preliminary fee exceeding headroom clamps to zero",
			prelim: &domain.Transaction{
				CurrencyCode:    "BTC",
				NetworkFee:      osmomath.NewInt(60_000_000),
				FeeCurrencyCode: "BTC",
			},
			expected: osmomath.ZeroInt(),
		},
		{
			name:     "no preliminary transaction",
			prelim:   nil,
			expected: maxSpendable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen domain.SwapRequest
			resolved, err := usecase.ResolveMaxAmount(context.Background(), maxRequest(), wallet, quoteFnReturning(t, tt.prelim, &seen))
			require.NoError(t, err)

			require.Equal(t, tt.expected.String(), resolved.NativeAmount.String())
			require.True(t, resolved.NativeAmount.LTE(maxSpendable))
		})
	}
}

func TestResolveMaxAmount_WalletErrorPropagates(t *testing.T) {
	walletErr := errors.New("insufficient funds to compute max")

	wallet := &mocks.WalletAdapterMock{
		GetBalanceFunc: func(currencyCode string) (osmomath.Int, error) {
			return osmomath.NewInt(50_000_000), nil
		},
		GetMaxSpendableFunc: func(ctx context.Context, spend domain.SpendDescriptor) (osmomath.Int, error) {
			return osmomath.Int{}, walletErr
		},
	}

	var seen domain.SwapRequest
	_, err := usecase.ResolveMaxAmount(context.Background(), maxRequest(), wallet, quoteFnReturning(t, nil, &seen))
	require.ErrorIs(t, err, walletErr)
}
