package thorchain_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/osmosis-labs/osmosis/osmomath"
	"github.com/stretchr/testify/require"

	"github.com/wardenwallet/swapquote/domain"
	"github.com/wardenwallet/swapquote/domain/cache"
	"github.com/wardenwallet/swapquote/domain/mocks"
	"github.com/wardenwallet/swapquote/log"
	"github.com/wardenwallet/swapquote/provider/thorchain"
)

const (
	fromWalletID = "btc-wallet"
	toWalletID   = "eth-wallet"

	receiveAddress = "0xreceiveaddress"
	depositAddress = "bc1qinbound"
)

type poolSourceMock struct {
	PoolsFunc            func(ctx context.Context) ([]domain.Pool, error)
	InboundAddressesFunc func(ctx context.Context) ([]domain.InboundAddress, error)
}

func (m *poolSourceMock) Pools(ctx context.Context) ([]domain.Pool, error) {
	if m.PoolsFunc != nil {
		return m.PoolsFunc(ctx)
	}
	panic("unimplemented")
}

func (m *poolSourceMock) InboundAddresses(ctx context.Context) ([]domain.InboundAddress, error) {
	if m.InboundAddressesFunc != nil {
		return m.InboundAddressesFunc(ctx)
	}
	panic("unimplemented")
}

func defaultPools() []domain.Pool {
	return []domain.Pool{
		{
			AssetIdentifier: "BTC.BTC",
			AssetDepth:      osmomath.MustNewBigDecFromStr("100000000000"),
			BaseDepth:       osmomath.MustNewBigDecFromStr("2000000000000"),
			AssetPriceUSD:   osmomath.NewBigDec(65000),
			Status:          domain.PoolStatusAvailable,
		},
		{
			AssetIdentifier: "ETH.ETH",
			AssetDepth:      osmomath.MustNewBigDecFromStr("500000000000"),
			BaseDepth:       osmomath.MustNewBigDecFromStr("2000000000000"),
			AssetPriceUSD:   osmomath.NewBigDec(3200),
			Status:          domain.PoolStatusAvailable,
		},
	}
}

func defaultInbound() []domain.InboundAddress {
	return []domain.InboundAddress{
		{
			Chain:        "BTC",
			Address:      depositAddress,
			GasRate:      osmomath.NewBigDec(24),
			GasRateUnits: "satsperbyte",
		},
		{
			Chain:        "ETH",
			Address:      "0xinbound",
			Router:       "0xrouter",
			GasRate:      osmomath.NewBigDec(30),
			GasRateUnits: "gwei",
		},
	}
}

// eightDecimalsWallet converts between native units and display units at
// a fixed 1e8 scale, which is what the BTC and ETH test wallets use.
func eightDecimalsWallet() *mocks.WalletAdapterMock {
	scale := osmomath.NewBigDec(100_000_000)
	return &mocks.WalletAdapterMock{
		GetReceiveAddressFunc: func(ctx context.Context, currencyCode string) (string, error) {
			return receiveAddress, nil
		},
		NativeToDenominationFunc: func(nativeAmount osmomath.Int, currencyCode string) (osmomath.BigDec, error) {
			return osmomath.BigDecFromSDKInt(nativeAmount).Quo(scale), nil
		},
		DenominationToNativeFunc: func(amount osmomath.BigDec, currencyCode string) (osmomath.Int, error) {
			return osmomath.NewIntFromBigInt(amount.Mul(scale).TruncateInt().BigInt()), nil
		},
	}
}

func defaultRegistry() *mocks.WalletRegistryMock {
	return &mocks.WalletRegistryMock{
		GetWalletFunc: func(walletID string) (domain.WalletAdapter, error) {
			return eightDecimalsWallet(), nil
		},
	}
}

func newExchange(t *testing.T, source *poolSourceMock, registry *mocks.WalletRegistryMock, feeOverride *cache.FeeOverride) *thorchain.Exchange {
	t.Helper()

	seed := domain.ExchangeParameters{
		VolatilitySpreadBps:         100,
		LikeKindVolatilitySpreadBps: 25,
		// A fresh stamp keeps the cache from reaching for the network.
		LastRefreshedAt: time.Now(),
	}
	params := thorchain.NewParamsCache("http://unused.invalid", time.Hour, seed, log.NewNoOpLogger())

	cfg := domain.ProviderConfig{
		AffiliateFeeBps:         75,
		AffiliateAddress:        "wr",
		PayoutToleranceBps:      500,
		StreamingIntervalBlocks: 1,
		QuoteExpirationMins:     15,
	}

	return thorchain.NewExchange(source, params, registry, feeOverride, nil, cfg, log.NewNoOpLogger())
}

func defaultRequest() domain.SwapRequest {
	return domain.SwapRequest{
		FromCurrency: "BTC",
		ToCurrency:   "ETH",
		FromChain:    "bitcoin",
		ToChain:      "ethereum",
		NativeAmount: osmomath.NewInt(100_000_000), // 1 BTC
		QuoteFor:     domain.QuoteForFrom,
		FromWalletID: fromWalletID,
		ToWalletID:   toWalletID,
	}
}

func TestExchangeFetchSwapQuote(t *testing.T) {
	source := &poolSourceMock{
		PoolsFunc: func(ctx context.Context) ([]domain.Pool, error) {
			return defaultPools(), nil
		},
		InboundAddressesFunc: func(ctx context.Context) ([]domain.InboundAddress, error) {
			return defaultInbound(), nil
		},
	}

	exchange := newExchange(t, source, defaultRegistry(), cache.NewFeeOverride())

	order, err := exchange.FetchSwapQuote(context.Background(), defaultRequest())
	require.NoError(t, err)

	require.Equal(t, depositAddress, order.SpendTarget.DestinationAddress)
	require.Equal(t, osmomath.NewInt(100_000_000), order.SpendTarget.NativeAmount)

	// Memo targets the destination asset at the receive address, carries a
	// payout limit slot and the affiliate terms.
	parts := strings.Split(order.SpendTarget.Memo, ":")
	require.Len(t, parts, 6)
	require.Equal(t, "=", parts[0])
	require.Equal(t, "ETH.ETH", parts[1])
	require.Equal(t, receiveAddress, parts[2])
	require.Equal(t, "wr", parts[4])
	require.Equal(t, "75", parts[5])

	require.Equal(t, "ETH", order.Payout.CurrencyCode)
	require.Equal(t, toWalletID, order.Payout.WalletID)
	require.True(t, order.Payout.IsEstimate)
	require.True(t, order.Payout.NativeAmount.IsPositive())

	// The depths price 1 BTC at 5 ETH before slippage; spread, affiliate
	// fee and the outbound fee bring the payout below that.
	require.True(t, order.Payout.NativeAmount.LT(osmomath.NewInt(500_000_000)))
	require.True(t, order.Payout.NativeAmount.GT(osmomath.NewInt(450_000_000)))

	require.True(t, order.ExpirationDate.After(time.Now()))
	require.Empty(t, order.FeeSessionID)
}

func TestExchangeQuoteForTo(t *testing.T) {
	source := &poolSourceMock{
		PoolsFunc: func(ctx context.Context) ([]domain.Pool, error) {
			return defaultPools(), nil
		},
		InboundAddressesFunc: func(ctx context.Context) ([]domain.InboundAddress, error) {
			return defaultInbound(), nil
		},
	}

	exchange := newExchange(t, source, defaultRegistry(), cache.NewFeeOverride())

	req := defaultRequest()
	req.QuoteFor = domain.QuoteForTo
	req.NativeAmount = osmomath.NewInt(1_000_000_000) // want 10 ETH

	order, err := exchange.FetchSwapQuote(context.Background(), req)
	require.NoError(t, err)

	require.Equal(t, osmomath.NewInt(1_000_000_000), order.Payout.NativeAmount)
	require.True(t, order.SpendTarget.NativeAmount.IsPositive())

	// Receiving 10 ETH at a 5 ETH/BTC depth ratio costs upwards of 2 BTC
	// once fees are added back in.
	require.True(t, order.SpendTarget.NativeAmount.GT(osmomath.NewInt(200_000_000)))
}

func TestExchangePinsFeesOnRateDrivenSourceChain(t *testing.T) {
	source := &poolSourceMock{
		PoolsFunc: func(ctx context.Context) ([]domain.Pool, error) {
			return defaultPools(), nil
		},
		InboundAddressesFunc: func(ctx context.Context) ([]domain.InboundAddress, error) {
			return defaultInbound(), nil
		},
	}

	feeOverride := cache.NewFeeOverride()
	exchange := newExchange(t, source, defaultRegistry(), feeOverride)

	req := defaultRequest()
	req.FromCurrency = "ETH"
	req.ToCurrency = "BTC"
	req.FromChain = "ethereum"
	req.ToChain = "bitcoin"

	order, err := exchange.FetchSwapQuote(context.Background(), req)
	require.NoError(t, err)

	require.NotEmpty(t, order.FeeSessionID)

	fees, ok := feeOverride.GetFees(order.FeeSessionID)
	require.True(t, ok)
	require.Equal(t, map[string]string{"gasPrice": "30"}, fees)
}

func TestExchangeRejectsBaseAssetSwaps(t *testing.T) {
	exchange := newExchange(t, &poolSourceMock{}, defaultRegistry(), cache.NewFeeOverride())

	req := defaultRequest()
	req.ToCurrency = "RUNE"
	req.ToChain = "thorchainrune"

	_, err := exchange.FetchSwapQuote(context.Background(), req)
	require.Error(t, err)
	require.ErrorAs(t, err, &domain.UnsupportedPairError{})
}

func TestExchangeRejectsSelfSwap(t *testing.T) {
	exchange := newExchange(t, &poolSourceMock{}, defaultRegistry(), cache.NewFeeOverride())

	req := defaultRequest()
	req.ToCurrency = req.FromCurrency
	req.ToChain = req.FromChain

	_, err := exchange.FetchSwapQuote(context.Background(), req)
	require.Error(t, err)
	require.ErrorAs(t, err, &domain.UnsupportedPairError{})
}

func TestExchangeMissingPool(t *testing.T) {
	source := &poolSourceMock{
		PoolsFunc: func(ctx context.Context) ([]domain.Pool, error) {
			// BTC pool only; the destination pool is absent.
			return defaultPools()[:1], nil
		},
		InboundAddressesFunc: func(ctx context.Context) ([]domain.InboundAddress, error) {
			return defaultInbound(), nil
		},
	}

	exchange := newExchange(t, source, defaultRegistry(), cache.NewFeeOverride())

	_, err := exchange.FetchSwapQuote(context.Background(), defaultRequest())
	require.Error(t, err)
	require.ErrorAs(t, err, &domain.PoolNotFoundError{})
}

func TestExchangeZeroDepthPoolIsNotFound(t *testing.T) {
	pools := defaultPools()
	pools[1].AssetDepth = osmomath.ZeroBigDec()

	source := &poolSourceMock{
		PoolsFunc: func(ctx context.Context) ([]domain.Pool, error) {
			return pools, nil
		},
		InboundAddressesFunc: func(ctx context.Context) ([]domain.InboundAddress, error) {
			return defaultInbound(), nil
		},
	}

	exchange := newExchange(t, source, defaultRegistry(), cache.NewFeeOverride())

	_, err := exchange.FetchSwapQuote(context.Background(), defaultRequest())
	require.Error(t, err)
	require.ErrorAs(t, err, &domain.PoolNotFoundError{})
}

func TestExchangeHaltedChain(t *testing.T) {
	inbound := defaultInbound()
	inbound[0].Halted = true

	source := &poolSourceMock{
		PoolsFunc: func(ctx context.Context) ([]domain.Pool, error) {
			return defaultPools(), nil
		},
		InboundAddressesFunc: func(ctx context.Context) ([]domain.InboundAddress, error) {
			return inbound, nil
		},
	}

	exchange := newExchange(t, source, defaultRegistry(), cache.NewFeeOverride())

	_, err := exchange.FetchSwapQuote(context.Background(), defaultRequest())
	require.Error(t, err)

	var halted domain.HaltedChainError
	require.ErrorAs(t, err, &halted)
	require.Equal(t, "BTC", halted.Chain)
}

func TestExchangeSnapshotFetchFailure(t *testing.T) {
	source := &poolSourceMock{
		PoolsFunc: func(ctx context.Context) ([]domain.Pool, error) {
			return nil, domain.ProviderProtocolError{Provider: "thorchain", Endpoint: "/v2/pools", Cause: "boom"}
		},
		InboundAddressesFunc: func(ctx context.Context) ([]domain.InboundAddress, error) {
			return defaultInbound(), nil
		},
	}

	exchange := newExchange(t, source, defaultRegistry(), cache.NewFeeOverride())

	_, err := exchange.FetchSwapQuote(context.Background(), defaultRequest())
	require.Error(t, err)
	require.ErrorAs(t, err, &domain.ProviderProtocolError{})
}

func TestExchangeResolvesMaxAmount(t *testing.T) {
	source := &poolSourceMock{
		PoolsFunc: func(ctx context.Context) ([]domain.Pool, error) {
			return defaultPools(), nil
		},
		InboundAddressesFunc: func(ctx context.Context) ([]domain.InboundAddress, error) {
			return defaultInbound(), nil
		},
	}

	balance := osmomath.NewInt(300_000_000)   // 3 BTC
	spendable := osmomath.NewInt(299_000_000) // after the chain fee

	fromWallet := eightDecimalsWallet()
	fromWallet.GetBalanceFunc = func(currencyCode string) (osmomath.Int, error) {
		return balance, nil
	}
	fromWallet.GetMaxSpendableFunc = func(ctx context.Context, spend domain.SpendDescriptor) (osmomath.Int, error) {
		require.Nil(t, spend.NativeAmount)
		require.Equal(t, depositAddress, spend.DestinationAddress)
		return spendable, nil
	}

	registry := &mocks.WalletRegistryMock{
		GetWalletFunc: func(walletID string) (domain.WalletAdapter, error) {
			if walletID == fromWalletID {
				return fromWallet, nil
			}
			return eightDecimalsWallet(), nil
		},
	}

	exchange := newExchange(t, source, registry, cache.NewFeeOverride())

	req := defaultRequest()
	req.QuoteFor = domain.QuoteForMax
	req.NativeAmount = osmomath.ZeroInt()

	order, err := exchange.FetchSwapQuote(context.Background(), req)
	require.NoError(t, err)

	require.Equal(t, spendable, order.SpendTarget.NativeAmount)
	require.Equal(t, domain.QuoteForFrom, order.Request.QuoteFor)
}

func TestExchangeBuildSpend(t *testing.T) {
	source := &poolSourceMock{
		PoolsFunc: func(ctx context.Context) ([]domain.Pool, error) {
			return defaultPools(), nil
		},
		InboundAddressesFunc: func(ctx context.Context) ([]domain.InboundAddress, error) {
			return defaultInbound(), nil
		},
	}

	var captured domain.SpendDescriptor
	fromWallet := eightDecimalsWallet()
	fromWallet.MakeSpendFunc = func(ctx context.Context, spend domain.SpendDescriptor) (domain.Transaction, error) {
		captured = spend
		return domain.Transaction{ID: "tx-1", CurrencyCode: spend.CurrencyCode}, nil
	}

	registry := &mocks.WalletRegistryMock{
		GetWalletFunc: func(walletID string) (domain.WalletAdapter, error) {
			if walletID == fromWalletID {
				return fromWallet, nil
			}
			return eightDecimalsWallet(), nil
		},
	}

	feeOverride := cache.NewFeeOverride()
	exchange := newExchange(t, source, registry, feeOverride)

	// ETH source so the quote pins gas parameters.
	req := defaultRequest()
	req.FromCurrency = "ETH"
	req.ToCurrency = "BTC"
	req.FromChain = "ethereum"
	req.ToChain = "bitcoin"

	order, err := exchange.FetchSwapQuote(context.Background(), req)
	require.NoError(t, err)

	tx, err := exchange.BuildSpend(context.Background(), order)
	require.NoError(t, err)
	require.Equal(t, "tx-1", tx.ID)

	require.Equal(t, order.SpendTarget.DestinationAddress, captured.DestinationAddress)
	require.Equal(t, order.SpendTarget.Memo, captured.Memo)
	require.NotNil(t, captured.NativeAmount)
	require.Equal(t, order.SpendTarget.NativeAmount, *captured.NativeAmount)
	require.Equal(t, map[string]string{"gasPrice": "30"}, captured.CustomNetworkFee)
}

func TestExchangeMemoCarriesPayoutLimit(t *testing.T) {
	source := &poolSourceMock{
		PoolsFunc: func(ctx context.Context) ([]domain.Pool, error) {
			return defaultPools(), nil
		},
		InboundAddressesFunc: func(ctx context.Context) ([]domain.InboundAddress, error) {
			return defaultInbound(), nil
		},
	}

	exchange := newExchange(t, source, defaultRegistry(), cache.NewFeeOverride())

	order, err := exchange.FetchSwapQuote(context.Background(), defaultRequest())
	require.NoError(t, err)

	parts := strings.Split(order.SpendTarget.Memo, ":")
	require.Len(t, parts, 6)

	// The limit slot is LIMIT/INTERVAL/QUANTITY; quantity zero lets the
	// provider choose the sub-swap count.
	limitParts := strings.Split(parts[3], "/")
	require.Len(t, limitParts, 3)
	require.Equal(t, "1", limitParts[1])
	require.Equal(t, "0", limitParts[2])

	limit, ok := osmomath.NewIntFromString(limitParts[0])
	require.True(t, ok)

	// The limit is the quoted payout shrunk by the 5% tolerance; the test
	// wallet's 1e8 scale makes native payout units equal base units.
	expected := order.Payout.NativeAmount.MulRaw(9_500).QuoRaw(10_000)
	require.True(t, limit.Sub(expected).Abs().LTE(osmomath.NewInt(1)))
	require.True(t, limit.LT(order.Payout.NativeAmount))
	require.True(t, limit.IsPositive())
}

func TestExchangeMetadataNamesAssets(t *testing.T) {
	source := &poolSourceMock{
		PoolsFunc: func(ctx context.Context) ([]domain.Pool, error) {
			return defaultPools(), nil
		},
		InboundAddressesFunc: func(ctx context.Context) ([]domain.InboundAddress, error) {
			return defaultInbound(), nil
		},
	}

	exchange := newExchange(t, source, defaultRegistry(), cache.NewFeeOverride())

	order, err := exchange.FetchSwapQuote(context.Background(), defaultRequest())
	require.NoError(t, err)

	require.True(t, strings.Contains(order.MetadataNotes, "BTC.BTC"))
	require.True(t, strings.Contains(order.MetadataNotes, "ETH.ETH"))
}
