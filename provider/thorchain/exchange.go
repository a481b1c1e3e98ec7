package thorchain

import (
	"context"
	"fmt"
	"time"

	"github.com/osmosis-labs/osmosis/osmomath"
	"golang.org/x/sync/errgroup"

	"github.com/wardenwallet/swapquote/amm"
	"github.com/wardenwallet/swapquote/codes"
	"github.com/wardenwallet/swapquote/domain"
	"github.com/wardenwallet/swapquote/domain/cache"
	"github.com/wardenwallet/swapquote/domain/mvc"
	"github.com/wardenwallet/swapquote/log"
	quoteusecase "github.com/wardenwallet/swapquote/quote/usecase"
)

// mainnetCodeTranscription maps wallet chain identifiers to the
// provider's chain spellings.
var mainnetCodeTranscription = codes.TranscriptionTable{
	"bitcoin":           "BTC",
	"bitcoincash":       "BCH",
	"litecoin":          "LTC",
	"dogecoin":          "DOGE",
	"ethereum":          "ETH",
	"avalanche":         "AVAX",
	"binancesmartchain": "BSC",
	"cosmoshub":         "GAIA",
	"thorchainrune":     "THOR",
}

// mainnetCoins maps wallet chain identifiers to their mainnet coin codes,
// used to tell tokens apart from chain coins.
var mainnetCoins = map[string]string{
	"bitcoin":           "BTC",
	"bitcoincash":       "BCH",
	"litecoin":          "LTC",
	"dogecoin":          "DOGE",
	"ethereum":          "ETH",
	"avalanche":         "AVAX",
	"binancesmartchain": "BNB",
	"cosmoshub":         "ATOM",
	"thorchainrune":     "RUNE",
}

// invalidCodes extends the built-in default-disallow table. Direct
// base-asset swaps settle in a single pool rather than a double swap, so
// the base chain is disabled on both sides.
var invalidCodes = codes.InvalidCodes{
	From: map[string]codes.Restriction{
		"thorchainrune": {AllCodes: true},
	},
	To: map[string]codes.Restriction{
		"thorchainrune": {AllCodes: true},
	},
}

// poolSource supplies provider snapshots. Implemented by Client; swapped
// for a mock in tests.
type poolSource interface {
	Pools(ctx context.Context) ([]domain.Pool, error)
	InboundAddresses(ctx context.Context) ([]domain.InboundAddress, error)
}

// Exchange is the liquidity-pool provider's quote entry point.
type Exchange struct {
	source      poolSource
	params      *ParamsCache
	wallets     mvc.WalletRegistry
	feeOverride *cache.FeeOverride

	// currencyTable maps wallet currency codes to provider spellings,
	// including token contract suffixes.
	currencyTable codes.TranscriptionTable

	affiliateFeeBps    int64
	affiliateAddress   string
	payoutToleranceBps int64
	streamingInterval  int64
	expiration         time.Duration

	logger log.Logger
}

var _ mvc.QuoteUsecase = &Exchange{}

// NewExchange wires the provider's quote pipeline.
func NewExchange(source poolSource, params *ParamsCache, wallets mvc.WalletRegistry, feeOverride *cache.FeeOverride, currencyTable codes.TranscriptionTable, cfg domain.ProviderConfig, logger log.Logger) *Exchange {
	return &Exchange{
		source:             source,
		params:             params,
		wallets:            wallets,
		feeOverride:        feeOverride,
		currencyTable:      currencyTable,
		affiliateFeeBps:    cfg.AffiliateFeeBps,
		affiliateAddress:   cfg.AffiliateAddress,
		payoutToleranceBps: cfg.PayoutToleranceBps,
		streamingInterval:  cfg.StreamingIntervalBlocks,
		expiration:         time.Duration(cfg.QuoteExpirationMins) * time.Minute,
		logger:             logger,
	}
}

// FetchSwapQuote implements mvc.QuoteUsecase.
func (e *Exchange) FetchSwapQuote(ctx context.Context, req domain.SwapRequest) (domain.SwapOrder, error) {
	if err := codes.RejectInvalidPair(invalidCodes, mainnetCoins, req); err != nil {
		return domain.SwapOrder{}, err
	}

	fromWallet, err := e.wallets.GetWallet(req.FromWalletID)
	if err != nil {
		return domain.SwapOrder{}, err
	}

	req, err = quoteusecase.ResolveMaxAmount(ctx, req, fromWallet, e.fetchConcrete)
	if err != nil {
		return domain.SwapOrder{}, err
	}

	return e.fetchConcrete(ctx, req)
}

// fetchConcrete quotes a request whose amount side is already concrete.
func (e *Exchange) fetchConcrete(ctx context.Context, req domain.SwapRequest) (domain.SwapOrder, error) {
	resolved := codes.Resolve(req, mainnetCodeTranscription, e.currencyTable)

	fromWallet, err := e.wallets.GetWallet(req.FromWalletID)
	if err != nil {
		return domain.SwapOrder{}, err
	}
	toWallet, err := e.wallets.GetWallet(req.ToWalletID)
	if err != nil {
		return domain.SwapOrder{}, err
	}

	// Pool and inbound snapshots are independent; fetch them concurrently
	// and join. Either failing first terminates the request.
	var (
		pools   []domain.Pool
		inbound []domain.InboundAddress
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pools, err = e.source.Pools(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		inbound, err = e.source.InboundAddresses(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.SwapOrder{}, err
	}

	sourceAsset := resolved.FromChain + "." + resolved.FromCode
	destAsset := resolved.ToChain + "." + resolved.ToCode

	sourcePool, err := findPool(pools, sourceAsset)
	if err != nil {
		return domain.SwapOrder{}, err
	}
	destPool, err := findPool(pools, destAsset)
	if err != nil {
		return domain.SwapOrder{}, err
	}

	sourceInbound, err := findInbound(inbound, resolved.FromChain)
	if err != nil {
		return domain.SwapOrder{}, err
	}
	destInbound, err := findInbound(inbound, resolved.ToChain)
	if err != nil {
		return domain.SwapOrder{}, err
	}

	networkFee, err := e.destNetworkFee(req, resolved, pools, destPool, destInbound)
	if err != nil {
		return domain.SwapOrder{}, err
	}

	params := e.swapParams(ctx, req, sourcePool, destPool, networkFee, fromWallet, toWallet)

	var (
		fromNative osmomath.Int
		toNative   osmomath.Int
		quote      amm.Quote
	)
	switch req.QuoteFor {
	case domain.QuoteForTo:
		toExchange, err := toWallet.NativeToDenomination(req.NativeAmount, req.ToCurrency)
		if err != nil {
			return domain.SwapOrder{}, err
		}

		quote, err = amm.CalcSwapTo(params, toExchange)
		if err != nil {
			return domain.SwapOrder{}, err
		}

		fromNative, err = fromWallet.DenominationToNative(quote.FromExchangeAmount, req.FromCurrency)
		if err != nil {
			return domain.SwapOrder{}, err
		}
		toNative = req.NativeAmount

	default:
		fromExchange, err := fromWallet.NativeToDenomination(req.NativeAmount, req.FromCurrency)
		if err != nil {
			return domain.SwapOrder{}, err
		}

		quote, err = amm.CalcSwapFrom(params, fromExchange)
		if err != nil {
			return domain.SwapOrder{}, err
		}

		toNative, err = toWallet.DenominationToNative(quote.ToExchangeAmount, req.ToCurrency)
		if err != nil {
			return domain.SwapOrder{}, err
		}
		fromNative = req.NativeAmount
	}

	receiveAddress, err := toWallet.GetReceiveAddress(ctx, req.ToCurrency)
	if err != nil {
		return domain.SwapOrder{}, err
	}

	// Fee parameters on rate-driven source chains are pinned so the
	// preview and commit spends are constructed identically.
	var feeSessionID string
	if sourceInbound.GasRateUnits == "gwei" {
		feeSessionID = e.feeOverride.CreateSession()
		e.feeOverride.SetFees(feeSessionID, map[string]string{
			"gasPrice": sourceInbound.GasRate.TruncateInt().String(),
		})
	}

	order := quoteusecase.AssembleOrder(quoteusecase.OrderSpec{
		Request:            req,
		FromNativeAmount:   fromNative,
		ToNativeAmount:     toNative,
		DestinationAddress: sourceInbound.Address,
		Memo:               e.swapMemo(destAsset, receiveAddress, e.payoutLimit(quote.ToExchangeAmount)),
		IsEstimate:         true,
		DefaultExpiration:  e.expiration,
		FeeSessionID:       feeSessionID,
		MetadataNotes:      fmt.Sprintf("%s -> %s via %s double swap", sourceAsset, destAsset, providerName),
	})

	return order, nil
}

// BuildSpend constructs the wallet spend for a previously quoted order,
// applying any pinned fee parameters from the quote's fee session.
func (e *Exchange) BuildSpend(ctx context.Context, order domain.SwapOrder) (domain.Transaction, error) {
	fromWallet, err := e.wallets.GetWallet(order.Request.FromWalletID)
	if err != nil {
		return domain.Transaction{}, err
	}

	amount := order.SpendTarget.NativeAmount
	spend := domain.SpendDescriptor{
		CurrencyCode:       order.Request.FromCurrency,
		DestinationAddress: order.SpendTarget.DestinationAddress,
		Memo:               order.SpendTarget.Memo,
		NativeAmount:       &amount,
	}

	if fees, ok := e.feeOverride.GetFees(order.FeeSessionID); ok && len(fees) > 0 {
		spend.CustomNetworkFee = fees
	}

	return fromWallet.MakeSpend(ctx, spend)
}

// destNetworkFee computes the outbound fee in destination-asset exchange
// units, translating mainnet-coin fees into token units when needed.
func (e *Exchange) destNetworkFee(req domain.SwapRequest, resolved codes.Resolved, pools []domain.Pool, destPool domain.Pool, destInbound domain.InboundAddress) (osmomath.BigDec, error) {
	mainnetFee, err := outboundNetworkFee(destInbound)
	if err != nil {
		return osmomath.BigDec{}, err
	}

	// The fee is already in destination units when the destination asset
	// is the chain's own coin.
	if mainnetCoins[req.ToChain] == req.ToCurrency {
		return mainnetFee, nil
	}

	mainnetAsset := resolved.ToChain + "." + transcribeCurrency(e.currencyTable, mainnetCoins[req.ToChain])
	mainnetPool, err := findPool(pools, mainnetAsset)
	if err != nil {
		return osmomath.BigDec{}, domain.PricingUnavailableError{
			Chain: req.ToChain,
			Asset: req.ToCurrency,
		}
	}

	return amm.TranslateNetworkFee(mainnetFee, &mainnetPool, &destPool, req.ToChain, req.ToCurrency)
}

// swapParams assembles the AMM engine inputs for one request.
func (e *Exchange) swapParams(ctx context.Context, req domain.SwapRequest, sourcePool, destPool domain.Pool, networkFee osmomath.BigDec, fromWallet, toWallet domain.WalletAdapter) amm.SwapParams {
	exchangeParams := e.params.Get(ctx)

	// Same code on both sides means a cross-chain move of the same asset
	// category; the provider prices those with the smaller spread.
	spreadBps := exchangeParams.VolatilitySpreadBps
	if req.FromCurrency == req.ToCurrency {
		spreadBps = exchangeParams.LikeKindVolatilitySpreadBps
	}

	minimum := minimumSourceAmount(networkFee, sourcePool, destPool)

	return amm.SwapParams{
		SourcePool:          sourcePool,
		DestPool:            destPool,
		VolatilitySpreadBps: spreadBps,
		AffiliateFeeBps:     e.affiliateFeeBps,
		NetworkFee:          networkFee,
		DestAssetUSDPrice:   destPool.AssetPriceUSD,
		MinimumSwap:         minimum,
		FromCurrencyCode:    req.FromCurrency,
		ToCurrencyCode:      req.ToCurrency,
		DenomToNative: func(amount osmomath.BigDec, currencyCode string) (osmomath.Int, error) {
			if currencyCode == req.FromCurrency {
				return fromWallet.DenominationToNative(amount, currencyCode)
			}
			return toWallet.DenominationToNative(amount, currencyCode)
		},
	}
}

// minimumSourceAmount derives the provider's recommended minimum: four
// times the outbound fee, expressed in source-asset units via the pools'
// USD pricing. Nil when pricing is unavailable, leaving the minimum
// unenforced rather than guessed.
func minimumSourceAmount(networkFee osmomath.BigDec, sourcePool, destPool domain.Pool) *osmomath.BigDec {
	if sourcePool.AssetPriceUSD.IsZero() || destPool.AssetPriceUSD.IsZero() {
		return nil
	}

	feeUSD := networkFee.Mul(destPool.AssetPriceUSD)
	minimum := feeUSD.Mul(osmomath.NewBigDec(4)).Quo(sourcePool.AssetPriceUSD)
	return &minimum
}

// swapMemo renders the provider deposit memo. The limit slot carries the
// minimum payout the swap may settle at, in 1e8 base units; the streaming
// suffix lets the provider split the swap into sub-swaps at the configured
// block interval.
func (e *Exchange) swapMemo(destAsset, receiveAddress string, payoutLimit osmomath.Int) string {
	limit := payoutLimit.String()
	if e.streamingInterval > 0 {
		limit = fmt.Sprintf("%s/%d/0", limit, e.streamingInterval)
	}

	memo := "=:" + destAsset + ":" + receiveAddress + ":" + limit
	if e.affiliateAddress != "" && e.affiliateFeeBps > 0 {
		memo += fmt.Sprintf(":%s:%d", e.affiliateAddress, e.affiliateFeeBps)
	}
	return memo
}

// payoutLimit shrinks the quoted payout by the configured tolerance,
// bounding how much worse the realized price may be than the quote.
func (e *Exchange) payoutLimit(toExchangeAmount osmomath.BigDec) osmomath.Int {
	tolerated := toExchangeAmount.
		Mul(osmomath.NewBigDec(10_000 - e.payoutToleranceBps)).
		Quo(osmomath.NewBigDec(10_000))
	return amm.ToBaseUnits(tolerated)
}

func findPool(pools []domain.Pool, asset string) (domain.Pool, error) {
	for _, pool := range pools {
		if pool.AssetIdentifier == asset {
			if !pool.IsSwappable() {
				return domain.Pool{}, domain.PoolNotFoundError{AssetIdentifier: asset}
			}
			return pool, nil
		}
	}
	return domain.Pool{}, domain.PoolNotFoundError{AssetIdentifier: asset}
}

func findInbound(addresses []domain.InboundAddress, chain string) (domain.InboundAddress, error) {
	for _, address := range addresses {
		if address.Chain == chain {
			if address.Halted {
				return domain.InboundAddress{}, domain.HaltedChainError{Chain: chain}
			}
			return address, nil
		}
	}
	return domain.InboundAddress{}, domain.PricingUnavailableError{Chain: chain}
}

func transcribeCurrency(table codes.TranscriptionTable, code string) string {
	if table == nil {
		return code
	}
	if translated, ok := table[code]; ok {
		return translated
	}
	return code
}
