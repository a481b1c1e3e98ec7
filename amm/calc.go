package amm

import (
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/wardenwallet/swapquote/domain"
)

// baseUnitsPerAsset is the provider's fixed-point scale: pool depths and
// on-wire amounts carry 8 decimal places.
var baseUnitsPerAsset = osmomath.NewBigDec(100_000_000)

var tenThousand = osmomath.NewBigDec(10_000)

// ToBaseUnits renders an exchange-unit amount in the provider's 1e8
// fixed-point scale, truncating sub-unit precision.
func ToBaseUnits(amount osmomath.BigDec) osmomath.Int {
	return osmomath.NewIntFromBigInt(amount.Mul(baseUnitsPerAsset).TruncateInt().BigInt())
}

// DenomToNativeFn converts a display-denomination amount into native
// smallest units of the given currency.
type DenomToNativeFn func(amount osmomath.BigDec, currencyCode string) (osmomath.Int, error)

// SwapParams carries everything one CalcSwapFrom/CalcSwapTo call needs.
// All state is supplied fresh by the caller; the engine holds none.
type SwapParams struct {
	// SourcePool prices the source asset against the base asset,
	// DestPool the destination asset.
	SourcePool domain.Pool
	DestPool   domain.Pool

	// VolatilitySpreadBps is already selected by the caller: the
	// like-kind spread for same-category assets, the larger one
	// otherwise.
	VolatilitySpreadBps int64

	AffiliateFeeBps int64

	// NetworkFee is the outbound network fee in destination-asset
	// exchange units. See TranslateNetworkFee.
	NetworkFee osmomath.BigDec

	// DestAssetUSDPrice is used for the provider's $1 outbound-fee floor.
	DestAssetUSDPrice osmomath.BigDec

	// MinimumSwap is the provider-declared minimum source amount in
	// exchange units. Nil when the provider declares none.
	MinimumSwap *osmomath.BigDec

	FromCurrencyCode string
	ToCurrencyCode   string

	// DenomToNative renders bound errors in native units of the bounded
	// side.
	DenomToNative DenomToNativeFn
}

// Quote is the engine's raw result in exchange units. The assembler
// converts it into native amounts.
type Quote struct {
	FromExchangeAmount osmomath.BigDec
	ToExchangeAmount   osmomath.BigDec

	// AppliedNetworkFee is the outbound fee actually deducted, after the
	// $1 floor.
	AppliedNetworkFee osmomath.BigDec
}

// CalcSwapFrom quotes for a fixed source amount.
func CalcSwapFrom(params SwapParams, fromExchangeAmount osmomath.BigDec) (Quote, error) {
	if params.MinimumSwap != nil && fromExchangeAmount.LT(*params.MinimumSwap) {
		return Quote{}, belowMinimumSource(params, *params.MinimumSwap)
	}

	grossBaseUnits := DoubleSwapOutput(
		fromExchangeAmount.Mul(baseUnitsPerAsset),
		params.SourcePool,
		params.DestPool,
	)
	gross := grossBaseUnits.Quo(baseUnitsPerAsset)

	// Deduction order is part of the provider contract: volatility
	// spread, then affiliate fee, then the outbound network fee.
	afterSpread := applyBpsDeduction(gross, params.VolatilitySpreadBps)
	afterAffiliate := applyBpsDeduction(afterSpread, params.AffiliateFeeBps)

	fee := flooredNetworkFee(params)

	toExchangeAmount := afterAffiliate.Sub(fee)
	if toExchangeAmount.IsNegative() || toExchangeAmount.IsZero() {
		// The floored fee swallowed the whole output. A negative payout is
		// never actionable, so report it as a destination-side minimum
		// violation sized by the fee.
		nativeFee, err := params.DenomToNative(fee, params.ToCurrencyCode)
		if err != nil {
			return Quote{}, err
		}
		return Quote{}, domain.BelowMinimumError{
			NativeMinimum: nativeFee.String(),
			CurrencyCode:  params.ToCurrencyCode,
			Side:          domain.AmountSideDestination,
		}
	}

	return Quote{
		FromExchangeAmount: fromExchangeAmount,
		ToExchangeAmount:   toExchangeAmount,
		AppliedNetworkFee:  fee,
	}, nil
}

// CalcSwapTo quotes for a desired destination amount.
func CalcSwapTo(params SwapParams, toExchangeAmount osmomath.BigDec) (Quote, error) {
	fee := flooredNetworkFee(params)

	// Mirror of the from-side deductions: add the network fee back, then
	// undo the volatility spread.
	grossNeeded := undoBpsDeduction(toExchangeAmount.Add(fee), params.VolatilitySpreadBps)

	sourceBaseUnits, err := DoubleSwapInput(
		grossNeeded.Mul(baseUnitsPerAsset),
		params.SourcePool,
		params.DestPool,
	)
	if err != nil {
		return Quote{}, err
	}
	source := sourceBaseUnits.Quo(baseUnitsPerAsset)

	// The affiliate fee is deducted from the output side conceptually but
	// inflates the required input here.
	fromExchangeAmount := source.Mul(tenThousand.Add(osmomath.NewBigDec(params.AffiliateFeeBps))).Quo(tenThousand)

	if params.MinimumSwap != nil && fromExchangeAmount.LT(*params.MinimumSwap) {
		// Surface the destination-side equivalent of the minimum, not the
		// originally requested amount.
		minQuote, err := CalcSwapFrom(params, *params.MinimumSwap)
		if err != nil {
			return Quote{}, err
		}

		nativeEquivalent, err := params.DenomToNative(minQuote.ToExchangeAmount, params.ToCurrencyCode)
		if err != nil {
			return Quote{}, err
		}

		return Quote{}, domain.BelowMinimumError{
			NativeMinimum: nativeEquivalent.String(),
			CurrencyCode:  params.ToCurrencyCode,
			Side:          domain.AmountSideDestination,
		}
	}

	return Quote{
		FromExchangeAmount: fromExchangeAmount,
		ToExchangeAmount:   toExchangeAmount,
		AppliedNetworkFee:  fee,
	}, nil
}

// TranslateNetworkFee converts an outbound fee computed in the destination
// mainnet coin's exchange units into destination-token exchange units via
// the ratio of the two assets' pool prices against the base asset.
//
// mainnetPool may equal tokenPool when the destination asset is the
// mainnet coin itself; the translation is then the identity.
func TranslateNetworkFee(mainnetFee osmomath.BigDec, mainnetPool, tokenPool *domain.Pool, chain, asset string) (osmomath.BigDec, error) {
	if mainnetPool == nil || tokenPool == nil {
		return osmomath.BigDec{}, domain.PricingUnavailableError{Chain: chain, Asset: asset}
	}
	if tokenPool.AssetPriceUSD.IsZero() || mainnetPool.AssetPriceUSD.IsZero() {
		return osmomath.BigDec{}, domain.PricingUnavailableError{Chain: chain, Asset: asset}
	}

	return mainnetFee.Mul(mainnetPool.AssetPriceUSD).Quo(tokenPool.AssetPriceUSD), nil
}

// flooredNetworkFee applies the provider's anti-dust rule: the outbound
// fee deduction is never worth less than roughly one USD at current pool
// pricing. The floor is applied to the fee, never by discarding the swap.
func flooredNetworkFee(params SwapParams) osmomath.BigDec {
	fee := params.NetworkFee
	if params.DestAssetUSDPrice.IsNil() || params.DestAssetUSDPrice.IsZero() {
		return fee
	}

	oneUSDInDest := osmomath.OneBigDec().Quo(params.DestAssetUSDPrice)
	if fee.LT(oneUSDInDest) {
		return oneUSDInDest
	}
	return fee
}

func applyBpsDeduction(amount osmomath.BigDec, bps int64) osmomath.BigDec {
	return amount.Mul(tenThousand.Sub(osmomath.NewBigDec(bps))).Quo(tenThousand)
}

func undoBpsDeduction(amount osmomath.BigDec, bps int64) osmomath.BigDec {
	return amount.Mul(tenThousand).Quo(tenThousand.Sub(osmomath.NewBigDec(bps)))
}

func belowMinimumSource(params SwapParams, minimum osmomath.BigDec) error {
	nativeMinimum, err := params.DenomToNative(minimum, params.FromCurrencyCode)
	if err != nil {
		return err
	}

	return domain.BelowMinimumError{
		NativeMinimum: nativeMinimum.String(),
		CurrencyCode:  params.FromCurrencyCode,
		Side:          domain.AmountSideSource,
	}
}
