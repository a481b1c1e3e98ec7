package thorchain

import (
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/wardenwallet/swapquote/domain"
)

// Outbound transaction sizing the provider assumes when charging the
// destination-chain fee.
const (
	outboundVBytesUTXO  = 250
	outboundGasUnitsEVM = 80_000

	// The provider charges a fixed multiple of the observed rate to cover
	// rate movement before the outbound settles.
	outboundFeeMultiplier = 3
)

var (
	satsPerCoin = osmomath.NewBigDec(100_000_000)
	weiPerGwei  = osmomath.NewBigDec(1_000_000_000)

	// Outbound fee on the base-asset chain is flat.
	flatBaseOutboundFee = osmomath.MustNewBigDecFromStr("0.02")
)

// outboundNetworkFee computes the outbound network fee in exchange units
// of the destination chain's mainnet coin, from the provider-observed gas
// rate for that chain.
func outboundNetworkFee(inbound domain.InboundAddress) (osmomath.BigDec, error) {
	switch inbound.GasRateUnits {
	case "satsperbyte":
		return inbound.GasRate.
			Mul(osmomath.NewBigDec(outboundVBytesUTXO)).
			Mul(osmomath.NewBigDec(outboundFeeMultiplier)).
			Quo(satsPerCoin), nil
	case "gwei":
		return inbound.GasRate.
			Mul(osmomath.NewBigDec(outboundGasUnitsEVM)).
			Mul(osmomath.NewBigDec(outboundFeeMultiplier)).
			Quo(weiPerGwei), nil
	case "uatom":
		// Cosmos-style chains report the rate in 1e6 base units per tx.
		return inbound.GasRate.
			Mul(osmomath.NewBigDec(outboundFeeMultiplier)).
			Quo(osmomath.NewBigDec(1_000_000)), nil
	case "rune":
		return flatBaseOutboundFee, nil
	default:
		return osmomath.BigDec{}, domain.PricingUnavailableError{
			Chain: inbound.Chain,
			Asset: inbound.GasRateUnits,
		}
	}
}
