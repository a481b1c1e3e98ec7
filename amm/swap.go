// Package amm implements the constant-product double-swap math used by the
// liquidity-pool provider: asset to base in one pool, base to the
// destination asset in a second pool.
//
// The ratio formulas run in double-precision floating point because both
// sides of the protocol compute them that way; every amount that leaves
// this package is an arbitrary-precision decimal.
package amm

import (
	"math"
	"strconv"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/wardenwallet/swapquote/domain"
)

// SwapOutput returns the output amount for swapping inputAmount through
// the pool. intoBase selects the direction: asset into base when true,
// base into asset when false.
//
// output = x*X*Y / (x+X)^2 where X is the input reserve and Y the output
// reserve.
func SwapOutput(inputAmount osmomath.BigDec, pool domain.Pool, intoBase bool) osmomath.BigDec {
	inputReserve, outputReserve := reserves(pool, intoBase)

	x := bigDecToFloat(inputAmount)
	denom := x + inputReserve
	if denom == 0 {
		return osmomath.ZeroBigDec()
	}

	output := x * inputReserve * outputReserve / (denom * denom)
	return floatToBigDec(output)
}

// SwapInput returns the input amount required to obtain outputAmount from
// the pool. It is the closed-form inverse of SwapOutput:
//
//	part1 = X*Y/y - 2X
//	part2 = 4X^2
//	input = (part1 - sqrt(part1^2 - part2)) / 2
func SwapInput(outputAmount osmomath.BigDec, pool domain.Pool, intoBase bool) (osmomath.BigDec, error) {
	inputReserve, outputReserve := reserves(pool, intoBase)

	y := bigDecToFloat(outputAmount)
	if y <= 0 {
		return osmomath.ZeroBigDec(), nil
	}

	// The constant-product curve caps the obtainable output at Y/4 for a
	// finite input; beyond that the inverse has no real solution.
	part1 := inputReserve*outputReserve/y - 2*inputReserve
	part2 := 4 * inputReserve * inputReserve
	discriminant := part1*part1 - part2
	if discriminant < 0 {
		return osmomath.BigDec{}, domain.InsufficientLiquidityError{
			AssetIdentifier: pool.AssetIdentifier,
			OutputAmount:    outputAmount.String(),
		}
	}

	input := (part1 - math.Sqrt(discriminant)) / 2
	return floatToBigDec(input), nil
}

// DoubleSwapOutput swaps inputAmount of the source asset into base through
// sourcePool, then the base into the destination asset through destPool.
func DoubleSwapOutput(inputAmount osmomath.BigDec, sourcePool, destPool domain.Pool) osmomath.BigDec {
	baseAmount := SwapOutput(inputAmount, sourcePool, true)
	return SwapOutput(baseAmount, destPool, false)
}

// DoubleSwapInput returns the source-asset input required to obtain
// outputAmount of the destination asset across the two pools.
func DoubleSwapInput(outputAmount osmomath.BigDec, sourcePool, destPool domain.Pool) (osmomath.BigDec, error) {
	baseAmount, err := SwapInput(outputAmount, destPool, false)
	if err != nil {
		return osmomath.BigDec{}, err
	}
	return SwapInput(baseAmount, sourcePool, true)
}

func reserves(pool domain.Pool, intoBase bool) (inputReserve, outputReserve float64) {
	assetDepth := bigDecToFloat(pool.AssetDepth)
	baseDepth := bigDecToFloat(pool.BaseDepth)

	if intoBase {
		return assetDepth, baseDepth
	}
	return baseDepth, assetDepth
}

// bigDecToFloat and floatToBigDec are the only sanctioned crossings of the
// decimal/float boundary. Amounts converted to float must be used for
// ratio math only, never compared against limits or handed to a wallet.
func bigDecToFloat(d osmomath.BigDec) float64 {
	f, err := strconv.ParseFloat(d.String(), 64)
	if err != nil {
		return 0
	}
	return f
}

func floatToBigDec(f float64) osmomath.BigDec {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return osmomath.ZeroBigDec()
	}
	// BigDec carries 36 decimal places; anything below that is dust from
	// float rounding.
	if math.Abs(f) < 1e-30 {
		return osmomath.ZeroBigDec()
	}
	return osmomath.MustNewBigDecFromStr(strconv.FormatFloat(f, 'f', -1, 64))
}
