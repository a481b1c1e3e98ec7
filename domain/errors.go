package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
)

// AmountSide tags which side of the swap a min/max bound applies to.
type AmountSide string

const (
	AmountSideSource      AmountSide = "source"
	AmountSideDestination AmountSide = "destination"
)

// UnsupportedPairError is returned when a currency/chain combination is
// disallowed for the provider or resolves to the same asset on both sides.
type UnsupportedPairError struct {
	FromCode  string
	FromChain string
	ToCode    string
	ToChain   string
	Reason    string
}

func (e UnsupportedPairError) Error() string {
	return fmt.Sprintf("unsupported pair (%s on %s) -> (%s on %s): %s", e.FromCode, e.FromChain, e.ToCode, e.ToChain, e.Reason)
}

// BelowMinimumError is returned when the resolved amount is below the
// provider-declared minimum. NativeMinimum carries the native-amount
// equivalent of the bound so the caller can render an actionable message.
type BelowMinimumError struct {
	NativeMinimum string
	CurrencyCode  string
	Side          AmountSide
}

func (e BelowMinimumError) Error() string {
	return fmt.Sprintf("amount below %s minimum of %s %s", e.Side, e.NativeMinimum, e.CurrencyCode)
}

// AboveMaximumError is returned when the resolved amount exceeds the
// provider-declared maximum.
type AboveMaximumError struct {
	NativeMaximum string
	CurrencyCode  string
	Side          AmountSide
}

func (e AboveMaximumError) Error() string {
	return fmt.Sprintf("amount above %s maximum of %s %s", e.Side, e.NativeMaximum, e.CurrencyCode)
}

// PricingUnavailableError is returned when a required pool or rate is
// missing, so no fee or rate can be computed. Never downgraded to a
// zero-fee guess.
type PricingUnavailableError struct {
	Chain string
	Asset string
}

func (e PricingUnavailableError) Error() string {
	return fmt.Sprintf("cannot price chain-asset pair (%s, %s)", e.Chain, e.Asset)
}

// ProviderProtocolError is returned when a provider reply failed schema
// validation or returned a transport-level failure code.
type ProviderProtocolError struct {
	Provider string
	Endpoint string
	Cause    string
}

func (e ProviderProtocolError) Error() string {
	return fmt.Sprintf("provider (%s) protocol failure at %s: %s", e.Provider, e.Endpoint, e.Cause)
}

// PoolNotFoundError is returned when the provider has no usable pool for
// the given asset. A pool with zero depth is treated as not found.
type PoolNotFoundError struct {
	AssetIdentifier string
}

func (e PoolNotFoundError) Error() string {
	return fmt.Sprintf("pool for asset (%s) is not found", e.AssetIdentifier)
}

// InsufficientLiquidityError is returned when a requested output exceeds
// what the pool can produce for any finite input.
type InsufficientLiquidityError struct {
	AssetIdentifier string
	OutputAmount    string
}

func (e InsufficientLiquidityError) Error() string {
	return fmt.Sprintf("not enough liquidity in pool (%s) for output amount (%s)", e.AssetIdentifier, e.OutputAmount)
}

// HaltedChainError is returned when the provider reports the chain's
// inbound lane as halted.
type HaltedChainError struct {
	Chain string
}

func (e HaltedChainError) Error() string {
	return fmt.Sprintf("provider inbound lane for chain (%s) is halted", e.Chain)
}

// WalletNotFoundError is returned when a request references a wallet id
// unknown to the registry.
type WalletNotFoundError struct {
	WalletID string
}

func (e WalletNotFoundError) Error() string {
	return fmt.Sprintf("wallet (%s) is not registered", e.WalletID)
}

// GetStatusCode returns status code given error
func GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var (
		unsupportedPair UnsupportedPairError
		belowMin        BelowMinimumError
		aboveMax        AboveMaximumError
		pricing         PricingUnavailableError
		protocol        ProviderProtocolError
		poolNotFound    PoolNotFoundError
		halted          HaltedChainError
		liquidity       InsufficientLiquidityError
		wallet          WalletNotFoundError
	)

	switch {
	case errors.As(err, &unsupportedPair), errors.As(err, &belowMin), errors.As(err, &aboveMax), errors.As(err, &liquidity):
		return http.StatusBadRequest
	case errors.As(err, &pricing), errors.As(err, &poolNotFound), errors.As(err, &wallet):
		return http.StatusNotFound
	case errors.As(err, &protocol), errors.As(err, &halted):
		return http.StatusBadGateway
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrBadParamInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}
