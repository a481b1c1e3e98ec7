package usecase

import (
	"time"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/wardenwallet/swapquote/domain"
)

// OrderSpec carries the computed amounts and addresses the assembler
// composes into a SwapOrder. Amount sources differ per provider (AMM
// engine or an HTTP reply); the assembler itself never contacts a network.
type OrderSpec struct {
	Request domain.SwapRequest

	FromNativeAmount osmomath.Int
	ToNativeAmount   osmomath.Int

	DestinationAddress string
	Memo               string

	// IsEstimate marks payouts that can drift between quote and
	// settlement, e.g. float-rate quotes.
	IsEstimate bool

	PreliminaryTransaction *domain.Transaction

	// Expiration is the provider-declared expiration; zero when the
	// provider declares none.
	Expiration time.Time

	// DefaultExpiration is used when the provider declares no expiration.
	DefaultExpiration time.Duration

	FeeSessionID string

	MetadataNotes string
}

// AssembleOrder builds the normalized SwapOrder from a computed amount
// pair. The expiration is always strictly in the future when the order is
// returned.
func AssembleOrder(spec OrderSpec) domain.SwapOrder {
	expiration := EnsureInFuture(spec.Expiration, DefaultExpirationMargin)
	if expiration.IsZero() {
		expiration = time.Now().Add(spec.DefaultExpiration)
	}

	return domain.SwapOrder{
		Request: spec.Request,
		SpendTarget: domain.SpendTarget{
			DestinationAddress: spec.DestinationAddress,
			Memo:               spec.Memo,
			NativeAmount:       spec.FromNativeAmount,
		},
		Payout: domain.Payout{
			CurrencyCode: spec.Request.ToCurrency,
			NativeAmount: spec.ToNativeAmount,
			WalletID:     spec.Request.ToWalletID,
			IsEstimate:   spec.IsEstimate,
		},
		PreliminaryTransaction: spec.PreliminaryTransaction,
		ExpirationDate:         expiration,
		FeeSessionID:           spec.FeeSessionID,
		MetadataNotes:          spec.MetadataNotes,
	}
}
