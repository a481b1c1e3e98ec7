package domain

import (
	"context"
	"time"

	"github.com/osmosis-labs/osmosis/osmomath"
)

// QuoteFor designates which side of the swap the request amount is
// authoritative for.
type QuoteFor string

const (
	// QuoteForFrom quotes for a fixed source amount.
	QuoteForFrom QuoteFor = "from"
	// QuoteForTo quotes for a desired destination amount.
	QuoteForTo QuoteFor = "to"
	// QuoteForMax quotes for the maximum spendable source amount.
	// Always resolved into QuoteForFrom before any quote math runs.
	QuoteForMax QuoteFor = "max"
)

// SwapRequest is the provider-agnostic normalized swap request.
// FromChain and ToChain are mainnet identifiers as known by the wallet;
// provider-specific spellings are produced by the codes package.
type SwapRequest struct {
	FromCurrency string
	ToCurrency   string
	FromChain    string
	ToChain      string

	// NativeAmount is in the smallest unit of whichever side QuoteFor
	// designates.
	NativeAmount osmomath.Int

	QuoteFor QuoteFor

	FromWalletID string
	ToWalletID   string
}

// SpendTarget describes the spend the wallet must construct to execute
// the swap.
type SpendTarget struct {
	DestinationAddress string
	Memo               string
	NativeAmount       osmomath.Int
}

// Payout describes what the destination wallet receives.
type Payout struct {
	CurrencyCode string
	NativeAmount osmomath.Int
	WalletID     string
	IsEstimate   bool
}

// SwapOrder is the normalized quote object returned to the wallet.
type SwapOrder struct {
	Request     SwapRequest
	SpendTarget SpendTarget
	Payout      Payout

	// PreliminaryTransaction is a spend that must execute before the main
	// spend, e.g. a token approval.
	PreliminaryTransaction *Transaction

	// ExpirationDate is always strictly in the future relative to the
	// time the order is returned to the caller.
	ExpirationDate time.Time

	// FeeSessionID correlates this quote with pinned fee parameters for a
	// later spend-construction call. Empty when no fees were pinned.
	FeeSessionID string

	MetadataNotes string
}

// QuoteFn produces a SwapOrder for a concrete (non-max) request.
type QuoteFn func(ctx context.Context, req SwapRequest) (SwapOrder, error)
