package domain

import (
	"context"

	"github.com/osmosis-labs/osmosis/osmomath"
)

// SpendDescriptor describes a spend for the wallet to construct or bound.
type SpendDescriptor struct {
	CurrencyCode       string
	DestinationAddress string
	Memo               string

	// NativeAmount is nil when the wallet should compute fee-adjusted
	// headroom instead of targeting an explicit amount.
	NativeAmount *osmomath.Int

	// CustomNetworkFee pins fee parameters chosen at preview time so a
	// later commit call constructs an identical spend.
	CustomNetworkFee map[string]string
}

// Transaction is the wallet's view of a constructed (unsigned) spend.
type Transaction struct {
	ID              string
	CurrencyCode    string
	NativeAmount    osmomath.Int
	NetworkFee      osmomath.Int
	FeeCurrencyCode string
}

// WalletAdapter is the boundary to the wallet/account subsystem. One
// adapter handle corresponds to one currency wallet.
type WalletAdapter interface {
	// GetReceiveAddress returns a fresh receive address for the given
	// currency code, or the wallet's primary code when empty.
	GetReceiveAddress(ctx context.Context, currencyCode string) (string, error)

	// GetBalance returns the full available balance of the given currency.
	GetBalance(currencyCode string) (osmomath.Int, error)

	// NativeToDenomination converts a native smallest-unit amount into the
	// display denomination as an arbitrary-precision decimal.
	NativeToDenomination(nativeAmount osmomath.Int, currencyCode string) (osmomath.BigDec, error)

	// DenominationToNative converts a display-denomination amount into
	// native smallest units, truncating any sub-unit remainder.
	DenominationToNative(amount osmomath.BigDec, currencyCode string) (osmomath.Int, error)

	// GetMaxSpendable returns the maximum native amount spendable to the
	// given target after the chain's own transaction fee.
	GetMaxSpendable(ctx context.Context, spend SpendDescriptor) (osmomath.Int, error)

	// MakeSpend constructs an unsigned spend. May fail with a
	// chain-specific error, e.g. insufficient balance.
	MakeSpend(ctx context.Context, spend SpendDescriptor) (Transaction, error)
}
