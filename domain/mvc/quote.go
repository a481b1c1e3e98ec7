package mvc

import (
	"context"

	"github.com/wardenwallet/swapquote/domain"
)

// QuoteUsecase defines an interface for a provider's swap quote usecase.
type QuoteUsecase interface {
	// FetchSwapQuote is the single entry point per provider. It normalizes
	// the request, resolves a max amount if requested, computes the swap
	// amounts and assembles the final order.
	FetchSwapQuote(ctx context.Context, req domain.SwapRequest) (domain.SwapOrder, error)
}

// SpendBuilder constructs the wallet spend committing a previously
// quoted order.
type SpendBuilder interface {
	// BuildSpend constructs an unsigned spend for the order, applying any
	// fee parameters pinned at quote time.
	BuildSpend(ctx context.Context, order domain.SwapOrder) (domain.Transaction, error)
}

// WalletRegistry resolves wallet identifiers from a SwapRequest into
// wallet adapter handles.
type WalletRegistry interface {
	// GetWallet returns the adapter for the given wallet id.
	GetWallet(walletID string) (domain.WalletAdapter, error)
}
