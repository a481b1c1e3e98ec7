package usecase

import (
	"context"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/wardenwallet/swapquote/domain"
)

// ResolveMaxAmount turns a quote-for-max request into a concrete
// quote-for-from request. Requests that do not ask for max are returned
// unchanged with no side effects.
//
// The resolution issues one provisional quote for the full source balance,
// then asks the wallet for the fee-adjusted headroom against the
// provisional spend target. Wallet errors propagate unchanged; there are
// no retries at this layer.
func ResolveMaxAmount(ctx context.Context, req domain.SwapRequest, fromWallet domain.WalletAdapter, quoteFn domain.QuoteFn) (domain.SwapRequest, error) {
	if req.QuoteFor != domain.QuoteForMax {
		return req, nil
	}

	balance, err := fromWallet.GetBalance(req.FromCurrency)
	if err != nil {
		return domain.SwapRequest{}, err
	}

	provisionalReq := req
	provisionalReq.QuoteFor = domain.QuoteForFrom
	provisionalReq.NativeAmount = balance

	provisional, err := quoteFn(ctx, provisionalReq)
	if err != nil {
		return domain.SwapRequest{}, err
	}

	// The explicit amount is dropped so the wallet computes fee-adjusted
	// headroom against the provisional target.
	maxSpendable, err := fromWallet.GetMaxSpendable(ctx, domain.SpendDescriptor{
		CurrencyCode:       req.FromCurrency,
		DestinationAddress: provisional.SpendTarget.DestinationAddress,
		Memo:               provisional.SpendTarget.Memo,
	})
	if err != nil {
		return domain.SwapRequest{}, err
	}

	// A preliminary spend paid from the same balance, e.g. a token
	// approval, shrinks the headroom by its own network fee.
	if prelim := provisional.PreliminaryTransaction; prelim != nil && prelim.FeeCurrencyCode == req.FromCurrency {
		maxSpendable = maxSpendable.Sub(prelim.NetworkFee)
		// The preliminary fee can exceed the headroom outright; a negative
		// spend amount must never enter the quote path.
		if maxSpendable.IsNegative() {
			maxSpendable = osmomath.ZeroInt()
		}
	}

	resolved := req
	resolved.QuoteFor = domain.QuoteForFrom
	resolved.NativeAmount = maxSpendable
	return resolved, nil
}
