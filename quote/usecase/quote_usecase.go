package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/wardenwallet/swapquote/domain"
	"github.com/wardenwallet/swapquote/domain/mvc"
	"github.com/wardenwallet/swapquote/log"
)

type quoteUsecase struct {
	contextTimeout time.Duration
	provider       mvc.QuoteUsecase
	logger         log.Logger
}

var _ mvc.QuoteUsecase = &quoteUsecase{}

// NewQuoteUsecase wraps a provider's quote entry point with request
// validation and a per-request timeout.
func NewQuoteUsecase(timeout time.Duration, provider mvc.QuoteUsecase, logger log.Logger) mvc.QuoteUsecase {
	return &quoteUsecase{
		contextTimeout: timeout,
		provider:       provider,
		logger:         logger,
	}
}

// FetchSwapQuote implements mvc.QuoteUsecase.
func (q *quoteUsecase) FetchSwapQuote(ctx context.Context, req domain.SwapRequest) (domain.SwapOrder, error) {
	ctx, cancel := context.WithTimeout(ctx, q.contextTimeout)
	defer cancel()

	if err := validateRequest(req); err != nil {
		return domain.SwapOrder{}, err
	}

	order, err := q.provider.FetchSwapQuote(ctx, req)
	if err != nil {
		q.logger.Debug("swap quote failed",
			zap.String("from", req.FromCurrency),
			zap.String("to", req.ToCurrency),
			zap.String("quote_for", string(req.QuoteFor)),
			zap.Error(err),
		)
		return domain.SwapOrder{}, err
	}

	q.logger.Debug("swap quote assembled",
		zap.String("from", req.FromCurrency),
		zap.String("to", req.ToCurrency),
		zap.String("spend_amount", order.SpendTarget.NativeAmount.String()),
		zap.String("payout_amount", order.Payout.NativeAmount.String()),
		zap.Time("expiration", order.ExpirationDate),
	)

	return order, nil
}

func validateRequest(req domain.SwapRequest) error {
	if req.FromCurrency == "" || req.ToCurrency == "" || req.FromChain == "" || req.ToChain == "" {
		return domain.ErrBadParamInput
	}

	switch req.QuoteFor {
	case domain.QuoteForFrom, domain.QuoteForTo:
		if req.NativeAmount.IsNil() || !req.NativeAmount.IsPositive() {
			return domain.ErrBadParamInput
		}
	case domain.QuoteForMax:
	default:
		return domain.ErrBadParamInput
	}

	return nil
}
