package mocks

import (
	"context"

	"github.com/wardenwallet/swapquote/domain"
	"github.com/wardenwallet/swapquote/domain/mvc"
)

var _ mvc.QuoteUsecase = &QuoteUsecaseMock{}

// QuoteUsecaseMock is a mock implementation of the QuoteUsecase interface
type QuoteUsecaseMock struct {
	FetchSwapQuoteFunc func(ctx context.Context, req domain.SwapRequest) (domain.SwapOrder, error)
}

// FetchSwapQuote implements mvc.QuoteUsecase.
func (m *QuoteUsecaseMock) FetchSwapQuote(ctx context.Context, req domain.SwapRequest) (domain.SwapOrder, error) {
	if m.FetchSwapQuoteFunc != nil {
		return m.FetchSwapQuoteFunc(ctx, req)
	}
	panic("unimplemented")
}

var _ mvc.SpendBuilder = &SpendBuilderMock{}

// SpendBuilderMock is a mock implementation of the SpendBuilder interface
type SpendBuilderMock struct {
	BuildSpendFunc func(ctx context.Context, order domain.SwapOrder) (domain.Transaction, error)
}

// BuildSpend implements mvc.SpendBuilder.
func (m *SpendBuilderMock) BuildSpend(ctx context.Context, order domain.SwapOrder) (domain.Transaction, error) {
	if m.BuildSpendFunc != nil {
		return m.BuildSpendFunc(ctx, order)
	}
	panic("unimplemented")
}
