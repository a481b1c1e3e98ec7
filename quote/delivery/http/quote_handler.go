package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/wardenwallet/swapquote/domain"
	"github.com/wardenwallet/swapquote/domain/mvc"
	"github.com/wardenwallet/swapquote/log"
)

// QuoteHandler  represent the httphandler for swap quotes
type QuoteHandler struct {
	QUsecase mvc.QuoteUsecase
	SBuilder mvc.SpendBuilder
	logger   log.Logger
}

const quoteResource = "/quote"

func formatQuoteResource(resource string) string {
	return quoteResource + resource
}

// NewQuoteHandler will initialize the quote/ resources endpoint
func NewQuoteHandler(e *echo.Echo, us mvc.QuoteUsecase, sb mvc.SpendBuilder, logger log.Logger) {
	handler := &QuoteHandler{
		QUsecase: us,
		SBuilder: sb,
		logger:   logger,
	}
	e.GET(quoteResource, handler.GetSwapQuote)
	e.POST(formatQuoteResource("/spend"), handler.BuildSpend)
}

// swapOrderResponse is the wire form of a SwapOrder. Amounts are strings
// so the client never loses precision to floating point.
type swapOrderResponse struct {
	FromCurrency string `json:"from_currency"`
	ToCurrency   string `json:"to_currency"`
	FromChain    string `json:"from_chain"`
	ToChain      string `json:"to_chain"`
	QuoteFor     string `json:"quote_for"`
	FromWalletID string `json:"from_wallet_id"`
	ToWalletID   string `json:"to_wallet_id"`

	DepositAddress string `json:"deposit_address"`
	Memo           string `json:"memo"`
	SpendAmount    string `json:"spend_amount"`

	PayoutCurrency   string `json:"payout_currency"`
	PayoutAmount     string `json:"payout_amount"`
	PayoutIsEstimate bool   `json:"payout_is_estimate"`

	ExpirationDate string `json:"expiration_date"`
	FeeSessionID   string `json:"fee_session_id,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// transactionResponse is the wire form of a constructed spend.
type transactionResponse struct {
	ID              string `json:"id"`
	CurrencyCode    string `json:"currency_code"`
	NativeAmount    string `json:"native_amount"`
	NetworkFee      string `json:"network_fee"`
	FeeCurrencyCode string `json:"fee_currency_code"`
}

// GetSwapQuote will fetch a normalized swap quote for the given pair and amount
func (a *QuoteHandler) GetSwapQuote(c echo.Context) error {
	ctx := c.Request().Context()

	req, err := getValidSwapRequest(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	order, err := a.QUsecase.FetchSwapQuote(ctx, req)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, newSwapOrderResponse(order))
}

// BuildSpend constructs the wallet spend committing a previously returned quote
func (a *QuoteHandler) BuildSpend(c echo.Context) error {
	ctx := c.Request().Context()

	var body swapOrderResponse
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	order, err := body.toDomain()
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	tx, err := a.SBuilder.BuildSpend(ctx, order)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, transactionResponse{
		ID:              tx.ID,
		CurrencyCode:    tx.CurrencyCode,
		NativeAmount:    tx.NativeAmount.String(),
		NetworkFee:      tx.NetworkFee.String(),
		FeeCurrencyCode: tx.FeeCurrencyCode,
	})
}

// getValidSwapRequest validates quote query parameters into a SwapRequest.
func getValidSwapRequest(c echo.Context) (domain.SwapRequest, error) {
	fromCurrency := c.QueryParam("fromCurrency")
	toCurrency := c.QueryParam("toCurrency")
	fromChain := c.QueryParam("fromChain")
	toChain := c.QueryParam("toChain")
	if fromCurrency == "" || toCurrency == "" || fromChain == "" || toChain == "" {
		return domain.SwapRequest{}, errMissingPairParameters
	}

	fromWalletID := c.QueryParam("fromWalletID")
	toWalletID := c.QueryParam("toWalletID")
	if fromWalletID == "" || toWalletID == "" {
		return domain.SwapRequest{}, errMissingWalletParameters
	}

	quoteFor := domain.QuoteFor(c.QueryParam("quoteFor"))
	if quoteFor == "" {
		quoteFor = domain.QuoteForFrom
	}

	var amount osmomath.Int
	switch quoteFor {
	case domain.QuoteForMax:
		// The amount is resolved from the wallet balance.
		amount = osmomath.ZeroInt()
	case domain.QuoteForFrom, domain.QuoteForTo:
		parsed, ok := osmomath.NewIntFromString(c.QueryParam("amount"))
		if !ok || !parsed.IsPositive() {
			return domain.SwapRequest{}, errInvalidAmountParameter
		}
		amount = parsed
	default:
		return domain.SwapRequest{}, errInvalidQuoteForParameter
	}

	return domain.SwapRequest{
		FromCurrency: fromCurrency,
		ToCurrency:   toCurrency,
		FromChain:    fromChain,
		ToChain:      toChain,
		NativeAmount: amount,
		QuoteFor:     quoteFor,
		FromWalletID: fromWalletID,
		ToWalletID:   toWalletID,
	}, nil
}

func newSwapOrderResponse(order domain.SwapOrder) swapOrderResponse {
	return swapOrderResponse{
		FromCurrency: order.Request.FromCurrency,
		ToCurrency:   order.Request.ToCurrency,
		FromChain:    order.Request.FromChain,
		ToChain:      order.Request.ToChain,
		QuoteFor:     string(order.Request.QuoteFor),
		FromWalletID: order.Request.FromWalletID,
		ToWalletID:   order.Request.ToWalletID,

		DepositAddress: order.SpendTarget.DestinationAddress,
		Memo:           order.SpendTarget.Memo,
		SpendAmount:    order.SpendTarget.NativeAmount.String(),

		PayoutCurrency:   order.Payout.CurrencyCode,
		PayoutAmount:     order.Payout.NativeAmount.String(),
		PayoutIsEstimate: order.Payout.IsEstimate,

		ExpirationDate: order.ExpirationDate.Format(timeFormat),
		FeeSessionID:   order.FeeSessionID,
		Notes:          order.MetadataNotes,
	}
}

func (r swapOrderResponse) toDomain() (domain.SwapOrder, error) {
	spendAmount, ok := osmomath.NewIntFromString(r.SpendAmount)
	if !ok {
		return domain.SwapOrder{}, errInvalidAmountParameter
	}
	payoutAmount, ok := osmomath.NewIntFromString(r.PayoutAmount)
	if !ok {
		return domain.SwapOrder{}, errInvalidAmountParameter
	}

	return domain.SwapOrder{
		Request: domain.SwapRequest{
			FromCurrency: r.FromCurrency,
			ToCurrency:   r.ToCurrency,
			FromChain:    r.FromChain,
			ToChain:      r.ToChain,
			NativeAmount: spendAmount,
			QuoteFor:     domain.QuoteFor(r.QuoteFor),
			FromWalletID: r.FromWalletID,
			ToWalletID:   r.ToWalletID,
		},
		SpendTarget: domain.SpendTarget{
			DestinationAddress: r.DepositAddress,
			Memo:               r.Memo,
			NativeAmount:       spendAmount,
		},
		Payout: domain.Payout{
			CurrencyCode: r.PayoutCurrency,
			NativeAmount: payoutAmount,
			WalletID:     r.ToWalletID,
			IsEstimate:   r.PayoutIsEstimate,
		},
		FeeSessionID:  r.FeeSessionID,
		MetadataNotes: r.Notes,
	}, nil
}
