package main

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/wardenwallet/swapquote/domain"
	"github.com/wardenwallet/swapquote/domain/cache"
	"github.com/wardenwallet/swapquote/domain/mvc"
	"github.com/wardenwallet/swapquote/log"
	"github.com/wardenwallet/swapquote/middleware"
	"github.com/wardenwallet/swapquote/provider/thorchain"
	quotehttpdelivery "github.com/wardenwallet/swapquote/quote/delivery/http"
	quoteusecase "github.com/wardenwallet/swapquote/quote/usecase"
	systemhttpdelivery "github.com/wardenwallet/swapquote/system/delivery/http"
	"github.com/wardenwallet/swapquote/wallets"
)

// SwapQuoteServer defines an interface for the swap quote sidecar. It
// exposes the quote pipeline over HTTP and holds the wallet adapter
// registry the embedding application populates.
type SwapQuoteServer interface {
	GetWalletRegistry() *wallets.Registry
	GetQuoteUsecase() mvc.QuoteUsecase
	GetLogger() log.Logger
	Shutdown(context.Context) error
	Start(context.Context) error
}

type swapQuoteServer struct {
	walletRegistry *wallets.Registry
	quoteUsecase   mvc.QuoteUsecase
	e              *echo.Echo
	address        string
	logger         log.Logger
}

// GetWalletRegistry implements SwapQuoteServer.
func (s *swapQuoteServer) GetWalletRegistry() *wallets.Registry {
	return s.walletRegistry
}

// GetQuoteUsecase implements SwapQuoteServer.
func (s *swapQuoteServer) GetQuoteUsecase() mvc.QuoteUsecase {
	return s.quoteUsecase
}

// GetLogger implements SwapQuoteServer.
func (s *swapQuoteServer) GetLogger() log.Logger {
	return s.logger
}

// Shutdown implements SwapQuoteServer.
func (s *swapQuoteServer) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}

// Start implements SwapQuoteServer.
func (s *swapQuoteServer) Start(context.Context) error {
	s.logger.Info("Starting swap quote server", zap.String("address", s.address))
	err := s.e.Start(s.address)
	if err != nil {
		return err
	}

	return nil
}

// NewSwapQuoteServer creates a new swap quote sidecar server.
func NewSwapQuoteServer(config domain.Config, logger log.Logger) (SwapQuoteServer, error) {
	// Setup echo server
	e := echo.New()
	middleware := middleware.InitMiddleware(config.CORS)
	e.Use(middleware.CORS)
	e.Use(middleware.InstrumentMiddleware)
	e.Use(middleware.TraceWithParamsMiddleware("swapquote"))

	providerConfig := *config.Provider

	// Provider client over the ordered node list.
	client := thorchain.NewClient(providerConfig.ServerList, logger)

	paramsSeed := domain.ExchangeParameters{
		VolatilitySpreadBps:         providerConfig.VolatilitySpreadBps,
		LikeKindVolatilitySpreadBps: providerConfig.LikeKindVolatilitySpreadBps,
		ServerList:                  providerConfig.ServerList,
	}
	paramsCache := thorchain.NewParamsCache(
		providerConfig.MidgardURL,
		time.Duration(providerConfig.ParamsRefreshIntervalSecs)*time.Second,
		paramsSeed,
		logger,
	)
	// Successful refreshes rotate the client onto the provider-published
	// node list; the configured list is only the bootstrap.
	paramsCache.OnRefresh(func(params domain.ExchangeParameters) {
		client.SetServers(params.ServerList)
	})

	walletRegistry := wallets.NewRegistry()
	feeOverride := cache.NewFeeOverride()

	exchange := thorchain.NewExchange(client, paramsCache, walletRegistry, feeOverride, nil, providerConfig, logger)

	timeoutContext := time.Duration(config.ServerTimeoutDurationSecs) * time.Second
	quoteUsecase := quoteusecase.NewQuoteUsecase(timeoutContext, exchange, logger)

	// HTTP handlers
	quotehttpdelivery.NewQuoteHandler(e, quoteUsecase, exchange, logger)
	systemhttpdelivery.NewSystemHandler(e, config, logger)

	return &swapQuoteServer{
		walletRegistry: walletRegistry,
		quoteUsecase:   quoteUsecase,
		logger:         logger,
		e:              e,
		address:        config.ServerAddress,
	}, nil
}
