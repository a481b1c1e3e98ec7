package domain

// Config defines the config for the swap quote sidecar.
type Config struct {
	// Defines the web server configuration.
	ServerAddress             string `mapstructure:"server-address"`
	ServerTimeoutDurationSecs int    `mapstructure:"timeout-duration-secs"`

	// Defines the logger configuration.
	LoggerFilename     string `mapstructure:"logger-filename"`
	LoggerIsProduction bool   `mapstructure:"logger-is-production"`
	LoggerLevel        string `mapstructure:"logger-level"`

	// Provider encapsulates the liquidity-pool provider config.
	Provider *ProviderConfig `mapstructure:"provider"`

	OTEL *OTELConfig `mapstructure:"otel"`

	CORS *CORSConfig `mapstructure:"cors"`
}

// ProviderConfig defines the config for the liquidity-pool provider.
type ProviderConfig struct {
	// ServerList is the ordered list of node endpoints, tried in order on
	// failure.
	ServerList []string `mapstructure:"server-list"`

	// MidgardURL serves the tunable exchange parameters document.
	MidgardURL string `mapstructure:"midgard-url"`

	// Defaults used until the first successful parameters refresh.
	VolatilitySpreadBps         int64 `mapstructure:"volatility-spread-bps"`
	LikeKindVolatilitySpreadBps int64 `mapstructure:"like-kind-volatility-spread-bps"`

	// AffiliateFeeBps is deducted from the swap output.
	AffiliateFeeBps  int64  `mapstructure:"affiliate-fee-bps"`
	AffiliateAddress string `mapstructure:"affiliate-address"`

	// PayoutToleranceBps shrinks the quoted payout into the memo's limit,
	// the minimum the provider may settle the swap at.
	PayoutToleranceBps int64 `mapstructure:"payout-tolerance-bps"`

	// StreamingIntervalBlocks is the block spacing between streaming
	// sub-swaps. Zero omits the streaming suffix from the memo.
	StreamingIntervalBlocks int64 `mapstructure:"streaming-interval-blocks"`

	// ParamsRefreshIntervalSecs bounds how often the exchange parameters
	// document is re-fetched.
	ParamsRefreshIntervalSecs int `mapstructure:"params-refresh-interval-secs"`

	// QuoteExpirationMins is the default quote lifetime when the provider
	// does not declare one.
	QuoteExpirationMins int `mapstructure:"quote-expiration-mins"`
}

// OTELConfig defines the tracing/sentry configuration.
type OTELConfig struct {
	DSN                string  `mapstructure:"dsn"`
	SampleRate         float64 `mapstructure:"sample-rate"`
	EnableTracing      bool    `mapstructure:"enable-tracing"`
	Environment        string  `mapstructure:"environment"`
	TracesSampleRate   float64 `mapstructure:"traces-sample-rate"`
	ProfilesSampleRate float64 `mapstructure:"profiles-sample-rate"`
}

// CORSConfig defines the CORS headers applied by the middleware.
type CORSConfig struct {
	AllowedHeaders string `mapstructure:"allowed-headers"`
	AllowedMethods string `mapstructure:"allowed-methods"`
	AllowedOrigin  string `mapstructure:"allowed-origin"`
}
