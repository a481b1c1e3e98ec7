package main

import (
	"github.com/wardenwallet/swapquote/domain"
)

// DefaultConfig defines the default config for the swap quote sidecar.
var DefaultConfig = domain.Config{
	ServerAddress:             ":9092",
	ServerTimeoutDurationSecs: 20,

	LoggerFilename:     "swapquote.log",
	LoggerIsProduction: true,
	LoggerLevel:        "info",

	Provider: &domain.ProviderConfig{
		ServerList: []string{
			"https://thornode.ninerealms.com",
			"https://thornode.thorswap.net",
		},
		MidgardURL: "https://midgard.ninerealms.com",

		// Defaults used until the first successful parameters refresh.
		VolatilitySpreadBps:         100,
		LikeKindVolatilitySpreadBps: 50,

		AffiliateFeeBps: 75,

		PayoutToleranceBps:      500,
		StreamingIntervalBlocks: 1,

		ParamsRefreshIntervalSecs: 60,
		QuoteExpirationMins:       15,
	},

	CORS: &domain.CORSConfig{
		AllowedHeaders: "Origin, Accept, Content-Type, X-Requested-With, X-Server-Time, Accept-Encoding",
		AllowedMethods: "GET, POST, PATCH, OPTIONS",
		AllowedOrigin:  "*",
	},
}
