package domain

import (
	"time"

	"github.com/osmosis-labs/osmosis/osmomath"
)

// PoolStatus is the provider-reported lifecycle status of a liquidity pool.
type PoolStatus string

const (
	PoolStatusAvailable PoolStatus = "available"
	PoolStatusStaged    PoolStatus = "staged"
	PoolStatusSuspended PoolStatus = "suspended"
)

// Pool is a liquidity pool snapshot for one asset paired against the
// provider's common base asset. Fetched fresh per quote request and never
// mutated.
type Pool struct {
	// AssetIdentifier is the provider spelling, e.g. "ETH.ETH" or
	// "ETH.USDC-0XA0B8...".
	AssetIdentifier string

	// AssetDepth and BaseDepth are in the provider's base units (1e8).
	AssetDepth osmomath.BigDec
	BaseDepth  osmomath.BigDec

	AssetPriceUSD osmomath.BigDec

	Status PoolStatus
}

// IsSwappable returns true if the pool can be routed through.
// A pool with zero depth on either side must be treated as not found.
func (p Pool) IsSwappable() bool {
	return p.Status == PoolStatusAvailable && !p.AssetDepth.IsZero() && !p.BaseDepth.IsZero()
}

// InboundAddress is the provider's per-chain deposit lane snapshot.
type InboundAddress struct {
	Chain string

	Address string

	// Router is the contract address for chains that route deposits
	// through a contract. Empty otherwise.
	Router string

	// GasRate is the provider-observed fee rate in GasRateUnits.
	GasRate      osmomath.BigDec
	GasRateUnits string

	Halted bool
}

// ExchangeParameters are provider-tunable swap parameters, refreshed at
// most once per refresh interval. On refresh failure the previous values
// are retained.
type ExchangeParameters struct {
	VolatilitySpreadBps         int64
	LikeKindVolatilitySpreadBps int64

	// ServerList is an ordered sequence of endpoint URLs, tried in order
	// on failure.
	ServerList []string

	LastRefreshedAt time.Time
}
