// Package thorchain integrates the liquidity-pool swap provider: pool and
// inbound-lane snapshots over HTTP, tunable exchange parameters with a
// bounded refresh, and the provider's quote entry point backed by the AMM
// engine.
package thorchain

import (
	"fmt"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/wardenwallet/swapquote/domain"
)

// poolResponse is one entry of the provider's pools reply. Every field is
// required; a mismatch is a hard failure, not a warning.
type poolResponse struct {
	Asset         string `json:"asset"`
	AssetDepth    string `json:"assetDepth"`
	RuneDepth     string `json:"runeDepth"`
	AssetPriceUSD string `json:"assetPriceUSD"`
	Status        string `json:"status"`
}

func (p poolResponse) validate() error {
	if p.Asset == "" {
		return fmt.Errorf("pool entry is missing asset identifier")
	}
	for field, value := range map[string]string{
		"assetDepth":    p.AssetDepth,
		"runeDepth":     p.RuneDepth,
		"assetPriceUSD": p.AssetPriceUSD,
	} {
		dec, err := osmomath.NewBigDecFromStr(value)
		if err != nil {
			return fmt.Errorf("pool (%s) field %s is not a decimal: %w", p.Asset, field, err)
		}
		if dec.IsNegative() {
			return fmt.Errorf("pool (%s) field %s is negative", p.Asset, field)
		}
	}
	return nil
}

func (p poolResponse) toDomain() domain.Pool {
	return domain.Pool{
		AssetIdentifier: p.Asset,
		AssetDepth:      osmomath.MustNewBigDecFromStr(p.AssetDepth),
		BaseDepth:       osmomath.MustNewBigDecFromStr(p.RuneDepth),
		AssetPriceUSD:   osmomath.MustNewBigDecFromStr(p.AssetPriceUSD),
		Status:          domain.PoolStatus(p.Status),
	}
}

// inboundAddressResponse is one entry of the inbound-addresses reply.
type inboundAddressResponse struct {
	Chain        string `json:"chain"`
	Address      string `json:"address"`
	Router       string `json:"router"`
	GasRate      string `json:"gas_rate"`
	GasRateUnits string `json:"gas_rate_units"`
	Halted       bool   `json:"halted"`
}

func (a inboundAddressResponse) validate() error {
	if a.Chain == "" {
		return fmt.Errorf("inbound address entry is missing chain")
	}
	if a.Address == "" {
		return fmt.Errorf("inbound address entry for chain (%s) is missing address", a.Chain)
	}
	gasRate, err := osmomath.NewBigDecFromStr(a.GasRate)
	if err != nil {
		return fmt.Errorf("inbound address for chain (%s) has non-decimal gas rate: %w", a.Chain, err)
	}
	if gasRate.IsNegative() {
		return fmt.Errorf("inbound address for chain (%s) has negative gas rate", a.Chain)
	}
	return nil
}

func (a inboundAddressResponse) toDomain() domain.InboundAddress {
	return domain.InboundAddress{
		Chain:        a.Chain,
		Address:      a.Address,
		Router:       a.Router,
		GasRate:      osmomath.MustNewBigDecFromStr(a.GasRate),
		GasRateUnits: a.GasRateUnits,
		Halted:       a.Halted,
	}
}

// exchangeParamsResponse is the tunable parameters document.
type exchangeParamsResponse struct {
	VolatilitySpreadBps         int64    `json:"volatilitySpreadBps"`
	LikeKindVolatilitySpreadBps int64    `json:"likeKindVolatilitySpreadBps"`
	Servers                     []string `json:"servers"`
}

func (e exchangeParamsResponse) validate() error {
	if e.VolatilitySpreadBps < 0 || e.LikeKindVolatilitySpreadBps < 0 {
		return fmt.Errorf("volatility spreads must be non-negative")
	}
	// A spread of 10000 bps or more would zero out or invert the swap
	// output; such a document is malformed, not tunable.
	if e.VolatilitySpreadBps >= 10_000 || e.LikeKindVolatilitySpreadBps >= 10_000 {
		return fmt.Errorf("volatility spreads must be below 10000 bps")
	}
	if len(e.Servers) == 0 {
		return fmt.Errorf("server list is empty")
	}
	return nil
}
