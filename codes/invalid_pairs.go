package codes

import (
	"github.com/wardenwallet/swapquote/domain"
)

// Restriction disables codes on one chain for one direction.
type Restriction struct {
	// AllCodes blanket-disables the chain.
	AllCodes bool

	// AllTokens disables every code except the chain's mainnet coin.
	AllTokens bool

	// Codes disables the listed codes only.
	Codes []string
}

// InvalidCodes lists disallowed chain/code combinations per direction,
// keyed by mainnet chain identifier.
type InvalidCodes struct {
	From map[string]Restriction
	To   map[string]Restriction
}

// defaultInvalidCodes is the built-in default-disallow table. A
// caller-supplied table is merged with it, never replaces it.
var defaultInvalidCodes = InvalidCodes{
	From: map[string]Restriction{
		// Beacon Chain was sunset; no provider settles against it.
		"binancechain": {AllCodes: true},
	},
	To: map[string]Restriction{
		"binancechain": {AllCodes: true},
	},
}

// MergeInvalidCodes unions two tables. A match in either triggers
// rejection.
func MergeInvalidCodes(base, overlay InvalidCodes) InvalidCodes {
	merged := InvalidCodes{
		From: mergeDirection(base.From, overlay.From),
		To:   mergeDirection(base.To, overlay.To),
	}
	return merged
}

func mergeDirection(base, overlay map[string]Restriction) map[string]Restriction {
	merged := make(map[string]Restriction, len(base)+len(overlay))
	for chain, restriction := range base {
		merged[chain] = restriction
	}
	for chain, restriction := range overlay {
		existing, ok := merged[chain]
		if !ok {
			merged[chain] = restriction
			continue
		}
		merged[chain] = Restriction{
			AllCodes:  existing.AllCodes || restriction.AllCodes,
			AllTokens: existing.AllTokens || restriction.AllTokens,
			Codes:     append(append([]string{}, existing.Codes...), restriction.Codes...),
		}
	}
	return merged
}

// RejectInvalidPair fails with UnsupportedPairError when either side of the
// request is disallowed or both sides are the same asset on the same chain.
// mainnetCoins maps each chain identifier to its mainnet coin code and is
// used to decide whether a code is a non-mainnet token.
func RejectInvalidPair(invalid InvalidCodes, mainnetCoins map[string]string, req domain.SwapRequest) error {
	merged := MergeInvalidCodes(defaultInvalidCodes, invalid)

	pairError := func(reason string) error {
		return domain.UnsupportedPairError{
			FromCode:  req.FromCurrency,
			FromChain: req.FromChain,
			ToCode:    req.ToCurrency,
			ToChain:   req.ToChain,
			Reason:    reason,
		}
	}

	if req.FromCurrency == req.ToCurrency && req.FromChain == req.ToChain {
		return pairError("source and destination are the same asset")
	}

	if reason, rejected := directionRejects(merged.From, mainnetCoins, req.FromChain, req.FromCurrency); rejected {
		return pairError("source " + reason)
	}
	if reason, rejected := directionRejects(merged.To, mainnetCoins, req.ToChain, req.ToCurrency); rejected {
		return pairError("destination " + reason)
	}

	return nil
}

func directionRejects(restrictions map[string]Restriction, mainnetCoins map[string]string, chain, code string) (string, bool) {
	restriction, ok := restrictions[chain]
	if !ok {
		return "", false
	}

	if restriction.AllCodes {
		return "chain is disabled", true
	}

	if restriction.AllTokens && mainnetCoins[chain] != code {
		return "tokens are disabled on this chain", true
	}

	for _, disabled := range restriction.Codes {
		if disabled == code {
			return "code is disabled", true
		}
	}

	return "", false
}
