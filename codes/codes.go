// Package codes translates wallet currency and chain identifiers into
// provider-specific spellings and rejects pairs a provider cannot serve.
// It carries no embedded provider knowledge; per-provider tables are
// supplied by the caller.
package codes

import (
	"github.com/wardenwallet/swapquote/domain"
)

// TranscriptionTable maps a wallet spelling to a provider spelling.
// Lookups fall back to the untranslated spelling when no entry exists.
type TranscriptionTable map[string]string

// Resolved holds the provider-specific spellings for one request.
type Resolved struct {
	FromCode  string
	ToCode    string
	FromChain string
	ToChain   string
}

// Resolve produces the provider-specific spellings for the request's
// currency codes and chain identifiers.
func Resolve(req domain.SwapRequest, mainnetTable, currencyTable TranscriptionTable) Resolved {
	return Resolved{
		FromCode:  transcribe(currencyTable, req.FromCurrency),
		ToCode:    transcribe(currencyTable, req.ToCurrency),
		FromChain: transcribe(mainnetTable, req.FromChain),
		ToChain:   transcribe(mainnetTable, req.ToChain),
	}
}

func transcribe(table TranscriptionTable, code string) string {
	if table == nil {
		return code
	}
	if translated, ok := table[code]; ok {
		return translated
	}
	return code
}
