package http

import (
	"errors"
	"time"
)

// timeFormat is the wire format for expiration timestamps.
const timeFormat = time.RFC3339

var (
	errMissingPairParameters    = errors.New("fromCurrency, toCurrency, fromChain and toChain are required")
	errMissingWalletParameters  = errors.New("fromWalletID and toWalletID are required")
	errInvalidAmountParameter   = errors.New("amount must be a positive integer in native units")
	errInvalidQuoteForParameter = errors.New("quoteFor must be one of: from, to, max")
)
