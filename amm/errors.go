package amm

import "errors"

// Quote failure kinds. All of them are recovered locally: the quoter degrades
// to a failed quote carrying the reason, it never surfaces them as a fault.
var (
	// ErrInvalidAmount indicates malformed, zero or negative user input.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrPairNotFound indicates no pool exists for the requested pair.
	ErrPairNotFound = errors.New("pair not found")

	// ErrZeroReserves indicates the pool exists but holds no liquidity.
	ErrZeroReserves = errors.New("pool has zero reserves")

	// ErrReadFailed indicates the chain reader could not supply reserves.
	ErrReadFailed = errors.New("reserve read failed")

	// ErrExcessiveOutput indicates a requested output at or above the
	// available reserve.
	ErrExcessiveOutput = errors.New("requested output exceeds reserve")

	// ErrStaleQuote indicates an attempt to build call parameters from an
	// invalid or outdated quote.
	ErrStaleQuote = errors.New("stale quote")

	// ErrDemoQuote indicates a demo-rate quote reached a call builder.
	// Demo quotes are display-only and must never fund a transaction.
	ErrDemoQuote = errors.New("demo quote cannot be submitted")
)
