package amm

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

// Demo rates for pairs that have no live pool yet. Display-only: every quote
// produced here is tagged QuoteSourceDemo and rejected by the call builders.
var demoRates = map[string]decimal.Decimal{
	"ECTO/USDC":  decimal.RequireFromString("0.042"),
	"ECTO/SUI":   decimal.RequireFromString("0.011"),
	"SLIME/ECTO": decimal.RequireFromString("3.7"),
	"BOO/ECTO":   decimal.RequireFromString("120"),
}

// DemoRate returns the placeholder exchange rate for a pair, if one exists.
func DemoRate(pair string) (decimal.Decimal, bool) {
	rate, ok := demoRates[pair]
	return rate, ok
}

// ComputeDemoQuote produces a placeholder quote from the demo rate table.
// No reserves back these numbers, so price impact and fee are zero and the
// quote can never be turned into call parameters.
func ComputeDemoQuote(pair string, amountIn *big.Int, decimalsIn, decimalsOut uint8, slippageBps uint64) (*SwapQuote, error) {
	rate, ok := demoRates[pair]
	if !ok {
		return nil, ErrPairNotFound
	}
	if amountIn == nil || amountIn.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}

	// scale across the decimals difference, then truncate to raw units
	out := decimal.NewFromBigInt(amountIn, -int32(decimalsIn)).
		Mul(rate).
		Shift(int32(decimalsOut)).
		Truncate(0).
		BigInt()

	return &SwapQuote{
		AmountIn:    new(big.Int).Set(amountIn),
		AmountOut:   out,
		MinimumOut:  new(big.Int).Set(out),
		Fee:         big.NewInt(0),
		PriceImpact: decimal.Zero,
		SlippageBps: slippageBps,
		Source:      QuoteSourceDemo,
		Valid:       true,
		FetchedAt:   time.Now(),
	}, nil
}
