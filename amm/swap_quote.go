package amm

import (
	"math/big"

	"github.com/ectoswap/ectoswap-go/amm/cp_pool"
)

// ComputeSwapQuote produces an exact-in swap quote from a reserve snapshot.
// The returned quote is a pure function of its inputs; it holds no reference
// back to the pool.
func ComputeSwapQuote(reserves *PoolReserves, direction Direction, amountIn *big.Int, slippageBps uint64) (*SwapQuote, error) {
	if !reserves.Initialized() {
		return nil, ErrZeroReserves
	}
	if amountIn == nil || amountIn.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}

	reserveIn, reserveOut := orient(reserves, direction)

	amountOut := cp_pool.GetAmountOut(amountIn, reserveIn, reserveOut, reserves.TradeFeeBps)
	if amountOut.Sign() == 0 {
		// input too small to move the pool by a single unit
		return nil, ErrInvalidAmount
	}

	return &SwapQuote{
		AmountIn:    new(big.Int).Set(amountIn),
		AmountOut:   amountOut,
		MinimumOut:  cp_pool.GetMinAmountWithSlippage(amountOut, slippageBps),
		Fee:         cp_pool.GetTradeFee(amountIn, reserves.TradeFeeBps),
		PriceImpact: cp_pool.GetPriceImpact(amountIn, amountOut, reserveIn, reserveOut),
		SlippageBps: slippageBps,
		Source:      QuoteSourceLive,
		Valid:       true,
		FetchedAt:   reserves.FetchedAt,
	}, nil
}

// ComputeSwapQuoteExactOut produces a quote for a requested output amount.
// The required input is rounded up, so submitting it always satisfies the
// on-chain check; the minimum-out bound is the requested output itself.
func ComputeSwapQuoteExactOut(reserves *PoolReserves, direction Direction, amountOut *big.Int, slippageBps uint64) (*SwapQuote, error) {
	if !reserves.Initialized() {
		return nil, ErrZeroReserves
	}
	if amountOut == nil || amountOut.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}

	reserveIn, reserveOut := orient(reserves, direction)

	if amountOut.Cmp(reserveOut) >= 0 {
		return nil, ErrExcessiveOutput
	}

	amountIn := cp_pool.GetAmountIn(amountOut, reserveIn, reserveOut, reserves.TradeFeeBps)
	if amountIn.Sign() == 0 {
		return nil, ErrInvalidAmount
	}

	return &SwapQuote{
		AmountIn:    amountIn,
		AmountOut:   new(big.Int).Set(amountOut),
		MinimumOut:  new(big.Int).Set(amountOut),
		Fee:         cp_pool.GetTradeFee(amountIn, reserves.TradeFeeBps),
		PriceImpact: cp_pool.GetPriceImpact(amountIn, amountOut, reserveIn, reserveOut),
		SlippageBps: slippageBps,
		Source:      QuoteSourceLive,
		Valid:       true,
		FetchedAt:   reserves.FetchedAt,
	}, nil
}

func orient(reserves *PoolReserves, direction Direction) (reserveIn, reserveOut *big.Int) {
	if direction == DirectionAToB {
		return reserves.ReserveA, reserves.ReserveB
	}
	return reserves.ReserveB, reserves.ReserveA
}
