package cp_pool

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// GetAmountOut computes the output of a constant-product swap with the trade
// fee taken from the input side:
//
//	amountInAfterFee = amountIn * (10000 - feeBps)
//	amountOut = amountInAfterFee * reserveOut / (reserveIn * 10000 + amountInAfterFee)
//
// Multiplications run before divisions so truncation matches the on-chain
// program. A non-positive amount or reserve yields a defined zero quote.
func GetAmountOut(amountIn, reserveIn, reserveOut *big.Int, tradeFeeBps uint64) *big.Int {
	if amountIn == nil || reserveIn == nil || reserveOut == nil {
		return big.NewInt(0)
	}
	if amountIn.Sign() <= 0 || reserveIn.Sign() <= 0 || reserveOut.Sign() <= 0 {
		return big.NewInt(0)
	}
	if tradeFeeBps >= BasisPointMax {
		return big.NewInt(0)
	}

	amountInAfterFee := new(big.Int).Mul(amountIn, big.NewInt(int64(BasisPointMax-tradeFeeBps)))

	numerator := new(big.Int).Mul(amountInAfterFee, reserveOut)

	denominator := new(big.Int).Mul(reserveIn, basisPointMaxInt)
	denominator.Add(denominator, amountInAfterFee)

	return numerator.Div(numerator, denominator)
}

// GetAmountIn computes the input required to receive amountOut, rounding the
// result up so the computed input always suffices on-chain:
//
//	amountIn = reserveIn * amountOut * 10000 / ((reserveOut - amountOut) * (10000 - feeBps)) + 1
//
// Returns 0 when amountOut >= reserveOut (the pool cannot supply that much)
// or when either reserve is non-positive.
func GetAmountIn(amountOut, reserveIn, reserveOut *big.Int, tradeFeeBps uint64) *big.Int {
	if amountOut == nil || reserveIn == nil || reserveOut == nil {
		return big.NewInt(0)
	}
	if amountOut.Sign() <= 0 || reserveIn.Sign() <= 0 || reserveOut.Sign() <= 0 {
		return big.NewInt(0)
	}
	if amountOut.Cmp(reserveOut) >= 0 {
		return big.NewInt(0)
	}
	if tradeFeeBps >= BasisPointMax {
		return big.NewInt(0)
	}

	numerator := new(big.Int).Mul(reserveIn, amountOut)
	numerator.Mul(numerator, basisPointMaxInt)

	denominator := new(big.Int).Sub(reserveOut, amountOut)
	denominator.Mul(denominator, big.NewInt(int64(BasisPointMax-tradeFeeBps)))

	amountIn := numerator.Div(numerator, denominator)
	return amountIn.Add(amountIn, big.NewInt(1))
}

// GetTradeFee returns the fee collected from the input side of a swap,
// floor(amountIn * feeBps / 10000).
func GetTradeFee(amountIn *big.Int, tradeFeeBps uint64) *big.Int {
	if amountIn == nil || amountIn.Sign() <= 0 {
		return big.NewInt(0)
	}
	fee := new(big.Int).Mul(amountIn, big.NewInt(int64(tradeFeeBps)))
	return fee.Div(fee, basisPointMaxInt)
}

// GetMinAmountWithSlippage applies a slippage tolerance to an amount,
// floor(amount * (10000 - slippageBps) / 10000). Integer math throughout so
// the bound matches the on-chain comparison exactly.
func GetMinAmountWithSlippage(amount *big.Int, slippageBps uint64) *big.Int {
	if amount == nil || amount.Sign() <= 0 {
		return big.NewInt(0)
	}
	if slippageBps == 0 {
		return new(big.Int).Set(amount)
	}
	if slippageBps >= BasisPointMax {
		return big.NewInt(0)
	}

	min := new(big.Int).Mul(amount, big.NewInt(int64(BasisPointMax-slippageBps)))
	return min.Div(min, basisPointMaxInt)
}

// GetPriceImpact
// abs(spot_price - execution_price) / spot_price * 100%
func GetPriceImpact(amountIn, amountOut, reserveIn, reserveOut *big.Int) decimal.Decimal {
	if amountIn == nil || reserveIn == nil || amountIn.Sign() == 0 || reserveIn.Sign() == 0 {
		return N0
	}
	if amountOut == nil || reserveOut == nil {
		return N0
	}

	spotPrice := decimal.NewFromBigInt(reserveOut, 0).DivRound(decimal.NewFromBigInt(reserveIn, 0), 19)
	if spotPrice.IsZero() {
		return N0
	}

	executionPrice := decimal.NewFromBigInt(amountOut, 0).DivRound(decimal.NewFromBigInt(amountIn, 0), 19)

	diff := spotPrice.Sub(executionPrice).Abs()
	return diff.Div(spotPrice).Mul(N100).Round(2)
}
