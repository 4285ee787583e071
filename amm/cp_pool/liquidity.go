package cp_pool

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/ectoswap/ectoswap-go/big_math"
)

// GetLpTokensForDeposit returns the LP tokens minted for a deposit of
// (amountA, amountB) against the current reserves.
//
// First deposit (zero supply): isqrt(amountA * amountB) - MinimumLiquidity,
// floored at 0; the deducted minimum is burned by the program and never
// returned to any depositor.
//
// Subsequent deposits: min(amountA * totalLp / reserveA,
// amountB * totalLp / reserveB). The limiting side determines the mint so a
// deposit can never mint out of proportion to the scarcer reserve.
func GetLpTokensForDeposit(amountA, amountB, reserveA, reserveB, totalLp *big.Int) *big.Int {
	if amountA == nil || amountB == nil || amountA.Sign() <= 0 || amountB.Sign() <= 0 {
		return big.NewInt(0)
	}

	if totalLp == nil || totalLp.Sign() == 0 {
		lp := big_math.Isqrt(new(big.Int).Mul(amountA, amountB))
		lp.Sub(lp, MinimumLiquidity)
		if lp.Sign() < 0 {
			return big.NewInt(0)
		}
		return lp
	}

	if reserveA == nil || reserveB == nil || reserveA.Sign() <= 0 || reserveB.Sign() <= 0 {
		return big.NewInt(0)
	}

	shareA := new(big.Int).Mul(amountA, totalLp)
	shareA.Div(shareA, reserveA)

	shareB := new(big.Int).Mul(amountB, totalLp)
	shareB.Div(shareB, reserveB)

	return big_math.Min(shareA, shareB)
}

// GetWithdrawAmounts returns the pro-rata reserves redeemed by burning
// lpAmount, floor(reserve * lpAmount / totalLp) for each side. Rounding dust
// stays in the pool.
func GetWithdrawAmounts(lpAmount, reserveA, reserveB, totalLp *big.Int) (*big.Int, *big.Int) {
	if lpAmount == nil || totalLp == nil || lpAmount.Sign() <= 0 || totalLp.Sign() <= 0 {
		return big.NewInt(0), big.NewInt(0)
	}
	if reserveA == nil || reserveB == nil || reserveA.Sign() <= 0 || reserveB.Sign() <= 0 {
		return big.NewInt(0), big.NewInt(0)
	}

	amountA := new(big.Int).Mul(reserveA, lpAmount)
	amountA.Div(amountA, totalLp)

	amountB := new(big.Int).Mul(reserveB, lpAmount)
	amountB.Div(amountB, totalLp)

	return amountA, amountB
}

// GetPairedAmount returns the counterpart deposit amount that keeps a deposit
// proportional to the current reserves, amountA * reserveB / reserveA.
func GetPairedAmount(amountA, reserveA, reserveB *big.Int) *big.Int {
	if amountA == nil || reserveA == nil || reserveB == nil {
		return big.NewInt(0)
	}
	if amountA.Sign() <= 0 || reserveA.Sign() <= 0 || reserveB.Sign() <= 0 {
		return big.NewInt(0)
	}

	amountB := new(big.Int).Mul(amountA, reserveB)
	return amountB.Div(amountB, reserveA)
}

// GetPoolSharePercent returns the pool ownership percentage represented by
// lpTokensMinted once the total supply reaches totalLpAfterMint. Basis-point
// precision rendered as a 2-decimal percent; the degenerate single-depositor
// case is 100%.
func GetPoolSharePercent(lpTokensMinted, totalLpAfterMint *big.Int) decimal.Decimal {
	if totalLpAfterMint == nil || totalLpAfterMint.Sign() == 0 {
		return N100
	}
	if lpTokensMinted == nil || lpTokensMinted.Sign() <= 0 {
		return N0
	}

	bps := new(big.Int).Mul(lpTokensMinted, basisPointMaxInt)
	bps.Div(bps, totalLpAfterMint)

	return decimal.NewFromBigInt(bps, 0).Div(N100)
}
