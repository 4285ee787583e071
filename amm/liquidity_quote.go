package amm

import (
	"math/big"

	"github.com/ectoswap/ectoswap-go/amm/cp_pool"
)

// ComputeDepositQuote produces a deposit quote for (amountA, amountB) against
// a reserve snapshot. An empty pool takes the amounts as given (first
// deposit); an initialized pool mints against the limiting side.
func ComputeDepositQuote(reserves *PoolReserves, amountA, amountB *big.Int, slippageBps uint64) (*DepositQuote, error) {
	if reserves == nil {
		return nil, ErrZeroReserves
	}
	if amountA == nil || amountB == nil || amountA.Sign() <= 0 || amountB.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}

	lpOut := cp_pool.GetLpTokensForDeposit(amountA, amountB, reserves.ReserveA, reserves.ReserveB, reserves.LpSupply)
	if lpOut.Sign() == 0 {
		return nil, ErrInvalidAmount
	}

	totalAfter := new(big.Int).Add(lpSupplyOrZero(reserves), lpOut)

	return &DepositQuote{
		AmountA:     new(big.Int).Set(amountA),
		AmountB:     new(big.Int).Set(amountB),
		LpTokensOut: lpOut,
		MinLpOut:    cp_pool.GetMinAmountWithSlippage(lpOut, slippageBps),
		ShareOfPool: cp_pool.GetPoolSharePercent(lpOut, totalAfter),
		SlippageBps: slippageBps,
		Source:      QuoteSourceLive,
		Valid:       true,
		FetchedAt:   reserves.FetchedAt,
	}, nil
}

// ComputeWithdrawQuote produces a withdrawal quote for burning lpAmount of
// the pool's LP supply.
func ComputeWithdrawQuote(reserves *PoolReserves, lpAmount *big.Int, slippageBps uint64) (*WithdrawQuote, error) {
	if !reserves.Initialized() {
		return nil, ErrZeroReserves
	}
	if lpAmount == nil || lpAmount.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}
	supply := lpSupplyOrZero(reserves)
	if supply.Sign() == 0 || lpAmount.Cmp(supply) > 0 {
		return nil, ErrInvalidAmount
	}

	amountA, amountB := cp_pool.GetWithdrawAmounts(lpAmount, reserves.ReserveA, reserves.ReserveB, supply)

	return &WithdrawQuote{
		LpAmountIn:  new(big.Int).Set(lpAmount),
		AmountAOut:  amountA,
		AmountBOut:  amountB,
		MinAOut:     cp_pool.GetMinAmountWithSlippage(amountA, slippageBps),
		MinBOut:     cp_pool.GetMinAmountWithSlippage(amountB, slippageBps),
		SlippageBps: slippageBps,
		Source:      QuoteSourceLive,
		Valid:       true,
		FetchedAt:   reserves.FetchedAt,
	}, nil
}

func lpSupplyOrZero(reserves *PoolReserves) *big.Int {
	if reserves.LpSupply == nil {
		return big.NewInt(0)
	}
	return reserves.LpSupply
}
