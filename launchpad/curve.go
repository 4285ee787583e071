// Package launchpad quotes buys and sells against a virtual-reserve bonding
// curve before a token graduates to a real AMM pool. The curve is the same
// constant product applied to virtual+real reserves, so the quoting math is
// shared with amm/cp_pool.
package launchpad

import (
	"errors"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/ectoswap/ectoswap-go/amm/cp_pool"
)

// ErrCurveComplete is returned once the curve has raised its graduation
// target; trading moves to the real pool after migration.
var ErrCurveComplete = errors.New("bonding curve complete")

// Curve is a snapshot of one launchpad token's bonding-curve state.
type Curve struct {
	VirtualBase  *big.Int // virtual base reserve baked into the curve
	VirtualQuote *big.Int // virtual quote reserve baked into the curve
	RealBase     *big.Int // base tokens actually held by the curve
	RealQuote    *big.Int // quote raised so far
	TargetQuote  *big.Int // quote amount that triggers graduation
	TradeFeeBps  uint64
}

// Complete reports whether the curve has hit its graduation target.
func (c *Curve) Complete() bool {
	return c.RealQuote != nil && c.TargetQuote != nil && c.RealQuote.Cmp(c.TargetQuote) >= 0
}

// GraduationProgress returns raised/target as a 2-decimal percent, capped at
// 100.
func (c *Curve) GraduationProgress() decimal.Decimal {
	if c.TargetQuote == nil || c.TargetQuote.Sign() == 0 {
		return decimal.Zero
	}
	raised := big.NewInt(0)
	if c.RealQuote != nil {
		raised = c.RealQuote
	}

	pct := decimal.NewFromBigInt(raised, 0).
		Div(decimal.NewFromBigInt(c.TargetQuote, 0)).
		Mul(decimal.NewFromInt(100)).
		Round(2)
	if pct.GreaterThan(decimal.NewFromInt(100)) {
		return decimal.NewFromInt(100)
	}
	return pct
}

// CurveQuote is the result of quoting one buy or sell against the curve.
type CurveQuote struct {
	AmountIn    *big.Int
	AmountOut   *big.Int
	MinimumOut  *big.Int
	Fee         *big.Int
	PriceImpact decimal.Decimal
}

// BuyQuote quotes spending quoteIn of the quote coin for base tokens.
func (c *Curve) BuyQuote(quoteIn *big.Int, slippageBps uint64) (*CurveQuote, error) {
	if c.Complete() {
		return nil, ErrCurveComplete
	}
	reserveQuote, reserveBase := c.effectiveReserves()
	return c.quote(quoteIn, reserveQuote, reserveBase, slippageBps)
}

// SellQuote quotes selling baseIn of the base token back into the curve.
func (c *Curve) SellQuote(baseIn *big.Int, slippageBps uint64) (*CurveQuote, error) {
	if c.Complete() {
		return nil, ErrCurveComplete
	}
	reserveQuote, reserveBase := c.effectiveReserves()
	return c.quote(baseIn, reserveBase, reserveQuote, slippageBps)
}

func (c *Curve) quote(amountIn, reserveIn, reserveOut *big.Int, slippageBps uint64) (*CurveQuote, error) {
	if amountIn == nil || amountIn.Sign() <= 0 {
		return nil, errors.New("amount in must be greater than zero")
	}

	amountOut := cp_pool.GetAmountOut(amountIn, reserveIn, reserveOut, c.TradeFeeBps)
	if amountOut.Sign() == 0 {
		return nil, errors.New("amount in too small to quote")
	}

	return &CurveQuote{
		AmountIn:    new(big.Int).Set(amountIn),
		AmountOut:   amountOut,
		MinimumOut:  cp_pool.GetMinAmountWithSlippage(amountOut, slippageBps),
		Fee:         cp_pool.GetTradeFee(amountIn, c.TradeFeeBps),
		PriceImpact: cp_pool.GetPriceImpact(amountIn, amountOut, reserveIn, reserveOut),
	}, nil
}

// effectiveReserves folds real balances into the virtual reserves the curve
// prices against.
func (c *Curve) effectiveReserves() (quote, base *big.Int) {
	quote = new(big.Int)
	if c.VirtualQuote != nil {
		quote.Set(c.VirtualQuote)
	}
	if c.RealQuote != nil {
		quote.Add(quote, c.RealQuote)
	}

	base = new(big.Int)
	if c.VirtualBase != nil {
		base.Set(c.VirtualBase)
	}
	if c.RealBase != nil {
		base.Add(base, c.RealBase)
	}
	return quote, base
}
