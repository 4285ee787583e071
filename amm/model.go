package amm

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

// Pool describes a registered trading pair: the on-chain pool object and the
// Move type tags of its two coins. Static registry data, not live state.
type Pool struct {
	Pair        string // display key, e.g. "ECTO/USDC"
	ObjectID    string
	TypeTagA    string
	TypeTagB    string
	DecimalsA   uint8
	DecimalsB   uint8
	TradeFeeBps uint64
}

// PoolReserves is a point-in-time snapshot of one pool's live state. It is
// owned by a single quote computation and never cached across quotes;
// staleness directly produces wrong quotes.
type PoolReserves struct {
	ReserveA    *big.Int
	ReserveB    *big.Int
	LpSupply    *big.Int
	TradeFeeBps uint64
	FetchedAt   time.Time
}

// Initialized reports whether the pool can quote at all. A pool with either
// reserve at zero is treated as uninitialized.
func (r *PoolReserves) Initialized() bool {
	return r != nil &&
		r.ReserveA != nil && r.ReserveA.Sign() > 0 &&
		r.ReserveB != nil && r.ReserveB.Sign() > 0
}

// Direction of a swap relative to the pool's coin ordering.
type Direction uint8

const (
	DirectionAToB Direction = iota
	DirectionBToA
)

// QuoteSource tags where a quote's numbers came from. Live quotes are
// computed from on-chain reserves; demo quotes come from the hard-coded rate
// table and are display-only.
type QuoteSource uint8

const (
	QuoteSourceLive QuoteSource = iota
	QuoteSourceDemo
)

// SwapQuote is an immutable point-in-time swap result. A new value is created
// for every reserve refresh or input change; it is never mutated in place.
type SwapQuote struct {
	AmountIn    *big.Int
	AmountOut   *big.Int
	MinimumOut  *big.Int
	Fee         *big.Int
	PriceImpact decimal.Decimal
	SlippageBps uint64
	Source      QuoteSource
	Valid       bool
	Reason      error
	FetchedAt   time.Time
}

// DepositQuote describes a proposed liquidity deposit.
type DepositQuote struct {
	AmountA     *big.Int
	AmountB     *big.Int
	LpTokensOut *big.Int
	MinLpOut    *big.Int
	ShareOfPool decimal.Decimal
	SlippageBps uint64
	Source      QuoteSource
	Valid       bool
	Reason      error
	FetchedAt   time.Time
}

// WithdrawQuote describes a proposed liquidity withdrawal.
type WithdrawQuote struct {
	LpAmountIn  *big.Int
	AmountAOut  *big.Int
	AmountBOut  *big.Int
	MinAOut     *big.Int
	MinBOut     *big.Int
	SlippageBps uint64
	Source      QuoteSource
	Valid       bool
	Reason      error
	FetchedAt   time.Time
}
