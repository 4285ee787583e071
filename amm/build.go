package amm

import (
	"math/big"
	"time"

	"github.com/ectoswap/ectoswap-go/amm/cp_pool"
)

// DefaultQuoteMaxAge bounds how old a quote may be when call parameters are
// built from it. Reserves drift with every on-chain trade, so a quote past
// this age must be recomputed, not submitted.
const DefaultQuoteMaxAge = 15 * time.Second

// SwapCall is the exact argument set the submission layer embeds into the
// swap entry call. Numeric fields are raw integers, never decimal strings.
type SwapCall struct {
	PoolID        string
	InputCoinRef  string
	MinimumOutRaw *big.Int
	Direction     Direction
	TypeTagA      string
	TypeTagB      string
}

// DepositCall carries the add-liquidity entry call arguments.
type DepositCall struct {
	PoolID      string
	CoinARef    string
	CoinBRef    string
	MinLpOutRaw *big.Int
	TypeTagA    string
	TypeTagB    string
}

// WithdrawCall carries the remove-liquidity entry call arguments.
type WithdrawCall struct {
	PoolID     string
	LpCoinRef  string
	MinAOutRaw *big.Int
	MinBOutRaw *big.Int
	TypeTagA   string
	TypeTagB   string
}

// BuildSwapCall translates a validated quote into swap entry-call arguments.
// The minimum-out bound is recomputed from the quote passed in right now, so
// a caller can never smuggle in a bound derived from older reserves. Fails
// with ErrStaleQuote when the quote is invalid or older than maxAge
// (DefaultQuoteMaxAge when maxAge is 0), and with ErrDemoQuote for demo-rate
// quotes. Passing a nil quote is a caller bug, not a runtime condition.
func BuildSwapCall(pool Pool, quote *SwapQuote, direction Direction, inputCoinRef string, maxAge time.Duration) (*SwapCall, error) {
	if quote == nil {
		panic("amm: BuildSwapCall called with nil quote")
	}
	if quote.Source == QuoteSourceDemo {
		return nil, ErrDemoQuote
	}
	if err := checkFresh(quote.Valid, quote.FetchedAt, maxAge); err != nil {
		return nil, err
	}

	return &SwapCall{
		PoolID:        pool.ObjectID,
		InputCoinRef:  inputCoinRef,
		MinimumOutRaw: cp_pool.GetMinAmountWithSlippage(quote.AmountOut, quote.SlippageBps),
		Direction:     direction,
		TypeTagA:      pool.TypeTagA,
		TypeTagB:      pool.TypeTagB,
	}, nil
}

// BuildDepositCall translates a validated deposit quote into add-liquidity
// entry-call arguments.
func BuildDepositCall(pool Pool, quote *DepositQuote, coinARef, coinBRef string, maxAge time.Duration) (*DepositCall, error) {
	if quote == nil {
		panic("amm: BuildDepositCall called with nil quote")
	}
	if quote.Source == QuoteSourceDemo {
		return nil, ErrDemoQuote
	}
	if err := checkFresh(quote.Valid, quote.FetchedAt, maxAge); err != nil {
		return nil, err
	}

	return &DepositCall{
		PoolID:      pool.ObjectID,
		CoinARef:    coinARef,
		CoinBRef:    coinBRef,
		MinLpOutRaw: cp_pool.GetMinAmountWithSlippage(quote.LpTokensOut, quote.SlippageBps),
		TypeTagA:    pool.TypeTagA,
		TypeTagB:    pool.TypeTagB,
	}, nil
}

// BuildWithdrawCall translates a validated withdrawal quote into
// remove-liquidity entry-call arguments.
func BuildWithdrawCall(pool Pool, quote *WithdrawQuote, lpCoinRef string, maxAge time.Duration) (*WithdrawCall, error) {
	if quote == nil {
		panic("amm: BuildWithdrawCall called with nil quote")
	}
	if quote.Source == QuoteSourceDemo {
		return nil, ErrDemoQuote
	}
	if err := checkFresh(quote.Valid, quote.FetchedAt, maxAge); err != nil {
		return nil, err
	}

	return &WithdrawCall{
		PoolID:     pool.ObjectID,
		LpCoinRef:  lpCoinRef,
		MinAOutRaw: cp_pool.GetMinAmountWithSlippage(quote.AmountAOut, quote.SlippageBps),
		MinBOutRaw: cp_pool.GetMinAmountWithSlippage(quote.AmountBOut, quote.SlippageBps),
		TypeTagA:   pool.TypeTagA,
		TypeTagB:   pool.TypeTagB,
	}, nil
}

func checkFresh(valid bool, fetchedAt time.Time, maxAge time.Duration) error {
	if !valid {
		return ErrStaleQuote
	}
	if maxAge == 0 {
		maxAge = DefaultQuoteMaxAge
	}
	if fetchedAt.IsZero() || time.Since(fetchedAt) > maxAge {
		return ErrStaleQuote
	}
	return nil
}
