package cp_pool

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Fee and share math constants for the constant-product pool program
var (
	// BasisPointMax represents the maximum basis points (10,000 = 100%)
	BasisPointMax uint64 = 10_000

	// MinimumLiquidity is burned out of the first LP mint so the pool can
	// never be fully drained back to zero supply
	MinimumLiquidity = big.NewInt(1_000)

	// DefaultTradeFeeBps is the trade fee applied when a pool does not
	// carry its own fee setting (30 = 0.3%)
	DefaultTradeFeeBps uint64 = 30

	basisPointMaxInt = big.NewInt(10_000)

	N0   = decimal.Zero
	N100 = decimal.NewFromInt(100)
)
