package amm

import (
	"errors"
	"math/big"
	"testing"
	"time"
)

func testReserves() *PoolReserves {
	return &PoolReserves{
		ReserveA:    big.NewInt(1_000_000_000),
		ReserveB:    big.NewInt(1_000_000_000),
		LpSupply:    big.NewInt(1_000_000_000),
		TradeFeeBps: 30,
		FetchedAt:   time.Now(),
	}
}

func TestComputeSwapQuote(t *testing.T) {
	quote, err := ComputeSwapQuote(testReserves(), DirectionAToB, big.NewInt(10_000_000), 50)
	if err != nil {
		t.Fatalf("ComputeSwapQuote failed: %v", err)
	}

	if !quote.Valid {
		t.Fatal("quote must be valid")
	}
	if quote.Source != QuoteSourceLive {
		t.Fatal("quote must be tagged live")
	}
	if quote.AmountOut.Int64() != 9_871_580 {
		t.Fatalf("amount out = %s, want 9871580", quote.AmountOut)
	}
	// floor(9871580 * 9950 / 10000)
	if quote.MinimumOut.Int64() != 9_822_222 {
		t.Fatalf("minimum out = %s, want 9822222", quote.MinimumOut)
	}
	if quote.Fee.Int64() != 30_000 {
		t.Fatalf("fee = %s, want 30000", quote.Fee)
	}
	if quote.PriceImpact.String() != "1.28" {
		t.Fatalf("price impact = %s, want 1.28", quote.PriceImpact)
	}
}

func TestComputeSwapQuoteDirection(t *testing.T) {
	reserves := testReserves()
	reserves.ReserveB = big.NewInt(500_000_000)

	aToB, err := ComputeSwapQuote(reserves, DirectionAToB, big.NewInt(1_000_000), 0)
	if err != nil {
		t.Fatalf("a->b failed: %v", err)
	}
	bToA, err := ComputeSwapQuote(reserves, DirectionBToA, big.NewInt(1_000_000), 0)
	if err != nil {
		t.Fatalf("b->a failed: %v", err)
	}

	// selling into the deeper side must pay out less than buying from it
	if aToB.AmountOut.Cmp(bToA.AmountOut) >= 0 {
		t.Fatalf("direction ignored: %s vs %s", aToB.AmountOut, bToA.AmountOut)
	}
}

func TestComputeSwapQuoteFailures(t *testing.T) {
	empty := &PoolReserves{ReserveA: big.NewInt(0), ReserveB: big.NewInt(1), FetchedAt: time.Now()}
	if _, err := ComputeSwapQuote(empty, DirectionAToB, big.NewInt(100), 50); !errors.Is(err, ErrZeroReserves) {
		t.Fatalf("want ErrZeroReserves, got %v", err)
	}
	if _, err := ComputeSwapQuote(nil, DirectionAToB, big.NewInt(100), 50); !errors.Is(err, ErrZeroReserves) {
		t.Fatalf("want ErrZeroReserves for nil snapshot, got %v", err)
	}
	if _, err := ComputeSwapQuote(testReserves(), DirectionAToB, big.NewInt(0), 50); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("want ErrInvalidAmount, got %v", err)
	}
	if _, err := ComputeSwapQuote(testReserves(), DirectionAToB, nil, 50); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("want ErrInvalidAmount for nil amount, got %v", err)
	}
}

func TestComputeSwapQuoteExactOut(t *testing.T) {
	quote, err := ComputeSwapQuoteExactOut(testReserves(), DirectionAToB, big.NewInt(9_871_580), 50)
	if err != nil {
		t.Fatalf("ComputeSwapQuoteExactOut failed: %v", err)
	}
	if quote.AmountIn.Int64() != 10_000_000 {
		t.Fatalf("amount in = %s, want 10000000", quote.AmountIn)
	}
	// exact-out: the bound is the requested output itself
	if quote.MinimumOut.Cmp(quote.AmountOut) != 0 {
		t.Fatalf("minimum out = %s, want %s", quote.MinimumOut, quote.AmountOut)
	}
}

func TestComputeSwapQuoteExactOutExcessive(t *testing.T) {
	_, err := ComputeSwapQuoteExactOut(testReserves(), DirectionAToB, big.NewInt(1_000_000_000), 50)
	if !errors.Is(err, ErrExcessiveOutput) {
		t.Fatalf("want ErrExcessiveOutput, got %v", err)
	}
}
