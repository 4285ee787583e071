package amm

import (
	"errors"
	"math/big"
	"testing"
)

func TestComputeDemoQuote(t *testing.T) {
	// 1 ECTO (9 decimals) at the 0.042 demo rate = 0.042 USDC (6 decimals)
	quote, err := ComputeDemoQuote("ECTO/USDC", big.NewInt(1_000_000_000), 9, 6, 50)
	if err != nil {
		t.Fatalf("ComputeDemoQuote failed: %v", err)
	}

	if quote.Source != QuoteSourceDemo {
		t.Fatal("demo quote must be tagged demo")
	}
	if quote.AmountOut.Int64() != 42_000 {
		t.Fatalf("amount out = %s, want 42000", quote.AmountOut)
	}
	if quote.Fee.Sign() != 0 || !quote.PriceImpact.IsZero() {
		t.Fatal("demo quotes carry no fee or impact")
	}
}

func TestComputeDemoQuoteUnknownPair(t *testing.T) {
	if _, err := ComputeDemoQuote("GHOST/USDC", big.NewInt(1), 9, 6, 50); !errors.Is(err, ErrPairNotFound) {
		t.Fatalf("want ErrPairNotFound, got %v", err)
	}
}

// A demo quote must never make it through a call builder, no matter how
// fresh and valid it looks.
func TestDemoQuoteNeverBuildsCall(t *testing.T) {
	quote, err := ComputeDemoQuote("ECTO/USDC", big.NewInt(1_000_000_000), 9, 6, 50)
	if err != nil {
		t.Fatalf("ComputeDemoQuote failed: %v", err)
	}

	if _, err := BuildSwapCall(testPool(), quote, DirectionAToB, "0xc01n", 0); !errors.Is(err, ErrDemoQuote) {
		t.Fatalf("want ErrDemoQuote, got %v", err)
	}
}

func TestDemoRate(t *testing.T) {
	if _, ok := DemoRate("ECTO/USDC"); !ok {
		t.Fatal("known pair missing from rate table")
	}
	if _, ok := DemoRate("ECTO/ECTO"); ok {
		t.Fatal("unknown pair present in rate table")
	}
}
