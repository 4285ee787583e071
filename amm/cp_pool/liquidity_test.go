package cp_pool

import (
	"math/big"
	"testing"
)

func TestFirstDepositMint(t *testing.T) {
	zero := big.NewInt(0)

	// isqrt(1000*1000) == MinimumLiquidity exactly, everything is burned
	got := GetLpTokensForDeposit(big.NewInt(1000), big.NewInt(1000), zero, zero, zero)
	if got.Sign() != 0 {
		t.Fatalf("minimum first deposit = %s, want 0", got)
	}

	// isqrt(2e6 * 8e6) = 4e6
	got = GetLpTokensForDeposit(big.NewInt(2_000_000), big.NewInt(8_000_000), zero, zero, zero)
	want := big.NewInt(3_999_000)
	if got.Cmp(want) != 0 {
		t.Fatalf("first deposit mint = %s, want %s", got, want)
	}
}

func TestSubsequentDepositMintsLimitingSide(t *testing.T) {
	reserveA := big.NewInt(1_000_000_000)
	reserveB := big.NewInt(500_000_000)
	totalLp := big.NewInt(700_000_000)

	// balanced deposit: both sides agree
	got := GetLpTokensForDeposit(big.NewInt(5_000_000), big.NewInt(2_500_000), reserveA, reserveB, totalLp)
	want := big.NewInt(3_500_000)
	if got.Cmp(want) != 0 {
		t.Fatalf("balanced deposit mint = %s, want %s", got, want)
	}

	// extra B changes nothing: A stays the limiting side
	got = GetLpTokensForDeposit(big.NewInt(5_000_000), big.NewInt(9_999_999), reserveA, reserveB, totalLp)
	if got.Cmp(want) != 0 {
		t.Fatalf("unbalanced deposit mint = %s, want %s", got, want)
	}
}

func TestDepositZeroAmounts(t *testing.T) {
	r := big.NewInt(1_000_000)
	lp := big.NewInt(1_000_000)

	if GetLpTokensForDeposit(big.NewInt(0), big.NewInt(1), r, r, lp).Sign() != 0 {
		t.Fatal("zero amountA must mint zero")
	}
	if GetLpTokensForDeposit(big.NewInt(1), nil, r, r, lp).Sign() != 0 {
		t.Fatal("nil amountB must mint zero")
	}
}

func TestWithdrawAmounts(t *testing.T) {
	amountA, amountB := GetWithdrawAmounts(
		big.NewInt(3_500_000),
		big.NewInt(1_000_000_000), big.NewInt(500_000_000),
		big.NewInt(700_000_000),
	)
	if amountA.Int64() != 5_000_000 || amountB.Int64() != 2_500_000 {
		t.Fatalf("withdraw = (%s, %s), want (5000000, 2500000)", amountA, amountB)
	}
}

// Rounding dust stays in the pool: withdrawing everything in two halves never
// pays out more than the reserves.
func TestWithdrawDustFavorsPool(t *testing.T) {
	reserveA := big.NewInt(1_000_000_001)
	reserveB := big.NewInt(333_333_333)
	totalLp := big.NewInt(700_000_000)
	half := big.NewInt(350_000_000)

	a1, b1 := GetWithdrawAmounts(half, reserveA, reserveB, totalLp)
	a2, b2 := GetWithdrawAmounts(half, reserveA, reserveB, totalLp)

	if new(big.Int).Add(a1, a2).Cmp(reserveA) > 0 {
		t.Fatal("withdrawals overdraw reserve A")
	}
	if new(big.Int).Add(b1, b2).Cmp(reserveB) > 0 {
		t.Fatal("withdrawals overdraw reserve B")
	}
}

func TestGetPairedAmount(t *testing.T) {
	got := GetPairedAmount(big.NewInt(5_000_000), big.NewInt(1_000_000_000), big.NewInt(500_000_000))
	if got.Int64() != 2_500_000 {
		t.Fatalf("paired amount = %s, want 2500000", got)
	}
}

func TestGetPoolSharePercent(t *testing.T) {
	// 3.5e6 of 703.5e6 total: floor(49.75 bps) rendered as 0.49%
	got := GetPoolSharePercent(big.NewInt(3_500_000), big.NewInt(703_500_000))
	if got.String() != "0.49" {
		t.Fatalf("pool share = %s, want 0.49", got)
	}

	// degenerate single-depositor case
	got = GetPoolSharePercent(big.NewInt(123), big.NewInt(0))
	if got.String() != "100" {
		t.Fatalf("pool share with zero supply = %s, want 100", got)
	}

	got = GetPoolSharePercent(big.NewInt(700_000_000), big.NewInt(700_000_000))
	if got.String() != "100" {
		t.Fatalf("sole depositor share = %s, want 100", got)
	}
}
