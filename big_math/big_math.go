package big_math

import (
	"errors"
	"math/big"
)

var one = big.NewInt(1)

// Isqrt returns the exact integer square root of n, the largest x with
// x*x <= n. Newton iteration on integers; no floating point involved.
func Isqrt(n *big.Int) *big.Int {
	if n.Sign() < 0 {
		panic("isqrt on negative value")
	}
	if n.Sign() == 0 {
		return big.NewInt(0)
	}

	// start from 2^ceil(bitlen/2), always >= sqrt(n)
	x := new(big.Int).Lsh(one, uint((n.BitLen()+1)/2))
	for {
		// y = (x + n/x) / 2
		y := new(big.Int).Div(n, x)
		y.Add(y, x)
		y.Rsh(y, 1)
		if y.Cmp(x) >= 0 {
			return x
		}
		x = y
	}
}

// MulDiv computes x*y/denominator with the full intermediate product,
// rounding up when roundUp is set.
func MulDiv(x, y, denominator *big.Int, roundUp bool) (*big.Int, error) {
	if denominator.Sign() == 0 {
		return nil, errors.New("MulDiv: division by zero")
	}

	num := new(big.Int).Mul(x, y)
	div, mod := new(big.Int).QuoRem(num, denominator, new(big.Int))

	if roundUp && mod.Sign() != 0 {
		div.Add(div, one)
	}
	return div, nil
}

// Min returns the smaller of x and y.
func Min(x, y *big.Int) *big.Int {
	if x.Cmp(y) < 0 {
		return x
	}
	return y
}
