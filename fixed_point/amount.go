package fixed_point

import (
	"errors"
	"math/big"
	"strings"
)

// ErrInvalidAmount is returned when a decimal string cannot be parsed
// into a raw integer amount.
var ErrInvalidAmount = errors.New("invalid amount")

var ten = big.NewInt(10)

// Pow10 returns 10^n as a big.Int.
func Pow10(n uint8) *big.Int {
	return new(big.Int).Exp(ten, big.NewInt(int64(n)), nil)
}

// Parse converts a user-typed decimal string into the raw integer amount of a
// token with the given decimals. The fractional part is right-padded with
// zeros when the user typed fewer digits and truncated (never rounded) when
// they typed more. Negative amounts and malformed input fail with
// ErrInvalidAmount.
func Parse(s string, decimals uint8) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrInvalidAmount
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart = s[:i]
		fracPart = s[i+1:]
		if strings.IndexByte(fracPart, '.') >= 0 {
			return nil, ErrInvalidAmount
		}
	}

	if !isDigits(intPart) {
		return nil, ErrInvalidAmount
	}
	if fracPart != "" && !isDigits(fracPart) {
		return nil, ErrInvalidAmount
	}

	// pad or truncate the fraction to exactly `decimals` digits
	if len(fracPart) > int(decimals) {
		fracPart = fracPart[:decimals]
	}
	for len(fracPart) < int(decimals) {
		fracPart += "0"
	}

	raw, ok := new(big.Int).SetString(intPart+fracPart, 10)
	if !ok {
		return nil, ErrInvalidAmount
	}
	return raw, nil
}

// MustParse is Parse for known-good constants; it panics on failure.
func MustParse(s string, decimals uint8) *big.Int {
	raw, err := Parse(s, decimals)
	if err != nil {
		panic(err)
	}
	return raw
}

// Format renders a raw integer amount as a decimal string for display.
// Trailing fractional zeros are stripped and the decimal point is dropped
// when the fraction is empty. Precision is exact for any magnitude.
func Format(raw *big.Int, decimals uint8) string {
	if raw == nil || raw.Sign() == 0 {
		return "0"
	}

	abs := new(big.Int).Abs(raw)
	whole, frac := new(big.Int).QuoRem(abs, Pow10(decimals), new(big.Int))

	out := whole.String()
	if frac.Sign() > 0 {
		digits := frac.String()
		for len(digits) < int(decimals) {
			digits = "0" + digits
		}
		digits = strings.TrimRight(digits, "0")
		out += "." + digits
	}
	if raw.Sign() < 0 {
		out = "-" + out
	}
	return out
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
