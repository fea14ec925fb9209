// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// FormatFixed renders v with prec decimals, rounding ties away from zero.
// Ties are decided on the exact binary value: 3.125 renders as "3.13",
// while 1.005, stored as 1.00499..., renders as "1.00".
func FormatFixed(v float64, prec int) string {
	if prec < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', prec, 64)
	}

	r := new(big.Rat).SetFloat64(v)
	neg := r.Sign() < 0
	r.Abs(r)
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(prec)), nil)
	r.Mul(r, new(big.Rat).SetInt(scale))

	// floor(r + 1/2)
	two := big.NewInt(2)
	num := new(big.Int).Mul(r.Num(), two)
	num.Add(num, r.Denom())
	n := num.Quo(num, new(big.Int).Mul(r.Denom(), two))

	digits := n.String()
	if prec > 0 {
		if len(digits) <= prec {
			digits = strings.Repeat("0", prec-len(digits)+1) + digits
		}
		digits = digits[:len(digits)-prec] + "." + digits[len(digits)-prec:]
	}
	if neg {
		digits = "-" + digits
	}
	return digits
}
