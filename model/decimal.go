// Copyright 2025 Edgewire, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package model

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// Decimal mirrors the wire layout of arbitrary-precision decimals: sign,
// weight, display scale and base-10000 digits. The value is
//
//	sign * sum(Digits[i] * 10000^(Weight-i))
//
// with Scale fractional decimal digits displayed.
type Decimal struct {
	Negative bool
	Weight   int16
	Scale    uint16
	Digits   []uint16
}

// Decimal converts to a shopspring decimal carrying the exact value.
// Scale is presentation metadata and does not affect the result.
func (d Decimal) Decimal() decimal.Decimal {
	coef := new(big.Int)
	tmp := new(big.Int)
	for _, dig := range d.Digits {
		coef.Mul(coef, base10000)
		coef.Add(coef, tmp.SetInt64(int64(dig)))
	}
	if d.Negative {
		coef.Neg(coef)
	}
	exp := 4 * (int(d.Weight) - len(d.Digits) + 1)
	return decimal.NewFromBigInt(coef, int32(exp))
}

// DecimalFromDecimal decomposes a shopspring decimal into wire digits.
func DecimalFromDecimal(v decimal.Decimal) (Decimal, error) {
	coef := new(big.Int).Set(v.Coefficient())
	exp := int(v.Exponent())
	neg := coef.Sign() < 0
	coef.Abs(coef)

	scale := 0
	if exp < 0 {
		scale = -exp
	}
	if scale > math.MaxUint16 {
		return Decimal{}, ErrOutOfRange
	}

	// Align the exponent to a whole number of base-10000 digits.
	shift := ((exp % 4) + 4) % 4
	if shift != 0 {
		coef.Mul(coef, pow10(shift))
		exp -= shift
	}

	mod := new(big.Int)
	var rev []uint16
	for coef.Sign() > 0 {
		coef.QuoRem(coef, base10000, mod)
		rev = append(rev, uint16(mod.Int64()))
	}
	digits := make([]uint16, len(rev))
	for i, dig := range rev {
		digits[len(rev)-1-i] = dig
	}
	weight := len(digits) - 1 + exp/4
	if len(digits) == 0 {
		weight = 0
	}
	for len(digits) > 0 && digits[len(digits)-1] == 0 {
		digits = digits[:len(digits)-1]
	}
	if weight > math.MaxInt16 || weight < math.MinInt16 {
		return Decimal{}, ErrOutOfRange
	}
	return Decimal{
		Negative: neg,
		Weight:   int16(weight),
		Scale:    uint16(scale),
		Digits:   digits,
	}, nil
}

// DecimalFromInt64 is a convenience wrapper over DecimalFromDecimal. Int64
// magnitudes always fit the wire range.
func DecimalFromInt64(v int64) Decimal {
	d, _ := DecimalFromDecimal(decimal.NewFromInt(v))
	return d
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
