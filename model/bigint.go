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

import "math/big"

// BigInt mirrors the wire layout of arbitrary-precision integers: a sign,
// a weight and base-10000 digits. The value is
//
//	sign * sum(Digits[i] * 10000^(Weight-i))
//
// Arithmetic is out of scope here; Int converts to math/big for callers
// that need it.
type BigInt struct {
	Negative bool
	Weight   int16
	Digits   []uint16
}

var base10000 = big.NewInt(10_000)

// Int converts to a math/big integer. Digits below 10000^0, which a
// well-formed integer never carries, are truncated.
func (b BigInt) Int() *big.Int {
	x := new(big.Int)
	tmp := new(big.Int)
	for _, d := range b.Digits {
		x.Mul(x, base10000)
		x.Add(x, tmp.SetInt64(int64(d)))
	}
	exp := int(b.Weight) - len(b.Digits) + 1
	if exp > 0 {
		x.Mul(x, new(big.Int).Exp(base10000, big.NewInt(int64(exp)), nil))
	} else if exp < 0 {
		x.Quo(x, new(big.Int).Exp(base10000, big.NewInt(int64(-exp)), nil))
	}
	if b.Negative {
		x.Neg(x)
	}
	return x
}

// BigIntFromInt decomposes a math/big integer into wire digits.
func BigIntFromInt(v *big.Int) BigInt {
	neg := v.Sign() < 0
	abs := new(big.Int).Abs(v)
	mod := new(big.Int)
	var rev []uint16
	for abs.Sign() > 0 {
		abs.QuoRem(abs, base10000, mod)
		rev = append(rev, uint16(mod.Int64()))
	}
	digits := make([]uint16, len(rev))
	for i, d := range rev {
		digits[len(rev)-1-i] = d
	}
	weight := len(digits) - 1
	if weight < 0 {
		weight = 0
	}
	for len(digits) > 0 && digits[len(digits)-1] == 0 {
		digits = digits[:len(digits)-1]
	}
	return BigInt{Negative: neg, Weight: int16(weight), Digits: digits}
}

// BigIntFromInt64 is a convenience wrapper over BigIntFromInt.
func BigIntFromInt64(v int64) BigInt {
	return BigIntFromInt(big.NewInt(v))
}
