// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flt2dec2flt

import "math/big"

// tenPower is a power-of-ten cache entry: f*2^e approximates 10^k, with
// f normalized (top bit set) and k the decimal exponent.
type tenPower struct {
	f uint64
	e int16
	k int16
}

// cachedPowStride is the stride, in decimal exponent, between
// consecutive cache entries. 8 decimal digits (~26.6 bits) is narrower
// than the 28-bit [-60,-32] window the digit generators ask for, so a
// lookup always finds an entry inside any such window.
const cachedPowStride = 8

const (
	cachedPowMinK = -348
	cachedPowMaxK = 340
)

// cachedPowers holds one entry per multiple of cachedPowStride between
// cachedPowMinK and cachedPowMaxK, sorted ascending by k (and, since both
// grow together, ascending by e too). Computed once in init.
var cachedPowers []tenPower

// init derives the power-of-ten cache from math/big.Float at high
// precision instead of hand-transcribing the classical 87-entry hex
// literal table. For each cached k, 10^k is computed at 200 bits of
// precision, normalized via Float.MantExp into a [0.5,1) mantissa and a
// binary exponent, and rounded to exactly 64 mantissa bits
// (round-to-nearest-even, the zero-value Float default). Computed, not
// copied, so a silent transcription error is impossible.
func init() {
	const prec = 200
	n := (cachedPowMaxK-cachedPowMinK)/cachedPowStride + 1
	cachedPowers = make([]tenPower, 0, n)
	for k := cachedPowMinK; k <= cachedPowMaxK; k += cachedPowStride {
		x := tenToThe(k, prec)

		var mant big.Float
		mant.SetPrec(prec)
		exp := x.MantExp(&mant)

		var scaled big.Float
		scaled.SetPrec(prec)
		scaled.SetMantExp(&mant, 64)

		var rounded big.Float
		rounded.SetPrec(64)
		rounded.Set(&scaled)

		f, _ := rounded.Uint64()
		cachedPowers = append(cachedPowers, tenPower{f: f, e: int16(exp - 64), k: int16(k)})
	}
}

// tenToThe computes 10^k as a big.Float at the given precision, for
// either sign of k.
func tenToThe(k int, prec uint) *big.Float {
	ten := new(big.Float).SetPrec(prec).SetInt64(10)
	if k == 0 {
		return new(big.Float).SetPrec(prec).SetInt64(1)
	}
	neg := k < 0
	if neg {
		k = -k
	}
	result := new(big.Float).SetPrec(prec).SetInt64(1)
	base := ten
	for k > 0 {
		if k&1 == 1 {
			result.Mul(result, base)
		}
		k >>= 1
		if k > 0 {
			base = new(big.Float).SetPrec(prec).Mul(base, base)
		}
	}
	if neg {
		result = new(big.Float).SetPrec(prec).Quo(new(big.Float).SetPrec(prec).SetInt64(1), result)
	}
	return result
}

// cachedPowerByK returns the cache entry for decimal exponent k by
// direct index arithmetic. k must lie on the stride ladder within
// [cachedPowMinK, cachedPowMaxK]; tenExpFp (dec2flt.go) decomposes an
// arbitrary decimal exponent into a ladder entry plus a small exact
// remainder handled separately.
func cachedPowerByK(k int) (tenPower, bool) {
	if k < cachedPowMinK || k > cachedPowMaxK || (k-cachedPowMinK)%cachedPowStride != 0 {
		return tenPower{}, false
	}
	return cachedPowers[(k-cachedPowMinK)/cachedPowStride], true
}

// cachedPower returns the entry whose binary exponent e falls inside
// [alpha, gamma], by direct index arithmetic rather than a search: e(k)
// tracks k*log2(10) to within one unit (the table construction keeps f
// within [2^63, 2^64)), so inverting that relation with the same
// log10(2) rational estimateDecimalExponent uses lands on the right
// entry, or its immediate neighbor, every time.
func cachedPower(alpha, gamma int) tenPower {
	n := alpha + 64
	num := n * log10Over2Num
	var kMin int
	if num >= 0 {
		kMin = (num + log10Over2Den - 1) / log10Over2Den
	} else {
		kMin = -((-num) / log10Over2Den)
	}

	idx := (kMin - cachedPowMinK + cachedPowStride - 1) / cachedPowStride
	switch {
	case idx < 0:
		idx = 0
	case idx >= len(cachedPowers):
		idx = len(cachedPowers) - 1
	}

	entry := cachedPowers[idx]
	switch {
	case int(entry.e) < alpha && idx+1 < len(cachedPowers):
		idx++
		entry = cachedPowers[idx]
	case int(entry.e) > gamma && idx > 0:
		idx--
		entry = cachedPowers[idx]
	}
	if int(entry.e) < alpha || int(entry.e) > gamma {
		panic("flt2dec2flt: no cached power of ten in requested exponent range")
	}
	return entry
}
