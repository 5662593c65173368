// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flt2dec2flt

import "math"

// decKind classifies a decoded float: the biased-exponent field is
// switched into an explicit NaN/Inf/Zero/Finite sum so the digit
// kernels only ever see the Finite payload.
type decKind uint8

const (
	kindFinite decKind = iota
	kindZero
	kindInf
	kindNaN
)

// decoded is the Finite payload: the interval of real numbers rounding
// to this float is [(mant-minus)*2^exp, (mant+plus)*2^exp], closed when
// inclusive, open otherwise.
type decoded struct {
	mant      uint64
	minus     uint64
	plus      uint64
	exp       int16
	inclusive bool
}

// decode splits bits (the raw IEEE-754 representation of a float of the
// width described by flt) into a sign and a classified, decoded value.
//
// For a finite value the mantissa is left-shifted so that the interval
// half-widths minus and plus become integers at a common exponent. In
// general the rounding interval extends half an ulp on either side, so
// mant is doubled and minus = plus = 1. At the lower boundary of a
// binade (raw mantissa zero, above the smallest normal exponent) the
// neighbor below is half an ulp closer, so mant is quadrupled and the
// half-widths become minus = 1, plus = 2.
func decode(bits uint64, flt *floatInfo) (neg bool, kind decKind, dec decoded) {
	neg = bits>>(flt.expbits+flt.mantbits) != 0
	rawExp := int(bits>>flt.mantbits) & (1<<flt.expbits - 1)
	rawMant := bits & (uint64(1)<<flt.mantbits - 1)

	allOnes := 1<<flt.expbits - 1
	switch {
	case rawExp == allOnes:
		if rawMant != 0 {
			kind = kindNaN
		} else {
			kind = kindInf
		}
		return
	case rawExp == 0 && rawMant == 0:
		kind = kindZero
		return
	}

	kind = kindFinite
	subnormal := rawExp == 0

	var mant uint64
	var exp int
	if subnormal {
		mant = rawMant
		exp = 1 + flt.bias - int(flt.mantbits)
	} else {
		mant = rawMant | uint64(1)<<flt.mantbits
		exp = rawExp + flt.bias - int(flt.mantbits)
	}

	// Round-to-even: the interval endpoints belong to this float exactly
	// when its mantissa is even.
	inclusive := mant%2 == 0

	if !subnormal && rawMant == 0 && rawExp > 1 {
		dec = decoded{mant: mant << 2, minus: 1, plus: 2, exp: int16(exp - 2), inclusive: inclusive}
	} else {
		dec = decoded{mant: mant << 1, minus: 1, plus: 1, exp: int16(exp - 1), inclusive: inclusive}
	}
	return
}

// decode32 decodes a float32's raw bit pattern.
func decode32(f float32) (neg bool, kind decKind, dec decoded) {
	return decode(uint64(math.Float32bits(f)), &float32info)
}

// decode64 decodes a float64's raw bit pattern.
func decode64(f float64) (neg bool, kind decKind, dec decoded) {
	return decode(math.Float64bits(f), &float64info)
}
