// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flt2dec2flt

import "math/bits"

// fp is a compact floating-point pair (f, e) representing f * 2^e, not
// necessarily normalized.
type fp struct {
	f uint64
	e int16
}

// normalize left-shifts f so its top bit is set, adjusting e so the
// represented value is unchanged. A normalized fp has f's MSB set, i.e.
// f is in [2^63, 2^64).
func (x fp) normalize() fp {
	if x.f == 0 {
		return x
	}
	shift := bits.LeadingZeros64(x.f)
	return fp{f: x.f << uint(shift), e: x.e - int16(shift)}
}

// mul returns x * y, keeping the top 64 bits of the 128-bit product as
// the new mantissa, with the exponent adjusted by +64 to compensate and
// the dropped half rounded to nearest. The caller is responsible for
// tracking the accumulated error (up to 1 ulp of the result, plus 1
// more per operand that was itself inexact).
func (x fp) mul(y fp) fp {
	hi, lo := bits.Mul64(x.f, y.f)
	// Round the dropped low 64 bits to the nearest mantissa value.
	if lo&(1<<63) != 0 {
		hi++
	}
	return fp{f: hi, e: x.e + y.e + 64}
}
