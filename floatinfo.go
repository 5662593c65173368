// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flt2dec2flt

// floatInfo describes the bit layout of an IEEE-754 binary float so the
// rest of the package can work with a single uint64 mantissa regardless
// of whether the caller passed a float32 or a float64.
type floatInfo struct {
	mantbits uint
	expbits  uint
	bias     int
}

var float32info = floatInfo{mantbits: 23, expbits: 8, bias: -127}
var float64info = floatInfo{mantbits: 52, expbits: 11, bias: -1023}

// maxExp2 returns the binary exponent of the decoded mantissa for the
// largest finite value this width can hold (mant in [2^mantbits,
// 2^(mantbits+1))), used by dec2flt's overflow shortcut.
func (flt *floatInfo) maxExp2() int {
	allOnes := 1<<flt.expbits - 1
	return (allOnes - 1) + flt.bias - int(flt.mantbits)
}

// minExp2 returns the binary exponent of the smallest subnormal (mant ==
// 1), used by dec2flt's underflow shortcut.
func (flt *floatInfo) minExp2() int {
	return 1 + flt.bias - int(flt.mantbits)
}

// maxSigDigits is the minimum buffer size required by the shortest mode
// for either float width: ceil(53*log10(2) + 1) = 17, which also covers
// float32 (ceil(24*log10(2) + 1) = 9).
const maxSigDigits = 17

// PreformatShortestBufLen is the minimum buffer length that must be
// passed to PreformatShortest32 or PreformatShortest64.
const PreformatShortestBufLen = maxSigDigits

// PreformatExactFixedBaseBufLen is the minimum base buffer length
// (before adding the requested fractional digit count) that must be
// passed to PreformatExactFixed32 or PreformatExactFixed64. See the
// comment on estimateMaxBufLen for where 826 comes from.
const PreformatExactFixedBaseBufLen = 826
