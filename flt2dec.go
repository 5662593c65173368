// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flt2dec2flt

// flt2dec.go dispatches the two formatting modes between the fast Grisu
// path (grisu.go) and the always-correct Dragon fallback (dragon.go):
// try the cheap path first, fall back only when it abstains.

// formatShortest fills buf with the shortest decimal digit sequence
// that converts back to exactly the decoded value and returns the
// digits written (a subslice of buf) and the decimal exponent k such
// that the represented value is 0.digits * 10^k. buf must be at least
// maxSigDigits bytes.
func formatShortest(dec *decoded, buf []byte) (digits []byte, k int16) {
	if digits, k, ok := grisuShortest(dec, buf); ok {
		return digits, k
	}
	return dragonShortest(dec, buf)
}

// formatExact fills buf with up to len(buf) decimal digits of the
// decoded value, stopping early once the next digit's place value would
// fall below 10^limit, and rounds the last emitted digit. It returns
// the digits written and the decimal exponent k of the first digit (or,
// when no digit survives the limit, k == limit and an empty slice).
func formatExact(dec *decoded, buf []byte, limit int16) (digits []byte, k int16) {
	if digits, k, ok := grisuExact(dec, buf, limit); ok {
		return digits, k
	}
	return dragonExact(dec, buf, limit)
}
