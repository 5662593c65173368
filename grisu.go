// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flt2dec2flt

import "math/bits"

// grisuAlpha, grisuGamma bound the shared binary exponent the scaled
// values must land in before digit generation starts. The 28-bit window
// is wider than the cache stride (8 decimal exponents, about 26.6 bits),
// so a suitable cached power always exists, and keeps the integral part
// of every scaled value within 32 bits.
const (
	grisuAlpha = -60
	grisuGamma = -32
)

// grisuExactErrUlp is the starting error budget for the exact-mode
// value approximation, in units of the scaled representation's last
// bit: one ulp for the cached power's own stored rounding, one for the
// rounding multiplication, and slack on top. Erring conservative only
// means an occasional needless Dragon fallback, never a wrong digit.
const grisuExactErrUlp = 8

// pow10u64 are the powers of ten up to 10^19, used to find how many
// decimal digits a scaled integer part needs and to peel them off from
// the most significant end.
var pow10u64 = [...]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000,
	1000000000, 10000000000, 100000000000, 1000000000000,
	10000000000000, 100000000000000, 1000000000000000,
	10000000000000000, 100000000000000000, 1000000000000000000,
	10000000000000000000,
}

// decimalDigitCount returns the number of decimal digits in x (x must be
// nonzero).
func decimalDigitCount(x uint64) int {
	n := 1
	for n < len(pow10u64) && x >= pow10u64[n] {
		n++
	}
	return n
}

// grisuShortest implements the fast path of the shortest mode. Digits
// are generated for the upper bound of the rounding interval and then
// adjusted downward toward the value; every decision is double-checked
// against the one-ulp error of the scaled approximations, and ok is
// false whenever the error makes the outcome undecidable, in which case
// the caller must fall back to Dragon.
func grisuShortest(dec *decoded, buf []byte) (digits []byte, k int16, ok bool) {
	// Normalize the three interval points to a shared exponent, keyed off
	// the upper bound (the largest, so the shift is common).
	plusU := dec.mant + dec.plus
	s := uint(bits.LeadingZeros64(plusU))
	e := dec.exp - int16(s)

	cached := cachedPower(grisuAlpha-int(e)-64, grisuGamma-int(e)-64)
	cFp := fp{f: cached.f, e: cached.e}
	plusS := fp{f: plusU << s, e: e}.mul(cFp)
	minusS := fp{f: (dec.mant - dec.minus) << s, e: e}.mul(cFp)
	vS := fp{f: dec.mant << s, e: e}.mul(cFp)

	// Each scaled point carries at most one ulp of error; widen the
	// interval outward by one ulp on each end so that any number inside
	// [minus1, plus1] is guaranteed inside the true interval's one-ulp
	// neighborhood.
	plus1 := plusS.f + 1
	minus1 := minusS.f - 1
	delta1 := plus1 - minus1
	plus1v := plus1 - vS.f

	oneE := uint(-plusS.e)
	mask := uint64(1)<<oneE - 1
	plus1int := plus1 >> oneE
	plus1frac := plus1 & mask

	maxKappa := decimalDigitCount(plus1int) - 1
	kTotal := int16(maxKappa) + 1 - cached.k

	// Integral digits of plus1, stopping as soon as the not-yet-rendered
	// remainder fits inside the interval width.
	i := 0
	tenKappa := pow10u64[maxKappa]
	rem := plus1int
	for {
		q := rem / tenKappa
		r := rem % tenKappa
		buf[i] = '0' + byte(q)
		i++

		plus1rem := r<<oneE | plus1frac
		if plus1rem < delta1 {
			return roundAndWeed(buf[:i], kTotal, plus1rem, delta1, plus1v, tenKappa<<oneE, 1)
		}
		if tenKappa == 1 {
			break
		}
		tenKappa /= 10
		rem = r
	}

	// Fractional digits: multiply the remainder by ten instead of
	// dividing, scaling the interval width and the working ulp alongside.
	rem = plus1frac
	threshold := delta1
	ulp := uint64(1)
	for i < len(buf) {
		rem *= 10
		threshold *= 10
		ulp *= 10
		buf[i] = '0' + byte(rem>>oneE)
		i++
		rem &= mask
		if rem < threshold {
			return roundAndWeed(buf[:i], kTotal, rem, threshold, plus1v*ulp, uint64(1)<<oneE, ulp)
		}
	}
	return nil, 0, false
}

// roundAndWeed decrements the last rendered digit until the represented
// number is the closest one to the value, then rejects (ok=false) any
// outcome that the one-ulp error bounds cannot certify. remainder is the
// distance from the rendered number up to plus1, threshold the widened
// interval width plus1-minus1, plus1v the distance plus1-v, tenKappa the
// place value of the last digit, and ulp the current error unit; all in
// the same fixed-point scale.
func roundAndWeed(d []byte, k int16, remainder, threshold, plus1v, tenKappa, ulp uint64) ([]byte, int16, bool) {
	// Two approximations of the distance plus1-v, bracketing the truth:
	// one as if v were a full ulp lower, one as if it were a full ulp
	// higher.
	plus1vDown := plus1v + ulp
	plus1vUp := plus1v - ulp

	// Walk the rendered number down one last-digit step at a time while
	// the step keeps it above minus1 and brings it closer to v+ulp.
	plus1w := remainder
	for plus1w < plus1vUp &&
		threshold-plus1w >= tenKappa &&
		(plus1w+tenKappa < plus1vUp || plus1vUp-plus1w >= plus1w+tenKappa-plus1vUp) {
		d[len(d)-1]--
		plus1w += tenKappa
	}

	// If the same walk under the v-ulp hypothesis would have gone one
	// step further, the two hypotheses disagree on the closest number and
	// the result cannot be certified.
	if plus1w < plus1vDown &&
		threshold-plus1w >= tenKappa &&
		(plus1w+tenKappa < plus1vDown || plus1vDown-plus1w >= plus1w+tenKappa-plus1vDown) {
		return nil, 0, false
	}

	// Finally require the result to sit strictly inside the un-widened
	// interval: at least two ulps below plus1 and four above minus1.
	if threshold >= 4*ulp && plus1w >= 2*ulp && plus1w <= threshold-4*ulp {
		return d, k, true
	}
	return nil, 0, false
}

// roundUpDigits increments the last digit of d, propagating a carry
// through any trailing nines. If every digit was a nine, d is rewritten
// to "1" followed by zeros and true is returned so the caller bumps its
// decimal exponent by one and collapses the output to the single digit.
func roundUpDigits(d []byte) bool {
	i := len(d) - 1
	for i >= 0 && d[i] == '9' {
		i--
	}
	if i >= 0 {
		d[i]++
		for j := i + 1; j < len(d); j++ {
			d[j] = '0'
		}
		return false
	}
	if len(d) > 0 {
		d[0] = '1'
		for j := 1; j < len(d); j++ {
			d[j] = '0'
		}
	}
	return true
}

// grisuExact implements the fast path of the exact/fixed mode: emit up
// to len(buf) digits of the scaled value, stopping early once the next
// place value would fall below 10^limit, then round the tail using the
// tracked error bound. Returns ok == false when the error makes any
// digit or the final rounding ambiguous.
func grisuExact(dec *decoded, buf []byte, limit int16) (digits []byte, k int16, ok bool) {
	if len(buf) == 0 {
		return nil, 0, false
	}
	s := uint(bits.LeadingZeros64(dec.mant))
	v := fp{f: dec.mant << s, e: dec.exp - int16(s)}
	cached := cachedPower(grisuAlpha-int(v.e)-64, grisuGamma-int(v.e)-64)
	w := v.mul(fp{f: cached.f, e: cached.e})

	oneE := uint(-w.e)
	mask := uint64(1)<<oneE - 1
	intPart := w.f >> oneE
	fracPart := w.f & mask

	kappa := decimalDigitCount(intPart)
	kTotal := int16(kappa) - cached.k

	// The whole value sits at or below the requested place: whether it
	// rounds to zero or up to a single digit at the boundary is too close
	// to call from an approximation.
	if kTotal <= limit {
		return nil, 0, false
	}

	ulp := uint64(grisuExactErrUlp)
	idx, m := 0, len(buf)
	divisor := pow10u64[kappa-1]
	for kappa > 0 {
		if idx >= m || kTotal-int16(idx)-1 < limit {
			return grisuRoundTail(buf, idx, intPart<<oneE|fracPart, (divisor*10)<<oneE, kTotal, ulp)
		}
		buf[idx] = '0' + byte(intPart/divisor)
		intPart %= divisor
		idx++
		kappa--
		if divisor > 1 {
			divisor /= 10
		}
	}
	for idx < m && kTotal-int16(idx)-1 >= limit {
		if ulp > (1<<62)/10 {
			// The accumulated error would swamp the next digit.
			return nil, 0, false
		}
		ulp *= 10
		fracPart *= 10
		buf[idx] = '0' + byte(fracPart>>oneE)
		fracPart &= mask
		idx++
	}
	return grisuRoundTail(buf, idx, fracPart, uint64(1)<<oneE, kTotal, ulp)
}

// grisuRoundTail rounds the digits already written to buf[:idx] given
// the leftover tail `remaining` out of a full last-digit place value of
// `unit`, abstaining whenever the error budget ulp makes the half-way
// comparison ambiguous.
func grisuRoundTail(buf []byte, idx int, remaining, unit uint64, kTotal int16, ulp uint64) ([]byte, int16, bool) {
	half := unit / 2
	switch {
	case half > ulp && remaining < half-ulp:
		return buf[:idx], kTotal, true
	case remaining > half+ulp:
		if roundUpDigits(buf[:idx]) {
			return buf[:1], kTotal + 1, true
		}
		return buf[:idx], kTotal, true
	}
	return nil, 0, false
}
