// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flt2dec2flt

// dragon.go is the always-correct, big-integer fallback for both the
// shortest and the exact/fixed modes. It follows the classical Burger &
// Dybvig free-format formulation, carried out on the fixed-capacity
// bigNat type so a conversion never allocates.

// log10Over2Num/Den approximate log10(2) as the rational 30103/100000,
// tight enough for a first exponent estimate; the scaling fixup loops
// correct any remaining error.
const (
	log10Over2Num = 30103
	log10Over2Den = 100000
)

// estimateDecimalExponent returns ceil(log10(2)*(exp+bits-1)), an upper
// estimate of the decimal exponent k such that value ~= 0.d0d1...*10^k.
func estimateDecimalExponent(exp int16, bits int) int {
	n := int(exp) + bits - 1
	num := n * log10Over2Num
	if num >= 0 {
		return (num + log10Over2Den - 1) / log10Over2Den
	}
	return -((-num) / log10Over2Den)
}

// dragonState carries the big-integer fraction num/den plus the
// round-down/round-up margins mMinus/mPlus, all in den units.
type dragonState struct {
	num, den, mPlus, mMinus bigNat
	k                       int
	inclusive               bool
}

// dragonSetupShortest builds the initial num/den/mPlus/mMinus fraction
// for dec and scales it so the first generated digit is in range:
// on exit num+mPlus <= den < 10*(num+mPlus), with the comparisons made
// weak or strict per the inclusive flag.
func dragonSetupShortest(dec *decoded) *dragonState {
	st := &dragonState{inclusive: dec.inclusive}
	if dec.exp >= 0 {
		st.den.setU64(1)
		st.num.setU64(dec.mant)
		st.num.mulPow2(uint(dec.exp))
		st.mPlus.setU64(dec.plus)
		st.mPlus.mulPow2(uint(dec.exp))
		st.mMinus.setU64(dec.minus)
		st.mMinus.mulPow2(uint(dec.exp))
	} else {
		st.den.setU64(1)
		st.den.mulPow2(uint(-dec.exp))
		st.num.setU64(dec.mant)
		st.mPlus.setU64(dec.plus)
		st.mMinus.setU64(dec.minus)
	}

	st.k = estimateDecimalExponent(dec.exp, bitLength64(dec.mant))
	if st.k >= 0 {
		st.den.mulPow5(uint(st.k))
		st.den.mulPow2(uint(st.k))
	} else {
		p := uint(-st.k)
		st.num.mulPow5(p)
		st.num.mulPow2(p)
		st.mPlus.mulPow5(p)
		st.mPlus.mulPow2(p)
		st.mMinus.mulPow5(p)
		st.mMinus.mulPow2(p)
	}

	// exceeds reports num+mPlus > den, weakened to >= when the interval
	// is inclusive.
	exceeds := func(num, mPlus *bigNat) bool {
		var s bigNat
		s = *num
		s.add(mPlus)
		c := s.cmp(&st.den)
		return c > 0 || (c == 0 && st.inclusive)
	}
	for {
		if exceeds(&st.num, &st.mPlus) {
			st.den.mulSmall(10)
			st.k++
			continue
		}
		var num2, mPlus2 bigNat
		num2 = st.num
		mPlus2 = st.mPlus
		num2.mulSmall(10)
		mPlus2.mulSmall(10)
		if exceeds(&num2, &mPlus2) {
			break
		}
		st.num.mulSmall(10)
		st.mPlus.mulSmall(10)
		st.mMinus.mulSmall(10)
		st.k--
	}
	return st
}

func bitLength64(x uint64) int {
	n := 0
	for x != 0 {
		n++
		x >>= 1
	}
	return n
}

// quotDigit returns floor(num/den) as a single decimal digit (the scale
// setup guarantees the quotient never reaches 10) and reduces num to the
// remainder in place.
func quotDigit(num, den *bigNat) byte {
	var d byte
	for num.cmp(den) >= 0 {
		num.sub(den)
		d++
	}
	return d
}

// dragonShortest runs the digit-generation loop to completion: after
// each digit, stop as soon as the remainder either falls inside the
// round-down margin or pushes past the round-up margin, breaking a
// simultaneous hit toward whichever side is closer and to the even
// digit on an exact tie.
func dragonShortest(dec *decoded, buf []byte) (digits []byte, k int16) {
	st := dragonSetupShortest(dec)
	idx := 0
	for {
		if idx >= len(buf) {
			panic("flt2dec2flt: dragon shortest exceeded buffer (undersized buffer is a programming error)")
		}
		st.num.mulSmall(10)
		st.mPlus.mulSmall(10)
		st.mMinus.mulSmall(10)
		d := quotDigit(&st.num, &st.den)

		lowCmp := st.num.cmp(&st.mMinus)
		low := lowCmp < 0 || (st.inclusive && lowCmp == 0)

		var sum bigNat
		sum = st.num
		sum.add(&st.mPlus)
		highCmp := sum.cmp(&st.den)
		high := highCmp > 0 || (st.inclusive && highCmp == 0)

		switch {
		case !low && !high:
			buf[idx] = '0' + d
			idx++
		case low && !high:
			buf[idx] = '0' + d
			idx++
			return buf[:idx], int16(st.k)
		case high && !low:
			buf[idx] = '0' + d
			idx++
			if roundUpDigits(buf[:idx]) {
				return buf[:1], int16(st.k) + 1
			}
			return buf[:idx], int16(st.k)
		default:
			var doubled bigNat
			doubled = st.num
			doubled.mulSmall(2)
			c := doubled.cmp(&st.den)
			roundUp := c > 0 || (c == 0 && d%2 == 1)
			buf[idx] = '0' + d
			idx++
			if roundUp {
				if roundUpDigits(buf[:idx]) {
					return buf[:1], int16(st.k) + 1
				}
			}
			return buf[:idx], int16(st.k)
		}
	}
}

// dragonSetupExact is dragonSetupShortest without the margins: on exit
// num < den <= 10*num, so the first generated digit is in 1..9.
func dragonSetupExact(dec *decoded) *dragonState {
	st := &dragonState{}
	if dec.exp >= 0 {
		st.den.setU64(1)
		st.num.setU64(dec.mant)
		st.num.mulPow2(uint(dec.exp))
	} else {
		st.den.setU64(1)
		st.den.mulPow2(uint(-dec.exp))
		st.num.setU64(dec.mant)
	}

	st.k = estimateDecimalExponent(dec.exp, bitLength64(dec.mant))
	if st.k >= 0 {
		st.den.mulPow5(uint(st.k))
		st.den.mulPow2(uint(st.k))
	} else {
		p := uint(-st.k)
		st.num.mulPow5(p)
		st.num.mulPow2(p)
	}

	for {
		if st.num.cmp(&st.den) >= 0 {
			st.den.mulSmall(10)
			st.k++
			continue
		}
		var num2 bigNat
		num2 = st.num
		num2.mulSmall(10)
		if num2.cmp(&st.den) >= 0 {
			break
		}
		st.num.mulSmall(10)
		st.k--
	}
	return st
}

// dragonExact runs the always-correct exact/fixed path: emit up to
// len(buf) digits, stopping early once the next digit's place value
// would fall below 10^limit, then round the trailing remainder with
// round-half-to-even.
func dragonExact(dec *decoded, buf []byte, limit int16) (digits []byte, k int16) {
	st := dragonSetupExact(dec)
	kTotal := int16(st.k)
	if kTotal < limit {
		return buf[:0], limit
	}
	if kTotal == limit {
		// Every digit sits below the place-value cutoff; the result is
		// either zero or, when the value reaches half of 10^limit, a
		// single rounded-up digit one place above it. An exact half is
		// the tie between 0 and 1*10^limit and goes to the even side,
		// zero.
		var doubled bigNat
		doubled = st.num
		doubled.mulSmall(2)
		if doubled.cmp(&st.den) > 0 {
			buf[0] = '1'
			return buf[:1], kTotal + 1
		}
		return buf[:0], limit
	}

	idx := 0
	m := len(buf)
	for {
		if idx >= m || kTotal-int16(idx)-1 < limit {
			break
		}
		st.num.mulSmall(10)
		buf[idx] = '0' + quotDigit(&st.num, &st.den)
		idx++
	}
	if idx == 0 {
		return buf[:0], kTotal
	}

	var doubled bigNat
	doubled = st.num
	doubled.mulSmall(2)
	c := doubled.cmp(&st.den)
	roundUp := c > 0 || (c == 0 && (buf[idx-1]-'0')%2 == 1)
	if roundUp {
		if roundUpDigits(buf[:idx]) {
			return buf[:1], kTotal + 1
		}
	}
	return buf[:idx], kTotal
}
