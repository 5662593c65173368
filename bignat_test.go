// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flt2dec2flt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bigNatOf(x uint64) bigNat {
	var z bigNat
	z.setU64(x)
	return z
}

func (z *bigNat) toU64() uint64 {
	var v uint64
	for i := z.n - 1; i >= 0; i-- {
		v = v<<32 | uint64(z.d[i])
	}
	return v
}

func TestBigNatAddSub(t *testing.T) {
	a := bigNatOf(1<<40 + 7)
	b := bigNatOf(1<<33 + 3)
	a.add(&b)
	assert.Equal(t, uint64(1<<40+7+1<<33+3), a.toU64())

	a.sub(&b)
	assert.Equal(t, uint64(1<<40+7), a.toU64())
}

func TestBigNatAddSmall(t *testing.T) {
	a := bigNatOf(0xFFFFFFFF)
	a.addSmall(1)
	assert.Equal(t, uint64(1<<32), a.toU64())
}

func TestBigNatAddSmallToZero(t *testing.T) {
	// Accumulating into a fresh zero value is how digit strings are
	// converted; the first added digit must extend the length itself.
	var a bigNat
	a.addSmall(7)
	assert.Equal(t, uint64(7), a.toU64())
	assert.Equal(t, 1, a.n)

	var b bigNat
	b.setU64(0)
	b.mulSmall(10)
	b.addSmall(3)
	b.mulSmall(10)
	b.addSmall(9)
	assert.Equal(t, uint64(39), b.toU64())
}

func TestBigNatMulSmall(t *testing.T) {
	a := bigNatOf(1 << 40)
	a.mulSmall(10)
	assert.Equal(t, uint64(10)<<40, a.toU64())
}

func TestBigNatMulPow2(t *testing.T) {
	a := bigNatOf(3)
	a.mulPow2(70)
	// 3<<70 overflows uint64, so check via bit length instead: 3 is 2
	// bits wide, shifted left by 70 gives a 72-bit value.
	assert.Equal(t, 72, a.bitLen())
}

func TestBigNatMulPow5(t *testing.T) {
	a := bigNatOf(1)
	a.mulPow5(20)
	var want bigNat
	want.setU64(1)
	for i := 0; i < 20; i++ {
		want.mulSmall(5)
	}
	assert.Equal(t, 0, a.cmp(&want))
}

func TestBigNatCmp(t *testing.T) {
	a := bigNatOf(100)
	b := bigNatOf(200)
	assert.Equal(t, -1, a.cmp(&b))
	assert.Equal(t, 1, b.cmp(&a))
	c := bigNatOf(100)
	assert.Equal(t, 0, a.cmp(&c))
}

func TestBigNatDivRemSmall(t *testing.T) {
	a := bigNatOf(12345)
	rem := a.divRemSmall(10)
	assert.Equal(t, uint32(5), rem)
	assert.Equal(t, uint64(1234), a.toU64())
}

func TestBigNatBitLen(t *testing.T) {
	var z bigNat
	assert.Equal(t, 0, z.bitLen())
	z.setU64(1)
	assert.Equal(t, 1, z.bitLen())
	z.setU64(255)
	assert.Equal(t, 8, z.bitLen())
	z.setU64(256)
	assert.Equal(t, 9, z.bitLen())
}

func TestBigNatMulFull(t *testing.T) {
	a := bigNatOf(1 << 40)
	b := bigNatOf(1 << 40)
	a.mulFull(&b)
	require.Equal(t, 3, a.n)
	assert.Equal(t, 81, a.bitLen())
}

func TestBigNatMulDigits(t *testing.T) {
	a := bigNatOf(3)
	// Multiply by 2^64 + 1, given as little-endian base-2^32 words.
	a.mulDigits([]uint32{1, 0, 1})
	var want bigNat
	want.setU64(3)
	want.mulPow2(64)
	want.addSmall(3)
	assert.Equal(t, 0, a.cmp(&want))
}

func TestBigNatCapacityPanics(t *testing.T) {
	var z bigNat
	z.setU64(1)
	assert.Panics(t, func() {
		z.mulPow2(natCap * 32)
	})
}
