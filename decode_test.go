// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flt2dec2flt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeKinds(t *testing.T) {
	tests := []struct {
		name string
		f    float64
		kind decKind
		neg  bool
	}{
		{"zero", 0, kindZero, false},
		{"neg zero", math.Copysign(0, -1), kindZero, true},
		{"nan", math.NaN(), kindNaN, false},
		{"inf", math.Inf(1), kindInf, false},
		{"neg inf", math.Inf(-1), kindInf, true},
		{"one", 1, kindFinite, false},
		{"neg one", -1, kindFinite, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			neg, kind, _ := decode64(tt.f)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.neg, neg)
		})
	}
}

func TestDecodeFiniteInvariants(t *testing.T) {
	values := []float64{1, 2, 0.1, 0.5, 3.14159, 1e300, 1e-300, 4.9e-324, math.MaxFloat64}
	for _, f := range values {
		_, kind, dec := decode64(f)
		require.Equal(t, kindFinite, kind)
		assert.Greater(t, dec.mant, uint64(0))
		assert.GreaterOrEqual(t, dec.minus, uint64(1))
		assert.GreaterOrEqual(t, dec.plus, uint64(1))

		// The interval midpoint must reproduce the value: mant*2^exp == f.
		scaled := math.Ldexp(float64(dec.mant), int(dec.exp))
		assert.Equal(t, f, scaled, "midpoint mismatch for %v", f)

		// Round-to-even polarity: inclusive iff the raw IEEE mantissa
		// (with the implicit bit restored for normals) is even.
		bits := math.Float64bits(f)
		raw := bits & (1<<52 - 1)
		if bits>>52&0x7ff != 0 {
			raw |= 1 << 52
		}
		assert.Equal(t, raw%2 == 0, dec.inclusive, "tie polarity for %v", f)
	}
}

func TestDecodeSubnormalMin(t *testing.T) {
	f := math.Float64frombits(1) // smallest positive subnormal, 5e-324
	_, kind, dec := decode64(f)
	require.Equal(t, kindFinite, kind)
	assert.Equal(t, uint64(2), dec.mant)
	assert.Equal(t, uint64(1), dec.minus)
	assert.Equal(t, uint64(1), dec.plus)
	assert.Equal(t, int16(1+float64info.bias-int(float64info.mantbits)-1), dec.exp)
}

func TestDecodeBinadeBoundary(t *testing.T) {
	// A power of two above the smallest normal sits at the bottom of its
	// binade: the neighbor below is half an ulp away, the one above a
	// full ulp, so the decoded half-widths are asymmetric.
	_, kind, dec := decode64(2.0)
	require.Equal(t, kindFinite, kind)
	assert.Equal(t, uint64(1), dec.minus)
	assert.Equal(t, uint64(2), dec.plus)
	assert.Equal(t, uint64(1)<<54, dec.mant)

	// Mid-binade values get the symmetric half-ulp interval.
	_, kind, dec = decode64(3.0)
	require.Equal(t, kindFinite, kind)
	assert.Equal(t, uint64(1), dec.minus)
	assert.Equal(t, uint64(1), dec.plus)
}

func TestDecode32(t *testing.T) {
	neg, kind, dec := decode32(0.1)
	require.Equal(t, kindFinite, kind)
	assert.False(t, neg)
	assert.Greater(t, dec.mant, uint64(0))

	// Same midpoint identity at 32 bits.
	scaled := math.Ldexp(float64(dec.mant), int(dec.exp))
	assert.Equal(t, float64(float32(0.1)), scaled)
}
