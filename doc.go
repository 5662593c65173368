// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flt2dec2flt provides the low-level numeric kernels behind
// correctly-rounded, shortest-or-exact conversion between binary IEEE-754
// floating-point numbers (float32 and float64) and decimal digit
// sequences, in both directions.
//
// The package does not format or parse strings. Callers who want a
// finished string (with their own choice of separators, scientific
// layout, or locale) use the PreformatShortest*/PreformatExact* family to
// obtain a decomposed decimal (a digit slice plus a decimal exponent) and
// assemble it themselves, and use FromPreparsed* to turn a pre-split
// decimal (integer digits, fraction digits, exponent) back into a float.
//
// Converting float to decimal uses the Grisu algorithm (fast, may
// abstain) with a big-integer Dragon algorithm as the always-correct
// fallback. Converting decimal to float uses a small-value fast path, a
// Grisu-style approximation ("Bellerophon"), and a big-integer exact
// fallback ("Algorithm R") when the approximation cannot be trusted.
//
// All functions are pure with respect to caller-supplied buffers: no
// package-level mutable state (beyond a read-only power-of-ten table
// computed once at init), no allocation, no I/O. Concurrent calls with
// disjoint buffers need no synchronization.
package flt2dec2flt
