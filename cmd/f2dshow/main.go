// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// F2dshow exercises the flt2dec2flt façade end to end on a single
// float64 argument.
//
// Usage:
//
//	f2dshow [-fixed=N] value
//
// With no flags, f2dshow prints the shortest round-tripping decimal for
// value. With -fixed=N, it instead prints the value rounded to N digits
// after the decimal point, the way PreformatExactFixed64 does it.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/flt2dec2flt/flt2dec2flt"
)

var fixed = flag.Int("fixed", -1, "print `N` digits after the decimal point instead of the shortest form")

func main() {
	log.SetFlags(0)
	log.SetPrefix("f2dshow: ")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: f2dshow [-fixed=N] value")
		os.Exit(2)
	}

	f, err := strconv.ParseFloat(flag.Arg(0), 64)
	if err != nil {
		log.Fatalf("invalid float: %v", err)
	}

	var pre flt2dec2flt.PreFormatted
	if *fixed >= 0 {
		buf := make([]byte, flt2dec2flt.PreformatExactFixedBaseBufLen+*fixed)
		pre = flt2dec2flt.PreformatExactFixed64(f, buf, *fixed)
	} else {
		buf := make([]byte, flt2dec2flt.PreformatShortestBufLen)
		pre = flt2dec2flt.PreformatShortest64(f, buf)
	}

	fmt.Println(render(pre))
}

// render assembles a human-readable "0.digits * 10^k" style string from
// a PreFormatted result. String assembly is deliberately the caller's
// job in the library; this one exists only to make the package runnable
// end to end, not to compete with a real formatting layer.
func render(pre flt2dec2flt.PreFormatted) string {
	sign := ""
	if pre.Sign {
		sign = "-"
	}
	switch pre.Kind {
	case flt2dec2flt.PreNaN:
		return "NaN"
	case flt2dec2flt.PreInf:
		return sign + "Inf"
	case flt2dec2flt.PreZero:
		return sign + "0"
	default:
		zeros := ""
		for i := 0; i < pre.TrailingZeros; i++ {
			zeros += "0"
		}
		return fmt.Sprintf("%s0.%s%s * 10^%d", sign, pre.Digits, zeros, pre.K)
	}
}
