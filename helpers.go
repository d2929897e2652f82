package basis

//A bunch of unexported mathematical functions, most of them just for convenience.

import (
	"math"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

// safeInv returns 1/val, or 0 if |val|<=appzero. The point is to zero out,
// rather than propagate, contributions from coincident points.
func safeInv(val float64) float64 {
	if math.Abs(val) <= appzero {
		return 0
	}
	return 1.0 / val
}

// oddFact2 returns the double factorial (2n-1)!! with the (-1)!!=1 convention.
// Panics on n<0, which can only come from a bug in this package.
func oddFact2(n int) float64 {
	if n < 0 {
		panic("gobasis: oddFact2 called with negative argument")
	}
	ret := 1.0
	for i := 2*n - 1; i > 1; i -= 2 {
		ret *= float64(i)
	}
	return ret
}

func fact(n int) float64 {
	ret := 1.0
	for i := 2; i <= n; i++ {
		ret *= float64(i)
	}
	return ret
}

// binom is the binomial coefficient, zero outside 0<=k<=n.
func binom(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	return fact(n) / (fact(k) * fact(n-k))
}

func ipow(base float64, n int) float64 {
	ret := 1.0
	for i := 0; i < n; i++ {
		ret *= base
	}
	return ret
}
