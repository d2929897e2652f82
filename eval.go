/*
 * eval.go, part of gobasis.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package basis

import (
	"fmt"
	"math"

	"github.com/rmera/gobasis/v3"
	"gonum.org/v1/gonum/mat"
)

// EvalPrim evaluates an unnormalized Cartesian Gaussian primitive with the
// given center, angular momentum vector and exponent at the given point
// (both point and center 1x3 matrices):
//
//	(x-Xc)^ax * (y-Yc)^ay * (z-Zc)^az * exp(-alpha*|r-Rc|^2)
//
// A zero angular momentum component contributes 1 even at zero displacement
// (the 0^0=1 convention). Normalization is the caller's responsibility,
// through the shell-level constants. Panics on nil or negative-component
// input, which is always a programmer error.
func EvalPrim(point, center *v3.Matrix, angmom [3]int, alpha float64) float64 {
	if point == nil || center == nil {
		panic(ErrNilData)
	}
	ret := 1.0
	var dist2 float64
	for i := 0; i < 3; i++ {
		if angmom[i] < 0 {
			panic(ErrNegAngMom)
		}
		d := point.At(0, i) - center.At(0, i)
		ret *= ipow(d, angmom[i])
		dist2 += d * d
	}
	return ret * math.Exp(-alpha*dist2)
}

// deriv1D evaluates, at displacement d, the polynomial factor of the
// derivative of the given order of the one-dimensional term
// d^n * exp(-alpha*d^2). The coefficient vector of the polynomial is
// differentiated symbolically order times, using the exact rule for
// polynomial-times-Gaussian products,
//
//	(P(x)*exp(-alpha*x^2))' = (P'(x) - 2*alpha*x*P(x)) * exp(-alpha*x^2)
//
// so no finite-difference noise enters. The Gaussian factor itself is NOT
// included here; the caller applies a single exp(-alpha*|r|^2) over the full
// displacement, the same way EvalPrim does, so that zero-order derivatives
// reduce to the plain evaluation bit for bit.
func deriv1D(d float64, n, order int, alpha float64) float64 {
	c := make([]float64, n+order+1)
	c[n] = 1
	for o := 0; o < order; o++ {
		nc := make([]float64, len(c))
		for k := range nc {
			if k+1 < len(c) {
				nc[k] = float64(k+1) * c[k+1]
			}
			if k-1 >= 0 {
				nc[k] -= 2 * alpha * c[k-1]
			}
		}
		c = nc
	}
	ret := 0.0
	for k, v := range c {
		if v != 0 {
			ret += v * ipow(d, k)
		}
	}
	return ret
}

// EvalDerivPrim evaluates the partial derivative of an unnormalized Cartesian
// Gaussian primitive, to the given non-negative order on each axis, at the
// given point. Since the primitive factors per axis, the result is the
// product of the three one-dimensional polynomial factors times the shared
// Gaussian. All-zero orders reduce exactly to EvalPrim.
func EvalDerivPrim(point *v3.Matrix, orders [3]int, center *v3.Matrix, angmom [3]int, alpha float64) float64 {
	if point == nil || center == nil {
		panic(ErrNilData)
	}
	ret := 1.0
	var dist2 float64
	for i := 0; i < 3; i++ {
		if angmom[i] < 0 {
			panic(ErrNegAngMom)
		}
		if orders[i] < 0 {
			panic("gobasis: derivative orders must be non-negative")
		}
		d := point.At(0, i) - center.At(0, i)
		ret *= deriv1D(d, angmom[i], orders[i], alpha)
		dist2 += d * d
	}
	return ret * math.Exp(-alpha*dist2)
}

// EvalContraction evaluates a contraction (a linear combination of primitives
// sharing center and exponents) at one or several points, for one or several
// angular momentum vectors at once. The result has one row per angular
// momentum vector and one column per point. The coefficients are used as
// given; callers wanting normalized contractions scale them with the shell's
// normalization constants first.
func EvalContraction(points, center *v3.Matrix, angmoms [][3]int, exps, coeffs []float64) (*mat.Dense, error) {
	return EvalDerivContraction(points, [3]int{}, center, angmoms, exps, coeffs)
}

// EvalDerivContraction is EvalContraction on the partial derivative of the
// contraction, to the given order on each axis. All-zero orders reduce
// exactly to EvalContraction.
func EvalDerivContraction(points *v3.Matrix, orders [3]int, center *v3.Matrix, angmoms [][3]int, exps, coeffs []float64) (*mat.Dense, error) {
	if points == nil || center == nil || angmoms == nil || exps == nil || coeffs == nil {
		return nil, CError{ErrNilData, []string{"EvalDerivContraction"}}
	}
	if len(exps) != len(coeffs) {
		return nil, CError{fmt.Sprintf("gobasis: %d exponents but %d coefficients", len(exps), len(coeffs)), []string{"EvalDerivContraction"}}
	}
	if r, c := center.Dims(); r != 1 || c != 3 {
		return nil, CError{ErrCenterShape, []string{"EvalDerivContraction"}}
	}
	np := points.NVecs()
	ret := mat.NewDense(len(angmoms), np, nil)
	for p := 0; p < np; p++ {
		point := points.VecView(p)
		for a, angmom := range angmoms {
			val := 0.0
			for k, alpha := range exps {
				val += coeffs[k] * EvalDerivPrim(point, orders, center, angmom, alpha)
			}
			ret.Set(a, p, val)
		}
	}
	return ret, nil
}

// Eval evaluates every segmented contraction and Cartesian component of
// a shell at the given points, with primitive and contraction normalization
// applied. The result has one row per (segmented contraction, Cartesian
// component) pair, in that order, and one column per point, matching the
// row layout of the assembled integral arrays.
func (S *Shell) Eval(points *v3.Matrix) (*mat.Dense, error) {
	if S == nil {
		return nil, CError{ErrNilShell, []string{"Shell.Eval"}}
	}
	if points == nil {
		return nil, CError{ErrNilData, []string{"Shell.Eval"}}
	}
	np := points.NVecs()
	M := S.NumSegCont()
	L := S.NumCart()
	ret := mat.NewDense(M*L, np, nil)
	for p := 0; p < np; p++ {
		point := points.VecView(p)
		for c, comp := range S.cartComps {
			for m := 0; m < M; m++ {
				val := 0.0
				for k, alpha := range S.exps {
					val += S.coeffs.At(k, m) * S.primNorm.At(c, k) * EvalPrim(point, S.center, comp, alpha)
				}
				ret.Set(m*L+c, p, val*S.contNorm.At(m, c))
			}
		}
	}
	return ret, nil
}
