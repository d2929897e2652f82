/*
 * shell.go, part of gobasis.
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

// Shell is a generalized contraction shell: a set of contractions that share
// center, angular momentum and primitive exponents, and differ only in their
// contraction coefficients (the segmented contractions, one per column of the
// coefficient matrix).
//
// A shell is immutable once built. All derived quantities (Cartesian and
// spherical angular momentum components, primitive and contraction
// normalization constants) are computed by NewShell, so an existing *Shell is
// always fully valid and safe for concurrent read access.
type Shell struct {
	center    *v3.Matrix //1x3
	angmom    int
	exps      []float64  //K
	coeffs    *mat.Dense //KxM
	cartComps [][3]int   //L entries, L=(angmom+1)(angmom+2)/2
	sphComps  []int      //2*angmom+1 magnetic quantum numbers
	primNorm  *mat.Dense //LxK
	contNorm  *mat.Dense //MxL
}

// NewShell builds a generalized contraction shell with the given angular
// momentum, center (a 1x3 v3.Matrix), KxM coefficient matrix (column j is the
// jth segmented contraction) and K primitive exponents. All the invariants are
// checked here, and never again: angmom>=0, exponents positive, one
// coefficient row per exponent. The inputs are copied, so the caller can keep
// and modify them.
//
// Building a shell requires its own self-overlap (for the contraction
// normalization constants), and the overlap engine requires the shell.
// NewShell therefore works in two stages: it fills every primitive-level
// attribute first and invokes the overlap machinery on the partially-built
// shell at the very end, when everything that machinery reads is in place.
func NewShell(angmom int, center *v3.Matrix, coeffs *mat.Dense, exps []float64) (*Shell, error) {
	if center == nil || coeffs == nil || exps == nil {
		return nil, CError{ErrNilData, []string{"NewShell"}}
	}
	if r, c := center.Dims(); r != 1 || c != 3 {
		return nil, CError{ErrCenterShape, []string{"NewShell"}}
	}
	if angmom < 0 {
		return nil, CError{fmt.Sprintf("%s: %d", ErrNegAngMom, angmom), []string{"NewShell"}}
	}
	if len(exps) == 0 {
		return nil, CError{ErrNoExps, []string{"NewShell"}}
	}
	for _, e := range exps {
		if e <= 0 {
			return nil, CError{fmt.Sprintf("%s: %f", ErrNonPosExp, e), []string{"NewShell"}}
		}
	}
	cr, _ := coeffs.Dims()
	if cr != len(exps) {
		return nil, CError{fmt.Sprintf("%s: %d rows, %d exponents", ErrCoeffRows, cr, len(exps)), []string{"NewShell"}}
	}
	S := new(Shell)
	S.angmom = angmom
	S.center = center.Clone()
	S.exps = make([]float64, len(exps))
	copy(S.exps, exps)
	S.coeffs = mat.DenseCopyOf(coeffs)
	S.cartComps = cartComponents(angmom)
	S.sphComps = make([]int, 0, 2*angmom+1)
	for m := -angmom; m <= angmom; m++ {
		S.sphComps = append(S.sphComps, m)
	}
	S.assignPrimNorm()
	S.assignContNorm()
	return S, nil
}

// NewShellSegmented builds a shell with a single segmented contraction from a
// plain coefficient slice, one coefficient per primitive.
func NewShellSegmented(angmom int, center *v3.Matrix, coeffs []float64, exps []float64) (*Shell, error) {
	if coeffs == nil {
		return nil, CError{ErrNilData, []string{"NewShellSegmented"}}
	}
	c := mat.NewDense(len(coeffs), 1, nil)
	for i, v := range coeffs {
		c.Set(i, 0, v)
	}
	S, err := NewShell(angmom, center, c, exps)
	if err != nil {
		err.(Error).Decorate("NewShellSegmented")
	}
	return S, err
}

// cartComponents enumerates the Cartesian angular momentum vectors
// (ax,ay,az) with ax+ay+az=angmom, in decreasing-x, then decreasing-y order.
// This ordering is a contract: the rows of the primitive normalization table,
// the block layout of the integral engine and the Cartesian-to-spherical
// transform all rely on it.
func cartComponents(angmom int) [][3]int {
	ret := make([][3]int, 0, (angmom+1)*(angmom+2)/2)
	for x := angmom; x >= 0; x-- {
		for y := angmom - x; y >= 0; y-- {
			ret = append(ret, [3]int{x, y, angmom - x - y})
		}
	}
	return ret
}

// assignPrimNorm fills the LxK table of Cartesian primitive normalization
// constants,
//
//	N(a,alpha) = (2*alpha/pi)^(3/4) * (4*alpha)^(angmom/2)
//	             / ((2ax-1)!!*(2ay-1)!!*(2az-1)!!)^(1/2)
func (S *Shell) assignPrimNorm() {
	L := len(S.cartComps)
	K := len(S.exps)
	norm := mat.NewDense(L, K, nil)
	for i, comp := range S.cartComps {
		ff := math.Sqrt(oddFact2(comp[0]) * oddFact2(comp[1]) * oddFact2(comp[2]))
		for k, alpha := range S.exps {
			n := math.Pow(2*alpha/math.Pi, 0.75) * math.Pow(4*alpha, float64(S.angmom)/2.0) / ff
			norm.Set(i, k, n)
		}
	}
	S.primNorm = norm
}

// assignContNorm computes the MxL contraction normalization constants from
// the shell's self-overlap: the diagonal of the unnormalized self-overlap
// block, raised to -1/2. Must run after every primitive-level attribute of S
// is in place.
func (S *Shell) assignContNorm() {
	self := momentBlock(S, S, v3.Zeros(1), [][3]int{{0, 0, 0}})[0]
	M := S.NumSegCont()
	L := S.NumCart()
	norm := mat.NewDense(M, L, nil)
	for m := 0; m < M; m++ {
		for c := 0; c < L; c++ {
			norm.Set(m, c, 1.0/math.Sqrt(self[m][c][m][c]))
		}
	}
	S.contNorm = norm
}

// AngMom returns the angular momentum shared by every contraction in the shell.
func (S *Shell) AngMom() int { return S.angmom }

// Center returns a copy of the coordinates of the shell center.
func (S *Shell) Center() *v3.Matrix { return S.center.Clone() }

// Exps returns a copy of the primitive exponents.
func (S *Shell) Exps() []float64 {
	ret := make([]float64, len(S.exps))
	copy(ret, S.exps)
	return ret
}

// Coeffs returns the KxM contraction coefficient matrix. The returned matrix
// is the shell's own and must not be modified.
func (S *Shell) Coeffs() *mat.Dense { return S.coeffs }

// CartComponents returns the Cartesian angular momentum vectors of the shell,
// in the package's decreasing-x, decreasing-y order. The returned slice must
// not be modified.
func (S *Shell) CartComponents() [][3]int { return S.cartComps }

// SphComponents returns the magnetic quantum numbers of the shell, from
// -angmom to angmom in increasing order.
func (S *Shell) SphComponents() []int {
	ret := make([]int, len(S.sphComps))
	copy(ret, S.sphComps)
	return ret
}

// PrimNorm returns the LxK matrix of Cartesian primitive normalization
// constants. The returned matrix must not be modified.
func (S *Shell) PrimNorm() *mat.Dense { return S.primNorm }

// ContNorm returns the MxL matrix of contraction normalization constants.
// The returned matrix must not be modified.
func (S *Shell) ContNorm() *mat.Dense { return S.contNorm }

// NumCart returns the number of Cartesian contractions of the shell's angular
// momentum, (angmom+1)*(angmom+2)/2.
func (S *Shell) NumCart() int { return (S.angmom + 1) * (S.angmom + 2) / 2 }

// NumSph returns the number of spherical contractions of the shell's angular
// momentum, 2*angmom+1.
func (S *Shell) NumSph() int { return 2*S.angmom + 1 }

// NumSegCont returns the number of segmented contractions in the shell.
func (S *Shell) NumSegCont() int {
	_, m := S.coeffs.Dims()
	return m
}

func (S *Shell) String() string {
	return fmt.Sprintf("shell l=%d at (%.4f %.4f %.4f), %d primitives, %d segmented contractions",
		S.angmom, S.center.At(0, 0), S.center.At(0, 1), S.center.At(0, 2), len(S.exps), S.NumSegCont())
}
