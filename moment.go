/*
 * moment.go, part of gobasis.
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
	"math"

	"github.com/rmera/gobasis/v3"
	"gonum.org/v1/gonum/mat"
)

// blk4 holds the Cartesian integrals between two shells at contraction
// level, indexed [segment1][component1][segment2][component2]. Primitive
// normalization is included, contraction normalization is not, so the
// contraction-norm stage of shell construction can use these blocks too.
type blk4 [][][][]float64

func newBlk4(ma, la, mb, lb int) blk4 {
	ret := make(blk4, ma)
	for i := range ret {
		ret[i] = make([][][]float64, la)
		for j := range ret[i] {
			ret[i][j] = make([][]float64, mb)
			for k := range ret[i][j] {
				ret[i][j][k] = make([]float64, lb)
			}
		}
	}
	return ret
}

// momentTable builds, for one axis, the three-index recurrence table
// S[e][a][b] of one-dimensional moment integrals between primitives of
// angular momentum up to la and lb, with moment order up to emax about the
// moment center. The base case is the normalized Gaussian product overlap
// S[0][0][0]=1; the axis prefactor is applied by the caller.
func momentTable(emax, la, lb int, xpa, xpb, xpc, oo2p float64) [][][]float64 {
	S := make([][][]float64, emax+1)
	for e := range S {
		S[e] = make([][]float64, la+1)
		for a := range S[e] {
			S[e][a] = make([]float64, lb+1)
		}
	}
	S[0][0][0] = 1
	for a := 1; a <= la; a++ {
		S[0][a][0] = xpa * S[0][a-1][0]
		if a > 1 {
			S[0][a][0] += oo2p * float64(a-1) * S[0][a-2][0]
		}
	}
	for b := 1; b <= lb; b++ {
		for a := 0; a <= la; a++ {
			v := xpb * S[0][a][b-1]
			if b > 1 {
				v += oo2p * float64(b-1) * S[0][a][b-2]
			}
			if a > 0 {
				v += oo2p * float64(a) * S[0][a-1][b-1]
			}
			S[0][a][b] = v
		}
	}
	for e := 1; e <= emax; e++ {
		for a := 0; a <= la; a++ {
			for b := 0; b <= lb; b++ {
				v := xpc * S[e-1][a][b]
				if e > 1 {
					v += oo2p * float64(e-1) * S[e-2][a][b]
				}
				if a > 0 {
					v += oo2p * float64(a) * S[e-1][a-1][b]
				}
				if b > 0 {
					v += oo2p * float64(b) * S[e-1][a][b-1]
				}
				S[e][a][b] = v
			}
		}
	}
	return S
}

// momentBlock computes the Cartesian moment integral blocks between two
// shells, one per requested order vector, about the given 1x3 moment
// center. Order (0,0,0) gives the plain overlap block.
func momentBlock(A, B *Shell, center *v3.Matrix, orders [][3]int) []blk4 {
	var emax [3]int
	for _, o := range orders {
		for i := 0; i < 3; i++ {
			if o[i] < 0 {
				panic(ErrNegMomOrder)
			}
			if o[i] > emax[i] {
				emax[i] = o[i]
			}
		}
	}
	ma, la := A.NumSegCont(), A.NumCart()
	mb, lb := B.NumSegCont(), B.NumCart()
	out := make([]blk4, len(orders))
	for i := range out {
		out[i] = newBlk4(ma, la, mb, lb)
	}
	var dist2 float64
	for i := 0; i < 3; i++ {
		d := A.center.At(0, i) - B.center.At(0, i)
		dist2 += d * d
	}
	var tabs [3][][][]float64
	for ka, aA := range A.exps {
		for kb, aB := range B.exps {
			p := aA + aB
			mu := aA * aB / p
			pref := math.Pow(math.Pi/p, 1.5) * math.Exp(-mu*dist2)
			oo2p := 1 / (2 * p)
			for i := 0; i < 3; i++ {
				P := (aA*A.center.At(0, i) + aB*B.center.At(0, i)) / p
				xpa := P - A.center.At(0, i)
				xpb := P - B.center.At(0, i)
				xpc := P - center.At(0, i)
				tabs[i] = momentTable(emax[i], A.angmom, B.angmom, xpa, xpb, xpc, oo2p)
			}
			for ca, compA := range A.cartComps {
				na := A.primNorm.At(ca, ka)
				for cb, compB := range B.cartComps {
					nb := B.primNorm.At(cb, kb)
					for o, ord := range orders {
						v := pref * na * nb
						for i := 0; i < 3; i++ {
							v *= tabs[i][ord[i]][compA[i]][compB[i]]
						}
						for sa := 0; sa < ma; sa++ {
							cA := A.coeffs.At(ka, sa)
							for sb := 0; sb < mb; sb++ {
								out[o][sa][ca][sb][cb] += cA * B.coeffs.At(kb, sb) * v
							}
						}
					}
				}
			}
		}
	}
	return out
}

// Moment computes the multipole moment integral matrices of the basis about
// the given 1x3 center, one matrix per order vector, in the AO layout
// selected by transform and kinds (see Overlap for the conventions). Orders
// may repeat and appear in any order; the results match them one to one.
func Moment(b Basis, center *v3.Matrix, orders [][3]int, transform string, kinds ...string) ([]*mat.Dense, error) {
	if center == nil {
		return nil, CError{ErrNilData, []string{"Moment"}}
	}
	if r, c := center.Dims(); r != 1 || c != 3 {
		return nil, CError{ErrCenterShape, []string{"Moment"}}
	}
	for _, o := range orders {
		if o[0] < 0 || o[1] < 0 || o[2] < 0 {
			return nil, CError{ErrNegMomOrder, []string{"Moment"}}
		}
	}
	kern := func(A, B *Shell) []blk4 {
		return momentBlock(A, B, center, orders)
	}
	ret, err := assemble(b, kern, len(orders), transform, kinds)
	if err != nil {
		return nil, errDecorate(err, "Moment")
	}
	return ret, nil
}

// MomentLincomb is Moment followed by a change of basis with the given
// transformation matrix, C*M*C^T, typically from atomic to molecular
// orbitals. The transformation applies over the AO layout selected by kinds
// (spherical by default), so its column count must match that dimension.
func MomentLincomb(b Basis, center *v3.Matrix, orders [][3]int, trans *mat.Dense, kinds ...string) ([]*mat.Dense, error) {
	ms, err := Moment(b, center, orders, Spherical, kinds...)
	if err != nil {
		return nil, err
	}
	for i, m := range ms {
		ms[i], err = lincomb(trans, m)
		if err != nil {
			return nil, errDecorate(err, "MomentLincomb")
		}
	}
	return ms, nil
}
