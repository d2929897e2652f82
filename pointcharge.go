/*
 * pointcharge.go, part of gobasis.
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
	"gonum.org/v1/gonum/mathext"
)

// boys is the Boys function F_n(x), through the regularized lower
// incomplete gamma function.
func boys(n int, x float64) float64 {
	nf := float64(n)
	if x == 0 {
		return 1.0 / (2.0*nf + 1)
	}
	return mathext.GammaIncReg(nf+0.5, x) * math.Gamma(nf+0.5) / (2.0 * math.Pow(x, nf+0.5))
}

// hermiteTable builds the per-axis Hermite expansion coefficients E[i][j][t]
// for two primitives with exponents aA, aB on one axis, with displacements
// xpa=P-A, xpb=P-B. The base case carries the Gaussian product prefactor
// exp(-mu*(A-B)^2) for this axis.
func hermiteTable(la, lb int, aA, aB, xa, xb float64) [][][]float64 {
	p := aA + aB
	mu := aA * aB / p
	oo2p := 1 / (2 * p)
	xab := xa - xb
	P := (aA*xa + aB*xb) / p
	xpa := P - xa
	xpb := P - xb
	E := make([][][]float64, la+1)
	for i := range E {
		E[i] = make([][]float64, lb+1)
		for j := range E[i] {
			E[i][j] = make([]float64, i+j+1)
		}
	}
	E[0][0][0] = math.Exp(-mu * xab * xab)
	at := func(i, j, t int) float64 {
		if t < 0 || t > i+j {
			return 0
		}
		return E[i][j][t]
	}
	for i := 0; i <= la; i++ {
		for j := 0; j <= lb; j++ {
			if i == 0 && j == 0 {
				continue
			}
			for t := 0; t <= i+j; t++ {
				if j > 0 {
					E[i][j][t] = oo2p*at(i, j-1, t-1) + xpb*at(i, j-1, t) + float64(t+1)*at(i, j-1, t+1)
				} else {
					E[i][j][t] = oo2p*at(i-1, j, t-1) + xpa*at(i-1, j, t) + float64(t+1)*at(i-1, j, t+1)
				}
			}
		}
	}
	return E
}

// hermiteR builds the Hermite Coulomb integral table R[t][u][v] (at auxiliary
// order zero) for total degree up to nmax, for a charge at displacement
// (xpc,ypc,zpc) from the Gaussian product center, with total exponent p.
func hermiteR(nmax int, p, xpc, ypc, zpc float64) [][][]float64 {
	rpc2 := xpc*xpc + ypc*ypc + zpc*zpc
	full := make([][][][]float64, nmax+1)
	for n := range full {
		full[n] = make([][][]float64, nmax+1)
		for t := range full[n] {
			full[n][t] = make([][]float64, nmax+1)
			for u := range full[n][t] {
				full[n][t][u] = make([]float64, nmax+1)
			}
		}
	}
	for n := 0; n <= nmax; n++ {
		full[n][0][0][0] = ipow(-2*p, n) * boys(n, p*rpc2)
	}
	for n := nmax - 1; n >= 0; n-- {
		for t := 0; t <= nmax-n; t++ {
			for u := 0; u <= nmax-n-t; u++ {
				for v := 0; v <= nmax-n-t-u; v++ {
					if t+u+v == 0 {
						continue
					}
					var val float64
					switch {
					case t > 0:
						val = xpc * full[n+1][t-1][u][v]
						if t > 1 {
							val += float64(t-1) * full[n+1][t-2][u][v]
						}
					case u > 0:
						val = ypc * full[n+1][t][u-1][v]
						if u > 1 {
							val += float64(u-1) * full[n+1][t][u-2][v]
						}
					default:
						val = zpc * full[n+1][t][u][v-1]
						if v > 1 {
							val += float64(v-1) * full[n+1][t][u][v-2]
						}
					}
					full[n][t][u][v] = val
				}
			}
		}
	}
	return full[0]
}

// pointChargeBlock computes the Cartesian interaction blocks between two
// shells and each of the given point charges, one blk4 per point, by
// McMurchie-Davidson Hermite expansion. A unit positive charge at C gives
// the bare Coulomb integral <a|1/|r-C||b>; the block scales linearly with
// the charge.
func pointChargeBlock(A, B *Shell, points *v3.Matrix, charges []float64) []blk4 {
	ma, la := A.NumSegCont(), A.NumCart()
	mb, lb := B.NumSegCont(), B.NumCart()
	np := points.NVecs()
	out := make([]blk4, np)
	for i := range out {
		out[i] = newBlk4(ma, la, mb, lb)
	}
	nmax := A.angmom + B.angmom
	var Pg [3]float64
	for ka, aA := range A.exps {
		for kb, aB := range B.exps {
			p := aA + aB
			var tabs [3][][][]float64
			for i := 0; i < 3; i++ {
				xa := A.center.At(0, i)
				xb := B.center.At(0, i)
				tabs[i] = hermiteTable(A.angmom, B.angmom, aA, aB, xa, xb)
				Pg[i] = (aA*xa + aB*xb) / p
			}
			pref := 2 * math.Pi / p
			for ip := 0; ip < np; ip++ {
				R := hermiteR(nmax, p,
					Pg[0]-points.At(ip, 0),
					Pg[1]-points.At(ip, 1),
					Pg[2]-points.At(ip, 2))
				for ca, compA := range A.cartComps {
					na := A.primNorm.At(ca, ka)
					for cb, compB := range B.cartComps {
						nb := B.primNorm.At(cb, kb)
						var v float64
						for t := 0; t <= compA[0]+compB[0]; t++ {
							et := tabs[0][compA[0]][compB[0]][t]
							for u := 0; u <= compA[1]+compB[1]; u++ {
								eu := tabs[1][compA[1]][compB[1]][u]
								for w := 0; w <= compA[2]+compB[2]; w++ {
									v += et * eu * tabs[2][compA[2]][compB[2]][w] * R[t][u][w]
								}
							}
						}
						v *= pref * na * nb * charges[ip]
						for sa := 0; sa < ma; sa++ {
							cA := A.coeffs.At(ka, sa)
							for sb := 0; sb < mb; sb++ {
								out[ip][sa][ca][sb][cb] += cA * B.coeffs.At(kb, sb) * v
							}
						}
					}
				}
			}
		}
	}
	return out
}

// PointCharge computes the Coulomb interaction matrices between the basis
// functions and each given point charge, one matrix per row of points (a
// Nx3 matrix, with one charge per row). The AO layout follows transform and
// kinds, as in Overlap.
func PointCharge(b Basis, points *v3.Matrix, charges []float64, transform string, kinds ...string) ([]*mat.Dense, error) {
	if points == nil || charges == nil {
		return nil, CError{ErrNilData, []string{"PointCharge"}}
	}
	if points.NVecs() != len(charges) {
		return nil, CError{ErrChargesLen, []string{"PointCharge"}}
	}
	kern := func(A, B *Shell) []blk4 {
		return pointChargeBlock(A, B, points, charges)
	}
	ret, err := assemble(b, kern, points.NVecs(), transform, kinds)
	if err != nil {
		return nil, errDecorate(err, "PointCharge")
	}
	return ret, nil
}
