/*
 * moment_test.go, part of gobasis.
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
	"testing"

	"github.com/rmera/gobasis/v3"
	"gonum.org/v1/gonum/mat"
)

func TestMomentZeroOrder(Te *testing.T) {
	b := testBasis(Te)
	center, _ := v3.NewMatrix([]float64{0.3, -0.2, 0.7})
	ms, err := Moment(b, center, [][3]int{{0, 0, 0}}, Spherical)
	if err != nil {
		Te.Fatal(err)
	}
	s, err := OverlapSpherical(b)
	if err != nil {
		Te.Fatal(err)
	}
	//the zero-order moment is the overlap, whatever the center
	if !mat.EqualApprox(ms[0], s, testTol) {
		Te.Error("zero-order moment differs from the overlap")
	}
}

// For a normalized s function at A, <s|x-Cx|s> = Ax-Cx.
func TestMomentSDipole(Te *testing.T) {
	ca, _ := v3.NewMatrix([]float64{0.5, -0.25, 1})
	b := Basis{testSShell(Te, ca, 0.7)}
	center, _ := v3.NewMatrix([]float64{0.1, 0.1, 0.1})
	orders := [][3]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	ms, err := Moment(b, center, orders, Spherical)
	if err != nil {
		Te.Fatal(err)
	}
	if len(ms) != 3 {
		Te.Fatalf("got %d matrices, want 3", len(ms))
	}
	for i := range orders {
		want := ca.At(0, i) - center.At(0, i)
		if !closeTo(ms[i].At(0, 0), want, testTol) {
			Te.Errorf("axis %d dipole: got %v, want %v", i, ms[i].At(0, 0), want)
		}
	}
}

// For a normalized s function at A, <s|(x-Ax)^2|s> about its own center is
// the Gaussian second moment 1/(4*alpha) per axis.
func TestMomentSQuadrupole(Te *testing.T) {
	alpha := 0.9
	ca, _ := v3.NewMatrix([]float64{1, 2, 3})
	b := Basis{testSShell(Te, ca, alpha)}
	ms, err := Moment(b, ca, [][3]int{{2, 0, 0}, {0, 2, 0}, {0, 0, 2}}, Cartesian)
	if err != nil {
		Te.Fatal(err)
	}
	want := 1 / (4 * alpha)
	for i, m := range ms {
		if !closeTo(m.At(0, 0), want, testTol) {
			Te.Errorf("axis %d second moment: got %v, want %v", i, m.At(0, 0), want)
		}
	}
}

func TestMomentSymmetry(Te *testing.T) {
	b := testBasis(Te)
	center, _ := v3.NewMatrix([]float64{0.4, 0.4, 0.4})
	ms, err := Moment(b, center, [][3]int{{1, 1, 0}, {2, 0, 1}}, Cartesian)
	if err != nil {
		Te.Fatal(err)
	}
	for o, m := range ms {
		r, c := m.Dims()
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				if !closeTo(m.At(i, j), m.At(j, i), testTol) {
					Te.Errorf("moment %d not symmetric at (%d,%d)", o, i, j)
				}
			}
		}
	}
}

// The block for (B,A) is the blockwise transpose of the block for (A,B).
func TestMomentBlockTranspose(Te *testing.T) {
	ca := v3.Zeros(1)
	cb, _ := v3.NewMatrix([]float64{0.5, -0.9, 1.1})
	A := testSShell(Te, ca, 0.6)
	B := testPShell(Te, cb)
	center, _ := v3.NewMatrix([]float64{0.2, 0.2, 0.2})
	orders := [][3]int{{0, 0, 0}, {1, 0, 1}}
	ab := momentBlock(A, B, center, orders)
	ba := momentBlock(B, A, center, orders)
	for o := range orders {
		for sa := 0; sa < A.NumSegCont(); sa++ {
			for ia := 0; ia < A.NumCart(); ia++ {
				for sb := 0; sb < B.NumSegCont(); sb++ {
					for ib := 0; ib < B.NumCart(); ib++ {
						if !closeTo(ab[o][sa][ia][sb][ib], ba[o][sb][ib][sa][ia], testTol) {
							Te.Errorf("order %d: block (A,B)[%d,%d,%d,%d] != transpose", o, sa, ia, sb, ib)
						}
					}
				}
			}
		}
	}
}

func TestMomentErrors(Te *testing.T) {
	b := testBasis(Te)
	center := v3.Zeros(1)
	if _, err := Moment(b, nil, [][3]int{{0, 0, 0}}, Cartesian); err == nil {
		Te.Error("nil center accepted")
	}
	if _, err := Moment(b, v3.Zeros(2), [][3]int{{0, 0, 0}}, Cartesian); err == nil {
		Te.Error("mis-shaped center accepted")
	}
	if _, err := Moment(b, center, [][3]int{{-1, 0, 0}}, Cartesian); err == nil {
		Te.Error("negative moment order accepted")
	}
}

func TestMomentLincomb(Te *testing.T) {
	b := testBasis(Te)
	center := v3.Zeros(1)
	dim := b.NumSph()
	eye := mat.NewDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		eye.Set(i, i, 1)
	}
	got, err := MomentLincomb(b, center, [][3]int{{1, 0, 0}}, eye)
	if err != nil {
		Te.Fatal(err)
	}
	plain, err := Moment(b, center, [][3]int{{1, 0, 0}}, Spherical)
	if err != nil {
		Te.Fatal(err)
	}
	if !mat.EqualApprox(got[0], plain[0], testTol) {
		Te.Error("identity transformation changed the moment")
	}
}
