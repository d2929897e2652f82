/*
 * pointcharge_test.go, part of gobasis.
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
	"testing"

	"github.com/rmera/gobasis/v3"
	"gonum.org/v1/gonum/mat"
)

func TestBoys(Te *testing.T) {
	if !closeTo(boys(0, 0), 1, testTol) {
		Te.Errorf("F_0(0)=%v, want 1", boys(0, 0))
	}
	if !closeTo(boys(3, 0), 1.0/7, testTol) {
		Te.Errorf("F_3(0)=%v, want 1/7", boys(3, 0))
	}
	//F_0(x) = sqrt(pi/(4x))*erf(sqrt(x))
	x := 1.7
	want := math.Sqrt(math.Pi/(4*x)) * math.Erf(math.Sqrt(x))
	if !closeTo(boys(0, x), want, testTol) {
		Te.Errorf("F_0(%v)=%v, want %v", x, boys(0, x), want)
	}
}

// A unit charge sitting on the center of a normalized s function gives
// <s|1/r|s> = 2*sqrt(2*alpha/pi).
func TestPointChargeOnCenter(Te *testing.T) {
	alpha := 0.5
	ca := v3.Zeros(1)
	b := Basis{testSShell(Te, ca, alpha)}
	vs, err := PointCharge(b, v3.Zeros(1), []float64{1}, Spherical)
	if err != nil {
		Te.Fatal(err)
	}
	want := 2 * math.Sqrt(2*alpha/math.Pi)
	if !closeTo(vs[0].At(0, 0), want, testTol) {
		Te.Errorf("on-center point charge: got %v, want %v", vs[0].At(0, 0), want)
	}
}

// Off center, <s|1/|r-C||s> = erf(sqrt(2*alpha)*d)/d, and the block scales
// linearly with the charge.
func TestPointChargeOffCenter(Te *testing.T) {
	alpha := 0.8
	d := 1.9
	b := Basis{testSShell(Te, v3.Zeros(1), alpha)}
	points, _ := v3.NewMatrix([]float64{0, d, 0, 0, d, 0})
	vs, err := PointCharge(b, points, []float64{1, -2.5}, Spherical)
	if err != nil {
		Te.Fatal(err)
	}
	want := math.Erf(math.Sqrt(2*alpha)*d) / d
	if !closeTo(vs[0].At(0, 0), want, testTol) {
		Te.Errorf("off-center point charge: got %v, want %v", vs[0].At(0, 0), want)
	}
	if !closeTo(vs[1].At(0, 0), -2.5*want, testTol) {
		Te.Errorf("charge scaling: got %v, want %v", vs[1].At(0, 0), -2.5*want)
	}
}

func TestPointChargeSymmetry(Te *testing.T) {
	b := testBasis(Te)
	points, _ := v3.NewMatrix([]float64{0.3, -0.7, 1.1})
	vs, err := PointCharge(b, points, []float64{1}, Cartesian)
	if err != nil {
		Te.Fatal(err)
	}
	m := vs[0]
	r, c := m.Dims()
	if r != b.NumCart() || c != r {
		Te.Fatalf("wrong shape %dx%d", r, c)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if !closeTo(m.At(i, j), m.At(j, i), testTol) {
				Te.Errorf("not symmetric at (%d,%d)", i, j)
			}
		}
	}
}

func TestPointChargeErrors(Te *testing.T) {
	b := testBasis(Te)
	if _, err := PointCharge(b, nil, []float64{1}, Cartesian); err == nil {
		Te.Error("nil points accepted")
	}
	if _, err := PointCharge(b, v3.Zeros(2), []float64{1}, Cartesian); err == nil {
		Te.Error("point/charge count mismatch accepted")
	}
}

func TestElectrostaticPotential(Te *testing.T) {
	alpha := 0.5
	nucleus := v3.Zeros(1)
	b := Basis{testSShell(Te, nucleus, alpha)}
	d := 2.0
	points, _ := v3.NewMatrix([]float64{0, 0, d})
	//with a zero density only the nuclear term remains
	zero := mat.NewDense(1, 1, nil)
	phi, err := ElectrostaticPotential(b, zero, points, nucleus, []float64{1}, 0, Spherical)
	if err != nil {
		Te.Fatal(err)
	}
	if !closeTo(phi[0], 1/d, testTol) {
		Te.Errorf("bare nucleus potential: got %v, want %v", phi[0], 1/d)
	}
	//one electron in the s function screens the nucleus
	one := mat.NewDense(1, 1, []float64{1})
	phi, err = ElectrostaticPotential(b, one, points, nucleus, []float64{1}, 0, Spherical)
	if err != nil {
		Te.Fatal(err)
	}
	want := 1/d - math.Erf(math.Sqrt(2*alpha)*d)/d
	if !closeTo(phi[0], want, testTol) {
		Te.Errorf("screened potential: got %v, want %v", phi[0], want)
	}
}

// A point on top of a nucleus must not blow up: that nuclear term is
// dropped, whatever the threshold.
func TestElectrostaticPotentialCoincident(Te *testing.T) {
	nucleus := v3.Zeros(1)
	b := Basis{testSShell(Te, nucleus, 0.5)}
	zero := mat.NewDense(1, 1, nil)
	phi, err := ElectrostaticPotential(b, zero, v3.Zeros(1), nucleus, []float64{1}, 0, Spherical)
	if err != nil {
		Te.Fatal(err)
	}
	if phi[0] != 0 || math.IsInf(phi[0], 0) || math.IsNaN(phi[0]) {
		Te.Errorf("coincident nuclear term not dropped, got %v", phi[0])
	}
	//an explicit threshold drops more distant nuclei too
	points, _ := v3.NewMatrix([]float64{0, 0, 1})
	phi, err = ElectrostaticPotential(b, zero, points, nucleus, []float64{1}, 1.5, Spherical)
	if err != nil {
		Te.Fatal(err)
	}
	if phi[0] != 0 {
		Te.Errorf("thresholded nuclear term not dropped, got %v", phi[0])
	}
}

func TestElectrostaticPotentialErrors(Te *testing.T) {
	b := testBasis(Te)
	points := v3.Zeros(1)
	nuclei := v3.Zeros(1)
	charges := []float64{1}
	dim := b.NumSph()
	good := mat.NewDense(dim, dim, nil)
	if _, err := ElectrostaticPotential(b, nil, points, nuclei, charges, 0, Spherical); err == nil {
		Te.Error("nil density accepted")
	}
	if _, err := ElectrostaticPotential(b, mat.NewDense(2, 2, nil), points, nuclei, charges, 0, Spherical); err == nil {
		Te.Error("mis-sized density accepted")
	}
	asym := mat.NewDense(dim, dim, nil)
	asym.Set(0, 1, 0.5)
	if _, err := ElectrostaticPotential(b, asym, points, nuclei, charges, 0, Spherical); err == nil {
		Te.Error("asymmetric density accepted")
	}
	if _, err := ElectrostaticPotential(b, good, points, nuclei, []float64{1, 1}, 0, Spherical); err == nil {
		Te.Error("nucleus/charge count mismatch accepted")
	}
	if _, err := ElectrostaticPotential(b, good, points, nuclei, charges, -1, Spherical); err == nil {
		Te.Error("negative threshold accepted")
	}
}
