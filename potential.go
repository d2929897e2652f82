/*
 * potential.go, part of gobasis.
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
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ElectrostaticPotential computes the molecular electrostatic potential at
// each of the given points (a Nx3 matrix), as the nuclear contribution minus
// the electronic one,
//
//	phi(r) = sum_A Z_A/|r-R_A| - sum_pq D_pq <p|1/|r'-r||q>
//
// with nuclei a Mx3 matrix of nuclear positions, nuclearCharges their
// charges, and density the one-electron density matrix in the AO layout
// selected by transform and kinds (see Overlap). Nuclear terms closer to a
// point than threshold are dropped rather than allowed to blow up, and a
// point sitting exactly on a nucleus never contributes, whatever the
// threshold.
func ElectrostaticPotential(b Basis, density *mat.Dense, points, nuclei *v3.Matrix, nuclearCharges []float64, threshold float64, transform string, kinds ...string) ([]float64, error) {
	if density == nil || points == nil || nuclei == nil || nuclearCharges == nil {
		return nil, CError{ErrNilData, []string{"ElectrostaticPotential"}}
	}
	if nuclei.NVecs() != len(nuclearCharges) {
		return nil, CError{ErrChargesLen, []string{"ElectrostaticPotential"}}
	}
	if threshold < 0 {
		return nil, CError{ErrNegThreshold, []string{"ElectrostaticPotential"}}
	}
	perShell, err := resolveKinds(b, transform, kinds)
	if err != nil {
		return nil, errDecorate(err, "ElectrostaticPotential")
	}
	dim, err := b.Dim(perShell)
	if err != nil {
		return nil, errDecorate(err, "ElectrostaticPotential")
	}
	dr, dc := density.Dims()
	if dr != dim || dc != dim {
		return nil, CError{ErrDensityShape, []string{"ElectrostaticPotential"}}
	}
	for i := 0; i < dr; i++ {
		for j := i + 1; j < dc; j++ {
			if math.Abs(density.At(i, j)-density.At(j, i)) > appzero {
				return nil, CError{ErrDensityShape, []string{"ElectrostaticPotential"}}
			}
		}
	}
	den := density
	if density.RawMatrix().Stride != dc {
		//a view; compact it so the raw data runs contiguously
		den = mat.DenseCopyOf(density)
	}
	np := points.NVecs()
	unit := make([]float64, np)
	for i := range unit {
		unit[i] = 1
	}
	ints, err := PointCharge(b, points, unit, transform, kinds...)
	if err != nil {
		return nil, errDecorate(err, "ElectrostaticPotential")
	}
	ret := make([]float64, np)
	for ip := 0; ip < np; ip++ {
		var nuc float64
		for in := 0; in < nuclei.NVecs(); in++ {
			d := math.Sqrt(v3.SquaredDist(points.VecView(ip), nuclei.VecView(in)))
			if d < threshold {
				continue
			}
			nuc += nuclearCharges[in] * safeInv(d)
		}
		//the electronic term is the Frobenius inner product of the
		//density with the point-charge integrals
		ele := floats.Dot(den.RawMatrix().Data, ints[ip].RawMatrix().Data)
		ret[ip] = nuc - ele
	}
	return ret, nil
}
