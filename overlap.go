/*
 * overlap.go, part of gobasis.
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
	"github.com/rmera/gobasis/v3"
	"gonum.org/v1/gonum/mat"
)

// Overlap computes the overlap matrix of the basis. transform selects the
// atomic orbital layout, Cartesian or Spherical, for every shell; kinds,
// when given, override it with either a single kind for all shells or one
// kind per shell, allowing mixed layouts. The overlap is the zero-order
// multipole moment, and this function is just that special case.
func Overlap(b Basis, transform string, kinds ...string) (*mat.Dense, error) {
	kern := func(A, B *Shell) []blk4 {
		return momentBlock(A, B, v3.Zeros(1), [][3]int{{0, 0, 0}})
	}
	ret, err := assemble(b, kern, 1, transform, kinds)
	if err != nil {
		return nil, errDecorate(err, "Overlap")
	}
	return ret[0], nil
}

// OverlapCartesian is Overlap with every shell in Cartesian layout.
func OverlapCartesian(b Basis) (*mat.Dense, error) {
	return Overlap(b, Cartesian)
}

// OverlapSpherical is Overlap with every shell in real solid-harmonic
// layout.
func OverlapSpherical(b Basis) (*mat.Dense, error) {
	return Overlap(b, Spherical)
}

// OverlapLincomb computes the overlap matrix in the basis of linear
// combinations given by the rows of trans, C*S*C^T. The combination applies
// over the layout selected by kinds, spherical by default.
func OverlapLincomb(b Basis, trans *mat.Dense, kinds ...string) (*mat.Dense, error) {
	s, err := Overlap(b, Spherical, kinds...)
	if err != nil {
		return nil, err
	}
	ret, err := lincomb(trans, s)
	if err != nil {
		return nil, errDecorate(err, "OverlapLincomb")
	}
	return ret, nil
}
