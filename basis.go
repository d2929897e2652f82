/*
 * basis.go, part of gobasis.
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

	"github.com/rmera/gobasis/v3"
	"gonum.org/v1/gonum/mat"
)

// The two coordinate kinds a shell can be expanded in. Any other
// string is rejected by every function taking coordinate kinds.
const (
	Cartesian = "cartesian"
	Spherical = "spherical"
)

// Basis is an ordered sequence of shells. The order defines the global
// basis function indexing of every assembled array.
type Basis []*Shell

// RawShell is one shell as read from a basis set file: angular momentum,
// primitive exponents (K) and contraction coefficients (K rows, one column
// per segmented contraction). This is the boundary type between the parsers
// and the Shell constructor.
type RawShell struct {
	AngMom int
	Exps   []float64
	Coeffs [][]float64
}

// MakeBasis returns the shells that correspond to the given atoms in the
// given basis set. shells maps an element symbol to the raw shells of the
// set for that element, as the parse subpackage produces, atoms are the
// element symbols of the molecule and coords their coordinates, one row per
// atom. Shells are ordered by atom, and within an atom, as in the raw data.
func MakeBasis(shells map[string][]RawShell, atoms []string, coords *v3.Matrix) (Basis, error) {
	if shells == nil || atoms == nil || coords == nil {
		return nil, CError{ErrNilData, []string{"MakeBasis"}}
	}
	if coords.NVecs() != len(atoms) {
		return nil, CError{fmt.Sprintf("%s: %d atoms, %d rows", ErrAtomsCoords, len(atoms), coords.NVecs()), []string{"MakeBasis"}}
	}
	ret := make(Basis, 0, len(atoms))
	for i, atom := range atoms {
		raws, ok := shells[atom]
		if !ok {
			return nil, CError{fmt.Sprintf("%s: %s", ErrUnknownSymbol, atom), []string{"MakeBasis"}}
		}
		center := coords.VecView(i)
		for _, raw := range raws {
			if len(raw.Coeffs) != len(raw.Exps) {
				return nil, CError{fmt.Sprintf("%s (atom %s)", ErrCoeffRows, atom), []string{"MakeBasis"}}
			}
			M := 0
			if len(raw.Coeffs) > 0 {
				M = len(raw.Coeffs[0])
			}
			c := mat.NewDense(len(raw.Exps), M, nil)
			for k, row := range raw.Coeffs {
				if len(row) != M {
					return nil, CError{fmt.Sprintf("%s (atom %s)", ErrCoeffRows, atom), []string{"MakeBasis"}}
				}
				for j, v := range row {
					c.Set(k, j, v)
				}
			}
			S, err := NewShell(raw.AngMom, center, c, raw.Exps)
			if err != nil {
				err.(Error).Decorate("MakeBasis")
				return nil, err
			}
			ret = append(ret, S)
		}
	}
	return ret, nil
}

// NumCart returns the total number of Cartesian contractions in the basis,
// counting every segmented contraction of every shell.
func (b Basis) NumCart() int {
	tot := 0
	for _, s := range b {
		tot += s.NumCart() * s.NumSegCont()
	}
	return tot
}

// NumSph returns the total number of spherical contractions in the basis.
func (b Basis) NumSph() int {
	tot := 0
	for _, s := range b {
		tot += s.NumSph() * s.NumSegCont()
	}
	return tot
}

// Dim returns the total number of contractions in the basis when each shell
// is expanded in the corresponding coordinate kind of kinds.
func (b Basis) Dim(kinds []string) (int, error) {
	if len(kinds) != len(b) {
		return 0, CError{fmt.Sprintf("%s: %d kinds, %d shells", ErrKindsLen, len(kinds), len(b)), []string{"Basis.Dim"}}
	}
	tot := 0
	for i, s := range b {
		switch kinds[i] {
		case Cartesian:
			tot += s.NumCart() * s.NumSegCont()
		case Spherical:
			tot += s.NumSph() * s.NumSegCont()
		default:
			return 0, CError{fmt.Sprintf("%s: %q", ErrKindUnknown, kinds[i]), []string{"Basis.Dim"}}
		}
	}
	return tot, nil
}

// shellKinds normalizes the variadic coordinate-kind argument that the
// integral functions take. No kind means all shells spherical. A single kind
// applies to every shell. Otherwise one kind per shell is required, and each
// must be Cartesian or Spherical.
func shellKinds(b Basis, kinds []string) ([]string, error) {
	if len(b) == 0 {
		return nil, CError{ErrNilBasis, []string{"shellKinds"}}
	}
	ret := make([]string, len(b))
	switch len(kinds) {
	case 0:
		for i := range ret {
			ret[i] = Spherical
		}
	case 1:
		if kinds[0] != Cartesian && kinds[0] != Spherical {
			return nil, CError{fmt.Sprintf("%s: %q", ErrKindUnknown, kinds[0]), []string{"shellKinds"}}
		}
		for i := range ret {
			ret[i] = kinds[0]
		}
	case len(b):
		for i, k := range kinds {
			if k != Cartesian && k != Spherical {
				return nil, CError{fmt.Sprintf("%s: %q", ErrKindUnknown, k), []string{"shellKinds"}}
			}
			ret[i] = k
		}
	default:
		return nil, CError{fmt.Sprintf("%s: %d kinds, %d shells", ErrKindsLen, len(kinds), len(b)), []string{"shellKinds"}}
	}
	return ret, nil
}
