/*
 * twoindex.go, part of gobasis.
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
	"runtime"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// pairKernel computes the contraction-level Cartesian integral blocks
// between two shells, one blk4 per result.
type pairKernel func(A, B *Shell) []blk4

// shellWidth is the number of rows a shell contributes to the assembled
// matrices under the given coordinate kind.
func shellWidth(s *Shell, kind string) int {
	if kind == Cartesian {
		return s.NumSegCont() * s.NumCart()
	}
	return s.NumSegCont() * s.NumSph()
}

// resolveKinds gives the coordinate kind of every shell: the kinds argument,
// normalized per the shellKinds conventions when given, or transform
// uniformly otherwise.
func resolveKinds(b Basis, transform string, kinds []string) ([]string, error) {
	if len(b) == 0 {
		return nil, CError{ErrNilBasis, []string{"resolveKinds"}}
	}
	if len(kinds) > 0 {
		return shellKinds(b, kinds)
	}
	if transform != Cartesian && transform != Spherical {
		return nil, CError{ErrKindUnknown, []string{"resolveKinds"}}
	}
	perShell := make([]string, len(b))
	for i := range perShell {
		perShell[i] = transform
	}
	return perShell, nil
}

// assemble runs the kernel over the shell pairs of the basis and builds the
// n full integral matrices, applying contraction normalization and, per
// shell, the Cartesian-to-spherical transform. transform gives the
// coordinate kind for every shell; kinds, when given, override it following
// the shellKinds conventions. All the kernels in this package are symmetric
// (kern(B,A) is the blockwise transpose of kern(A,B)), so assemble computes
// only the upper triangle of pairs and mirrors it; assembleFull is the
// variant for non-symmetric two-index quantities. Shell pairs are processed
// concurrently, with at most GOMAXPROCS kernels in flight. Each pair writes
// to a disjoint region of the result matrices, so no further
// synchronization is needed.
func assemble(b Basis, kern pairKernel, n int, transform string, kinds []string) ([]*mat.Dense, error) {
	return assembleWith(b, kern, n, transform, kinds, true)
}

// assembleFull is assemble for kernels without the transpose symmetry: every
// shell pair, both orders, goes through the kernel.
func assembleFull(b Basis, kern pairKernel, n int, transform string, kinds []string) ([]*mat.Dense, error) {
	return assembleWith(b, kern, n, transform, kinds, false)
}

func assembleWith(b Basis, kern pairKernel, n int, transform string, kinds []string, symmetric bool) ([]*mat.Dense, error) {
	perShell, err := resolveKinds(b, transform, kinds)
	if err != nil {
		return nil, errDecorate(err, "assemble")
	}
	offs := make([]int, len(b))
	dim := 0
	for i, s := range b {
		offs[i] = dim
		dim += shellWidth(s, perShell[i])
	}
	ret := make([]*mat.Dense, n)
	for o := range ret {
		ret[o] = mat.NewDense(dim, dim, nil)
	}
	lim := make(chan struct{}, runtime.GOMAXPROCS(-1))
	var wg sync.WaitGroup
	for i := range b {
		jstart := 0
		if symmetric {
			jstart = i
		}
		for j := jstart; j < len(b); j++ {
			wg.Add(1)
			lim <- struct{}{}
			go func(i, j int) {
				defer wg.Done()
				defer func() { <-lim }()
				blocks := kern(b[i], b[j])
				for o, blk := range blocks {
					sub := blockMatrix(b[i], b[j], blk, perShell[i], perShell[j])
					placeBlock(ret[o], offs[i], offs[j], sub, symmetric && i != j)
				}
			}(i, j)
		}
	}
	wg.Wait()
	return ret, nil
}

// blockMatrix turns a contraction-level Cartesian block into the dense
// sub-matrix the pair contributes, applying contraction normalization on
// both sides and then, per side, the spherical transform if its kind asks
// for it. Rows and columns run over (segmented contraction, component), the
// component index being the fastest.
func blockMatrix(A, B *Shell, blk blk4, kindA, kindB string) *mat.Dense {
	la, lb := A.NumCart(), B.NumCart()
	ma, mb := A.NumSegCont(), B.NumSegCont()
	wa, wb := la, lb
	var ta, tb *mat.Dense
	if kindA == Spherical {
		wa = A.NumSph()
		ta = CartToSph(A.AngMom())
	}
	if kindB == Spherical {
		wb = B.NumSph()
		tb = CartToSph(B.AngMom())
	}
	ret := mat.NewDense(ma*wa, mb*wb, nil)
	sub := mat.NewDense(la, lb, nil)
	for sa := 0; sa < ma; sa++ {
		for sb := 0; sb < mb; sb++ {
			for ca := 0; ca < la; ca++ {
				na := A.contNorm.At(sa, ca)
				for cb := 0; cb < lb; cb++ {
					sub.Set(ca, cb, na*B.contNorm.At(sb, cb)*blk[sa][ca][sb][cb])
				}
			}
			tr := sub
			if ta != nil {
				tmp := mat.NewDense(wa, lb, nil)
				tmp.Mul(ta, tr)
				tr = tmp
			}
			if tb != nil {
				tmp := mat.NewDense(tr.RawMatrix().Rows, wb, nil)
				tmp.Mul(tr, tb.T())
				tr = tmp
			}
			for r := 0; r < wa; r++ {
				for c := 0; c < wb; c++ {
					ret.Set(sa*wa+r, sb*wb+c, tr.At(r, c))
				}
			}
		}
	}
	return ret
}

// placeBlock writes the pair sub-matrix into the full matrix at the given
// offsets, and mirrors its transpose across the diagonal when the pair is
// off-diagonal.
func placeBlock(full *mat.Dense, ro, co int, sub *mat.Dense, mirror bool) {
	r, c := sub.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := sub.At(i, j)
			full.Set(ro+i, co+j, v)
			if mirror {
				full.Set(co+j, ro+i, v)
			}
		}
	}
}

// lincomb changes the basis of a symmetric two-index matrix with the given
// transformation, C*M*C^T. C needs as many columns as M has rows, and may
// have any number of rows, so rectangular transformations, like truncated
// molecular orbital sets, work too.
func lincomb(trans *mat.Dense, m *mat.Dense) (*mat.Dense, error) {
	if trans == nil || m == nil {
		return nil, CError{ErrNilData, []string{"lincomb"}}
	}
	tr, tc := trans.Dims()
	mr, _ := m.Dims()
	if tc != mr {
		return nil, CError{ErrTransShape, []string{"lincomb"}}
	}
	tmp := mat.NewDense(tr, mr, nil)
	tmp.Mul(trans, m)
	ret := mat.NewDense(tr, tr, nil)
	ret.Mul(tmp, trans.T())
	return ret, nil
}
