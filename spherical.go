/*
 * spherical.go, part of gobasis.
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
	"sync"

	"gonum.org/v1/gonum/mat"
)

var cartToSphCache = struct {
	sync.Mutex
	m map[int]*mat.Dense
}{m: make(map[int]*mat.Dense)}

// CartToSph returns the (2l+1)x((l+1)(l+2)/2) matrix taking normalized
// Cartesian Gaussians of angular momentum l to real solid-harmonic
// (spherical) Gaussians. Rows run over m=-l..l, columns over the Cartesian
// components in the package ordering. The matrices are cached, so the
// returned value is shared and must not be modified.
func CartToSph(l int) *mat.Dense {
	if l < 0 {
		panic(ErrNegAngMom)
	}
	cartToSphCache.Lock()
	defer cartToSphCache.Unlock()
	if t, ok := cartToSphCache.m[l]; ok {
		return t
	}
	comps := cartComponents(l)
	t := mat.NewDense(2*l+1, len(comps), nil)
	for m := -l; m <= l; m++ {
		for c, comp := range comps {
			t.Set(m+l, c, sphCoeff(l, m, comp))
		}
	}
	cartToSphCache.m[l] = t
	return t
}

// sphCoeff is the coefficient of the normalized Cartesian Gaussian with
// components (lx,ly,lz) in the real solid harmonic of order (l,m), following
// Schlegel and Frisch, Int J Quantum Chem 54, 83 (1995).
func sphCoeff(l, m int, comp [3]int) float64 {
	lx, ly, lz := comp[0], comp[1], comp[2]
	ma := m
	if ma < 0 {
		ma = -ma
	}
	if (lx+ly+ma)%2 != 0 || lx+ly < ma {
		return 0
	}
	j := (lx + ly - ma) / 2
	pre := math.Sqrt(fact(2*lx)*fact(2*ly)*fact(2*lz)*fact(l)*fact(l-ma)/
		(fact(2*l)*fact(lx)*fact(ly)*fact(lz)*fact(l+ma))) /
		(math.Exp2(float64(l)) * fact(l))
	sum := 0.0
	for i := j; 2*i <= l-ma; i++ {
		s1 := binom(l, i) * binom(i, j) * fact(2*l-2*i) / fact(l-ma-2*i)
		if i%2 != 0 {
			s1 = -s1
		}
		s2 := 0.0
		for k := 0; k <= j; k++ {
			b := binom(j, k) * binom(ma, lx-2*k)
			if b == 0 {
				continue
			}
			t := ma - lx + 2*k
			if m >= 0 {
				if t%2 != 0 {
					continue
				}
				if (t/2)%2 != 0 {
					b = -b
				}
			} else {
				if t%2 == 0 {
					continue
				}
				if ((t-1)/2)%2 != 0 {
					b = -b
				}
			}
			s2 += b
		}
		sum += s1 * s2
	}
	ret := pre * sum
	if m != 0 {
		ret *= math.Sqrt2
	}
	return ret
}
