/*
 * v3.go, part of gobasis.
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

package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a set of points in 3D space, one point per row. The underlying
// implementation is a gonum Dense.
type Matrix struct {
	*mat.Dense
}

// Matrix2Dense returns the gonum Dense underlying A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

// Dense2Matrix wraps A in a Matrix. It returns an error if A does not have
// exactly 3 columns.
func Dense2Matrix(A *mat.Dense) (*Matrix, error) {
	_, c := A.Dims()
	if c != 3 {
		return nil, Error{fmt.Sprintf("gobasis/v3: Dense with %d columns, must have 3", c), []string{"Dense2Matrix"}}
	}
	return &Matrix{A}, nil
}

// NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("gobasis/v3: input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

// Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

// VecView returns a view of the ith vector of the matrix. Changes in the view
// are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

// View returns a view of F starting from i,0 and spanning r rows and
// all 3 columns.
func (F *Matrix) View(i, r int) *Matrix {
	ret := F.Dense.Slice(i, i+r, 0, 3).(*mat.Dense)
	return &Matrix{ret}
}

// NVecs returns the number of points contained in F.
func (F *Matrix) NVecs() int {
	r, _ := F.Dims()
	return r
}

// Clone returns an independent copy of F.
func (F *Matrix) Clone() *Matrix {
	r, _ := F.Dims()
	ret := Zeros(r)
	ret.Copy(F.Dense)
	return ret
}

// SetVecs puts the points of A in F, starting at the ith row of F.
// It panics if there is not enough room.
func (F *Matrix) SetVecs(i int, A *Matrix) {
	ar, _ := A.Dims()
	if ar+i > F.NVecs() {
		panic(ErrShape)
	}
	for k := 0; k < ar; k++ {
		for j := 0; j < 3; j++ {
			F.Set(i+k, j, A.At(k, j))
		}
	}
}

// SquaredDist returns the square of the Euclidean distance between the first
// points of a and b. Mostly used on 1x3 matrices.
func SquaredDist(a, b *Matrix) float64 {
	var d2 float64
	for i := 0; i < 3; i++ {
		d := a.At(0, i) - b.At(0, i)
		d2 += d * d
	}
	return d2
}

// Errors

const ErrShape = "gobasis/v3: dimension mismatch"

// Error is the v3 error type. It implements the gobasis Error interface.
type Error struct {
	message string
	deco    []string
}

func (err Error) Error() string { return err.message }

// Decorate adds new information to the error, and returns the accumulated
// decoration. An empty string just returns the current value.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}
