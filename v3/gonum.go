/*
 * gonum.go, part of goShower.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package v3

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

//Matrix is a set of vectors in 3D space. Within the package it is understood
//that a "vector" is a row vector, i.e. the cartesian coordinates of a point in 3D space.
//The name of some functions in the library reflect this.
type Matrix struct {
	*mat.Dense
}

func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

func Dense2Matrix(A *mat.Dense) *Matrix {
	return &Matrix{A}
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
//The data slice is used as the backing storage of the Matrix, not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	if l == 0 {
		return nil, Error{"Input slice is empty", []string{"NewMatrix"}, true}
	}
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d: %d", l, cols, l%cols), []string{"NewMatrix"}, true}
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//NVecs return the number of vecs in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//Vec returns the ith vector of F as a r3.Vec
func (F *Matrix) Vec(i int) r3.Vec {
	return r3.Vec{X: F.At(i, 0), Y: F.At(i, 1), Z: F.At(i, 2)}
}

//SetVec sets the ith vector of F to v
func (F *Matrix) SetVec(i int, v r3.Vec) {
	F.Set(i, 0, v.X)
	F.Set(i, 1, v.Y)
	F.Set(i, 2, v.Z)
}

//AddVec adds the vector vec to each vector in A, putting the
//result in the receiver. A and the receiver can be the same.
func (F *Matrix) AddVec(A *Matrix, vec r3.Vec) {
	ar := A.NVecs()
	if ar != F.NVecs() {
		panic(ErrShape)
	}
	for i := 0; i < ar; i++ {
		F.SetVec(i, r3.Add(A.Vec(i), vec))
	}
}

//ScaleAll multiplies each coordinate in A by f, putting the
//result in the receiver. A and the receiver can be the same.
func (F *Matrix) ScaleAll(A *Matrix, f float64) {
	if A.NVecs() != F.NVecs() {
		panic(ErrShape)
	}
	F.Dense.Scale(f, A.Dense)
}

//Bounds returns two vectors with the smallest and the largest
//value of each coordinate in F, i.e. the corners of the axis-aligned
//box containing all the vectors in F.
func (F *Matrix) Bounds() (min, max r3.Vec) {
	r := F.NVecs()
	col := make([]float64, r)
	var mins, maxs [3]float64
	for j := 0; j < 3; j++ {
		mat.Col(col, j, F)
		mins[j] = floats.Min(col)
		maxs[j] = floats.Max(col)
	}
	return r3.Vec{X: mins[0], Y: mins[1], Z: mins[2]}, r3.Vec{X: maxs[0], Y: maxs[1], Z: maxs[2]}
}

//Centroid returns the geometric center of the vectors in F.
func (F *Matrix) Centroid() r3.Vec {
	r := F.NVecs()
	col := make([]float64, r)
	var c [3]float64
	for j := 0; j < 3; j++ {
		mat.Col(col, j, F)
		c[j] = floats.Sum(col) / float64(r)
	}
	return r3.Vec{X: c[0], Y: c[1], Z: c[2]}
}

//Rows returns a copy of the vectors in F as a slice of arrays,
//which is easy to serialize.
func (F *Matrix) Rows() [][3]float64 {
	r := F.NVecs()
	ret := make([][3]float64, r)
	for i := range ret {
		ret[i] = [3]float64{F.At(i, 0), F.At(i, 1), F.At(i, 2)}
	}
	return ret
}

//String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r, c := F.Dims()
	v := make([]string, r+2)
	v[0] = "\n["
	v[len(v)-1] = " ]"
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat.Row(row, i, F) //now row has a slice with the row i
		if i == 0 {
			v[i+1] = fmt.Sprintf("%6.2f %6.2f %6.2f\n", row[0], row[1], row[2])
			continue
		} else if i == r-1 {
			v[i+1] = fmt.Sprintf(" %6.2f %6.2f %6.2f", row[0], row[1], row[2])
			continue
		} else {
			v[i+1] = fmt.Sprintf(" %6.2f %6.2f %6.2f\n", row[0], row[1], row[2])
		}
	}
	v[len(v)-2] = strings.Replace(v[len(v)-2], "\n", "", 1)
	return strings.Join(v, "")
}

//Errors

type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return "goShower/v3: " + err.message
}

//Decorate returns the decoration slice of the error with dec added.
//The error itself is not changed.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical return whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix = PanicMsg("goShower/v3: A Matrix should have 3 columns")
	ErrShape        = PanicMsg("goShower/v3: Dimension mismatch")
)
