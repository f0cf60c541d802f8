/*
 * v3_test.go
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
 */

package v3

import (
	"fmt"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestNewMatrix(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 3 {
		Te.Errorf("expected 3 vectors, got %d", A.NVecs())
	}
	if _, err = NewMatrix([]float64{1, 2, 3, 4}); err == nil {
		Te.Error("a slice of 4 elements should not make a Matrix")
	}
	if _, err = NewMatrix(nil); err == nil {
		Te.Error("an empty slice should not make a Matrix")
	}
	fmt.Println(A)
}

func TestVecs(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	if got := A.Vec(3); got != (r3.Vec{X: 10, Y: 11, Z: 12}) {
		Te.Errorf("Vec(3)=%v", got)
	}
	A.SetVec(0, r3.Vec{X: -1, Y: -2, Z: -3})
	if A.At(0, 2) != -3 {
		Te.Errorf("SetVec did not set the vector")
	}
}

func TestAddVecBounds(Te *testing.T) {
	A, err := NewMatrix([]float64{0, 0, 0, 1, -1, 2, -3, 4, 0.5})
	if err != nil {
		Te.Fatal(err)
	}
	A.AddVec(A, r3.Vec{X: 10, Y: 20, Z: 30})
	min, max := A.Bounds()
	if min != (r3.Vec{X: 7, Y: 19, Z: 30}) {
		Te.Errorf("wrong minimum %v", min)
	}
	if max != (r3.Vec{X: 11, Y: 24, Z: 32}) {
		Te.Errorf("wrong maximum %v", max)
	}
	c := A.Centroid()
	if c.X != 28.0/3 {
		Te.Errorf("wrong centroid %v", c)
	}
}

func TestRows(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		Te.Fatal(err)
	}
	back := A.Rows()
	if len(back) != 2 || back[1] != [3]float64{4, 5, 6} {
		Te.Errorf("wrong rows: %v", back)
	}
	back[0][0] = 100
	if A.At(0, 0) != 1 {
		Te.Errorf("Rows should return a copy")
	}
}

func TestScaleAll(Te *testing.T) {
	A, err := NewMatrix([]float64{1, -2, 3, 4, 5, 0.5})
	if err != nil {
		Te.Fatal(err)
	}
	B := Zeros(2)
	B.ScaleAll(A, 2)
	if B.Vec(1) != (r3.Vec{X: 8, Y: 10, Z: 1}) || A.Vec(1) != (r3.Vec{X: 4, Y: 5, Z: 0.5}) {
		Te.Errorf("wrong scaling %v (from %v)", B, A)
	}
	A.ScaleAll(A, -1)
	if A.Vec(0) != (r3.Vec{X: -1, Y: 2, Z: -3}) {
		Te.Errorf("wrong in-place scaling %v", A)
	}
	defer func() {
		if r := recover(); r != ErrShape {
			Te.Errorf("expected ErrShape panic, got %v", r)
		}
	}()
	Zeros(3).ScaleAll(A, 2)
}

func TestShapePanic(Te *testing.T) {
	defer func() {
		if r := recover(); r != ErrShape {
			Te.Errorf("expected ErrShape panic, got %v", r)
		}
	}()
	A := Zeros(3)
	B := Zeros(2)
	B.AddVec(A, r3.Vec{})
}
