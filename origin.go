/*
 * origin.go, part of goShower.
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

package shower

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r3"
)

//FixedOrigin returns an origin offset at the given point.
func FixedOrigin(x, y, z float64) r3.Vec {
	return r3.Vec{X: x, Y: y, Z: z}
}

//DefaultOrigin returns the origin offset used when nothing else is given, 2 units over
//the center of the scene.
func DefaultOrigin() r3.Vec {
	return FixedOrigin(0, 0, 2)
}

//ShellOrigin samples an origin offset uniformly from the volume of the spherical
//shell centered at (0,0,0) with inner radius rmin and outer radius rmax.
//rmin can be equal to rmax, in which case the point lies on the sphere.
//If rng is nil, the global source of math/rand/v2 is used.
func ShellOrigin(rng *rand.Rand, rmin, rmax float64) (r3.Vec, error) {
	if rmin < 0 || rmax < rmin {
		return r3.Vec{}, SError{message: BadShellRadius, deco: []string{"ShellOrigin"}, critical: true}
	}
	norm := rand.NormFloat64
	unif := rand.Float64
	if rng != nil {
		norm = rng.NormFloat64
		unif = rng.Float64
	}
	//A 3D gaussian gives an isotropic direction.
	var d r3.Vec
	var n float64
	for n == 0 {
		d = r3.Vec{X: norm(), Y: norm(), Z: norm()}
		n = r3.Norm(d)
	}
	rmin3 := rmin * rmin * rmin
	rmax3 := rmax * rmax * rmax
	r := math.Cbrt(rmin3 + unif()*(rmax3-rmin3))
	return r3.Scale(r/n, d), nil
}
