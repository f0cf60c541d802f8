/*
 * doc.go, part of goShower.
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

/*Package v3 implements a Matrix type representing a row-major 3D matrix (i.e. a Nx3 matrix).
The v3.Matrix is used to represent sets of points in 3D space in goShower: the end points of
shower tracks and the vertices of meshes. It is based on gonum's (gonum.org/v1/gonum) Dense type,
with some additional restrictions because of the fixed number of columns and with some
additional functions that were found useful for the purposes of goShower.

Single points are represented with gonum's r3.Vec, and the Matrix type has a few
methods to move between the two.
*/
package v3
