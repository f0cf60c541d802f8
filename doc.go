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

/*Package shower reads the tracks of simulated cosmic-ray air showers and prepares them to be
displayed as an animated 3D scene.

The input is a CSV file with one row per simulated particle track. Each row has to contain,
at least, the columns x_start, y_start, z_start, x_end, y_end, z_end, t_start and t_end.
The tracks are scaled, translated to an origin (the point where the shower is anchored in
the scene), filtered (only tracks that have a non-negligible length and go down are kept),
and colored according to the moment in the shower development at which they happen.
The resulting Dataset is sorted by the starting time of the tracks.

Rows that can't be used are never fatal. Instead, every row gets a RowResult, and the
results are collected in a Report that the caller can inspect or print.

The construction of the scene itself is done in the scene subpackage, and the
frame schedule in the timing subpackage.
*/
package shower
