/*
 * options.go, part of goShower.
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

//Columns holds the names of the CSV columns that are read for each track,
//in this order: x_start, y_start, z_start, x_end, y_end, z_end, t_start, t_end
type Columns [8]string

//DefaultColumns returns the column names used in the shower simulation exports.
func DefaultColumns() Columns {
	return Columns{"x_start", "y_start", "z_start", "x_end", "y_end", "z_end", "t_start", "t_end"}
}

//check returns an error if a column name is empty or repeated.
func (C Columns) check() error {
	seen := make(map[string]bool, len(C))
	for _, v := range C {
		if v == "" || seen[v] {
			return SError{message: BadColumns, deco: []string{"check"}, critical: true}
		}
		seen[v] = true
	}
	return nil
}

//Options contains the parameters for reading a track file.
type Options struct {
	//Coordinates in the file are multiplied by this factor before
	//the origin offset is added.
	Scale float64
	//The tracks are stretched (or shrunk) by this factor along
	//their direction, keeping the starting point.
	TrackLengthScale float64
	//Tracks with a length (after scaling) equal or smaller than this are dropped.
	MinLength float64
	Columns   Columns
}

//DefaultOptions returns the options used for the shower simulation exports:
//coordinates scaled by 0.001, tracks at their actual length and a minimum
//length of 0.01.
func DefaultOptions() *Options {
	r := new(Options)
	r.Scale = 0.001
	r.TrackLengthScale = 1
	r.MinLength = 0.01
	r.Columns = DefaultColumns()
	return r
}
