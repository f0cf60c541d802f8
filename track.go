/*
 * track.go, part of goShower.
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
	"sort"

	v3 "github.com/rmera/goshower/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

//Track is one segment of the path of a particle in the shower.
type Track struct {
	Start, End   r3.Vec
	TStart, TEnd float64
	//(TStart+TEnd)/2
	TAvg float64
	//TAvg rescaled to [0,1] over the Dataset
	TimeFrac float64
	Color    RGB
	//line of the input file where the track was read.
	Line int
}

//Length returns the length of the track
func (T Track) Length() float64 {
	return r3.Norm(r3.Sub(T.End, T.Start))
}

//Dataset is the set of valid tracks read from one file, sorted by starting time.
type Dataset struct {
	Tracks []Track
	Origin r3.Vec
	Source string //the name of the file read, if any.
	Report *Report
	//The range of the positive average times, used for the time fractions.
	MinTime, MaxTime float64
}

//Len returns the number of tracks in the Dataset
func (D *Dataset) Len() int {
	return len(D.Tracks)
}

//Coords returns a matrix with the start and end points of all tracks.
//The start of the ith track is in the row 2i, and its end in the row 2i+1.
//Returns nil if the Dataset has no tracks.
func (D *Dataset) Coords() *v3.Matrix {
	if len(D.Tracks) == 0 {
		return nil
	}
	M := v3.Zeros(2 * len(D.Tracks))
	for i, t := range D.Tracks {
		M.SetVec(2*i, t.Start)
		M.SetVec(2*i+1, t.End)
	}
	return M
}

//Extent returns the corners of the axis-aligned box that contains all the tracks,
//and the centroid of their end points, all relative to the origin of the shower.
//It returns an error if the Dataset has no tracks.
func (D *Dataset) Extent() (min, max, centroid r3.Vec, err error) {
	C := D.Coords()
	if C == nil {
		return min, max, centroid, SError{message: NoTracks, filename: D.Source, deco: []string{"Extent"}}
	}
	C.AddVec(C, r3.Scale(-1, D.Origin))
	min, max = C.Bounds()
	return min, max, C.Centroid(), nil
}

//Times returns a new slice with the average times of the tracks.
func (D *Dataset) Times() []float64 {
	ret := make([]float64, len(D.Tracks))
	for i, t := range D.Tracks {
		ret[i] = t.TAvg
	}
	return ret
}

//Starts returns a new slice with the starting times of the tracks.
func (D *Dataset) Starts() []float64 {
	ret := make([]float64, len(D.Tracks))
	for i, t := range D.Tracks {
		ret[i] = t.TStart
	}
	return ret
}

//colorize sets the time fraction and color of every track, and
//sorts the tracks by starting time. Tracks with the same
//starting time keep their relative order.
func (D *Dataset) colorize() {
	times := make([]float64, 0, len(D.Tracks))
	for _, t := range D.Tracks {
		if t.TAvg > 0 {
			times = append(times, t.TAvg)
		}
	}
	min, max := 0.0, 1.0
	if len(times) > 0 {
		min = floats.Min(times)
		max = floats.Max(times)
	}
	D.MinTime, D.MaxTime = min, max
	trange := max - min
	if max == min {
		trange = 1
	}
	for i := range D.Tracks {
		t := &D.Tracks[i]
		if t.TAvg == 0 {
			t.TimeFrac = 0
		} else {
			t.TimeFrac = clamp01((t.TAvg - min) / trange)
		}
		t.Color = TimeColor(t.TimeFrac)
	}
	sort.SliceStable(D.Tracks, func(i, j int) bool { return D.Tracks[i].TStart < D.Tracks[j].TStart })
}

//negative average times fall below the range of the positive ones.
func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
