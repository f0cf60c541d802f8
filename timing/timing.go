/*
 * timing.go, part of goShower.
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

//Package timing computes the frames at which the elements of an animated
//scene appear.
package timing

import "gonum.org/v1/gonum/floats"

//Timing contains the parameters of the animation of a shower.
type Timing struct {
	FrameStart int //The first frame of the animation
	//Frames it takes the incoming ray to reach the origin.
	//No track appears before this frame.
	BeamFrames int
	//Frames per unit of simulation time.
	Speed float64
	//Frames left after the last track appears.
	Tail int
}

//DefaultTiming returns the timing used for the cosmic ray animations:
//the ray takes 30 frames to arrive, each unit of time takes 0.01 frames,
//and the animation lasts 50 frames after the last track appears.
func DefaultTiming() *Timing {
	return &Timing{
		FrameStart: 1,
		BeamFrames: 30,
		Speed:      0.01,
		Tail:       50,
	}
}

//AppearFrame returns the frame at which a track starting at
//time tstart becomes visible. The fractional part of the frame is
//truncated.
func (T *Timing) AppearFrame(tstart float64) int {
	return T.BeamFrames + int(tstart*T.Speed)
}

//LastFrame returns the last frame of an animation in which tracks
//with the given starting times appear.
func (T *Timing) LastFrame(tstarts []float64) int {
	if len(tstarts) == 0 {
		return T.BeamFrames + T.Tail
	}
	return T.AppearFrame(floats.Max(tstarts)) + T.Tail
}

//MeshIndex returns the index of the mesh to be displayed at frame in a sequence
//of n meshes that starts at frameStart and loops. The result is never negative.
//It panics if n is not positive.
func MeshIndex(frame, frameStart, n int) int {
	if n <= 0 {
		panic("goShower/timing.MeshIndex: the number of meshes must be positive")
	}
	i := (frame - frameStart) % n
	if i < 0 {
		i += n
	}
	return i
}
