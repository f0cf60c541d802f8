/*
 * build.go, part of goShower.
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

package scene

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	shower "github.com/rmera/goshower"
	"github.com/rmera/goshower/objseq"
	"github.com/rmera/goshower/timing"
	v3 "github.com/rmera/goshower/v3"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	ShowerCollection = "CosmicRay"
	BeamName         = "IncomingRay"
	BeamMaterial     = "BeamMat"
	beamStrength     = 5.0
	trackStrength    = 2.5
	beamBevel        = 0.01
	beamResolution   = 4
	trackBevel       = 0.001
	trackResolution  = 2
)

//The incoming ray comes from this point, relative to the origin of the shower.
var beamTop = r3.Vec{X: 0, Y: 0, Z: 50}

var beamColor = shower.RGB{R: 1.0, G: 0.2, B: 0.2}

func vec2array(v r3.Vec) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func polyline(bevel float64, resolution int, points ...r3.Vec) *Curve {
	c := &Curve{Dimensions: "3D", Type: "POLY", BevelDepth: bevel, BevelResolution: resolution}
	for _, p := range points {
		c.Points = append(c.Points, vec2array(p))
	}
	return c
}

//visibility returns the keyframes that keep an object hidden at the frame hidden and make it
//visible at the frame visible, both in the viewport and in renders.
func visibility(hidden, visible int) []Keyframe {
	return []Keyframe{
		{Frame: hidden, Path: HideViewport, Value: true},
		{Frame: hidden, Path: HideRender, Value: true},
		{Frame: visible, Path: HideViewport, Value: false},
		{Frame: visible, Path: HideRender, Value: false},
	}
}

//BuildShower returns the scene for the tracks in D, animated with the timing T (the default
//timing if T is nil). The scene contains the incoming ray, which goes down to the origin of
//the shower, and one curve per track, with an emissive material of the track's color.
//Tracks become visible at the frame given by their starting time. The frame
//range is never empty, even if every track starts before the first frame.
func BuildShower(D *shower.Dataset, T *timing.Timing) *Scene {
	if T == nil {
		T = timing.DefaultTiming()
	}
	S := &Scene{
		ID:          uuid.NewString(),
		Name:        ShowerCollection,
		FrameStart:  T.FrameStart,
		FrameEnd:    T.LastFrame(D.Starts()),
		Collections: []Collection{{Name: ShowerCollection}},
	}
	//Showers that happen entirely at negative times would end before they start.
	if S.FrameEnd < S.FrameStart {
		S.FrameEnd = S.FrameStart
	}
	if D.Source != "" {
		S.Name = strings.TrimSuffix(filepath.Base(D.Source), filepath.Ext(D.Source))
	}
	S.Materials = make([]Material, 0, D.Len()+1)
	S.Objects = make([]Object, 0, D.Len()+1)
	S.Materials = append(S.Materials, Material{Name: BeamMaterial, Color: beamColor, Strength: beamStrength})
	S.Objects = append(S.Objects, Object{
		Name:       BeamName,
		Collection: ShowerCollection,
		Curve:      polyline(beamBevel, beamResolution, r3.Add(beamTop, D.Origin), D.Origin),
		Scale:      [3]float64{1, 1, 1},
		Material:   BeamMaterial,
		Keyframes:  visibility(T.FrameStart, T.BeamFrames),
	})
	for i, t := range D.Tracks {
		mat := fmt.Sprintf("Mat_%d", i)
		S.Materials = append(S.Materials, Material{Name: mat, Color: t.Color, Strength: trackStrength})
		appear := T.AppearFrame(t.TStart)
		S.Objects = append(S.Objects, Object{
			Name:       fmt.Sprintf("Track_%d", i),
			Collection: ShowerCollection,
			Curve:      polyline(trackBevel, trackResolution, t.Start, t.End),
			Scale:      [3]float64{1, 1, 1},
			Material:   mat,
			Keyframes:  visibility(appear-1, appear),
		})
	}
	return S
}

//SequenceOptions contains the parameters for the scene of a mesh sequence.
type SequenceOptions struct {
	Collection string
	Object     string
	Material   string
	Color      shower.RGB
	Scale      float64 //uniform scale of the displayed object.
	FrameStart int
	//If true, Scale is applied to the vertices of the meshes, and
	//the object keeps a scale of 1.
	Bake bool
}

//DefaultSequenceOptions returns the options for the supernova ejecta sequences,
//which are given in cm, hence the tiny scale.
func DefaultSequenceOptions() *SequenceOptions {
	return &SequenceOptions{
		Collection: "OBJ_Sequence",
		Object:     "AnimatedOBJ",
		Material:   "SupernovaMat",
		Color:      shower.RGB{R: 0.8, G: 0.8, B: 0.8},
		Scale:      5e-14,
		FrameStart: 1,
	}
}

//BuildSequence returns the scene that displays the meshes in seq one per frame, looping,
//on a single object with a single material. The frame range spans the sequence once.
//If o is nil, the default options are used.
func BuildSequence(seq *objseq.Sequence, o *SequenceOptions) (*Scene, error) {
	if o == nil {
		o = DefaultSequenceOptions()
	}
	if seq == nil || seq.Len() == 0 {
		return nil, Error{"No meshes in the sequence", []string{"BuildSequence"}, true}
	}
	S := &Scene{
		ID:          uuid.NewString(),
		Name:        o.Collection,
		FrameStart:  o.FrameStart,
		FrameEnd:    o.FrameStart + seq.Len() - 1,
		Collections: []Collection{{Name: o.Collection}},
		Materials:   []Material{{Name: o.Material, Color: o.Color}},
		Meshes:      make([]Mesh, 0, seq.Len()),
		Sequence:    &Sequence{Object: o.Object, Handler: ModuloHandler},
	}
	scale := o.Scale
	used := make(map[string]bool, seq.Len())
	for _, m := range seq.Meshes {
		name := uniqueName(m.Name, used)
		vert := m.Vertices
		if o.Bake {
			vert = v3.Zeros(m.Len())
			vert.ScaleAll(m.Vertices, o.Scale)
		}
		S.Meshes = append(S.Meshes, Mesh{Name: name, Vertices: vert.Rows(), Faces: m.Faces})
		S.Sequence.Meshes = append(S.Sequence.Meshes, name)
	}
	if o.Bake {
		scale = 1
	}
	S.Objects = []Object{{
		Name:     o.Object,
		Mesh:     S.Sequence.Meshes[0],
		Scale:    [3]float64{scale, scale, scale},
		Material: o.Material,
	}}
	return S, nil
}

//uniqueName returns name, or, if it was already used, name with the first
//free numeric suffix (.001, .002...). The returned name is marked as used.
func uniqueName(name string, used map[string]bool) string {
	ret := name
	for i := 1; used[ret]; i++ {
		ret = fmt.Sprintf("%s.%03d", name, i)
	}
	used[ret] = true
	return ret
}
