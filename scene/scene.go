/*
 * scene.go, part of goShower.
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

/*Package scene builds descriptions of animated 3D scenes that do not depend on any particular
rendering program. A Scene lists the collections, materials, curves, meshes and objects to be created,
and the keyframes that drive the visibility of the objects. A program that drives a 3D
application only needs to replay the Scene, creating each element with the given properties.

Scenes can be written to, and read from, JSON files, which can be compressed with zstd or gzip.
*/
package scene

import (
	"fmt"
	"sort"

	shower "github.com/rmera/goshower"
	"github.com/rmera/goshower/timing"
)

//Names of the animatable properties used in keyframes.
const (
	HideViewport = "hide_viewport"
	HideRender   = "hide_render"
)

//Handler names for mesh sequences.
const (
	//The displayed mesh is (frame-FrameStart) mod number of meshes.
	ModuloHandler = "modulo"
)

//Scene is the full description of an animated scene.
type Scene struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	FrameStart  int          `json:"frame_start"`
	FrameEnd    int          `json:"frame_end"`
	Collections []Collection `json:"collections"`
	Materials   []Material   `json:"materials"`
	Objects     []Object     `json:"objects"`
	Meshes      []Mesh       `json:"meshes,omitempty"`
	Sequence    *Sequence    `json:"sequence,omitempty"`
}

//Collection groups objects. An empty parent means the root collection of the scene.
type Collection struct {
	Name   string `json:"name"`
	Parent string `json:"parent,omitempty"`
}

//Material is an emissive material. A Strength of 0 means a regular, non-emissive
//material with the given base color.
type Material struct {
	Name     string     `json:"name"`
	Color    shower.RGB `json:"color"`
	Strength float64    `json:"strength"`
}

//Curve is a polyline with a round profile.
type Curve struct {
	Dimensions      string       `json:"dimensions"`
	Type            string       `json:"type"`
	BevelDepth      float64      `json:"bevel_depth"`
	BevelResolution int          `json:"bevel_resolution"`
	Points          [][3]float64 `json:"points"`
}

//Mesh is a polygonal mesh. Faces contain 0-based indexes in Vertices.
type Mesh struct {
	Name     string       `json:"name"`
	Vertices [][3]float64 `json:"vertices"`
	Faces    [][]int      `json:"faces"`
}

//Keyframe sets the boolean property Path of an object to Value at Frame.
type Keyframe struct {
	Frame int    `json:"frame"`
	Path  string `json:"path"`
	Value bool   `json:"value"`
}

//Object is an element of the scene. It carries either a Curve or the name
//of a Mesh.
type Object struct {
	Name       string     `json:"name"`
	Collection string     `json:"collection,omitempty"`
	Curve      *Curve     `json:"curve,omitempty"`
	Mesh       string     `json:"mesh,omitempty"`
	Scale      [3]float64 `json:"scale"`
	Material   string     `json:"material"`
	Keyframes  []Keyframe `json:"keyframes,omitempty"`
}

//Sequence swaps the mesh displayed by Object on each frame.
type Sequence struct {
	Object  string   `json:"object"`
	Meshes  []string `json:"meshes"`
	Handler string   `json:"handler"`
}

//property returns the value of the boolean property path of the object at frame.
//Values are constant between keyframes, and before the first keyframe the value of the
//first one is used. If there are no keyframes for the property, def is returned.
func (O *Object) property(path string, frame int, def bool) bool {
	keys := make([]Keyframe, 0, len(O.Keyframes))
	for _, k := range O.Keyframes {
		if k.Path == path {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return def
	}
	sort.SliceStable(keys, func(i, j int) bool { return keys[i].Frame < keys[j].Frame })
	val := keys[0].Value
	for _, k := range keys {
		if k.Frame > frame {
			break
		}
		val = k.Value
	}
	return val
}

//Visible returns true if the object is rendered at frame.
func (O *Object) Visible(frame int) bool {
	return !O.property(HideRender, frame, false)
}

//At returns the names of the objects that are rendered at frame.
func (S *Scene) At(frame int) []string {
	ret := make([]string, 0, len(S.Objects))
	for i := range S.Objects {
		if S.Objects[i].Visible(frame) {
			ret = append(ret, S.Objects[i].Name)
		}
	}
	return ret
}

//MeshAt returns the name of the mesh displayed by the sequence object at frame,
//or an empty string if the Scene has no mesh sequence.
func (S *Scene) MeshAt(frame int) string {
	if S.Sequence == nil || len(S.Sequence.Meshes) == 0 {
		return ""
	}
	return S.Sequence.Meshes[timing.MeshIndex(frame, S.FrameStart, len(S.Sequence.Meshes))]
}

//Object returns the object with the given name, or nil
func (S *Scene) Object(name string) *Object {
	for i := range S.Objects {
		if S.Objects[i].Name == name {
			return &S.Objects[i]
		}
	}
	return nil
}

//Material returns the material with the given name, or nil
func (S *Scene) Material(name string) *Material {
	for i := range S.Materials {
		if S.Materials[i].Name == name {
			return &S.Materials[i]
		}
	}
	return nil
}

//KeyframeFrames returns the sorted, distinct frames at which some keyframe is set.
func (S *Scene) KeyframeFrames() []int {
	set := make(map[int]bool)
	for _, o := range S.Objects {
		for _, k := range o.Keyframes {
			set[k.Frame] = true
		}
	}
	ret := make([]int, 0, len(set))
	for k := range set {
		ret = append(ret, k)
	}
	sort.Ints(ret)
	return ret
}

//String returns a short summary of the scene.
func (S *Scene) String() string {
	curves, meshes := 0, 0
	for _, o := range S.Objects {
		if o.Curve != nil {
			curves++
		} else {
			meshes++
		}
	}
	ret := fmt.Sprintf("Scene %s (%s): frames %d-%d, %d collections, %d materials, %d objects (%d curves, %d mesh objects), %d meshes",
		S.Name, S.ID, S.FrameStart, S.FrameEnd, len(S.Collections), len(S.Materials), len(S.Objects), curves, meshes, len(S.Meshes))
	if S.Sequence != nil {
		ret += fmt.Sprintf(", sequence of %d meshes on %s", len(S.Sequence.Meshes), S.Sequence.Object)
	}
	return ret
}

//Validate checks that the names in the scene are unique, and that every
//reference to a collection, material or mesh points to an existing element.
func (S *Scene) Validate() error {
	if S.FrameEnd < S.FrameStart {
		return Error{fmt.Sprintf("frame range %d-%d is empty", S.FrameStart, S.FrameEnd), []string{"Validate"}, true}
	}
	collections, err := names("collection", len(S.Collections), func(i int) string { return S.Collections[i].Name })
	if err != nil {
		return errDecorate(err, "Validate")
	}
	materials, err := names("material", len(S.Materials), func(i int) string { return S.Materials[i].Name })
	if err != nil {
		return errDecorate(err, "Validate")
	}
	meshes, err := names("mesh", len(S.Meshes), func(i int) string { return S.Meshes[i].Name })
	if err != nil {
		return errDecorate(err, "Validate")
	}
	objects, err := names("object", len(S.Objects), func(i int) string { return S.Objects[i].Name })
	if err != nil {
		return errDecorate(err, "Validate")
	}
	for _, c := range S.Collections {
		if c.Parent != "" && !collections[c.Parent] {
			return Error{fmt.Sprintf("collection %s has an unknown parent %s", c.Name, c.Parent), []string{"Validate"}, true}
		}
	}
	for _, o := range S.Objects {
		switch {
		case o.Collection != "" && !collections[o.Collection]:
			return Error{fmt.Sprintf("object %s is in an unknown collection %s", o.Name, o.Collection), []string{"Validate"}, true}
		case o.Material != "" && !materials[o.Material]:
			return Error{fmt.Sprintf("object %s uses an unknown material %s", o.Name, o.Material), []string{"Validate"}, true}
		case (o.Curve == nil) == (o.Mesh == ""):
			return Error{fmt.Sprintf("object %s must have either a curve or a mesh", o.Name), []string{"Validate"}, true}
		case o.Mesh != "" && !meshes[o.Mesh]:
			return Error{fmt.Sprintf("object %s uses an unknown mesh %s", o.Name, o.Mesh), []string{"Validate"}, true}
		case o.Curve != nil && len(o.Curve.Points) < 2:
			return Error{fmt.Sprintf("curve of object %s has fewer than 2 points", o.Name), []string{"Validate"}, true}
		}
	}
	for _, m := range S.Meshes {
		for _, f := range m.Faces {
			for _, i := range f {
				if i < 0 || i >= len(m.Vertices) {
					return Error{fmt.Sprintf("mesh %s has a face with a wrong index %d", m.Name, i), []string{"Validate"}, true}
				}
			}
		}
	}
	if q := S.Sequence; q != nil {
		if !objects[q.Object] {
			return Error{fmt.Sprintf("sequence uses an unknown object %s", q.Object), []string{"Validate"}, true}
		}
		if len(q.Meshes) == 0 {
			return Error{"sequence with no meshes", []string{"Validate"}, true}
		}
		for _, m := range q.Meshes {
			if !meshes[m] {
				return Error{fmt.Sprintf("sequence uses an unknown mesh %s", m), []string{"Validate"}, true}
			}
		}
	}
	return nil
}

//names returns a set with the n names given by name, or an error if a name
//is empty or repeated.
func names(kind string, n int, name func(int) string) (map[string]bool, error) {
	ret := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		s := name(i)
		if s == "" {
			return nil, Error{fmt.Sprintf("%s %d has no name", kind, i), []string{"names"}, true}
		}
		if ret[s] {
			return nil, Error{fmt.Sprintf("%s name %s is repeated", kind, s), []string{"names"}, true}
		}
		ret[s] = true
	}
	return ret, nil
}
