/*
 * scene_test.go
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

package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	shower "github.com/rmera/goshower"
	"github.com/rmera/goshower/objseq"
	"github.com/rmera/goshower/timing"
	v3 "github.com/rmera/goshower/v3"
)

const tracks = `x_start,y_start,z_start,x_end,y_end,z_end,t_start,t_end
100,0,-2000,200,0,-3000,500,600
0,0,0,0,0,-1000,0,10
0,0,-1000,100,0,-2000,100,200
`

func dataset(Te *testing.T) *shower.Dataset {
	D, err := shower.ReadTracks(strings.NewReader(tracks), shower.DefaultOrigin(), shower.DefaultOptions())
	if err != nil {
		Te.Fatal(err)
	}
	if D.Len() != 3 {
		Te.Fatalf("expected 3 tracks, got %d", D.Len())
	}
	return D
}

func mesh(Te *testing.T, name string, scale float64) *objseq.Mesh {
	vert, err := v3.NewMatrix([]float64{0, 0, 0, scale, 0, 0, 0, scale, 0, 0, 0, scale})
	if err != nil {
		Te.Fatal(err)
	}
	return &objseq.Mesh{Name: name, Vertices: vert, Faces: [][]int{{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3}}}
}

func TestBuildShower(Te *testing.T) {
	D := dataset(Te)
	S := BuildShower(D, nil)
	if err := S.Validate(); err != nil {
		Te.Fatal(err)
	}
	fmt.Println(S)
	if S.FrameStart != 1 || S.FrameEnd != 85 {
		Te.Errorf("wrong frame range %d-%d", S.FrameStart, S.FrameEnd)
	}
	if len(S.Objects) != 4 || len(S.Materials) != 4 {
		Te.Fatalf("expected 4 objects and 4 materials, got %d and %d", len(S.Objects), len(S.Materials))
	}
	beam := S.Object(BeamName)
	if beam == nil {
		Te.Fatal("no beam in the scene")
	}
	want := [][3]float64{{0, 0, 52}, {0, 0, 2}}
	if diff := cmp.Diff(want, beam.Curve.Points); diff != "" {
		Te.Errorf("wrong beam (-want +got):\n%s", diff)
	}
	if m := S.Material(BeamMaterial); m == nil || m.Strength != 5 {
		Te.Errorf("wrong beam material %v", m)
	}
	//The tracks are sorted by starting time.
	t0 := S.Object("Track_0")
	if t0 == nil || t0.Material != "Mat_0" {
		Te.Fatalf("wrong first track %v", t0)
	}
	if diff := cmp.Diff([][3]float64{{0, 0, 2}, {0, 0, 1}}, t0.Curve.Points); diff != "" {
		Te.Errorf("wrong first track (-want +got):\n%s", diff)
	}
	if c := S.Material("Mat_2").Color; c != D.Tracks[2].Color {
		Te.Errorf("the material of the last track has the color %v, not %v", c, D.Tracks[2].Color)
	}
	frames := map[int][]string{
		1:  {},
		29: {},
		30: {BeamName, "Track_0"},
		31: {BeamName, "Track_0", "Track_1"},
		34: {BeamName, "Track_0", "Track_1"},
		35: {BeamName, "Track_0", "Track_1", "Track_2"},
		85: {BeamName, "Track_0", "Track_1", "Track_2"},
	}
	for f, w := range frames {
		if diff := cmp.Diff(w, S.At(f)); diff != "" {
			Te.Errorf("wrong visible objects at frame %d (-want +got):\n%s", f, diff)
		}
	}
	if diff := cmp.Diff([]int{1, 29, 30, 31, 34, 35}, S.KeyframeFrames()); diff != "" {
		Te.Errorf("wrong keyframes (-want +got):\n%s", diff)
	}
	if S.MeshAt(10) != "" {
		Te.Errorf("a shower should have no mesh sequence")
	}
}

func TestBuildShowerEmpty(Te *testing.T) {
	D, err := shower.ReadTracks(strings.NewReader(""), shower.DefaultOrigin(), nil)
	if err != nil {
		Te.Fatal(err)
	}
	T := timing.DefaultTiming()
	S := BuildShower(D, T)
	if err := S.Validate(); err != nil {
		Te.Fatal(err)
	}
	if len(S.Objects) != 1 || S.FrameEnd != T.BeamFrames+T.Tail {
		Te.Errorf("wrong scene for an empty dataset: %s", S)
	}
}

func TestBuildShowerNegativeTimes(Te *testing.T) {
	D, err := shower.ReadTracks(strings.NewReader("x_start,y_start,z_start,x_end,y_end,z_end,t_start,t_end\n0,0,0,0,0,-1000,-10000,-9000\n"), shower.DefaultOrigin(), nil)
	if err != nil {
		Te.Fatal(err)
	}
	S := BuildShower(D, nil)
	if S.FrameEnd != S.FrameStart {
		Te.Errorf("the frame range should collapse to the first frame, got %d-%d", S.FrameStart, S.FrameEnd)
	}
	name := filepath.Join(Te.TempDir(), "early.json")
	if err = Write(S, name); err != nil {
		Te.Fatal(err)
	}
	S2, err := Read(name)
	if err != nil {
		Te.Fatalf("a written scene should be readable: %v", err)
	}
	if !S2.Object("Track_0").Visible(S2.FrameStart) {
		Te.Errorf("a track that appears before the first frame should be visible from the start")
	}
}

func TestWriteRejects(Te *testing.T) {
	dir := Te.TempDir()
	S := BuildShower(dataset(Te), nil)
	S.FrameEnd = S.FrameStart - 1
	name := filepath.Join(dir, "empty.json")
	if err := Write(S, name); err == nil {
		Te.Errorf("a scene with an empty frame range should not be written")
	}
	if _, err := os.Stat(name); !errors.Is(err, fs.ErrNotExist) {
		Te.Errorf("no file should be created for an invalid scene: %v", err)
	}
	S = BuildShower(dataset(Te), nil)
	S.Materials[0].Strength = math.NaN()
	name = filepath.Join(dir, "nan.json.zst")
	if err := Write(S, name); err == nil {
		Te.Errorf("a scene with a NaN should not be written")
	}
	if _, err := os.Stat(name); !errors.Is(err, fs.ErrNotExist) {
		Te.Errorf("a failed write should not leave a file behind: %v", err)
	}
}

func TestBuildSequence(Te *testing.T) {
	seq := &objseq.Sequence{Meshes: []*objseq.Mesh{mesh(Te, "ejecta", 1), mesh(Te, "ejecta", 2), mesh(Te, "other", 3)}}
	S, err := BuildSequence(seq, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if err = S.Validate(); err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff([]string{"ejecta", "ejecta.001", "other"}, S.Sequence.Meshes); diff != "" {
		Te.Errorf("wrong mesh names (-want +got):\n%s", diff)
	}
	if S.FrameStart != 1 || S.FrameEnd != 3 {
		Te.Errorf("wrong frame range %d-%d", S.FrameStart, S.FrameEnd)
	}
	for f, w := range map[int]string{1: "ejecta", 2: "ejecta.001", 3: "other", 4: "ejecta", 0: "other", -1: "ejecta.001"} {
		if got := S.MeshAt(f); got != w {
			Te.Errorf("frame %d should show %s, not %s", f, w, got)
		}
	}
	o := S.Object("AnimatedOBJ")
	if o == nil || o.Scale != [3]float64{5e-14, 5e-14, 5e-14} || o.Collection != "" {
		Te.Errorf("wrong sequence object %v", o)
	}
	if got := S.Meshes[2].Vertices[3]; got != [3]float64{0, 0, 3} {
		Te.Errorf("wrong vertex %v", got)
	}
	o2 := DefaultSequenceOptions()
	o2.Scale = 0.5
	o2.Bake = true
	B, err := BuildSequence(seq, o2)
	if err != nil {
		Te.Fatal(err)
	}
	if got := B.Meshes[2].Vertices[3]; got != [3]float64{0, 0, 1.5} {
		Te.Errorf("wrong baked vertex %v", got)
	}
	if B.Objects[0].Scale != [3]float64{1, 1, 1} {
		Te.Errorf("a baked sequence should have a unit scale, got %v", B.Objects[0].Scale)
	}
	if seq.Meshes[2].Vertices.At(3, 2) != 3 {
		Te.Errorf("baking should not change the source meshes")
	}
	if _, err = BuildSequence(&objseq.Sequence{}, nil); err == nil {
		Te.Errorf("an empty sequence should give an error")
	}
}

func TestBuildSequenceFromFiles(Te *testing.T) {
	o := objseq.DefaultOptions()
	seq, err := objseq.Load("../test/ni60", o)
	if err != nil {
		Te.Fatal(err)
	}
	S, err := BuildSequence(seq, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if err = S.Validate(); err != nil {
		Te.Fatal(err)
	}
	fmt.Println(S)
	if len(S.Meshes) != seq.Len() || S.FrameEnd-S.FrameStart+1 != seq.Len() {
		Te.Errorf("the scene should span the %d meshes once: %s", seq.Len(), S)
	}
}

func TestValidate(Te *testing.T) {
	broken := map[string]func(S *Scene){
		"empty range":      func(S *Scene) { S.FrameEnd = 0 },
		"repeated object":  func(S *Scene) { S.Objects[2].Name = S.Objects[1].Name },
		"unnamed material": func(S *Scene) { S.Materials[1].Name = "" },
		"unknown material": func(S *Scene) { S.Objects[1].Material = "Mat_99" },
		"unknown coll":     func(S *Scene) { S.Objects[0].Collection = "Nope" },
		"unknown parent":   func(S *Scene) { S.Collections[0].Parent = "Nope" },
		"curve and mesh":   func(S *Scene) { S.Objects[0].Mesh = "m" },
		"short curve":      func(S *Scene) { S.Objects[1].Curve.Points = S.Objects[1].Curve.Points[:1] },
		"unknown seq":      func(S *Scene) { S.Sequence = &Sequence{Object: "Nope", Meshes: []string{"m"}} },
	}
	for name, breakit := range broken {
		S := BuildShower(dataset(Te), nil)
		breakit(S)
		err := S.Validate()
		if err == nil {
			Te.Errorf("%s: a broken scene should not validate", name)
			continue
		}
		var e Error
		if !errors.As(err, &e) || !e.Critical() {
			Te.Errorf("%s: unexpected error %v", name, err)
		}
	}
	seq := &objseq.Sequence{Meshes: []*objseq.Mesh{mesh(Te, "ejecta", 1)}}
	S, err := BuildSequence(seq, nil)
	if err != nil {
		Te.Fatal(err)
	}
	S.Meshes[0].Faces[1][2] = 4
	if err = S.Validate(); err == nil {
		Te.Errorf("a face with an index out of range should not validate")
	}
}

func TestReadWrite(Te *testing.T) {
	dir := Te.TempDir()
	S := BuildShower(dataset(Te), nil)
	for _, name := range []string{"shower.json", "shower.json.gz", "shower.json.zst"} {
		fname := filepath.Join(dir, name)
		if err := Write(S, fname); err != nil {
			Te.Fatal(err)
		}
		S2, err := Read(fname)
		if err != nil {
			Te.Fatal(err)
		}
		if diff := cmp.Diff(S, S2); diff != "" {
			Te.Errorf("%s: scene changed after a round trip (-want +got):\n%s", name, diff)
		}
	}
	seq := &objseq.Sequence{Meshes: []*objseq.Mesh{mesh(Te, "a", 1), mesh(Te, "b", 2)}}
	M, err := BuildSequence(seq, nil)
	if err != nil {
		Te.Fatal(err)
	}
	fname := filepath.Join(dir, "seq.zstd")
	if err = Write(M, fname); err != nil {
		Te.Fatal(err)
	}
	M2, err := Read(fname)
	if err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff(M, M2); diff != "" {
		Te.Errorf("sequence changed after a round trip (-want +got):\n%s", diff)
	}
	_, err = Read(filepath.Join(dir, "nothere.json"))
	var fe FileError
	if !errors.As(err, &fe) || !errors.Is(err, fs.ErrNotExist) {
		Te.Errorf("reading a missing file should give a FileError wrapping fs.ErrNotExist, got %v", err)
	}
}

func TestReadInvalid(Te *testing.T) {
	S := BuildShower(dataset(Te), nil)
	S.Objects[2].Name = S.Objects[1].Name
	var buf bytes.Buffer
	if err := Encode(&buf, S); err != nil {
		Te.Fatal(err)
	}
	name := filepath.Join(Te.TempDir(), "repeated.json")
	if err := os.WriteFile(name, buf.Bytes(), 0644); err != nil {
		Te.Fatal(err)
	}
	_, err := Read(name)
	var e Error
	if !errors.As(err, &e) {
		Te.Fatalf("expected an Error, got %v", err)
	}
	if diff := cmp.Diff([]string{"names", "Validate", "Decode", "Read"}, e.Decorate("")); diff != "" {
		Te.Errorf("wrong decoration (-want +got):\n%s", diff)
	}
}

func TestCompression(Te *testing.T) {
	for name, want := range map[string]string{"a.json": "", "a.ZST": "zstd", "a.zstd": "zstd", "a.json.gz": "gzip", "a": ""} {
		if got := compression(name); got != want {
			Te.Errorf("%s: expected compression %q, got %q", name, want, got)
		}
	}
}
