/*
 * objseq_test.go
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

package objseq

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/spatial/r3"
)

const folder = "../test/ni60"

func basenames(names []string) []string {
	ret := make([]string, len(names))
	for i, v := range names {
		ret[i] = filepath.Base(v)
	}
	return ret
}

func TestList(Te *testing.T) {
	o := DefaultOptions()
	names, err := List(folder, o)
	if err != nil {
		Te.Fatal(err)
	}
	want := []string{"ni60_1.obj", "ni60_4.obj", "ni60_11.OBJ"}
	if diff := cmp.Diff(want, basenames(names)); diff != "" {
		Te.Errorf("wrong files (-want +got):\n%s", diff)
	}
	o.FrameStep = 1
	o.MaxFrames = 0
	names, err = List(folder, o)
	if err != nil {
		Te.Fatal(err)
	}
	want = []string{"ni60_1.obj", "ni60_2.obj", "ni60_3.obj", "ni60_4.obj", "ni60_7.obj", "ni60_10.obj", "ni60_11.OBJ", "extra.obj"}
	if diff := cmp.Diff(want, basenames(names)); diff != "" {
		Te.Errorf("wrong files (-want +got):\n%s", diff)
	}
	o.FrameStep = 3
	o.MaxFrames = 2
	names, err = List(folder, o)
	if err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff([]string{"ni60_1.obj", "ni60_4.obj"}, basenames(names)); diff != "" {
		Te.Errorf("wrong truncated files (-want +got):\n%s", diff)
	}
	if _, err = List("../test/nothere", o); !errors.Is(err, fs.ErrNotExist) {
		Te.Errorf("a missing folder should give an error wrapping fs.ErrNotExist, got %v", err)
	}
}

func TestLoad(Te *testing.T) {
	o := DefaultOptions()
	o.FrameStep = 2
	o.MaxFrames = 0
	S, err := Load(folder, o)
	if err != nil {
		Te.Fatal(err)
	}
	//ni60_7 has no mesh
	if diff := cmp.Diff([]string{"ni60_1.obj", "ni60_3.obj", "ni60_11.OBJ"}, basenames(S.Files)); diff != "" {
		Te.Errorf("wrong files (-want +got):\n%s", diff)
	}
	if S.Len() != 3 {
		Te.Fatalf("expected 3 meshes, got %d", S.Len())
	}
	M := S.Meshes[1]
	if M.Name != "ejecta_3" || M.Len() != 4 || len(M.Faces) != 4 {
		Te.Errorf("wrong mesh %s with %d vertices and %d faces", M.Name, M.Len(), len(M.Faces))
	}
	if M.Vertices.Vec(3) != (r3.Vec{X: 0, Y: 0, Z: 3}) {
		Te.Errorf("wrong vertex %v", M.Vertices.Vec(3))
	}
	want := [][]int{{0, 2, 1}, {0, 1, 3}, {0, 3, 2}, {1, 2, 3}}
	if diff := cmp.Diff(want, S.Meshes[2].Faces); diff != "" {
		Te.Errorf("wrong faces for the mesh with normals (-want +got):\n%s", diff)
	}
}

func TestReadOBJ(Te *testing.T) {
	M, err := ReadOBJ(strings.NewReader("v 0 0 0\nv 1 0 0\nv 0 1 0\nv 0 0 1\nf 1 2 3 4\n"), "quad")
	if err != nil {
		Te.Fatal(err)
	}
	if M.Name != "quad" || len(M.Faces[0]) != 4 {
		Te.Errorf("wrong mesh %+v", M)
	}
	_, err = ReadOBJ(strings.NewReader("# nothing\n\n"), "empty")
	if !IsNoMesh(err) {
		Te.Errorf("expected a no-mesh error, got %v", err)
	}
	bad := []string{
		"v 0 0\n",
		"v 0 0 x\n",
		"v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2\n",
		"v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n",
		"v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n",
		"v 0 0 0\nv 1 0 0\nv 0 1 0\nf -4 1 2\n",
		"v 0 0 0\nv 1 0 0\nv 0 1 0\nf a b c\n",
	}
	for _, v := range bad {
		_, err = ReadOBJ(strings.NewReader(v), "bad")
		if err == nil || IsNoMesh(err) {
			Te.Errorf("expected an error reading %q, got %v", v, err)
		}
	}
}

func TestEmptySequence(Te *testing.T) {
	dir := Te.TempDir()
	_, err := Load(dir, nil)
	var e Error
	if !errors.As(err, &e) || e.message != EmptySequence {
		Te.Errorf("an empty folder should give an EmptySequence error, got %v", err)
	}
}

func TestErrorDecoration(Te *testing.T) {
	_, err := Load("../test/nothere", nil)
	var e Error
	if !errors.As(err, &e) {
		Te.Fatalf("expected an Error, got %v", err)
	}
	if diff := cmp.Diff([]string{"List", "Load"}, e.Decorate("")); diff != "" {
		Te.Errorf("wrong decoration (-want +got):\n%s", diff)
	}
	if got := e.Decorate("Caller"); len(got) != 3 || len(e.Decorate("")) != 2 {
		Te.Errorf("Decorate should not change the error: %v", got)
	}
}
