/*
 * obj.go, part of goShower.
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

package objseq

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	v3 "github.com/rmera/goshower/v3"
)

//Mesh is a polygonal mesh read from a Wavefront OBJ file.
type Mesh struct {
	Name     string
	Vertices *v3.Matrix
	//Each face is a list of 0-based indexes in Vertices.
	Faces [][]int
}

//Len returns the number of vertices in the mesh.
func (M *Mesh) Len() int {
	if M.Vertices == nil {
		return 0
	}
	return M.Vertices.NVecs()
}

//OBJFileRead reads the mesh in the OBJ file objname. If the file has several
//objects, all their vertices and faces are put in the same mesh, and the name of
//the first object is used. If the file has no object name, the file name is used.
func OBJFileRead(objname string) (*Mesh, error) {
	f, err := os.Open(objname)
	if err != nil {
		return nil, Error{message: UnableToOpen, filename: objname, deco: []string{"OBJFileRead"}, critical: true, err: err}
	}
	defer f.Close()
	M, err := ReadOBJ(f, objname)
	if err != nil {
		if e, ok := err.(Error); ok {
			e.filename = objname
			err = e
		}
		return nil, errDecorate(err, "OBJFileRead")
	}
	return M, nil
}

//ReadOBJ reads a mesh in the OBJ format from r. name is used as the name
//of the mesh if none is found in the data. Only geometric vertices (v),
//faces (f) and object names (o) are read. Everything else (normals,
//texture coordinates, materials, groups) is ignored.
//If the data contains no vertices, an error for which IsNoMesh returns true is returned.
func ReadOBJ(r io.Reader, name string) (*Mesh, error) {
	M := new(Mesh)
	coords := make([]float64, 0, 300)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024) //face lines of big meshes can be long.
	lineno := 0
	for scanner.Scan() {
		lineno++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, Error{message: fmt.Sprintf("line %d: vertex with %d coordinates", lineno, len(fields)-1), deco: []string{"ReadOBJ"}, critical: true}
			}
			for _, v := range fields[1:4] {
				c, err := strconv.ParseFloat(v, 64)
				if err != nil {
					return nil, Error{message: fmt.Sprintf("line %d: bad vertex coordinate", lineno), deco: []string{"ReadOBJ"}, critical: true, err: err}
				}
				coords = append(coords, c)
			}
		case "f":
			nverts := len(coords) / 3
			face := make([]int, 0, len(fields)-1)
			for _, v := range fields[1:] {
				i, err := faceIndex(v, nverts)
				if err != nil {
					return nil, Error{message: fmt.Sprintf("line %d: %s", lineno, err.Error()), deco: []string{"ReadOBJ"}, critical: true, err: err}
				}
				face = append(face, i)
			}
			if len(face) < 3 {
				return nil, Error{message: fmt.Sprintf("line %d: face with %d vertices", lineno, len(face)), deco: []string{"ReadOBJ"}, critical: true}
			}
			M.Faces = append(M.Faces, face)
		case "o":
			if M.Name == "" && len(fields) > 1 {
				M.Name = strings.Join(fields[1:], " ")
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, Error{message: ReadFailure, deco: []string{"ReadOBJ"}, critical: true, err: err}
	}
	if M.Name == "" {
		M.Name = name
	}
	if len(coords) == 0 {
		return nil, Error{message: NoMesh, deco: []string{"ReadOBJ"}, critical: false}
	}
	nverts := len(coords) / 3
	for _, face := range M.Faces {
		for _, i := range face {
			if i >= nverts {
				return nil, Error{message: fmt.Sprintf("face refers to vertex %d, but there are only %d", i+1, nverts), deco: []string{"ReadOBJ"}, critical: true}
			}
		}
	}
	var err error
	M.Vertices, err = v3.NewMatrix(coords)
	if err != nil {
		return nil, errDecorate(err, "ReadOBJ")
	}
	return M, nil
}

//faceIndex returns the 0-based vertex index for a face element, which can
//have the forms v, v/vt, v//vn or v/vt/vn. Negative indexes are relative to
//the last vertex read. Positive indexes are checked once the whole file is read.
func faceIndex(s string, nverts int) (int, error) {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad face element %q", s)
	}
	switch {
	case i > 0:
		i--
	case i < 0:
		i += nverts
	default:
		return 0, fmt.Errorf("face element with index 0")
	}
	if i < 0 {
		return 0, fmt.Errorf("face element %q refers to a vertex before the first one", s)
	}
	return i, nil
}
