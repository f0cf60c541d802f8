/*
 * sequence.go, part of goShower.
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

/*Package objseq reads numbered sequences of Wavefront OBJ meshes, such as the snapshots of
the ejecta of a supernova simulation, so they can be played back as an animation.

The files of a sequence are found in one folder, and ordered by the number that follows an
underscore in their names (e.g. ni60_0012.obj). Every FrameStep-th file is used, up to
MaxFrames files.
*/
package objseq

import (
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

//Options contains the parameters to select the files of a sequence.
type Options struct {
	//Only every FrameStep-th file is used. Values smaller than 1 are taken as 1.
	FrameStep int
	//The sequence is truncated after this many files. 0 or less means no limit.
	MaxFrames int
	//The first submatch of this expression, if any, is the number used to order the files.
	Pattern *regexp.Regexp
}

//DefaultOptions returns the options used for the supernova sequences: every third file,
//at most 70 files, numbers taken from after an underscore.
func DefaultOptions() *Options {
	return &Options{
		FrameStep: 3,
		MaxFrames: 70,
		Pattern:   regexp.MustCompile(`_(\d+)`),
	}
}

//Sequence is a list of meshes to be displayed one after the other.
type Sequence struct {
	Folder string
	Files  []string //the files read, in order. Files with no mesh are not included.
	Meshes []*Mesh
}

//Len returns the number of meshes in the sequence
func (S *Sequence) Len() int {
	return len(S.Meshes)
}

type numbered struct {
	name   string
	number int64
	hasnum bool
}

//List returns the names (with the folder) of the OBJ files in folder that form the sequence,
//in order, after applying the frame step and the maximum number of frames in o.
//If o is nil, the default options are used.
func List(folder string, o *Options) ([]string, error) {
	if o == nil {
		o = DefaultOptions()
	}
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, Error{message: UnableToOpen, filename: folder, deco: []string{"List"}, critical: true, err: err}
	}
	files := make([]numbered, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".obj") {
			continue
		}
		n := numbered{name: e.Name()}
		if o.Pattern != nil {
			if m := o.Pattern.FindStringSubmatch(e.Name()); len(m) > 1 {
				if num, err := strconv.ParseInt(m[1], 10, 64); err == nil {
					n.number = num
					n.hasnum = true
				}
			}
		}
		files = append(files, n)
	}
	//numbered files first, by number, then the rest by name.
	sort.SliceStable(files, func(i, j int) bool {
		a, b := files[i], files[j]
		if a.hasnum != b.hasnum {
			return a.hasnum
		}
		if a.hasnum && a.number != b.number {
			return a.number < b.number
		}
		return a.name < b.name
	})
	step := o.FrameStep
	if step < 1 {
		step = 1
	}
	ret := make([]string, 0, len(files)/step+1)
	for i := 0; i < len(files); i += step {
		if o.MaxFrames > 0 && len(ret) >= o.MaxFrames {
			break
		}
		ret = append(ret, filepath.Join(folder, files[i].name))
	}
	return ret, nil
}

//Load reads the sequence of meshes in folder. Files that contain no mesh are
//skipped (and logged). Any other problem reading a file is returned as an error, as is
//a sequence without meshes. If o is nil, the default options are used.
func Load(folder string, o *Options) (*Sequence, error) {
	names, err := List(folder, o)
	if err != nil {
		return nil, errDecorate(err, "Load")
	}
	S := &Sequence{Folder: folder}
	for _, name := range names {
		M, err := OBJFileRead(name)
		if IsNoMesh(err) {
			log.Printf("goShower/objseq: %s contains no mesh, skipped", name)
			continue
		}
		if err != nil {
			return nil, errDecorate(err, "Load")
		}
		S.Files = append(S.Files, name)
		S.Meshes = append(S.Meshes, M)
	}
	if len(S.Meshes) == 0 {
		return nil, Error{message: EmptySequence, filename: folder, deco: []string{"Load"}, critical: true}
	}
	return S, nil
}
