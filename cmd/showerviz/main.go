/*
 * main.go, part of goShower.
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

/*showerviz builds animated scene files from particle shower tracks and from
mesh sequences, and inspects them.

Usage:

	showerviz tracks [-config file.toml] [flags]
	showerviz mesh [-config file.toml] [flags]
	showerviz inspect [-frame n] scene.json...

Values given as flags override those in the configuration file.
Output files ending in .zst or .gz are compressed.
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"regexp"
	"strings"

	shower "github.com/rmera/goshower"
	"github.com/rmera/goshower/histo"
	"github.com/rmera/goshower/objseq"
	"github.com/rmera/goshower/scene"
	"github.com/rmera/goshower/showerplot"
	"gonum.org/v1/gonum/floats"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s tracks|mesh|inspect [flags]\nUse %s <command> -h for the flags of each command\n", os.Args[0], os.Args[0])
}

func main() {
	log.SetPrefix("showerviz: ")
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	var err error
	switch os.Args[1] {
	case "tracks":
		err = tracksCmd(os.Args[2:])
	case "mesh":
		err = meshCmd(os.Args[2:])
	case "inspect":
		err = inspectCmd(os.Args[2:], os.Stdout)
	default:
		usage()
		os.Exit(2)
	}
	if err == flag.ErrHelp {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal(err)
	}
}

//configPath returns the value of the -config flag in args, if any.
//The flags need the configuration to get their defaults, so this is
//obtained before the actual parsing.
func configPath(args []string) string {
	for i, a := range args {
		if a == "--" {
			break
		}
		name, val, hasval := strings.Cut(strings.TrimLeft(a, "-"), "=")
		if !strings.HasPrefix(a, "-") || name != "config" {
			continue
		}
		if hasval {
			return val
		}
		if i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func tracksCmd(args []string) error {
	path := configPath(args)
	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}
	t := &cfg.Tracks
	fs := flag.NewFlagSet("tracks", flag.ContinueOnError)
	fs.String("config", path, "TOML configuration file")
	fs.StringVar(&t.Folder, "folder", t.Folder, "Folder with the event_NNNN.csv files")
	fs.IntVar(&t.Event, "event", t.Event, "Event number")
	fs.StringVar(&t.CSV, "csv", t.CSV, "CSV file to read, instead of the event file")
	fs.StringVar(&t.Output, "o", t.Output, "Output scene file")
	fs.Float64Var(&t.Scale, "scale", t.Scale, "Factor for the coordinates in the file")
	fs.Float64Var(&t.TrackLengthScale, "lengthscale", t.TrackLengthScale, "Factor for the length of the tracks")
	fs.Float64Var(&t.MinLength, "minlength", t.MinLength, "Tracks this short or shorter are dropped")
	fs.Float64Var(&t.Origin[0], "ox", t.Origin[0], "X coordinate of the origin of the shower")
	fs.Float64Var(&t.Origin[1], "oy", t.Origin[1], "Y coordinate of the origin of the shower")
	fs.Float64Var(&t.Origin[2], "oz", t.Origin[2], "Z coordinate of the origin of the shower")
	fs.BoolVar(&t.Shell, "shell", t.Shell, "Sample the origin from a spherical shell")
	fs.Float64Var(&t.ShellMin, "shellmin", t.ShellMin, "Inner radius of the shell")
	fs.Float64Var(&t.ShellMax, "shellmax", t.ShellMax, "Outer radius of the shell")
	fs.Uint64Var(&t.Seed, "seed", t.Seed, "Seed for the origin sampling. 0 for a random one")
	fs.IntVar(&t.BeamFrames, "beamframes", t.BeamFrames, "Frames before the first track appears")
	fs.Float64Var(&t.Speed, "speed", t.Speed, "Frames per unit of time")
	fs.IntVar(&t.Tail, "tail", t.Tail, "Frames after the last track appears")
	fs.IntVar(&t.Bins, "bins", t.Bins, "Bins for the histogram of times. 0 for no histogram")
	fs.StringVar(&t.Preview, "preview", t.Preview, "Prefix for the preview images. None are produced if empty")
	fs.StringVar(&t.Plane, "plane", t.Plane, "Projection plane for the preview (xy, xz or yz)")
	if err = fs.Parse(args); err != nil {
		return err
	}
	return runTracks(t)
}

func runTracks(t *TracksConfig) error {
	var err error
	file := t.CSV
	if file == "" {
		if file, err = shower.FindEvent(t.Folder, t.Event); err != nil {
			return err
		}
	}
	origin := shower.FixedOrigin(t.Origin[0], t.Origin[1], t.Origin[2])
	if t.Shell {
		var rng *rand.Rand
		if t.Seed != 0 {
			rng = rand.New(rand.NewPCG(t.Seed, t.Seed))
		}
		if origin, err = shower.ShellOrigin(rng, t.ShellMin, t.ShellMax); err != nil {
			return err
		}
		log.Printf("Origin of the shower: %.3f %.3f %.3f", origin.X, origin.Y, origin.Z)
	}
	D, err := shower.LoadTracks(file, origin, t.Options())
	if err != nil {
		return err
	}
	log.Printf("%s: %s", file, D.Report)
	if D.Report.NoneParsed() && D.Report.MissingColumn > 0 {
		log.Printf("Check the column names: %s", strings.Join(t.Columns[:], ", "))
	}
	if min, max, c, err := D.Extent(); err == nil {
		log.Printf("Extent of the shower from its origin: %.3f %.3f %.3f to %.3f %.3f %.3f, centroid %.3f %.3f %.3f",
			min.X, min.Y, min.Z, max.X, max.Y, max.Z, c.X, c.Y, c.Z)
	}
	var h *histo.Data
	if D.Len() > 0 && t.Bins > 0 {
		times := D.Times()
		h = histo.NewData(histo.EvenDividers(floats.Min(times), floats.Max(times), t.Bins), times)
		log.Printf("Average times of the tracks:\n%s", h)
	}
	S := scene.BuildShower(D, t.Timing())
	if err = scene.Write(S, t.Output); err != nil {
		return err
	}
	log.Printf("Wrote %s: %s", t.Output, S)
	if t.Preview == "" {
		return nil
	}
	title := fmt.Sprintf("%s (%d tracks)", S.Name, D.Len())
	if err = showerplot.Tracks(D, t.Plane, title, t.Preview+"_tracks.png"); err != nil {
		return err
	}
	if h != nil {
		if err = showerplot.TimeHistogram(h, title, t.Preview+"_times.png"); err != nil {
			return err
		}
	}
	return nil
}

func meshCmd(args []string) error {
	path := configPath(args)
	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}
	m := &cfg.Mesh
	fs := flag.NewFlagSet("mesh", flag.ContinueOnError)
	fs.String("config", path, "TOML configuration file")
	fs.StringVar(&m.Folder, "folder", m.Folder, "Folder with the OBJ files")
	fs.StringVar(&m.Output, "o", m.Output, "Output scene file")
	fs.IntVar(&m.FrameStep, "step", m.FrameStep, "Use every step-th file")
	fs.IntVar(&m.MaxFrames, "max", m.MaxFrames, "Maximum number of files used. 0 for all")
	fs.StringVar(&m.Pattern, "pattern", m.Pattern, "Regular expression whose first submatch numbers the files")
	fs.Float64Var(&m.Scale, "scale", m.Scale, "Scale of the displayed meshes")
	fs.BoolVar(&m.Bake, "bake", m.Bake, "Apply the scale to the vertices instead of the object")
	if err = fs.Parse(args); err != nil {
		return err
	}
	return runMesh(m)
}

func runMesh(m *MeshConfig) error {
	re, err := regexp.Compile(m.Pattern)
	if err != nil {
		return err
	}
	seq, err := objseq.Load(m.Folder, &objseq.Options{FrameStep: m.FrameStep, MaxFrames: m.MaxFrames, Pattern: re})
	if err != nil {
		return err
	}
	o := scene.DefaultSequenceOptions()
	o.Scale = m.Scale
	o.FrameStart = m.FrameStart
	o.Bake = m.Bake
	S, err := scene.BuildSequence(seq, o)
	if err != nil {
		return err
	}
	if err = scene.Write(S, m.Output); err != nil {
		return err
	}
	log.Printf("Wrote %s: %s", m.Output, S)
	return nil
}

func inspectCmd(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	frame := fs.Int("frame", 0, "Print the objects visible at this frame")
	if err := fs.Parse(args); err != nil {
		return err
	}
	var atframe bool
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "frame" {
			atframe = true
		}
	})
	if fs.NArg() == 0 {
		return fmt.Errorf("inspect: no scene file given")
	}
	for _, name := range fs.Args() {
		S, err := scene.Read(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s: %s\n", name, S)
		if !atframe {
			continue
		}
		fmt.Fprintf(w, "Frame %d: %s\n", *frame, strings.Join(S.At(*frame), " "))
		if m := S.MeshAt(*frame); m != "" {
			fmt.Fprintf(w, "Mesh at frame %d: %s\n", *frame, m)
		}
	}
	return nil
}
