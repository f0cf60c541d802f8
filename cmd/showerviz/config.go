/*
 * config.go, part of goShower.
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

package main

import (
	"bytes"
	"os"

	"github.com/pelletier/go-toml/v2"
	shower "github.com/rmera/goshower"
	"github.com/rmera/goshower/objseq"
	"github.com/rmera/goshower/scene"
	"github.com/rmera/goshower/timing"
)

//TracksConfig contains the parameters of the tracks command.
type TracksConfig struct {
	Folder string `toml:"folder"`
	Event  int    `toml:"event"`
	//If not empty, this file is read instead of the event file in Folder.
	CSV              string         `toml:"csv"`
	Output           string         `toml:"output"`
	Scale            float64        `toml:"scale"`
	TrackLengthScale float64        `toml:"track_length_scale"`
	MinLength        float64        `toml:"min_length"`
	Columns          shower.Columns `toml:"columns"`
	Origin           [3]float64     `toml:"origin"`
	//If true, the origin is sampled from a spherical shell instead.
	Shell    bool    `toml:"shell"`
	ShellMin float64 `toml:"shell_min"`
	ShellMax float64 `toml:"shell_max"`
	//0 means a random seed.
	Seed       uint64  `toml:"seed"`
	FrameStart int     `toml:"frame_start"`
	BeamFrames int     `toml:"beam_frames"`
	Speed      float64 `toml:"speed"`
	Tail       int     `toml:"tail"`
	Bins       int     `toml:"bins"`
	//Prefix for the preview images. No previews are produced if empty.
	Preview string `toml:"preview"`
	Plane   string `toml:"plane"`
}

//MeshConfig contains the parameters of the mesh command.
type MeshConfig struct {
	Folder     string  `toml:"folder"`
	Output     string  `toml:"output"`
	FrameStep  int     `toml:"frame_step"`
	MaxFrames  int     `toml:"max_frames"`
	Pattern    string  `toml:"pattern"`
	Scale      float64 `toml:"scale"`
	FrameStart int     `toml:"frame_start"`
	Bake       bool    `toml:"bake"`
}

//Config is the content of a showerviz configuration file.
type Config struct {
	Tracks TracksConfig `toml:"tracks"`
	Mesh   MeshConfig   `toml:"mesh"`
}

//DefaultConfig returns the configuration with the default values of the library.
func DefaultConfig() *Config {
	o := shower.DefaultOptions()
	origin := shower.DefaultOrigin()
	t := timing.DefaultTiming()
	so := objseq.DefaultOptions()
	sq := scene.DefaultSequenceOptions()
	return &Config{
		Tracks: TracksConfig{
			Folder:           ".",
			Event:            1,
			Output:           "shower.json",
			Scale:            o.Scale,
			TrackLengthScale: o.TrackLengthScale,
			MinLength:        o.MinLength,
			Columns:          o.Columns,
			Origin:           [3]float64{origin.X, origin.Y, origin.Z},
			ShellMin:         1,
			ShellMax:         3,
			FrameStart:       t.FrameStart,
			BeamFrames:       t.BeamFrames,
			Speed:            t.Speed,
			Tail:             t.Tail,
			Bins:             10,
			Plane:            "xz",
		},
		Mesh: MeshConfig{
			Folder:     ".",
			Output:     "sequence.json",
			FrameStep:  so.FrameStep,
			MaxFrames:  so.MaxFrames,
			Pattern:    so.Pattern.String(),
			Scale:      sq.Scale,
			FrameStart: sq.FrameStart,
		},
	}
}

//LoadConfig reads the TOML file name. Values not present in the file
//keep their defaults. Unknown keys are an error.
func LoadConfig(name string) (*Config, error) {
	c := DefaultConfig()
	if name == "" {
		return c, nil
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	dec := toml.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err = dec.Decode(c); err != nil {
		return nil, err
	}
	return c, nil
}

//Options returns the options for reading the track file.
func (T *TracksConfig) Options() *shower.Options {
	o := shower.DefaultOptions()
	o.Scale = T.Scale
	o.TrackLengthScale = T.TrackLengthScale
	o.MinLength = T.MinLength
	o.Columns = T.Columns
	return o
}

//Timing returns the frame schedule of the animation.
func (T *TracksConfig) Timing() *timing.Timing {
	return &timing.Timing{FrameStart: T.FrameStart, BeamFrames: T.BeamFrames, Speed: T.Speed, Tail: T.Tail}
}
