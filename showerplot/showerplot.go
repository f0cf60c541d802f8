/*
 * showerplot.go, part of goShower.
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

/*Package showerplot produces quick 2D previews of showers: the projection of the
tracks on one of the Cartesian planes, colored as in the 3D scene, and histograms of the
track times.
*/
package showerplot

import (
	"fmt"
	"image/color"
	"strings"

	shower "github.com/rmera/goshower"
	"github.com/rmera/goshower/histo"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//Size of the saved images
var (
	Width  = 6 * vg.Inch
	Height = 6 * vg.Inch
)

//Error is the error type for the package.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string { return "showerplot: " + err.message }

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func (err Error) Critical() bool { return err.critical }

//projector returns a function that projects a point on the plane given
//by two axes (xy, xz or yz, case insensitive), and the axis names.
func projector(plane string) (func(r3.Vec) plotter.XY, string, string, error) {
	switch strings.ToLower(plane) {
	case "xy":
		return func(v r3.Vec) plotter.XY { return plotter.XY{X: v.X, Y: v.Y} }, "X", "Y", nil
	case "xz":
		return func(v r3.Vec) plotter.XY { return plotter.XY{X: v.X, Y: v.Z} }, "X", "Z", nil
	case "yz":
		return func(v r3.Vec) plotter.XY { return plotter.XY{X: v.Y, Y: v.Z} }, "Y", "Z", nil
	}
	return nil, "", "", Error{fmt.Sprintf("unknown plane %q", plane), []string{"projector"}, true}
}

//Tracks saves in filename the projection of the tracks of D on the plane
//(xy, xz or yz). Each track is drawn with its own color, and the origin of the
//shower is marked with a cross. The image format is given by the
//extension of filename.
func Tracks(D *shower.Dataset, plane, title, filename string) error {
	proj, xname, yname, err := projector(plane)
	if err != nil {
		return err
	}
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = xname
	p.Y.Label.Text = yname
	p.BackgroundColor = color.Black
	for _, t := range D.Tracks {
		l, err := plotter.NewLine(plotter.XYs{proj(t.Start), proj(t.End)})
		if err != nil {
			return Error{err.Error(), []string{"Tracks"}, true}
		}
		l.Color = t.Color
		l.Width = vg.Points(1)
		p.Add(l)
	}
	o, err := plotter.NewScatter(plotter.XYs{proj(D.Origin)})
	if err != nil {
		return Error{err.Error(), []string{"Tracks"}, true}
	}
	o.GlyphStyle.Shape = draw.CrossGlyph{}
	o.GlyphStyle.Color = color.White
	o.GlyphStyle.Radius = vg.Points(4)
	p.Add(o)
	if err := p.Save(Width, Height, filename); err != nil {
		return Error{err.Error(), []string{"Tracks"}, true}
	}
	return nil
}

//TimeHistogram saves in filename a bar chart with the bins of h. The
//bars are labeled with the center of each bin.
func TimeHistogram(h *histo.Data, title, filename string) error {
	bins := h.Copy()
	if len(bins) == 0 {
		return Error{"empty histogram", []string{"TimeHistogram"}, true}
	}
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = "Time"
	if h.Normalized() {
		p.Y.Label.Text = "Fraction of tracks"
	} else {
		p.Y.Label.Text = "Tracks"
	}
	b, err := plotter.NewBarChart(plotter.Values(bins), Width/vg.Length(2*len(bins)+2))
	if err != nil {
		return Error{err.Error(), []string{"TimeHistogram"}, true}
	}
	b.Color = shower.TimeColor(0.5)
	b.LineStyle.Width = vg.Length(0)
	p.Add(b)
	labels := make([]string, len(bins))
	for i, c := range h.Centers() {
		labels[i] = fmt.Sprintf("%.3g", c)
	}
	p.NominalX(labels...)
	if err := p.Save(Width, Height, filename); err != nil {
		return Error{err.Error(), []string{"TimeHistogram"}, true}
	}
	return nil
}
