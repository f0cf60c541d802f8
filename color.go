/*
 * color.go, part of goShower.
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

package shower

import "fmt"

//RGB is a color with channels between 0 and 1. It implements
//image/color.Color, so it can be given directly to plotting and image
//libraries.
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

//RGBA implements the color.Color interface. The color is always opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return chan16(c.R), chan16(c.G), chan16(c.B), 0xffff
}

func (c RGB) String() string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", c.R, c.G, c.B)
}

//Channels out of [0,1] are clamped.
func chan16(v float64) uint32 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xffff
	}
	return uint32(v*0xffff + 0.5)
}

//TimeColor returns the color for a track with the given time fraction. The gradient
//goes from blue (early tracks) through cyan, green and yellow to orange-red (late tracks),
//in 5 linear segments with boundaries at 0.2, 0.4, 0.6 and 0.8.
func TimeColor(frac float64) RGB {
	switch {
	case frac < 0.2:
		t := frac / 0.2
		return RGB{0.0, t * 0.5, 1.0}
	case frac < 0.4:
		t := (frac - 0.2) / 0.2
		return RGB{0.0, 0.5 + t*0.5, 1.0 - t}
	case frac < 0.6:
		t := (frac - 0.4) / 0.2
		return RGB{t, 1.0, 0.0}
	case frac < 0.8:
		t := (frac - 0.6) / 0.2
		return RGB{1.0, 1.0 - t*0.3, 0.0}
	default:
		t := (frac - 0.8) / 0.2
		return RGB{1.0, 0.7 - t*0.7, 0.0}
	}
}
