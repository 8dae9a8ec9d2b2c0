// seehuhn.de/go/pdfdraw - an interpreter for PDF content streams
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package color

import "seehuhn.de/go/pdfdraw"

// Color is the result of colour resolution.  This is either a [Solid]
// colour or a [PatternRef].
//
// Colors are immutable values.  Two colours can be compared using ==.
type Color interface {
	isColor()
}

// Solid is an RGB colour.  Channels are normally in the range [0, 1].
type Solid struct {
	R, G, B float64
}

func (Solid) isColor() {}

// PatternRef refers to an entry in the Pattern sub-dictionary of the
// resource dictionary.
type PatternRef struct {
	Name pdfdraw.Name
}

func (PatternRef) isColor() {}

// Black is the initial colour for all colour spaces, and the colour used
// in place of colours which could not be resolved.
var Black Color = Solid{}

// Gray converts a gray value to a Solid colour.
func Gray(g float64) Solid {
	return Solid{g, g, g}
}

// CMYKToRGB converts a CMYK colour to RGB, using the naive formula
// R = 1 - min(1, C+K), G = 1 - min(1, M+K), B = 1 - min(1, Y+K).
func CMYKToRGB(c, m, y, k float64) Solid {
	return Solid{
		R: 1 - min(1, c+k),
		G: 1 - min(1, m+k),
		B: 1 - min(1, y+k),
	}
}
