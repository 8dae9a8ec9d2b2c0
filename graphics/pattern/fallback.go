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

package pattern

import (
	"seehuhn.de/go/pdfdraw"
	"seehuhn.de/go/pdfdraw/graphics/color"
)

// Fallback returns a solid colour which approximates the appearance of
// the pattern.
//
// For shading patterns, this is the colour at the centre of the function
// domain.  Other patterns are approximated by black.
func Fallback(p Pattern) color.Solid {
	black := color.Solid{}

	t2, ok := p.(*Type2)
	if !ok || t2.Shading == nil {
		return black
	}
	sh := t2.Shading

	var x []float64
	switch {
	case sh.Function != nil:
		in := make([]float64, len(sh.Domain)/2)
		for i := range in {
			in[i] = (sh.Domain[2*i] + sh.Domain[2*i+1]) / 2
		}
		if m, _ := sh.Function.Shape(); m != len(in) {
			return black
		}
		x = sh.Function.Apply(in...)
	case sh.Background != nil:
		x = sh.Background
	default:
		return black
	}

	args := make(color.ValueComponents, len(x))
	for i, xi := range x {
		args[i] = pdfdraw.Real(xi)
	}
	r := &color.Resolver{}
	cs := sh.ColorSpace
	c, err := r.Resolve(&cs, args)
	if err != nil {
		return black
	}
	if solid, ok := c.(color.Solid); ok {
		return solid
	}
	return black
}
