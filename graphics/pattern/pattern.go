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

// Package pattern reads PDF pattern dictionaries.
//
// Patterns are not rendered.  Instead, [Fallback] computes a solid colour
// which approximates the appearance of a pattern.
package pattern

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfdraw/function"
	"seehuhn.de/go/pdfdraw/graphics/color"
)

// Pattern is a tiling pattern or a shading pattern.
type Pattern interface {
	// PatternType returns 1 for tiling patterns and 2 for shading patterns.
	PatternType() int
}

// Type1 is a tiling pattern.
//
// See section 8.7.3 of ISO 32000-2:2020.
type Type1 struct {
	// Colored is true for coloured tiling patterns (PaintType 1) and
	// false for uncoloured ones (PaintType 2).
	Colored bool

	TilingType int
	BBox       rect.Rect
	XStep      float64
	YStep      float64
	Matrix     matrix.Matrix

	// Content is the content stream of the pattern cell.
	Content []byte
}

// PatternType implements the [Pattern] interface.
func (p *Type1) PatternType() int { return 1 }

// Type2 is a shading pattern.
//
// See section 8.7.4 of ISO 32000-2:2020.
type Type2 struct {
	Shading *Shading
	Matrix  matrix.Matrix
}

// PatternType implements the [Pattern] interface.
func (p *Type2) PatternType() int { return 2 }

// Shading holds the parts of a shading dictionary which are needed to
// approximate its colour.
type Shading struct {
	ShadingType int
	ColorSpace  color.Space

	// Background is the colour used outside the shading area, or nil.
	Background []float64

	// Function maps the shading parameters to colour components.
	// This is nil for shading types 4 to 7 without a function.
	Function function.Func

	// Domain is the parameter range of Function.
	Domain []float64
}
