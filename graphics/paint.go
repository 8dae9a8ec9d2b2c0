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

package graphics

import (
	"fmt"
	"slices"

	"seehuhn.de/go/pdfdraw/graphics/color"
)

// LineCapStyle is the style of the end of a line.
type LineCapStyle uint8

// Possible values for LineCapStyle.
const (
	LineCapButt   LineCapStyle = 0
	LineCapRound  LineCapStyle = 1
	LineCapSquare LineCapStyle = 2
)

func (s LineCapStyle) String() string {
	switch s {
	case LineCapButt:
		return "butt"
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return fmt.Sprintf("LineCapStyle(%d)", int(s))
	}
}

// LineJoinStyle is the style of the corner of a line.
type LineJoinStyle uint8

// Possible values for LineJoinStyle.
const (
	LineJoinMiter LineJoinStyle = 0
	LineJoinRound LineJoinStyle = 1
	LineJoinBevel LineJoinStyle = 2
)

func (s LineJoinStyle) String() string {
	switch s {
	case LineJoinMiter:
		return "miter"
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	default:
		return fmt.Sprintf("LineJoinStyle(%d)", int(s))
	}
}

// FillRule decides which points are inside an outline.
type FillRule uint8

// Possible values for FillRule.
const (
	Winding FillRule = iota // nonzero winding number
	EvenOdd
)

func (r FillRule) String() string {
	switch r {
	case Winding:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return fmt.Sprintf("FillRule(%d)", int(r))
	}
}

// BlendMode is a simplified model of overprinting.
type BlendMode uint8

// Possible values for BlendMode.
const (
	// BlendOverlay paints the new colour over the backdrop.
	BlendOverlay BlendMode = iota

	// BlendDarken is used when overprinting is enabled.
	BlendDarken
)

func (m BlendMode) String() string {
	switch m {
	case BlendOverlay:
		return "overlay"
	case BlendDarken:
		return "darken"
	default:
		return fmt.Sprintf("BlendMode(%d)", int(m))
	}
}

// FillMode is a fully resolved paint.
type FillMode struct {
	Color color.Color
	Alpha float64
	Blend BlendMode
}

// StrokeStyle describes the geometry of stroked lines.
type StrokeStyle struct {
	Width      float64
	Cap        LineCapStyle
	Join       LineJoinStyle
	MiterLimit float64
}

// Dash is a line dash pattern.
type Dash struct {
	Pattern []float64
	Phase   float64
}

// Equal reports whether two dash patterns are the same.
// A nil Dash stands for solid lines.
func (d *Dash) Equal(other *Dash) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.Phase == other.Phase && slices.Equal(d.Pattern, other.Pattern)
}

// StrokeMode describes how an outline is stroked.
type StrokeMode struct {
	Paint FillMode
	Style StrokeStyle

	// Dash is nil for solid lines.
	Dash *Dash
}

// DrawMode describes how an outline is painted.  At least one of Fill and
// Stroke is set.  If both are set, the outline is filled first.
type DrawMode struct {
	Fill   *FillMode
	Stroke *StrokeMode
}

func (m DrawMode) String() string {
	switch {
	case m.Fill != nil && m.Stroke != nil:
		return "fill+stroke"
	case m.Fill != nil:
		return "fill"
	case m.Stroke != nil:
		return "stroke"
	default:
		return "none"
	}
}

// ClipID identifies a clipping path.  The value 0 means that no clipping
// path is set.  Clip IDs are allocated by the component which constructs
// clipping paths; the interpreter treats them as opaque handles.
type ClipID uint32

// NoClip indicates that drawing is not clipped.
const NoClip ClipID = 0
