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
	"slices"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfdraw"
	"seehuhn.de/go/pdfdraw/graphics/color"
)

// State holds the graphics state parameters of a content stream.
//
// The fill and stroke colours are private, so that changes can be
// tracked: whenever a colour or its effective alpha value changes, the
// cached paint for this colour is discarded and is recomputed by the
// next call to [State.FillPaint] or [State.StrokePaint].
type State struct {
	// CTM maps user space to device space.
	CTM matrix.Matrix

	LineWidth  float64
	LineCap    LineCapStyle
	LineJoin   LineJoinStyle
	MiterLimit float64

	// Dash is nil for solid lines.
	Dash *Dash

	FlatnessTolerance   float64
	SmoothnessTolerance float64
	StrokeAdjustment    bool
	RenderingIntent     pdfdraw.Name

	// FillSpace and StrokeSpace are the current colour spaces.
	// Colour spaces are shared between copies of the state, and
	// must not be modified.
	FillSpace   color.Space
	StrokeSpace color.Space

	// FillAlpha and StrokeAlpha are the base alpha values, as set by
	// the /ca and /CA entries of an ExtGState dictionary.  The
	// effective alpha is the product of the base alpha and the value
	// passed to SetFillAlpha or SetStrokeAlpha.
	FillAlpha   float64
	StrokeAlpha float64

	OverprintMode int

	// Clip is the current clipping path.
	Clip ClipID

	fillColor       color.Color
	strokeColor     color.Color
	fillEffective   float64
	strokeEffective float64
	overprintFill   bool
	overprintStroke bool

	fillPaint   *FillMode
	strokePaint *FillMode
}

// NewState returns the graphics state at the start of a page.
func NewState() *State {
	return &State{
		CTM:               matrix.Identity,
		LineWidth:         1,
		LineCap:           LineCapButt,
		LineJoin:          LineJoinMiter,
		MiterLimit:        10,
		FlatnessTolerance: 1,
		RenderingIntent:   "RelativeColorimetric",
		FillSpace:         color.SpaceDeviceRGB,
		StrokeSpace:       color.SpaceDeviceRGB,
		FillAlpha:         1,
		StrokeAlpha:       1,
		fillColor:         color.Black,
		strokeColor:       color.Black,
		fillEffective:     1,
		strokeEffective:   1,
	}
}

// FillColor returns the current fill colour.
func (s *State) FillColor() color.Color {
	return s.fillColor
}

// StrokeColor returns the current stroke colour.
func (s *State) StrokeColor() color.Color {
	return s.strokeColor
}

// EffectiveFillAlpha returns the alpha value used for filling.
func (s *State) EffectiveFillAlpha() float64 {
	return s.fillEffective
}

// EffectiveStrokeAlpha returns the alpha value used for stroking.
func (s *State) EffectiveStrokeAlpha() float64 {
	return s.strokeEffective
}

// SetFillColor sets the fill colour.
// The cached fill paint is discarded if the colour changes.
func (s *State) SetFillColor(c color.Color) {
	if c == s.fillColor {
		return
	}
	s.fillColor = c
	s.fillPaint = nil
}

// SetStrokeColor sets the stroke colour.
// The cached stroke paint is discarded if the colour changes.
func (s *State) SetStrokeColor(c color.Color) {
	if c == s.strokeColor {
		return
	}
	s.strokeColor = c
	s.strokePaint = nil
}

// SetFillAlpha sets the effective fill alpha to FillAlpha*alpha.
func (s *State) SetFillAlpha(alpha float64) {
	a := s.FillAlpha * alpha
	if a == s.fillEffective {
		return
	}
	s.fillEffective = a
	s.fillPaint = nil
}

// SetStrokeAlpha sets the effective stroke alpha to StrokeAlpha*alpha.
func (s *State) SetStrokeAlpha(alpha float64) {
	a := s.StrokeAlpha * alpha
	if a == s.strokeEffective {
		return
	}
	s.strokeEffective = a
	s.strokePaint = nil
}

// Overprint returns the overprint flags for filling and stroking.
func (s *State) Overprint() (fill, stroke bool) {
	return s.overprintFill, s.overprintStroke
}

// SetOverprint sets the overprint flags.  Since overprinting changes the
// blend mode, the cached paints are discarded where a flag changes.
func (s *State) SetOverprint(fill, stroke bool) {
	if fill != s.overprintFill {
		s.overprintFill = fill
		s.fillPaint = nil
	}
	if stroke != s.overprintStroke {
		s.overprintStroke = stroke
		s.strokePaint = nil
	}
}

// FillPaint returns the paint used for filling.  The returned value is
// shared between calls until the fill colour, alpha or overprint flag
// changes, and must not be modified by the caller.
func (s *State) FillPaint() *FillMode {
	if s.fillPaint == nil {
		s.fillPaint = &FillMode{
			Color: s.fillColor,
			Alpha: s.fillEffective,
			Blend: blendFor(s.overprintFill),
		}
	}
	return s.fillPaint
}

// StrokePaint returns the paint used for stroking.
// See [State.FillPaint] for the lifetime of the returned value.
func (s *State) StrokePaint() *FillMode {
	if s.strokePaint == nil {
		s.strokePaint = &FillMode{
			Color: s.strokeColor,
			Alpha: s.strokeEffective,
			Blend: blendFor(s.overprintStroke),
		}
	}
	return s.strokePaint
}

// Stroke packages the current stroke paint, line style and dash pattern
// for a single draw call.
func (s *State) Stroke() *StrokeMode {
	m := &StrokeMode{
		Paint: *s.StrokePaint(),
		Style: StrokeStyle{
			Width:      s.LineWidth,
			Cap:        s.LineCap,
			Join:       s.LineJoin,
			MiterLimit: s.MiterLimit,
		},
	}
	if s.Dash != nil {
		m.Dash = &Dash{
			Pattern: slices.Clone(s.Dash.Pattern),
			Phase:   s.Dash.Phase,
		}
	}
	return m
}

// Clone returns a copy of the state.  Colour spaces and the clip
// reference are shared with the original; the dash pattern is copied.
func (s *State) Clone() *State {
	res := *s
	if s.Dash != nil {
		res.Dash = &Dash{
			Pattern: slices.Clone(s.Dash.Pattern),
			Phase:   s.Dash.Phase,
		}
	}
	return &res
}

func blendFor(overprint bool) BlendMode {
	if overprint {
		return BlendDarken
	}
	return BlendOverlay
}
