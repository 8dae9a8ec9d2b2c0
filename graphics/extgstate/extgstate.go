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

// Package extgstate reads graphics state parameter dictionaries.
package extgstate

import (
	"slices"

	"seehuhn.de/go/pdfdraw"
	"seehuhn.de/go/pdfdraw/graphics"
)

// PDF 2.0 sections: 8.4.5

// ExtGState is a combination of graphics state parameters, which can be
// set in a single step using the gs operator.  Only the parameters
// indicated by Set are active.
type ExtGState struct {
	Set graphics.Bits

	// TextFont is the font dictionary.
	TextFont     pdfdraw.Object
	TextFontSize float64
	TextKnockout bool

	LineWidth  float64
	LineCap    graphics.LineCapStyle
	LineJoin   graphics.LineJoinStyle
	MiterLimit float64

	// DashPattern is the dash array.  An empty, non-nil pattern
	// indicates solid lines.
	DashPattern []float64
	DashPhase   float64

	RenderingIntent  pdfdraw.Name
	StrokeAdjustment bool

	StrokeAlpha float64
	FillAlpha   float64

	OverprintStroke bool
	OverprintFill   bool
	OverprintMode   int

	FlatnessTolerance   float64
	SmoothnessTolerance float64

	// Ignored lists the keys of parameters which were present in the
	// dictionary, but which are not supported.
	Ignored []pdfdraw.Name
}

// Decode reads a graphics state parameter dictionary.
//
// Malformed entries are skipped.  An error is returned only if obj is not
// a dictionary.
func Decode(obj pdfdraw.Object) (*ExtGState, error) {
	dict, err := pdfdraw.GetDict(obj)
	if err != nil {
		return nil, err
	} else if dict == nil {
		return nil, pdfdraw.Errorf("missing ExtGState dictionary")
	}

	res := &ExtGState{}
	var set graphics.Bits
	overprintFillSet := false

	for key, v := range dict {
		switch key {
		case "Type":
			// ignored
		case "Font":
			a, err := pdfdraw.GetArray(v)
			if err != nil || len(a) != 2 || a[0] == nil {
				break
			}
			size, err := pdfdraw.GetNumber(a[1])
			if err != nil {
				break
			}
			res.TextFont = a[0]
			res.TextFontSize = size
			set |= graphics.StateTextFont
		case "TK":
			val, err := pdfdraw.GetBool(v)
			if err != nil {
				break
			}
			res.TextKnockout = bool(val)
			set |= graphics.StateTextKnockout
		case "LW":
			lw, err := pdfdraw.GetNumber(v)
			if err != nil {
				break
			}
			res.LineWidth = lw
			set |= graphics.StateLineWidth
		case "LC":
			lineCap, err := pdfdraw.GetInteger(v)
			if err != nil {
				break
			}
			res.LineCap = graphics.LineCapStyle(min(max(lineCap, 0), 2))
			set |= graphics.StateLineCap
		case "LJ":
			lineJoin, err := pdfdraw.GetInteger(v)
			if err != nil {
				break
			}
			res.LineJoin = graphics.LineJoinStyle(min(max(lineJoin, 0), 2))
			set |= graphics.StateLineJoin
		case "ML":
			miterLimit, err := pdfdraw.GetNumber(v)
			if err != nil {
				break
			}
			res.MiterLimit = max(miterLimit, 1)
			set |= graphics.StateMiterLimit
		case "D":
			a, err := pdfdraw.GetArray(v)
			if err != nil || len(a) != 2 {
				break
			}
			pat, ok := ReadDash(a[0])
			phase, err := pdfdraw.GetNumber(a[1])
			if !ok || err != nil {
				break
			}
			res.DashPattern = pat
			res.DashPhase = phase
			set |= graphics.StateDash
		case "RI":
			ri, err := pdfdraw.GetName(v)
			if err != nil {
				break
			}
			res.RenderingIntent = ri
			set |= graphics.StateRenderingIntent
		case "SA":
			val, err := pdfdraw.GetBool(v)
			if err != nil {
				break
			}
			res.StrokeAdjustment = bool(val)
			set |= graphics.StateStrokeAdjustment
		case "CA":
			ca, err := pdfdraw.GetNumber(v)
			if err != nil {
				break
			}
			res.StrokeAlpha = min(max(ca, 0), 1)
			set |= graphics.StateStrokeAlpha
		case "ca":
			ca, err := pdfdraw.GetNumber(v)
			if err != nil {
				break
			}
			res.FillAlpha = min(max(ca, 0), 1)
			set |= graphics.StateFillAlpha
		case "OP":
			op, err := pdfdraw.GetBool(v)
			if err != nil {
				break
			}
			res.OverprintStroke = bool(op)
			set |= graphics.StateOverprint
		case "op":
			op, err := pdfdraw.GetBool(v)
			if err != nil {
				break
			}
			res.OverprintFill = bool(op)
			set |= graphics.StateOverprint
			overprintFillSet = true
		case "OPM":
			opm, err := pdfdraw.GetInteger(v)
			if err != nil {
				break
			}
			if opm != 0 {
				res.OverprintMode = 1
			}
			set |= graphics.StateOverprintMode
		case "FL":
			fl, err := pdfdraw.GetNumber(v)
			if err != nil {
				break
			}
			res.FlatnessTolerance = fl
			set |= graphics.StateFlatnessTolerance
		case "SM":
			sm, err := pdfdraw.GetNumber(v)
			if err != nil {
				break
			}
			res.SmoothnessTolerance = sm
			set |= graphics.StateSmoothnessTolerance
		default:
			res.Ignored = append(res.Ignored, key)
		}
	}
	slices.Sort(res.Ignored)

	// /op defaults to the value of /OP
	if set&graphics.StateOverprint != 0 && !overprintFillSet {
		res.OverprintFill = res.OverprintStroke
	}

	res.Set = set
	return res, nil
}

// ReadDash reads a dash array.  All entries must be non-negative and
// at least one entry must be positive, unless the array is empty.
func ReadDash(obj pdfdraw.Object) ([]float64, bool) {
	pat, err := pdfdraw.GetFloatArray(obj)
	if err != nil {
		return nil, false
	}
	if pat == nil {
		pat = []float64{}
	}
	sum := 0.0
	for _, x := range pat {
		if x < 0 {
			return nil, false
		}
		sum += x
	}
	if len(pat) > 0 && sum == 0 {
		return nil, false
	}
	return pat, true
}

// ApplyTo copies the active parameters into the graphics and text state.
//
// The alpha values become the new base alpha values of s, and the
// effective alpha values are reset to these.
func (e *ExtGState) ApplyTo(s *graphics.State, t *graphics.TextState) {
	set := e.Set

	if set&graphics.StateTextFont != 0 {
		t.FontName = ""
		t.Font = e.TextFont
		t.FontSize = e.TextFontSize
	}
	if set&graphics.StateTextKnockout != 0 {
		t.Knockout = e.TextKnockout
	}
	if set&graphics.StateLineWidth != 0 {
		s.LineWidth = e.LineWidth
	}
	if set&graphics.StateLineCap != 0 {
		s.LineCap = e.LineCap
	}
	if set&graphics.StateLineJoin != 0 {
		s.LineJoin = e.LineJoin
	}
	if set&graphics.StateMiterLimit != 0 {
		s.MiterLimit = e.MiterLimit
	}
	if set&graphics.StateDash != 0 {
		if len(e.DashPattern) == 0 {
			s.Dash = nil
		} else {
			s.Dash = &graphics.Dash{
				Pattern: slices.Clone(e.DashPattern),
				Phase:   e.DashPhase,
			}
		}
	}
	if set&graphics.StateRenderingIntent != 0 {
		s.RenderingIntent = e.RenderingIntent
	}
	if set&graphics.StateStrokeAdjustment != 0 {
		s.StrokeAdjustment = e.StrokeAdjustment
	}
	if set&graphics.StateStrokeAlpha != 0 {
		s.StrokeAlpha = e.StrokeAlpha
		s.SetStrokeAlpha(1)
	}
	if set&graphics.StateFillAlpha != 0 {
		s.FillAlpha = e.FillAlpha
		s.SetFillAlpha(1)
	}
	if set&graphics.StateOverprint != 0 {
		s.SetOverprint(e.OverprintFill, e.OverprintStroke)
	}
	if set&graphics.StateOverprintMode != 0 {
		s.OverprintMode = e.OverprintMode
	}
	if set&graphics.StateFlatnessTolerance != 0 {
		s.FlatnessTolerance = e.FlatnessTolerance
	}
	if set&graphics.StateSmoothnessTolerance != 0 {
		s.SmoothnessTolerance = e.SmoothnessTolerance
	}
}

// Equal reports whether two ExtGState values set the same parameters
// to the same values.
func (e *ExtGState) Equal(other *ExtGState) bool {
	if e == nil || other == nil {
		return e == nil && other == nil
	}
	if e.Set != other.Set {
		return false
	}
	set := e.Set

	if set&graphics.StateTextFont != 0 &&
		(pdfdraw.Format(e.TextFont) != pdfdraw.Format(other.TextFont) || e.TextFontSize != other.TextFontSize) {
		return false
	}
	if set&graphics.StateTextKnockout != 0 && e.TextKnockout != other.TextKnockout {
		return false
	}
	if set&graphics.StateLineWidth != 0 && e.LineWidth != other.LineWidth {
		return false
	}
	if set&graphics.StateLineCap != 0 && e.LineCap != other.LineCap {
		return false
	}
	if set&graphics.StateLineJoin != 0 && e.LineJoin != other.LineJoin {
		return false
	}
	if set&graphics.StateMiterLimit != 0 && e.MiterLimit != other.MiterLimit {
		return false
	}
	if set&graphics.StateDash != 0 &&
		(!slices.Equal(e.DashPattern, other.DashPattern) || e.DashPhase != other.DashPhase) {
		return false
	}
	if set&graphics.StateRenderingIntent != 0 && e.RenderingIntent != other.RenderingIntent {
		return false
	}
	if set&graphics.StateStrokeAdjustment != 0 && e.StrokeAdjustment != other.StrokeAdjustment {
		return false
	}
	if set&graphics.StateStrokeAlpha != 0 && e.StrokeAlpha != other.StrokeAlpha {
		return false
	}
	if set&graphics.StateFillAlpha != 0 && e.FillAlpha != other.FillAlpha {
		return false
	}
	if set&graphics.StateOverprint != 0 &&
		(e.OverprintStroke != other.OverprintStroke || e.OverprintFill != other.OverprintFill) {
		return false
	}
	if set&graphics.StateOverprintMode != 0 && e.OverprintMode != other.OverprintMode {
		return false
	}
	if set&graphics.StateFlatnessTolerance != 0 && e.FlatnessTolerance != other.FlatnessTolerance {
		return false
	}
	if set&graphics.StateSmoothnessTolerance != 0 && e.SmoothnessTolerance != other.SmoothnessTolerance {
		return false
	}
	return true
}
