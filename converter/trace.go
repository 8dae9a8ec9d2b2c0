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

package converter

import (
	"fmt"
	"io"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfdraw/graphics"
	"seehuhn.de/go/pdfdraw/graphics/outline"
	"seehuhn.de/go/pdfdraw/render"
)

// Tracer writes a textual description of every draw call to W.
// This is mostly useful for debugging.
type Tracer struct {
	W io.Writer

	numClips graphics.ClipID
}

var _ render.Clipper = (*Tracer)(nil)

// Draw implements the [render.Plotter] interface.
func (t *Tracer) Draw(o *outline.Outline, mode graphics.DrawMode, rule graphics.FillRule, ctm matrix.Matrix, clip graphics.ClipID) error {
	_, err := fmt.Fprintf(t.W, "draw %s", mode)
	if err != nil {
		return err
	}
	if f := mode.Fill; f != nil {
		fmt.Fprintf(t.W, " fill=%s alpha=%g blend=%s rule=%s",
			colorString(f.Color), f.Alpha, f.Blend, rule)
	}
	if s := mode.Stroke; s != nil {
		fmt.Fprintf(t.W, " stroke=%s alpha=%g blend=%s width=%g cap=%s join=%s",
			colorString(s.Paint.Color), s.Paint.Alpha, s.Paint.Blend,
			s.Style.Width, s.Style.Cap, s.Style.Join)
		if s.Dash != nil {
			fmt.Fprintf(t.W, " dash=%v/%g", s.Dash.Pattern, s.Dash.Phase)
		}
	}
	if clip != graphics.NoClip {
		fmt.Fprintf(t.W, " clip=%d", clip)
	}
	_, err = fmt.Fprintf(t.W, " ctm=%v path=%q\n", [6]float64(ctm), o.String())
	return err
}

// ClipPath implements the [render.Clipper] interface.
// Clip IDs are allocated sequentially, starting at 1.
func (t *Tracer) ClipPath(o *outline.Outline, rule graphics.FillRule, ctm matrix.Matrix, parent graphics.ClipID) (graphics.ClipID, error) {
	t.numClips++
	_, err := fmt.Fprintf(t.W, "clip %d parent=%d rule=%s ctm=%v path=%q\n",
		t.numClips, parent, rule, [6]float64(ctm), o.String())
	if err != nil {
		return graphics.NoClip, err
	}
	return t.numClips, nil
}
