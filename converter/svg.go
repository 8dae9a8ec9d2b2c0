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
	"bytes"
	"fmt"
	"io"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/pdfdraw/graphics"
	"seehuhn.de/go/pdfdraw/graphics/outline"
	"seehuhn.de/go/pdfdraw/internal/float"
	"seehuhn.de/go/pdfdraw/render"
)

// SVGWriter collects draw calls and writes them as an SVG document.
type SVGWriter struct {
	Width, Height float64

	// Device maps PDF device space to SVG user units.
	Device matrix.Matrix

	patterns patternCache
	defs     bytes.Buffer
	body     bytes.Buffer
	numClips int
}

var _ render.Clipper = (*SVGWriter)(nil)

// NewSVGWriter allocates a new SVGWriter for a canvas of the given size.
// Pattern colours are looked up in res, which may be nil.
func NewSVGWriter(width, height float64, device matrix.Matrix, res *render.Resources) *SVGWriter {
	return &SVGWriter{
		Width:    width,
		Height:   height,
		Device:   device,
		patterns: patternCache{res: res},
	}
}

// Draw implements the [render.Plotter] interface.
func (w *SVGWriter) Draw(o *outline.Outline, mode graphics.DrawMode, rule graphics.FillRule, ctm matrix.Matrix, clip graphics.ClipID) error {
	if o.IsEmpty() {
		return nil
	}

	// SVG has one blend mode per element
	if f, s := mode.Fill, mode.Stroke; f != nil && s != nil && f.Blend != s.Paint.Blend {
		w.writePath(o, graphics.DrawMode{Fill: f}, rule, ctm, clip)
		w.writePath(o, graphics.DrawMode{Stroke: s}, rule, ctm, clip)
		return nil
	}
	w.writePath(o, mode, rule, ctm, clip)
	return nil
}

func (w *SVGWriter) writePath(o *outline.Outline, mode graphics.DrawMode, rule graphics.FillRule, ctm matrix.Matrix, clip graphics.ClipID) {
	b := &w.body
	b.WriteString(`<path d="`)
	b.WriteString(svgPath(o))
	b.WriteString(`" transform="`)
	b.WriteString(svgMatrix(ctm.Mul(w.Device)))
	b.WriteString(`"`)

	var blend graphics.BlendMode
	if f := mode.Fill; f != nil {
		fmt.Fprintf(b, ` fill="%s"`, w.hexColor(f))
		if f.Alpha != 1 {
			fmt.Fprintf(b, ` fill-opacity="%s"`, num(f.Alpha))
		}
		if rule == graphics.EvenOdd {
			b.WriteString(` fill-rule="evenodd"`)
		}
		blend = f.Blend
	} else {
		b.WriteString(` fill="none"`)
	}
	if s := mode.Stroke; s != nil {
		fmt.Fprintf(b, ` stroke="%s" stroke-width="%s"`, w.hexColor(&s.Paint), num(s.Style.Width))
		if s.Paint.Alpha != 1 {
			fmt.Fprintf(b, ` stroke-opacity="%s"`, num(s.Paint.Alpha))
		}
		if s.Style.Cap != graphics.LineCapButt {
			fmt.Fprintf(b, ` stroke-linecap="%s"`, s.Style.Cap)
		}
		if s.Style.Join != graphics.LineJoinMiter {
			fmt.Fprintf(b, ` stroke-linejoin="%s"`, s.Style.Join)
		} else if s.Style.MiterLimit != 4 {
			fmt.Fprintf(b, ` stroke-miterlimit="%s"`, num(s.Style.MiterLimit))
		}
		if d := s.Dash; d != nil {
			parts := make([]string, len(d.Pattern))
			for i, x := range d.Pattern {
				parts[i] = num(x)
			}
			fmt.Fprintf(b, ` stroke-dasharray="%s"`, strings.Join(parts, " "))
			if d.Phase != 0 {
				fmt.Fprintf(b, ` stroke-dashoffset="%s"`, num(d.Phase))
			}
		}
		if mode.Fill == nil {
			blend = s.Paint.Blend
		}
	}
	if blend == graphics.BlendDarken {
		b.WriteString(` style="mix-blend-mode:multiply"`)
	}
	if clip != graphics.NoClip {
		fmt.Fprintf(b, ` clip-path="url(#clip%d)"`, clip)
	}
	b.WriteString("/>\n")
}

// ClipPath implements the [render.Clipper] interface.
func (w *SVGWriter) ClipPath(o *outline.Outline, rule graphics.FillRule, ctm matrix.Matrix, parent graphics.ClipID) (graphics.ClipID, error) {
	w.numClips++
	id := graphics.ClipID(w.numClips)

	d := &w.defs
	fmt.Fprintf(d, `<clipPath id="clip%d"`, id)
	if parent != graphics.NoClip {
		fmt.Fprintf(d, ` clip-path="url(#clip%d)"`, parent)
	}
	fmt.Fprintf(d, `><path d="%s" transform="%s"`, svgPath(o), svgMatrix(ctm.Mul(w.Device)))
	if rule == graphics.EvenOdd {
		d.WriteString(` clip-rule="evenodd"`)
	}
	d.WriteString("/></clipPath>\n")
	return id, nil
}

// WriteTo writes the SVG document to out.
func (w *SVGWriter) WriteTo(out io.Writer) (int64, error) {
	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		num(w.Width), num(w.Height), num(w.Width), num(w.Height))
	if w.defs.Len() > 0 {
		buf.WriteString("<defs>\n")
		buf.Write(w.defs.Bytes())
		buf.WriteString("</defs>\n")
	}
	buf.Write(w.body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.WriteTo(out)
}

func (w *SVGWriter) hexColor(f *graphics.FillMode) string {
	c := w.patterns.solid(f.Color)
	return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
}

// svgPath converts o to SVG path data.  Coordinates are in user space.
func svgPath(o *outline.Outline) string {
	var parts []string
	for cmd, pts := range o.Path() {
		switch cmd {
		case path.CmdMoveTo:
			parts = append(parts, "M", num(pts[0].X), num(pts[0].Y))
		case path.CmdLineTo:
			parts = append(parts, "L", num(pts[0].X), num(pts[0].Y))
		case path.CmdQuadTo:
			parts = append(parts, "Q", num(pts[0].X), num(pts[0].Y), num(pts[1].X), num(pts[1].Y))
		case path.CmdCubeTo:
			parts = append(parts, "C",
				num(pts[0].X), num(pts[0].Y),
				num(pts[1].X), num(pts[1].Y),
				num(pts[2].X), num(pts[2].Y))
		case path.CmdClose:
			parts = append(parts, "Z")
		}
	}
	return strings.Join(parts, " ")
}

func svgMatrix(m matrix.Matrix) string {
	return fmt.Sprintf("matrix(%s %s %s %s %s %s)",
		num(m[0]), num(m[1]), num(m[2]), num(m[3]), num(m[4]), num(m[5]))
}

func num(x float64) string {
	return float.Format(x, 4)
}
