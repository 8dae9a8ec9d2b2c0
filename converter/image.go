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
	"image"
	gocolor "image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/pdfdraw/graphics"
	"seehuhn.de/go/pdfdraw/graphics/outline"
	"seehuhn.de/go/pdfdraw/render"
)

// ImageRenderer rasterises draw calls into an RGBA image.
type ImageRenderer struct {
	Image *image.RGBA

	// Device maps PDF device space to pixel coordinates.
	Device matrix.Matrix

	raster   *vector.Rasterizer
	patterns patternCache
	clips    []*image.Alpha
}

var _ render.Clipper = (*ImageRenderer)(nil)

// NewImageRenderer allocates a white canvas with the given size in pixels.
// Pattern colours are looked up in res, which may be nil.
func NewImageRenderer(width, height int, device matrix.Matrix, res *render.Resources) *ImageRenderer {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	return &ImageRenderer{
		Image:    img,
		Device:   device,
		raster:   vector.NewRasterizer(width, height),
		patterns: patternCache{res: res},
	}
}

// Draw implements the [render.Plotter] interface.
func (r *ImageRenderer) Draw(o *outline.Outline, mode graphics.DrawMode, rule graphics.FillRule, ctm matrix.Matrix, clip graphics.ClipID) error {
	m := ctm.Mul(r.Device)
	if mode.Fill != nil {
		mask := r.fillMask(o, m, rule)
		r.composite(mask, clip, mode.Fill)
	}
	if mode.Stroke != nil {
		mask := r.strokeMask(o, m, mode.Stroke)
		r.composite(mask, clip, &mode.Stroke.Paint)
	}
	return nil
}

// ClipPath implements the [render.Clipper] interface.
// Clipping paths are stored as coverage masks.
func (r *ImageRenderer) ClipPath(o *outline.Outline, rule graphics.FillRule, ctm matrix.Matrix, parent graphics.ClipID) (graphics.ClipID, error) {
	mask := r.fillMask(o, ctm.Mul(r.Device), rule)
	if pm := r.clipMask(parent); pm != nil {
		multiplyMask(mask, pm)
	}
	r.clips = append(r.clips, mask)
	return graphics.ClipID(len(r.clips)), nil
}

func (r *ImageRenderer) clipMask(id graphics.ClipID) *image.Alpha {
	if id == graphics.NoClip || int(id) > len(r.clips) {
		return nil
	}
	return r.clips[id-1]
}

// fillMask computes the coverage of the interior of o.
//
// The rasteriser only implements the nonzero winding rule.  For the
// even-odd rule, the subpaths are rasterised one by one and combined
// with an exclusive or.  This is exact unless a single subpath
// intersects itself.
func (r *ImageRenderer) fillMask(o *outline.Outline, m matrix.Matrix, rule graphics.FillRule) *image.Alpha {
	if rule == graphics.EvenOdd && len(o.Contours) > 1 {
		var mask *image.Alpha
		for i := range o.Contours {
			single := &outline.Outline{Contours: o.Contours[i : i+1]}
			ci := r.rasterize(func() { r.addOutline(single, m) })
			if mask == nil {
				mask = ci
			} else {
				xorMask(mask, ci)
			}
		}
		return mask
	}
	return r.rasterize(func() { r.addOutline(o, m) })
}

func (r *ImageRenderer) strokeMask(o *outline.Outline, m matrix.Matrix, s *graphics.StrokeMode) *image.Alpha {
	sc := scale(m)
	hw := max(s.Style.Width*sc/2, 0.5)

	lines := flatten(o, m)
	if s.Dash != nil {
		pat := make([]float64, len(s.Dash.Pattern))
		for i, x := range s.Dash.Pattern {
			pat[i] = x * sc
		}
		lines = dash(lines, pat, s.Dash.Phase*sc)
	}
	polys := strokePolygons(lines, hw, s.Style)

	return r.rasterize(func() {
		for _, poly := range polys {
			r.raster.MoveTo(float32(poly[0].X), float32(poly[0].Y))
			for _, p := range poly[1:] {
				r.raster.LineTo(float32(p.X), float32(p.Y))
			}
			r.raster.ClosePath()
		}
	})
}

func (r *ImageRenderer) rasterize(add func()) *image.Alpha {
	b := r.Image.Bounds()
	r.raster.Reset(b.Dx(), b.Dy())
	add()
	mask := image.NewAlpha(b)
	r.raster.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

func (r *ImageRenderer) addOutline(o *outline.Outline, m matrix.Matrix) {
	z := r.raster
	for cmd, pts := range o.Transform(m).Path() {
		switch cmd {
		case path.CmdMoveTo:
			p := pts[0]
			z.MoveTo(float32(p.X), float32(p.Y))
		case path.CmdLineTo:
			p := pts[0]
			z.LineTo(float32(p.X), float32(p.Y))
		case path.CmdQuadTo:
			c, p := pts[0], pts[1]
			z.QuadTo(float32(c.X), float32(c.Y), float32(p.X), float32(p.Y))
		case path.CmdCubeTo:
			c1, c2, p := pts[0], pts[1], pts[2]
			z.CubeTo(float32(c1.X), float32(c1.Y), float32(c2.X), float32(c2.Y), float32(p.X), float32(p.Y))
		case path.CmdClose:
			z.ClosePath()
		}
	}
}

// composite paints the colour of paint through mask.  The mask is
// modified.
func (r *ImageRenderer) composite(mask *image.Alpha, clip graphics.ClipID, paint *graphics.FillMode) {
	if cm := r.clipMask(clip); cm != nil {
		multiplyMask(mask, cm)
	}
	c := r.patterns.solid(paint.Color)
	alpha := clamp(paint.Alpha)

	if paint.Blend == graphics.BlendDarken {
		// multiply blending
		img := r.Image
		b := img.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				cov := float64(mask.Pix[mask.PixOffset(x, y)]) / 255 * alpha
				if cov == 0 {
					continue
				}
				i := img.PixOffset(x, y)
				for k, s := range [3]float64{c.R, c.G, c.B} {
					d := float64(img.Pix[i+k]) / 255
					img.Pix[i+k] = to8(d * (1 - cov*(1-clamp(s))))
				}
			}
		}
		return
	}

	src := image.NewUniform(gocolor.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(alpha)})
	draw.DrawMask(r.Image, r.Image.Bounds(), src, image.Point{}, mask, image.Point{}, draw.Over)
}

func multiplyMask(dst, src *image.Alpha) {
	for i, a := range src.Pix {
		dst.Pix[i] = uint8((uint32(dst.Pix[i])*uint32(a) + 127) / 255)
	}
}

// xorMask combines two coverage masks under the even-odd rule.
func xorMask(dst, src *image.Alpha) {
	for i, b := range src.Pix {
		a := uint32(dst.Pix[i])
		dst.Pix[i] = uint8(a + uint32(b) - 2*((a*uint32(b)+127)/255))
	}
}
