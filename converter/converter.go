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
	"image"
	"io"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfdraw/document"
	"seehuhn.de/go/pdfdraw/render"
)

// Converter renders pages of a document using one of the plotters in
// this package.
type Converter struct {
	Doc *document.Document

	// Options is passed on to the content stream renderer.
	// If this is nil, the defaults are used.
	Options *render.Options
}

// NewConverter creates a new Converter.
func NewConverter(doc *document.Document, opt *render.Options) *Converter {
	return &Converter{Doc: doc, Options: opt}
}

// RenderPageToImage renders a single page of the PDF to an image.
// pageNum is 1-based.  dpi specifies the resolution in dots per inch
// (72 is the default PDF resolution).
func (c *Converter) RenderPageToImage(pageNum int, dpi float64) (*image.RGBA, error) {
	page, err := c.Doc.Page(pageNum)
	if err != nil {
		return nil, err
	}
	return RenderImage(page, dpi, c.Options)
}

// RenderPageToSVG renders a single page of the PDF and writes the
// result as an SVG document to w.
func (c *Converter) RenderPageToSVG(w io.Writer, pageNum int) error {
	page, err := c.Doc.Page(pageNum)
	if err != nil {
		return err
	}
	svg, err := RenderSVG(page, c.Options)
	if err != nil {
		return err
	}
	_, err = svg.WriteTo(w)
	return err
}

// TracePage writes a description of all draw calls on the page to w.
func (c *Converter) TracePage(w io.Writer, pageNum int) error {
	page, err := c.Doc.Page(pageNum)
	if err != nil {
		return err
	}
	return Trace(w, page, c.Options)
}

// RenderImage rasterises a page.
func RenderImage(page *document.Page, dpi float64, opt *render.Options) (*image.RGBA, error) {
	ctm, w, h := page.Transform(dpi / 72)
	width, height := document.PixelSize(w, h)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid page size %dx%d", width, height)
	}

	p := NewImageRenderer(width, height, matrix.Identity, page.Resources)
	err := run(p, page, ctm, opt)
	if err != nil {
		return nil, err
	}
	return p.Image, nil
}

// RenderSVG converts a page to SVG.  One SVG user unit corresponds to
// one PDF unit.
func RenderSVG(page *document.Page, opt *render.Options) (*SVGWriter, error) {
	ctm, w, h := page.Transform(1)
	p := NewSVGWriter(w, h, matrix.Identity, page.Resources)
	err := run(p, page, ctm, opt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Trace writes a description of all draw calls on a page to w.
func Trace(w io.Writer, page *document.Page, opt *render.Options) error {
	ctm, _, _ := page.Transform(1)
	return run(&Tracer{W: w}, page, ctm, opt)
}

func run(p render.Plotter, page *document.Page, ctm matrix.Matrix, opt *render.Options) error {
	r := render.New(p, page.Resources, opt)
	r.Reset(page.Resources, ctm)
	return r.RenderContent(bytes.NewReader(page.Contents))
}
