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

package document

import (
	"bytes"
	"fmt"
	"math"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfdraw"
	"seehuhn.de/go/pdfdraw/render"
)

// Page holds the information needed to render a page.
type Page struct {
	// Contents is the concatenation of all content streams of the page.
	Contents []byte

	Resources *render.Resources

	MediaBox rect.Rect

	// Rotate is the number of degrees by which the page is rotated
	// clockwise when displayed.  This is always a multiple of 90 in the
	// range 0, ..., 270.
	Rotate int
}

// Letter is the media box used for pages which do not specify one.
var Letter = rect.Rect{URx: 612, URy: 792}

// Page returns page n of the document.  Pages are numbered starting at 1.
func (d *Document) Page(n int) (*Page, error) {
	if n < 1 || n > d.numPages {
		return nil, fmt.Errorf("page %d: %w", n, ErrNoPage)
	}
	pageDict, _, _, err := d.ctx.PageDict(n, false)
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", n, err)
	}
	if pageDict == nil {
		return nil, fmt.Errorf("page %d: %w", n, ErrNoPage)
	}

	p := &Page{MediaBox: Letter}

	contents, err := d.contents(pageDict["Contents"])
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", n, err)
	}
	p.Contents = contents

	resObj, err := d.inherited(pageDict, "Resources")
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", n, err)
	}
	p.Resources, err = render.ReadResources(resObj)
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", n, err)
	}

	boxObj, err := d.inherited(pageDict, "MediaBox")
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", n, err)
	}
	if boxObj != nil {
		box, err := pdfdraw.GetRect(boxObj)
		if err != nil {
			return nil, fmt.Errorf("page %d: MediaBox: %w", n, err)
		}
		if box.URx > box.LLx && box.URy > box.LLy {
			p.MediaBox = box
		}
	}

	rotObj, err := d.inherited(pageDict, "Rotate")
	if err != nil {
		return nil, fmt.Errorf("page %d: %w", n, err)
	}
	if rot, err := pdfdraw.GetInteger(rotObj); err == nil {
		p.Rotate = int((rot%360 + 360) % 360 / 90 * 90)
	}

	return p, nil
}

// inherited looks up an inheritable page attribute, walking up the page
// tree if necessary.
func (d *Document) inherited(dict types.Dict, key string) (pdfdraw.Object, error) {
	for range maxDepth {
		if val, ok := dict[key]; ok {
			return d.Convert(val)
		}
		parent, err := d.resolve(dict["Parent"])
		if err != nil {
			return nil, err
		}
		next, ok := parent.(types.Dict)
		if !ok {
			return nil, nil
		}
		dict = next
	}
	return nil, pdfdraw.Errorf("page tree too deep")
}

// contents returns the content streams of a page, concatenated and
// separated by newlines.
func (d *Document) contents(obj types.Object) ([]byte, error) {
	val, err := d.Convert(obj)
	if err != nil {
		return nil, err
	}

	var streams []*pdfdraw.Stream
	switch val := val.(type) {
	case *pdfdraw.Stream:
		streams = append(streams, val)
	case pdfdraw.Array:
		for _, elem := range val {
			if stm, ok := elem.(*pdfdraw.Stream); ok {
				streams = append(streams, stm)
			}
		}
	}

	buf := &bytes.Buffer{}
	for i, stm := range streams {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.Write(stm.Data)
	}
	return buf.Bytes(), nil
}

// Transform returns the matrix which maps the default user space of the
// page to a device space with the origin in the top-left corner, the
// y-axis pointing down, and scale device units per PDF unit.  The page
// rotation is applied.  The returned width and height give the size of
// the page in device space.
func (p *Page) Transform(scale float64) (m matrix.Matrix, width, height float64) {
	box := p.MediaBox
	flip := matrix.Matrix{scale, 0, 0, -scale, -box.LLx * scale, box.URy * scale}

	w := (box.URx - box.LLx) * scale
	h := (box.URy - box.LLy) * scale

	var rot matrix.Matrix
	switch p.Rotate {
	case 90:
		rot = matrix.Matrix{0, 1, -1, 0, h, 0}
		w, h = h, w
	case 180:
		rot = matrix.Matrix{-1, 0, 0, -1, w, h}
	case 270:
		rot = matrix.Matrix{0, -1, 1, 0, 0, w}
		w, h = h, w
	default:
		rot = matrix.Identity
	}
	return flip.Mul(rot), w, h
}

// PixelSize returns the size of the page in whole device pixels.
func PixelSize(width, height float64) (int, int) {
	return int(math.Ceil(width - 1e-6)), int(math.Ceil(height - 1e-6))
}
