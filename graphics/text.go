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

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfdraw"
)

// TextRenderingMode is the rendering mode for text, set by the Tr operator.
type TextRenderingMode uint8

// Possible values for TextRenderingMode.
// See section 9.3.6 of ISO 32000-2:2020.
const (
	TextRenderingModeFill TextRenderingMode = iota
	TextRenderingModeStroke
	TextRenderingModeFillStroke
	TextRenderingModeInvisible
	TextRenderingModeFillClip
	TextRenderingModeStrokeClip
	TextRenderingModeFillStrokeClip
	TextRenderingModeClip
)

func (m TextRenderingMode) String() string {
	switch m {
	case TextRenderingModeFill:
		return "fill"
	case TextRenderingModeStroke:
		return "stroke"
	case TextRenderingModeFillStroke:
		return "fill+stroke"
	case TextRenderingModeInvisible:
		return "invisible"
	case TextRenderingModeFillClip:
		return "fill+clip"
	case TextRenderingModeStrokeClip:
		return "stroke+clip"
	case TextRenderingModeFillStrokeClip:
		return "fill+stroke+clip"
	case TextRenderingModeClip:
		return "clip"
	default:
		return fmt.Sprintf("TextRenderingMode(%d)", int(m))
	}
}

// TextState holds the text state parameters.
//
// Glyphs are not drawn, but the matrices are maintained so that the
// state stays consistent across text objects.
type TextState struct {
	// Tm is the text matrix, Tlm the text line matrix.
	Tm  matrix.Matrix
	Tlm matrix.Matrix

	CharSpacing float64
	WordSpacing float64

	// HorizontalScaling is stored as a fraction, 1 means 100%.
	HorizontalScaling float64

	Leading float64

	// FontName is the resource name given to the Tf operator, and Font
	// is the corresponding font dictionary.  Fonts set by an ExtGState
	// dictionary have no resource name.  Font is nil if the font could
	// not be found.
	FontName pdfdraw.Name
	Font     pdfdraw.Object
	FontSize float64

	Mode     TextRenderingMode
	Rise     float64
	Knockout bool
}

// NewTextState returns the text state at the start of a page.
func NewTextState() *TextState {
	return &TextState{
		Tm:                matrix.Identity,
		Tlm:               matrix.Identity,
		HorizontalScaling: 1,
		Knockout:          true,
	}
}

// Begin starts a new text object.
func (t *TextState) Begin() {
	t.SetMatrix(matrix.Identity)
}

// SetMatrix sets both the text matrix and the text line matrix to m.
func (t *TextState) SetMatrix(m matrix.Matrix) {
	t.Tm = m
	t.Tlm = m
}

// Translate moves to the start of the next line, offset from the start of
// the current line by (dx, dy) in text space.
func (t *TextState) Translate(dx, dy float64) {
	t.SetMatrix(matrix.Translate(dx, dy).Mul(t.Tlm))
}

// NextLine moves to the start of the next line, using the current
// leading.
func (t *TextState) NextLine() {
	t.Translate(0, -t.Leading)
}

// Clone returns a copy of the text state.
func (t *TextState) Clone() *TextState {
	res := *t
	return &res
}
