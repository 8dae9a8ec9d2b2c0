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

package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"seehuhn.de/go/pdfdraw"
)

// ErrUnknown is returned when an operator is not recognized.
var ErrUnknown = errors.New("unknown operator")

// Category groups operators as in table 50 of ISO 32000-2:2020.
type Category uint8

// The operator categories.
const (
	CatUnknown Category = iota
	CatGeneralState
	CatSpecialState
	CatPathConstruction
	CatPathPainting
	CatClipping
	CatTextObject
	CatTextState
	CatTextPositioning
	CatTextShowing
	CatType3Font
	CatColor
	CatShading
	CatInlineImage
	CatXObject
	CatMarkedContent
	CatCompatibility
)

var categoryNames = [...]string{
	CatUnknown:          "unknown",
	CatGeneralState:     "general graphics state",
	CatSpecialState:     "special graphics state",
	CatPathConstruction: "path construction",
	CatPathPainting:     "path painting",
	CatClipping:         "clipping",
	CatTextObject:       "text object",
	CatTextState:        "text state",
	CatTextPositioning:  "text positioning",
	CatTextShowing:      "text showing",
	CatType3Font:        "Type 3 font",
	CatColor:            "colour",
	CatShading:          "shading",
	CatInlineImage:      "inline image",
	CatXObject:          "XObject",
	CatMarkedContent:    "marked content",
	CatCompatibility:    "compatibility",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

var categories = map[OpName]Category{
	OpPushGraphicsState:    CatSpecialState,
	OpPopGraphicsState:     CatSpecialState,
	OpTransform:            CatSpecialState,
	OpSetLineWidth:         CatGeneralState,
	OpSetLineCap:           CatGeneralState,
	OpSetLineJoin:          CatGeneralState,
	OpSetMiterLimit:        CatGeneralState,
	OpSetLineDash:          CatGeneralState,
	OpSetRenderingIntent:   CatGeneralState,
	OpSetFlatnessTolerance: CatGeneralState,
	OpSetExtGState:         CatGeneralState,

	OpMoveTo:    CatPathConstruction,
	OpLineTo:    CatPathConstruction,
	OpCurveTo:   CatPathConstruction,
	OpCurveToV:  CatPathConstruction,
	OpCurveToY:  CatPathConstruction,
	OpClosePath: CatPathConstruction,
	OpRectangle: CatPathConstruction,

	OpStroke:                    CatPathPainting,
	OpCloseAndStroke:            CatPathPainting,
	OpFill:                      CatPathPainting,
	OpFillCompat:                CatPathPainting,
	OpFillEvenOdd:               CatPathPainting,
	OpFillAndStroke:             CatPathPainting,
	OpFillAndStrokeEvenOdd:      CatPathPainting,
	OpCloseFillAndStroke:        CatPathPainting,
	OpCloseFillAndStrokeEvenOdd: CatPathPainting,
	OpEndPath:                   CatPathPainting,

	OpClipNonZero: CatClipping,
	OpClipEvenOdd: CatClipping,

	OpTextBegin: CatTextObject,
	OpTextEnd:   CatTextObject,

	OpTextSetCharacterSpacing:  CatTextState,
	OpTextSetWordSpacing:       CatTextState,
	OpTextSetHorizontalScaling: CatTextState,
	OpTextSetLeading:           CatTextState,
	OpTextSetFont:              CatTextState,
	OpTextSetRenderingMode:     CatTextState,
	OpTextSetRise:              CatTextState,

	OpTextMoveOffset:           CatTextPositioning,
	OpTextMoveOffsetSetLeading: CatTextPositioning,
	OpTextSetMatrix:            CatTextPositioning,
	OpTextNextLine:             CatTextPositioning,

	OpTextShow:                       CatTextShowing,
	OpTextShowArray:                  CatTextShowing,
	OpTextShowMoveNextLine:           CatTextShowing,
	OpTextShowMoveNextLineSetSpacing: CatTextShowing,

	OpType3SetWidthOnly:           CatType3Font,
	OpType3SetWidthAndBoundingBox: CatType3Font,

	OpSetStrokeColorSpace: CatColor,
	OpSetFillColorSpace:   CatColor,
	OpSetStrokeColor:      CatColor,
	OpSetStrokeColorN:     CatColor,
	OpSetFillColor:        CatColor,
	OpSetFillColorN:       CatColor,
	OpSetStrokeGray:       CatColor,
	OpSetFillGray:         CatColor,
	OpSetStrokeRGB:        CatColor,
	OpSetFillRGB:          CatColor,
	OpSetStrokeCMYK:       CatColor,
	OpSetFillCMYK:         CatColor,

	OpShading:     CatShading,
	OpInlineImage: CatInlineImage,
	OpXObject:     CatXObject,

	OpMarkedContentPoint:               CatMarkedContent,
	OpMarkedContentPointWithProperties: CatMarkedContent,
	OpBeginMarkedContent:               CatMarkedContent,
	OpBeginMarkedContentWithProperties: CatMarkedContent,
	OpEndMarkedContent:                 CatMarkedContent,

	OpBeginCompatibility: CatCompatibility,
	OpEndCompatibility:   CatCompatibility,
}

// Category returns the category of the operator, or CatUnknown if the
// operator is not recognized.
func (n OpName) Category() Category {
	return categories[n]
}

// IsKnown reports whether n is a valid content stream operator.
func (n OpName) IsKnown() bool {
	_, ok := categories[n]
	return ok
}

// Operator is a content stream operator together with its operands.
type Operator struct {
	Name OpName
	Args []pdfdraw.Object
}

// String returns the operator in content stream syntax.
func (o Operator) String() string {
	buf := &bytes.Buffer{}
	_ = o.write(buf)
	return buf.String()
}

func (o Operator) write(w io.Writer) error {
	if o.Name == OpInlineImage {
		return writeInlineImage(w, o.Args)
	}
	for _, arg := range o.Args {
		if _, err := io.WriteString(w, pdfdraw.Format(arg)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, " "); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, string(o.Name))
	return err
}

func writeInlineImage(w io.Writer, args []pdfdraw.Object) error {
	var dict pdfdraw.Dict
	var data pdfdraw.String
	if len(args) >= 2 {
		dict, _ = args[0].(pdfdraw.Dict)
		data, _ = args[1].(pdfdraw.String)
	}
	if _, err := io.WriteString(w, "BI "); err != nil {
		return err
	}
	// write the dictionary without the << >> brackets
	body := pdfdraw.Format(dict)
	if len(body) >= 4 {
		body = body[2 : len(body)-2]
	}
	if _, err := fmt.Fprintf(w, "%s ID\n", body); err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\nEI")
	return err
}

// Stream is a parsed content stream.
type Stream []Operator

// Validate checks that all operators in the stream are known.
// Inside BX/EX compatibility sections, unknown operators are allowed.
func (s Stream) Validate() error {
	compat := 0
	for i, op := range s {
		switch op.Name {
		case OpBeginCompatibility:
			compat++
		case OpEndCompatibility:
			if compat > 0 {
				compat--
			}
		}
		if !op.Name.IsKnown() && compat == 0 {
			return fmt.Errorf("operator %d (%s): %w", i, op.Name, ErrUnknown)
		}
	}
	return nil
}

// Write writes the stream in content stream syntax, one operator per line.
func (s Stream) Write(w io.Writer) error {
	for _, op := range s {
		if err := op.write(w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
