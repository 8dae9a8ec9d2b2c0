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

import "strings"

// Bits is a bit mask for the graphics state parameters which can be set
// by an ExtGState dictionary.
type Bits uint32

// Possible values for Bits.
const (
	StateLineWidth Bits = 1 << iota
	StateLineCap
	StateLineJoin
	StateMiterLimit
	StateDash // pattern and phase
	StateRenderingIntent
	StateStrokeAdjustment
	StateStrokeAlpha
	StateFillAlpha
	StateOverprint // fill and stroke
	StateOverprintMode
	StateFlatnessTolerance
	StateSmoothnessTolerance
	StateTextFont // includes size
	StateTextKnockout

	stateFirstUnused
	AllBits = stateFirstUnused - 1
)

var bitNames = []string{
	"LineWidth",
	"LineCap",
	"LineJoin",
	"MiterLimit",
	"Dash",
	"RenderingIntent",
	"StrokeAdjustment",
	"StrokeAlpha",
	"FillAlpha",
	"Overprint",
	"OverprintMode",
	"FlatnessTolerance",
	"SmoothnessTolerance",
	"TextFont",
	"TextKnockout",
}

// Names returns the names of the set bits, separated by "|".
func (b Bits) Names() string {
	var parts []string
	for i, name := range bitNames {
		if b&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}
