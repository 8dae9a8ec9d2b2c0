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

// Package color implements PDF colour spaces and the conversion of colour
// operands into renderable colours.
//
// A [Resolver] takes the active colour space of a graphics state together
// with the operands of a colour-setting operator and produces either a
// [Solid] RGB colour or a [PatternRef].  Colour spaces are built from
// their PDF representation by [ReadSpace].
//
// The conversion is deliberately simple.  CMYK values are converted using
// R = 1 - min(1, C+K) and similar, and calibrated and ICC-based colour
// spaces are treated like the corresponding device colour spaces.
package color
