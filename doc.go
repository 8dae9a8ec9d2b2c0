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

// Package pdfdraw interprets PDF content streams and turns them into
// resolved draw calls.
//
// The root package holds the object model shared by all sub-packages:
// the PDF object types used for operator operands and resource
// dictionaries, the [MalformedFileError] type and the package logger.
//
// The interpreter itself is in the package [seehuhn.de/go/pdfdraw/render].
// Colour spaces are in [seehuhn.de/go/pdfdraw/graphics/color], and
// [seehuhn.de/go/pdfdraw/document] loads pages from PDF files.
package pdfdraw
