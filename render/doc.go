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

// Package render interprets PDF content streams.
//
// A [Renderer] executes the operators of a content stream one by one.  It
// maintains the graphics state, the text state and the current path, and
// reports every painted path to a [Plotter] as a single draw call, with
// fully resolved colours and the clipping path which was in effect.
//
// Fonts are not loaded and glyphs are not drawn, but the text operators
// keep the text state up to date.  Clipping paths are not intersected by
// the renderer; instead the plotter can construct clipping paths by
// implementing [Clipper].
package render
