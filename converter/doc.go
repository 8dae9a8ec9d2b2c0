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

// Package converter contains plotters which turn the draw calls of a
// content stream into output formats.
//
// [ImageRenderer] rasterises the page, [SVGWriter] produces an SVG
// document, and [Tracer] writes a human readable log of all draw calls.
// All three implement [render.Clipper].
package converter
