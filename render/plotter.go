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

package render

import (
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfdraw/graphics"
	"seehuhn.de/go/pdfdraw/graphics/color"
	"seehuhn.de/go/pdfdraw/graphics/outline"
)

// A Plotter receives the paths painted by a content stream.
type Plotter interface {
	// Draw paints the outline o.  The coordinates of o are in user space;
	// ctm maps user space to device space.  Drawing is restricted to the
	// clipping path clip, unless clip is [graphics.NoClip].
	//
	// The outline and the draw mode must not be modified by the plotter.
	Draw(o *outline.Outline, mode graphics.DrawMode, rule graphics.FillRule, ctm matrix.Matrix, clip graphics.ClipID) error
}

// A Clipper is a [Plotter] which can construct clipping paths.
//
// ClipPath returns a new clipping path which is the intersection of
// parent with the interior of o.  The returned ID is passed to all
// following draw calls until the graphics state is restored.
type Clipper interface {
	ClipPath(o *outline.Outline, rule graphics.FillRule, ctm matrix.Matrix, parent graphics.ClipID) (graphics.ClipID, error)
}

// EmptyOutlinePolicy decides what happens when a path painting operator is
// used without a current path.
type EmptyOutlinePolicy int

const (
	// SuppressEmpty skips draw calls for empty outlines.
	SuppressEmpty EmptyOutlinePolicy = iota

	// EmitEmpty passes empty outlines to the plotter.
	EmitEmpty
)

func (p EmptyOutlinePolicy) String() string {
	switch p {
	case SuppressEmpty:
		return "suppress"
	case EmitEmpty:
		return "emit"
	default:
		return "EmptyOutlinePolicy(?)"
	}
}

// Options control the behaviour of a [Renderer].
//
// Passing nil options to [New] is equivalent to passing
// &Options{Lenient: true}.
type Options struct {
	// Lenient makes colours which cannot be resolved paint in black,
	// instead of stopping the page.  Graphics state parameter
	// dictionaries which cannot be found are skipped.  In both cases a
	// message is logged.
	Lenient bool

	// Indexed selects how colour table entries of Indexed colour spaces
	// are converted to colour values.
	Indexed color.IndexedScaling

	EmptyOutlines EmptyOutlinePolicy

	// Strict makes unknown operators outside of BX/EX sections an
	// error.  Otherwise they are logged and ignored.
	Strict bool
}

var defaultOptions = Options{Lenient: true}
