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

package function

// Func is a PDF function.
type Func interface {
	// FunctionType returns the PDF function type (0, 2, 3 or 4).
	FunctionType() int

	// Shape returns the number of input and output values of the function.
	Shape() (int, int)

	// Apply evaluates the function.  Inputs are clipped to the domain and
	// outputs to the range.
	//
	// Apply panics if the number of inputs does not match the first value
	// returned by Shape.
	Apply(inputs ...float64) []float64
}
