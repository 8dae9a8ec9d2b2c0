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

import (
	"fmt"
	"math"
)

// Type2 is an exponential interpolation function, of the form
// y = C0 + x^N × (C1 - C0).  These functions have a single input
// and one or more outputs.
type Type2 struct {
	// XMin and XMax give the domain of the function.  Inputs outside
	// this interval are clipped.
	XMin, XMax float64

	// Range (optional) gives clipping ranges for the outputs, as
	// [min0, max0, min1, max1, ...].
	Range []float64

	// C0 is the function result for x = 0.
	C0 []float64

	// C1 is the function result for x = 1.
	// This must have the same length as C0.
	C1 []float64

	// N is the interpolation exponent.
	N float64
}

// FunctionType returns 2.
func (f *Type2) FunctionType() int {
	return 2
}

// Shape returns the number of input and output values of the function.
func (f *Type2) Shape() (int, int) {
	return 1, len(f.C0)
}

// Apply evaluates the function at the given input value.
func (f *Type2) Apply(inputs ...float64) []float64 {
	if len(inputs) != 1 {
		panic(fmt.Sprintf("Type 2 function expects 1 input, got %d", len(inputs)))
	}
	x := clip(inputs[0], f.XMin, f.XMax)

	var xN float64
	switch f.N {
	case 0:
		xN = 1
	case 1:
		xN = x
	default:
		xN = math.Pow(x, f.N)
	}

	y := make([]float64, len(f.C0))
	for i := range y {
		y[i] = f.C0[i] + xN*(f.C1[i]-f.C0[i])
	}
	clipOutputs(y, f.Range)
	return y
}

func (f *Type2) validate() error {
	if !isRange(f.XMin, f.XMax) {
		return newInvalidFunctionError(2, "Domain", "invalid domain [%g, %g]", f.XMin, f.XMax)
	}
	if len(f.C0) == 0 || len(f.C0) != len(f.C1) {
		return newInvalidFunctionError(2, "C0/C1", "inconsistent lengths %d and %d", len(f.C0), len(f.C1))
	}
	if f.Range != nil && (len(f.Range) != 2*len(f.C0) || !checkRanges(f.Range)) {
		return newInvalidFunctionError(2, "Range", "invalid range %v", f.Range)
	}
	if !isFinite(f.N) {
		return newInvalidFunctionError(2, "N", "invalid exponent %g", f.N)
	}
	if f.N != math.Trunc(f.N) && f.XMin < 0 {
		return newInvalidFunctionError(2, "Domain", "non-integer exponent %g needs non-negative inputs", f.N)
	}
	if f.N < 0 && f.XMin <= 0 && f.XMax >= 0 {
		return newInvalidFunctionError(2, "Domain", "negative exponent %g with zero in domain", f.N)
	}
	return nil
}
