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

import "fmt"

// Type3 is a stitching function.  It combines several 1-input functions
// into a single function, each one responsible for one subdomain.
type Type3 struct {
	// XMin and XMax give the domain of the function.
	XMin, XMax float64

	// Range (optional) gives clipping ranges for the outputs.
	Range []float64

	// Functions are the k functions to be combined.
	// All must have one input and the same number of outputs.
	Functions []Func

	// Bounds are the k-1 boundaries between the subdomains, in
	// increasing order.
	Bounds []float64

	// Encode maps each subdomain to the domain of the corresponding
	// function, as [min0, max0, min1, max1, ...].
	Encode []float64
}

// FunctionType returns 3.
func (f *Type3) FunctionType() int {
	return 3
}

// Shape returns the number of input and output values of the function.
func (f *Type3) Shape() (int, int) {
	if len(f.Functions) == 0 {
		return 1, 0
	}
	_, n := f.Functions[0].Shape()
	return 1, n
}

// Apply evaluates the function at the given input value.
func (f *Type3) Apply(inputs ...float64) []float64 {
	if len(inputs) != 1 {
		panic(fmt.Sprintf("Type 3 function expects 1 input, got %d", len(inputs)))
	}
	x := clip(inputs[0], f.XMin, f.XMax)

	i, lo, hi := f.subdomain(x)
	e := interpolate(x, lo, hi, f.Encode[2*i], f.Encode[2*i+1])
	y := f.Functions[i].Apply(e)
	clipOutputs(y, f.Range)
	return y
}

// subdomain finds the subdomain containing x.  Subdomains are half-open
// intervals [a, b), except for the last one which includes XMax.  If
// XMin equals Bounds[0], the first subdomain consists of the single
// point XMin.
func (f *Type3) subdomain(x float64) (int, float64, float64) {
	k := len(f.Functions)
	if len(f.Bounds) == 0 {
		return 0, f.XMin, f.XMax
	}
	if x == f.XMin && f.XMin == f.Bounds[0] {
		return 0, f.XMin, f.Bounds[0]
	}
	lo := f.XMin
	for i, b := range f.Bounds {
		if x < b {
			return i, lo, b
		}
		lo = b
	}
	return k - 1, lo, f.XMax
}

func (f *Type3) validate() error {
	if !isRange(f.XMin, f.XMax) {
		return newInvalidFunctionError(3, "Domain", "invalid domain [%g, %g]", f.XMin, f.XMax)
	}
	k := len(f.Functions)
	if k == 0 {
		return newInvalidFunctionError(3, "Functions", "no functions given")
	}
	_, n := f.Functions[0].Shape()
	for i, fn := range f.Functions {
		mi, ni := fn.Shape()
		if mi != 1 || ni != n {
			return newInvalidFunctionError(3, "Functions", "function %d has shape %d→%d", i, mi, ni)
		}
	}
	if len(f.Bounds) != k-1 {
		return newInvalidFunctionError(3, "Bounds", "expected %d values, got %d", k-1, len(f.Bounds))
	}
	prev := f.XMin
	for i, b := range f.Bounds {
		if b < prev || b > f.XMax || (i > 0 && b == prev) {
			return newInvalidFunctionError(3, "Bounds", "bounds %v not increasing within domain", f.Bounds)
		}
		prev = b
	}
	if len(f.Encode) != 2*k {
		return newInvalidFunctionError(3, "Encode", "expected %d values, got %d", 2*k, len(f.Encode))
	}
	if f.Range != nil && (len(f.Range) != 2*n || !checkRanges(f.Range)) {
		return newInvalidFunctionError(3, "Range", "invalid range %v", f.Range)
	}
	return nil
}
