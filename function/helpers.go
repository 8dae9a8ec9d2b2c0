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

import "math"

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// isRange checks that x and y are finite and satisfy x <= y.
func isRange(x, y float64) bool {
	return isFinite(x) && isFinite(y) && x <= y
}

// checkRanges verifies that a is a list of [min, max] pairs.
func checkRanges(a []float64) bool {
	if len(a)%2 != 0 {
		return false
	}
	for i := 0; i < len(a); i += 2 {
		if !isRange(a[i], a[i+1]) {
			return false
		}
	}
	return true
}

func clip(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// interpolate maps x from [xMin, xMax] to [yMin, yMax] linearly.
func interpolate(x, xMin, xMax, yMin, yMax float64) float64 {
	if xMax == xMin {
		return yMin
	}
	return yMin + (x-xMin)*(yMax-yMin)/(xMax-xMin)
}

// clipOutputs clips y to the given ranges, if any.
func clipOutputs(y []float64, ranges []float64) {
	if len(ranges) < 2*len(y) {
		return
	}
	for i := range y {
		y[i] = clip(y[i], ranges[2*i], ranges[2*i+1])
	}
}
