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
	"slices"
)

// Type0 is a sampled function.  The function values are given by a table of
// samples; values between sample points are obtained by multilinear
// interpolation.
type Type0 struct {
	// Domain gives the valid input ranges as [min0, max0, min1, max1, ...].
	Domain []float64

	// Range gives the output ranges as [min0, max0, min1, max1, ...].
	Range []float64

	// Size is the number of samples in each input dimension.
	Size []int

	// BitsPerSample is one of 1, 2, 4, 8, 12, 16, 24 or 32.
	BitsPerSample int

	// Encode maps inputs to sample table indices, as [min0, max0, ...].
	// If this is nil, the default [0, Size[0]-1, 0, Size[1]-1, ...] is used.
	Encode []float64

	// Decode maps samples to output values, as [min0, max0, ...].
	// If this is nil, Range is used.
	Decode []float64

	// Samples holds the sample values, packed with BitsPerSample bits per
	// value.  The first input dimension varies fastest.
	Samples []byte
}

// FunctionType returns 0.
func (f *Type0) FunctionType() int {
	return 0
}

// Shape returns the number of input and output values of the function.
func (f *Type0) Shape() (int, int) {
	return len(f.Domain) / 2, len(f.Range) / 2
}

// Apply evaluates the function at the given input values.
func (f *Type0) Apply(inputs ...float64) []float64 {
	m, n := f.Shape()
	if len(inputs) != m {
		panic(fmt.Sprintf("Type 0 function expects %d inputs, got %d", m, len(inputs)))
	}

	base := make([]int, m)
	frac := make([]float64, m)
	for i := range m {
		lo, hi := f.Domain[2*i], f.Domain[2*i+1]
		x := clip(inputs[i], lo, hi)
		e0, e1 := 0.0, float64(f.Size[i]-1)
		if len(f.Encode) >= 2*m {
			e0, e1 = f.Encode[2*i], f.Encode[2*i+1]
		}
		e := clip(interpolate(x, lo, hi, e0, e1), 0, float64(f.Size[i]-1))

		b := int(math.Floor(e))
		t := e - float64(b)
		if b >= f.Size[i]-1 {
			if f.Size[i] > 1 {
				b, t = f.Size[i]-2, 1
			} else {
				b, t = 0, 0
			}
		}
		base[i] = b
		frac[i] = t
	}

	y := make([]float64, n)
corners:
	for corner := 0; corner < 1<<m; corner++ {
		w := 1.0
		offset := 0
		stride := 1
		for i := range m {
			k := base[i]
			if corner>>i&1 == 1 {
				if frac[i] == 0 {
					continue corners
				}
				k++
				w *= frac[i]
			} else {
				w *= 1 - frac[i]
			}
			offset += k * stride
			stride *= f.Size[i]
		}
		if w == 0 {
			continue
		}
		for j := range n {
			y[j] += w * f.sample(offset*n+j)
		}
	}

	decode := f.Decode
	if len(decode) < 2*n {
		decode = f.Range
	}
	maxVal := float64(uint64(1)<<f.BitsPerSample - 1)
	for j := range n {
		y[j] = interpolate(y[j], 0, maxVal, decode[2*j], decode[2*j+1])
	}
	clipOutputs(y, f.Range)
	return y
}

// sample returns the i-th sample value in the table, as an unsigned
// integer.  Samples past the end of the table read as zero.
func (f *Type0) sample(i int) float64 {
	bps := f.BitsPerSample
	pos := i * bps
	var v uint64
	for k := 0; k < bps; {
		idx := (pos + k) / 8
		if idx >= len(f.Samples) {
			return 0
		}
		avail := 8 - (pos+k)%8
		take := min(avail, bps-k)
		bits := uint64(f.Samples[idx]>>(avail-take)) & (1<<take - 1)
		v = v<<take | bits
		k += take
	}
	return float64(v)
}

var validBitsPerSample = []int{1, 2, 4, 8, 12, 16, 24, 32}

func (f *Type0) validate() error {
	m, n := f.Shape()
	if m == 0 || !checkRanges(f.Domain) {
		return newInvalidFunctionError(0, "Domain", "invalid domain %v", f.Domain)
	}
	if n == 0 || !checkRanges(f.Range) {
		return newInvalidFunctionError(0, "Range", "invalid range %v", f.Range)
	}
	if len(f.Size) != m {
		return newInvalidFunctionError(0, "Size", "expected %d entries, got %d", m, len(f.Size))
	}
	total := n
	for _, s := range f.Size {
		if s < 1 {
			return newInvalidFunctionError(0, "Size", "invalid size %d", s)
		}
		total *= s
	}
	if !slices.Contains(validBitsPerSample, f.BitsPerSample) {
		return newInvalidFunctionError(0, "BitsPerSample", "invalid value %d", f.BitsPerSample)
	}
	if f.Encode != nil && len(f.Encode) != 2*m {
		return newInvalidFunctionError(0, "Encode", "expected %d values, got %d", 2*m, len(f.Encode))
	}
	if f.Decode != nil && len(f.Decode) != 2*n {
		return newInvalidFunctionError(0, "Decode", "expected %d values, got %d", 2*n, len(f.Decode))
	}
	if need := (total*f.BitsPerSample + 7) / 8; len(f.Samples) < need {
		return newInvalidFunctionError(0, "Samples", "need %d bytes, got %d", need, len(f.Samples))
	}
	return nil
}
