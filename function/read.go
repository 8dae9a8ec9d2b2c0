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

	"seehuhn.de/go/pdfdraw"
)

// maxDepth limits the nesting of Type 3 functions.
const maxDepth = 16

// Read constructs a function from its PDF representation.  Type 0 and
// Type 4 functions must be given as streams, Type 2 and Type 3 functions
// as dictionaries.
func Read(obj pdfdraw.Object) (Func, error) {
	return read(obj, 0)
}

func read(obj pdfdraw.Object, depth int) (Func, error) {
	if depth > maxDepth {
		return nil, pdfdraw.Errorf("functions nested too deeply")
	}

	var d pdfdraw.Dict
	var stm *pdfdraw.Stream
	switch x := obj.(type) {
	case pdfdraw.Dict:
		d = x
	case *pdfdraw.Stream:
		d = x.Dict
		stm = x
	default:
		return nil, pdfdraw.Errorf("expected function dictionary or stream, got %s", pdfdraw.Format(obj))
	}

	ftObj, ok := d["FunctionType"]
	if !ok {
		return nil, pdfdraw.Errorf("missing /FunctionType entry")
	}
	ft, err := pdfdraw.GetInteger(ftObj)
	if err != nil {
		return nil, err
	}
	domain, err := pdfdraw.GetFloatArray(d["Domain"])
	if err != nil {
		return nil, fmt.Errorf("/Domain: %w", err)
	}
	rng, err := pdfdraw.GetFloatArray(d["Range"])
	if err != nil {
		return nil, fmt.Errorf("/Range: %w", err)
	}

	var f interface {
		Func
		validate() error
	}
	switch ft {
	case 0:
		if stm == nil {
			return nil, pdfdraw.Errorf("Type 0 function must be a stream")
		}
		size, err := getInts(d["Size"])
		if err != nil {
			return nil, fmt.Errorf("/Size: %w", err)
		}
		bps, err := pdfdraw.GetInteger(d["BitsPerSample"])
		if err != nil {
			return nil, fmt.Errorf("/BitsPerSample: %w", err)
		}
		encode, err := pdfdraw.GetFloatArray(d["Encode"])
		if err != nil {
			return nil, fmt.Errorf("/Encode: %w", err)
		}
		decode, err := pdfdraw.GetFloatArray(d["Decode"])
		if err != nil {
			return nil, fmt.Errorf("/Decode: %w", err)
		}
		f = &Type0{
			Domain:        domain,
			Range:         rng,
			Size:          size,
			BitsPerSample: int(bps),
			Encode:        encode,
			Decode:        decode,
			Samples:       stm.Data,
		}

	case 2:
		c0, err := getFloatsDefault(d["C0"], 0)
		if err != nil {
			return nil, fmt.Errorf("/C0: %w", err)
		}
		c1, err := getFloatsDefault(d["C1"], 1)
		if err != nil {
			return nil, fmt.Errorf("/C1: %w", err)
		}
		n, err := pdfdraw.GetNumber(d["N"])
		if err != nil {
			return nil, fmt.Errorf("/N: %w", err)
		}
		if len(domain) != 2 {
			return nil, pdfdraw.Errorf("Type 2 function needs a one-dimensional domain")
		}
		f = &Type2{
			XMin:  domain[0],
			XMax:  domain[1],
			Range: rng,
			C0:    c0,
			C1:    c1,
			N:     n,
		}

	case 3:
		if len(domain) != 2 {
			return nil, pdfdraw.Errorf("Type 3 function needs a one-dimensional domain")
		}
		fa, err := pdfdraw.GetArray(d["Functions"])
		if err != nil {
			return nil, fmt.Errorf("/Functions: %w", err)
		}
		fns := make([]Func, len(fa))
		for i, fi := range fa {
			fns[i], err = read(fi, depth+1)
			if err != nil {
				return nil, err
			}
		}
		bounds, err := pdfdraw.GetFloatArray(d["Bounds"])
		if err != nil {
			return nil, fmt.Errorf("/Bounds: %w", err)
		}
		encode, err := pdfdraw.GetFloatArray(d["Encode"])
		if err != nil {
			return nil, fmt.Errorf("/Encode: %w", err)
		}
		f = &Type3{
			XMin:      domain[0],
			XMax:      domain[1],
			Range:     rng,
			Functions: fns,
			Bounds:    bounds,
			Encode:    encode,
		}

	case 4:
		if stm == nil {
			return nil, pdfdraw.Errorf("Type 4 function must be a stream")
		}
		f = &Type4{
			Domain:  domain,
			Range:   rng,
			Program: string(stm.Data),
		}

	default:
		return nil, pdfdraw.Errorf("unsupported function type %d", ft)
	}

	if err := f.validate(); err != nil {
		return nil, pdfdraw.Wrap(err)
	}
	return f, nil
}

func getInts(obj pdfdraw.Object) ([]int, error) {
	a, err := pdfdraw.GetArray(obj)
	if err != nil {
		return nil, err
	}
	res := make([]int, len(a))
	for i, x := range a {
		k, err := pdfdraw.GetInteger(x)
		if err != nil {
			return nil, err
		}
		res[i] = int(k)
	}
	return res, nil
}

func getFloatsDefault(obj pdfdraw.Object, def float64) ([]float64, error) {
	if obj == nil {
		return []float64{def}, nil
	}
	return pdfdraw.GetFloatArray(obj)
}
