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

package pattern

import (
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfdraw"
	"seehuhn.de/go/pdfdraw/function"
	"seehuhn.de/go/pdfdraw/graphics/color"
)

// Read reads a pattern dictionary or pattern stream.
func Read(obj pdfdraw.Object) (Pattern, error) {
	var dict pdfdraw.Dict
	var stm *pdfdraw.Stream
	switch obj := obj.(type) {
	case pdfdraw.Dict:
		dict = obj
	case *pdfdraw.Stream:
		dict = obj.Dict
		stm = obj
	case nil:
		return nil, pdfdraw.Errorf("missing pattern object")
	default:
		return nil, pdfdraw.Errorf("pattern must be dictionary or stream")
	}

	patternType, err := pdfdraw.GetInteger(dict["PatternType"])
	if err != nil {
		return nil, pdfdraw.Errorf("missing or invalid PatternType")
	}
	switch patternType {
	case 1:
		if stm == nil {
			return nil, pdfdraw.Errorf("type 1 pattern must be a stream")
		}
		return readType1(stm)
	case 2:
		return readType2(dict)
	default:
		return nil, pdfdraw.Errorf("unsupported pattern type %d", patternType)
	}
}

func readType1(stm *pdfdraw.Stream) (*Type1, error) {
	dict := stm.Dict

	paintType, err := pdfdraw.GetInteger(dict["PaintType"])
	if err != nil || paintType != 1 && paintType != 2 {
		return nil, pdfdraw.Errorf("missing or invalid PaintType")
	}
	tilingType, err := pdfdraw.GetInteger(dict["TilingType"])
	if err != nil || tilingType < 1 || tilingType > 3 {
		return nil, pdfdraw.Errorf("missing or invalid TilingType")
	}
	bbox, err := pdfdraw.GetRect(dict["BBox"])
	if err != nil || bbox.LLx == bbox.URx || bbox.LLy == bbox.URy {
		return nil, pdfdraw.Errorf("missing or invalid BBox")
	}
	xStep, err := pdfdraw.GetNumber(dict["XStep"])
	if err != nil || xStep == 0 {
		return nil, pdfdraw.Errorf("missing or invalid XStep")
	}
	yStep, err := pdfdraw.GetNumber(dict["YStep"])
	if err != nil || yStep == 0 {
		return nil, pdfdraw.Errorf("missing or invalid YStep")
	}

	return &Type1{
		Colored:    paintType == 1,
		TilingType: int(tilingType),
		BBox:       bbox,
		XStep:      xStep,
		YStep:      yStep,
		Matrix:     optionalMatrix(dict["Matrix"]),
		Content:    stm.Data,
	}, nil
}

func readType2(dict pdfdraw.Dict) (*Type2, error) {
	if dict["Shading"] == nil {
		return nil, pdfdraw.Errorf("missing Shading entry in type 2 pattern")
	}
	sh, err := ReadShading(dict["Shading"])
	if err != nil {
		return nil, err
	}
	return &Type2{
		Shading: sh,
		Matrix:  optionalMatrix(dict["Matrix"]),
	}, nil
}

// ReadShading reads a shading dictionary or shading stream.
func ReadShading(obj pdfdraw.Object) (*Shading, error) {
	var dict pdfdraw.Dict
	switch obj := obj.(type) {
	case pdfdraw.Dict:
		dict = obj
	case *pdfdraw.Stream:
		dict = obj.Dict
	default:
		return nil, pdfdraw.Errorf("shading must be dictionary or stream")
	}

	shadingType, err := pdfdraw.GetInteger(dict["ShadingType"])
	if err != nil || shadingType < 1 || shadingType > 7 {
		return nil, pdfdraw.Errorf("missing or invalid ShadingType")
	}
	cs, err := color.ReadSpace(dict["ColorSpace"])
	if err != nil {
		return nil, err
	}
	res := &Shading{
		ShadingType: int(shadingType),
		ColorSpace:  cs,
	}

	if bg, err := pdfdraw.GetFloatArray(dict["Background"]); err == nil && len(bg) == cs.Channels() {
		res.Background = bg
	}

	if fn := dict["Function"]; fn != nil {
		res.Function, err = readFunctions(fn)
		if err != nil {
			return nil, err
		}
	}

	switch shadingType {
	case 1:
		res.Domain = []float64{0, 1, 0, 1}
		if d, err := pdfdraw.GetFloatArray(dict["Domain"]); err == nil && len(d) == 4 {
			res.Domain = d
		}
	case 2, 3:
		res.Domain = []float64{0, 1}
		if d, err := pdfdraw.GetFloatArray(dict["Domain"]); err == nil && len(d) == 2 {
			res.Domain = d
		}
	default:
		// For mesh shadings, the function parameter t is decoded using
		// the last pair of the Decode array.
		res.Domain = []float64{0, 1}
		if d, err := pdfdraw.GetFloatArray(dict["Decode"]); err == nil && len(d) >= 6 {
			res.Domain = d[4:6]
		}
	}

	if res.Function == nil && shadingType <= 3 {
		return nil, pdfdraw.Errorf("shading type %d requires a function", shadingType)
	}
	return res, nil
}

// readFunctions reads a function, or an array of 1-output functions
// which are combined into a single function.
func readFunctions(obj pdfdraw.Object) (function.Func, error) {
	a, isArray := obj.(pdfdraw.Array)
	if !isArray {
		return function.Read(obj)
	}
	res := make(funcArray, len(a))
	for i, x := range a {
		f, err := function.Read(x)
		if err != nil {
			return nil, err
		}
		if _, n := f.Shape(); n != 1 {
			return nil, pdfdraw.Errorf("shading function %d has %d outputs", i, n)
		}
		res[i] = f
	}
	if len(res) == 0 {
		return nil, pdfdraw.Errorf("empty function array")
	}
	return res, nil
}

// funcArray combines several 1-output functions.
type funcArray []function.Func

func (fa funcArray) FunctionType() int { return fa[0].FunctionType() }

func (fa funcArray) Shape() (int, int) {
	m, _ := fa[0].Shape()
	return m, len(fa)
}

func (fa funcArray) Apply(inputs ...float64) []float64 {
	res := make([]float64, len(fa))
	for i, f := range fa {
		res[i] = f.Apply(inputs...)[0]
	}
	return res
}

func optionalMatrix(obj pdfdraw.Object) matrix.Matrix {
	if obj == nil {
		return matrix.Identity
	}
	m, err := pdfdraw.GetMatrix(obj)
	if err != nil {
		return matrix.Identity
	}
	return m
}
