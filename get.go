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

package pdfdraw

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// GetNumber makes sure obj is an Integer or a Real and returns its value.
func GetNumber(obj Object) (float64, error) {
	switch x := obj.(type) {
	case Integer:
		return float64(x), nil
	case Real:
		return float64(x), nil
	default:
		return 0, Errorf("expected number but got %s", typeName(obj))
	}
}

// GetInteger makes sure obj is an Integer and returns it.
// Reals with an integral value are accepted as well.
func GetInteger(obj Object) (Integer, error) {
	switch x := obj.(type) {
	case Integer:
		return x, nil
	case Real:
		if r := math.Round(float64(x)); r == float64(x) && math.Abs(r) < 1<<53 {
			return Integer(r), nil
		}
		return 0, Errorf("expected integer but got %g", float64(x))
	default:
		return 0, Errorf("expected integer but got %s", typeName(obj))
	}
}

// GetName makes sure obj is a Name and returns it.
func GetName(obj Object) (Name, error) {
	x, ok := obj.(Name)
	if !ok {
		return "", Errorf("expected name but got %s", typeName(obj))
	}
	return x, nil
}

// GetBool makes sure obj is a Bool and returns it.
func GetBool(obj Object) (Bool, error) {
	x, ok := obj.(Bool)
	if !ok {
		return false, Errorf("expected boolean but got %s", typeName(obj))
	}
	return x, nil
}

// GetArray makes sure obj is an Array and returns it.
// If obj is null, nil is returned without an error.
func GetArray(obj Object) (Array, error) {
	switch x := obj.(type) {
	case nil:
		return nil, nil
	case Array:
		return x, nil
	default:
		return nil, Errorf("expected array but got %s", typeName(obj))
	}
}

// GetDict makes sure obj is a Dict and returns it.
// If obj is null, nil is returned without an error.
func GetDict(obj Object) (Dict, error) {
	switch x := obj.(type) {
	case nil:
		return nil, nil
	case Dict:
		return x, nil
	default:
		return nil, Errorf("expected dictionary but got %s", typeName(obj))
	}
}

// GetStream makes sure obj is a Stream and returns it.
// If obj is null, nil is returned without an error.
func GetStream(obj Object) (*Stream, error) {
	switch x := obj.(type) {
	case nil:
		return nil, nil
	case *Stream:
		return x, nil
	default:
		return nil, Errorf("expected stream but got %s", typeName(obj))
	}
}

// GetFloatArray converts an array of numbers to a slice of float64 values.
// If obj is null, nil is returned without an error.
func GetFloatArray(obj Object) ([]float64, error) {
	a, err := GetArray(obj)
	if err != nil || a == nil {
		return nil, err
	}
	res := make([]float64, len(a))
	for i, elem := range a {
		x, err := GetNumber(elem)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		res[i] = x
	}
	return res, nil
}

// GetBytes returns the data held by a String or a Stream.
// This is used for data like colour lookup tables, which can be given
// in either form.
func GetBytes(obj Object) ([]byte, error) {
	switch x := obj.(type) {
	case String:
		return []byte(x), nil
	case *Stream:
		return x.Data, nil
	default:
		return nil, Errorf("expected string or stream but got %s", typeName(obj))
	}
}

// GetMatrix reads a transformation matrix, given as an array of six
// numbers.
func GetMatrix(obj Object) (matrix.Matrix, error) {
	x, err := GetFloatArray(obj)
	if err != nil {
		return matrix.Matrix{}, err
	}
	if len(x) != 6 {
		return matrix.Matrix{}, Errorf("expected 6 numbers for a matrix, got %d", len(x))
	}
	var m matrix.Matrix
	copy(m[:], x)
	return m, nil
}

// GetRect reads a rectangle, given as an array of four numbers.
// The corners are normalised so that LLx <= URx and LLy <= URy.
func GetRect(obj Object) (rect.Rect, error) {
	x, err := GetFloatArray(obj)
	if err != nil {
		return rect.Rect{}, err
	}
	if len(x) != 4 {
		return rect.Rect{}, Errorf("expected 4 numbers for a rectangle, got %d", len(x))
	}
	return rect.Rect{
		LLx: min(x[0], x[2]),
		LLy: min(x[1], x[3]),
		URx: max(x[0], x[2]),
		URy: max(x[1], x[3]),
	}, nil
}

func typeName(obj Object) string {
	switch obj.(type) {
	case nil:
		return "null"
	case Bool:
		return "boolean"
	case Integer:
		return "integer"
	case Real:
		return "real"
	case String:
		return "string"
	case Name:
		return "name"
	case Array:
		return "array"
	case Dict:
		return "dictionary"
	case *Stream:
		return "stream"
	default:
		return fmt.Sprintf("%T", obj)
	}
}
