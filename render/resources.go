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
	"log/slog"
	"slices"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/pdfdraw"
	"seehuhn.de/go/pdfdraw/graphics/color"
	"seehuhn.de/go/pdfdraw/graphics/extgstate"
	"seehuhn.de/go/pdfdraw/graphics/pattern"
)

// Resources holds the resource dictionary of a page, form or pattern.
//
// All references must have been resolved by the caller.  Resources are
// only read while rendering, so one value can be shared by several
// renderers.
type Resources struct {
	ExtGStates  pdfdraw.Dict // graphics state parameter dictionaries
	ColorSpaces pdfdraw.Dict // colour space names or arrays
	Patterns    pdfdraw.Dict // pattern dictionaries or streams
	Shadings    pdfdraw.Dict // shading dictionaries
	XObjects    pdfdraw.Dict // external objects
	Fonts       pdfdraw.Dict // font dictionaries
	Properties  pdfdraw.Dict // property lists for marked content
}

// ReadResources converts a resource dictionary.
// The object obj must be a dictionary, or nil for empty resources.
// Malformed sub-dictionaries are skipped.
func ReadResources(obj pdfdraw.Object) (*Resources, error) {
	res := &Resources{}
	if obj == nil {
		return res, nil
	}
	dict, err := pdfdraw.GetDict(obj)
	if err != nil {
		return nil, err
	}

	sub := func(key pdfdraw.Name) pdfdraw.Dict {
		x, ok := dict[key]
		if !ok || x == nil {
			return nil
		}
		d, err := pdfdraw.GetDict(x)
		if err != nil {
			pdfdraw.Logger().Debug("resource dictionary skipped",
				slog.String("key", string(key)),
				slog.Any("err", err))
			return nil
		}
		return d
	}
	res.ExtGStates = sub("ExtGState")
	res.ColorSpaces = sub("ColorSpace")
	res.Patterns = sub("Pattern")
	res.Shadings = sub("Shading")
	res.XObjects = sub("XObject")
	res.Fonts = sub("Font")
	res.Properties = sub("Properties")
	return res, nil
}

// ColorSpace returns the named colour space from the ColorSpace
// sub-dictionary.  This implements the [color.Lookup] interface.
func (r *Resources) ColorSpace(name pdfdraw.Name) (color.Space, bool) {
	if r == nil {
		return nil, false
	}
	desc, ok := r.ColorSpaces[name]
	if !ok {
		return nil, false
	}
	cs, err := color.ReadSpace(desc)
	if err != nil {
		pdfdraw.Logger().Debug("malformed colour space",
			slog.String("name", string(name)),
			slog.Any("err", err))
		return nil, false
	}
	if named, isNamed := cs.(color.SpaceNamed); isNamed {
		// a name which refers to another resource is not allowed
		pdfdraw.Logger().Debug("colour space refers to resource",
			slog.String("name", string(name)),
			slog.String("target", string(named)))
		return nil, false
	}
	return cs, true
}

// HasPattern reports whether the Pattern sub-dictionary contains name.
// This implements the [color.Lookup] interface.
func (r *Resources) HasPattern(name pdfdraw.Name) bool {
	if r == nil {
		return false
	}
	_, ok := r.Patterns[name]
	return ok
}

// Pattern decodes the named pattern.
func (r *Resources) Pattern(name pdfdraw.Name) (pattern.Pattern, error) {
	if !r.HasPattern(name) {
		return nil, pdfdraw.Errorf("pattern %q not found", string(name))
	}
	return pattern.Read(r.Patterns[name])
}

// ExtGState decodes the named graphics state parameter dictionary.
func (r *Resources) ExtGState(name pdfdraw.Name) (*extgstate.ExtGState, error) {
	var obj pdfdraw.Object
	if r != nil {
		obj = r.ExtGStates[name]
	}
	if obj == nil {
		return nil, pdfdraw.Errorf("ExtGState %q not found", string(name))
	}
	return extgstate.Decode(obj)
}

// ColorSpaceNames returns the names of all colour space resources, in
// sorted order.
func (r *Resources) ColorSpaceNames() []pdfdraw.Name {
	if r == nil || len(r.ColorSpaces) == 0 {
		return nil
	}
	names := maps.Keys(r.ColorSpaces)
	slices.Sort(names)
	return names
}
