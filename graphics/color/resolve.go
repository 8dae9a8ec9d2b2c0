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

package color

import (
	"errors"
	"fmt"
	"log/slog"

	"seehuhn.de/go/pdfdraw"
)

// ErrUnsupported is wrapped by the errors returned for colour spaces and
// colour space combinations which cannot be resolved.  Such errors are
// also malformed-input errors, see [pdfdraw.IsMalformed].
var ErrUnsupported = errors.New("unsupported colour space")

// Value is the operand tuple of a colour-setting operator.
type Value interface {
	isValue()
}

// ValueGray is the operand of the G and g operators.
type ValueGray float64

// ValueRGB holds the operands of the RG and rg operators.
type ValueRGB [3]float64

// ValueCMYK holds the operands of the K and k operators.
type ValueCMYK [4]float64

// ValueComponents holds the operands of the SC, SCN, sc and scn operators.
// These are numbers, optionally followed by a pattern name.
type ValueComponents []pdfdraw.Object

func (ValueGray) isValue()       {}
func (ValueRGB) isValue()        {}
func (ValueCMYK) isValue()       {}
func (ValueComponents) isValue() {}

// Lookup gives access to the colour related entries of a resource
// dictionary.
type Lookup interface {
	// ColorSpace returns the colour space with the given name from the
	// ColorSpace sub-dictionary.
	ColorSpace(name pdfdraw.Name) (Space, bool)

	// HasPattern reports whether the Pattern sub-dictionary has an entry
	// with the given name.
	HasPattern(name pdfdraw.Name) bool
}

// IndexedScaling selects how the bytes of an Indexed colour table are
// converted to colour components.
type IndexedScaling int

const (
	// IndexedRaw copies byte values verbatim into the colour channels,
	// so that a table entry of 255 gives a channel value of 255.
	IndexedRaw IndexedScaling = iota

	// IndexedNormalized divides byte values by 255.
	IndexedNormalized
)

func (s IndexedScaling) String() string {
	switch s {
	case IndexedRaw:
		return "raw"
	case IndexedNormalized:
		return "normalized"
	default:
		return fmt.Sprintf("IndexedScaling(%d)", int(s))
	}
}

// Resolver converts colour operands into colours.
// A Resolver only reads from Resources, so it can be shared between
// renderers.
type Resolver struct {
	Resources Lookup

	// Indexed selects the conversion of Indexed colour table entries.
	Indexed IndexedScaling

	// Lenient makes Resolve return [Black] instead of an error when a
	// colour cannot be resolved.  The failure is logged at level Warn.
	Lenient bool
}

// Resolve converts the operands v of a colour-setting operator into a
// colour, interpreting them in the colour space *active.
//
// On success, *active is set to the colour space which was used to
// interpret the operands: DeviceGray, DeviceRGB and DeviceCMYK for the
// respective operators, the looked-up space for named colour spaces, and
// the alternate or inferred device space for ICC-based spaces.
func (r *Resolver) Resolve(active *Space, v Value) (Color, error) {
	col, used, err := r.resolve(*active, v)
	if err != nil {
		if r.Lenient {
			family := pdfdraw.Name("none")
			if *active != nil {
				family = (*active).Family()
			}
			pdfdraw.Logger().Warn("colour replaced by black",
				slog.String("space", string(family)),
				slog.Any("err", err))
			return Black, nil
		}
		return nil, err
	}
	*active = used
	return col, nil
}

func (r *Resolver) resolve(cs Space, v Value) (Color, Space, error) {
	switch v := v.(type) {
	case ValueGray:
		return Gray(float64(v)), SpaceDeviceGray, nil
	case ValueRGB:
		return Solid{v[0], v[1], v[2]}, SpaceDeviceRGB, nil
	case ValueCMYK:
		return CMYKToRGB(v[0], v[1], v[2], v[3]), SpaceDeviceCMYK, nil
	case ValueComponents:
		// handled below
	default:
		return nil, nil, pdfdraw.Errorf("unexpected colour value %T", v)
	}
	args := v.(ValueComponents)

	if cs == nil {
		return nil, nil, pdfdraw.Errorf("no colour space set")
	}

	switch s := cs.(type) {
	case *SpaceICCBased:
		if s.Alternate != nil {
			cs = s.Alternate
			break
		}
		switch len(args) {
		case 3:
			cs = SpaceDeviceRGB
		case 4:
			cs = SpaceDeviceCMYK
		default:
			return nil, nil, pdfdraw.Errorf("ICC profile without alternate colour space, %d arguments: %w",
				len(args), ErrUnsupported)
		}
	case SpaceNamed:
		if r.Resources == nil {
			return nil, nil, pdfdraw.Errorf("named colour space %q not found: %w", string(s), ErrUnsupported)
		}
		found, ok := r.Resources.ColorSpace(pdfdraw.Name(s))
		if !ok {
			return nil, nil, pdfdraw.Errorf("named colour space %q not found: %w", string(s), ErrUnsupported)
		}
		cs = found
	}

	col, err := r.interpret(cs, args)
	if err != nil {
		return nil, nil, err
	}
	return col, cs, nil
}

// interpret converts args to a colour in the concrete colour space cs.
func (r *Resolver) interpret(cs Space, args ValueComponents) (Color, error) {
	switch s := cs.(type) {
	case *SpaceICCBased:
		return nil, pdfdraw.Errorf("nested ICC colour space: %w", ErrUnsupported)

	case spaceDeviceGray, *SpaceCalGray,
		spaceDeviceRGB, *SpaceCalRGB,
		spaceDeviceCMYK, *SpaceCalCMYK:
		x, err := numbers(args, cs.Channels())
		if err != nil {
			return nil, err
		}
		return deviceColor(cs, x)

	case *SpaceDeviceN:
		if s.Tint == nil {
			return nil, pdfdraw.Errorf("DeviceN colour space without tint transform")
		}
		m, _ := s.Tint.Shape()
		x, err := numbers(args, m)
		if err != nil {
			return nil, err
		}
		alt := s.Alternate
		if icc, ok := alt.(*SpaceICCBased); ok {
			alt = icc.Alternate
		}
		return applyTint(alt, s.Tint.Apply(x...), FamilyDeviceN)

	case *SpaceSeparation:
		if s.Tint == nil {
			return nil, pdfdraw.Errorf("Separation colour space without tint transform")
		}
		x, err := numbers(args, 1)
		if err != nil {
			return nil, err
		}
		alt := s.Alternate
		if icc, ok := alt.(*SpaceICCBased); ok {
			if icc.Alternate == nil {
				return nil, pdfdraw.Errorf("Separation: ICC alternate without alternate: %w", ErrUnsupported)
			}
			alt = icc.Alternate
			if _, nested := alt.(*SpaceICCBased); nested {
				return nil, pdfdraw.Errorf("Separation: nested ICC colour space: %w", ErrUnsupported)
			}
		}
		if m, _ := s.Tint.Shape(); m != 1 {
			return nil, pdfdraw.Errorf("Separation tint transform has %d inputs", m)
		}
		return applyTint(alt, s.Tint.Apply(x...), FamilySeparation)

	case *SpaceIndexed:
		return r.indexed(s, args)

	case *SpacePattern:
		if len(args) == 0 {
			return nil, pdfdraw.Errorf("missing pattern name")
		}
		name, err := pdfdraw.GetName(args[len(args)-1])
		if err != nil {
			return nil, err
		}
		if r.Resources == nil || !r.Resources.HasPattern(name) {
			return nil, pdfdraw.Errorf("pattern %q not found: %w", string(name), ErrUnsupported)
		}
		return PatternRef{Name: name}, nil

	case SpaceNamed:
		return nil, pdfdraw.Errorf("nested named colour space %q: %w", string(s), ErrUnsupported)

	default:
		return nil, pdfdraw.Errorf("colour space %s: %w", cs.Family(), ErrUnsupported)
	}
}

func (r *Resolver) indexed(s *SpaceIndexed, args ValueComponents) (Color, error) {
	if len(args) != 1 {
		return nil, pdfdraw.Errorf("expected 1 colour argument, got %d", len(args))
	}
	idx, err := pdfdraw.GetInteger(args[0])
	if err != nil {
		return nil, err
	}

	base := s.Base
	if icc, ok := base.(*SpaceICCBased); ok {
		switch {
		case icc.Alternate != nil:
			base = icc.Alternate
		case icc.N == 3:
			base = SpaceDeviceRGB
		case icc.N == 4:
			base = SpaceDeviceCMYK
		}
	}
	var n int
	switch base.(type) {
	case spaceDeviceRGB, *SpaceCalRGB:
		n = 3
	case spaceDeviceCMYK, *SpaceCalCMYK:
		n = 4
	default:
		family := pdfdraw.Name("none")
		if base != nil {
			family = base.Family()
		}
		return nil, pdfdraw.Errorf("Indexed colour space with base %s: %w", family, ErrUnsupported)
	}

	i := int(idx)
	if i < 0 || i > s.HiVal || n*(i+1) > len(s.Lookup) {
		return nil, pdfdraw.Errorf("colour index %d out of range", i)
	}
	x := make([]float64, n)
	for k, b := range s.Lookup[n*i : n*(i+1)] {
		x[k] = float64(b)
		if r.Indexed == IndexedNormalized {
			x[k] /= 255
		}
	}
	return deviceColor(base, x)
}

// applyTint interprets the output of a tint transform in the alternate
// colour space.
func applyTint(alt Space, y []float64, family pdfdraw.Name) (Color, error) {
	switch alt.(type) {
	case spaceDeviceGray, *SpaceCalGray,
		spaceDeviceRGB, *SpaceCalRGB,
		spaceDeviceCMYK, *SpaceCalCMYK:
		if len(y) < alt.Channels() {
			return nil, pdfdraw.Errorf("%s tint transform gives %d values, need %d",
				family, len(y), alt.Channels())
		}
		return deviceColor(alt, y)
	case nil:
		return nil, pdfdraw.Errorf("%s without usable alternate: %w", family, ErrUnsupported)
	default:
		return nil, pdfdraw.Errorf("%s with alternate %s: %w", family, alt.Family(), ErrUnsupported)
	}
}

// deviceColor converts components in a gray, RGB or CMYK space.
func deviceColor(cs Space, x []float64) (Color, error) {
	switch cs.Channels() {
	case 1:
		return Gray(x[0]), nil
	case 3:
		return Solid{x[0], x[1], x[2]}, nil
	case 4:
		return CMYKToRGB(x[0], x[1], x[2], x[3]), nil
	default:
		return nil, pdfdraw.Errorf("colour space %s: %w", cs.Family(), ErrUnsupported)
	}
}

// numbers checks that args consists of exactly n numbers and returns them.
func numbers(args ValueComponents, n int) ([]float64, error) {
	if len(args) != n {
		return nil, pdfdraw.Errorf("expected %d colour arguments, got %d", n, len(args))
	}
	res := make([]float64, n)
	for i, a := range args {
		x, err := pdfdraw.GetNumber(a)
		if err != nil {
			return nil, err
		}
		res[i] = x
	}
	return res, nil
}
