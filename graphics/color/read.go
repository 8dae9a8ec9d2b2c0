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
	"fmt"

	"seehuhn.de/go/icc"

	"seehuhn.de/go/pdfdraw"
	"seehuhn.de/go/pdfdraw/function"
)

// maxNesting limits the depth of nested colour space definitions.
const maxNesting = 8

// ReadSpace constructs a colour space from its PDF representation.  The
// argument desc is typically a value in the ColorSpace sub-dictionary of a
// resource dictionary, or the operand of a CS or cs operator.
//
// Names which are not colour space families give a [SpaceNamed], which is
// looked up in the resources when a colour is resolved.  Colour spaces
// which cannot be used for rendering, like Lab, give a [SpaceOther].
func ReadSpace(desc pdfdraw.Object) (Space, error) {
	return readSpace(desc, 0)
}

func readSpace(desc pdfdraw.Object, depth int) (Space, error) {
	if depth > maxNesting {
		return nil, pdfdraw.Errorf("colour spaces nested too deeply")
	}

	switch desc := desc.(type) {
	case pdfdraw.Name:
		return spaceFromName(desc), nil
	case pdfdraw.Array:
		if len(desc) == 0 {
			return nil, pdfdraw.Errorf("empty colour space array")
		}
		family, err := pdfdraw.GetName(desc[0])
		if err != nil {
			return nil, err
		}
		return spaceFromArray(family, desc[1:], depth)
	default:
		return nil, pdfdraw.Errorf("invalid colour space %s", pdfdraw.Format(desc))
	}
}

func spaceFromName(name pdfdraw.Name) Space {
	switch name {
	case FamilyDeviceGray, "G":
		return SpaceDeviceGray
	case FamilyDeviceRGB, "RGB":
		return SpaceDeviceRGB
	case FamilyDeviceCMYK, "CMYK":
		return SpaceDeviceCMYK
	case FamilyPattern:
		return SpacePatternColored
	default:
		return SpaceNamed(name)
	}
}

func spaceFromArray(family pdfdraw.Name, args pdfdraw.Array, depth int) (Space, error) {
	need := func(n int) error {
		if len(args) < n {
			return pdfdraw.Errorf("%s colour space: expected %d parameters, got %d", family, n, len(args))
		}
		return nil
	}

	switch family {
	case FamilyDeviceGray, FamilyDeviceRGB, FamilyDeviceCMYK, "G", "RGB", "CMYK":
		return spaceFromName(family), nil

	case FamilyCalGray:
		if err := need(1); err != nil {
			return nil, err
		}
		d, err := pdfdraw.GetDict(args[0])
		if err != nil {
			return nil, err
		}
		res := &SpaceCalGray{Gamma: 1}
		res.WhitePoint, err = pdfdraw.GetFloatArray(d["WhitePoint"])
		if err != nil {
			return nil, fmt.Errorf("CalGray /WhitePoint: %w", err)
		}
		res.BlackPoint, err = pdfdraw.GetFloatArray(d["BlackPoint"])
		if err != nil {
			return nil, fmt.Errorf("CalGray /BlackPoint: %w", err)
		}
		if g, ok := d["Gamma"]; ok {
			res.Gamma, err = pdfdraw.GetNumber(g)
			if err != nil {
				return nil, fmt.Errorf("CalGray /Gamma: %w", err)
			}
		}
		return res, nil

	case FamilyCalRGB:
		if err := need(1); err != nil {
			return nil, err
		}
		d, err := pdfdraw.GetDict(args[0])
		if err != nil {
			return nil, err
		}
		res := &SpaceCalRGB{}
		for key, ptr := range map[pdfdraw.Name]*[]float64{
			"WhitePoint": &res.WhitePoint,
			"BlackPoint": &res.BlackPoint,
			"Gamma":      &res.Gamma,
			"Matrix":     &res.Matrix,
		} {
			*ptr, err = pdfdraw.GetFloatArray(d[key])
			if err != nil {
				return nil, fmt.Errorf("CalRGB /%s: %w", key, err)
			}
		}
		return res, nil

	case FamilyCalCMYK:
		var d pdfdraw.Dict
		if len(args) > 0 {
			var err error
			d, err = pdfdraw.GetDict(args[0])
			if err != nil {
				return nil, err
			}
		}
		return &SpaceCalCMYK{Dict: d}, nil

	case FamilyICCBased:
		if err := need(1); err != nil {
			return nil, err
		}
		stm, err := pdfdraw.GetStream(args[0])
		if err != nil {
			return nil, err
		} else if stm == nil {
			return nil, pdfdraw.Errorf("ICCBased colour space without profile")
		}
		return readICC(stm, depth)

	case FamilyIndexed:
		if err := need(3); err != nil {
			return nil, err
		}
		base, err := readSpace(args[0], depth+1)
		if err != nil {
			return nil, fmt.Errorf("Indexed base: %w", err)
		}
		hival, err := pdfdraw.GetInteger(args[1])
		if err != nil {
			return nil, fmt.Errorf("Indexed hival: %w", err)
		}
		if hival < 0 || hival > 255 {
			return nil, pdfdraw.Errorf("Indexed hival %d out of range", hival)
		}
		lookup, err := pdfdraw.GetBytes(args[2])
		if err != nil {
			return nil, fmt.Errorf("Indexed lookup: %w", err)
		}
		return &SpaceIndexed{Base: base, HiVal: int(hival), Lookup: lookup}, nil

	case FamilySeparation:
		if err := need(3); err != nil {
			return nil, err
		}
		colorant, err := pdfdraw.GetName(args[0])
		if err != nil {
			return nil, fmt.Errorf("Separation colorant: %w", err)
		}
		alt, err := readSpace(args[1], depth+1)
		if err != nil {
			return nil, fmt.Errorf("Separation alternate: %w", err)
		}
		tint, err := function.Read(args[2])
		if err != nil {
			return nil, fmt.Errorf("Separation tint transform: %w", err)
		}
		return &SpaceSeparation{Colorant: colorant, Alternate: alt, Tint: tint}, nil

	case FamilyDeviceN:
		if err := need(3); err != nil {
			return nil, err
		}
		namesArr, err := pdfdraw.GetArray(args[0])
		if err != nil {
			return nil, fmt.Errorf("DeviceN colorants: %w", err)
		}
		names := make([]pdfdraw.Name, len(namesArr))
		for i, n := range namesArr {
			names[i], err = pdfdraw.GetName(n)
			if err != nil {
				return nil, fmt.Errorf("DeviceN colorants: %w", err)
			}
		}
		alt, err := readSpace(args[1], depth+1)
		if err != nil {
			return nil, fmt.Errorf("DeviceN alternate: %w", err)
		}
		tint, err := function.Read(args[2])
		if err != nil {
			return nil, fmt.Errorf("DeviceN tint transform: %w", err)
		}
		var attr pdfdraw.Dict
		if len(args) > 3 {
			attr, err = pdfdraw.GetDict(args[3])
			if err != nil {
				return nil, fmt.Errorf("DeviceN attributes: %w", err)
			}
		}
		return &SpaceDeviceN{Colorants: names, Alternate: alt, Tint: tint, Attributes: attr}, nil

	case FamilyPattern:
		if len(args) == 0 {
			return SpacePatternColored, nil
		}
		base, err := readSpace(args[0], depth+1)
		if err != nil {
			return nil, fmt.Errorf("Pattern base: %w", err)
		}
		return &SpacePattern{Base: base}, nil

	default:
		return &SpaceOther{Name: family, Desc: append(pdfdraw.Array{family}, args...)}, nil
	}
}

// readICC reads the parameters of an ICCBased colour space.  If the stream
// dictionary has no /N entry, the number of components is taken from the
// profile.
func readICC(stm *pdfdraw.Stream, depth int) (*SpaceICCBased, error) {
	res := &SpaceICCBased{Profile: stm.Data}

	if nObj, ok := stm.Dict["N"]; ok {
		n, err := pdfdraw.GetInteger(nObj)
		if err != nil {
			return nil, fmt.Errorf("ICCBased /N: %w", err)
		}
		res.N = int(n)
	} else {
		p, err := icc.Decode(stm.Data)
		if err != nil {
			return nil, pdfdraw.Errorf("ICCBased profile: %w", err)
		}
		res.N = p.ColorSpace.NumComponents()
	}
	switch res.N {
	case 1, 3, 4:
		// pass
	default:
		return nil, pdfdraw.Errorf("ICCBased: invalid number of components %d", res.N)
	}

	if altObj, ok := stm.Dict["Alternate"]; ok && altObj != nil {
		alt, err := readSpace(altObj, depth+1)
		if err != nil {
			return nil, fmt.Errorf("ICCBased alternate: %w", err)
		}
		res.Alternate = alt
	}

	rng, err := pdfdraw.GetFloatArray(stm.Dict["Range"])
	if err != nil {
		return nil, fmt.Errorf("ICCBased /Range: %w", err)
	}
	if rng == nil {
		rng = make([]float64, 2*res.N)
		for i := range res.N {
			rng[2*i+1] = 1
		}
	}
	res.Range = rng
	return res, nil
}
