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
	"seehuhn.de/go/pdfdraw"
	"seehuhn.de/go/pdfdraw/function"
)

// Space represents a PDF colour space.
type Space interface {
	// Family returns the family of the colour space.
	Family() pdfdraw.Name

	// Channels returns the number of colour components.
	// This returns 0 for coloured patterns and for colour spaces which
	// are not known yet, like [SpaceNamed].
	Channels() int
}

// Colour space families.
const (
	FamilyDeviceGray pdfdraw.Name = "DeviceGray"
	FamilyDeviceRGB  pdfdraw.Name = "DeviceRGB"
	FamilyDeviceCMYK pdfdraw.Name = "DeviceCMYK"
	FamilyCalGray    pdfdraw.Name = "CalGray"
	FamilyCalRGB     pdfdraw.Name = "CalRGB"
	FamilyCalCMYK    pdfdraw.Name = "CalCMYK"
	FamilyLab        pdfdraw.Name = "Lab"
	FamilyICCBased   pdfdraw.Name = "ICCBased"
	FamilyPattern    pdfdraw.Name = "Pattern"
	FamilyIndexed    pdfdraw.Name = "Indexed"
	FamilySeparation pdfdraw.Name = "Separation"
	FamilyDeviceN    pdfdraw.Name = "DeviceN"
)

// Singletons for the colour spaces which have no parameters.
var (
	SpaceDeviceGray     Space = spaceDeviceGray{}
	SpaceDeviceRGB      Space = spaceDeviceRGB{}
	SpaceDeviceCMYK     Space = spaceDeviceCMYK{}
	SpacePatternColored Space = &SpacePattern{}
)

type spaceDeviceGray struct{}

func (spaceDeviceGray) Family() pdfdraw.Name { return FamilyDeviceGray }
func (spaceDeviceGray) Channels() int        { return 1 }

type spaceDeviceRGB struct{}

func (spaceDeviceRGB) Family() pdfdraw.Name { return FamilyDeviceRGB }
func (spaceDeviceRGB) Channels() int        { return 3 }

type spaceDeviceCMYK struct{}

func (spaceDeviceCMYK) Family() pdfdraw.Name { return FamilyDeviceCMYK }
func (spaceDeviceCMYK) Channels() int        { return 4 }

// SpaceCalGray is a CIE-based gray colour space.
type SpaceCalGray struct {
	WhitePoint []float64
	BlackPoint []float64
	Gamma      float64
}

// Family implements the [Space] interface.
func (s *SpaceCalGray) Family() pdfdraw.Name { return FamilyCalGray }

// Channels implements the [Space] interface.
func (s *SpaceCalGray) Channels() int { return 1 }

// SpaceCalRGB is a CIE-based RGB colour space.
type SpaceCalRGB struct {
	WhitePoint []float64
	BlackPoint []float64
	Gamma      []float64
	Matrix     []float64
}

// Family implements the [Space] interface.
func (s *SpaceCalRGB) Family() pdfdraw.Name { return FamilyCalRGB }

// Channels implements the [Space] interface.
func (s *SpaceCalRGB) Channels() int { return 3 }

// SpaceCalCMYK is the obsolete CalCMYK colour space from PDF 1.1.
type SpaceCalCMYK struct {
	Dict pdfdraw.Dict
}

// Family implements the [Space] interface.
func (s *SpaceCalCMYK) Family() pdfdraw.Name { return FamilyCalCMYK }

// Channels implements the [Space] interface.
func (s *SpaceCalCMYK) Channels() int { return 4 }

// SpaceICCBased is a colour space given by an ICC profile.
type SpaceICCBased struct {
	// N is the number of colour components.
	N int

	// Alternate is the colour space to use instead of the profile.
	// This is nil if the PDF file does not specify an alternate.
	Alternate Space

	Range   []float64
	Profile []byte
}

// Family implements the [Space] interface.
func (s *SpaceICCBased) Family() pdfdraw.Name { return FamilyICCBased }

// Channels implements the [Space] interface.
func (s *SpaceICCBased) Channels() int { return s.N }

// SpaceIndexed is a colour space where colours are given by an index into
// a colour table.
type SpaceIndexed struct {
	Base  Space
	HiVal int

	// Lookup holds (HiVal+1) × Base.Channels() bytes.
	Lookup []byte
}

// Family implements the [Space] interface.
func (s *SpaceIndexed) Family() pdfdraw.Name { return FamilyIndexed }

// Channels implements the [Space] interface.
func (s *SpaceIndexed) Channels() int { return 1 }

// SpaceSeparation is a single-colorant colour space.  Colours are
// approximated by applying the tint transform and interpreting the result
// in the alternate colour space.
type SpaceSeparation struct {
	Colorant  pdfdraw.Name
	Alternate Space
	Tint      function.Func
}

// Family implements the [Space] interface.
func (s *SpaceSeparation) Family() pdfdraw.Name { return FamilySeparation }

// Channels implements the [Space] interface.
func (s *SpaceSeparation) Channels() int { return 1 }

// SpaceDeviceN is a colour space with several colorants.
type SpaceDeviceN struct {
	Colorants  []pdfdraw.Name
	Alternate  Space
	Tint       function.Func
	Attributes pdfdraw.Dict
}

// Family implements the [Space] interface.
func (s *SpaceDeviceN) Family() pdfdraw.Name { return FamilyDeviceN }

// Channels implements the [Space] interface.
func (s *SpaceDeviceN) Channels() int { return len(s.Colorants) }

// SpacePattern is the Pattern colour space.  Base is nil for coloured
// patterns, and gives the underlying colour space for uncoloured patterns.
type SpacePattern struct {
	Base Space
}

// Family implements the [Space] interface.
func (s *SpacePattern) Family() pdfdraw.Name { return FamilyPattern }

// Channels implements the [Space] interface.
func (s *SpacePattern) Channels() int {
	if s.Base == nil {
		return 0
	}
	return s.Base.Channels()
}

// SpaceNamed refers to an entry in the ColorSpace sub-dictionary of the
// resource dictionary.  The name is looked up when a colour is resolved.
type SpaceNamed pdfdraw.Name

// Family implements the [Space] interface.
// For a named colour space, this is the name itself.
func (s SpaceNamed) Family() pdfdraw.Name { return pdfdraw.Name(s) }

// Channels implements the [Space] interface.
func (s SpaceNamed) Channels() int { return 0 }

// SpaceOther is a colour space which is not supported, for example Lab.
type SpaceOther struct {
	Name pdfdraw.Name
	Desc pdfdraw.Object
}

// Family implements the [Space] interface.
func (s *SpaceOther) Family() pdfdraw.Name { return s.Name }

// Channels implements the [Space] interface.
func (s *SpaceOther) Channels() int { return 0 }
