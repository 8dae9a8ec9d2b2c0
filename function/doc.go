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

// Package function implements PDF functions, which map m input values to n
// output values.
//
// In this module functions are used as tint transforms of Separation and
// DeviceN colour spaces.  All PDF function types are supported:
//
//   - [Type0]: sampled functions, using a table of sample values
//   - [Type2]: exponential interpolation, y = C0 + x^N × (C1 - C0)
//   - [Type3]: stitching functions, combining several 1-input functions
//   - [Type4]: PostScript calculator functions
//
// Use [Read] to construct a function from its PDF representation.
package function
