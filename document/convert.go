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

package document

import (
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"seehuhn.de/go/pdfdraw"
)

// maxDepth limits the nesting of objects, to protect against reference
// cycles.
const maxDepth = 64

// Convert translates a pdfcpu object into the pdfdraw object model.
// Indirect references are resolved and stream data is decoded.
func (d *Document) Convert(obj types.Object) (pdfdraw.Object, error) {
	return d.convert(obj, 0)
}

func (d *Document) convert(obj types.Object, depth int) (pdfdraw.Object, error) {
	if depth > maxDepth {
		return nil, pdfdraw.Errorf("objects nested too deeply")
	}

	switch x := obj.(type) {
	case nil:
		return nil, nil
	case types.Boolean:
		return pdfdraw.Bool(x), nil
	case types.Integer:
		return pdfdraw.Integer(x), nil
	case types.Float:
		return pdfdraw.Real(x), nil
	case types.Name:
		return pdfdraw.Name(x), nil
	case types.StringLiteral:
		s, err := types.Unescape(string(x))
		if err != nil {
			return nil, pdfdraw.Wrap(fmt.Errorf("string literal: %w", err))
		}
		return pdfdraw.String(s), nil
	case types.HexLiteral:
		h := string(x)
		if len(h)%2 == 1 {
			h += "0"
		}
		s, err := hex.DecodeString(h)
		if err != nil {
			return nil, pdfdraw.Wrap(fmt.Errorf("hex string: %w", err))
		}
		return pdfdraw.String(s), nil
	case types.Array:
		res := make(pdfdraw.Array, len(x))
		for i, elem := range x {
			val, err := d.convert(elem, depth+1)
			if err != nil {
				return nil, err
			}
			res[i] = val
		}
		return res, nil
	case types.Dict:
		return d.convertDict(x, depth)
	case types.StreamDict:
		dict, err := d.convertDict(x.Dict, depth)
		if err != nil {
			return nil, err
		}
		if len(x.Content) == 0 && len(x.Raw) > 0 {
			err := x.Decode()
			if err != nil {
				return nil, pdfdraw.Wrap(fmt.Errorf("stream data: %w", err))
			}
		}
		return &pdfdraw.Stream{Dict: dict, Data: x.Content}, nil
	case types.IndirectRef:
		num := int(x.ObjectNumber)
		if val, ok := d.cache[num]; ok {
			return val, nil
		}
		target, err := d.ctx.Dereference(x)
		if err != nil {
			return nil, err
		}
		val, err := d.convert(target, depth+1)
		if err != nil {
			return nil, err
		}
		d.cache[num] = val
		return val, nil
	default:
		pdfdraw.Logger().Debug("unsupported object skipped",
			slog.String("type", fmt.Sprintf("%T", obj)))
		return nil, nil
	}
}

func (d *Document) convertDict(x types.Dict, depth int) (pdfdraw.Dict, error) {
	res := make(pdfdraw.Dict, len(x))
	for key, elem := range x {
		if key == "Parent" {
			// avoid pulling in the page tree
			continue
		}
		val, err := d.convert(elem, depth+1)
		if err != nil {
			return nil, err
		}
		if val != nil {
			res[pdfdraw.Name(key)] = val
		}
	}
	return res, nil
}

