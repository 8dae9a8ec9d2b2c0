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

	"golang.org/x/text/language"

	"seehuhn.de/go/pdfdraw"
)

// MarkedContent describes an open marked-content sequence.
type MarkedContent struct {
	Tag pdfdraw.Name

	// Properties is the property list given to BDC, or nil for BMC.
	Properties pdfdraw.Dict

	// Lang is the language given by the /Lang entry of the property
	// list, or [language.Und].
	Lang language.Tag
}

// beginMarked opens a marked-content sequence.  The operand props can be
// an inline dictionary or the name of a property list resource.
func (r *Renderer) beginMarked(tag pdfdraw.Name, props pdfdraw.Object) {
	mc := MarkedContent{Tag: tag, Lang: language.Und}
	if props != nil {
		mc.Properties = r.propertyList(props)
		mc.Lang = readLang(mc.Properties)
	}
	r.marked = append(r.marked, mc)
}

func (r *Renderer) endMarked() {
	n := len(r.marked)
	if n == 0 {
		pdfdraw.Logger().Debug("EMC without matching BMC/BDC")
		return
	}
	r.marked = r.marked[:n-1]
}

func (r *Renderer) propertyList(obj pdfdraw.Object) pdfdraw.Dict {
	switch obj := obj.(type) {
	case pdfdraw.Dict:
		return obj
	case pdfdraw.Name:
		var x pdfdraw.Object
		if r.Resources != nil {
			x = r.Resources.Properties[obj]
		}
		dict, err := pdfdraw.GetDict(x)
		if err != nil || dict == nil {
			pdfdraw.Logger().Debug("property list not found",
				slog.String("name", string(obj)))
			return nil
		}
		return dict
	default:
		return nil
	}
}

func readLang(props pdfdraw.Dict) language.Tag {
	s, ok := props["Lang"].(pdfdraw.String)
	if !ok || len(s) == 0 {
		return language.Und
	}
	tag, err := language.Parse(string(s))
	if err != nil {
		pdfdraw.Logger().Debug("invalid language tag",
			slog.String("lang", string(s)),
			slog.Any("err", err))
		return language.Und
	}
	return tag
}

// MarkedContent returns the open marked-content sequences, outermost
// first.
func (r *Renderer) MarkedContent() []MarkedContent {
	return append([]MarkedContent(nil), r.marked...)
}

// Lang returns the language of the innermost marked-content sequence
// which specifies one, or [language.Und].
func (r *Renderer) Lang() language.Tag {
	for i := len(r.marked) - 1; i >= 0; i-- {
		if r.marked[i].Lang != language.Und {
			return r.marked[i].Lang
		}
	}
	return language.Und
}
