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

// Package content reads PDF content streams.
//
// A content stream is a sequence of operators, each preceded by its
// operands.  [ReadStream] splits a content stream into a [Stream], a
// slice of [Operator] values.  Inline images are returned as a single
// pseudo-operator [OpInlineImage].
//
// The operands use the object types of package pdfdraw.  Parse errors are
// handled permissively: malformed input is skipped and reading continues.
package content
