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

package graphics

import "errors"

// ErrStackEmpty is returned when the graphics state is restored without
// a matching save.
var ErrStackEmpty = errors.New("graphics state stack is empty")

type frame struct {
	state *State
	text  *TextState
}

// Stack holds saved copies of the graphics and text state.
// The zero value is an empty stack, ready to use.
type Stack struct {
	frames []frame
}

// Push saves copies of s and t.
func (st *Stack) Push(s *State, t *TextState) {
	st.frames = append(st.frames, frame{state: s.Clone(), text: t.Clone()})
}

// Pop returns the most recently saved state.
// If the stack is empty, [ErrStackEmpty] is returned.
func (st *Stack) Pop() (*State, *TextState, error) {
	n := len(st.frames)
	if n == 0 {
		return nil, nil, ErrStackEmpty
	}
	f := st.frames[n-1]
	st.frames[n-1] = frame{}
	st.frames = st.frames[:n-1]
	return f.state, f.text, nil
}

// Len returns the number of saved states.
func (st *Stack) Len() int {
	return len(st.frames)
}
