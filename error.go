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
	"errors"
	"fmt"
	"strconv"
)

// MalformedFileError indicates that a PDF file, or a part of it, could not
// be interpreted.
type MalformedFileError struct {
	Pos int64
	Err error
}

func (err *MalformedFileError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if err.Pos > 0 {
		tail = " (at byte " + strconv.FormatInt(err.Pos, 10) + ")"
	}
	return "malformed PDF data" + middle + tail
}

func (err *MalformedFileError) Unwrap() error {
	return err.Err
}

// Errorf returns a new [MalformedFileError] with a formatted message.
// The %w verb can be used to wrap another error.
func Errorf(format string, args ...any) error {
	return &MalformedFileError{Err: fmt.Errorf(format, args...)}
}

// Wrap marks err as a [MalformedFileError].  If err already is malformed,
// it is returned unchanged.  Wrap(nil) returns nil.
func Wrap(err error) error {
	if err == nil || IsMalformed(err) {
		return err
	}
	return &MalformedFileError{Err: err}
}

// IsMalformed returns true if err indicates malformed input.
func IsMalformed(err error) bool {
	var target *MalformedFileError
	return errors.As(err, &target)
}
