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

package content

import (
	"errors"
	"io"
	"math"
	"slices"
	"strconv"

	"seehuhn.de/go/pdfdraw"
)

// ReadStream reads a PDF content stream and returns the sequence of
// operators.  Malformed content is skipped.  Read errors other than
// io.EOF are returned together with the operators read so far.
func ReadStream(r io.Reader) (Stream, error) {
	s := &scanner{
		src: r,
		buf: make([]byte, 512),
	}

	var res Stream
	for {
		op, err := s.scan()
		switch err {
		case nil:
			res = append(res, op)
		case io.EOF:
			return res, nil
		case errParse:
			// skip malformed content
		default:
			return res, err
		}
	}
}

// keyword is a bare word in a content stream, usually an operator name.
type keyword string

func (k keyword) PDF(w io.Writer) error {
	_, err := io.WriteString(w, string(k))
	return err
}

type frame struct {
	data   []pdfdraw.Object
	isDict bool
}

type scanner struct {
	src    io.Reader
	srcErr error
	buf    []byte
	pos    int
	used   int

	args  []pdfdraw.Object
	stack []*frame
}

// scan reads the next operator from the content stream.
func (s *scanner) scan() (Operator, error) {
	s.args = s.args[:0]

	for {
		obj, err := s.nextToken()
		if err != nil {
			return Operator{}, err
		}

		switch obj {
		case keyword("<<"):
			s.stack = append(s.stack, &frame{isDict: true})
			continue
		case keyword("["):
			s.stack = append(s.stack, &frame{})
			continue
		case keyword(">>"):
			n := len(s.stack)
			if n == 0 || !s.stack[n-1].isDict || len(s.stack[n-1].data)%2 != 0 {
				continue
			}
			data := s.stack[n-1].data
			s.stack = s.stack[:n-1]
			dict := pdfdraw.Dict{}
			for i := 0; i < len(data); i += 2 {
				key, ok := data[i].(pdfdraw.Name)
				if !ok || data[i+1] == nil {
					continue
				}
				dict[key] = data[i+1]
			}
			obj = dict
		case keyword("]"):
			n := len(s.stack)
			if n == 0 || s.stack[n-1].isDict {
				continue
			}
			obj = pdfdraw.Array(s.stack[n-1].data)
			s.stack = s.stack[:n-1]
		}

		if n := len(s.stack); n > 0 {
			s.stack[n-1].data = append(s.stack[n-1].data, obj)
			continue
		}

		kw, isKeyword := obj.(keyword)
		if !isKeyword {
			if len(s.args) < maxOperatorArgs {
				s.args = append(s.args, obj)
			}
			continue
		}
		if len(s.args) >= maxOperatorArgs {
			s.args = s.args[:0]
			continue
		}
		name := OpName(kw)
		if name == opBeginInlineImage {
			return s.readInlineImage()
		}
		op := Operator{Name: name}
		if len(s.args) > 0 {
			op.Args = slices.Clone(s.args)
		}
		return op, nil
	}
}

// readInlineImage reads the remainder of a BI ... ID ... EI sequence.
func (s *scanner) readInlineImage() (Operator, error) {
	dict := pdfdraw.Dict{}
	for {
		s.skipWhiteSpace()
		if s.peekString("ID") {
			s.skipN(2)
			break
		}
		b := s.peekN(1)
		if len(b) == 0 {
			return Operator{}, io.EOF
		}
		if b[0] != '/' {
			return Operator{}, errParse
		}
		s.skipN(1)
		key := s.readName()
		val, err := s.nextToken()
		if err != nil {
			return Operator{}, err
		}
		if val != nil {
			dict[key] = val
		}
	}

	width := inlineInt(dict, "W", "Width")
	height := inlineInt(dict, "H", "Height")
	if width <= 0 || height <= 0 || width > maxInlineImageDim || height > maxInlineImageDim ||
		width*height > maxInlineImagePixels {
		return Operator{}, errParse
	}

	// a single white-space character follows ID
	if b, err := s.peek(); err == nil && b <= 32 {
		s.skipN(1)
	}

	var n int
	var ok bool
	if length := inlineInt(dict, "L", "Length"); length > 0 {
		n, ok = s.checkEI(length)
	} else {
		n, ok = s.findEI(inlineDataLen(dict, width, height))
	}
	if !ok {
		// The data is left unconsumed, so that tokenising resumes after ID.
		pdfdraw.Logger().Debug("inline image without EI skipped")
		return Operator{}, errParse
	}
	data := slices.Clone(s.peekN(n))
	s.skipN(n)
	s.skipWhiteSpace()
	s.skipN(2)

	return Operator{
		Name: OpInlineImage,
		Args: []pdfdraw.Object{dict, pdfdraw.String(data)},
	}, nil
}

// inlineInt reads an integer from an inline image dictionary, where the
// abbreviated key takes precedence.  The function returns -1 if neither
// key is present.
func inlineInt(dict pdfdraw.Dict, abbrev, full pdfdraw.Name) int {
	val, ok := dict[abbrev]
	if !ok {
		val = dict[full]
	}
	x, err := pdfdraw.GetInteger(val)
	if err != nil || val == nil {
		return -1
	}
	return int(x)
}

// inlineDataLen returns the number of data bytes of an unfiltered inline
// image, or -1 if this cannot be determined from the dictionary.
func inlineDataLen(dict pdfdraw.Dict, width, height int) int {
	if _, ok := dict["F"]; ok {
		return -1
	}
	if _, ok := dict["Filter"]; ok {
		return -1
	}

	bpc := inlineInt(dict, "BPC", "BitsPerComponent")
	comps := 1
	mask, ok := dict["IM"]
	if !ok {
		mask = dict["ImageMask"]
	}
	if isMask, _ := pdfdraw.GetBool(mask); isMask {
		bpc = 1
	} else {
		cs, ok := dict["CS"]
		if !ok {
			cs = dict["ColorSpace"]
		}
		name, _ := pdfdraw.GetName(cs)
		switch name {
		case "G", "DeviceGray", "":
			comps = 1
		case "RGB", "DeviceRGB":
			comps = 3
		case "CMYK", "DeviceCMYK":
			comps = 4
		default:
			// Indexed spaces, given as arrays, have one component.  Named
			// resources could be anything.
			if _, isArray := cs.(pdfdraw.Array); !isArray {
				return -1
			}
		}
	}
	switch bpc {
	case 1, 2, 4, 8, 16:
	default:
		return -1
	}

	return (width*comps*bpc + 7) / 8 * height
}

// findEI locates the end of inline image data which is not delimited by
// a /L entry.  If expected is non-negative, data of this length followed
// by optional white space and EI is tried first.  Otherwise the data ends
// at the first EI which is preceded by white space; this white space is
// not part of the data.  On success, findEI returns the data length.
// The input is not consumed.
func (s *scanner) findEI(expected int) (int, bool) {
	if n, ok := s.checkEI(expected); ok {
		return n, true
	}

	buf := s.peekN(maxInlineImageBytes + 3)

	for i := 0; i+2 <= len(buf) && i <= maxInlineImageBytes+1; i++ {
		if i > 0 && !isSpace(buf[i-1]) {
			continue
		}
		if isEI(buf[i:]) {
			return max(i-1, 0), true
		}
	}
	return 0, false
}

// checkEI reports whether n bytes of data, followed by optional white
// space and EI, come next in the input.  The input is not consumed.
func (s *scanner) checkEI(n int) (int, bool) {
	if n < 0 || n > maxInlineImageBytes {
		return 0, false
	}
	buf := s.peekN(n + 256)
	if len(buf) < n {
		return 0, false
	}
	i := n
	for i < len(buf) && isSpace(buf[i]) {
		i++
	}
	return n, isEI(buf[i:])
}

func isEI(buf []byte) bool {
	if len(buf) < 2 || buf[0] != 'E' || buf[1] != 'I' {
		return false
	}
	return len(buf) == 2 || !isRegular(buf[2])
}

func (s *scanner) peekString(str string) bool {
	return string(s.peekN(len(str))) == str
}

func (s *scanner) nextToken() (pdfdraw.Object, error) {
	s.skipWhiteSpace()
	bb := s.peekN(2)
	if len(bb) == 0 {
		return nil, s.srcErr
	}

	switch {
	case bb[0] == '/':
		s.skipN(1)
		return s.readName(), nil
	case bb[0] == '(':
		s.skipN(1)
		return s.readString()
	case string(bb) == "<<":
		s.skipN(2)
		return keyword("<<"), nil
	case bb[0] == '<':
		s.skipN(1)
		return s.readHexString()
	case string(bb) == ">>":
		s.skipN(2)
		return keyword(">>"), nil
	}

	first, _ := s.readByte()
	word := []byte{first}
	if isRegular(first) {
		for {
			b, err := s.peek()
			if err != nil || !isRegular(b) {
				break
			}
			s.skipN(1)
			word = append(word, b)
		}
	}

	if c := word[0]; c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+' {
		if x := parseNumber(word); x != nil {
			return x, nil
		}
	}
	switch string(word) {
	case "true":
		return pdfdraw.Bool(true), nil
	case "false":
		return pdfdraw.Bool(false), nil
	case "null":
		return nil, nil
	}
	return keyword(word), nil
}

// readString reads a literal string, after the opening parenthesis.
func (s *scanner) readString() (pdfdraw.String, error) {
	var res []byte
	level := 1
	ignoreLF := false
	for {
		b, err := s.readByte()
		if err != nil {
			return nil, err
		}
		if ignoreLF && b == '\n' {
			ignoreLF = false
			continue
		}
		ignoreLF = false

		switch b {
		case '(':
			level++
		case ')':
			level--
			if level == 0 {
				return pdfdraw.String(res), nil
			}
		case '\\':
			b, err = s.readByte()
			if err != nil {
				return nil, err
			}
			switch b {
			case 'n':
				b = '\n'
			case 'r':
				b = '\r'
			case 't':
				b = '\t'
			case 'b':
				b = '\b'
			case 'f':
				b = '\f'
			case '\n':
				continue
			case '\r':
				ignoreLF = true
				continue
			case '0', '1', '2', '3', '4', '5', '6', '7':
				oct := b - '0'
				for range 2 {
					c, err := s.peek()
					if err != nil || c < '0' || c > '7' {
						break
					}
					s.skipN(1)
					oct = oct*8 + (c - '0')
				}
				b = oct
			}
		}
		res = append(res, b)
	}
}

// readHexString reads a hexadecimal string, after the opening '<'.
func (s *scanner) readHexString() (pdfdraw.String, error) {
	var res []byte
	var hi byte
	odd := false
	for {
		b, err := s.readByte()
		if err != nil {
			return nil, err
		}
		if b == '>' {
			break
		}
		if b <= 32 {
			continue
		}
		d := hexDigit(b)
		if d == 255 {
			return nil, errParse
		}
		if odd {
			res = append(res, hi|d)
		} else {
			hi = d << 4
		}
		odd = !odd
	}
	if odd {
		res = append(res, hi)
	}
	return pdfdraw.String(res), nil
}

// readName reads a name, after the leading slash.
func (s *scanner) readName() pdfdraw.Name {
	var name []byte
	for {
		b, err := s.peek()
		if err != nil || !isRegular(b) {
			break
		}
		if b == '#' {
			if d := s.peekN(3); len(d) == 3 {
				hi, lo := hexDigit(d[1]), hexDigit(d[2])
				if hi != 255 && lo != 255 {
					name = append(name, hi<<4|lo)
					s.skipN(3)
					continue
				}
			}
		}
		name = append(name, b)
		s.skipN(1)
	}
	return pdfdraw.Name(name)
}

// skipWhiteSpace skips white space and comments.
func (s *scanner) skipWhiteSpace() {
	for {
		b, err := s.peek()
		if err != nil {
			return
		}
		switch {
		case b <= 32:
			s.skipN(1)
		case b == '%':
			for {
				b, err := s.peek()
				if err != nil || b == '\n' || b == '\r' {
					break
				}
				s.skipN(1)
			}
		default:
			return
		}
	}
}

func (s *scanner) readByte() (byte, error) {
	b, err := s.peek()
	if err != nil {
		return 0, err
	}
	s.pos++
	return b, nil
}

func (s *scanner) peek() (byte, error) {
	for s.pos >= s.used {
		if err := s.refill(); err != nil {
			return 0, err
		}
	}
	return s.buf[s.pos], nil
}

// peekN returns up to n bytes without consuming them.  The returned
// slice is only valid until the next read.
func (s *scanner) peekN(n int) []byte {
	for s.pos+n > s.used {
		if s.refill() != nil {
			break
		}
	}
	return s.buf[s.pos:min(s.pos+n, s.used)]
}

func (s *scanner) skipN(n int) {
	for n > 0 {
		if s.pos >= s.used && s.refill() != nil {
			return
		}
		k := min(n, s.used-s.pos)
		s.pos += k
		n -= k
	}
}

// refill is the only place where the underlying reader is called.
func (s *scanner) refill() error {
	if s.srcErr != nil {
		return s.srcErr
	}
	s.used = copy(s.buf, s.buf[s.pos:s.used])
	s.pos = 0
	if s.used == len(s.buf) {
		s.buf = append(s.buf, make([]byte, len(s.buf))...)
	}

	n, err := s.src.Read(s.buf[s.used:])
	s.used += n
	s.srcErr = err
	if n == 0 {
		if err == nil {
			err = io.ErrNoProgress
			s.srcErr = err
		}
		return err
	}
	return nil
}

func isSpace(b byte) bool {
	switch b {
	case 0, 9, 10, 12, 13, 32:
		return true
	}
	return false
}

func isRegular(b byte) bool {
	if b <= 32 {
		return b != 0 && b != 9 && b != 10 && b != 12 && b != 13 && b != 32
	}
	switch b {
	case '%', '(', ')', '/', '<', '>', '[', ']':
		return false
	}
	return true
}

func hexDigit(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	}
	return 255
}

// parseNumber returns a pdfdraw.Integer or pdfdraw.Real if s is a valid
// number, and nil otherwise.
func parseNumber(s []byte) pdfdraw.Object {
	if x, err := strconv.ParseInt(string(s), 10, 64); err == nil {
		return pdfdraw.Integer(x)
	}
	for i, c := range s {
		if c == '.' || i == 0 && (c == '+' || c == '-') {
			continue
		}
		if c < '0' || c > '9' {
			return nil
		}
	}
	y, err := strconv.ParseFloat(string(s), 64)
	if err != nil || math.IsInf(y, 0) || math.IsNaN(y) {
		return nil
	}
	return pdfdraw.Real(y)
}

var errParse = errors.New("parse error")

// limits for defense against resource exhaustion
const (
	maxInlineImageBytes  = 4096
	maxInlineImagePixels = 256 * 1024
	maxInlineImageDim    = 65536
	maxOperatorArgs      = 64
)
