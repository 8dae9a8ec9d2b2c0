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

package function

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Type4 is a PostScript calculator function.  The function is given by a
// program in a small subset of the PostScript language.
type Type4 struct {
	// Domain gives the valid input ranges as [min0, max0, min1, max1, ...].
	Domain []float64

	// Range gives the output ranges as [min0, max0, min1, max1, ...].
	Range []float64

	// Program is the PostScript code, including the outermost braces.
	Program string

	code psProc
}

// FunctionType returns 4.
func (f *Type4) FunctionType() int {
	return 4
}

// Shape returns the number of input and output values of the function.
func (f *Type4) Shape() (int, int) {
	return len(f.Domain) / 2, len(f.Range) / 2
}

// Apply evaluates the function at the given input values.
// If the program fails, all outputs are set to the lower end of their
// range.
func (f *Type4) Apply(inputs ...float64) []float64 {
	m, n := f.Shape()
	if len(inputs) != m {
		panic(fmt.Sprintf("Type 4 function expects %d inputs, got %d", m, len(inputs)))
	}

	code := f.code
	var err error
	if code == nil {
		code, err = parsePostScript(f.Program)
	}

	stack := make([]psValue, m, m+16)
	for i := range m {
		stack[i] = realValue(clip(inputs[i], f.Domain[2*i], f.Domain[2*i+1]))
	}

	var res []psValue
	if err == nil {
		res, err = code.run(stack)
	}
	y := make([]float64, n)
	if err == nil && len(res) >= n {
		for i, v := range res[len(res)-n:] {
			y[i] = v.num
		}
	} else {
		for i := range y {
			y[i] = f.Range[2*i]
		}
	}
	clipOutputs(y, f.Range)
	return y
}

func (f *Type4) validate() error {
	m, n := f.Shape()
	if m == 0 || !checkRanges(f.Domain) {
		return newInvalidFunctionError(4, "Domain", "invalid domain %v", f.Domain)
	}
	if n == 0 || !checkRanges(f.Range) {
		return newInvalidFunctionError(4, "Range", "invalid range %v", f.Range)
	}
	code, err := parsePostScript(f.Program)
	if err != nil {
		return newInvalidFunctionError(4, "Program", "%v", err)
	}
	f.code = code
	return nil
}

type psKind uint8

const (
	psInt psKind = iota
	psReal
	psBool
)

type psValue struct {
	kind psKind
	num  float64 // integer and real values
	b    bool
}

func intValue(x int64) psValue    { return psValue{kind: psInt, num: float64(x)} }
func realValue(x float64) psValue { return psValue{kind: psReal, num: x} }
func boolValue(x bool) psValue    { return psValue{kind: psBool, b: x} }

// psItem is one element of a calculator program: either a literal, an
// operator, or a conditional with its procedures.
type psItem struct {
	lit   *psValue
	op    string
	then  psProc
	other psProc // for ifelse
	cond  int    // 0: none, 1: if, 2: ifelse
}

type psProc []psItem

const maxPSStack = 100

var (
	errStackUnderflow = errors.New("stack underflow")
	errStackOverflow  = errors.New("stack overflow")
	errTypeCheck      = errors.New("type check")
	errUndefinedRes   = errors.New("undefined result")
)

// parsePostScript parses a calculator program.  The program must be
// enclosed in braces.
func parsePostScript(src string) (psProc, error) {
	tokens := strings.Fields(spaceBraces(stripComments(src)))
	if len(tokens) == 0 || tokens[0] != "{" {
		return nil, errors.New("program must start with '{'")
	}
	proc, rest, err := parseProc(tokens[1:])
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("unexpected %q after end of program", rest[0])
	}
	return proc, nil
}

func stripComments(src string) string {
	var b strings.Builder
	inComment := false
	for _, c := range src {
		switch {
		case c == '%':
			inComment = true
		case c == '\n' || c == '\r':
			inComment = false
			b.WriteRune(' ')
		case !inComment:
			b.WriteRune(c)
		}
	}
	return b.String()
}

func spaceBraces(src string) string {
	src = strings.ReplaceAll(src, "{", " { ")
	return strings.ReplaceAll(src, "}", " } ")
}

// parseProc parses tokens up to and including the closing brace of the
// current procedure.
func parseProc(tokens []string) (psProc, []string, error) {
	var proc psProc
	var pending []psProc
	for len(tokens) > 0 {
		tok := tokens[0]
		tokens = tokens[1:]
		switch tok {
		case "}":
			if len(pending) > 0 {
				return nil, nil, errors.New("procedure not followed by if or ifelse")
			}
			return proc, tokens, nil
		case "{":
			sub, rest, err := parseProc(tokens)
			if err != nil {
				return nil, nil, err
			}
			pending = append(pending, sub)
			tokens = rest
		case "if":
			if len(pending) != 1 {
				return nil, nil, errors.New("if needs one procedure")
			}
			proc = append(proc, psItem{cond: 1, then: pending[0]})
			pending = nil
		case "ifelse":
			if len(pending) != 2 {
				return nil, nil, errors.New("ifelse needs two procedures")
			}
			proc = append(proc, psItem{cond: 2, then: pending[0], other: pending[1]})
			pending = nil
		default:
			if len(pending) > 0 {
				return nil, nil, errors.New("procedure not followed by if or ifelse")
			}
			item, err := parseToken(tok)
			if err != nil {
				return nil, nil, err
			}
			proc = append(proc, item)
		}
	}
	return nil, nil, errors.New("missing '}'")
}

func parseToken(tok string) (psItem, error) {
	switch tok {
	case "true", "false":
		v := boolValue(tok == "true")
		return psItem{lit: &v}, nil
	}
	if _, ok := psOperators[tok]; ok {
		return psItem{op: tok}, nil
	}
	if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
		v := intValue(i)
		return psItem{lit: &v}, nil
	}
	if x, err := strconv.ParseFloat(tok, 64); err == nil {
		v := realValue(x)
		return psItem{lit: &v}, nil
	}
	return psItem{}, fmt.Errorf("unknown operator %q", tok)
}

func (p psProc) run(stack []psValue) ([]psValue, error) {
	for _, item := range p {
		var err error
		switch {
		case item.lit != nil:
			if len(stack) >= maxPSStack {
				return nil, errStackOverflow
			}
			stack = append(stack, *item.lit)
		case item.cond > 0:
			if len(stack) < 1 {
				return nil, errStackUnderflow
			}
			c := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if c.kind != psBool {
				return nil, errTypeCheck
			}
			if c.b {
				stack, err = item.then.run(stack)
			} else if item.cond == 2 {
				stack, err = item.other.run(stack)
			}
		default:
			stack, err = psOperators[item.op](stack)
		}
		if err != nil {
			return nil, err
		}
	}
	return stack, nil
}

type psOp func([]psValue) ([]psValue, error)

var psOperators map[string]psOp

func init() {
	psOperators = map[string]psOp{
		// arithmetic
		"add": arith2(func(a, b float64) float64 { return a + b }, true),
		"sub": arith2(func(a, b float64) float64 { return a - b }, true),
		"mul": arith2(func(a, b float64) float64 { return a * b }, true),
		"div": func(s []psValue) ([]psValue, error) {
			a, b, s, err := pop2num(s)
			if err != nil {
				return nil, err
			}
			if b.num == 0 {
				return nil, errUndefinedRes
			}
			return append(s, realValue(a.num/b.num)), nil
		},
		"idiv": intOp2(func(a, b int64) (int64, error) {
			if b == 0 {
				return 0, errUndefinedRes
			}
			return a / b, nil
		}),
		"mod": intOp2(func(a, b int64) (int64, error) {
			if b == 0 {
				return 0, errUndefinedRes
			}
			return a % b, nil
		}),
		"neg":      arith1(func(x float64) float64 { return -x }, true),
		"abs":      arith1(math.Abs, true),
		"ceiling":  arith1(math.Ceil, true),
		"floor":    arith1(math.Floor, true),
		"round":    arith1(func(x float64) float64 { return math.Floor(x + 0.5) }, true),
		"truncate": arith1(math.Trunc, true),
		"sqrt": realOp1(func(x float64) (float64, error) {
			if x < 0 {
				return 0, errUndefinedRes
			}
			return math.Sqrt(x), nil
		}),
		"sin": realOp1(func(x float64) (float64, error) { return math.Sin(x * math.Pi / 180), nil }),
		"cos": realOp1(func(x float64) (float64, error) { return math.Cos(x * math.Pi / 180), nil }),
		"ln": realOp1(func(x float64) (float64, error) {
			if x <= 0 {
				return 0, errUndefinedRes
			}
			return math.Log(x), nil
		}),
		"log": realOp1(func(x float64) (float64, error) {
			if x <= 0 {
				return 0, errUndefinedRes
			}
			return math.Log10(x), nil
		}),
		"atan": func(s []psValue) ([]psValue, error) {
			a, b, s, err := pop2num(s)
			if err != nil {
				return nil, err
			}
			if a.num == 0 && b.num == 0 {
				return nil, errUndefinedRes
			}
			deg := math.Atan2(a.num, b.num) * 180 / math.Pi
			if deg < 0 {
				deg += 360
			}
			return append(s, realValue(deg)), nil
		},
		"exp": func(s []psValue) ([]psValue, error) {
			a, b, s, err := pop2num(s)
			if err != nil {
				return nil, err
			}
			r := math.Pow(a.num, b.num)
			if !isFinite(r) {
				return nil, errUndefinedRes
			}
			return append(s, realValue(r)), nil
		},
		"cvi": func(s []psValue) ([]psValue, error) {
			a, s, err := pop1num(s)
			if err != nil {
				return nil, err
			}
			return append(s, intValue(int64(math.Trunc(a.num)))), nil
		},
		"cvr": func(s []psValue) ([]psValue, error) {
			a, s, err := pop1num(s)
			if err != nil {
				return nil, err
			}
			return append(s, realValue(a.num)), nil
		},

		// relational, boolean and bitwise
		"eq": func(s []psValue) ([]psValue, error) {
			a, b, s, err := pop2(s)
			if err != nil {
				return nil, err
			}
			return append(s, boolValue(psEqual(a, b))), nil
		},
		"ne": func(s []psValue) ([]psValue, error) {
			a, b, s, err := pop2(s)
			if err != nil {
				return nil, err
			}
			return append(s, boolValue(!psEqual(a, b))), nil
		},
		"gt":  compare(func(a, b float64) bool { return a > b }),
		"ge":  compare(func(a, b float64) bool { return a >= b }),
		"lt":  compare(func(a, b float64) bool { return a < b }),
		"le":  compare(func(a, b float64) bool { return a <= b }),
		"and": logic2(func(a, b bool) bool { return a && b }, func(a, b int64) int64 { return a & b }),
		"or":  logic2(func(a, b bool) bool { return a || b }, func(a, b int64) int64 { return a | b }),
		"xor": logic2(func(a, b bool) bool { return a != b }, func(a, b int64) int64 { return a ^ b }),
		"not": func(s []psValue) ([]psValue, error) {
			if len(s) < 1 {
				return nil, errStackUnderflow
			}
			a := s[len(s)-1]
			switch a.kind {
			case psBool:
				s[len(s)-1] = boolValue(!a.b)
			case psInt:
				s[len(s)-1] = intValue(^int64(a.num))
			default:
				return nil, errTypeCheck
			}
			return s, nil
		},
		"bitshift": intOp2(func(a, b int64) (int64, error) {
			if b >= 0 {
				return a << uint(b), nil
			}
			return a >> uint(-b), nil
		}),

		// stack
		"pop": func(s []psValue) ([]psValue, error) {
			if len(s) < 1 {
				return nil, errStackUnderflow
			}
			return s[:len(s)-1], nil
		},
		"exch": func(s []psValue) ([]psValue, error) {
			if len(s) < 2 {
				return nil, errStackUnderflow
			}
			n := len(s)
			s[n-1], s[n-2] = s[n-2], s[n-1]
			return s, nil
		},
		"dup": func(s []psValue) ([]psValue, error) {
			if len(s) < 1 {
				return nil, errStackUnderflow
			}
			return pushChecked(s, s[len(s)-1])
		},
		"copy": func(s []psValue) ([]psValue, error) {
			k, s, err := popIndex(s)
			if err != nil {
				return nil, err
			}
			if k > len(s) {
				return nil, errStackUnderflow
			}
			if len(s)+k > maxPSStack {
				return nil, errStackOverflow
			}
			return append(s, s[len(s)-k:]...), nil
		},
		"index": func(s []psValue) ([]psValue, error) {
			k, s, err := popIndex(s)
			if err != nil {
				return nil, err
			}
			if k >= len(s) {
				return nil, errStackUnderflow
			}
			return pushChecked(s, s[len(s)-1-k])
		},
		"roll": func(s []psValue) ([]psValue, error) {
			j, s, err := popInt(s)
			if err != nil {
				return nil, err
			}
			n, s, err := popIndex(s)
			if err != nil {
				return nil, err
			}
			if n > len(s) {
				return nil, errStackUnderflow
			}
			if n == 0 {
				return s, nil
			}
			top := s[len(s)-n:]
			shift := int(((j % int64(n)) + int64(n)) % int64(n))
			rolled := make([]psValue, n)
			for i := range top {
				rolled[(i+shift)%n] = top[i]
			}
			copy(top, rolled)
			return s, nil
		},
	}
}

func pushChecked(s []psValue, v psValue) ([]psValue, error) {
	if len(s) >= maxPSStack {
		return nil, errStackOverflow
	}
	return append(s, v), nil
}

func pop2(s []psValue) (psValue, psValue, []psValue, error) {
	if len(s) < 2 {
		return psValue{}, psValue{}, nil, errStackUnderflow
	}
	n := len(s)
	return s[n-2], s[n-1], s[:n-2], nil
}

func pop1num(s []psValue) (psValue, []psValue, error) {
	if len(s) < 1 {
		return psValue{}, nil, errStackUnderflow
	}
	a := s[len(s)-1]
	if a.kind == psBool {
		return psValue{}, nil, errTypeCheck
	}
	return a, s[:len(s)-1], nil
}

func pop2num(s []psValue) (psValue, psValue, []psValue, error) {
	a, b, s, err := pop2(s)
	if err != nil {
		return a, b, nil, err
	}
	if a.kind == psBool || b.kind == psBool {
		return a, b, nil, errTypeCheck
	}
	return a, b, s, nil
}

func popInt(s []psValue) (int64, []psValue, error) {
	a, s, err := pop1num(s)
	if err != nil {
		return 0, nil, err
	}
	if a.kind != psInt {
		return 0, nil, errTypeCheck
	}
	return int64(a.num), s, nil
}

func popIndex(s []psValue) (int, []psValue, error) {
	k, s, err := popInt(s)
	if err != nil {
		return 0, nil, err
	}
	if k < 0 {
		return 0, nil, errUndefinedRes
	}
	return int(k), s, nil
}

// arith2 builds a binary arithmetic operator.  If keepInt is set, the
// result is an integer when both operands are integers and the result is
// representable.
func arith2(fn func(a, b float64) float64, keepInt bool) psOp {
	return func(s []psValue) ([]psValue, error) {
		a, b, s, err := pop2num(s)
		if err != nil {
			return nil, err
		}
		r := fn(a.num, b.num)
		if keepInt && a.kind == psInt && b.kind == psInt && math.Abs(r) < 1<<31 {
			return append(s, intValue(int64(r))), nil
		}
		return append(s, realValue(r)), nil
	}
}

func arith1(fn func(float64) float64, keepInt bool) psOp {
	return func(s []psValue) ([]psValue, error) {
		a, s, err := pop1num(s)
		if err != nil {
			return nil, err
		}
		r := fn(a.num)
		if keepInt && a.kind == psInt {
			return append(s, intValue(int64(r))), nil
		}
		return append(s, realValue(r)), nil
	}
}

func realOp1(fn func(float64) (float64, error)) psOp {
	return func(s []psValue) ([]psValue, error) {
		a, s, err := pop1num(s)
		if err != nil {
			return nil, err
		}
		r, err := fn(a.num)
		if err != nil {
			return nil, err
		}
		return append(s, realValue(r)), nil
	}
}

func intOp2(fn func(a, b int64) (int64, error)) psOp {
	return func(s []psValue) ([]psValue, error) {
		b, s, err := popInt(s)
		if err != nil {
			return nil, err
		}
		a, s, err := popInt(s)
		if err != nil {
			return nil, err
		}
		r, err := fn(a, b)
		if err != nil {
			return nil, err
		}
		return append(s, intValue(r)), nil
	}
}

func compare(fn func(a, b float64) bool) psOp {
	return func(s []psValue) ([]psValue, error) {
		a, b, s, err := pop2num(s)
		if err != nil {
			return nil, err
		}
		return append(s, boolValue(fn(a.num, b.num))), nil
	}
}

func logic2(boolFn func(a, b bool) bool, intFn func(a, b int64) int64) psOp {
	return func(s []psValue) ([]psValue, error) {
		a, b, s, err := pop2(s)
		if err != nil {
			return nil, err
		}
		switch {
		case a.kind == psBool && b.kind == psBool:
			return append(s, boolValue(boolFn(a.b, b.b))), nil
		case a.kind == psInt && b.kind == psInt:
			return append(s, intValue(intFn(int64(a.num), int64(b.num)))), nil
		default:
			return nil, errTypeCheck
		}
	}
}

func psEqual(a, b psValue) bool {
	if a.kind == psBool || b.kind == psBool {
		return a.kind == b.kind && a.b == b.b
	}
	return a.num == b.num
}
