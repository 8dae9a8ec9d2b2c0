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
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/pdfdraw"
)

func TestReadStream(t *testing.T) {
	type testCase struct {
		name string
		in   string
		want Stream
	}
	cases := []testCase{
		{
			name: "graphics state",
			in:   "q 1 0 0 1 100 200 cm Q",
			want: Stream{
				{Name: "q"},
				{Name: "cm", Args: []pdfdraw.Object{
					pdfdraw.Integer(1), pdfdraw.Integer(0), pdfdraw.Integer(0),
					pdfdraw.Integer(1), pdfdraw.Integer(100), pdfdraw.Integer(200),
				}},
				{Name: "Q"},
			},
		},
		{
			name: "numbers",
			in:   "-.5 +3 4. 0.25 w",
			want: Stream{
				{Name: "w", Args: []pdfdraw.Object{
					pdfdraw.Real(-0.5), pdfdraw.Integer(3), pdfdraw.Real(4), pdfdraw.Real(0.25),
				}},
			},
		},
		{
			name: "comments",
			in:   "% a comment\n10 w % another\nS",
			want: Stream{
				{Name: "w", Args: []pdfdraw.Object{pdfdraw.Integer(10)}},
				{Name: "S"},
			},
		},
		{
			name: "arrays and dicts",
			in:   "[3 1] 0 d /OC <</MCID 5 /Lang (de)>> BDC",
			want: Stream{
				{Name: "d", Args: []pdfdraw.Object{
					pdfdraw.Array{pdfdraw.Integer(3), pdfdraw.Integer(1)}, pdfdraw.Integer(0),
				}},
				{Name: "BDC", Args: []pdfdraw.Object{
					pdfdraw.Name("OC"),
					pdfdraw.Dict{"MCID": pdfdraw.Integer(5), "Lang": pdfdraw.String("de")},
				}},
			},
		},
		{
			name: "strings",
			in:   `(a\(b\)c\101\n) Tj <48 65 6c6C 6> Tj`,
			want: Stream{
				{Name: "Tj", Args: []pdfdraw.Object{pdfdraw.String("a(b)cA\n")}},
				{Name: "Tj", Args: []pdfdraw.Object{pdfdraw.String("Hell`")}},
			},
		},
		{
			name: "names",
			in:   "/A#20B cs /DeviceRGB CS",
			want: Stream{
				{Name: "cs", Args: []pdfdraw.Object{pdfdraw.Name("A B")}},
				{Name: "CS", Args: []pdfdraw.Object{pdfdraw.Name("DeviceRGB")}},
			},
		},
		{
			name: "booleans",
			in:   "true false null BX",
			want: Stream{
				{Name: "BX", Args: []pdfdraw.Object{pdfdraw.Bool(true), pdfdraw.Bool(false), nil}},
			},
		},
		{
			name: "inline image",
			in:   "BI /W 2 /H 1 /BPC 8 /CS /G ID\nab\nEI Q",
			want: Stream{
				{Name: OpInlineImage, Args: []pdfdraw.Object{
					pdfdraw.Dict{
						"W": pdfdraw.Integer(2), "H": pdfdraw.Integer(1),
						"BPC": pdfdraw.Integer(8), "CS": pdfdraw.Name("G"),
					},
					pdfdraw.String("ab"),
				}},
				{Name: "Q"},
			},
		},
		{
			name: "inline image with length",
			in:   "BI /W 1 /H 1 /L 3 ID\nxEI EI",
			want: Stream{
				{Name: OpInlineImage, Args: []pdfdraw.Object{
					pdfdraw.Dict{"W": pdfdraw.Integer(1), "H": pdfdraw.Integer(1), "L": pdfdraw.Integer(3)},
					pdfdraw.String("xEI"),
				}},
			},
		},
		{
			name: "space before EI",
			in:   "BI /W 1 /H 1 /CS /G /BPC 8 ID x EI 10 0 d0",
			want: Stream{
				{Name: OpInlineImage, Args: []pdfdraw.Object{
					pdfdraw.Dict{
						"W": pdfdraw.Integer(1), "H": pdfdraw.Integer(1),
						"BPC": pdfdraw.Integer(8), "CS": pdfdraw.Name("G"),
					},
					pdfdraw.String("x"),
				}},
				{Name: "d0", Args: []pdfdraw.Object{pdfdraw.Integer(10), pdfdraw.Integer(0)}},
			},
		},
		{
			name: "image data containing EI",
			in:   "BI /W 4 /H 1 /CS /G /BPC 8 ID a EI EI Q",
			want: Stream{
				{Name: OpInlineImage, Args: []pdfdraw.Object{
					pdfdraw.Dict{
						"W": pdfdraw.Integer(4), "H": pdfdraw.Integer(1),
						"BPC": pdfdraw.Integer(8), "CS": pdfdraw.Name("G"),
					},
					pdfdraw.String("a EI"),
				}},
				{Name: "Q"},
			},
		},
		{
			name: "filtered inline image",
			in:   "BI /W 4 /H 4 /F /AHx ID 00ff> EI Q",
			want: Stream{
				{Name: OpInlineImage, Args: []pdfdraw.Object{
					pdfdraw.Dict{
						"W": pdfdraw.Integer(4), "H": pdfdraw.Integer(4),
						"F": pdfdraw.Name("AHx"),
					},
					pdfdraw.String("00ff>"),
				}},
				{Name: "Q"},
			},
		},
		{
			name: "inline image without EI",
			in:   "BI /W 1 /H 1 ID 0 0 m",
			want: Stream{
				{Name: "m", Args: []pdfdraw.Object{pdfdraw.Integer(0), pdfdraw.Integer(0)}},
			},
		},
		{
			name: "unbalanced brackets",
			in:   "] >> 1 w",
			want: Stream{
				{Name: "w", Args: []pdfdraw.Object{pdfdraw.Integer(1)}},
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			// a one-byte reader exercises the buffer refill logic
			r := iotest.OneByteReader(strings.NewReader(c.in))
			got, err := ReadStream(r)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(c.want, got); d != "" {
				t.Errorf("unexpected result (-want +got):\n%s", d)
			}
		})
	}
}

func TestReadStreamError(t *testing.T) {
	errTest := errors.New("test error")
	r := iotest.ErrReader(errTest)
	_, err := ReadStream(r)
	if !errors.Is(err, errTest) {
		t.Errorf("got %v, want %v", err, errTest)
	}
}

func TestTooManyArgs(t *testing.T) {
	in := strings.Repeat("1 ", maxOperatorArgs+1) + "sc 0 g"
	got, err := ReadStream(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := Stream{{Name: "g", Args: []pdfdraw.Object{pdfdraw.Integer(0)}}}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected result (-want +got):\n%s", d)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	in := "q\n[3 1] 0.5 d\n/P0 scn\n(a\\)b) Tj\n10 20 m\n30 40 l\nS\nQ\n"
	s1, err := ReadStream(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := s1.Write(buf); err != nil {
		t.Fatal(err)
	}
	s2, err := ReadStream(buf)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(s1, s2); d != "" {
		t.Errorf("round trip failed (-want +got):\n%s", d)
	}
}

func TestValidate(t *testing.T) {
	good := Stream{{Name: "q"}, {Name: "BX"}, {Name: "foo"}, {Name: "EX"}, {Name: "Q"}}
	if err := good.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	bad := Stream{{Name: "q"}, {Name: "foo"}}
	if err := bad.Validate(); !errors.Is(err, ErrUnknown) {
		t.Errorf("got %v, want ErrUnknown", err)
	}
}

func TestCategory(t *testing.T) {
	cases := map[OpName]Category{
		OpFill:        CatPathPainting,
		OpSetFillRGB:  CatColor,
		OpTransform:   CatSpecialState,
		OpInlineImage: CatInlineImage,
		"xyz":         CatUnknown,
	}
	for op, want := range cases {
		if got := op.Category(); got != want {
			t.Errorf("%s: got %s, want %s", op, got, want)
		}
	}
}
