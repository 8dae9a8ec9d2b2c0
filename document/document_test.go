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
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfdraw"
	"seehuhn.de/go/pdfdraw/graphics"
)

// writeTestFile writes a small, two-page PDF file and returns its path.
func writeTestFile(t *testing.T) string {
	t.Helper()

	stream := func(data string) string {
		return fmt.Sprintf("<</Length %d>>\nstream\n%s\nendstream", len(data), data)
	}
	objects := []string{
		"<</Type/Catalog/Pages 2 0 R>>",
		"<</Type/Pages/Kids[3 0 R 5 0 R]/Count 2/MediaBox[0 0 200 100]" +
			"/Resources<</ExtGState<</G1<</CA 0.5>>>>>>>>",
		"<</Type/Page/Parent 2 0 R/Contents 4 0 R>>",
		stream("1 0 0 rg 10 10 50 50 re f"),
		"<</Type/Page/Parent 2 0 R/Rotate 90/MediaBox[0 0 300 400]/Contents[6 0 R 7 0 R]>>",
		stream("0 g"),
		stream("0 0 10 10 re f"),
	}

	buf := &bytes.Buffer{}
	buf.WriteString("%PDF-1.7\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(buf, "trailer\n<</Size %d/Root 1 0 R>>\nstartxref\n%d\n%%%%EOF\n",
		len(objects)+1, xref)

	fname := filepath.Join(t.TempDir(), "test.pdf")
	err := os.WriteFile(fname, buf.Bytes(), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestOpen(t *testing.T) {
	doc, err := Open(writeTestFile(t), "")
	if err != nil {
		t.Fatal(err)
	}
	defer doc.Close()

	if n := doc.NumPages(); n != 2 {
		t.Fatalf("NumPages() = %d, want 2", n)
	}

	p1, err := doc.Page(1)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(p1.Contents); got != "1 0 0 rg 10 10 50 50 re f" {
		t.Errorf("page 1 contents = %q", got)
	}
	if d := cmp.Diff(rect.Rect{URx: 200, URy: 100}, p1.MediaBox); d != "" {
		t.Errorf("inherited MediaBox (-want +got):\n%s", d)
	}
	if p1.Rotate != 0 {
		t.Errorf("page 1 Rotate = %d", p1.Rotate)
	}
	gs, err := p1.Resources.ExtGState("G1")
	if err != nil {
		t.Fatalf("inherited resources: %v", err)
	}
	if gs.Set&graphics.StateStrokeAlpha == 0 || gs.StrokeAlpha != 0.5 {
		t.Errorf("ExtGState /CA not read: %+v", gs)
	}

	p2, err := doc.Page(2)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(p2.Contents); got != "0 g\n0 0 10 10 re f" {
		t.Errorf("page 2 contents = %q", got)
	}
	if d := cmp.Diff(rect.Rect{URx: 300, URy: 400}, p2.MediaBox); d != "" {
		t.Errorf("MediaBox (-want +got):\n%s", d)
	}
	if p2.Rotate != 90 {
		t.Errorf("page 2 Rotate = %d, want 90", p2.Rotate)
	}

	for _, n := range []int{0, 3} {
		_, err := doc.Page(n)
		if !errors.Is(err, ErrNoPage) {
			t.Errorf("Page(%d): got %v, want ErrNoPage", n, err)
		}
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.pdf"), "")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want os.ErrNotExist", err)
	}
}

func TestConvert(t *testing.T) {
	d := &Document{cache: map[int]pdfdraw.Object{}}

	in := types.Dict{
		"B": types.Boolean(true),
		"I": types.Integer(7),
		"R": types.Float(0.5),
		"N": types.Name("Foo"),
		"S": types.StringLiteral(`a\(b`),
		"H": types.HexLiteral("414"),
		"A": types.Array{types.Integer(1), nil, types.Name("x")},
		"Z": nil,
	}
	want := pdfdraw.Dict{
		"B": pdfdraw.Bool(true),
		"I": pdfdraw.Integer(7),
		"R": pdfdraw.Real(0.5),
		"N": pdfdraw.Name("Foo"),
		"S": pdfdraw.String("a(b"),
		"H": pdfdraw.String("A@"),
		"A": pdfdraw.Array{pdfdraw.Integer(1), nil, pdfdraw.Name("x")},
	}

	got, err := d.Convert(in)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("Convert (-want +got):\n%s", d)
	}
}

func TestTransform(t *testing.T) {
	box := rect.Rect{LLx: 10, LLy: 20, URx: 110, URy: 70} // 100 x 50

	apply := func(m matrix.Matrix, x, y float64) [2]float64 {
		return [2]float64{m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]}
	}

	cases := []struct {
		rotate        int
		width, height float64
		topLeft       [2]float64 // device position of the top-left corner
	}{
		{0, 200, 100, [2]float64{0, 0}},
		{90, 100, 200, [2]float64{100, 0}},
		{180, 200, 100, [2]float64{200, 100}},
		{270, 100, 200, [2]float64{0, 200}},
	}
	for _, c := range cases {
		p := &Page{MediaBox: box, Rotate: c.rotate}
		m, w, h := p.Transform(2)
		if w != c.width || h != c.height {
			t.Errorf("rotate %d: size %gx%g, want %gx%g", c.rotate, w, h, c.width, c.height)
		}
		if d := cmp.Diff(c.topLeft, apply(m, box.LLx, box.URy)); d != "" {
			t.Errorf("rotate %d: top-left corner (-want +got):\n%s", c.rotate, d)
		}
	}
}

func TestPixelSize(t *testing.T) {
	w, h := PixelSize(612, 791.2)
	if w != 612 || h != 792 {
		t.Errorf("PixelSize = %d, %d", w, h)
	}
}
