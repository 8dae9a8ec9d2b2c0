package main

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/pdfdraw/document"
	"seehuhn.de/go/pdfdraw/render"
)

func writePDF(t *testing.T, dir string) string {
	t.Helper()

	content := "1 0 0 rg 10 10 50 50 re f"
	objects := []string{
		"<</Type/Catalog/Pages 2 0 R>>",
		"<</Type/Pages/Kids[3 0 R]/Count 1>>",
		"<</Type/Page/Parent 2 0 R/MediaBox[0 0 100 100]/Contents 4 0 R>>",
		fmt.Sprintf("<</Length %d>>\nstream\n%s\nendstream", len(content), content),
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

	fname := filepath.Join(dir, "in.pdf")
	if err := os.WriteFile(fname, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	j := &job{
		input:  writePDF(t, dir),
		output: filepath.Join(dir, "out.png"),
		page:   1,
		dpi:    72,
		opt:    &render.Options{Lenient: true},
	}
	if err := j.run(); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(j.output)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 100 {
		t.Errorf("got image size %dx%d, want 100x100", b.Dx(), b.Dy())
	}
}

func TestRunRemovesOutput(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"out.png", "out.svg"} {
		j := &job{
			input:  writePDF(t, dir),
			output: filepath.Join(dir, name),
			page:   2,
			dpi:    72,
			opt:    &render.Options{Lenient: true},
		}
		err := j.run()
		if !errors.Is(err, document.ErrNoPage) {
			t.Errorf("%s: got %v, want ErrNoPage", name, err)
		}
		if _, err := os.Stat(j.output); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("%s: output file left behind", name)
		}
	}
}
