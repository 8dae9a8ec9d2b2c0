package main

import (
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"seehuhn.de/go/pdfdraw"
	"seehuhn.de/go/pdfdraw/converter"
	"seehuhn.de/go/pdfdraw/document"
	"seehuhn.de/go/pdfdraw/graphics/color"
	"seehuhn.de/go/pdfdraw/render"
)

func main() {
	dpi := flag.Float64("dpi", 72.0, "DPI for rendering")
	pageNum := flag.Int("page", 1, "Page number to render (1-based)")
	strict := flag.Bool("strict", false, "Abort on malformed colours and unknown operators")
	indexed := flag.String("indexed", "raw", "Indexed colour table scaling (raw or normalized)")
	trace := flag.Bool("trace", false, "Print draw calls instead of writing an image")
	passwd := flag.String("p", "", "Password for encrypted files (\"-\" to prompt)")
	verbose := flag.Bool("v", false, "Show debug messages")
	flag.Parse()

	if flag.NArg() < 1 || flag.NArg() < 2 && !*trace {
		fmt.Printf("Usage: %s [options] input.pdf output.{png,svg}\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	pdfdraw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	opt := &render.Options{
		Lenient: !*strict,
		Strict:  *strict,
	}
	switch *indexed {
	case "raw":
		opt.Indexed = color.IndexedRaw
	case "normalized":
		opt.Indexed = color.IndexedNormalized
	default:
		fmt.Fprintf(os.Stderr, "Invalid -indexed value %q\n", *indexed)
		os.Exit(1)
	}

	if *passwd == "-" {
		fmt.Fprint(os.Stderr, "Password: ")
		pw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading password: %v\n", err)
			os.Exit(1)
		}
		*passwd = string(pw)
	}

	j := &job{
		input:    flag.Arg(0),
		output:   flag.Arg(1),
		page:     *pageNum,
		dpi:      *dpi,
		password: *passwd,
		trace:    *trace,
		opt:      opt,
	}
	err := j.run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !*trace {
		fmt.Printf("Successfully rendered page %d of %s to %s\n", j.page, j.input, j.output)
	}
}

// job describes one page to render.
type job struct {
	input, output string
	page          int
	dpi           float64
	password      string
	trace         bool
	opt           *render.Options
}

// run renders the page.  On failure, no output file is left behind.
func (j *job) run() (err error) {
	doc, err := document.Open(j.input, j.password)
	if err != nil {
		return fmt.Errorf("opening input file: %w", err)
	}
	defer doc.Close()

	conv := converter.NewConverter(doc, j.opt)

	if j.trace {
		return conv.TracePage(os.Stdout, j.page)
	}

	out, err := os.Create(j.output)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		closeErr := out.Close()
		if err == nil {
			err = closeErr
		}
		if err != nil {
			os.Remove(j.output)
		}
	}()

	switch strings.ToLower(filepath.Ext(j.output)) {
	case ".svg":
		err = conv.RenderPageToSVG(out, j.page)
		if err != nil {
			return fmt.Errorf("rendering page: %w", err)
		}
	default:
		img, err := conv.RenderPageToImage(j.page, j.dpi)
		if err != nil {
			return fmt.Errorf("rendering page: %w", err)
		}
		err = png.Encode(out, img)
		if err != nil {
			return fmt.Errorf("encoding PNG: %w", err)
		}
	}
	return nil
}
