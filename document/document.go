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

// Package document loads pages from PDF files, so that their content
// streams can be rendered.
//
// Files are read using pdfcpu.  All objects handed out by this package
// use the object model of the [pdfdraw] package, with indirect references
// resolved and streams decoded.
package document

import (
	"errors"
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"seehuhn.de/go/pdfdraw"
)

// ErrNoPage is returned by [Document.Page] for page numbers outside the
// document.
var ErrNoPage = errors.New("no such page")

// Document is an open PDF file.
type Document struct {
	ctx  *model.Context
	file *os.File

	numPages int
	cache    map[int]pdfdraw.Object
}

// Open opens the PDF file at path.  The password is used for encrypted
// files and may be empty.
func Open(path, password string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	conf := model.NewDefaultConfiguration()
	if password != "" {
		conf.UserPW = password
		conf.OwnerPW = password
	}
	ctx, err := api.ReadContext(f, conf)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	// PageDict fails for all pages until the page tree has been counted.
	err = ctx.EnsurePageCount()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	d := &Document{
		ctx:      ctx,
		file:     f,
		numPages: ctx.PageCount,
		cache:    make(map[int]pdfdraw.Object),
	}
	return d, nil
}

// Close closes the underlying file.
func (d *Document) Close() error {
	return d.file.Close()
}

// NumPages returns the number of pages in the document.
func (d *Document) NumPages() int {
	return d.numPages
}

// resolve follows indirect references until a direct object is found.
func (d *Document) resolve(obj types.Object) (types.Object, error) {
	for range maxDepth {
		ref, ok := obj.(types.IndirectRef)
		if !ok {
			return obj, nil
		}
		var err error
		obj, err = d.ctx.Dereference(ref)
		if err != nil {
			return nil, err
		}
	}
	return nil, pdfdraw.Errorf("too many levels of indirection")
}
