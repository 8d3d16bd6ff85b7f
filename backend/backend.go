// pdfplumber - structured content extraction for PDF documents
// Copyright (C) 2026 The pdfplumber-go Authors
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

// Package backend defines the seam between the content-stream interpreter
// (interp) and whatever PDF object reader actually parses the file on
// disk, so the rest of this module never imports a specific PDF library
// directly. backend/pdfcpu is the only implementation.
package backend

import (
	"io"

	"github.com/pdfplumber-go/pdfplumber/geom"
	"github.com/pdfplumber-go/pdfplumber/interp"
)

// Metadata holds a document's /Info dictionary entries (PDF 32000-1:2008
// §14.3.3), as raw strings — date parsing, if wanted, is the document
// package's affair.
type Metadata struct {
	Title        string
	Author       string
	Subject      string
	Keywords     string
	Creator      string
	Producer     string
	CreationDate string
	ModDate      string
}

// Document is an open PDF file.
type Document interface {
	PageCount() int
	Page(n int) (*Page, error) // n is 1-based
	Metadata() Metadata
	Close() error
}

// Hyperlink is one /Subtype /Link annotation: a clickable region of a page
// pointing at an external URI. Only /A /URI actions are resolved; GoTo and
// other internal-navigation action types carry no URI and are reported
// with an empty one.
type Hyperlink struct {
	URI  string
	BBox geom.BBox
}

// Page is everything the page coordinator (C9/C18) needs from one page of
// an open Document: its geometry, its content stream(s), a resource
// resolver bound to that page's /Resources dictionary, and its link
// annotations.
type Page struct {
	Number     int
	MediaBox   geom.BBox
	CropBox    geom.BBox // defaults to MediaBox when the page has no /CropBox
	Rotation   int       // degrees clockwise: 0, 90, 180 or 270
	Content    func() (io.ReadCloser, error)
	Resources  interp.Resources
	Hyperlinks []Hyperlink
}

// OpenFunc opens a PDF file from path, optionally decrypting it with
// password (pass "" if the document is not encrypted). Implemented by
// backend/pdfcpu.Open; kept as a function type here so callers needing to
// mock the backend in tests don't have to depend on it directly.
type OpenFunc func(path, password string) (Document, error)
