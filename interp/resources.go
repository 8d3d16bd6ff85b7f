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

package interp

import (
	"github.com/pdfplumber-go/pdfplumber/color"
	"github.com/pdfplumber-go/pdfplumber/font"
	"github.com/pdfplumber-go/pdfplumber/font/charcode"
	"github.com/pdfplumber-go/pdfplumber/font/cmap"
	"github.com/pdfplumber-go/pdfplumber/font/pdfenc"
)

// ResolvedFont carries everything the interpreter needs to turn a raw code
// from a string-showing operator into a displayed glyph: how many bytes
// wide each code is, its advance width, and how to recover its Unicode
// value.
type ResolvedFont struct {
	Name      string
	CodeSpace charcode.CodeSpaceRange
	Widths    *font.Widths
	ToUnicode *cmap.ToUnicode
	Encoding  *pdfenc.Encoding
	Composite bool
}

// Rune resolves a decoded character code to a displayed rune: the
// ToUnicode CMap takes priority when present (spec.md §4.1 step 2), then
// the font's own simple encoding, falling back to the replacement
// character.
func (f *ResolvedFont) Rune(code charcode.Code, raw []byte) rune {
	if f.ToUnicode != nil {
		if rr, _ := f.ToUnicode.Decode(raw); len(rr) > 0 {
			return rr[0]
		}
	}
	if f.Encoding != nil && code >= 0 && code < 256 {
		if name := f.Encoding.Table[code]; name != "" {
			if r, ok := pdfenc.ToRune(name); ok {
				return r
			}
		}
	}
	return '�'
}

// Width returns the glyph width, in glyph space units per 1000 text space
// units, for a decoded character code.
func (f *ResolvedFont) Width(code charcode.Code) float64 {
	if f.Widths == nil {
		return 0
	}
	return f.Widths.Width(int(code))
}

// XObjectKind distinguishes image from form XObjects resolved via Do.
type XObjectKind int

const (
	XObjectImage XObjectKind = iota
	XObjectForm
)

// FormXObject carries a form XObject's own content stream, its local
// resource dictionary, and the matrix that PDF 32000-1:2008 §8.10.2
// requires be concatenated onto the CTM before the form is interpreted.
type FormXObject struct {
	Content   []byte
	Resources Resources
	Matrix    [6]float64
}

// ImageXObject carries the geometry the extraction layer needs from an
// image XObject or inline image; actual sample data is out of scope for
// content-stream interpretation.
type ImageXObject struct {
	Width  int
	Height int
}

// Resources resolves the names a content stream's operators reference
// against the page (or form XObject)'s resource dictionary. Implementors
// typically wrap a PDF object reader (see the backend package).
type Resources interface {
	Font(name string) (*ResolvedFont, error)
	ColorSpace(name string) (*color.ColorSpace, error)
	ExtGState(name string) (map[string]float64, error)
	XObjectKind(name string) (XObjectKind, error)
	Image(name string) (*ImageXObject, error)
	Form(name string) (*FormXObject, error)
}
