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

// Package pdfenc provides the PDF standard single-byte encodings used as
// the "standard encoding table" fallback spec.md §4.1 step 2 calls for
// when a simple font has no ToUnicode CMap.
package pdfenc

// An Encoding is a mapping from single byte codes to glyph names.
type Encoding struct {
	Table [256]string
	Has   map[string]bool
}

func newEncoding(table [256]string) Encoding {
	has := make(map[string]bool)
	for _, name := range table {
		if name != "" && name != ".notdef" {
			has[name] = true
		}
	}
	return Encoding{Table: table, Has: has}
}

// Standard is the Adobe Standard Encoding for Latin text.
//
// See Appendix D.2 of PDF 32000-1:2008.
var Standard = newEncoding(StandardEncoding)

// WinAnsi is the PDF version of the standard Microsoft Windows specific
// encoding for Latin text in Western writing systems.
//
// See Appendix D.2 of PDF 32000-1:2008.
var WinAnsi = newEncoding(WinAnsiEncoding)

// MacRoman is the PDF version of the MacOS standard encoding for Latin
// text in Western writing systems.
//
// See Appendix D.2 of PDF 32000-1:2008.
var MacRoman = newEncoding(macRomanEncoding)

// PDFDoc is an encoding for text strings in a PDF document outside the
// document's content streams.
//
// See Appendix D.2 of PDF 32000-1:2008.
var PDFDoc = Encoding{Table: pdfDocEncoding, Has: pdfDocEncodingHas}
