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

// Package afm holds the Adobe Font Metrics advance widths for the
// standard 14 PDF fonts, by PostScript glyph name, the way the AFM files
// distributed with every PostScript/PDF implementation key them. A font
// with no embedded font program and no /Widths array falls back to these
// (PDF 32000-1:2008 §9.6.2.2: "the special names refer to... the standard
// 14 fonts").
package afm

// Metrics holds per-glyph-name advance widths, in glyph space units per
// 1000 text space units, for one of the standard 14 fonts.
type Metrics struct {
	Width        map[string]float64
	MissingWidth float64
}

// WidthOf looks up glyphName's advance width. The second return is false
// when m is nil or the glyph isn't in its table.
func (m *Metrics) WidthOf(glyphName string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	w, ok := m.Width[glyphName]
	return w, ok
}

// Standard14 maps a standard-14 PostScript base font name to its built-in
// metrics; it also maps Arial, Arial-Bold and TimesNewRoman onto the
// Helvetica and Times tables. Symbol and ZapfDingbats are intentionally absent: this package
// carries no encoding table for their non-Latin glyph sets (see
// font/pdfenc's documented scope limit).
var Standard14 = map[string]*Metrics{
	"Helvetica":             {Width: helveticaWidths, MissingWidth: 0},
	"Helvetica-Bold":        {Width: helveticaBoldWidths, MissingWidth: 0},
	"Helvetica-Oblique":     {Width: helveticaWidths, MissingWidth: 0},
	"Helvetica-BoldOblique": {Width: helveticaBoldWidths, MissingWidth: 0},
	"Times-Roman":           {Width: timesWidths, MissingWidth: 0},
	"Times-Bold":            {Width: timesBoldWidths, MissingWidth: 0},
	"Times-Italic":          {Width: timesWidths, MissingWidth: 0},
	"Times-BoldItalic":      {Width: timesBoldWidths, MissingWidth: 0},
	"Courier":               {Width: courierWidths, MissingWidth: 600},
	"Courier-Bold":          {Width: courierWidths, MissingWidth: 600},
	"Courier-Oblique":       {Width: courierWidths, MissingWidth: 600},
	"Courier-BoldOblique":   {Width: courierWidths, MissingWidth: 600},
	"Arial":                 {Width: helveticaWidths, MissingWidth: 0},
	"Arial-Bold":            {Width: helveticaBoldWidths, MissingWidth: 0},
	"TimesNewRoman":         {Width: timesWidths, MissingWidth: 0},
}
