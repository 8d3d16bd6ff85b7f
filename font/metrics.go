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

// Package font resolves per-code glyph widths for simple (non-composite)
// fonts: from an explicit /Widths array when the font dict carries one,
// falling back to font/afm's built-in metrics for the 14 standard PDF
// fonts otherwise.
package font

import (
	"strings"

	"github.com/pdfplumber-go/pdfplumber/font/afm"
	"github.com/pdfplumber-go/pdfplumber/font/pdfenc"
)

// Metrics is an alias for font/afm's metrics table, kept under this
// package's name for callers that resolved widths before this package
// split its standard-14 data out into font/afm.
type Metrics = afm.Metrics

// StandardMetrics maps a standard-14 PostScript base font name to its
// built-in metrics; an alias for afm.Standard14.
var StandardMetrics = afm.Standard14

// StripSubsetPrefix removes the "ABCDEF+" subset tag PDF producers prepend
// to a subsetted font's BaseFont name (PDF 32000-1:2008 §9.6.4.3): six
// uppercase letters followed by a plus sign.
func StripSubsetPrefix(baseFont string) string {
	if len(baseFont) < 7 || baseFont[6] != '+' {
		return baseFont
	}
	for _, c := range baseFont[:6] {
		if c < 'A' || c > 'Z' {
			return baseFont
		}
	}
	return baseFont[7:]
}

// Widths resolves glyph advance widths for one simple font, combining an
// explicit /Widths array (when present) with a fallback to standard
// metrics by glyph name, and finally a font-wide default.
type Widths struct {
	FirstChar    int
	LastChar     int
	Array        []float64
	MissingWidth float64
	Encoding     *pdfenc.Encoding
	Standard     *Metrics

	// CIDWidths holds per-CID widths for composite (Type0) fonts, parsed
	// from a CIDFont's /W array. Nil for simple fonts.
	CIDWidths map[int]float64
}

// NewWidths builds a Widths resolver for a font whose PDF dictionary
// carries an explicit /Widths array (FirstChar/LastChar/Widths/MissingWidth
// taken directly from the font dict).
func NewWidths(firstChar, lastChar int, array []float64, missingWidth float64, enc *pdfenc.Encoding) *Widths {
	return &Widths{FirstChar: firstChar, LastChar: lastChar, Array: array, MissingWidth: missingWidth, Encoding: enc}
}

// NewStandardWidths builds a Widths resolver for a standard-14 font with no
// /Widths array of its own, resolved entirely from built-in metrics.
func NewStandardWidths(baseFont string, enc *pdfenc.Encoding) *Widths {
	name := StripSubsetPrefix(baseFont)
	w := &Widths{Standard: StandardMetrics[name], Encoding: enc}
	if w.Standard != nil {
		w.MissingWidth = w.Standard.MissingWidth
	}
	return w
}

// Width returns the glyph-space width (per 1000 text-space units) for a
// single-byte character code.
func (w *Widths) Width(code int) float64 {
	if w.CIDWidths != nil {
		if width, ok := w.CIDWidths[code]; ok {
			return width
		}
		return w.MissingWidth
	}
	if w.Array != nil && code >= w.FirstChar && code <= w.LastChar {
		idx := code - w.FirstChar
		if idx >= 0 && idx < len(w.Array) {
			return w.Array[idx]
		}
	}
	if w.Standard != nil && w.Encoding != nil && code >= 0 && code < 256 {
		glyphName := w.Encoding.Table[code]
		if glyphName != "" {
			if width, ok := w.Standard.WidthOf(glyphName); ok {
				return width
			}
		}
	}
	return w.MissingWidth
}

// IsStandardFourteen reports whether baseFont (after stripping any subset
// prefix) has built-in metrics in StandardMetrics: twelve of the 14
// standard PDF fonts (all but Symbol and ZapfDingbats) plus the Arial,
// Arial-Bold and TimesNewRoman aliases.
func IsStandardFourteen(baseFont string) bool {
	_, ok := StandardMetrics[StripSubsetPrefix(baseFont)]
	return ok
}

// IsBoldName reports whether a base font name's style suffix indicates a
// bold weight, used to pick between the Helvetica/Times regular and bold
// metrics tables for synthetic substitute fonts.
func IsBoldName(baseFont string) bool {
	return strings.Contains(strings.ToLower(baseFont), "bold")
}
