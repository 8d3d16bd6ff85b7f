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

package page

import (
	"github.com/pdfplumber-go/pdfplumber/geom"
	"github.com/pdfplumber-go/pdfplumber/layout"
	"github.com/pdfplumber-go/pdfplumber/words"
)

// Word is a maximal run of adjacent Chars with no intervening whitespace or
// oversized gap (spec.md §4.5).
type Word struct {
	Text      string
	BBox      geom.BBox
	DocTop    float64
	Direction Direction
	Chars     []Char
}

// ExtractWords groups the page's Chars into Words (C12). It converts to
// words.Char rather than having the words package depend on Char directly,
// since this package in turn depends on words for ExtractText — a direct
// dependency the other way would be a cycle.
func (p *Page) ExtractWords(opts words.Options) ([]Word, error) {
	chars, err := p.Chars()
	if err != nil {
		return nil, err
	}
	return extractWords(chars, opts), nil
}

func extractWords(chars []Char, opts words.Options) []Word {
	wc := make([]words.Char, len(chars))
	for i, c := range chars {
		wc[i] = words.Char{Text: c.Text, BBox: c.BBox, Direction: words.Direction(c.Direction), Index: i}
	}
	ws := words.Extract(wc, opts)
	out := make([]Word, len(ws))
	for i, w := range ws {
		chs := make([]Char, len(w.Chars))
		for j, idx := range w.Chars {
			chs[j] = chars[idx]
		}
		docTop := 0.0
		if len(chs) > 0 {
			docTop = chs[0].DocTop
		}
		out[i] = Word{
			Text:      w.Text,
			BBox:      w.BBox,
			DocTop:    docTop,
			Direction: Direction(w.Direction),
			Chars:     chs,
		}
	}
	return out
}

// TextOptions configures ExtractText (spec.md §4.6).
type TextOptions struct {
	Words  words.Options
	Layout bool
	Render layout.RenderOptions // only consulted when Layout is true
}

// ExtractText renders the page's words as a single string: a flow
// rendering (words joined by a space, lines by a newline) when Layout is
// false, or a position-preserving rendering (layout.RenderLayout) when
// Layout is true.
func (p *Page) ExtractText(opts TextOptions) (string, error) {
	ws, err := p.ExtractWords(opts.Words)
	if err != nil {
		return "", err
	}
	if len(ws) == 0 {
		return "", nil
	}
	lw := make([]layout.Word, len(ws))
	for i, w := range ws {
		lw[i] = layout.Word{Text: w.Text, BBox: w.BBox}
	}
	if !opts.Layout {
		return layout.RenderFlow(lw, opts.Words.Resolve().YTolerance), nil
	}
	render := opts.Render
	if render.YTolerance == 0 {
		render.YTolerance = opts.Words.Resolve().YTolerance
	}
	return layout.RenderLayout(lw, render), nil
}
