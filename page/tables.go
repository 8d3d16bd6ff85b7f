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
	"github.com/pdfplumber-go/pdfplumber/table"
	"github.com/pdfplumber-go/pdfplumber/words"
)

// FindTables detects tables on the page and attributes text to every cell
// (C15/C16/C17). Word-alignment histograms are only computed when the
// strategy needs them (Stream), since extracting words is the most
// expensive step of the pipeline this calls into.
func (p *Page) FindTables(settings table.Settings) ([]table.Table, error) {
	edgesIn, err := p.Edges()
	if err != nil {
		return nil, err
	}
	chars, err := p.Chars()
	if err != nil {
		return nil, err
	}
	tc := make([]table.Char, len(chars))
	for i, c := range chars {
		tc[i] = table.Char{Text: c.Text, BBox: c.BBox, Direction: words.Direction(c.Direction)}
	}

	var tw []table.Word
	if settings.Strategy == table.Stream {
		ws, err := p.ExtractWords(words.Options{})
		if err != nil {
			return nil, err
		}
		tw = make([]table.Word, len(ws))
		for i, w := range ws {
			tw[i] = table.Word{Text: w.Text, BBox: w.BBox}
		}
	}

	return table.Find(edgesIn, tw, tc, settings), nil
}
