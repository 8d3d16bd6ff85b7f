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

package main

import (
	"github.com/pdfplumber-go/pdfplumber/backend"
	"github.com/pdfplumber-go/pdfplumber/geom"
	"github.com/pdfplumber-go/pdfplumber/page"
	"github.com/pdfplumber-go/pdfplumber/table"
)

// bboxJSON is the {x0, top, x1, bottom} shape every JSON schema in spec.md
// §6 embeds for a bounding box.
type bboxJSON struct {
	X0     float64 `json:"x0"`
	Top    float64 `json:"top"`
	X1     float64 `json:"x1"`
	Bottom float64 `json:"bottom"`
}

func bboxOf(b geom.BBox) bboxJSON {
	return bboxJSON{X0: b.X0, Top: b.Top, X1: b.X1, Bottom: b.Bottom}
}

type charJSON struct {
	Text      string   `json:"text"`
	BBox      bboxJSON `json:"bbox"`
	FontName  string   `json:"fontname"`
	Size      float64  `json:"size"`
	DocTop    float64  `json:"doctop"`
	Upright   bool     `json:"upright"`
	Direction string   `json:"direction"`
}

func charOutput(c page.Char) charJSON {
	return charJSON{
		Text:      c.Text,
		BBox:      bboxOf(c.BBox),
		FontName:  c.FontName,
		Size:      c.Size,
		DocTop:    c.DocTop,
		Upright:   c.Upright,
		Direction: c.Direction.String(),
	}
}

type wordJSON struct {
	Text      string   `json:"text"`
	BBox      bboxJSON `json:"bbox"`
	DocTop    float64  `json:"doctop"`
	Direction string   `json:"direction"`
}

func wordOutput(w page.Word) wordJSON {
	return wordJSON{Text: w.Text, BBox: bboxOf(w.BBox), DocTop: w.DocTop, Direction: w.Direction.String()}
}

type cellJSON struct {
	Text *string  `json:"text,omitempty"`
	BBox bboxJSON `json:"bbox"`
}

type tableJSON struct {
	BBox bboxJSON     `json:"bbox"`
	Rows [][]cellJSON `json:"rows"`
}

func tableOutput(t table.Table) tableJSON {
	rows := make([][]cellJSON, len(t.Rows))
	for i, r := range t.Rows {
		cells := make([]cellJSON, len(r.Cells))
		for j, c := range r.Cells {
			cell := cellJSON{BBox: bboxOf(c.BBox)}
			if c.Text != "" {
				text := c.Text
				cell.Text = &text
			}
			cells[j] = cell
		}
		rows[i] = cells
	}
	return tableJSON{BBox: bboxOf(t.BBox), Rows: rows}
}

type metadataJSON struct {
	Title        string `json:"title,omitempty"`
	Author       string `json:"author,omitempty"`
	Subject      string `json:"subject,omitempty"`
	Keywords     string `json:"keywords,omitempty"`
	Creator      string `json:"creator,omitempty"`
	Producer     string `json:"producer,omitempty"`
	CreationDate string `json:"creation_date,omitempty"`
	ModDate      string `json:"mod_date,omitempty"`
}

func metadataOutput(m backend.Metadata) metadataJSON {
	return metadataJSON{
		Title:        m.Title,
		Author:       m.Author,
		Subject:      m.Subject,
		Keywords:     m.Keywords,
		Creator:      m.Creator,
		Producer:     m.Producer,
		CreationDate: m.CreationDate,
		ModDate:      m.ModDate,
	}
}

type pageInfoJSON struct {
	Page     int     `json:"page"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation int     `json:"rotation"`
	Chars    int     `json:"chars"`
	Lines    int     `json:"lines"`
	Rects    int     `json:"rects"`
	Curves   int     `json:"curves"`
	Images   int     `json:"images"`
}

type summaryJSON struct {
	TotalChars  int `json:"total_chars"`
	TotalTables int `json:"total_tables"`
}

type infoJSON struct {
	Pages    int            `json:"pages"`
	Metadata metadataJSON   `json:"metadata"`
	PageInfo []pageInfoJSON `json:"page_info"`
	Summary  summaryJSON    `json:"summary"`
}
