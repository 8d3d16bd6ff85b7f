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
	"math"

	"github.com/pdfplumber-go/pdfplumber/geom"
	"github.com/pdfplumber-go/pdfplumber/interp"
	"github.com/pdfplumber-go/pdfplumber/matrix"
)

// defaultDescentEm and defaultAscentEm bound a glyph's bounding box in the
// absence of the font program's actual descent/ascent metrics, which this
// module does not parse (no embedded-font-program reader exists in this
// repo; see DESIGN.md). 0 to 1 em is a reasonable stand-in: it covers the
// full nominal em square a glyph is drawn within, at the cost of slightly
// overstating ascender/descender extent for any one real glyph.
const (
	defaultDescentEm = 0.0
	defaultAscentEm  = 1.0
)

// alignEps is the tolerance used to decide whether a text rendering
// matrix's off-diagonal terms are negligible, i.e. the glyph is upright.
const alignEps = 1e-6

// collector implements interp.Handler, gathering one page's content-stream
// events and converting each into display-space geometry via a Transform.
type collector struct {
	transform Transform

	chars    []Char
	rawPaths []interp.PathEvent
	images   []Image
	warnings []interp.Warning
}

func (c *collector) OnChar(ev interp.CharEvent) {
	c.chars = append(c.chars, charFromEvent(ev, c.transform))
}

func (c *collector) OnPath(ev interp.PathEvent) {
	c.rawPaths = append(c.rawPaths, ev)
}

func (c *collector) OnImage(ev interp.ImageEvent) {
	corners := [4]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	var box geom.BBox
	for i, p := range corners {
		tp := c.transform.Apply(ev.CTM.TransformPoint(p))
		if i == 0 {
			box = geom.BBox{X0: tp.X, Top: tp.Y, X1: tp.X, Bottom: tp.Y}
			continue
		}
		if tp.X < box.X0 {
			box.X0 = tp.X
		}
		if tp.X > box.X1 {
			box.X1 = tp.X
		}
		if tp.Y < box.Top {
			box.Top = tp.Y
		}
		if tp.Y > box.Bottom {
			box.Bottom = tp.Y
		}
	}
	c.images = append(c.images, Image{
		BBox:   box.Normalize(),
		Width:  ev.Width,
		Height: ev.Height,
		Name:   ev.Name,
	})
}

func (c *collector) OnWarning(w interp.Warning) {
	c.warnings = append(c.warnings, w)
}

// charFromEvent implements the C9 character geometry bridge (spec.md
// §4.2): the glyph's nominal bounding box, in em units, is carried through
// its text rendering matrix into native page space, then through t into
// display space.
func charFromEvent(ev interp.CharEvent, t Transform) Char {
	wEm := ev.GlyphWidth / 1000

	corners := [4]geom.Point{
		{X: 0, Y: defaultDescentEm},
		{X: wEm, Y: defaultDescentEm},
		{X: wEm, Y: defaultAscentEm},
		{X: 0, Y: defaultAscentEm},
	}

	var box geom.BBox
	for i, p := range corners {
		native := ev.Trm.TransformPoint(p)
		display := t.Apply(native)
		if i == 0 {
			box = geom.BBox{X0: display.X, Top: display.Y, X1: display.X, Bottom: display.Y}
			continue
		}
		if display.X < box.X0 {
			box.X0 = display.X
		}
		if display.X > box.X1 {
			box.X1 = display.X
		}
		if display.Y < box.Top {
			box.Top = display.Y
		}
		if display.Y > box.Bottom {
			box.Bottom = display.Y
		}
	}

	dir, upright := directionOf(ev.Trm)

	return Char{
		Text:             string(ev.Rune),
		BBox:             box.Normalize(),
		FontName:         ev.FontName,
		Size:             ev.FontSize,
		DocTop:           box.Top,
		Upright:          upright,
		Direction:        dir,
		StrokingColor:    ev.StrokeColor,
		NonStrokingColor: ev.FillColor,
		CTM:              ev.CTM,
		CharCode:         ev.Code,
		MCID:             ev.MCID,
		Tag:              ev.Tag,
	}
}

// directionOf classifies a glyph's writing direction from the rotational
// part of its text rendering matrix: upright Latin text has a purely
// diagonal (a, d) matrix; a 90-degree rotation swaps the roles of a/b and
// c/d. A genuinely skewed Trm (neither axis-aligned) falls back to
// whichever axis dominates.
func directionOf(trm matrix.Matrix) (Direction, bool) {
	a, b, c, d := trm[0], trm[1], trm[2], trm[3]
	upright := math.Abs(b) < alignEps && math.Abs(c) < alignEps
	switch {
	case upright && a >= 0:
		return Ltr, true
	case upright:
		return Rtl, true
	case math.Abs(a) < alignEps && math.Abs(d) < alignEps:
		if b >= 0 {
			return Ttb, false
		}
		return Btt, false
	case math.Abs(a) >= math.Abs(b):
		if a >= 0 {
			return Ltr, false
		}
		return Rtl, false
	default:
		if b >= 0 {
			return Ttb, false
		}
		return Btt, false
	}
}
