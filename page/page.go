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

	"github.com/bits-and-blooms/bitset"

	"github.com/pdfplumber-go/pdfplumber/backend"
	"github.com/pdfplumber-go/pdfplumber/edges"
	"github.com/pdfplumber-go/pdfplumber/geom"
	"github.com/pdfplumber-go/pdfplumber/interp"
	"github.com/pdfplumber-go/pdfplumber/matrix"
	"github.com/pdfplumber-go/pdfplumber/shapes"
)

// Page is the C18 page coordinator: it lazily interprets a backend.Page's
// content stream on first access, caching the resulting geometry, and
// exposes the cropping and deduplication operations the rest of the
// extraction pipeline (words, layout, table, document) builds on.
type Page struct {
	Number      int
	MediaBox    geom.BBox
	CropBox     geom.BBox
	Rotation    int
	DisplayBBox geom.BBox

	transform    Transform
	docTopOffset float64
	backendPage  *backend.Page

	parsed     bool
	chars      []Char
	lines      []shapes.Line
	rects      []shapes.Rect
	curves     []shapes.Curve
	images     []Image
	edges      []edges.Edge
	hyperlinks []Hyperlink

	warnings []interp.Warning
}

// New wraps a backend.Page as a page coordinator. docTopOffset is the
// cumulative height of every preceding page in the owning document
// (0 for a page used standalone), added to every Char's DocTop.
func New(bp *backend.Page, docTopOffset float64) *Page {
	t := NewTransform(bp.MediaBox, bp.CropBox, bp.Rotation)
	return &Page{
		Number:       bp.Number,
		MediaBox:     bp.MediaBox,
		CropBox:      bp.CropBox,
		Rotation:     bp.Rotation,
		DisplayBBox:  t.DisplayBBox(),
		transform:    t,
		docTopOffset: docTopOffset,
		backendPage:  bp,
	}
}

// parse runs the content-stream interpreter exactly once, populating every
// geometry cache. Safe to call repeatedly; only the first call does work.
func (p *Page) parse() error {
	if p.parsed {
		return nil
	}
	rc, err := p.backendPage.Content()
	if err != nil {
		return err
	}
	defer rc.Close()

	col := &collector{transform: p.transform}
	ip := interp.New(p.backendPage.Resources, col)
	if err := ip.Run(rc, matrix.Identity); err != nil {
		return err
	}

	for i := range col.chars {
		col.chars[i].DocTop += p.docTopOffset
	}
	p.chars = col.chars
	p.images = col.images
	p.warnings = col.warnings

	tr := shapes.Transform(p.transform.Apply)
	for _, pe := range col.rawPaths {
		r, l, c := shapes.FromPathEvent(pe, tr)
		p.rects = append(p.rects, r...)
		p.lines = append(p.lines, l...)
		p.curves = append(p.curves, c...)
	}
	p.edges = edges.FromShapes(p.lines, p.rects, p.curves)

	for _, hl := range p.backendPage.Hyperlinks {
		c0 := p.transform.Apply(geom.Point{X: hl.BBox.X0, Y: hl.BBox.Top})
		c1 := p.transform.Apply(geom.Point{X: hl.BBox.X1, Y: hl.BBox.Bottom})
		box := geom.BBox{X0: c0.X, Top: c0.Y, X1: c1.X, Bottom: c1.Y}.Normalize()
		p.hyperlinks = append(p.hyperlinks, Hyperlink{URI: hl.URI, BBox: box})
	}

	p.parsed = true
	return nil
}

// Chars returns every glyph on the page, in content-stream order.
func (p *Page) Chars() ([]Char, error) {
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.chars, nil
}

// Lines returns every non-rectangular straight stroked segment on the page.
func (p *Page) Lines() ([]shapes.Line, error) {
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.lines, nil
}

// Rects returns every axis-aligned rectangle on the page.
func (p *Page) Rects() ([]shapes.Rect, error) {
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.rects, nil
}

// Curves returns every cubic Bezier segment on the page.
func (p *Page) Curves() ([]shapes.Curve, error) {
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.curves, nil
}

// Images returns every image XObject and inline image painted on the page.
func (p *Page) Images() ([]Image, error) {
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.images, nil
}

// Edges returns the unified edge view of Lines, Rects, and Curves that
// table detection operates on.
func (p *Page) Edges() ([]edges.Edge, error) {
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.edges, nil
}

// Warnings returns every recoverable problem the interpreter reported
// while parsing this page's content stream.
func (p *Page) Warnings() ([]interp.Warning, error) {
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.warnings, nil
}

// Hyperlinks returns every link annotation on the page, in display space.
func (p *Page) Hyperlinks() ([]Hyperlink, error) {
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.hyperlinks, nil
}

// Crop returns a new Page containing only the geometry whose bounding box
// center falls within bbox, translated so bbox's top-left corner becomes
// the new page's origin (spec.md §4.9).
func (p *Page) Crop(bbox geom.BBox) (*Page, error) {
	out, err := p.filtered(func(b geom.BBox) bool { return bbox.ContainsPoint(b.Center()) })
	if err != nil {
		return nil, err
	}
	out.translate(-bbox.X0, -bbox.Top)
	out.DisplayBBox = geom.BBox{X0: 0, Top: 0, X1: bbox.Width(), Bottom: bbox.Height()}
	return out, nil
}

// WithinBBox returns a new Page containing only the geometry fully
// contained by bbox, translated the same way Crop is.
func (p *Page) WithinBBox(bbox geom.BBox) (*Page, error) {
	out, err := p.filtered(func(b geom.BBox) bool { return bbox.Contains(b) })
	if err != nil {
		return nil, err
	}
	out.translate(-bbox.X0, -bbox.Top)
	out.DisplayBBox = geom.BBox{X0: 0, Top: 0, X1: bbox.Width(), Bottom: bbox.Height()}
	return out, nil
}

// OutsideBBox returns a new Page containing only the geometry with zero
// overlap with bbox. Unlike Crop and WithinBBox it does not translate the
// result: a region excluded from consideration has no natural new origin,
// and the original_source reference implementation's cropped_page
// equivalent leaves coordinates alone for this operation (see DESIGN.md).
func (p *Page) OutsideBBox(bbox geom.BBox) (*Page, error) {
	return p.filtered(func(b geom.BBox) bool { return !bbox.Overlaps(b) })
}

// filtered builds a new Page from the subset of p's already-parsed
// geometry for which keep(bbox) holds, as independent copies (a cropped
// view owns its data, per spec.md §9).
func (p *Page) filtered(keep func(geom.BBox) bool) (*Page, error) {
	if err := p.parse(); err != nil {
		return nil, err
	}
	out := &Page{
		Number:       p.Number,
		MediaBox:     p.MediaBox,
		CropBox:      p.CropBox,
		Rotation:     p.Rotation,
		DisplayBBox:  p.DisplayBBox,
		transform:    p.transform,
		docTopOffset: p.docTopOffset,
		backendPage:  p.backendPage,
		parsed:       true,
	}
	for _, c := range p.chars {
		if keep(c.BBox) {
			out.chars = append(out.chars, c)
		}
	}
	for _, l := range p.lines {
		if keep(geom.BBox{X0: l.X0, Top: l.Top, X1: l.X1, Bottom: l.Bottom}.Normalize()) {
			out.lines = append(out.lines, l)
		}
	}
	for _, r := range p.rects {
		if keep(r.BBox) {
			out.rects = append(out.rects, r)
		}
	}
	for _, c := range p.curves {
		if keep(c.BBox) {
			out.curves = append(out.curves, c)
		}
	}
	for _, im := range p.images {
		if keep(im.BBox) {
			out.images = append(out.images, im)
		}
	}
	for _, hl := range p.hyperlinks {
		if keep(hl.BBox) {
			out.hyperlinks = append(out.hyperlinks, hl)
		}
	}
	out.edges = edges.FromShapes(out.lines, out.rects, out.curves)
	out.warnings = append([]interp.Warning(nil), p.warnings...)
	return out, nil
}

// translate shifts every piece of p's geometry by (dx, dy) in place.
func (p *Page) translate(dx, dy float64) {
	for i := range p.chars {
		p.chars[i].BBox = p.chars[i].BBox.Translate(dx, dy)
		p.chars[i].DocTop += dy
	}
	for i := range p.lines {
		p.lines[i].X0 += dx
		p.lines[i].X1 += dx
		p.lines[i].Top += dy
		p.lines[i].Bottom += dy
	}
	for i := range p.rects {
		p.rects[i].BBox = p.rects[i].BBox.Translate(dx, dy)
	}
	for i := range p.curves {
		p.curves[i].BBox = p.curves[i].BBox.Translate(dx, dy)
		for j := range p.curves[i].Points {
			p.curves[i].Points[j].X += dx
			p.curves[i].Points[j].Y += dy
		}
	}
	for i := range p.images {
		p.images[i].BBox = p.images[i].BBox.Translate(dx, dy)
	}
	for i := range p.hyperlinks {
		p.hyperlinks[i].BBox = p.hyperlinks[i].BBox.Translate(dx, dy)
	}
	p.edges = edges.FromShapes(p.lines, p.rects, p.curves)
}

// DedupeChars removes Chars that duplicate an earlier Char at the same
// position (within tolerance) sharing the same font and size, keeping the
// first occurrence of each — the common "double-printed bold" artifact
// some PDF producers emit. It uses a bitset to mark already-consumed
// indices rather than repeatedly slicing, since pages can carry tens of
// thousands of chars (spec.md's max_objects_per_page).
func (p *Page) DedupeChars(tolerance float64) error {
	if err := p.parse(); err != nil {
		return err
	}
	consumed := bitset.New(uint(len(p.chars)))
	out := make([]Char, 0, len(p.chars))
	for i, c := range p.chars {
		if consumed.Test(uint(i)) {
			continue
		}
		out = append(out, c)
		for j := i + 1; j < len(p.chars); j++ {
			if consumed.Test(uint(j)) {
				continue
			}
			o := p.chars[j]
			if o.FontName != c.FontName || o.Size != c.Size {
				continue
			}
			if bboxClose(c.BBox, o.BBox, tolerance) {
				consumed.Set(uint(j))
			}
		}
	}
	p.chars = out
	return nil
}

func bboxClose(a, b geom.BBox, tol float64) bool {
	return math.Abs(a.X0-b.X0) <= tol && math.Abs(a.Top-b.Top) <= tol &&
		math.Abs(a.X1-b.X1) <= tol && math.Abs(a.Bottom-b.Bottom) <= tol
}
