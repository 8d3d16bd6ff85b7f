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

// Package shapes classifies painted paths (interp.PathEvent) into the
// rectangle, line, and curve records that edge derivation and table
// detection consume.
package shapes

import (
	"math"

	"github.com/pdfplumber-go/pdfplumber/color"
	"github.com/pdfplumber-go/pdfplumber/geom"
	"github.com/pdfplumber-go/pdfplumber/interp"
	"github.com/pdfplumber-go/pdfplumber/path"
)

// alignTolerance is the axis-alignment and degeneracy tolerance spec.md
// §4.3 specifies for rectangle and orientation classification.
const alignTolerance = 1e-6

// Orientation classifies a Line or Curve chord by its end-point delta.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
	Diagonal
)

func classify(dx, dy float64) Orientation {
	switch {
	case math.Abs(dy) < alignTolerance:
		return Horizontal
	case math.Abs(dx) < alignTolerance:
		return Vertical
	default:
		return Diagonal
	}
}

// Rect is a detected axis-aligned rectangle, stroked and/or filled.
type Rect struct {
	BBox        geom.BBox
	Stroke      bool
	Fill        bool
	StrokeColor color.Color
	FillColor   color.Color
}

// Line is a single straight segment from a non-rectangle stroked subpath.
type Line struct {
	X0, Top, X1, Bottom float64
	Orientation         Orientation
	StrokeColor         color.Color
}

// Curve is one cubic Bezier segment; BBox bounds all four of its points
// (including control points, a conservative but spec-mandated bound).
type Curve struct {
	BBox        geom.BBox
	Orientation Orientation // classified by chord start->end, not curvature
	Points      []geom.Point
	StrokeColor color.Color
	FillColor   color.Color
}

// Transform maps a point from the page's native PDF coordinate space into
// the display (top-left, rotation-normalized) space extraction reports
// coordinates in.
type Transform func(geom.Point) geom.Point

// FromPathEvent classifies one painted path into rectangles, lines, and
// curves, transforming every point through t first (spec.md §4.3:
// "coordinates are always flipped to top-left space").
func FromPathEvent(ev interp.PathEvent, t Transform) (rects []Rect, lines []Line, curves []Curve) {
	for _, sub := range subpaths(ev.Path) {
		if sub.hasCurve {
			curves = append(curves, curvesOf(sub, ev, t)...)
			continue
		}
		verts := transformedVertices(sub, t)
		if rect, ok := rectangleOf(verts); ok {
			rects = append(rects, Rect{
				BBox:        rect,
				Stroke:      ev.Stroke,
				Fill:        ev.Fill,
				StrokeColor: ev.StrokeColor,
				FillColor:   ev.FillColor,
			})
			continue
		}
		if ev.Stroke {
			lines = append(lines, linesOf(verts, sub.closed, ev.StrokeColor)...)
		}
	}
	return rects, lines, curves
}

// subpath is the raw (untransformed) segments of one MoveTo-delimited
// subpath, split out of the overall path for independent classification.
type subpath struct {
	segments []path.Segment
	closed   bool
	hasCurve bool
}

func subpaths(p path.Path) []subpath {
	var out []subpath
	var cur subpath
	flush := func() {
		if len(cur.segments) > 0 {
			out = append(out, cur)
		}
		cur = subpath{}
	}
	for _, seg := range p.Segments {
		if seg.Kind == path.MoveTo && len(cur.segments) > 0 {
			flush()
		}
		cur.segments = append(cur.segments, seg)
		if seg.Kind == path.CurveTo {
			cur.hasCurve = true
		}
		if seg.Kind == path.ClosePath {
			cur.closed = true
		}
	}
	flush()
	return out
}

// transformedVertices returns every segment endpoint of sub (MoveTo/LineTo/
// ClosePath) transformed through t, in order. The closing vertex of a
// ClosePath segment is always included, even when it repeats an earlier point.
func transformedVertices(sub subpath, t Transform) []geom.Point {
	var verts []geom.Point
	for _, seg := range sub.segments {
		verts = append(verts, t(seg.End))
	}
	return verts
}

// rectangleOf reports whether verts describe an axis-aligned rectangle per
// spec.md §4.3: 4 unique vertices with all 4 edges axis-aligned, or a
// 5-vertex polyline whose last vertex repeats the first under the same
// rule.
func rectangleOf(verts []geom.Point) (geom.BBox, bool) {
	if len(verts) == 5 && closeEnough(verts[0], verts[4]) {
		verts = verts[:4]
	}
	if len(verts) != 4 {
		return geom.BBox{}, false
	}
	for i := 0; i < 4; i++ {
		a := verts[i]
		b := verts[(i+1)%4]
		if math.Abs(a.X-b.X) > alignTolerance && math.Abs(a.Y-b.Y) > alignTolerance {
			return geom.BBox{}, false
		}
	}
	box := geom.BBox{X0: verts[0].X, Top: verts[0].Y, X1: verts[0].X, Bottom: verts[0].Y}
	for _, v := range verts[1:] {
		if v.X < box.X0 {
			box.X0 = v.X
		}
		if v.X > box.X1 {
			box.X1 = v.X
		}
		if v.Y < box.Top {
			box.Top = v.Y
		}
		if v.Y > box.Bottom {
			box.Bottom = v.Y
		}
	}
	return box.Normalize(), true
}

func closeEnough(a, b geom.Point) bool {
	return math.Abs(a.X-b.X) < alignTolerance && math.Abs(a.Y-b.Y) < alignTolerance
}

// linesOf decomposes a non-rectangle subpath's vertex chain into one Line
// per consecutive pair, adding the closing segment if the subpath was
// closed and that segment is non-degenerate.
func linesOf(verts []geom.Point, closed bool, strokeColor color.Color) []Line {
	var out []Line
	add := func(a, b geom.Point) {
		if closeEnough(a, b) {
			return
		}
		out = append(out, Line{
			X0: a.X, Top: a.Y, X1: b.X, Bottom: b.Y,
			Orientation: classify(b.X-a.X, b.Y-a.Y),
			StrokeColor: strokeColor,
		})
	}
	for i := 0; i+1 < len(verts); i++ {
		add(verts[i], verts[i+1])
	}
	if closed && len(verts) > 1 {
		add(verts[len(verts)-1], verts[0])
	}
	return out
}

func curvesOf(sub subpath, ev interp.PathEvent, t Transform) []Curve {
	var out []Curve
	cur := geom.Point{}
	for _, seg := range sub.segments {
		switch seg.Kind {
		case path.MoveTo:
			cur = t(seg.End)
		case path.LineTo:
			cur = t(seg.End)
		case path.CurveTo:
			cp1 := t(seg.CP1)
			cp2 := t(seg.CP2)
			end := t(seg.End)
			pts := []geom.Point{cur, cp1, cp2, end}
			box := geom.BBox{X0: pts[0].X, Top: pts[0].Y, X1: pts[0].X, Bottom: pts[0].Y}
			for _, p := range pts[1:] {
				if p.X < box.X0 {
					box.X0 = p.X
				}
				if p.X > box.X1 {
					box.X1 = p.X
				}
				if p.Y < box.Top {
					box.Top = p.Y
				}
				if p.Y > box.Bottom {
					box.Bottom = p.Y
				}
			}
			out = append(out, Curve{
				BBox:        box.Normalize(),
				Orientation: classify(end.X-cur.X, end.Y-cur.Y),
				Points:      pts,
				StrokeColor: ev.StrokeColor,
				FillColor:   ev.FillColor,
			})
			cur = end
		case path.ClosePath:
			cur = t(seg.End)
		}
	}
	return out
}
