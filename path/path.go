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

// Package path accumulates the path-construction operators (m, l, c, v, y,
// re, h) of a content stream into a device-space Path, ready for the
// painting operators (S, s, f, f*, B, B*, b, b*, n) to classify.
package path

import "github.com/pdfplumber-go/pdfplumber/geom"

// SegmentKind identifies the kind of a PathSegment.
type SegmentKind int

const (
	MoveTo SegmentKind = iota
	LineTo
	CurveTo
	ClosePath
)

// Segment is one element of a Path. For CurveTo, CP1 and CP2 are the cubic
// Bezier control points and End is the curve's endpoint; the other kinds
// only use End.
type Segment struct {
	Kind     SegmentKind
	End      geom.Point
	CP1, CP2 geom.Point
}

// Path is an ordered sequence of subpaths, each starting with a MoveTo.
// Points are post-CTM, in the page's PDF space (bottom-left origin); the
// flip to top-left display space happens later, outside this package.
type Path struct {
	Segments []Segment
}

// Builder accumulates segments for a single path and stores points as it is
// given them; it applies no transform of its own. The content-stream
// interpreter maps each m/l/c/v/y/re/h operand through the current CTM
// before passing it in, one operator at a time.
type Builder struct {
	path         Path
	current      geom.Point
	subpathStart geom.Point
	hasCurrent   bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// MoveTo starts a new subpath at p.
func (b *Builder) MoveTo(p geom.Point) {
	b.path.Segments = append(b.path.Segments, Segment{Kind: MoveTo, End: p})
	b.current = p
	b.subpathStart = p
	b.hasCurrent = true
}

// LineTo appends a straight segment from the current point to p.
func (b *Builder) LineTo(p geom.Point) {
	if !b.hasCurrent {
		b.MoveTo(p)
		return
	}
	b.path.Segments = append(b.path.Segments, Segment{Kind: LineTo, End: p})
	b.current = p
}

// CurveTo appends a cubic Bezier segment from the current point through
// control points cp1, cp2 to end. It implements the `c` operator directly;
// callers for `v` and `y` substitute the current point or end point for the
// missing control point before calling this.
func (b *Builder) CurveTo(cp1, cp2, end geom.Point) {
	if !b.hasCurrent {
		b.MoveTo(cp1)
	}
	b.path.Segments = append(b.path.Segments, Segment{Kind: CurveTo, CP1: cp1, CP2: cp2, End: end})
	b.current = end
}

// CurveToV implements the `v` operator: the first control point is the
// current point.
func (b *Builder) CurveToV(cp2, end geom.Point) {
	b.CurveTo(b.current, cp2, end)
}

// CurveToY implements the `y` operator: the second control point equals the
// endpoint.
func (b *Builder) CurveToY(cp1, end geom.Point) {
	b.CurveTo(cp1, end, end)
}

// ClosePath implements the `h` operator: a straight line back to the
// subpath's starting point, and marks the subpath closed.
func (b *Builder) ClosePath() {
	if !b.hasCurrent {
		return
	}
	b.path.Segments = append(b.path.Segments, Segment{Kind: ClosePath, End: b.subpathStart})
	b.current = b.subpathStart
}

// Rect implements the `re` operator, which per spec appends a complete
// closed rectangular subpath: moveto the corner, three linetos, closepath.
func (b *Builder) Rect(x, y, w, h float64) {
	p0 := geom.Point{X: x, Y: y}
	p1 := geom.Point{X: x + w, Y: y}
	p2 := geom.Point{X: x + w, Y: y + h}
	p3 := geom.Point{X: x, Y: y + h}
	b.MoveTo(p0)
	b.LineTo(p1)
	b.LineTo(p2)
	b.LineTo(p3)
	b.ClosePath()
}

// CurrentPoint returns the builder's current point and whether one exists.
func (b *Builder) CurrentPoint() (geom.Point, bool) {
	return b.current, b.hasCurrent
}

// Path returns the accumulated path. The builder may continue to be used
// after this call; the returned Path shares no mutable state with it.
func (b *Builder) Path() Path {
	out := Path{Segments: make([]Segment, len(b.path.Segments))}
	copy(out.Segments, b.path.Segments)
	return out
}

// Reset clears the builder back to its initial empty state, as happens
// after a painting operator consumes the current path.
func (b *Builder) Reset() {
	b.path.Segments = nil
	b.hasCurrent = false
}

// BoundingBox returns the smallest BBox enclosing every point and control
// point of p. Control points are included even though they may lie outside
// the curve's actual extent, so the box is a conservative bound.
func (p Path) BoundingBox() geom.BBox {
	var box geom.BBox
	first := true
	extend := func(pt geom.Point) {
		if first {
			box = geom.BBox{X0: pt.X, Top: pt.Y, X1: pt.X, Bottom: pt.Y}
			first = false
			return
		}
		if pt.X < box.X0 {
			box.X0 = pt.X
		}
		if pt.X > box.X1 {
			box.X1 = pt.X
		}
		if pt.Y < box.Top {
			box.Top = pt.Y
		}
		if pt.Y > box.Bottom {
			box.Bottom = pt.Y
		}
	}
	for _, s := range p.Segments {
		extend(s.End)
		if s.Kind == CurveTo {
			extend(s.CP1)
			extend(s.CP2)
		}
	}
	return box
}

// IsClosed reports whether p ends with a ClosePath segment.
func (p Path) IsClosed() bool {
	if len(p.Segments) == 0 {
		return false
	}
	return p.Segments[len(p.Segments)-1].Kind == ClosePath
}
