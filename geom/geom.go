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

// Package geom implements the axis-aligned bounding box and point types
// shared by every downstream package. Coordinates are in points (1/72
// inch), top-left origin, matching the page as it would be rendered.
package geom

import "math"

// Point is a location in 2D space.
type Point struct {
	X, Y float64
}

// BBox is an axis-aligned bounding box in top-left display coordinates.
// The invariants X0 <= X1 and Top <= Bottom hold for every BBox produced
// by this package except the Intersection of two disjoint boxes, which can
// have X0 > X1 or Top > Bottom (IsEmpty reports it); callers that build
// one by hand should call Normalize.
type BBox struct {
	X0, Top, X1, Bottom float64
}

// Normalize returns b with X0<=X1 and Top<=Bottom.
func (b BBox) Normalize() BBox {
	if b.X0 > b.X1 {
		b.X0, b.X1 = b.X1, b.X0
	}
	if b.Top > b.Bottom {
		b.Top, b.Bottom = b.Bottom, b.Top
	}
	return b
}

// Width returns the horizontal extent of b.
func (b BBox) Width() float64 { return b.X1 - b.X0 }

// Height returns the vertical extent of b.
func (b BBox) Height() float64 { return b.Bottom - b.Top }

// Center returns the midpoint of b.
func (b BBox) Center() Point {
	return Point{(b.X0 + b.X1) / 2, (b.Top + b.Bottom) / 2}
}

// IsEmpty reports whether b has zero or negative area.
func (b BBox) IsEmpty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

// Union returns the smallest BBox containing both b and o.
func (b BBox) Union(o BBox) BBox {
	if b.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return b
	}
	return BBox{
		X0:     math.Min(b.X0, o.X0),
		Top:    math.Min(b.Top, o.Top),
		X1:     math.Max(b.X1, o.X1),
		Bottom: math.Max(b.Bottom, o.Bottom),
	}
}

// Intersection returns the overlap of b and o. The result is empty (width
// or height <= 0) if the boxes do not overlap.
func (b BBox) Intersection(o BBox) BBox {
	return BBox{
		X0:     math.Max(b.X0, o.X0),
		Top:    math.Max(b.Top, o.Top),
		X1:     math.Min(b.X1, o.X1),
		Bottom: math.Min(b.Bottom, o.Bottom),
	}
}

// Overlaps reports whether b and o share any area.
func (b BBox) Overlaps(o BBox) bool {
	return !b.Intersection(o).IsEmpty()
}

// Contains reports whether o lies entirely within b.
func (b BBox) Contains(o BBox) bool {
	return o.X0 >= b.X0 && o.X1 <= b.X1 && o.Top >= b.Top && o.Bottom <= b.Bottom
}

// ContainsPoint reports whether p lies within b, inclusive on the min
// edges and exclusive on the max edges (used for cell attribution so a
// point on a shared boundary belongs to exactly one cell).
func (b BBox) ContainsPoint(p Point) bool {
	return p.X >= b.X0 && p.X < b.X1 && p.Y >= b.Top && p.Y < b.Bottom
}

// Translate shifts b by (dx, dy).
func (b BBox) Translate(dx, dy float64) BBox {
	return BBox{b.X0 + dx, b.Top + dy, b.X1 + dx, b.Bottom + dy}
}

// FlipY mirrors y within a page of the given height, converting between
// the PDF's bottom-left origin and the display's top-left origin.
// FlipY(FlipY(y, h), h) == y for all y, h.
func FlipY(y, height float64) float64 {
	return height - y
}
