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

// Package edges unifies Lines, Rects, and Curves into the single Edge
// representation table detection operates on.
package edges

import "github.com/pdfplumber-go/pdfplumber/shapes"

// Source identifies which shape (and which side of it) an Edge came from.
type Source int

const (
	SourceLine Source = iota
	SourceRectTop
	SourceRectBottom
	SourceRectLeft
	SourceRectRight
	SourceCurve
	SourceStream
)

// Edge is a unified horizontal, vertical, or diagonal segment used by table
// detection, regardless of whether it originated as a stroked line, a
// rectangle's side, a curve's chord, or a synthetic edge from the stream
// strategy's word-alignment statistics.
type Edge struct {
	X0, Top, X1, Bottom float64
	Orientation         shapes.Orientation
	Source              Source
}

// FromShapes enumerates every edge implied by lines, rects, and curves: one
// per Line, four per Rect (tagged top/bottom/left/right, in that order),
// and one chord per Curve. This guarantees exactly 4*len(rects) rect-sourced
// edges, the property spec.md §8 invariant 8 tests.
func FromShapes(lines []shapes.Line, rects []shapes.Rect, curves []shapes.Curve) []Edge {
	out := make([]Edge, 0, len(lines)+4*len(rects)+len(curves))
	for _, l := range lines {
		out = append(out, Edge{X0: l.X0, Top: l.Top, X1: l.X1, Bottom: l.Bottom, Orientation: l.Orientation, Source: SourceLine})
	}
	for _, r := range rects {
		b := r.BBox
		out = append(out,
			Edge{X0: b.X0, Top: b.Top, X1: b.X1, Bottom: b.Top, Orientation: shapes.Horizontal, Source: SourceRectTop},
			Edge{X0: b.X0, Top: b.Bottom, X1: b.X1, Bottom: b.Bottom, Orientation: shapes.Horizontal, Source: SourceRectBottom},
			Edge{X0: b.X0, Top: b.Top, X1: b.X0, Bottom: b.Bottom, Orientation: shapes.Vertical, Source: SourceRectLeft},
			Edge{X0: b.X1, Top: b.Top, X1: b.X1, Bottom: b.Bottom, Orientation: shapes.Vertical, Source: SourceRectRight},
		)
	}
	for _, c := range curves {
		if len(c.Points) == 0 {
			continue
		}
		start := c.Points[0]
		end := c.Points[len(c.Points)-1]
		out = append(out, Edge{X0: start.X, Top: start.Y, X1: end.X, Bottom: end.Y, Orientation: c.Orientation, Source: SourceCurve})
	}
	return out
}

// Length returns an edge's extent along its dominant axis.
func (e Edge) Length() float64 {
	switch e.Orientation {
	case shapes.Horizontal:
		return abs(e.X1 - e.X0)
	case shapes.Vertical:
		return abs(e.Bottom - e.Top)
	default:
		return abs(e.X1-e.X0) + abs(e.Bottom-e.Top)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
