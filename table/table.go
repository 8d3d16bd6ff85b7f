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

// Package table detects tables from a page's edges and words and attributes
// text to each resulting cell (spec.md §4.7, §4.8): filter edges by
// orientation and length, snap near-identical coordinates together, join
// collinear edges, intersect horizontal against vertical edges, enumerate
// the grid cells whose four sides are all present, then assemble rows and
// columns from the cell grid.
package table

import (
	"math"
	"sort"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/pdfplumber-go/pdfplumber/edges"
	"github.com/pdfplumber-go/pdfplumber/geom"
	"github.com/pdfplumber-go/pdfplumber/layout"
	"github.com/pdfplumber-go/pdfplumber/shapes"
	"github.com/pdfplumber-go/pdfplumber/words"
)

// Strategy selects how a table's grid lines are obtained.
type Strategy int

const (
	// Lattice uses the page's own stroked/rect/curve edges directly.
	Lattice Strategy = iota
	// Stream synthesizes edges from word-alignment histograms, for tables
	// with no visible ruling lines.
	Stream
	// Explicit uses only the caller-supplied lines in Settings.
	Explicit
)

// Word is the minimal view of a positioned word this package needs for the
// stream strategy's alignment histograms.
type Word struct {
	Text string
	BBox geom.BBox
}

// Char is the minimal view of a positioned glyph this package needs for
// cell text attribution.
type Char struct {
	Text      string
	BBox      geom.BBox
	Direction words.Direction
}

// Settings configures table detection (spec.md §4.7).
type Settings struct {
	Strategy Strategy

	SnapTolerance  float64
	SnapXTolerance float64
	SnapYTolerance float64
	JoinTolerance  float64
	EdgeMinLength  float64

	MinWordsVertical   int
	MinWordsHorizontal int

	IntersectionTolerance  float64
	IntersectionXTolerance float64
	IntersectionYTolerance float64

	ExplicitVerticalLines   []edges.Edge
	ExplicitHorizontalLines []edges.Edge

	TextTolerance float64
}

func (s Settings) resolve() Settings {
	if s.SnapTolerance == 0 {
		s.SnapTolerance = 3
	}
	if s.SnapXTolerance == 0 {
		s.SnapXTolerance = s.SnapTolerance
	}
	if s.SnapYTolerance == 0 {
		s.SnapYTolerance = s.SnapTolerance
	}
	if s.JoinTolerance == 0 {
		s.JoinTolerance = 3
	}
	if s.EdgeMinLength == 0 {
		s.EdgeMinLength = 3
	}
	if s.MinWordsVertical == 0 {
		s.MinWordsVertical = 3
	}
	if s.MinWordsHorizontal == 0 {
		s.MinWordsHorizontal = 1
	}
	if s.IntersectionTolerance == 0 {
		s.IntersectionTolerance = 3
	}
	if s.IntersectionXTolerance == 0 {
		s.IntersectionXTolerance = s.IntersectionTolerance
	}
	if s.IntersectionYTolerance == 0 {
		s.IntersectionYTolerance = s.IntersectionTolerance
	}
	if s.TextTolerance == 0 {
		s.TextTolerance = 3
	}
	return s
}

// Cell is one rectangular grid cell bounded by four edges.
type Cell struct {
	BBox geom.BBox
	Text string
}

// Row is every cell sharing (within TextTolerance) the same top coordinate.
type Row struct {
	Cells []Cell
	Top   float64
}

// Column is every cell sharing (within TextTolerance) the same left
// coordinate.
type Column struct {
	Cells []Cell
	X0    float64
}

// Table is one detected table: its cells plus the row/column grouping of
// those cells.
type Table struct {
	BBox    geom.BBox
	Cells   []Cell
	Rows    []Row
	Columns []Column
}

// Find detects tables on a page and attributes text to each cell.
// pageEdges is the page's native edge set (Lines/Rects/Curves unified);
// pageWords and chars are used by the Stream strategy and cell text
// attribution respectively. At most one Table is returned: this package
// treats every cell the grid step finds as belonging to a single table,
// rather than splitting disjoint cell clusters into separate tables — a
// documented simplification (see DESIGN.md) since spec.md §4.7 doesn't
// specify multi-table-per-page disambiguation.
func Find(pageEdges []edges.Edge, pageWords []Word, chars []Char, settings Settings) []Table {
	settings = settings.resolve()

	var gridEdges []edges.Edge
	switch settings.Strategy {
	case Explicit:
		gridEdges = append(append([]edges.Edge{}, settings.ExplicitHorizontalLines...), settings.ExplicitVerticalLines...)
	case Stream:
		gridEdges = append(append([]edges.Edge{}, pageEdges...), streamEdges(pageWords, settings)...)
	default:
		gridEdges = pageEdges
	}

	cells := lattice(gridEdges, settings)
	if len(cells) == 0 {
		return nil
	}
	for i := range cells {
		cells[i].Text = AttributeText(cells[i], chars, settings.TextTolerance)
	}

	t := Table{Cells: cells}
	for i, c := range cells {
		if i == 0 {
			t.BBox = c.BBox
			continue
		}
		t.BBox = t.BBox.Union(c.BBox)
	}
	t.Rows = assembleRows(cells, settings.TextTolerance)
	t.Columns = assembleColumns(cells, settings.TextTolerance)
	return []Table{t}
}

// filter keeps horizontal and vertical edges at least minLength long,
// dropping diagonal edges: spec.md §4.18's open question on whether a
// diagonal edge can bound a cell is resolved here as "no" — a rectangular
// cell grid has no use for a non-axis-aligned side, and no retrieved
// source's table detector considers diagonals.
func filter(all []edges.Edge, minLength float64) (h, v []edges.Edge) {
	for _, e := range all {
		if e.Length() < minLength {
			continue
		}
		switch e.Orientation {
		case shapes.Horizontal:
			h = append(h, e)
		case shapes.Vertical:
			v = append(v, e)
		}
	}
	return h, v
}

// snap clusters coordinate within tol of each other and replaces them with
// the cluster mean: horizontal edges' Top/Bottom, or vertical edges' X0/X1.
func snap(es []edges.Edge, tol float64, horizontal bool) []edges.Edge {
	coord := func(e edges.Edge) float64 {
		if horizontal {
			return e.Top
		}
		return e.X0
	}
	idx := make([]int, len(es))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return coord(es[idx[a]]) < coord(es[idx[b]]) })

	out := append([]edges.Edge(nil), es...)
	i := 0
	for i < len(idx) {
		j := i
		sum := 0.0
		for j < len(idx) && coord(es[idx[j]])-coord(es[idx[i]]) <= tol {
			sum += coord(es[idx[j]])
			j++
		}
		mean := sum / float64(j-i)
		for k := i; k < j; k++ {
			e := &out[idx[k]]
			if horizontal {
				e.Top, e.Bottom = mean, mean
			} else {
				e.X0, e.X1 = mean, mean
			}
		}
		i = j
	}
	return out
}

// join merges collinear edges on the same snapped coordinate whose spans
// are within tol of overlapping or touching.
func join(es []edges.Edge, tol float64, horizontal bool) []edges.Edge {
	groups := map[float64][]edges.Edge{}
	for _, e := range es {
		key := e.Top
		if !horizontal {
			key = e.X0
		}
		groups[key] = append(groups[key], e)
	}

	var out []edges.Edge
	for key, group := range groups {
		if horizontal {
			sort.Slice(group, func(a, b int) bool { return group[a].X0 < group[b].X0 })
		} else {
			sort.Slice(group, func(a, b int) bool { return group[a].Top < group[b].Top })
		}
		cur := group[0]
		for _, e := range group[1:] {
			var gap float64
			if horizontal {
				gap = e.X0 - cur.X1
			} else {
				gap = e.Top - cur.Bottom
			}
			if gap <= tol {
				if horizontal {
					if e.X1 > cur.X1 {
						cur.X1 = e.X1
					}
				} else {
					if e.Bottom > cur.Bottom {
						cur.Bottom = e.Bottom
					}
				}
				continue
			}
			out = append(out, cur)
			cur = e
		}
		out = append(out, cur)
		_ = key
	}
	return out
}

// lattice runs filter → snap → join → grid-cell-enumeration, marking in a
// bitset which (column, row) cells of the resulting coordinate grid have
// all four bounding edges present.
func lattice(all []edges.Edge, settings Settings) []Cell {
	h, v := filter(all, settings.EdgeMinLength)
	if len(h) == 0 || len(v) == 0 {
		return nil
	}
	h = join(snap(h, settings.SnapYTolerance, true), settings.JoinTolerance, true)
	v = join(snap(v, settings.SnapXTolerance, false), settings.JoinTolerance, false)

	xs := distinctSorted(v, false)
	ys := distinctSorted(h, true)
	if len(xs) < 2 || len(ys) < 2 {
		return nil
	}

	nCols, nRows := len(xs)-1, len(ys)-1
	grid := bitset.New(uint(nCols * nRows))
	idx := func(col, row int) uint { return uint(row*nCols + col) }

	var cells []Cell
	for row := 0; row < nRows; row++ {
		y0, y1 := ys[row], ys[row+1]
		for col := 0; col < nCols; col++ {
			x0, x1 := xs[col], xs[col+1]
			if hasHorizontal(h, x0, x1, y0, settings) && hasHorizontal(h, x0, x1, y1, settings) &&
				hasVertical(v, y0, y1, x0, settings) && hasVertical(v, y0, y1, x1, settings) {
				grid.Set(idx(col, row))
				cells = append(cells, Cell{BBox: geom.BBox{X0: x0, Top: y0, X1: x1, Bottom: y1}})
			}
		}
	}
	return cells
}

func hasHorizontal(h []edges.Edge, x0, x1, y float64, settings Settings) bool {
	for _, e := range h {
		if math.Abs(e.Top-y) > settings.IntersectionYTolerance {
			continue
		}
		if e.X0 <= x0+settings.IntersectionXTolerance && e.X1 >= x1-settings.IntersectionXTolerance {
			return true
		}
	}
	return false
}

func hasVertical(v []edges.Edge, y0, y1, x float64, settings Settings) bool {
	for _, e := range v {
		if math.Abs(e.X0-x) > settings.IntersectionXTolerance {
			continue
		}
		if e.Top <= y0+settings.IntersectionYTolerance && e.Bottom >= y1-settings.IntersectionYTolerance {
			return true
		}
	}
	return false
}

func distinctSorted(es []edges.Edge, horizontal bool) []float64 {
	seen := map[float64]bool{}
	var out []float64
	for _, e := range es {
		v := e.X0
		if horizontal {
			v = e.Top
		}
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Float64s(out)
	return out
}

// streamEdges synthesizes vertical edges from a histogram of word left/
// right x-coordinates (peaks with at least MinWordsVertical words) and
// horizontal edges from a histogram of word top coordinates (peaks with
// at least MinWordsHorizontal words), per spec.md §4.7's stream strategy.
func streamEdges(ws []Word, settings Settings) []edges.Edge {
	if len(ws) == 0 {
		return nil
	}
	bbox := ws[0].BBox
	var xs, tops []float64
	for _, w := range ws {
		bbox = bbox.Union(w.BBox)
		xs = append(xs, w.BBox.X0, w.BBox.X1)
		tops = append(tops, w.BBox.Top)
	}

	var out []edges.Edge
	for _, x := range histogramPeaks(xs, settings.SnapXTolerance, settings.MinWordsVertical) {
		out = append(out, edges.Edge{X0: x, Top: bbox.Top, X1: x, Bottom: bbox.Bottom, Orientation: shapes.Vertical, Source: edges.SourceStream})
	}
	for _, y := range histogramPeaks(tops, settings.SnapYTolerance, settings.MinWordsHorizontal) {
		out = append(out, edges.Edge{X0: bbox.X0, Top: y, X1: bbox.X1, Bottom: y, Orientation: shapes.Horizontal, Source: edges.SourceStream})
	}
	return out
}

func histogramPeaks(values []float64, tol float64, minCount int) []float64 {
	if len(values) == 0 {
		return nil
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	var peaks []float64
	i := 0
	for i < len(sorted) {
		j := i
		sum := 0.0
		for j < len(sorted) && sorted[j]-sorted[i] <= tol {
			sum += sorted[j]
			j++
		}
		if j-i >= minCount {
			peaks = append(peaks, sum/float64(j-i))
		}
		i = j
	}
	return peaks
}

// AttributeText selects chars whose centroid lies within cell's bbox
// (inclusive on the min edges, exclusive on the max, per spec.md §4.8),
// extracts words from them, and joins the words into text.
func AttributeText(cell Cell, chars []Char, textTolerance float64) string {
	var in []words.Char
	for i, c := range chars {
		center := c.BBox.Center()
		if center.X >= cell.BBox.X0 && center.X < cell.BBox.X1 &&
			center.Y >= cell.BBox.Top && center.Y < cell.BBox.Bottom {
			in = append(in, words.Char{Text: c.Text, BBox: c.BBox, Direction: c.Direction, Index: i})
		}
	}
	if len(in) == 0 {
		return ""
	}
	ws := words.Extract(in, words.Options{XTolerance: textTolerance, YTolerance: textTolerance})
	lw := make([]layout.Word, len(ws))
	for i, w := range ws {
		lw[i] = layout.Word{Text: w.Text, BBox: w.BBox}
	}
	return strings.TrimRight(layout.RenderFlow(lw, textTolerance), "\n")
}

func assembleRows(cells []Cell, tol float64) []Row {
	groups := clusterBy(cells, tol, func(c Cell) float64 { return c.BBox.Top })
	rows := make([]Row, 0, len(groups))
	for top, cs := range groups {
		sort.Slice(cs, func(i, j int) bool { return cs[i].BBox.X0 < cs[j].BBox.X0 })
		rows = append(rows, Row{Cells: cs, Top: top})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Top < rows[j].Top })
	return rows
}

func assembleColumns(cells []Cell, tol float64) []Column {
	groups := clusterBy(cells, tol, func(c Cell) float64 { return c.BBox.X0 })
	cols := make([]Column, 0, len(groups))
	for x0, cs := range groups {
		sort.Slice(cs, func(i, j int) bool { return cs[i].BBox.Top < cs[j].BBox.Top })
		cols = append(cols, Column{Cells: cs, X0: x0})
	}
	sort.Slice(cols, func(i, j int) bool { return cols[i].X0 < cols[j].X0 })
	return cols
}

// clusterBy groups cells whose key(c) values fall within tol of each
// other, keyed by the cluster's mean.
func clusterBy(cells []Cell, tol float64, key func(Cell) float64) map[float64][]Cell {
	idx := make([]int, len(cells))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return key(cells[idx[a]]) < key(cells[idx[b]]) })

	out := map[float64][]Cell{}
	i := 0
	for i < len(idx) {
		j := i
		sum := 0.0
		for j < len(idx) && key(cells[idx[j]])-key(cells[idx[i]]) <= tol {
			sum += key(cells[idx[j]])
			j++
		}
		mean := sum / float64(j-i)
		for k := i; k < j; k++ {
			out[mean] = append(out[mean], cells[idx[k]])
		}
		i = j
	}
	return out
}
