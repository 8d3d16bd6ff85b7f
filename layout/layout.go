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

// Package layout clusters a page's Words into Lines and Blocks and renders
// them back to text two ways: a plain flow rendering and a layout-preserving
// rendering that approximates each word's original horizontal position with
// proportional spacing (spec.md §4.6). Like words, it takes a minimal,
// page-independent Word view so page (which calls into here for
// extract_text's layout mode) doesn't create an import cycle.
package layout

import (
	"math"
	"sort"
	"strings"

	"github.com/pdfplumber-go/pdfplumber/geom"
)

// Word is the minimal view of a positioned word this package needs.
type Word struct {
	Text string
	BBox geom.BBox
}

// Line is a maximal run of Words sharing a text line.
type Line struct {
	Words []Word
	BBox  geom.BBox
}

// Block is a vertically contiguous run of Lines, e.g. one paragraph or one
// column of a multi-column layout.
type Block struct {
	Lines []Line
	BBox  geom.BBox
}

// ClusterWordsIntoLines groups words into Lines: each word attaches to an
// existing line if its vertical midpoint falls within yTolerance of that
// line's running mean midpoint, else starts a new line (spec.md §4.6).
func ClusterWordsIntoLines(words []Word, yTolerance float64) []Line {
	sorted := append([]Word(nil), words...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].BBox.Top < sorted[j].BBox.Top })

	type building struct {
		words  []Word
		sumMid float64
		box    geom.BBox
	}
	var lines []*building
	for _, w := range sorted {
		mid := (w.BBox.Top + w.BBox.Bottom) / 2
		var best *building
		for _, l := range lines {
			mean := l.sumMid / float64(len(l.words))
			if math.Abs(mid-mean) <= yTolerance {
				best = l
				break
			}
		}
		if best == nil {
			best = &building{}
			lines = append(lines, best)
		}
		best.words = append(best.words, w)
		best.sumMid += mid
		if len(best.words) == 1 {
			best.box = w.BBox
		} else {
			best.box = best.box.Union(w.BBox)
		}
	}

	out := make([]Line, len(lines))
	for i, l := range lines {
		sort.SliceStable(l.words, func(a, b int) bool { return l.words[a].BBox.X0 < l.words[b].BBox.X0 })
		out[i] = Line{Words: l.words, BBox: l.box}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].BBox.Top < out[j].BBox.Top })
	return out
}

// SplitLinesAtColumns splits each line wherever the gap between adjacent
// words exceeds xDensity, turning one physical text line spanning several
// columns into one Line per column (spec.md §4.6).
func SplitLinesAtColumns(lines []Line, xDensity float64) []Line {
	var out []Line
	for _, l := range lines {
		if len(l.Words) == 0 {
			continue
		}
		cur := []Word{l.Words[0]}
		box := l.Words[0].BBox
		flush := func() { out = append(out, Line{Words: cur, BBox: box}) }
		for i := 1; i < len(l.Words); i++ {
			prev := cur[len(cur)-1]
			w := l.Words[i]
			if w.BBox.X0-prev.BBox.X1 > xDensity {
				flush()
				cur = []Word{w}
				box = w.BBox
				continue
			}
			cur = append(cur, w)
			box = box.Union(w.BBox)
		}
		flush()
	}
	return out
}

// ClusterLinesIntoBlocks joins vertically adjacent lines (gap ≤ yDensity)
// into rectangular Blocks (spec.md §4.6).
func ClusterLinesIntoBlocks(lines []Line, yDensity float64) []Block {
	sorted := append([]Line(nil), lines...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].BBox.Top < sorted[j].BBox.Top })

	var blocks []Block
	for _, l := range sorted {
		if len(blocks) > 0 {
			last := &blocks[len(blocks)-1]
			if l.BBox.Top-last.BBox.Bottom <= yDensity {
				last.Lines = append(last.Lines, l)
				last.BBox = last.BBox.Union(l.BBox)
				continue
			}
		}
		blocks = append(blocks, Block{Lines: []Line{l}, BBox: l.BBox})
	}
	return blocks
}

// SortBlocksReadingOrder orders blocks primarily by a left-edge column
// bucketed to the nearest xDensity, then by top within a column — the
// multi-column reading order spec.md §4.6 describes.
func SortBlocksReadingOrder(blocks []Block, xDensity float64) []Block {
	out := append([]Block(nil), blocks...)
	bucket := func(b Block) float64 {
		if xDensity <= 0 {
			return b.BBox.X0
		}
		return math.Floor(b.BBox.X0 / xDensity)
	}
	sort.SliceStable(out, func(i, j int) bool {
		bi, bj := bucket(out[i]), bucket(out[j])
		if bi != bj {
			return bi < bj
		}
		return out[i].BBox.Top < out[j].BBox.Top
	})
	return out
}

// RenderFlow joins words with a single space, inserting a newline whenever
// consecutive words' vertical gap exceeds yTolerance (spec.md §4.6).
func RenderFlow(words []Word, yTolerance float64) string {
	if len(words) == 0 {
		return ""
	}
	sorted := append([]Word(nil), words...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].BBox.Top != sorted[j].BBox.Top {
			return sorted[i].BBox.Top < sorted[j].BBox.Top
		}
		return sorted[i].BBox.X0 < sorted[j].BBox.X0
	})
	var b strings.Builder
	lineTop := sorted[0].BBox.Top
	for i, w := range sorted {
		if i > 0 {
			if w.BBox.Top > lineTop+yTolerance {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString(w.Text)
		lineTop = w.BBox.Top
	}
	return b.String()
}

// RenderOptions configures RenderLayout.
type RenderOptions struct {
	YTolerance float64 // line clustering tolerance
	XDensity   float64 // column/block-break gap threshold
	YDensity   float64 // block-join gap threshold
	CharWidth  float64 // average glyph advance width, for gap-to-spaces conversion
}

// RenderLayout renders words preserving their approximate original
// position: within each line, words are separated by round(gap/CharWidth)
// spaces; blocks are separated by a number of blank lines proportional to
// their vertical gap (spec.md §4.6).
func RenderLayout(words []Word, opts RenderOptions) string {
	if len(words) == 0 {
		return ""
	}
	charWidth := opts.CharWidth
	if charWidth <= 0 {
		charWidth = 1
	}
	lines := SplitLinesAtColumns(ClusterWordsIntoLines(words, opts.YTolerance), opts.XDensity)
	blocks := SortBlocksReadingOrder(ClusterLinesIntoBlocks(lines, opts.YDensity), opts.XDensity)

	var b strings.Builder
	var prevBottom float64
	for bi, blk := range blocks {
		if bi > 0 {
			if lh := averageLineHeight(blk); lh > 0 {
				if blank := int(math.Round((blk.BBox.Top-prevBottom)/lh)) - 1; blank > 0 {
					b.WriteString(strings.Repeat("\n", blank))
				}
			}
			b.WriteByte('\n')
		}
		for li, ln := range blk.Lines {
			if li > 0 {
				b.WriteByte('\n')
			}
			renderLineLayout(&b, ln, charWidth)
		}
		prevBottom = blk.BBox.Bottom
	}
	return b.String()
}

func renderLineLayout(b *strings.Builder, ln Line, charWidth float64) {
	for i, w := range ln.Words {
		if i > 0 {
			prev := ln.Words[i-1]
			n := int(math.Round((w.BBox.X0 - prev.BBox.X1) / charWidth))
			if n < 1 {
				n = 1
			}
			b.WriteString(strings.Repeat(" ", n))
		}
		b.WriteString(w.Text)
	}
}

func averageLineHeight(blk Block) float64 {
	if len(blk.Lines) == 0 {
		return 0
	}
	var sum float64
	for _, ln := range blk.Lines {
		sum += ln.BBox.Height()
	}
	return sum / float64(len(blk.Lines))
}
