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

// Package words groups a page's Chars into Words by adjacency: whitespace
// always splits, and a gap exceeding the configured tolerance on either
// the primary (reading) or secondary axis starts a new word. It takes a
// minimal, page-independent Char view (Text/BBox/Direction plus the
// caller's original index) so the page package — which needs to call into
// here for extract_words — doesn't create an import cycle with a package
// that needs page's own Char type.
package words

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/pdfplumber-go/pdfplumber/geom"
)

// UnicodeNormForm selects a Unicode normalization form applied to a word's
// concatenated Text (spec.md §4 ExtractOptions.unicode_norm).
type UnicodeNormForm int

const (
	NormNone UnicodeNormForm = iota
	NFC
	NFKC
	NFD
	NFKD
)

func (f UnicodeNormForm) form() (norm.Form, bool) {
	switch f {
	case NFC:
		return norm.NFC, true
	case NFKC:
		return norm.NFKC, true
	case NFD:
		return norm.NFD, true
	case NFKD:
		return norm.NFKD, true
	default:
		return norm.NFC, false
	}
}

// Direction mirrors page.Direction's values exactly (Ltr, Rtl, Ttb, Btt in
// the same order) so callers can convert with a plain type cast.
type Direction int

const (
	Ltr Direction = iota
	Rtl
	Ttb
	Btt
)

// Char is the minimal view of a positioned glyph this package needs.
// Index carries the caller's original slice position through sorting and
// grouping, so a Word can report which source chars it was built from
// without this package knowing their full type.
type Char struct {
	Text      string
	BBox      geom.BBox
	Direction Direction
	Index     int
}

// Word is a maximal run of adjacent Chars with no intervening whitespace
// or oversized gap.
type Word struct {
	Text      string
	BBox      geom.BBox
	Direction Direction
	Chars     []int // indices into the caller's original Char slice
}

// Options configures word extraction (spec.md §4.5).
type Options struct {
	XTolerance     float64
	YTolerance     float64
	KeepBlankChars bool
	UseTextFlow    bool
	// TextDirection overrides the direction used to choose a sort and gap
	// axis for the whole input. Nil infers it from the most common
	// Direction among the chars.
	TextDirection *Direction
	// UnicodeNorm normalizes each Word's Text before it's returned.
	// Per-char Text is left untouched, so Word.chars concatenated may
	// differ from Word.Text when normalization changes rune arity
	// (spec.md §4 invariant 2's documented exception).
	UnicodeNorm UnicodeNormForm
}

// Default tolerances (spec.md §4.5) applied whenever an Options value
// leaves XTolerance/YTolerance at zero.
const (
	DefaultXTolerance = 3.0
	DefaultYTolerance = 3.0
)

// Resolve returns opts with zero-valued tolerances replaced by the package
// defaults, the same substitution Extract applies internally. Callers that
// need to reproduce Extract's effective tolerances outside this package
// (e.g. to decide on a line break) should call this instead of
// special-casing zero themselves.
func (opts Options) Resolve() Options {
	if opts.XTolerance == 0 {
		opts.XTolerance = DefaultXTolerance
	}
	if opts.YTolerance == 0 {
		opts.YTolerance = DefaultYTolerance
	}
	return opts
}

// Extract groups chars into words per spec.md §4.5.
func Extract(chars []Char, opts Options) []Word {
	if len(chars) == 0 {
		return nil
	}
	opts = opts.Resolve()
	xTol := opts.XTolerance
	yTol := opts.YTolerance

	ordered := chars
	if !opts.UseTextFlow {
		ordered = append([]Char(nil), chars...)
		dir := dominantDirection(chars, opts.TextDirection)
		ax := axisFor(dir)
		sort.SliceStable(ordered, func(i, j int) bool {
			ai, bi := ax.sortKey(ordered[i])
			aj, bj := ax.sortKey(ordered[j])
			if ai != aj {
				return ai < aj
			}
			return bi < bj
		})
	}

	form, normalize := opts.UnicodeNorm.form()

	var out []Word
	var cur []Char
	flush := func() {
		if len(cur) == 0 {
			return
		}
		w := buildWord(cur)
		if normalize {
			w.Text = form.String(w.Text)
		}
		out = append(out, w)
		cur = nil
	}

	for _, c := range ordered {
		if strings.TrimSpace(c.Text) == "" {
			if !opts.KeepBlankChars {
				flush()
				continue
			}
		}
		if len(cur) == 0 {
			cur = append(cur, c)
			continue
		}
		prev := cur[len(cur)-1]
		ax := axisFor(c.Direction)
		primaryTol, secondaryTol := tolerancesFor(c.Direction, xTol, yTol)
		if isCJK(prev.Text) || isCJK(c.Text) {
			if extent := ax.cjkExtent(prev); extent > primaryTol {
				primaryTol = extent
			}
		}
		if ax.primaryGap(prev, c) > primaryTol || ax.secondaryDrift(prev, c) > secondaryTol {
			flush()
		}
		cur = append(cur, c)
	}
	flush()
	return out
}

func buildWord(cur []Char) Word {
	w := Word{Direction: cur[0].Direction}
	var box geom.BBox
	var text strings.Builder
	for i, c := range cur {
		text.WriteString(c.Text)
		w.Chars = append(w.Chars, c.Index)
		if i == 0 {
			box = c.BBox
			continue
		}
		box = box.Union(c.BBox)
	}
	w.Text = text.String()
	w.BBox = box
	return w
}

// axis abstracts the direction-dependent sort key and gap/drift
// computation: for horizontal text (Ltr/Rtl) the reading (primary) axis
// is x and the line (secondary) axis is y; for vertical text (Ttb/Btt)
// the roles swap.
type axis struct {
	sortKey        func(Char) (float64, float64)
	primaryGap     func(prev, cur Char) float64
	secondaryDrift func(prev, cur Char) float64
	cjkExtent      func(Char) float64
}

func axisFor(d Direction) axis {
	switch d {
	case Ttb:
		return axis{
			sortKey:        func(c Char) (float64, float64) { return -c.BBox.X0, c.BBox.Top },
			primaryGap:     func(prev, cur Char) float64 { return cur.BBox.Top - prev.BBox.Bottom },
			secondaryDrift: func(prev, cur Char) float64 { return absf(cur.BBox.X0 - prev.BBox.X0) },
			cjkExtent:      func(c Char) float64 { return c.BBox.Height() },
		}
	case Btt:
		return axis{
			sortKey:        func(c Char) (float64, float64) { return -c.BBox.X0, -c.BBox.Bottom },
			primaryGap:     func(prev, cur Char) float64 { return prev.BBox.Top - cur.BBox.Bottom },
			secondaryDrift: func(prev, cur Char) float64 { return absf(cur.BBox.X0 - prev.BBox.X0) },
			cjkExtent:      func(c Char) float64 { return c.BBox.Height() },
		}
	default: // Ltr, Rtl
		return axis{
			sortKey:        func(c Char) (float64, float64) { return c.BBox.Top, c.BBox.X0 },
			primaryGap:     func(prev, cur Char) float64 { return cur.BBox.X0 - prev.BBox.X1 },
			secondaryDrift: func(prev, cur Char) float64 { return absf(cur.BBox.Top - prev.BBox.Top) },
			cjkExtent:      func(c Char) float64 { return c.BBox.Width() },
		}
	}
}

func tolerancesFor(d Direction, xTol, yTol float64) (primary, secondary float64) {
	switch d {
	case Ttb, Btt:
		return yTol, xTol
	default:
		return xTol, yTol
	}
}

func dominantDirection(chars []Char, override *Direction) Direction {
	if override != nil {
		return *override
	}
	counts := map[Direction]int{}
	for _, c := range chars {
		counts[c.Direction]++
	}
	best, bestCount := Ltr, -1
	for d, n := range counts {
		if n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}

// isCJK reports whether s's first rune belongs to a CJK script, per
// spec.md §4.5's tolerance-promotion rule for densely-set CJK glyphs.
func isCJK(s string) bool {
	for _, r := range s {
		return unicode.Is(unicode.Han, r) || unicode.Is(unicode.Hiragana, r) ||
			unicode.Is(unicode.Katakana, r) || unicode.Is(unicode.Hangul, r)
	}
	return false
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
