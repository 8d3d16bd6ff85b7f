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

// Package document implements the document coordinator (C19): it opens a
// PDF through the backend, lazily builds page coordinators with the right
// cumulative doctop offset, and layers whole-document operations (metadata,
// search, header/footer detection) on top of them.
package document

import (
	"regexp"
	"strings"

	"github.com/pdfplumber-go/pdfplumber/backend"
	"github.com/pdfplumber-go/pdfplumber/geom"
	"github.com/pdfplumber-go/pdfplumber/page"
	"github.com/pdfplumber-go/pdfplumber/pderr"
	"github.com/pdfplumber-go/pdfplumber/words"
)

// Document is an open PDF, exposing page-level and whole-document views.
// Pages are built lazily and cached: doctop continuity (see Page) requires
// every preceding page's display height, so a page that is never requested
// is never parsed.
type Document struct {
	backend backend.Document
	pages   []*page.Page // 1-indexed via pages[n-1]
}

// Open opens the PDF file at path using openFunc (ordinarily
// backend/pdfcpu.Open), decrypting it with password if set.
func Open(path, password string, openFunc backend.OpenFunc) (*Document, error) {
	bd, err := openFunc(path, password)
	if err != nil {
		return nil, err
	}
	return &Document{backend: bd, pages: make([]*page.Page, bd.PageCount())}, nil
}

// Close releases the underlying backend document.
func (d *Document) Close() error { return d.backend.Close() }

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int { return d.backend.PageCount() }

// Metadata returns the document's /Info dictionary entries.
func (d *Document) Metadata() backend.Metadata { return d.backend.Metadata() }

// Page returns the 1-indexed page n, building it (and every page before it,
// if not already cached) so its doctop offset reflects the true cumulative
// height of all preceding pages.
func (d *Document) Page(n int) (*page.Page, error) {
	if n < 1 || n > d.PageCount() {
		return nil, pderr.Newf(pderr.KindPage, "page %d out of range (1..%d)", n, d.PageCount())
	}
	if d.pages[n-1] != nil {
		return d.pages[n-1], nil
	}
	offset, err := d.docTopOffset(n)
	if err != nil {
		return nil, err
	}
	bp, err := d.backend.Page(n)
	if err != nil {
		return nil, err
	}
	p := page.New(bp, offset)
	d.pages[n-1] = p
	return p, nil
}

// docTopOffset sums the display-space heights of every page before n,
// building them along the way. Heights come from each page's DisplayBBox,
// which is known from MediaBox/CropBox/Rotation alone and needs no content
// parsing.
func (d *Document) docTopOffset(n int) (float64, error) {
	var sum float64
	for i := 1; i < n; i++ {
		p, err := d.Page(i)
		if err != nil {
			return 0, err
		}
		sum += p.DisplayBBox.Height()
	}
	return sum, nil
}

// SearchOptions configures Document.SearchAll.
type SearchOptions struct {
	Regex         bool
	CaseSensitive bool
	Words         words.Options
}

// Match is one search hit: the page it was found on, the text that
// matched, and the union bbox of every word the match overlaps.
type Match struct {
	Page int
	Text string
	BBox geom.BBox
}

// SearchAll extracts words on every page and runs a substring or regular
// expression search over each page's word-joined text, in page order.
func (d *Document) SearchAll(query string, opts SearchOptions) ([]Match, error) {
	var re *regexp.Regexp
	if opts.Regex {
		pattern := query
		if !opts.CaseSensitive {
			pattern = "(?i)" + pattern
		}
		compiled, err := regexp.Compile(pattern)
		if err != nil {
			return nil, err
		}
		re = compiled
	}

	var out []Match
	for n := 1; n <= d.PageCount(); n++ {
		p, err := d.Page(n)
		if err != nil {
			return nil, err
		}
		ws, err := p.ExtractWords(opts.Words)
		if err != nil {
			return nil, err
		}
		text, spans := joinWordsWithSpans(ws)

		var ranges [][2]int
		if re != nil {
			ranges = re.FindAllStringIndex(text, -1)
		} else {
			ranges = findAllSubstring(text, query, opts.CaseSensitive)
		}

		for _, r := range ranges {
			overlapping := wordsOverlapping(spans, r[0], r[1])
			if len(overlapping) == 0 {
				continue
			}
			box := overlapping[0].BBox
			for _, w := range overlapping[1:] {
				box = box.Union(w.BBox)
			}
			out = append(out, Match{Page: n, Text: text[r[0]:r[1]], BBox: box})
		}
	}
	return out, nil
}

type wordSpan struct {
	word       page.Word
	start, end int
}

// joinWordsWithSpans joins words with single spaces and records the
// [start,end) byte range each word occupies in the joined text, so a match
// range can be mapped back to the words it overlaps.
func joinWordsWithSpans(ws []page.Word) (string, []wordSpan) {
	var b strings.Builder
	spans := make([]wordSpan, len(ws))
	for i, w := range ws {
		if i > 0 {
			b.WriteByte(' ')
		}
		start := b.Len()
		b.WriteString(w.Text)
		spans[i] = wordSpan{word: w, start: start, end: b.Len()}
	}
	return b.String(), spans
}

func wordsOverlapping(spans []wordSpan, start, end int) []page.Word {
	var out []page.Word
	for _, s := range spans {
		if s.start < end && s.end > start {
			out = append(out, s.word)
		}
	}
	return out
}

func findAllSubstring(text, query string, caseSensitive bool) [][2]int {
	if query == "" {
		return nil
	}
	hay, needle := text, query
	if !caseSensitive {
		hay, needle = strings.ToLower(text), strings.ToLower(query)
	}
	var out [][2]int
	pos := 0
	for {
		idx := strings.Index(hay[pos:], needle)
		if idx < 0 {
			break
		}
		start := pos + idx
		end := start + len(needle)
		out = append(out, [2]int{start, end})
		pos = end
	}
	return out
}

// PageRegionOptions configures Document.DetectPageRegions.
type PageRegionOptions struct {
	HeaderMargin float64
	FooterMargin float64
	MinPages     int
}

func (o PageRegionOptions) resolve() PageRegionOptions {
	if o.HeaderMargin == 0 {
		o.HeaderMargin = 0.1
	}
	if o.FooterMargin == 0 {
		o.FooterMargin = 0.1
	}
	if o.MinPages == 0 {
		o.MinPages = 3
	}
	return o
}

// PageRegions reports the header/footer/body split detected for one page.
// Header and Footer are nil when no repeating band was found there.
type PageRegions struct {
	Header *geom.BBox
	Footer *geom.BBox
	Body   geom.BBox
}

var digitRun = regexp.MustCompile(`[0-9]+`)

func maskDigits(s string) string { return digitRun.ReplaceAllString(s, "#") }

// DetectPageRegions looks for a header band and a footer band that repeat
// across the document (either on every page, or alternating between
// odd/even pages), after masking out digit runs so page numbers don't
// defeat the match. Fewer than opts.MinPages pages always reports no
// header or footer, with Body equal to each page's full display bbox.
func (d *Document) DetectPageRegions(opts PageRegionOptions) ([]PageRegions, error) {
	opts = opts.resolve()
	n := d.PageCount()
	out := make([]PageRegions, n)

	if n < opts.MinPages {
		for i := 0; i < n; i++ {
			p, err := d.Page(i + 1)
			if err != nil {
				return nil, err
			}
			out[i] = PageRegions{Body: p.DisplayBBox}
		}
		return out, nil
	}

	headerBoxes := make([]geom.BBox, n)
	footerBoxes := make([]geom.BBox, n)
	headerText := make([]string, n)
	footerText := make([]string, n)

	for i := 0; i < n; i++ {
		p, err := d.Page(i + 1)
		if err != nil {
			return nil, err
		}
		box := p.DisplayBBox
		h := box.Height()
		headerBoxes[i] = geom.BBox{X0: box.X0, Top: box.Top, X1: box.X1, Bottom: box.Top + h*opts.HeaderMargin}
		footerBoxes[i] = geom.BBox{X0: box.X0, Top: box.Bottom - h*opts.FooterMargin, X1: box.X1, Bottom: box.Bottom}

		ht, err := regionText(p, headerBoxes[i])
		if err != nil {
			return nil, err
		}
		ft, err := regionText(p, footerBoxes[i])
		if err != nil {
			return nil, err
		}
		headerText[i] = maskDigits(ht)
		footerText[i] = maskDigits(ft)
	}

	headerRepeats := repeatingBand(headerText, opts.MinPages)
	footerRepeats := repeatingBand(footerText, opts.MinPages)

	for i := 0; i < n; i++ {
		p, err := d.Page(i + 1)
		if err != nil {
			return nil, err
		}
		pr := PageRegions{Body: p.DisplayBBox}
		if headerRepeats[i] {
			box := headerBoxes[i]
			pr.Header = &box
			pr.Body.Top = box.Bottom
		}
		if footerRepeats[i] {
			box := footerBoxes[i]
			pr.Footer = &box
			pr.Body.Bottom = box.Top
		}
		out[i] = pr
	}
	return out, nil
}

// regionText extracts the flowed text of one band of a page by filtering to
// it first; WithinBBox keeps only glyphs that lie entirely inside the band.
func regionText(p *page.Page, band geom.BBox) (string, error) {
	cropped, err := p.WithinBBox(band)
	if err != nil {
		return "", err
	}
	return cropped.ExtractText(page.TextOptions{})
}

// repeatingBand marks which pages' masked band text is a "repeating"
// header/footer: either the same text appears on at least minPages pages
// overall (uniform repetition), or it does so within the odd-indexed or
// even-indexed subsequence alone (alternating repetition, e.g. facing
// pages with the title on the left page and the chapter on the right).
func repeatingBand(texts []string, minPages int) []bool {
	out := make([]bool, len(texts))

	uniform := frequencies(texts, nil)
	for i, t := range texts {
		if t != "" && uniform[t] >= minPages {
			out[i] = true
		}
	}

	var odd, even []int
	for i := range texts {
		if i%2 == 0 {
			even = append(even, i)
		} else {
			odd = append(odd, i)
		}
	}
	markAlternating(texts, even, minPages, out)
	markAlternating(texts, odd, minPages, out)

	return out
}

func markAlternating(texts []string, indices []int, minPages int, out []bool) {
	freq := frequencies(texts, indices)
	for _, i := range indices {
		if texts[i] != "" && freq[texts[i]] >= minPages {
			out[i] = true
		}
	}
}

// frequencies counts non-empty text frequency over indices, or over every
// element of texts when indices is nil.
func frequencies(texts []string, indices []int) map[string]int {
	freq := make(map[string]int)
	if indices == nil {
		for _, t := range texts {
			if t != "" {
				freq[t]++
			}
		}
		return freq
	}
	for _, i := range indices {
		if t := texts[i]; t != "" {
			freq[t]++
		}
	}
	return freq
}
