package words

import (
	"testing"

	"github.com/pdfplumber-go/pdfplumber/geom"
)

func charAt(text string, x0, top, x1, bottom float64) Char {
	return Char{Text: text, BBox: geom.BBox{X0: x0, Top: top, X1: x1, Bottom: bottom}, Direction: Ltr}
}

func TestExtractSplitsOnWhitespace(t *testing.T) {
	chars := []Char{
		charAt("H", 0, 0, 5, 10),
		charAt("e", 5, 0, 10, 10),
		charAt("l", 10, 0, 13, 10),
		charAt("l", 13, 0, 16, 10),
		charAt("o", 16, 0, 21, 10),
		charAt(" ", 21, 0, 24, 10),
		charAt("W", 24, 0, 30, 10),
		charAt("o", 30, 0, 35, 10),
		charAt("r", 35, 0, 38, 10),
		charAt("l", 38, 0, 41, 10),
		charAt("d", 41, 0, 46, 10),
	}
	for i := range chars {
		chars[i].Index = i
	}
	got := Extract(chars, Options{})
	if len(got) != 2 {
		t.Fatalf("got %d words, want 2", len(got))
	}
	if got[0].Text != "Hello" || got[1].Text != "World" {
		t.Errorf("got %q / %q, want Hello / World", got[0].Text, got[1].Text)
	}
}

func TestExtractSplitsOnOversizedGap(t *testing.T) {
	chars := []Char{
		charAt("A", 0, 0, 5, 10),
		charAt("B", 50, 0, 55, 10),
	}
	for i := range chars {
		chars[i].Index = i
	}
	got := Extract(chars, Options{XTolerance: 3})
	if len(got) != 2 {
		t.Fatalf("got %d words, want 2 (gap should split)", len(got))
	}
}

func TestExtractKeepsBlankCharsWhenRequested(t *testing.T) {
	chars := []Char{
		charAt("A", 0, 0, 5, 10),
		charAt(" ", 5, 0, 8, 10),
		charAt("B", 8, 0, 13, 10),
	}
	for i := range chars {
		chars[i].Index = i
	}
	got := Extract(chars, Options{KeepBlankChars: true})
	if len(got) != 1 {
		t.Fatalf("got %d words, want 1", len(got))
	}
	if got[0].Text != "A B" {
		t.Errorf("got %q, want \"A B\"", got[0].Text)
	}
}

func TestExtractCJKToleranceGroupsDenselySetGlyphs(t *testing.T) {
	// Three CJK ideographs set 2pt apart, with no inter-glyph gap wider
	// than their own width, should stay one word (spec.md §4.5 scenario 5),
	// even though the 2pt gaps exceed the 1pt x_tolerance.
	chars := []Char{
		charAt("中", 0, 0, 12, 12),
		charAt("文", 14, 0, 26, 12),
		charAt("字", 28, 0, 40, 12),
	}
	for i := range chars {
		chars[i].Index = i
	}
	got := Extract(chars, Options{XTolerance: 1, YTolerance: 1})
	if len(got) != 1 {
		t.Fatalf("got %d words, want 1", len(got))
	}
	if len(got[0].Chars) != 3 {
		t.Errorf("got %d chars in word, want 3", len(got[0].Chars))
	}
}

func TestExtractSortsByTopThenX0WhenUnordered(t *testing.T) {
	chars := []Char{
		charAt("B", 10, 0, 15, 10),
		charAt("A", 0, 0, 5, 10),
	}
	chars[0].Index = 0
	chars[1].Index = 1
	got := Extract(chars, Options{})
	if len(got) != 2 || got[0].Text != "A" || got[1].Text != "B" {
		t.Fatalf("got %v, want [A B] in reading order", got)
	}
}

func TestExtractVerticalTtbSortsTopToBottomWithinColumn(t *testing.T) {
	chars := []Char{
		charAt("上", 0, 20, 12, 32),
		charAt("中", 0, 0, 12, 12),
	}
	chars[0].Index, chars[0].Direction = 0, Ttb
	chars[1].Index, chars[1].Direction = 1, Ttb
	dir := Ttb
	got := Extract(chars, Options{TextDirection: &dir})
	if len(got) != 1 {
		t.Fatalf("got %d words, want 1", len(got))
	}
	if got[0].Text != "中上" {
		t.Errorf("got %q, want top-to-bottom order", got[0].Text)
	}
}
