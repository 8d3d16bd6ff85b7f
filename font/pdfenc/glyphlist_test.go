package pdfenc

import "testing"

func TestToRuneKnownNames(t *testing.T) {
	cases := map[string]rune{
		"A":       'A',
		"space":   ' ',
		"eacute":  'é',
		"germandbls": 'ß',
		"zero":    '0',
		"Euro":    '€',
	}
	for name, want := range cases {
		got, ok := ToRune(name)
		if !ok {
			t.Errorf("ToRune(%q): not found", name)
			continue
		}
		if got != want {
			t.Errorf("ToRune(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestToRuneUnknownName(t *testing.T) {
	if _, ok := ToRune("uniE000"); ok {
		t.Errorf("expected uniE000 to be unmapped")
	}
}

func TestEncodingTablesCoverGlyphList(t *testing.T) {
	for _, enc := range []Encoding{Standard, WinAnsi, MacRoman} {
		for name := range enc.Has {
			if _, ok := ToRune(name); !ok {
				t.Errorf("glyph name %q present in encoding table but missing from glyph list", name)
			}
		}
	}
}
