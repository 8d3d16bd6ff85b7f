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

package afm

// Core-14 AFM advance widths, glyph space units per 1000 text space units,
// for the ASCII-range glyphs most documents actually use. Accented and
// symbol glyph names outside this set fall through to MissingWidth.

var helveticaWidths = map[string]float64{
	"space": 278, "exclam": 278, "quotedbl": 355, "numbersign": 556,
	"dollar": 556, "percent": 889, "ampersand": 667, "quotesingle": 191,
	"parenleft": 333, "parenright": 333, "asterisk": 389, "plus": 584,
	"comma": 278, "hyphen": 333, "period": 278, "slash": 278,
	"zero": 556, "one": 556, "two": 556, "three": 556, "four": 556,
	"five": 556, "six": 556, "seven": 556, "eight": 556, "nine": 556,
	"colon": 278, "semicolon": 278, "less": 584, "equal": 584, "greater": 584,
	"question": 556, "at": 1015,
	"A": 667, "B": 667, "C": 722, "D": 722, "E": 667, "F": 611, "G": 778,
	"H": 722, "I": 278, "J": 500, "K": 667, "L": 556, "M": 833, "N": 722,
	"O": 778, "P": 667, "Q": 778, "R": 722, "S": 667, "T": 611, "U": 722,
	"V": 667, "W": 944, "X": 667, "Y": 667, "Z": 611,
	"bracketleft": 278, "backslash": 278, "bracketright": 278,
	"asciicircum": 469, "underscore": 556, "grave": 333,
	"a": 556, "b": 556, "c": 500, "d": 556, "e": 556, "f": 278, "g": 556,
	"h": 556, "i": 222, "j": 222, "k": 500, "l": 222, "m": 833, "n": 556,
	"o": 556, "p": 556, "q": 556, "r": 333, "s": 500, "t": 278, "u": 556,
	"v": 500, "w": 722, "x": 500, "y": 500, "z": 500,
	"braceleft": 334, "bar": 260, "braceright": 334, "asciitilde": 584,
	"bullet": 350, "emdash": 1000, "endash": 556, "quotedblleft": 333,
	"quotedblright": 333, "quoteleft": 222, "quoteright": 222, "ellipsis": 1000,
	"eacute": 556, "aacute": 556,
}

var helveticaBoldWidths = map[string]float64{
	"space": 278, "exclam": 333, "quotedbl": 474, "numbersign": 556,
	"dollar": 556, "percent": 889, "ampersand": 722, "quotesingle": 238,
	"parenleft": 333, "parenright": 333, "asterisk": 389, "plus": 584,
	"comma": 278, "hyphen": 333, "period": 278, "slash": 278,
	"zero": 556, "one": 556, "two": 556, "three": 556, "four": 556,
	"five": 556, "six": 556, "seven": 556, "eight": 556, "nine": 556,
	"colon": 333, "semicolon": 333, "less": 584, "equal": 584, "greater": 584,
	"question": 611, "at": 975,
	"A": 722, "B": 722, "C": 722, "D": 722, "E": 667, "F": 611, "G": 778,
	"H": 722, "I": 278, "J": 556, "K": 722, "L": 611, "M": 833, "N": 722,
	"O": 778, "P": 667, "Q": 778, "R": 722, "S": 667, "T": 611, "U": 722,
	"V": 667, "W": 944, "X": 667, "Y": 667, "Z": 611,
	"bracketleft": 333, "backslash": 278, "bracketright": 333,
	"asciicircum": 584, "underscore": 556, "grave": 333,
	"a": 556, "b": 611, "c": 556, "d": 611, "e": 556, "f": 333, "g": 611,
	"h": 611, "i": 278, "j": 278, "k": 556, "l": 278, "m": 889, "n": 611,
	"o": 611, "p": 611, "q": 611, "r": 389, "s": 556, "t": 333, "u": 611,
	"v": 556, "w": 778, "x": 556, "y": 556, "z": 500,
	"braceleft": 389, "bar": 280, "braceright": 389, "asciitilde": 584,
	"bullet": 350, "emdash": 1000, "endash": 556,
}

var timesWidths = map[string]float64{
	"space": 250, "exclam": 333, "quotedbl": 408, "numbersign": 500,
	"dollar": 500, "percent": 833, "ampersand": 778, "quotesingle": 180,
	"parenleft": 333, "parenright": 333, "asterisk": 500, "plus": 564,
	"comma": 250, "hyphen": 333, "period": 250, "slash": 278,
	"zero": 500, "one": 500, "two": 500, "three": 500, "four": 500,
	"five": 500, "six": 500, "seven": 500, "eight": 500, "nine": 500,
	"colon": 278, "semicolon": 278, "less": 564, "equal": 564, "greater": 564,
	"question": 444, "at": 921,
	"A": 722, "B": 667, "C": 667, "D": 722, "E": 611, "F": 556, "G": 722,
	"H": 722, "I": 333, "J": 389, "K": 722, "L": 611, "M": 889, "N": 722,
	"O": 722, "P": 556, "Q": 722, "R": 667, "S": 556, "T": 611, "U": 722,
	"V": 722, "W": 944, "X": 722, "Y": 722, "Z": 611,
	"bracketleft": 333, "backslash": 278, "bracketright": 333,
	"asciicircum": 469, "underscore": 500, "grave": 333,
	"a": 444, "b": 500, "c": 444, "d": 500, "e": 444, "f": 333, "g": 500,
	"h": 500, "i": 278, "j": 278, "k": 500, "l": 278, "m": 778, "n": 500,
	"o": 500, "p": 500, "q": 500, "r": 333, "s": 389, "t": 278, "u": 500,
	"v": 500, "w": 722, "x": 500, "y": 500, "z": 444,
	"braceleft": 480, "bar": 200, "braceright": 480, "asciitilde": 541,
	"bullet": 350, "emdash": 1000, "endash": 500,
}

var timesBoldWidths = map[string]float64{
	"space": 250, "exclam": 333, "quotedbl": 555, "numbersign": 500,
	"dollar": 500, "percent": 1000, "ampersand": 833, "quotesingle": 278,
	"parenleft": 333, "parenright": 333, "asterisk": 500, "plus": 570,
	"comma": 250, "hyphen": 333, "period": 250, "slash": 278,
	"zero": 500, "one": 500, "two": 500, "three": 500, "four": 500,
	"five": 500, "six": 500, "seven": 500, "eight": 500, "nine": 500,
	"colon": 333, "semicolon": 333, "less": 570, "equal": 570, "greater": 570,
	"question": 500, "at": 930,
	"A": 722, "B": 667, "C": 722, "D": 722, "E": 667, "F": 611, "G": 778,
	"H": 778, "I": 389, "J": 500, "K": 778, "L": 667, "M": 944, "N": 722,
	"O": 778, "P": 611, "Q": 778, "R": 722, "S": 556, "T": 667, "U": 722,
	"V": 722, "W": 1000, "X": 722, "Y": 722, "Z": 667,
	"bracketleft": 333, "backslash": 278, "bracketright": 333,
	"asciicircum": 581, "underscore": 500, "grave": 333,
	"a": 500, "b": 556, "c": 444, "d": 556, "e": 444, "f": 333, "g": 500,
	"h": 556, "i": 278, "j": 333, "k": 556, "l": 278, "m": 833, "n": 556,
	"o": 500, "p": 556, "q": 556, "r": 444, "s": 389, "t": 333, "u": 556,
	"v": 500, "w": 722, "x": 500, "y": 500, "z": 444,
	"braceleft": 394, "bar": 220, "braceright": 394, "asciitilde": 520,
	"bullet": 350, "emdash": 1000, "endash": 500,
}

var courierWidths = buildCourierWidths()

func buildCourierWidths() map[string]float64 {
	w := make(map[string]float64, len(helveticaWidths))
	for name := range helveticaWidths {
		w[name] = 600
	}
	return w
}
