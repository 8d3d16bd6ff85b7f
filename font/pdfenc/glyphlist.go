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

package pdfenc

// glyphToRune maps the subset of Adobe Glyph List names that appear in
// Standard, WinAnsi, MacRoman and PDFDoc (the four encodings this package
// keeps) to their Unicode code point. It deliberately does not attempt
// full AGL coverage (Symbol and ZapfDingbats glyph names, CJK glyph names,
// etc. are out of scope); a name with no entry here falls back to
// U+FFFD in ToRune.
var glyphToRune = map[string]rune{
	"A": 'A', "AE": 'Æ', "Aacute": 'Á', "Acircumflex": 'Â', "Adieresis": 'Ä',
	"Agrave": 'À', "Aring": 'Å', "Atilde": 'Ã',
	"B": 'B',
	"C": 'C', "Ccedilla": 'Ç',
	"D": 'D',
	"E": 'E', "Eacute": 'É', "Ecircumflex": 'Ê', "Edieresis": 'Ë', "Egrave": 'È', "Eth": 'Ð', "Euro": '€',
	"F": 'F',
	"G": 'G',
	"H": 'H',
	"I": 'I', "Iacute": 'Í', "Icircumflex": 'Î', "Idieresis": 'Ï', "Igrave": 'Ì',
	"J": 'J',
	"K": 'K',
	"L": 'L', "Lslash": 'Ł',
	"M": 'M',
	"N": 'N', "Ntilde": 'Ñ',
	"O": 'O', "OE": 'Œ', "Oacute": 'Ó', "Ocircumflex": 'Ô', "Odieresis": 'Ö', "Ograve": 'Ò', "Oslash": 'Ø', "Otilde": 'Õ',
	"P": 'P',
	"Q": 'Q',
	"R": 'R',
	"S": 'S', "Scaron": 'Š',
	"T": 'T', "Thorn": 'Þ',
	"U": 'U', "Uacute": 'Ú', "Ucircumflex": 'Û', "Udieresis": 'Ü', "Ugrave": 'Ù',
	"V": 'V',
	"W": 'W',
	"X": 'X',
	"Y": 'Y', "Yacute": 'Ý', "Ydieresis": 'Ÿ',
	"Z": 'Z', "Zcaron": 'Ž',

	"a": 'a', "aacute": 'á', "acircumflex": 'â', "acute": '´', "adieresis": 'ä',
	"ae": 'æ', "agrave": 'à', "ampersand": '&', "aring": 'å',
	"asciicircum": '^', "asciitilde": '~', "asterisk": '*', "at": '@', "atilde": 'ã',
	"b": 'b', "backslash": '\\', "bar": '|', "braceleft": '{', "braceright": '}',
	"bracketleft": '[', "bracketright": ']', "breve": '˘', "brokenbar": '¦', "bullet": '•',
	"c": 'c', "caron": 'ˇ', "ccedilla": 'ç', "cedilla": '¸', "cent": '¢',
	"circumflex": 'ˆ', "colon": ':', "comma": ',', "copyright": '©', "currency": '¤',
	"d": 'd', "dagger": '†', "daggerdbl": '‡', "degree": '°', "dieresis": '¨',
	"divide": '÷', "dollar": '$', "dotaccent": '˙', "dotlessi": 'ı',
	"e": 'e', "eacute": 'é', "ecircumflex": 'ê', "edieresis": 'ë', "egrave": 'è',
	"eight": '8', "ellipsis": '…', "emdash": '—', "endash": '–', "equal": '=',
	"eth": 'ð', "exclam": '!', "exclamdown": '¡',
	"f": 'f', "fi": 'ﬁ', "five": '5', "fl": 'ﬂ', "florin": 'ƒ', "four": '4', "fraction": '⁄',
	"g": 'g', "germandbls": 'ß', "grave": '`', "greater": '>',
	"guillemotleft": '«', "guillemotright": '»', "guilsinglleft": '‹', "guilsinglright": '›',
	"h": 'h', "hungarumlaut": '˝', "hyphen": '-',
	"i": 'i', "iacute": 'í', "icircumflex": 'î', "idieresis": 'ï', "igrave": 'ì',
	"j": 'j',
	"k": 'k',
	"l": 'l', "less": '<', "logicalnot": '¬', "lslash": 'ł',
	"m": 'm', "macron": '¯', "minus": '−', "mu": 'µ', "multiply": '×',
	"n": 'n', "nine": '9', "ntilde": 'ñ', "numbersign": '#',
	"o": 'o', "oacute": 'ó', "ocircumflex": 'ô', "odieresis": 'ö', "oe": 'œ',
	"ogonek": '˛', "ograve": 'ò', "one": '1', "onehalf": '½', "onequarter": '¼', "onesuperior": '¹',
	"ordfeminine": 'ª', "ordmasculine": 'º', "oslash": 'ø', "otilde": 'õ',
	"p": 'p', "paragraph": '¶', "parenleft": '(', "parenright": ')', "percent": '%',
	"period": '.', "periodcentered": '·', "perthousand": '‰', "plus": '+', "plusminus": '±',
	"q": 'q', "question": '?', "questiondown": '¿', "quotedbl": '"',
	"quotedblbase": '„', "quotedblleft": '“', "quotedblright": '”',
	"quoteleft": '‘', "quoteright": '’', "quotesinglbase": '‚', "quotesingle": '\'',
	"r": 'r', "registered": '®', "ring": '˚',
	"s": 's', "scaron": 'š', "section": '§', "semicolon": ';', "seven": '7', "six": '6',
	"slash": '/', "space": ' ', "sterling": '£',
	"t": 't', "thorn": 'þ', "three": '3', "threequarters": '¾', "threesuperior": '³',
	"tilde": '˜', "trademark": '™', "two": '2', "twosuperior": '²',
	"u": 'u', "uacute": 'ú', "ucircumflex": 'û', "udieresis": 'ü', "ugrave": 'ù', "underscore": '_',
	"v": 'v',
	"w": 'w',
	"x": 'x',
	"y": 'y', "yacute": 'ý', "ydieresis": 'ÿ', "yen": '¥',
	"z": 'z', "zcaron": 'ž', "zero": '0',
}

// ToRune resolves a PDF glyph name to a Unicode rune, returning (0, false)
// if the name is not one of the ~230 Latin names this package covers (see
// glyphToRune). Callers fall back to U+FFFD in that case.
func ToRune(glyphName string) (rune, bool) {
	r, ok := glyphToRune[glyphName]
	return r, ok
}
