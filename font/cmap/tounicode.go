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

// Package cmap maps character codes to Unicode strings, using an embedded
// ToUnicode CMap's codespacerange, bfchar and bfrange entries. Other CMap
// sections, including a CID CMap's cidrange entries, are not parsed.
package cmap

import (
	"unicode"
	"unicode/utf16"

	"github.com/pdfplumber-go/pdfplumber/font/charcode"
)

// SingleEntry maps one character code to a Unicode string.
type SingleEntry struct {
	Code  charcode.Code
	Value []rune
}

// RangeEntry maps a contiguous range of character codes. If Values has
// length 1, successive codes increment the last rune of Values[0]; if it
// has length Last-First+1, Values[i] is the literal replacement for code
// First+i, matching the two bfrange forms the PDF spec allows.
type RangeEntry struct {
	First, Last charcode.Code
	Values      [][]rune
}

// ToUnicode is a parsed ToUnicode CMap: a code-space range plus the
// bfchar/bfrange entries mapping codes to Unicode strings.
type ToUnicode struct {
	CS      charcode.CodeSpaceRange
	Singles []SingleEntry
	Ranges  []RangeEntry
}

// Decode decodes the first character code of s and returns its Unicode
// string and the number of bytes consumed. An undecodable code returns
// U+FFFD and the recovery length charcode.CodeSpaceRange.Decode reports. A
// decodable code with no entry in the CMap also returns U+FFFD, per
// spec.md's "undecodable character code" fallback.
func (tu *ToUnicode) Decode(s []byte) ([]rune, int) {
	cs := tu.CS
	if cs == nil {
		cs = charcode.Simple
	}
	code, n := cs.Decode(s)
	if code < 0 {
		return []rune{unicode.ReplacementChar}, n
	}

	for _, r := range tu.Ranges {
		if code < r.First || code > r.Last {
			continue
		}
		if len(r.Values) > int(code-r.First) {
			return r.Values[code-r.First], n
		}
		if len(r.Values) == 0 || len(r.Values[0]) == 0 {
			return nil, n
		}
		rr := append([]rune(nil), r.Values[0]...)
		rr[len(rr)-1] += rune(code - r.First)
		return rr, n
	}
	for _, s := range tu.Singles {
		if s.Code == code {
			return s.Value, n
		}
	}
	return []rune{unicode.ReplacementChar}, n
}

// utf16BEToRunes decodes a big-endian UTF-16 byte string, the encoding
// bfchar/bfrange destination strings use.
func utf16BEToRunes(b []byte) []rune {
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = uint16(b[2*i])<<8 | uint16(b[2*i+1])
	}
	return utf16.Decode(units)
}
