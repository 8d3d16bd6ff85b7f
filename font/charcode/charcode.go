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

// Package charcode decodes the byte strings operated on by Tj/TJ into
// character codes, per the code-space ranges declared by a font's
// encoding: one byte per code for simple fonts, two (or more, for general
// CID fonts) for composite fonts.
package charcode

// Code is a decoded character code, unique within its CodeSpaceRange.
type Code int

// Range is an inclusive range of byte sequences of a fixed length: a byte
// string of len(Low) bytes is in the range iff every byte lies between the
// corresponding bytes of Low and High.
type Range struct {
	Low, High []byte
}

func (r Range) numCodes() Code {
	n := Code(1)
	for i, low := range r.Low {
		n *= Code(r.High[i]-low) + 1
	}
	return n
}

// Matches reports whether s starts with a code in r.
func (r Range) Matches(s []byte) bool {
	if len(s) < len(r.Low) {
		return false
	}
	for i, low := range r.Low {
		if s[i] < low || s[i] > r.High[i] {
			return false
		}
	}
	return true
}

// CodeSpaceRange is the set of byte-sequence ranges a font's encoding
// recognizes as valid character codes, per PDF-2.0 section 9.7.6.3. A
// single-byte simple font uses Simple; a two-byte CID font typically uses
// UCS2 or a range parsed from its embedded CMap's codespacerange.
type CodeSpaceRange []Range

// Simple is the one-byte code space used by simple (non-composite) fonts.
var Simple = CodeSpaceRange{{Low: []byte{0x00}, High: []byte{0xFF}}}

// UCS2 is the two-byte, big-endian code space used by most composite CID
// fonts that do not declare a custom codespacerange.
var UCS2 = CodeSpaceRange{{Low: []byte{0x00, 0x00}, High: []byte{0xFF, 0xFF}}}

// Decode decodes the first character code from s against the ranges in c,
// trying each range in order. It returns the decoded code and the number of
// bytes consumed. If no range matches, it returns (-1, n) where n is the
// shortest range length tried (or 1 if c is empty), matching the "consume
// at least one byte and keep going" recovery spec.md §9's "undecodable
// character code" failure mode requires.
func (c CodeSpaceRange) Decode(s []byte) (Code, int) {
	var base Code
	for _, r := range c {
		n := r.numCodes()
		if len(s) < len(r.Low) {
			base += n
			continue
		}
		var code Code
		matched := true
		for i, low := range r.Low {
			b := s[i]
			if b < low || b > r.High[i] {
				matched = false
				break
			}
			k := Code(r.High[i]) - Code(low) + 1
			code = code*k + Code(b-low)
		}
		if matched {
			return code + base, len(r.Low)
		}
		base += n
	}
	if len(s) == 0 {
		return -1, 0
	}
	if len(c) == 0 {
		return -1, 1
	}
	shortest := len(c[0].Low)
	for _, r := range c[1:] {
		if len(r.Low) < shortest {
			shortest = len(r.Low)
		}
	}
	return -1, shortest
}

// AllCodes iterates over every character code in s, calling yield with the
// raw bytes consumed and whether they formed a valid code. Iteration stops
// early if yield returns false.
func (c CodeSpaceRange) AllCodes(s []byte, yield func(raw []byte, valid bool) bool) {
	for len(s) > 0 {
		code, n := c.Decode(s)
		if n == 0 {
			return
		}
		if n > len(s) {
			n = len(s)
		}
		if !yield(s[:n], code >= 0) {
			return
		}
		s = s[n:]
	}
}
