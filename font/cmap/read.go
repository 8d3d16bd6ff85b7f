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

package cmap

import (
	"io"

	"github.com/pdfplumber-go/pdfplumber/content"
	"github.com/pdfplumber-go/pdfplumber/font/charcode"
)

// ParseToUnicode reads a ToUnicode CMap stream. CMap streams are written in
// a PostScript dialect, but the bfchar/bfrange/codespacerange sections a
// ToUnicode CMap actually needs consist entirely of hex strings, arrays and
// operator keywords — exactly the grammar content.Scanner already
// tokenizes — so this reuses that scanner rather than a full PostScript
// interpreter. Procedure definitions and anything outside the recognized
// section keywords are skipped.
func ParseToUnicode(r io.Reader) (*ToUnicode, error) {
	sc := content.NewScanner(r)
	result := &ToUnicode{}

	var pending []content.Object
	for {
		obj, err := sc.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		op, isOp := obj.(content.Operator)
		if !isOp {
			pending = append(pending, obj)
			continue
		}

		switch op {
		case "endcodespacerange":
			for i := 0; i+1 < len(pending); i += 2 {
				lo, ok1 := pending[i].(content.String)
				hi, ok2 := pending[i+1].(content.String)
				if ok1 && ok2 {
					result.CS = append(result.CS, charcode.Range{Low: []byte(lo), High: []byte(hi)})
				}
			}
			pending = nil
		case "endbfchar":
			for i := 0; i+1 < len(pending); i += 2 {
				src, ok1 := pending[i].(content.String)
				dst, ok2 := pending[i+1].(content.String)
				if !ok1 || !ok2 {
					continue
				}
				code, n := result.codeSpace().Decode(src)
				if code < 0 || n != len(src) {
					continue
				}
				result.Singles = append(result.Singles, SingleEntry{
					Code:  code,
					Value: utf16BEToRunes(dst),
				})
			}
			pending = nil
		case "endbfrange":
			for i := 0; i+2 < len(pending); i += 3 {
				lo, ok1 := pending[i].(content.String)
				hi, ok2 := pending[i+1].(content.String)
				if !ok1 || !ok2 {
					continue
				}
				low, n1 := result.codeSpace().Decode(lo)
				high, n2 := result.codeSpace().Decode(hi)
				if low < 0 || high < 0 || n1 != len(lo) || n2 != len(hi) {
					continue
				}
				switch dst := pending[i+2].(type) {
				case content.String:
					result.Ranges = append(result.Ranges, RangeEntry{
						First:  low,
						Last:   high,
						Values: [][]rune{utf16BEToRunes(dst)},
					})
				case content.Array:
					values := make([][]rune, 0, len(dst))
					for _, el := range dst {
						if s, ok := el.(content.String); ok {
							values = append(values, utf16BEToRunes(s))
						} else {
							values = append(values, nil)
						}
					}
					result.Ranges = append(result.Ranges, RangeEntry{First: low, Last: high, Values: values})
				}
			}
			pending = nil
		case "begincodespacerange", "beginbfchar", "beginbfrange":
			pending = nil
		}
	}

	if result.CS == nil {
		result.CS = charcode.Simple
	}
	return result, nil
}

func (tu *ToUnicode) codeSpace() charcode.CodeSpaceRange {
	if tu.CS != nil {
		return tu.CS
	}
	return charcode.Simple
}
