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

// Package content tokenizes a PDF content stream into the small set of
// object types that can appear as operator operands, plus operators
// themselves. It has no knowledge of what any operator means; that is
// interp's job.
package content

// Object is any value a content-stream token can produce: Integer, Real,
// String, Name, Array, Dict, Boolean, Operator, or nil (the PDF null).
type Object interface{}

// Integer is a PDF integer operand.
type Integer int64

// Real is a PDF real-number operand.
type Real float64

// Num returns v as a float64 regardless of whether it is an Integer or
// Real, for operators that don't care about the distinction (nearly all of
// them).
func Num(v Object) (float64, bool) {
	switch n := v.(type) {
	case Integer:
		return float64(n), true
	case Real:
		return float64(n), true
	}
	return 0, false
}

// String is a PDF literal or hex string operand, already unescaped/decoded
// to raw bytes.
type String []byte

// Name is a PDF name operand (without the leading slash), already decoded
// of #xx hex escapes.
type Name string

// Array is a PDF array operand, e.g. the bracketed operand of TJ.
type Array []Object

// Dict is a PDF inline dictionary, e.g. the operand of BDC or an inline
// image's header.
type Dict map[Name]Object

// Boolean is a PDF true/false operand.
type Boolean bool

// Operator is a content-stream operator keyword, such as "Tj" or "re". The
// scanner also uses it internally for the structural tokens "<<", ">>",
// "[" and "]", which Next folds into Dict/Array before returning them.
type Operator string
