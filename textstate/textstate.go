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

// Package textstate implements the text object lifecycle (BT/ET), the text
// and line matrices, and the Tc/Tw/Tz/TL/Tf/Tr/Ts parameters, together with
// the Td/TD/Tm/T* positioning math.
package textstate

import "github.com/pdfplumber-go/pdfplumber/matrix"

// RenderMode is the `Tr` text rendering mode.
type RenderMode int

const (
	Fill RenderMode = iota
	Stroke
	FillStroke
	Invisible
	FillClip
	StrokeClip
	FillStrokeClip
	Clip
)

// State is the PDF text state. Save/restore (q/Q) preserves every field
// here except TextMatrix, LineMatrix and InTextObject, which belong to the
// BT/ET lifecycle rather than the graphics-state stack.
type State struct {
	CharSpacing float64
	WordSpacing float64
	HScalingPct float64
	Leading     float64
	FontName    string
	FontSize    float64
	RenderMode  RenderMode
	Rise        float64

	InTextObject bool
	TextMatrix   matrix.Matrix
	LineMatrix   matrix.Matrix
}

// Default returns the text state a content stream starts in: all zero
// except 100% horizontal scaling and fill rendering mode.
func Default() State {
	return State{
		HScalingPct: 100,
		RenderMode:  Fill,
		TextMatrix:  matrix.Identity,
		LineMatrix:  matrix.Identity,
	}
}

// BeginText implements `BT`: resets both matrices to identity and enters a
// text object. A nested BT (InTextObject already true) is a caller-detected
// warning condition; this method still flattens it by resetting state, per
// spec.
func (s *State) BeginText() {
	s.TextMatrix = matrix.Identity
	s.LineMatrix = matrix.Identity
	s.InTextObject = true
}

// EndText implements `ET`.
func (s *State) EndText() {
	s.InTextObject = false
}

// MoveLine implements `Td tx ty`: translate the line matrix by (tx, ty) in
// the current line-matrix space, and copy the result into the text matrix.
func (s *State) MoveLine(tx, ty float64) {
	s.LineMatrix = matrix.Translate(tx, ty).Mul(s.LineMatrix)
	s.TextMatrix = s.LineMatrix
}

// MoveLineSetLeading implements `TD tx ty`: sets leading to -ty, then
// behaves as Td.
func (s *State) MoveLineSetLeading(tx, ty float64) {
	s.Leading = -ty
	s.MoveLine(tx, ty)
}

// SetTextMatrix implements `Tm a b c d e f`: replaces both the text matrix
// and the line matrix with the given matrix.
func (s *State) SetTextMatrix(m matrix.Matrix) {
	s.TextMatrix = m
	s.LineMatrix = m
}

// NextLine implements `T*`: move to the start of the next line using the
// current leading, equivalent to `0 -leading Td`.
func (s *State) NextLine() {
	s.MoveLine(0, -s.Leading)
}

// Advance moves the text matrix by tx in unscaled text space, as happens
// after each glyph is shown: text_matrix := T(tx, 0) x text_matrix.
func (s *State) Advance(tx float64) {
	s.TextMatrix = matrix.Translate(tx, 0).Mul(s.TextMatrix)
}

// GlyphDisplacement computes the horizontal text-space displacement for a
// glyph of width w (in glyph space, i.e. PDF's /1000 units) per spec.md
// §4.1 step 3: tx = (w/1000*fontSize + charSpacing + wordSpacing if the
// code is the single-byte space code 32) * hScaling/100.
func (s *State) GlyphDisplacement(glyphWidth1000 float64, isSingleByteSpace bool) float64 {
	tx := glyphWidth1000/1000*s.FontSize + s.CharSpacing
	if isSingleByteSpace {
		tx += s.WordSpacing
	}
	return tx * s.HScalingPct / 100
}

// TJAdjustment computes the displacement contributed by a numeric element
// of a TJ array: tx = -(k/1000)*fontSize*hScaling/100.
func (s *State) TJAdjustment(k float64) float64 {
	return -(k / 1000) * s.FontSize * s.HScalingPct / 100
}

// FontMatrix builds the font matrix F = [fontSize*hScaling, 0, 0, fontSize,
// 0, rise] used to build the text rendering matrix (spec.md §4.2 step 1).
func (s *State) FontMatrix() matrix.Matrix {
	hs := s.HScalingPct / 100
	return matrix.Matrix{s.FontSize * hs, 0, 0, s.FontSize, 0, s.Rise}
}

// RenderingMatrix builds the text rendering matrix Trm = F x TextMatrix x
// CTM (spec.md §4.2 step 2).
func (s *State) RenderingMatrix(ctm matrix.Matrix) matrix.Matrix {
	return s.FontMatrix().Mul(s.TextMatrix).Mul(ctm)
}
