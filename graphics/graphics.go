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

// Package graphics tracks the content-stream graphics state: CTM, line
// width, stroke/fill color, dash pattern and alpha, with the push-copy/pop
// stack semantics of the q/Q operators.
package graphics

import (
	"github.com/pdfplumber-go/pdfplumber/color"
	"github.com/pdfplumber-go/pdfplumber/matrix"
)

// DashPattern is a line dash pattern as set by the `d` operator. An empty
// Array means a solid line.
type DashPattern struct {
	Array []float64
	Phase float64
}

// Solid is the default, unbroken dash pattern.
var Solid = DashPattern{}

// State holds the subset of the PDF graphics state that extraction cares
// about. It deliberately omits clipping paths, rendering intent, soft masks
// and blend modes: spec.md scopes extraction to geometry and color, not
// compositing.
type State struct {
	CTM         matrix.Matrix
	LineWidth   float64
	StrokeColor color.Color
	FillColor   color.Color
	StrokeSpace *color.ColorSpace
	FillSpace   *color.ColorSpace
	Dash        DashPattern
	StrokeAlpha float64
	FillAlpha   float64
}

// Default returns the graphics state a content stream starts in: identity
// CTM, 1-unit line width, black stroke and fill, solid dash, fully opaque.
func Default() State {
	return State{
		CTM:         matrix.Identity,
		LineWidth:   1,
		StrokeColor: color.Black,
		FillColor:   color.Black,
		StrokeSpace: color.DeviceGray,
		FillSpace:   color.DeviceGray,
		Dash:        Solid,
		StrokeAlpha: 1,
		FillAlpha:   1,
	}
}

// Stack implements the q/Q save/restore semantics: Push copies the current
// state onto the stack, Pop restores the most recently pushed one. A State
// is a plain value type, so Push's copy is automatic.
type Stack struct {
	current State
	saved   []State
}

// NewStack returns a Stack starting from the default graphics state.
func NewStack() *Stack {
	return &Stack{current: Default()}
}

// Current returns a pointer to the state currently in effect. Mutating
// through this pointer changes the top of stack in place, matching how
// operators like `cm`/`w`/`rg` modify the state without pushing.
func (s *Stack) Current() *State {
	return &s.current
}

// Push implements `q`: save a copy of the current state.
func (s *Stack) Push() {
	s.saved = append(s.saved, s.current)
}

// Pop implements `Q`: restore the most recently saved state. Popping an
// empty stack is a no-op with a reported warning left to the caller
// (interp emits the Warning event; this package only tracks state).
func (s *Stack) Pop() bool {
	if len(s.saved) == 0 {
		return false
	}
	n := len(s.saved)
	s.current = s.saved[n-1]
	s.saved = s.saved[:n-1]
	return true
}

// Depth returns how many states are currently saved (i.e. how many
// unmatched `q` operators are outstanding).
func (s *Stack) Depth() int {
	return len(s.saved)
}
