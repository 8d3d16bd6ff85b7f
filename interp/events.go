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

// Package interp walks a decoded content stream, maintaining the graphics
// and text state machines, and reports each character, path-painting, and
// image operation to a Handler. It performs no layout of its own; that is
// left to the page and layout packages built on top of it.
package interp

import (
	"github.com/pdfplumber-go/pdfplumber/color"
	"github.com/pdfplumber-go/pdfplumber/matrix"
	"github.com/pdfplumber-go/pdfplumber/path"
	"github.com/pdfplumber-go/pdfplumber/textstate"
)

// CharEvent reports one glyph shown by a Tj/TJ/'/" operator.
type CharEvent struct {
	Code        int
	Rune        rune
	FontName    string
	FontSize    float64
	GlyphWidth  float64 // glyph space units per 1000 text space units
	Trm         matrix.Matrix
	CTM         matrix.Matrix
	RenderMode  textstate.RenderMode
	FillColor   color.Color
	StrokeColor color.Color

	// MCID and Tag carry the innermost enclosing BMC/BDC marked-content
	// frame, if any, per spec.md §4.1's marked-content operator group.
	MCID *int
	Tag  string
}

// PathEvent reports one path-painting operation (stroke, fill, or both).
type PathEvent struct {
	Path        path.Path
	CTM         matrix.Matrix
	Fill        bool
	Stroke      bool
	EvenOdd     bool
	LineWidth   float64
	FillColor   color.Color
	StrokeColor color.Color
}

// ImageEvent reports one image painted by a Do or inline-image operator.
type ImageEvent struct {
	CTM    matrix.Matrix
	Name   string
	Inline bool
	Width  int
	Height int
}

// Warning reports a recoverable content-stream problem: an unsupported or
// malformed operator that the interpreter skipped rather than aborting on.
type Warning struct {
	Op      string
	Message string
}

// Handler receives interpreter events. Methods may be nil-checked by
// callers that only care about a subset of events; Interpreter always
// calls through the Handler interface so embedding a no-op base is the
// usual way to implement a partial handler.
type Handler interface {
	OnChar(CharEvent)
	OnPath(PathEvent)
	OnImage(ImageEvent)
	OnWarning(Warning)
}
