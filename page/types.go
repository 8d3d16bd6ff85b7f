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

// Package page bridges the content-stream interpreter's raw events
// (interp.CharEvent, PathEvent, ImageEvent) into the positioned,
// display-space geometry the rest of the extraction pipeline operates on:
// Char, Line, Rect, Curve, Edge and Image, plus a page-level coordinator
// exposing cropping, deduplication and lazy caching.
package page

import (
	"github.com/pdfplumber-go/pdfplumber/color"
	"github.com/pdfplumber-go/pdfplumber/geom"
	"github.com/pdfplumber-go/pdfplumber/matrix"
)

// Direction classifies a Char's writing direction, determined from the
// rotational part of its text rendering matrix.
type Direction int

const (
	Ltr Direction = iota
	Rtl
	Ttb
	Btt
)

func (d Direction) String() string {
	switch d {
	case Ltr:
		return "ltr"
	case Rtl:
		return "rtl"
	case Ttb:
		return "ttb"
	case Btt:
		return "btt"
	default:
		return "unknown"
	}
}

// Char is one glyph positioned in a page's display space.
type Char struct {
	Text             string
	BBox             geom.BBox
	FontName         string
	Size             float64
	DocTop           float64
	Upright          bool
	Direction        Direction
	StrokingColor    color.Color
	NonStrokingColor color.Color
	CTM              matrix.Matrix
	CharCode         int
	MCID             *int
	Tag              string
}

// Image is one image XObject (or inline image) positioned in a page's
// display space.
type Image struct {
	BBox             geom.BBox
	Width            int
	Height           int
	Name             string
	BitsPerComponent int
	ColorSpace       *color.ColorSpace
}

// Hyperlink is one clickable link region positioned in a page's display
// space (backend.Hyperlink, transformed the same way Char/Image are).
type Hyperlink struct {
	URI  string
	BBox geom.BBox
}
