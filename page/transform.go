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

package page

import (
	"math"

	"github.com/pdfplumber-go/pdfplumber/geom"
	"github.com/pdfplumber-go/pdfplumber/matrix"
)

// Transform normalizes a page's native content-stream coordinates (PDF
// space, after every `cm` concatenation but before any notion of display
// orientation) into top-left, un-rotated display space cropped to the
// page's /CropBox. It is built once per page and applied to every piece of
// raw geometry — glyph bounding boxes, path points, image corners — so
// rotation and cropping are normalized exactly once, at this boundary,
// rather than baked into the interpreter's CTM.
type Transform struct {
	m             matrix.Matrix
	displayWidth  float64
	displayHeight float64
}

// NewTransform builds the Transform for a page with the given MediaBox,
// CropBox and clockwise /Rotate angle (0, 90, 180 or 270).
func NewTransform(mediaBox, cropBox geom.BBox, rotation int) Transform {
	mediaBox = mediaBox.Normalize()
	cropBox = cropBox.Normalize()

	toOrigin := matrix.Translate(-mediaBox.X0, -mediaBox.Top)
	cx, cy := mediaBox.Width()/2, mediaBox.Height()/2
	rotateAboutCenter := matrix.Translate(-cx, -cy).Mul(matrix.Rotation90(rotation)).Mul(matrix.Translate(cx, cy))
	rotated := toOrigin.Mul(rotateAboutCenter)

	c0 := rotated.TransformPoint(geom.Point{X: cropBox.X0, Y: cropBox.Top})
	c1 := rotated.TransformPoint(geom.Point{X: cropBox.X1, Y: cropBox.Bottom})
	cropMinX, cropMinY := math.Min(c0.X, c1.X), math.Min(c0.Y, c1.Y)
	cropMaxX, cropMaxY := math.Max(c0.X, c1.X), math.Max(c0.Y, c1.Y)

	full := rotated.Mul(matrix.Translate(-cropMinX, -cropMinY))

	return Transform{
		m:             full,
		displayWidth:  cropMaxX - cropMinX,
		displayHeight: cropMaxY - cropMinY,
	}
}

// Apply maps a point in the page's native content-stream space to
// top-left display space: rotation-normalized, cropped to /CropBox, and
// y-flipped.
func (t Transform) Apply(p geom.Point) geom.Point {
	q := t.m.TransformPoint(p)
	return geom.Point{X: q.X, Y: geom.FlipY(q.Y, t.displayHeight)}
}

// DisplayBBox is the page's extent in the space Apply maps into: always
// (0, 0, width, height), with width/height swapped against the raw
// MediaBox/CropBox when the rotation is 90 or 270 degrees.
func (t Transform) DisplayBBox() geom.BBox {
	return geom.BBox{X0: 0, Top: 0, X1: t.displayWidth, Bottom: t.displayHeight}
}
