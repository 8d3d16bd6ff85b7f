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

// Package matrix implements the 6-element affine transforms PDF uses for
// the current transformation matrix, the text matrix and the font matrix.
package matrix

import (
	"fmt"
	"math"

	"github.com/pdfplumber-go/pdfplumber/geom"
)

// Matrix is [a b c d e f], representing (x,y) -> (a*x+c*y+e, b*x+d*y+f).
type Matrix [6]float64

// Identity is the identity transform.
var Identity = Matrix{1, 0, 0, 1, 0, 0}

// Translate returns a matrix that translates by (tx, ty).
func Translate(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// Scale returns a matrix that scales by (sx, sy).
func Scale(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// Mul computes the composition "this followed by other": for a point p,
// other.Mul applied to (m applied to p) equals m.Mul(other) applied to p.
// This is the pre-multiplication order the `cm` operator uses: the operand
// matrix M combines with the CTM as CTM' = M x CTM, i.e.
// newCTM := M.Mul(CTM).
func (m Matrix) Mul(other Matrix) Matrix {
	return Matrix{
		m[0]*other[0] + m[1]*other[2],
		m[0]*other[1] + m[1]*other[3],
		m[2]*other[0] + m[3]*other[2],
		m[2]*other[1] + m[3]*other[3],
		m[4]*other[0] + m[5]*other[2] + other[4],
		m[4]*other[1] + m[5]*other[3] + other[5],
	}
}

// TransformPoint applies m to p.
func (m Matrix) TransformPoint(p geom.Point) geom.Point {
	return geom.Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Det returns the determinant of the linear part of m.
func (m Matrix) Det() float64 {
	return m[0]*m[3] - m[1]*m[2]
}

// Inv returns the inverse of m. It panics if m is singular; callers that
// cannot guarantee invertibility should check Det() first.
func (m Matrix) Inv() Matrix {
	det := m.Det()
	if det == 0 {
		panic(fmt.Sprintf("matrix.Inv: singular matrix %v", m))
	}
	ia := m[3] / det
	ib := -m[1] / det
	ic := -m[2] / det
	id := m[0] / det
	ie := -(m[4]*ia + m[5]*ic)
	ifv := -(m[4]*ib + m[5]*id)
	return Matrix{ia, ib, ic, id, ie, ifv}
}

// IsInvertible reports whether m has a non-zero determinant.
func (m Matrix) IsInvertible() bool {
	return math.Abs(m.Det()) > 1e-12
}

// Rotation90 returns a CW rotation by the given multiple of 90 degrees
// (0, 90, 180 or 270), used to normalize a page's display orientation
// against its /Rotate entry.
func Rotation90(degrees int) Matrix {
	switch ((degrees % 360) + 360) % 360 {
	case 90:
		return Matrix{0, 1, -1, 0, 0, 0}
	case 180:
		return Matrix{-1, 0, 0, -1, 0, 0}
	case 270:
		return Matrix{0, -1, 1, 0, 0, 0}
	default:
		return Identity
	}
}
