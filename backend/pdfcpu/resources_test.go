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

package pdfcpu

import (
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/pdfplumber-go/pdfplumber/color"
)

// These tests exercise only the pieces of this package that don't require
// constructing a pdfcpu *model.XRefTable: the object-model helpers have no
// pdfcpu source in the retrieval pack to validate a fake XRefTable against,
// so the page-tree walk and dict/array dereferencing are left to manual
// verification against real PDF files.

func TestNameOfExtractsNameValue(t *testing.T) {
	name, ok := nameOf(types.Name("Helvetica"))
	if !ok || name != "Helvetica" {
		t.Errorf("nameOf(Name) = %q, %v, want \"Helvetica\", true", name, ok)
	}
}

func TestNameOfRejectsNonName(t *testing.T) {
	if _, ok := nameOf(types.Integer(42)); ok {
		t.Errorf("nameOf(Integer) should report ok=false")
	}
}

func TestDeviceSpaceByArity(t *testing.T) {
	cases := []struct {
		n    int
		want color.SpaceKind
	}{
		{1, color.KindDeviceGray},
		{4, color.KindDeviceCMYK},
		{3, color.KindDeviceRGB},
		{0, color.KindDeviceRGB},
	}
	for _, c := range cases {
		if got := deviceSpaceByArity(c.n).Kind; got != c.want {
			t.Errorf("deviceSpaceByArity(%d).Kind = %v, want %v", c.n, got, c.want)
		}
	}
}

func TestApplyDifferencesStartsAtGivenCode(t *testing.T) {
	var table [256]string
	table[65] = "A"
	diffs := types.Array{types.Integer(100), types.Name("bullet"), types.Name("dagger")}
	applyDifferences(&table, diffs)
	if table[100] != "bullet" || table[101] != "dagger" {
		t.Errorf("applyDifferences did not fill sequential codes: table[100]=%q table[101]=%q", table[100], table[101])
	}
	if table[65] != "A" {
		t.Errorf("applyDifferences should not disturb codes outside the run")
	}
}
