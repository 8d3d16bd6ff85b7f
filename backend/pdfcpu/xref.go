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
	"errors"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// findPageDict walks the page tree rooted at the document catalog's /Pages
// entry, depth-first, to find the nth (1-based) leaf /Type /Page dict. PDF
// 32000-1:2008 §7.7.3 lets /Pages nodes nest to arbitrary depth and each
// carry inheritable attributes (MediaBox, Resources, Rotate) that a leaf
// may omit, which is why mediaBoxOf separately walks back up via /Parent.
func findPageDict(xref *model.XRefTable, n int) (types.Dict, error) {
	root, err := dereferenceDict(xref, xref.Root)
	if err != nil {
		return nil, err
	}
	pagesObj, ok := root.Find("Pages")
	if !ok {
		return nil, errors.New("document catalog has no /Pages entry")
	}
	pagesRoot, err := dereferenceDict(xref, pagesObj)
	if err != nil {
		return nil, err
	}
	count := 0
	var walk func(types.Dict) (types.Dict, error)
	walk = func(d types.Dict) (types.Dict, error) {
		typeName, _ := d.Find("Type")
		if name, ok := typeName.(types.Name); ok && string(name) == "Page" {
			count++
			if count == n {
				return d, nil
			}
			return nil, nil
		}
		kidsObj, ok := d.Find("Kids")
		if !ok {
			return nil, nil
		}
		kids, err := dereferenceArray(xref, kidsObj)
		if err != nil {
			return nil, err
		}
		for _, kidObj := range kids {
			kid, err := dereferenceDict(xref, kidObj)
			if err != nil {
				continue
			}
			found, err := walk(kid)
			if err != nil {
				return nil, err
			}
			if found != nil {
				return found, nil
			}
		}
		return nil, nil
	}
	found, err := walk(pagesRoot)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, errors.New("page not found in page tree")
	}
	return found, nil
}

func dereferenceDict(xref *model.XRefTable, o types.Object) (types.Dict, error) {
	resolved, err := xref.Dereference(o)
	if err != nil {
		return nil, err
	}
	d, ok := resolved.(types.Dict)
	if !ok {
		return nil, errors.New("expected dictionary object")
	}
	return d, nil
}

func dereferenceArray(xref *model.XRefTable, o types.Object) (types.Array, error) {
	resolved, err := xref.Dereference(o)
	if err != nil {
		return nil, err
	}
	a, ok := resolved.(types.Array)
	if !ok {
		return nil, errors.New("expected array object")
	}
	return a, nil
}

func dereferenceStreamDict(xref *model.XRefTable, o types.Object) (*types.StreamDict, error) {
	resolved, err := xref.Dereference(o)
	if err != nil {
		return nil, err
	}
	sd, ok := resolved.(types.StreamDict)
	if !ok {
		return nil, errors.New("expected stream object")
	}
	return &sd, nil
}

// numberOf resolves o to a float64 regardless of whether it is stored as
// an integer or real.
func numberOf(xref *model.XRefTable, o types.Object) (float64, error) {
	resolved, err := xref.Dereference(o)
	if err != nil {
		return 0, err
	}
	switch v := resolved.(type) {
	case types.Integer:
		return float64(v), nil
	case types.Float:
		return float64(v), nil
	}
	return 0, errors.New("expected numeric object")
}
