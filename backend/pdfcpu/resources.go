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
	"bytes"
	"errors"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/pdfplumber-go/pdfplumber/color"
	"github.com/pdfplumber-go/pdfplumber/font"
	"github.com/pdfplumber-go/pdfplumber/font/charcode"
	"github.com/pdfplumber-go/pdfplumber/font/cmap"
	"github.com/pdfplumber-go/pdfplumber/font/pdfenc"
	"github.com/pdfplumber-go/pdfplumber/interp"
)

// resources implements interp.Resources over one page's (or form
// XObject's) /Resources dictionary, resolving named references through the
// document's cross-reference table lazily, on first use.
type resources struct {
	xref *model.XRefTable
	dict types.Dict
}

func newResources(xref *model.XRefTable, dict types.Dict) *resources {
	return &resources{xref: xref, dict: dict}
}

// subDict looks up one of /Font, /ColorSpace, /ExtGState, /XObject, /Pattern
// under this resource dictionary and dereferences name within it.
func (r *resources) subDict(category, name string) (types.Dict, error) {
	catObj, found := r.dict.Find(category)
	if !found {
		return nil, errors.New("no /" + category + " in resource dictionary")
	}
	cat, err := dereferenceDict(r.xref, catObj)
	if err != nil {
		return nil, err
	}
	entryObj, found := cat.Find(name)
	if !found {
		return nil, errors.New(category + " resource " + name + " not found")
	}
	return dereferenceDict(r.xref, entryObj)
}

func (r *resources) Font(name string) (*interp.ResolvedFont, error) {
	fontDict, err := r.subDict("Font", name)
	if err != nil {
		return nil, err
	}
	return resolveFont(r.xref, fontDict, name)
}

func resolveFont(xref *model.XRefTable, fontDict types.Dict, name string) (*interp.ResolvedFont, error) {
	subtype, _ := nameOf(fontDict["Subtype"])
	composite := subtype == "Type0"

	baseFont := ""
	if bf, ok := fontDict["BaseFont"]; ok {
		baseFont, _ = nameOf(bf)
	}

	rf := &interp.ResolvedFont{
		Name:      name,
		Composite: composite,
		CodeSpace: charcode.Simple,
	}

	if composite {
		rf.CodeSpace = charcode.UCS2
		descendant, err := descendantFontDict(xref, fontDict)
		if err == nil && descendant != nil {
			rf.Widths = cidWidths(xref, descendant)
		}
	} else {
		enc := simpleEncodingOf(xref, fontDict)
		rf.Encoding = enc
		rf.Widths = simpleWidthsOf(xref, fontDict, baseFont, enc)
	}

	if tuObj, found := fontDict.Find("ToUnicode"); found {
		if sd, err := dereferenceStreamDict(xref, tuObj); err == nil {
			if err := sd.Decode(); err == nil {
				if tu, err := cmap.ParseToUnicode(bytes.NewReader(sd.Content)); err == nil {
					rf.ToUnicode = tu
				}
			}
		}
	}

	return rf, nil
}

// descendantFontDict resolves a Type0 font's single entry in
// /DescendantFonts, the CIDFont dictionary that actually carries /W and
// /DW (PDF 32000-1:2008 §9.7.3).
func descendantFontDict(xref *model.XRefTable, fontDict types.Dict) (types.Dict, error) {
	arrObj, found := fontDict.Find("DescendantFonts")
	if !found {
		return nil, errors.New("Type0 font has no /DescendantFonts")
	}
	arr, err := dereferenceArray(xref, arrObj)
	if err != nil || len(arr) == 0 {
		return nil, errors.New("empty /DescendantFonts array")
	}
	return dereferenceDict(xref, arr[0])
}

// cidWidths parses a CIDFont's /W array: a flat sequence of either
// `c [w1 w2 ...]` (consecutive CIDs c, c+1, ... get w1, w2, ...) or
// `cFirst cLast w` (every CID in [cFirst, cLast] gets w), per PDF
// 32000-1:2008 §9.7.4.3. /DW supplies the default width (1000 if absent).
func cidWidths(xref *model.XRefTable, descendant types.Dict) *font.Widths {
	dw := 1000.0
	if dwObj, found := descendant.Find("DW"); found {
		if v, err := numberOf(xref, dwObj); err == nil {
			dw = v
		}
	}
	w := &font.Widths{MissingWidth: dw}

	wObj, found := descendant.Find("W")
	if !found {
		return w
	}
	arr, err := dereferenceArray(xref, wObj)
	if err != nil {
		return w
	}

	table := make(map[int]float64)
	i := 0
	for i < len(arr) {
		first, err := numberOf(xref, arr[i])
		if err != nil {
			break
		}
		i++
		if i >= len(arr) {
			break
		}
		if next, err := dereferenceArray(xref, arr[i]); err == nil {
			for j, wObj := range next {
				if width, err := numberOf(xref, wObj); err == nil {
					table[int(first)+j] = width
				}
			}
			i++
			continue
		}
		last, err := numberOf(xref, arr[i])
		if err != nil {
			break
		}
		i++
		if i >= len(arr) {
			break
		}
		width, err := numberOf(xref, arr[i])
		i++
		if err != nil {
			continue
		}
		for cid := int(first); cid <= int(last); cid++ {
			table[cid] = width
		}
	}
	w.CIDWidths = table
	return w
}

// simpleEncodingOf resolves a simple font's /Encoding entry to one of the
// built-in single-byte tables (Standard, WinAnsi or MacRoman; any other
// name falls back to Standard), applying a /Differences array on top
// when present (PDF 32000-1:2008 §9.6.6).
func simpleEncodingOf(xref *model.XRefTable, fontDict types.Dict) *pdfenc.Encoding {
	base := pdfenc.Standard
	encObj, found := fontDict.Find("Encoding")
	if !found {
		return &base
	}
	resolved, err := xref.Dereference(encObj)
	if err != nil {
		return &base
	}

	var encDict types.Dict
	switch v := resolved.(type) {
	case types.Name:
		return baseEncodingByName(string(v))
	case types.Dict:
		encDict = v
	default:
		return &base
	}

	if baseName, ok := encDict["BaseEncoding"]; ok {
		if name, ok := nameOf(baseName); ok {
			base = *baseEncodingByName(name)
		}
	}
	table := base.Table
	if diffObj, found := encDict.Find("Differences"); found {
		if diffs, err := dereferenceArray(xref, diffObj); err == nil {
			applyDifferences(&table, diffs)
		}
	}
	result := pdfenc.Encoding{Table: table, Has: base.Has}
	return &result
}

func baseEncodingByName(name string) *pdfenc.Encoding {
	switch name {
	case "WinAnsiEncoding":
		return &pdfenc.WinAnsi
	case "MacRomanEncoding":
		return &pdfenc.MacRoman
	default:
		return &pdfenc.Standard
	}
}

// applyDifferences overlays a /Differences array onto table in place: a
// run of `code name name name...` pairs, where an integer resets the
// current code and each following name fills the next code in sequence.
// Differences entries are always direct objects in practice, so this
// doesn't need to dereference through the cross-reference table.
func applyDifferences(table *[256]string, diffs types.Array) {
	code := 0
	for _, obj := range diffs {
		switch v := obj.(type) {
		case types.Integer:
			code = int(v)
		case types.Name:
			if code >= 0 && code < 256 {
				table[code] = string(v)
			}
			code++
		}
	}
}

func simpleWidthsOf(xref *model.XRefTable, fontDict types.Dict, baseFont string, enc *pdfenc.Encoding) *font.Widths {
	widthsObj, hasWidths := fontDict.Find("Widths")
	if !hasWidths {
		return font.NewStandardWidths(baseFont, enc)
	}
	arr, err := dereferenceArray(xref, widthsObj)
	if err != nil {
		return font.NewStandardWidths(baseFont, enc)
	}
	firstChar := 0
	if fc, found := fontDict.Find("FirstChar"); found {
		if v, err := numberOf(xref, fc); err == nil {
			firstChar = int(v)
		}
	}
	lastChar := firstChar + len(arr) - 1
	missing := 0.0
	if descObj, found := fontDict.Find("FontDescriptor"); found {
		if desc, err := dereferenceDict(xref, descObj); err == nil {
			if mw, found := desc.Find("MissingWidth"); found {
				if v, err := numberOf(xref, mw); err == nil {
					missing = v
				}
			}
		}
	}
	widths := make([]float64, len(arr))
	for i, wObj := range arr {
		if v, err := numberOf(xref, wObj); err == nil {
			widths[i] = v
		}
	}
	return font.NewWidths(firstChar, lastChar, widths, missing, enc)
}

func (r *resources) ColorSpace(name string) (*color.ColorSpace, error) {
	switch name {
	case "DeviceGray", "CalGray", "G":
		return color.DeviceGray, nil
	case "DeviceRGB", "CalRGB", "RGB":
		return color.DeviceRGB, nil
	case "DeviceCMYK", "CMYK":
		return color.DeviceCMYK, nil
	case "Pattern":
		return &color.ColorSpace{Kind: color.KindPattern}, nil
	}
	csObj, found := r.dict.Find("ColorSpace")
	if !found {
		return nil, errors.New("no /ColorSpace in resource dictionary")
	}
	cat, err := dereferenceDict(r.xref, csObj)
	if err != nil {
		return nil, err
	}
	entry, found := cat.Find(name)
	if !found {
		return nil, errors.New("color space " + name + " not found")
	}
	return resolveColorSpace(r.xref, entry, 0)
}

const maxColorSpaceDepth = 8

func resolveColorSpace(xref *model.XRefTable, obj types.Object, depth int) (*color.ColorSpace, error) {
	if depth > maxColorSpaceDepth {
		return nil, errors.New("color space nesting too deep")
	}
	resolved, err := xref.Dereference(obj)
	if err != nil {
		return nil, err
	}

	if name, ok := resolved.(types.Name); ok {
		switch string(name) {
		case "DeviceGray", "CalGray":
			return color.DeviceGray, nil
		case "DeviceRGB", "CalRGB":
			return color.DeviceRGB, nil
		case "DeviceCMYK":
			return color.DeviceCMYK, nil
		case "Pattern":
			return &color.ColorSpace{Kind: color.KindPattern}, nil
		default:
			return color.DeviceGray, nil
		}
	}

	arr, ok := resolved.(types.Array)
	if !ok || len(arr) == 0 {
		return color.DeviceGray, nil
	}
	family, _ := nameOf(arr[0])
	switch family {
	case "ICCBased":
		return resolveICCBased(xref, arr, depth)
	case "Indexed":
		return resolveIndexed(xref, arr, depth)
	case "Separation":
		return resolveSeparationLike(xref, arr, 3, depth)
	case "DeviceN":
		return resolveSeparationLike(xref, arr, 2, depth)
	case "Pattern":
		cs := &color.ColorSpace{Kind: color.KindPattern}
		if len(arr) > 1 {
			underlying, err := resolveColorSpace(xref, arr[1], depth+1)
			if err == nil {
				cs.Underlying = underlying
			}
		}
		return cs, nil
	case "CalRGB":
		return color.DeviceRGB, nil
	case "CalGray":
		return color.DeviceGray, nil
	case "Lab":
		return &color.ColorSpace{Kind: color.KindOther, N: 3}, nil
	default:
		return color.DeviceGray, nil
	}
}

func resolveICCBased(xref *model.XRefTable, arr types.Array, depth int) (*color.ColorSpace, error) {
	cs := &color.ColorSpace{Kind: color.KindICCBased}
	if len(arr) < 2 {
		return cs, nil
	}
	streamDict, err := dereferenceStreamDict(xref, arr[1])
	if err != nil {
		return cs, nil
	}
	if n, found := streamDict.Dict.Find("N"); found {
		if v, err := numberOf(xref, n); err == nil {
			cs.N = int(v)
		}
	}
	if altObj, found := streamDict.Dict.Find("Alternate"); found {
		if alt, err := resolveColorSpace(xref, altObj, depth+1); err == nil {
			cs.Alternate = alt
		}
	}
	if cs.Alternate == nil {
		cs.Alternate = deviceSpaceByArity(cs.N)
	}
	return cs, nil
}

func resolveIndexed(xref *model.XRefTable, arr types.Array, depth int) (*color.ColorSpace, error) {
	if len(arr) < 4 {
		return &color.ColorSpace{Kind: color.KindIndexed}, errors.New("malformed Indexed color space")
	}
	base, err := resolveColorSpace(xref, arr[1], depth+1)
	if err != nil {
		base = color.DeviceRGB
	}
	hiVal := 0
	if v, err := numberOf(xref, arr[2]); err == nil {
		hiVal = int(v)
	}
	var lookup []byte
	resolved, err := xref.Dereference(arr[3])
	if err == nil {
		switch v := resolved.(type) {
		case types.StringLiteral:
			lookup = []byte(v)
		case types.HexLiteral:
			lookup, _ = v.Bytes()
		case types.StreamDict:
			if v.Decode() == nil {
				lookup = v.Content
			}
		}
	}
	return &color.ColorSpace{Kind: color.KindIndexed, Base: base, HiVal: hiVal, Lookup: lookup}, nil
}

func resolveSeparationLike(xref *model.XRefTable, arr types.Array, altIndex, depth int) (*color.ColorSpace, error) {
	kind := color.KindSeparation
	n := 1
	if altIndex == 2 {
		kind = color.KindDeviceN
		if names, err := dereferenceArray(xref, arr[1]); err == nil {
			n = len(names)
		}
	}
	cs := &color.ColorSpace{Kind: kind, N: n}
	if len(arr) > altIndex {
		if alt, err := resolveColorSpace(xref, arr[altIndex], depth+1); err == nil {
			cs.Alternate = alt
		}
	}
	return cs, nil
}

func deviceSpaceByArity(n int) *color.ColorSpace {
	switch n {
	case 1:
		return color.DeviceGray
	case 4:
		return color.DeviceCMYK
	default:
		return color.DeviceRGB
	}
}

func (r *resources) ExtGState(name string) (map[string]float64, error) {
	gsDict, err := r.subDict("ExtGState", name)
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64)
	if ca, found := gsDict.Find("ca"); found {
		if v, err := numberOf(r.xref, ca); err == nil {
			out["ca"] = v
		}
	}
	if cA, found := gsDict.Find("CA"); found {
		if v, err := numberOf(r.xref, cA); err == nil {
			out["CA"] = v
		}
	}
	return out, nil
}

func (r *resources) xobjectDict(name string) (types.Dict, error) {
	xObj, found := r.dict.Find("XObject")
	if !found {
		return nil, errors.New("no /XObject in resource dictionary")
	}
	cat, err := dereferenceDict(r.xref, xObj)
	if err != nil {
		return nil, err
	}
	entryObj, found := cat.Find(name)
	if !found {
		return nil, errors.New("XObject " + name + " not found")
	}
	resolved, err := r.xref.Dereference(entryObj)
	if err != nil {
		return nil, err
	}
	sd, ok := resolved.(types.StreamDict)
	if !ok {
		return nil, errors.New("XObject " + name + " is not a stream")
	}
	return sd.Dict, nil
}

func (r *resources) XObjectKind(name string) (interp.XObjectKind, error) {
	dict, err := r.xobjectDict(name)
	if err != nil {
		return interp.XObjectImage, err
	}
	subtype, _ := nameOf(dict["Subtype"])
	if subtype == "Form" {
		return interp.XObjectForm, nil
	}
	return interp.XObjectImage, nil
}

func (r *resources) Image(name string) (*interp.ImageXObject, error) {
	dict, err := r.xobjectDict(name)
	if err != nil {
		return nil, err
	}
	img := &interp.ImageXObject{}
	if w, found := dict.Find("Width"); found {
		if v, err := numberOf(r.xref, w); err == nil {
			img.Width = int(v)
		}
	}
	if h, found := dict.Find("Height"); found {
		if v, err := numberOf(r.xref, h); err == nil {
			img.Height = int(v)
		}
	}
	return img, nil
}

func (r *resources) Form(name string) (*interp.FormXObject, error) {
	xObj, found := r.dict.Find("XObject")
	if !found {
		return nil, errors.New("no /XObject in resource dictionary")
	}
	cat, err := dereferenceDict(r.xref, xObj)
	if err != nil {
		return nil, err
	}
	entryObj, found := cat.Find(name)
	if !found {
		return nil, errors.New("XObject " + name + " not found")
	}
	resolved, err := r.xref.Dereference(entryObj)
	if err != nil {
		return nil, err
	}
	sd, ok := resolved.(types.StreamDict)
	if !ok {
		return nil, errors.New("XObject " + name + " is not a stream")
	}

	form := &interp.FormXObject{Matrix: [6]float64{1, 0, 0, 1, 0, 0}}
	if mObj, found := sd.Dict.Find("Matrix"); found {
		if arr, err := dereferenceArray(r.xref, mObj); err == nil && len(arr) == 6 {
			for i, o := range arr {
				if v, err := numberOf(r.xref, o); err == nil {
					form.Matrix[i] = v
				}
			}
		}
	}

	formResources := r.dict
	if resObj, found := sd.Dict.Find("Resources"); found {
		if d, err := dereferenceDict(r.xref, resObj); err == nil {
			formResources = d
		}
	}
	form.Resources = newResources(r.xref, formResources)

	if err := sd.Decode(); err != nil {
		return nil, err
	}
	form.Content = sd.Content
	return form, nil
}

// nameOf extracts a PDF name's string value without its leading slash.
func nameOf(obj types.Object) (string, bool) {
	if n, ok := obj.(types.Name); ok {
		return string(n), true
	}
	return "", false
}
