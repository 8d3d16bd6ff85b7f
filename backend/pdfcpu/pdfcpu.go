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

// Package pdfcpu implements the backend package's Document/Page interfaces
// on top of github.com/pdfcpu/pdfcpu, resolving page trees, resource
// dictionaries, and content streams through its cross-reference table.
package pdfcpu

import (
	"bytes"
	"io"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/pdfplumber-go/pdfplumber/backend"
	"github.com/pdfplumber-go/pdfplumber/geom"
	"github.com/pdfplumber-go/pdfplumber/pderr"
)

// document wraps a pdfcpu *model.Context opened from one file.
type document struct {
	ctx   *model.Context
	pages []types.Dict // 1-indexed via pages[n-1], populated lazily
}

// Open reads and parses the PDF file at path, decrypting it with password
// if it is encrypted ("" for no password).
func Open(path, password string) (backend.Document, error) {
	conf := model.NewDefaultConfiguration()
	if password != "" {
		conf.UserPW = password
		conf.OwnerPW = password
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, pderr.Wrap(err, pderr.KindMalformed)
	}
	defer f.Close()
	ctx, err := api.ReadContext(f, conf)
	if err != nil {
		return nil, pderr.Wrap(err, pderr.KindMalformed)
	}
	if err := api.ValidateContext(ctx); err != nil {
		if ctx.XRefTable.Encrypt != nil {
			return nil, pderr.Wrap(err, pderr.KindEncrypted)
		}
		return nil, pderr.Wrap(err, pderr.KindMalformed)
	}
	return &document{ctx: ctx}, nil
}

func (d *document) PageCount() int {
	return d.ctx.XRefTable.PageCount
}

func (d *document) Close() error { return nil }

// Metadata reads the document's /Info dictionary, per PDF 32000-1:2008
// §14.3.3. A document with no /Info (or an unresolvable one) reports a
// zero-valued Metadata rather than an error — metadata is advisory.
func (d *document) Metadata() backend.Metadata {
	var m backend.Metadata
	if d.ctx.XRefTable.Info == nil {
		return m
	}
	info, err := dereferenceDict(d.ctx.XRefTable, *d.ctx.XRefTable.Info)
	if err != nil {
		return m
	}
	get := func(key string) string {
		obj, found := info.Find(key)
		if !found {
			return ""
		}
		s, _ := stringOf(d.ctx.XRefTable, obj)
		return s
	}
	m.Title = get("Title")
	m.Author = get("Author")
	m.Subject = get("Subject")
	m.Keywords = get("Keywords")
	m.Creator = get("Creator")
	m.Producer = get("Producer")
	m.CreationDate = get("CreationDate")
	m.ModDate = get("ModDate")
	return m
}

func (d *document) Page(n int) (*backend.Page, error) {
	if n < 1 || n > d.PageCount() {
		return nil, pderr.Newf(pderr.KindPage, "page %d out of range (1..%d)", n, d.PageCount())
	}
	pageDict, err := findPageDict(d.ctx.XRefTable, n)
	if err != nil {
		return nil, pderr.WrapPage(err, n, pderr.KindPage)
	}

	mediaBox, err := mediaBoxOf(d.ctx.XRefTable, pageDict)
	if err != nil {
		return nil, pderr.WrapPage(err, n, pderr.KindPage)
	}
	cropBox := cropBoxOf(d.ctx.XRefTable, pageDict, mediaBox)

	rotation := 0
	if rotObj, found := pageDict.Find("Rotate"); found {
		if rv, err := d.ctx.XRefTable.DereferenceInteger(rotObj); err == nil && rv != nil {
			rotation = ((int(*rv) % 360) + 360) % 360
		}
	}

	resourcesDict, err := dereferenceDict(d.ctx.XRefTable, pageDict["Resources"])
	if err != nil {
		resourcesDict = types.Dict{}
	}

	page := &backend.Page{
		Number:   n,
		MediaBox: mediaBox,
		CropBox:  cropBox,
		Rotation: rotation,
		Content: func() (io.ReadCloser, error) {
			raw, err := contentBytes(d.ctx, pageDict)
			if err != nil {
				return nil, err
			}
			return io.NopCloser(bytes.NewReader(raw)), nil
		},
		Resources:  newResources(d.ctx.XRefTable, resourcesDict),
		Hyperlinks: hyperlinksOf(d.ctx.XRefTable, pageDict),
	}
	return page, nil
}

// hyperlinksOf reads a page's /Annots array for /Subtype /Link entries and
// resolves each one's /A /URI action, per PDF 32000-1:2008 §12.5.6.5.
// Link annotations without a usable /Rect are skipped; those with no /A, or
// whose action isn't a URI action, are reported with an empty URI.
func hyperlinksOf(xref *model.XRefTable, pageDict types.Dict) []backend.Hyperlink {
	annotsObj, found := pageDict.Find("Annots")
	if !found {
		return nil
	}
	annots, err := dereferenceArray(xref, annotsObj)
	if err != nil {
		return nil
	}

	var out []backend.Hyperlink
	for _, a := range annots {
		annotDict, err := dereferenceDict(xref, a)
		if err != nil {
			continue
		}
		subtypeObj, found := annotDict.Find("Subtype")
		if !found {
			continue
		}
		if name, ok := nameOf(subtypeObj); !ok || name != "Link" {
			continue
		}
		rectObj, found := annotDict.Find("Rect")
		if !found {
			continue
		}
		arr, err := dereferenceArray(xref, rectObj)
		if err != nil || len(arr) != 4 {
			continue
		}
		v := make([]float64, 4)
		for i, o := range arr {
			v[i], _ = numberOf(xref, o)
		}
		bbox := geom.BBox{X0: v[0], Top: v[1], X1: v[2], Bottom: v[3]}.Normalize()

		var uri string
		if actionObj, found := annotDict.Find("A"); found {
			if actionDict, err := dereferenceDict(xref, actionObj); err == nil {
				if uriObj, found := actionDict.Find("URI"); found {
					uri, _ = stringOf(xref, uriObj)
				}
			}
		}
		out = append(out, backend.Hyperlink{URI: uri, BBox: bbox})
	}
	return out
}

// stringOf resolves o to a raw (unescaped) string, reading either a
// literal "(...)" or hex "<...>" PDF string.
func stringOf(xref *model.XRefTable, o types.Object) (string, bool) {
	resolved, err := xref.Dereference(o)
	if err != nil {
		return "", false
	}
	switch v := resolved.(type) {
	case types.StringLiteral:
		return string(v), true
	case types.HexLiteral:
		b, err := v.Bytes()
		if err != nil {
			return "", false
		}
		return string(b), true
	}
	return "", false
}

// mediaBoxOf resolves /MediaBox, walking up the page tree through
// /Parent when a page inherits it, per PDF 32000-1:2008 §7.7.3.4.
func mediaBoxOf(xref *model.XRefTable, pageDict types.Dict) (geom.BBox, error) {
	d := pageDict
	for i := 0; i < 64; i++ {
		if arrObj, found := d.Find("MediaBox"); found {
			arr, err := dereferenceArray(xref, arrObj)
			if err == nil && len(arr) == 4 {
				v := make([]float64, 4)
				for i, o := range arr {
					v[i], _ = numberOf(xref, o)
				}
				return geom.BBox{X0: v[0], Top: v[1], X1: v[2], Bottom: v[3]}.Normalize(), nil
			}
		}
		parentObj, found := d.Find("Parent")
		if !found {
			break
		}
		parent, err := dereferenceDict(xref, parentObj)
		if err != nil {
			break
		}
		d = parent
	}
	return geom.BBox{X0: 0, Top: 0, X1: 612, Bottom: 792}, nil // US Letter fallback
}

// cropBoxOf resolves /CropBox the same way as /MediaBox, walking /Parent
// when the page inherits it, and falls back to mediaBox per PDF
// 32000-1:2008 §7.7.3.3 ("the crop box... default value: the value of
// MediaBox").  A resolved CropBox is clamped to mediaBox, since a producer
// is free to write one that extends past it.
func cropBoxOf(xref *model.XRefTable, pageDict types.Dict, mediaBox geom.BBox) geom.BBox {
	d := pageDict
	for i := 0; i < 64; i++ {
		if arrObj, found := d.Find("CropBox"); found {
			arr, err := dereferenceArray(xref, arrObj)
			if err == nil && len(arr) == 4 {
				v := make([]float64, 4)
				for i, o := range arr {
					v[i], _ = numberOf(xref, o)
				}
				box := geom.BBox{X0: v[0], Top: v[1], X1: v[2], Bottom: v[3]}.Normalize()
				return box.Intersection(mediaBox)
			}
		}
		parentObj, found := d.Find("Parent")
		if !found {
			break
		}
		parent, err := dereferenceDict(xref, parentObj)
		if err != nil {
			break
		}
		d = parent
	}
	return mediaBox
}

// contentBytes concatenates a page's (possibly array-valued) /Contents
// stream(s) into one buffer, separated by a newline per PDF 32000-1:2008
// §7.8.2's note that content stream fragments must not straddle a token.
func contentBytes(ctx *model.Context, pageDict types.Dict) ([]byte, error) {
	obj, found := pageDict.Find("Contents")
	if !found {
		return nil, nil
	}
	resolved, err := ctx.XRefTable.Dereference(obj)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	switch v := resolved.(type) {
	case types.StreamDict:
		if err := decodeStreamInto(ctx, &v, &buf); err != nil {
			return nil, err
		}
	case types.Array:
		for _, entry := range v {
			sd, err := dereferenceStreamDict(ctx.XRefTable, entry)
			if err != nil {
				continue
			}
			if err := decodeStreamInto(ctx, sd, &buf); err != nil {
				continue
			}
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes(), nil
}

func decodeStreamInto(ctx *model.Context, sd *types.StreamDict, buf *bytes.Buffer) error {
	if err := sd.Decode(); err != nil {
		return err
	}
	buf.Write(sd.Content)
	return nil
}
