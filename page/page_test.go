package page

import (
	"bytes"
	"io"
	"testing"

	"github.com/pdfplumber-go/pdfplumber/backend"
	"github.com/pdfplumber-go/pdfplumber/color"
	"github.com/pdfplumber-go/pdfplumber/font"
	"github.com/pdfplumber-go/pdfplumber/font/charcode"
	"github.com/pdfplumber-go/pdfplumber/font/pdfenc"
	"github.com/pdfplumber-go/pdfplumber/geom"
	"github.com/pdfplumber-go/pdfplumber/interp"
	"github.com/pdfplumber-go/pdfplumber/table"
	"github.com/pdfplumber-go/pdfplumber/words"
)

type fakeResources struct{}

func (r *fakeResources) Font(name string) (*interp.ResolvedFont, error) {
	return &interp.ResolvedFont{
		Name:      "F1",
		CodeSpace: charcode.Simple,
		Widths:    font.NewStandardWidths("Helvetica", &pdfenc.Standard),
		Encoding:  &pdfenc.Standard,
	}, nil
}
func (r *fakeResources) ColorSpace(name string) (*color.ColorSpace, error) { return color.DeviceRGB, nil }
func (r *fakeResources) ExtGState(name string) (map[string]float64, error) { return nil, nil }
func (r *fakeResources) XObjectKind(name string) (interp.XObjectKind, error) {
	return interp.XObjectImage, nil
}
func (r *fakeResources) Image(name string) (*interp.ImageXObject, error) { return nil, nil }
func (r *fakeResources) Form(name string) (*interp.FormXObject, error)   { return nil, nil }

func backendPage(content string, mediaBox geom.BBox, rotation int) *backend.Page {
	return &backend.Page{
		Number:   1,
		MediaBox: mediaBox,
		CropBox:  mediaBox,
		Rotation: rotation,
		Content: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader([]byte(content))), nil
		},
		Resources: &fakeResources{},
	}
}

func TestPageChars(t *testing.T) {
	bp := backendPage(`BT /F1 12 Tf 100 700 Td (Hi) Tj ET`, geom.BBox{X0: 0, Top: 0, X1: 612, Bottom: 792}, 0)
	p := New(bp, 0)

	chars, err := p.Chars()
	if err != nil {
		t.Fatal(err)
	}
	if len(chars) != 2 {
		t.Fatalf("got %d chars, want 2", len(chars))
	}
	if chars[0].Text != "H" || chars[1].Text != "i" {
		t.Errorf("got texts %q %q, want H i", chars[0].Text, chars[1].Text)
	}
	if !chars[0].Upright {
		t.Errorf("expected upright glyph for unrotated page")
	}
	if chars[0].Direction != Ltr {
		t.Errorf("Direction = %v, want Ltr", chars[0].Direction)
	}
	// With no rotation, display-space Top should track (height - pdf-y): a
	// glyph drawn near the top of a US-Letter page (pdf y=700, of 792 tall)
	// should land near display Top=80 (792-712, the top of its 12pt em box),
	// not near the bottom.
	if chars[0].BBox.Top > 150 {
		t.Errorf("BBox.Top = %v, expected glyph near page top in display space", chars[0].BBox.Top)
	}
}

func TestPageRectsAndEdges(t *testing.T) {
	bp := backendPage(`10 10 100 50 re S`, geom.BBox{X0: 0, Top: 0, X1: 612, Bottom: 792}, 0)
	p := New(bp, 0)

	rects, err := p.Rects()
	if err != nil {
		t.Fatal(err)
	}
	if len(rects) != 1 {
		t.Fatalf("got %d rects, want 1", len(rects))
	}

	es, err := p.Edges()
	if err != nil {
		t.Fatal(err)
	}
	if len(es) != 4 {
		t.Fatalf("got %d edges, want 4", len(es))
	}
}

func TestPageCropTranslatesOrigin(t *testing.T) {
	bp := backendPage(`BT /F1 12 Tf 100 700 Td (Hi) Tj ET`, geom.BBox{X0: 0, Top: 0, X1: 612, Bottom: 792}, 0)
	p := New(bp, 0)

	cropBBox := geom.BBox{X0: 50, Top: 50, X1: 200, Bottom: 150}
	cropped, err := p.Crop(cropBBox)
	if err != nil {
		t.Fatal(err)
	}
	chars, err := cropped.Chars()
	if err != nil {
		t.Fatal(err)
	}
	if len(chars) != 2 {
		t.Fatalf("got %d chars in crop, want 2", len(chars))
	}
	if chars[0].BBox.X0 < 0 {
		t.Errorf("expected non-negative X0 after crop translation, got %v", chars[0].BBox.X0)
	}
}

func TestPageOutsideBBoxDoesNotTranslate(t *testing.T) {
	bp := backendPage(`BT /F1 12 Tf 100 700 Td (Hi) Tj ET`, geom.BBox{X0: 0, Top: 0, X1: 612, Bottom: 792}, 0)
	p := New(bp, 0)

	all, err := p.Chars()
	if err != nil {
		t.Fatal(err)
	}
	wantX0 := all[0].BBox.X0

	outside, err := p.OutsideBBox(geom.BBox{X0: 0, Top: 0, X1: 10, Bottom: 10})
	if err != nil {
		t.Fatal(err)
	}
	chars, err := outside.Chars()
	if err != nil {
		t.Fatal(err)
	}
	if len(chars) != 2 {
		t.Fatalf("got %d chars outside the excluded region, want 2", len(chars))
	}
	if chars[0].BBox.X0 != wantX0 {
		t.Errorf("OutsideBBox translated coordinates: got X0=%v, want unchanged %v", chars[0].BBox.X0, wantX0)
	}
}

func TestPageDedupeCharsRemovesOverlappingDuplicate(t *testing.T) {
	bp := backendPage(`BT /F1 12 Tf 100 700 Td (H) Tj 0 0 Td (H) Tj ET`, geom.BBox{X0: 0, Top: 0, X1: 612, Bottom: 792}, 0)
	p := New(bp, 0)

	if err := p.DedupeChars(0.5); err != nil {
		t.Fatal(err)
	}
	chars, err := p.Chars()
	if err != nil {
		t.Fatal(err)
	}
	if len(chars) != 1 {
		t.Fatalf("got %d chars after dedupe, want 1", len(chars))
	}
}

func TestPageExtractWordsGroupsBySpace(t *testing.T) {
	bp := backendPage(`BT /F1 12 Tf 100 700 Td (Hi There) Tj ET`, geom.BBox{X0: 0, Top: 0, X1: 612, Bottom: 792}, 0)
	p := New(bp, 0)

	ws, err := p.ExtractWords(words.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(ws) != 2 {
		t.Fatalf("got %d words, want 2", len(ws))
	}
	if ws[0].Text != "Hi" || ws[1].Text != "There" {
		t.Errorf("got %q / %q, want Hi / There", ws[0].Text, ws[1].Text)
	}
}

func TestPageExtractTextFlow(t *testing.T) {
	bp := backendPage(`BT /F1 12 Tf 100 700 Td (Hi There) Tj ET`, geom.BBox{X0: 0, Top: 0, X1: 612, Bottom: 792}, 0)
	p := New(bp, 0)

	text, err := p.ExtractText(TextOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if text != "Hi There" {
		t.Errorf("got %q, want \"Hi There\"", text)
	}
}

func TestPageFindTablesLattice(t *testing.T) {
	bp := backendPage(`0 0 100 100 re S`, geom.BBox{X0: 0, Top: 0, X1: 612, Bottom: 792}, 0)
	p := New(bp, 0)

	tables, err := p.FindTables(table.Settings{Strategy: table.Lattice})
	if err != nil {
		t.Fatal(err)
	}
	if len(tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(tables))
	}
}

func TestPageHyperlinksEmptyWithNoAnnots(t *testing.T) {
	bp := backendPage(`BT /F1 12 Tf 100 700 Td (Hi) Tj ET`, geom.BBox{X0: 0, Top: 0, X1: 612, Bottom: 792}, 0)
	p := New(bp, 0)

	links, err := p.Hyperlinks()
	if err != nil {
		t.Fatal(err)
	}
	if len(links) != 0 {
		t.Errorf("got %d hyperlinks, want 0", len(links))
	}
}
