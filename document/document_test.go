package document

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

// fakeDocument implements backend.Document over an in-memory list of page
// content streams, all sized as US Letter (612x792).
type fakeDocument struct {
	contents []string
	meta     backend.Metadata
}

func (d *fakeDocument) PageCount() int { return len(d.contents) }
func (d *fakeDocument) Close() error   { return nil }
func (d *fakeDocument) Metadata() backend.Metadata { return d.meta }

func (d *fakeDocument) Page(n int) (*backend.Page, error) {
	content := d.contents[n-1]
	return &backend.Page{
		Number:   n,
		MediaBox: geom.BBox{X0: 0, Top: 0, X1: 612, Bottom: 792},
		CropBox:  geom.BBox{X0: 0, Top: 0, X1: 612, Bottom: 792},
		Content: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader([]byte(content))), nil
		},
		Resources: &fakeResources{},
	}, nil
}

func open(contents []string, meta backend.Metadata) (*Document, error) {
	fd := &fakeDocument{contents: contents, meta: meta}
	return Open("", "", func(path, password string) (backend.Document, error) {
		return fd, nil
	})
}

func TestDocumentMetadataPassesThrough(t *testing.T) {
	doc, err := open([]string{`BT /F1 12 Tf 72 720 Td (Hello) Tj ET`}, backend.Metadata{Title: "Report"})
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.Metadata().Title; got != "Report" {
		t.Errorf("Title = %q, want Report", got)
	}
}

func TestDocumentPageCountMatchesBackend(t *testing.T) {
	doc, err := open([]string{"", "", ""}, backend.Metadata{})
	if err != nil {
		t.Fatal(err)
	}
	if doc.PageCount() != 3 {
		t.Errorf("PageCount = %d, want 3", doc.PageCount())
	}
}

func TestDocumentDocTopAccumulatesAcrossPages(t *testing.T) {
	doc, err := open([]string{
		`BT /F1 12 Tf 72 720 Td (Hello) Tj ET`,
		`BT /F1 12 Tf 72 720 Td (World) Tj ET`,
	}, backend.Metadata{})
	if err != nil {
		t.Fatal(err)
	}

	p1, err := doc.Page(1)
	if err != nil {
		t.Fatal(err)
	}
	c1, err := p1.Chars()
	if err != nil {
		t.Fatal(err)
	}

	p2, err := doc.Page(2)
	if err != nil {
		t.Fatal(err)
	}
	c2, err := p2.Chars()
	if err != nil {
		t.Fatal(err)
	}

	if len(c1) == 0 || len(c2) == 0 {
		t.Fatal("expected chars on both pages")
	}
	if c2[0].DocTop <= c1[0].DocTop {
		t.Errorf("page 2 DocTop %v should exceed page 1 DocTop %v", c2[0].DocTop, c1[0].DocTop)
	}
	// Page height is 792; page 2's chars should be offset by roughly that much.
	if diff := c2[0].DocTop - c1[0].DocTop; diff < 700 {
		t.Errorf("DocTop gap across pages = %v, want close to page height 792", diff)
	}
}

func TestDocumentSearchAllFindsMatchAcrossPages(t *testing.T) {
	doc, err := open([]string{
		`BT /F1 12 Tf 72 720 Td (Hello World) Tj ET`,
		`BT /F1 12 Tf 72 720 Td (Goodbye World) Tj ET`,
	}, backend.Metadata{})
	if err != nil {
		t.Fatal(err)
	}

	matches, err := doc.SearchAll("World", SearchOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].Page != 1 || matches[1].Page != 2 {
		t.Errorf("got pages %d, %d, want 1, 2", matches[0].Page, matches[1].Page)
	}
}

func TestDocumentSearchAllCaseInsensitiveByDefault(t *testing.T) {
	doc, err := open([]string{`BT /F1 12 Tf 72 720 Td (Hello) Tj ET`}, backend.Metadata{})
	if err != nil {
		t.Fatal(err)
	}
	matches, err := doc.SearchAll("hello", SearchOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
}

func TestDetectPageRegionsBelowMinPagesReturnsNoneEverywhere(t *testing.T) {
	doc, err := open([]string{
		`BT /F1 12 Tf 72 720 Td (Report) Tj ET`,
		`BT /F1 12 Tf 72 720 Td (Report) Tj ET`,
	}, backend.Metadata{})
	if err != nil {
		t.Fatal(err)
	}

	regions, err := doc.DetectPageRegions(PageRegionOptions{MinPages: 3})
	if err != nil {
		t.Fatal(err)
	}
	if len(regions) != 2 {
		t.Fatalf("got %d regions, want 2", len(regions))
	}
	for i, r := range regions {
		if r.Header != nil || r.Footer != nil {
			t.Errorf("page %d: expected no header/footer below min_pages", i)
		}
		if r.Body != (geom.BBox{X0: 0, Top: 0, X1: 612, Bottom: 792}) {
			t.Errorf("page %d: Body = %v, want full MediaBox", i, r.Body)
		}
	}
}

func TestDetectPageRegionsFindsRepeatingHeaderAndFooter(t *testing.T) {
	var contents []string
	footers := []string{"Page 1", "Page 2", "Page 3", "Page 4", "Page 5"}
	for _, f := range footers {
		contents = append(contents,
			`BT /F1 10 Tf 72 770 Td (Report) Tj ET `+
				`BT /F1 10 Tf 72 20 Td (`+f+`) Tj ET`)
	}

	doc, err := open(contents, backend.Metadata{})
	if err != nil {
		t.Fatal(err)
	}

	regions, err := doc.DetectPageRegions(PageRegionOptions{MinPages: 3})
	if err != nil {
		t.Fatal(err)
	}
	if len(regions) != 5 {
		t.Fatalf("got %d regions, want 5", len(regions))
	}
	for i, r := range regions {
		if r.Header == nil {
			t.Errorf("page %d: expected a repeating header", i)
		}
		if r.Footer == nil {
			t.Errorf("page %d: expected a repeating footer", i)
		}
	}
}

func TestMaskDigitsCollapsesRuns(t *testing.T) {
	if got := maskDigits("Page 123 of 456"); got != "Page # of #" {
		t.Errorf("maskDigits = %q, want %q", got, "Page # of #")
	}
}
