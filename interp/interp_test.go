package interp

import (
	"strings"
	"testing"

	"github.com/pdfplumber-go/pdfplumber/color"
	"github.com/pdfplumber-go/pdfplumber/font"
	"github.com/pdfplumber-go/pdfplumber/font/charcode"
	"github.com/pdfplumber-go/pdfplumber/font/pdfenc"
	"github.com/pdfplumber-go/pdfplumber/matrix"
)

type fakeResources struct {
	fonts map[string]*ResolvedFont
}

func (r *fakeResources) Font(name string) (*ResolvedFont, error) { return r.fonts[name], nil }
func (r *fakeResources) ColorSpace(name string) (*color.ColorSpace, error) {
	return color.DeviceRGB, nil
}
func (r *fakeResources) ExtGState(name string) (map[string]float64, error) { return nil, nil }
func (r *fakeResources) XObjectKind(name string) (XObjectKind, error)      { return XObjectImage, nil }
func (r *fakeResources) Image(name string) (*ImageXObject, error) {
	return &ImageXObject{Width: 10, Height: 20}, nil
}
func (r *fakeResources) Form(name string) (*FormXObject, error) { return nil, nil }

type recordingHandler struct {
	chars    []CharEvent
	paths    []PathEvent
	images   []ImageEvent
	warnings []Warning
}

func (h *recordingHandler) OnChar(e CharEvent)       { h.chars = append(h.chars, e) }
func (h *recordingHandler) OnPath(e PathEvent)       { h.paths = append(h.paths, e) }
func (h *recordingHandler) OnImage(e ImageEvent)     { h.images = append(h.images, e) }
func (h *recordingHandler) OnWarning(w Warning)      { h.warnings = append(h.warnings, w) }

func helveticaFont() *ResolvedFont {
	return &ResolvedFont{
		Name:      "F1",
		CodeSpace: charcode.Simple,
		Widths:    font.NewStandardWidths("Helvetica", &pdfenc.Standard),
		Encoding:  &pdfenc.Standard,
	}
}

func TestRunShowsText(t *testing.T) {
	res := &fakeResources{fonts: map[string]*ResolvedFont{"F1": helveticaFont()}}
	h := &recordingHandler{}
	ip := New(res, h)

	stream := `BT /F1 12 Tf 100 700 Td (Hi) Tj ET`
	if err := ip.Run(strings.NewReader(stream), matrix.Identity); err != nil {
		t.Fatal(err)
	}
	if len(h.chars) != 2 {
		t.Fatalf("got %d char events, want 2", len(h.chars))
	}
	if h.chars[0].Rune != 'H' || h.chars[1].Rune != 'i' {
		t.Errorf("got runes %q %q, want H i", h.chars[0].Rune, h.chars[1].Rune)
	}
	if h.chars[0].FontSize != 12 {
		t.Errorf("FontSize = %v, want 12", h.chars[0].FontSize)
	}
}

func TestRunBuildsRectPath(t *testing.T) {
	res := &fakeResources{}
	h := &recordingHandler{}
	ip := New(res, h)

	stream := `1 0 0 RG 10 10 100 50 re S`
	if err := ip.Run(strings.NewReader(stream), matrix.Identity); err != nil {
		t.Fatal(err)
	}
	if len(h.paths) != 1 {
		t.Fatalf("got %d path events, want 1", len(h.paths))
	}
	pe := h.paths[0]
	if !pe.Stroke || pe.Fill {
		t.Errorf("expected stroke-only path, got Fill=%v Stroke=%v", pe.Fill, pe.Stroke)
	}
	if len(pe.Path.Segments) != 5 {
		t.Errorf("got %d segments, want 5 (move+3 lines+close)", len(pe.Path.Segments))
	}
}

func TestRunTracksGraphicsStateStack(t *testing.T) {
	res := &fakeResources{}
	h := &recordingHandler{}
	ip := New(res, h)

	stream := `q 2 0 0 2 0 0 cm Q 0 0 10 10 re f`
	if err := ip.Run(strings.NewReader(stream), matrix.Identity); err != nil {
		t.Fatal(err)
	}
	if len(h.paths) != 1 {
		t.Fatalf("got %d path events, want 1", len(h.paths))
	}
	// After q/cm/Q the CTM should be restored to identity, so the rect's
	// corners land at their untransformed coordinates.
	if got := h.paths[0].Path.Segments[0].End.X; got != 0 {
		t.Errorf("corner X = %v, want 0 (CTM restored)", got)
	}
}

func TestRunReportsUnbalancedQAsWarning(t *testing.T) {
	res := &fakeResources{}
	h := &recordingHandler{}
	ip := New(res, h)

	if err := ip.Run(strings.NewReader(`Q`), matrix.Identity); err != nil {
		t.Fatal(err)
	}
	if len(h.warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(h.warnings))
	}
}

func TestRunAttachesMarkedContentFrameToChars(t *testing.T) {
	res := &fakeResources{fonts: map[string]*ResolvedFont{"F1": helveticaFont()}}
	h := &recordingHandler{}
	ip := New(res, h)

	stream := `/P <</MCID 3>> BDC BT /F1 12 Tf 0 0 Td (x) Tj ET EMC`
	if err := ip.Run(strings.NewReader(stream), matrix.Identity); err != nil {
		t.Fatal(err)
	}
	if len(h.chars) != 1 {
		t.Fatalf("got %d char events, want 1", len(h.chars))
	}
	c := h.chars[0]
	if c.Tag != "P" {
		t.Errorf("Tag = %q, want \"P\"", c.Tag)
	}
	if c.MCID == nil || *c.MCID != 3 {
		t.Errorf("MCID = %v, want 3", c.MCID)
	}
}

func TestRunEmitsImageForDo(t *testing.T) {
	res := &fakeResources{}
	h := &recordingHandler{}
	ip := New(res, h)

	if err := ip.Run(strings.NewReader(`/Im1 Do`), matrix.Identity); err != nil {
		t.Fatal(err)
	}
	if len(h.images) != 1 || h.images[0].Width != 10 {
		t.Fatalf("got %+v, want one image with Width=10", h.images)
	}
}
