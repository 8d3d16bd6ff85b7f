package shapes

import (
	"testing"

	"github.com/pdfplumber-go/pdfplumber/color"
	"github.com/pdfplumber-go/pdfplumber/geom"
	"github.com/pdfplumber-go/pdfplumber/interp"
	"github.com/pdfplumber-go/pdfplumber/path"
)

func identity(p geom.Point) geom.Point { return p }

func TestFromPathEventDetectsRectangle(t *testing.T) {
	var b path.Builder
	b.Rect(10, 20, 100, 50)
	ev := interp.PathEvent{Path: b.Path(), Stroke: true, Fill: true, FillColor: color.Black}

	rects, lines, curves := FromPathEvent(ev, identity)
	if len(rects) != 1 {
		t.Fatalf("got %d rects, %d lines, %d curves; want 1 rect", len(rects), len(lines), len(curves))
	}
	want := geom.BBox{X0: 10, Top: 20, X1: 110, Bottom: 70}
	if rects[0].BBox != want {
		t.Errorf("rect bbox = %+v, want %+v", rects[0].BBox, want)
	}
}

func TestFromPathEventDecomposesNonRectangleIntoLines(t *testing.T) {
	var b path.Builder
	b.MoveTo(geom.Point{X: 0, Y: 0})
	b.LineTo(geom.Point{X: 10, Y: 0})
	b.LineTo(geom.Point{X: 10, Y: 20})
	ev := interp.PathEvent{Path: b.Path(), Stroke: true}

	rects, lines, _ := FromPathEvent(ev, identity)
	if len(rects) != 0 {
		t.Fatalf("got %d rects, want 0 (open triangle-ish path isn't a rectangle)", len(rects))
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0].Orientation != Horizontal {
		t.Errorf("first segment orientation = %v, want Horizontal", lines[0].Orientation)
	}
	if lines[1].Orientation != Vertical {
		t.Errorf("second segment orientation = %v, want Vertical", lines[1].Orientation)
	}
}

func TestFromPathEventExtractsCurve(t *testing.T) {
	var b path.Builder
	b.MoveTo(geom.Point{X: 0, Y: 0})
	b.CurveTo(geom.Point{X: 1, Y: 5}, geom.Point{X: 4, Y: 5}, geom.Point{X: 5, Y: 0})
	ev := interp.PathEvent{Path: b.Path(), Stroke: true}

	_, _, curves := FromPathEvent(ev, identity)
	if len(curves) != 1 {
		t.Fatalf("got %d curves, want 1", len(curves))
	}
	if curves[0].Orientation != Horizontal {
		t.Errorf("curve chord orientation = %v, want Horizontal (same start/end y)", curves[0].Orientation)
	}
}

func TestClassifyDiagonal(t *testing.T) {
	if got := classify(5, 5); got != Diagonal {
		t.Errorf("classify(5,5) = %v, want Diagonal", got)
	}
}
