package edges

import (
	"testing"

	"github.com/pdfplumber-go/pdfplumber/geom"
	"github.com/pdfplumber-go/pdfplumber/shapes"
)

func TestFromShapesProducesFourEdgesPerRect(t *testing.T) {
	rects := []shapes.Rect{
		{BBox: geom.BBox{X0: 0, Top: 0, X1: 10, Bottom: 10}},
		{BBox: geom.BBox{X0: 20, Top: 0, X1: 30, Bottom: 10}},
	}
	got := FromShapes(nil, rects, nil)
	if len(got) != 8 {
		t.Fatalf("got %d edges, want 4*2=8", len(got))
	}
	wantOrder := []Source{SourceRectTop, SourceRectBottom, SourceRectLeft, SourceRectRight}
	for i, want := range wantOrder {
		if got[i].Source != want {
			t.Errorf("edge %d source = %v, want %v", i, got[i].Source, want)
		}
	}
}

func TestFromShapesIncludesLinesAndCurves(t *testing.T) {
	lines := []shapes.Line{{X0: 0, Top: 0, X1: 10, Bottom: 0, Orientation: shapes.Horizontal}}
	curves := []shapes.Curve{{Points: []geom.Point{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 10, Y: 5}, {X: 10, Y: 10}}, Orientation: shapes.Diagonal}}
	got := FromShapes(lines, nil, curves)
	if len(got) != 2 {
		t.Fatalf("got %d edges, want 2", len(got))
	}
	if got[0].Source != SourceLine || got[1].Source != SourceCurve {
		t.Errorf("unexpected sources: %v, %v", got[0].Source, got[1].Source)
	}
}
