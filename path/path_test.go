package path

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pdfplumber-go/pdfplumber/geom"
)

func TestRectProducesClosedFourSidedSubpath(t *testing.T) {
	b := NewBuilder()
	b.Rect(0, 0, 10, 5)
	p := b.Path()
	if !p.IsClosed() {
		t.Fatal("expected closed subpath")
	}
	kinds := make([]SegmentKind, len(p.Segments))
	for i, s := range p.Segments {
		kinds[i] = s.Kind
	}
	want := []SegmentKind{MoveTo, LineTo, LineTo, LineTo, ClosePath}
	if d := cmp.Diff(want, kinds); d != "" {
		t.Error(d)
	}
}

func TestRectBoundingBox(t *testing.T) {
	b := NewBuilder()
	b.Rect(2, 3, 10, 5)
	got := b.Path().BoundingBox()
	want := geom.BBox{X0: 2, Top: 3, X1: 12, Bottom: 8}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestCurveToVUsesCurrentPointAsFirstControl(t *testing.T) {
	b := NewBuilder()
	b.MoveTo(geom.Point{X: 0, Y: 0})
	b.CurveToV(geom.Point{X: 5, Y: 5}, geom.Point{X: 10, Y: 0})
	seg := b.Path().Segments[1]
	if seg.Kind != CurveTo {
		t.Fatalf("expected CurveTo, got %v", seg.Kind)
	}
	if d := cmp.Diff(geom.Point{X: 0, Y: 0}, seg.CP1); d != "" {
		t.Error(d)
	}
}

func TestCurveToYUsesEndAsSecondControl(t *testing.T) {
	b := NewBuilder()
	b.MoveTo(geom.Point{X: 0, Y: 0})
	b.CurveToY(geom.Point{X: 3, Y: 3}, geom.Point{X: 10, Y: 0})
	seg := b.Path().Segments[1]
	if d := cmp.Diff(geom.Point{X: 10, Y: 0}, seg.CP2); d != "" {
		t.Error(d)
	}
}

func TestClosePathReturnsToSubpathStart(t *testing.T) {
	b := NewBuilder()
	start := geom.Point{X: 1, Y: 1}
	b.MoveTo(start)
	b.LineTo(geom.Point{X: 5, Y: 1})
	b.ClosePath()
	cur, ok := b.CurrentPoint()
	if !ok {
		t.Fatal("expected current point")
	}
	if d := cmp.Diff(start, cur); d != "" {
		t.Error(d)
	}
}

func TestResetClearsPath(t *testing.T) {
	b := NewBuilder()
	b.Rect(0, 0, 1, 1)
	b.Reset()
	if len(b.Path().Segments) != 0 {
		t.Error("expected empty path after Reset")
	}
	if _, ok := b.CurrentPoint(); ok {
		t.Error("expected no current point after Reset")
	}
}

func TestLineToWithoutMoveToActsAsMoveTo(t *testing.T) {
	b := NewBuilder()
	p := geom.Point{X: 3, Y: 4}
	b.LineTo(p)
	segs := b.Path().Segments
	if len(segs) != 1 || segs[0].Kind != MoveTo {
		t.Fatalf("expected single MoveTo, got %+v", segs)
	}
}
