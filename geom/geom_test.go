package geom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBBoxUnionUnionOfSelf(t *testing.T) {
	b := BBox{0, 0, 10, 10}
	if d := cmp.Diff(b, b.Union(b)); d != "" {
		t.Error(d)
	}
}

func TestBBoxIntersectionOfSelf(t *testing.T) {
	b := BBox{1, 2, 10, 12}
	if d := cmp.Diff(b, b.Intersection(b)); d != "" {
		t.Error(d)
	}
}

func TestBBoxUnion(t *testing.T) {
	a := BBox{0, 0, 5, 5}
	b := BBox{3, 3, 10, 8}
	got := a.Union(b)
	want := BBox{0, 0, 10, 8}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestBBoxContainsPointBoundary(t *testing.T) {
	b := BBox{0, 0, 10, 10}
	if !b.ContainsPoint(Point{0, 0}) {
		t.Error("min corner should be contained")
	}
	if b.ContainsPoint(Point{10, 5}) {
		t.Error("max edge should be excluded")
	}
}

func TestFlipYInvolution(t *testing.T) {
	h := 792.0
	for _, y := range []float64{0, 100, 792, 63.5} {
		if got := FlipY(FlipY(y, h), h); got != y {
			t.Errorf("FlipY(FlipY(%v)) = %v, want %v", y, got, y)
		}
	}
}

func TestBBoxOverlaps(t *testing.T) {
	a := BBox{0, 0, 5, 5}
	b := BBox{5, 5, 10, 10}
	if a.Overlaps(b) {
		t.Error("edge-touching boxes should not overlap (zero area intersection)")
	}
	c := BBox{4, 4, 10, 10}
	if !a.Overlaps(c) {
		t.Error("expected overlap")
	}
}
