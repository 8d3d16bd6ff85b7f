package color

import (
	"math"
	"testing"
)

func TestNewGrayClamps(t *testing.T) {
	if got := NewGray(-1).Gray; got != 0 {
		t.Errorf("got %v, want 0", got)
	}
	if got := NewGray(2).Gray; got != 1 {
		t.Errorf("got %v, want 1", got)
	}
}

func TestNumComponents(t *testing.T) {
	cases := []struct {
		c    Color
		want int
	}{
		{NewGray(0.5), 1},
		{NewRGB(1, 0, 0), 3},
		{NewCMYK(0, 0, 0, 1), 4},
		{NewOther([]float64{0.1, 0.2, 0.3, 0.4, 0.5}), 5},
	}
	for _, tc := range cases {
		if got := tc.c.NumComponents(); got != tc.want {
			t.Errorf("NumComponents(%+v) = %d, want %d", tc.c, got, tc.want)
		}
	}
}

func TestToRGBGray(t *testing.T) {
	r, g, b := NewGray(0.5).ToRGB()
	if r != 0.5 || g != 0.5 || b != 0.5 {
		t.Errorf("got (%v,%v,%v), want (0.5,0.5,0.5)", r, g, b)
	}
}

func TestToRGBCMYKBlackIsBlack(t *testing.T) {
	r, g, b := NewCMYK(0, 0, 0, 1).ToRGB()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("got (%v,%v,%v), want (0,0,0)", r, g, b)
	}
}

func TestToRGBCMYKWhiteIsWhite(t *testing.T) {
	r, g, b := NewCMYK(0, 0, 0, 0).ToRGB()
	if math.Abs(r-1) > 1e-9 || math.Abs(g-1) > 1e-9 || math.Abs(b-1) > 1e-9 {
		t.Errorf("got (%v,%v,%v), want (1,1,1)", r, g, b)
	}
}

func TestNewOtherCopiesSlice(t *testing.T) {
	src := []float64{1, 2, 3}
	c := NewOther(src)
	src[0] = 99
	if c.Components[0] != 1 {
		t.Error("NewOther should copy, not alias, its input slice")
	}
}
