package matrix

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/pdfplumber-go/pdfplumber/geom"
)

func TestIdentityMulIsNoop(t *testing.T) {
	m := Matrix{2, 0, 0, 3, 5, 7}
	if d := cmp.Diff(m, Identity.Mul(m)); d != "" {
		t.Error(d)
	}
	if d := cmp.Diff(m, m.Mul(Identity)); d != "" {
		t.Error(d)
	}
}

func TestInvRoundTrip(t *testing.T) {
	m := Matrix{2, 0.5, -1, 3, 10, -4}
	got := m.Mul(m.Inv())
	if d := cmp.Diff(Identity, got, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Error(d)
	}
}

func TestTransformPointTranslate(t *testing.T) {
	m := Translate(3, 4)
	got := m.TransformPoint(geom.Point{X: 1, Y: 1})
	want := geom.Point{X: 4, Y: 5}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestRotation90FullTurn(t *testing.T) {
	m := Rotation90(90).Mul(Rotation90(90)).Mul(Rotation90(90)).Mul(Rotation90(90))
	if d := cmp.Diff(Identity, m, cmpopts.EquateApprox(0, 1e-9)); d != "" {
		t.Error(d)
	}
}

func TestIsInvertible(t *testing.T) {
	if !Identity.IsInvertible() {
		t.Error("identity should be invertible")
	}
	degenerate := Matrix{0, 0, 0, 0, 1, 1}
	if degenerate.IsInvertible() {
		t.Error("zero linear part should not be invertible")
	}
}
