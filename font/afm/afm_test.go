package afm

import "testing"

func TestStandard14HasHelvetica(t *testing.T) {
	m, ok := Standard14["Helvetica"]
	if !ok {
		t.Fatal("expected Helvetica in Standard14")
	}
	if w, ok := m.WidthOf("A"); !ok || w != 667 {
		t.Errorf("WidthOf(A) = %v, %v, want 667, true", w, ok)
	}
}

func TestWidthOfNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	if _, ok := m.WidthOf("A"); ok {
		t.Errorf("expected nil Metrics to report no width")
	}
}
