package font

import (
	"testing"

	"github.com/pdfplumber-go/pdfplumber/font/pdfenc"
)

func TestStripSubsetPrefix(t *testing.T) {
	cases := map[string]string{
		"ABCDEF+Helvetica": "Helvetica",
		"Helvetica":        "Helvetica",
		"abcdef+Helvetica": "abcdef+Helvetica",
		"ABCDE+Helvetica":  "ABCDE+Helvetica",
	}
	for in, want := range cases {
		if got := StripSubsetPrefix(in); got != want {
			t.Errorf("StripSubsetPrefix(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWidthsPrefersExplicitArray(t *testing.T) {
	w := NewWidths(65, 66, []float64{700, 750}, 0, &pdfenc.Standard)
	if got := w.Width(65); got != 700 {
		t.Errorf("Width(65) = %v, want 700", got)
	}
	if got := w.Width(66); got != 750 {
		t.Errorf("Width(66) = %v, want 750", got)
	}
}

func TestWidthsFallsBackToStandardMetrics(t *testing.T) {
	w := NewStandardWidths("Helvetica", &pdfenc.Standard)
	code := int('A')
	if got := w.Width(code); got != 667 {
		t.Errorf("Width(%d) = %v, want 667", code, got)
	}
}

func TestWidthsOutOfRangeUsesMissingWidth(t *testing.T) {
	w := NewWidths(65, 66, []float64{700, 750}, 250, &pdfenc.Standard)
	if got := w.Width(90); got != 250 {
		t.Errorf("Width(90) = %v, want 250 (MissingWidth)", got)
	}
}

func TestCourierIsMonospace(t *testing.T) {
	m := StandardMetrics["Courier"]
	for name, w := range m.Width {
		if w != 600 {
			t.Errorf("Courier width for %q = %v, want 600", name, w)
		}
	}
}

func TestIsStandardFourteen(t *testing.T) {
	if !IsStandardFourteen("XYZABC+Times-Bold") {
		t.Errorf("expected Times-Bold to be recognized after subset stripping")
	}
	if IsStandardFourteen("SomeRandomFont") {
		t.Errorf("did not expect SomeRandomFont to be a standard font")
	}
}
