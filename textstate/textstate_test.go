package textstate

import (
	"testing"

	"github.com/pdfplumber-go/pdfplumber/matrix"
)

func TestDefaultState(t *testing.T) {
	s := Default()
	if s.HScalingPct != 100 {
		t.Errorf("HScalingPct = %v, want 100", s.HScalingPct)
	}
	if s.RenderMode != Fill {
		t.Errorf("RenderMode = %v, want Fill", s.RenderMode)
	}
}

func TestBeginTextResetsMatrices(t *testing.T) {
	s := Default()
	s.SetTextMatrix(matrix.Translate(5, 5))
	s.BeginText()
	if s.TextMatrix != matrix.Identity || s.LineMatrix != matrix.Identity {
		t.Error("BeginText should reset both matrices to identity")
	}
	if !s.InTextObject {
		t.Error("expected InTextObject true after BeginText")
	}
}

func TestEndTextClearsFlag(t *testing.T) {
	s := Default()
	s.BeginText()
	s.EndText()
	if s.InTextObject {
		t.Error("expected InTextObject false after EndText")
	}
}

func TestMoveLineSetLeadingUpdatesLeading(t *testing.T) {
	s := Default()
	s.MoveLineSetLeading(0, -12)
	if s.Leading != 12 {
		t.Errorf("Leading = %v, want 12", s.Leading)
	}
}

func TestNextLineUsesLeading(t *testing.T) {
	s := Default()
	s.Leading = 14
	s.NextLine()
	if s.TextMatrix[5] != -14 {
		t.Errorf("TextMatrix f = %v, want -14", s.TextMatrix[5])
	}
	if s.LineMatrix != s.TextMatrix {
		t.Error("NextLine should copy the line matrix into the text matrix")
	}
}

func TestGlyphDisplacementIncludesWordSpacingOnlyForSpace(t *testing.T) {
	s := Default()
	s.FontSize = 10
	s.CharSpacing = 1
	s.WordSpacing = 2
	withSpace := s.GlyphDisplacement(500, true)
	withoutSpace := s.GlyphDisplacement(500, false)
	if withSpace-withoutSpace != 2 {
		t.Errorf("word spacing delta = %v, want 2", withSpace-withoutSpace)
	}
}

func TestGlyphDisplacementAppliesHScaling(t *testing.T) {
	s := Default()
	s.FontSize = 10
	s.HScalingPct = 50
	got := s.GlyphDisplacement(1000, false)
	want := 10.0 * 0.5
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTJAdjustmentSign(t *testing.T) {
	s := Default()
	s.FontSize = 10
	got := s.TJAdjustment(250)
	if got >= 0 {
		t.Errorf("TJAdjustment(250) = %v, want negative", got)
	}
}

func TestFontMatrixIncludesRise(t *testing.T) {
	s := Default()
	s.FontSize = 12
	s.Rise = 3
	m := s.FontMatrix()
	if m[5] != 3 {
		t.Errorf("FontMatrix()[5] (f, rise) = %v, want 3", m[5])
	}
	if m[0] != 12 {
		t.Errorf("FontMatrix()[0] (a, fontSize*hScaling) = %v, want 12", m[0])
	}
}
