package graphics

import (
	"testing"

	"github.com/pdfplumber-go/pdfplumber/matrix"
)

func TestDefaultStateIsBlackOpaqueSolid(t *testing.T) {
	s := Default()
	if s.LineWidth != 1 {
		t.Errorf("LineWidth = %v, want 1", s.LineWidth)
	}
	if s.StrokeAlpha != 1 || s.FillAlpha != 1 {
		t.Errorf("alpha = (%v,%v), want (1,1)", s.StrokeAlpha, s.FillAlpha)
	}
	if len(s.Dash.Array) != 0 {
		t.Errorf("expected solid dash, got %v", s.Dash.Array)
	}
	if s.CTM != matrix.Identity {
		t.Errorf("CTM = %v, want identity", s.CTM)
	}
}

func TestPushPopRestoresPriorState(t *testing.T) {
	st := NewStack()
	st.Current().LineWidth = 1
	st.Push()
	st.Current().LineWidth = 5
	if st.Current().LineWidth != 5 {
		t.Fatal("expected mutation to apply before pop")
	}
	if !st.Pop() {
		t.Fatal("expected Pop to succeed")
	}
	if st.Current().LineWidth != 1 {
		t.Errorf("LineWidth after Pop = %v, want 1", st.Current().LineWidth)
	}
}

func TestPopOnEmptyStackReportsFailure(t *testing.T) {
	st := NewStack()
	if st.Pop() {
		t.Error("expected Pop on empty stack to return false")
	}
}

func TestDepthTracksUnmatchedPushes(t *testing.T) {
	st := NewStack()
	st.Push()
	st.Push()
	if st.Depth() != 2 {
		t.Errorf("Depth = %d, want 2", st.Depth())
	}
	st.Pop()
	if st.Depth() != 1 {
		t.Errorf("Depth = %d, want 1", st.Depth())
	}
}

func TestNestedPushPopIndependentOfSiblingMutation(t *testing.T) {
	st := NewStack()
	st.Current().CTM = matrix.Translate(1, 1)
	st.Push()
	st.Current().CTM = matrix.Translate(2, 2)
	st.Push()
	st.Current().CTM = matrix.Translate(3, 3)
	st.Pop()
	if st.Current().CTM != matrix.Translate(2, 2) {
		t.Errorf("CTM after first Pop = %v, want Translate(2,2)", st.Current().CTM)
	}
	st.Pop()
	if st.Current().CTM != matrix.Translate(1, 1) {
		t.Errorf("CTM after second Pop = %v, want Translate(1,1)", st.Current().CTM)
	}
}
