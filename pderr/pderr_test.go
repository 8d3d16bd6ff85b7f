package pderr

import (
	"errors"
	"testing"
)

func TestWrapNilIsNil(t *testing.T) {
	if Wrap(nil, KindPage) != nil {
		t.Errorf("Wrap(nil, ...) should return nil")
	}
}

func TestKindOfRoundTrips(t *testing.T) {
	err := Wrap(errors.New("boom"), KindMalformed)
	if got := KindOf(err); got != KindMalformed {
		t.Errorf("KindOf = %v, want KindMalformed", got)
	}
}

func TestKindOfUnwrappedErrorIsOther(t *testing.T) {
	if got := KindOf(errors.New("plain")); got != KindOther {
		t.Errorf("KindOf(plain error) = %v, want KindOther", got)
	}
}

func TestWrapPageIncludesPageNumber(t *testing.T) {
	err := WrapPage(errors.New("bad glyph"), 3, KindPage)
	if got := err.Error(); got == "" {
		t.Fatal("expected non-empty message")
	}
}
