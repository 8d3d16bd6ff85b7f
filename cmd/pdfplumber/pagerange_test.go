package main

import "testing"

func TestParsePageRangeEmptyMeansAllPages(t *testing.T) {
	got, err := parsePageRange("", 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestParsePageRangeCommasAndRanges(t *testing.T) {
	got, err := parsePageRange("1,3-5,8", 10)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{1, 3, 4, 5, 8}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestParsePageRangeDeduplicates(t *testing.T) {
	got, err := parsePageRange("1,1,1-2", 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %v, want [1 2]", got)
	}
}

func TestParsePageRangeZeroIsInvalid(t *testing.T) {
	if _, err := parsePageRange("0", 5); err == nil {
		t.Fatal("expected an error for page 0")
	}
}

func TestParsePageRangeOutOfBoundsIsInvalid(t *testing.T) {
	if _, err := parsePageRange("99", 5); err == nil {
		t.Fatal("expected an error for a page beyond the document")
	}
}

func TestParsePageRangeInvertedRangeIsInvalid(t *testing.T) {
	if _, err := parsePageRange("5-2", 10); err == nil {
		t.Fatal("expected an error for an inverted range")
	}
}
