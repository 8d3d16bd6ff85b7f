package charcode

import "testing"

func TestDecodeSimpleIsOneByte(t *testing.T) {
	code, n := Simple.Decode([]byte{0x41, 0x42})
	if n != 1 || code != 0x41 {
		t.Errorf("got (%d,%d), want (65,1)", code, n)
	}
}

func TestDecodeUCS2IsTwoBytes(t *testing.T) {
	code, n := UCS2.Decode([]byte{0x01, 0x02, 0xFF})
	if n != 2 || code != 0x0102 {
		t.Errorf("got (%d,%d), want (258,2)", code, n)
	}
}

func TestDecodeEmptyReturnsZeroLength(t *testing.T) {
	_, n := Simple.Decode(nil)
	if n != 0 {
		t.Errorf("n = %d, want 0", n)
	}
}

func TestDecodeMultiRangeCodeSpace(t *testing.T) {
	// A mixed 1-byte / 2-byte code space, as some embedded CMaps declare.
	cs := CodeSpaceRange{
		{Low: []byte{0x00}, High: []byte{0x7F}},
		{Low: []byte{0x80, 0x00}, High: []byte{0xFF, 0xFF}},
	}
	code, n := cs.Decode([]byte{0x41})
	if n != 1 || code != 0x41 {
		t.Errorf("single-byte branch: got (%d,%d)", code, n)
	}
	code, n = cs.Decode([]byte{0x80, 0x01})
	if n != 2 {
		t.Errorf("two-byte branch: got n=%d, want 2", n)
	}
	_ = code
}

func TestAllCodesYieldsEachCode(t *testing.T) {
	var codes [][]byte
	Simple.AllCodes([]byte("AB"), func(raw []byte, valid bool) bool {
		cp := append([]byte(nil), raw...)
		codes = append(codes, cp)
		return true
	})
	if len(codes) != 2 {
		t.Fatalf("got %d codes, want 2", len(codes))
	}
}

func TestMatchesBoundary(t *testing.T) {
	r := Range{Low: []byte{0x20}, High: []byte{0x7E}}
	if !r.Matches([]byte{0x20}) {
		t.Error("expected low bound to match")
	}
	if r.Matches([]byte{0x1F}) {
		t.Error("expected below-range byte to not match")
	}
}
