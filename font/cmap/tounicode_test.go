package cmap

import (
	"strings"
	"testing"
)

const sampleCMap = `
/CIDInit /ProcSet findresource begin
12 dict begin
begincmap
1 begincodespacerange
<0000> <FFFF>
endcodespacerange
2 beginbfchar
<0003> <0041>
<0004> <0042>
endbfchar
1 beginbfrange
<0010> <0012> <0061>
endbfrange
endcmap
end
end
`

func TestParseToUnicodeBfChar(t *testing.T) {
	tu, err := ParseToUnicode(strings.NewReader(sampleCMap))
	if err != nil {
		t.Fatal(err)
	}
	rr, n := tu.Decode([]byte{0x00, 0x03})
	if n != 2 || string(rr) != "A" {
		t.Errorf("got (%q,%d), want (\"A\",2)", string(rr), n)
	}
}

func TestParseToUnicodeBfRangeIncrementsLastRune(t *testing.T) {
	tu, err := ParseToUnicode(strings.NewReader(sampleCMap))
	if err != nil {
		t.Fatal(err)
	}
	rr, _ := tu.Decode([]byte{0x00, 0x11})
	if string(rr) != "b" {
		t.Errorf("got %q, want b (0x61+1)", string(rr))
	}
}

func TestDecodeUnmappedCodeReturnsReplacementChar(t *testing.T) {
	tu, err := ParseToUnicode(strings.NewReader(sampleCMap))
	if err != nil {
		t.Fatal(err)
	}
	rr, n := tu.Decode([]byte{0xAB, 0xCD})
	if n != 2 || len(rr) != 1 || rr[0] != '�' {
		t.Errorf("got %v", rr)
	}
}
