package layout

import (
	"strings"
	"testing"

	"github.com/pdfplumber-go/pdfplumber/geom"
)

func wordAt(text string, x0, top, x1, bottom float64) Word {
	return Word{Text: text, BBox: geom.BBox{X0: x0, Top: top, X1: x1, Bottom: bottom}}
}

func TestClusterWordsIntoLinesGroupsByMidpoint(t *testing.T) {
	words := []Word{
		wordAt("A", 0, 0, 10, 10),
		wordAt("B", 20, 1, 30, 11),
		wordAt("C", 0, 50, 10, 60),
	}
	lines := ClusterWordsIntoLines(words, 3)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if len(lines[0].Words) != 2 {
		t.Errorf("first line has %d words, want 2", len(lines[0].Words))
	}
}

func TestSplitLinesAtColumnsBreaksOnWideGap(t *testing.T) {
	line := Line{Words: []Word{
		wordAt("Left", 0, 0, 20, 10),
		wordAt("Right", 200, 0, 220, 10),
	}}
	out := SplitLinesAtColumns([]Line{line}, 5)
	if len(out) != 2 {
		t.Fatalf("got %d lines, want 2 (column split)", len(out))
	}
}

func TestClusterLinesIntoBlocksJoinsAdjacent(t *testing.T) {
	lines := []Line{
		{Words: []Word{wordAt("a", 0, 0, 10, 10)}, BBox: geom.BBox{X0: 0, Top: 0, X1: 10, Bottom: 10}},
		{Words: []Word{wordAt("b", 0, 12, 10, 22)}, BBox: geom.BBox{X0: 0, Top: 12, X1: 10, Bottom: 22}},
		{Words: []Word{wordAt("c", 0, 100, 10, 110)}, BBox: geom.BBox{X0: 0, Top: 100, X1: 10, Bottom: 110}},
	}
	blocks := ClusterLinesIntoBlocks(lines, 5)
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	if len(blocks[0].Lines) != 2 {
		t.Errorf("first block has %d lines, want 2", len(blocks[0].Lines))
	}
}

func TestRenderFlowInsertsNewlineOnLargeVerticalGap(t *testing.T) {
	words := []Word{
		wordAt("Hello", 0, 0, 30, 10),
		wordAt("World", 35, 0, 65, 10),
		wordAt("Next", 0, 50, 30, 60),
	}
	got := RenderFlow(words, 3)
	if !strings.Contains(got, "Hello World") {
		t.Errorf("got %q, want it to contain \"Hello World\"", got)
	}
	if !strings.Contains(got, "\nNext") {
		t.Errorf("got %q, want a newline before Next", got)
	}
}

func TestRenderLayoutPreservesHorizontalSpacing(t *testing.T) {
	words := []Word{
		wordAt("A", 0, 0, 10, 10),
		wordAt("B", 50, 0, 60, 10),
	}
	got := RenderLayout(words, RenderOptions{YTolerance: 3, XDensity: 1000, YDensity: 1000, CharWidth: 10})
	if !strings.HasPrefix(got, "A") || !strings.HasSuffix(got, "B") {
		t.Fatalf("got %q", got)
	}
	if strings.Count(got, " ") < 3 {
		t.Errorf("got %q, want several spaces proportional to the 40pt gap at charWidth=10", got)
	}
}
