package table

import (
	"testing"

	"github.com/pdfplumber-go/pdfplumber/edges"
	"github.com/pdfplumber-go/pdfplumber/geom"
	"github.com/pdfplumber-go/pdfplumber/shapes"
)

func gridEdges(n int, cellSize float64) []edges.Edge {
	var out []edges.Edge
	extent := float64(n) * cellSize
	for i := 0; i <= n; i++ {
		y := float64(i) * cellSize
		out = append(out, edges.Edge{X0: 0, Top: y, X1: extent, Bottom: y, Orientation: shapes.Horizontal})
		x := float64(i) * cellSize
		out = append(out, edges.Edge{X0: x, Top: 0, X1: x, Bottom: extent, Orientation: shapes.Vertical})
	}
	return out
}

func TestFindLatticeDetects3x3BorderedTable(t *testing.T) {
	es := gridEdges(3, 10)
	tables := Find(es, nil, nil, Settings{Strategy: Lattice})
	if len(tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(tables))
	}
	tbl := tables[0]
	if len(tbl.Cells) != 9 {
		t.Fatalf("got %d cells, want 9", len(tbl.Cells))
	}
	if len(tbl.Rows) != 3 {
		t.Errorf("got %d rows, want 3", len(tbl.Rows))
	}
	if len(tbl.Columns) != 3 {
		t.Errorf("got %d columns, want 3", len(tbl.Columns))
	}
	for _, r := range tbl.Rows {
		if len(r.Cells) != 3 {
			t.Errorf("row has %d cells, want 3", len(r.Cells))
		}
	}
}

func TestFindLatticeAttributesCellText(t *testing.T) {
	es := gridEdges(2, 20)
	chars := []Char{
		{Text: "A", BBox: geom.BBox{X0: 5, Top: 5, X1: 10, Bottom: 15}},
		{Text: "B", BBox: geom.BBox{X0: 25, Top: 5, X1: 30, Bottom: 15}},
	}
	tables := Find(es, nil, chars, Settings{Strategy: Lattice})
	if len(tables) != 1 {
		t.Fatalf("got %d tables, want 1", len(tables))
	}
	var gotA, gotB bool
	for _, c := range tables[0].Cells {
		if c.Text == "A" {
			gotA = true
		}
		if c.Text == "B" {
			gotB = true
		}
	}
	if !gotA || !gotB {
		t.Errorf("expected to find cells with text A and B, got cells %+v", tables[0].Cells)
	}
}

func TestFindLatticeReturnsNoTableWithoutEdges(t *testing.T) {
	if got := Find(nil, nil, nil, Settings{}); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestHistogramPeaksFindsAlignedCluster(t *testing.T) {
	peaks := histogramPeaks([]float64{10, 10.5, 11, 50}, 2, 3)
	if len(peaks) != 1 {
		t.Fatalf("got %d peaks, want 1", len(peaks))
	}
	if peaks[0] < 10 || peaks[0] > 11 {
		t.Errorf("peak = %v, want ~10.5", peaks[0])
	}
}
