package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// fillRow fills row y with cell c, leaving the listed columns empty.
func fillRow(g *Grid, y int, c Cell, gaps ...int) {
	skip := make(map[int]bool, len(gaps))
	for _, x := range gaps {
		skip[x] = true
	}
	for x := 0; x < Width; x++ {
		if !skip[x] {
			g.Set(x, y, c)
		}
	}
}

func TestNewGridEmpty(t *testing.T) {
	g := NewGrid()
	rows := g.Rows()
	if len(rows) != Height {
		t.Fatalf("expected %d rows, got %d", Height, len(rows))
	}
	for y, row := range rows {
		if len(row) != Width {
			t.Fatalf("row %d: expected %d cells, got %d", y, Width, len(row))
		}
	}
	if g.FilledCount() != 0 {
		t.Errorf("new grid should be empty, got %d filled cells", g.FilledCount())
	}
}

func TestGridOccupied(t *testing.T) {
	g := NewGrid()
	g.Set(3, 5, KindT.Cell())

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"empty cell", 0, 0, false},
		{"settled cell", 3, 5, true},
		{"left of board", -1, 5, true},
		{"right of board", Width, 5, true},
		{"floor", 4, Height, true},
		{"above top", 4, -1, false},
		{"above top outside columns", -1, -1, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.Occupied(tc.x, tc.y); got != tc.expected {
				t.Errorf("Occupied(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestGridSetOutOfBoundsIgnored(t *testing.T) {
	g := NewGrid()
	g.Set(-1, 0, 1)
	g.Set(0, -1, 1)
	g.Set(Width, 0, 1)
	g.Set(0, Height, 1)
	if g.FilledCount() != 0 {
		t.Errorf("out-of-bounds writes should be ignored, got %d filled", g.FilledCount())
	}
	if g.Get(-1, -1) != Empty {
		t.Error("out-of-bounds Get should return Empty")
	}
}

func TestRowFull(t *testing.T) {
	g := NewGrid()
	fillRow(g, 19, KindI.Cell())
	fillRow(g, 18, KindI.Cell(), 4)

	if !g.RowFull(19) {
		t.Error("row 19 should be full")
	}
	if g.RowFull(18) {
		t.Error("row 18 has a gap and should not be full")
	}
	if g.RowFull(-1) || g.RowFull(Height) {
		t.Error("out-of-range rows are never full")
	}
}

func TestFullRowsBottomUp(t *testing.T) {
	g := NewGrid()
	fillRow(g, 10, 1)
	fillRow(g, 19, 2)
	fillRow(g, 15, 3)

	if diff := cmp.Diff([]int{19, 15, 10}, g.FullRows()); diff != "" {
		t.Errorf("FullRows mismatch (-want +got):\n%s", diff)
	}
}

func TestRemoveRow(t *testing.T) {
	g := NewGrid()
	g.Set(0, 0, 1)  // top row marker
	g.Set(1, 17, 2) // above the removed row
	fillRow(g, 18, 3)
	g.Set(2, 19, 4) // below the removed row

	g.RemoveRow(18)

	if g.Get(0, 1) != 1 {
		t.Error("top row should shift down by one")
	}
	if g.Get(1, 18) != 2 {
		t.Error("row above the removed row should shift down by one")
	}
	if g.Get(2, 19) != 4 {
		t.Error("row below the removed row should be untouched")
	}
	for x := 0; x < Width; x++ {
		if g.Get(x, 0) != Empty {
			t.Fatalf("new top row should be empty, got %d at x=%d", g.Get(x, 0), x)
		}
	}
}

func TestClearRowsOrderIndependent(t *testing.T) {
	build := func() *Grid {
		g := NewGrid()
		fillRow(g, 19, 1)
		g.Set(0, 18, 5) // survivor between the two full rows
		fillRow(g, 17, 2)
		g.Set(9, 16, 6) // survivor above both
		return g
	}

	orders := [][]int{{19, 17}, {17, 19}, {17, 19, 17}}
	var results [][][]Cell
	for _, rows := range orders {
		g := build()
		if n := g.ClearRows(rows); n != 2 {
			t.Fatalf("ClearRows(%v) removed %d rows, expected 2", rows, n)
		}
		results = append(results, g.Rows())
	}

	for i := 1; i < len(results); i++ {
		if diff := cmp.Diff(results[0], results[i]); diff != "" {
			t.Errorf("order %v differs from %v (-first +this):\n%s", orders[i], orders[0], diff)
		}
	}

	got := results[0]
	if got[19][0] != 5 {
		t.Errorf("survivor from row 18 should land on row 19, got %v", got[19])
	}
	if got[18][9] != 6 {
		t.Errorf("survivor from row 16 should land on row 18, got %v", got[18])
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < Width; x++ {
			if got[y][x] != Empty {
				t.Fatalf("top rows should be empty after clearing, got %d at (%d,%d)", got[y][x], x, y)
			}
		}
	}
}

func TestClearRowsNoFullRowsIsIdentity(t *testing.T) {
	g := NewGrid()
	fillRow(g, 19, 3, 0)
	g.Set(4, 12, 7)
	before := g.Rows()

	if n := g.ClearRows(g.FullRows()); n != 0 {
		t.Errorf("expected 0 rows cleared, got %d", n)
	}
	if diff := cmp.Diff(before, g.Rows()); diff != "" {
		t.Errorf("grid should be unchanged when no rows are full (-before +after):\n%s", diff)
	}
}

func TestGridRowsIsCopy(t *testing.T) {
	g := NewGrid()
	rows := g.Rows()
	rows[0][0] = 7
	if g.Get(0, 0) != Empty {
		t.Error("mutating Rows() result must not affect the grid")
	}
}

func TestCellKind(t *testing.T) {
	if _, ok := Empty.Kind(); ok {
		t.Error("Empty has no kind")
	}
	if _, ok := Cell(KindCount + 1).Kind(); ok {
		t.Error("out-of-range cell has no kind")
	}
	for _, def := range Catalog() {
		k, ok := def.Kind.Cell().Kind()
		if !ok || k != def.Kind {
			t.Errorf("Cell round trip for %v gave %v, %v", def.Kind, k, ok)
		}
	}
}
