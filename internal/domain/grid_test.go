package domain

import "testing"

func TestCellDigit(t *testing.T) {
	tests := []struct {
		cell Cell
		want uint8
		ok   bool
	}{
		{'1', 1, true},
		{'9', 9, true},
		{Empty, 0, false},
		{'0', 0, false},
		{'x', 0, false},
	}
	for _, tc := range tests {
		d, ok := tc.cell.Digit()
		if d != tc.want || ok != tc.ok {
			t.Errorf("Cell(%q).Digit() = %d, %v, want %d, %v",
				byte(tc.cell), d, ok, tc.want, tc.ok)
		}
	}
}

func TestCellValid(t *testing.T) {
	for b := 0; b < 256; b++ {
		c := Cell(b)
		want := c == Empty || (b >= '1' && b <= '9')
		if c.Valid() != want {
			t.Errorf("Cell(%q).Valid() = %v, want %v", byte(b), c.Valid(), want)
		}
	}
}

func TestGridViews(t *testing.T) {
	var g Grid
	for r := 0; r < Shape; r++ {
		for c := 0; c < Shape; c++ {
			// distinct marker per cell, readable on failure
			g[r][c] = Cell('1' + (r*Shape+c)%9)
		}
	}

	if got := g.Row(2); got != g[2] {
		t.Errorf("Row(2) = %v, want %v", got, g[2])
	}

	col := g.Col(4)
	for r := 0; r < Shape; r++ {
		if col[r] != g[r][4] {
			t.Errorf("Col(4)[%d] = %q, want %q", r, byte(col[r]), byte(g[r][4]))
		}
	}

	// any coordinate inside a box yields the same box
	a := g.Box(3, 6)
	b := g.Box(5, 8)
	if a != b {
		t.Errorf("Box(3,6) != Box(5,8): %v vs %v", a, b)
	}
	if a[0] != g[3][6] || a[8] != g[5][8] {
		t.Errorf("Box(3,6) corners = %q, %q, want %q, %q",
			byte(a[0]), byte(a[8]), byte(g[3][6]), byte(g[5][8]))
	}
}

func TestGridEmpties(t *testing.T) {
	var g Grid
	for r := 0; r < Shape; r++ {
		for c := 0; c < Shape; c++ {
			g[r][c] = Empty
		}
	}
	if n := g.Empties(); n != 81 {
		t.Fatalf("Empties() = %d, want 81", n)
	}
	g[0][0] = '5'
	g[8][8] = '9'
	if n := g.Empties(); n != 79 {
		t.Fatalf("Empties() = %d, want 79", n)
	}
}
