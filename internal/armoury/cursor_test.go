package armoury

import "testing"

func TestCursorNeverLeavesRange(t *testing.T) {
	var c Cursor
	if c.Prev() {
		t.Fatalf("expected prev at 0 to be a no-op")
	}
	if c.Next(0) || c.Next(1) {
		t.Fatalf("expected next on empty or single-entry list to be a no-op")
	}
	for i := 0; i < 10; i++ {
		c.Next(3)
	}
	if c.Index() != 2 {
		t.Fatalf("expected cursor clamped at 2, got %d", c.Index())
	}
	c.Clamp(1)
	if c.Index() != 0 {
		t.Fatalf("expected clamp to 0, got %d", c.Index())
	}
	c.Clamp(0)
	if c.Index() != 0 {
		t.Fatalf("expected 0 on empty list, got %d", c.Index())
	}
}

func TestGridPosition(t *testing.T) {
	cases := []struct {
		i, rows, col, row int
	}{
		{0, 10, 0, 0},
		{9, 10, 0, 9},
		{10, 10, 1, 0},
		{23, 10, 2, 3},
		{3, 0, 3, 0},
	}
	for _, tc := range cases {
		col, row := GridPosition(tc.i, tc.rows)
		if col != tc.col || row != tc.row {
			t.Fatalf("GridPosition(%d, %d) = (%d, %d), want (%d, %d)", tc.i, tc.rows, col, row, tc.col, tc.row)
		}
	}
}

func TestOrdinalMapping(t *testing.T) {
	if Ordinal(10).Code != KeyEnter || Ordinal(13).Code != KeyEnter {
		t.Fatalf("expected 10 and 13 to map to enter")
	}
	if Ordinal(8).Code != KeyBackspace {
		t.Fatalf("expected 8 to map to backspace")
	}
	if k := Ordinal('a'); !k.Printable() || !k.Is('A') {
		t.Fatalf("expected 'a' to be printable and match A case-insensitively")
	}
	if Ordinal(0).Code != KeyNone {
		t.Fatalf("expected 0 to map to no key")
	}
}
