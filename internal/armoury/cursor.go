package armoury

// Cursor is a selection index into a sequence of length n. It stays within
// [0, n-1], or at 0 when the sequence is empty, and never wraps.
type Cursor struct {
	idx int
}

func (c Cursor) Index() int {
	return c.idx
}

// Next moves forward one entry. It reports whether the cursor moved.
func (c *Cursor) Next(n int) bool {
	if c.idx >= n-1 {
		return false
	}
	c.idx++
	return true
}

func (c *Cursor) Prev() bool {
	if c.idx <= 0 {
		return false
	}
	c.idx--
	return true
}

// Clamp pulls the cursor back inside a sequence of length n.
func (c *Cursor) Clamp(n int) {
	if c.idx > n-1 {
		c.idx = n - 1
	}
	if c.idx < 0 {
		c.idx = 0
	}
}

// GridPosition places entry i of a list laid out top to bottom in columns of
// rows entries each.
func GridPosition(i, rows int) (col, row int) {
	if rows < 1 {
		rows = 1
	}
	return i / rows, i % rows
}
