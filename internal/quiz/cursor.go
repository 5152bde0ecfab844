package quiz

// Cursor tracks the highlighted choice of the bound choice list.
type Cursor struct {
	selected int
	size     int
}

// NewCursor returns a cursor bound to choices with the first one selected.
func NewCursor(choices []string) Cursor {
	return Cursor{size: len(choices)}
}

// Selected returns the highlighted index.
func (c Cursor) Selected() int {
	return c.selected
}

// Len returns the size of the bound choice list.
func (c Cursor) Len() int {
	return c.size
}

// MoveUp selects the previous choice, wrapping to the last one.
func (c *Cursor) MoveUp() {
	if c.size == 0 {
		return
	}
	c.selected = (c.selected - 1 + c.size) % c.size
}

// MoveDown selects the next choice, wrapping to the first one.
func (c *Cursor) MoveDown() {
	if c.size == 0 {
		return
	}
	c.selected = (c.selected + 1) % c.size
}

// Rebind replaces the bound choice list and selects the first choice.
func (c *Cursor) Rebind(choices []string) {
	c.size = len(choices)
	c.selected = 0
}
