// Package cursor tracks pane positions. All movement saturates at the
// bounds, nothing wraps.
package cursor

// Cursor is a column/row position inside a pane.
type Cursor struct {
	X int
	Y int
}

// New returns a cursor at x, y, clamped to be non-negative.
func New(x, y int) Cursor {
	return Cursor{X: max(x, 0), Y: max(y, 0)}
}

// Reset moves the cursor back to the origin.
func (c *Cursor) Reset() {
	c.X, c.Y = 0, 0
}

// MoveUp moves up by amount, stopping at row 0.
func (c *Cursor) MoveUp(amount int) {
	c.Y = max(c.Y-amount, 0)
}

// MoveDown moves down by amount, stopping at limit. A negative limit is
// treated as 0.
func (c *Cursor) MoveDown(amount, limit int) {
	c.Y = min(c.Y+amount, max(limit, 0))
}

// MoveLeft moves left by amount, stopping at column 0.
func (c *Cursor) MoveLeft(amount int) {
	c.X = max(c.X-amount, 0)
}

// MoveRight moves right by amount, stopping at limit.
func (c *Cursor) MoveRight(amount, limit int) {
	c.X = min(c.X+amount, max(limit, 0))
}

// ClampY pulls the row back inside [0, limit].
func (c *Cursor) ClampY(limit int) {
	c.Y = max(min(c.Y, limit), 0)
}

// ClampX pulls the column back inside [0, limit].
func (c *Cursor) ClampX(limit int) {
	c.X = max(min(c.X, limit), 0)
}
