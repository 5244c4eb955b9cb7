package cursor

// Viewport is the window of rows a pane can show at once.
type Viewport struct {
	Offset int
	Height int
}

// SetHeight updates the number of visible rows.
func (v *Viewport) SetHeight(h int) {
	v.Height = max(h, 1)
}

func (v *Viewport) height() int {
	if v.Height <= 0 {
		return 1
	}
	return v.Height
}

// Follow scrolls so row y stays visible: down once the row passes the
// bottom edge, up once it passes the top.
func (v *Viewport) Follow(y int) {
	h := v.height()
	if y >= v.Offset+h {
		v.Offset = y - h + 1
	}
	if y < v.Offset {
		v.Offset = y
	}
	v.Offset = max(v.Offset, 0)
}

// Clamp keeps the offset valid for total rows so a shrinking list never
// leaves blank space above the last row.
func (v *Viewport) Clamp(total int) {
	v.Offset = max(min(v.Offset, total-v.height()), 0)
}

// Visible returns the half-open row range [start, end) to render.
func (v *Viewport) Visible(total int) (int, int) {
	start := min(v.Offset, max(total, 0))
	end := min(start+v.height(), total)
	return start, max(end, start)
}

// Reset scrolls back to the top.
func (v *Viewport) Reset() {
	v.Offset = 0
}
