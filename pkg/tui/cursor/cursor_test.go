package cursor

import (
	"math/rand"
	"testing"
)

func TestMovementSaturates(t *testing.T) {
	c := New(0, 0)
	c.MoveUp(3)
	c.MoveLeft(3)
	if c.X != 0 || c.Y != 0 {
		t.Fatalf("expected origin, got %+v", c)
	}

	c.MoveDown(10, 4)
	c.MoveRight(10, 7)
	if c.X != 7 || c.Y != 4 {
		t.Fatalf("expected (7,4), got %+v", c)
	}

	c.MoveDown(1, -1)
	if c.Y != 0 {
		t.Fatalf("negative limit should clamp to row 0, got %d", c.Y)
	}
}

func TestNewClampsNegative(t *testing.T) {
	c := New(-2, -5)
	if c.X != 0 || c.Y != 0 {
		t.Fatalf("expected origin, got %+v", c)
	}
}

func TestRandomMovesStayInBounds(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	c := New(0, 0)
	for i := 0; i < 2000; i++ {
		limit := r.Intn(20)
		amount := r.Intn(5)
		switch r.Intn(4) {
		case 0:
			c.MoveUp(amount)
		case 1:
			c.MoveDown(amount, limit)
			if c.Y > limit && c.Y > 0 {
				t.Fatalf("row %d exceeded limit %d", c.Y, limit)
			}
		case 2:
			c.MoveLeft(amount)
		case 3:
			c.MoveRight(amount, limit)
			if c.X > limit && c.X > 0 {
				t.Fatalf("column %d exceeded limit %d", c.X, limit)
			}
		}
		if c.X < 0 || c.Y < 0 {
			t.Fatalf("negative cursor %+v", c)
		}
	}
}

func TestViewportFollow(t *testing.T) {
	v := Viewport{}
	v.SetHeight(3)

	v.Follow(2)
	if v.Offset != 0 {
		t.Fatalf("row inside window should not scroll, offset=%d", v.Offset)
	}
	v.Follow(3)
	if v.Offset != 1 {
		t.Fatalf("expected offset 1 after passing bottom, got %d", v.Offset)
	}
	v.Follow(7)
	if v.Offset != 5 {
		t.Fatalf("expected offset 5, got %d", v.Offset)
	}
	v.Follow(4)
	if v.Offset != 4 {
		t.Fatalf("expected offset 4 after passing top, got %d", v.Offset)
	}

	start, end := v.Visible(6)
	if start != 4 || end != 6 {
		t.Fatalf("visible = [%d,%d), want [4,6)", start, end)
	}

	v.Clamp(2)
	if v.Offset != 0 {
		t.Fatalf("expected clamp to 0 for short list, got %d", v.Offset)
	}
}
