package game

import "testing"

func TestHeadingDelta(t *testing.T) {
	tests := []struct {
		h      Heading
		dx, dy int
	}{
		{HeadingUp, 0, -1},
		{HeadingDown, 0, 1},
		{HeadingLeft, -1, 0},
		{HeadingRight, 1, 0},
	}

	for _, tc := range tests {
		dx, dy := tc.h.Delta()
		if dx != tc.dx || dy != tc.dy {
			t.Errorf("%s.Delta() = (%d, %d), expected (%d, %d)", tc.h, dx, dy, tc.dx, tc.dy)
		}
	}
}

func TestHeadingOpposite(t *testing.T) {
	pairs := map[Heading]Heading{
		HeadingUp:    HeadingDown,
		HeadingDown:  HeadingUp,
		HeadingLeft:  HeadingRight,
		HeadingRight: HeadingLeft,
	}

	for h, want := range pairs {
		if h.Opposite() != want {
			t.Errorf("%s.Opposite() = %s, expected %s", h, h.Opposite(), want)
		}
		if h.Opposite().Opposite() != h {
			t.Errorf("Opposite should be an involution, broken for %s", h)
		}
	}
}

func TestMotionControllerRejectsReversal(t *testing.T) {
	tests := []struct {
		name      string
		current   Heading
		requested Heading
		expected  Heading
	}{
		{"up to down rejected", HeadingUp, HeadingDown, HeadingUp},
		{"down to up rejected", HeadingDown, HeadingUp, HeadingDown},
		{"left to right rejected", HeadingLeft, HeadingRight, HeadingLeft},
		{"right to left rejected", HeadingRight, HeadingLeft, HeadingRight},
		{"up to left accepted", HeadingUp, HeadingLeft, HeadingLeft},
		{"up to right accepted", HeadingUp, HeadingRight, HeadingRight},
		{"left to down accepted", HeadingLeft, HeadingDown, HeadingDown},
		{"same heading accepted", HeadingUp, HeadingUp, HeadingUp},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMotionController(tc.current)
			m.Set(tc.requested)
			if m.Heading() != tc.expected {
				t.Errorf("after Set(%s) from %s: heading = %s, expected %s",
					tc.requested, tc.current, m.Heading(), tc.expected)
			}
		})
	}
}
