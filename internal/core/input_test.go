package core

import "testing"

func TestCursorMove(t *testing.T) {
	tests := []struct {
		name     string
		start    Cursor
		action   Action
		expected Cursor
	}{
		{"up from middle", Cursor{1, 1}, ActionUp, Cursor{0, 1}},
		{"up at top edge", Cursor{0, 1}, ActionUp, Cursor{0, 1}},
		{"down from middle", Cursor{1, 1}, ActionDown, Cursor{2, 1}},
		{"down at bottom edge", Cursor{2, 0}, ActionDown, Cursor{2, 0}},
		{"left at left edge", Cursor{1, 0}, ActionLeft, Cursor{1, 0}},
		{"right from middle", Cursor{1, 1}, ActionRight, Cursor{1, 2}},
		{"right at right edge", Cursor{0, 2}, ActionRight, Cursor{0, 2}},
		{"non-directional action", Cursor{2, 2}, ActionPlace, Cursor{2, 2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.start.Move(tc.action)
			if result != tc.expected {
				t.Errorf("Move(%s) = %+v, expected %+v", tc.action, result, tc.expected)
			}
		})
	}
}

func TestCursorIndexRoundTrip(t *testing.T) {
	for i := 0; i < 9; i++ {
		if got := CursorAt(i).Index(); got != i {
			t.Errorf("CursorAt(%d).Index() = %d", i, got)
		}
	}
	if c := CursorAt(5); c.Row != 1 || c.Col != 2 {
		t.Errorf("CursorAt(5) = %+v, expected {1 2}", c)
	}
}

func TestActionString(t *testing.T) {
	if ActionPlace.String() != "Place" {
		t.Errorf("ActionPlace.String() = %q", ActionPlace.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
