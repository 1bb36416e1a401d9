package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"apart horizontally", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"apart vertically", NewRect(0, 0, 10, 10), NewRect(0, 15, 10, 10), false},
		{"adjacent cells do not overlap", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
		{"single cell", NewRect(0, 0, 10, 10), NewRect(9, 9, 10, 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() reversed = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right exclusive", 30, 25, false},
		{"left", 5, 15, false},
		{"below", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 || r.Bottom() != 25 {
		t.Errorf("Right/Bottom = %d/%d, expected 25/25", r.Right(), r.Bottom())
	}
	if cx, cy := r.Center(); cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestRectFromBox(t *testing.T) {
	tests := []struct {
		name           string
		cx, cy, hx, hy float64
		expected       Rect
	}{
		{"whole cells", 5, 5, 2, 1, NewRect(3, 4, 4, 2)},
		{"half-cell ball", 10.5, 3.5, 0.5, 0.5, NewRect(10, 3, 1, 1)},
		{"rounds edges", 10.3, 3.6, 0.5, 0.5, NewRect(10, 3, 1, 1)},
		{"never empty", 4, 4, 0.1, 0.1, NewRect(4, 4, 1, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := RectFromBox(tc.cx, tc.cy, tc.hx, tc.hy); got != tc.expected {
				t.Errorf("RectFromBox = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{5.5, 0, 10, 5.5},
		{-5.5, 0, 10, 0},
		{15.5, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestAbsSign(t *testing.T) {
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs broken")
	}
	if Sign(-0.5) != -1 || Sign(2) != 1 || Sign(0) != 0 {
		t.Error("Sign broken")
	}
}

func TestInputFrame(t *testing.T) {
	f := InputOf(ActionUp, ActionServe)

	if !f.Has(ActionUp) || !f.Has(ActionServe) || f.Has(ActionDown) {
		t.Errorf("InputOf set wrong actions: %v", f.Actions)
	}
	if got := f.Axis(ActionUp, ActionDown); got != -1 {
		t.Errorf("Axis(up, down) = %v, expected -1", got)
	}

	c := f.Clone()
	f.Set(ActionDown)
	if got := f.Axis(ActionUp, ActionDown); got != 0 {
		t.Errorf("opposing actions should cancel, got %v", got)
	}
	if c.Has(ActionDown) {
		t.Error("Clone shares state with original")
	}

	f.Clear()
	if f.Has(ActionUp) {
		t.Error("Clear left actions set")
	}

	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("zero frame reports an action")
	}
	if ActionServe.String() != "Serve" || Action(99).String() != "Unknown" {
		t.Error("Action names wrong")
	}
}
