package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "negative coordinates",
			a:        NewRect(-20, -20, 25, 25),
			b:        NewRect(0, 0, 10, 10),
			expected: true,
		},
		{
			name:     "zero-size rect never intersects",
			a:        NewRect(5, 5, 0, 0),
			b:        NewRect(0, 0, 10, 10),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectIntersection(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(6, -2, 10, 5)

	got := a.Intersection(b)
	want := NewRect(6, 0, 4, 3)
	if got != want {
		t.Errorf("Intersection() = %+v, expected %+v", got, want)
	}
	if rev := b.Intersection(a); rev != want {
		t.Errorf("Intersection() (reversed) = %+v, expected %+v", rev, want)
	}

	if !a.Intersection(NewRect(20, 20, 5, 5)).Empty() {
		t.Error("Disjoint rects should have an empty intersection")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestColorHex(t *testing.T) {
	if got := RGB(255, 0, 16).Hex(); got != "#ff0010" {
		t.Errorf("Hex() = %q, expected #ff0010", got)
	}
}
