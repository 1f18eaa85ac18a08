package collision

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestOverlapsCircles(t *testing.T) {
	tests := []struct {
		name string
		a, b Shape
		want bool
	}{
		{"same center", Circle(core.V(0, 0), 1), Circle(core.V(0, 0), 1), true},
		{"touching", Circle(core.V(0, 0), 1), Circle(core.V(3, 0), 2), true},
		{"apart", Circle(core.V(0, 0), 1), Circle(core.V(3.01, 0), 2), false},
		{"diagonal", Circle(core.V(0, 0), 5), Circle(core.V(3, 4), 0), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.a, tc.b); got != tc.want {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.want)
			}
			if got := Overlaps(tc.b, tc.a); got != tc.want {
				t.Errorf("Overlaps() reversed = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestOverlapsRects(t *testing.T) {
	base := AARect(core.V(0, 0), 10, 5)
	tests := []struct {
		name  string
		other Shape
		want  bool
	}{
		{"overlap both axes", AARect(core.V(15, 5), 10, 5), true},
		{"shared vertical edge", AARect(core.V(20, 0), 10, 5), false},
		{"shared horizontal edge", AARect(core.V(0, 10), 10, 5), false},
		{"overlap x only", AARect(core.V(5, 20), 10, 5), false},
		{"contained", AARect(core.V(1, 1), 1, 1), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(base, tc.other); got != tc.want {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestOverlapsCircleRect(t *testing.T) {
	rect := AARect(core.V(0, 0), 10, 10)
	tests := []struct {
		name   string
		circle Shape
		want   bool
	}{
		{"inside", Circle(core.V(0, 0), 1), true},
		{"touching side", Circle(core.V(12, 0), 2), true},
		{"near corner but outside", Circle(core.V(12, 12), 2), false},
		{"covering corner", Circle(core.V(12, 12), 3), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.circle, rect); got != tc.want {
				t.Errorf("Overlaps(circle, rect) = %v, expected %v", got, tc.want)
			}
			if got := Overlaps(rect, tc.circle); got != tc.want {
				t.Errorf("Overlaps(rect, circle) = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestShapeTranslateAndBounds(t *testing.T) {
	s := AARect(core.V(10, 20), 3, 4)
	s.Translate(core.V(-10, 5))

	minX, minY, maxX, maxY := s.Bounds()
	if minX != -3 || minY != 21 || maxX != 3 || maxY != 29 {
		t.Errorf("Bounds() = (%v,%v,%v,%v), expected (-3,21,3,29)", minX, minY, maxX, maxY)
	}

	c := Circle(core.V(1, 1), 2)
	hw, hh := c.Extents()
	if hw != 2 || hh != 2 {
		t.Errorf("circle Extents() = (%v,%v), expected (2,2)", hw, hh)
	}
}
