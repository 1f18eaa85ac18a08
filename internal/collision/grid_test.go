package collision

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func newTestGrid() *Grid[string] {
	return NewGrid[string](Bounds{MinX: 0, MaxX: 800, MinY: 0, MaxY: 650}, 62.5, 62.5)
}

func collect(g *Grid[string], item string) []string {
	var out []string
	for other := range g.IterColliding(item) {
		out = append(out, other)
	}
	slices.Sort(out)
	return out
}

func TestGridIterColliding(t *testing.T) {
	g := newTestGrid()
	g.Insert("a", AARect(core.V(100, 100), 20, 15))
	g.Insert("b", AARect(core.V(130, 100), 20, 15))
	g.Insert("c", AARect(core.V(400, 400), 20, 15))

	if got := collect(g, "a"); !slices.Equal(got, []string{"b"}) {
		t.Errorf("collisions of a = %v, expected [b]", got)
	}
	if got := collect(g, "c"); len(got) != 0 {
		t.Errorf("collisions of c = %v, expected none", got)
	}
}

func TestGridCrossCellYieldsOnce(t *testing.T) {
	g := newTestGrid()
	// Both shapes straddle the corner shared by four cells.
	g.Insert("big", AARect(core.V(125, 125), 40, 40))
	g.Insert("small", AARect(core.V(125, 125), 10, 10))

	got := collect(g, "big")
	if !slices.Equal(got, []string{"small"}) {
		t.Errorf("collisions = %v, expected [small] exactly once", got)
	}
	got = collect(g, "small")
	if !slices.Equal(got, []string{"big"}) {
		t.Errorf("collisions = %v, expected [big] exactly once", got)
	}
}

func TestGridDetectsNeighborCellOverlap(t *testing.T) {
	g := newTestGrid()
	// 62.5 is a cell boundary; each shape's center sits in a different cell.
	g.Insert("left", AARect(core.V(60, 30), 5, 5))
	g.Insert("right", AARect(core.V(66, 30), 5, 5))

	if got := collect(g, "left"); !slices.Equal(got, []string{"right"}) {
		t.Errorf("collisions = %v, expected [right]", got)
	}
}

func TestGridOutOfBoundsNotContained(t *testing.T) {
	g := newTestGrid()

	if g.Insert("gone", AARect(core.V(400, 700), 2, 8)) {
		t.Error("Insert should reject a shape entirely above the bounds")
	}
	if g.Contains("gone") {
		t.Error("out-of-bounds shape should not be contained")
	}
	if !g.Insert("edge", AARect(core.V(400, 655), 2, 8)) {
		t.Error("Insert should accept a shape partially inside the bounds")
	}
	if !g.Contains("edge") {
		t.Error("partially inside shape should be contained")
	}
}

func TestGridNonIndexedYieldsNothing(t *testing.T) {
	g := newTestGrid()
	g.Insert("a", AARect(core.V(100, 100), 20, 15))

	if got := collect(g, "missing"); len(got) != 0 {
		t.Errorf("collisions of non-indexed item = %v, expected none", got)
	}
}

func TestGridRebuildIsIdempotent(t *testing.T) {
	g := newTestGrid()
	build := func() {
		g.Clear()
		g.Insert("a", AARect(core.V(100, 100), 20, 15))
		g.Insert("b", AARect(core.V(110, 100), 20, 15))
	}

	build()
	first := collect(g, "a")
	build()
	second := collect(g, "a")

	if !slices.Equal(first, second) {
		t.Errorf("rebuild changed results: %v vs %v", first, second)
	}
	if g.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", g.Len())
	}
	if g.Insert("a", AARect(core.V(0, 0), 1, 1)) {
		t.Error("duplicate Insert should be rejected")
	}
}

func TestGridClearForgetsItems(t *testing.T) {
	g := newTestGrid()
	g.Insert("a", AARect(core.V(100, 100), 20, 15))
	g.Clear()

	if g.Contains("a") || g.Len() != 0 {
		t.Error("Clear should remove every item")
	}
}

func TestGridIterOverlapping(t *testing.T) {
	g := newTestGrid()
	g.Insert("a", Circle(core.V(100, 100), 10))
	g.Insert("b", Circle(core.V(300, 300), 10))

	var got []string
	for item := range g.IterOverlapping(Circle(core.V(105, 100), 10)) {
		got = append(got, item)
	}
	if !slices.Equal(got, []string{"a"}) {
		t.Errorf("IterOverlapping() = %v, expected [a]", got)
	}
}

func TestGridNestedQueries(t *testing.T) {
	g := newTestGrid()
	g.Insert("a", AARect(core.V(100, 100), 30, 30))
	g.Insert("b", AARect(core.V(120, 100), 30, 30))
	g.Insert("c", AARect(core.V(140, 100), 30, 30))

	pairs := 0
	for other := range g.IterColliding("b") {
		pairs++
		for range g.IterColliding(other) {
			pairs++
		}
	}
	// b sees a and c; a sees b and c; c sees a and b.
	if pairs != 6 {
		t.Errorf("nested iteration visited %d items, expected 6", pairs)
	}
}

func TestGridEarlyBreak(t *testing.T) {
	g := newTestGrid()
	g.Insert("hub", AARect(core.V(200, 200), 50, 50))
	g.Insert("x", AARect(core.V(190, 200), 5, 5))
	g.Insert("y", AARect(core.V(210, 200), 5, 5))

	seen := 0
	for range g.IterColliding("hub") {
		seen++
		break
	}
	if seen != 1 {
		t.Errorf("expected iteration to stop after first item, saw %d", seen)
	}
}

func TestGridMatchesPairwiseOverlap(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g := NewGrid[int](Bounds{MinX: 0, MaxX: 800, MinY: 0, MaxY: 650}, 62.5, 62.5)

	for round := range 50 {
		shapes := make([]Shape, 40)
		g.Clear()
		for i := range shapes {
			center := core.V(rng.Float64()*800, rng.Float64()*650)
			if i%2 == 0 {
				shapes[i] = Circle(center, 5+rng.Float64()*30)
			} else {
				shapes[i] = AARect(center, 2+rng.Float64()*30, 2+rng.Float64()*30)
			}
			g.Insert(i, shapes[i])
		}

		for i := range shapes {
			var want []int
			for j := range shapes {
				if i != j && Overlaps(shapes[i], shapes[j]) {
					want = append(want, j)
				}
			}
			var got []int
			for j := range g.IterColliding(i) {
				got = append(got, j)
			}
			slices.Sort(got)
			if !slices.Equal(got, want) {
				t.Fatalf("round %d item %d: grid = %v, expected %v", round, i, got, want)
			}
		}
	}
}

func TestGridFractionalEdgesShareCell(t *testing.T) {
	// Cells are 63 wide; the left box ends just past the first boundary.
	g := newTestGrid()
	g.Insert("left", AARect(core.V(58.25, 30), 5, 5))
	g.Insert("right", AARect(core.V(67.5, 30), 4.5, 5))

	if got := collect(g, "left"); !slices.Equal(got, []string{"right"}) {
		t.Errorf("collisions = %v, expected [right]", got)
	}
}

func TestGridEdgeShapesContained(t *testing.T) {
	g := newTestGrid()

	tests := []struct {
		name  string
		shape Shape
	}{
		{"right edge", AARect(core.V(805, 300), 5, 5)},
		{"left edge", AARect(core.V(-3, 300), 5, 5)},
		{"bottom edge", Circle(core.V(400, -4), 5)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !g.Insert(tc.name, tc.shape) {
				t.Fatal("Insert should accept a shape touching the bounds")
			}
			if !g.Contains(tc.name) {
				t.Error("shape touching the bounds should be contained")
			}
		})
	}
}
