package collision

import (
	"iter"
	"math"

	"github.com/solarlune/resolv"
)

// Bounds is the rectangular world region covered by a Grid.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// outside reports whether the bounding box lies entirely outside b.
func (b Bounds) outside(minX, minY, maxX, maxY float64) bool {
	return maxX < b.MinX || minX > b.MaxX || maxY < b.MinY || minY > b.MaxY
}

type entry[T comparable] struct {
	item  T
	shape Shape
	obj   *resolv.Object
}

// Grid is a uniform-grid broad-phase index over a resolv.Space.
//
// It is meant to be rebuilt from scratch every frame: Clear, then Insert every
// live item. Items whose shape lies entirely outside the bounds are never
// inserted, so Contains doubles as an "inside the playfield" test.
// Candidates sharing a cell are filtered with Overlaps.
type Grid[T comparable] struct {
	bounds  Bounds
	width   float64 // space extent in world units
	height  float64
	space   *resolv.Space
	entries []entry[T]
	index   map[T]int32
}

// NewGrid creates a grid over bounds with the given cell size.
// Cell sizes are rounded up to whole world units.
// A common choice is 1.25 times the largest sprite dimension.
func NewGrid[T comparable](bounds Bounds, cellW, cellH float64) *Grid[T] {
	cw := max(1, int(math.Ceil(cellW)))
	ch := max(1, int(math.Ceil(cellH)))
	cols := max(1, int(math.Ceil((bounds.MaxX-bounds.MinX)/float64(cw))))
	rows := max(1, int(math.Ceil((bounds.MaxY-bounds.MinY)/float64(ch))))

	return &Grid[T]{
		bounds: bounds,
		width:  float64(cols * cw),
		height: float64(rows * ch),
		space:  resolv.NewSpace(cols*cw, rows*ch, cw, ch),
		index:  make(map[T]int32),
	}
}

// Clear removes every item, keeping the cells.
func (g *Grid[T]) Clear() {
	for _, e := range g.entries {
		g.space.Remove(e.obj)
	}
	clear(g.entries)
	g.entries = g.entries[:0]
	clear(g.index)
}

// Len returns the number of inserted items.
func (g *Grid[T]) Len() int {
	return len(g.entries)
}

// Insert registers item in every cell the shape's bounding box overlaps.
// It returns false when the shape is entirely outside the grid bounds or the
// item is already present.
func (g *Grid[T]) Insert(item T, shape Shape) bool {
	if _, exists := g.index[item]; exists {
		return false
	}
	obj, ok := g.object(shape)
	if !ok {
		return false
	}

	idx := int32(len(g.entries)) //#nosec G115 -- entry count bounded by live actors
	obj.Data = idx
	g.space.Add(obj)
	if len(obj.TouchingCells) == 0 {
		g.space.Remove(obj)
		return false
	}

	g.entries = append(g.entries, entry[T]{item: item, shape: shape, obj: obj})
	g.index[item] = idx
	return true
}

// object builds the resolv object covering shape's bounding box in space
// coordinates, clamped to the space. resolv treats the far edge as
// exclusive, so the box is widened by one unit to keep shapes ending
// mid-cell in that cell.
func (g *Grid[T]) object(shape Shape) (*resolv.Object, bool) {
	minX, minY, maxX, maxY := shape.Bounds()
	if g.bounds.outside(minX, minY, maxX, maxY) {
		return nil, false
	}
	x0 := max(minX-g.bounds.MinX, 0)
	y0 := max(minY-g.bounds.MinY, 0)
	x1 := min(maxX-g.bounds.MinX, g.width-1)
	y1 := min(maxY-g.bounds.MinY, g.height-1)
	return resolv.NewObject(x0, y0, max(x1-x0, 0)+1, max(y1-y0, 0)+1), true
}

// Contains reports whether item was inserted since the last Clear.
func (g *Grid[T]) Contains(item T) bool {
	_, ok := g.index[item]
	return ok
}

// IterColliding yields every other inserted item whose shape overlaps the
// shape item was inserted with. Each item is yielded once. An item that is not
// in the grid yields nothing.
func (g *Grid[T]) IterColliding(item T) iter.Seq[T] {
	return func(yield func(T) bool) {
		idx, ok := g.index[item]
		if !ok {
			return
		}
		e := g.entries[idx]
		g.filter(e.shape, e.obj.Check(0, 0), yield)
	}
}

// IterOverlapping yields every inserted item whose shape overlaps shape.
func (g *Grid[T]) IterOverlapping(shape Shape) iter.Seq[T] {
	return func(yield func(T) bool) {
		query, ok := g.object(shape)
		if !ok {
			return
		}
		g.space.Add(query)
		hits := query.Check(0, 0)
		g.space.Remove(query)
		g.filter(shape, hits, yield)
	}
}

// filter yields the items among the broad-phase hits whose shapes overlap
// shape. Check returns each neighbour once, in cell order.
func (g *Grid[T]) filter(shape Shape, hits *resolv.Collision, yield func(T) bool) {
	if hits == nil {
		return
	}
	for _, obj := range hits.Objects {
		idx, ok := obj.Data.(int32)
		if !ok || int(idx) >= len(g.entries) {
			continue
		}
		other := g.entries[idx]
		if other.obj != obj || !Overlaps(shape, other.shape) {
			continue
		}
		if !yield(other.item) {
			return
		}
	}
}
