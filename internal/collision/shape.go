// Package collision provides collision shapes and a uniform-grid broad-phase
// index for games that simulate in continuous world coordinates.
package collision

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Kind selects the geometry of a Shape.
type Kind uint8

const (
	KindCircle Kind = iota // Center + Radius
	KindRect               // Center + half extents, axis aligned
)

// Shape is a circle or an axis-aligned rectangle.
type Shape struct {
	Kind   Kind
	Center core.Vec2
	Radius float64 // circles only
	HalfW  float64 // rects only
	HalfH  float64 // rects only
}

// Circle builds a circle shape.
func Circle(center core.Vec2, radius float64) Shape {
	return Shape{Kind: KindCircle, Center: center, Radius: radius}
}

// AARect builds an axis-aligned rectangle from its center and half extents.
func AARect(center core.Vec2, halfW, halfH float64) Shape {
	return Shape{Kind: KindRect, Center: center, HalfW: halfW, HalfH: halfH}
}

// Extents returns the half extents of the shape's bounding box.
func (s Shape) Extents() (float64, float64) {
	if s.Kind == KindCircle {
		return s.Radius, s.Radius
	}
	return s.HalfW, s.HalfH
}

// Bounds returns the shape's axis-aligned bounding box.
func (s Shape) Bounds() (minX, minY, maxX, maxY float64) {
	hw, hh := s.Extents()
	return s.Center.X - hw, s.Center.Y - hh, s.Center.X + hw, s.Center.Y + hh
}

// Translate moves the shape by offset.
func (s *Shape) Translate(offset core.Vec2) {
	s.Center = s.Center.Add(offset)
}

// Overlaps reports whether two shapes intersect.
//
// Circle pairs touch when the distance between centers equals the sum of
// radii. Rectangle pairs must overlap on both axes; rectangles that only
// share an edge do not overlap.
func Overlaps(a, b Shape) bool {
	switch {
	case a.Kind == KindCircle && b.Kind == KindCircle:
		r := a.Radius + b.Radius
		return a.Center.Sub(b.Center).LenSq() <= r*r
	case a.Kind == KindRect && b.Kind == KindRect:
		return math.Abs(a.Center.X-b.Center.X) < a.HalfW+b.HalfW &&
			math.Abs(a.Center.Y-b.Center.Y) < a.HalfH+b.HalfH
	case a.Kind == KindCircle:
		return circleRect(a, b)
	default:
		return circleRect(b, a)
	}
}

// circleRect tests a circle against a rectangle using the rectangle point
// closest to the circle center.
func circleRect(c, r Shape) bool {
	nearest := core.V(
		core.ClampF(c.Center.X, r.Center.X-r.HalfW, r.Center.X+r.HalfW),
		core.ClampF(c.Center.Y, r.Center.Y-r.HalfH, r.Center.Y+r.HalfH),
	)
	return c.Center.Sub(nearest).LenSq() <= c.Radius*c.Radius
}
