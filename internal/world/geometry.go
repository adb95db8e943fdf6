package world

import (
	"math"

	"riftlane/server/internal/content"
)

// Vec2 is a position or direction on the map plane.
type Vec2 struct {
	X float64
	Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Normalized returns the unit vector pointing the same way, or the zero
// vector when v has no length.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

func Dist(a, b Vec2) float64 { return a.Sub(b).Len() }

// Clamp limits v to the map bounds.
func Clamp(v Vec2, width, height float64) Vec2 {
	if v.X < 0 {
		v.X = 0
	} else if v.X > width {
		v.X = width
	}
	if v.Y < 0 {
		v.Y = 0
	} else if v.Y > height {
		v.Y = height
	}
	return v
}

// ClampToRange pulls target toward origin until it is within maxRange.
func ClampToRange(origin, target Vec2, maxRange float64) Vec2 {
	d := Dist(origin, target)
	if d <= maxRange || d == 0 {
		return target
	}
	dir := target.Sub(origin).Normalized()
	return origin.Add(dir.Scale(maxRange))
}

// CircleRectOverlap reports whether a circle at pos with the given radius
// intersects the rectangle.
func CircleRectOverlap(pos Vec2, radius float64, r content.Rect) bool {
	cx := math.Max(r.MinX, math.Min(pos.X, r.MaxX))
	cy := math.Max(r.MinY, math.Min(pos.Y, r.MaxY))
	dx := pos.X - cx
	dy := pos.Y - cy
	return dx*dx+dy*dy <= radius*radius
}

func toPoint(v Vec2) content.Point { return content.Point{X: v.X, Y: v.Y} }

func fromPoint(p content.Point) Vec2 { return Vec2{X: p.X, Y: p.Y} }
