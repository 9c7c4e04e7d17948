package viewport

import "math"

type Point struct {
	X float64
	Y float64
}

func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

type Size struct {
	W float64
	H float64
}

// Rect is an axis-aligned rectangle. Min and Max may arrive in any order from
// a drag gesture; Canon puts them in order.
type Rect struct {
	Min Point
	Max Point
}

func RectFromPoints(a, b Point) Rect {
	return Rect{Min: a, Max: b}.Canon()
}

func (r Rect) Canon() Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, r.Max.X), Y: math.Min(r.Min.Y, r.Max.Y)},
		Max: Point{X: math.Max(r.Min.X, r.Max.X), Y: math.Max(r.Min.Y, r.Max.Y)},
	}
}

func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// Empty reports a rectangle with no area. A zero-width or zero-height
// selection means "nothing selected".
func (r Rect) Empty() bool {
	c := r.Canon()
	return c.Dx() <= 0 || c.Dy() <= 0
}

func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}
