package graphics

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Add returns the sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Neg returns the offset pointing the opposite way.
func (o Offset) Neg() Offset {
	return Offset{X: -o.X, Y: -o.Y}
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// ToRect returns a rect of this size at the origin.
func (s Size) ToRect() Rect {
	return Rect{Right: s.Width, Bottom: s.Height}
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// RectFromOriginSize constructs a Rect from an origin and a size.
func RectFromOriginSize(origin Offset, size Size) Rect {
	return RectFromLTWH(origin.X, origin.Y, size.Width, size.Height)
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Offset {
	return Offset{X: r.Left, Y: r.Top}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// Abs returns the rect with its edges swapped where needed so that
// Left <= Right and Top <= Bottom.
func (r Rect) Abs() Rect {
	return Rect{
		Left:   math.Min(r.Left, r.Right),
		Top:    math.Min(r.Top, r.Bottom),
		Right:  math.Max(r.Left, r.Right),
		Bottom: math.Max(r.Top, r.Bottom),
	}
}

// Intersect returns the intersection of two rectangles.
// Returns empty rect if they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	left := math.Max(r.Left, other.Left)
	top := math.Max(r.Top, other.Top)
	right := math.Min(r.Right, other.Right)
	bottom := math.Min(r.Bottom, other.Bottom)
	if left >= right || top >= bottom {
		return Rect{} // Empty
	}
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Contains reports whether the point lies inside the rect. The right and
// bottom edges are exclusive.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// Shift returns a new rect offset by the given vector.
func (r Rect) Shift(offset Offset) Rect {
	return r.Translate(offset.X, offset.Y)
}

// Union returns the smallest rect containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Left:   math.Min(r.Left, other.Left),
		Top:    math.Min(r.Top, other.Top),
		Right:  math.Max(r.Right, other.Right),
		Bottom: math.Max(r.Bottom, other.Bottom),
	}
}

// Inflate grows the rect outward by the given insets.
func (r Rect) Inflate(insets Insets) Rect {
	return Rect{
		Left:   r.Left - insets.Left,
		Top:    r.Top - insets.Top,
		Right:  r.Right + insets.Right,
		Bottom: r.Bottom + insets.Bottom,
	}
}

// Insets describes how far content extends past each edge of a rect.
// Positive values grow the rect outward.
type Insets struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// UniformInsets returns insets with the same value on every edge.
func UniformInsets(v float64) Insets {
	return Insets{Left: v, Top: v, Right: v, Bottom: v}
}

// Nonnegative clamps every edge to zero or more.
func (i Insets) Nonnegative() Insets {
	return Insets{
		Left:   math.Max(i.Left, 0),
		Top:    math.Max(i.Top, 0),
		Right:  math.Max(i.Right, 0),
		Bottom: math.Max(i.Bottom, 0),
	}
}

// IsZero reports whether all edges are zero.
func (i Insets) IsZero() bool {
	return i == Insets{}
}

// Affine is a 2D affine transform in row-major 2x3 form:
//
//	| A  B  C |
//	| D  E  F |
type Affine struct {
	A, B, C float64
	D, E, F float64
}

// IdentityAffine returns the identity transform.
func IdentityAffine() Affine {
	return Affine{A: 1, E: 1}
}

// TranslateAffine returns a pure translation.
func TranslateAffine(offset Offset) Affine {
	return Affine{A: 1, C: offset.X, E: 1, F: offset.Y}
}

// Multiply returns a * other, so other is applied first.
func (a Affine) Multiply(other Affine) Affine {
	return Affine{
		A: a.A*other.A + a.B*other.D,
		B: a.A*other.B + a.B*other.E,
		C: a.A*other.C + a.B*other.F + a.C,
		D: a.D*other.A + a.E*other.D,
		E: a.D*other.B + a.E*other.E,
		F: a.D*other.C + a.E*other.F + a.F,
	}
}

// Apply transforms a point.
func (a Affine) Apply(p Offset) Offset {
	return Offset{
		X: a.A*p.X + a.B*p.Y + a.C,
		Y: a.D*p.X + a.E*p.Y + a.F,
	}
}

// Translation returns the translation component.
func (a Affine) Translation() Offset {
	return Offset{X: a.C, Y: a.F}
}

// ApproxEqual reports whether two transforms match within epsilon.
func (a Affine) ApproxEqual(other Affine) bool {
	return floatEqual(a.A, other.A) && floatEqual(a.B, other.B) && floatEqual(a.C, other.C) &&
		floatEqual(a.D, other.D) && floatEqual(a.E, other.E) && floatEqual(a.F, other.F)
}

// floatEqual returns true if two float64 values are approximately equal.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}
