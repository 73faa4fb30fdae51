package widget

import "github.com/go-drift/arbor/pkg/graphics"

// Region is an invalidation area. It is currently a single bounding
// rectangle.
//
// Any rect with non-positive width or height is empty, and all empty
// regions are equivalent. Adding an empty rect to a region leaves it
// unchanged, and adding a rect to an empty region yields exactly that rect.
type Region struct {
	rect graphics.Rect
}

// RegionEmpty is the empty region.
var RegionEmpty = Region{}

// RegionFromRect returns a region covering r. The rect is normalized so its
// extents are non-negative.
func RegionFromRect(r graphics.Rect) Region {
	return Region{rect: r.Abs()}
}

// Rect returns the bounding rectangle of the region.
func (r Region) Rect() graphics.Rect {
	return r.rect
}

// IsEmpty reports whether the region covers no area.
func (r Region) IsEmpty() bool {
	return r.rect.Width() <= 0 || r.rect.Height() <= 0
}

// Intersects reports whether rect overlaps the region with positive area.
func (r Region) Intersects(rect graphics.Rect) bool {
	return !r.rect.Intersect(rect).IsEmpty()
}

// AddRect grows the region to include rect.
func (r *Region) AddRect(rect graphics.Rect) {
	if r.IsEmpty() {
		r.rect = rect
	} else if !rect.IsEmpty() {
		r.rect = r.rect.Union(rect)
	}
}

// MergeWith grows the region to include other.
func (r *Region) MergeWith(other Region) {
	r.AddRect(other.rect)
}

// IntersectWith clips the region to rect. The result may be empty.
func (r *Region) IntersectWith(rect graphics.Rect) {
	r.rect = r.rect.Intersect(rect)
}

// Translate returns the region shifted by offset.
func (r Region) Translate(offset graphics.Offset) Region {
	return Region{rect: r.rect.Shift(offset)}
}
