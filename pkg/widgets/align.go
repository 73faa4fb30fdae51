package widgets

import (
	"math"

	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/widget"
)

// Alignment is a point in unit coordinates: (0, 0) is the top left corner
// and (1, 1) the bottom right.
type Alignment struct {
	X, Y float64
}

var (
	AlignmentTopLeft      = Alignment{0, 0}
	AlignmentTopCenter    = Alignment{0.5, 0}
	AlignmentTopRight     = Alignment{1, 0}
	AlignmentCenterLeft   = Alignment{0, 0.5}
	AlignmentCenter       = Alignment{0.5, 0.5}
	AlignmentCenterRight  = Alignment{1, 0.5}
	AlignmentBottomLeft   = Alignment{0, 1}
	AlignmentBottomCenter = Alignment{0.5, 1}
	AlignmentBottomRight  = Alignment{1, 1}
)

// Resolve maps the alignment to a point inside rect.
func (a Alignment) Resolve(rect graphics.Rect) graphics.Offset {
	return graphics.Offset{
		X: rect.Left + a.X*rect.Width(),
		Y: rect.Top + a.Y*rect.Height(),
	}
}

// Align positions its child within the space it is given.
//
// In a bounded direction Align fills the maximum extent; otherwise it takes
// the child's extent. A width or height factor sizes Align to a multiple of
// the child instead, so a factor of 1 keeps the child's size on that axis.
// The child is laid out with loosened constraints.
type Align[T any] struct {
	Alignment Alignment

	widthFactor  *float64
	heightFactor *float64
	child        *widget.WidgetPod[T]
}

// AlignOf aligns child at the given alignment.
func AlignOf[T any](alignment Alignment, child widget.Widget[T]) *Align[T] {
	return &Align[T]{Alignment: alignment, child: widget.NewWidgetPod(child)}
}

// Centered centers child.
func Centered[T any](child widget.Widget[T]) *Align[T] {
	return AlignOf(AlignmentCenter, child)
}

// AlignLeft places child at the vertical middle of the left edge.
func AlignLeft[T any](child widget.Widget[T]) *Align[T] {
	return AlignOf(AlignmentCenterLeft, child)
}

// AlignRight places child at the vertical middle of the right edge.
func AlignRight[T any](child widget.Widget[T]) *Align[T] {
	return AlignOf(AlignmentCenterRight, child)
}

// AlignHorizontal aligns only horizontally and keeps the child's height.
func AlignHorizontal[T any](alignment Alignment, child widget.Widget[T]) *Align[T] {
	return AlignOf(alignment, child).WithHeightFactor(1)
}

// AlignVertical aligns only vertically and keeps the child's width.
func AlignVertical[T any](alignment Alignment, child widget.Widget[T]) *Align[T] {
	return AlignOf(alignment, child).WithWidthFactor(1)
}

// WithWidthFactor sizes the width to factor times the child's width.
func (a *Align[T]) WithWidthFactor(factor float64) *Align[T] {
	a.widthFactor = &factor
	return a
}

// WithHeightFactor sizes the height to factor times the child's height.
func (a *Align[T]) WithHeightFactor(factor float64) *Align[T] {
	a.heightFactor = &factor
	return a
}

// Child returns the aligned pod.
func (a *Align[T]) Child() *widget.WidgetPod[T] {
	return a.child
}

func (a *Align[T]) Event(ctx *widget.EventCtx, event widget.Event, data *T) {
	a.child.Event(ctx, event, data)
}

func (a *Align[T]) LifeCycle(ctx *widget.LifeCycleCtx, event widget.LifeCycle, data T) {
	a.child.LifeCycle(ctx, event, data)
}

func (a *Align[T]) Update(ctx *widget.UpdateCtx, oldData, data T) {
	a.child.Update(ctx, data)
}

func (a *Align[T]) Layout(ctx *widget.LayoutCtx, bc widget.BoxConstraints, data T) graphics.Size {
	childSize := a.child.Layout(ctx, bc.Loosen(), data)

	size := childSize
	if !math.IsInf(bc.Max.Width, 1) {
		size.Width = bc.Max.Width
	}
	if !math.IsInf(bc.Max.Height, 1) {
		size.Height = bc.Max.Height
	}
	if a.widthFactor != nil {
		size.Width = childSize.Width * *a.widthFactor
	}
	if a.heightFactor != nil {
		size.Height = childSize.Height * *a.heightFactor
	}
	size = bc.Constrain(size)

	extra := graphics.Rect{
		Right:  math.Max(0, size.Width-childSize.Width),
		Bottom: math.Max(0, size.Height-childSize.Height),
	}
	a.child.SetOrigin(ctx, a.Alignment.Resolve(extra))
	ctx.SetPaintInsets(a.child.ParentPaintInsets(size))
	return size
}

func (a *Align[T]) Paint(ctx *widget.PaintCtx, data T) {
	a.child.Paint(ctx, data)
}
