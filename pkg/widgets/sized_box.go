package widgets

import (
	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/widget"
)

// SizedBox gives its child a fixed width and/or height.
//
// A zero Width or Height leaves that axis to the child. Without a child,
// SizedBox is an empty spacer of the given size. Explicit sizes are still
// clamped to the parent's constraints.
type SizedBox[T any] struct {
	Width  float64
	Height float64

	child *widget.WidgetPod[T]
}

// SizedBoxOf wraps child in a box of the given size.
func SizedBoxOf[T any](width, height float64, child widget.Widget[T]) *SizedBox[T] {
	return &SizedBox[T]{Width: width, Height: height, child: widget.NewWidgetPod(child)}
}

// Spacer returns an empty box of the given size.
func Spacer[T any](width, height float64) *SizedBox[T] {
	return &SizedBox[T]{Width: width, Height: height}
}

// Child returns the wrapped pod, or nil for a spacer.
func (s *SizedBox[T]) Child() *widget.WidgetPod[T] {
	return s.child
}

func (s *SizedBox[T]) Event(ctx *widget.EventCtx, event widget.Event, data *T) {
	if s.child != nil {
		s.child.Event(ctx, event, data)
	}
}

func (s *SizedBox[T]) LifeCycle(ctx *widget.LifeCycleCtx, event widget.LifeCycle, data T) {
	if s.child != nil {
		s.child.LifeCycle(ctx, event, data)
	}
}

func (s *SizedBox[T]) Update(ctx *widget.UpdateCtx, oldData, data T) {
	if s.child != nil {
		s.child.Update(ctx, data)
	}
}

func (s *SizedBox[T]) Layout(ctx *widget.LayoutCtx, bc widget.BoxConstraints, data T) graphics.Size {
	desired := bc.Constrain(graphics.Size{Width: s.Width, Height: s.Height})
	if s.child == nil {
		return desired
	}

	childBC := bc
	if s.Width > 0 {
		childBC.Min.Width = desired.Width
		childBC.Max.Width = desired.Width
	}
	if s.Height > 0 {
		childBC.Min.Height = desired.Height
		childBC.Max.Height = desired.Height
	}
	size := s.child.Layout(ctx, childBC, data)
	s.child.SetOrigin(ctx, graphics.Offset{})
	if s.Width > 0 {
		size.Width = desired.Width
	}
	if s.Height > 0 {
		size.Height = desired.Height
	}
	size = bc.Constrain(size)
	ctx.SetPaintInsets(s.child.ParentPaintInsets(size))
	return size
}

func (s *SizedBox[T]) Paint(ctx *widget.PaintCtx, data T) {
	if s.child != nil {
		s.child.Paint(ctx, data)
	}
}
