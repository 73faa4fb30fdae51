package widgets

import (
	"math"

	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/widget"
)

// Padding adds empty space around its child.
//
// The child is constrained to the remaining space after padding is applied.
type Padding[T any] struct {
	Insets graphics.Insets

	child *widget.WidgetPod[T]
}

// PaddingOf wraps child with insets.
func PaddingOf[T any](insets graphics.Insets, child widget.Widget[T]) *Padding[T] {
	return &Padding[T]{Insets: insets, child: widget.NewWidgetPod(child)}
}

// Child returns the wrapped pod.
func (p *Padding[T]) Child() *widget.WidgetPod[T] {
	return p.child
}

func (p *Padding[T]) Event(ctx *widget.EventCtx, event widget.Event, data *T) {
	p.child.Event(ctx, event, data)
}

func (p *Padding[T]) LifeCycle(ctx *widget.LifeCycleCtx, event widget.LifeCycle, data T) {
	p.child.LifeCycle(ctx, event, data)
}

func (p *Padding[T]) Update(ctx *widget.UpdateCtx, oldData, data T) {
	p.child.Update(ctx, data)
}

func (p *Padding[T]) Layout(ctx *widget.LayoutCtx, bc widget.BoxConstraints, data T) graphics.Size {
	pad := p.Insets.Nonnegative()
	horizontal := pad.Left + pad.Right
	vertical := pad.Top + pad.Bottom

	childBC := widget.BoxConstraints{
		Min: graphics.Size{
			Width:  math.Max(0, bc.Min.Width-horizontal),
			Height: math.Max(0, bc.Min.Height-vertical),
		},
		Max: graphics.Size{
			Width:  math.Max(0, bc.Max.Width-horizontal),
			Height: math.Max(0, bc.Max.Height-vertical),
		},
	}
	childSize := p.child.Layout(ctx, childBC, data)
	p.child.SetOrigin(ctx, graphics.Offset{X: pad.Left, Y: pad.Top})

	size := bc.Constrain(graphics.Size{
		Width:  childSize.Width + horizontal,
		Height: childSize.Height + vertical,
	})
	ctx.SetPaintInsets(p.child.ParentPaintInsets(size))
	return size
}

func (p *Padding[T]) Paint(ctx *widget.PaintCtx, data T) {
	p.child.Paint(ctx, data)
}
