package widgets

import (
	"time"

	"github.com/go-drift/arbor/pkg/errors"
	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/shell"
	"github.com/go-drift/arbor/pkg/widget"
)

const (
	// TooltipZIndex places tooltips above ordinary content.
	TooltipZIndex uint32 = 1000
	// DefaultTooltipDelay is how long the pointer must rest before the
	// tooltip shows.
	DefaultTooltipDelay = 500 * time.Millisecond
)

var (
	tooltipBackground = graphics.RGB(0xFF, 0xFF, 0xE1)
	tooltipBorder     = graphics.RGB(0x76, 0x76, 0x76)
	tooltipPadding    = graphics.Insets{Left: 4, Top: 2, Right: 4, Bottom: 2}
)

// tooltipGap separates the tooltip from the bottom edge of its child.
const tooltipGap = 2

// Tooltip shows Text below its child once the pointer has hovered for Delay.
//
// The tooltip is painted through the z-order queue so that later siblings
// cannot cover it. Its area is reported as paint insets.
type Tooltip[T any] struct {
	Text  string
	Delay time.Duration

	child   *widget.WidgetPod[T]
	timer   shell.TimerToken
	visible bool
	layout  *graphics.TextLayout
	size    graphics.Size
}

// TooltipOf wraps child with a hover tooltip.
func TooltipOf[T any](text string, child widget.Widget[T]) *Tooltip[T] {
	return &Tooltip[T]{Text: text, Delay: DefaultTooltipDelay, child: widget.NewWidgetPod(child)}
}

// WithDelay returns the tooltip with the specified hover delay.
func (t *Tooltip[T]) WithDelay(delay time.Duration) *Tooltip[T] {
	t.Delay = delay
	return t
}

// Visible reports whether the tooltip is currently shown.
func (t *Tooltip[T]) Visible() bool {
	return t.visible
}

func (t *Tooltip[T]) Event(ctx *widget.EventCtx, event widget.Event, data *T) {
	if ev, ok := event.(widget.EventTimer); ok && t.timer != 0 && ev.Token == t.timer {
		t.timer = 0
		if ctx.IsHot() && !t.visible {
			t.visible = true
			ctx.RequestPaintRect(t.tooltipRect())
		}
		ctx.SetHandled()
		return
	}
	t.child.Event(ctx, event, data)
}

func (t *Tooltip[T]) LifeCycle(ctx *widget.LifeCycleCtx, event widget.LifeCycle, data T) {
	if ev, ok := event.(widget.LifeCycleHotChanged); ok {
		if ev.Hot {
			t.timer = ctx.RequestTimer(t.Delay)
		} else {
			t.timer = 0
			if t.visible {
				t.visible = false
				ctx.RequestPaintRect(t.tooltipRect())
			}
		}
	}
	t.child.LifeCycle(ctx, event, data)
}

func (t *Tooltip[T]) Update(ctx *widget.UpdateCtx, oldData, data T) {
	t.child.Update(ctx, data)
}

func (t *Tooltip[T]) Layout(ctx *widget.LayoutCtx, bc widget.BoxConstraints, data T) graphics.Size {
	size := t.child.Layout(ctx, bc, data)
	t.child.SetOrigin(ctx, graphics.Offset{})
	t.size = size

	layout, err := ctx.Text().NewTextLayout(t.Text, graphics.ColorBlack)
	if err != nil {
		errors.Report(&errors.Error{Op: "widgets.Tooltip.Layout", Kind: errors.KindRender, Err: err})
		t.layout = nil
		ctx.SetPaintInsets(t.child.ParentPaintInsets(size))
		return size
	}
	t.layout = layout

	rect := t.tooltipRect()
	insets := t.child.ParentPaintInsets(size)
	insets.Bottom = max(insets.Bottom, rect.Bottom-size.Height)
	insets.Right = max(insets.Right, rect.Right-size.Width)
	ctx.SetPaintInsets(insets)
	return size
}

func (t *Tooltip[T]) Paint(ctx *widget.PaintCtx, data T) {
	t.child.Paint(ctx, data)
	if !t.visible || t.layout == nil {
		return
	}
	rect := t.tooltipRect()
	layout := t.layout
	ctx.PaintWithZIndex(TooltipZIndex, func(ctx *widget.PaintCtx) {
		ctx.FillRect(rect, tooltipBackground)
		ctx.StrokeRect(rect, tooltipBorder, 1)
		ctx.DrawText(layout, graphics.Offset{
			X: rect.Left + tooltipPadding.Left,
			Y: rect.Top + tooltipPadding.Top,
		})
	})
}

// tooltipRect is the tooltip's box in the widget's coordinate space.
func (t *Tooltip[T]) tooltipRect() graphics.Rect {
	var text graphics.Size
	if t.layout != nil {
		text = t.layout.Size
	}
	top := t.size.Height + tooltipGap
	return graphics.Rect{
		Left:   0,
		Top:    top,
		Right:  text.Width + tooltipPadding.Left + tooltipPadding.Right,
		Bottom: top + text.Height + tooltipPadding.Top + tooltipPadding.Bottom,
	}
}
