package widgets

import (
	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/widget"
)

// ContextMenuArea shows a context menu when its child is right-clicked.
// Menu is called with the current data so items can reflect it.
type ContextMenuArea[T any] struct {
	Menu func(data T) widget.MenuDesc

	child *widget.WidgetPod[T]
}

// ContextMenuOf wraps child with a context menu.
func ContextMenuOf[T any](menu func(data T) widget.MenuDesc, child widget.Widget[T]) *ContextMenuArea[T] {
	return &ContextMenuArea[T]{Menu: menu, child: widget.NewWidgetPod(child)}
}

func (c *ContextMenuArea[T]) Event(ctx *widget.EventCtx, event widget.Event, data *T) {
	c.child.Event(ctx, event, data)
	if ctx.IsHandled() || c.Menu == nil {
		return
	}
	if ev, ok := event.(widget.EventMouseDown); ok && ev.Button == widget.MouseRight && ctx.IsHot() {
		ctx.ShowContextMenu(widget.NewContextMenu(c.Menu(*data), ev.WindowPos))
		ctx.SetHandled()
	}
}

func (c *ContextMenuArea[T]) LifeCycle(ctx *widget.LifeCycleCtx, event widget.LifeCycle, data T) {
	c.child.LifeCycle(ctx, event, data)
}

func (c *ContextMenuArea[T]) Update(ctx *widget.UpdateCtx, oldData, data T) {
	c.child.Update(ctx, data)
}

func (c *ContextMenuArea[T]) Layout(ctx *widget.LayoutCtx, bc widget.BoxConstraints, data T) graphics.Size {
	size := c.child.Layout(ctx, bc, data)
	c.child.SetOrigin(ctx, graphics.Offset{})
	ctx.SetPaintInsets(c.child.ParentPaintInsets(size))
	return size
}

func (c *ContextMenuArea[T]) Paint(ctx *widget.PaintCtx, data T) {
	c.child.Paint(ctx, data)
}
