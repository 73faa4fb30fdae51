package widget

import (
	"reflect"

	"github.com/go-drift/arbor/pkg/graphics"
)

// WidgetPod wraps a child widget with its WidgetState. Containers store
// children in pods and call the pod's methods; the pod routes the call,
// builds the child's context, and merges the child's requests into the
// parent's state when the child returns.
type WidgetPod[T any] struct {
	state      *WidgetState
	inner      Widget[T]
	oldData    T
	hasOldData bool
}

// NewWidgetPod wraps inner. Widgets implementing Identified keep their own
// id; others get a fresh one.
func NewWidgetPod[T any](inner Widget[T]) *WidgetPod[T] {
	id := NewWidgetID()
	if w, ok := inner.(Identified); ok && w.ID().IsValid() {
		id = w.ID()
	}
	state := NewWidgetState(id)
	state.needsLayout = true
	return &WidgetPod[T]{state: state, inner: inner}
}

// ID returns the child's widget id.
func (p *WidgetPod[T]) ID() WidgetID {
	return p.state.id
}

// Widget returns the wrapped widget.
func (p *WidgetPod[T]) Widget() Widget[T] {
	return p.inner
}

// State returns the child's state.
func (p *WidgetPod[T]) State() *WidgetState {
	return p.state
}

// IsInitialized reports whether the child has received
// LifeCycleWidgetAdded.
func (p *WidgetPod[T]) IsInitialized() bool {
	return p.hasOldData
}

// LayoutRect returns the child's rect in the parent's coordinates.
func (p *WidgetPod[T]) LayoutRect() graphics.Rect {
	return p.state.LayoutRect()
}

// PaintRect returns the child's paint rect in the parent's coordinates.
func (p *WidgetPod[T]) PaintRect() graphics.Rect {
	return p.state.PaintRect()
}

// SetOrigin positions the child within the parent. Call it from the
// parent's Layout after laying the child out.
func (p *WidgetPod[T]) SetOrigin(ctx *LayoutCtx, origin graphics.Offset) {
	p.state.origin = origin
}

// ParentPaintInsets returns the insets a parent of the given size needs so
// that its paint rect covers this child's paint rect.
func (p *WidgetPod[T]) ParentPaintInsets(parentSize graphics.Size) graphics.Insets {
	paint := p.PaintRect()
	return graphics.Insets{
		Left:   -paint.Left,
		Top:    -paint.Top,
		Right:  paint.Right - parentSize.Width,
		Bottom: paint.Bottom - parentSize.Height,
	}.Nonnegative()
}

// Event routes event to the child.
//
// Mouse events reach the child when the pointer is over it or it holds the
// pointer capture, with positions translated into its coordinates. Key
// events follow the focus path. Timer events reach only the path to the
// widget that requested the token, and animation frames only widgets that
// requested one. Commands reach every widget unless they
// target a widget outside this subtree. Nothing is delivered once the event
// has been handled.
func (p *WidgetPod[T]) Event(ctx *EventCtx, event Event, data *T) {
	if ctx.isHandled {
		return
	}
	if !p.hasOldData {
		logger().Warn("event delivered before LifeCycleWidgetAdded", "widget_id", uint64(p.state.id))
		return
	}

	childCtx := NewEventCtx(ctx.state, p.state)
	childEvent := event
	recurse := true
	hadActive := p.state.hasActive

	switch ev := event.(type) {
	case EventMouseDown, EventMouseUp, EventMouseMove:
		mouse, _ := mouseEvent(event)
		rect := p.LayoutRect()
		wasHot := p.state.isHot
		p.setHot(ctx.state, rect.Contains(mouse.Pos), *data)
		recurse = hadActive || p.state.isHot
		if _, isMove := event.(EventMouseMove); isMove && wasHot {
			// Let hot descendants see the pointer leave.
			recurse = true
		}
		if recurse {
			childEvent = withMousePos(event, mouse.Pos.Add(rect.Origin().Neg()))
			p.state.hasActive = false
		}
	case EventKeyDown, EventKeyUp:
		recurse = p.state.hasFocus
	case EventTimer:
		_, recurse = p.state.timers[ev.Token]
		delete(p.state.timers, ev.Token)
	case EventAnimFrame:
		recurse = p.state.requestAnim
		p.state.requestAnim = false
	case EventCommand:
		if ev.Target.Kind == TargetWidget {
			recurse = ev.Target.Widget == p.state.id || p.state.HasChild(ev.Target.Widget)
		}
	}

	if recurse {
		p.inner.Event(childCtx, childEvent, data)
	}
	if _, isMouse := mouseEvent(event); isMouse && recurse {
		p.state.hasActive = p.state.hasActive || p.state.isActive
	}

	ctx.widgetState.mergeUp(p.state)
	ctx.isHandled = ctx.isHandled || childCtx.isHandled
}

// setHot updates the hot flag and notifies the child when it changes.
func (p *WidgetPod[T]) setHot(state *ContextState, hot bool, data T) {
	if p.state.isHot == hot {
		return
	}
	p.state.isHot = hot
	p.inner.LifeCycle(NewLifeCycleCtx(state, p.state), LifeCycleHotChanged{Hot: hot}, data)
}

// LifeCycle routes event to the child.
func (p *WidgetPod[T]) LifeCycle(ctx *LifeCycleCtx, event LifeCycle, data T) {
	recurse := true
	var extra LifeCycle

	switch ev := event.(type) {
	case LifeCycleWidgetAdded:
		if p.hasOldData {
			recurse = false
		} else {
			p.oldData = data
			p.hasOldData = true
		}
	case LifeCycleRouteWidgetAdded:
		if !p.hasOldData {
			p.LifeCycle(ctx, LifeCycleWidgetAdded{}, data)
			return
		}
		recurse = p.state.childrenChanged
		if recurse {
			clear(p.state.children)
			p.state.focusChain = p.state.focusChain[:0]
		}
	case LifeCycleRouteFocusChanged:
		switch p.state.id {
		case ev.Old:
			extra = LifeCycleFocusChanged{Focused: false}
		case ev.New:
			extra = LifeCycleFocusChanged{Focused: true}
		}
		p.state.hasFocus = ev.New == p.state.id
		recurse = p.state.HasChild(ev.Old) || p.state.HasChild(ev.New)
	case LifeCycleHotChanged, LifeCycleFocusChanged, LifeCycleSize:
		// Addressed to the parent only.
		recurse = false
	}

	childCtx := NewLifeCycleCtx(ctx.state, p.state)
	if recurse {
		p.inner.LifeCycle(childCtx, event, data)
	}
	if extra != nil {
		p.inner.LifeCycle(childCtx, extra, data)
	}

	switch event.(type) {
	case LifeCycleWidgetAdded, LifeCycleRouteWidgetAdded:
		p.state.childrenChanged = false
		for id := range p.state.children {
			ctx.widgetState.children[id] = struct{}{}
		}
		ctx.widgetState.focusChain = append(ctx.widgetState.focusChain, p.state.focusChain...)
		ctx.RegisterChild(p.state.id)
	}

	ctx.widgetState.mergeUp(p.state)
}

// Update delivers new data to the child if it differs from the data the
// child last saw, or if the child requested an update.
func (p *WidgetPod[T]) Update(ctx *UpdateCtx, data T) {
	if !p.hasOldData {
		logger().Warn("update delivered before LifeCycleWidgetAdded", "widget_id", uint64(p.state.id))
		return
	}
	if !p.state.requestUpdate && reflect.DeepEqual(p.oldData, data) {
		return
	}
	p.state.requestUpdate = false
	p.inner.Update(NewUpdateCtx(ctx.state, p.state), p.oldData, data)
	p.oldData = data
	ctx.widgetState.mergeUp(p.state)
}

// Layout lays the child out within bc and returns its size. The parent
// must position the child with SetOrigin afterwards.
func (p *WidgetPod[T]) Layout(ctx *LayoutCtx, bc BoxConstraints, data T) graphics.Size {
	size := p.inner.Layout(NewLayoutCtx(ctx.state, p.state), bc, data)
	p.state.needsLayout = false
	if size != p.state.size {
		p.state.size = size
		p.inner.LifeCycle(NewLifeCycleCtx(ctx.state, p.state), LifeCycleSize{Size: size}, data)
	}
	ctx.widgetState.mergeUp(p.state)
	return size
}

// Paint paints the child if its paint rect intersects the damage region.
// A skipped child's invalid region is dropped, since nothing outside the
// damage region is repainted this frame.
func (p *WidgetPod[T]) Paint(ctx *PaintCtx, data T) {
	if !ctx.region.Intersects(p.PaintRect()) {
		p.state.invalid = RegionEmpty
		return
	}
	p.PaintAlways(ctx, data)
}

// PaintAlways paints the child in its own coordinate space with the damage
// region narrowed to the child's paint rect. The child's invalid region is
// cleared.
func (p *WidgetPod[T]) PaintAlways(ctx *PaintCtx, data T) {
	origin := p.state.origin
	ctx.WithSave(func(ctx *PaintCtx) {
		ctx.Transform(graphics.TranslateAffine(origin))
		visible := ctx.region.Rect().Intersect(p.PaintRect()).Shift(origin.Neg())
		ctx.WithChildCtx(RegionFromRect(visible), func(child *PaintCtx) {
			inner := child.forWidget(p.state)
			p.inner.Paint(inner, data)
			child.zOps = append(child.zOps, inner.zOps...)
		})
	})
	p.state.invalid = RegionEmpty
}
