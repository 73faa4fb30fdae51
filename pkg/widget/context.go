package widget

import (
	"time"

	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/shell"
)

// contextBase holds what every context can see: the shared pass state and
// the state of the widget being visited.
type contextBase struct {
	state       *ContextState
	widgetState *WidgetState
}

// WidgetID returns the id of the widget being visited.
func (c contextBase) WidgetID() WidgetID {
	return c.widgetState.id
}

// WindowID returns the id of the window being traversed.
func (c contextBase) WindowID() shell.WindowID {
	return c.state.windowID
}

// Window returns the platform handle of the window being traversed.
func (c contextBase) Window() shell.WindowHandle {
	return c.state.window
}

// Text returns the window's text factory.
func (c contextBase) Text() graphics.TextFactory {
	return c.state.window.Text()
}

// statusBase adds read access to the widget's interaction status.
type statusBase struct {
	contextBase
}

// Size returns the widget's size from the most recent layout.
func (c statusBase) Size() graphics.Size {
	return c.widgetState.size
}

// IsHot reports whether the pointer is over the widget.
func (c statusBase) IsHot() bool {
	return c.widgetState.isHot
}

// IsActive reports whether the widget has captured the pointer.
func (c statusBase) IsActive() bool {
	return c.widgetState.isActive
}

// IsFocused reports whether the widget itself holds keyboard focus.
func (c statusBase) IsFocused() bool {
	return c.state.focus.IsValid() && c.state.focus == c.widgetState.id
}

// HasFocus reports whether the widget or one of its descendants holds
// keyboard focus.
func (c statusBase) HasFocus() bool {
	return c.widgetState.hasFocus
}

// requestBase adds the requests available during event, lifecycle, and
// update passes.
type requestBase struct {
	statusBase
}

// RequestPaint invalidates the widget's whole paint rect.
func (c requestBase) RequestPaint() {
	ws := c.widgetState
	ws.invalid.AddRect(ws.PaintRect().Shift(ws.origin.Neg()))
}

// RequestPaintRect invalidates rect, given in the widget's coordinates. The
// rect is clipped to the widget's paint rect; a widget cannot damage pixels
// it never paints.
func (c requestBase) RequestPaintRect(rect graphics.Rect) {
	ws := c.widgetState
	ws.invalid.AddRect(rect.Intersect(ws.PaintRect().Shift(ws.origin.Neg())))
}

// RequestLayout marks the widget as needing layout. Ancestors are marked
// when the request is merged upward.
func (c requestBase) RequestLayout() {
	c.widgetState.needsLayout = true
}

// RequestAnimFrame asks for an EventAnimFrame before the next paint and
// invalidates the widget.
func (c requestBase) RequestAnimFrame() {
	c.widgetState.requestAnim = true
	c.RequestPaint()
}

// ChildrenChanged tells the driver that children were added or removed.
// New children receive LifeCycleWidgetAdded before the next update.
func (c requestBase) ChildrenChanged() {
	c.widgetState.childrenChanged = true
	c.widgetState.needsLayout = true
}

// RequestTimer schedules an EventTimer for this widget after delay.
func (c requestBase) RequestTimer(delay time.Duration) shell.TimerToken {
	token := c.state.window.RequestTimer(delay)
	c.widgetState.timers[token] = c.widgetState.id
	return token
}

// SetMenu replaces the window menu. The menu must be built for the
// window's root data type.
func (c requestBase) SetMenu(menu MenuDesc) {
	if !c.state.checkDataType("SetMenu", menu.dataType) {
		return
	}
	c.state.submitCommand(NewCommand(SelectorSetMenu, menu), WindowTarget(c.state.windowID))
}

// SubmitCommand enqueues cmd. A zero target addresses the current window.
func (c requestBase) SubmitCommand(cmd Command, target Target) {
	c.state.submitCommand(cmd, target)
}
