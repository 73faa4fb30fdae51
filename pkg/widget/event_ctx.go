package widget

import (
	"fmt"

	"github.com/go-drift/arbor/pkg/errors"
	"github.com/go-drift/arbor/pkg/shell"
)

// EventCtx is passed to Widget.Event.
type EventCtx struct {
	requestBase
	isHandled bool
}

// NewEventCtx creates the context for visiting the widget owning ws.
func NewEventCtx(state *ContextState, ws *WidgetState) *EventCtx {
	return &EventCtx{requestBase: requestBase{statusBase{contextBase{state: state, widgetState: ws}}}}
}

// SetCursor sets the cursor for the window. The last call in a pass wins.
func (c *EventCtx) SetCursor(cursor shell.Cursor) {
	c.state.cursor = &cursor
}

// SetActive captures or releases the pointer. An active widget receives
// mouse events even when the pointer leaves it.
func (c *EventCtx) SetActive(active bool) {
	c.widgetState.isActive = active
}

// SetHandled stops the event from propagating further.
func (c *EventCtx) SetHandled() {
	c.isHandled = true
}

// IsHandled reports whether the event has been handled.
func (c *EventCtx) IsHandled() bool {
	return c.isHandled
}

// RequestUpdate schedules an update pass for this widget even if data is
// unchanged.
func (c *EventCtx) RequestUpdate() {
	c.widgetState.requestUpdate = true
}

// RequestFocus asks for keyboard focus. If several widgets ask during a
// pass, the last request wins.
func (c *EventCtx) RequestFocus() {
	c.widgetState.requestFocus = &FocusChange{Kind: FocusTake, Target: c.widgetState.id}
}

// FocusNext moves focus to the next widget in the focus chain. It must be
// called by the focused widget or one of its ancestors.
func (c *EventCtx) FocusNext() {
	c.requestFocusChange("FocusNext", FocusNext)
}

// FocusPrev moves focus to the previous widget in the focus chain. It must
// be called by the focused widget or one of its ancestors.
func (c *EventCtx) FocusPrev() {
	c.requestFocusChange("FocusPrev", FocusPrevious)
}

// ResignFocus gives up focus. It must be called by the focused widget or
// one of its ancestors.
func (c *EventCtx) ResignFocus() {
	c.requestFocusChange("ResignFocus", FocusResign)
}

// requestFocusChange records a focus move. Misuse is reported as
// errors.KindFocus and otherwise ignored.
func (c *EventCtx) requestFocusChange(op string, kind FocusChangeKind) {
	if !c.HasFocus() {
		errors.Report(&errors.Error{
			Op:   "widget.EventCtx." + op,
			Kind: errors.KindFocus,
			Err:  fmt.Errorf("focus %s requested by widget %d without focus", kind, uint64(c.widgetState.id)),
		})
		return
	}
	c.widgetState.requestFocus = &FocusChange{Kind: kind}
}

// NewWindow asks the host to open a window. The description must be built
// for the current window's root data type.
func (c *EventCtx) NewWindow(desc WindowDesc) {
	if !c.state.checkDataType("NewWindow", desc.dataType) {
		return
	}
	c.state.submitCommand(NewCommand(SelectorNewWindow, NewSingleUse(desc)), GlobalTarget())
}

// ShowContextMenu asks the window to show a context menu. The menu must be
// built for the window's root data type.
func (c *EventCtx) ShowContextMenu(menu ContextMenu) {
	if !c.state.checkDataType("ShowContextMenu", menu.Menu.dataType) {
		return
	}
	c.state.submitCommand(NewCommand(SelectorShowContextMenu, menu), WindowTarget(c.state.windowID))
}
