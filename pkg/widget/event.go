package widget

import (
	"time"

	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/shell"
)

// Event is an input or system event delivered during the event pass.
type Event interface {
	isEvent()
}

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseRight
	MouseMiddle
)

// MouseEvent carries pointer data. Pos is in the receiving widget's
// coordinate space; WindowPos is always in window coordinates.
type MouseEvent struct {
	Pos       graphics.Offset
	WindowPos graphics.Offset
	Button    MouseButton
	Count     int
}

type (
	// EventMouseDown is a button press.
	EventMouseDown struct{ MouseEvent }
	// EventMouseUp is a button release.
	EventMouseUp struct{ MouseEvent }
	// EventMouseMove is pointer motion.
	EventMouseMove struct{ MouseEvent }
)

// Key names used by the built-in widgets.
const (
	KeyTab   = "Tab"
	KeyEnter = "Enter"
	KeySpace = " "
)

// EventKeyDown is a key press. It is routed along the focus path only.
type EventKeyDown struct {
	Key   string
	Shift bool
}

// EventKeyUp is a key release. It is routed along the focus path only.
type EventKeyUp struct {
	Key   string
	Shift bool
}

// EventTimer reports an expired timer. It is routed only to the widget that
// requested the token.
type EventTimer struct {
	Token shell.TimerToken
}

// EventCommand delivers a command. Widget-targeted commands are routed only
// to the path containing the target.
type EventCommand struct {
	Command Command
	Target  Target
}

// EventAnimFrame is sent to widgets that requested an animation frame.
type EventAnimFrame struct {
	Interval time.Duration
}

// EventWindowConnected is sent once after the window is created.
type EventWindowConnected struct{}

// EventWindowSize is sent when the window is resized.
type EventWindowSize struct {
	Size graphics.Size
}

func (EventMouseDown) isEvent()       {}
func (EventMouseUp) isEvent()         {}
func (EventMouseMove) isEvent()       {}
func (EventKeyDown) isEvent()         {}
func (EventKeyUp) isEvent()           {}
func (EventTimer) isEvent()           {}
func (EventCommand) isEvent()         {}
func (EventAnimFrame) isEvent()       {}
func (EventWindowConnected) isEvent() {}
func (EventWindowSize) isEvent()      {}

// mouseEvent returns the pointer payload of ev, if ev is a mouse event.
func mouseEvent(ev Event) (MouseEvent, bool) {
	switch e := ev.(type) {
	case EventMouseDown:
		return e.MouseEvent, true
	case EventMouseUp:
		return e.MouseEvent, true
	case EventMouseMove:
		return e.MouseEvent, true
	}
	return MouseEvent{}, false
}

// withMousePos returns ev with its local position replaced.
func withMousePos(ev Event, pos graphics.Offset) Event {
	switch e := ev.(type) {
	case EventMouseDown:
		e.Pos = pos
		return e
	case EventMouseUp:
		e.Pos = pos
		return e
	case EventMouseMove:
		e.Pos = pos
		return e
	}
	return ev
}

// LifeCycle is a notification about a widget's place in the tree.
type LifeCycle interface {
	isLifeCycle()
}

// LifeCycleWidgetAdded is sent once, before any other event, when a widget
// joins the tree. Widgets register for focus here.
type LifeCycleWidgetAdded struct{}

// LifeCycleSize is sent when layout changes a widget's size.
type LifeCycleSize struct {
	Size graphics.Size
}

// LifeCycleHotChanged is sent when the pointer enters or leaves a widget.
type LifeCycleHotChanged struct {
	Hot bool
}

// LifeCycleFocusChanged is sent when a widget gains or loses focus.
type LifeCycleFocusChanged struct {
	Focused bool
}

// LifeCycleRouteWidgetAdded walks the tree after ChildrenChanged so that
// new descendants receive LifeCycleWidgetAdded. Containers forward it.
type LifeCycleRouteWidgetAdded struct{}

// LifeCycleRouteFocusChanged walks the paths to the old and new focus
// widgets. Containers forward it.
type LifeCycleRouteFocusChanged struct {
	Old WidgetID
	New WidgetID
}

func (LifeCycleWidgetAdded) isLifeCycle()       {}
func (LifeCycleSize) isLifeCycle()              {}
func (LifeCycleHotChanged) isLifeCycle()        {}
func (LifeCycleFocusChanged) isLifeCycle()      {}
func (LifeCycleRouteWidgetAdded) isLifeCycle()  {}
func (LifeCycleRouteFocusChanged) isLifeCycle() {}
