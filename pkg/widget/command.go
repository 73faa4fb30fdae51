package widget

import (
	"reflect"
	"sync/atomic"

	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/shell"
)

// Selector names a command.
type Selector string

// Built-in selectors handled by the window driver or the application host.
const (
	// SelectorSetMenu carries a MenuDesc for the target window.
	SelectorSetMenu Selector = "arbor-builtin.set-menu"

	// SelectorNewWindow carries a *SingleUse[WindowDesc] for the host.
	SelectorNewWindow Selector = "arbor-builtin.new-window"

	// SelectorShowContextMenu carries a ContextMenu for the target window.
	SelectorShowContextMenu Selector = "arbor-builtin.show-context-menu"
)

// Command is a message dispatched through the command queue.
type Command struct {
	Selector Selector
	payload  any
}

// NewCommand creates a command with an optional payload.
func NewCommand(selector Selector, payload any) Command {
	return Command{Selector: selector, payload: payload}
}

// Is reports whether the command has the given selector.
func (c Command) Is(selector Selector) bool {
	return c.Selector == selector
}

// Payload returns the raw payload.
func (c Command) Payload() any {
	return c.payload
}

// CommandPayload returns the payload of c if it has type T.
func CommandPayload[T any](c Command) (T, bool) {
	v, ok := c.payload.(T)
	return v, ok
}

// TargetKind selects where a command is delivered.
type TargetKind int

const (
	// TargetAuto resolves to the window the command was submitted from.
	TargetAuto TargetKind = iota
	// TargetGlobal delivers to the application host.
	TargetGlobal
	// TargetWindow delivers to one window.
	TargetWindow
	// TargetWidget delivers to one widget.
	TargetWidget
)

// Target is a command destination. The zero value is TargetAuto.
type Target struct {
	Kind   TargetKind
	Window shell.WindowID
	Widget WidgetID
}

// GlobalTarget addresses the application host.
func GlobalTarget() Target {
	return Target{Kind: TargetGlobal}
}

// WindowTarget addresses a window.
func WindowTarget(id shell.WindowID) Target {
	return Target{Kind: TargetWindow, Window: id}
}

// WidgetTarget addresses a widget.
func WidgetTarget(id WidgetID) Target {
	return Target{Kind: TargetWidget, Widget: id}
}

// TargetedCommand is a queued command with its resolved target.
type TargetedCommand struct {
	Target  Target
	Command Command
}

// CommandQueue is a FIFO of submitted commands. It is shared by every
// context of a pass and drained by the driver.
type CommandQueue struct {
	items []TargetedCommand
}

// NewCommandQueue returns an empty queue.
func NewCommandQueue() *CommandQueue {
	return &CommandQueue{}
}

// Push appends a command.
func (q *CommandQueue) Push(target Target, cmd Command) {
	q.items = append(q.items, TargetedCommand{Target: target, Command: cmd})
}

// Len returns the number of queued commands.
func (q *CommandQueue) Len() int {
	return len(q.items)
}

// Drain removes and returns every queued command in submission order.
func (q *CommandQueue) Drain() []TargetedCommand {
	items := q.items
	q.items = nil
	return items
}

// SingleUse wraps a payload that may be taken at most once, such as a
// window description whose root widget must not be built twice.
type SingleUse[T any] struct {
	value atomic.Pointer[T]
}

// NewSingleUse wraps v.
func NewSingleUse[T any](v T) *SingleUse[T] {
	s := &SingleUse[T]{}
	s.value.Store(&v)
	return s
}

// Take returns the payload and empties the wrapper. Later calls return
// false.
func (s *SingleUse[T]) Take() (T, bool) {
	if p := s.value.Swap(nil); p != nil {
		return *p, true
	}
	var zero T
	return zero, false
}

// MenuItem is one entry of a menu.
type MenuItem struct {
	Label    string
	Command  Command
	Disabled bool
}

// MenuDesc describes a window or context menu built for a specific root
// data type.
type MenuDesc struct {
	Title    string
	Items    []MenuItem
	dataType reflect.Type
}

// NewMenuDesc creates a menu for windows whose root data type is T.
func NewMenuDesc[T any](title string, items ...MenuItem) MenuDesc {
	return MenuDesc{Title: title, Items: items, dataType: reflect.TypeFor[T]()}
}

// DataType returns the root data type the menu was built for.
func (m MenuDesc) DataType() reflect.Type {
	return m.dataType
}

// ContextMenu is a menu shown at a window position.
type ContextMenu struct {
	Menu     MenuDesc
	Location graphics.Offset
}

// NewContextMenu creates a context menu at location.
func NewContextMenu(menu MenuDesc, location graphics.Offset) ContextMenu {
	return ContextMenu{Menu: menu, Location: location}
}

// DataType returns the root data type of the menu.
func (c ContextMenu) DataType() reflect.Type {
	return c.Menu.dataType
}

// WindowDesc describes a window to open.
type WindowDesc struct {
	Title    string
	Size     graphics.Size
	Root     func() any
	dataType reflect.Type
}

// NewWindowDesc describes a window whose root widget operates on T. root is
// invoked by the host when the window is created.
func NewWindowDesc[T any](title string, size graphics.Size, root func() Widget[T]) WindowDesc {
	return WindowDesc{
		Title:    title,
		Size:     size,
		Root:     func() any { return root() },
		dataType: reflect.TypeFor[T](),
	}
}

// DataType returns the root data type the window was built for.
func (w WindowDesc) DataType() reflect.Type {
	return w.dataType
}
