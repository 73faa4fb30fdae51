package widget

import (
	"log/slog"
	"reflect"
	"sync/atomic"

	"github.com/go-drift/arbor/pkg/errors"
	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/shell"
)

var loggerPtr atomic.Pointer[slog.Logger]

// SetLogger configures the logger used for pass warnings, such as events
// delivered before LifeCycleWidgetAdded or z-ordered ops dropped after the
// replay round limit. Pass nil to fall back to slog.Default().
func SetLogger(l *slog.Logger) {
	loggerPtr.Store(l)
}

func logger() *slog.Logger {
	if l := loggerPtr.Load(); l != nil {
		return l
	}
	return slog.Default()
}

// ContractPolicy selects how a root data type mismatch is handled when a
// widget submits a menu, context menu, or window description.
type ContractPolicy int

const (
	// PolicyLogAndDrop reports the mismatch through errors.Report and submits
	// nothing. The widget keeps running.
	PolicyLogAndDrop ContractPolicy = iota

	// PolicyPanic panics with an *errors.ContractError.
	PolicyPanic
)

func (p ContractPolicy) String() string {
	switch p {
	case PolicyLogAndDrop:
		return "log-and-drop"
	case PolicyPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// FocusChangeKind enumerates focus requests.
type FocusChangeKind int

const (
	// FocusTake moves focus to FocusChange.Target.
	FocusTake FocusChangeKind = iota + 1
	// FocusNext moves focus forward along the focus chain.
	FocusNext
	// FocusPrevious moves focus backward along the focus chain.
	FocusPrevious
	// FocusResign clears focus.
	FocusResign
)

func (k FocusChangeKind) String() string {
	switch k {
	case FocusTake:
		return "take"
	case FocusNext:
		return "next"
	case FocusPrevious:
		return "previous"
	case FocusResign:
		return "resign"
	default:
		return "none"
	}
}

// FocusChange is a pending focus request. Target is set only for FocusTake.
type FocusChange struct {
	Kind   FocusChangeKind
	Target WidgetID
}

// PassConfig describes the window-wide inputs of one pass.
type PassConfig struct {
	// Commands receives submitted commands. Required.
	Commands *CommandQueue

	// Window is the platform handle of the window being traversed. Required.
	Window shell.WindowHandle

	// RootType is the data type of the window's root widget. Menus and window
	// descriptions built for any other type are rejected.
	RootType reflect.Type

	// Focus is the currently focused widget, or zero.
	Focus WidgetID

	// Policy selects how root data type mismatches are handled.
	Policy ContractPolicy
}

// ContextState is the state shared by every context during one pass over
// one window. It is created by the driver and outlives all contexts of the
// pass.
type ContextState struct {
	commands *CommandQueue
	window   shell.WindowHandle
	windowID shell.WindowID
	rootType reflect.Type
	focus    WidgetID
	policy   ContractPolicy
	cursor   *shell.Cursor
}

// NewContextState creates the shared state for a pass.
func NewContextState(cfg PassConfig) *ContextState {
	return &ContextState{
		commands: cfg.Commands,
		window:   cfg.Window,
		windowID: cfg.Window.ID(),
		rootType: cfg.RootType,
		focus:    cfg.Focus,
		policy:   cfg.Policy,
	}
}

// Cursor returns the cursor set during the pass, if any. When several
// widgets set a cursor the last one wins.
func (s *ContextState) Cursor() (shell.Cursor, bool) {
	if s.cursor == nil {
		return shell.CursorArrow, false
	}
	return *s.cursor, true
}

// submitCommand enqueues cmd. A zero target resolves to the current window.
func (s *ContextState) submitCommand(cmd Command, target Target) {
	if target.Kind == TargetAuto {
		target = WindowTarget(s.windowID)
	}
	s.commands.Push(target, cmd)
}

// checkDataType reports whether a payload built for got may be used in a
// window whose root data type is rootType. On mismatch it applies the
// configured policy.
func (s *ContextState) checkDataType(op string, got reflect.Type) bool {
	if got == s.rootType {
		return true
	}
	err := &errors.ContractError{Op: op, Want: s.rootType, Got: got}
	if s.policy == PolicyPanic {
		panic(err)
	}
	errors.Report(&errors.Error{Op: "widget." + op, Kind: errors.KindContract, Err: err})
	return false
}

// WidgetState is the per-widget bookkeeping a WidgetPod owns. Contexts
// record requests on it and the pod merges them into its parent once the
// widget returns.
//
// Coordinates: origin is relative to the parent. The invalid region is in
// the widget's own coordinate space.
type WidgetState struct {
	id          WidgetID
	origin      graphics.Offset
	size        graphics.Size
	paintInsets graphics.Insets
	invalid     Region

	isHot     bool
	isActive  bool
	hasActive bool
	hasFocus  bool

	needsLayout     bool
	requestAnim     bool
	requestUpdate   bool
	childrenChanged bool

	requestFocus *FocusChange
	focusChain   []WidgetID
	children     map[WidgetID]struct{}
	timers       map[shell.TimerToken]WidgetID
}

// NewWidgetState returns empty state. Drivers use it as the parent state
// of the root pod for one pass.
func NewWidgetState(id WidgetID) *WidgetState {
	return &WidgetState{
		id:       id,
		children: make(map[WidgetID]struct{}),
		timers:   make(map[shell.TimerToken]WidgetID),
	}
}

func (s *WidgetState) ID() WidgetID                 { return s.id }
func (s *WidgetState) Origin() graphics.Offset      { return s.origin }
func (s *WidgetState) Size() graphics.Size          { return s.size }
func (s *WidgetState) PaintInsets() graphics.Insets { return s.paintInsets }
func (s *WidgetState) Invalid() Region              { return s.invalid }
func (s *WidgetState) IsHot() bool                  { return s.isHot }
func (s *WidgetState) IsActive() bool               { return s.isActive }
func (s *WidgetState) HasActive() bool              { return s.hasActive }
func (s *WidgetState) HasFocus() bool               { return s.hasFocus }
func (s *WidgetState) NeedsLayout() bool            { return s.needsLayout }
func (s *WidgetState) RequestsAnim() bool           { return s.requestAnim }
func (s *WidgetState) RequestsUpdate() bool         { return s.requestUpdate }
func (s *WidgetState) ChildrenChanged() bool        { return s.childrenChanged }

// LayoutRect is the widget's rectangle in its parent's coordinates.
func (s *WidgetState) LayoutRect() graphics.Rect {
	return graphics.RectFromOriginSize(s.origin, s.size)
}

// PaintRect is the layout rect grown by the paint insets, in the parent's
// coordinates.
func (s *WidgetState) PaintRect() graphics.Rect {
	return s.LayoutRect().Inflate(s.paintInsets)
}

// RequestedFocus returns the pending focus change, if any.
func (s *WidgetState) RequestedFocus() (FocusChange, bool) {
	if s.requestFocus == nil {
		return FocusChange{}, false
	}
	return *s.requestFocus, true
}

// FocusChain returns the focusable descendants in registration order.
func (s *WidgetState) FocusChain() []WidgetID {
	return s.focusChain
}

// HasChild reports whether id is a registered descendant.
func (s *WidgetState) HasChild(id WidgetID) bool {
	_, ok := s.children[id]
	return ok
}

// OwnsTimer reports whether token was requested by this widget or a
// descendant and has not fired yet.
func (s *WidgetState) OwnsTimer(token shell.TimerToken) bool {
	_, ok := s.timers[token]
	return ok
}

// mergeUp folds a child's requests into s after the child returns. The
// child's invalid region is translated into s's coordinate space. A focus
// request from the child replaces any earlier one so the last request in
// traversal order wins.
func (s *WidgetState) mergeUp(child *WidgetState) {
	s.invalid.MergeWith(child.invalid.Translate(child.origin))
	s.needsLayout = s.needsLayout || child.needsLayout
	s.requestAnim = s.requestAnim || child.requestAnim
	s.requestUpdate = s.requestUpdate || child.requestUpdate
	s.childrenChanged = s.childrenChanged || child.childrenChanged
	s.hasActive = s.hasActive || child.hasActive
	s.hasFocus = s.hasFocus || child.hasFocus
	if child.requestFocus != nil {
		s.requestFocus = child.requestFocus
		child.requestFocus = nil
	}
	for token, owner := range child.timers {
		s.timers[token] = owner
	}
}
