// Package window drives the widget passes for one window: it owns the root
// widget and the application data, builds the per-pass context state, and
// reconciles the requests widgets leave behind.
package window

import (
	"log/slog"
	"reflect"
	"sync/atomic"
	"time"

	"github.com/go-drift/arbor/pkg/focus"
	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/shell"
	"github.com/go-drift/arbor/pkg/widget"
)

var loggerPtr atomic.Pointer[slog.Logger]

// SetLogger configures the logger used by window drivers. Pass nil to fall
// back to slog.Default().
func SetLogger(l *slog.Logger) {
	loggerPtr.Store(l)
}

func logger() *slog.Logger {
	if l := loggerPtr.Load(); l != nil {
		return l
	}
	return slog.Default()
}

// timerSource is implemented by handles that queue timers for the driver
// to fire, such as shell.Headless.
type timerSource interface {
	Expired() []shell.TimerToken
}

// Option configures a Window.
type Option func(*config)

type config struct {
	policy     widget.ContractPolicy
	commands   *widget.CommandQueue
	clock      shell.Clock
	background graphics.Color
	size       graphics.Size
}

// WithPolicy selects how root data type mismatches are handled.
func WithPolicy(policy widget.ContractPolicy) Option {
	return func(c *config) { c.policy = policy }
}

// WithCommandQueue shares a command queue, typically across every window of
// an application.
func WithCommandQueue(q *widget.CommandQueue) Option {
	return func(c *config) { c.commands = q }
}

// WithClock sets the clock used to measure animation frame intervals.
func WithClock(clock shell.Clock) Option {
	return func(c *config) { c.clock = clock }
}

// WithBackground sets the color painted under the root widget.
func WithBackground(color graphics.Color) Option {
	return func(c *config) { c.background = color }
}

// WithSize sets the initial window size.
func WithSize(size graphics.Size) Option {
	return func(c *config) { c.size = size }
}

// Window owns a widget tree and its data.
type Window[T any] struct {
	handle     shell.WindowHandle
	root       *widget.WidgetPod[T]
	data       T
	rootType   reflect.Type
	policy     widget.ContractPolicy
	commands   *widget.CommandQueue
	clock      shell.Clock
	background graphics.Color

	size        graphics.Size
	invalid     widget.Region
	needsLayout bool
	animating   bool
	lastFrame   time.Time
	focus       widget.WidgetID
	cursor      shell.Cursor
	menu        *widget.MenuDesc
	contextMenu *widget.ContextMenu
	connected   bool
}

// New creates a window showing root with data.
func New[T any](handle shell.WindowHandle, root widget.Widget[T], data T, opts ...Option) *Window[T] {
	cfg := config{
		clock:      shell.SystemClock{},
		background: graphics.ColorWhite,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.commands == nil {
		cfg.commands = widget.NewCommandQueue()
	}
	return &Window[T]{
		handle:      handle,
		root:        widget.NewWidgetPod(root),
		data:        data,
		rootType:    reflect.TypeFor[T](),
		policy:      cfg.policy,
		commands:    cfg.commands,
		clock:       cfg.clock,
		background:  cfg.background,
		size:        cfg.size,
		needsLayout: true,
	}
}

// ID returns the window id.
func (w *Window[T]) ID() shell.WindowID { return w.handle.ID() }

// Data returns the current application data.
func (w *Window[T]) Data() T { return w.data }

// Root returns the root pod.
func (w *Window[T]) Root() *widget.WidgetPod[T] { return w.root }

// Focus returns the focused widget, or zero.
func (w *Window[T]) Focus() widget.WidgetID { return w.focus }

// Cursor returns the cursor most recently set by a widget.
func (w *Window[T]) Cursor() shell.Cursor { return w.cursor }

// Size returns the window size.
func (w *Window[T]) Size() graphics.Size { return w.size }

// Invalid returns the region awaiting paint.
func (w *Window[T]) Invalid() widget.Region { return w.invalid }

// NeedsLayout reports whether a layout pass is pending.
func (w *Window[T]) NeedsLayout() bool { return w.needsLayout }

// Commands returns the queue widgets submit to.
func (w *Window[T]) Commands() *widget.CommandQueue { return w.commands }

// Menu returns the menu most recently set through SetMenu.
func (w *Window[T]) Menu() (widget.MenuDesc, bool) {
	if w.menu == nil {
		return widget.MenuDesc{}, false
	}
	return *w.menu, true
}

// TakeContextMenu returns and clears the pending context menu.
func (w *Window[T]) TakeContextMenu() (widget.ContextMenu, bool) {
	menu := w.contextMenu
	w.contextMenu = nil
	if menu == nil {
		return widget.ContextMenu{}, false
	}
	return *menu, true
}

func (w *Window[T]) contextState() *widget.ContextState {
	return widget.NewContextState(widget.PassConfig{
		Commands: w.commands,
		Window:   w.handle,
		RootType: w.rootType,
		Focus:    w.focus,
		Policy:   w.policy,
	})
}

// Connect adds the root to the tree and sends EventWindowConnected. It must
// be called once before any other pass.
func (w *Window[T]) Connect() {
	if w.connected {
		return
	}
	w.connected = true
	w.LifeCycle(widget.LifeCycleWidgetAdded{})
	w.Event(widget.EventWindowConnected{})
	w.invalidateAll()
}

// SetSize resizes the window and schedules layout.
func (w *Window[T]) SetSize(size graphics.Size) {
	if size == w.size {
		return
	}
	w.size = size
	w.needsLayout = true
	w.Event(widget.EventWindowSize{Size: size})
	w.invalidateAll()
}

// SetData replaces the application data and runs an update pass.
func (w *Window[T]) SetData(data T) {
	w.data = data
	w.Update()
}

// Event dispatches ev to the tree and reconciles the resulting requests.
// It reports whether a widget handled the event.
func (w *Window[T]) Event(ev widget.Event) bool {
	state := w.contextState()
	ws := widget.NewWidgetState(widget.NewWidgetID())
	ctx := widget.NewEventCtx(state, ws)
	w.root.Event(ctx, ev, &w.data)

	if cursor, ok := state.Cursor(); ok {
		w.cursor = cursor
		w.handle.SetCursor(cursor)
	}
	w.reconcile(ws)
	w.Update()
	return ctx.IsHandled()
}

// LifeCycle dispatches ev to the tree.
func (w *Window[T]) LifeCycle(ev widget.LifeCycle) {
	ws := widget.NewWidgetState(widget.NewWidgetID())
	w.root.LifeCycle(widget.NewLifeCycleCtx(w.contextState(), ws), ev, w.data)
	w.reconcile(ws)
}

// Update runs an update pass with the current data.
func (w *Window[T]) Update() {
	ws := widget.NewWidgetState(widget.NewWidgetID())
	w.root.Update(widget.NewUpdateCtx(w.contextState(), ws), w.data)
	w.reconcile(ws)
}

// Layout lays the root out with tight constraints matching the window.
func (w *Window[T]) Layout() {
	ws := widget.NewWidgetState(widget.NewWidgetID())
	ctx := widget.NewLayoutCtx(w.contextState(), ws)
	w.root.Layout(ctx, widget.TightConstraints(w.size), w.data)
	w.root.SetOrigin(ctx, graphics.Offset{})
	w.needsLayout = false
	w.invalidateAll()
	w.reconcile(ws)
}

// reconcile applies the requests merged into ws during a pass.
func (w *Window[T]) reconcile(ws *widget.WidgetState) {
	if ws.ChildrenChanged() {
		w.LifeCycle(widget.LifeCycleRouteWidgetAdded{})
	}
	if change, ok := ws.RequestedFocus(); ok {
		w.applyFocusChange(change)
	}
	if ws.NeedsLayout() || w.root.State().NeedsLayout() {
		w.needsLayout = true
	}
	if ws.RequestsAnim() {
		if !w.animating {
			w.lastFrame = w.clock.Now()
		}
		w.animating = true
	}
	w.invalid.MergeWith(ws.Invalid())
	if w.needsLayout || w.animating || !w.invalid.IsEmpty() {
		w.handle.Invalidate()
	}
}

func (w *Window[T]) applyFocusChange(change widget.FocusChange) {
	next := w.focus
	chain := w.root.State().FocusChain()
	switch change.Kind {
	case widget.FocusTake:
		next = change.Target
	case widget.FocusNext:
		next, _ = focus.Next(chain, w.focus)
	case widget.FocusPrevious:
		next, _ = focus.Previous(chain, w.focus)
	case widget.FocusResign:
		next = 0
	}
	if next == w.focus {
		return
	}
	old := w.focus
	w.focus = next
	logger().Debug("focus changed", "window", w.handle.ID().String(), "old", uint64(old), "new", uint64(next))
	w.LifeCycle(widget.LifeCycleRouteFocusChanged{Old: old, New: next})
}

func (w *Window[T]) invalidateAll() {
	w.invalid.AddRect(w.size.ToRect())
	w.handle.Invalidate()
}

// FireTimers delivers EventTimer for every expired timer of the handle and
// returns how many fired. Handles that deliver timers themselves report
// zero.
func (w *Window[T]) FireTimers() int {
	source, ok := w.handle.(timerSource)
	if !ok {
		return 0
	}
	tokens := source.Expired()
	for _, token := range tokens {
		w.Event(widget.EventTimer{Token: token})
	}
	return len(tokens)
}

// Paint runs any pending animation frame and layout, then paints the
// invalid region onto canvas and replays z-ordered ops. It returns the
// region that was painted.
func (w *Window[T]) Paint(canvas graphics.Canvas) widget.Region {
	if w.animating {
		now := w.clock.Now()
		interval := now.Sub(w.lastFrame)
		w.lastFrame = now
		w.animating = false
		w.Event(widget.EventAnimFrame{Interval: interval})
	}
	if w.needsLayout {
		w.Layout()
	}

	region := w.invalid
	w.invalid = widget.RegionEmpty
	if region.IsEmpty() {
		return region
	}

	ws := widget.NewWidgetState(widget.NewWidgetID())
	ctx := widget.NewPaintCtx(w.contextState(), ws, canvas, region)
	ctx.WithSave(func(ctx *widget.PaintCtx) {
		ctx.ClipRect(region.Rect())
		ctx.FillRect(region.Rect(), w.background)
		w.root.Paint(ctx, w.data)
	})
	ctx.ReplayZOps()
	return region
}

// ProcessCommands delivers the commands queued so far and returns the ones
// addressed to other windows or to the application host. Commands submitted
// while delivering are left queued for the next call, so a host calls it
// once per frame after Paint.
func (w *Window[T]) ProcessCommands() []widget.TargetedCommand {
	var rest []widget.TargetedCommand
	for _, tc := range w.commands.Drain() {
		if !w.deliver(tc) {
			rest = append(rest, tc)
		}
	}
	return rest
}

func (w *Window[T]) deliver(tc widget.TargetedCommand) bool {
	switch tc.Target.Kind {
	case widget.TargetWindow:
		if tc.Target.Window != w.handle.ID() {
			return false
		}
	case widget.TargetWidget:
		if tc.Target.Widget != w.root.ID() && !w.root.State().HasChild(tc.Target.Widget) {
			return false
		}
	case widget.TargetGlobal:
		return false
	}

	switch {
	case tc.Command.Is(widget.SelectorSetMenu):
		if menu, ok := widget.CommandPayload[widget.MenuDesc](tc.Command); ok {
			w.menu = &menu
			return true
		}
	case tc.Command.Is(widget.SelectorShowContextMenu):
		if menu, ok := widget.CommandPayload[widget.ContextMenu](tc.Command); ok {
			w.contextMenu = &menu
			return true
		}
	}
	w.Event(widget.EventCommand{Command: tc.Command, Target: tc.Target})
	return true
}
