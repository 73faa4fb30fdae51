package testing

import (
	"testing"
	"time"

	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/shell"
	"github.com/go-drift/arbor/pkg/widget"
	"github.com/go-drift/arbor/pkg/window"
)

const (
	// DefaultTestWidth is the default width of the test window.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default height of the test window.
	DefaultTestHeight = 600
)

// Option configures a WidgetTester.
type Option func(*options)

type options struct {
	size   graphics.Size
	window []window.Option
}

// WithSize sets the size of the test window.
func WithSize(size graphics.Size) Option {
	return func(o *options) {
		o.size = size
	}
}

// WithWindowOptions passes extra options to the underlying window.
func WithWindowOptions(opts ...window.Option) Option {
	return func(o *options) {
		o.window = append(o.window, opts...)
	}
}

// WidgetTester drives a widget tree through a headless window on a fake
// clock and records every painted frame.
type WidgetTester[T any] struct {
	*window.Window[T]

	handle    *shell.Headless
	clock     *shell.FakeClock
	size      graphics.Size
	frame     []graphics.Draw
	unhandled []widget.TargetedCommand
}

// NewWidgetTester connects root to a fresh headless window and pumps the
// first frame, so hit testing sees real geometry.
func NewWidgetTester[T any](root widget.Widget[T], data T, opts ...Option) *WidgetTester[T] {
	o := options{size: graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight}}
	for _, opt := range opts {
		opt(&o)
	}

	clock := shell.NewFakeClock()
	handle := shell.NewHeadless(shell.WithClock(clock))
	winOpts := append([]window.Option{window.WithSize(o.size), window.WithClock(clock)}, o.window...)

	t := &WidgetTester[T]{
		Window: window.New(handle, root, data, winOpts...),
		handle: handle,
		clock:  clock,
		size:   o.size,
	}
	t.Connect()
	t.Pump()
	return t
}

// NewWidgetTesterWithT is NewWidgetTester with a failure check: it fails
// the test if the first frame painted nothing.
func NewWidgetTesterWithT[T any](tb testing.TB, root widget.Widget[T], data T, opts ...Option) *WidgetTester[T] {
	tb.Helper()
	t := NewWidgetTester(root, data, opts...)
	if len(t.frame) == 0 {
		tb.Fatalf("first frame painted nothing")
	}
	return t
}

// Clock returns the fake clock driving timers and animation frames.
func (t *WidgetTester[T]) Clock() *shell.FakeClock {
	return t.clock
}

// Handle returns the headless window handle.
func (t *WidgetTester[T]) Handle() *shell.Headless {
	return t.handle
}

// Pump fires expired timers, delivers queued commands and paints the
// invalid region. It returns the draws of the new frame; an empty result
// means nothing was invalid.
func (t *WidgetTester[T]) Pump() []graphics.Draw {
	t.FireTimers()
	t.unhandled = append(t.unhandled, t.ProcessCommands()...)
	rec := graphics.NewRecorder(t.size)
	if region := t.Paint(rec); !region.IsEmpty() {
		t.frame = rec.Draws()
	}
	return rec.Draws()
}

// Advance moves the clock forward by d and pumps.
func (t *WidgetTester[T]) Advance(d time.Duration) []graphics.Draw {
	t.clock.Advance(d)
	return t.Pump()
}

// Repaint invalidates the whole window and pumps, so that LastFrame shows
// every widget.
func (t *WidgetTester[T]) Repaint() []graphics.Draw {
	t.Layout()
	return t.Pump()
}

// LastFrame returns the draws of the most recent non-empty frame.
func (t *WidgetTester[T]) LastFrame() []graphics.Draw {
	return t.frame
}

// Unhandled returns the commands the window passed back to the host.
func (t *WidgetTester[T]) Unhandled() []widget.TargetedCommand {
	return t.unhandled
}
