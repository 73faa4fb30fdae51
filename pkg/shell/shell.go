// Package shell defines the window-host capabilities the widget layer
// consumes: window identity, timer scheduling, cursors, and text.
package shell

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/go-drift/arbor/pkg/graphics"
)

// WindowID uniquely identifies a window for the lifetime of the process.
type WindowID uuid.UUID

// NewWindowID returns a fresh random window id.
func NewWindowID() WindowID {
	return WindowID(uuid.New())
}

// IsZero reports whether the id is unset.
func (id WindowID) IsZero() bool {
	return uuid.UUID(id) == uuid.Nil
}

func (id WindowID) String() string {
	return uuid.UUID(id).String()
}

// TimerToken is an opaque handle returned when a timer is scheduled.
// The zero value is never issued.
type TimerToken uint64

var nextTimerToken atomic.Uint64

// NextTimerToken returns a process-wide unique token.
func NextTimerToken() TimerToken {
	return TimerToken(nextTimerToken.Add(1))
}

// Cursor is the mouse cursor shape requested for a window.
type Cursor int

const (
	CursorArrow Cursor = iota
	CursorIBeam
	CursorPointer
	CursorCrosshair
	CursorNotAllowed
	CursorResizeLeftRight
	CursorResizeUpDown
)

func (c Cursor) String() string {
	switch c {
	case CursorArrow:
		return "arrow"
	case CursorIBeam:
		return "ibeam"
	case CursorPointer:
		return "pointer"
	case CursorCrosshair:
		return "crosshair"
	case CursorNotAllowed:
		return "not_allowed"
	case CursorResizeLeftRight:
		return "resize_left_right"
	case CursorResizeUpDown:
		return "resize_up_down"
	default:
		return "unknown"
	}
}

// WindowHandle is the platform window as seen by widgets.
type WindowHandle interface {
	// ID returns the window identity.
	ID() WindowID

	// Text returns the factory used to lay out text for this window.
	Text() graphics.TextFactory

	// RequestTimer schedules a wake-up after the given delay and returns the
	// token that the resulting timer event will carry.
	RequestTimer(delay time.Duration) TimerToken

	// SetCursor changes the cursor shown over the window.
	SetCursor(cursor Cursor)

	// Invalidate asks the host to schedule a paint.
	Invalidate()
}
