package shell

import (
	"slices"
	"sync"
	"time"

	"github.com/go-drift/arbor/pkg/graphics"
)

// Headless is a WindowHandle with no platform window behind it. Timers are
// queued against a Clock and collected with Expired; cursor and invalidate
// requests are recorded for inspection.
type Headless struct {
	id    WindowID
	clock Clock
	text  graphics.TextFactory

	mu          sync.Mutex
	timers      []pendingTimer
	cursor      Cursor
	invalidated bool
}

type pendingTimer struct {
	token    TimerToken
	deadline time.Time
}

// HeadlessOption configures a Headless window.
type HeadlessOption func(*Headless)

// WithClock sets the clock used to compute timer deadlines.
func WithClock(clock Clock) HeadlessOption {
	return func(h *Headless) {
		h.clock = clock
	}
}

// WithTextFactory overrides the text factory.
func WithTextFactory(text graphics.TextFactory) HeadlessOption {
	return func(h *Headless) {
		h.text = text
	}
}

// NewHeadless creates a headless window with a fresh id.
func NewHeadless(opts ...HeadlessOption) *Headless {
	h := &Headless{
		id:    NewWindowID(),
		clock: SystemClock{},
		text:  graphics.DefaultTextFactory(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Headless) ID() WindowID {
	return h.id
}

func (h *Headless) Text() graphics.TextFactory {
	return h.text
}

func (h *Headless) RequestTimer(delay time.Duration) TimerToken {
	token := NextTimerToken()
	h.mu.Lock()
	defer h.mu.Unlock()
	h.timers = append(h.timers, pendingTimer{token: token, deadline: h.clock.Now().Add(delay)})
	return token
}

func (h *Headless) SetCursor(cursor Cursor) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cursor = cursor
}

// Cursor returns the last cursor set.
func (h *Headless) Cursor() Cursor {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cursor
}

func (h *Headless) Invalidate() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.invalidated = true
}

// TakeInvalidated reports and clears a pending invalidate request.
func (h *Headless) TakeInvalidated() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	v := h.invalidated
	h.invalidated = false
	return v
}

// Pending returns the number of timers not yet expired.
func (h *Headless) Pending() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.timers)
}

// Expired removes and returns the tokens whose deadline is at or before
// the clock's current time, earliest deadline first.
func (h *Headless) Expired() []TimerToken {
	now := h.clock.Now()
	h.mu.Lock()
	defer h.mu.Unlock()

	var due []pendingTimer
	kept := h.timers[:0]
	for _, t := range h.timers {
		if !t.deadline.After(now) {
			due = append(due, t)
		} else {
			kept = append(kept, t)
		}
	}
	h.timers = kept

	slices.SortStableFunc(due, func(a, b pendingTimer) int {
		return a.deadline.Compare(b.deadline)
	})
	tokens := make([]TimerToken, len(due))
	for i, t := range due {
		tokens[i] = t.token
	}
	return tokens
}
