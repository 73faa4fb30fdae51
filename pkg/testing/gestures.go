package testing

import (
	"fmt"

	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/widget"
)

func pointerAt(pos graphics.Offset, button widget.MouseButton) widget.MouseEvent {
	count := 0
	if button != widget.MouseNone {
		count = 1
	}
	return widget.MouseEvent{Pos: pos, WindowPos: pos, Button: button, Count: count}
}

// MoveTo moves the pointer to pos in window coordinates.
func (t *WidgetTester[T]) MoveTo(pos graphics.Offset) bool {
	return t.Event(widget.EventMouseMove{MouseEvent: pointerAt(pos, widget.MouseNone)})
}

// Press moves the pointer to pos and presses button there.
func (t *WidgetTester[T]) Press(pos graphics.Offset, button widget.MouseButton) bool {
	t.MoveTo(pos)
	return t.Event(widget.EventMouseDown{MouseEvent: pointerAt(pos, button)})
}

// Release releases button at pos.
func (t *WidgetTester[T]) Release(pos graphics.Offset, button widget.MouseButton) bool {
	return t.Event(widget.EventMouseUp{MouseEvent: pointerAt(pos, button)})
}

// TapAt simulates a left click at pos.
func (t *WidgetTester[T]) TapAt(pos graphics.Offset) {
	t.Press(pos, widget.MouseLeft)
	t.Release(pos, widget.MouseLeft)
}

// SecondaryTapAt simulates a right click at pos.
func (t *WidgetTester[T]) SecondaryTapAt(pos graphics.Offset) {
	t.Press(pos, widget.MouseRight)
	t.Release(pos, widget.MouseRight)
}

// Tap clicks the centre of the first text run in the last frame that reads
// text.
func (t *WidgetTester[T]) Tap(text string) error {
	rect, ok := t.FindText(text)
	if !ok {
		return fmt.Errorf("Tap: no text %q in the last frame", text)
	}
	t.TapAt(rect.Center())
	return nil
}

// PressKey sends a key down and key up along the focus path. It reports
// whether the key down was handled.
func (t *WidgetTester[T]) PressKey(key string, shift bool) bool {
	handled := t.Event(widget.EventKeyDown{Key: key, Shift: shift})
	t.Event(widget.EventKeyUp{Key: key, Shift: shift})
	return handled
}
