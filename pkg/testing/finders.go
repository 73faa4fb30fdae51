package testing

import (
	"strings"

	"github.com/go-drift/arbor/pkg/graphics"
)

// FindText returns the window-space bounds of the first text run in the
// last frame that reads text.
func (t *WidgetTester[T]) FindText(text string) (graphics.Rect, bool) {
	return t.find(func(d graphics.Draw) bool { return d.Text == text })
}

// FindTextContaining is FindText matching a substring.
func (t *WidgetTester[T]) FindTextContaining(substring string) (graphics.Rect, bool) {
	return t.find(func(d graphics.Draw) bool { return strings.Contains(d.Text, substring) })
}

// CountText returns how many text runs in the last frame read text.
func (t *WidgetTester[T]) CountText(text string) int {
	n := 0
	for _, d := range t.frame {
		if d.Kind == graphics.DrawTextRun && d.Text == text {
			n++
		}
	}
	return n
}

func (t *WidgetTester[T]) find(match func(graphics.Draw) bool) (graphics.Rect, bool) {
	for _, d := range t.frame {
		if d.Kind == graphics.DrawTextRun && match(d) {
			return windowRect(d), true
		}
	}
	return graphics.Rect{}, false
}

// windowRect maps a draw's local rect through its transform.
func windowRect(d graphics.Draw) graphics.Rect {
	a := d.Transform.Apply(graphics.Offset{X: d.Rect.Left, Y: d.Rect.Top})
	b := d.Transform.Apply(graphics.Offset{X: d.Rect.Right, Y: d.Rect.Bottom})
	return graphics.Rect{Left: a.X, Top: a.Y, Right: b.X, Bottom: b.Y}.Abs()
}
