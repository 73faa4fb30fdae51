package widgets_test

import (
	"testing"

	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/shell"
	"github.com/go-drift/arbor/pkg/widget"
	"github.com/go-drift/arbor/pkg/widgets"
)

func TestButtonClickTapsAndTakesFocus(t *testing.T) {
	root := widgets.ColumnOf[counter](widgets.ButtonOf("+1", increment))
	w := newTestWindow(t, root)
	button := root.Children()[0]

	w.TapAt(at(5, 5))

	if got := w.Data().Count; got != 1 {
		t.Errorf("Count = %d, want 1", got)
	}
	if w.Focus() != button.ID() {
		t.Errorf("Focus = %v, want %v", w.Focus(), button.ID())
	}
	if w.Cursor() != shell.CursorPointer {
		t.Errorf("Cursor = %v, want pointer", w.Cursor())
	}
	if button.State().IsActive() {
		t.Error("button still active after release")
	}
}

func TestButtonReleaseOutsideDoesNotTap(t *testing.T) {
	root := widgets.ColumnOf[counter](widgets.ButtonOf("+1", increment))
	w := newTestWindow(t, root)

	w.MoveTo(at(5, 5))
	w.Event(widget.EventMouseDown{MouseEvent: mouse(5, 5, widget.MouseLeft)})
	w.MoveTo(at(150, 80))
	w.Event(widget.EventMouseUp{MouseEvent: mouse(150, 80, widget.MouseLeft)})

	if got := w.Data().Count; got != 0 {
		t.Errorf("Count = %d, want 0", got)
	}
	if root.Children()[0].State().IsActive() {
		t.Error("button still active after release")
	}
}

func TestDisabledButton(t *testing.T) {
	root := widgets.ColumnOf[counter](widgets.ButtonOf("+1", increment).WithDisabled(true))
	w := newTestWindow(t, root)

	w.TapAt(at(5, 5))

	if got := w.Data().Count; got != 0 {
		t.Errorf("Count = %d, want 0", got)
	}
	if w.Focus().IsValid() {
		t.Errorf("Focus = %v, want none", w.Focus())
	}
	if chain := w.Root().State().FocusChain(); len(chain) != 0 {
		t.Errorf("FocusChain = %v, want empty", chain)
	}
}

func TestButtonKeyboard(t *testing.T) {
	double := func(ctx *widget.EventCtx, data *counter) { data.Count *= 2 }
	root := widgets.RowOf[counter](
		widgets.ButtonOf("A", increment),
		widgets.ButtonOf("B", double),
	)
	w := newTestWindow(t, root)
	first, second := root.Children()[0], root.Children()[1]

	if w.PressKey(widget.KeyEnter, false) {
		t.Error("Enter handled with nothing focused")
	}

	w.TapAt(at(5, 5))
	if w.Focus() != first.ID() {
		t.Fatalf("Focus = %v, want first button", w.Focus())
	}

	tests := []struct {
		key       string
		shift     bool
		wantFocus widget.WidgetID
		wantCount int
	}{
		{widget.KeyEnter, false, first.ID(), 2},
		{widget.KeySpace, false, first.ID(), 3},
		{widget.KeyTab, false, second.ID(), 3},
		{widget.KeyEnter, false, second.ID(), 6},
		{widget.KeyTab, false, first.ID(), 6},
		{widget.KeyTab, true, second.ID(), 6},
	}
	for i, tt := range tests {
		if !w.PressKey(tt.key, tt.shift) {
			t.Errorf("step %d: key %q not handled", i, tt.key)
		}
		if w.Focus() != tt.wantFocus {
			t.Errorf("step %d: Focus = %v, want %v", i, w.Focus(), tt.wantFocus)
		}
		if got := w.Data().Count; got != tt.wantCount {
			t.Errorf("step %d: Count = %d, want %d", i, got, tt.wantCount)
		}
	}
}

func TestButtonPaintsFocusRing(t *testing.T) {
	root := widgets.ColumnOf[counter](widgets.ButtonOf("+1", increment))
	w := newTestWindow(t, root)

	before := w.Pump()
	for _, d := range before {
		if d.Kind == graphics.DrawStrokeRect {
			t.Fatal("focus ring painted without focus")
		}
	}

	w.TapAt(at(5, 5))
	draws := w.Pump()
	var ring *graphics.Draw
	for i := range draws {
		if draws[i].Kind == graphics.DrawStrokeRect {
			ring = &draws[i]
		}
	}
	if ring == nil {
		t.Fatal("no focus ring after click")
	}
	if ring.Color != graphics.ColorBlue {
		t.Errorf("ring color = %v, want blue", ring.Color)
	}
	if ring.Rect != root.Children()[0].State().Size().ToRect() {
		t.Errorf("ring rect = %v, want button bounds", ring.Rect)
	}
}
