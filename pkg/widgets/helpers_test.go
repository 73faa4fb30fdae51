package widgets_test

import (
	"sync"
	"testing"

	"github.com/go-drift/arbor/pkg/errors"
	"github.com/go-drift/arbor/pkg/graphics"
	arbortest "github.com/go-drift/arbor/pkg/testing"
	"github.com/go-drift/arbor/pkg/widget"
	"github.com/go-drift/arbor/pkg/window"
)

type counter struct {
	Count int
	Name  string
}

var testWindowSize = graphics.Size{Width: 200, Height: 100}

type testWindow = arbortest.WidgetTester[counter]

// newTestWindow connects root to a headless tester window. The first frame
// is already painted, so hit testing sees real geometry.
func newTestWindow(t *testing.T, root widget.Widget[counter], opts ...window.Option) *testWindow {
	t.Helper()
	return arbortest.NewWidgetTesterWithT(t, root, counter{},
		arbortest.WithSize(testWindowSize),
		arbortest.WithWindowOptions(opts...),
	)
}

func at(x, y float64) graphics.Offset {
	return graphics.Offset{X: x, Y: y}
}

func mouse(x, y float64, button widget.MouseButton) widget.MouseEvent {
	return widget.MouseEvent{Pos: at(x, y), WindowPos: at(x, y), Button: button, Count: 1}
}

func indexOfText(draws []graphics.Draw, text string) int {
	for i, d := range draws {
		if d.Kind == graphics.DrawTextRun && d.Text == text {
			return i
		}
	}
	return -1
}

type recordingHandler struct {
	mu     sync.Mutex
	errors []*errors.Error
}

func (h *recordingHandler) HandleError(err *errors.Error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errors = append(h.errors, err)
}

func (h *recordingHandler) HandlePanic(err *errors.PanicError) {}

func (h *recordingHandler) count(kind errors.ErrorKind) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, err := range h.errors {
		if err.Kind == kind {
			n++
		}
	}
	return n
}

func captureErrors(t *testing.T) *recordingHandler {
	t.Helper()
	h := &recordingHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return h
}

func increment(ctx *widget.EventCtx, data *counter) {
	data.Count++
}
