package widget

import (
	"reflect"
	"testing"

	"github.com/go-drift/arbor/pkg/errors"
	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/shell"
)

type testData struct {
	Count int
	Label string
}

// spy is a leaf widget that records what it receives.
type spy struct {
	id        WidgetID
	size      graphics.Size
	insets    graphics.Insets
	focusable bool

	onEvent     func(ctx *EventCtx, ev Event, data *testData)
	onLifeCycle func(ctx *LifeCycleCtx, ev LifeCycle)
	onPaint     func(ctx *PaintCtx)

	events     []Event
	lifecycles []LifeCycle
	updates    int
	paints     int
}

func newSpy(size graphics.Size) *spy {
	return &spy{id: NewWidgetID(), size: size}
}

func (p *spy) ID() WidgetID { return p.id }

func (p *spy) Event(ctx *EventCtx, ev Event, data *testData) {
	p.events = append(p.events, ev)
	if p.onEvent != nil {
		p.onEvent(ctx, ev, data)
	}
}

func (p *spy) LifeCycle(ctx *LifeCycleCtx, ev LifeCycle, data testData) {
	p.lifecycles = append(p.lifecycles, ev)
	if _, ok := ev.(LifeCycleWidgetAdded); ok && p.focusable {
		ctx.RegisterForFocus()
	}
	if p.onLifeCycle != nil {
		p.onLifeCycle(ctx, ev)
	}
}

func (p *spy) Update(ctx *UpdateCtx, oldData, data testData) {
	p.updates++
}

func (p *spy) Layout(ctx *LayoutCtx, bc BoxConstraints, data testData) graphics.Size {
	ctx.SetPaintInsets(p.insets)
	return bc.Constrain(p.size)
}

func (p *spy) Paint(ctx *PaintCtx, data testData) {
	p.paints++
	if p.onPaint != nil {
		p.onPaint(ctx)
	}
}

const selectorAddChild Selector = "test.add-child"

// stack lays children out top to bottom.
type stack struct {
	children []*WidgetPod[testData]
}

func newStack(children ...Widget[testData]) *stack {
	s := &stack{}
	for _, child := range children {
		s.children = append(s.children, NewWidgetPod(child))
	}
	return s
}

func (s *stack) Event(ctx *EventCtx, ev Event, data *testData) {
	if cmd, ok := ev.(EventCommand); ok && cmd.Command.Is(selectorAddChild) {
		if w, ok := CommandPayload[Widget[testData]](cmd.Command); ok {
			s.children = append(s.children, NewWidgetPod(w))
			ctx.ChildrenChanged()
			ctx.SetHandled()
			return
		}
	}
	for _, child := range s.children {
		child.Event(ctx, ev, data)
	}
}

func (s *stack) LifeCycle(ctx *LifeCycleCtx, ev LifeCycle, data testData) {
	for _, child := range s.children {
		child.LifeCycle(ctx, ev, data)
	}
}

func (s *stack) Update(ctx *UpdateCtx, oldData, data testData) {
	for _, child := range s.children {
		child.Update(ctx, data)
	}
}

func (s *stack) Layout(ctx *LayoutCtx, bc BoxConstraints, data testData) graphics.Size {
	var width, y float64
	for _, child := range s.children {
		size := child.Layout(ctx, bc.Loosen(), data)
		child.SetOrigin(ctx, graphics.Offset{Y: y})
		y += size.Height
		width = max(width, size.Width)
	}
	return bc.Constrain(graphics.Size{Width: width, Height: y})
}

func (s *stack) Paint(ctx *PaintCtx, data testData) {
	for _, child := range s.children {
		child.Paint(ctx, data)
	}
}

// harness drives a root pod the way a window does, with a fresh parent
// state per pass.
type harness struct {
	win    *shell.Headless
	queue  *CommandQueue
	root   *WidgetPod[testData]
	data   testData
	focus  WidgetID
	policy ContractPolicy
}

func newHarness(root Widget[testData]) *harness {
	h := &harness{
		win:   shell.NewHeadless(),
		queue: NewCommandQueue(),
		root:  NewWidgetPod(root),
	}
	h.lifecycle(LifeCycleWidgetAdded{})
	return h
}

func (h *harness) contextState() *ContextState {
	return NewContextState(PassConfig{
		Commands: h.queue,
		Window:   h.win,
		RootType: reflect.TypeFor[testData](),
		Focus:    h.focus,
		Policy:   h.policy,
	})
}

func (h *harness) event(ev Event) (*WidgetState, bool) {
	ws := NewWidgetState(NewWidgetID())
	ctx := NewEventCtx(h.contextState(), ws)
	h.root.Event(ctx, ev, &h.data)
	return ws, ctx.IsHandled()
}

func (h *harness) lifecycle(ev LifeCycle) *WidgetState {
	ws := NewWidgetState(NewWidgetID())
	h.root.LifeCycle(NewLifeCycleCtx(h.contextState(), ws), ev, h.data)
	return ws
}

func (h *harness) update(data testData) *WidgetState {
	h.data = data
	ws := NewWidgetState(NewWidgetID())
	h.root.Update(NewUpdateCtx(h.contextState(), ws), data)
	return ws
}

func (h *harness) layout(size graphics.Size) graphics.Size {
	ws := NewWidgetState(NewWidgetID())
	ctx := NewLayoutCtx(h.contextState(), ws)
	got := h.root.Layout(ctx, LooseConstraints(size), h.data)
	h.root.SetOrigin(ctx, graphics.Offset{})
	return got
}

func (h *harness) paint(canvas graphics.Canvas, region Region) *PaintCtx {
	ws := NewWidgetState(NewWidgetID())
	ctx := NewPaintCtx(h.contextState(), ws, canvas, region)
	h.root.Paint(ctx, h.data)
	return ctx
}

func (h *harness) setFocus(id WidgetID) {
	old := h.focus
	h.focus = id
	h.lifecycle(LifeCycleRouteFocusChanged{Old: old, New: id})
}

func eventsOf[E Event](events []Event) []E {
	var out []E
	for _, ev := range events {
		if e, ok := ev.(E); ok {
			out = append(out, e)
		}
	}
	return out
}

func lifecyclesOf[L LifeCycle](events []LifeCycle) []L {
	var out []L
	for _, ev := range events {
		if e, ok := ev.(L); ok {
			out = append(out, e)
		}
	}
	return out
}

// recordingHandler collects reported errors.
type recordingHandler struct {
	errs   []*errors.Error
	panics []*errors.PanicError
}

func (h *recordingHandler) HandleError(err *errors.Error) {
	h.errs = append(h.errs, err)
}

func (h *recordingHandler) HandlePanic(err *errors.PanicError) {
	h.panics = append(h.panics, err)
}

func captureErrors(t *testing.T) *recordingHandler {
	t.Helper()
	h := &recordingHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return h
}
