package widget

import (
	"bytes"
	"log/slog"
	"reflect"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/go-drift/arbor/pkg/errors"
	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/shell"
)

func newTestPass(policy ContractPolicy) (*ContextState, *CommandQueue, *shell.Headless) {
	win := shell.NewHeadless()
	queue := NewCommandQueue()
	state := NewContextState(PassConfig{
		Commands: queue,
		Window:   win,
		RootType: reflect.TypeFor[testData](),
		Policy:   policy,
	})
	return state, queue, win
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func TestRequestPaintCoversLocalPaintRect(t *testing.T) {
	state, _, _ := newTestPass(PolicyLogAndDrop)
	ws := NewWidgetState(NewWidgetID())
	ws.origin = graphics.Offset{X: 5, Y: 5}
	ws.size = graphics.Size{Width: 10, Height: 10}
	ws.paintInsets = graphics.UniformInsets(2)

	NewEventCtx(state, ws).RequestPaint()

	if got, want := ws.Invalid().Rect(), (graphics.Rect{Left: -2, Top: -2, Right: 12, Bottom: 12}); got != want {
		t.Errorf("invalid = %v, want %v", got, want)
	}
}

func TestRequestPaintRectClipsToPaintRect(t *testing.T) {
	state, _, _ := newTestPass(PolicyLogAndDrop)
	ws := NewWidgetState(NewWidgetID())
	ws.origin = graphics.Offset{X: 5, Y: 5}
	ws.size = graphics.Size{Width: 10, Height: 10}
	ws.paintInsets = graphics.UniformInsets(2)
	ctx := NewEventCtx(state, ws)

	ctx.RequestPaintRect(graphics.RectFromLTWH(50, 50, 5, 5))
	if !ws.Invalid().IsEmpty() {
		t.Fatalf("invalid = %v after a rect outside the paint rect, want empty", ws.Invalid().Rect())
	}

	ctx.RequestPaintRect(graphics.Rect{Left: 8, Top: -10, Right: 30, Bottom: 4})
	if got, want := ws.Invalid().Rect(), (graphics.Rect{Left: 8, Top: -2, Right: 12, Bottom: 4}); got != want {
		t.Errorf("invalid = %v, want %v", got, want)
	}
}

func TestMergeUpTranslatesInvalidRegion(t *testing.T) {
	parent := NewWidgetState(NewWidgetID())
	child := NewWidgetState(NewWidgetID())
	child.origin = graphics.Offset{X: 5, Y: 5}
	child.invalid = RegionFromRect(graphics.RectFromLTWH(0, 0, 10, 10))

	parent.mergeUp(child)

	if got, want := parent.Invalid().Rect(), graphics.RectFromLTWH(5, 5, 10, 10); got != want {
		t.Errorf("merged invalid = %v, want %v", got, want)
	}
}

func TestRequestAnimFrameAlsoRequestsPaint(t *testing.T) {
	state, _, _ := newTestPass(PolicyLogAndDrop)
	ws := NewWidgetState(NewWidgetID())
	ws.size = graphics.Size{Width: 4, Height: 4}

	NewUpdateCtx(state, ws).RequestAnimFrame()

	if !ws.RequestsAnim() {
		t.Error("RequestsAnim = false")
	}
	if ws.Invalid().IsEmpty() {
		t.Error("RequestAnimFrame did not invalidate")
	}
}

func TestRequestTimerRegistersToken(t *testing.T) {
	state, _, win := newTestPass(PolicyLogAndDrop)
	ws := NewWidgetState(NewWidgetID())

	token := NewLifeCycleCtx(state, ws).RequestTimer(10 * time.Millisecond)

	if !ws.OwnsTimer(token) {
		t.Error("token not registered on widget state")
	}
	if win.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", win.Pending())
	}
}

func TestSetCursorLastWriteWins(t *testing.T) {
	state, _, _ := newTestPass(PolicyLogAndDrop)
	if _, ok := state.Cursor(); ok {
		t.Fatal("cursor set before any request")
	}
	NewEventCtx(state, NewWidgetState(NewWidgetID())).SetCursor(shell.CursorPointer)
	NewEventCtx(state, NewWidgetState(NewWidgetID())).SetCursor(shell.CursorIBeam)

	got, ok := state.Cursor()
	if !ok || got != shell.CursorIBeam {
		t.Errorf("Cursor = %v, %v, want %v, true", got, ok, shell.CursorIBeam)
	}
}

func TestSetActiveRoundTripLeavesNoRequest(t *testing.T) {
	state, queue, _ := newTestPass(PolicyLogAndDrop)
	ws := NewWidgetState(NewWidgetID())
	ctx := NewEventCtx(state, ws)

	ctx.SetActive(true)
	if !ctx.IsActive() {
		t.Fatal("IsActive = false after SetActive(true)")
	}
	ctx.SetActive(false)

	if ctx.IsActive() {
		t.Error("IsActive = true after SetActive(false)")
	}
	if _, ok := ws.RequestedFocus(); ok {
		t.Error("unexpected focus request")
	}
	if !ws.Invalid().IsEmpty() || ws.NeedsLayout() || queue.Len() != 0 {
		t.Error("SetActive left a pending request")
	}
}

func TestRequestFocusLastRequestWins(t *testing.T) {
	h, a, b := newTwoRowHarness()
	requestFocus := func(ctx *EventCtx, ev Event, data *testData) { ctx.RequestFocus() }
	a.onEvent = requestFocus
	b.onEvent = requestFocus

	ws, _ := h.event(EventCommand{Command: NewCommand("test.ping", nil)})

	got, ok := ws.RequestedFocus()
	if !ok {
		t.Fatal("no focus request")
	}
	if want := (FocusChange{Kind: FocusTake, Target: b.id}); got != want {
		t.Errorf("RequestedFocus = %+v, want %+v", got, want)
	}
}

func TestFocusTraversalRequiresFocus(t *testing.T) {
	reported := captureErrors(t)
	state, _, _ := newTestPass(PolicyLogAndDrop)
	ws := NewWidgetState(NewWidgetID())
	ctx := NewEventCtx(state, ws)

	ctx.FocusNext()
	ctx.FocusPrev()
	ctx.ResignFocus()

	if _, ok := ws.RequestedFocus(); ok {
		t.Error("unfocused widget produced a focus request")
	}
	var ops []string
	for _, err := range reported.errs {
		if err.Kind != errors.KindFocus {
			t.Errorf("reported kind = %v, want focus", err.Kind)
		}
		ops = append(ops, err.Op)
	}
	want := []string{"widget.EventCtx.FocusNext", "widget.EventCtx.FocusPrev", "widget.EventCtx.ResignFocus"}
	if !slices.Equal(ops, want) {
		t.Errorf("reported ops = %v, want %v", ops, want)
	}

	ws.hasFocus = true
	ctx.FocusNext()
	got, ok := ws.RequestedFocus()
	if !ok || got.Kind != FocusNext {
		t.Errorf("RequestedFocus = %+v, %v, want FocusNext", got, ok)
	}
}

func TestIsFocusedComparesPassFocus(t *testing.T) {
	ws := NewWidgetState(NewWidgetID())
	win := shell.NewHeadless()
	focused := NewContextState(PassConfig{Commands: NewCommandQueue(), Window: win, Focus: ws.ID()})
	other := NewContextState(PassConfig{Commands: NewCommandQueue(), Window: win})

	if !NewPaintCtx(focused, ws, graphics.NewRecorder(graphics.Size{}), RegionEmpty).IsFocused() {
		t.Error("IsFocused = false for the focused widget")
	}
	if NewPaintCtx(other, ws, graphics.NewRecorder(graphics.Size{}), RegionEmpty).IsFocused() {
		t.Error("IsFocused = true with no focus")
	}
}

func TestSubmitCommandResolvesTarget(t *testing.T) {
	state, queue, win := newTestPass(PolicyLogAndDrop)
	ws := NewWidgetState(NewWidgetID())
	other := NewWidgetID()

	NewEventCtx(state, ws).SubmitCommand(NewCommand("first", 1), Target{})
	NewLayoutCtx(state, ws).SubmitCommand(NewCommand("second", 2), WidgetTarget(other))
	NewUpdateCtx(state, ws).SubmitCommand(NewCommand("third", 3), GlobalTarget())

	items := queue.Drain()
	require.Len(t, items, 3)
	require.Equal(t, Selector("first"), items[0].Command.Selector)
	require.Equal(t, WindowTarget(win.ID()), items[0].Target)
	require.Equal(t, Selector("second"), items[1].Command.Selector)
	require.Equal(t, WidgetTarget(other), items[1].Target)
	require.Equal(t, Selector("third"), items[2].Command.Selector)
	require.Equal(t, GlobalTarget(), items[2].Target)
	require.Zero(t, queue.Len())
}

func TestSetPaintInsetsClampsNegative(t *testing.T) {
	state, _, _ := newTestPass(PolicyLogAndDrop)
	ws := NewWidgetState(NewWidgetID())

	NewLayoutCtx(state, ws).SetPaintInsets(graphics.Insets{Left: -3, Top: 2, Right: 1, Bottom: -1})

	require.Equal(t, graphics.Insets{Top: 2, Right: 1}, ws.PaintInsets())
}

func TestMatchingPayloadsAreSubmitted(t *testing.T) {
	state, queue, win := newTestPass(PolicyPanic)
	ctx := NewEventCtx(state, NewWidgetState(NewWidgetID()))
	menu := NewMenuDesc[testData]("File", MenuItem{Label: "Quit", Command: NewCommand("quit", nil)})

	ctx.SetMenu(menu)
	ctx.ShowContextMenu(NewContextMenu(menu, graphics.Offset{X: 3, Y: 4}))
	ctx.NewWindow(NewWindowDesc("second", graphics.Size{Width: 10, Height: 10}, func() Widget[testData] {
		return newSpy(rowSize)
	}))

	items := queue.Drain()
	require.Len(t, items, 3)

	require.True(t, items[0].Command.Is(SelectorSetMenu))
	require.Equal(t, WindowTarget(win.ID()), items[0].Target)
	gotMenu, ok := CommandPayload[MenuDesc](items[0].Command)
	require.True(t, ok)
	require.Equal(t, "File", gotMenu.Title)

	require.True(t, items[1].Command.Is(SelectorShowContextMenu))
	gotContext, ok := CommandPayload[ContextMenu](items[1].Command)
	require.True(t, ok)
	require.Equal(t, graphics.Offset{X: 3, Y: 4}, gotContext.Location)

	require.True(t, items[2].Command.Is(SelectorNewWindow))
	require.Equal(t, GlobalTarget(), items[2].Target)
	once, ok := CommandPayload[*SingleUse[WindowDesc]](items[2].Command)
	require.True(t, ok)
	desc, ok := once.Take()
	require.True(t, ok)
	require.Equal(t, "second", desc.Title)
	require.Equal(t, reflect.TypeFor[testData](), desc.DataType())
	_, ok = once.Take()
	require.False(t, ok, "SingleUse payload taken twice")
}

func TestMismatchedPayloadIsDroppedInRelease(t *testing.T) {
	handler := captureErrors(t)
	state, queue, _ := newTestPass(PolicyLogAndDrop)
	ctx := NewEventCtx(state, NewWidgetState(NewWidgetID()))
	wrong := NewMenuDesc[string]("Wrong")

	ctx.SetMenu(wrong)
	ctx.ShowContextMenu(NewContextMenu(wrong, graphics.Offset{}))
	ctx.NewWindow(NewWindowDesc("wrong", graphics.Size{}, func() Widget[int] { return nil }))

	require.Zero(t, queue.Len(), "mismatched payloads must not be submitted")
	require.Len(t, handler.errs, 3)
	for _, err := range handler.errs {
		require.Equal(t, errors.KindContract, err.Kind)
		var contract *errors.ContractError
		require.ErrorAs(t, err, &contract)
		require.Equal(t, reflect.TypeFor[testData](), contract.Want)
	}
}

func TestMismatchedPayloadPanicsInDebug(t *testing.T) {
	state, queue, _ := newTestPass(PolicyPanic)
	ctx := NewEventCtx(state, NewWidgetState(NewWidgetID()))

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(*errors.ContractError)
		require.True(t, ok, "panic value %T, want *errors.ContractError", r)
		require.Equal(t, "SetMenu", err.Op)
		require.Equal(t, reflect.TypeFor[string](), err.Got)
		require.Zero(t, queue.Len())
	}()
	ctx.SetMenu(NewMenuDesc[string]("Wrong"))
}
