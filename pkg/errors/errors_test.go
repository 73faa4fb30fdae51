package errors

import (
	"bytes"
	stderrors "errors"
	"log/slog"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestErrorString(t *testing.T) {
	err := &Error{
		Op:   "widget.PaintCtx.WithSave",
		Kind: KindRender,
		Err:  stderrors.New("save failed"),
	}
	got := err.Error()
	want := "widget.PaintCtx.WithSave [render]: save failed"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorUnwrap(t *testing.T) {
	inner := stderrors.New("inner")
	err := &Error{Op: "op", Kind: KindRender, Err: inner}
	if !stderrors.Is(err, inner) {
		t.Error("expected errors.Is to find the wrapped error")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindRender, "render"},
		{KindContract, "contract"},
		{KindFocus, "focus"},
		{KindPanic, "panic"},
		{KindConfig, "config"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestContractErrorString(t *testing.T) {
	type appState struct{}
	err := &ContractError{
		Op:   "SetMenu",
		Want: reflect.TypeFor[appState](),
		Got:  reflect.TypeFor[int](),
	}
	got := err.Error()
	if !strings.Contains(got, "SetMenu") || !strings.Contains(got, "int") || !strings.Contains(got, "appState") {
		t.Errorf("ContractError.Error() = %q, want op and both types", got)
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}

	err.Op = "window.Event"
	if got, want := err.Error(), "panic in window.Event: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *Error
	handler := &testHandler{
		onError: func(err *Error) {
			captured = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&Error{Op: "test.op", Kind: KindRender, Err: stderrors.New("boom")})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportNil(t *testing.T) {
	called := false
	oldHandler := DefaultHandler
	SetHandler(&testHandler{onError: func(*Error) { called = true }})
	defer SetHandler(oldHandler)

	Report(nil)
	if called {
		t.Error("Report(nil) should not reach the handler")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			captured = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
	if captured.StackTrace == "" {
		t.Error("expected a stack trace")
	}
}

func stackFromHelper() string {
	return CaptureStack()
}

func TestCaptureStackStartsAtCallersCaller(t *testing.T) {
	stack := stackFromHelper()

	first, rest, _ := strings.Cut(stack, "\n")
	if !strings.HasSuffix(first, ".TestCaptureStackStartsAtCallersCaller") {
		t.Errorf("first frame = %q, want the test function", first)
	}
	if !strings.HasPrefix(rest, "\t") || !strings.Contains(rest, "errors_test.go:") {
		t.Errorf("frame location = %q, want a tab-indented file:line", rest)
	}
}

func TestSetHandlerNil(t *testing.T) {
	oldHandler := DefaultHandler
	defer SetHandler(oldHandler)

	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandlerWritesRecord(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Logger: slog.New(slog.NewTextHandler(&buf, nil))}

	h.HandleError(&Error{Op: "ggcanvas.Restore", Kind: KindRender, Err: stderrors.New("underflow")})

	out := buf.String()
	for _, want := range []string{"arbor error", "op=ggcanvas.Restore", "kind=render", "underflow"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q missing %q", out, want)
		}
	}
}

func TestLogHandlerLevels(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindRender, "level=ERROR"},
		{KindContract, "level=ERROR"},
		{KindConfig, "level=ERROR"},
		{KindFocus, "level=WARN"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			var buf bytes.Buffer
			h := &LogHandler{Logger: slog.New(slog.NewTextHandler(&buf, nil))}
			h.HandleError(&Error{Op: "op", Kind: tt.kind, Err: stderrors.New("boom")})
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("log output %q missing %q", buf.String(), tt.want)
			}
		})
	}
}

type testHandler struct {
	onError func(*Error)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *Error) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
