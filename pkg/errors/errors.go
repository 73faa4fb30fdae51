// Package errors provides structured error reporting for arbor.
//
// Context methods never return errors to widget code. Backend hiccups and
// dropped contract violations are reported here instead, so that a host
// application can route them to its own telemetry.
package errors

import (
	"fmt"
	"reflect"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindRender indicates a drawing backend failure.
	KindRender
	// KindContract indicates a caller broke an API contract.
	KindContract
	// KindFocus indicates misuse of a focus transfer.
	KindFocus
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindConfig indicates a configuration error.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindRender:
		return "render"
	case KindContract:
		return "contract"
	case KindFocus:
		return "focus"
	case KindPanic:
		return "panic"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// Error represents a structured error in arbor.
type Error struct {
	// Op is the operation that failed (e.g., "widget.PaintCtx.WithSave").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ContractError reports a payload whose data type does not match the
// application's root data type.
type ContractError struct {
	// Op is the submission that was rejected (e.g., "SetMenu").
	Op string
	// Want is the root data type recorded for the pass.
	Want reflect.Type
	// Got is the data type the payload was built for.
	Got reflect.Type
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: payload built for %v, but the root data type is %v", e.Op, e.Got, e.Want)
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "window.Event").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by arbor.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
