// Package widget provides the per-pass contexts threaded through a widget
// tree during event dispatch, lifecycle notification, update, layout, and
// paint.
//
// A driver creates one ContextState per pass and hands each visited widget
// a context borrowing that state together with the widget's own
// WidgetState. Widgets never mutate the tree directly: requests such as
// RequestPaint, RequestLayout, RequestFocus, or SubmitCommand are recorded
// on the WidgetState or ContextState and reconciled by the driver after the
// recursive call returns. WidgetPod implements that merge step.
//
// # Contexts
//
// Each pass gets a context exposing only what that pass may do:
//
//	EventCtx      status, requests, commands, focus, cursor, active capture
//	LifeCycleCtx  status, requests, commands, child and focus registration
//	UpdateCtx     status, requests, commands
//	LayoutCtx     commands, paint insets
//	PaintCtx      status, drawing, damage region, z-ordered deferred paint
//
// # Paint ordering
//
// PaintCtx.PaintWithZIndex defers a paint closure together with the
// transform in effect at submission. The driver calls ReplayZOps after the
// tree has painted; ops run in ascending z-index, and ops with equal
// z-index run in submission order.
package widget
