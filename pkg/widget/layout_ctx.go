package widget

import "github.com/go-drift/arbor/pkg/graphics"

// LayoutCtx is passed to Widget.Layout.
type LayoutCtx struct {
	contextBase
}

// NewLayoutCtx creates the context for visiting the widget owning ws.
func NewLayoutCtx(state *ContextState, ws *WidgetState) *LayoutCtx {
	return &LayoutCtx{contextBase{state: state, widgetState: ws}}
}

// SubmitCommand enqueues cmd. A zero target addresses the current window.
func (c *LayoutCtx) SubmitCommand(cmd Command, target Target) {
	c.state.submitCommand(cmd, target)
}

// SetPaintInsets declares how far the widget paints outside its layout
// rect. Negative components are treated as zero.
func (c *LayoutCtx) SetPaintInsets(insets graphics.Insets) {
	c.widgetState.paintInsets = insets.Nonnegative()
}
