package widget

// LifeCycleCtx is passed to Widget.LifeCycle.
type LifeCycleCtx struct {
	requestBase
}

// NewLifeCycleCtx creates the context for visiting the widget owning ws.
func NewLifeCycleCtx(state *ContextState, ws *WidgetState) *LifeCycleCtx {
	return &LifeCycleCtx{requestBase{statusBase{contextBase{state: state, widgetState: ws}}}}
}

// RegisterChild records id as a descendant. WidgetPod calls it while
// handling LifeCycleWidgetAdded.
func (c *LifeCycleCtx) RegisterChild(id WidgetID) {
	c.widgetState.children[id] = struct{}{}
}

// RegisterForFocus adds the widget to the focus chain. Call it while
// handling LifeCycleWidgetAdded.
func (c *LifeCycleCtx) RegisterForFocus() {
	c.widgetState.focusChain = append(c.widgetState.focusChain, c.widgetState.id)
}

// UpdateCtx is passed to Widget.Update.
type UpdateCtx struct {
	requestBase
}

// NewUpdateCtx creates the context for visiting the widget owning ws.
func NewUpdateCtx(state *ContextState, ws *WidgetState) *UpdateCtx {
	return &UpdateCtx{requestBase{statusBase{contextBase{state: state, widgetState: ws}}}}
}
