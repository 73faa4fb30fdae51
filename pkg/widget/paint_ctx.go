package widget

import (
	"cmp"
	"slices"

	"github.com/go-drift/arbor/pkg/errors"
	"github.com/go-drift/arbor/pkg/graphics"
)

// maxReplayRounds bounds how many times ReplayZOps drains ops submitted by
// other z-ops.
const maxReplayRounds = 16

// ZOrderPaintOp is a paint closure deferred until the tree has painted.
type ZOrderPaintOp struct {
	// ZIndex orders ops ascending. Ops with equal ZIndex keep submission
	// order.
	ZIndex uint32

	// Transform is the canvas transform when the op was submitted.
	Transform graphics.Affine

	// Paint draws the op.
	Paint func(ctx *PaintCtx)
}

// PaintCtx is passed to Widget.Paint. It embeds the canvas, so widgets draw
// by calling canvas methods on the context directly.
type PaintCtx struct {
	statusBase
	graphics.Canvas

	region Region
	zOps   []ZOrderPaintOp
	depth  int
}

// NewPaintCtx creates the root paint context. region is the damage area in
// the coordinates of the widget owning ws.
func NewPaintCtx(state *ContextState, ws *WidgetState, canvas graphics.Canvas, region Region) *PaintCtx {
	return &PaintCtx{
		statusBase: statusBase{contextBase{state: state, widgetState: ws}},
		Canvas:     canvas,
		region:     region,
	}
}

// Size returns the widget's size. Use ctx.Canvas.Size for the canvas size.
func (c *PaintCtx) Size() graphics.Size {
	return c.widgetState.size
}

// Region returns the area that needs repainting, in the widget's
// coordinates. Widgets may skip drawing outside it.
func (c *PaintCtx) Region() Region {
	return c.region
}

// Depth returns the nesting depth of child contexts.
func (c *PaintCtx) Depth() int {
	return c.depth
}

// ZOps returns the deferred ops submitted through this context so far.
func (c *PaintCtx) ZOps() []ZOrderPaintOp {
	return c.zOps
}

// forWidget returns a context sharing the canvas, region, and depth of c
// but visiting the widget owning ws.
func (c *PaintCtx) forWidget(ws *WidgetState) *PaintCtx {
	return &PaintCtx{
		statusBase: statusBase{contextBase{state: c.state, widgetState: ws}},
		Canvas:     c.Canvas,
		region:     c.region,
		depth:      c.depth,
	}
}

// WithChildCtx runs f with a context restricted to region. Ops deferred by
// f are appended to c's ops once f returns.
func (c *PaintCtx) WithChildCtx(region Region, f func(ctx *PaintCtx)) {
	child := c.forWidget(c.widgetState)
	child.region = region
	child.depth = c.depth + 1
	f(child)
	c.zOps = append(c.zOps, child.zOps...)
}

// WithSave runs f between a canvas save and restore.
//
// If the save fails the failure is reported and f is skipped. Otherwise the
// restore runs on every exit path, including a panic in f, which is
// re-raised once the restore has been attempted. A failed restore is
// reported.
func (c *PaintCtx) WithSave(f func(ctx *PaintCtx)) {
	if err := c.Canvas.Save(); err != nil {
		errors.Report(&errors.Error{
			Op:   "widget.PaintCtx.WithSave",
			Kind: errors.KindRender,
			Err:  err,
		})
		return
	}
	defer func() {
		if err := c.Canvas.Restore(); err != nil {
			errors.Report(&errors.Error{
				Op:   "widget.PaintCtx.WithSave",
				Kind: errors.KindRender,
				Err:  err,
			})
		}
	}()
	f(c)
}

// PaintWithZIndex defers f until ReplayZOps. f runs with the transform that
// is current now.
func (c *PaintCtx) PaintWithZIndex(zIndex uint32, f func(ctx *PaintCtx)) {
	c.zOps = append(c.zOps, ZOrderPaintOp{
		ZIndex:    zIndex,
		Transform: c.Canvas.CurrentTransform(),
		Paint:     f,
	})
}

// ReplayZOps runs every deferred op in ascending z-index, ties in
// submission order. Each op runs in its own save scope with its captured
// transform restored. Ops deferred during replay run in a following round.
func (c *PaintCtx) ReplayZOps() {
	for round := 0; len(c.zOps) > 0; round++ {
		if round == maxReplayRounds {
			logger().Warn("dropping z-ordered paint ops deferred during replay",
				"count", len(c.zOps), "rounds", round)
			c.zOps = nil
			return
		}
		ops := c.zOps
		c.zOps = nil
		slices.SortStableFunc(ops, func(a, b ZOrderPaintOp) int {
			return cmp.Compare(a.ZIndex, b.ZIndex)
		})
		for _, op := range ops {
			c.WithChildCtx(c.region, func(child *PaintCtx) {
				child.WithSave(func(ctx *PaintCtx) {
					ctx.SetTransform(op.Transform)
					op.Paint(ctx)
				})
			})
		}
	}
}
