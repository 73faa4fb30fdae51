package widgets

import (
	"fmt"
	"math"

	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/widget"
)

// Axis represents the layout direction.
// AxisVertical is the zero value.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// childrenChanger is implemented by the contexts that may add children.
type childrenChanger interface {
	ChildrenChanged()
}

// Flex lays its children out one after another along Axis. Each child gets
// loose constraints; the cross extent is the largest child's.
type Flex[T any] struct {
	Axis Axis
	// Spacing is the gap between adjacent children.
	Spacing float64

	children []*widget.WidgetPod[T]
}

// ColumnOf creates a vertical flex.
func ColumnOf[T any](children ...widget.Widget[T]) *Flex[T] {
	return newFlex(AxisVertical, children)
}

// RowOf creates a horizontal flex.
func RowOf[T any](children ...widget.Widget[T]) *Flex[T] {
	return newFlex(AxisHorizontal, children)
}

func newFlex[T any](axis Axis, children []widget.Widget[T]) *Flex[T] {
	f := &Flex[T]{Axis: axis}
	for _, child := range children {
		f.children = append(f.children, widget.NewWidgetPod(child))
	}
	return f
}

// WithSpacing returns the flex with the specified gap between children.
func (f *Flex[T]) WithSpacing(spacing float64) *Flex[T] {
	f.Spacing = spacing
	return f
}

// Children returns the child pods in layout order.
func (f *Flex[T]) Children() []*widget.WidgetPod[T] {
	return f.children
}

// Add appends a child while the tree is live. ctx is the context of the
// pass in which the flex decided to grow.
func (f *Flex[T]) Add(ctx childrenChanger, child widget.Widget[T]) {
	f.children = append(f.children, widget.NewWidgetPod(child))
	ctx.ChildrenChanged()
}

func (f *Flex[T]) Event(ctx *widget.EventCtx, event widget.Event, data *T) {
	for _, child := range f.children {
		child.Event(ctx, event, data)
	}
}

func (f *Flex[T]) LifeCycle(ctx *widget.LifeCycleCtx, event widget.LifeCycle, data T) {
	for _, child := range f.children {
		child.LifeCycle(ctx, event, data)
	}
}

func (f *Flex[T]) Update(ctx *widget.UpdateCtx, oldData, data T) {
	for _, child := range f.children {
		child.Update(ctx, data)
	}
}

func (f *Flex[T]) Layout(ctx *widget.LayoutCtx, bc widget.BoxConstraints, data T) graphics.Size {
	childBC := bc.Loosen()
	var main, cross float64
	for i, child := range f.children {
		if i > 0 {
			main += f.Spacing
		}
		size := child.Layout(ctx, childBC, data)
		child.SetOrigin(ctx, f.makeOffset(main, 0))
		main += f.mainAxis(size)
		cross = math.Max(cross, f.crossAxis(size))
	}
	size := bc.Constrain(f.makeSize(main, cross))

	var insets graphics.Insets
	for _, child := range f.children {
		insets = maxInsets(insets, child.ParentPaintInsets(size))
	}
	ctx.SetPaintInsets(insets)
	return size
}

func (f *Flex[T]) Paint(ctx *widget.PaintCtx, data T) {
	for _, child := range f.children {
		child.Paint(ctx, data)
	}
}

func (f *Flex[T]) mainAxis(size graphics.Size) float64 {
	if f.Axis == AxisHorizontal {
		return size.Width
	}
	return size.Height
}

func (f *Flex[T]) crossAxis(size graphics.Size) float64 {
	if f.Axis == AxisHorizontal {
		return size.Height
	}
	return size.Width
}

func (f *Flex[T]) makeSize(main, cross float64) graphics.Size {
	if f.Axis == AxisHorizontal {
		return graphics.Size{Width: main, Height: cross}
	}
	return graphics.Size{Width: cross, Height: main}
}

func (f *Flex[T]) makeOffset(main, cross float64) graphics.Offset {
	if f.Axis == AxisHorizontal {
		return graphics.Offset{X: main, Y: cross}
	}
	return graphics.Offset{X: cross, Y: main}
}

func maxInsets(a, b graphics.Insets) graphics.Insets {
	return graphics.Insets{
		Left:   math.Max(a.Left, b.Left),
		Top:    math.Max(a.Top, b.Top),
		Right:  math.Max(a.Right, b.Right),
		Bottom: math.Max(a.Bottom, b.Bottom),
	}
}
