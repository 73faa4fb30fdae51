package widget

import (
	"math"

	"github.com/go-drift/arbor/pkg/graphics"
)

// Widget is a node of the UI tree operating on data of type T.
//
// Containers hold their children in WidgetPods and forward every call to
// them; the pod decides whether the child actually receives it.
type Widget[T any] interface {
	// Event handles input. data may be mutated.
	Event(ctx *EventCtx, event Event, data *T)

	// LifeCycle handles tree notifications.
	LifeCycle(ctx *LifeCycleCtx, event LifeCycle, data T)

	// Update is called when data changed since the previous update, or
	// when the widget requested one.
	Update(ctx *UpdateCtx, oldData, data T)

	// Layout returns the widget's size within bc and positions children.
	Layout(ctx *LayoutCtx, bc BoxConstraints, data T) graphics.Size

	// Paint draws the widget in its own coordinate space.
	Paint(ctx *PaintCtx, data T)
}

// Identified is implemented by widgets that need a stable id known before
// they are added to the tree, for example to be the target of a command.
type Identified interface {
	ID() WidgetID
}

// BoxConstraints bound the size a widget may choose during layout.
type BoxConstraints struct {
	Min graphics.Size
	Max graphics.Size
}

// TightConstraints allow exactly size.
func TightConstraints(size graphics.Size) BoxConstraints {
	return BoxConstraints{Min: size, Max: size}
}

// LooseConstraints allow anything from zero up to size.
func LooseConstraints(size graphics.Size) BoxConstraints {
	return BoxConstraints{Max: size}
}

// UnboundedConstraints allow any size.
func UnboundedConstraints() BoxConstraints {
	return BoxConstraints{Max: graphics.Size{Width: math.Inf(1), Height: math.Inf(1)}}
}

// Loosen drops the minimum.
func (bc BoxConstraints) Loosen() BoxConstraints {
	return BoxConstraints{Max: bc.Max}
}

// Constrain clamps size into the constraints.
func (bc BoxConstraints) Constrain(size graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  clamp(size.Width, bc.Min.Width, bc.Max.Width),
		Height: clamp(size.Height, bc.Min.Height, bc.Max.Height),
	}
}

// IsTight reports whether only one size satisfies the constraints.
func (bc BoxConstraints) IsTight() bool {
	return bc.Min == bc.Max
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
