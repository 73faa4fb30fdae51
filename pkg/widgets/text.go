package widgets

import (
	"github.com/go-drift/arbor/pkg/errors"
	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/widget"
)

// Label displays a single run of text.
//
// Text is shown as-is unless TextFn is set, in which case the label text is
// derived from the data on every update.
type Label[T any] struct {
	// Text is the static label text.
	Text string
	// TextFn derives the text from data. Takes precedence over Text.
	TextFn func(data T) string
	// Color is the text color. Defaults to black if zero.
	Color graphics.Color

	current string
	layout  *graphics.TextLayout
}

// LabelOf creates a label with static text.
func LabelOf[T any](text string) *Label[T] {
	return &Label[T]{Text: text}
}

// DynamicLabelOf creates a label whose text is derived from data.
func DynamicLabelOf[T any](fn func(data T) string) *Label[T] {
	return &Label[T]{TextFn: fn}
}

// WithColor returns the label with the specified text color.
func (l *Label[T]) WithColor(color graphics.Color) *Label[T] {
	l.Color = color
	return l
}

// CurrentText returns the text of the most recent layout.
func (l *Label[T]) CurrentText() string {
	return l.current
}

func (l *Label[T]) text(data T) string {
	if l.TextFn != nil {
		return l.TextFn(data)
	}
	return l.Text
}

func (l *Label[T]) color() graphics.Color {
	if l.Color == 0 {
		return graphics.ColorBlack
	}
	return l.Color
}

func (l *Label[T]) Event(ctx *widget.EventCtx, event widget.Event, data *T) {}

func (l *Label[T]) LifeCycle(ctx *widget.LifeCycleCtx, event widget.LifeCycle, data T) {}

func (l *Label[T]) Update(ctx *widget.UpdateCtx, oldData, data T) {
	if l.text(data) != l.current {
		ctx.RequestLayout()
		ctx.RequestPaint()
	}
}

func (l *Label[T]) Layout(ctx *widget.LayoutCtx, bc widget.BoxConstraints, data T) graphics.Size {
	l.current = l.text(data)
	layout, err := ctx.Text().NewTextLayout(l.current, l.color())
	if err != nil {
		errors.Report(&errors.Error{Op: "widgets.Label.Layout", Kind: errors.KindRender, Err: err})
		l.layout = nil
		return bc.Constrain(graphics.Size{})
	}
	l.layout = layout
	return bc.Constrain(layout.Size)
}

func (l *Label[T]) Paint(ctx *widget.PaintCtx, data T) {
	if l.layout != nil {
		ctx.DrawText(l.layout, graphics.Offset{})
	}
}
