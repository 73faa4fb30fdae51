package widgets

import (
	"github.com/go-drift/arbor/pkg/errors"
	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/shell"
	"github.com/go-drift/arbor/pkg/widget"
)

// Button is a focusable, clickable button with a text label.
//
// A left click captures the pointer and takes focus; releasing over the
// button calls OnTap. When focused, Enter and Space also call OnTap and Tab
// moves focus to the next (Shift+Tab: previous) focusable widget.
//
// Example:
//
//	ButtonOf("Submit", func(ctx *widget.EventCtx, m *Model) { m.Submitted = true }).
//	    WithDisabled(!valid)
type Button[T any] struct {
	// Label is the text displayed on the button.
	Label string
	// OnTap is called when the button is activated. It may mutate data.
	OnTap func(ctx *widget.EventCtx, data *T)
	// Disabled disables the button when true.
	Disabled bool
	// Color is the background color. Defaults to a light gray if zero.
	Color graphics.Color
	// HotColor is the background while hovered. Defaults to a lighter gray.
	HotColor graphics.Color
	// TextColor is the label color. Defaults to black if zero.
	TextColor graphics.Color
	// FocusColor is the focus ring color. Defaults to blue if zero.
	FocusColor graphics.Color
	// Padding surrounds the label. Defaults to 8 horizontal, 4 vertical.
	Padding graphics.Insets

	text *graphics.TextLayout
}

var (
	defaultButtonColor    = graphics.RGB(0xDD, 0xDD, 0xDD)
	defaultButtonHotColor = graphics.RGB(0xEE, 0xEE, 0xEE)
	disabledButtonColor   = graphics.RGB(0xF4, 0xF4, 0xF4)
	defaultButtonPadding  = graphics.Insets{Left: 8, Top: 4, Right: 8, Bottom: 4}
)

// ButtonOf creates a button with the given label and tap handler.
func ButtonOf[T any](label string, onTap func(ctx *widget.EventCtx, data *T)) *Button[T] {
	return &Button[T]{Label: label, OnTap: onTap}
}

// WithDisabled returns the button with the specified disabled state.
func (b *Button[T]) WithDisabled(disabled bool) *Button[T] {
	b.Disabled = disabled
	return b
}

// WithPadding returns the button with the specified padding.
func (b *Button[T]) WithPadding(padding graphics.Insets) *Button[T] {
	b.Padding = padding
	return b
}

// WithColor returns the button with the specified background and text colors.
func (b *Button[T]) WithColor(bg, text graphics.Color) *Button[T] {
	b.Color = bg
	b.TextColor = text
	return b
}

func (b *Button[T]) padding() graphics.Insets {
	if b.Padding.IsZero() {
		return defaultButtonPadding
	}
	return b.Padding
}

func (b *Button[T]) tap(ctx *widget.EventCtx, data *T) {
	if b.OnTap != nil {
		b.OnTap(ctx, data)
	}
}

func (b *Button[T]) Event(ctx *widget.EventCtx, event widget.Event, data *T) {
	if b.Disabled {
		return
	}
	switch ev := event.(type) {
	case widget.EventMouseMove:
		if ctx.IsHot() {
			ctx.SetCursor(shell.CursorPointer)
		}
	case widget.EventMouseDown:
		if ev.Button != widget.MouseLeft || !ctx.IsHot() {
			return
		}
		ctx.SetActive(true)
		ctx.RequestFocus()
		ctx.RequestPaint()
		ctx.SetHandled()
	case widget.EventMouseUp:
		if !ctx.IsActive() {
			return
		}
		ctx.SetActive(false)
		ctx.RequestPaint()
		if ctx.IsHot() {
			b.tap(ctx, data)
		}
		ctx.SetHandled()
	case widget.EventKeyDown:
		if !ctx.IsFocused() {
			return
		}
		switch ev.Key {
		case widget.KeyEnter, widget.KeySpace:
			b.tap(ctx, data)
			ctx.SetHandled()
		case widget.KeyTab:
			if ev.Shift {
				ctx.FocusPrev()
			} else {
				ctx.FocusNext()
			}
			ctx.SetHandled()
		}
	}
}

func (b *Button[T]) LifeCycle(ctx *widget.LifeCycleCtx, event widget.LifeCycle, data T) {
	switch event.(type) {
	case widget.LifeCycleWidgetAdded:
		if !b.Disabled {
			ctx.RegisterForFocus()
		}
	case widget.LifeCycleHotChanged, widget.LifeCycleFocusChanged:
		ctx.RequestPaint()
	}
}

func (b *Button[T]) Update(ctx *widget.UpdateCtx, oldData, data T) {}

func (b *Button[T]) Layout(ctx *widget.LayoutCtx, bc widget.BoxConstraints, data T) graphics.Size {
	textColor := b.TextColor
	if textColor == 0 {
		textColor = graphics.ColorBlack
	}
	layout, err := ctx.Text().NewTextLayout(b.Label, textColor)
	if err != nil {
		errors.Report(&errors.Error{Op: "widgets.Button.Layout", Kind: errors.KindRender, Err: err})
		b.text = nil
		return bc.Constrain(graphics.Size{})
	}
	b.text = layout
	pad := b.padding()
	// The focus ring is stroked on the layout edge and bleeds one pixel out.
	ctx.SetPaintInsets(graphics.UniformInsets(1))
	return bc.Constrain(graphics.Size{
		Width:  layout.Size.Width + pad.Left + pad.Right,
		Height: layout.Size.Height + pad.Top + pad.Bottom,
	})
}

func (b *Button[T]) Paint(ctx *widget.PaintCtx, data T) {
	bounds := ctx.Size().ToRect()
	ctx.FillRect(bounds, b.background(ctx))
	if b.text != nil {
		pad := b.padding()
		ctx.DrawText(b.text, graphics.Offset{X: pad.Left, Y: pad.Top})
	}
	if ctx.IsFocused() {
		focus := b.FocusColor
		if focus == 0 {
			focus = graphics.ColorBlue
		}
		ctx.StrokeRect(bounds, focus, 2)
	}
}

func (b *Button[T]) background(ctx *widget.PaintCtx) graphics.Color {
	switch {
	case b.Disabled:
		return disabledButtonColor
	case ctx.IsHot() && !ctx.IsActive():
		if b.HotColor != 0 {
			return b.HotColor
		}
		return defaultButtonHotColor
	case b.Color != 0:
		return b.Color
	default:
		return defaultButtonColor
	}
}
