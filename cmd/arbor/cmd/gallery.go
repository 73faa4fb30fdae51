package cmd

import (
	"fmt"

	"github.com/go-drift/arbor/pkg/graphics"
	"github.com/go-drift/arbor/pkg/widget"
	"github.com/go-drift/arbor/pkg/widgets"
)

// galleryData is the application data of the gallery window.
type galleryData struct {
	Clicks int
}

const selectorResetClicks widget.Selector = "arbor.gallery.reset"

// gallery is the widget tree of the gallery window together with the pods
// the render command needs to aim at.
type gallery struct {
	root      *widgets.Flex[galleryData]
	buttons   *widgets.Flex[galleryData]
	increment *widget.WidgetPod[galleryData]
	hint      *widget.WidgetPod[galleryData]
}

func newGallery() *gallery {
	increment := widgets.TooltipOf[galleryData]("Adds one to the counter",
		widgets.ButtonOf("Increment", func(ctx *widget.EventCtx, data *galleryData) {
			data.Clicks++
		}))
	reset := widgets.ButtonOf("Reset", func(ctx *widget.EventCtx, data *galleryData) {
		data.Clicks = 0
	})
	buttons := widgets.RowOf[galleryData](increment, reset).WithSpacing(8)

	menu := func(data galleryData) widget.MenuDesc {
		return widget.NewMenuDesc[galleryData]("Counter",
			widget.MenuItem{Label: "Reset", Command: widget.NewCommand(selectorResetClicks, nil), Disabled: data.Clicks == 0},
		)
	}
	hint := widgets.ContextMenuOf(menu, widgets.LabelOf[galleryData]("Right-click for options"))

	root := widgets.ColumnOf[galleryData](
		widgets.DynamicLabelOf(func(data galleryData) string {
			return fmt.Sprintf("Clicks: %d", data.Clicks)
		}),
		widgets.PaddingOf[galleryData](graphics.Insets{Top: 8, Bottom: 8}, buttons),
		hint,
	).WithSpacing(4)

	return &gallery{
		root:      root,
		buttons:   buttons,
		increment: buttons.Children()[0],
		hint:      root.Children()[2],
	}
}

// incrementCenter returns the centre of the increment button in window
// coordinates. Valid after the first layout.
func (g *gallery) incrementCenter() graphics.Offset {
	padding := g.root.Children()[1]
	origin := padding.LayoutRect().Origin().
		Add(buttonsOrigin(padding)).
		Add(g.increment.LayoutRect().Origin())
	return origin.Add(g.increment.State().Size().ToRect().Center())
}

// hintCenter returns the centre of the context menu area in window
// coordinates.
func (g *gallery) hintCenter() graphics.Offset {
	return g.hint.LayoutRect().Center()
}

func buttonsOrigin(padding *widget.WidgetPod[galleryData]) graphics.Offset {
	if p, ok := padding.Widget().(*widgets.Padding[galleryData]); ok {
		return p.Child().LayoutRect().Origin()
	}
	return graphics.Offset{}
}

func (g *gallery) tooltip() *widgets.Tooltip[galleryData] {
	t, _ := g.increment.Widget().(*widgets.Tooltip[galleryData])
	return t
}
