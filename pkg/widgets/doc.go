// Package widgets provides concrete widgets built on the widget contexts:
// labels, buttons, flex layouts, padding, alignment, sized boxes, tooltips,
// and context menu areas.
//
// Every widget is generic over the application data type T. Containers keep
// their children in widget.WidgetPod values and forward each pass to them.
//
// # Widget Construction
//
// Widgets are created with XxxOf helpers and adjusted with WithX methods:
//
//	col := ColumnOf[Model](
//	    LabelOf[Model]("Counter"),
//	    ButtonOf("Add", func(ctx *widget.EventCtx, m *Model) { m.Count++ }).
//	        WithPadding(graphics.UniformInsets(6)),
//	)
//
// Struct fields are public for full control; a zero field selects the
// documented default.
package widgets
